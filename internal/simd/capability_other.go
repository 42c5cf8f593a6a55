//go:build !amd64

package simd

// There are no accelerated CRC32C pipelines outside x86-64; the
// table-driven implementation is always available.
func init() {
	initCapabilities()
}
