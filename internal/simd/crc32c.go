package simd

import "hash/crc32"

// Kernel function pointer - set once at init, zero runtime overhead.
// The generic implementation is the default; the amd64 init() overrides
// it with the hardware pipeline when the CPU qualifies.
var kernelCRC32C = crc32cGeneric

// CRC32C advances a running CRC32-Castagnoli checksum over p and returns
// the new checksum. Pass 0 as the initial value; chain the return value
// through successive calls to checksum data incrementally. A zero-length
// p returns crc unchanged.
func CRC32C(crc uint32, p []byte) uint32 {
	return kernelCRC32C(crc, p)
}

// CRC32 advances a running CRC32 (IEEE) checksum over p. There is no
// vectorized CRC32 pipeline on this architecture; it always routes to
// the table-driven implementation.
func CRC32(crc uint32, p []byte) uint32 {
	return crc32.Update(crc, crc32.IEEETable, p)
}

// crc32cTable is pre-computed for the CRC32-Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// crc32cGeneric is the whole-buffer software fallback.
func crc32cGeneric(crc uint32, p []byte) uint32 {
	return crc32.Update(crc, crc32cTable, p)
}
