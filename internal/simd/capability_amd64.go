//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	hasSSE42 = cpu.X86.HasSSE42
	hasCLMUL = cpu.X86.HasPCLMULQDQ
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL && cpu.X86.HasAVX512VPCLMULQDQ
	initCapabilities()
}
