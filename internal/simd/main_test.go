package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain runs before all tests and prints ISA diagnostic information.
// This helps CI identify which CRC32C pipeline is actually being used.
func TestMain(m *testing.M) {
	fmt.Printf("=== CRC32C ISA Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("CHECKSUMS_SIMD=%q\n", os.Getenv("CHECKSUMS_SIMD"))
	fmt.Printf("Active ISA: %s\n", ActiveISA())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("CPU Features:\n")
	fmt.Printf("  SSE4.2 (CRC32): %v\n", HasSSE42())
	fmt.Printf("  PCLMULQDQ: %v\n", HasCLMUL())
	fmt.Printf("  AVX-512 (F+VL+VPCLMULQDQ): %v\n", HasAVX512())
	fmt.Printf("==============================\n\n")

	os.Exit(m.Run())
}
