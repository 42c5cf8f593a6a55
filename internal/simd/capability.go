package simd

import (
	"os"
	"strings"
)

// ISA represents a CRC32C acceleration pipeline.
type ISA uint8

const (
	// Generic represents the portable table-driven implementation (no SIMD).
	Generic ISA = iota
	// SSE42 represents x86-64 scalar stepping with the CRC32 quad-word instruction.
	SSE42
	// CLMUL represents x86-64 CRC32 striping folded with PCLMULQDQ.
	CLMUL
	// AVX512 represents x86-64 512-bit folding with VPCLMULQDQ.
	AVX512
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE42:
		return "sse42"
	case CLMUL:
		return "clmul"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "sse42":
		return SSE42, true
	case "clmul":
		return CLMUL, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeISA is the selected CRC32C pipeline.
	activeISA ISA

	// hasOverride is true if CHECKSUMS_SIMD was set.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasSSE42  bool // x86-64 CRC32 instruction (SSE4.2)
	hasCLMUL  bool // x86-64 PCLMULQDQ carry-less multiply
	hasAVX512 bool // x86-64 AVX-512 F+VL with VPCLMULQDQ
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	// Check for environment override
	if override := os.Getenv("CHECKSUMS_SIMD"); override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			// Validate the override is available
			if isISAAvailable(isa) {
				activeISA = isa
				return
			}
			// Invalid override - fall through to auto-detection
		}
	}

	// Auto-select best ISA
	activeISA = selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case SSE42:
		return hasSSE42
	case CLMUL:
		return hasSSE42 && hasCLMUL
	case AVX512:
		return hasCLMUL && hasAVX512
	default:
		return false
	}
}

// selectBestISA chooses the optimal pipeline for the current CPU.
// Each tier strictly contains the capabilities of the tier below it:
// the AVX-512 kernel still needs PCLMULQDQ for its 128-bit reduction,
// and the CLMUL folding tiers step stripes with the SSE4.2 CRC32
// instruction.
func selectBestISA() ISA {
	if hasCLMUL && hasAVX512 {
		return AVX512
	}
	if hasSSE42 && hasCLMUL {
		return CLMUL
	}
	if hasSSE42 {
		return SSE42
	}
	return Generic
}

// ActiveISA returns the currently active pipeline.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if CHECKSUMS_SIMD was set.
func IsOverridden() bool {
	return hasOverride
}

// HasSSE42 returns true if the x86-64 CRC32 instruction is available.
func HasSSE42() bool {
	return hasSSE42
}

// HasCLMUL returns true if PCLMULQDQ is available.
func HasCLMUL() bool {
	return hasCLMUL
}

// HasAVX512 returns true if AVX-512 (F+VL) with VPCLMULQDQ is available.
func HasAVX512() bool {
	return hasCLMUL && hasAVX512
}
