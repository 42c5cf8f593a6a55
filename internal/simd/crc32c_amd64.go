//go:build amd64 && !noasm

package simd

import "unsafe"

// init upgrades the CRC32C kernel pointer. This runs after
// capability_amd64.go init() has detected CPU features and selected the
// active ISA.
func init() {
	if activeISA != Generic {
		kernelCRC32C = crc32cHW
	}
}

// Fixed block sizes covered by the CLMUL folding kernels.
const (
	block256  = 256
	block1024 = 1024
	block3072 = 3072
)

// crc32cHW computes CRC32C through the pipeline selected at init.
//
// The checksum is complemented on entry and exit; every kernel operates
// on the complemented value. The buffer is carved into an unaligned
// prefix, a kernel-covered middle and a scalar tail, so each kernel only
// ever receives the exact byte count its block size requires.
func crc32cHW(crc uint32, p []byte) uint32 {
	crc = ^crc

	// For small input, forget about alignment and step byte-by-byte.
	if len(p) < 8 {
		if len(p) > 0 {
			crc = stepBytes(crc, unsafe.Pointer(&p[0]), int64(len(p)))
		}
		return ^crc
	}

	// Peel off leading bytes until the cursor is 8-byte aligned.
	if leading := int(-uintptr(unsafe.Pointer(&p[0])) & 7); leading > 0 {
		crc = stepBytes(crc, unsafe.Pointer(&p[0]), int64(leading))
		p = p[leading:]
	}

	switch activeISA {
	case AVX512:
		// The wide kernel consumes any 64-byte multiple >= 256; the
		// 0-63 byte remainder falls through to the scalar stepper.
		if len(p) >= block256 {
			n := len(p) &^ 63
			crc = crc32cAVX512(crc, unsafe.Pointer(&p[0]), int64(n))
			p = p[n:]
		}
	case CLMUL:
		// Greedy largest-first: the tier order never changes the
		// result, only the instruction count.
		for len(p) >= block3072 {
			crc = crc32cClmul3072(crc, unsafe.Pointer(&p[0]))
			p = p[block3072:]
		}
		for len(p) >= block1024 {
			crc = crc32cClmul1024(crc, unsafe.Pointer(&p[0]))
			p = p[block1024:]
		}
		for len(p) >= block256 {
			crc = crc32cClmul256(crc, unsafe.Pointer(&p[0]))
			p = p[block256:]
		}
	}

	// Remaining aligned 8-byte words, then trailing bytes.
	if n := len(p) &^ 7; n > 0 {
		crc = stepWords(crc, unsafe.Pointer(&p[0]), int64(n))
		p = p[n:]
	}
	if len(p) > 0 {
		crc = stepBytes(crc, unsafe.Pointer(&p[0]), int64(len(p)))
	}
	return ^crc
}
