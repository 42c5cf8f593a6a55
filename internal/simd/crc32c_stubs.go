//go:build amd64 && !noasm

package simd

import "unsafe"

// All functions below are defined in crc32c_amd64.s and operate on the
// complemented running checksum; none of them invert the input or the
// return value.

// stepBytes advances crc over n bytes with the CRC32B instruction.
//
//go:noescape
func stepBytes(crc uint32, p unsafe.Pointer, n int64) uint32

// stepWords advances crc over n bytes with the CRC32Q instruction.
// n must be a multiple of 8; p should be 8-byte aligned.
//
//go:noescape
func stepWords(crc uint32, p unsafe.Pointer, n int64) uint32

// crc32cClmul256 advances crc over exactly 256 bytes, stepping three
// stripes in parallel and folding them with PCLMULQDQ.
//
//go:noescape
func crc32cClmul256(crc uint32, p unsafe.Pointer) uint32

// crc32cClmul1024 advances crc over exactly 1024 bytes.
//
//go:noescape
func crc32cClmul1024(crc uint32, p unsafe.Pointer) uint32

// crc32cClmul3072 advances crc over exactly 3072 bytes.
//
//go:noescape
func crc32cClmul3072(crc uint32, p unsafe.Pointer) uint32

// crc32cAVX512 advances crc over n bytes with VPCLMULQDQ 512-bit
// folding. n must be at least 256 and a multiple of 64.
//
//go:noescape
func crc32cAVX512(crc uint32, p unsafe.Pointer, n int64) uint32
