package checksums

import (
	"github.com/hupe1980/checksums/internal/simd"
)

// CRC32C computes the CRC32-Castagnoli checksum of data.
// Uses hardware acceleration when available (SSE4.2, PCLMULQDQ, AVX-512).
func CRC32C(data []byte) uint32 {
	return simd.CRC32C(0, data)
}

// UpdateCRC32C continues a running CRC32-Castagnoli checksum over data.
// Pass the previous return value as crc to checksum a stream of buffers;
// UpdateCRC32C(0, data) equals CRC32C(data). A zero-length data returns
// crc unchanged.
func UpdateCRC32C(crc uint32, data []byte) uint32 {
	return simd.CRC32C(crc, data)
}

// CRC32 computes the plain CRC32 (IEEE) checksum of data.
func CRC32(data []byte) uint32 {
	return simd.CRC32(0, data)
}

// UpdateCRC32 continues a running CRC32 (IEEE) checksum over data.
func UpdateCRC32(crc uint32, data []byte) uint32 {
	return simd.CRC32(crc, data)
}
