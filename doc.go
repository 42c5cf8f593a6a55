// Package checksums provides fast, hardware-accelerated CRC checksums
// for data integrity.
//
// # CRC32-Castagnoli (CRC32C)
//
// The primary algorithm is CRC32-Castagnoli (polynomial 0x1EDC6F41),
// which provides:
//
//   - Hardware acceleration on x86-64 (SSE4.2 CRC32, PCLMULQDQ stripe
//     folding, AVX-512 VPCLMULQDQ wide folding)
//   - Superior error detection compared to CRC32-IEEE
//   - Industry standard (iSCSI, Btrfs, RocksDB, LevelDB)
//
// The accelerated pipeline is selected once per process from the CPU's
// capabilities and degrades gracefully: hosts without carry-less
// multiplication fall back to scalar CRC32 instructions, and hosts
// without those use the table-driven implementation. All pipelines are
// bit-for-bit equivalent for every buffer length and alignment.
//
// # Usage
//
// For one-shot checksums:
//
//	checksum := checksums.CRC32C(data)
//
// For chaining across buffers:
//
//	crc := checksums.UpdateCRC32C(0, chunk1)
//	crc = checksums.UpdateCRC32C(crc, chunk2)
//
// For streaming via the standard hash interface:
//
//	h := checksums.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := h.Sum32()
//
// The plain CRC32 (IEEE) variant is available through CRC32,
// UpdateCRC32 and NewCRC32; it has no vectorized pipeline on this
// architecture and always uses the table-driven implementation.
package checksums
