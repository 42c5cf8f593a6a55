// Package simd provides the hardware-accelerated CRC32C engine.
//
// # Supported Platforms
//
//   - x86-64: AVX-512 (VPCLMULQDQ), SSE4.2 + PCLMULQDQ, SSE4.2
//   - everything else: table-driven fallback (hash/crc32)
//
// Runtime CPU feature detection selects the optimal pipeline once per
// process. Build with -tags noasm to force the generic Go fallback, or
// set CHECKSUMS_SIMD=generic|sse42|clmul|avx512 to override selection.
//
// # Pipelines
//
//   - avx512: folds four 512-bit lane accumulators per 256 bytes with
//     VPCLMULQDQ, then reduces 512->128->64 bits and Barrett-reduces
//     against the Castagnoli polynomial.
//   - clmul: steps fixed 3072/1024/256-byte blocks as three parallel
//     CRC32Q stripes and folds the partial values with PCLMULQDQ.
//   - sse42: scalar CRC32Q/CRC32B stepping only.
//
// All pipelines produce bit-identical results for every input length
// and alignment; selection only affects throughput.
package simd
