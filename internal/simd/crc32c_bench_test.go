package simd

import (
	"fmt"
	"testing"
)

func BenchmarkCRC32C(b *testing.B) {
	for _, size := range []int{64, 256, 1024, 3072, 8192, 65536, 1 << 20} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			data := randomBytes(size, int64(size))
			b.SetBytes(int64(size))
			b.ResetTimer()
			for b.Loop() {
				_ = CRC32C(0, data)
			}
		})
	}
}

func BenchmarkCRC32CGeneric(b *testing.B) {
	for _, size := range []int{1024, 65536, 1 << 20} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			data := randomBytes(size, int64(size))
			b.SetBytes(int64(size))
			b.ResetTimer()
			for b.Loop() {
				_ = crc32cGeneric(0, data)
			}
		})
	}
}
