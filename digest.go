package checksums

import (
	"hash"

	"github.com/hupe1980/checksums/internal/simd"
)

// digest implements hash.Hash32 over a running checksum function.
// It is not safe for concurrent use.
type digest struct {
	crc    uint32
	update func(uint32, []byte) uint32
}

// NewCRC32C returns a new CRC32-Castagnoli hash.Hash32 backed by the
// accelerated engine.
func NewCRC32C() hash.Hash32 {
	return &digest{update: simd.CRC32C}
}

// NewCRC32 returns a new CRC32 (IEEE) hash.Hash32.
func NewCRC32() hash.Hash32 {
	return &digest{update: simd.CRC32}
}

func (d *digest) Write(p []byte) (int, error) {
	d.crc = d.update(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 {
	return d.crc
}

// Sum appends the big-endian checksum to in, matching hash/crc32.
func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *digest) Reset() {
	d.crc = 0
}

func (d *digest) Size() int {
	return 4
}

func (d *digest) BlockSize() int {
	return 1
}
