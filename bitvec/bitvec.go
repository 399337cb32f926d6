// Package bitvec provides helpers for the bit-packed vector encoding:
// packing dense bit vectors into bytes, and set-style distances over
// sparse roaring bitmaps for universes too large to pack densely.
package bitvec

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/simdvec/internal/simd"
)

// Pack packs booleans into a bit-packed buffer, bit i stored in byte i/8
// at position i%8 (LSB first) — the layout B1 vectors expect. The final
// byte is zero-padded.
func Pack(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

// Unpack expands a bit-packed buffer into n booleans.
func Unpack(packed []byte, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = packed[i/8]&(1<<(i%8)) != 0
	}
	return out
}

// Cardinality counts the set bits in a packed buffer.
func Cardinality(packed []byte) int {
	return simd.Popcount(packed)
}

// ToBitmap converts a packed buffer into a sparse roaring bitmap using
// the same bit numbering as Pack.
func ToBitmap(packed []byte) *roaring.Bitmap {
	bm := roaring.New()
	for i, b := range packed {
		for b != 0 {
			bm.Add(uint32(i*8 + bits.TrailingZeros8(b)))
			b &= b - 1
		}
	}
	return bm
}

// SparseHamming counts differing elements of two sparse sets
// (the cardinality of their symmetric difference).
func SparseHamming(a, b *roaring.Bitmap) uint64 {
	return roaring.Xor(a, b).GetCardinality()
}

// SparseJaccard is 1 - |AND|/|OR| over sparse sets.
// Two empty sets are identical: distance 0 by convention, matching the
// dense Jaccard kernel.
func SparseJaccard(a, b *roaring.Bitmap) float64 {
	union := roaring.Or(a, b).GetCardinality()
	if union == 0 {
		return 0
	}
	inter := roaring.And(a, b).GetCardinality()
	return 1 - float64(inter)/float64(union)
}
