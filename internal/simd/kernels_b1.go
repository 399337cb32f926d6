package simd

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Bit-packed kernels. n counts packed bytes.
//
// Hamming is popcount(a XOR b); Jaccard is 1 - |AND|/|OR| with both
// cardinalities gathered in one pass. The word tiers fold eight bytes per
// popcount and unroll four words per step so bits.OnesCount64 lowers to
// the hardware population-count instruction back to back.
//
// The same kernels also serve int8 buffers interpreted as bitsets, so
// Hamming/Jaccard resolve for the i8 encoding too.

func init() {
	for _, dt := range []DType{B1, I8} {
		register(OpHamming, dt, Scalar, hammingB1Scalar)
		register(OpJaccard, dt, Scalar, jaccardB1Scalar)
		for _, isa := range []ISA{NEON, AVX2, AVX512} {
			register(OpHamming, dt, isa, hammingB1Words)
			register(OpJaccard, dt, isa, jaccardB1Words)
		}
	}
}

// ============================================================================
// Scalar fallbacks (bytewise)
// ============================================================================

func hammingB1Scalar(a, b unsafe.Pointer, n int) float64 {
	x, y := bytes(a, n), bytes(b, n)
	total := 0
	for i := range x {
		total += bits.OnesCount8(x[i] ^ y[i])
	}
	return float64(total)
}

func jaccardB1Scalar(a, b unsafe.Pointer, n int) float64 {
	x, y := bytes(a, n), bytes(b, n)
	var and, or int
	for i := range x {
		and += bits.OnesCount8(x[i] & y[i])
		or += bits.OnesCount8(x[i] | y[i])
	}
	return jaccardFromCounts(and, or)
}

// ============================================================================
// Word kernels (all vector tiers)
// ============================================================================

func hammingB1Words(a, b unsafe.Pointer, n int) float64 {
	x, y := bytes(a, n), bytes(b, n)
	total := 0
	i := 0
	for ; i+32 <= n; i += 32 {
		x0 := binary.LittleEndian.Uint64(x[i:])
		x1 := binary.LittleEndian.Uint64(x[i+8:])
		x2 := binary.LittleEndian.Uint64(x[i+16:])
		x3 := binary.LittleEndian.Uint64(x[i+24:])
		y0 := binary.LittleEndian.Uint64(y[i:])
		y1 := binary.LittleEndian.Uint64(y[i+8:])
		y2 := binary.LittleEndian.Uint64(y[i+16:])
		y3 := binary.LittleEndian.Uint64(y[i+24:])
		total += bits.OnesCount64(x0^y0) + bits.OnesCount64(x1^y1) +
			bits.OnesCount64(x2^y2) + bits.OnesCount64(x3^y3)
	}
	for ; i+8 <= n; i += 8 {
		total += bits.OnesCount64(binary.LittleEndian.Uint64(x[i:]) ^ binary.LittleEndian.Uint64(y[i:]))
	}
	if i < n {
		total += bits.OnesCount64(tailWord(x[i:]) ^ tailWord(y[i:]))
	}
	return float64(total)
}

func jaccardB1Words(a, b unsafe.Pointer, n int) float64 {
	x, y := bytes(a, n), bytes(b, n)
	var and, or int
	i := 0
	for ; i+32 <= n; i += 32 {
		x0 := binary.LittleEndian.Uint64(x[i:])
		x1 := binary.LittleEndian.Uint64(x[i+8:])
		x2 := binary.LittleEndian.Uint64(x[i+16:])
		x3 := binary.LittleEndian.Uint64(x[i+24:])
		y0 := binary.LittleEndian.Uint64(y[i:])
		y1 := binary.LittleEndian.Uint64(y[i+8:])
		y2 := binary.LittleEndian.Uint64(y[i+16:])
		y3 := binary.LittleEndian.Uint64(y[i+24:])
		and += bits.OnesCount64(x0&y0) + bits.OnesCount64(x1&y1) +
			bits.OnesCount64(x2&y2) + bits.OnesCount64(x3&y3)
		or += bits.OnesCount64(x0|y0) + bits.OnesCount64(x1|y1) +
			bits.OnesCount64(x2|y2) + bits.OnesCount64(x3|y3)
	}
	for ; i+8 <= n; i += 8 {
		xw := binary.LittleEndian.Uint64(x[i:])
		yw := binary.LittleEndian.Uint64(y[i:])
		and += bits.OnesCount64(xw & yw)
		or += bits.OnesCount64(xw | yw)
	}
	if i < n {
		xw, yw := tailWord(x[i:]), tailWord(y[i:])
		and += bits.OnesCount64(xw & yw)
		or += bits.OnesCount64(xw | yw)
	}
	return jaccardFromCounts(and, or)
}

// tailWord assembles the final partial word, zero-padding the missing
// bytes. Zero bits are inert for XOR/AND/OR popcounts.
func tailWord(b []byte) uint64 {
	var w uint64
	for i := len(b) - 1; i >= 0; i-- {
		w = w<<8 | uint64(b[i])
	}
	return w
}

// jaccardFromCounts combines the set cardinalities into a distance.
// Two empty sets are identical: distance 0 by convention.
func jaccardFromCounts(and, or int) float64 {
	if or == 0 {
		return 0
	}
	return 1 - float64(and)/float64(or)
}

// Popcount counts the set bits in a packed buffer. Shared with the
// bitvec package.
func Popcount(b []byte) int {
	total := 0
	i := 0
	for ; i+8 <= len(b); i += 8 {
		total += bits.OnesCount64(binary.LittleEndian.Uint64(b[i:]))
	}
	for ; i < len(b); i++ {
		total += bits.OnesCount8(b[i])
	}
	return total
}
