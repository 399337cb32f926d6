package simd

import "unsafe"

// Op identifies a reduction operator.
type Op uint8

const (
	OpCosine Op = iota
	OpInner
	OpSqEuclidean
	OpHamming
	OpJaccard

	numOps = iota
)

// String returns the string representation of an Op.
func (o Op) String() string {
	switch o {
	case OpCosine:
		return "cosine"
	case OpInner:
		return "inner"
	case OpSqEuclidean:
		return "sqeuclidean"
	case OpHamming:
		return "hamming"
	case OpJaccard:
		return "jaccard"
	default:
		return "unknown"
	}
}

// DType identifies the element encoding a kernel operates on.
type DType uint8

const (
	F32 DType = iota
	F16
	I8
	B1

	numDTypes = iota
)

// String returns the string representation of a DType.
func (d DType) String() string {
	switch d {
	case F32:
		return "f32"
	case F16:
		return "f16"
	case I8:
		return "i8"
	case B1:
		return "b1"
	default:
		return "unknown"
	}
}

// Kernel computes one reduction over two equal-length vectors.
//
// The calling convention is punned: a and b point at the first element of
// buffers whose element type is implied by the DType the kernel was
// registered under, and n is the element count (bytes for B1).
//
// SAFETY: kernels assume both buffers hold at least n elements. Callers
// MUST validate lengths; the engine does this once per call so the kernel
// itself stays branch-free on the hot path.
type Kernel func(a, b unsafe.Pointer, n int) float64

// Slice view helpers shared by the kernel files. unsafe.Slice on a nil
// pointer is only legal for n == 0, which the engine guarantees by
// construction (empty vectors carry n == 0).

func f32s(p unsafe.Pointer, n int) []float32 { return unsafe.Slice((*float32)(p), n) }

func i8s(p unsafe.Pointer, n int) []int8 { return unsafe.Slice((*int8)(p), n) }

func bytes(p unsafe.Pointer, n int) []byte { return unsafe.Slice((*byte)(p), n) }
