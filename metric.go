package simdvec

import (
	"fmt"

	"github.com/hupe1980/simdvec/internal/simd"
)

// Metric represents the distance metric used for vector comparison.
type Metric uint8

const (
	// Cosine is 1 - cosine similarity, clamped to [0, 2].
	// Zero-magnitude inputs yield the fixed sentinel 1.
	Cosine Metric = iota
	// Inner is the raw inner (dot) product. Note it is a similarity,
	// not a metric: larger means closer.
	Inner
	// SqEuclidean is the squared L2 distance.
	SqEuclidean
	// Hamming counts differing bits of bit-packed vectors.
	Hamming
	// Jaccard is 1 - |AND|/|OR| over bit-packed vectors.
	Jaccard
)

func (m Metric) String() string {
	switch m {
	case Cosine:
		return "cosine"
	case Inner:
		return "inner"
	case SqEuclidean:
		return "sqeuclidean"
	case Hamming:
		return "hamming"
	case Jaccard:
		return "jaccard"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

// ParseMetric parses a metric name.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "cosine":
		return Cosine, nil
	case "inner":
		return Inner, nil
	case "sqeuclidean":
		return SqEuclidean, nil
	case "hamming":
		return Hamming, nil
	case "jaccard":
		return Jaccard, nil
	default:
		return 0, fmt.Errorf("unknown metric %q", s)
	}
}

func (m Metric) op() simd.Op {
	switch m {
	case Cosine:
		return simd.OpCosine
	case Inner:
		return simd.OpInner
	case SqEuclidean:
		return simd.OpSqEuclidean
	case Hamming:
		return simd.OpHamming
	default:
		return simd.OpJaccard
	}
}

// Encoding represents the element encoding of a vector buffer.
type Encoding uint8

const (
	// F32 is IEEE-754 binary32.
	F32 Encoding = iota
	// F16 is IEEE-754 binary16, stored as raw uint16 bit-patterns.
	F16
	// I8 is signed 8-bit integer.
	I8
	// B1 is bit-packed: 8 elements per byte.
	B1
)

func (e Encoding) String() string {
	switch e {
	case F32:
		return "f32"
	case F16:
		return "f16"
	case I8:
		return "i8"
	case B1:
		return "b1"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(e))
	}
}

// ParseEncoding parses an encoding name.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "f32":
		return F32, nil
	case "f16":
		return F16, nil
	case "i8":
		return I8, nil
	case "b1":
		return B1, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", s)
	}
}

func (e Encoding) dtype() simd.DType {
	switch e {
	case F32:
		return simd.F32
	case F16:
		return simd.F16
	case I8:
		return simd.I8
	default:
		return simd.B1
	}
}

// elemSize returns the storage width of one element in bytes
// (one packed byte for B1).
func (e Encoding) elemSize() int {
	switch e {
	case F32:
		return 4
	case F16:
		return 2
	default:
		return 1
	}
}
