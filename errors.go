package simdvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("worker count must be >= 0")

	// ErrUnsupported is returned when no kernel exists for a
	// (metric, encoding) combination, e.g. Hamming on float16.
	ErrUnsupported = errors.New("unsupported metric/encoding combination")
)

// ErrDimensionMismatch indicates the two sides of a pair differ in length.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrEncodingMismatch indicates the two sides carry different encodings.
type ErrEncodingMismatch struct {
	A Encoding
	B Encoding
}

func (e *ErrEncodingMismatch) Error() string {
	return fmt.Sprintf("encoding mismatch: %s vs %s", e.A, e.B)
}

// ErrCountMismatch indicates batch sizes incompatible with the broadcast
// rule: counts must match exactly unless one side holds a single vector.
type ErrCountMismatch struct {
	A int
	B int
}

func (e *ErrCountMismatch) Error() string {
	return fmt.Sprintf("batch count mismatch: %d vs %d (broadcast requires one side to be 1)", e.A, e.B)
}
