package simdvec

import (
	"unsafe"

	"github.com/hupe1980/simdvec/internal/f16"
)

// Vector is a read-only view over a caller-owned buffer. The engine never
// retains it past the call that receives it.
type Vector struct {
	enc Encoding
	n   int
	ptr unsafe.Pointer
}

// F32Vector wraps a float32 buffer.
func F32Vector(v []float32) Vector {
	return Vector{enc: F32, n: len(v), ptr: unsafe.Pointer(unsafe.SliceData(v))}
}

// F16Vector wraps a buffer of raw binary16 bit-patterns
// (see EncodeF16 to produce one from float32 data).
func F16Vector(v []uint16) Vector {
	return Vector{enc: F16, n: len(v), ptr: unsafe.Pointer(unsafe.SliceData(v))}
}

// I8Vector wraps an int8 buffer.
func I8Vector(v []int8) Vector {
	return Vector{enc: I8, n: len(v), ptr: unsafe.Pointer(unsafe.SliceData(v))}
}

// B1Vector wraps a bit-packed buffer: 8 elements per byte, bit i stored in
// byte i/8 at position i%8 (LSB first).
func B1Vector(v []byte) Vector {
	return Vector{enc: B1, n: len(v), ptr: unsafe.Pointer(unsafe.SliceData(v))}
}

// Encoding returns the element encoding.
func (v Vector) Encoding() Encoding { return v.enc }

// Len returns the element count the kernels reduce over
// (packed bytes for B1).
func (v Vector) Len() int { return v.n }

// Matrix is a dense row-major collection of equal-length vectors, used
// both as a batch of pairs and as an all-pairs operand. Like Vector it is
// a read-only view over a caller-owned buffer.
type Matrix struct {
	enc  Encoding
	rows int
	dim  int
	ptr  unsafe.Pointer
}

func newMatrix(enc Encoding, ptr unsafe.Pointer, total, dim int) (Matrix, error) {
	if dim <= 0 || total%dim != 0 {
		return Matrix{}, &ErrDimensionMismatch{Expected: dim, Actual: total}
	}
	return Matrix{enc: enc, rows: total / dim, dim: dim, ptr: ptr}, nil
}

// F32Matrix wraps a flat row-major float32 buffer of len(data)/dim rows.
func F32Matrix(data []float32, dim int) (Matrix, error) {
	return newMatrix(F32, unsafe.Pointer(unsafe.SliceData(data)), len(data), dim)
}

// F16Matrix wraps a flat row-major binary16 buffer.
func F16Matrix(data []uint16, dim int) (Matrix, error) {
	return newMatrix(F16, unsafe.Pointer(unsafe.SliceData(data)), len(data), dim)
}

// I8Matrix wraps a flat row-major int8 buffer.
func I8Matrix(data []int8, dim int) (Matrix, error) {
	return newMatrix(I8, unsafe.Pointer(unsafe.SliceData(data)), len(data), dim)
}

// B1Matrix wraps a flat row-major bit-packed buffer; dim counts packed
// bytes per row.
func B1Matrix(data []byte, dim int) (Matrix, error) {
	return newMatrix(B1, unsafe.Pointer(unsafe.SliceData(data)), len(data), dim)
}

// Rows returns the number of vectors.
func (m Matrix) Rows() int { return m.rows }

// Dim returns the per-row element count (packed bytes for B1).
func (m Matrix) Dim() int { return m.dim }

// Encoding returns the element encoding.
func (m Matrix) Encoding() Encoding { return m.enc }

// Row returns a view of row i. No bounds check beyond the slice the
// matrix was built from; i must be in [0, Rows).
func (m Matrix) Row(i int) Vector {
	return Vector{enc: m.enc, n: m.dim, ptr: m.rowPtr(i)}
}

func (m Matrix) rowPtr(i int) unsafe.Pointer {
	return unsafe.Add(m.ptr, i*m.dim*m.enc.elemSize())
}

// EncodeF16 converts float32 values to binary16 bit-patterns
// (round-to-nearest, ties-to-even).
func EncodeF16(src []float32) []uint16 {
	dst := make([]uint16, len(src))
	f16.Encode(unsafe.Slice((*f16.Bits)(unsafe.SliceData(dst)), len(dst)), src)
	return dst
}

// DecodeF16 converts binary16 bit-patterns back to float32.
func DecodeF16(src []uint16) []float32 {
	dst := make([]float32, len(src))
	f16.Decode(dst, unsafe.Slice((*f16.Bits)(unsafe.SliceData(src)), len(src)))
	return dst
}
