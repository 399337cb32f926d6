package simdvec

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/simdvec/internal/simd"
)

// Batch computes one distance per logical pair of rows.
//
// Broadcast rule: if one side has exactly one row it is paired against
// every row of the other; otherwise row counts must match exactly.
//
// workers selects the execution width: 0 uses all cores, 1 runs inline on
// the calling goroutine, n > 1 uses exactly n workers over contiguous
// chunks. Workers are scoped to this call and joined before it returns.
// Output slot i always corresponds to pair i.
func Batch(a, b Matrix, m Metric, workers int) ([]float64, error) {
	k, err := resolveMatrices(a, b, m)
	if err != nil {
		return nil, err
	}
	n := a.rows
	if b.rows > n {
		n = b.rows
	}
	if a.rows != b.rows && a.rows != 1 && b.rows != 1 {
		return nil, &ErrCountMismatch{A: a.rows, B: b.rows}
	}

	// Broadcast by pinning the stride of the single-row side to zero.
	strideA, strideB := 1, 1
	if a.rows == 1 {
		strideA = 0
	}
	if b.rows == 1 {
		strideB = 0
	}

	out := make([]float64, n)
	err = parallelFor(workers, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = k(a.rowPtr(i*strideA), b.rowPtr(i*strideB), a.dim)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cross computes the distance of every row of a against every row of b.
//
// The result has shape (a.Rows(), b.Rows()); cell (i, j) equals
// Distance(a.Row(i), b.Row(j), m). Work is partitioned over the rows of a
// so each worker owns a disjoint set of output rows.
func Cross(a, b Matrix, m Metric, workers int) (*Table, error) {
	k, err := resolveMatrices(a, b, m)
	if err != nil {
		return nil, err
	}

	t := &Table{rows: a.rows, cols: b.rows, data: make([]float64, a.rows*b.rows)}
	err = parallelFor(workers, a.rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := t.data[i*t.cols : (i+1)*t.cols]
			pa := a.rowPtr(i)
			for j := 0; j < b.rows; j++ {
				row[j] = k(pa, b.rowPtr(j), a.dim)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// resolveMatrices validates the operand pair and resolves its kernel once
// for the whole sweep.
func resolveMatrices(a, b Matrix, m Metric) (simd.Kernel, error) {
	if a.enc != b.enc {
		return nil, &ErrEncodingMismatch{A: a.enc, B: b.enc}
	}
	if a.dim != b.dim {
		return nil, &ErrDimensionMismatch{Expected: a.dim, Actual: b.dim}
	}
	k, ok := simd.Resolve(m.op(), a.enc.dtype())
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrUnsupported, m, a.enc)
	}
	return k, nil
}

// Table is a dense all-pairs result with row-major storage.
type Table struct {
	rows int
	cols int
	data []float64
}

// Rows returns the number of result rows (rows of the left operand).
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of result columns (rows of the right operand).
func (t *Table) Cols() int { return t.cols }

// At returns cell (i, j).
func (t *Table) At(i, j int) float64 { return t.data[i*t.cols+j] }

// Row returns row i as a shared (not copied) slice.
func (t *Table) Row(i int) []float64 { return t.data[i*t.cols : (i+1)*t.cols] }

// Data returns the flat row-major backing slice.
func (t *Table) Data() []float64 { return t.data }

// parallelFor partitions [0, n) into contiguous chunks and runs fn on
// each. Chunks are static: thread-launch cost is paid at most workers
// times regardless of n, and chunk boundaries are deterministic so output
// ranges never overlap. Invalid worker counts are rejected before any
// work starts.
func parallelFor(workers, n int, fn func(lo, hi int)) error {
	if workers < 0 {
		return ErrInvalidWorkers
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return nil
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo := lo
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	return g.Wait()
}
