package simdvec

import (
	"fmt"

	"github.com/hupe1980/simdvec/internal/simd"
)

// Distance computes the metric between one pair of vectors.
//
// Both sides must share encoding and length; violations are usage errors
// reported synchronously. The resolved kernel applies all metric-specific
// post-processing, so the returned value is final (e.g. cosine is already
// clamped to [0, 2]).
func Distance(a, b Vector, m Metric) (float64, error) {
	if a.enc != b.enc {
		return 0, &ErrEncodingMismatch{A: a.enc, B: b.enc}
	}
	if a.n != b.n {
		return 0, &ErrDimensionMismatch{Expected: a.n, Actual: b.n}
	}
	k, ok := simd.Resolve(m.op(), a.enc.dtype())
	if !ok {
		return 0, fmt.Errorf("%w: %s on %s", ErrUnsupported, m, a.enc)
	}
	return k(a.ptr, b.ptr, a.n), nil
}
