package simdvec

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/simdvec/internal/simd"
)

// KernelFunc is a resolved reduction routine with the fixed punned calling
// convention (pointerA, pointerB, length) -> distance. It performs no
// validation: both buffers must hold at least n elements of the encoding
// the kernel was resolved for (n counts packed bytes for B1).
type KernelFunc func(a, b unsafe.Pointer, n int) float64

// Kernel returns the best available kernel for the pair, for callers that
// embed it as a hot-path comparator (e.g. an ANN index) and cannot afford
// per-call validation. Resolution is fixed for the process lifetime.
func Kernel(m Metric, e Encoding) (KernelFunc, error) {
	k, ok := simd.Resolve(m.op(), e.dtype())
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrUnsupported, m, e)
	}
	return KernelFunc(k), nil
}

// F32Kernel adapts the resolved kernel to a typed float32 comparator.
// Like Kernel it skips validation: slices must have equal length.
func F32Kernel(m Metric) (func(a, b []float32) float64, error) {
	k, err := Kernel(m, F32)
	if err != nil {
		return nil, err
	}
	return func(a, b []float32) float64 {
		return k(unsafe.Pointer(unsafe.SliceData(a)), unsafe.Pointer(unsafe.SliceData(b)), len(a))
	}, nil
}

// Capabilities returns the detected instruction-set tiers in resolution
// order, most specialized first, always ending with "scalar". Diagnostic
// only; resolution happens through the registry.
func Capabilities() []string {
	prefs := simd.Preference()
	names := make([]string, len(prefs))
	for i, isa := range prefs {
		names[i] = isa.String()
	}
	return names
}

// CPUName returns the processor brand string for support diagnostics.
func CPUName() string {
	return simd.CPUName()
}
