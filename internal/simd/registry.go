package simd

import "sync"

// kernels is the registration table: one slot per (op, dtype, tier).
// Kernel files fill their slots from init(); the table is never written
// after package init completes.
var kernels [numOps][numDTypes][numISAs]Kernel

// register installs a kernel variant. Called from init() only.
func register(op Op, dt DType, isa ISA, k Kernel) {
	kernels[op][dt][isa] = k
}

// resolved caches the outcome of walking the preference order once per
// (op, dtype). Capabilities cannot change at runtime, so the cache is
// built lazily on first use and shared read-only afterwards.
var resolved = sync.OnceValue(func() [numOps][numDTypes]Kernel {
	var table [numOps][numDTypes]Kernel
	prefs := Preference()
	for op := Op(0); op < numOps; op++ {
		for dt := DType(0); dt < numDTypes; dt++ {
			table[op][dt] = resolveWith(op, dt, prefs)
		}
	}
	return table
})

// resolveWith walks prefs most specialized first and returns the first
// registered kernel, or nil when the (op, dtype) pair has no kernel at all.
func resolveWith(op Op, dt DType, prefs []ISA) Kernel {
	for _, isa := range prefs {
		if k := kernels[op][dt][isa]; k != nil {
			return k
		}
	}
	return nil
}

// Resolve returns the best available kernel for the pair. ok is false only
// when the combination is unsupported outright (e.g. Hamming on f16);
// hardware gaps never surface here because the scalar tier always
// registers a kernel for every supported pair.
func Resolve(op Op, dt DType) (Kernel, bool) {
	k := resolved()[op][dt]
	return k, k != nil
}

// ResolvedISA reports which tier Resolve would use for the pair.
// Diagnostic only.
func ResolvedISA(op Op, dt DType) (ISA, bool) {
	for _, isa := range Preference() {
		if kernels[op][dt][isa] != nil {
			return isa, true
		}
	}
	return Scalar, false
}
