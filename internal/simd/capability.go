package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents a SIMD instruction set tier.
type ISA uint8

const (
	// Scalar represents the pure Go fallback (no SIMD requirement).
	Scalar ISA = iota
	// NEON represents ARM64 NEON (128-bit SIMD, ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2 (scalable vectors).
	SVE2
	// AVX2 represents x86-64 AVX2 with FMA (256-bit SIMD).
	AVX2
	// AVX512 represents x86-64 AVX-512 F+BW (512-bit SIMD).
	AVX512

	numISAs = iota
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Scalar:
		return "scalar"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "generic":
		return Scalar, true
	case "neon":
		return NEON, true
	case "sve2":
		return SVE2, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Scalar, false
	}
}

// Package-level state - written once during package init, read-only after.
// No mutex needed: Go guarantees init() completes before any other code.
var (
	// available[i] is true when ISA i can be used on this CPU.
	// Scalar is always available.
	available [numISAs]bool

	// preference holds the resolution order, most specialized first,
	// Scalar always last. Only available tiers appear.
	preference []ISA

	// hasOverride is true if SIMDVEC_ISA forced a tier.
	hasOverride bool

	// CPU feature flags (set by platform-specific init).
	hasASIMD    bool // ARM64 NEON
	hasSVE2     bool // ARM64 SVE2
	hasAVX2     bool // x86-64 AVX2 + FMA
	hasAVX512F  bool // x86-64 AVX-512 Foundation
	hasAVX512BW bool // x86-64 AVX-512 Byte/Word
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	available[Scalar] = true
	available[NEON] = hasASIMD
	available[SVE2] = hasSVE2
	available[AVX2] = hasAVX2
	available[AVX512] = hasAVX512F && hasAVX512BW

	if override := os.Getenv("SIMDVEC_ISA"); override != "" {
		if isa, ok := ParseISA(override); ok && available[isa] {
			hasOverride = true
			preference = pinned(isa)
			return
		}
		// Unknown or unavailable override: fall through to auto order.
	}

	preference = defaultPreference()
}

// pinned builds a resolution order restricted to one tier plus the
// scalar fallback.
func pinned(isa ISA) []ISA {
	if isa == Scalar {
		return []ISA{Scalar}
	}
	return []ISA{isa, Scalar}
}

// defaultPreference orders the available tiers most specialized first.
func defaultPreference() []ISA {
	var order []ISA
	switch runtime.GOARCH {
	case "amd64":
		order = []ISA{AVX512, AVX2}
	case "arm64":
		// On macOS (Apple Silicon) SVE2 is emulated and NEON is faster.
		// On Linux ARM servers (Graviton, Ampere) SVE2 is native.
		if runtime.GOOS == "darwin" {
			order = []ISA{NEON, SVE2}
		} else {
			order = []ISA{SVE2, NEON}
		}
	}

	prefs := make([]ISA, 0, len(order)+1)
	for _, isa := range order {
		if available[isa] {
			prefs = append(prefs, isa)
		}
	}
	return append(prefs, Scalar)
}

// Available reports whether the given tier can run on this CPU.
func Available(isa ISA) bool {
	if isa >= numISAs {
		return false
	}
	return available[isa]
}

// Preference returns a copy of the active resolution order,
// most specialized tier first, scalar last.
func Preference() []ISA {
	out := make([]ISA, len(preference))
	copy(out, preference)
	return out
}

// Best returns the most specialized available tier.
func Best() ISA {
	return preference[0]
}

// IsOverridden reports whether SIMDVEC_ISA pinned the tier.
func IsOverridden() bool {
	return hasOverride
}
