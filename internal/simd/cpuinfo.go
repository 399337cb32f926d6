package simd

import "github.com/klauspost/cpuid/v2"

// CPUName returns the processor brand string for diagnostics.
func CPUName() string {
	if name := cpuid.CPU.BrandName; name != "" {
		return name
	}
	return "unknown"
}
