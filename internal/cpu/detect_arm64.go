//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

// detectFeatures reports ARM64 SIMD capability. NEON (ASIMD) is mandatory
// on ARM64 but we still read it from x/sys/cpu for consistency with the
// AMD64 path rather than hardcoding true.
func detectFeatures() Features {
	return Features{
		HasNEON: cpu.ARM64.HasASIMD,
	}
}
