//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

// detectFeatures reports AMD64 SIMD capability via golang.org/x/sys/cpu,
// the same CPUID-flag source the teacher uses in internal/fft/features.go.
func detectFeatures() Features {
	return Features{
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512F,
	}
}
