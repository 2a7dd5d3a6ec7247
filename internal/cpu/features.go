// Package cpu detects the CPU features relevant to selecting a SIMD kernel
// backend. It mirrors the detection style of golang.org/x/sys/cpu consumers:
// a plain struct of booleans, populated once per process and read many
// times by the registry's default-assignment routine.
package cpu

// Features describes the SIMD capabilities of the current process's CPU.
type Features struct {
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool
}

// Detect returns the CPU features available on this process's host. It is
// safe to call repeatedly; detection itself happens once per process via
// the platform-specific detectFeatures implementation.
func Detect() Features {
	return detectFeatures()
}
