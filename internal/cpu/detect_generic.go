//go:build !amd64 && !arm64

package cpu

// detectFeatures reports no SIMD capability on architectures without a
// specialized backend; the registry's default-assignment routine falls
// back to the scalar LM backend everywhere.
func detectFeatures() Features {
	return Features{}
}
