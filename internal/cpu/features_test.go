package cpu

import "testing"

func TestDetectDoesNotPanic(t *testing.T) {
	t.Parallel()

	_ = Detect()
}
