package simd

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestApplyHadamardMatchesScalar(t *testing.T) {
	buf := []complex128{1, 0}

	if err := ApplyHadamard(buf, 1, []int{0}, false); err != nil {
		t.Fatalf("ApplyHadamard: %v", err)
	}

	want := complex(invSqrt2, 0)
	if cmplx.Abs(buf[0]-want) > 1e-9 || cmplx.Abs(buf[1]-want) > 1e-9 {
		t.Fatalf("got %v, want (%v,%v)", buf, want, want)
	}
}

func TestApplyPauliXRoundTrip(t *testing.T) {
	buf := []complex128{1, 2, 3, 4}
	before := append([]complex128(nil), buf...)

	if err := ApplyPauliX(buf, 2, []int{1}, false); err != nil {
		t.Fatalf("forward: %v", err)
	}

	if err := ApplyPauliX(buf, 2, []int{1}, false); err != nil {
		t.Fatalf("second application: %v", err)
	}

	for i := range buf {
		if buf[i] != before[i] {
			t.Fatalf("index %d: got %v want %v", i, buf[i], before[i])
		}
	}
}

func TestApplyIsingZZPhaseOnZeroState(t *testing.T) {
	// IsingZZ(theta) on |00> leaves the amplitude multiplied by e^{-i*theta/2},
	// exactly as a single RZ would on the all-zero index.
	buf := []complex128{1, 0, 0, 0}

	if err := ApplyIsingZZ(buf, 2, []int{0, 1}, false, math.Pi/2); err != nil {
		t.Fatalf("ApplyIsingZZ: %v", err)
	}

	want := complex(math.Cos(math.Pi/4), -math.Sin(math.Pi/4))
	if cmplx.Abs(buf[0]-want) > 1e-9 {
		t.Fatalf("got %v, want %v", buf[0], want)
	}
}
