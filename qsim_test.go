package qsim

import (
	"math"
	"math/cmplx"
	"testing"
)

func approxEqualC128(t *testing.T, got, want []complex128) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestHadamardOnZero(t *testing.T) {
	buf := []complex128{1, 0}

	if err := ApplyHadamard(buf, 1, []int{0}, false); err != nil {
		t.Fatalf("ApplyHadamard: %v", err)
	}

	approxEqualC128(t, buf, []complex128{
		complex(1/math.Sqrt2, 0),
		complex(1/math.Sqrt2, 0),
	})
}

func TestCNOTOnBellPreimage(t *testing.T) {
	buf := []complex128{complex(1/math.Sqrt2, 0), 0, complex(1/math.Sqrt2, 0), 0}

	if err := ApplyCNOT(buf, 2, []int{0, 1}, false); err != nil {
		t.Fatalf("ApplyCNOT: %v", err)
	}

	approxEqualC128(t, buf, []complex128{complex(1/math.Sqrt2, 0), 0, 0, complex(1/math.Sqrt2, 0)})
}

func TestCZOnUniformSuperposition(t *testing.T) {
	buf := []complex128{0.5, 0.5, 0.5, 0.5}

	if err := ApplyCZ(buf, 2, []int{0, 1}, false); err != nil {
		t.Fatalf("ApplyCZ: %v", err)
	}

	approxEqualC128(t, buf, []complex128{0.5, 0.5, 0.5, -0.5})
}

func TestToffoliOnAllOnes(t *testing.T) {
	buf := make([]complex128, 8)
	buf[7] = 1

	if err := ApplyToffoli(buf, 3, []int{0, 1, 2}, false); err != nil {
		t.Fatalf("ApplyToffoli: %v", err)
	}

	want := make([]complex128, 8)
	want[6] = 1

	approxEqualC128(t, buf, want)
}

func TestMultiRZPiOnZeroState(t *testing.T) {
	buf := []complex128{1, 0, 0, 0}

	if err := ApplyMultiRZ(buf, 2, []int{0, 1}, false, math.Pi); err != nil {
		t.Fatalf("ApplyMultiRZ: %v", err)
	}

	approxEqualC128(t, buf, []complex128{complex(0, -1), 0, 0, 0})
}

func TestDispatchMonotonicityScenario(t *testing.T) {
	r := GateKernelMap()

	if err := AssignKernelForOp(r, PauliX, SingleThread, Aligned512, 5, Interval{Lo: 3, Hi: -1}, AVX512); err != nil {
		t.Fatalf("AssignKernelForOp: %v", err)
	}

	m4, err := KernelMap(r, 4, SingleThread, Aligned512)
	if err != nil {
		t.Fatalf("KernelMap(4): %v", err)
	}

	if m4[PauliX] != AVX512 {
		t.Fatalf("n=4 PauliX = %v, want AVX512", m4[PauliX])
	}

	m2, err := KernelMap(r, 2, SingleThread, Aligned512)
	if err != nil {
		t.Fatalf("KernelMap(2): %v", err)
	}

	if m2[PauliX] != LM {
		t.Fatalf("n=2 PauliX = %v, want LM fallback", m2[PauliX])
	}
}

func TestApplySingleQubitOpDispatchesAcrossBackends(t *testing.T) {
	invSqrt2 := complex(1/math.Sqrt2, 0)
	h := [4]complex128{invSqrt2, invSqrt2, invSqrt2, -invSqrt2}

	lmBuf := []complex128{1, 0}
	if err := ApplySingleQubitOp(lmBuf, 1, h, []int{0}, false, SingleThread, Unaligned); err != nil {
		t.Fatalf("SingleThread/Unaligned: %v", err)
	}

	piBuf := make([]complex128, 1<<7)
	piBuf[0] = 1
	if err := ApplySingleQubitOp(piBuf, 7, h, []int{3}, false, SingleThread, Unaligned); err != nil {
		t.Fatalf("wide ApplySingleQubitOp: %v", err)
	}

	approxEqualC128(t, lmBuf, []complex128{invSqrt2, invSqrt2})

	if cmplx.Abs(piBuf[0]-invSqrt2) > 1e-9 {
		t.Fatalf("piBuf[0] = %v, want %v", piBuf[0], invSqrt2)
	}
}
