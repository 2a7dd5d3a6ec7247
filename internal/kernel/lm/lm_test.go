package lm

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

const tol = 1e-9

func approxEqual(t *testing.T, got, want []complex128) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > tol {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestApplyHadamardOnZero(t *testing.T) {
	buf := []complex128{1, 0}

	if err := ApplyHadamard(buf, 1, []int{0}, false); err != nil {
		t.Fatalf("ApplyHadamard: %v", err)
	}

	approxEqual(t, buf, []complex128{
		complex(invSqrt2, 0),
		complex(invSqrt2, 0),
	})
}

func TestApplyCNOTBellState(t *testing.T) {
	buf := []complex128{complex(invSqrt2, 0), 0, complex(invSqrt2, 0), 0}

	if err := ApplyCNOT(buf, 2, []int{0, 1}, false); err != nil {
		t.Fatalf("ApplyCNOT: %v", err)
	}

	approxEqual(t, buf, []complex128{complex(invSqrt2, 0), 0, 0, complex(invSqrt2, 0)})
}

func TestApplyCZ(t *testing.T) {
	buf := []complex128{0.5, 0.5, 0.5, 0.5}

	if err := ApplyCZ(buf, 2, []int{0, 1}, false); err != nil {
		t.Fatalf("ApplyCZ: %v", err)
	}

	approxEqual(t, buf, []complex128{0.5, 0.5, 0.5, -0.5})
}

func TestApplyToffoliOnAllOnes(t *testing.T) {
	buf := make([]complex128, 8)
	buf[7] = 1

	if err := ApplyToffoli(buf, 3, []int{0, 1, 2}, false); err != nil {
		t.Fatalf("ApplyToffoli: %v", err)
	}

	want := make([]complex128, 8)
	want[6] = 1

	approxEqual(t, buf, want)
}

func TestApplyMultiRZPiOnZeroState(t *testing.T) {
	buf := []complex128{1, 0, 0, 0}

	if err := ApplyMultiRZ(buf, 2, []int{0, 1}, false, math.Pi); err != nil {
		t.Fatalf("ApplyMultiRZ: %v", err)
	}

	approxEqual(t, buf, []complex128{complex(0, -1), 0, 0, 0})
}

func TestApplyCNOTWiresOrderIndependent(t *testing.T) {
	// ApplyCNOT with (control=0,target=1) and its mirror (control=1,target=0)
	// must act on different amplitude pairs: this guards the wire-ordering
	// fix in controlPair/controlActiveIndices.
	bufA := []complex128{complex(invSqrt2, 0), 0, complex(invSqrt2, 0), 0}
	if err := ApplyCNOT(bufA, 2, []int{0, 1}, false); err != nil {
		t.Fatalf("ApplyCNOT: %v", err)
	}

	bufB := []complex128{complex(invSqrt2, 0), complex(invSqrt2, 0), 0, 0}
	if err := ApplyCNOT(bufB, 2, []int{1, 0}, false); err != nil {
		t.Fatalf("ApplyCNOT: %v", err)
	}

	approxEqual(t, bufA, []complex128{complex(invSqrt2, 0), 0, 0, complex(invSqrt2, 0)})
	approxEqual(t, bufB, []complex128{complex(invSqrt2, 0), 0, 0, complex(invSqrt2, 0)})
}

func norm(buf []complex128) float64 {
	var sum float64
	for _, v := range buf {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}

	return math.Sqrt(sum)
}

func randomState(n int, seed int) []complex128 {
	rng := rand.New(rand.NewSource(int64(seed)))

	buf := make([]complex128, 1<<n)

	var total float64
	for i := range buf {
		re, im := rng.Float64()-0.5, rng.Float64()-0.5
		buf[i] = complex(re, im)
		total += re*re + im*im
	}

	s := 1 / math.Sqrt(total)
	for i := range buf {
		buf[i] *= complex(s, 0)
	}

	return buf
}

func TestUnitarityRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		wires []int
		apply func([]complex128, int, []int, bool) error
	}{
		{"Hadamard", 2, []int{0}, ApplyHadamard[complex128]},
		{"PauliX", 2, []int{1}, ApplyPauliX[complex128]},
		{"PauliY", 2, []int{0}, ApplyPauliY[complex128]},
		{"PauliZ", 2, []int{1}, ApplyPauliZ[complex128]},
		{"CNOT", 2, []int{0, 1}, ApplyCNOT[complex128]},
		{"CY", 2, []int{1, 0}, ApplyCY[complex128]},
		{"CZ", 2, []int{0, 1}, ApplyCZ[complex128]},
		{"SWAP", 2, []int{0, 1}, ApplySWAP[complex128]},
		{"S", 1, []int{0}, ApplyS[complex128]},
		{"T", 1, []int{0}, ApplyT[complex128]},
		{"RX", 3, []int{1}, func(b []complex128, n int, w []int, inv bool) error {
			return ApplyRX(b, n, w, inv, 0.37)
		}},
		{"RZ", 3, []int{2}, func(b []complex128, n int, w []int, inv bool) error {
			return ApplyRZ(b, n, w, inv, 1.1)
		}},
		{"Rot", 3, []int{0}, func(b []complex128, n int, w []int, inv bool) error {
			return ApplyRot(b, n, w, inv, 0.1, 0.2, 0.3)
		}},
		{"IsingXX", 3, []int{0, 2}, func(b []complex128, n int, w []int, inv bool) error {
			return ApplyIsingXX(b, n, w, inv, 0.5)
		}},
		{"IsingXY", 3, []int{1, 2}, func(b []complex128, n int, w []int, inv bool) error {
			return ApplyIsingXY(b, n, w, inv, 0.9)
		}},
		{"SingleExcitation", 3, []int{0, 1}, func(b []complex128, n int, w []int, inv bool) error {
			return ApplySingleExcitation(b, n, w, inv, 0.4)
		}},
		{"DoubleExcitation", 4, []int{0, 1, 2, 3}, func(b []complex128, n int, w []int, inv bool) error {
			return ApplyDoubleExcitation(b, n, w, inv, 0.6)
		}},
		{"MultiRZ", 3, []int{0, 1, 2}, func(b []complex128, n int, w []int, inv bool) error {
			return ApplyMultiRZ(b, n, w, inv, 0.8)
		}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			psi := randomState(tc.n, len(tc.name))
			before := append([]complex128(nil), psi...)

			if err := tc.apply(psi, tc.n, tc.wires, false); err != nil {
				t.Fatalf("forward: %v", err)
			}

			if got, want := norm(psi), 1.0; math.Abs(got-want) > 1e-8 {
				t.Fatalf("norm not preserved after forward: got %v", got)
			}

			if err := tc.apply(psi, tc.n, tc.wires, true); err != nil {
				t.Fatalf("inverse: %v", err)
			}

			approxEqual(t, psi, before)
		})
	}
}

func TestGeneratorScaleFactors(t *testing.T) {
	buf := []complex128{1, 0, 0, 0}

	scale, err := GeneratorCRX(buf, 2, []int{0, 1})
	if err != nil {
		t.Fatalf("GeneratorCRX: %v", err)
	}

	if scale != -0.5 {
		t.Fatalf("GeneratorCRX scale = %v, want -0.5", scale)
	}

	// Control inactive (wire 0 is the most-significant bit of index 0, i.e.
	// zero): the |1><1|⊗X generator must vanish entirely on |00>.
	approxEqual(t, buf, []complex128{0, 0, 0, 0})
}

func TestGeneratorMultiRZParitySign(t *testing.T) {
	buf := []complex128{1, 1, 1, 1}

	scale, err := GeneratorMultiRZ(buf, 2, []int{0, 1})
	if err != nil {
		t.Fatalf("GeneratorMultiRZ: %v", err)
	}

	if scale != -0.5 {
		t.Fatalf("scale = %v, want -0.5", scale)
	}

	approxEqual(t, buf, []complex128{1, -1, -1, 1})
}
