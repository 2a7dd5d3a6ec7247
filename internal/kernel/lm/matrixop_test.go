package lm

import (
	"math/cmplx"
	"testing"

	"github.com/cwbudde/qsim-core/internal/bitmask"
	"github.com/cwbudde/qsim-core/internal/kernel/parallel"
	"github.com/cwbudde/qsim-core/internal/kernel/pi"
)

// referenceApplyMultiQubitOp is an order-aware ground truth built directly
// on bitmask.GateIndices, independent of any backend's gather/scatter
// strategy: it is the definition ApplyMultiQubitOp's various kernels are
// all supposed to compute.
func referenceApplyMultiQubitOp(buf []complex128, n int, matrix []complex128, wires []int) []complex128 {
	inner, outer := bitmask.GateIndices(wires, n)
	dim := len(inner)

	out := make([]complex128, len(buf))
	copy(out, buf)

	scratch := make([]complex128, dim)

	for _, o := range outer {
		for i, b := range inner {
			scratch[i] = buf[o|b]
		}

		for i := 0; i < dim; i++ {
			var sum complex128
			for j := 0; j < dim; j++ {
				sum += matrix[i*dim+j] * scratch[j]
			}

			out[o|inner[i]] = sum
		}
	}

	return out
}

// TestApplyTwoQubitOpAsymmetricDiagonal catches a consistent basis swap that
// an inverse round-trip or a symmetric matrix can't: diag(1,2,3,4) has a
// different coefficient on every basis state, so applying it with wires[0]
// and wires[1] swapped must land different coefficients on different
// amplitudes, not just permute-then-permute-back to the same answer.
func TestApplyTwoQubitOpAsymmetricDiagonal(t *testing.T) {
	m := [16]complex128{
		1, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 3, 0,
		0, 0, 0, 4,
	}

	forward := []complex128{10, 20, 30, 40}
	if err := ApplyTwoQubitOp(forward, 2, m, []int{0, 1}, false); err != nil {
		t.Fatalf("wires=[0,1]: %v", err)
	}

	approxEqual(t, forward, []complex128{10, 40, 90, 160})

	swapped := []complex128{10, 20, 30, 40}
	if err := ApplyTwoQubitOp(swapped, 2, m, []int{1, 0}, false); err != nil {
		t.Fatalf("wires=[1,0]: %v", err)
	}

	approxEqual(t, swapped, []complex128{10, 60, 60, 160})
}

// TestApplyTwoQubitOpCrossBackendEquivalence checks LM, PI and ParallelLM
// agree on a dense, non-symmetric 4x4 operator for both wire orderings — the
// gap that let lm and parallel's inverted permutation guard survive despite
// pi (the correct backend) disagreeing with them.
func TestApplyTwoQubitOpCrossBackendEquivalence(t *testing.T) {
	m := [16]complex128{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	for _, wires := range [][]int{{0, 1}, {1, 0}} {
		wires := wires

		lmBuf := []complex128{1, 2, 3, 4}
		piBuf := []complex128{1, 2, 3, 4}
		parallelBuf := []complex128{1, 2, 3, 4}

		if err := ApplyTwoQubitOp(lmBuf, 2, m, wires, false); err != nil {
			t.Fatalf("lm wires=%v: %v", wires, err)
		}

		if err := pi.ApplyTwoQubitOp(piBuf, 2, m, wires, false); err != nil {
			t.Fatalf("pi wires=%v: %v", wires, err)
		}

		if err := parallel.ApplyTwoQubitOp(parallelBuf, 2, m, wires, false); err != nil {
			t.Fatalf("parallel wires=%v: %v", wires, err)
		}

		for i := range lmBuf {
			if cmplx.Abs(lmBuf[i]-piBuf[i]) > tol {
				t.Fatalf("wires=%v index %d: lm %v vs pi %v", wires, i, lmBuf[i], piBuf[i])
			}

			if cmplx.Abs(lmBuf[i]-parallelBuf[i]) > tol {
				t.Fatalf("wires=%v index %d: lm %v vs parallel %v", wires, i, lmBuf[i], parallelBuf[i])
			}
		}
	}
}

// TestApplyMultiQubitOpUnsortedWires checks LM, PI and ParallelLM all agree
// with an order-aware ground truth (built directly on bitmask.GateIndices)
// for non-ascending wire lists, including a 2-wire case and a 4-wire case
// where no wire sits at its own index. An earlier SwapBitIndex regressed
// this to the identity permutation for overlapping swap targets, which
// silently passed because lm and pi picked different kernels depending on
// qubit count alone.
func TestApplyMultiQubitOpUnsortedWires(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		wires []int
	}{
		{"two-wire-reversed", 2, []int{1, 0}},
		{"four-wire-unsorted", 4, []int{2, 0, 3, 1}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			dim := 1 << len(c.wires)
			matrix := make([]complex128, dim*dim)
			for i := range matrix {
				matrix[i] = complex(float64(i+1), 0)
			}

			buf := make([]complex128, 1<<c.n)
			for i := range buf {
				buf[i] = complex(float64(10*(i+1)), 0)
			}

			want := referenceApplyMultiQubitOp(buf, c.n, matrix, c.wires)

			lmBuf := append([]complex128(nil), buf...)
			piBuf := append([]complex128(nil), buf...)
			parallelBuf := append([]complex128(nil), buf...)

			if err := ApplyMultiQubitOp(lmBuf, c.n, matrix, c.wires, false); err != nil {
				t.Fatalf("lm: %v", err)
			}

			if err := pi.ApplyMultiQubitOp(piBuf, c.n, matrix, c.wires, false); err != nil {
				t.Fatalf("pi: %v", err)
			}

			if err := parallel.ApplyMultiQubitOp(parallelBuf, c.n, matrix, c.wires, false); err != nil {
				t.Fatalf("parallel: %v", err)
			}

			for i := range want {
				if cmplx.Abs(lmBuf[i]-want[i]) > tol {
					t.Fatalf("lm index %d: got %v want %v", i, lmBuf[i], want[i])
				}

				if cmplx.Abs(piBuf[i]-want[i]) > tol {
					t.Fatalf("pi index %d: got %v want %v", i, piBuf[i], want[i])
				}

				if cmplx.Abs(parallelBuf[i]-want[i]) > tol {
					t.Fatalf("parallel index %d: got %v want %v", i, parallelBuf[i], want[i])
				}
			}
		})
	}
}
