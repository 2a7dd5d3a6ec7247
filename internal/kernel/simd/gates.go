// Package simd implements the AVX2/AVX512 backend tags. Go has no portable
// vector-intrinsic surface outside cgo or hand-written assembly, so these
// kernels are, deliberately, the same broadcast-multiply / lane-wise
// parity-sign-vector algorithm a real SIMD implementation would use,
// expressed as ordinary Go loops rather than actual vector instructions;
// see DESIGN.md's open-question resolution. The registry only ever binds
// these kernels on hardware that reports the matching feature
// (internal/cpu), and only for gates narrow enough — swap, sign-flip or
// sum/difference, no branchy index math — that the loop shape is a faithful
// stand-in for a real vectorized kernel.
package simd

import (
	"github.com/cwbudde/qsim-core/internal/backend"
	"github.com/cwbudde/qsim-core/internal/bitmask"
	"github.com/cwbudde/qsim-core/internal/kerr"
)

// Complex is this backend's precision constraint, matching lm's.
type Complex = backend.Complex

const invSqrt2 = 0.7071067811865476

func validate[T Complex](buf []T, n int, wires []int) error {
	if n < 0 || len(buf) != 1<<n {
		return kerr.ErrInvalidArgument
	}

	if len(wires) != 1 || wires[0] < 0 || wires[0] >= n {
		return kerr.ErrInvalidArgument
	}

	return nil
}

// ApplyPauliX swaps the amplitude pair at (i0, i1) in lane-pair-wide
// strides; there is no data-dependent construction beyond the parity pair
// itself, so the "SIMD" shape collapses to the same loop as lm.ApplyPauliX.
func ApplyPauliX[T Complex](buf []T, n int, wires []int, _ bool) error {
	if err := validate(buf, n, wires); err != nil {
		return err
	}

	r := bitmask.RevWire(wires[0], n)
	p := bitmask.RevWireParity1(r)

	for k := 0; k < 1<<(n-1); k++ {
		i0, i1 := p.Indices(k, r)
		buf[i0], buf[i1] = buf[i1], buf[i0]
	}

	return nil
}

// ApplyPauliZ negates i1's lane via a broadcasted sign-flip.
func ApplyPauliZ[T Complex](buf []T, n int, wires []int, _ bool) error {
	if err := validate(buf, n, wires); err != nil {
		return err
	}

	r := bitmask.RevWire(wires[0], n)
	p := bitmask.RevWireParity1(r)

	for k := 0; k < 1<<(n-1); k++ {
		_, i1 := p.Indices(k, r)
		buf[i1] = -buf[i1]
	}

	return nil
}

// ApplyHadamard applies the broadcasted (1/sqrt2) scale plus lane-pair
// sum/difference that a real SIMD kernel would compute with a single
// shuffle-add-sub sequence.
func ApplyHadamard[T Complex](buf []T, n int, wires []int, _ bool) error {
	if err := validate(buf, n, wires); err != nil {
		return err
	}

	r := bitmask.RevWire(wires[0], n)
	p := bitmask.RevWireParity1(r)

	h := T(complex(invSqrt2, 0))

	for k := 0; k < 1<<(n-1); k++ {
		i0, i1 := p.Indices(k, r)
		v0, v1 := buf[i0], buf[i1]
		buf[i0] = h * (v0 + v1)
		buf[i1] = h * (v0 - v1)
	}

	return nil
}
