package lm

import (
	"math"

	"github.com/cwbudde/qsim-core/internal/bitmask"
)

// ApplySingleExcitation rotates (i01,i10) via [[c,-s],[s,c]] and leaves
// (i00,i11) unchanged.
func ApplySingleExcitation[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	p, r0, r1, err := twoWireSetup(buf, n, wires)
	if err != nil {
		return err
	}

	if inverse {
		theta = -theta
	}

	c := T(complex(math.Cos(theta/2), 0))
	s := T(complex(math.Sin(theta/2), 0))

	for k := 0; k < 1<<(n-2); k++ {
		_, i01, i10, _ := p.Indices(k, r0, r1)
		v01, v10 := buf[i01], buf[i10]
		buf[i01] = c*v01 - s*v10
		buf[i10] = s*v01 + c*v10
	}

	return nil
}

// singleExcitationSigned applies the SingleExcitation rotation to (i01,i10)
// and an extra global phase e^{sign*i*theta/2} to (i00,i11); sign=-1 gives
// SingleExcitationMinus, sign=+1 gives SingleExcitationPlus.
func singleExcitationSigned[T Complex](buf []T, n int, wires []int, inverse bool, theta float64, sign float64) error {
	p, r0, r1, err := twoWireSetup(buf, n, wires)
	if err != nil {
		return err
	}

	if inverse {
		theta = -theta
	}

	c := T(complex(math.Cos(theta/2), 0))
	s := T(complex(math.Sin(theta/2), 0))
	phase := cis[T](sign * theta / 2)

	for k := 0; k < 1<<(n-2); k++ {
		i00, i01, i10, i11 := p.Indices(k, r0, r1)
		v01, v10 := buf[i01], buf[i10]
		buf[i01] = c*v01 - s*v10
		buf[i10] = s*v01 + c*v10
		buf[i00] *= phase
		buf[i11] *= phase
	}

	return nil
}

// ApplySingleExcitationMinus applies SingleExcitation with an additional
// e^{-i*theta/2} global phase on the untouched (i00,i11) amplitudes.
func ApplySingleExcitationMinus[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	return singleExcitationSigned[T](buf, n, wires, inverse, theta, -1)
}

// ApplySingleExcitationPlus applies SingleExcitation with an additional
// e^{+i*theta/2} global phase on the untouched (i00,i11) amplitudes.
func ApplySingleExcitationPlus[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	return singleExcitationSigned[T](buf, n, wires, inverse, theta, 1)
}

// doubleExcitationLocalPair is the pair of local (within the 4-wire operand
// block) indices the double-excitation family rotates between: 0b0011 (both
// wires of the second pair set) and 0b1100 (both wires of the first pair
// set), in wires[0]-most-significant order.
const (
	doubleExcitationLo = 0b0011
	doubleExcitationHi = 0b1100
)

// doubleExcitationBases returns the buffer indices, for every outer block,
// of the two local basis states the rotation acts on.
func doubleExcitationBases(wires []int, n int) (lo, hi []int) {
	outerCount := 1 << (n - len(wires))
	lo = make([]int, outerCount)
	hi = make([]int, outerCount)

	for blk := 0; blk < outerCount; blk++ {
		lo[blk] = bitmask.SwapBitIndex(blk, doubleExcitationLo, wires, n)
		hi[blk] = bitmask.SwapBitIndex(blk, doubleExcitationHi, wires, n)
	}

	return lo, hi
}

// localExcitationPattern extracts the 4-bit local pattern (wires[0] most
// significant) that idx carries on the operand wires.
func localExcitationPattern(idx int, wires []int, n int) int {
	var local int

	for p, w := range wires {
		r := bitmask.RevWire(w, n)
		if idx&(1<<r) != 0 {
			local |= 1 << (len(wires) - p - 1)
		}
	}

	return local
}

// applyDoubleExcitationRotation rotates every (lo,hi) buffer-index pair by
// [[c,-s],[s,c]], optionally multiplying every other basis state by phase.
func applyDoubleExcitationRotation[T Complex](buf []T, n int, wires []int, theta float64, phase T) error {
	lo, hi := doubleExcitationBases(wires, n)

	c := T(complex(math.Cos(theta/2), 0))
	s := T(complex(math.Sin(theta/2), 0))

	if phase != 0 {
		dim := 1 << n
		for idx := 0; idx < dim; idx++ {
			pat := localExcitationPattern(idx, wires, n)
			if pat != doubleExcitationLo && pat != doubleExcitationHi {
				buf[idx] *= phase
			}
		}
	}

	for i := range lo {
		v0, v1 := buf[lo[i]], buf[hi[i]]
		buf[lo[i]] = c*v0 - s*v1
		buf[hi[i]] = s*v0 + c*v1
	}

	return nil
}

// ApplyDoubleExcitation rotates between the |0011> and |1100> local basis
// states of the 4-wire operand, leaving every other basis state unchanged.
func ApplyDoubleExcitation[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	if err := validate(n, wires, 4); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	if inverse {
		theta = -theta
	}

	return applyDoubleExcitationRotation(buf, n, wires, theta, 0)
}

// doubleExcitationSigned applies DoubleExcitation plus an e^{sign*i*theta/2}
// global phase on every basis state other than |0011>,|1100>.
func doubleExcitationSigned[T Complex](buf []T, n int, wires []int, inverse bool, theta float64, sign float64) error {
	if err := validate(n, wires, 4); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	if inverse {
		theta = -theta
	}

	return applyDoubleExcitationRotation(buf, n, wires, theta, cis[T](sign*theta/2))
}

// ApplyDoubleExcitationMinus applies DoubleExcitation with an additional
// e^{-i*theta/2} global phase on every untouched basis state.
func ApplyDoubleExcitationMinus[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	return doubleExcitationSigned[T](buf, n, wires, inverse, theta, -1)
}

// ApplyDoubleExcitationPlus applies DoubleExcitation with an additional
// e^{+i*theta/2} global phase on every untouched basis state.
func ApplyDoubleExcitationPlus[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	return doubleExcitationSigned[T](buf, n, wires, inverse, theta, 1)
}
