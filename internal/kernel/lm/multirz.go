package lm

import "github.com/cwbudde/qsim-core/internal/bitmask"

// ApplyMultiRZ multiplies every amplitude by e^{-i*theta/2} if the parity
// (XOR of the operand wires' bits) is 0, or e^{+i*theta/2} if it is 1 —
// the diagonal generalization of RZ/IsingZZ to an arbitrary wire count.
func ApplyMultiRZ[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	if err := validate(n, wires, -1); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	mask := bitmask.ParityMask(wires, n)
	s0, s1 := rzShift[T](theta, inverse)

	dim := 1 << n
	for idx := 0; idx < dim; idx++ {
		if bitmask.Popcount1(uint64(idx)&mask)&1 == 0 {
			buf[idx] *= s0
		} else {
			buf[idx] *= s1
		}
	}

	return nil
}
