package lm

import (
	"github.com/cwbudde/qsim-core/internal/bitmask"
	"github.com/cwbudde/qsim-core/internal/kerr"
)

// ApplySingleQubitOp applies a dense 2x2 matrix (row-major: m[0]=M00,
// m[1]=M01, m[2]=M10, m[3]=M11) to wires[0]. When inverse is set, the
// conjugate transpose is applied without materializing it.
func ApplySingleQubitOp[T Complex](buf []T, n int, m [4]T, wires []int, inverse bool) error {
	if err := validate(n, wires, 1); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	r := bitmask.RevWire(wires[0], n)
	p := bitmask.RevWireParity1(r)

	m00, m01, m10, m11 := m[0], m[1], m[2], m[3]
	if inverse {
		m00, m01, m10, m11 = conj(m00), conj(m10), conj(m01), conj(m11)
	}

	for k := 0; k < 1<<(n-1); k++ {
		i0, i1 := p.Indices(k, r)
		v0, v1 := buf[i0], buf[i1]
		buf[i0] = m00*v0 + m01*v1
		buf[i1] = m10*v0 + m11*v1
	}

	return nil
}

// ApplyTwoQubitOp applies a dense 4x4 matrix (row-major, 16 entries) to
// wires[0] (most significant) and wires[1] (least significant).
func ApplyTwoQubitOp[T Complex](buf []T, n int, m [16]T, wires []int, inverse bool) error {
	if err := validate(n, wires, 2); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	r0, r1 := bitmask.RevWire(wires[0], n), bitmask.RevWire(wires[1], n)
	if r0 > r1 {
		r0, r1 = r1, r0
	}

	p := bitmask.RevWireParity2(r0, r1)

	// Column order must match wires[0]-most-significant convention: the
	// parity algebra treats r1 as the high bit of the local index, so when
	// wires[0] has the smaller reverse-wire (it sits at r0), permute
	// rows/cols of m to match.
	mm := m
	if bitmask.RevWire(wires[0], n) == r0 {
		mm = permuteTwoQubitForSwappedWires(m)
	}

	if inverse {
		mm = conjTranspose4(mm)
	}

	for k := 0; k < 1<<(n-2); k++ {
		i00, i01, i10, i11 := p.Indices(k, r0, r1)
		v00, v01, v10, v11 := buf[i00], buf[i01], buf[i10], buf[i11]

		buf[i00] = mm[0]*v00 + mm[1]*v01 + mm[2]*v10 + mm[3]*v11
		buf[i01] = mm[4]*v00 + mm[5]*v01 + mm[6]*v10 + mm[7]*v11
		buf[i10] = mm[8]*v00 + mm[9]*v01 + mm[10]*v10 + mm[11]*v11
		buf[i11] = mm[12]*v00 + mm[13]*v01 + mm[14]*v10 + mm[15]*v11
	}

	return nil
}

// permuteTwoQubitForSwappedWires reorders a 4x4 operator given in
// (wires[0],wires[1]) basis order into the (r0<r1) basis order the parity
// algebra requires, by swapping the two middle basis states (01 <-> 10).
func permuteTwoQubitForSwappedWires[T Complex](m [16]T) [16]T {
	perm := [4]int{0, 2, 1, 3}

	var out [16]T
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m[perm[i]*4+perm[j]]
		}
	}

	return out
}

func conjTranspose4[T Complex](m [16]T) [16]T {
	var out [16]T
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = conj(m[j*4+i])
		}
	}

	return out
}

// ApplyMultiQubitOp applies a dense 2^k x 2^k row-major matrix to the given
// wires. For each outer block it gathers the 2^k touched amplitudes into a
// scratch vector via the bit-swap index map, computes the matrix-vector
// product, and scatters the result back. inverse uses conj(matrix[j*dim+i])
// per the documented transpose-conjugate convention.
func ApplyMultiQubitOp[T Complex](buf []T, n int, matrix []T, wires []int, inverse bool) error {
	if err := validate(n, wires, len(wires)); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	k := len(wires)
	dim := 1 << k

	if len(matrix) != dim*dim {
		return kerr.ErrInvalidArgument
	}

	scratch := make([]T, dim)
	outerCount := 1 << (n - k)

	for blk := 0; blk < outerCount; blk++ {
		for inner := 0; inner < dim; inner++ {
			idx := bitmask.SwapBitIndex(blk, inner, wires, n)
			scratch[inner] = buf[idx]
		}

		for i := 0; i < dim; i++ {
			var sum T

			for j := 0; j < dim; j++ {
				var mij T
				if inverse {
					mij = conj(matrix[j*dim+i])
				} else {
					mij = matrix[i*dim+j]
				}

				sum += mij * scratch[j]
			}

			idx := bitmask.SwapBitIndex(blk, i, wires, n)
			buf[idx] = sum
		}
	}

	return nil
}
