package lm

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/qsim-core/internal/bitmask"
)

const invSqrt2 = 0.7071067811865476

// hadamardMatrix returns the (self-adjoint) Hadamard operator.
func hadamardMatrix[T Complex]() [4]T {
	h := T(complex(invSqrt2, 0))
	return [4]T{h, h, h, -h}
}

// ApplyHadamard applies H = (1/sqrt2)[[1,1],[1,-1]] via the generic
// single-qubit matrix kernel; H is self-adjoint so inverse is a no-op
// distinction.
func ApplyHadamard[T Complex](buf []T, n int, wires []int, inverse bool) error {
	return ApplySingleQubitOp(buf, n, hadamardMatrix[T](), wires, inverse)
}

// ApplyS applies diag(1, i).
func ApplyS[T Complex](buf []T, n int, wires []int, inverse bool) error {
	one := T(complex(1, 0))
	i := T(complex(0, 1))
	m := [4]T{one, 0, 0, i}

	return ApplySingleQubitOp(buf, n, m, wires, inverse)
}

// ApplyT applies diag(1, e^{i*pi/4}).
func ApplyT[T Complex](buf []T, n int, wires []int, inverse bool) error {
	one := T(complex(1, 0))
	m := [4]T{one, 0, 0, cis[T](math.Pi / 4)}

	return ApplySingleQubitOp(buf, n, m, wires, inverse)
}

// rxMatrix returns [[cos(t/2), -i*sin(t/2)], [-i*sin(t/2), cos(t/2)]].
func rxMatrix[T Complex](theta float64) [4]T {
	c := T(complex(math.Cos(theta/2), 0))
	s := T(complex(0, -math.Sin(theta/2)))

	return [4]T{c, s, s, c}
}

// ApplyRX applies RX(theta); inverse negates theta.
func ApplyRX[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	if inverse {
		theta = -theta
	}

	return ApplySingleQubitOp(buf, n, rxMatrix[T](theta), wires, false)
}

// ryMatrix returns [[cos(t/2), -sin(t/2)], [sin(t/2), cos(t/2)]].
func ryMatrix[T Complex](theta float64) [4]T {
	c := T(complex(math.Cos(theta/2), 0))
	s := T(complex(math.Sin(theta/2), 0))

	return [4]T{c, -s, s, c}
}

// ApplyRY applies RY(theta); inverse negates theta.
func ApplyRY[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	if inverse {
		theta = -theta
	}

	return ApplySingleQubitOp(buf, n, ryMatrix[T](theta), wires, false)
}

// rzShift returns the two diagonal factors {e^{-i*theta/2}, e^{+i*theta/2}}
// used by every RZ-family diagonal kernel, conjugated when inverse is set.
func rzShift[T Complex](theta float64, inverse bool) (s0, s1 T) {
	if inverse {
		theta = -theta
	}

	return cis[T](-theta / 2), cis[T](theta / 2)
}

// ApplyRZ multiplies amplitude i0 by e^{-i*theta/2} and i1 by e^{+i*theta/2}.
func ApplyRZ[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	if err := validate(n, wires, 1); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	r := bitmask.RevWire(wires[0], n)
	p := bitmask.RevWireParity1(r)
	s0, s1 := rzShift[T](theta, inverse)

	for k := 0; k < 1<<(n-1); k++ {
		i0, i1 := p.Indices(k, r)
		buf[i0] *= s0
		buf[i1] *= s1
	}

	return nil
}

// ApplyPhaseShift multiplies i1 by e^{i*phi}, leaving i0 unchanged.
func ApplyPhaseShift[T Complex](buf []T, n int, wires []int, inverse bool, phi float64) error {
	if err := validate(n, wires, 1); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	if inverse {
		phi = -phi
	}

	r := bitmask.RevWire(wires[0], n)
	p := bitmask.RevWireParity1(r)
	shift := cis[T](phi)

	for k := 0; k < 1<<(n-1); k++ {
		_, i1 := p.Indices(k, r)
		buf[i1] *= shift
	}

	return nil
}

// rotMatrix builds the composed Z-Y-Z rotation getRot(phi,theta,omega).
// When inverse, the caller must have already negated/reordered to
// (-omega,-theta,-phi); this function is never handed inverse directly.
func rotMatrix[T Complex](phi, theta, omega float64) [4]T {
	c := math.Cos(theta / 2)
	s := math.Sin(theta / 2)

	m00 := T(cmplx.Exp(complex(0, -(phi+omega)/2))) * T(complex(c, 0))
	m01 := -T(cmplx.Exp(complex(0, (phi-omega)/2))) * T(complex(s, 0))
	m10 := T(cmplx.Exp(complex(0, -(phi-omega)/2))) * T(complex(s, 0))
	m11 := T(cmplx.Exp(complex(0, (phi+omega)/2))) * T(complex(c, 0))

	return [4]T{m00, m01, m10, m11}
}

// ApplyRot applies the composed rotation getRot(phi,theta,omega); when
// inverse, the matrix is built from (-omega,-theta,-phi), the adjoint of
// the three composed single-axis rotations.
func ApplyRot[T Complex](buf []T, n int, wires []int, inverse bool, phi, theta, omega float64) error {
	if inverse {
		phi, theta, omega = -omega, -theta, -phi
	}

	return ApplySingleQubitOp(buf, n, rotMatrix[T](phi, theta, omega), wires, false)
}

// applyControlledMatrix1 applies a 2x2 matrix to (target) only within the
// (control=1) subspace, leaving the rest of the statevector untouched.
func applyControlledMatrix1[T Complex](buf []T, n, control, target int, m [4]T, inverse bool) error {
	r0, r1, controlIsR1 := controlPair(n, control, target)
	p := bitmask.RevWireParity2(r0, r1)

	m00, m01, m10, m11 := m[0], m[1], m[2], m[3]
	if inverse {
		m00, m01, m10, m11 = conj(m00), conj(m10), conj(m01), conj(m11)
	}

	for k := 0; k < 1<<(n-2); k++ {
		idx0, idx1 := controlActiveIndices(p, k, r0, r1, controlIsR1)
		v0, v1 := buf[idx0], buf[idx1]
		buf[idx0] = m00*v0 + m01*v1
		buf[idx1] = m10*v0 + m11*v1
	}

	return nil
}

// ApplyCRX applies RX(theta) to wires[1] when wires[0] is set.
func ApplyCRX[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	if err := validate(n, wires, 2); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	return applyControlledMatrix1(buf, n, wires[0], wires[1], rxMatrix[T](theta), inverse)
}

// ApplyCRY applies RY(theta) to wires[1] when wires[0] is set.
func ApplyCRY[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	if err := validate(n, wires, 2); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	return applyControlledMatrix1(buf, n, wires[0], wires[1], ryMatrix[T](theta), inverse)
}

// ApplyCRZ multiplies the control-active/target=0 amplitude by
// e^{-i*theta/2} and control-active/target=1 by e^{+i*theta/2}.
func ApplyCRZ[T Complex](buf []T, n int, wires []int, inverse bool, theta float64) error {
	if err := validate(n, wires, 2); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	r0, r1, controlIsR1 := controlPair(n, wires[0], wires[1])
	p := bitmask.RevWireParity2(r0, r1)
	s0, s1 := rzShift[T](theta, inverse)

	for k := 0; k < 1<<(n-2); k++ {
		idx0, idx1 := controlActiveIndices(p, k, r0, r1, controlIsR1)
		buf[idx0] *= s0
		buf[idx1] *= s1
	}

	return nil
}

// ApplyCRot applies the composed Z-Y-Z rotation to wires[1] when wires[0]
// is set.
func ApplyCRot[T Complex](buf []T, n int, wires []int, inverse bool, phi, theta, omega float64) error {
	if err := validate(n, wires, 2); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	if inverse {
		phi, theta, omega = -omega, -theta, -phi
	}

	return applyControlledMatrix1(buf, n, wires[0], wires[1], rotMatrix[T](phi, theta, omega), false)
}

// ApplyControlledPhaseShift multiplies only the control=1,target=1
// amplitude (i11) by e^{i*phi}.
func ApplyControlledPhaseShift[T Complex](buf []T, n int, wires []int, inverse bool, phi float64) error {
	if err := validate(n, wires, 2); err != nil {
		return err
	}

	if err := validateBuffer(buf, n); err != nil {
		return err
	}

	if inverse {
		phi = -phi
	}

	r0, r1 := orderedRevWires(n, wires)
	p := bitmask.RevWireParity2(r0, r1)
	shift := cis[T](phi)

	for k := 0; k < 1<<(n-2); k++ {
		_, _, _, i11 := p.Indices(k, r0, r1)
		buf[i11] *= shift
	}

	return nil
}
