package lm

import "github.com/cwbudde/qsim-core/internal/bitmask"

// Generator kernels mutate buf in place to G|psi> (up to the returned real
// scale factor) rather than exp(-i*theta*G)|psi>, for parameter-shift and
// adjoint-differentiation callers that only need the generator's action.
// Every generator below follows the convention established by PauliGenerator
// and GeneratorIsingZZ: on the support where the generator vanishes, the
// corresponding amplitudes are zeroed (not left untouched), since the
// generator's matrix truly has a zero row/column there.

// pauliGenerator dispatches RX/RY/RZ's generator to the corresponding Pauli
// kernel, scaled by -0.5 (d/dtheta of exp(-i*theta/2*P) at theta=0 is
// -i/2*P; apply_generator returns the real scale with P's action folded
// into the in-place Pauli kernel and the imaginary unit dropped by
// convention, matching IsingXX/CRX's -0.5).
func pauliGenerator[T Complex](buf []T, n int, wires []int, pauli func([]T, int, []int, bool) error) (float64, error) {
	if err := pauli(buf, n, wires, false); err != nil {
		return 0, err
	}

	return -0.5, nil
}

// GeneratorRX returns PauliX's action on wires[0], scaled by -0.5.
func GeneratorRX[T Complex](buf []T, n int, wires []int) (float64, error) {
	return pauliGenerator(buf, n, wires, ApplyPauliX[T])
}

// GeneratorRY returns PauliY's action on wires[0], scaled by -0.5.
func GeneratorRY[T Complex](buf []T, n int, wires []int) (float64, error) {
	return pauliGenerator(buf, n, wires, ApplyPauliY[T])
}

// GeneratorRZ returns PauliZ's action on wires[0], scaled by -0.5.
func GeneratorRZ[T Complex](buf []T, n int, wires []int) (float64, error) {
	return pauliGenerator(buf, n, wires, ApplyPauliZ[T])
}

// GeneratorPhaseShift zeroes i0 (the generator |1><1| vanishes there) and
// leaves i1 unchanged, returning +1.0.
func GeneratorPhaseShift[T Complex](buf []T, n int, wires []int) (float64, error) {
	if err := validate(n, wires, 1); err != nil {
		return 0, err
	}

	if err := validateBuffer(buf, n); err != nil {
		return 0, err
	}

	r := bitmask.RevWire(wires[0], n)
	p := bitmask.RevWireParity1(r)

	for k := 0; k < 1<<(n-1); k++ {
		i0, _ := p.Indices(k, r)
		buf[i0] = 0
	}

	return 1.0, nil
}

// GeneratorControlledPhaseShift zeroes every amplitude except i11 (the
// generator |11><11| vanishes everywhere else), returning +1.0.
func GeneratorControlledPhaseShift[T Complex](buf []T, n int, wires []int) (float64, error) {
	p, r0, r1, err := twoWireSetup(buf, n, wires)
	if err != nil {
		return 0, err
	}

	for k := 0; k < 1<<(n-2); k++ {
		i00, i01, i10, _ := p.Indices(k, r0, r1)
		buf[i00], buf[i01], buf[i10] = 0, 0, 0
	}

	return 1.0, nil
}

// controlledPauliGenerator zeroes the control-inactive half of the
// statevector and applies pauli to the control-active half (the generator
// |1><1|⊗P vanishes outside the control-active subspace), returning -0.5.
func controlledPauliGenerator[T Complex](buf []T, n int, control, target int, pauliOnPair func(v0, v1 T) (T, T)) (float64, error) {
	r0, r1, controlIsR1 := controlPair(n, control, target)
	p := bitmask.RevWireParity2(r0, r1)

	for k := 0; k < 1<<(n-2); k++ {
		i00, i01, i10, i11 := p.Indices(k, r0, r1)

		var inactive0, inactive1, idx0, idx1 int
		if controlIsR1 {
			inactive0, inactive1, idx0, idx1 = i00, i01, i10, i11
		} else {
			inactive0, inactive1, idx0, idx1 = i00, i10, i01, i11
		}

		buf[inactive0], buf[inactive1] = 0, 0

		v0, v1 := pauliOnPair(buf[idx0], buf[idx1])
		buf[idx0], buf[idx1] = v0, v1
	}

	return -0.5, nil
}

// GeneratorCRX applies PauliX's 2x2 action within the control-active
// subspace and zeroes the control-inactive half, returning -0.5.
func GeneratorCRX[T Complex](buf []T, n int, wires []int) (float64, error) {
	if err := validate(n, wires, 2); err != nil {
		return 0, err
	}

	if err := validateBuffer(buf, n); err != nil {
		return 0, err
	}

	return controlledPauliGenerator(buf, n, wires[0], wires[1], func(v0, v1 T) (T, T) {
		return v1, v0
	})
}

// GeneratorCRY applies PauliY's 2x2 action within the control-active
// subspace and zeroes the control-inactive half, returning -0.5.
func GeneratorCRY[T Complex](buf []T, n int, wires []int) (float64, error) {
	if err := validate(n, wires, 2); err != nil {
		return 0, err
	}

	if err := validateBuffer(buf, n); err != nil {
		return 0, err
	}

	negI := T(complex(0, -1))
	posI := T(complex(0, 1))

	return controlledPauliGenerator(buf, n, wires[0], wires[1], func(v0, v1 T) (T, T) {
		return negI * v1, posI * v0
	})
}

// GeneratorCRZ applies PauliZ's 2x2 action within the control-active
// subspace and zeroes the control-inactive half, returning -0.5.
func GeneratorCRZ[T Complex](buf []T, n int, wires []int) (float64, error) {
	if err := validate(n, wires, 2); err != nil {
		return 0, err
	}

	if err := validateBuffer(buf, n); err != nil {
		return 0, err
	}

	return controlledPauliGenerator(buf, n, wires[0], wires[1], func(v0, v1 T) (T, T) {
		return v0, -v1
	})
}

// GeneratorIsingXX swaps (i00,i11) and (i01,i10), returning -0.5: the
// generator is X⊗X.
func GeneratorIsingXX[T Complex](buf []T, n int, wires []int) (float64, error) {
	p, r0, r1, err := twoWireSetup(buf, n, wires)
	if err != nil {
		return 0, err
	}

	for k := 0; k < 1<<(n-2); k++ {
		i00, i01, i10, i11 := p.Indices(k, r0, r1)
		buf[i00], buf[i11] = buf[i11], buf[i00]
		buf[i01], buf[i10] = buf[i10], buf[i01]
	}

	return -0.5, nil
}

// GeneratorIsingYY implements the generator Y⊗Y: (i00,i11) swap with a sign
// flip on both, (i01,i10) swap unchanged, returning -0.5.
func GeneratorIsingYY[T Complex](buf []T, n int, wires []int) (float64, error) {
	p, r0, r1, err := twoWireSetup(buf, n, wires)
	if err != nil {
		return 0, err
	}

	for k := 0; k < 1<<(n-2); k++ {
		i00, i01, i10, i11 := p.Indices(k, r0, r1)
		v00, v11 := buf[i00], buf[i11]
		buf[i00], buf[i11] = -v11, -v00
		buf[i01], buf[i10] = buf[i10], buf[i01]
	}

	return -0.5, nil
}

// GeneratorIsingZZ negates i01 and i10, returning -0.5: the generator is
// Z⊗Z.
func GeneratorIsingZZ[T Complex](buf []T, n int, wires []int) (float64, error) {
	p, r0, r1, err := twoWireSetup(buf, n, wires)
	if err != nil {
		return 0, err
	}

	for k := 0; k < 1<<(n-2); k++ {
		_, i01, i10, _ := p.Indices(k, r0, r1)
		buf[i01] = -buf[i01]
		buf[i10] = -buf[i10]
	}

	return -0.5, nil
}

// GeneratorIsingXY zeroes (i00,i11) and swaps (i01,i10) (PauliX's action
// on the one-excitation subspace), returning +0.5: on that subspace
// ApplyIsingXY is exp(+i*theta/2*X), the opposite sign from XX/YY/ZZ's
// exp(-i*theta/2*P⊗P); see the design notes' open-question resolution.
func GeneratorIsingXY[T Complex](buf []T, n int, wires []int) (float64, error) {
	p, r0, r1, err := twoWireSetup(buf, n, wires)
	if err != nil {
		return 0, err
	}

	for k := 0; k < 1<<(n-2); k++ {
		i00, i01, i10, i11 := p.Indices(k, r0, r1)
		buf[i00], buf[i11] = 0, 0
		buf[i01], buf[i10] = buf[i10], buf[i01]
	}

	return 0.5, nil
}

// singleExcitationGenerator zeroes (i00,i11) and applies PauliY's action to
// (i01,i10), returning -0.5: the generator on the one-excitation subspace
// is Y, and it vanishes on |00>,|11>.
func singleExcitationGenerator[T Complex](buf []T, n int, wires []int) (float64, error) {
	p, r0, r1, err := twoWireSetup(buf, n, wires)
	if err != nil {
		return 0, err
	}

	negI := T(complex(0, -1))
	posI := T(complex(0, 1))

	for k := 0; k < 1<<(n-2); k++ {
		i00, i01, i10, i11 := p.Indices(k, r0, r1)
		buf[i00], buf[i11] = 0, 0

		v01, v10 := buf[i01], buf[i10]
		buf[i01] = negI * v10
		buf[i10] = posI * v01
	}

	return -0.5, nil
}

// GeneratorSingleExcitation is the generator shared by SingleExcitation,
// SingleExcitationMinus and SingleExcitationPlus: they differ only in the
// global phase applied by the gate kernel, which the generator (a first
// derivative at theta=0) does not see.
func GeneratorSingleExcitation[T Complex](buf []T, n int, wires []int) (float64, error) {
	return singleExcitationGenerator[T](buf, n, wires)
}

// GeneratorSingleExcitationMinus is identical to GeneratorSingleExcitation;
// see its doc comment.
func GeneratorSingleExcitationMinus[T Complex](buf []T, n int, wires []int) (float64, error) {
	return singleExcitationGenerator[T](buf, n, wires)
}

// GeneratorSingleExcitationPlus is identical to GeneratorSingleExcitation;
// see its doc comment.
func GeneratorSingleExcitationPlus[T Complex](buf []T, n int, wires []int) (float64, error) {
	return singleExcitationGenerator[T](buf, n, wires)
}

// doubleExcitationGenerator zeroes every basis state except the |0011> and
// |1100> pair and applies PauliY's action across that pair, returning -0.5.
func doubleExcitationGenerator[T Complex](buf []T, n int, wires []int) (float64, error) {
	if err := validate(n, wires, 4); err != nil {
		return 0, err
	}

	if err := validateBuffer(buf, n); err != nil {
		return 0, err
	}

	lo, hi := doubleExcitationBases(wires, n)

	dim := 1 << n
	for idx := 0; idx < dim; idx++ {
		pat := localExcitationPattern(idx, wires, n)
		if pat != doubleExcitationLo && pat != doubleExcitationHi {
			buf[idx] = 0
		}
	}

	negI := T(complex(0, -1))
	posI := T(complex(0, 1))

	for i := range lo {
		v0, v1 := buf[lo[i]], buf[hi[i]]
		buf[lo[i]] = negI * v1
		buf[hi[i]] = posI * v0
	}

	return -0.5, nil
}

// GeneratorDoubleExcitation is the generator shared by DoubleExcitation,
// DoubleExcitationMinus and DoubleExcitationPlus; see
// GeneratorSingleExcitation's doc comment for why the variants coincide.
func GeneratorDoubleExcitation[T Complex](buf []T, n int, wires []int) (float64, error) {
	return doubleExcitationGenerator[T](buf, n, wires)
}

// GeneratorDoubleExcitationMinus is identical to GeneratorDoubleExcitation.
func GeneratorDoubleExcitationMinus[T Complex](buf []T, n int, wires []int) (float64, error) {
	return doubleExcitationGenerator[T](buf, n, wires)
}

// GeneratorDoubleExcitationPlus is identical to GeneratorDoubleExcitation.
func GeneratorDoubleExcitationPlus[T Complex](buf []T, n int, wires []int) (float64, error) {
	return doubleExcitationGenerator[T](buf, n, wires)
}

// GeneratorMultiRZ negates every amplitude whose operand-wire parity is
// odd, returning -0.5: the generator is Z^(⊗k) restricted to the operand
// wires.
func GeneratorMultiRZ[T Complex](buf []T, n int, wires []int) (float64, error) {
	if err := validate(n, wires, -1); err != nil {
		return 0, err
	}

	if err := validateBuffer(buf, n); err != nil {
		return 0, err
	}

	mask := bitmask.ParityMask(wires, n)

	dim := 1 << n
	for idx := 0; idx < dim; idx++ {
		if bitmask.Popcount1(uint64(idx)&mask)&1 == 1 {
			buf[idx] = -buf[idx]
		}
	}

	return -0.5, nil
}
