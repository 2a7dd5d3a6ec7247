package qsim

import "github.com/cwbudde/qsim-core/internal/kernel/lm"

// The ApplyX entry points below are the reference LM-backed kernels: every
// GateOp is implemented by lm, so these are always available regardless of
// the registry's resolved Tag. A caller that has resolved a different Tag
// through KernelMap for a higher qubit count should call that backend's
// exported package directly (internal/kernel/pi, .../simd, .../parallel)
// instead of going through here — only the matrix-op entry points in
// matrix.go route through the registry, since PI and ParallelLM only
// implement the dense-matrix operations, never the named gates, and the
// SIMD-tagged backends implement only five named gates and no matrix ops.

func ApplyIdentity[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplySingleQubitOp(buf, n, [4]C{1, 0, 0, 1}, wires, inverse)
}

func ApplyPauliX[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplyPauliX(buf, n, wires, inverse)
}

func ApplyPauliY[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplyPauliY(buf, n, wires, inverse)
}

func ApplyPauliZ[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplyPauliZ(buf, n, wires, inverse)
}

func ApplyHadamard[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplyHadamard(buf, n, wires, inverse)
}

func ApplyS[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplyS(buf, n, wires, inverse)
}

func ApplyT[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplyT(buf, n, wires, inverse)
}

func ApplyRX[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyRX(buf, n, wires, inverse, theta)
}

func ApplyRY[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyRY(buf, n, wires, inverse, theta)
}

func ApplyRZ[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyRZ(buf, n, wires, inverse, theta)
}

func ApplyPhaseShift[C Complex](buf []C, n int, wires []int, inverse bool, phi float64) error {
	return lm.ApplyPhaseShift(buf, n, wires, inverse, phi)
}

func ApplyRot[C Complex](buf []C, n int, wires []int, inverse bool, phi, theta, omega float64) error {
	return lm.ApplyRot(buf, n, wires, inverse, phi, theta, omega)
}

func ApplyCNOT[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplyCNOT(buf, n, wires, inverse)
}

func ApplyCY[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplyCY(buf, n, wires, inverse)
}

func ApplyCZ[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplyCZ(buf, n, wires, inverse)
}

func ApplySWAP[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplySWAP(buf, n, wires, inverse)
}

func ApplyControlledPhaseShift[C Complex](buf []C, n int, wires []int, inverse bool, phi float64) error {
	return lm.ApplyControlledPhaseShift(buf, n, wires, inverse, phi)
}

func ApplyCRX[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyCRX(buf, n, wires, inverse, theta)
}

func ApplyCRY[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyCRY(buf, n, wires, inverse, theta)
}

func ApplyCRZ[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyCRZ(buf, n, wires, inverse, theta)
}

func ApplyCRot[C Complex](buf []C, n int, wires []int, inverse bool, phi, theta, omega float64) error {
	return lm.ApplyCRot(buf, n, wires, inverse, phi, theta, omega)
}

func ApplyIsingXX[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyIsingXX(buf, n, wires, inverse, theta)
}

func ApplyIsingXY[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyIsingXY(buf, n, wires, inverse, theta)
}

func ApplyIsingYY[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyIsingYY(buf, n, wires, inverse, theta)
}

func ApplyIsingZZ[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyIsingZZ(buf, n, wires, inverse, theta)
}

func ApplySingleExcitation[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplySingleExcitation(buf, n, wires, inverse, theta)
}

func ApplySingleExcitationMinus[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplySingleExcitationMinus(buf, n, wires, inverse, theta)
}

func ApplySingleExcitationPlus[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplySingleExcitationPlus(buf, n, wires, inverse, theta)
}

func ApplyDoubleExcitation[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyDoubleExcitation(buf, n, wires, inverse, theta)
}

func ApplyDoubleExcitationMinus[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyDoubleExcitationMinus(buf, n, wires, inverse, theta)
}

func ApplyDoubleExcitationPlus[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyDoubleExcitationPlus(buf, n, wires, inverse, theta)
}

func ApplyToffoli[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplyToffoli(buf, n, wires, inverse)
}

func ApplyCSWAP[C Complex](buf []C, n int, wires []int, inverse bool) error {
	return lm.ApplyCSWAP(buf, n, wires, inverse)
}

func ApplyMultiRZ[C Complex](buf []C, n int, wires []int, inverse bool, theta float64) error {
	return lm.ApplyMultiRZ(buf, n, wires, inverse, theta)
}
