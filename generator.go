package qsim

import "github.com/cwbudde/qsim-core/internal/kernel/lm"

// ApplyGenerator<Name> entry points mutate buf in place to G|psi> and
// return the real scale factor such that exp(-i*theta*G) matches the
// corresponding gate's derivative convention at theta=0; see
// internal/kernel/lm/generators.go.

func ApplyGeneratorRX[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorRX(buf, n, wires)
}

func ApplyGeneratorRY[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorRY(buf, n, wires)
}

func ApplyGeneratorRZ[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorRZ(buf, n, wires)
}

func ApplyGeneratorPhaseShift[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorPhaseShift(buf, n, wires)
}

func ApplyGeneratorControlledPhaseShift[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorControlledPhaseShift(buf, n, wires)
}

func ApplyGeneratorCRX[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorCRX(buf, n, wires)
}

func ApplyGeneratorCRY[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorCRY(buf, n, wires)
}

func ApplyGeneratorCRZ[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorCRZ(buf, n, wires)
}

func ApplyGeneratorIsingXX[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorIsingXX(buf, n, wires)
}

func ApplyGeneratorIsingXY[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorIsingXY(buf, n, wires)
}

func ApplyGeneratorIsingYY[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorIsingYY(buf, n, wires)
}

func ApplyGeneratorIsingZZ[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorIsingZZ(buf, n, wires)
}

func ApplyGeneratorSingleExcitation[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorSingleExcitation(buf, n, wires)
}

func ApplyGeneratorSingleExcitationMinus[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorSingleExcitationMinus(buf, n, wires)
}

func ApplyGeneratorSingleExcitationPlus[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorSingleExcitationPlus(buf, n, wires)
}

func ApplyGeneratorDoubleExcitation[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorDoubleExcitation(buf, n, wires)
}

func ApplyGeneratorDoubleExcitationMinus[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorDoubleExcitationMinus(buf, n, wires)
}

func ApplyGeneratorDoubleExcitationPlus[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorDoubleExcitationPlus(buf, n, wires)
}

func ApplyGeneratorMultiRZ[C Complex](buf []C, n int, wires []int) (float64, error) {
	return lm.GeneratorMultiRZ(buf, n, wires)
}
