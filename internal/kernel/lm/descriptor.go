package lm

import "github.com/cwbudde/qsim-core/internal/backend"

// Descriptor declares the LM backend's capabilities: every GateOp,
// GeneratorOp and MatrixOp, at no required alignment, since the
// memoryless index algebra never reads more than one cache line ahead of
// where it happens to land.
func Descriptor() backend.Descriptor {
	gates := make(map[backend.GateOp]bool, backend.NumGateOps())
	for g := backend.GateOp(0); int(g) < backend.NumGateOps(); g++ {
		gates[g] = true
	}

	generators := make(map[backend.GeneratorOp]bool, backend.NumGeneratorOps())
	for g := backend.GeneratorOp(0); int(g) < backend.NumGeneratorOps(); g++ {
		generators[g] = true
	}

	matrices := make(map[backend.MatrixOp]bool, backend.NumMatrixOps())
	for m := backend.MatrixOp(0); int(m) < backend.NumMatrixOps(); m++ {
		matrices[m] = true
	}

	return backend.Descriptor{
		Tag:  backend.LM,
		Name: "lm",

		RequiredAlignment: map[int]int{4: 1, 8: 1},
		PackedBytes:       map[int]int{4: 8, 8: 16},

		Gates:      gates,
		Generators: generators,
		Matrices:   matrices,
	}
}
