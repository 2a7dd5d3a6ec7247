package parallel

import "github.com/cwbudde/qsim-core/internal/backend"

// Descriptor declares ParallelLM's capabilities. Like pi, it only
// implements the three generic matrix operations: fork/join overhead only
// pays for itself on operands large enough to be worth splitting, which in
// practice means dense multi-qubit matrices, not single-amplitude-pair
// named gates.
func Descriptor() backend.Descriptor {
	return backend.Descriptor{
		Tag:  backend.ParallelLM,
		Name: "parallel-lm",

		RequiredAlignment: map[int]int{4: 1, 8: 1},
		PackedBytes:       map[int]int{4: 8, 8: 16},

		Gates:      map[backend.GateOp]bool{},
		Generators: map[backend.GeneratorOp]bool{},
		Matrices:   map[backend.MatrixOp]bool{
			backend.SingleQubitOp: true,
			backend.TwoQubitOp:    true,
			backend.MultiQubitOp:  true,
		},
	}
}
