package pi

import "github.com/cwbudde/qsim-core/internal/backend"

// Descriptor declares the PI backend's capabilities. Unlike lm, pi only
// implements the three generic matrix operations: the precomputed-index
// approach pays off on dense-matrix gates applied repeatedly (e.g. inside a
// variational circuit's inner loop), not on the named gates lm already
// covers with zero-allocation closed forms. The registry's default
// assignment leaves every named GateOp on lm and only prefers pi for
// MatrixOp once qubit counts justify the allocation; see DESIGN.md.
func Descriptor() backend.Descriptor {
	return backend.Descriptor{
		Tag:  backend.PI,
		Name: "pi",

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
