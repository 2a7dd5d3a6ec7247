package simd

import "github.com/cwbudde/qsim-core/internal/backend"

var simdGates = map[backend.GateOp]bool{
	backend.PauliX:   true,
	backend.PauliZ:   true,
	backend.Hadamard: true,
	backend.RZ:       true,
	backend.IsingZZ:  true,
}

// AVX2Descriptor declares the AVX2-tagged backend's capabilities, required
// at Aligned256 or stricter.
func AVX2Descriptor() backend.Descriptor {
	return backend.Descriptor{
		Tag:  backend.AVX2,
		Name: "avx2",

		RequiredAlignment: map[int]int{4: 32, 8: 32},
		PackedBytes:       map[int]int{4: 32, 8: 32},

		Gates:      simdGates,
		Generators: map[backend.GeneratorOp]bool{},
		Matrices:   map[backend.MatrixOp]bool{},
	}
}

// AVX512Descriptor declares the AVX512-tagged backend's capabilities,
// required at Aligned512.
func AVX512Descriptor() backend.Descriptor {
	return backend.Descriptor{
		Tag:  backend.AVX512,
		Name: "avx512",

		RequiredAlignment: map[int]int{4: 64, 8: 64},
		PackedBytes:       map[int]int{4: 64, 8: 64},

		Gates:      simdGates,
		Generators: map[backend.GeneratorOp]bool{},
		Matrices:   map[backend.MatrixOp]bool{},
	}
}
