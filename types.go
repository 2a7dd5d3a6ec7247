// Package qsim is a CPU-side statevector simulation core for gate-based
// quantum circuits: it evolves a dense complex amplitude array of length
// 2^n under unitary gates and, for gates that have one, applies their
// generator for parameter-shift/adjoint differentiation.
//
// The package re-exports the stable type vocabulary (gate/generator/matrix
// operation tags, backend tags, the dispatch registry) and the reference
// LM-backed apply_<GateName> entry points described in the design notes.
// Higher-throughput backends (PI, ParallelLM, and the SIMD-tagged variants)
// live under internal/kernel. PI and ParallelLM are reached only through
// the dispatch registry's Tag resolution plus the matrix-op entry points in
// matrix.go, which is the one surface where an external caller's dispatch
// choice actually changes which backend runs; no entry point in this
// package calls the SIMD-tagged kernels.
package qsim

import "github.com/cwbudde/qsim-core/internal/backend"

// Complex is the precision constraint every entry point in this package is
// generic over.
type Complex = backend.Complex

// GateOp enumerates the supported unitary gate operations.
type GateOp = backend.GateOp

// GeneratorOp enumerates the gates for which a generator kernel exists.
type GeneratorOp = backend.GeneratorOp

// MatrixOp enumerates the three dense-matrix operand arities.
type MatrixOp = backend.MatrixOp

// Tag identifies a concrete kernel backend.
type Tag = backend.Tag

// Threading is the caller's requested threading policy.
type Threading = backend.Threading

// CPUMemoryModel is the buffer's declared alignment class.
type CPUMemoryModel = backend.CPUMemoryModel

// Key is the packed (threading, memory-model) dispatch key.
type Key = backend.Key

// Re-exported GateOp values.
const (
	Identity              = backend.Identity
	PauliX                = backend.PauliX
	PauliY                = backend.PauliY
	PauliZ                = backend.PauliZ
	Hadamard              = backend.Hadamard
	S                     = backend.S
	T                     = backend.T
	RX                    = backend.RX
	RY                    = backend.RY
	RZ                    = backend.RZ
	PhaseShift            = backend.PhaseShift
	Rot                   = backend.Rot
	CNOT                  = backend.CNOT
	CY                    = backend.CY
	CZ                    = backend.CZ
	SWAP                  = backend.SWAP
	ControlledPhaseShift  = backend.ControlledPhaseShift
	CRX                   = backend.CRX
	CRY                   = backend.CRY
	CRZ                   = backend.CRZ
	CRot                  = backend.CRot
	IsingXX               = backend.IsingXX
	IsingXY               = backend.IsingXY
	IsingYY               = backend.IsingYY
	IsingZZ               = backend.IsingZZ
	SingleExcitation      = backend.SingleExcitation
	SingleExcitationMinus = backend.SingleExcitationMinus
	SingleExcitationPlus  = backend.SingleExcitationPlus
	DoubleExcitation      = backend.DoubleExcitation
	DoubleExcitationMinus = backend.DoubleExcitationMinus
	DoubleExcitationPlus  = backend.DoubleExcitationPlus
	Toffoli               = backend.Toffoli
	CSWAP                 = backend.CSWAP
	MultiRZ               = backend.MultiRZ
)

// Re-exported MatrixOp values.
const (
	SingleQubitOp = backend.SingleQubitOp
	TwoQubitOp    = backend.TwoQubitOp
	MultiQubitOp  = backend.MultiQubitOp
)

// Re-exported BackendTag values.
const (
	LM         = backend.LM
	PI         = backend.PI
	AVX2       = backend.AVX2
	AVX512     = backend.AVX512
	ParallelLM = backend.ParallelLM
)

// Re-exported Threading values.
const (
	SingleThread = backend.SingleThread
	MultiThread  = backend.MultiThread
	AllThreading = backend.AllThreading
)

// Re-exported CPUMemoryModel values.
const (
	Unaligned      = backend.Unaligned
	Aligned256     = backend.Aligned256
	Aligned512     = backend.Aligned512
	AllMemoryModel = backend.AllMemoryModel
)

// HasGenerator reports whether GateOp g has a corresponding generator.
func HasGenerator(g GateOp) bool { return backend.HasGenerator(g) }

// Arity returns the number of wires GateOp g acts on, or -1 for MultiRZ.
func Arity(g GateOp) int { return backend.Arity(g) }
