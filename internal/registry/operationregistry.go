package registry

import (
	"sync"

	"github.com/cwbudde/qsim-core/internal/backend"
	"github.com/cwbudde/qsim-core/internal/cpu"
)

var (
	gateOnce      sync.Once
	generatorOnce sync.Once
	matrixOnce    sync.Once

	gateRegistry      *Registry[backend.GateOp]
	generatorRegistry *Registry[backend.GeneratorOp]
	matrixRegistry    *Registry[backend.MatrixOp]
)

func allGateOps() []backend.GateOp {
	ops := make([]backend.GateOp, backend.NumGateOps())
	for i := range ops {
		ops[i] = backend.GateOp(i)
	}

	return ops
}

func allGeneratorOps() []backend.GeneratorOp {
	ops := make([]backend.GeneratorOp, backend.NumGeneratorOps())
	for i := range ops {
		ops[i] = backend.GeneratorOp(i)
	}

	return ops
}

func allMatrixOps() []backend.MatrixOp {
	ops := make([]backend.MatrixOp, backend.NumMatrixOps())
	for i := range ops {
		ops[i] = backend.MatrixOp(i)
	}

	return ops
}

// unbounded is the [0, ∞) interval every default LM fallback is installed
// over.
var unbounded = Interval{Lo: 0, Hi: -1}

// GateOperationKernelMap returns the process-wide singleton GateOp
// registry, installing the default policy (LM at priority 0 everywhere,
// plus CPU-feature-gated SIMD overrides) on first access.
func GateOperationKernelMap() *Registry[backend.GateOp] {
	gateOnce.Do(func() {
		gateRegistry = New(allGateOps())
		installGateDefaults(gateRegistry)
	})

	return gateRegistry
}

// GeneratorOperationKernelMap returns the process-wide singleton
// GeneratorOp registry, installing the default LM-everywhere policy on
// first access.
func GeneratorOperationKernelMap() *Registry[backend.GeneratorOp] {
	generatorOnce.Do(func() {
		generatorRegistry = New(allGeneratorOps())
		installGeneratorDefaults(generatorRegistry)
	})

	return generatorRegistry
}

// MatrixOperationKernelMap returns the process-wide singleton MatrixOp
// registry, installing the default policy (LM at priority 0, with PI and
// ParallelLM empirical overrides) on first access.
func MatrixOperationKernelMap() *Registry[backend.MatrixOp] {
	matrixOnce.Do(func() {
		matrixRegistry = New(allMatrixOps())
		installMatrixDefaults(matrixRegistry)
	})

	return matrixRegistry
}

func installGateDefaults(r *Registry[backend.GateOp]) {
	for _, op := range allGateOps() {
		mustAssignDefault(r, op, unbounded, backend.LM)
	}

	// Empirically, AVX512 outperforms LM on PauliX/PauliZ/Hadamard (swap,
	// sign-flip and sum/difference kernels with no branchy index math) from
	// n=3 upward, but only on Aligned512 buffers; see simd package's scope
	// note in DESIGN.md for why this is the only gate family with a SIMD
	// override. The AVX512 override sits at priority 4, so a priority-5
	// Assign over the same interval does not conflict with it.
	if cpu.Detect().HasAVX512 {
		simdOps := []backend.GateOp{backend.PauliX, backend.PauliZ, backend.Hadamard}
		highQubit := Interval{Lo: 3, Hi: -1}

		for _, op := range simdOps {
			_ = r.Assign(op, backend.SingleThread, backend.Aligned512, 4, highQubit, backend.AVX512)
			_ = r.Assign(op, backend.MultiThread, backend.Aligned512, 4, highQubit, backend.AVX512)
		}
	} else if cpu.Detect().HasAVX2 {
		simdOps := []backend.GateOp{backend.PauliX, backend.PauliZ, backend.Hadamard}
		highQubit := Interval{Lo: 4, Hi: -1}

		for _, op := range simdOps {
			_ = r.Assign(op, backend.SingleThread, backend.Aligned256, 5, highQubit, backend.AVX2)
			_ = r.Assign(op, backend.MultiThread, backend.Aligned256, 5, highQubit, backend.AVX2)
		}
	}
}

func installGeneratorDefaults(r *Registry[backend.GeneratorOp]) {
	for _, op := range allGeneratorOps() {
		mustAssignDefault(r, op, unbounded, backend.LM)
	}
}

func installMatrixDefaults(r *Registry[backend.MatrixOp]) {
	for _, op := range allMatrixOps() {
		mustAssignDefault(r, op, unbounded, backend.LM)
	}

	// PI's upfront GateIndices allocation only pays off once the dense
	// operand is reused across enough outer blocks; below n=6 the
	// allocation dominates.
	wide := Interval{Lo: 6, Hi: -1}
	for _, op := range allMatrixOps() {
		_ = r.AssignAllMemoryModel(op, backend.SingleThread, wide, backend.PI)
	}

	large := Interval{Lo: 12, Hi: -1}
	for _, op := range allMatrixOps() {
		_ = r.AssignAllMemoryModel(op, backend.MultiThread, large, backend.ParallelLM)
	}
}

// mustAssignDefault panics if the priority-0 default fails: a conflict or
// disallowed-kernel error here is a registry bug, not a caller error, since
// this runs once against an empty table with LM (which every memory model
// allows).
func mustAssignDefault[Op comparable](r *Registry[Op], op Op, interval Interval, kernel backend.Tag) {
	if err := r.AssignDefault(op, interval, kernel); err != nil {
		panic("registry: default assignment failed: " + err.Error())
	}
}
