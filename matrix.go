package qsim

import (
	"github.com/cwbudde/qsim-core/internal/kernel/lm"
	"github.com/cwbudde/qsim-core/internal/kernel/parallel"
	"github.com/cwbudde/qsim-core/internal/kernel/pi"
	"github.com/cwbudde/qsim-core/internal/registry"
)

// resolveMatrixTag consults the MatrixOp registry for the backend that
// should run op at nQubits under the given dispatch key, falling back to
// LM if the lookup itself fails (NoKernelForQubitCount should not occur
// once the default policy has installed the universal LM fallback, but a
// caller who removed it entirely should still get a working kernel rather
// than a hard failure on the hot path).
func resolveMatrixTag(op MatrixOp, nQubits int, threading Threading, memory CPUMemoryModel) Tag {
	m, err := registry.MatrixOperationKernelMap().KernelMap(nQubits, threading, memory)
	if err != nil {
		return LM
	}

	return m[op]
}

// ApplySingleQubitOp applies a dense 2x2 matrix to wires[0], selecting the
// LM, PI or ParallelLM backend per the registry's resolved Tag for
// (threading, memory) at this qubit count.
func ApplySingleQubitOp[C Complex](buf []C, n int, m [4]C, wires []int, inverse bool, threading Threading, memory CPUMemoryModel) error {
	switch resolveMatrixTag(SingleQubitOp, n, threading, memory) {
	case PI:
		return pi.ApplySingleQubitOp(buf, n, m, wires, inverse)
	case ParallelLM:
		return parallel.ApplySingleQubitOp(buf, n, m, wires, inverse)
	default:
		return lm.ApplySingleQubitOp(buf, n, m, wires, inverse)
	}
}

// ApplyTwoQubitOp applies a dense 4x4 matrix to wires[0] (most significant)
// and wires[1], selecting a backend per the registry.
func ApplyTwoQubitOp[C Complex](buf []C, n int, m [16]C, wires []int, inverse bool, threading Threading, memory CPUMemoryModel) error {
	switch resolveMatrixTag(TwoQubitOp, n, threading, memory) {
	case PI:
		return pi.ApplyTwoQubitOp(buf, n, m, wires, inverse)
	case ParallelLM:
		return parallel.ApplyTwoQubitOp(buf, n, m, wires, inverse)
	default:
		return lm.ApplyTwoQubitOp(buf, n, m, wires, inverse)
	}
}

// ApplyMultiQubitOp applies a dense 2^k x 2^k matrix to wires, selecting a
// backend per the registry.
func ApplyMultiQubitOp[C Complex](buf []C, n int, matrix []C, wires []int, inverse bool, threading Threading, memory CPUMemoryModel) error {
	switch resolveMatrixTag(MultiQubitOp, n, threading, memory) {
	case PI:
		return pi.ApplyMultiQubitOp(buf, n, matrix, wires, inverse)
	case ParallelLM:
		return parallel.ApplyMultiQubitOp(buf, n, matrix, wires, inverse)
	default:
		return lm.ApplyMultiQubitOp(buf, n, matrix, wires, inverse)
	}
}
