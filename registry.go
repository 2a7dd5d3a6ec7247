package qsim

import "github.com/cwbudde/qsim-core/internal/registry"

// GateKernelMap is the operation_kernel_map::<GateOp>() singleton getter.
func GateKernelMap() *registry.Registry[GateOp] { return registry.GateOperationKernelMap() }

// GeneratorKernelMap is the operation_kernel_map::<GeneratorOp>() singleton
// getter.
func GeneratorKernelMap() *registry.Registry[GeneratorOp] {
	return registry.GeneratorOperationKernelMap()
}

// MatrixKernelMap is the operation_kernel_map::<MatrixOp>() singleton
// getter.
func MatrixKernelMap() *registry.Registry[MatrixOp] { return registry.MatrixOperationKernelMap() }

// Interval is a non-empty integer interval of qubit counts; Hi<0 means +Inf.
type Interval = registry.Interval

// AssignKernelForOp inserts a dispatch element at an explicit priority for
// one (threading, memory model) pair.
func AssignKernelForOp[Op comparable](r *registry.Registry[Op], op Op, threading Threading, memory CPUMemoryModel, priority uint32, interval Interval, kernel Tag) error {
	return r.Assign(op, threading, memory, priority, interval, kernel)
}

// AssignKernelForOpAllThreading is the priority-1 shorthand applying one
// binding to every Threading value for a fixed memory model.
func AssignKernelForOpAllThreading[Op comparable](r *registry.Registry[Op], op Op, memory CPUMemoryModel, interval Interval, kernel Tag) error {
	return r.AssignAllThreading(op, memory, interval, kernel)
}

// AssignKernelForOpAllMemoryModel is the priority-2 shorthand applying one
// binding to every CPUMemoryModel value for a fixed threading policy.
func AssignKernelForOpAllMemoryModel[Op comparable](r *registry.Registry[Op], op Op, threading Threading, interval Interval, kernel Tag) error {
	return r.AssignAllMemoryModel(op, threading, interval, kernel)
}

// RemoveKernelForOp erases every dispatch element at the exact given
// priority for (op, threading, memory).
func RemoveKernelForOp[Op comparable](r *registry.Registry[Op], op Op, threading Threading, memory CPUMemoryModel, priority uint32) error {
	return r.Remove(op, threading, memory, priority)
}

// KernelMap resolves, for every known operation of r's kind, the chosen
// backend Tag at nQubits under (threading, memory).
func KernelMap[Op comparable](r *registry.Registry[Op], nQubits int, threading Threading, memory CPUMemoryModel) (map[Op]Tag, error) {
	return r.KernelMap(nQubits, threading, memory)
}
