// Package kerr holds the sentinel errors shared by every kernel backend and
// the dispatch registry, mirroring the teacher's errors.go: one package,
// one var block, one doc comment per sentinel, no custom error types.
package kerr

import "errors"

var (
	// ErrInvalidArgument is returned when wires are out of range, the
	// wire count doesn't match the operation's arity, wires repeat, or
	// the buffer length isn't a power of two matching n_qubits.
	ErrInvalidArgument = errors.New("qsim: invalid argument")

	// ErrKernelNotAllowed is returned when a registry mutation tries to
	// bind a backend that isn't in the target memory model's allow-list.
	ErrKernelNotAllowed = errors.New("qsim: kernel not allowed for memory model")

	// ErrIntervalConflict is returned when a registry mutation's interval
	// overlaps an existing element at the same priority.
	ErrIntervalConflict = errors.New("qsim: interval conflicts with existing assignment")

	// ErrKeyNotFound is returned when a registry removal targets a
	// priority with no recorded assignment.
	ErrKeyNotFound = errors.New("qsim: no assignment at that priority")

	// ErrNoKernelForQubitCount is returned when a dispatch lookup finds
	// no interval covering the requested qubit count for some operation.
	ErrNoKernelForQubitCount = errors.New("qsim: no kernel covers this qubit count")

	// ErrUnsupported is returned when an operation is requested from a
	// backend that does not implement it.
	ErrUnsupported = errors.New("qsim: operation unsupported by backend")
)
