package qsim

import "github.com/cwbudde/qsim-core/internal/kerr"

// Re-exported error sentinels; see internal/kerr for the full contract.
var (
	ErrInvalidArgument       = kerr.ErrInvalidArgument
	ErrKernelNotAllowed      = kerr.ErrKernelNotAllowed
	ErrIntervalConflict      = kerr.ErrIntervalConflict
	ErrKeyNotFound           = kerr.ErrKeyNotFound
	ErrNoKernelForQubitCount = kerr.ErrNoKernelForQubitCount
	ErrUnsupported           = kerr.ErrUnsupported
)
