// Package lm implements the memoryless ("LM") kernel backend: every gate,
// generator, and matrix routine is a pure function over the amplitude
// buffer that derives the indices it touches on the fly from the
// reverse-wire parity masks in internal/bitmask, never materializing an
// explicit index list.
package lm

import (
	"fmt"

	"github.com/cwbudde/qsim-core/internal/backend"
	"github.com/cwbudde/qsim-core/internal/kerr"
)

// validate checks the common kernel preconditions: wire count matches
// arity, every wire is in range, wires are distinct, and n_qubits is at
// least the arity. arity < 0 (MultiRZ) skips the count check; the caller
// is trusted to have sized its own wire list.
func validate(n int, wires []int, arity int) error {
	if arity >= 0 && len(wires) != arity {
		return fmt.Errorf("%w: expected %d wires, got %d", kerr.ErrInvalidArgument, arity, len(wires))
	}

	if n < len(wires) {
		return fmt.Errorf("%w: n_qubits=%d smaller than wire count=%d", kerr.ErrInvalidArgument, n, len(wires))
	}

	seen := make(map[int]bool, len(wires))

	for _, w := range wires {
		if w < 0 || w >= n {
			return fmt.Errorf("%w: wire %d out of range [0,%d)", kerr.ErrInvalidArgument, w, n)
		}

		if seen[w] {
			return fmt.Errorf("%w: duplicate wire %d", kerr.ErrInvalidArgument, w)
		}

		seen[w] = true
	}

	return nil
}

// validateBuffer checks that buf's length matches 2^n_qubits.
func validateBuffer[T backend.Complex](buf []T, n int) error {
	if len(buf) != 1<<n {
		return fmt.Errorf("%w: buffer length %d does not match 2^%d", kerr.ErrInvalidArgument, len(buf), n)
	}

	return nil
}
