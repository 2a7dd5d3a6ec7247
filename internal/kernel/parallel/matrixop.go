// Package parallel implements ParallelLM: the same memoryless parity-mask
// index algebra as lm, fork/join partitioned across goroutines with
// golang.org/x/sync/errgroup. It exists for the MultiThread dispatch key;
// the registry never assigns it under SingleThread.
package parallel

import (
	"math/cmplx"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/qsim-core/internal/backend"
	"github.com/cwbudde/qsim-core/internal/bitmask"
	"github.com/cwbudde/qsim-core/internal/kerr"
)

// Complex is this backend's precision constraint, matching lm's.
type Complex = backend.Complex

func conj[T Complex](x T) T {
	return T(cmplx.Conj(complex128(x)))
}

func validate[T Complex](buf []T, n int, wires []int) error {
	if n < 0 || len(buf) != 1<<n {
		return kerr.ErrInvalidArgument
	}

	seen := make(map[int]bool, len(wires))
	for _, w := range wires {
		if w < 0 || w >= n {
			return kerr.ErrInvalidArgument
		}

		if seen[w] {
			return kerr.ErrInvalidArgument
		}

		seen[w] = true
	}

	return nil
}

// workerCount caps the fork width at GOMAXPROCS; splitting further than
// that only adds goroutine overhead with no added parallelism.
func workerCount(outer int) int {
	w := runtime.GOMAXPROCS(0)
	if w > outer {
		w = outer
	}

	if w < 1 {
		w = 1
	}

	return w
}

// forkJoin splits [0, outer) into workerCount(outer) contiguous chunks and
// runs fn over each chunk concurrently, propagating the first error.
func forkJoin(outer int, fn func(lo, hi int) error) error {
	workers := workerCount(outer)
	if workers <= 1 {
		return fn(0, outer)
	}

	chunk := (outer + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > outer {
			hi = outer
		}

		if lo >= hi {
			continue
		}

		g.Go(func() error {
			return fn(lo, hi)
		})
	}

	return g.Wait()
}

// ApplySingleQubitOp forks the outer loop of lm.ApplySingleQubitOp across
// goroutines; each chunk only ever touches its own disjoint amplitude
// pairs, since the two indices derived from a given outer counter k never
// collide with those of a different k.
func ApplySingleQubitOp[T Complex](buf []T, n int, m [4]T, wires []int, inverse bool) error {
	if err := validate(buf, n, wires); err != nil {
		return err
	}

	if len(wires) != 1 {
		return kerr.ErrInvalidArgument
	}

	r := bitmask.RevWire(wires[0], n)
	p := bitmask.RevWireParity1(r)

	m00, m01, m10, m11 := m[0], m[1], m[2], m[3]
	if inverse {
		m00, m01, m10, m11 = conj(m00), conj(m10), conj(m01), conj(m11)
	}

	return forkJoin(1<<(n-1), func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			i0, i1 := p.Indices(k, r)
			v0, v1 := buf[i0], buf[i1]
			buf[i0] = m00*v0 + m01*v1
			buf[i1] = m10*v0 + m11*v1
		}

		return nil
	})
}

// ApplyTwoQubitOp is the fork/join counterpart of lm.ApplyTwoQubitOp.
func ApplyTwoQubitOp[T Complex](buf []T, n int, m [16]T, wires []int, inverse bool) error {
	if err := validate(buf, n, wires); err != nil {
		return err
	}

	if len(wires) != 2 {
		return kerr.ErrInvalidArgument
	}

	r0, r1 := bitmask.RevWire(wires[0], n), bitmask.RevWire(wires[1], n)
	colPerm := [4]int{0, 1, 2, 3}
	if r0 < r1 {
		colPerm = [4]int{0, 2, 1, 3}
	} else {
		r0, r1 = r1, r0
	}

	p := bitmask.RevWireParity2(r0, r1)

	var mm [16]T
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			mm[i*4+j] = m[colPerm[i]*4+colPerm[j]]
		}
	}

	if inverse {
		var t [16]T
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				t[i*4+j] = conj(mm[j*4+i])
			}
		}
		mm = t
	}

	return forkJoin(1<<(n-2), func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			i00, i01, i10, i11 := p.Indices(k, r0, r1)
			v00, v01, v10, v11 := buf[i00], buf[i01], buf[i10], buf[i11]

			buf[i00] = mm[0]*v00 + mm[1]*v01 + mm[2]*v10 + mm[3]*v11
			buf[i01] = mm[4]*v00 + mm[5]*v01 + mm[6]*v10 + mm[7]*v11
			buf[i10] = mm[8]*v00 + mm[9]*v01 + mm[10]*v10 + mm[11]*v11
			buf[i11] = mm[12]*v00 + mm[13]*v01 + mm[14]*v10 + mm[15]*v11
		}

		return nil
	})
}

// ApplyMultiQubitOp is the fork/join counterpart of lm.ApplyMultiQubitOp.
// Each goroutine owns a disjoint range of outer blocks and allocates its
// own scratch vector.
func ApplyMultiQubitOp[T Complex](buf []T, n int, matrix []T, wires []int, inverse bool) error {
	if err := validate(buf, n, wires); err != nil {
		return err
	}

	k := len(wires)
	dim := 1 << k

	if len(matrix) != dim*dim {
		return kerr.ErrInvalidArgument
	}

	outerCount := 1 << (n - k)

	return forkJoin(outerCount, func(lo, hi int) error {
		scratch := make([]T, dim)

		for blk := lo; blk < hi; blk++ {
			for inner := 0; inner < dim; inner++ {
				idx := bitmask.SwapBitIndex(blk, inner, wires, n)
				scratch[inner] = buf[idx]
			}

			for i := 0; i < dim; i++ {
				var sum T

				for j := 0; j < dim; j++ {
					var mij T
					if inverse {
						mij = conj(matrix[j*dim+i])
					} else {
						mij = matrix[i*dim+j]
					}

					sum += mij * scratch[j]
				}

				idx := bitmask.SwapBitIndex(blk, i, wires, n)
				buf[idx] = sum
			}
		}

		return nil
	})
}
