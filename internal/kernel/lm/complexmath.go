package lm

import (
	"math/cmplx"

	"github.com/cwbudde/qsim-core/internal/backend"
)

// Complex is a local, shorter alias for the precision constraint every
// kernel in this backend is generic over.
type Complex = backend.Complex

// conj returns the complex conjugate of x at whatever precision T is.
// Converting through complex128 keeps the kernels generic over
// complex64/complex128 without duplicating arithmetic per precision.
func conj[T Complex](x T) T {
	return T(cmplx.Conj(complex128(x)))
}

// cis returns e^(i*theta) at precision T.
func cis[T Complex](theta float64) T {
	return T(cmplx.Exp(complex(0, theta)))
}
