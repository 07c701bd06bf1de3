// SPDX-License-Identifier: MIT

package levy

import "math/cmplx"

// Test bridge: exposes the unexported exponent so levy_test can check the
// martingale condition at the complex point ξ = -i.

// MomentOne_TestOnly returns E[S_t/S_0] computed from the model exponent.
func MomentOne_TestOnly(in Input) complex128 {
	z := complex(in.Drift()*in.t, 0) + complex(in.t, 0)*in.model.exponent(-1i)

	return cmplx.Exp(z)
}
