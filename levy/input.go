// SPDX-License-Identifier: MIT

package levy

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Input binds a model to a horizon and to the market rates. It is the
// risk-neutral description of log(S_t/S_0) consumed by the pricers.
type Input struct {
	model Model
	t     float64
	r     float64
	q     float64
	omega float64 // martingale correction per unit time
}

// NewInput validates model and market data and precomputes the martingale
// correction omega = -Re Φ(-i), so that E[S_t/S_0] = exp((r-q)t).
//
// Errors: ErrNilModel, ErrInvalidParameter (t <= 0, non-finite rates or bad
// model parameters), ErrNoExponentialMoment.
func NewInput(model Model, t, r, q float64) (Input, error) {
	if model == nil {
		return Input{}, ErrNilModel
	}
	if err := model.Validate(); err != nil {
		return Input{}, fmt.Errorf("NewInput: %w", err)
	}
	if !finite(t) || t <= 0 {
		return Input{}, fmt.Errorf("NewInput: horizon must be > 0, got %g: %w", t, ErrInvalidParameter)
	}
	if !finite(r, q) {
		return Input{}, fmt.Errorf("NewInput: rates must be finite: %w", ErrInvalidParameter)
	}

	omega := -real(model.exponent(-1i))
	if !finite(omega) {
		return Input{}, fmt.Errorf("NewInput: %s: %w", model.Kind(), ErrNoExponentialMoment)
	}

	return Input{model: model, t: t, r: r, q: q, omega: omega}, nil
}

// Model returns the underlying model.
func (in Input) Model() Model { return in.model }

// Horizon returns t.
func (in Input) Horizon() float64 { return in.t }

// Rate returns the risk-free rate r.
func (in Input) Rate() float64 { return in.r }

// Dividend returns the dividend yield q.
func (in Input) Dividend() float64 { return in.q }

// Omega returns the martingale correction per unit time.
func (in Input) Omega() float64 { return in.omega }

// Drift returns r - q + omega.
func (in Input) Drift() float64 { return in.r - in.q + in.omega }

// CharFunc returns ξ ↦ exp(iξ·drift·t + t·Φ(ξ)).
// The returned closure captures only immutable values.
func (in Input) CharFunc() CharFunc {
	m, t, mu := in.model, in.t, in.Drift()

	return func(xi float64) complex128 {
		z := complex(xi, 0)
		return cmplx.Exp(complex(0, xi*mu*t) + complex(t, 0)*m.exponent(z))
	}
}

// Cumulants returns c1, c2 and c4 of log(S_t/S_0).
func (in Input) Cumulants() Cumulants {
	k1, k2, k4 := in.model.cumulants()

	return Cumulants{
		C1: (in.Drift() + k1) * in.t,
		C2: k2 * in.t,
		C4: math.Abs(k4) * in.t,
	}
}
