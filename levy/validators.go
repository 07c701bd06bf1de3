// SPDX-License-Identifier: MIT

package levy

import (
	"fmt"
	"math"
)

// paramErrorf wraps ErrInvalidParameter with the model tag and a reason.
func paramErrorf(model, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", model, fmt.Sprintf(format, args...), ErrInvalidParameter)
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Validate requires a finite Sigma > 0.
func (m BlackScholes) Validate() error {
	if !finite(m.Sigma) || m.Sigma <= 0 {
		return paramErrorf("BlackScholes", "sigma must be > 0, got %g", m.Sigma)
	}

	return nil
}

// Validate requires C, G > 0, M > 1 and 0 < Y < 2 with Y != 1.
// M > 1 is needed for E[exp(L_1)] to be finite.
func (m CGMY) Validate() error {
	if !finite(m.C, m.G, m.M, m.Y) {
		return paramErrorf("CGMY", "parameters must be finite")
	}
	if m.C <= 0 || m.G <= 0 || m.M <= 0 {
		return paramErrorf("CGMY", "C, G, M must be > 0")
	}
	if m.Y <= 0 || m.Y >= 2 || m.Y == 1 {
		return paramErrorf("CGMY", "Y must lie in (0,1)∪(1,2), got %g", m.Y)
	}
	if m.M <= 1 {
		return fmt.Errorf("CGMY: M=%g <= 1: %w", m.M, ErrNoExponentialMoment)
	}

	return nil
}

// Validate requires Delta > 0 and Alpha > |Beta| (stability); Alpha > |Beta+1|
// is also required so that the martingale correction is defined.
func (m NIG) Validate() error {
	if !finite(m.Alpha, m.Beta, m.Delta) {
		return paramErrorf("NIG", "parameters must be finite")
	}
	if m.Delta <= 0 {
		return paramErrorf("NIG", "delta must be > 0, got %g", m.Delta)
	}
	if m.Alpha <= math.Abs(m.Beta) {
		return paramErrorf("NIG", "alpha=%g must exceed |beta|=%g", m.Alpha, math.Abs(m.Beta))
	}
	if m.Alpha <= math.Abs(m.Beta+1) {
		return fmt.Errorf("NIG: alpha=%g <= |beta+1|=%g: %w", m.Alpha, math.Abs(m.Beta+1), ErrNoExponentialMoment)
	}

	return nil
}

// Validate requires Sigma >= 0, Lambda >= 0, SigmaJ >= 0 and a non-degenerate
// process (Sigma > 0 or Lambda > 0).
func (m Merton) Validate() error {
	if !finite(m.Sigma, m.Lambda, m.MuJ, m.SigmaJ) {
		return paramErrorf("Merton", "parameters must be finite")
	}
	if m.Sigma < 0 || m.Lambda < 0 || m.SigmaJ < 0 {
		return paramErrorf("Merton", "sigma, lambda and sigmaJ must be >= 0")
	}
	if m.Sigma == 0 && m.Lambda == 0 {
		return paramErrorf("Merton", "degenerate process: sigma and lambda are both zero")
	}

	return nil
}

// Validate requires Sigma >= 0, Lambda >= 0, P in [0,1], Eta1 > 1, Eta2 > 0.
func (m Kou) Validate() error {
	if !finite(m.Sigma, m.Lambda, m.P, m.Eta1, m.Eta2) {
		return paramErrorf("Kou", "parameters must be finite")
	}
	if m.Sigma < 0 || m.Lambda < 0 {
		return paramErrorf("Kou", "sigma and lambda must be >= 0")
	}
	if m.Sigma == 0 && m.Lambda == 0 {
		return paramErrorf("Kou", "degenerate process: sigma and lambda are both zero")
	}
	if m.P < 0 || m.P > 1 {
		return paramErrorf("Kou", "p must lie in [0,1], got %g", m.P)
	}
	if m.Eta2 <= 0 {
		return paramErrorf("Kou", "eta2 must be > 0, got %g", m.Eta2)
	}
	if m.Eta1 <= 1 {
		return fmt.Errorf("Kou: eta1=%g <= 1: %w", m.Eta1, ErrNoExponentialMoment)
	}

	return nil
}
