// SPDX-License-Identifier: MIT

package analytic

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidParameter reports non-positive spot, strike, maturity or volatility,
// or non-finite rates.
var ErrInvalidParameter = errors.New("analytic: invalid parameter")

// BlackScholes returns the European call or put price
//
//	C = S0·e^{-qT}·N(d1) - W·e^{-rT}·N(d2)
//	P = W·e^{-rT}·N(-d2) - S0·e^{-qT}·N(-d1)
//
// with d1 = (log(S0/W) + (r - q + σ²/2)T)/(σ√T) and d2 = d1 - σ√T.
func BlackScholes(spot, strike, maturity, r, q, sigma float64, call bool) (float64, error) {
	for _, v := range []float64{spot, strike, maturity, r, q, sigma} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("BlackScholes: non-finite input: %w", ErrInvalidParameter)
		}
	}
	if spot <= 0 || strike <= 0 || maturity <= 0 || sigma <= 0 {
		return 0, fmt.Errorf("BlackScholes: spot, strike, maturity and sigma must be > 0: %w", ErrInvalidParameter)
	}

	sd := sigma * math.Sqrt(maturity)
	d1 := (math.Log(spot/strike) + (r-q+0.5*sigma*sigma)*maturity) / sd
	d2 := d1 - sd
	fwd := spot * math.Exp(-q*maturity)
	disc := strike * math.Exp(-r*maturity)

	n := distuv.UnitNormal
	if call {
		return fwd*n.CDF(d1) - disc*n.CDF(d2), nil
	}

	return disc*n.CDF(-d2) - fwd*n.CDF(-d1), nil
}
