// SPDX-License-Identifier: MIT

package proj

import "math"

// Payoff is a vanilla call or put on S = Spot·e^x.
type Payoff struct {
	Spot, Strike float64
	Call         bool
}

// At returns the payoff at log-price x.
func (p Payoff) At(x float64) float64 {
	s := p.Spot * math.Exp(x)
	if p.Call {
		return math.Max(s-p.Strike, 0)
	}
	return math.Max(p.Strike-s, 0)
}

// Values samples the payoff at the nodes of g into dst (len g.N) and returns it.
// Nodal sampling is the hat-basis interpolant of the payoff.
func (p Payoff) Values(g Grid, dst []float64) []float64 {
	if len(dst) != g.N {
		dst = make([]float64, g.N)
	}
	for i := range dst {
		dst[i] = p.At(g.X(i))
	}
	return dst
}
