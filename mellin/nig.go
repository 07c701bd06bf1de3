// SPDX-License-Identifier: MIT

package mellin

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/levyproj/levy"
)

// Input is a European option under NIG dynamics.
//
// Terms is N1, the outer (and inner) term count; zero means DefaultTerms.
// Tol is the early-exit threshold in price units; zero runs all terms.
type Input struct {
	Spot, Strike, Maturity float64
	Rate, Dividend         float64
	Call                   bool
	Model                  levy.NIG
	Terms                  int
	Tol                    float64
}

// Result is the series price and its diagnostics.
type Result struct {
	Price float64
	// Terms is the number of outer terms actually summed.
	Terms int
	// Converged is true when Tol is zero or the sum stopped early on an
	// outer increment below Tol.
	Converged bool
	// Increment is the absolute price change contributed by the last outer term.
	Increment float64
}

func (in Input) validate() error {
	if err := in.Model.Validate(); err != nil {
		return fmt.Errorf("Price: %w: %w", ErrInvalidParameter, err)
	}
	if !finite(in.Spot, in.Strike, in.Maturity, in.Rate, in.Dividend, in.Tol) {
		return fmt.Errorf("Price: non-finite input: %w", ErrInvalidParameter)
	}
	if in.Spot <= 0 || in.Strike <= 0 || in.Maturity <= 0 {
		return fmt.Errorf("Price: spot, strike and maturity must be > 0: %w", ErrInvalidParameter)
	}
	if in.Tol < 0 {
		return fmt.Errorf("Price: tol=%g < 0: %w", in.Tol, ErrInvalidParameter)
	}
	if in.Terms < 0 || in.Terms > MaxTerms {
		return fmt.Errorf("Price: terms=%d outside [1,%d]: %w", in.Terms, MaxTerms, ErrTermsOutOfRange)
	}

	return nil
}

// Price evaluates the Mellin residue series for a NIG European option.
//
// With γ = sqrt(α²-β²) and ω = δ(sqrt(α²-(β+1)²) - γ):
//
//	k0   = log(S0/W) + (r - q + ω)T
//	adt  = αδT,  dta = δT/(2α)
//	cons = W·α·exp((γδ - r)T)/sqrt(π)
//
// The call is cons times a double (β = 0) or triple (β ≠ 0) sum; the put
// follows from parity: P = C - (S0·e^{-qT} - W·e^{-rT}).
func Price(in Input, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := in.validate(); err != nil {
		return Result{}, err
	}
	n1 := in.Terms
	if n1 == 0 {
		n1 = DefaultTerms
	}

	a, b, dl, t := in.Model.Alpha, in.Model.Beta, in.Model.Delta, in.Maturity
	gam := math.Sqrt(a*a - b*b)
	omega := dl * (math.Sqrt(a*a-(b+1)*(b+1)) - gam)
	k0 := math.Log(in.Spot/in.Strike) + (in.Rate-in.Dividend+omega)*t
	s := series{
		k0:    k0,
		beta:  b,
		dta:   0.5 * dl * t / a,
		terms: n1,
		bk:    newBesselCache(a*dl*t, n1),
	}
	cons := in.Strike * a * math.Exp((gam*dl-in.Rate)*t) / math.Sqrt(math.Pi)
	tol := in.Tol / cons

	st := s.run(tol)
	call := cons * st.sum
	if math.IsNaN(call) || math.IsInf(call, 0) {
		return Result{}, fmt.Errorf("Price: N1=%d: %w", n1, ErrNonFinite)
	}
	if err := in.stable(call, cons, st); err != nil {
		return Result{}, err
	}

	res := Result{
		Price:     call,
		Terms:     st.used,
		Converged: in.Tol == 0 || st.done,
		Increment: cons * st.inc,
	}
	if !in.Call {
		res.Price = call - (in.Spot*math.Exp(-in.Dividend*t) - in.Strike*math.Exp(-in.Rate*t))
	}

	o.log.Debug("mellin series",
		slog.Float64("k0", k0), slog.Float64("cons", cons),
		slog.Int("terms", st.used), slog.Float64("increment", res.Increment))
	if !res.Converged {
		if o.strict {
			return Result{}, fmt.Errorf("Price: increment %g >= tol %g after %d terms: %w",
				res.Increment, in.Tol, st.used, ErrNotConverged)
		}
		o.log.Warn("mellin series not converged",
			slog.Int("terms", st.used), slog.Float64("increment", res.Increment), slog.Float64("tol", in.Tol))
	}

	return res, nil
}

// series holds the per-call constants of the residue sum.
type series struct {
	k0, beta, dta float64
	terms         int
	bk            besselCache
}

// Thresholds of the stability guard.
const (
	// cancelRatio bounds the round-off estimate cons·max|outer|·ε relative
	// to the price.
	cancelRatio = 1e-6
	// tailRatio bounds the last outer term relative to the largest one in a
	// sum that ran all terms.
	tailRatio = 1e-3
)

// stable rejects a call price that cannot be trusted. The outer terms grow
// like |k0|^n1/n1! before they decay, so far from the money the partial sum
// is either lost to cancellation or still truncated when the terms run out.
func (in Input) stable(call, cons float64, st sumState) error {
	t := in.Maturity
	hi := in.Spot * math.Exp(-in.Dividend*t)
	lo := math.Max(hi-in.Strike*math.Exp(-in.Rate*t), 0)
	roundoff := cons * st.maxOuter * eps
	slack := roundoff + 1e-12*in.Spot
	if call < lo-slack || call > hi+slack {
		return fmt.Errorf("Price: call %g outside no-arbitrage bounds [%g, %g]: %w", call, lo, hi, ErrUnstable)
	}
	if roundoff > cancelRatio*math.Abs(call) {
		return fmt.Errorf("Price: outer terms up to %g cancel to %g: %w", cons*st.maxOuter, call, ErrUnstable)
	}
	if in.Tol == 0 && st.lastOuter > tailRatio*st.maxOuter {
		return fmt.Errorf("Price: last outer term %g of %d has not decayed (largest %g): %w",
			cons*st.lastOuter, st.used, cons*st.maxOuter, ErrUnstable)
	}

	return nil
}

const eps = 0x1p-52

// sumState is the outcome of a series run.
type sumState struct {
	sum  float64
	used int
	// inc is |sum - previous sum| at the last outer term.
	inc float64
	// done reports an early exit on inc < tol.
	done bool
	// maxOuter and lastOuter are absolute outer-term magnitudes.
	maxOuter, lastOuter float64
}

// run sums outer terms n1 = 0..terms, stopping early once n1 > 1 and the
// outer increment drops below tol.
func (s *series) run(tol float64) sumState {
	var st sumState
	for n1 := 0; n1 <= s.terms; n1++ {
		var outer float64
		if s.beta == 0 {
			outer = s.symmetric(n1)
		} else {
			outer = s.asymmetric(n1)
		}
		last := st.sum
		st.sum += outer
		st.used = n1 + 1
		st.inc = math.Abs(st.sum - last)
		st.lastOuter = math.Abs(outer)
		st.maxOuter = math.Max(st.maxOuter, st.lastOuter)
		if n1 > 1 && st.inc < tol {
			st.done = true
			break
		}
	}

	return st
}

// symmetric is the β = 0 outer term:
// Σ_{n2=1}^{N} k0^n1/n1! · 1/Γ(1-(n1-n2)/2) · K_{(n1-n2+1)/2}(adt) · dta^{(n2-n1+1)/2}.
func (s *series) symmetric(n1 int) float64 {
	outer := math.Pow(s.k0, float64(n1)) / factorials[n1]
	var acc float64
	for n2 := 1; n2 <= s.terms; n2++ {
		m := n1 - n2
		acc += RecipGamma(1-float64(m)/2) * s.bk.at(m) * math.Pow(s.dta, float64(1-m)/2)
	}

	return outer * acc
}

// asymmetric is the β ≠ 0 outer term:
// Σ_{n2=0}^{N} Σ_{n3=1}^{N} k0^n1 β^n2/(n1! n2!) · (1-n1+n3)_{n2} · 1/Γ(1-(n1-n2-n3)/2)
// · K_{(n1-n2-n3+1)/2}(adt) · dta^{(n2+n3-n1+1)/2}.
func (s *series) asymmetric(n1 int) float64 {
	outer := math.Pow(s.k0, float64(n1)) / factorials[n1]
	var acc float64
	for n2 := 0; n2 <= s.terms; n2++ {
		bn := math.Pow(s.beta, float64(n2)) / factorials[n2]
		for n3 := 1; n3 <= s.terms; n3++ {
			p := rising(1-n1+n3, n2)
			if p == 0 {
				continue
			}
			m := n1 - n2 - n3
			acc += bn * p * RecipGamma(1-float64(m)/2) * s.bk.at(m) * math.Pow(s.dta, float64(1-m)/2)
		}
	}

	return outer * acc
}

// besselCache memoises K_{(m+1)/2}(x) for integer m in [-2N, N].
type besselCache struct {
	x      float64
	offset int
	vals   []float64
}

func newBesselCache(x float64, n int) besselCache {
	c := besselCache{x: x, offset: 2 * n, vals: make([]float64, 3*n+1)}
	for i := range c.vals {
		c.vals[i] = math.NaN()
	}

	return c
}

func (c *besselCache) at(m int) float64 {
	i := m + c.offset
	if v := c.vals[i]; !math.IsNaN(v) {
		return v
	}
	v := BesselK(float64(m+1)/2, c.x)
	c.vals[i] = v

	return v
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
