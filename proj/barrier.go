// SPDX-License-Identifier: MIT

package proj

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/levyproj/grid"
	"github.com/katalvlaran/levyproj/levy"
)

// Barrier is a discretely monitored knock-out option.
//
// Level is the barrier H. A Down barrier with Level <= 0, or an Up barrier
// with Level = +Inf, never knocks out: the contract is then a European
// option rolled back over Monitoring steps.
// Rebate is paid at the first monitoring date on which the barrier is breached.
type Barrier struct {
	Spot, Strike float64
	Level        float64
	Rebate       float64
	Maturity     float64
	Rate         float64
	Dividend     float64
	Monitoring   int
	Call         bool
	Direction    Direction
}

// Result is a PROJ price with the diagnostics of the run.
type Result struct {
	Price float64
	Grid  Grid
	// Steps is the number of backward steps performed.
	Steps int
	// KernelMass and EdgeMass describe the one-step density kernel.
	KernelMass float64
	EdgeMass   float64
}

func (c Barrier) hasBarrier() bool {
	if c.Direction == Down {
		return c.Level > 0
	}
	return !math.IsInf(c.Level, 1)
}

func (c Barrier) validate() error {
	for _, v := range []float64{c.Spot, c.Strike, c.Maturity, c.Rate, c.Dividend, c.Rebate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite contract field: %w", ErrInvalidContract)
		}
	}
	if math.IsNaN(c.Level) {
		return fmt.Errorf("barrier level is NaN: %w", ErrInvalidContract)
	}
	if c.Spot <= 0 || c.Strike <= 0 || c.Maturity <= 0 {
		return fmt.Errorf("spot, strike and maturity must be > 0: %w", ErrInvalidContract)
	}
	if c.Monitoring < 1 {
		return fmt.Errorf("monitoring=%d: %w", c.Monitoring, ErrInvalidContract)
	}
	if c.Rebate < 0 {
		return fmt.Errorf("rebate=%g < 0: %w", c.Rebate, ErrInvalidContract)
	}
	if c.Direction != Down && c.Direction != Up {
		return fmt.Errorf("direction=%d: %w", c.Direction, ErrInvalidContract)
	}
	if !c.hasBarrier() {
		return nil
	}
	if (c.Direction == Down && c.Spot <= c.Level) || (c.Direction == Up && c.Spot >= c.Level) {
		return fmt.Errorf("spot %g already knocked out by %s barrier %g: %w", c.Spot, c.Direction, c.Level, ErrInvalidContract)
	}
	return nil
}

// PriceBarrier prices a discretely monitored knock-out option on the grid
// described by spec (use grid.Sizer with the cumulants over the whole
// maturity to choose it).
//
// Implementation:
//   - Stage 1: one-step model input over dt = T/M; c1 = M·c1(dt).
//   - Stage 2: grid with spot and barrier on nodes; kernel and its checks.
//   - Stage 3: terminal payoff, masked (maturity is a monitoring date).
//   - Stage 4: M steps of v ← e^{-r·dt}(θ ⋆ v) plus the discounted rebate on
//     mass leaving the grid past the barrier; the mask is applied after every
//     step but the last.
//   - Stage 5: read the value at the spot node.
//
// Errors: ErrInvalidContract, ErrGridSize, ErrBarrierOutsideGrid,
// ErrUnderResolved, ErrNonFinite, grid.ErrInvalidSpec and levy model errors.
func PriceBarrier(c Barrier, spec grid.Spec, model levy.Model, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := c.validate(); err != nil {
		return Result{}, fmt.Errorf("PriceBarrier: %w", err)
	}
	dt := c.Maturity / float64(c.Monitoring)
	step, err := levy.NewInput(model, dt, c.Rate, c.Dividend)
	if err != nil {
		return Result{}, fmt.Errorf("PriceBarrier: %w", err)
	}
	c1 := float64(c.Monitoring) * step.Cumulants().C1

	var g Grid
	if c.hasBarrier() {
		g, err = BarrierGrid(spec, c1, math.Log(c.Level/c.Spot), c.Direction)
	} else {
		g, err = VanillaGrid(spec, c1)
	}
	if err != nil {
		return Result{}, fmt.Errorf("PriceBarrier: %w", err)
	}

	r := rollback{
		grid:   g,
		steps:  c.Monitoring,
		disc:   math.Exp(-c.Rate * dt),
		payoff: Payoff{Spot: c.Spot, Strike: c.Strike, Call: c.Call},
		mask:   Mask{Index: g.Barrier, Direction: c.Direction, Rebate: c.Rebate},
	}
	res, err := r.run(step.CharFunc(), o)
	if err != nil {
		return Result{}, fmt.Errorf("PriceBarrier: %w", err)
	}
	return res, nil
}

// rollback is one backward induction on a fixed grid.
type rollback struct {
	grid   Grid
	steps  int
	disc   float64
	payoff Payoff
	mask   Mask // Index == NoBarrier disables monitoring
}

func (r rollback) run(chf levy.CharFunc, o Options) (Result, error) {
	g := r.grid
	k, err := NewKernel(g.N, g.Dx, chf)
	if err != nil {
		return Result{}, err
	}
	res := Result{Grid: g, Steps: r.steps, KernelMass: k.Mass(), EdgeMass: k.EdgeMass()}
	o.log.Debug("proj grid",
		slog.Int("n", g.N), slog.Float64("dx", g.Dx), slog.Float64("x0", g.X0),
		slog.Int("barrier", g.Barrier), slog.Int("spot", g.Spot), slog.Float64("spot_weight", g.SpotWeight),
		slog.Float64("mass", res.KernelMass), slog.Float64("edge", res.EdgeMass),
		slog.String("convolution", o.conv.String()))

	if err = k.Check(o.eps); err != nil {
		if !o.lenient {
			return Result{}, err
		}
		o.log.Warn("density kernel failed quality check", slog.String("err", err.Error()))
	}

	corr, err := newCorrelator(k, o.conv)
	if err != nil {
		return Result{}, err
	}

	monitored := g.Barrier != NoBarrier
	var tail []float64
	if monitored && r.mask.Rebate != 0 {
		low, high := k.tails()
		tail = low
		if r.mask.Direction == Up {
			tail = high
		}
	}

	v := r.payoff.Values(g, nil)
	next := make([]float64, g.N)
	if monitored {
		r.mask.Apply(v)
	}
	for m := 0; m < r.steps; m++ {
		if err = corr.correlate(next, v); err != nil {
			return Result{}, err
		}
		for i := range next {
			next[i] *= r.disc
		}
		if tail != nil {
			rebate := r.disc * r.mask.Rebate
			for i, t := range tail {
				next[i] += rebate * t
			}
		}
		if monitored && m < r.steps-1 {
			r.mask.Apply(next)
		}
		v, next = next, v
	}

	res.Price = g.AtSpot(v)
	if math.IsNaN(res.Price) || math.IsInf(res.Price, 0) {
		return Result{}, fmt.Errorf("price at spot node %d: %w", g.Spot, ErrNonFinite)
	}
	return res, nil
}
