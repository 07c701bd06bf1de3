// SPDX-License-Identifier: MIT

package proj

import (
	"fmt"
	"math"

	"github.com/katalvlaran/levyproj/grid"
	"github.com/katalvlaran/levyproj/levy"
)

// European is a vanilla European call or put.
type European struct {
	Spot, Strike float64
	Maturity     float64
	Rate         float64
	Dividend     float64
	Call         bool
}

// PriceEuropean prices c with a single PROJ step over the whole maturity.
func PriceEuropean(c European, spec grid.Spec, model levy.Model, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	for _, v := range []float64{c.Spot, c.Strike, c.Maturity, c.Rate, c.Dividend} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, fmt.Errorf("PriceEuropean: non-finite contract field: %w", ErrInvalidContract)
		}
	}
	if c.Spot <= 0 || c.Strike <= 0 || c.Maturity <= 0 {
		return Result{}, fmt.Errorf("PriceEuropean: spot, strike and maturity must be > 0: %w", ErrInvalidContract)
	}
	in, err := levy.NewInput(model, c.Maturity, c.Rate, c.Dividend)
	if err != nil {
		return Result{}, fmt.Errorf("PriceEuropean: %w", err)
	}
	g, err := VanillaGrid(spec, in.Cumulants().C1)
	if err != nil {
		return Result{}, fmt.Errorf("PriceEuropean: %w", err)
	}

	r := rollback{
		grid:   g,
		steps:  1,
		disc:   math.Exp(-c.Rate * c.Maturity),
		payoff: Payoff{Spot: c.Spot, Strike: c.Strike, Call: c.Call},
		mask:   Mask{Index: NoBarrier},
	}
	res, err := r.run(in.CharFunc(), o)
	if err != nil {
		return Result{}, fmt.Errorf("PriceEuropean: %w", err)
	}
	return res, nil
}
