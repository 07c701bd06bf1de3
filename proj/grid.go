// SPDX-License-Identifier: MIT

package proj

import (
	"fmt"
	"math"

	"github.com/katalvlaran/levyproj/grid"
)

// NoBarrier is the Grid.Barrier index of a grid without a barrier node.
const NoBarrier = -1

// Grid is the uniform log-price grid x_i = X0 + i·Dx, i = 0..N-1, in units
// of log(S/S0). Barrier is the barrier node or NoBarrier. The spot x = 0
// lies at X(Spot) + SpotWeight·Dx; SpotWeight is zero unless the barrier
// sits closer to the spot than half a nominal step.
type Grid struct {
	N          int
	Dx         float64
	X0         float64
	Barrier    int
	Spot       int
	SpotWeight float64
}

// X returns the log-price of node i.
func (g Grid) X(i int) float64 { return g.X0 + float64(i)*g.Dx }

// Upper returns the log-price of the last node.
func (g Grid) Upper() float64 { return g.X(g.N - 1) }

// AtSpot reads v at x = 0, interpolating linearly between Spot and Spot+1.
func (g Grid) AtSpot(v []float64) float64 {
	if g.SpotWeight == 0 {
		return v[g.Spot]
	}

	return (1-g.SpotWeight)*v[g.Spot] + g.SpotWeight*v[g.Spot+1]
}

// VanillaGrid centres the window [c1-α, c1+α] of spec and shifts it by less
// than half a step so that the spot is a node.
func VanillaGrid(spec grid.Spec, c1 float64) (Grid, error) {
	if err := spec.Validate(); err != nil {
		return Grid{}, fmt.Errorf("VanillaGrid: %w", err)
	}
	if math.IsNaN(c1) || math.IsInf(c1, 0) {
		return Grid{}, fmt.Errorf("VanillaGrid: c1=%g: %w", c1, ErrNonFinite)
	}
	n, dx := spec.N(), spec.Dx()
	lo := c1 - spec.Alpha
	spot := int(math.Round(-lo / dx))
	if spot < 0 || spot >= n {
		return Grid{}, fmt.Errorf("VanillaGrid: spot outside [c1-α, c1+α]: %w", ErrBarrierOutsideGrid)
	}

	return Grid{N: n, Dx: dx, X0: -float64(spot) * dx, Barrier: NoBarrier, Spot: spot}, nil
}

// BarrierGrid places the barrier at l = log(H/S0) on a node. The step
// shrinks from the nominal 2α/(N-1) to |l|/ceil(|l|/dx) so that the spot is
// an integer number of steps from the barrier; it never drops below half the
// nominal step. A barrier closer than that keeps the nominal step and the
// spot is read between the barrier node and its live-side neighbour. The
// grid is anchored at the barrier as close as possible to c1-α, shifted
// inwards when the narrower window would push a node off either end.
//
// Errors:
//   - ErrInvalidContract if l is zero or on the wrong side for dir;
//   - ErrBarrierOutsideGrid if l lies outside [c1-α, c1+α] or the spot is
//     further from the barrier than the grid is wide.
func BarrierGrid(spec grid.Spec, c1, l float64, dir Direction) (Grid, error) {
	if err := spec.Validate(); err != nil {
		return Grid{}, fmt.Errorf("BarrierGrid: %w", err)
	}
	if math.IsNaN(c1) || math.IsInf(c1, 0) || math.IsNaN(l) || math.IsInf(l, 0) {
		return Grid{}, fmt.Errorf("BarrierGrid: c1=%g l=%g: %w", c1, l, ErrNonFinite)
	}
	if (dir == Down && l >= 0) || (dir == Up && l <= 0) {
		return Grid{}, fmt.Errorf("BarrierGrid: %s barrier at log-distance %g from spot: %w", dir, l, ErrInvalidContract)
	}
	lo, hi := c1-spec.Alpha, c1+spec.Alpha
	if l < lo || l > hi {
		return Grid{}, fmt.Errorf("BarrierGrid: log-barrier %g outside [%g, %g]: %w", l, lo, hi, ErrBarrierOutsideGrid)
	}

	n, dx := spec.N(), spec.Dx()
	frac := math.Abs(l) / dx
	steps := 0
	if frac >= 0.5 {
		steps = int(math.Ceil(frac))
		dx = math.Abs(l) / float64(steps)
	}
	span := max(steps, 1)
	nb := int(math.Round((l - lo) / dx))
	if dir == Down {
		nb = min(max(nb, 0), n-1-span)
	} else {
		nb = min(max(nb, span), n-1)
	}

	g := Grid{N: n, Dx: dx, X0: l - float64(nb)*dx, Barrier: nb}
	switch {
	case steps > 0 && dir == Down:
		g.Spot = nb + steps
	case steps > 0:
		g.Spot = nb - steps
	case dir == Down:
		g.Spot, g.SpotWeight = nb, frac
	default:
		g.Spot, g.SpotWeight = nb-1, 1-frac
	}
	top := g.Spot
	if g.SpotWeight != 0 {
		top++
	}
	if g.Barrier < 0 || g.Spot < 0 || top >= n {
		return Grid{}, fmt.Errorf("BarrierGrid: spot %d steps from the barrier does not fit %d nodes: %w", span, n, ErrBarrierOutsideGrid)
	}

	return g, nil
}
