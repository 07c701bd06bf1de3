// SPDX-License-Identifier: MIT

package proj

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/levyproj/levy"
)

// Kernel is the projected one-step transition density: θ_j = E[φ(Y/dx - j)]
// for j in [-N/2, N/2), with φ the unit hat function.
//
// A Kernel is immutable after construction.
type Kernel struct {
	n     int
	dx    float64
	theta []float64 // theta[j+n/2] = θ_j
}

// NewKernel projects the density with characteristic function chf onto n hat
// functions of width dx.
//
// Implementation:
//   - Stage 1: sample g_k = chf(ξ_k)·sinc²(ξ_k·dx/2) at ξ_k = 2πk/(n·dx),
//     k = 0..n-1, with the trapezoid weight g_0 = 1/2.
//   - Stage 2: one forward complex FFT, F_j = Σ_k g_k e^{-2πijk/n}.
//   - Stage 3: θ_j = (2/n)·Re F_{j mod n}.
//
// Errors: ErrGridSize (n not a power of two >= 2), ErrInvalidContract (dx not
// finite and > 0), ErrNonFinite (chf produced NaN/Inf).
//
// Complexity: O(n log n) time, O(n) space.
func NewKernel(n int, dx float64, chf levy.CharFunc) (*Kernel, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("NewKernel: n=%d: %w", n, ErrGridSize)
	}
	if !(dx > 0) || math.IsInf(dx, 0) {
		return nil, fmt.Errorf("NewKernel: dx=%g: %w", dx, ErrInvalidContract)
	}
	if chf == nil {
		return nil, fmt.Errorf("NewKernel: nil characteristic function: %w", ErrInvalidContract)
	}

	g := make([]complex128, n)
	g[0] = 0.5
	dxi := 2 * math.Pi / (float64(n) * dx)
	var k int
	for k = 1; k < n; k++ {
		xi := float64(k) * dxi
		z := 0.5 * xi * dx
		s := math.Sin(z) / z
		g[k] = chf(xi) * complex(s*s, 0)
	}
	fourier.NewCmplxFFT(n).Coefficients(g, g)

	h := n / 2
	theta := make([]float64, n)
	scale := 2 / float64(n)
	var j int
	for j = -h; j < h; j++ {
		v := scale * real(g[(j+n)%n])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewKernel: theta[%d]: %w", j, ErrNonFinite)
		}
		theta[j+h] = v
	}

	return &Kernel{n: n, dx: dx, theta: theta}, nil
}

// Project is NewKernel with the nominal spacing dx = 2α/(n-1) of a window of
// half-width alpha.
func Project(n int, alpha float64, chf levy.CharFunc) (*Kernel, error) {
	if n < 2 {
		return nil, fmt.Errorf("Project: n=%d: %w", n, ErrGridSize)
	}

	return NewKernel(n, 2*alpha/float64(n-1), chf)
}

// Len returns the number of coefficients N.
func (k *Kernel) Len() int { return k.n }

// Dx returns the hat width.
func (k *Kernel) Dx() float64 { return k.dx }

// At returns θ_j, zero outside [-N/2, N/2).
func (k *Kernel) At(j int) float64 {
	i := j + k.n/2
	if i < 0 || i >= k.n {
		return 0
	}
	return k.theta[i]
}

// Coefficients returns a copy of θ_{-N/2}, ..., θ_{N/2-1}.
func (k *Kernel) Coefficients() []float64 {
	return append([]float64(nil), k.theta...)
}

// Mass returns Σθ_j: the kernel applied to a vector of ones.
func (k *Kernel) Mass() float64 { return floats.Sum(k.theta) }

// EdgeMass returns Σ|θ_j| over the outer eighth of the window on each side.
// Mass there means the one-step density is not contained in the window and
// the circular FFT has wrapped it around.
func (k *Kernel) EdgeMass() float64 {
	w := k.n / 8
	if w == 0 {
		w = 1
	}
	var s float64
	for i := 0; i < w; i++ {
		s += math.Abs(k.theta[i]) + math.Abs(k.theta[k.n-1-i])
	}
	return s
}

// Min returns the smallest coefficient.
func (k *Kernel) Min() float64 { return floats.Min(k.theta) }

// Check verifies |Mass-1| <= eps, EdgeMass <= eps and Min >= -eps.
func (k *Kernel) Check(eps float64) error {
	if m := k.Mass(); math.Abs(m-1) > eps {
		return fmt.Errorf("Kernel.Check: mass=%.3e: %w", m, ErrUnderResolved)
	}
	if e := k.EdgeMass(); e > eps {
		return fmt.Errorf("Kernel.Check: edge mass=%.3e: %w", e, ErrUnderResolved)
	}
	if m := k.Min(); m < -eps {
		return fmt.Errorf("Kernel.Check: min=%.3e: %w", m, ErrUnderResolved)
	}
	return nil
}

// tails returns, for each node i of an n-node grid, the kernel mass that
// leaves the grid below node 0 (low[i] = Σ_{j<-i} θ_j) and above node n-1
// (high[i] = Σ_{j>=n-i} θ_j).
func (k *Kernel) tails() (low, high []float64) {
	n, h := k.n, k.n/2
	low = make([]float64, n)
	high = make([]float64, n)

	// prefix[j+h] = Σ_{m=-h}^{j} θ_m
	prefix := make([]float64, n)
	var acc float64
	for i := 0; i < n; i++ {
		acc += k.theta[i]
		prefix[i] = acc
	}
	for i := 0; i < h; i++ {
		low[i] = prefix[h-i-1]
	}

	// suffix[j+h] = Σ_{m=j}^{h-1} θ_m
	suffix := make([]float64, n+1)
	for i := n - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + k.theta[i]
	}
	for i := h + 1; i < n; i++ {
		high[i] = suffix[n-i+h]
	}

	return low, high
}
