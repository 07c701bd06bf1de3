// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/levyproj/levy"
)

const (
	// DefaultL1 is the default truncation multiple of the cumulant scale.
	DefaultL1 = 12.0

	// MinLogN and MaxLogN bound the grid log-size.
	MinLogN = 4
	MaxLogN = 24
)

// Spec is a sized grid: N = 2^LogN nodes spanning a window of half-width Alpha.
type Spec struct {
	LogN  int
	Alpha float64
}

// N returns the number of grid nodes.
func (s Spec) N() int { return 1 << s.LogN }

// Dx returns the nominal node spacing 2α/(N-1).
func (s Spec) Dx() float64 { return 2 * s.Alpha / float64(s.N()-1) }

// Validate checks LogN bounds and that Alpha is positive and finite.
func (s Spec) Validate() error {
	if s.LogN < MinLogN || s.LogN > MaxLogN {
		return fmt.Errorf("Spec: logN=%d outside [%d,%d]: %w", s.LogN, MinLogN, MaxLogN, ErrInvalidSpec)
	}
	if math.IsNaN(s.Alpha) || math.IsInf(s.Alpha, 0) || s.Alpha <= 0 {
		return fmt.Errorf("Spec: alpha=%g: %w", s.Alpha, ErrInvalidSpec)
	}

	return nil
}

// TruncationAlpha returns L1·sqrt(|c2| + sqrt(|c4|)).
func TruncationAlpha(c levy.Cumulants, l1 float64) (float64, error) {
	if !(l1 > 0) || math.IsInf(l1, 0) {
		return 0, fmt.Errorf("TruncationAlpha: L1=%g: %w", l1, ErrInvalidSpec)
	}
	a := l1 * math.Sqrt(math.Abs(c.C2)+math.Sqrt(math.Abs(c.C4)))
	if !(a > 0) || math.IsInf(a, 0) {
		return 0, fmt.Errorf("TruncationAlpha: alpha=%g: %w", a, ErrInvalidSpec)
	}

	return a, nil
}

// Sizer chooses a Spec from the cumulants of the log-return over the
// full contract horizon.
type Sizer interface {
	Size(c levy.Cumulants) (Spec, error)
}

// Cumulant sizes the window from cumulants.
//
// When LogN is zero the smallest LogN with Dx <= MaxDx is chosen.
// L1 == 0 means DefaultL1.
type Cumulant struct {
	L1    float64
	LogN  int
	MaxDx float64
}

// Size implements Sizer.
func (z Cumulant) Size(c levy.Cumulants) (Spec, error) {
	l1 := z.L1
	if l1 == 0 {
		l1 = DefaultL1
	}
	alpha, err := TruncationAlpha(c, l1)
	if err != nil {
		return Spec{}, err
	}

	if z.LogN != 0 {
		s := Spec{LogN: z.LogN, Alpha: alpha}
		return s, s.Validate()
	}
	if !(z.MaxDx > 0) {
		return Spec{}, fmt.Errorf("Cumulant: neither LogN nor MaxDx set: %w", ErrInvalidSpec)
	}
	for logN := MinLogN; logN <= MaxLogN; logN++ {
		s := Spec{LogN: logN, Alpha: alpha}
		if s.Dx() <= z.MaxDx {
			return s, nil
		}
	}

	return Spec{}, fmt.Errorf("Cumulant: dx<=%g needs more than 2^%d nodes: %w", z.MaxDx, MaxLogN, ErrInvalidSpec)
}

// Manual is the (P, Pbar) parametrisation: LogN = P + Pbar and α = 2^Pbar/2,
// so that the nominal step is close to 2^-P.
type Manual struct {
	P, Pbar int
}

// Size implements Sizer; the cumulants are ignored.
func (z Manual) Size(levy.Cumulants) (Spec, error) {
	if z.P < 0 || z.Pbar < 0 {
		return Spec{}, fmt.Errorf("Manual: P=%d Pbar=%d: %w", z.P, z.Pbar, ErrInvalidSpec)
	}
	s := Spec{LogN: z.P + z.Pbar, Alpha: math.Ldexp(1, z.Pbar) / 2}

	return s, s.Validate()
}

// ForModel sizes a grid for model over the horizon t with rates r and q,
// using the cumulants of log(S_t/S_0).
func ForModel(s Sizer, model levy.Model, t, r, q float64) (Spec, error) {
	if s == nil {
		return Spec{}, fmt.Errorf("ForModel: nil sizer: %w", ErrInvalidSpec)
	}
	in, err := levy.NewInput(model, t, r, q)
	if err != nil {
		return Spec{}, fmt.Errorf("ForModel: %w", err)
	}

	return s.Size(in.Cumulants())
}
