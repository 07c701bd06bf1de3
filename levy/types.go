// SPDX-License-Identifier: MIT

package levy

import (
	"fmt"
	"strings"
)

// Kind tags a model variant.
type Kind int

const (
	// BlackScholesKind tags BlackScholes.
	BlackScholesKind Kind = iota + 1
	// CGMYKind tags CGMY.
	CGMYKind
	// NIGKind tags NIG.
	NIGKind
	// MertonKind tags Merton.
	MertonKind
	// KouKind tags Kou.
	KouKind
)

var kindNames = map[Kind]string{
	BlackScholesKind: "bsm",
	CGMYKind:         "cgmy",
	NIGKind:          "nig",
	MertonKind:       "mjd",
	KouKind:          "kou",
}

// String returns the short lower-case name used in configuration files.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a short name ("bsm", "cgmy", "nig", "mjd", "kou") to a Kind.
// Matching is case-insensitive; "bs", "merton" and "black-scholes" are accepted aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bsm", "bs", "black-scholes", "blackscholes":
		return BlackScholesKind, nil
	case "cgmy":
		return CGMYKind, nil
	case "nig":
		return NIGKind, nil
	case "mjd", "merton":
		return MertonKind, nil
	case "kou":
		return KouKind, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Model is one of BlackScholes, CGMY, NIG, Merton or Kou.
//
// The interface is sealed by its unexported methods: the set of variants is
// closed and every consumer may switch on Kind exhaustively.
type Model interface {
	// Kind reports the variant tag.
	Kind() Kind

	// Validate checks the parameter domain of the variant.
	Validate() error

	// exponent returns the Lévy exponent Φ per unit time, without drift:
	// E[exp(iξ L_t)] = exp(t·Φ(ξ)). Complex ξ is used for Φ(-i).
	exponent(xi complex128) complex128

	// cumulants returns the first, second and fourth cumulant of L_1.
	cumulants() (k1, k2, k4 float64)
}

// BlackScholes is geometric Brownian motion with volatility Sigma.
type BlackScholes struct {
	Sigma float64
}

// CGMY is the tempered stable model with activity C, negative tempering G,
// positive tempering M and fine-structure index Y.
type CGMY struct {
	C, G, M, Y float64
}

// NIG is the normal inverse Gaussian model: tail heaviness Alpha,
// asymmetry Beta and scale Delta.
type NIG struct {
	Alpha, Beta, Delta float64
}

// Merton is a jump diffusion with Gaussian log-jumps N(MuJ, SigmaJ²)
// arriving with intensity Lambda.
type Merton struct {
	Sigma, Lambda, MuJ, SigmaJ float64
}

// Kou is a jump diffusion with double-exponential log-jumps: up-jumps with
// probability P and rate Eta1, down-jumps with rate Eta2.
type Kou struct {
	Sigma, Lambda, P, Eta1, Eta2 float64
}

// Compile-time checks that every variant satisfies Model.
var (
	_ Model = BlackScholes{}
	_ Model = CGMY{}
	_ Model = NIG{}
	_ Model = Merton{}
	_ Model = Kou{}
)

// Kind implements Model.
func (BlackScholes) Kind() Kind { return BlackScholesKind }

// Kind implements Model.
func (CGMY) Kind() Kind { return CGMYKind }

// Kind implements Model.
func (NIG) Kind() Kind { return NIGKind }

// Kind implements Model.
func (Merton) Kind() Kind { return MertonKind }

// Kind implements Model.
func (Kou) Kind() Kind { return KouKind }

// Cumulants holds the first, second and fourth cumulant of a log-return.
type Cumulants struct {
	C1, C2, C4 float64
}

// Scale returns the cumulants of the log-return over f times the horizon.
// Cumulants of a Lévy process are linear in time.
func (c Cumulants) Scale(f float64) Cumulants {
	return Cumulants{C1: c.C1 * f, C2: c.C2 * f, C4: c.C4 * f}
}

// CharFunc maps a real frequency ξ to E[exp(iξX)].
type CharFunc func(xi float64) complex128
