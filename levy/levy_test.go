// SPDX-License-Identifier: MIT
package levy_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/levyproj/levy"
)

// reference parameter sets used across the test suite.
var models = map[string]levy.Model{
	"bsm":  levy.BlackScholes{Sigma: 0.2},
	"cgmy": levy.CGMY{C: 0.02, G: 5, M: 15, Y: 1.2},
	"nig":  levy.NIG{Alpha: 15, Beta: -5, Delta: 0.5},
	"mjd":  levy.Merton{Sigma: 0.12, Lambda: 0.4, MuJ: -0.12, SigmaJ: 0.18},
	"kou":  levy.Kou{Sigma: 0.15, Lambda: 3, P: 0.2, Eta1: 25, Eta2: 10},
}

func TestCharFunc_AtZeroIsOne(t *testing.T) {
	for name, m := range models {
		t.Run(name, func(t *testing.T) {
			in, err := levy.NewInput(m, 0.5, 0.05, 0.02)
			require.NoError(t, err)
			v := in.CharFunc()(0)
			assert.InDelta(t, 1.0, real(v), 1e-14)
			assert.InDelta(t, 0.0, imag(v), 1e-14)
		})
	}
}

func TestCharFunc_Martingale(t *testing.T) {
	const r, q, tau = 0.05, 0.02, 0.75
	for name, m := range models {
		t.Run(name, func(t *testing.T) {
			in, err := levy.NewInput(m, tau, r, q)
			require.NoError(t, err)
			got := levy.MomentOne_TestOnly(in) * complex(math.Exp(-(r-q)*tau), 0)
			assert.InDelta(t, 1.0, real(got), 1e-12)
			assert.InDelta(t, 0.0, imag(got), 1e-12)
		})
	}
}

func TestCharFunc_BoundedAndConjugateSymmetric(t *testing.T) {
	for name, m := range models {
		t.Run(name, func(t *testing.T) {
			in, err := levy.NewInput(m, 1, 0.03, 0)
			require.NoError(t, err)
			chf := in.CharFunc()
			for _, xi := range []float64{0.1, 1, 7.5, 40, 300} {
				v := chf(xi)
				assert.LessOrEqual(t, cmplx.Abs(v), 1+1e-12, "|chf(%g)|", xi)
				w := chf(-xi)
				assert.InDelta(t, real(v), real(w), 1e-12)
				assert.InDelta(t, imag(v), -imag(w), 1e-12)
			}
		})
	}
}

// The second cumulant must agree with -d²/dξ² log chf at zero.
func TestCumulants_MatchCharFunc(t *testing.T) {
	const h = 1e-3
	for name, m := range models {
		t.Run(name, func(t *testing.T) {
			in, err := levy.NewInput(m, 1, 0.05, 0.02)
			require.NoError(t, err)
			chf := in.CharFunc()
			c := in.Cumulants()

			lp, lm := cmplx.Log(chf(h)), cmplx.Log(chf(-h))
			c1 := imag(lp-lm) / (2 * h)
			c2 := -real(lp+lm) / (h * h)
			assert.InDelta(t, c.C1, c1, 1e-6)
			assert.InEpsilon(t, c.C2, c2, 1e-4)
			assert.GreaterOrEqual(t, c.C4, 0.0)
		})
	}
}

func TestCumulants_BlackScholes(t *testing.T) {
	in, err := levy.NewInput(levy.BlackScholes{Sigma: 0.2}, 2, 0.05, 0.01)
	require.NoError(t, err)
	c := in.Cumulants()
	assert.InDelta(t, (0.05-0.01-0.02)*2, c.C1, 1e-15)
	assert.InDelta(t, 0.08, c.C2, 1e-15)
	assert.Equal(t, 0.0, c.C4)
	assert.InDelta(t, -0.02, in.Omega(), 1e-15)

	half := c.Scale(0.5)
	assert.InDelta(t, c.C2/2, half.C2, 1e-15)
}

func TestNewInput_Validation(t *testing.T) {
	cases := []struct {
		name  string
		model levy.Model
		tau   float64
		want  error
	}{
		{"nil model", nil, 1, levy.ErrNilModel},
		{"zero horizon", levy.BlackScholes{Sigma: 0.2}, 0, levy.ErrInvalidParameter},
		{"nan horizon", levy.BlackScholes{Sigma: 0.2}, math.NaN(), levy.ErrInvalidParameter},
		{"negative sigma", levy.BlackScholes{Sigma: -0.1}, 1, levy.ErrInvalidParameter},
		{"nig alpha<=|beta|", levy.NIG{Alpha: 5, Beta: -5, Delta: 0.5}, 1, levy.ErrInvalidParameter},
		{"nig no moment", levy.NIG{Alpha: 5, Beta: 4.5, Delta: 0.5}, 1, levy.ErrNoExponentialMoment},
		{"nig delta", levy.NIG{Alpha: 15, Beta: 0, Delta: 0}, 1, levy.ErrInvalidParameter},
		{"cgmy Y=1", levy.CGMY{C: 1, G: 5, M: 5, Y: 1}, 1, levy.ErrInvalidParameter},
		{"cgmy Y=2", levy.CGMY{C: 1, G: 5, M: 5, Y: 2}, 1, levy.ErrInvalidParameter},
		{"cgmy M<=1", levy.CGMY{C: 1, G: 5, M: 0.9, Y: 0.5}, 1, levy.ErrNoExponentialMoment},
		{"merton degenerate", levy.Merton{}, 1, levy.ErrInvalidParameter},
		{"kou p>1", levy.Kou{Sigma: 0.1, Lambda: 1, P: 1.5, Eta1: 10, Eta2: 10}, 1, levy.ErrInvalidParameter},
		{"kou eta1<=1", levy.Kou{Sigma: 0.1, Lambda: 1, P: 0.5, Eta1: 1, Eta2: 10}, 1, levy.ErrNoExponentialMoment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := levy.NewInput(tc.model, tc.tau, 0.05, 0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"bsm", "cgmy", "nig", "mjd", "kou"} {
		k, err := levy.ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, s, k.String())
	}
	k, err := levy.ParseKind(" Merton ")
	require.NoError(t, err)
	assert.Equal(t, levy.MertonKind, k)

	_, err = levy.ParseKind("heston")
	assert.ErrorIs(t, err, levy.ErrUnknownKind)
	assert.Equal(t, "Kind(42)", levy.Kind(42).String())
}

func TestModelKinds(t *testing.T) {
	want := map[string]levy.Kind{
		"bsm": levy.BlackScholesKind, "cgmy": levy.CGMYKind, "nig": levy.NIGKind,
		"mjd": levy.MertonKind, "kou": levy.KouKind,
	}
	for name, m := range models {
		assert.Equal(t, want[name], m.Kind(), name)
	}
}
