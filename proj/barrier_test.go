// SPDX-License-Identifier: MIT
package proj_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/levyproj/analytic"
	"github.com/katalvlaran/levyproj/grid"
	"github.com/katalvlaran/levyproj/levy"
	"github.com/katalvlaran/levyproj/proj"
)

var bsm = levy.BlackScholes{Sigma: 0.2}

func specFor(t *testing.T, logN int, m levy.Model) grid.Spec {
	t.Helper()
	s, err := grid.ForModel(grid.Cumulant{L1: 12, LogN: logN}, m, 1, 0.05, 0.02)
	require.NoError(t, err)
	return s
}

// BarrierSuite prices the weekly-monitored down-and-out call with rebate and
// its relatives on a Black–Scholes model.
type BarrierSuite struct {
	suite.Suite
	doc proj.Barrier
}

func (s *BarrierSuite) SetupTest() {
	s.doc = proj.Barrier{
		Spot: 100, Strike: 100, Level: 90, Rebate: 5,
		Maturity: 1, Rate: 0.05, Dividend: 0.02,
		Monitoring: 52, Call: true, Direction: proj.Down,
	}
}

func (s *BarrierSuite) TestReferenceScenario() {
	res, err := proj.PriceBarrier(s.doc, specFor(s.T(), 14, bsm), bsm)
	s.Require().NoError(err)
	s.InDelta(10.63801, res.Price, 1e-4)
	s.Equal(52, res.Steps)
	s.Equal(1<<14, res.Grid.N)
	s.InDelta(1.0, res.KernelMass, 1e-10)
}

func (s *BarrierSuite) TestNoBarrierIsVanilla() {
	s.doc.Level = 0
	res, err := proj.PriceBarrier(s.doc, specFor(s.T(), 14, bsm), bsm)
	s.Require().NoError(err)
	bs, err := analytic.BlackScholes(100, 100, 1, 0.05, 0.02, 0.2, true)
	s.Require().NoError(err)
	s.InDelta(bs, res.Price, 1e-3)
	s.Equal(proj.NoBarrier, res.Grid.Barrier)

	s.doc.Direction, s.doc.Level = proj.Up, math.Inf(1)
	up, err := proj.PriceBarrier(s.doc, specFor(s.T(), 14, bsm), bsm)
	s.Require().NoError(err)
	s.InDelta(res.Price, up.Price, 1e-12)
}

func (s *BarrierSuite) TestBarrierNextToSpot() {
	// a third of a nominal step from spot: the step is kept and the spot is
	// read between two nodes
	spec := specFor(s.T(), 14, bsm)
	for _, tc := range []struct {
		name  string
		level float64
		dir   proj.Direction
		call  bool
		want  float64
	}{
		{"down call 99.9", 99.9, proj.Down, true, 6.8426476963433105},
		{"down call 99.99", 99.99, proj.Down, true, 6.7910714085647665},
		{"down put 99.99", 99.99, proj.Down, false, 4.565579445452025},
		{"up call 100.01", 100.01, proj.Up, true, 4.611431294815697},
		{"up put 100.01", 100.01, proj.Up, false, 6.013013695700394},
	} {
		s.Run(tc.name, func() {
			c := s.doc
			c.Level, c.Direction, c.Call = tc.level, tc.dir, tc.call
			res, err := proj.PriceBarrier(c, spec, bsm)
			s.Require().NoError(err)
			s.InDelta(tc.want, res.Price, 1e-8)
			if tc.level != 99.9 {
				s.Equal(spec.Dx(), res.Grid.Dx)
				s.Greater(res.Grid.SpotWeight, 0.0)
			}
		})
	}
}

func (s *BarrierSuite) TestDenseMatchesFFT() {
	c := s.doc
	c.Direction, c.Level, c.Rebate, c.Monitoring = proj.Up, 130, 2, 4
	spec := specFor(s.T(), 8, bsm)

	fft, err := proj.PriceBarrier(c, spec, bsm)
	s.Require().NoError(err)
	dense, err := proj.PriceBarrier(c, spec, bsm, proj.WithConvolution(proj.ConvolutionDense))
	s.Require().NoError(err)
	s.InDelta(fft.Price, dense.Price, 1e-10)
	s.InDelta(4.668177059086964, fft.Price, 1e-8)
}

func (s *BarrierSuite) TestLogging() {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.doc.Monitoring = 4
	_, err := proj.PriceBarrier(s.doc, specFor(s.T(), 10, bsm), bsm, proj.WithLogger(log))
	s.Require().NoError(err)
	s.Contains(buf.String(), "proj grid")
	s.Contains(buf.String(), "convolution=fft")
}

func TestBarrierSuite(t *testing.T) {
	suite.Run(t, new(BarrierSuite))
}

// Reference values: the same projection scheme evaluated independently,
// logN = 12, twelve monitoring dates, L1 = 12.
func TestPriceBarrier_Table(t *testing.T) {
	spec := specFor(t, 12, bsm)
	base := proj.Barrier{
		Spot: 100, Strike: 100, Maturity: 1, Rate: 0.05, Dividend: 0.02, Monitoring: 12,
	}
	cases := []struct {
		name  string
		level float64
		call  bool
		dir   proj.Direction
		reb   float64
		want  float64
	}{
		{"vanilla call", 0, true, proj.Down, 0, 9.227324811801966},
		{"vanilla put", 0, false, proj.Down, 0, 6.330265255424293},
		{"DOC 95", 95, true, proj.Down, 0, 6.834505944337646},
		{"DOC 90", 90, true, proj.Down, 0, 8.414023112504998},
		{"DOC 80", 80, true, proj.Down, 0, 9.193038631407696},
		{"DOC 60", 60, true, proj.Down, 0, 9.227324415633044},
		{"UOP 105", 105, false, proj.Up, 0, 4.452999901915274},
		{"UOP 110", 110, false, proj.Up, 0, 5.5408560444094785},
		{"UOP 120", 120, false, proj.Up, 0, 6.234683615679229},
		{"UOP 150", 150, false, proj.Up, 0, 6.33024272524176},
		{"UOC 130 rebate", 130, true, proj.Up, 2, 4.283017922171016},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			c.Level, c.Call, c.Direction, c.Rebate = tc.level, tc.call, tc.dir, tc.reb
			res, err := proj.PriceBarrier(c, spec, bsm)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, res.Price, 1e-7)
		})
	}
}

func TestPriceBarrier_Monotone(t *testing.T) {
	spec := specFor(t, 12, bsm)
	cases := []struct {
		name    string
		dir     proj.Direction
		call    bool
		vanilla float64 // Level at which the barrier is switched off
		levels  []float64
	}{
		{"down call", proj.Down, true, 0, []float64{99.99, 98, 95, 90, 80, 60, 40}},
		{"down put", proj.Down, false, 0, []float64{99.99, 98, 95, 90, 80, 60, 40, 20}},
		{"up call", proj.Up, true, math.Inf(1), []float64{100.01, 102, 105, 110, 120, 150, 200, 400}},
		{"up put", proj.Up, false, math.Inf(1), []float64{100.01, 102, 105, 110, 120, 150, 200}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := proj.Barrier{
				Spot: 100, Strike: 100, Maturity: 1, Rate: 0.05, Dividend: 0.02,
				Monitoring: 12, Call: tc.call, Direction: tc.dir, Level: tc.vanilla,
			}
			vanilla, err := proj.PriceBarrier(c, spec, bsm)
			require.NoError(t, err)

			// the knock-out region shrinks as the barrier moves away from spot
			prev := 0.0
			for _, h := range tc.levels {
				c.Level = h
				res, err := proj.PriceBarrier(c, spec, bsm)
				require.NoError(t, err, "H=%g", h)
				assert.GreaterOrEqual(t, res.Price, prev, "H=%g", h)
				assert.LessOrEqual(t, res.Price, vanilla.Price+1e-9, "H=%g", h)
				prev = res.Price
			}
			assert.InDelta(t, vanilla.Price, prev, 1e-6)
		})
	}
}

var levyModels = []struct {
	name    string
	model   levy.Model
	ko, van float64 // H = 85 down-and-out and vanilla calls, twelve dates, logN = 12
}{
	{"cgmy", levy.CGMY{C: 0.02, G: 5, M: 15, Y: 1.2}, 5.098556330717596, 5.099329087467355},
	{"nig", levy.NIG{Alpha: 15, Beta: -5, Delta: 0.5}, 8.885399786185612, 9.00841442391483},
	{"mjd", levy.Merton{Sigma: 0.12, Lambda: 0.4, MuJ: -0.12, SigmaJ: 0.18}, 7.990995370072349, 8.02073542677541},
	{"kou", levy.Kou{Sigma: 0.15, Lambda: 3, P: 0.2, Eta1: 25, Eta2: 10}, 11.017116723509819, 11.286234626799462},
}

func TestPriceBarrier_LevyModels(t *testing.T) {
	for _, tc := range levyModels {
		t.Run(tc.name, func(t *testing.T) {
			spec := specFor(t, 12, tc.model)
			c := proj.Barrier{
				Spot: 100, Strike: 100, Level: 85, Maturity: 1, Rate: 0.05, Dividend: 0.02,
				Monitoring: 12, Call: true, Direction: proj.Down,
			}
			// CGMY puts ~5e-8 of one-step mass in the outer eighth of this window
			tol := proj.WithKernelTolerance(1e-6)

			ko, err := proj.PriceBarrier(c, spec, tc.model, tol)
			require.NoError(t, err)
			c.Level = 0
			van, err := proj.PriceBarrier(c, spec, tc.model, tol)
			require.NoError(t, err)

			assert.InDelta(t, tc.ko, ko.Price, 1e-6)
			assert.InDelta(t, tc.van, van.Price, 1e-6)
			assert.Less(t, ko.Price, van.Price)
		})
	}
}

func TestPriceBarrier_HeavyTailEdgeMass(t *testing.T) {
	cgmy := levyModels[0].model
	c := proj.Barrier{
		Spot: 100, Strike: 100, Level: 85, Maturity: 1, Rate: 0.05, Dividend: 0.02,
		Monitoring: 12, Call: true, Direction: proj.Down,
	}
	_, err := proj.PriceBarrier(c, specFor(t, 12, cgmy), cgmy)
	assert.ErrorIs(t, err, proj.ErrUnderResolved)

	// a wider window holds the tail
	spec, err := grid.ForModel(grid.Cumulant{L1: 20, LogN: 13}, cgmy, 1, 0.05, 0.02)
	require.NoError(t, err)
	res, err := proj.PriceBarrier(c, spec, cgmy)
	require.NoError(t, err)
	assert.InDelta(t, levyModels[0].ko, res.Price, 1e-3)
}

func TestPriceBarrier_Errors(t *testing.T) {
	spec := grid.Spec{LogN: 10, Alpha: 2.4}
	ok := proj.Barrier{
		Spot: 100, Strike: 100, Level: 90, Maturity: 1, Rate: 0.05,
		Monitoring: 12, Call: true, Direction: proj.Down,
	}
	cases := []struct {
		name string
		mut  func(*proj.Barrier)
		want error
	}{
		{"zero spot", func(c *proj.Barrier) { c.Spot = 0 }, proj.ErrInvalidContract},
		{"no monitoring", func(c *proj.Barrier) { c.Monitoring = 0 }, proj.ErrInvalidContract},
		{"negative rebate", func(c *proj.Barrier) { c.Rebate = -1 }, proj.ErrInvalidContract},
		{"nan level", func(c *proj.Barrier) { c.Level = math.NaN() }, proj.ErrInvalidContract},
		{"bad direction", func(c *proj.Barrier) { c.Direction = proj.Direction(7) }, proj.ErrInvalidContract},
		{"spot below down barrier", func(c *proj.Barrier) { c.Level = 100 }, proj.ErrInvalidContract},
		{"spot above up barrier", func(c *proj.Barrier) { c.Direction, c.Level = proj.Up, 95 }, proj.ErrInvalidContract},
		{"barrier outside grid", func(c *proj.Barrier) { c.Level = 1 }, proj.ErrBarrierOutsideGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := ok
			tc.mut(&c)
			_, err := proj.PriceBarrier(c, spec, bsm)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := proj.PriceBarrier(ok, grid.Spec{LogN: 3, Alpha: 1}, bsm)
	assert.ErrorIs(t, err, grid.ErrInvalidSpec)
	_, err = proj.PriceBarrier(ok, spec, levy.BlackScholes{})
	assert.ErrorIs(t, err, levy.ErrInvalidParameter)
	_, err = proj.PriceBarrier(ok, grid.Spec{LogN: 13, Alpha: 2.4}, bsm, proj.WithConvolution(proj.ConvolutionDense))
	assert.ErrorIs(t, err, proj.ErrGridSize)
}

func TestPriceBarrier_UnderResolvedKernel(t *testing.T) {
	c := proj.Barrier{
		Spot: 100, Strike: 100, Maturity: 1, Rate: 0.05,
		Monitoring: 1, Call: true, Direction: proj.Down,
	}
	spec := grid.Spec{LogN: 6, Alpha: 0.1}
	_, err := proj.PriceBarrier(c, spec, bsm)
	assert.ErrorIs(t, err, proj.ErrUnderResolved)

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	_, err = proj.PriceBarrier(c, spec, bsm, proj.WithLenientKernel(), proj.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "quality check")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { proj.WithKernelTolerance(0) })
	assert.Panics(t, func() { proj.WithKernelTolerance(math.NaN()) })
	assert.Panics(t, func() { proj.WithConvolution(proj.Convolution(9)) })
	assert.Panics(t, func() { proj.WithLogger(nil) })
	assert.NotPanics(t, func() { proj.WithKernelTolerance(1e-6) })
}
