// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/levyproj/analytic"
	"github.com/katalvlaran/levyproj/grid"
	"github.com/katalvlaran/levyproj/levy"
	"github.com/katalvlaran/levyproj/mellin"
	"github.com/katalvlaran/levyproj/proj"
)

var (
	// ErrUnknownEngine is returned for an engine outside the Engine constants.
	ErrUnknownEngine = errors.New("batch: unknown engine")

	// ErrModelMismatch is returned when an engine cannot price the scenario's model.
	ErrModelMismatch = errors.New("batch: engine does not support model")

	// ErrNonFinite is returned when an engine yields NaN or ±Inf.
	ErrNonFinite = errors.New("batch: non-finite price")
)

// Engine names a pricing method.
type Engine string

const (
	EngineMellin   Engine = "mellin"
	EngineBarrier  Engine = "barrier"
	EngineEuropean Engine = "european"
	EngineAnalytic Engine = "analytic"
)

// ParseEngine validates s as an Engine.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(s); e {
	case EngineMellin, EngineBarrier, EngineEuropean, EngineAnalytic:
		return e, nil
	}
	return "", fmt.Errorf("engine %q: %w", s, ErrUnknownEngine)
}

// Scenario is one pricing request.
//
// Barrier fields (Level, Rebate, Monitoring, Direction) are read by
// EngineBarrier only. Sizer defaults to grid.Cumulant{LogN: DefaultLogN}.
type Scenario struct {
	Name   string
	Engine Engine
	Model  levy.Model

	Spot, Strike float64
	Maturity     float64
	Rate         float64
	Dividend     float64
	Call         bool

	Level      float64
	Rebate     float64
	Monitoring int
	Direction  proj.Direction

	Sizer       grid.Sizer
	Convolution proj.Convolution
	Lenient     bool

	Terms int
	Tol   float64
}

// DefaultLogN is the grid log-size used when a PROJ scenario has no sizer.
const DefaultLogN = 12

// Price runs the scenario's engine and returns the raw price.
// A nil log discards engine diagnostics.
func (s Scenario) Price(log *slog.Logger) (float64, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.Model == nil {
		return 0, fmt.Errorf("scenario %q: %w", s.Name, levy.ErrNilModel)
	}
	switch s.Engine {
	case EngineMellin:
		nig, ok := s.Model.(levy.NIG)
		if !ok {
			return 0, fmt.Errorf("scenario %q: %s with %s: %w", s.Name, s.Engine, s.Model.Kind(), ErrModelMismatch)
		}
		res, err := mellin.Price(mellin.Input{
			Spot: s.Spot, Strike: s.Strike, Maturity: s.Maturity,
			Rate: s.Rate, Dividend: s.Dividend, Call: s.Call,
			Model: nig, Terms: s.Terms, Tol: s.Tol,
		}, mellin.WithLogger(log))
		return res.Price, err

	case EngineAnalytic:
		bs, ok := s.Model.(levy.BlackScholes)
		if !ok {
			return 0, fmt.Errorf("scenario %q: %s with %s: %w", s.Name, s.Engine, s.Model.Kind(), ErrModelMismatch)
		}
		return analytic.BlackScholes(s.Spot, s.Strike, s.Maturity, s.Rate, s.Dividend, bs.Sigma, s.Call)

	case EngineBarrier, EngineEuropean:
		spec, err := grid.ForModel(s.sizer(), s.Model, s.Maturity, s.Rate, s.Dividend)
		if err != nil {
			return 0, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		opts := []proj.Option{proj.WithLogger(log), proj.WithConvolution(s.Convolution)}
		if s.Lenient {
			opts = append(opts, proj.WithLenientKernel())
		}

		var res proj.Result
		if s.Engine == EngineBarrier {
			res, err = proj.PriceBarrier(proj.Barrier{
				Spot: s.Spot, Strike: s.Strike, Level: s.Level, Rebate: s.Rebate,
				Maturity: s.Maturity, Rate: s.Rate, Dividend: s.Dividend,
				Monitoring: s.Monitoring, Call: s.Call, Direction: s.Direction,
			}, spec, s.Model, opts...)
		} else {
			res, err = proj.PriceEuropean(proj.European{
				Spot: s.Spot, Strike: s.Strike, Maturity: s.Maturity,
				Rate: s.Rate, Dividend: s.Dividend, Call: s.Call,
			}, spec, s.Model, opts...)
		}
		return res.Price, err
	}

	return 0, fmt.Errorf("scenario %q: engine %q: %w", s.Name, s.Engine, ErrUnknownEngine)
}

func (s Scenario) sizer() grid.Sizer {
	if s.Sizer != nil {
		return s.Sizer
	}
	return grid.Cumulant{L1: grid.DefaultL1, LogN: DefaultLogN}
}
