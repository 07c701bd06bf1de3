// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/levyproj/grid"
	"github.com/katalvlaran/levyproj/internal/batch"
	"github.com/katalvlaran/levyproj/levy"
	"github.com/katalvlaran/levyproj/proj"
)

// MapFile maps a decoded file to Config. path is used in error messages only.
func MapFile(path string, f YAMLFile) (Config, error) {
	if len(f.Scenarios) == 0 {
		return Config{}, invalidField(path, "scenarios", "at least one scenario is required")
	}
	if f.Workers < 0 {
		return Config{}, invalidField(path, "workers", "must be >= 0")
	}
	cfg := Config{Workers: f.Workers, Places: batch.DefaultPlaces, Record: f.Record}
	if f.Places != nil {
		if *f.Places < 0 {
			return Config{}, invalidField(path, "places", "must be >= 0")
		}
		cfg.Places = *f.Places
	}

	seen := make(map[string]bool, len(f.Scenarios))
	for i, ys := range f.Scenarios {
		prefix := fmt.Sprintf("scenarios[%d]", i)
		if strings.TrimSpace(ys.Name) == "" {
			ys.Name = prefix
		}
		if seen[ys.Name] {
			return Config{}, invalidField(path, prefix+".name", fmt.Sprintf("duplicate name %q", ys.Name))
		}
		seen[ys.Name] = true

		s, err := mapScenario(path, prefix, merge(f.Defaults, ys))
		if err != nil {
			return Config{}, err
		}
		cfg.Scenarios = append(cfg.Scenarios, s)
	}

	return cfg, nil
}

// merge fills the unset fields of s from d.
func merge(d, s YAMLScenario) YAMLScenario {
	if s.Engine == "" {
		s.Engine = d.Engine
	}
	if s.Model == nil {
		s.Model = d.Model
	}
	if s.Type == "" {
		s.Type = d.Type
	}
	if s.Barrier == nil {
		s.Barrier = d.Barrier
	}
	if s.Grid == nil {
		s.Grid = d.Grid
	}
	for _, p := range []struct{ dst, src **float64 }{
		{&s.Spot, &d.Spot}, {&s.Strike, &d.Strike}, {&s.Maturity, &d.Maturity},
		{&s.Rate, &d.Rate}, {&s.Dividend, &d.Dividend}, {&s.Tol, &d.Tol},
	} {
		if *p.dst == nil {
			*p.dst = *p.src
		}
	}
	if s.Terms == nil {
		s.Terms = d.Terms
	}
	return s
}

func mapScenario(path, prefix string, ys YAMLScenario) (batch.Scenario, error) {
	engine, err := batch.ParseEngine(ys.Engine)
	if err != nil {
		return batch.Scenario{}, invalidField(path, prefix+".engine", err.Error())
	}
	if ys.Model == nil {
		return batch.Scenario{}, invalidField(path, prefix+".model", "model is required")
	}
	model, err := MapModel(*ys.Model)
	if err != nil {
		return batch.Scenario{}, invalidField(path, prefix+".model", err.Error())
	}

	s := batch.Scenario{
		Name:     ys.Name,
		Engine:   engine,
		Model:    model,
		Spot:     deref(ys.Spot, 0),
		Strike:   deref(ys.Strike, 0),
		Maturity: deref(ys.Maturity, 0),
		Rate:     deref(ys.Rate, 0),
		Dividend: deref(ys.Dividend, 0),
		Tol:      deref(ys.Tol, 0),
	}
	if ys.Terms != nil {
		s.Terms = *ys.Terms
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{{"spot", ys.Spot}, {"strike", ys.Strike}, {"maturity", ys.Maturity}} {
		if f.v == nil {
			return batch.Scenario{}, invalidField(path, prefix+"."+f.name, "is required")
		}
	}

	switch strings.ToLower(ys.Type) {
	case "", "call":
		s.Call = true
	case "put":
	default:
		return batch.Scenario{}, invalidField(path, prefix+".type", fmt.Sprintf("%q is not call|put", ys.Type))
	}

	if engine == batch.EngineBarrier {
		if ys.Barrier == nil {
			return batch.Scenario{}, invalidField(path, prefix+".barrier", "barrier engine needs a barrier block")
		}
		dir, err := ParseDirection(ys.Barrier.Direction)
		if err != nil {
			return batch.Scenario{}, invalidField(path, prefix+".barrier.direction", err.Error())
		}
		s.Level, s.Rebate, s.Monitoring, s.Direction = ys.Barrier.Level, ys.Barrier.Rebate, ys.Barrier.Monitoring, dir
	}

	if ys.Grid != nil {
		if s.Sizer, err = MapGrid(*ys.Grid); err != nil {
			return batch.Scenario{}, invalidField(path, prefix+".grid", err.Error())
		}
		if s.Convolution, err = ParseConvolution(ys.Grid.Convolution); err != nil {
			return batch.Scenario{}, invalidField(path, prefix+".grid.convolution", err.Error())
		}
		s.Lenient = ys.Grid.Lenient
	}

	return s, nil
}

// MapModel builds the levy.Model named by m.Kind and validates it.
func MapModel(m YAMLModel) (levy.Model, error) {
	kind, err := levy.ParseKind(m.Kind)
	if err != nil {
		return nil, err
	}

	var model levy.Model
	switch kind {
	case levy.BlackScholesKind:
		model = levy.BlackScholes{Sigma: m.Sigma}
	case levy.CGMYKind:
		model = levy.CGMY{C: m.C, G: m.G, M: m.M, Y: m.Y}
	case levy.NIGKind:
		model = levy.NIG{Alpha: m.Alpha, Beta: m.Beta, Delta: m.Delta}
	case levy.MertonKind:
		model = levy.Merton{Sigma: m.Sigma, Lambda: m.Lambda, MuJ: m.MuJ, SigmaJ: m.SigmaJ}
	case levy.KouKind:
		model = levy.Kou{Sigma: m.Sigma, Lambda: m.Lambda, P: m.P, Eta1: m.Eta1, Eta2: m.Eta2}
	default:
		return nil, fmt.Errorf("kind %s: %w", kind, levy.ErrUnknownKind)
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	return model, nil
}

// MapGrid returns a grid.Manual sizer when P or Pbar is set, else grid.Cumulant.
func MapGrid(g YAMLGrid) (grid.Sizer, error) {
	if g.P != nil || g.Pbar != nil {
		if g.P == nil || g.Pbar == nil {
			return nil, fmt.Errorf("p and pbar must be set together: %w", grid.ErrInvalidSpec)
		}
		if g.LogN != 0 || g.MaxDx != 0 || g.L1 != 0 {
			return nil, fmt.Errorf("p/pbar cannot be combined with l1, log_n or max_dx: %w", grid.ErrInvalidSpec)
		}
		return grid.Manual{P: *g.P, Pbar: *g.Pbar}, nil
	}
	if g.LogN == 0 && g.MaxDx == 0 {
		g.LogN = batch.DefaultLogN
	}
	return grid.Cumulant{L1: g.L1, LogN: g.LogN, MaxDx: g.MaxDx}, nil
}

// ParseDirection maps "down" (or "") and "up" to proj.Direction.
func ParseDirection(s string) (proj.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "down", "do":
		return proj.Down, nil
	case "up", "uo":
		return proj.Up, nil
	}
	return 0, fmt.Errorf("direction %q is not down|up", s)
}

// ParseConvolution maps "fft" (or "") and "dense" to proj.Convolution.
func ParseConvolution(s string) (proj.Convolution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fft":
		return proj.ConvolutionFFT, nil
	case "dense":
		return proj.ConvolutionDense, nil
	}
	return 0, fmt.Errorf("convolution %q is not fft|dense", s)
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func invalidField(path, field, msg string) error {
	return fmt.Errorf("%s: %s: %s: %w", path, field, msg, ErrInvalidConfig)
}
