// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/levyproj/grid"
	"github.com/katalvlaran/levyproj/internal/batch"
	"github.com/katalvlaran/levyproj/internal/config"
	"github.com/katalvlaran/levyproj/levy"
	"github.com/katalvlaran/levyproj/proj"
)

type contractFlags struct {
	spot, strike, maturity float64
	rate, dividend         float64
	put                    bool
}

func (c *contractFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&c.spot, "spot", 100, "Spot price S0")
	fs.Float64Var(&c.strike, "strike", 100, "Strike W")
	fs.Float64Var(&c.maturity, "maturity", 1, "Maturity T in years")
	fs.Float64Var(&c.rate, "rate", 0, "Continuously compounded risk-free rate r")
	fs.Float64Var(&c.dividend, "dividend", 0, "Continuous dividend yield q")
	fs.BoolVar(&c.put, "put", false, "Price a put instead of a call")
}

// modelFlags collects the parameters of every model; config.MapModel picks
// the ones its kind needs.
type modelFlags struct {
	m config.YAMLModel
}

func (f *modelFlags) register(fs *pflag.FlagSet, kind string) {
	fs.StringVar(&f.m.Kind, "model", kind, "Model: bsm|cgmy|nig|mjd|kou")
	fs.Float64Var(&f.m.Sigma, "sigma", 0, "Diffusion volatility (bsm, mjd, kou)")
	fs.Float64Var(&f.m.C, "cgmy-c", 0, "CGMY C")
	fs.Float64Var(&f.m.G, "cgmy-g", 0, "CGMY G")
	fs.Float64Var(&f.m.M, "cgmy-m", 0, "CGMY M")
	fs.Float64Var(&f.m.Y, "cgmy-y", 0, "CGMY Y")
	fs.Float64Var(&f.m.Alpha, "alpha", 0, "NIG alpha")
	fs.Float64Var(&f.m.Beta, "beta", 0, "NIG beta")
	fs.Float64Var(&f.m.Delta, "delta", 0, "NIG delta")
	fs.Float64Var(&f.m.Lambda, "lambda", 0, "Jump intensity (mjd, kou)")
	fs.Float64Var(&f.m.MuJ, "mu-j", 0, "MJD mean log jump")
	fs.Float64Var(&f.m.SigmaJ, "sigma-j", 0, "MJD log jump volatility")
	fs.Float64Var(&f.m.P, "kou-p", 0, "Kou probability of an up jump")
	fs.Float64Var(&f.m.Eta1, "eta1", 0, "Kou up-jump rate")
	fs.Float64Var(&f.m.Eta2, "eta2", 0, "Kou down-jump rate")
}

func (f *modelFlags) model() (levy.Model, error) { return config.MapModel(f.m) }

type gridFlags struct {
	g       config.YAMLGrid
	p, pbar int
}

func (f *gridFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.g.L1, "l1", grid.DefaultL1, "Truncation multiple of the cumulant scale")
	fs.IntVar(&f.g.LogN, "logn", batch.DefaultLogN, "Grid log2 size (0 to size from --max-dx)")
	fs.Float64Var(&f.g.MaxDx, "max-dx", 0, "Largest grid step when --logn is 0")
	fs.IntVar(&f.p, "p", 0, "Manual sizing: step about 2^-p (with --pbar)")
	fs.IntVar(&f.pbar, "pbar", 0, "Manual sizing: window 2^pbar (with --p)")
	fs.StringVar(&f.g.Convolution, "convolution", "fft", "Convolution: fft|dense")
	fs.BoolVar(&f.g.Lenient, "lenient", false, "Warn instead of failing on a poor density kernel")
}

func (f *gridFlags) sizer(fs *pflag.FlagSet) (grid.Sizer, error) {
	g := f.g
	if fs.Changed("p") || fs.Changed("pbar") {
		p, pbar := f.p, f.pbar
		g.P, g.Pbar = &p, &pbar
		g.L1, g.LogN, g.MaxDx = 0, 0, 0
	}
	return config.MapGrid(g)
}

func (f *gridFlags) options(a *app) ([]proj.Option, error) {
	conv, err := config.ParseConvolution(f.g.Convolution)
	if err != nil {
		return nil, err
	}
	opts := []proj.Option{proj.WithConvolution(conv), proj.WithLogger(a.log)}
	if f.g.Lenient {
		opts = append(opts, proj.WithLenientKernel())
	}
	return opts, nil
}

func (a *app) format(p float64) string {
	return decimal.NewFromFloat(p).StringFixed(a.places)
}
