// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/levyproj/analytic"
	"github.com/katalvlaran/levyproj/grid"
	"github.com/katalvlaran/levyproj/internal/config"
	"github.com/katalvlaran/levyproj/levy"
	"github.com/katalvlaran/levyproj/mellin"
	"github.com/katalvlaran/levyproj/proj"
)

func mellinCmd(a *app) *cobra.Command {
	var (
		c      contractFlags
		nig    levy.NIG
		terms  int
		tol    float64
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "mellin",
		Short: "European option under NIG by the Mellin residue series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []mellin.Option{mellin.WithLogger(a.log)}
			if strict {
				opts = append(opts, mellin.WithStrictConvergence())
			}
			res, err := mellin.Price(mellin.Input{
				Spot: c.spot, Strike: c.strike, Maturity: c.maturity,
				Rate: c.rate, Dividend: c.dividend, Call: !c.put,
				Model: nig, Terms: terms, Tol: tol,
			}, opts...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "price:     %s\n", a.format(res.Price))
			fmt.Fprintf(w, "terms:     %d\n", res.Terms)
			fmt.Fprintf(w, "converged: %t\n", res.Converged)
			return nil
		},
	}

	fs := cmd.Flags()
	c.register(fs)
	fs.Float64Var(&nig.Alpha, "alpha", 15, "NIG alpha")
	fs.Float64Var(&nig.Beta, "beta", -5, "NIG beta")
	fs.Float64Var(&nig.Delta, "delta", 0.5, "NIG delta")
	fs.IntVar(&terms, "terms", mellin.DefaultTerms, fmt.Sprintf("Outer series terms N1 (1..%d)", mellin.MaxTerms))
	fs.Float64Var(&tol, "tol", 0, "Stop when an outer term changes the price by less than tol (0 sums all terms)")
	fs.BoolVar(&strict, "strict", false, "Fail when tol is not reached")
	return cmd
}

func europeanCmd(a *app) *cobra.Command {
	var (
		c      contractFlags
		m      modelFlags
		g      gridFlags
		engine string
	)

	cmd := &cobra.Command{
		Use:   "european",
		Short: "European option by PROJ or, for bsm, in closed form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, err := m.model()
			if err != nil {
				return err
			}

			var price float64
			switch engine {
			case "analytic":
				bs, ok := model.(levy.BlackScholes)
				if !ok {
					return fmt.Errorf("engine analytic needs model bsm, got %s", model.Kind())
				}
				if price, err = analytic.BlackScholes(c.spot, c.strike, c.maturity, c.rate, c.dividend, bs.Sigma, !c.put); err != nil {
					return err
				}
			case "proj":
				res, err := priceEuropean(a, cmd, c, model, &g)
				if err != nil {
					return err
				}
				price = res.Price
				fmt.Fprintf(cmd.OutOrStdout(), "grid:      N=%d dx=%.6g\n", res.Grid.N, res.Grid.Dx)
			default:
				return fmt.Errorf("engine %q is not proj|analytic", engine)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "price:     %s\n", a.format(price))
			return nil
		},
	}

	fs := cmd.Flags()
	c.register(fs)
	m.register(fs, "bsm")
	g.register(fs)
	fs.StringVar(&engine, "engine", "proj", "Engine: proj|analytic")
	return cmd
}

func priceEuropean(a *app, cmd *cobra.Command, c contractFlags, model levy.Model, g *gridFlags) (proj.Result, error) {
	sizer, err := g.sizer(cmd.Flags())
	if err != nil {
		return proj.Result{}, err
	}
	spec, err := grid.ForModel(sizer, model, c.maturity, c.rate, c.dividend)
	if err != nil {
		return proj.Result{}, err
	}
	opts, err := g.options(a)
	if err != nil {
		return proj.Result{}, err
	}
	return proj.PriceEuropean(proj.European{
		Spot: c.spot, Strike: c.strike, Maturity: c.maturity,
		Rate: c.rate, Dividend: c.dividend, Call: !c.put,
	}, spec, model, opts...)
}

func barrierCmd(a *app) *cobra.Command {
	var (
		c          contractFlags
		m          modelFlags
		g          gridFlags
		level      float64
		rebate     float64
		monitoring int
		direction  string
	)

	cmd := &cobra.Command{
		Use:   "barrier",
		Short: "Discretely monitored knock-out option by PROJ",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, err := m.model()
			if err != nil {
				return err
			}
			dir, err := config.ParseDirection(direction)
			if err != nil {
				return err
			}
			sizer, err := g.sizer(cmd.Flags())
			if err != nil {
				return err
			}
			spec, err := grid.ForModel(sizer, model, c.maturity, c.rate, c.dividend)
			if err != nil {
				return err
			}
			opts, err := g.options(a)
			if err != nil {
				return err
			}

			res, err := proj.PriceBarrier(proj.Barrier{
				Spot: c.spot, Strike: c.strike, Level: level, Rebate: rebate,
				Maturity: c.maturity, Rate: c.rate, Dividend: c.dividend,
				Monitoring: monitoring, Call: !c.put, Direction: dir,
			}, spec, model, opts...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "grid:      N=%d dx=%.6g alpha=%.6g\n", res.Grid.N, res.Grid.Dx, spec.Alpha)
			fmt.Fprintf(w, "kernel:    mass=%.12f edge=%.3g\n", res.KernelMass, res.EdgeMass)
			fmt.Fprintf(w, "price:     %s\n", a.format(res.Price))
			return nil
		},
	}

	fs := cmd.Flags()
	c.register(fs)
	m.register(fs, "bsm")
	g.register(fs)
	fs.Float64Var(&level, "level", 0, "Barrier level H (0 for none on a down barrier)")
	fs.Float64Var(&rebate, "rebate", 0, "Rebate paid at knock-out")
	fs.IntVar(&monitoring, "monitoring", 52, "Number of monitoring dates M")
	fs.StringVar(&direction, "direction", "down", "Barrier direction: down|up")
	return cmd
}
