// Package levyproj prices European and discretely monitored barrier options
// under exponential Lévy models.
//
// 🚀 What is in the box?
//
//   - Models: Black–Scholes, CGMY, NIG, Merton jump diffusion, Kou double exponential
//   - PROJ: frame projection of the transition density onto a uniform grid,
//     backward induction over the monitoring dates, rebates on knock-out
//   - Mellin: residue series for NIG European options, no grid at all
//   - Closed form: Black–Scholes with dividend yield, for reference values
//
// ✨ Why levyproj?
//
//   - Pure numerics – no I/O, no globals, every call owns its buffers
//   - Sentinel errors – match failures with errors.Is
//   - Quiet by default – pass a *slog.Logger via WithLogger to see diagnostics
//
// Layout:
//
//	levy/     — model variants, risk-neutral characteristic function, cumulants
//	grid/     — truncation window and grid size (cumulant or manual sizing)
//	proj/     — density kernel, pricing grid, payoff, barrier mask, pricers
//	mellin/   — factorials, Pochhammer, 1/Γ, Bessel K and the NIG series
//	analytic/ — Black–Scholes closed form
//	matrix/   — dense matrices and the Toeplitz operator of the dense convolution
//	cmd/levyprice — command line, YAML batches, SQLite run history
//
// Quick start:
//
//	model := levy.BlackScholes{Sigma: 0.2}
//	spec, _ := grid.ForModel(grid.Cumulant{LogN: 12}, model, 1, 0.05, 0.02)
//	res, _ := proj.PriceBarrier(proj.Barrier{
//		Spot: 100, Strike: 100, Level: 90, Rebate: 5, Maturity: 1,
//		Rate: 0.05, Dividend: 0.02, Monitoring: 52, Call: true,
//	}, spec, model)
//	// res.Price ≈ 10.6391
//
//	go get github.com/katalvlaran/levyproj
package levyproj
