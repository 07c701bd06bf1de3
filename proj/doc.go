// Package proj prices European and discretely monitored knock-out barrier
// options under exponential Lévy models with the PROJ method (frame
// projection of the transition density onto a linear B-spline basis).
//
// 🚀 What is PROJ?
//
//	The log-price x = log(S/S0) lives on a uniform grid x_i = X0 + i·Dx. The
//	value function is represented by its nodal values v_i in the hat basis
//	φ(x/Dx - i). One monitoring step maps v to
//
//	    C_k = e^{-r·dt} Σ_n v_n θ_{n-k},    θ_j = E[φ(Y/Dx - j)],
//
//	where Y is the log-return over dt. The coefficients θ_j are obtained from
//	the characteristic function of Y with one FFT (DensityKernel), and the
//	correlation itself is evaluated with a zero-padded real FFT.
//
// ✨ Key features:
//   - Barrier and spot are exact grid nodes (a barrier within half a step of
//     spot keeps the nominal step and the spot is interpolated); the barrier
//     node takes the midpoint of rebate and continuation value, which keeps
//     second-order convergence in Dx.
//   - Probability mass leaving the grid on the knocked-out side is paid the
//     rebate; mass leaving the grid on the alive side is dropped.
//   - Kernel quality (mass, edge mass, negativity) is checked before the
//     recursion; failures are ErrUnderResolved unless WithLenientKernel.
//   - A dense Toeplitz path (WithConvolution(ConvolutionDense)) gives an
//     O(N²) reference for the FFT path.
//
// ⚙️ Usage:
//
//	spec, _ := grid.Cumulant{LogN: 14}.Size(cumulants)
//	res, err := proj.PriceBarrier(proj.Barrier{
//	  Spot: 100, Strike: 100, Level: 90, Rebate: 5,
//	  Maturity: 1, Rate: 0.05, Dividend: 0.02,
//	  Monitoring: 52, Call: true, Direction: proj.Down,
//	}, spec, levy.BlackScholes{Sigma: 0.2})
//
// Complexity:
//   - Time O(N log N) for the kernel plus O(M·N log N) for M monitoring steps.
//   - Space O(N).
//
// Monitoring convention: dates are t_m = m·T/M for m = 1..M; maturity is a
// monitoring date and the valuation date is not.
package proj
