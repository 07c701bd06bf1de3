// Package levy describes exponential Lévy models of a log-asset price and
// supplies their risk-neutral characteristic functions and cumulants.
//
// 🚀 What is here?
//
//	A closed set of model variants, each a small value type with its own
//	strongly-typed parameters:
//	  • BlackScholes — geometric Brownian motion
//	  • CGMY         — tempered stable jumps (Carr, Geman, Madan, Yor)
//	  • NIG          — normal inverse Gaussian
//	  • Merton       — diffusion plus Gaussian jumps
//	  • Kou          — diffusion plus double-exponential jumps
//
// ✨ Key features:
//   - Model is a sealed interface: NewInput dispatches on the variant and no
//     other package can add a variant by accident.
//   - NewInput applies the martingale correction so that the discounted
//     forward is a martingale: E[S_t] = S_0·e^{(r-q)t}.
//   - Cumulants (c1, c2, c4) feed the grid sizer in package grid.
//
// ⚙️ Usage:
//
//	in, err := levy.NewInput(levy.NIG{Alpha: 15, Beta: -5, Delta: 0.5}, 1.0/52, 0.05, 0.02)
//	if err != nil {
//	  // handle ErrInvalidParameter / ErrNoExponentialMoment
//	}
//	chf := in.CharFunc()   // ξ ↦ E[exp(iξ·log(S_t/S_0))]
//	c := in.Cumulants()    // c1, c2, c4 over the step
//
// An Input is immutable and safe to share between goroutines.
package levy
