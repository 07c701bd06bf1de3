// Package grid sizes the truncated log-price window used by the PROJ pricers.
//
// The window is [c1-α, c1+α] with α = L1·sqrt(|c2| + sqrt(|c4|)), where c1, c2
// and c4 are cumulants of log(S_T/S_0). The grid carries N = 2^LogN nodes.
//
// Two sizing modes are available:
//   - Cumulant: α from the model cumulants, LogN fixed or implied by a maximum step.
//   - Manual:   α = 2^Pbar/2 and LogN = P + Pbar, the classic (P, Pbar) parametrisation.
package grid
