// Package mellin prices European options under the normal inverse Gaussian
// (NIG) model with a residue series obtained from the Mellin transform of the
// option price.
//
// The price is a double sum (β = 0) or triple sum (β ≠ 0) of closed-form terms
// built from four special functions, all exported because they are useful on
// their own:
//
//   - Factorial   — bounds-checked lookup in an immutable 0..127 table;
//   - Pochhammer  — rising factorial (a)_n for integer a, including a <= 0;
//   - RecipGamma  — 1/Γ(z), zero at the poles of Γ;
//   - BesselK     — modified Bessel function of the second kind K_ν(x), real ν.
//
// Convergence:
//
//	The outer index n1 carries k0^n1/n1!, k0 = log(S0/W) + drift·T, so the series
//	converges fastest near the money. Twenty outer terms already give ~1e-8
//	relative accuracy for typical equity parameters. With Input.Tol > 0 the outer
//	loop stops as soon as one full outer term changes the price by less than Tol.
//
// Complexity:
//
//	β = 0: O(N1²) terms. β ≠ 0: O(N1³) terms. Bessel values are cached per order,
//	so only O(N1) Bessel evaluations happen per call.
//
// Errors:
//
//	ErrInvalidParameter (market or NIG parameters), ErrTermsOutOfRange (N1 outside
//	[1,127]), ErrNonFinite (series overflow), ErrNotConverged (strict mode only).
package mellin
