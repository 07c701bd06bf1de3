// SPDX-License-Identifier: MIT
// Package mellin: sentinel error set.
// Callers match with errors.Is; detection sites wrap with context.

package mellin

import "errors"

var (
	// ErrInvalidParameter indicates bad market data or NIG parameters
	// (non-positive spot/strike/maturity, alpha <= |beta|, delta <= 0, tol < 0).
	ErrInvalidParameter = errors.New("mellin: invalid parameter")

	// ErrTermsOutOfRange indicates a term count outside [1, MaxTerms].
	ErrTermsOutOfRange = errors.New("mellin: term count out of range")

	// ErrFactorialRange indicates a factorial lookup outside the table.
	ErrFactorialRange = errors.New("mellin: factorial index out of range")

	// ErrUnsupportedPochhammer is returned for (a)_n with a > 0 and n < 0.
	ErrUnsupportedPochhammer = errors.New("mellin: pochhammer with positive base and negative count is unsupported")

	// ErrNonFinite indicates a NaN or Inf produced while summing the series.
	ErrNonFinite = errors.New("mellin: non-finite value")

	// ErrUnstable indicates a series sum that cannot be trusted: the call
	// leaves its no-arbitrage bounds, the outer terms cancel below working
	// precision, or the tail of a full-length sum has not decayed.
	ErrUnstable = errors.New("mellin: numerically unstable series")

	// ErrNotConverged is returned under WithStrictConvergence when a positive
	// tolerance was not met within the allowed number of terms.
	ErrNotConverged = errors.New("mellin: series did not converge")
)
