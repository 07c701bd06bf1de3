// SPDX-License-Identifier: MIT
// Package levy: sentinel error set.
// Validators wrap these with the model name; callers match via errors.Is.

package levy

import "errors"

var (
	// ErrNilModel is returned when NewInput receives a nil Model.
	ErrNilModel = errors.New("levy: model is nil")

	// ErrInvalidParameter indicates a model or market parameter outside its
	// admissible domain (e.g. NIG with alpha <= |beta|, negative volatility).
	ErrInvalidParameter = errors.New("levy: invalid parameter")

	// ErrNoExponentialMoment signals that E[exp(X_t)] is infinite, so no
	// martingale correction exists (e.g. CGMY with M <= 1, Kou with eta1 <= 1).
	ErrNoExponentialMoment = errors.New("levy: exponential moment does not exist")

	// ErrUnknownKind is returned by ParseKind for unrecognised model names.
	ErrUnknownKind = errors.New("levy: unknown model kind")
)
