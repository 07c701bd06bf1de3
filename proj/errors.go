// SPDX-License-Identifier: MIT
// Package proj: sentinel error set.
// Every failure aborts the pricing call; no partial results are returned.

package proj

import "errors"

var (
	// ErrInvalidContract indicates bad contract terms: non-positive spot,
	// strike or maturity, no monitoring dates, negative rebate, or a spot
	// already at or beyond the barrier.
	ErrInvalidContract = errors.New("proj: invalid contract")

	// ErrGridSize indicates a grid size that is not a power of two >= 2,
	// or a dense convolution request above MaxDenseN.
	ErrGridSize = errors.New("proj: grid size must be a power of two")

	// ErrBarrierOutsideGrid indicates a barrier (or spot) that cannot be
	// placed on the truncated grid.
	ErrBarrierOutsideGrid = errors.New("proj: barrier outside grid")

	// ErrUnderResolved indicates a density kernel that fails the mass,
	// edge-mass or positivity checks: the grid is too narrow or too coarse.
	ErrUnderResolved = errors.New("proj: density kernel under-resolved")

	// ErrNonFinite indicates NaN or Inf in the kernel or value vector.
	ErrNonFinite = errors.New("proj: non-finite value")
)
