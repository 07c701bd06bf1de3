// SPDX-License-Identifier: MIT

package proj

// Test bridge: exposes the kernel tail sums to proj_test.

// Tails_TestOnly returns the off-grid kernel mass below and above an N-node grid.
func Tails_TestOnly(k *Kernel) (low, high []float64) { return k.tails() }
