// SPDX-License-Identifier: MIT

package matrix

// Matrix is a read-only rows×cols array of float64 with checked access.
//
// MatVec and MatVecInto accept any Matrix; *Dense gets a flat-buffer fast path.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns element (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)
}
