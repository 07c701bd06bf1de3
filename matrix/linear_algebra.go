// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opMatVec = "MatVec"

func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())
	if err := MatVecInto(y, m, x); err != nil {
		return nil, err
	}

	return y, nil
}

// MatVecInto computes dst = m * x without allocating.
// len(dst) must equal m.Rows(); dst must not alias x.
func MatVecInto(dst []float64, m Matrix, x []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(dst, m.Rows()); err != nil {
		return matrixErrorf(opMatVec, err)
	}

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = 0
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // payoff vectors are zero on half the grid
					acc += d.data[base+j] * xv
				}
			}
			dst[i] = acc
		}

		return nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv, acc float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		acc = 0
		for j = 0; j < m.Cols(); j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		dst[i] = acc
	}

	return nil
}
