// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// NewToeplitz builds the n×n matrix A[i,j] = f(j-i).
//
// Implementation:
//   - Stage 1: evaluate f once per diagonal offset d = j-i in [-(n-1), n-1].
//   - Stage 2: fill row i from the diagonal table, row-major.
//
// Errors:
//   - ErrInvalidDimensions for n <= 0, ErrNaNInf if f returns a non-finite value.
//
// Complexity:
//   - Time O(n²), Space O(n²); f is called 2n-1 times.
func NewToeplitz(n int, f func(d int) float64) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewToeplitz(%d): %w", n, ErrInvalidDimensions)
	}
	diag := make([]float64, 2*n-1) // diag[d+n-1] = f(d)
	var d int
	for d = -(n - 1); d <= n-1; d++ {
		v := f(d)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewToeplitz: f(%d)=%g: %w", d, v, ErrNaNInf)
		}
		diag[d+n-1] = v
	}

	m := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i int
	for i = 0; i < n; i++ {
		// row i holds f(-i), f(1-i), ..., f(n-1-i)
		copy(m.data[i*n:(i+1)*n], diag[n-1-i:2*n-1-i])
	}

	return m, nil
}
