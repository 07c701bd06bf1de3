// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/levyproj/matrix"
)

// ExampleNewToeplitz correlates a vector with a three-point kernel.
func ExampleNewToeplitz() {
	kernel := map[int]float64{-1: 0.25, 0: 0.5, 1: 0.25}
	op, err := matrix.NewToeplitz(4, func(d int) float64 { return kernel[d] })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	y, err := matrix.MatVec(op, []float64{0, 4, 0, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(y)
	// Output:
	// [1 2 1 0]
}
