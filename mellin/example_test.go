// SPDX-License-Identifier: MIT
package mellin_test

import (
	"fmt"

	"github.com/katalvlaran/levyproj/levy"
	"github.com/katalvlaran/levyproj/mellin"
)

// ExamplePrice prices an at-the-money NIG call with twenty outer terms.
func ExamplePrice() {
	res, err := mellin.Price(mellin.Input{
		Spot: 100, Strike: 100, Maturity: 1, Rate: 0.05, Dividend: 0.02,
		Call:  true,
		Model: levy.NIG{Alpha: 15, Beta: -5, Delta: 0.5},
		Terms: 20,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("call=%.6f terms=%d\n", res.Price, res.Terms)
	// Output:
	// call=9.007827 terms=21
}
