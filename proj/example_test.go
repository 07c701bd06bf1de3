// SPDX-License-Identifier: MIT
package proj_test

import (
	"fmt"

	"github.com/katalvlaran/levyproj/grid"
	"github.com/katalvlaran/levyproj/levy"
	"github.com/katalvlaran/levyproj/proj"
)

// ExamplePriceBarrier prices a weekly-monitored down-and-out call paying a
// rebate of 5 on knock-out.
func ExamplePriceBarrier() {
	model := levy.BlackScholes{Sigma: 0.2}
	spec, err := grid.ForModel(grid.Cumulant{L1: grid.DefaultL1, LogN: 12}, model, 1, 0.05, 0.02)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := proj.PriceBarrier(proj.Barrier{
		Spot: 100, Strike: 100, Level: 90, Rebate: 5,
		Maturity: 1, Rate: 0.05, Dividend: 0.02,
		Monitoring: 52, Call: true, Direction: proj.Down,
	}, spec, model)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f over %d dates\n", res.Price, res.Steps)
	// Output: 10.6391 over 52 dates
}
