// SPDX-License-Identifier: MIT

// Command levyprice prices European and discretely monitored barrier
// options under Lévy models.
//
//	levyprice mellin --rate 0.05 --dividend 0.02
//	levyprice barrier --sigma 0.2 --level 90 --rebate 5 --monitoring 52
//	levyprice batch -f scenarios.yaml --record runs.db
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/levyproj/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
