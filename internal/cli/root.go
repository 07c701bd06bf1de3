// SPDX-License-Identifier: MIT

// Package cli implements the levyprice command line.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/levyproj/internal/batch"
	"github.com/katalvlaran/levyproj/internal/logger"
)

// Execute runs the root command with ctx and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type app struct {
	logLevel  string
	logFormat string
	logFile   string
	places    int32

	log     *slog.Logger
	cleanup func() error
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "levyprice",
		Short:        "Price European and discretely monitored barrier options under Lévy models",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, cleanup, err := logger.Setup(logger.Config{
				Level:  a.logLevel,
				Format: a.logFormat,
				File:   a.logFile,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.log, a.cleanup = l, cleanup
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.cleanup != nil {
				return a.cleanup()
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	pf.StringVar(&a.logFormat, "log-format", "text", "Log format: text|json")
	pf.StringVar(&a.logFile, "log-file", "", "Write logs to this rotated file instead of stderr")
	pf.Int32Var(&a.places, "places", batch.DefaultPlaces, "Decimal places of printed prices")

	cmd.AddCommand(
		mellinCmd(a),
		europeanCmd(a),
		barrierCmd(a),
		batchCmd(a),
		runsCmd(),
	)
	return cmd
}
