// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/levyproj/internal/batch"
	"github.com/katalvlaran/levyproj/internal/config"
	"github.com/katalvlaran/levyproj/internal/recorder"
)

func batchCmd(a *app) *cobra.Command {
	var (
		file    string
		workers int
		record  string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Price every scenario of a YAML file in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(file)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("record") {
				cfg.Record = record
			}
			if cmd.Flags().Changed("places") {
				cfg.Places = a.places
			}

			opts := []batch.Option{batch.WithLogger(a.log), batch.WithPlaces(cfg.Places)}
			if cfg.Workers > 0 {
				opts = append(opts, batch.WithWorkers(cfg.Workers))
			}
			if cfg.Record != "" {
				rec, err := recorder.NewSQLiteRecorder(cfg.Record)
				if err != nil {
					return err
				}
				defer rec.Close()
				opts = append(opts, batch.WithRecorder(rec))
			}

			quotes, err := batch.NewRunner(opts...).Run(cmd.Context(), cfg.Scenarios)
			if quotes != nil {
				printQuotes(cmd.OutOrStdout(), quotes, cfg.Places)
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, q := range quotes {
				if !q.OK() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scenario(s) failed", failed, len(quotes))
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&file, "file", "f", "", "Scenario file (required)")
	fs.IntVar(&workers, "workers", 0, "Parallel workers (overrides the file and "+config.EnvWorkers+")")
	fs.StringVar(&record, "record", "", "SQLite database to record rows into")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func printQuotes(w io.Writer, quotes []batch.Quote, places int32) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tENGINE\tMODEL\tPRICE\tELAPSED\tERROR")
	for _, q := range quotes {
		price, msg := q.Price.StringFixed(places), ""
		if !q.OK() {
			price, msg = "-", q.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			q.Name, q.Engine, q.Model, price, q.Elapsed.Round(time.Microsecond), msg)
	}
	_ = tw.Flush()
}

func runsCmd() *cobra.Command {
	var (
		db    string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List rows recorded by batch --record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := recorder.NewSQLiteRecorder(db)
			if err != nil {
				return err
			}
			defer rec.Close()

			runs, err := rec.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CREATED\tNAME\tENGINE\tMODEL\tPRICE\tERROR")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.CreatedAt.UTC().Format(time.RFC3339), r.Name, r.Engine, r.Model, r.Price, r.Error)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&db, "db", "", "SQLite database (required)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Newest rows to show (0 for all)")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}
