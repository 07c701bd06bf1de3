// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/levyproj/internal/recorder"
)

// Quote is the outcome of one scenario. Err is nil on success.
type Quote struct {
	Name    string
	Engine  Engine
	Model   string
	Price   decimal.Decimal
	Elapsed time.Duration
	Err     error
}

// OK reports whether the scenario priced.
func (q Quote) OK() bool { return q.Err == nil }

// Runner prices scenarios on a bounded pool.
type Runner struct {
	workers int
	places  int32
	rec     recorder.Recorder
	log     *slog.Logger
}

// NewRunner returns a Runner with GOMAXPROCS workers, DefaultPlaces rounding
// and no recording, adjusted by opts.
func NewRunner(opts ...Option) *Runner {
	r := defaultRunner()
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run prices every scenario and returns one quote per scenario, in input order.
// Rows are recorded in input order once all pricing is done.
// The returned error is non-nil only if ctx is cancelled or recording fails.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Quote, error) {
	quotes := make([]Quote, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, s := range scenarios {
		if gctx.Err() != nil {
			break
		}
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			quotes[i] = r.price(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	failed := 0
	for i := range quotes {
		if !quotes[i].OK() {
			failed++
		}
		if err := r.rec.RecordRun(ctx, quotes[i].run(r.places)); err != nil {
			return quotes, fmt.Errorf("batch: record %q: %w", quotes[i].Name, err)
		}
	}
	r.log.Info("batch done", "scenarios", len(quotes), "failed", failed)

	return quotes, nil
}

func (r *Runner) price(s Scenario) Quote {
	q := Quote{Name: s.Name, Engine: s.Engine}
	if s.Model != nil {
		q.Model = s.Model.Kind().String()
	}
	log := r.log.With("scenario", s.Name, "engine", string(s.Engine))

	start := time.Now()
	p, err := s.Price(log)
	q.Elapsed = time.Since(start)
	if err == nil && (math.IsNaN(p) || math.IsInf(p, 0)) {
		err = fmt.Errorf("scenario %q: price %g: %w", s.Name, p, ErrNonFinite)
	}
	if err != nil {
		q.Err = err
		log.Warn("scenario failed", "err", err)
		return q
	}
	q.Price = decimal.NewFromFloat(p).Round(r.places)
	log.Debug("scenario priced", "price", p, "elapsed", q.Elapsed)

	return q
}

func (q Quote) run(places int32) *recorder.Run {
	run := &recorder.Run{
		Name:    q.Name,
		Engine:  string(q.Engine),
		Model:   q.Model,
		Elapsed: q.Elapsed,
	}
	if q.Err != nil {
		run.Error = q.Err.Error()
	} else {
		run.Price = q.Price.StringFixed(places)
	}
	return run
}
