// SPDX-License-Identifier: MIT

package batch

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/levyproj/internal/recorder"
)

// DefaultPlaces is the number of decimal places quotes are rounded to.
const DefaultPlaces = 6

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of scenarios priced concurrently. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers: n must be >= 1")
	}
	return func(r *Runner) { r.workers = n }
}

// WithPlaces sets the rounding of quotes. Panics if places < 0.
func WithPlaces(places int32) Option {
	if places < 0 {
		panic("batch: WithPlaces: places must be >= 0")
	}
	return func(r *Runner) { r.places = places }
}

// WithRecorder stores every row in rec. Panics on nil.
func WithRecorder(rec recorder.Recorder) Option {
	if rec == nil {
		panic("batch: WithRecorder: nil recorder")
	}
	return func(r *Runner) { r.rec = rec }
}

// WithLogger routes runner and engine diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: WithLogger: nil logger")
	}
	return func(r *Runner) { r.log = l }
}

func defaultRunner() *Runner {
	return &Runner{
		workers: runtime.GOMAXPROCS(0),
		places:  DefaultPlaces,
		rec:     recorder.NewNoopRecorder(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
