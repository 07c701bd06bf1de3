// SPDX-License-Identifier: MIT

package mellin

import (
	"io"
	"log/slog"
)

// DefaultTerms is the outer term count used when Input.Terms is zero.
const DefaultTerms = 20

// Option configures Price.
type Option func(*options)

type options struct {
	strict bool
	log    *slog.Logger
}

func defaultOptions() options {
	return options{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithStrictConvergence turns an unmet positive tolerance into ErrNotConverged.
// Without it the shortfall is reported by Result.Converged and a warning.
func WithStrictConvergence() Option {
	return func(o *options) { o.strict = true }
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mellin: WithLogger: nil logger")
	}
	return func(o *options) { o.log = l }
}
