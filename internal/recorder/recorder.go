// SPDX-License-Identifier: MIT

// Package recorder persists priced scenarios.
package recorder

import (
	"context"
	"time"
)

// Run is one priced (or failed) scenario.
type Run struct {
	Name      string
	Engine    string
	Model     string
	Price     string // decimal text, empty on failure
	Elapsed   time.Duration
	Error     string
	CreatedAt time.Time
}

// Recorder stores runs.
type Recorder interface {
	RecordRun(ctx context.Context, run *Run) error
	Close() error
}
