// SPDX-License-Identifier: MIT

package recorder

import "context"

// NoopRecorder discards runs; used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(context.Context, *Run) error { return nil }
func (n *NoopRecorder) Close() error                          { return nil }
