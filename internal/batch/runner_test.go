// SPDX-License-Identifier: MIT
package batch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/levyproj/grid"
	"github.com/katalvlaran/levyproj/internal/batch"
	"github.com/katalvlaran/levyproj/internal/recorder"
	"github.com/katalvlaran/levyproj/levy"
	"github.com/katalvlaran/levyproj/mellin"
	"github.com/katalvlaran/levyproj/proj"
)

var (
	nig = levy.NIG{Alpha: 15, Beta: -5, Delta: 0.5}
	bsm = levy.BlackScholes{Sigma: 0.2}
)

func base(name string, e batch.Engine, m levy.Model) batch.Scenario {
	return batch.Scenario{
		Name: name, Engine: e, Model: m,
		Spot: 100, Strike: 100, Maturity: 1, Rate: 0.05, Dividend: 0.02, Call: true,
	}
}

func scenarios() []batch.Scenario {
	doc := base("doc", batch.EngineBarrier, bsm)
	doc.Level, doc.Rebate, doc.Monitoring, doc.Direction = 90, 5, 52, proj.Down

	eu := base("eu-nig", batch.EngineEuropean, nig)
	eu.Sizer = grid.Cumulant{L1: 12, LogN: 14}

	badTerms := base("bad-terms", batch.EngineMellin, nig)
	badTerms.Terms = mellin.MaxTerms + 1

	return []batch.Scenario{
		base("mellin", batch.EngineMellin, nig),
		base("bs", batch.EngineAnalytic, bsm),
		doc,
		eu,
		base("mismatch", batch.EngineMellin, bsm),
		badTerms,
		base("nil-model", batch.EngineAnalytic, nil),
		base("bogus", batch.Engine("bogus"), bsm),
	}
}

type memRecorder struct {
	runs []recorder.Run
	err  error
}

func (m *memRecorder) RecordRun(_ context.Context, r *recorder.Run) error {
	if m.err != nil {
		return m.err
	}
	m.runs = append(m.runs, *r)
	return nil
}

func (m *memRecorder) Close() error { return nil }

func TestRunner_Run(t *testing.T) {
	rec := &memRecorder{}
	r := batch.NewRunner(batch.WithWorkers(3), batch.WithRecorder(rec))

	quotes, err := r.Run(context.Background(), scenarios())
	require.NoError(t, err)
	require.Len(t, quotes, 8)

	names := make([]string, len(quotes))
	for i, q := range quotes {
		names[i] = q.Name
	}
	assert.Equal(t, []string{"mellin", "bs", "doc", "eu-nig", "mismatch", "bad-terms", "nil-model", "bogus"}, names)

	require.True(t, quotes[0].OK())
	assert.Equal(t, "9.007827", quotes[0].Price.StringFixed(6))
	assert.Equal(t, "nig", quotes[0].Model)

	require.True(t, quotes[1].OK())
	assert.InDelta(t, 9.2270055, quotes[1].Price.InexactFloat64(), 1e-6)

	require.True(t, quotes[2].OK())
	assert.Equal(t, "10.639097", quotes[2].Price.StringFixed(6))

	require.True(t, quotes[3].OK())
	assert.InDelta(t, quotes[0].Price.InexactFloat64(), quotes[3].Price.InexactFloat64(), 1e-4)

	assert.ErrorIs(t, quotes[4].Err, batch.ErrModelMismatch)
	assert.ErrorIs(t, quotes[5].Err, mellin.ErrTermsOutOfRange)
	assert.ErrorIs(t, quotes[6].Err, levy.ErrNilModel)
	assert.Empty(t, quotes[6].Model)
	assert.ErrorIs(t, quotes[7].Err, batch.ErrUnknownEngine)

	require.Len(t, rec.runs, 8)
	assert.Equal(t, "doc", rec.runs[2].Name)
	assert.Equal(t, "barrier", rec.runs[2].Engine)
	assert.Equal(t, "10.639097", rec.runs[2].Price)
	assert.Empty(t, rec.runs[2].Error)
	assert.Empty(t, rec.runs[4].Price)
	assert.NotEmpty(t, rec.runs[4].Error)
}

func TestRunner_Places(t *testing.T) {
	quotes, err := batch.NewRunner(batch.WithPlaces(2)).Run(context.Background(), scenarios()[:1])
	require.NoError(t, err)
	assert.Equal(t, "9.01", quotes[0].Price.String())
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := batch.NewRunner().Run(ctx, scenarios())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_RecordFailure(t *testing.T) {
	boom := errors.New("disk full")
	quotes, err := batch.NewRunner(batch.WithRecorder(&memRecorder{err: boom})).
		Run(context.Background(), scenarios()[:2])
	assert.ErrorIs(t, err, boom)
	assert.Len(t, quotes, 2)
}

func TestParseEngine(t *testing.T) {
	for _, s := range []string{"mellin", "barrier", "european", "analytic"} {
		e, err := batch.ParseEngine(s)
		require.NoError(t, err)
		assert.Equal(t, batch.Engine(s), e)
	}
	_, err := batch.ParseEngine("montecarlo")
	assert.ErrorIs(t, err, batch.ErrUnknownEngine)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { batch.WithWorkers(0) })
	assert.Panics(t, func() { batch.WithPlaces(-1) })
	assert.Panics(t, func() { batch.WithRecorder(nil) })
	assert.Panics(t, func() { batch.WithLogger(nil) })
}
