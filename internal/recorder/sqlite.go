// SPDX-License-Identifier: MIT

package recorder

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder writes runs to the "runs" table of a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database at path and migrates it.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at INTEGER NOT NULL,
			name       TEXT NOT NULL,
			engine     TEXT NOT NULL,
			model      TEXT,
			price      TEXT,
			elapsed_us INTEGER,
			error      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_name ON runs(name)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:30], err)
		}
	}
	return nil
}

// RecordRun inserts run. A zero CreatedAt is stamped with the current time.
func (r *SQLiteRecorder) RecordRun(ctx context.Context, run *Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := run.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO runs
		(created_at, name, engine, model, price, elapsed_us, error)
		VALUES (?,?,?,?,?,?,?)`,
		at.UnixMicro(), run.Name, run.Engine, run.Model, run.Price,
		run.Elapsed.Microseconds(), run.Error,
	)
	return err
}

// Runs returns the most recent runs, newest first. limit <= 0 returns all.
func (r *SQLiteRecorder) Runs(ctx context.Context, limit int) ([]Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `SELECT created_at, name, engine, model, price, elapsed_us, error
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			run     Run
			at, us  int64
			model   sql.NullString
			price   sql.NullString
			errText sql.NullString
		)
		if err := rows.Scan(&at, &run.Name, &run.Engine, &model, &price, &us, &errText); err != nil {
			return nil, err
		}
		run.CreatedAt = time.UnixMicro(at)
		run.Elapsed = time.Duration(us) * time.Microsecond
		run.Model, run.Price, run.Error = model.String, price.String, errText.String
		out = append(out, run)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
