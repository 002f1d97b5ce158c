// Package ledger keeps a SQLite history of batch runs.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"sleepsim/internal/ledger/migrations"
	"sleepsim/internal/sim"
)

// RunSummary describes one recorded batch run
type RunSummary struct {
	ID        string
	Seed      uint64
	Players   int
	MaxDays   int
	Survivors int
	MeanDays  float64
	CreatedAt time.Time
}

// Store provides SQLite-backed batch history.
// A nil *Store is valid and records nothing.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a ledger database and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("ledger path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Debug("Opened ledger", "path", path)
	return &Store{
		sqlDB: sqlDB,
		now:   func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordBatch stores a batch run with all its outcomes and returns the run id.
func (s *Store) RecordBatch(ctx context.Context, res sim.BatchResult) (string, error) {
	if s == nil || s.sqlDB == nil {
		return "", nil
	}

	id := uuid.NewString()
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin record batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// seeds use the full uint64 range, which SQLite integers cannot hold
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO batch_runs (id, seed, players, max_days, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, strconv.FormatUint(res.Seed, 10), len(res.Outcomes), res.MaxDays, s.now().UnixMilli()); err != nil {
		return "", fmt.Errorf("insert batch run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO batch_outcomes (
	run_id,
	position,
	name,
	survived_days,
	terminated,
	final_energy,
	final_mood,
	productivity
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare outcome insert: %w", err)
	}
	defer stmt.Close()

	for i, o := range res.Outcomes {
		if _, err := stmt.ExecContext(ctx,
			id, i, o.Name, o.SurvivedDays, o.Terminated,
			o.Final.Energy, o.Final.Mood, o.Final.Productivity); err != nil {
			return "", fmt.Errorf("insert outcome %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit batch: %w", err)
	}
	log.Info("Recorded batch run", "id", id, "players", len(res.Outcomes))
	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if s == nil || s.sqlDB == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT
	r.id,
	r.seed,
	r.players,
	r.max_days,
	r.created_at,
	COALESCE(SUM(CASE WHEN o.terminated = 0 THEN 1 ELSE 0 END), 0),
	COALESCE(AVG(o.survived_days), 0)
FROM batch_runs r
LEFT JOIN batch_outcomes o ON o.run_id = r.id
GROUP BY r.id
ORDER BY r.created_at DESC, r.rowid DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var (
			run       RunSummary
			seed      string
			createdAt int64
		)
		if err := rows.Scan(&run.ID, &seed, &run.Players, &run.MaxDays, &createdAt, &run.Survivors, &run.MeanDays); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("parse seed for run %s: %w", run.ID, err)
		}
		run.CreatedAt = time.UnixMilli(createdAt).UTC()
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Outcomes returns the stored outcomes of one run in roster order.
func (s *Store) Outcomes(ctx context.Context, runID string) ([]sim.Outcome, error) {
	if s == nil || s.sqlDB == nil {
		return nil, nil
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT name, survived_days, terminated, final_energy, final_mood, productivity
FROM batch_outcomes
WHERE run_id = ?
ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []sim.Outcome
	for rows.Next() {
		var o sim.Outcome
		if err := rows.Scan(&o.Name, &o.SurvivedDays, &o.Terminated,
			&o.Final.Energy, &o.Final.Mood, &o.Final.Productivity); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		o.Final.Name = o.Name
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}
	return outcomes, nil
}
