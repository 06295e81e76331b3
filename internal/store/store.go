// Package store handles SQLite persistence for load metrics.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brisaclima/brisa/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for load samples.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS load_samples (
			id INTEGER PRIMARY KEY,
			recorded_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			term TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_load_samples_recorded_at ON load_samples(recorded_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertLoadSample stores one recorded page load.
func (s *Store) InsertLoadSample(ctx context.Context, sample model.LoadSample) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO load_samples (recorded_at, duration_ms, term) VALUES (?, ?, ?)`,
		sample.RecordedAt.Format(time.RFC3339Nano),
		sample.DurationMs,
		sample.Term,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListLoadSamples returns load samples filtered by the metrics config, oldest
// first. A positive Last keeps only the most recent N.
func (s *Store) ListLoadSamples(ctx context.Context, cfg model.MetricsConfig) ([]model.LoadSample, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "recorded_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, recorded_at, duration_ms, term
		FROM load_samples
		WHERE %s
		ORDER BY recorded_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var samples []model.LoadSample
	for rows.Next() {
		var sample model.LoadSample
		var recordedAt string
		if err := rows.Scan(&sample.ID, &recordedAt, &sample.DurationMs, &sample.Term); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, err
		}
		sample.RecordedAt = parsed
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(samples) > cfg.Last {
		samples = samples[len(samples)-cfg.Last:]
	}
	return samples, nil
}
