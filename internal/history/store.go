package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded reconciliation run.
type Run struct {
	ID            string
	CreatedAt     time.Time
	RegisterPath  string
	OutputPath    string
	Matched       int
	Mismatched    int
	KeyNotFound   int
	MissingNumber int
}

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at dbPath and
// applies the schema.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun inserts a run, assigning a fresh ID and timestamp when unset,
// and returns the stored value.
func (s *Store) RecordRun(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, created_at, register_path, output_path,
            matched, mismatched, key_not_found, missing_number
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.RegisterPath,
		run.OutputPath,
		run.Matched,
		run.Mismatched,
		run.KeyNotFound,
		run.MissingNumber,
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, register_path, output_path,
                matched, mismatched, key_not_found, missing_number
         FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		var created string
		if err := rows.Scan(
			&run.ID, &created, &run.RegisterPath, &run.OutputPath,
			&run.Matched, &run.Mismatched, &run.KeyNotFound, &run.MissingNumber,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp %q: %w", created, err)
		}
		run.CreatedAt = ts
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

// Clear removes every recorded run.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM runs"); err != nil {
		return fmt.Errorf("clear runs: %w", err)
	}
	return nil
}
