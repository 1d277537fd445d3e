// Package history persists a local record of generation runs in SQLite so
// past outcomes can be inspected without keeping reports around.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded generation run.
type Entry struct {
	RunID     string
	Project   string
	Framework string
	Industry  string
	Outcome   string
	Pages     int
	Files     int
	Warnings  int
	Errors    int
	Duration  time.Duration
	CreatedAt time.Time
}

// Store wraps the SQLite history database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	project TEXT NOT NULL,
	framework TEXT NOT NULL,
	industry TEXT NOT NULL,
	outcome TEXT NOT NULL,
	pages INTEGER NOT NULL,
	files INTEGER NOT NULL,
	warnings INTEGER NOT NULL,
	errors INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
`

// Open opens (and migrates) the history database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// The driver opens lazily; schema creation is the first real access.
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Record appends one run to the history.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, project, framework, industry, outcome, pages, files, warnings, errors, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Project, e.Framework, e.Industry, e.Outcome,
		e.Pages, e.Files, e.Warnings, e.Errors,
		e.Duration.Milliseconds(), e.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, project, framework, industry, outcome, pages, files, warnings, errors, duration_ms, created_at
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durMS int64
		var created string
		if err := rows.Scan(&e.RunID, &e.Project, &e.Framework, &e.Industry, &e.Outcome,
			&e.Pages, &e.Files, &e.Warnings, &e.Errors, &durMS, &created); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Duration = time.Duration(durMS) * time.Millisecond
		if ts, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}
