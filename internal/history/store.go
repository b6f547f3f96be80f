// Package history persists operation records to SQLite so past runs can be
// reviewed with `tidy history`.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"tidy/internal/config"
	"tidy/internal/logging"
	"tidy/internal/organize"
	"tidy/internal/services"
)

// Store manages operation history backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Entry is one persisted operation record.
type Entry struct {
	ID         int64
	RunID      string
	RecordedAt time.Time
	Directory  string
	File       string
	Category   string
	Outcome    string
	Detail     string
	DryRun     bool
}

// Open initializes or connects to the history database and applies the
// schema.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.HistoryDBPath()
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

	store := &Store{db: db, path: dbPath, logger: logging.NewComponentLogger(logger, "history")}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) applySchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS operations (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id      TEXT NOT NULL,
    recorded_at TEXT NOT NULL,
    directory   TEXT NOT NULL,
    file        TEXT NOT NULL,
    category    TEXT NOT NULL DEFAULT '',
    outcome     TEXT NOT NULL,
    detail      TEXT NOT NULL DEFAULT '',
    dry_run     INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_operations_recorded_at ON operations (recorded_at);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply history schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Record implements organize.Sink. Failures are logged and swallowed:
// recording history never aborts a run.
func (s *Store) Record(ctx context.Context, dir string, dryRun bool, rec organize.Record) {
	runID, _ := services.RunIDFromContext(ctx)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO operations (run_id, recorded_at, directory, file, category, outcome, detail, dry_run)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		time.Now().UTC().Format(time.RFC3339Nano),
		dir,
		rec.File,
		rec.Category,
		string(rec.Outcome),
		rec.Detail,
		boolToInt(dryRun),
	)
	if err != nil {
		s.logger.Warn("could not record operation",
			logging.String(logging.FieldFile, rec.File),
			logging.Error(err),
		)
	}
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, recorded_at, directory, file, category, outcome, detail, dry_run
         FROM operations ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry    Entry
			recorded string
			dryRun   int
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.RunID,
			&recorded,
			&entry.Directory,
			&entry.File,
			&entry.Category,
			&entry.Outcome,
			&entry.Detail,
			&dryRun,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, recorded); err == nil {
			entry.RecordedAt = ts
		}
		entry.DryRun = dryRun != 0
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
