package organize

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"tidy/internal/categories"
	"tidy/internal/config"
	"tidy/internal/fileutil"
	"tidy/internal/logging"
	"tidy/internal/scan"
)

// Organizer runs the classification-and-move routine against a target
// directory.
type Organizer struct {
	table    *categories.Table
	scanner  *scan.Scanner
	logger   *slog.Logger
	sink     Sink
	lockPath string
}

// New constructs an organizer using default dependencies.
func New(cfg *config.Config, table *categories.Table, logger *slog.Logger) *Organizer {
	return NewWithDependencies(cfg, table, logger, scan.New(), nil)
}

// NewWithDependencies allows injecting collaborators (used in tests and by
// the CLI, which wires the history store as the sink).
func NewWithDependencies(cfg *config.Config, table *categories.Table, logger *slog.Logger, scanner *scan.Scanner, sink Sink) *Organizer {
	lockPath := ""
	if cfg != nil {
		lockPath = cfg.LockPath()
	}
	return &Organizer{
		table:    table,
		scanner:  scanner,
		logger:   logging.NewComponentLogger(logger, "organizer"),
		sink:     sink,
		lockPath: lockPath,
	}
}

// List returns the organizable files of dir without classifying them.
func (o *Organizer) List(ctx context.Context, dir string) ([]string, error) {
	logger := logging.WithContext(ctx, o.logger)
	files, err := o.scanner.Files(dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("listed directory", logging.Int("file_count", len(files)))
	return files, nil
}

// Process classifies every file of dir and either plans (dryRun) or performs
// the moves. The returned error is non-nil only when dir cannot be scanned or
// a concurrent real run holds the lock; per-file failures are reported as
// records and never abort the batch.
func (o *Organizer) Process(ctx context.Context, dir string, dryRun bool) ([]Record, error) {
	logger := logging.WithContext(ctx, o.logger)

	files, err := o.scanner.Files(dir)
	if err != nil {
		return nil, err
	}

	if !dryRun {
		unlock, err := o.acquireLock()
		if err != nil {
			return nil, err
		}
		defer unlock()
		o.preflight(logger, dir)
	}

	if dryRun {
		logger.Info("planning organization", logging.Int("file_count", len(files)))
	} else {
		logger.Info("organizing files", logging.Int("file_count", len(files)))
	}

	records := make([]Record, 0, len(files))
	for _, name := range files {
		rec := o.processFile(dir, name, dryRun)
		o.report(ctx, logger, dir, dryRun, rec)
		records = append(records, rec)
	}

	o.logSummary(logger, records, dryRun)
	return records, nil
}

func (o *Organizer) processFile(dir, name string, dryRun bool) Record {
	category, ok := o.table.Classify(name)
	if !ok {
		if ext, hasExt := categories.ExtensionOf(name); hasExt {
			return Record{
				File:    name,
				Outcome: OutcomeUnknownType,
				Detail:  fmt.Sprintf("unknown file type %q", ext),
			}
		}
		return Record{File: name, Outcome: OutcomeNoExtension, Detail: "no file extension"}
	}

	if dryRun {
		return Record{File: name, Category: category, Outcome: OutcomePlanned}
	}

	destDir := filepath.Join(dir, category)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		outcome, detail := classifyMoveError(err)
		return Record{File: name, Category: category, Outcome: outcome, Detail: detail}
	}

	dest := filepath.Join(destDir, name)
	if _, err := os.Lstat(dest); err == nil {
		return Record{
			File:     name,
			Category: category,
			Outcome:  OutcomeExists,
			Detail:   "a file with the same name already exists in the category folder",
		}
	}

	if err := fileutil.MoveFile(filepath.Join(dir, name), dest); err != nil {
		outcome, detail := classifyMoveError(err)
		return Record{File: name, Category: category, Outcome: outcome, Detail: detail}
	}
	return Record{File: name, Category: category, Outcome: OutcomeMoved}
}

func (o *Organizer) report(ctx context.Context, logger *slog.Logger, dir string, dryRun bool, rec Record) {
	attrs := []logging.Attr{
		logging.String(logging.FieldFile, rec.File),
		logging.String(logging.FieldOutcome, string(rec.Outcome)),
	}
	if rec.Category != "" {
		attrs = append(attrs, logging.String(logging.FieldCategory, rec.Category))
	}

	switch {
	case rec.Outcome.IsError():
		attrs = append(attrs, logging.String(logging.FieldErrorHint, rec.Detail))
		logger.Error("move failed", logging.Args(attrs...)...)
	case rec.Outcome == OutcomeMoved:
		logger.Info("moved file", logging.Args(attrs...)...)
	case rec.Outcome == OutcomePlanned:
		logger.Info("planned move", logging.Args(attrs...)...)
	default:
		if rec.Detail != "" {
			attrs = append(attrs, logging.String("reason", rec.Detail))
		}
		logger.Info("skipped file", logging.Args(attrs...)...)
	}

	if o.sink != nil {
		o.sink.Record(ctx, dir, dryRun, rec)
	}
}

func (o *Organizer) logSummary(logger *slog.Logger, records []Record, dryRun bool) {
	var moved, planned, skipped, failed int
	for _, rec := range records {
		switch {
		case rec.Outcome == OutcomeMoved:
			moved++
		case rec.Outcome == OutcomePlanned:
			planned++
		case rec.Outcome.IsError():
			failed++
		default:
			skipped++
		}
	}
	if dryRun {
		logger.Info("dry run complete; no files were moved",
			logging.Int("planned", planned),
			logging.Int("skipped", skipped),
		)
		return
	}
	logger.Info("organization complete",
		logging.Int("moved", moved),
		logging.Int("skipped", skipped),
		logging.Int("failed", failed),
	)
}

// acquireLock guards real runs with an advisory lock. A held lock means
// another organize run is mid-flight; the invocation fails and the caller's
// shell loop continues.
func (o *Organizer) acquireLock() (func(), error) {
	if o.lockPath == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(o.lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(o.lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock %s: %w", o.lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("another organize run is in progress (lock held at %s)", o.lockPath)
	}
	return func() { _ = lock.Unlock() }, nil
}

// preflight warns when the target directory is not writable, so a run that
// will fail every move says so once up front. Per-file errors still carry the
// details.
func (o *Organizer) preflight(logger *slog.Logger, dir string) {
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		logger.Warn("target directory is not writable; moves will likely fail",
			logging.String("path", dir),
			logging.Error(err),
		)
	}
}
