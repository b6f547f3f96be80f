package logging

import (
	"context"
	"log/slog"

	"tidy/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for run identifiers.
	FieldRunID = "run_id"
	// FieldTargetDir is the standardized structured logging key for the directory being processed.
	FieldTargetDir = "target_dir"
	// FieldFile is the standardized structured logging key for the file a record concerns.
	FieldFile = "file"
	// FieldCategory is the standardized structured logging key for the matched category.
	FieldCategory = "category"
	// FieldOutcome is the standardized structured logging key for operation outcomes.
	FieldOutcome = "outcome"
	// FieldErrorHint is the standardized structured logging key for recovery suggestions.
	FieldErrorHint = "error_hint"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if dir, ok := services.TargetDirFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldTargetDir, dir))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
