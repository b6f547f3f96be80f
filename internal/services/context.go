package services

import "context"

type contextKey string

const (
	runIDKey     contextKey = "run_id"
	targetDirKey contextKey = "target_dir"
)

// WithRunID annotates context with the run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithTargetDir annotates context with the directory being processed.
func WithTargetDir(ctx context.Context, dir string) context.Context {
	if dir == "" {
		return ctx
	}
	return context.WithValue(ctx, targetDirKey, dir)
}

// TargetDirFromContext returns the directory being processed if present.
func TargetDirFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(targetDirKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
