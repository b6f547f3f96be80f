// Package logging assembles the structured slog loggers used across tidy.
//
// It owns the console and JSON handlers, per-run log file creation, level
// parsing, and retention pruning, and exposes context-aware helpers so
// operation code automatically tags lines with the run ID and target
// directory. A no-op logger is provided for tests and wiring code that cannot
// fail.
package logging
