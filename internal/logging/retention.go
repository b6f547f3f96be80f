package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CleanupOldLogs removes run log files under dir that are older than
// retentionDays. The file named by exclude (usually the current run log) is
// always kept. A retentionDays value of 0 disables pruning.
func CleanupOldLogs(logger *slog.Logger, dir string, retentionDays int, exclude string) {
	if retentionDays <= 0 || strings.TrimSpace(dir) == "" {
		return
	}
	if logger == nil {
		logger = NewNop()
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	excludeAbs := ""
	if trimmed := strings.TrimSpace(exclude); trimmed != "" {
		if abs, err := filepath.Abs(trimmed); err == nil {
			excludeAbs = abs
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(RunLogFilePattern, entry.Name())
		if err != nil || !matched {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		if abs, err := filepath.Abs(full); err == nil && abs == excludeAbs {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(full); err == nil {
			removed++
		}
	}
	if removed > 0 {
		logger.Debug("pruned old run logs", Int("removed", removed), String("dir", dir))
	}
}
