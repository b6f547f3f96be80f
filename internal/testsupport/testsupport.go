// Package testsupport provides shared fixtures for tidy tests: temp-dir
// configs and seeded target directories.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"tidy/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test
// and ensures the log and state directories exist.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CategoriesFile = filepath.Join(base, "categories.json")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StateDir = filepath.Join(base, "state")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// SeedFiles creates the named files under dir with placeholder content.
func SeedFiles(t testing.TB, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("test content"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", path, err)
		}
	}
}

// ListDir returns the names of dir's immediate entries, directories included.
func ListDir(t testing.TB, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
