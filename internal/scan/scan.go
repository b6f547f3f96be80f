// Package scan lists the organizable files of a directory: immediate entries
// only, regular files only, never the running executable itself.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Scanner lists organizable files. The excluded self path is explicit state
// so tests can control it.
type Scanner struct {
	self string
}

// New returns a scanner that excludes the running executable from results.
func New() *Scanner {
	return &Scanner{self: selfPath()}
}

// NewWithSelf returns a scanner that excludes the given absolute path.
func NewWithSelf(path string) *Scanner {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Scanner{self: path}
}

// Files returns the names of regular files directly inside dir, in
// enumeration order. The error wraps fs.ErrNotExist when dir is missing, so
// callers can report "directory not found" and carry on.
func (s *Scanner) Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list directory %q: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between listing and stat; nothing to organize.
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if s.isSelf(filepath.Join(dir, entry.Name())) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

func (s *Scanner) isSelf(path string) bool {
	if s.self == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if abs == s.self {
		return true
	}
	resolved, err := filepath.EvalSymlinks(abs)
	return err == nil && resolved == s.self
}

var selfPath = sync.OnceValue(func() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
})
