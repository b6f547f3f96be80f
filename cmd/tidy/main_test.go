package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	targetDir  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	targetDir := filepath.Join(base, "downloads")
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		t.Fatalf("mkdir target: %v", err)
	}

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
categories_file = %q
log_dir = %q
state_dir = %q

[logging]
format = "console"
level = "info"
retention_days = 7

[history]
enabled = true
`,
		filepath.Join(base, "categories.json"),
		filepath.Join(base, "logs"),
		filepath.Join(base, "state"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, targetDir: targetDir}
}

func (e *cliTestEnv) seed(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(e.targetDir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
}

func (e *cliTestEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestOrganizeCommandMovesFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "photo.jpg", "report.pdf", "notes")

	out, err := env.run(t, "organize", env.targetDir)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	if !strings.Contains(out, "File Organization Complete") {
		t.Fatalf("missing completion footer in output:\n%s", out)
	}

	if _, err := os.Stat(filepath.Join(env.targetDir, "Images", "photo.jpg")); err != nil {
		t.Fatalf("photo.jpg not moved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.targetDir, "Documents", "report.pdf")); err != nil {
		t.Fatalf("report.pdf not moved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.targetDir, "notes")); err != nil {
		t.Fatalf("extensionless file should stay put: %v", err)
	}
}

func TestPlanCommandLeavesFilesInPlace(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "song.mp3")

	out, err := env.run(t, "plan", env.targetDir)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !strings.Contains(out, "Dry Run Complete") {
		t.Fatalf("missing dry-run footer in output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(env.targetDir, "song.mp3")); err != nil {
		t.Fatalf("dry run must not move files: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.targetDir, "Audio")); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create category folders")
	}
}

func TestOrganizeCommandMissingDirectory(t *testing.T) {
	env := setupCLITestEnv(t)

	_, err := env.run(t, "organize", filepath.Join(env.baseDir, "no-such-dir"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !strings.Contains(err.Error(), "directory not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "clip.mp4")

	out, err := env.run(t, "list", env.targetDir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "  - clip.mp4") {
		t.Fatalf("listing missing clip.mp4:\n%s", out)
	}
}

func TestCategoriesCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := env.run(t, "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	for _, want := range []string{"Images", "Videos", ".jpg"} {
		if !strings.Contains(out, want) {
			t.Fatalf("categories output missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryCommandShowsOperations(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "archive.zip")

	if _, err := env.run(t, "organize", env.targetDir); err != nil {
		t.Fatalf("organize: %v", err)
	}

	out, err := env.run(t, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "archive.zip") {
		t.Fatalf("history output missing archive.zip:\n%s", out)
	}
}

func TestConfigValidateCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := env.run(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConfigShowCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := env.run(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "categories_file") {
		t.Fatalf("effective config missing paths section:\n%s", out)
	}
}
