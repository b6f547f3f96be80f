package organize_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"tidy/internal/categories"
	"tidy/internal/logging"
	"tidy/internal/organize"
	"tidy/internal/scan"
	"tidy/internal/testsupport"
)

var seedNames = []string{"a.jpg", "b.pdf", "c.mp4", "d.mp3", "e.py", "f.zip", "g", "h.xyz"}

func newOrganizer(t *testing.T, sink organize.Sink) *organize.Organizer {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	return organize.NewWithDependencies(
		cfg,
		categories.DefaultTable(),
		logging.NewNop(),
		scan.NewWithSelf(filepath.Join(t.TempDir(), "tidy")),
		sink,
	)
}

func outcomeByFile(records []organize.Record) map[string]organize.Record {
	out := make(map[string]organize.Record, len(records))
	for _, rec := range records {
		out[rec.File] = rec
	}
	return out
}

func TestProcessMissingDirectory(t *testing.T) {
	o := newOrganizer(t, nil)
	_, err := o.Process(context.Background(), filepath.Join(t.TempDir(), "nope"), false)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDryRunPlansWithoutMutating(t *testing.T) {
	dir := t.TempDir()
	testsupport.SeedFiles(t, dir, seedNames...)
	before := testsupport.ListDir(t, dir)

	o := newOrganizer(t, nil)
	records, err := o.Process(context.Background(), dir, true)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	after := testsupport.ListDir(t, dir)
	slices.Sort(before)
	slices.Sort(after)
	if !slices.Equal(before, after) {
		t.Fatalf("dry run mutated the directory: before=%v after=%v", before, after)
	}

	byFile := outcomeByFile(records)
	for _, name := range []string{"a.jpg", "b.pdf", "c.mp4", "d.mp3", "e.py", "f.zip"} {
		rec := byFile[name]
		if rec.Outcome != organize.OutcomePlanned {
			t.Errorf("%s: outcome = %q, want planned", name, rec.Outcome)
		}
		if rec.Category == "" {
			t.Errorf("%s: planned record missing category", name)
		}
	}
	if byFile["g"].Outcome != organize.OutcomeNoExtension {
		t.Errorf("g: outcome = %q, want skipped-no-extension", byFile["g"].Outcome)
	}
	if byFile["h.xyz"].Outcome != organize.OutcomeUnknownType {
		t.Errorf("h.xyz: outcome = %q, want skipped-unknown-type", byFile["h.xyz"].Outcome)
	}
}

func TestRealRunMovesRecognizedFiles(t *testing.T) {
	dir := t.TempDir()
	testsupport.SeedFiles(t, dir, seedNames...)

	o := newOrganizer(t, nil)
	records, err := o.Process(context.Background(), dir, false)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(records) != len(seedNames) {
		t.Fatalf("got %d records, want %d", len(records), len(seedNames))
	}

	byFile := outcomeByFile(records)
	wantCategory := map[string]string{
		"a.jpg": "Images",
		"b.pdf": "Documents",
		"c.mp4": "Videos",
		"d.mp3": "Audio",
		"e.py":  "Scripts",
		"f.zip": "Archives",
	}
	for name, category := range wantCategory {
		rec := byFile[name]
		if rec.Outcome != organize.OutcomeMoved || rec.Category != category {
			t.Errorf("%s: got %q/%q, want moved/%s", name, rec.Outcome, rec.Category, category)
		}
		moved := filepath.Join(dir, category, name)
		if _, err := os.Stat(moved); err != nil {
			t.Errorf("%s: expected file at %s: %v", name, moved, err)
		}
	}
	if byFile["g"].Outcome != organize.OutcomeNoExtension {
		t.Errorf("g: outcome = %q", byFile["g"].Outcome)
	}
	if byFile["h.xyz"].Outcome != organize.OutcomeUnknownType {
		t.Errorf("h.xyz: outcome = %q", byFile["h.xyz"].Outcome)
	}

	// Target now holds the six category folders plus the two untouched files.
	remaining := testsupport.ListDir(t, dir)
	slices.Sort(remaining)
	want := []string{"Archives", "Audio", "Documents", "Images", "Scripts", "Videos", "g", "h.xyz"}
	if !slices.Equal(remaining, want) {
		t.Fatalf("directory contents = %v, want %v", remaining, want)
	}
}

func TestRealRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	testsupport.SeedFiles(t, dir, seedNames...)

	o := newOrganizer(t, nil)
	if _, err := o.Process(context.Background(), dir, false); err != nil {
		t.Fatalf("first run: %v", err)
	}

	records, err := o.Process(context.Background(), dir, false)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	for _, rec := range records {
		if rec.Outcome == organize.OutcomeMoved {
			t.Errorf("second run moved %s", rec.File)
		}
		if rec.Outcome.IsError() {
			t.Errorf("second run errored on %s: %s", rec.File, rec.Detail)
		}
	}
}

func TestCollisionSkipsAndKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	testsupport.SeedFiles(t, dir, "a.jpg")
	if err := os.Mkdir(filepath.Join(dir, "Images"), 0o755); err != nil {
		t.Fatal(err)
	}
	occupied := filepath.Join(dir, "Images", "a.jpg")
	if err := os.WriteFile(occupied, []byte("already here"), 0o644); err != nil {
		t.Fatal(err)
	}

	o := newOrganizer(t, nil)
	records, err := o.Process(context.Background(), dir, false)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	rec := outcomeByFile(records)["a.jpg"]
	if rec.Outcome != organize.OutcomeExists {
		t.Fatalf("outcome = %q, want skipped-exists", rec.Outcome)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.jpg")); err != nil {
		t.Fatal("original file must be left in place on collision")
	}
	got, err := os.ReadFile(occupied)
	if err != nil || string(got) != "already here" {
		t.Fatalf("destination file must be untouched: %q %v", got, err)
	}
}

type captureSink struct {
	records []organize.Record
	dryRuns []bool
}

func (c *captureSink) Record(_ context.Context, _ string, dryRun bool, rec organize.Record) {
	c.records = append(c.records, rec)
	c.dryRuns = append(c.dryRuns, dryRun)
}

func TestRecordsStreamToSink(t *testing.T) {
	dir := t.TempDir()
	testsupport.SeedFiles(t, dir, "a.jpg", "g")

	sink := &captureSink{}
	o := newOrganizer(t, sink)
	records, err := o.Process(context.Background(), dir, true)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(sink.records) != len(records) {
		t.Fatalf("sink saw %d records, want %d", len(sink.records), len(records))
	}
	for _, dry := range sink.dryRuns {
		if !dry {
			t.Fatal("sink should see dry_run=true for a dry run")
		}
	}
}

func TestFullScanCompletionDespiteCollisions(t *testing.T) {
	// A collision on the first file must not stop later files from moving.
	dir := t.TempDir()
	testsupport.SeedFiles(t, dir, "a.jpg", "b.pdf")
	if err := os.MkdirAll(filepath.Join(dir, "Images"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Images", "a.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	o := newOrganizer(t, nil)
	records, err := o.Process(context.Background(), dir, false)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	byFile := outcomeByFile(records)
	if byFile["a.jpg"].Outcome != organize.OutcomeExists {
		t.Fatalf("a.jpg outcome = %q", byFile["a.jpg"].Outcome)
	}
	if byFile["b.pdf"].Outcome != organize.OutcomeMoved {
		t.Fatalf("b.pdf outcome = %q, want moved", byFile["b.pdf"].Outcome)
	}
}
