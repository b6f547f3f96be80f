package history_test

import (
	"context"
	"testing"

	"tidy/internal/history"
	"tidy/internal/logging"
	"tidy/internal/organize"
	"tidy/internal/services"
	"tidy/internal/testsupport"
)

func TestRecordAndRecent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	ctx := services.WithRunID(context.Background(), "run-1")
	store.Record(ctx, "/downloads", false, organize.Record{
		File:     "a.jpg",
		Category: "Images",
		Outcome:  organize.OutcomeMoved,
	})
	store.Record(ctx, "/downloads", true, organize.Record{
		File:    "h.xyz",
		Outcome: organize.OutcomeUnknownType,
		Detail:  `unknown file type ".xyz"`,
	})

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Newest first.
	if entries[0].File != "h.xyz" || !entries[0].DryRun {
		t.Fatalf("unexpected newest entry: %+v", entries[0])
	}
	if entries[1].File != "a.jpg" || entries[1].Category != "Images" || entries[1].DryRun {
		t.Fatalf("unexpected entry: %+v", entries[1])
	}
	if entries[1].RunID != "run-1" {
		t.Fatalf("run id not recorded: %+v", entries[1])
	}
	if entries[1].RecordedAt.IsZero() {
		t.Fatal("recorded_at should parse")
	}
}

func TestRecentLimit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		store.Record(ctx, "/d", false, organize.Record{File: "x.png", Category: "Images", Outcome: organize.OutcomeMoved})
	}

	entries, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	store.Record(context.Background(), "/d", false, organize.Record{File: "a.jpg", Category: "Images", Outcome: organize.OutcomeMoved})
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := history.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries after reopen, want 1", len(entries))
	}
}
