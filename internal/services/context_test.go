package services_test

import (
	"context"
	"testing"

	"tidy/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRunID(ctx, "run-123")
	ctx = services.WithTargetDir(ctx, "/tmp/downloads")

	if id, ok := services.RunIDFromContext(ctx); !ok || id != "run-123" {
		t.Fatalf("unexpected run id: %v %v", id, ok)
	}
	if dir, ok := services.TargetDirFromContext(ctx); !ok || dir != "/tmp/downloads" {
		t.Fatalf("unexpected target dir: %v %v", dir, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRunID(ctx, "")
	ctx = services.WithTargetDir(ctx, "")
	if _, ok := services.RunIDFromContext(ctx); ok {
		t.Fatal("expected no run id value")
	}
	if _, ok := services.TargetDirFromContext(ctx); ok {
		t.Fatal("expected no target dir value")
	}
}
