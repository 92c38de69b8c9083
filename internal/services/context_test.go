package services_test

import (
	"context"
	"testing"

	"finetrain/internal/services"
)

func TestStageContextRoundTrip(t *testing.T) {
	ctx := services.WithStage(context.Background(), "preprocessing")
	stage, ok := services.StageFromContext(ctx)
	if !ok || stage != "preprocessing" {
		t.Fatalf("expected stage to round-trip, got %q (%v)", stage, ok)
	}

	if _, ok := services.StageFromContext(context.Background()); ok {
		t.Fatal("expected missing stage to report false")
	}

	if got := services.WithStage(context.Background(), ""); got != context.Background() {
		t.Fatal("expected empty stage to leave context untouched")
	}
}

func TestRunIDContextRoundTrip(t *testing.T) {
	ctx := services.WithRunID(context.Background(), "run-123")
	id, ok := services.RunIDFromContext(ctx)
	if !ok || id != "run-123" {
		t.Fatalf("expected run id to round-trip, got %q (%v)", id, ok)
	}

	if _, ok := services.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected missing run id to report false")
	}
}
