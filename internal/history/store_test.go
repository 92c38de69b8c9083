package history_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"finetrain/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run := &history.Run{
		ID:         uuid.NewString(),
		DatasetDir: "videos",
		Stage:      "captioning",
	}
	if err := store.Create(ctx, run); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if run.Status != history.StatusRunning {
		t.Fatalf("expected default running status, got %q", run.Status)
	}

	got, err := store.GetByID(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.DatasetDir != "videos" || got.Stage != "captioning" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be stamped")
	}
}

func TestUpdatePersistsProgress(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run := &history.Run{ID: uuid.NewString(), DatasetDir: "videos"}
	if err := store.Create(ctx, run); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	run.OutputDir = "outputs/train_x"
	run.CaptionsPath = "videos/captions.json"
	run.ConfigPath = "outputs/train_x/cfg_updated.yaml"
	run.Status = history.StatusCompleted
	run.Stage = "training"
	if err := store.Update(ctx, run); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err := store.GetByID(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Status != history.StatusCompleted || got.ConfigPath != "outputs/train_x/cfg_updated.yaml" {
		t.Fatalf("unexpected record after update: %+v", got)
	}
}

func TestUpdateMissingRun(t *testing.T) {
	store := openStore(t)

	err := store.Update(context.Background(), &history.Run{ID: uuid.NewString()})
	if !errors.Is(err, history.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListNewestFirstWithLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		run := &history.Run{ID: uuid.NewString(), DatasetDir: "videos"}
		if err := store.Create(ctx, run); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		ids = append(ids, run.ID)
	}

	runs, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != ids[2] {
		t.Fatalf("expected newest run first, got %q want %q", runs[0].ID, ids[2])
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := history.Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close first: %v", err)
	}

	second, err := history.Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	_ = second.Close()
}
