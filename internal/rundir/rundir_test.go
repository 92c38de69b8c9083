package rundir_test

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"finetrain/internal/rundir"
	"finetrain/internal/services"
)

var runDirPattern = regexp.MustCompile(`^train_\d{8}_\d{6}_[0-9a-f]{6}$`)

func TestAllocateCreatesTimestampedDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "outputs")
	now := time.Date(2026, 8, 30, 12, 34, 56, 0, time.Local)

	path, err := rundir.New().Allocate(base, now)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}

	name := filepath.Base(path)
	if !runDirPattern.MatchString(name) {
		t.Fatalf("unexpected directory name: %q", name)
	}
	if want := "train_20260830_123456"; name[:len(want)] != want {
		t.Fatalf("expected timestamp prefix %q in %q", want, name)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat allocated dir: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("expected a directory")
	}
}

func TestAllocateSameSecondProducesDistinctPaths(t *testing.T) {
	base := t.TempDir()
	now := time.Now()

	allocator := rundir.New()
	first, err := allocator.Allocate(base, now)
	if err != nil {
		t.Fatalf("first allocation: %v", err)
	}
	second, err := allocator.Allocate(base, now)
	if err != nil {
		t.Fatalf("second allocation: %v", err)
	}
	if first == second {
		t.Fatalf("allocations collided: %q", first)
	}
}

func TestAllocateRefusesExistingPath(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	allocator := rundir.New(rundir.WithTokenSource(func() string { return "abc123" }))
	if _, err := allocator.Allocate(base, now); err != nil {
		t.Fatalf("first allocation: %v", err)
	}

	_, err := allocator.Allocate(base, now)
	if err == nil {
		t.Fatal("expected collision failure")
	}
	if !errors.Is(err, services.ErrIO) {
		t.Fatalf("expected io marker, got %v", err)
	}
}

func TestAllocateRequiresBase(t *testing.T) {
	if _, err := rundir.New().Allocate("", time.Now()); err == nil {
		t.Fatal("expected error for empty base")
	}
}
