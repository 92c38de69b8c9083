package deps

import (
	"os"
	"path/filepath"
	"testing"

	"finetrain/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("expected unconfigured command detail, got %#v", results[2])
	}
}

func TestRequirementsCoverStageBinaries(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.CaptionerBin = "cap"
	cfg.Tools.PreprocessorBin = "pre"
	cfg.Tools.TrainerBin = "train"

	reqs := Requirements(&cfg)
	if len(reqs) != 3 {
		t.Fatalf("expected 3 requirements, got %d", len(reqs))
	}
	commands := map[string]bool{}
	for _, req := range reqs {
		commands[req.Command] = true
		if req.Optional {
			t.Fatalf("stage binary %s must not be optional", req.Name)
		}
	}
	for _, want := range []string{"cap", "pre", "train"} {
		if !commands[want] {
			t.Fatalf("requirements missing command %q", want)
		}
	}
}

func TestRequirementsNilConfig(t *testing.T) {
	if reqs := Requirements(nil); reqs != nil {
		t.Fatalf("expected nil requirements for nil config, got %#v", reqs)
	}
}
