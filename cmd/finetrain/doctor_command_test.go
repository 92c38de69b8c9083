package main

import (
	"strings"
	"testing"
)

func TestDoctorAllChecksPass(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	for _, name := range []string{"Output directory", "Training config", "Captioner", "Preprocessor", "Trainer"} {
		if !strings.Contains(out, name) {
			t.Fatalf("doctor output missing %q check: %q", name, out)
		}
	}
	if strings.Contains(out, "missing") {
		t.Fatalf("expected no missing checks: %q", out)
	}
}

func TestDoctorReportsMissingBinary(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Tools.TrainerBin = "definitely-not-installed-trainer"
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, env.configPath, "doctor")
	if err == nil {
		t.Fatal("expected doctor to fail with a missing trainer binary")
	}
	if !strings.Contains(out, "missing") {
		t.Fatalf("doctor output missing failure marker: %q", out)
	}
}
