package toolexec_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"finetrain/internal/logging"
	"finetrain/internal/toolexec"
)

func TestStreamingRunSuccess(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exec := toolexec.NewStreaming(logging.NewNop(), toolexec.WithOutput(&stdout, &stderr))

	res := exec.Run(context.Background(), "sh", []string{"-c", "echo hello"})
	if res.Failed() {
		t.Fatalf("expected success, got %v (exit %d)", res.Err, res.ExitCode)
	}
	if !strings.Contains(stdout.String(), "hello") {
		t.Fatalf("expected child stdout to be streamed, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "+ sh -c") {
		t.Fatalf("expected command line announcement, got %q", stdout.String())
	}
}

func TestStreamingRunNonZeroExit(t *testing.T) {
	var stdout bytes.Buffer
	exec := toolexec.NewStreaming(logging.NewNop(), toolexec.WithOutput(&stdout, &stdout))

	res := exec.Run(context.Background(), "sh", []string{"-c", "exit 3"})
	if !res.Failed() {
		t.Fatal("expected failure")
	}
	if res.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", res.ExitCode)
	}
	if res.Err != nil {
		t.Fatalf("exit failures should carry no start error, got %v", res.Err)
	}
	if res.Diagnostic() != "exit status 3" {
		t.Fatalf("unexpected diagnostic: %q", res.Diagnostic())
	}
}

func TestStreamingRunMissingBinary(t *testing.T) {
	var stdout bytes.Buffer
	exec := toolexec.NewStreaming(logging.NewNop(), toolexec.WithOutput(&stdout, &stdout))

	res := exec.Run(context.Background(), "finetrain-no-such-binary", nil)
	if !res.Failed() {
		t.Fatal("expected failure for missing binary")
	}
	if res.Err == nil {
		t.Fatal("expected start error")
	}
	if res.Diagnostic() == "" {
		t.Fatal("expected diagnostic text")
	}
}
