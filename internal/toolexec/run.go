package toolexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"finetrain/internal/logging"
)

var commandContext = exec.CommandContext

// Result captures the outcome of one external stage invocation.
type Result struct {
	ExitCode int
	Err      error
}

// Failed reports whether the invocation terminated abnormally.
func (r Result) Failed() bool {
	return r.Err != nil || r.ExitCode != 0
}

// Diagnostic returns a short human-readable failure description.
func (r Result) Diagnostic() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case r.ExitCode != 0:
		return fmt.Sprintf("exit status %d", r.ExitCode)
	default:
		return ""
	}
}

// Executor runs one external tool to completion, blocking until it exits.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) Result
}

// Streaming executes tools with stdout/stderr inherited from the caller so
// operators see live progress. It performs no retries and enforces no
// timeout beyond context cancellation.
type Streaming struct {
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Streaming executor.
type Option func(*Streaming)

// WithOutput redirects the child process streams (primarily for tests).
func WithOutput(stdout, stderr io.Writer) Option {
	return func(s *Streaming) {
		if stdout != nil {
			s.stdout = stdout
		}
		if stderr != nil {
			s.stderr = stderr
		}
	}
}

// NewStreaming constructs the default executor.
func NewStreaming(logger *slog.Logger, opts ...Option) *Streaming {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Streaming{logger: logger, stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run launches the binary and blocks until it terminates.
func (s *Streaming) Run(ctx context.Context, binary string, args []string) Result {
	commandLine := strings.Join(append([]string{binary}, args...), " ")
	fmt.Fprintln(s.stdout, "+ "+commandLine)
	s.logger.Debug("launching stage command", logging.String("command", commandLine))

	cmd := commandContext(ctx, binary, args...)
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	err := cmd.Run()
	if err == nil {
		return Result{}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{ExitCode: exitErr.ExitCode()}
	}
	return Result{ExitCode: -1, Err: fmt.Errorf("start %s: %w", binary, err)}
}
