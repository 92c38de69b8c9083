package captioner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"finetrain/internal/logging"
	"finetrain/internal/services"
	"finetrain/internal/toolexec"
)

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec toolexec.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps the captioning tool CLI.
type Client struct {
	binary string
	exec   toolexec.Executor
	logger *slog.Logger
}

// New constructs a captioner client.
func New(binary string, logger *slog.Logger, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("captioner binary required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	client := &Client{
		binary: binary,
		exec:   toolexec.NewStreaming(logger),
		logger: logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Caption generates captions for every video under datasetDir, writing the
// artifact to outputPath. Success requires the artifact to exist and be
// non-empty.
func (c *Client) Caption(ctx context.Context, datasetDir, outputPath, captionerType string) error {
	if datasetDir == "" {
		return services.Wrap(services.ErrValidation, "captioning", "run", "dataset directory required", nil)
	}
	if outputPath == "" {
		return services.Wrap(services.ErrValidation, "captioning", "run", "captions output path required", nil)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return services.Wrap(services.ErrIO, "captioning", "prepare", fmt.Sprintf("create captions directory for %s", outputPath), err)
	}

	args := []string{datasetDir, "--output", outputPath, "--captioner-type", captionerType}
	if res := c.exec.Run(ctx, c.binary, args); res.Failed() {
		return services.Wrap(services.ErrExternalTool, "captioning", "run", res.Diagnostic(), res.Err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "captioning", "verify", fmt.Sprintf("captions artifact %s missing after successful exit", outputPath), err)
	}
	if info.Size() == 0 {
		return services.Wrap(services.ErrExternalTool, "captioning", "verify", fmt.Sprintf("captions artifact %s is empty", outputPath), nil)
	}
	return nil
}
