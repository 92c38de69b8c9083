package preprocess

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"finetrain/internal/logging"
	"finetrain/internal/services"
	"finetrain/internal/toolexec"
)

// Params carries the preprocessing stage inputs beyond the captions file.
type Params struct {
	CaptionColumn     string
	VideoColumn       string
	IDToken           string
	ResolutionBuckets string
}

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

// Client wraps the preprocessing tool CLI.
type Client struct {
	binary string
	exec   toolexec.Executor
	logger *slog.Logger
}

// New constructs a preprocess client.
func New(binary string, logger *slog.Logger, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("preprocessor binary required")
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

// Preprocess runs the dataset preprocessing tool against the captions file.
func (c *Client) Preprocess(ctx context.Context, captionsPath string, params Params) error {
	if captionsPath == "" {
		return services.Wrap(services.ErrValidation, "preprocessing", "run", "captions file path required", nil)
	}

	args := []string{
		captionsPath,
		"--caption-column", params.CaptionColumn,
		"--video-column", params.VideoColumn,
		"--id-token", params.IDToken,
		"--resolution-buckets", params.ResolutionBuckets,
	}
	if res := c.exec.Run(ctx, c.binary, args); res.Failed() {
		return services.Wrap(services.ErrExternalTool, "preprocessing", "run", res.Diagnostic(), res.Err)
	}
	return nil
}
