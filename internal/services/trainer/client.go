package trainer

import (
	"context"
	"errors"
	"log/slog"
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

// Client wraps the training tool CLI.
type Client struct {
	binary string
	exec   toolexec.Executor
	logger *slog.Logger
}

// New constructs a trainer client.
func New(binary string, logger *slog.Logger, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("trainer binary required")
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

// Train launches training with the derived configuration file.
func (c *Client) Train(ctx context.Context, configPath string) error {
	if configPath == "" {
		return services.Wrap(services.ErrValidation, "training", "run", "derived config path required", nil)
	}

	if res := c.exec.Run(ctx, c.binary, []string{configPath}); res.Failed() {
		return services.Wrap(services.ErrExternalTool, "training", "run", res.Diagnostic(), res.Err)
	}
	return nil
}
