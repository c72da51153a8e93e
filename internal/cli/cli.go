package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/ledger/internal/app"
	"github.com/thenoetrevino/ledger/internal/config"
	"github.com/thenoetrevino/ledger/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
}

// NewCLI opens both database files named by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.Open(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    application,
		Config: cfg,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.App == nil {
		return nil
	}
	return c.App.Close()
}

type contextKey struct{}

// WithCLI returns a copy of ctx carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// WithApp wraps an already built App, used when the caller owns the handles
func WithApp(ctx context.Context, application *app.App) context.Context {
	return WithCLI(ctx, &CLI{App: application, Config: config.Default()})
}

// GetCLIFromContext returns the CLI stored by the root command
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, fmt.Errorf("no context")
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	if !ok || c == nil || c.App == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return c, nil
}
