package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/sizerating/internal/cli/styles"
	"github.com/thenoetrevino/sizerating/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	Config     *config.Config
	ConfigPath string // empty means the default location
}

type contextKey struct{}

// NewCLI loads the configuration from configPath, or from the default
// location when configPath is empty
func NewCLI(configPath string) (*CLI, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	styles.Init(cfg.Theme)

	return &CLI{Config: cfg, ConfigPath: configPath}, nil
}

// WithCLI returns a context carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the CLI stored by WithCLI, if any
func FromContext(ctx context.Context) (*CLI, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	return c, ok && c != nil
}

// GetCLIFromContext returns the CLI stored by WithCLI, loading one from the
// default config location if none is present
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := FromContext(ctx); ok {
		return c, nil
	}
	return NewCLI("")
}

// Path returns the config file this CLI reads and writes
func (c *CLI) Path() (string, error) {
	if c.ConfigPath != "" {
		return c.ConfigPath, nil
	}
	return config.Path()
}
