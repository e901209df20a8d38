package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/norskhelsenett/hecevent/internal/config"
)

type (
	configKey struct{}
	loggerKey struct{}
)

// WithConfig returns a new context carrying the loaded configuration
func WithConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// RequireConfig retrieves the configuration and returns an error if it was never loaded
func RequireConfig(ctx context.Context) (config.Config, error) {
	if cfg, ok := ctx.Value(configKey{}).(config.Config); ok {
		return cfg, nil
	}
	return config.Config{}, fmt.Errorf("configuration not loaded")
}

// WithLogger returns a new context carrying the logger
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger, or a no-op logger when none is set
func GetLogger(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}
