package app

import (
	"github.com/rs/zerolog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger zerolog.Logger
}

// WithLogger sets the logger handed to every service
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

func newAppConfig(opts []Option) *appConfig {
	cfg := &appConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
