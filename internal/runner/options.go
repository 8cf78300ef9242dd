package runner

import (
	"log/slog"

	"github.com/aretw0/duet/internal/config"
	"github.com/aretw0/duet/pkg/puzzle"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithConfig sets where inputs are found and which days are disabled.
func WithConfig(cfg config.Config) Option {
	return func(r *Runner) {
		r.Config = cfg
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks puzzle.LifecycleHooks) Option {
	return func(r *Runner) {
		r.Hooks = hooks
	}
}

// WithReadFile replaces os.ReadFile for loading inputs.
func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(r *Runner) {
		r.readFile = fn
	}
}
