package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/duet"
	"github.com/aretw0/duet/internal/config"
	"github.com/aretw0/duet/internal/logging"
	"github.com/aretw0/duet/pkg/observability"
)

// RunOptions are the persistent flags shared by every command.
type RunOptions struct {
	ConfigPath string
	Inputs     string
	LogLevel   string
	LogFormat  string
	Debug      bool
	Metrics    bool
}

// loadConfig reads the config file and lets non-empty flags override it.
func loadConfig(opts RunOptions) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if opts.Inputs != "" {
		cfg.Inputs = opts.Inputs
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	if opts.Metrics {
		cfg.Metrics = true
	}
	return cfg, cfg.Validate()
}

// createLogger configures the application logger from the config.
func createLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level, cfg.LogFormat), nil
}

// CreateEngine initializes a duet engine with standard CLI conventions.
func CreateEngine(opts RunOptions) (*duet.Engine, *slog.Logger, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}
	logger, err := createLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	engineOpts := []duet.Option{
		duet.WithConfig(cfg),
		duet.WithLogger(logger),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, duet.WithLifecycleHooks(createDebugHooks(logger)))
	}
	if cfg.Metrics {
		engineOpts = append(engineOpts, duet.WithMetrics(observability.New()))
	}

	engine, err := duet.New(engineOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, logger, nil
}
