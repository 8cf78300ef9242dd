package duet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/duet/internal/config"
	"github.com/aretw0/duet/internal/logging"
	"github.com/aretw0/duet/internal/runner"
	"github.com/aretw0/duet/pkg/observability"
	"github.com/aretw0/duet/pkg/puzzle"
	"github.com/aretw0/duet/pkg/registry"
	"github.com/aretw0/duet/pkg/solutions"
)

// Version is the module release.
const Version = "0.3.0"

// Engine is the high-level entry point for the duet library.
// It wires the built-in solvers, the input runner and optional metrics.
type Engine struct {
	registry   *registry.Registry
	runner     *runner.Runner
	metrics    *observability.Metrics
	hooks      puzzle.LifecycleHooks
	logger     *slog.Logger
	cfg        config.Config
	configPath string
	extra      map[puzzle.Day]puzzle.Solver
}

// Result is the outcome of one day in SolveAll.
type Result struct {
	Day    puzzle.Day
	Answer puzzle.Answer
	Err    error
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks puzzle.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithConfig uses an already loaded configuration.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
		e.configPath = ""
	}
}

// WithConfigFile loads the configuration from path when the engine is built.
func WithConfigFile(path string) Option {
	return func(e *Engine) {
		e.configPath = path
	}
}

// WithInputs overrides the directory input files are read from.
func WithInputs(dir string) Option {
	return func(e *Engine) {
		e.cfg.Inputs = dir
	}
}

// WithMetrics records every solve into m.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithSolver registers an additional solver, replacing a built-in one for
// the same day.
func WithSolver(day puzzle.Day, fn puzzle.Solver) Option {
	return func(e *Engine) {
		if e.extra == nil {
			e.extra = make(map[puzzle.Day]puzzle.Solver)
		}
		e.extra[day] = fn
	}
}

// New initializes a new Engine with the built-in solvers.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{cfg: config.Default()}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.configPath != "" {
		inputs := eng.cfg.Inputs
		cfg, err := config.Load(eng.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		// An explicit WithInputs wins over the file.
		if inputs != config.Default().Inputs {
			cfg.Inputs = inputs
		}
		eng.cfg = cfg
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	eng.logger = eng.logger.With("component", "duet")

	eng.registry = registry.NewRegistry()
	solutions.Register(eng.registry)
	for day, fn := range eng.extra {
		eng.registry.Register(day, fn)
	}

	hooks := eng.hooks
	if eng.metrics != nil {
		hooks = puzzle.ChainHooks(eng.hooks, eng.metrics.Hooks())
	}

	eng.runner = runner.New(eng.registry,
		runner.WithConfig(eng.cfg),
		runner.WithLogger(eng.logger),
		runner.WithLifecycleHooks(hooks),
	)
	return eng, nil
}

// Days lists the days that have a solver.
func (e *Engine) Days() []puzzle.Day {
	return e.registry.Days()
}

// Config returns the effective configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Metrics returns the metrics passed with WithMetrics, or nil.
func (e *Engine) Metrics() *observability.Metrics {
	return e.metrics
}

// InputPath returns the file Solve reads for day.
func (e *Engine) InputPath(day puzzle.Day) string {
	return e.runner.InputPath(day)
}

// Solve reads the day's input file and solves it.
func (e *Engine) Solve(ctx context.Context, day puzzle.Day) (puzzle.Answer, error) {
	return e.runner.Run(ctx, day)
}

// SolveInput solves day with the given input text.
func (e *Engine) SolveInput(ctx context.Context, day puzzle.Day, input string) (puzzle.Answer, error) {
	return e.runner.RunInput(ctx, day, input)
}

// SolveAll solves every enabled day in order. The error joins the
// individual failures; results are returned for every attempted day.
func (e *Engine) SolveAll(ctx context.Context) ([]Result, error) {
	outcomes, err := e.runner.RunAll(ctx)
	results := make([]Result, len(outcomes))
	for i, o := range outcomes {
		results[i] = Result{Day: o.Day, Answer: o.Answer, Err: o.Err}
	}
	return results, err
}
