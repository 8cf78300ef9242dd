// Package runner executes solvers against input files, firing lifecycle
// hooks and logging around every solve.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/duet/internal/config"
	"github.com/aretw0/duet/internal/logging"
	"github.com/aretw0/duet/pkg/puzzle"
)

// ErrDisabled is returned when a day is disabled in the configuration.
var ErrDisabled = errors.New("day disabled")

// Solvers is the subset of the registry the runner needs.
type Solvers interface {
	Solve(ctx context.Context, day puzzle.Day, input string) (puzzle.Answer, error)
	Has(day puzzle.Day) bool
	Days() []puzzle.Day
}

// Runner resolves inputs and runs solvers.
type Runner struct {
	// Logger is used for solve_start/solve_end records.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Config locates input files. Defaults to config.Default().
	Config config.Config

	// Hooks are fired around every solve.
	Hooks puzzle.LifecycleHooks

	solvers  Solvers
	readFile func(string) ([]byte, error)
}

// Outcome is the result of one day in RunAll.
type Outcome struct {
	Day    puzzle.Day
	Answer puzzle.Answer
	Err    error
}

// New creates a Runner over solvers.
func New(solvers Solvers, opts ...Option) *Runner {
	r := &Runner{
		Config:   config.Default(),
		solvers:  solvers,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// InputPath returns the file Run reads for day.
func (r *Runner) InputPath(day puzzle.Day) string {
	return r.Config.InputPath(day)
}

// Run loads the day's input file and solves it.
func (r *Runner) Run(ctx context.Context, day puzzle.Day) (puzzle.Answer, error) {
	if !r.solvers.Has(day) {
		return puzzle.Answer{}, fmt.Errorf("%w: %s", puzzle.ErrUnknownDay, day)
	}
	if r.Config.ForDay(day).Disabled {
		return puzzle.Answer{}, fmt.Errorf("%w: %s", ErrDisabled, day)
	}

	path := r.InputPath(day)
	data, err := r.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return puzzle.Answer{}, fmt.Errorf("%w: %s", puzzle.ErrNoInput, path)
		}
		return puzzle.Answer{}, fmt.Errorf("failed to read input for %s: %w", day, err)
	}
	return r.RunInput(ctx, day, string(data))
}

// RunInput solves day with the given input text. Surrounding whitespace is
// trimmed; an input that is empty after trimming is rejected.
func (r *Runner) RunInput(ctx context.Context, day puzzle.Day, input string) (puzzle.Answer, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return puzzle.Answer{}, fmt.Errorf("%w: %s", puzzle.ErrNoInput, day)
	}

	event := &puzzle.SolveEvent{Timestamp: time.Now(), Day: day, InputBytes: len(input)}
	if r.Hooks.OnSolveStart != nil {
		r.Hooks.OnSolveStart(ctx, event)
	}
	r.Logger.Debug("solve_start", "day", day.String(), "input_bytes", len(input))

	start := time.Now()
	ans, err := r.solvers.Solve(ctx, day, input)
	elapsed := time.Since(start)

	end := &puzzle.SolveEvent{
		Timestamp:  time.Now(),
		Day:        day,
		InputBytes: len(input),
		Duration:   elapsed,
		Err:        err,
	}
	if err == nil {
		ans.Day = day
		ans.Duration = elapsed
		end.Answer = &ans
	}
	if r.Hooks.OnSolveEnd != nil {
		r.Hooks.OnSolveEnd(ctx, end)
	}

	if err != nil {
		r.Logger.Error("solve_end", "day", day.String(), "duration", elapsed, "error", err)
		return puzzle.Answer{}, fmt.Errorf("solve %s: %w", day, err)
	}
	r.Logger.Info("solve_end", "day", day.String(), "duration", elapsed, "input_bytes", len(input))
	return ans, nil
}

// RunAll runs every registered, enabled day in order. A failing day does
// not stop the others; the returned error joins every failure.
func (r *Runner) RunAll(ctx context.Context) ([]Outcome, error) {
	var (
		outcomes []Outcome
		errs     []error
	)
	for _, day := range r.solvers.Days() {
		if r.Config.ForDay(day).Disabled {
			r.Logger.Debug("solve_skip", "day", day.String())
			continue
		}
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		ans, err := r.Run(ctx, day)
		outcomes = append(outcomes, Outcome{Day: day, Answer: ans, Err: err})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return outcomes, errors.Join(errs...)
}
