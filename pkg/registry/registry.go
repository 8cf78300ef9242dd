package registry

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/aretw0/duet/pkg/puzzle"
)

// Registry maps days to their solvers.
type Registry struct {
	mu      sync.RWMutex
	solvers map[puzzle.Day]puzzle.Solver
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		solvers: make(map[puzzle.Day]puzzle.Solver),
	}
}

// Register adds a solver to the registry.
// If the day already has a solver, it is overwritten.
func (r *Registry) Register(day puzzle.Day, fn puzzle.Solver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solvers[day] = fn
}

// Has reports whether day has a solver.
func (r *Registry) Has(day puzzle.Day) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.solvers[day]
	return ok
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []puzzle.Day {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.solvers))
}

// Solve looks up the day's solver and runs it on input.
// Returns ErrUnknownDay if the day is not registered.
func (r *Registry) Solve(ctx context.Context, day puzzle.Day, input string) (puzzle.Answer, error) {
	r.mu.RLock()
	fn, ok := r.solvers[day]
	r.mu.RUnlock()

	if !ok {
		return puzzle.Answer{}, fmt.Errorf("%w: %s", puzzle.ErrUnknownDay, day)
	}

	ans, err := fn(ctx, input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ans.Day = day
	return ans, nil
}
