package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/duet/pkg/puzzle"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// ParseDays converts CLI arguments into days. No arguments means all.
func ParseDays(args []string) ([]puzzle.Day, error) {
	days := make([]puzzle.Day, 0, len(args))
	for _, a := range args {
		d, err := puzzle.ParseDay(a)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// createDebugHooks logs every solve at debug level.
func createDebugHooks(logger *slog.Logger) puzzle.LifecycleHooks {
	return puzzle.LifecycleHooks{
		OnSolveStart: func(ctx context.Context, e *puzzle.SolveEvent) {
			logger.Debug("Solve Start", "day", e.Day.String(), "input_bytes", e.InputBytes)
		},
		OnSolveEnd: func(ctx context.Context, e *puzzle.SolveEvent) {
			if e.Err != nil {
				logger.Debug("Solve End (Error)", "day", e.Day.String(), "err", e.Err)
			} else {
				logger.Debug("Solve End (Success)", "day", e.Day.String(), "duration", e.Duration)
			}
		},
	}
}
