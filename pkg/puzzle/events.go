package puzzle

import (
	"context"
	"time"
)

// SolveEvent describes one solve. Answer and Err are only set on the end
// event.
type SolveEvent struct {
	Timestamp  time.Time     `json:"timestamp"`
	Day        Day           `json:"day"`
	InputBytes int           `json:"input_bytes"`
	Duration   time.Duration `json:"duration,omitempty"`
	Answer     *Answer       `json:"answer,omitempty"`
	Err        error         `json:"-"`
}

// LifecycleHooks defines callbacks fired around each solve. Nil callbacks
// are skipped.
type LifecycleHooks struct {
	OnSolveStart func(context.Context, *SolveEvent)
	OnSolveEnd   func(context.Context, *SolveEvent)
}

// ChainHooks returns hooks that call each of hs in order.
func ChainHooks(hs ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnSolveStart: func(ctx context.Context, e *SolveEvent) {
			for _, h := range hs {
				if h.OnSolveStart != nil {
					h.OnSolveStart(ctx, e)
				}
			}
		},
		OnSolveEnd: func(ctx context.Context, e *SolveEvent) {
			for _, h := range hs {
				if h.OnSolveEnd != nil {
					h.OnSolveEnd(ctx, e)
				}
			}
		},
	}
}
