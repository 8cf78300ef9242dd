package observability

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/duet/pkg/puzzle"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics groups the collectors updated by Hooks.
type Metrics struct {
	registry *prometheus.Registry

	SolveDuration *prometheus.HistogramVec
	Solves        *prometheus.CounterVec
	Instructions  *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "duet_solve_duration_seconds",
				Help:    "Duration of solver runs",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"day"},
		),
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duet_solves_total",
				Help: "Total number of solver runs by outcome",
			},
			[]string{"day", "outcome"},
		),
		Instructions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duet_instructions_total",
				Help: "Machine instructions executed, by opcode",
			},
			[]string{"machine", "opcode"},
		),
	}
	m.registry.MustRegister(m.SolveDuration, m.Solves, m.Instructions)
	return m
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks that record every finished solve.
func (m *Metrics) Hooks() puzzle.LifecycleHooks {
	return puzzle.LifecycleHooks{
		OnSolveEnd: func(_ context.Context, e *puzzle.SolveEvent) {
			day := e.Day.String()
			m.SolveDuration.WithLabelValues(day).Observe(e.Duration.Seconds())
			if e.Err != nil {
				m.Solves.WithLabelValues(day, OutcomeError).Inc()
				return
			}
			m.Solves.WithLabelValues(day, OutcomeOK).Inc()
			if e.Answer == nil {
				return
			}
			for _, x := range e.Answer.Executions {
				m.Instructions.WithLabelValues(x.Machine, x.Opcode).Add(float64(x.Count))
			}
		},
	}
}

// WriteText writes every metric family in the text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
