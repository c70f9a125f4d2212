package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/fsnav/pkg/domain"
)

const namespace = "fsnav"

// Metrics holds the session counters.
type Metrics struct {
	registry    *prometheus.Registry
	commands    *prometheus.CounterVec
	transitions *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

// NewMetrics creates the counters on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Commands processed, by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transitions_total",
				Help:      "Changes of the current directory, by kind.",
			},
			[]string{"kind"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "failures_total",
				Help:      "Rejected command lines, by error code.",
			},
			[]string{"code"},
		),
	}
	m.registry.MustRegister(m.commands, m.transitions, m.failures)
	return m
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks that update the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(_ context.Context, e *domain.CommandEvent) {
			m.commands.WithLabelValues(kindLabel(e.Kind), "ok").Inc()
		},
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			m.transitions.WithLabelValues(kindLabel(e.Kind)).Inc()
		},
		OnFailure: func(_ context.Context, e *domain.CommandEvent) {
			m.commands.WithLabelValues(kindLabel(e.Kind), "error").Inc()
			m.failures.WithLabelValues(codeLabel(e.Err)).Inc()
		},
	}
}

// WriteTextfile dumps the registry in the text exposition format.
// The file is written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

func kindLabel(k domain.Kind) string {
	if !k.Valid() {
		return "unknown"
	}
	return k.Keyword()
}

func codeLabel(err error) string {
	if code := domain.CodeOf(err); code != "" {
		return string(code)
	}
	return "INTERNAL"
}
