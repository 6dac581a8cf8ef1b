// Package metrics keeps per-run counters for the console programs in a
// private Prometheus registry.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "primer"

// Session holds the counters of a single program run.
type Session struct {
	registry *prometheus.Registry

	Prompts         prometheus.Counter
	InputRejections prometheus.Counter
	Calculations    *prometheus.CounterVec
}

// NewSession creates a Session with all counters registered.
func NewSession() *Session {
	s := &Session{
		registry: prometheus.NewRegistry(),
		Prompts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prompts_total",
			Help:      "Number of console lines read while waiting for a number.",
		}),
		InputRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_rejections_total",
			Help:      "Number of console lines that failed to parse as a number.",
		}),
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Number of completed computations, by program.",
		}, []string{"program"}),
	}
	s.registry.MustRegister(s.Prompts, s.InputRejections, s.Calculations)
	return s
}

// Registry exposes the underlying registry.
func (s *Session) Registry() *prometheus.Registry {
	return s.registry
}

// ObserveCalculation counts one completed computation for program.
func (s *Session) ObserveCalculation(program string) {
	s.Calculations.WithLabelValues(program).Inc()
}

// WriteText writes every gathered metric family to w in the Prometheus text
// exposition format.
func (s *Session) WriteText(w io.Writer) error {
	families, err := s.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
