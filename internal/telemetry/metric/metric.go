// Package metric provides Prometheus metrics for lockbench.
//
// A benchmark run records operation counts and phase durations per
// strategy. The registry can optionally be exposed over HTTP so a long
// run (or a watch-mode loop) can be scraped while it executes.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lockbench"

// Phase labels for PhaseSeconds.
const (
	PhasePut = "put"
	PhaseGet = "get"
)

// Metrics holds all benchmark metrics backed by a private registry.
// A nil *Metrics is valid; every method is a no-op on it.
type Metrics struct {
	registry *prometheus.Registry

	inserts      *prometheus.CounterVec
	lookups      *prometheus.CounterVec
	keysLost     *prometheus.CounterVec
	phaseSeconds *prometheus.HistogramVec
	runs         *prometheus.CounterVec
}

// New creates a Metrics with its own registry, including the standard
// Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inserts_total",
			Help:      "Keys inserted during put phases",
		}, []string{"strategy"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Lookups issued during get phases",
		}, []string{"strategy"}),
		keysLost: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keys_lost_total",
			Help:      "Keys inserted but not found during get phases",
		}, []string{"strategy"}),
		phaseSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_seconds",
			Help:      "Wall-clock duration of benchmark phases",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		}, []string{"strategy", "phase"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed benchmark runs",
		}, []string{"strategy"}),
	}

	m.registry.MustRegister(
		m.inserts,
		m.lookups,
		m.keysLost,
		m.phaseSeconds,
		m.runs,
		collectors.NewGoCollector(),
	)

	return m
}

// AddInserts records n inserted keys for a strategy.
func (m *Metrics) AddInserts(strategy string, n int) {
	if m == nil {
		return
	}
	m.inserts.WithLabelValues(strategy).Add(float64(n))
}

// AddLookups records n lookups and how many of them missed.
func (m *Metrics) AddLookups(strategy string, n int, lost int64) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(strategy).Add(float64(n))
	m.keysLost.WithLabelValues(strategy).Add(float64(lost))
}

// ObservePhase records the wall-clock duration of one phase.
func (m *Metrics) ObservePhase(strategy, phase string, seconds float64) {
	if m == nil {
		return
	}
	m.phaseSeconds.WithLabelValues(strategy, phase).Observe(seconds)
}

// IncRuns counts one completed run for a strategy.
func (m *Metrics) IncRuns(strategy string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(strategy).Inc()
}

// Gather exposes the underlying registry for tests.
func (m *Metrics) Gather() prometheus.Gatherer {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
