// Package metrics exposes Prometheus instruments for the shortest-path index
// and the sampling estimator.
//
// Instruments are registered on a caller-supplied Registerer so tests and
// repeated runs never collide on the global default registry. Every method is
// safe on a nil *Metrics, which is how library packages run uninstrumented.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels used on TargetsTotal.
const (
	OutcomeConverged      = "converged"
	OutcomeDidNotConverge = "did_not_converge"
	OutcomeShortCircuit   = "short_circuit"
)

// Metrics groups every instrument emitted by a run.
type Metrics struct {
	IndexLookups       *prometheus.CounterVec
	IndexTraversals    prometheus.Counter
	TraversalDuration  prometheus.Histogram
	SamplesTotal       prometheus.Counter
	TargetsTotal       *prometheus.CounterVec
	EstimationDuration prometheus.Histogram
}

// New registers all instruments on reg. A nil reg falls back to a private
// registry so the caller can still read values through the returned handles.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		IndexLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bcapprox_index_lookups_total",
			Help: "Shortest-path index lookups by result (hit or miss)",
		}, []string{"result"}),
		IndexTraversals: factory.NewCounter(prometheus.CounterOpts{
			Name: "bcapprox_index_traversals_total",
			Help: "Single-source shortest-path traversals performed by the index",
		}),
		TraversalDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bcapprox_index_traversal_duration_seconds",
			Help:    "Duration of one single-source traversal in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		SamplesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "bcapprox_samples_total",
			Help: "Sampling iterations across all target nodes",
		}),
		TargetsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bcapprox_targets_total",
			Help: "Target nodes estimated, by outcome",
		}, []string{"outcome"}),
		EstimationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bcapprox_estimation_duration_seconds",
			Help:    "Wall time spent estimating one target node",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

// ObserveLookup counts one index lookup.
func (m *Metrics) ObserveLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.IndexLookups.WithLabelValues("hit").Inc()
		return
	}
	m.IndexLookups.WithLabelValues("miss").Inc()
}

// ObserveTraversal counts one traversal and records its duration.
func (m *Metrics) ObserveTraversal(d time.Duration) {
	if m == nil {
		return
	}
	m.IndexTraversals.Inc()
	m.TraversalDuration.Observe(d.Seconds())
}

// ObserveTarget records the outcome, sample count and duration of one target.
func (m *Metrics) ObserveTarget(outcome string, samples uint64, d time.Duration) {
	if m == nil {
		return
	}
	m.TargetsTotal.WithLabelValues(outcome).Inc()
	m.SamplesTotal.Add(float64(samples))
	m.EstimationDuration.Observe(d.Seconds())
}
