package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcapprox/metrics"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveLookup(true)
	m.ObserveLookup(false)
	m.ObserveLookup(false)
	m.ObserveTraversal(time.Millisecond)
	m.ObserveTarget(metrics.OutcomeConverged, 12, time.Millisecond)
	m.ObserveTarget(metrics.OutcomeDidNotConverge, 100, time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(m.IndexLookups.WithLabelValues("hit")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.IndexLookups.WithLabelValues("miss")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.IndexTraversals))
	require.Equal(t, 112.0, testutil.ToFloat64(m.SamplesTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(m.TargetsTotal.WithLabelValues(metrics.OutcomeDidNotConverge)))

	n, err := testutil.GatherAndCount(reg, "bcapprox_targets_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.ObserveLookup(true)
		m.ObserveTraversal(time.Second)
		m.ObserveTarget(metrics.OutcomeShortCircuit, 0, 0)
	})
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = metrics.New(reg)
	require.Panics(t, func() { _ = metrics.New(reg) })
}
