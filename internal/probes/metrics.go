package probes

import (
	"log-admin-probe/internal/shared/metrics"
)

var (
	metricStepTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProbe,
			Name:      "step_total",
		},
		[]string{"step", "outcome"},
	)

	metricStepLatency = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProbe,
			Name:      "step_latency_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"step"},
	)

	metricArtifactSavedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubArtifact,
			Name:      "saved_total",
		},
		[]string{"step", "status"},
	)
)
