package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Wellbeing engine and integration metrics
var (
	// SnapshotsTotal counts analytics snapshots served, by kind (mood,
	// sleep) and source (computed, cache).
	SnapshotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellbeing_snapshots_total",
			Help: "Total number of analytics snapshots served",
		},
		[]string{"kind", "source"},
	)

	SnapshotDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wellbeing_snapshot_duration_seconds",
			Help:    "Time spent loading entries and computing a snapshot",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"kind"},
	)

	// Narrative (LLM) metrics
	NarrativeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellbeing_narrative_requests_total",
			Help: "Total number of narrative generations",
		},
		[]string{"model", "status"},
	)

	NarrativeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wellbeing_narrative_duration_seconds",
			Help:    "Narrative generation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~1min
		},
		[]string{"model"},
	)

	// UpstreamRequestsTotal counts calls to the therapist and meme services.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellbeing_upstream_requests_total",
			Help: "Total number of requests to external services",
		},
		[]string{"service", "operation", "status"},
	)
)

// Status returns the label value for an outcome.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
