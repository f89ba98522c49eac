// Package metrics provides Prometheus metrics for pipeline monitoring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts completed pipeline runs.
	// Labels: intent (screen, ask), status (done, errored)
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "screenmesh",
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Total number of completed pipeline runs",
		},
		[]string{"intent", "status"},
	)

	// StageFailuresTotal counts stage failures by error kind.
	// Labels: state (validating, generating, ...), kind (unknown_target, ...)
	StageFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "screenmesh",
			Subsystem: "pipeline",
			Name:      "stage_failures_total",
			Help:      "Total number of stage failures by state and error kind",
		},
		[]string{"state", "kind"},
	)

	// RunDuration tracks end-to-end pipeline run duration.
	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "screenmesh",
			Subsystem: "pipeline",
			Name:      "run_duration_seconds",
			Help:      "End-to-end duration of pipeline runs in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// KnowledgeQueriesTotal counts knowledge lookups.
	// Labels: matched (true, false)
	KnowledgeQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "screenmesh",
			Subsystem: "knowledge",
			Name:      "queries_total",
			Help:      "Total number of knowledge queries",
		},
		[]string{"matched"},
	)

	// MemorySaveFailuresTotal counts best-effort session persistence failures.
	MemorySaveFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "screenmesh",
			Subsystem: "memory",
			Name:      "save_failures_total",
			Help:      "Total number of failed session context saves",
		},
	)
)
