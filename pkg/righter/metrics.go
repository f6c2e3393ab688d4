package righter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ============================================================================
// Prometheus Metrics
// ============================================================================

var (
	// substitutionsTotal counts replacements by the path that found them
	substitutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordrighter_substitutions_total",
		Help: "Total substitutions by match path",
	}, []string{"path"})

	// processTotal counts processed texts by whether anything changed
	processTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordrighter_process_total",
		Help: "Total processed texts by outcome",
	}, []string{"changed"})

	// processDuration tracks pipeline latency
	processDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordrighter_process_duration_seconds",
		Help:    "Pipeline duration in seconds, tagging included",
		Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12), // 50us to ~100ms
	})
)

const (
	pathPhrase = "phrase"
	pathLemma  = "lemma"
)
