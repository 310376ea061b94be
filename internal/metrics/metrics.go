// Package metrics exposes the Prometheus instruments for the triage service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ClassificationsTotal counts committed classifications by primary
	// category and by the stage that committed them.
	ClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_classifications_total",
		Help: "Number of complaint classifications, by primary category and pipeline stage.",
	}, []string{"primary_category", "stage"})

	// UncertainTotal counts classifications rejected by the confidence gate.
	UncertainTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triage_uncertain_total",
		Help: "Number of classifications below the confidence gate.",
	})

	// ClassificationDuration observes end-to-end classification latency.
	ClassificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "triage_classification_duration_seconds",
		Help:    "Time taken to classify one complaint.",
		Buckets: prometheus.DefBuckets,
	})
)
