package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shelfstats"

const (
	OutcomeOK     = "ok"
	OutcomeEmpty  = "empty"
	OutcomePanic  = "panic"
	OutcomeFailed = "failed"
)

var (
	Recomputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recomputations_total",
			Help:      "Statistic recomputations by outcome",
		},
		[]string{"statistic", "outcome"},
	)

	Restyles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restyles_total",
			Help:      "Theme restyles of published view models",
		},
		[]string{"statistic", "mode"},
	)

	AggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_duration_seconds",
			Help:      "Time spent running an aggregation rule",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"statistic"},
	)

	CollectionSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_books",
			Help:      "Number of books in the last loaded collection",
		},
	)

	SourceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_errors_total",
			Help:      "Upstream source failures that stopped a statistic",
		},
		[]string{"statistic"},
	)
)

func RecordRecomputation(statistic, outcome string, d time.Duration) {
	Recomputations.WithLabelValues(statistic, outcome).Inc()
	AggregationDuration.WithLabelValues(statistic).Observe(d.Seconds())
}

func RecordRestyle(statistic, mode string) {
	Restyles.WithLabelValues(statistic, mode).Inc()
}

func RecordSourceError(statistic string) {
	SourceErrors.WithLabelValues(statistic).Inc()
}

func SetCollectionSize(n int) {
	CollectionSize.Set(float64(n))
}
