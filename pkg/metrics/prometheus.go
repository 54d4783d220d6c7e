package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	HotelsProcessed       prometheus.Counter
	ReservationsCreated   prometheus.Counter
	NotificationsSent     prometheus.Counter
	PipelineDuration      prometheus.Histogram
	StepErrors            *prometheus.CounterVec
	FailedTransformations prometheus.Counter
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		HotelsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hotels_processed_total",
			Help:      "The total number of hotel pipeline runs",
		}),
		ReservationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_created_total",
			Help:      "The total number of reservation nights materialized",
		}),
		NotificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "The total number of queue notifications sent",
		}),
		PipelineDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Time taken to run one hotel pipeline",
			Buckets:   prometheus.DefBuckets,
		}),
		StepErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "step_errors_total",
			Help:      "The total number of pipeline step errors",
		}, []string{"step"}),
		FailedTransformations: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failed_transformations_total",
			Help:      "The total number of reservation groups that failed validation",
		}),
	}
}
