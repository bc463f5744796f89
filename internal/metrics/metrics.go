package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProjectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_projections_total",
		Help: "Total number of status projections served, by status",
	}, []string{"status"})

	UnknownStatusTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_unknown_status_total",
		Help: "Total number of projections that fell back for a status outside the known set",
	})

	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tracker_backend_request_duration_seconds",
		Help:    "Backend request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "outcome"})

	SignInsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_sign_ins_total",
		Help: "Total number of sign-in attempts, by result",
	}, []string{"result"})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter",
	})
)

// ObserveProjection counts one projection. Unknown statuses share a single
// label value to keep cardinality bounded.
func ObserveProjection(status string, known bool) {
	if !known {
		UnknownStatusTotal.Inc()
		status = "unknown"
	}
	ProjectionsTotal.WithLabelValues(status).Inc()
}
