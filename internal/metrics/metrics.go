package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// TaskAssignmentCount counts successful goal/task association writes.
	TaskAssignmentCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goal_task_assignment_count",
			Help: "Total number of goal task assignments",
		},
		[]string{"mode"}, // replace, union
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementTaskAssignment(mode string) {
	TaskAssignmentCount.WithLabelValues(mode).Inc()
}
