// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quickq_search_cache_hits_total",
			Help: "Job searches served entirely from the local cache",
		},
	)

	SearchCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quickq_search_cache_misses_total",
			Help: "Job searches that fell through to the remote API",
		},
	)

	RemoteCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickq_remote_calls_total",
			Help: "Calls to the remote interview API by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	FeedbackRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quickq_feedback_retries_total",
			Help: "Feedback attempts beyond the first, across both feedback paths",
		},
	)

	PersistenceWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quickq_persistence_write_failures_total",
			Help: "Best-effort session writes that were dropped",
		},
	)
)
