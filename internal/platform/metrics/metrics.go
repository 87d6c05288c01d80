// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worktopia",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "worktopia",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "worktopia",
			Name:      "bookings_created_total",
			Help:      "Bookings created.",
		},
	)

	blockedDaysCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worktopia",
			Name:      "blocked_days_cache_total",
			Help:      "Blocked days cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpLatency, bookingsCreated, blockedDaysCache)
	})
}

// ObserveHTTP records one finished request.
func ObserveHTTP(method, route, status string, latency time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}

// IncBookingsCreated counts a created booking.
func IncBookingsCreated() {
	bookingsCreated.Inc()
}

// IncBlockedDaysCache counts a cache lookup; result is "hit", "miss" or "error".
func IncBlockedDaysCache(result string) {
	blockedDaysCache.WithLabelValues(result).Inc()
}
