package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTP(t *testing.T) {
	Register()
	Register() // idempotent

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/booking", "200"))
	ObserveHTTP("GET", "/api/booking", "200", 15*time.Millisecond)
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/booking", "200"))

	assert.Equal(t, before+1, after)
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(bookingsCreated)
	IncBookingsCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(bookingsCreated))

	hits := testutil.ToFloat64(blockedDaysCache.WithLabelValues("hit"))
	IncBlockedDaysCache("hit")
	assert.Equal(t, hits+1, testutil.ToFloat64(blockedDaysCache.WithLabelValues("hit")))
}
