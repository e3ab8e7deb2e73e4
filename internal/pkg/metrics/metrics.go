package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendly_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "attendly_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	leaveResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendly_leave_resolutions_total",
			Help: "Leave request resolutions by target status and outcome.",
		},
		[]string{"target", "outcome"},
	)

	attendanceWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendly_attendance_writes_total",
			Help: "Attendance ledger upserts by write path.",
		},
		[]string{"path"},
	)
)

// ObserveLeaveResolution records one approve/reject attempt and whether it
// committed or rolled back.
func ObserveLeaveResolution(target string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	leaveResolutionsTotal.WithLabelValues(target, outcome).Inc()
}

// CountAttendanceWrites records ledger upserts done by the named write path
// (mark, set_day_status, auto_holidays, reconciliation).
func CountAttendanceWrites(path string, n int) {
	if n > 0 {
		attendanceWritesTotal.WithLabelValues(path).Add(float64(n))
	}
}

// RequestMetrics is a gin middleware recording the request counter and
// latency histogram. Routes are labelled by template (c.FullPath) so
// per-id paths do not explode cardinality.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
