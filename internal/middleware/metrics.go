package middleware

import (
	"strconv"
	"time"

	"github.com/Soumendu22/NSBack/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware returns a Gin middleware that records HTTP request metrics
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		m.ConcurrentRequests.Inc()
		defer m.ConcurrentRequests.Dec()

		startTime := time.Now()
		c.Next()
		duration := time.Since(startTime)

		// Route pattern keeps label cardinality bounded; unmatched paths share one label.
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		method := c.Request.Method
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDurationSeconds.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	}
}
