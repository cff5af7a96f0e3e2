package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lmsadmin/src/infra/metrics"
)

// Metrics records a counter and duration histogram per request. The route
// template (not the raw path) is used as the label so parameterized routes
// do not explode cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.RequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			route,
		).Observe(time.Since(start).Seconds())
	}
}
