package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"transfer/internal/observability"
)

// Metrics records request count and latency labeled by route template.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start).Seconds())
	}
}
