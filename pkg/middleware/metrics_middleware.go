package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"innkeep/internal/infra"
)

func MetricsMiddleware(m *infra.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
