package middleware

import (
	"strconv"
	"time"

	"go-gin-stream-events/internal/observability"

	"github.com/gin-gonic/gin"
)

// Metrics 以路由樣板作為 label，避免 uuid 造成高基數
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		observability.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
