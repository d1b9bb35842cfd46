package middleware

import (
	"strconv"
	"time"

	"avatar-stream-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and duration per method/route/status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
