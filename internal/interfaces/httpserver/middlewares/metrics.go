package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"medianet/internal/infrastructure/metrics"
)

// Metrics records per-request counters and durations.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
