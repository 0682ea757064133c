package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hellodesc/hellodesc/pkg/metrics"
)

// RequestMetrics counts handled requests per route template and status code.
// Unmatched paths are grouped under "unmatched" to keep label cardinality bounded.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
