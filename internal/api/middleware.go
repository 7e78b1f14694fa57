package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderflow/order-taking-service/pkg/logging"
	"github.com/orderflow/order-taking-service/pkg/metrics"
)

// RequestLogger logs every request with method, path, status and duration.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.HTTPRequest(
			c.Request.Context(),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)
	}
}

// Metrics records request counters and durations. Paths are recorded by
// route template to keep cardinality bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
