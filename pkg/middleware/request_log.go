package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripsmith/pkg/metrics"
)

// RequestLogger logs one line per request and records HTTP metrics. Routes
// are labelled by their pattern so path parameters do not blow up cardinality.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		dur := time.Since(start)

		metrics.ObserveHTTP(route, c.Request.Method, status, dur)

		logger.Info("http_request",
			zap.String("route", route),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("duration", dur),
			zap.String("remote", c.ClientIP()),
			zap.String("trace_id", c.GetString("trace_id")),
		)
	}
}
