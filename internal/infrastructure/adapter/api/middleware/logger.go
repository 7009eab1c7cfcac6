package middleware

import (
	"time"

	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger emits one structured line per admin API request after the
// handler chain completes. Latency here covers the full chain, so a slow
// report generation shows up as a slow POST /reports entry.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": c.GetHeader("X-Request-ID"),
			"user_agent": c.Request.UserAgent(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		if status >= 500 {
			logger.Error("Request failed", fields)
		} else {
			logger.Info("Request processed", fields)
		}
	}
}
