package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger records method, path, status and latency for every
// request through the structured logger. Skips nothing: even /health
// probes are cheap to log at debug level.
func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if h.log == nil {
			return
		}

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if c.Writer.Status() >= 500 {
			h.log.Errorw("http_request", fields...)
			return
		}
		h.log.Debugw("http_request", fields...)
	}
}
