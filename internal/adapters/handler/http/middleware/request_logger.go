package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// RequestLogger writes one line per request through the default logger.
// Server errors are logged at error level with the errors attached to the context.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		}
		if userID, ok := GetUserID(c); ok {
			fields = append(fields, "user", userID)
		}

		switch {
		case status >= 500:
			fields = append(fields, "errors", c.Errors.String())
			log.Error("request failed", fields...)
		case status >= 400:
			log.Debug("request rejected", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
