package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"carebuilds/pkg/logger"
	"carebuilds/pkg/utils"
)

// RequestLogger attaches a request-scoped logger and logs one line per request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := log.With("trace_id", c.GetString(utils.TraceIDKey))
		c.Set(utils.LoggerKey, reqLog)

		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if userID, ok := CurrentUserID(c); ok {
			fields = append(fields, "user_id", userID.String())
		}

		switch {
		case status >= 500:
			reqLog.Error("HTTP request", fields...)
		case status >= 400:
			reqLog.Warn("HTTP request", fields...)
		default:
			reqLog.Info("HTTP request", fields...)
		}
	}
}
