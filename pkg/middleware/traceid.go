package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carebuilds/pkg/utils"
)

func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set(utils.TraceIDKey, traceID)
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}
