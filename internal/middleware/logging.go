package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/logger"
	"fintrack/internal/uuid"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// RequestLogging logs each request with a request ID, method, path, status,
// latency, client IP and the caller's user ID when authenticated. A valid
// incoming X-Request-ID is reused.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if !uuid.IsValid(requestID) {
			requestID = uuid.New()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		fields := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if id, err := CurrentIdentity(c); err == nil {
			fields = append(fields, "user_id", id.UserID)
		}
		logger.Named("http").Infow("request", fields...)
	}
}
