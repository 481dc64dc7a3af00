package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

const maxPeekBytes = 1 << 16

// Limiter decides whether another attempt under key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit limits login attempts per email, or per client IP when the
// body carries no email. A nil limiter disables the check; limiter errors fail open.
func LoginRateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}

		key := loginKey(c)
		ok, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Named("ratelimit").Warnw("login rate limit check failed", "error", err)
			c.Next()
			return
		}
		if !ok {
			AbortWithError(c, apperrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// loginKey reads the email from the JSON body and restores the body for the handler.
func loginKey(c *gin.Context) string {
	if c.Request.Body != nil {
		body := c.Request.Body
		raw, err := io.ReadAll(io.LimitReader(body, maxPeekBytes))
		c.Request.Body = readCloser{io.MultiReader(bytes.NewReader(raw), body), body}
		if err == nil {
			var req struct {
				Email string `json:"email"`
			}
			if json.Unmarshal(raw, &req) == nil {
				if email := strings.TrimSpace(req.Email); email != "" {
					return "email:" + strings.ToLower(email)
				}
			}
		}
	}
	return "ip:" + c.ClientIP()
}

type readCloser struct {
	io.Reader
	io.Closer
}
