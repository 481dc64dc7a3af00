package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"fintrack/internal/auth"
	apperrors "fintrack/internal/errors"
)

// IdentityKey is the gin context key holding the verified auth.Identity.
const IdentityKey = "identity"

// Authenticator resolves an Authorization header to an identity.
type Authenticator interface {
	Verify(ctx context.Context, header string) (auth.Identity, error)
}

// RequireAuth rejects the request unless its bearer token verifies. On
// success the identity is stored under IdentityKey and on the request context.
func RequireAuth(v Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := v.Verify(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(IdentityKey, id)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

// CurrentIdentity returns the identity set by RequireAuth.
func CurrentIdentity(c *gin.Context) (auth.Identity, error) {
	if v, ok := c.Get(IdentityKey); ok {
		if id, ok := v.(auth.Identity); ok && id.UserID != "" {
			return id, nil
		}
	}
	if id, ok := auth.FromContext(c.Request.Context()); ok && id.UserID != "" {
		return id, nil
	}
	return auth.Identity{}, apperrors.ErrUnauthenticated
}
