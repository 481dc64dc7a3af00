package auth

import "context"

// Identity is the authenticated caller attached to a request.
// It never carries the credential hash.
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
