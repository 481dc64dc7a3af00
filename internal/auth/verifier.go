package auth

import (
	"context"
	"errors"
	"strings"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// Rejection messages returned to clients.
const (
	msgNoToken       = "Not authorized, no token"
	msgMalformed     = "Not authorized, malformed authorization header"
	msgTokenFailed   = "Not authorized, token failed"
	msgUnknownUser   = "Not authorized, user not found"
	bearerScheme     = "Bearer"
	authHeaderFields = 2
)

// UserLookup resolves a token subject to a stored user.
// It returns apperrors.ErrUserNotFound when the user does not exist.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Verifier turns an Authorization header into an Identity.
type Verifier struct {
	tokens *Tokens
	users  UserLookup
}

// NewVerifier creates a Verifier.
func NewVerifier(tokens *Tokens, users UserLookup) *Verifier {
	return &Verifier{tokens: tokens, users: users}
}

// Verify validates a "Bearer <token>" header and resolves its subject.
// Every rejection is an ErrUnauthenticated AppError; lookup failures other
// than a missing user surface as internal errors.
func (v *Verifier) Verify(ctx context.Context, header string) (Identity, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Identity{}, apperrors.WithMessage(apperrors.ErrUnauthenticated, msgNoToken)
	}

	parts := strings.Fields(header)
	if len(parts) != authHeaderFields || !strings.EqualFold(parts[0], bearerScheme) {
		return Identity{}, apperrors.WithMessage(apperrors.ErrUnauthenticated, msgMalformed)
	}

	claims, err := v.tokens.Parse(parts[1])
	if err != nil {
		return Identity{}, apperrors.WithMessage(apperrors.ErrUnauthenticated, msgTokenFailed)
	}

	user, err := v.users.GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return Identity{}, apperrors.WithMessage(apperrors.ErrUnauthenticated, msgUnknownUser)
		}
		return Identity{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return IdentityOf(user), nil
}

// IdentityOf projects a stored user onto an Identity.
func IdentityOf(user *models.User) Identity {
	return Identity{UserID: user.ID, Email: user.Email, Name: user.Name}
}
