package ports

import (
	"context"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
)

// RegisterInput carries the fields accepted by registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Birth    *int
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed access token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenIssuer mints access tokens.
type TokenIssuer interface {
	Issue(identity map[string]any) (string, error)
	IssueFor(user *domain.User) (string, error)
}

// TokenVerifier validates access tokens. Errors wrap domain.ErrTokenExpired or
// domain.ErrTokenInvalid.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}
