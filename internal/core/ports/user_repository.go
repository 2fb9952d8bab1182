package ports

import (
	"context"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
)

// UserRepository defines persistence for the credential store.
type UserRepository interface {
	// Create inserts the user and sets its ID. A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// UserService defines staff-facing user management.
type UserService interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	SearchByName(ctx context.Context, name string) (*domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
