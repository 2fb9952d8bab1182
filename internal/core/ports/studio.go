package ports

import (
	"context"
	"time"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
)

// ClientRepository defines persistence for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// ArtistRepository defines persistence for artists.
type ArtistRepository interface {
	Create(ctx context.Context, a *domain.Artist) error
	FindByID(ctx context.Context, id int64) (*domain.Artist, error)
	List(ctx context.Context) ([]*domain.Artist, error)
	Update(ctx context.Context, a *domain.Artist) error
	Delete(ctx context.Context, id int64) error
}

// SessionRepository defines persistence for tattoo sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	FindByID(ctx context.Context, id int64) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id int64) error
}

type ClientService interface {
	List(ctx context.Context) ([]*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id int64, patch domain.ClientPatch) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

type ArtistService interface {
	List(ctx context.Context) ([]*domain.Artist, error)
	Get(ctx context.Context, id int64) (*domain.Artist, error)
	Create(ctx context.Context, a *domain.Artist) (*domain.Artist, error)
	Update(ctx context.Context, id int64, patch domain.ArtistPatch) (*domain.Artist, error)
	Delete(ctx context.Context, id int64) error
}

// CreateSessionInput carries a new booking. IdempotencyKey is optional.
type CreateSessionInput struct {
	ClientID       int64
	ArtistID       int64
	Date           time.Time
	Status         domain.SessionStatus
	Notes          string
	IdempotencyKey string
}

// SessionResult is returned by CreateSession.
type SessionResult struct {
	Session *domain.Session
	// Replayed is true when the Idempotency-Key matched an earlier booking.
	Replayed bool
}

type SessionService interface {
	List(ctx context.Context) ([]*domain.Session, error)
	Get(ctx context.Context, id int64) (*domain.Session, error)
	Create(ctx context.Context, input CreateSessionInput) (*SessionResult, error)
	Update(ctx context.Context, id int64, patch domain.SessionPatch) (*domain.Session, error)
	Delete(ctx context.Context, id int64) error
}

// IdempotencyStore remembers which session a client-supplied key produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (int64, bool, error)
	Remember(ctx context.Context, key string, sessionID int64) error
}
