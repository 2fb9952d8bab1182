package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

type SessionService struct {
	sessions ports.SessionRepository
	clients  ports.ClientRepository
	artists  ports.ArtistRepository
	idem     ports.IdempotencyStore
	log      zerolog.Logger
}

// NewSessionService returns a SessionService. idem may be nil, which disables
// Idempotency-Key replay.
func NewSessionService(
	sessions ports.SessionRepository,
	clients ports.ClientRepository,
	artists ports.ArtistRepository,
	idem ports.IdempotencyStore,
	log zerolog.Logger,
) *SessionService {
	return &SessionService{
		sessions: sessions,
		clients:  clients,
		artists:  artists,
		idem:     idem,
		log:      log,
	}
}

func (s *SessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return retryRead(ctx, func() ([]*domain.Session, error) {
		return s.sessions.List(ctx)
	})
}

func (s *SessionService) Get(ctx context.Context, id int64) (*domain.Session, error) {
	return retryRead(ctx, func() (*domain.Session, error) {
		return s.sessions.FindByID(ctx, id)
	})
}

// Create books a session. When the idempotency key was already used, the
// session created by the first request is returned and nothing is written.
func (s *SessionService) Create(ctx context.Context, in ports.CreateSessionInput) (*ports.SessionResult, error) {
	if in.ClientID <= 0 || in.ArtistID <= 0 {
		return nil, fmt.Errorf("%w: client_id and artist_id are required", domain.ErrValidation)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if in.Status == "" {
		in.Status = domain.SessionPlanned
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, in.Status)
	}

	if replay := s.replay(ctx, in.IdempotencyKey); replay != nil {
		return &ports.SessionResult{Session: replay, Replayed: true}, nil
	}

	if err := s.checkParties(ctx, &in.ClientID, &in.ArtistID); err != nil {
		return nil, err
	}

	session := &domain.Session{
		ClientID: in.ClientID,
		ArtistID: in.ArtistID,
		Date:     in.Date.UTC(),
		Status:   in.Status,
		Notes:    in.Notes,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		s.log.Error().Err(err).Msg("failed to create session")
		return nil, err
	}

	if in.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, in.IdempotencyKey, session.ID); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("failed to remember idempotency key")
		}
	}

	s.log.Info().Int64("session_id", session.ID).Int64("client_id", session.ClientID).Int64("artist_id", session.ArtistID).Msg("session booked")
	return &ports.SessionResult{Session: session}, nil
}

func (s *SessionService) Update(ctx context.Context, id int64, patch domain.SessionPatch) (*domain.Session, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *patch.Status)
	}
	if patch.Date != nil && patch.Date.IsZero() {
		return nil, fmt.Errorf("%w: date cannot be empty", domain.ErrValidation)
	}

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkParties(ctx, patch.ClientID, patch.ArtistID); err != nil {
		return nil, err
	}
	patch.Apply(session)

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Delete(ctx context.Context, id int64) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("session_id", id).Msg("session deleted")
	return nil
}

// replay returns the session an earlier request with the same key created.
// Store failures are logged and treated as a miss.
func (s *SessionService) replay(ctx context.Context, key string) *domain.Session {
	if key == "" || s.idem == nil {
		return nil
	}
	id, found, err := s.idem.Lookup(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, booking anyway")
		return nil
	}
	if !found {
		return nil
	}
	session, err := s.Get(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Int64("session_id", id).Msg("remembered session is gone, booking anyway")
		return nil
	}
	s.log.Info().Str("idempotency_key", key).Int64("session_id", id).Msg("idempotent replay")
	return session
}

// checkParties verifies the referenced client and artist exist. Nil ids are skipped.
func (s *SessionService) checkParties(ctx context.Context, clientID, artistID *int64) error {
	if clientID != nil {
		if _, err := retryRead(ctx, func() (*domain.Client, error) { return s.clients.FindByID(ctx, *clientID) }); err != nil {
			return err
		}
	}
	if artistID != nil {
		if _, err := retryRead(ctx, func() (*domain.Artist, error) { return s.artists.FindByID(ctx, *artistID) }); err != nil {
			return err
		}
	}
	return nil
}
