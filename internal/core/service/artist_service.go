package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

type ArtistService struct {
	repo ports.ArtistRepository
	log  zerolog.Logger
}

func NewArtistService(repo ports.ArtistRepository, log zerolog.Logger) *ArtistService {
	return &ArtistService{repo: repo, log: log}
}

func (s *ArtistService) List(ctx context.Context) ([]*domain.Artist, error) {
	return retryRead(ctx, func() ([]*domain.Artist, error) {
		return s.repo.List(ctx)
	})
}

func (s *ArtistService) Get(ctx context.Context, id int64) (*domain.Artist, error) {
	return retryRead(ctx, func() (*domain.Artist, error) {
		return s.repo.FindByID(ctx, id)
	})
}

func (s *ArtistService) Create(ctx context.Context, a *domain.Artist) (*domain.Artist, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	a.Email = normalizeEmail(a.Email)

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.log.Info().Int64("artist_id", a.ID).Msg("artist created")
	return a, nil
}

func (s *ArtistService) Update(ctx context.Context, id int64, patch domain.ArtistPatch) (*domain.Artist, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
	}
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
	}

	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(a)

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ArtistService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("artist_id", id).Msg("artist deleted")
	return nil
}
