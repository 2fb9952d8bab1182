package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

type ClientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, log: log}
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return retryRead(ctx, func() ([]*domain.Client, error) {
		return s.repo.List(ctx)
	})
}

func (s *ClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return retryRead(ctx, func() (*domain.Client, error) {
		return s.repo.FindByID(ctx, id)
	})
}

// Create stores a new client. A missing QR id is generated.
func (s *ClientService) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if c.QRID == "" {
		c.QRID = uuid.NewString()
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info().Int64("client_id", c.ID).Msg("client created")
	return c, nil
}

func (s *ClientService) Update(ctx context.Context, id int64, patch domain.ClientPatch) (*domain.Client, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(c)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("client_id", id).Msg("client deleted")
	return nil
}
