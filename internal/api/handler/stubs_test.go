package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

// newContext builds an echo context with the JSON validator installed.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	listFn   func(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	searchFn func(ctx context.Context, name string) (*domain.User, error)
	updateFn func(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubUserService) List(ctx context.Context, activeOnly bool) ([]*domain.User, error) {
	return s.listFn(ctx, activeOnly)
}

func (s *stubUserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) SearchByName(ctx context.Context, name string) (*domain.User, error) {
	return s.searchFn(ctx, name)
}

func (s *stubUserService) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubClientService struct {
	listFn   func(ctx context.Context) ([]*domain.Client, error)
	getFn    func(ctx context.Context, id int64) (*domain.Client, error)
	createFn func(ctx context.Context, c *domain.Client) (*domain.Client, error)
	updateFn func(ctx context.Context, id int64, patch domain.ClientPatch) (*domain.Client, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.listFn(ctx)
}

func (s *stubClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return s.getFn(ctx, id)
}

func (s *stubClientService) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	return s.createFn(ctx, c)
}

func (s *stubClientService) Update(ctx context.Context, id int64, patch domain.ClientPatch) (*domain.Client, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubClientService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubArtistService struct {
	createFn func(ctx context.Context, a *domain.Artist) (*domain.Artist, error)
	updateFn func(ctx context.Context, id int64, patch domain.ArtistPatch) (*domain.Artist, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubArtistService) List(context.Context) ([]*domain.Artist, error) {
	return []*domain.Artist{}, nil
}

func (s *stubArtistService) Get(_ context.Context, id int64) (*domain.Artist, error) {
	return nil, domain.ErrArtistNotFound
}

func (s *stubArtistService) Create(ctx context.Context, a *domain.Artist) (*domain.Artist, error) {
	return s.createFn(ctx, a)
}

func (s *stubArtistService) Update(ctx context.Context, id int64, patch domain.ArtistPatch) (*domain.Artist, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubArtistService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubSessionService struct {
	createFn func(ctx context.Context, in ports.CreateSessionInput) (*ports.SessionResult, error)
	updateFn func(ctx context.Context, id int64, patch domain.SessionPatch) (*domain.Session, error)
}

func (s *stubSessionService) List(context.Context) ([]*domain.Session, error) {
	return []*domain.Session{}, nil
}

func (s *stubSessionService) Get(context.Context, int64) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionService) Create(ctx context.Context, in ports.CreateSessionInput) (*ports.SessionResult, error) {
	return s.createFn(ctx, in)
}

func (s *stubSessionService) Update(ctx context.Context, id int64, patch domain.SessionPatch) (*domain.Session, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubSessionService) Delete(context.Context, int64) error {
	return nil
}

type stubProvisioner struct {
	result *ports.ProvisionResult
	err    error
}

func (s *stubProvisioner) EnsureSchema(context.Context) (*ports.ProvisionResult, error) {
	return s.result, s.err
}
