package service

import (
	"context"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
)

var discardLogger = zerolog.Nop()

func init() {
	readBackOff = func() backoff.BackOff { return backoff.NewConstantBackOff(time.Millisecond) }
}

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   map[int64]*domain.User
	nextID  int64
	findErr error // if set, FindByEmail and FindByID return this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByName(_ context.Context, name string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, activeOnly bool) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if activeOnly && !u.Active {
			continue
		}
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubClientRepo struct {
	clients   map[int64]*domain.Client
	nextID    int64
	failReads int // number of FindByID calls that fail with a transient error
	reads     int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[int64]*domain.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) error {
	for _, existing := range r.clients {
		if existing.QRID == c.QRID {
			return domain.ErrClientExists
		}
	}
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.clients[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	r.reads++
	if r.reads <= r.failReads {
		return nil, errTransient
	}
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) List(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return domain.ErrClientNotFound
	}
	clone := *c
	r.clients[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

type stubArtistRepo struct {
	artists map[int64]*domain.Artist
	nextID  int64
}

func newStubArtistRepo() *stubArtistRepo {
	return &stubArtistRepo{artists: make(map[int64]*domain.Artist)}
}

func (r *stubArtistRepo) Create(_ context.Context, a *domain.Artist) error {
	for _, existing := range r.artists {
		if a.Email != "" && existing.Email == a.Email {
			return domain.ErrArtistExists
		}
	}
	r.nextID++
	a.ID = r.nextID
	clone := *a
	r.artists[a.ID] = &clone
	return nil
}

func (r *stubArtistRepo) FindByID(_ context.Context, id int64) (*domain.Artist, error) {
	a, ok := r.artists[id]
	if !ok {
		return nil, domain.ErrArtistNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubArtistRepo) List(_ context.Context) ([]*domain.Artist, error) {
	out := make([]*domain.Artist, 0, len(r.artists))
	for _, a := range r.artists {
		clone := *a
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubArtistRepo) Update(_ context.Context, a *domain.Artist) error {
	if _, ok := r.artists[a.ID]; !ok {
		return domain.ErrArtistNotFound
	}
	clone := *a
	r.artists[a.ID] = &clone
	return nil
}

func (r *stubArtistRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.artists[id]; !ok {
		return domain.ErrArtistNotFound
	}
	delete(r.artists, id)
	return nil
}

type stubSessionRepo struct {
	sessions map[int64]*domain.Session
	nextID   int64
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[int64]*domain.Session)}
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.Session) error {
	r.nextID++
	s.ID = r.nextID
	clone := *s
	r.sessions[s.ID] = &clone
	return nil
}

func (r *stubSessionRepo) FindByID(_ context.Context, id int64) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSessionRepo) List(_ context.Context) ([]*domain.Session, error) {
	out := make([]*domain.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSessionRepo) Update(_ context.Context, s *domain.Session) error {
	if _, ok := r.sessions[s.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	clone := *s
	r.sessions[s.ID] = &clone
	return nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// stubIdempotency is an in-memory IdempotencyStore.
type stubIdempotency struct {
	keys      map[string]int64
	lookupErr error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]int64)}
}

func (s *stubIdempotency) Lookup(_ context.Context, key string) (int64, bool, error) {
	if s.lookupErr != nil {
		return 0, false, s.lookupErr
	}
	id, ok := s.keys[key]
	return id, ok, nil
}

func (s *stubIdempotency) Remember(_ context.Context, key string, sessionID int64) error {
	if _, ok := s.keys[key]; !ok {
		s.keys[key] = sessionID
	}
	return nil
}
