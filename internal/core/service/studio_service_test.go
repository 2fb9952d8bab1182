package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

var errTransient = errors.New("database is locked")

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// Retry
// ---------------------------------------------------------------------------

func TestRetryRead_RecoversFromTransientFailure(t *testing.T) {
	calls := 0
	got, err := retryRead(context.Background(), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errTransient
		}
		return 7, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 || calls != 3 {
		t.Fatalf("expected 7 after 3 calls, got %d after %d", got, calls)
	}
}

func TestRetryRead_GivesUpAfterThreeAttempts(t *testing.T) {
	calls := 0
	_, err := retryRead(context.Background(), func() (int, error) {
		calls++
		return 0, errTransient
	})
	if !errors.Is(err, errTransient) {
		t.Fatalf("expected transient error, got %v", err)
	}
	if calls != readAttempts {
		t.Fatalf("expected %d attempts, got %d", readAttempts, calls)
	}
}

func TestRetryRead_NotFoundIsNotRetried(t *testing.T) {
	calls := 0
	_, err := retryRead(context.Background(), func() (*domain.Client, error) {
		calls++
		return nil, domain.ErrClientNotFound
	})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

// ---------------------------------------------------------------------------
// UserService
// ---------------------------------------------------------------------------

func seedUsers(repo *stubUserRepo) {
	_ = repo.Create(context.Background(), &domain.User{Name: "Ana", Email: "ana@x.com", Role: domain.RoleStaff, Active: true})
	_ = repo.Create(context.Background(), &domain.User{Name: "Ben", Email: "ben@x.com", Role: domain.RoleAdmin, Active: false})
}

func TestUserService_List_ActiveOnly(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(repo)
	svc := NewUserService(repo, discardLogger)

	active, err := svc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Ana" {
		t.Fatalf("expected only Ana, got %+v", active)
	}

	all, _ := svc.List(context.Background(), false)
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}
}

func TestUserService_SearchByName(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(repo)
	svc := NewUserService(repo, discardLogger)

	user, err := svc.SearchByName(context.Background(), " Ben ")
	if err != nil || user.Email != "ben@x.com" {
		t.Fatalf("expected Ben, got %+v, %v", user, err)
	}
	if _, err := svc.SearchByName(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.SearchByName(context.Background(), "Zoe"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_PatchOnlyTouchesGivenFields(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(repo)
	svc := NewUserService(repo, discardLogger)

	updated, err := svc.Update(context.Background(), 1, domain.UserPatch{Name: ptr("Ana Maria")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Ana Maria" {
		t.Errorf("expected new name, got %q", updated.Name)
	}
	if updated.Email != "ana@x.com" || updated.Role != domain.RoleStaff || !updated.Active {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if repo.users[1].Name != "Ana Maria" {
		t.Errorf("update not persisted")
	}
}

func TestUserService_Update_Validation(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(repo)
	svc := NewUserService(repo, discardLogger)

	if _, err := svc.Update(context.Background(), 1, domain.UserPatch{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty patch, got %v", err)
	}
	if _, err := svc.Update(context.Background(), 1, domain.UserPatch{Role: ptr(domain.Role("root"))}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := svc.Update(context.Background(), 99, domain.UserPatch{Active: ptr(false)}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(repo)
	svc := NewUserService(repo, discardLogger)

	if err := svc.Delete(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), 2); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ClientService
// ---------------------------------------------------------------------------

func TestClientService_Create_GeneratesQRID(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	c, err := svc.Create(context.Background(), &domain.Client{Name: " Lola ", Phone: "555"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Lola" {
		t.Errorf("expected trimmed name, got %q", c.Name)
	}
	if _, err := uuid.Parse(c.QRID); err != nil {
		t.Errorf("expected generated uuid qr_id, got %q", c.QRID)
	}

	kept, _ := svc.Create(context.Background(), &domain.Client{Name: "Max", QRID: "card-1"})
	if kept.QRID != "card-1" {
		t.Errorf("supplied qr_id must be kept, got %q", kept.QRID)
	}
}

func TestClientService_Create_Validation(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), discardLogger)
	if _, err := svc.Create(context.Background(), &domain.Client{Name: "  "}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestClientService_Update_Patch(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)
	c, _ := svc.Create(context.Background(), &domain.Client{Name: "Lola", Phone: "555", Allergies: "latex"})

	updated, err := svc.Update(context.Background(), c.ID, domain.ClientPatch{Phone: ptr("777")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Phone != "777" || updated.Name != "Lola" || updated.Allergies != "latex" || updated.QRID != c.QRID {
		t.Fatalf("unexpected client after patch: %+v", updated)
	}
}

func TestClientService_Get_RetriesTransientErrors(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)
	c, _ := svc.Create(context.Background(), &domain.Client{Name: "Lola"})

	repo.failReads = 2
	got, err := svc.Get(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != c.ID || repo.reads != 3 {
		t.Fatalf("expected success on third read, got %d reads", repo.reads)
	}
}

// ---------------------------------------------------------------------------
// ArtistService
// ---------------------------------------------------------------------------

func TestArtistService_CreateAndUpdate(t *testing.T) {
	repo := newStubArtistRepo()
	svc := NewArtistService(repo, discardLogger)

	a, err := svc.Create(context.Background(), &domain.Artist{Name: "Kai", Email: "KAI@ink.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Email != "kai@ink.com" {
		t.Errorf("expected normalized email, got %q", a.Email)
	}

	if _, err := svc.Create(context.Background(), &domain.Artist{Name: "Kai 2", Email: "kai@ink.com"}); !errors.Is(err, domain.ErrArtistExists) {
		t.Fatalf("expected ErrArtistExists, got %v", err)
	}

	updated, err := svc.Update(context.Background(), a.ID, domain.ArtistPatch{Bio: ptr("blackwork")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Bio != "blackwork" || updated.Name != "Kai" {
		t.Fatalf("unexpected artist after patch: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), a.ID, domain.ArtistPatch{Name: ptr("")}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty name, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// SessionService
// ---------------------------------------------------------------------------

type sessionFixture struct {
	svc      *SessionService
	sessions *stubSessionRepo
	idem     *stubIdempotency
	clientID int64
	artistID int64
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	clients := newStubClientRepo()
	artists := newStubArtistRepo()
	sessions := newStubSessionRepo()
	idem := newStubIdempotency()

	c := &domain.Client{Name: "Lola", QRID: "q1"}
	a := &domain.Artist{Name: "Kai"}
	_ = clients.Create(context.Background(), c)
	_ = artists.Create(context.Background(), a)

	return &sessionFixture{
		svc:      NewSessionService(sessions, clients, artists, idem, discardLogger),
		sessions: sessions,
		idem:     idem,
		clientID: c.ID,
		artistID: a.ID,
	}
}

func TestSessionService_Create_DefaultsToPlanned(t *testing.T) {
	f := newSessionFixture(t)
	date := time.Date(2026, 3, 1, 15, 0, 0, 0, time.FixedZone("CET", 3600))

	res, err := f.svc.Create(context.Background(), ports.CreateSessionInput{
		ClientID: f.clientID, ArtistID: f.artistID, Date: date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Replayed {
		t.Error("expected a fresh booking")
	}
	if res.Session.Status != domain.SessionPlanned {
		t.Errorf("expected status planned, got %q", res.Session.Status)
	}
	if !res.Session.Date.Equal(date) || res.Session.Date.Location() != time.UTC {
		t.Errorf("expected UTC date equal to input, got %v", res.Session.Date)
	}
}

func TestSessionService_Create_UnknownParties(t *testing.T) {
	f := newSessionFixture(t)
	date := time.Now()

	_, err := f.svc.Create(context.Background(), ports.CreateSessionInput{ClientID: 99, ArtistID: f.artistID, Date: date})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
	_, err = f.svc.Create(context.Background(), ports.CreateSessionInput{ClientID: f.clientID, ArtistID: 99, Date: date})
	if !errors.Is(err, domain.ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
	if len(f.sessions.sessions) != 0 {
		t.Fatalf("no session must be stored")
	}
}

func TestSessionService_Create_Validation(t *testing.T) {
	f := newSessionFixture(t)

	cases := map[string]ports.CreateSessionInput{
		"missing client": {ArtistID: f.artistID, Date: time.Now()},
		"missing date":   {ClientID: f.clientID, ArtistID: f.artistID},
		"bad status":     {ClientID: f.clientID, ArtistID: f.artistID, Date: time.Now(), Status: "done"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestSessionService_Create_IdempotentReplay(t *testing.T) {
	f := newSessionFixture(t)
	in := ports.CreateSessionInput{
		ClientID: f.clientID, ArtistID: f.artistID, Date: time.Now(), IdempotencyKey: "book-1",
	}

	first, err := f.svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error on replay: %v", err)
	}

	if !second.Replayed {
		t.Error("expected second call to be a replay")
	}
	if second.Session.ID != first.Session.ID {
		t.Errorf("expected same session id %d, got %d", first.Session.ID, second.Session.ID)
	}
	if len(f.sessions.sessions) != 1 {
		t.Errorf("expected 1 stored session, got %d", len(f.sessions.sessions))
	}
}

func TestSessionService_Create_IdempotencyStoreDown(t *testing.T) {
	f := newSessionFixture(t)
	f.idem.lookupErr = errors.New("redis down")

	res, err := f.svc.Create(context.Background(), ports.CreateSessionInput{
		ClientID: f.clientID, ArtistID: f.artistID, Date: time.Now(), IdempotencyKey: "k",
	})
	if err != nil {
		t.Fatalf("booking must proceed when the store is down: %v", err)
	}
	if res.Replayed {
		t.Error("expected a fresh booking")
	}
}

func TestSessionService_Create_NilIdempotencyStore(t *testing.T) {
	f := newSessionFixture(t)
	f.svc.idem = nil
	in := ports.CreateSessionInput{ClientID: f.clientID, ArtistID: f.artistID, Date: time.Now(), IdempotencyKey: "k"}

	_, _ = f.svc.Create(context.Background(), in)
	res, err := f.svc.Create(context.Background(), in)
	if err != nil || res.Replayed {
		t.Fatalf("expected a second fresh booking, got %+v, %v", res, err)
	}
}

func TestSessionService_Update(t *testing.T) {
	f := newSessionFixture(t)
	res, _ := f.svc.Create(context.Background(), ports.CreateSessionInput{
		ClientID: f.clientID, ArtistID: f.artistID, Date: time.Now(), Notes: "sleeve",
	})

	updated, err := f.svc.Update(context.Background(), res.Session.ID, domain.SessionPatch{Status: ptr(domain.SessionCompleted)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.SessionCompleted || updated.Notes != "sleeve" {
		t.Fatalf("unexpected session after patch: %+v", updated)
	}

	if _, err := f.svc.Update(context.Background(), res.Session.ID, domain.SessionPatch{ArtistID: ptr(int64(42))}); !errors.Is(err, domain.ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
	if _, err := f.svc.Update(context.Background(), res.Session.ID, domain.SessionPatch{Status: ptr(domain.SessionStatus("lost"))}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := f.svc.Update(context.Background(), 404, domain.SessionPatch{Notes: ptr("x")}); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
