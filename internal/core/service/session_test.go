package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medagenda/console/internal/core/domain"
	"github.com/medagenda/console/internal/core/ports"
)

type stubGateway struct {
	ports.SchedulingAPI

	signInFn    func(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error)
	authUsersFn func(ctx context.Context) (*ports.AuthUsersResult, error)

	signInCalls    int
	authUsersCalls int
}

func (g *stubGateway) SignIn(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	g.signInCalls++
	return g.signInFn(ctx, input)
}

func (g *stubGateway) AuthUsers(ctx context.Context) (*ports.AuthUsersResult, error) {
	g.authUsersCalls++
	return g.authUsersFn(ctx)
}

type memTokens struct {
	token string
	ok    bool
}

func (m *memTokens) Set(_ context.Context, token string) error {
	m.token, m.ok = token, true
	return nil
}

func (m *memTokens) Get(_ context.Context) (string, bool) {
	return m.token, m.ok
}

func (m *memTokens) Clear(_ context.Context) error {
	m.token, m.ok = "", false
	return nil
}

func adminProfile() domain.User {
	return domain.User{
		ID:       "u1",
		Name:     "Admin",
		Email:    "admin@sistema.com",
		Roles:    []domain.Role{domain.RoleAdmin},
		IsActive: true,
	}
}

func newSession(api ports.SchedulingAPI, tokens ports.TokenStore) *SessionService {
	return NewSessionService(api, tokens, zerolog.Nop())
}

func TestSession_Resolve_NoStoredToken(t *testing.T) {
	gw := &stubGateway{
		authUsersFn: func(context.Context) (*ports.AuthUsersResult, error) {
			t.Fatalf("AuthUsers should not be called without a stored token")
			return nil, nil
		},
	}
	s := newSession(gw, &memTokens{})

	if !s.IsLoading() {
		t.Fatalf("expected loading before Resolve")
	}
	s.Resolve(context.Background())

	if s.IsLoading() {
		t.Fatalf("expected loading to end after Resolve")
	}
	if s.IsAuthenticated() {
		t.Fatalf("expected anonymous session")
	}
}

func TestSession_Resolve_StoredTokenSucceeds(t *testing.T) {
	gw := &stubGateway{
		authUsersFn: func(context.Context) (*ports.AuthUsersResult, error) {
			return &ports.AuthUsersResult{User: adminProfile()}, nil
		},
	}
	tokens := &memTokens{token: "t1", ok: true}
	s := newSession(gw, tokens)

	s.Resolve(context.Background())

	if s.IsLoading() {
		t.Fatalf("expected loading false")
	}
	user := s.CurrentUser()
	if user == nil || user.ID != "u1" {
		t.Fatalf("expected resolved identity, got %+v", user)
	}
	if _, ok := tokens.Get(context.Background()); !ok {
		t.Fatalf("token should remain stored")
	}
}

func TestSession_Resolve_StoredTokenRejected(t *testing.T) {
	gw := &stubGateway{
		authUsersFn: func(context.Context) (*ports.AuthUsersResult, error) {
			return nil, errors.New("HTTP error, status 401")
		},
	}
	tokens := &memTokens{token: "stale", ok: true}
	s := newSession(gw, tokens)

	s.Resolve(context.Background())

	if s.IsAuthenticated() {
		t.Fatalf("expected anonymous session after rejection")
	}
	if _, ok := tokens.Get(context.Background()); ok {
		t.Fatalf("expected token cleared after rejection")
	}
}

func TestSession_Login_Success(t *testing.T) {
	gw := &stubGateway{
		signInFn: func(_ context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
			if input.Email != "admin@sistema.com" || input.Password != "admin123" {
				t.Fatalf("unexpected credentials: %+v", input)
			}
			partial := adminProfile()
			return &ports.AuthResult{Token: "t1", User: partial}, nil
		},
		authUsersFn: func(context.Context) (*ports.AuthUsersResult, error) {
			full := adminProfile()
			full.Phone = "+55 11 99999-0000"
			return &ports.AuthUsersResult{User: full}, nil
		},
	}
	tokens := &memTokens{}
	s := newSession(gw, tokens)
	s.Resolve(context.Background())

	user, err := s.Login(context.Background(), ports.LoginInput{Email: "admin@sistema.com", Password: "admin123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Phone != "+55 11 99999-0000" {
		t.Fatalf("expected full profile, got %+v", user)
	}
	if !s.HasRole(domain.RoleAdmin) {
		t.Fatalf("expected ADMIN role")
	}
	if got, ok := tokens.Get(context.Background()); !ok || got != "t1" {
		t.Fatalf("expected token t1 stored, got %q ok=%v", got, ok)
	}
}

func TestSession_Login_WrongPassword(t *testing.T) {
	wantErr := errors.New("invalid credentials")
	gw := &stubGateway{
		signInFn: func(context.Context, ports.LoginInput) (*ports.AuthResult, error) {
			return nil, wantErr
		},
		authUsersFn: func(context.Context) (*ports.AuthUsersResult, error) {
			t.Fatalf("AuthUsers should not be called after failed sign-in")
			return nil, nil
		},
	}
	tokens := &memTokens{}
	s := newSession(gw, tokens)

	if _, err := s.Login(context.Background(), ports.LoginInput{Email: "x@y.z", Password: "nope"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected login error to propagate, got %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatalf("expected anonymous session")
	}
	if _, ok := tokens.Get(context.Background()); ok {
		t.Fatalf("expected no token persisted")
	}
}

func TestSession_Login_ResolutionFails(t *testing.T) {
	gw := &stubGateway{
		signInFn: func(context.Context, ports.LoginInput) (*ports.AuthResult, error) {
			return &ports.AuthResult{Token: "t1", User: adminProfile()}, nil
		},
		authUsersFn: func(context.Context) (*ports.AuthUsersResult, error) {
			return nil, errors.New("HTTP error, status 500")
		},
	}
	tokens := &memTokens{}
	s := newSession(gw, tokens)

	if _, err := s.Login(context.Background(), ports.LoginInput{Email: "a@b.c", Password: "p"}); err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := tokens.Get(context.Background()); ok {
		t.Fatalf("expected partially set token to be cleared")
	}
	if s.IsAuthenticated() {
		t.Fatalf("expected anonymous session")
	}
}

func TestSession_Logout_Idempotent(t *testing.T) {
	gw := &stubGateway{
		authUsersFn: func(context.Context) (*ports.AuthUsersResult, error) {
			return &ports.AuthUsersResult{User: adminProfile()}, nil
		},
	}
	tokens := &memTokens{token: "t1", ok: true}
	s := newSession(gw, tokens)
	s.Resolve(context.Background())

	s.Logout(context.Background())
	s.Logout(context.Background())

	if s.IsAuthenticated() {
		t.Fatalf("expected anonymous session")
	}
	if _, ok := tokens.Get(context.Background()); ok {
		t.Fatalf("expected token absent")
	}
}

func TestSession_Refresh_UpdatesInPlace(t *testing.T) {
	renamed := adminProfile()
	renamed.Name = "Admin Renamed"
	first := true
	gw := &stubGateway{
		authUsersFn: func(context.Context) (*ports.AuthUsersResult, error) {
			if first {
				first = false
				return &ports.AuthUsersResult{User: adminProfile()}, nil
			}
			return &ports.AuthUsersResult{User: renamed}, nil
		},
	}
	s := newSession(gw, &memTokens{token: "t1", ok: true})
	s.Resolve(context.Background())

	user := s.Refresh(context.Background())
	if user == nil || user.Name != "Admin Renamed" {
		t.Fatalf("expected refreshed profile, got %+v", user)
	}
	if !s.IsAuthenticated() {
		t.Fatalf("expected session to stay authenticated")
	}
}

func TestSession_Refresh_FailureBehavesLikeLogout(t *testing.T) {
	first := true
	gw := &stubGateway{
		authUsersFn: func(context.Context) (*ports.AuthUsersResult, error) {
			if first {
				first = false
				return &ports.AuthUsersResult{User: adminProfile()}, nil
			}
			return nil, errors.New("HTTP error, status 401")
		},
	}
	tokens := &memTokens{token: "t1", ok: true}
	s := newSession(gw, tokens)
	s.Resolve(context.Background())

	if user := s.Refresh(context.Background()); user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
	if s.IsAuthenticated() {
		t.Fatalf("expected anonymous session")
	}
	if _, ok := tokens.Get(context.Background()); ok {
		t.Fatalf("expected token cleared")
	}
}

func TestSession_RoleChecks(t *testing.T) {
	profile := adminProfile()
	profile.Roles = []domain.Role{domain.RoleAdmin, domain.RoleDoctor}
	gw := &stubGateway{
		authUsersFn: func(context.Context) (*ports.AuthUsersResult, error) {
			return &ports.AuthUsersResult{User: profile}, nil
		},
	}
	s := newSession(gw, &memTokens{token: "t1", ok: true})
	s.Resolve(context.Background())

	for _, role := range domain.Roles {
		want := role == domain.RoleAdmin || role == domain.RoleDoctor
		if got := s.HasRole(role); got != want {
			t.Fatalf("HasRole(%s) = %v, want %v", role, got, want)
		}
	}
	if !s.HasAnyRole(domain.RolePatient, domain.RoleDoctor) {
		t.Fatalf("expected HasAnyRole to match DOCTOR")
	}
	if s.HasAnyRole(domain.RolePatient, domain.RoleUser) {
		t.Fatalf("expected no match for PATIENT/USER")
	}
	if s.HasAnyRole() {
		t.Fatalf("empty input must be false")
	}
}

func TestSession_RoleChecks_Anonymous(t *testing.T) {
	s := newSession(&stubGateway{}, &memTokens{})

	if s.HasRole(domain.RoleAdmin) {
		t.Fatalf("anonymous HasRole must be false")
	}
	if s.HasAnyRole(domain.Roles...) {
		t.Fatalf("anonymous HasAnyRole must be false")
	}
	if s.HasAnyRole() {
		t.Fatalf("empty input must be false")
	}
}
