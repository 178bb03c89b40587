package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/medagenda/console/internal/core/domain"
	"github.com/medagenda/console/internal/core/ports"
)

// SessionService implements ports.Session on top of the scheduling API
// gateway and the token store. It is the only writer of the token store.
//
// A single mutex guards the user/loading pair and is held across the network
// calls of Login/Refresh/Resolve, so overlapping session operations serialize
// instead of interleaving their state writes.
type SessionService struct {
	api    ports.SchedulingAPI
	tokens ports.TokenStore
	log    zerolog.Logger

	mu      sync.Mutex
	user    *domain.User
	loading bool
}

func NewSessionService(api ports.SchedulingAPI, tokens ports.TokenStore, log zerolog.Logger) *SessionService {
	// Starts in the resolving state: loading until Resolve has run.
	return &SessionService{
		api:     api,
		tokens:  tokens,
		log:     log,
		loading: true,
	}
}

// Resolve exchanges a previously stored token for the current identity.
// No stored token, or a token the server rejects, lands in anonymous.
func (s *SessionService) Resolve(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	if _, ok := s.tokens.Get(ctx); !ok {
		return
	}

	res, err := s.api.AuthUsers(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("stored token rejected, clearing session")
		s.clearLocked(ctx)
		return
	}

	s.user = cloneUser(&res.User)
	s.log.Info().Str("user_id", s.user.ID).Msg("session restored from stored token")
}

func (s *SessionService) Login(ctx context.Context, input ports.LoginInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	defer func() { s.loading = false }()

	res, err := s.api.SignIn(ctx, input)
	if err != nil {
		s.clearLocked(ctx)
		return nil, err
	}

	if err := s.tokens.Set(ctx, res.Token); err != nil {
		s.clearLocked(ctx)
		return nil, err
	}

	// The sign-in response carries a partial profile; fetch the full one.
	auth, err := s.api.AuthUsers(ctx)
	if err != nil {
		s.clearLocked(ctx)
		return nil, err
	}

	s.user = cloneUser(&auth.User)
	s.log.Info().Str("user_id", s.user.ID).Str("email", s.user.Email).Msg("login succeeded")
	return cloneUser(s.user), nil
}

func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked(ctx)
}

func (s *SessionService) Refresh(ctx context.Context) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	auth, err := s.api.AuthUsers(ctx)
	if err != nil {
		// Treat any resolution failure as an expired token.
		s.log.Warn().Err(err).Msg("identity refresh failed, logging out")
		s.clearLocked(ctx)
		return nil
	}

	s.user = cloneUser(&auth.User)
	return cloneUser(s.user)
}

func (s *SessionService) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUser(s.user)
}

func (s *SessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *SessionService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *SessionService) HasRole(role domain.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.HasRole(role)
}

func (s *SessionService) HasAnyRole(roles ...domain.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range roles {
		if s.user.HasRole(r) {
			return true
		}
	}
	return false
}

// clearLocked drops the token and the cached identity. Callers hold s.mu.
func (s *SessionService) clearLocked(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to clear stored token")
	}
	s.user = nil
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	clone.Specialties = append([]domain.Specialty(nil), u.Specialties...)
	if u.Address != nil {
		addr := *u.Address
		clone.Address = &addr
	}
	return &clone
}
