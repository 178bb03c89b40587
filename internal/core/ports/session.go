package ports

import (
	"context"

	"github.com/medagenda/console/internal/core/domain"
)

// Session owns the single source of truth for "who is logged in" and the
// role checks consumed by the console surface. It cycles between anonymous
// and authenticated for the life of the process; overlapping Login/Logout
// calls are the caller's responsibility to avoid.
type Session interface {
	// Resolve attempts to exchange a previously stored token for an identity.
	// Any failure degrades to anonymous (clearing the token) rather than
	// surfacing an error. Call once at startup.
	Resolve(ctx context.Context)

	// Login exchanges credentials for a token, persists it, and resolves the
	// full profile. On any failure the token is cleared, the session stays
	// anonymous, and the error propagates for display.
	Login(ctx context.Context, input LoginInput) (*domain.User, error)

	// Logout clears the token and returns to anonymous. No server call.
	Logout(ctx context.Context)

	// Refresh re-resolves the identity. On failure it behaves like Logout:
	// an invalid or expired token means de-authentication, not an error.
	Refresh(ctx context.Context) *domain.User

	CurrentUser() *domain.User
	IsAuthenticated() bool
	IsLoading() bool

	// HasRole reports role membership; always false when anonymous.
	HasRole(role domain.Role) bool
	// HasAnyRole reports membership of at least one role; empty input is false.
	HasAnyRole(roles ...domain.Role) bool
}
