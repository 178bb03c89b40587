package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medagenda/console/internal/core/domain"
	"github.com/medagenda/console/internal/core/ports"
)

type stubSession struct {
	ports.Session

	authenticated bool
	roles         []domain.Role
}

func (s *stubSession) IsAuthenticated() bool { return s.authenticated }

func (s *stubSession) HasAnyRole(roles ...domain.Role) bool {
	for _, want := range roles {
		for _, have := range s.roles {
			if want == have {
				return true
			}
		}
	}
	return false
}

func run(t *testing.T, mw echo.MiddlewareFunc) (int, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/console/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := mw(next)(c)
	return rec.Code, err
}

func TestRequireSession_Anonymous(t *testing.T) {
	_, err := run(t, RequireSession(&stubSession{}))

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireSession_Authenticated(t *testing.T) {
	code, err := run(t, RequireSession(&stubSession{authenticated: true}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != http.StatusOK {
		t.Fatalf("expected handler to run, got %d", code)
	}
}

func TestRequireAnyRole_Forbidden(t *testing.T) {
	session := &stubSession{authenticated: true, roles: []domain.Role{domain.RoleDoctor}}
	_, err := run(t, RequireAnyRole(session, domain.RoleAdmin))

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequireAnyRole_Allowed(t *testing.T) {
	session := &stubSession{authenticated: true, roles: []domain.Role{domain.RoleAdmin, domain.RoleDoctor}}
	code, err := run(t, RequireAnyRole(session, domain.RoleAdmin))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != http.StatusOK {
		t.Fatalf("expected handler to run, got %d", code)
	}
}
