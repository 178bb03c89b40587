package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medagenda/console/internal/core/domain"
	"github.com/medagenda/console/internal/core/ports"
)

// RequireSession rejects requests while the operator session is anonymous.
// The UI treats the 401 as a redirect to the login page.
func RequireSession(session ports.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrNotAuthenticated.Error())
			}
			return next(c)
		}
	}
}

// RequireAnyRole enforces role-based access on top of RequireSession. The
// session's role predicates are the single authorization decision point;
// handlers never inspect roles themselves.
func RequireAnyRole(session ports.Session, roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.HasAnyRole(roles...) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
