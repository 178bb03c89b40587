package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medagenda/console/internal/api/metrics"
	"github.com/medagenda/console/internal/core/domain"
	"github.com/medagenda/console/internal/core/ports"
)

// AuthHandler exposes the operator session to the UI.
type AuthHandler struct {
	session ports.Session
	api     ports.SchedulingAPI
}

func NewAuthHandler(session ports.Session, api ports.SchedulingAPI) *AuthHandler {
	return &AuthHandler{session: session, api: api}
}

// Login authenticates the operator against the scheduling API. Failures
// propagate with the upstream's own status and message so the login form
// can display them.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.session.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	metrics.SessionAuthenticated.Set(1)
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: user})
}

// Logout drops the session and the stored token. Always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())
	metrics.SessionAuthenticated.Set(0)
	return c.JSON(http.StatusOK, logoutResponse{Success: true})
}

// Me reports the current session state. The UI polls this during startup
// while the stored token is being resolved.
func (h *AuthHandler) Me(c echo.Context) error {
	user := h.session.CurrentUser()
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: user != nil,
		Loading:       h.session.IsLoading(),
		User:          user,
	})
}

// Refresh re-resolves the identity in place. A refresh that fails means the
// token expired; the session is already anonymous by the time we answer.
func (h *AuthHandler) Refresh(c echo.Context) error {
	user := h.session.Refresh(c.Request().Context())
	if user == nil {
		metrics.SessionAuthenticated.Set(0)
		return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrNotAuthenticated.Error())
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: user})
}

// Register creates an account through the public registration endpoint.
// It does not touch the operator session.
func (h *AuthHandler) Register(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.api.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}
