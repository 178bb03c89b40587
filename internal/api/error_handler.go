package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medagenda/console/internal/core/domain"
	upstream "github.com/medagenda/console/internal/infrastructure/api"
)

// errorResponse is the canonical error envelope for all console errors,
// matching the remote API's own shape so the UI handles both uniformly.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Passes upstream rejections through with their own status and message.
//   - Maps transport failures to 502 without leaking dial details.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// The scheduling API rejected the request: surface its verdict as-is.
	var se *upstream.StatusError
	if errors.As(err, &se) {
		return se.Status, se.Message
	}

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, domain.ErrNotAuthenticated.Error()
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, err.Error()
	}

	// The request never completed: the upstream is unreachable.
	var ue *url.Error
	if errors.As(err, &ue) {
		log.Warn().Err(err).Str("path", c.Path()).Msg("scheduling api unreachable")
		return http.StatusBadGateway, "scheduling service unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
