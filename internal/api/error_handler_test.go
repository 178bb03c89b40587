package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	upstream "github.com/medagenda/console/internal/infrastructure/api"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/console/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return rec.Code, resp.Error
}

func TestErrorHandler_UpstreamRejectionPassesThrough(t *testing.T) {
	code, msg := render(t, &upstream.StatusError{Status: http.StatusNotFound, Message: "not found"})
	if code != http.StatusNotFound || msg != "not found" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestErrorHandler_TransportErrorIsBadGateway(t *testing.T) {
	code, msg := render(t, &url.Error{Op: "Get", URL: "http://localhost:3100/api/users", Err: http.ErrHandlerTimeout})
	if code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
	if msg != "scheduling service unavailable" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestErrorHandler_EchoErrorKeepsCode(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusUnauthorized, "authentication required"))
	if code != http.StatusUnauthorized || msg != "authentication required" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestErrorHandler_UnknownErrorIsInternal(t *testing.T) {
	code, msg := render(t, errAny{})
	if code != http.StatusInternalServerError || msg != "internal server error" {
		t.Fatalf("got %d %q", code, msg)
	}
}

type errAny struct{}

func (errAny) Error() string { return "boom" }
