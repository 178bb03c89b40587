package api

import (
	"context"
	"net/http"

	"github.com/medagenda/console/internal/core/ports"
)

// SignIn exchanges credentials for a bearer token and a partial profile.
// It does not persist the token; that remains the session's responsibility.
func (c *Client) SignIn(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{input.Email, input.Password}

	var out ports.AuthResult
	if err := c.do(ctx, "sign_in", http.MethodPost, "/auth/signin", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account through the public registration endpoint.
func (c *Client) Register(ctx context.Context, input ports.CreateUserInput) (*ports.AuthResult, error) {
	var out ports.AuthResult
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AuthUsers resolves the identity behind the stored token. A rejected token
// surfaces here as a StatusError; the session treats that as an implicit
// logout.
func (c *Client) AuthUsers(ctx context.Context) (*ports.AuthUsersResult, error) {
	var out ports.AuthUsersResult
	if err := c.do(ctx, "auth_users", http.MethodGet, "/auth/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
