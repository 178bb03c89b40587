package handler

import "github.com/medagenda/console/internal/core/domain"

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// sessionResponse describes the operator session to the UI: who is logged
// in, if anyone, and whether the initial resolution is still in flight.
type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	Loading       bool         `json:"loading"`
	User          *domain.User `json:"user,omitempty"`
}

type logoutResponse struct {
	Success bool `json:"success"`
}
