package domain

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation requires an
	// authenticated session and none exists.
	ErrNotAuthenticated = errors.New("authentication required")

	// ErrInvalidRole marks a role string outside the fixed enumeration,
	// rejected before any request reaches the remote API.
	ErrInvalidRole = errors.New("invalid role")
)
