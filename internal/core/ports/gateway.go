package ports

import (
	"context"

	"github.com/medagenda/console/internal/core/domain"
)

// LoginInput carries the credential pair for POST /auth/signin.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is the sign-in response: a bearer token plus a partial profile.
// The full profile is obtained by a follow-up AuthUsers call.
type AuthResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// AuthUsersResult is the authenticated identity view from GET /auth/users.
// Users carries the accounts visible to the caller; User is the caller itself.
type AuthUsersResult struct {
	Users []domain.User `json:"users"`
	User  domain.User   `json:"user"`
}

// UserFilters selects and paginates the user list. Multi-valued filters are
// serialized as repeated query parameters; nil pointers mean "not filtered".
type UserFilters struct {
	Roles       []domain.Role
	IsActive    *bool
	Search      string
	Specialties []string
	Page        int
	Limit       int
}

// SpecialtyFilters selects and paginates the specialty list.
type SpecialtyFilters struct {
	IsActive *bool
	Search   string
	Page     int
	Limit    int
}

// CreateUserInput carries all data needed to create an account.
type CreateUserInput struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	Roles       []domain.Role   `json:"roles"`
	Phone       string          `json:"phone,omitempty"`
	Img         string          `json:"img,omitempty"`
	Specialties []string        `json:"specialties,omitempty"`
	CRM         string          `json:"crm,omitempty"`
	BirthDate   string          `json:"birthDate,omitempty"`
	CPF         string          `json:"cpf,omitempty"`
	Address     *domain.Address `json:"address,omitempty"`
}

// UpdateUserInput is the partial-update payload for PUT /users/{id}. Only
// non-nil fields are serialized, so absent means "leave unchanged".
type UpdateUserInput struct {
	Name        *string         `json:"name,omitempty"`
	Email       *string         `json:"email,omitempty"`
	Password    *string         `json:"password,omitempty"`
	Roles       []domain.Role   `json:"roles,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	Img         *string         `json:"img,omitempty"`
	IsActive    *bool           `json:"isActive,omitempty"`
	Specialties []string        `json:"specialties,omitempty"`
	CRM         *string         `json:"crm,omitempty"`
	BirthDate   *string         `json:"birthDate,omitempty"`
	CPF         *string         `json:"cpf,omitempty"`
	Address     *domain.Address `json:"address,omitempty"`
}

// CreateSpecialtyInput carries the payload for POST /specialties.
type CreateSpecialtyInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateSpecialtyInput is the partial-update payload for PUT /specialties/{id}.
type UpdateSpecialtyInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// DeleteResult is the acknowledgement returned by delete endpoints.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EmailCheckResult reports whether an email is free to register.
type EmailCheckResult struct {
	Email     string `json:"email"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// SchedulingAPI is the single typed gateway to the remote scheduling service.
// One method per remote resource action; no retries, no caching — callers
// decide what to do with failures.
type SchedulingAPI interface {
	SignIn(ctx context.Context, input LoginInput) (*AuthResult, error)
	Register(ctx context.Context, input CreateUserInput) (*AuthResult, error)
	AuthUsers(ctx context.Context) (*AuthUsersResult, error)

	ListUsers(ctx context.Context, filters UserFilters) (*domain.Page[domain.User], error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) (*DeleteResult, error)
	DoctorsBySpecialty(ctx context.Context, specialtyID string, page, limit int) (*domain.Page[domain.User], error)
	UserStats(ctx context.Context) (*domain.SystemStats, error)
	CheckEmail(ctx context.Context, email string) (*EmailCheckResult, error)

	ListSpecialties(ctx context.Context, filters SpecialtyFilters) (*domain.Page[domain.Specialty], error)
	GetSpecialty(ctx context.Context, id string) (*domain.Specialty, error)
	CreateSpecialty(ctx context.Context, input CreateSpecialtyInput) (*domain.Specialty, error)
	UpdateSpecialty(ctx context.Context, id string, input UpdateSpecialtyInput) (*domain.Specialty, error)
	DeleteSpecialty(ctx context.Context, id string) (*DeleteResult, error)
}
