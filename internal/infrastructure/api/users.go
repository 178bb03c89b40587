package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/medagenda/console/internal/core/domain"
	"github.com/medagenda/console/internal/core/ports"
)

// ListUsers fetches a page of accounts. Multi-valued filters (roles,
// specialties) are repeated as same-named query parameters.
func (c *Client) ListUsers(ctx context.Context, filters ports.UserFilters) (*domain.Page[domain.User], error) {
	q := url.Values{}
	for _, role := range filters.Roles {
		q.Add("roles", string(role))
	}
	if filters.IsActive != nil {
		q.Set("isActive", strconv.FormatBool(*filters.IsActive))
	}
	if filters.Search != "" {
		q.Set("search", filters.Search)
	}
	for _, specialty := range filters.Specialties {
		q.Add("specialties", specialty)
	}
	addPagination(q, filters.Page, filters.Limit)

	var out domain.Page[domain.User]
	if err := c.do(ctx, "list_users", http.MethodGet, "/users", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, "get_user", http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, "create_user", http.MethodPost, "/users", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, "update_user", http.MethodPut, "/users/"+url.PathEscape(id), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) (*ports.DeleteResult, error) {
	var out ports.DeleteResult
	if err := c.do(ctx, "delete_user", http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DoctorsBySpecialty pages through the doctors holding a given specialty.
func (c *Client) DoctorsBySpecialty(ctx context.Context, specialtyID string, page, limit int) (*domain.Page[domain.User], error) {
	q := url.Values{}
	addPagination(q, page, limit)

	var out domain.Page[domain.User]
	path := "/users/doctors-by-specialty/" + url.PathEscape(specialtyID)
	if err := c.do(ctx, "doctors_by_specialty", http.MethodGet, path, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UserStats(ctx context.Context) (*domain.SystemStats, error) {
	var out domain.SystemStats
	if err := c.do(ctx, "user_stats", http.MethodGet, "/users/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckEmail asks the server whether an email is free to register.
func (c *Client) CheckEmail(ctx context.Context, email string) (*ports.EmailCheckResult, error) {
	body := struct {
		Email string `json:"email"`
	}{email}

	var out ports.EmailCheckResult
	if err := c.do(ctx, "check_email", http.MethodPost, "/users/check-email", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// addPagination appends page/limit only when set, matching the server's
// convention of defaulting absent parameters.
func addPagination(q url.Values, page, limit int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
}
