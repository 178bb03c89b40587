package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/medagenda/console/internal/core/domain"
	"github.com/medagenda/console/internal/core/ports"
)

func (c *Client) ListSpecialties(ctx context.Context, filters ports.SpecialtyFilters) (*domain.Page[domain.Specialty], error) {
	q := url.Values{}
	if filters.IsActive != nil {
		q.Set("isActive", strconv.FormatBool(*filters.IsActive))
	}
	if filters.Search != "" {
		q.Set("search", filters.Search)
	}
	addPagination(q, filters.Page, filters.Limit)

	var out domain.Page[domain.Specialty]
	if err := c.do(ctx, "list_specialties", http.MethodGet, "/specialties", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSpecialty(ctx context.Context, id string) (*domain.Specialty, error) {
	var out domain.Specialty
	if err := c.do(ctx, "get_specialty", http.MethodGet, "/specialties/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSpecialty(ctx context.Context, input ports.CreateSpecialtyInput) (*domain.Specialty, error) {
	var out domain.Specialty
	if err := c.do(ctx, "create_specialty", http.MethodPost, "/specialties", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSpecialty(ctx context.Context, id string, input ports.UpdateSpecialtyInput) (*domain.Specialty, error) {
	var out domain.Specialty
	if err := c.do(ctx, "update_specialty", http.MethodPut, "/specialties/"+url.PathEscape(id), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSpecialty(ctx context.Context, id string) (*ports.DeleteResult, error) {
	var out ports.DeleteResult
	if err := c.do(ctx, "delete_specialty", http.MethodDelete, "/specialties/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
