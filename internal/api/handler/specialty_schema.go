package handler

import "github.com/medagenda/console/internal/core/ports"

type createSpecialtyRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (r *createSpecialtyRequest) toInput() ports.CreateSpecialtyInput {
	return ports.CreateSpecialtyInput{Name: r.Name, Description: r.Description}
}

type updateSpecialtyRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (r *updateSpecialtyRequest) toInput() ports.UpdateSpecialtyInput {
	return ports.UpdateSpecialtyInput{Name: r.Name, Description: r.Description, IsActive: r.IsActive}
}
