package handler

import (
	"github.com/medagenda/console/internal/core/domain"
	"github.com/medagenda/console/internal/core/ports"
)

type addressRequest struct {
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zipCode,omitempty"`
}

func (a *addressRequest) toDomain() *domain.Address {
	if a == nil {
		return nil
	}
	return &domain.Address{
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
	}
}

type createUserRequest struct {
	Name        string          `json:"name"     validate:"required"`
	Email       string          `json:"email"    validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=6"`
	Roles       []string        `json:"roles"    validate:"required,min=1,dive,oneof=USER DOCTOR ADMIN PATIENT"`
	Phone       string          `json:"phone,omitempty"`
	Img         string          `json:"img,omitempty"`
	Specialties []string        `json:"specialties,omitempty"`
	CRM         string          `json:"crm,omitempty"`
	BirthDate   string          `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CPF         string          `json:"cpf,omitempty"`
	Address     *addressRequest `json:"address,omitempty"`
}

func (r *createUserRequest) toInput() ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:        r.Name,
		Email:       r.Email,
		Password:    r.Password,
		Roles:       toRoles(r.Roles),
		Phone:       r.Phone,
		Img:         r.Img,
		Specialties: r.Specialties,
		CRM:         r.CRM,
		BirthDate:   r.BirthDate,
		CPF:         r.CPF,
		Address:     r.Address.toDomain(),
	}
}

type updateUserRequest struct {
	Name        *string         `json:"name,omitempty"`
	Email       *string         `json:"email,omitempty" validate:"omitempty,email"`
	Password    *string         `json:"password,omitempty" validate:"omitempty,min=6"`
	Roles       []string        `json:"roles,omitempty" validate:"omitempty,min=1,dive,oneof=USER DOCTOR ADMIN PATIENT"`
	Phone       *string         `json:"phone,omitempty"`
	Img         *string         `json:"img,omitempty"`
	IsActive    *bool           `json:"isActive,omitempty"`
	Specialties []string        `json:"specialties,omitempty"`
	CRM         *string         `json:"crm,omitempty"`
	BirthDate   *string         `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CPF         *string         `json:"cpf,omitempty"`
	Address     *addressRequest `json:"address,omitempty"`
}

func (r *updateUserRequest) toInput() ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Name:        r.Name,
		Email:       r.Email,
		Password:    r.Password,
		Roles:       toRoles(r.Roles),
		Phone:       r.Phone,
		Img:         r.Img,
		IsActive:    r.IsActive,
		Specialties: r.Specialties,
		CRM:         r.CRM,
		BirthDate:   r.BirthDate,
		CPF:         r.CPF,
		Address:     r.Address.toDomain(),
	}
}

type checkEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func toRoles(values []string) []domain.Role {
	if len(values) == 0 {
		return nil
	}
	roles := make([]domain.Role, len(values))
	for i, v := range values {
		roles[i] = domain.Role(v)
	}
	return roles
}
