package domain

import "time"

// Role is one of the fixed roles the scheduling API assigns to accounts.
// An account may hold several at once (e.g. ADMIN + DOCTOR).
type Role string

const (
	RoleUser    Role = "USER"
	RoleDoctor  Role = "DOCTOR"
	RoleAdmin   Role = "ADMIN"
	RolePatient Role = "PATIENT"
)

// Roles lists every role the remote service recognises.
var Roles = []Role{RoleUser, RoleDoctor, RoleAdmin, RolePatient}

// Valid reports whether r belongs to the fixed role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleDoctor, RoleAdmin, RolePatient:
		return true
	}
	return false
}

// Address is the postal address attached to patient accounts.
type Address struct {
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zipCode,omitempty"`
}

// User is an account record owned by the remote scheduling API. The console
// holds a read-mostly copy; all writes go back through the API.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []Role    `json:"roles"`
	Img       string    `json:"img,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy,omitempty"`

	// Doctor-only fields.
	Specialties []Specialty `json:"specialties,omitempty"`
	CRM         string      `json:"crm,omitempty"`

	// Patient-only fields.
	BirthDate string   `json:"birthDate,omitempty"`
	CPF       string   `json:"cpf,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// HasRole reports whether the account holds the given role.
func (u *User) HasRole(role Role) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
