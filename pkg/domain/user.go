package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a canonical UUID.
func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Role is the access tier of an account, in ascending privilege.
type Role string

const (
	RoleUser        Role = "user"
	RolePartner     Role = "partner"
	RoleAdmin       Role = "admin"
	RoleMasterAdmin Role = "master_admin"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RolePartner, RoleAdmin, RoleMasterAdmin:
		return true
	}

	return false
}

// IsAdmin reports whether r grants administrative access to plots and orders.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleAdmin, RoleMasterAdmin:
		return true
	case RoleUser, RolePartner:
		return false
	}

	return false
}

// User is a registered account.
type User struct {
	ID          UserID `json:"id"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	// PasswordHash is the bcrypt hash of the password; never serialized.
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
