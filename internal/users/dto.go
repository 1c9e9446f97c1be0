package users

import (
	"time"

	"github.com/rentora/rentora-backend/pkg/db/models"
)

// UserDTO is the full transport shape returned to admins. The password hash
// never leaves the service layer.
type UserDTO struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"is_active"`
	IsAdmin   bool       `json:"is_admin"`
	PersonID  *uint      `json:"person_id,omitempty"`
	Person    *PersonDTO `json:"person,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MinimalUserDTO is the reduced projection served to non-admin callers.
type MinimalUserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// PersonDTO carries the identity fields attached to a user.
type PersonDTO struct {
	ID          uint       `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	PersonID     *uint
	IsActive     *bool
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		PersonID:  u.PersonID,
		Person:    personFromModel(u.Person),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func MinimalFromModel(u *models.User) *MinimalUserDTO {
	if u == nil {
		return nil
	}
	return &MinimalUserDTO{
		ID:       u.ID,
		Username: u.Username,
	}
}

func personFromModel(p *models.Person) *PersonDTO {
	if p == nil {
		return nil
	}
	return &PersonDTO{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return &models.User{
		Username:     c.Username,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		IsActive:     isActive,
		IsAdmin:      c.IsAdmin,
		PersonID:     c.PersonID,
	}
}
