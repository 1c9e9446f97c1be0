package auth

import "github.com/rentora/rentora-backend/internal/users"

// LoginRequest carries the credentials decoded from the Basic Authorization header.
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse returns the minted token and the authenticated account.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	User        *users.UserDTO `json:"user"`
}

// RegisterResponse returns the account created by self-registration.
type RegisterResponse struct {
	User *users.UserDTO `json:"user"`
}
