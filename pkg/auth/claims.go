package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID   uint
	Username string
	IsAdmin  bool
}

// AccessTokenClaims represents the typed JWT issued to clients. The admin flag
// is embedded at issuance and trusted for the life of the token; a demotion in
// the database does not revoke an outstanding token.
type AccessTokenClaims struct {
	UserID  uint `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// Username returns the subject the token was issued for.
func (c *AccessTokenClaims) Username() string {
	if c == nil {
		return ""
	}
	return c.Subject
}
