package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the verified identity a token carries. Consumers only ever see
// claims that already passed signature verification.
type AuthClaims interface {
	Subject() string
	UserID() string
	Email() string
	FirstName() string
	LastName() string
	Role() string
	IsAdmin() bool
	Expires() time.Time
	IssuedAt() time.Time
}

// JWTClaims is the concrete implementation of AuthClaims
type JWTClaims struct {
	jwt.RegisteredClaims
	UID       string `json:"uid,omitempty"`
	UserEmail string `json:"email,omitempty"`
	GivenName string `json:"first_name,omitempty"`
	FamName   string `json:"last_name,omitempty"`
	UserRole  string `json:"role,omitempty"`
}

// Verify interface compliance
var _ AuthClaims = (*JWTClaims)(nil)

// Subject returns the subject claim
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the account ID
func (c *JWTClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// Email returns the account email
func (c *JWTClaims) Email() string {
	return c.UserEmail
}

// FirstName returns the display first name, when issued with one
func (c *JWTClaims) FirstName() string {
	return c.GivenName
}

// LastName returns the display last name, when issued with one
func (c *JWTClaims) LastName() string {
	return c.FamName
}

// Role returns the account role
func (c *JWTClaims) Role() string {
	return c.UserRole
}

// IsAdmin reports whether the role claim is in the admin set.
func (c *JWTClaims) IsAdmin() bool {
	role, ok := ParseRole(c.UserRole)
	return ok && role.IsAdmin()
}

// Expires returns the expiration time. The zero time means the token was
// issued without an exp claim and never expires.
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
