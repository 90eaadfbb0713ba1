// Package service defines domain service contracts implemented by the
// infrastructure layer.
package service

import "dreamcrm/internal/domain/entity"

// SessionClaims is what a validated session token carries: enough to
// identify the user and gate capabilities without another lookup.
type SessionClaims struct {
	UserID string
	Role   entity.Role
}

// TokenService issues and validates bearer session tokens. The token is
// session plumbing for the HTTP surface, not a credential check; login
// itself is a plain email lookup.
type TokenService interface {
	// Generate creates a signed session token for the user.
	Generate(user *entity.User) (string, error)

	// Validate parses and verifies a token string, returning its claims.
	Validate(tokenString string) (*SessionClaims, error)
}
