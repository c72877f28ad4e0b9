package service

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identify the operator calling the /admin order routes.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// HasRole is false for nil claims.
func (c *Claims) HasRole(role string) bool {
	return c != nil && slices.Contains(c.Roles, role)
}

// TokenService issues and checks operator access tokens.
type TokenService interface {
	GenerateToken(subject string, roles []string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}
