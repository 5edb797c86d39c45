package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the bearer token.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenIdentity is what gets embedded into a token.
type TokenIdentity struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Role   string
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// Generate signs a token for the identity and reports when it expires.
	Generate(identity TokenIdentity) (token string, expiresAt time.Time, err error)

	// Validate parses and verifies a token string.
	Validate(token string) (*Claims, error)
}
