// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for bearer token operations.
// Tokens carry a signed user identity and a fixed validity window.
type TokenService interface {
	// GenerateToken generates a new signed token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateToken validates a token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
