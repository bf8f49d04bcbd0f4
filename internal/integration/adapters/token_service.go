// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

const tokenIssuer = "duitku"

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface using HS256
// signed JWTs with a fixed validity window.
type tokenService struct {
	secret   []byte
	duration time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, duration time.Duration) adapter.TokenService {
	return &tokenService{
		secret:   []byte(secret),
		duration: duration,
	}
}

// GenerateToken generates a new signed token for the user.
func (s *tokenService) GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken validates a token and returns its claims. Any parse,
// signature or expiry failure maps to the domain invalid-token error.
func (s *tokenService) ValidateToken(ctx context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
