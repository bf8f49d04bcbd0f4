// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/duitku/backend/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService("test-secret", 24*time.Hour)

	t.Run("round trips claims", func(t *testing.T) {
		userID := uuid.New()
		token, err := service.GenerateToken(ctx, userID, "budi@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := service.ValidateToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if claims.UserID != userID {
			t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "budi@example.com" {
			t.Errorf("expected email budi@example.com, got %s", claims.Email)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Errorf("expected expiry in the future, got %s", claims.ExpiresAt)
		}
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		token, err := service.GenerateToken(ctx, uuid.New(), "budi@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tampered := token[:len(token)-2] + "xx"
		if _, err := service.ValidateToken(ctx, tampered); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Fatalf("expected invalid token error, got %v", err)
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewTokenService("other-secret", 24*time.Hour)
		token, err := other.GenerateToken(ctx, uuid.New(), "budi@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateToken(ctx, token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Fatalf("expected invalid token error, got %v", err)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := NewTokenService("test-secret", -1*time.Hour)
		token, err := expired.GenerateToken(ctx, uuid.New(), "budi@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateToken(ctx, token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Fatalf("expected invalid token error, got %v", err)
		}
	})
}

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hashes and verifies a password", func(t *testing.T) {
		hash, err := service.HashPassword("rahasia-banget")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hash == "rahasia-banget" {
			t.Fatal("hash must not equal the plain password")
		}

		if err := service.VerifyPassword(hash, "rahasia-banget"); err != nil {
			t.Errorf("expected password to verify, got %v", err)
		}
		if err := service.VerifyPassword(hash, "salah"); err == nil {
			t.Error("expected wrong password to fail verification")
		}
	})

	t.Run("rejects a short password", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("pendek"); !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Fatalf("expected weak password error, got %v", err)
		}
		if err := service.ValidatePasswordStrength("cukup-panjang"); err != nil {
			t.Fatalf("expected password to pass, got %v", err)
		}
	})
}
