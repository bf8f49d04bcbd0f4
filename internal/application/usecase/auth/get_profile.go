// Package auth contains use cases for authentication and account management.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// GetProfileInput represents the input for fetching the caller's profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the output of a profile lookup.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase handles profile retrieval.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute returns the user identified by the token claims.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{User: user}, nil
}
