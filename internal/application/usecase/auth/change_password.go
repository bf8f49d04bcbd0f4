// Package auth contains use cases for authentication and account management.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// ChangePasswordInput represents the input for a password change.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase handles password changes for authenticated users.
type ChangePasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute verifies the current password and stores the new hash.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.CurrentPassword); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWrongCurrentPassword,
			"current password is incorrect",
			domainerror.ErrWrongCurrentPassword,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password must be at least 8 characters long",
			domainerror.ErrWeakPassword,
		)
	}

	newHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = newHash
	user.UpdatedAt = time.Now().UTC()
	return uc.userRepo.Update(ctx, user)
}
