// Package auth contains use cases for authentication and account management.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// UpdateProfileInput represents a partial profile update. Nil fields keep
// their current value.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	Name      *string
	Email     *string
	AvatarURL *string
}

// UpdateProfileOutput represents the output after a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile updates.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute applies the provided fields to the user's profile. Changing the
// email requires the new address to be unused.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeMissingFields,
				"name cannot be empty",
				nil,
			)
		}
		user.Name = name
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if !emailRegex.MatchString(email) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidEmail,
				"invalid email format",
				domainerror.ErrInvalidEmail,
			)
		}
		if email != user.Email {
			exists, err := uc.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domainerror.NewAuthError(
					domainerror.ErrCodeEmailExists,
					"email already registered",
					domainerror.ErrEmailAlreadyExists,
				)
			}
			user.Email = email
		}
	}

	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}

	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &UpdateProfileOutput{User: user}, nil
}
