// Package auth contains use cases for authentication and account management.
package auth

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/usecase/category"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserOutput represents the output after a successful registration.
type RegisterUserOutput struct {
	User  *entity.User
	Token string
}

// RegisterUserUseCase handles new user registration. Every new account gets
// the default category set seeded; a seeding failure is logged and does not
// fail the registration.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	seedCategories  *category.SeedDefaultCategoriesUseCase
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	seedCategories *category.SeedDefaultCategoriesUseCase,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		seedCategories:  seedCategories,
	}
}

// Execute validates the input, creates the user and returns a signed token.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" || email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"name, email and password are required",
			nil,
		)
	}
	if !emailRegex.MatchString(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password must be at least 8 characters long",
			domainerror.ErrWeakPassword,
		)
	}

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

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(name, email, passwordHash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if _, err := uc.seedCategories.Execute(ctx, category.SeedDefaultCategoriesInput{UserID: user.ID}); err != nil {
		slog.Error("Failed to seed default categories", "userID", user.ID, "error", err)
	}

	token, err := uc.tokenService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &RegisterUserOutput{User: user, Token: token}, nil
}
