// Package auth contains use cases for authentication and account management.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output after a successful login.
type LoginUserOutput struct {
	User  *entity.User
	Token string
}

// LoginUserUseCase handles user login. An unknown email and a wrong password
// produce the same error so callers cannot probe which emails exist.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute verifies the credentials and returns a signed token.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	invalidCredentials := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, invalidCredentials
		}
		return nil, err
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials
	}

	token, err := uc.tokenService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginUserOutput{User: user, Token: token}, nil
}
