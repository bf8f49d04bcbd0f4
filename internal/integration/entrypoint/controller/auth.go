// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/application/usecase/auth"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication and profile endpoints.
type AuthController struct {
	registerUseCase       *auth.RegisterUserUseCase
	loginUseCase          *auth.LoginUserUseCase
	getProfileUseCase     *auth.GetProfileUseCase
	updateProfileUseCase  *auth.UpdateProfileUseCase
	changePasswordUseCase *auth.ChangePasswordUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	getProfileUseCase *auth.GetProfileUseCase,
	updateProfileUseCase *auth.UpdateProfileUseCase,
	changePasswordUseCase *auth.ChangePasswordUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase:       registerUseCase,
		loginUseCase:          loginUseCase,
		getProfileUseCase:     getProfileUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		changePasswordUseCase: changePasswordUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAuthResponse(output.User, output.Token))
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuthResponse(output.User, output.Token))
}

// GetProfile handles GET /auth/profile requests.
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), auth.GetProfileInput{UserID: userID})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// UpdateProfile handles PUT /auth/profile requests.
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), auth.UpdateProfileInput{
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// ChangePassword handles PUT /auth/change-password requests.
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	err := c.changePasswordUseCase.Execute(ctx.Request.Context(), auth.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated"})
}

// handleAuthError handles auth errors and returns appropriate HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(c.getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists,
		domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeWrongCurrentPassword:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeInvalidToken, domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
