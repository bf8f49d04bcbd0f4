// Package error defines domain-specific errors for the DuitKu application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found or not owned by the caller.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameEmpty is returned when the category name is empty.
	ErrCategoryNameEmpty = errors.New("category name cannot be empty")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameEmpty   CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTooLong CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidCategoryType CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound    CategoryErrorCode = "CAT-010004"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
