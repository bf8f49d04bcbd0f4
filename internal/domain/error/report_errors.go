// Package error defines domain-specific errors for the DuitKu application.
package error

import "errors"

// Reporting domain errors.
var (
	// ErrInvalidYear is returned when the requested statistics year is out of range.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidDateRange is returned when a date range filter has end before start.
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

// ReportErrorCode defines error codes for reporting errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidYear      ReportErrorCode = "RPT-010001"
	ErrCodeInvalidDateRange ReportErrorCode = "RPT-010002"
)

// ReportError represents a reporting error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
