// Package error defines domain-specific errors for the DuitKu application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found or not owned by the caller.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not a positive number.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category does not resolve.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrTransactionTypeMismatch is returned when the declared type contradicts the category's type.
	ErrTransactionTypeMismatch = errors.New("transaction type does not match category type")

	// ErrNoteTooLong is returned when the transaction note exceeds the maximum length.
	ErrNoteTooLong = errors.New("note too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionTypeMismatch  TransactionErrorCode = "TXN-010004"
	ErrCodeNoteTooLong              TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010006"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
