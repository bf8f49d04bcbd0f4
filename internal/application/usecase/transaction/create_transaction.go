// Package transaction contains use cases for recording monetary events.
package transaction

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// maxNoteLength caps the free-form transaction note.
const maxNoteLength = 1000

// CreateTransactionInput represents the input for recording a transaction.
// Type is optional; when set it must agree with the category's type. A zero
// Date means now.
type CreateTransactionInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Note       string
	Date       time.Time
	Type       entity.CategoryType
}

// CreateTransactionOutput represents the output after recording a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// CreateTransactionUseCase handles transaction creation.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	reportCache     adapter.ReportCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	reportCache adapter.ReportCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		reportCache:     reportCache,
	}
}

// Execute validates the input, resolves the category within the user's scope
// and persists the transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a positive number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if len(input.Note) > maxNoteLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			"note cannot exceed 1000 characters",
			domainerror.ErrNoteTooLong,
		)
	}

	category, err := uc.categoryRepo.FindByIDAndUser(ctx, input.CategoryID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, err
	}

	if input.Type != "" && input.Type != category.Type {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionTypeMismatch,
			"transaction type does not match category type",
			domainerror.ErrTransactionTypeMismatch,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	txn := entity.NewTransaction(input.UserID, input.CategoryID, input.Amount, input.Note, date)
	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	if uc.reportCache != nil {
		if err := uc.reportCache.Invalidate(ctx, input.UserID); err != nil {
			slog.Debug("Report cache invalidation failed", "userID", input.UserID, "error", err)
		}
	}

	return &CreateTransactionOutput{Transaction: txn, Category: category}, nil
}
