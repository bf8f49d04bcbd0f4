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

// UpdateTransactionInput represents a partial update. Nil fields keep their
// current value.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	CategoryID    *uuid.UUID
	Amount        *decimal.Decimal
	Note          *string
	Date          *time.Time
}

// UpdateTransactionOutput represents the output after updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles partial transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	reportCache     adapter.ReportCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	reportCache adapter.ReportCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		reportCache:     reportCache,
	}
}

// Execute applies the provided fields to the user's transaction. A new
// category reference is resolved within the user's scope before it is
// accepted.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByIDAndUser(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"amount must be a positive number",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		txn.Amount = *input.Amount
	}

	if input.Note != nil {
		if len(*input.Note) > maxNoteLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNoteTooLong,
				"note cannot exceed 1000 characters",
				domainerror.ErrNoteTooLong,
			)
		}
		txn.Note = *input.Note
	}

	if input.Date != nil {
		txn.Date = *input.Date
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByIDAndUser(ctx, *input.CategoryID, input.UserID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeTxnCategoryNotFound,
					"category not found",
					domainerror.ErrCategoryNotFoundForTransaction,
				)
			}
			return nil, err
		}
		txn.CategoryID = *input.CategoryID
	}

	txn.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	if uc.reportCache != nil {
		if err := uc.reportCache.Invalidate(ctx, input.UserID); err != nil {
			slog.Debug("Report cache invalidation failed", "userID", input.UserID, "error", err)
		}
	}

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
