// Package transaction contains use cases for recording monetary events.
package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	reportCache     adapter.ReportCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository, reportCache adapter.ReportCache) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		reportCache:     reportCache,
	}
}

// Execute deletes the transaction iff it is owned by the user. A transaction
// owned by someone else is reported as not found.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if err := uc.transactionRepo.DeleteByIDAndUser(ctx, input.TransactionID, input.UserID); err != nil {
		return err
	}

	if uc.reportCache != nil {
		if err := uc.reportCache.Invalidate(ctx, input.UserID); err != nil {
			slog.Debug("Report cache invalidation failed", "userID", input.UserID, "error", err)
		}
	}

	return nil
}
