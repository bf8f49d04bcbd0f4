// Package transaction contains use cases for recording monetary events.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
// StartDate and EndDate bound the transaction date inclusively when set.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// ListTransactionsUseCase handles listing a user's transactions with their
// joined categories, newest first.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the user's transactions matching the filter. Transactions
// whose category no longer exists are included with a nil category.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:     input.UserID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
