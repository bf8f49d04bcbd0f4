// Package report contains the aggregation engine and reporting use cases.
package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
)

const summaryCacheKey = "summary"

// GetSummaryInput represents the input for the summary report.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the output of the summary report.
type GetSummaryOutput struct {
	Totals SummaryTotals
}

// GetSummaryUseCase computes the overall income/expense/balance summary for a user.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.ReportCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository, cache adapter.ReportCache) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute loads the user's joined transactions and reduces them into totals.
// Cache failures degrade to direct computation.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if uc.cache != nil {
		var cached SummaryTotals
		hit, err := uc.cache.Get(ctx, input.UserID, summaryCacheKey, &cached)
		if err != nil {
			slog.Debug("Report cache read failed", "userID", input.UserID, "error", err)
		} else if hit {
			return &GetSummaryOutput{Totals: cached}, nil
		}
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	totals := ComputeSummary(transactions)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.UserID, summaryCacheKey, totals); err != nil {
			slog.Debug("Report cache write failed", "userID", input.UserID, "error", err)
		}
	}

	return &GetSummaryOutput{Totals: totals}, nil
}
