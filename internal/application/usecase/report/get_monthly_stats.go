// Package report contains the aggregation engine and reporting use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

const (
	// minStatsYear and maxStatsYear bound the accepted year parameter.
	minStatsYear = 1970
	maxStatsYear = 9999
)

// GetMonthlyStatsInput represents the input for the monthly statistics report.
// Year zero means the current UTC calendar year.
type GetMonthlyStatsInput struct {
	UserID uuid.UUID
	Year   int
}

// GetMonthlyStatsOutput represents the output of the monthly statistics report.
type GetMonthlyStatsOutput struct {
	Year  int
	Stats []MonthlyStat
}

// GetMonthlyStatsUseCase computes the 12-month income/expense series for a user.
type GetMonthlyStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.ReportCache
}

// NewGetMonthlyStatsUseCase creates a new GetMonthlyStatsUseCase instance.
func NewGetMonthlyStatsUseCase(transactionRepo adapter.TransactionRepository, cache adapter.ReportCache) *GetMonthlyStatsUseCase {
	return &GetMonthlyStatsUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute loads the user's joined transactions and reduces them into the
// gap-filled 12-entry series for the requested year.
func (uc *GetMonthlyStatsUseCase) Execute(ctx context.Context, input GetMonthlyStatsInput) (*GetMonthlyStatsOutput, error) {
	year := input.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	if year < minStatsYear || year > maxStatsYear {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidYear,
			fmt.Sprintf("year must be between %d and %d", minStatsYear, maxStatsYear),
			domainerror.ErrInvalidYear,
		)
	}

	cacheKey := fmt.Sprintf("monthly:%d", year)
	if uc.cache != nil {
		var cached []MonthlyStat
		hit, err := uc.cache.Get(ctx, input.UserID, cacheKey, &cached)
		if err != nil {
			slog.Debug("Report cache read failed", "userID", input.UserID, "error", err)
		} else if hit && len(cached) == 12 {
			return &GetMonthlyStatsOutput{Year: year, Stats: cached}, nil
		}
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	stats := ComputeMonthlyStats(transactions, year)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.UserID, cacheKey, stats); err != nil {
			slog.Debug("Report cache write failed", "userID", input.UserID, "error", err)
		}
	}

	return &GetMonthlyStatsOutput{Year: year, Stats: stats}, nil
}
