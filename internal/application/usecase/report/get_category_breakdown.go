// Package report contains the aggregation engine and reporting use cases.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// GetCategoryBreakdownInput represents the input for the per-category report.
type GetCategoryBreakdownInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// CategoryTotal is one breakdown entry in deterministic output order.
type CategoryTotal struct {
	Type   entity.CategoryType
	Name   string
	Amount decimal.Decimal
}

// GetCategoryBreakdownOutput represents the output of the per-category report.
type GetCategoryBreakdownOutput struct {
	Categories []CategoryTotal
}

// GetCategoryBreakdownUseCase computes per-category totals for a user.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute loads the user's joined transactions for the optional date range
// and reduces them into per-category totals, ordered by type then name.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, err
	}

	breakdown := ComputeCategoryBreakdown(transactions)

	categories := make([]CategoryTotal, 0, len(breakdown))
	for key, amount := range breakdown {
		categories = append(categories, CategoryTotal{
			Type:   key.Type,
			Name:   key.Name,
			Amount: amount,
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Type != categories[j].Type {
			return categories[i].Type < categories[j].Type
		}
		return categories[i].Name < categories[j].Name
	})

	return &GetCategoryBreakdownOutput{Categories: categories}, nil
}
