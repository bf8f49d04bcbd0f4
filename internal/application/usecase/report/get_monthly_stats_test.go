// Package report contains the aggregation engine and reporting use cases.
package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// stubTransactionRepository serves a fixed joined transaction list.
type stubTransactionRepository struct {
	transactions []*entity.TransactionWithCategory
}

func (r *stubTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *stubTransactionRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *stubTransactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	return r.transactions, nil
}

func (r *stubTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *stubTransactionRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

func TestGetMonthlyStatsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the current UTC year", func(t *testing.T) {
		uc := NewGetMonthlyStatsUseCase(&stubTransactionRepository{}, nil)

		output, err := uc.Execute(ctx, GetMonthlyStatsInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Year != time.Now().UTC().Year() {
			t.Errorf("expected current year, got %d", output.Year)
		}
		if len(output.Stats) != 12 {
			t.Errorf("expected 12 entries, got %d", len(output.Stats))
		}
	})

	t.Run("rejects an out-of-range year", func(t *testing.T) {
		uc := NewGetMonthlyStatsUseCase(&stubTransactionRepository{}, nil)

		_, err := uc.Execute(ctx, GetMonthlyStatsInput{UserID: uuid.New(), Year: 123})
		if !errors.Is(err, domainerror.ErrInvalidYear) {
			t.Fatalf("expected invalid year error, got %v", err)
		}
	})
}

func TestGetSummaryUseCase(t *testing.T) {
	ctx := context.Background()

	salary := makeCategory("Gaji", entity.CategoryTypeIncome)
	food := makeCategory("Makan", entity.CategoryTypeExpense)
	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	repo := &stubTransactionRepository{
		transactions: []*entity.TransactionWithCategory{
			makeTxn("8000000", date, salary),
			makeTxn("3000000", date, food),
		},
	}
	uc := NewGetSummaryUseCase(repo, nil)

	output, err := uc.Execute(ctx, GetSummaryInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Totals.Balance.Equal(decimal.RequireFromString("5000000")) {
		t.Errorf("expected balance 5000000, got %s", output.Totals.Balance)
	}
}

func TestGetCategoryBreakdownUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects end date before start date", func(t *testing.T) {
		uc := NewGetCategoryBreakdownUseCase(&stubTransactionRepository{})

		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(ctx, GetCategoryBreakdownInput{
			UserID:    uuid.New(),
			StartDate: &start,
			EndDate:   &end,
		})

		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Fatalf("expected invalid date range error, got %v", err)
		}
	})

	t.Run("orders entries by type then name", func(t *testing.T) {
		food := makeCategory("Makan", entity.CategoryTypeExpense)
		transport := makeCategory("Transportasi", entity.CategoryTypeExpense)
		salary := makeCategory("Gaji", entity.CategoryTypeIncome)
		date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

		repo := &stubTransactionRepository{
			transactions: []*entity.TransactionWithCategory{
				makeTxn("100", date, transport),
				makeTxn("200", date, salary),
				makeTxn("300", date, food),
			},
		}
		uc := NewGetCategoryBreakdownUseCase(repo)

		output, err := uc.Execute(ctx, GetCategoryBreakdownInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := make([]string, len(output.Categories))
		for i, c := range output.Categories {
			got[i] = string(c.Type) + "/" + c.Name
		}
		want := []string{"expense/Makan", "expense/Transportasi", "income/Gaji"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, got)
			}
		}
	})
}
