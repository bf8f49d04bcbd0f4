// Package report contains the aggregation engine and reporting use cases.
package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

func makeTxn(amount string, date time.Time, cat *entity.Category) *entity.TransactionWithCategory {
	categoryID := uuid.New()
	if cat != nil {
		categoryID = cat.ID
	}
	return &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			ID:         uuid.New(),
			UserID:     uuid.New(),
			CategoryID: categoryID,
			Amount:     decimal.RequireFromString(amount),
			Date:       date,
		},
		Category: cat,
	}
}

func makeCategory(name string, categoryType entity.CategoryType) *entity.Category {
	return &entity.Category{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   name,
		Type:   categoryType,
	}
}

func TestComputeSummary(t *testing.T) {
	salary := makeCategory("Gaji", entity.CategoryTypeIncome)
	food := makeCategory("Makan", entity.CategoryTypeExpense)
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("balance equals income minus expense", func(t *testing.T) {
		totals := ComputeSummary([]*entity.TransactionWithCategory{
			makeTxn("5000000", date, salary),
			makeTxn("1500000", date, salary),
			makeTxn("250000.50", date, food),
			makeTxn("99999.50", date, food),
		})

		if !totals.Income.Equal(decimal.RequireFromString("6500000")) {
			t.Errorf("expected income 6500000, got %s", totals.Income)
		}
		if !totals.Expense.Equal(decimal.RequireFromString("350000")) {
			t.Errorf("expected expense 350000, got %s", totals.Expense)
		}
		if !totals.Balance.Equal(totals.Income.Sub(totals.Expense)) {
			t.Errorf("expected balance %s, got %s", totals.Income.Sub(totals.Expense), totals.Balance)
		}
	})

	t.Run("empty input yields zero totals", func(t *testing.T) {
		totals := ComputeSummary(nil)

		if !totals.Income.IsZero() || !totals.Expense.IsZero() || !totals.Balance.IsZero() {
			t.Errorf("expected zero totals, got income=%s expense=%s balance=%s",
				totals.Income, totals.Expense, totals.Balance)
		}
	})

	t.Run("transactions without a category are excluded", func(t *testing.T) {
		totals := ComputeSummary([]*entity.TransactionWithCategory{
			makeTxn("100000", date, salary),
			makeTxn("999999", date, nil),
		})

		if !totals.Income.Equal(decimal.RequireFromString("100000")) {
			t.Errorf("expected income 100000, got %s", totals.Income)
		}
		if !totals.Expense.IsZero() {
			t.Errorf("expected zero expense, got %s", totals.Expense)
		}
	})

	t.Run("decimal sums stay exact", func(t *testing.T) {
		transactions := make([]*entity.TransactionWithCategory, 10)
		for i := range transactions {
			transactions[i] = makeTxn("0.1", date, food)
		}

		totals := ComputeSummary(transactions)
		if !totals.Expense.Equal(decimal.RequireFromString("1")) {
			t.Errorf("expected expense 1, got %s", totals.Expense)
		}
	})
}

func TestComputeMonthlyStats(t *testing.T) {
	salary := makeCategory("Gaji", entity.CategoryTypeIncome)
	food := makeCategory("Makan", entity.CategoryTypeExpense)

	t.Run("always returns 12 entries in month order", func(t *testing.T) {
		stats := ComputeMonthlyStats(nil, 2025)

		if len(stats) != 12 {
			t.Fatalf("expected 12 entries, got %d", len(stats))
		}
		for i, s := range stats {
			if s.Month != i+1 {
				t.Errorf("expected month %d at index %d, got %d", i+1, i, s.Month)
			}
			if !s.Income.IsZero() || !s.Expense.IsZero() {
				t.Errorf("expected zero totals for month %d", s.Month)
			}
		}
	})

	t.Run("buckets transactions by month", func(t *testing.T) {
		stats := ComputeMonthlyStats([]*entity.TransactionWithCategory{
			makeTxn("5000000", time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC), salary),
			makeTxn("5000000", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), salary),
			makeTxn("120000", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), food),
		}, 2025)

		if !stats[0].Income.Equal(decimal.RequireFromString("10000000")) {
			t.Errorf("expected january income 10000000, got %s", stats[0].Income)
		}
		if !stats[5].Expense.Equal(decimal.RequireFromString("120000")) {
			t.Errorf("expected june expense 120000, got %s", stats[5].Expense)
		}
		if !stats[11].Income.IsZero() {
			t.Errorf("expected zero december income, got %s", stats[11].Income)
		}
	})

	t.Run("other years are excluded", func(t *testing.T) {
		stats := ComputeMonthlyStats([]*entity.TransactionWithCategory{
			makeTxn("100", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), salary),
			makeTxn("200", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), salary),
			makeTxn("300", time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC), salary),
		}, 2025)

		if !stats[6].Income.Equal(decimal.RequireFromString("300")) {
			t.Errorf("expected july income 300, got %s", stats[6].Income)
		}
		for i, s := range stats {
			if i != 6 && !s.Income.IsZero() {
				t.Errorf("expected zero income for month %d, got %s", s.Month, s.Income)
			}
		}
	})

	t.Run("year membership is determined in UTC", func(t *testing.T) {
		jakarta := time.FixedZone("WIB", 7*60*60)
		// 2026-01-01 02:00 in UTC+7 is still 2025-12-31 19:00 UTC.
		stats := ComputeMonthlyStats([]*entity.TransactionWithCategory{
			makeTxn("500", time.Date(2026, 1, 1, 2, 0, 0, 0, jakarta), salary),
		}, 2025)

		if !stats[11].Income.Equal(decimal.RequireFromString("500")) {
			t.Errorf("expected december income 500, got %s", stats[11].Income)
		}
	})

	t.Run("transactions without a category are excluded", func(t *testing.T) {
		stats := ComputeMonthlyStats([]*entity.TransactionWithCategory{
			makeTxn("900", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), nil),
		}, 2025)

		if !stats[1].Income.IsZero() || !stats[1].Expense.IsZero() {
			t.Errorf("expected zero february totals, got income=%s expense=%s",
				stats[1].Income, stats[1].Expense)
		}
	})
}

func TestComputeCategoryBreakdown(t *testing.T) {
	date := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)

	t.Run("groups by type and name", func(t *testing.T) {
		food := makeCategory("Makan", entity.CategoryTypeExpense)
		transport := makeCategory("Transportasi", entity.CategoryTypeExpense)

		breakdown := ComputeCategoryBreakdown([]*entity.TransactionWithCategory{
			makeTxn("100", date, food),
			makeTxn("250", date, food),
			makeTxn("75", date, transport),
		})

		if len(breakdown) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(breakdown))
		}
		foodTotal := breakdown[CategoryKey{Type: entity.CategoryTypeExpense, Name: "Makan"}]
		if !foodTotal.Equal(decimal.RequireFromString("350")) {
			t.Errorf("expected Makan total 350, got %s", foodTotal)
		}
	})

	t.Run("same name with different types stays distinct", func(t *testing.T) {
		incomeBonus := makeCategory("Bonus", entity.CategoryTypeIncome)
		expenseBonus := makeCategory("Bonus", entity.CategoryTypeExpense)

		breakdown := ComputeCategoryBreakdown([]*entity.TransactionWithCategory{
			makeTxn("1000", date, incomeBonus),
			makeTxn("400", date, expenseBonus),
		})

		if len(breakdown) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(breakdown))
		}
		income := breakdown[CategoryKey{Type: entity.CategoryTypeIncome, Name: "Bonus"}]
		expense := breakdown[CategoryKey{Type: entity.CategoryTypeExpense, Name: "Bonus"}]
		if !income.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("expected income Bonus 1000, got %s", income)
		}
		if !expense.Equal(decimal.RequireFromString("400")) {
			t.Errorf("expected expense Bonus 400, got %s", expense)
		}
	})

	t.Run("transactions without a category are excluded", func(t *testing.T) {
		breakdown := ComputeCategoryBreakdown([]*entity.TransactionWithCategory{
			makeTxn("999", date, nil),
		})

		if len(breakdown) != 0 {
			t.Fatalf("expected empty breakdown, got %d buckets", len(breakdown))
		}
	})
}
