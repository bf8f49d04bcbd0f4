// Package report contains the aggregation engine and reporting use cases.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

// SummaryTotals holds the overall income/expense totals for a transaction set.
type SummaryTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// MonthlyStat holds the income/expense totals for one calendar month.
type MonthlyStat struct {
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryKey identifies one breakdown bucket. Income and expense categories
// with the same name stay distinct because the type is part of the key.
type CategoryKey struct {
	Type entity.CategoryType
	Name string
}

// ComputeSummary reduces a joined transaction list into overall totals.
// Transactions whose category did not resolve contribute to neither bucket.
func ComputeSummary(transactions []*entity.TransactionWithCategory) SummaryTotals {
	income := decimal.Zero
	expense := decimal.Zero

	for _, txn := range transactions {
		if txn.Category == nil {
			continue
		}
		switch txn.Category.Type {
		case entity.CategoryTypeIncome:
			income = income.Add(txn.Transaction.Amount)
		case entity.CategoryTypeExpense:
			expense = expense.Add(txn.Transaction.Amount)
		}
	}

	return SummaryTotals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// ComputeMonthlyStats reduces a joined transaction list into exactly 12
// entries, one per calendar month of the given year, in month order.
// Months without matching transactions appear with zero totals. A
// transaction belongs to the month and year of its date in UTC; other
// years and unresolved categories are excluded.
func ComputeMonthlyStats(transactions []*entity.TransactionWithCategory, year int) []MonthlyStat {
	stats := make([]MonthlyStat, 12)
	for i := range stats {
		stats[i] = MonthlyStat{
			Month:   i + 1,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	for _, txn := range transactions {
		if txn.Category == nil {
			continue
		}
		date := txn.Transaction.Date.UTC()
		if date.Year() != year {
			continue
		}
		idx := int(date.Month()) - 1
		switch txn.Category.Type {
		case entity.CategoryTypeIncome:
			stats[idx].Income = stats[idx].Income.Add(txn.Transaction.Amount)
		case entity.CategoryTypeExpense:
			stats[idx].Expense = stats[idx].Expense.Add(txn.Transaction.Amount)
		}
	}

	return stats
}

// ComputeCategoryBreakdown reduces a joined transaction list into per-category
// totals keyed by (type, name). Unresolved categories are excluded.
func ComputeCategoryBreakdown(transactions []*entity.TransactionWithCategory) map[CategoryKey]decimal.Decimal {
	breakdown := make(map[CategoryKey]decimal.Decimal)

	for _, txn := range transactions {
		if txn.Category == nil {
			continue
		}
		key := CategoryKey{Type: txn.Category.Type, Name: txn.Category.Name}
		breakdown[key] = breakdown[key].Add(txn.Transaction.Amount)
	}

	return breakdown
}
