// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/duitku/backend/internal/application/usecase/report"
)

// SummaryResponse represents the overall income/expense summary.
type SummaryResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// MonthlyStatResponse represents one month of the yearly series. The monthly
// stats endpoint returns the bare 12-entry array, no wrapper object.
type MonthlyStatResponse struct {
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CategoryTotalResponse represents one entry of the category breakdown.
type CategoryTotalResponse struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// CategoryBreakdownResponse represents the category breakdown report.
type CategoryBreakdownResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
}

// ToSummaryResponse converts summary totals to a SummaryResponse DTO.
func ToSummaryResponse(totals report.SummaryTotals) SummaryResponse {
	return SummaryResponse{
		Income:  totals.Income.InexactFloat64(),
		Expense: totals.Expense.InexactFloat64(),
		Balance: totals.Balance.InexactFloat64(),
	}
}

// ToMonthlyStatsResponse converts the yearly series to response DTOs.
func ToMonthlyStatsResponse(stats []report.MonthlyStat) []MonthlyStatResponse {
	responses := make([]MonthlyStatResponse, len(stats))
	for i, s := range stats {
		responses[i] = MonthlyStatResponse{
			Month:   s.Month,
			Income:  s.Income.InexactFloat64(),
			Expense: s.Expense.InexactFloat64(),
		}
	}
	return responses
}

// ToCategoryBreakdownResponse converts breakdown entries to a CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(categories []report.CategoryTotal) CategoryBreakdownResponse {
	responses := make([]CategoryTotalResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryTotalResponse{
			Name:   c.Name,
			Type:   string(c.Type),
			Amount: c.Amount.InexactFloat64(),
		}
	}
	return CategoryBreakdownResponse{
		Categories: responses,
	}
}
