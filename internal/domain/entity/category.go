// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category represents a user-owned label classifying transactions as income
// or expense. The type is fixed at creation; a transaction's classification
// is always derived from its category, never stored on the transaction.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultCategory describes one entry of the default category set.
type DefaultCategory struct {
	Name string
	Type CategoryType
}

// DefaultCategories is the fixed set seeded once for every new user.
var DefaultCategories = []DefaultCategory{
	{Name: "Gaji", Type: CategoryTypeIncome},
	{Name: "Bonus", Type: CategoryTypeIncome},
	{Name: "Investasi", Type: CategoryTypeIncome},
	{Name: "Makan", Type: CategoryTypeExpense},
	{Name: "Transportasi", Type: CategoryTypeExpense},
	{Name: "Belanja", Type: CategoryTypeExpense},
	{Name: "Hiburan", Type: CategoryTypeExpense},
}
