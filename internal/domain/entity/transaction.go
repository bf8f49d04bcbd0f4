// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single recorded monetary event. The amount is an
// unsigned magnitude; direction of its effect on the balance comes from the
// joined category's type.
type Transaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Note       string
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(userID, categoryID uuid.UUID, amount decimal.Decimal, note string, date time.Time) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Note:       note,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// TransactionWithCategory represents a transaction joined with its category.
// Category is nil when the referenced category no longer exists; deleting a
// category does not cascade to its transactions.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
