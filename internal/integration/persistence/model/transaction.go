// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// CategoryID is not a foreign key constraint; a transaction may outlive its
// category, in which case the Category relation stays nil on preload.
type TransactionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Note       string          `gorm:"type:text"`
	Date       time.Time       `gorm:"not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:         m.ID,
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		Note:       m.Note,
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a TransactionModel with its Category to a
// TransactionWithCategory entity. The category is nil when the reference no
// longer resolves.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:         transaction.ID,
		UserID:     transaction.UserID,
		CategoryID: transaction.CategoryID,
		Amount:     transaction.Amount,
		Note:       transaction.Note,
		Date:       transaction.Date,
		CreatedAt:  transaction.CreatedAt,
		UpdatedAt:  transaction.UpdatedAt,
	}
}
