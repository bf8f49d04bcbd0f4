// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/duitku/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a
// transaction. Type is optional; when set it must agree with the category.
type CreateTransactionRequest struct {
	CategoryID string   `json:"category_id" binding:"required,uuid"`
	Amount     float64  `json:"amount" binding:"required,gt=0"`
	Note       string   `json:"note,omitempty" binding:"omitempty,max=1000"`
	Date       *string  `json:"date,omitempty"`
	Type       string   `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
}

// UpdateTransactionRequest represents the request body for partial updates.
type UpdateTransactionRequest struct {
	CategoryID *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Amount     *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Note       *string  `json:"note,omitempty" binding:"omitempty,max=1000"`
	Date       *string  `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
// Category is null when the referenced category no longer exists.
type TransactionResponse struct {
	ID        string            `json:"id"`
	Amount    string            `json:"amount"`
	Note      string            `json:"note"`
	Date      time.Time         `json:"date"`
	Category  *CategoryResponse `json:"category"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ToTransactionResponse converts a transaction and its optional category to a
// TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction, cat *entity.Category) TransactionResponse {
	response := TransactionResponse{
		ID:        txn.ID.String(),
		Amount:    txn.Amount.String(),
		Note:      txn.Note,
		Date:      txn.Date,
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
	if cat != nil {
		catResponse := ToCategoryResponse(cat)
		response.Category = &catResponse
	}
	return response
}

// ToTransactionListResponse converts joined transactions to response DTOs.
func ToTransactionListResponse(transactions []*entity.TransactionWithCategory) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn.Transaction, txn.Category)
	}
	return responses
}
