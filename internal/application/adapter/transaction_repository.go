// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for querying transactions.
// StartDate and EndDate bound the transaction date inclusively when set;
// CategoryID restricts to an exact category when set.
type TransactionFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction by ID, scoped to the owning user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, each joined
	// with its category. Ordering is date DESC, created_at DESC so that the
	// same input always yields the same order. The category of a dangling
	// reference is nil.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// DeleteByIDAndUser removes a transaction iff owned by the user.
	// Returns domain ErrTransactionNotFound when no row matches.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
}
