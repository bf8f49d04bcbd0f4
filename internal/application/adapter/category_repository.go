// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// All lookups are scoped to the owning user; a category belonging to another
// user behaves exactly like a missing one.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// CreateBatch creates multiple categories in a single operation.
	CreateBatch(ctx context.Context, categories []*entity.Category) error

	// FindByIDAndUser retrieves a category by ID, scoped to the owning user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories owned by the given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// DeleteByIDAndUser removes a category iff owned by the user.
	// Returns domain ErrCategoryNotFound when no row matches.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
}
