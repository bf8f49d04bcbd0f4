// Package category contains use cases for managing transaction categories.
package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
)

// DeleteCategoryInput represents the input for deleting a category.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion. Transactions referencing
// the deleted category are left in place and drop out of aggregate reports.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	reportCache  adapter.ReportCache
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, reportCache adapter.ReportCache) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		reportCache:  reportCache,
	}
}

// Execute deletes the category iff it is owned by the user. A category owned
// by someone else is reported as not found.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if err := uc.categoryRepo.DeleteByIDAndUser(ctx, input.CategoryID, input.UserID); err != nil {
		return err
	}

	if uc.reportCache != nil {
		if err := uc.reportCache.Invalidate(ctx, input.UserID); err != nil {
			slog.Debug("Report cache invalidation failed", "userID", input.UserID, "error", err)
		}
	}

	return nil
}
