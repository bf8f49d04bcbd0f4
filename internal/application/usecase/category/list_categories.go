// Package category contains use cases for managing transaction categories.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing a user's categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing the categories owned by a user.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns all categories owned by the user.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListCategoriesOutput{Categories: categories}, nil
}
