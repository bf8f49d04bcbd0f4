// Package category contains use cases for managing transaction categories.
package category

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// maxCategoryNameLength caps the category name.
const maxCategoryNameLength = 50

// CreateCategoryInput represents the input for creating a category.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Type   entity.CategoryType
}

// CreateCategoryOutput represents the output after creating a category.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles custom category creation.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute validates and persists a new category for the user. Names are
// trimmed before validation and need not be unique.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameEmpty,
			"category name cannot be empty",
			domainerror.ErrCategoryNameEmpty,
		)
	}
	if len(name) > maxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			"category name cannot exceed 50 characters",
			domainerror.ErrCategoryNameTooLong,
		)
	}
	if input.Type != entity.CategoryTypeExpense && input.Type != entity.CategoryTypeIncome {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be expense or income",
			domainerror.ErrInvalidCategoryType,
		)
	}

	category := entity.NewCategory(input.UserID, name, input.Type)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return &CreateCategoryOutput{Category: category}, nil
}
