// Package category contains use cases for managing transaction categories.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// SeedDefaultCategoriesInput represents the input for seeding the default set.
type SeedDefaultCategoriesInput struct {
	UserID uuid.UUID
}

// SeedDefaultCategoriesOutput represents the output of a seeding run.
type SeedDefaultCategoriesOutput struct {
	Created []*entity.Category
}

// SeedDefaultCategoriesUseCase installs the default category set for a user.
// Seeding is idempotent: entries the user already has, matched by name and
// type, are skipped, so repeated runs never duplicate.
type SeedDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultCategoriesUseCase creates a new SeedDefaultCategoriesUseCase instance.
func NewSeedDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultCategoriesUseCase {
	return &SeedDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute creates the missing default categories and returns the ones created.
func (uc *SeedDefaultCategoriesUseCase) Execute(ctx context.Context, input SeedDefaultCategoriesInput) (*SeedDefaultCategoriesOutput, error) {
	existing, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	present := make(map[entity.DefaultCategory]bool, len(existing))
	for _, c := range existing {
		present[entity.DefaultCategory{Name: c.Name, Type: c.Type}] = true
	}

	var missing []*entity.Category
	for _, dc := range entity.DefaultCategories {
		if present[dc] {
			continue
		}
		missing = append(missing, entity.NewCategory(input.UserID, dc.Name, dc.Type))
	}

	if len(missing) > 0 {
		if err := uc.categoryRepo.CreateBatch(ctx, missing); err != nil {
			return nil, err
		}
	}

	return &SeedDefaultCategoriesOutput{Created: missing}, nil
}
