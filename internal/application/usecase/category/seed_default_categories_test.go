// Package category contains use cases for managing transaction categories.
package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// fakeCategoryRepository is an in-memory CategoryRepository for tests.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{
		categories: make(map[uuid.UUID]*entity.Category),
	}
}

func (r *fakeCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return nil
}

func (r *fakeCategoryRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeCategoryRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	c, ok := r.categories[id]
	if !ok || c.UserID != userID {
		return domainerror.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func TestSeedDefaultCategoriesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the full default set for a fresh user", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewSeedDefaultCategoriesUseCase(repo)
		userID := uuid.New()

		output, err := uc.Execute(ctx, SeedDefaultCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Created) != len(entity.DefaultCategories) {
			t.Fatalf("expected %d created categories, got %d", len(entity.DefaultCategories), len(output.Created))
		}

		stored, _ := repo.FindByUser(ctx, userID)
		if len(stored) != len(entity.DefaultCategories) {
			t.Fatalf("expected %d stored categories, got %d", len(entity.DefaultCategories), len(stored))
		}
	})

	t.Run("second run creates nothing", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewSeedDefaultCategoriesUseCase(repo)
		userID := uuid.New()

		if _, err := uc.Execute(ctx, SeedDefaultCategoriesInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error on first run: %v", err)
		}
		output, err := uc.Execute(ctx, SeedDefaultCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error on second run: %v", err)
		}

		if len(output.Created) != 0 {
			t.Errorf("expected no categories created on second run, got %d", len(output.Created))
		}
		stored, _ := repo.FindByUser(ctx, userID)
		if len(stored) != len(entity.DefaultCategories) {
			t.Errorf("expected %d stored categories after second run, got %d", len(entity.DefaultCategories), len(stored))
		}
	})

	t.Run("fills in only the missing defaults", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewSeedDefaultCategoriesUseCase(repo)
		userID := uuid.New()

		existing := entity.NewCategory(userID, "Gaji", entity.CategoryTypeIncome)
		if err := repo.Create(ctx, existing); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := uc.Execute(ctx, SeedDefaultCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Created) != len(entity.DefaultCategories)-1 {
			t.Errorf("expected %d created categories, got %d", len(entity.DefaultCategories)-1, len(output.Created))
		}
		for _, c := range output.Created {
			if c.Name == "Gaji" && c.Type == entity.CategoryTypeIncome {
				t.Error("existing default was seeded again")
			}
		}
	})

	t.Run("does not touch other users", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewSeedDefaultCategoriesUseCase(repo)
		firstUser := uuid.New()
		secondUser := uuid.New()

		if _, err := uc.Execute(ctx, SeedDefaultCategoriesInput{UserID: firstUser}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output, err := uc.Execute(ctx, SeedDefaultCategoriesInput{UserID: secondUser})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Created) != len(entity.DefaultCategories) {
			t.Errorf("expected a full set for the second user, got %d", len(output.Created))
		}
	})
}

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an empty name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: uuid.New(),
			Name:   "   ",
			Type:   entity.CategoryTypeExpense,
		})

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNameEmpty {
			t.Fatalf("expected empty name error, got %v", err)
		}
	})

	t.Run("rejects an invalid type", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepository())

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: uuid.New(),
			Name:   "Lain-lain",
			Type:   entity.CategoryType("transfer"),
		})

		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeInvalidCategoryType {
			t.Fatalf("expected invalid type error, got %v", err)
		}
	})

	t.Run("trims and stores a valid category", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)
		userID := uuid.New()

		output, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Name:   "  Arisan  ",
			Type:   entity.CategoryTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Category.Name != "Arisan" {
			t.Errorf("expected trimmed name Arisan, got %q", output.Category.Name)
		}
		if output.Category.UserID != userID {
			t.Errorf("expected owner %s, got %s", userID, output.Category.UserID)
		}
	})

	t.Run("allows duplicate names", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)
		userID := uuid.New()

		for i := 0; i < 2; i++ {
			if _, err := uc.Execute(ctx, CreateCategoryInput{
				UserID: userID,
				Name:   "Makan",
				Type:   entity.CategoryTypeExpense,
			}); err != nil {
				t.Fatalf("unexpected error on attempt %d: %v", i+1, err)
			}
		}

		stored, _ := repo.FindByUser(ctx, userID)
		if len(stored) != 2 {
			t.Errorf("expected 2 stored categories, got %d", len(stored))
		}
	})
}
