// Package transaction contains use cases for recording monetary events.
package transaction

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// fakeCategoryRepository is an in-memory CategoryRepository for tests.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
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

// fakeTransactionRepository is an in-memory TransactionRepository for tests.
// It joins against a fakeCategoryRepository the same way the real repository
// joins against the categories table.
type fakeTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
	categoryRepo *fakeCategoryRepository
}

func newFakeTransactionRepository(categoryRepo *fakeCategoryRepository) *fakeTransactionRepository {
	return &fakeTransactionRepository{
		transactions: make(map[uuid.UUID]*entity.Transaction),
		categoryRepo: categoryRepo,
	}
}

func (r *fakeTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	txn, ok := r.transactions[id]
	if !ok || txn.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *txn
	return &copied, nil
}

func (r *fakeTransactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	var result []*entity.TransactionWithCategory
	for _, txn := range r.transactions {
		if txn.UserID != filter.UserID {
			continue
		}
		if filter.StartDate != nil && txn.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && txn.Date.After(*filter.EndDate) {
			continue
		}
		if filter.CategoryID != nil && txn.CategoryID != *filter.CategoryID {
			continue
		}
		joined := &entity.TransactionWithCategory{Transaction: txn}
		if cat, ok := r.categoryRepo.categories[txn.CategoryID]; ok {
			joined.Category = cat
		}
		result = append(result, joined)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Transaction.Date.After(result[j].Transaction.Date)
	})
	return result, nil
}

func (r *fakeTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	txn, ok := r.transactions[id]
	if !ok || txn.UserID != userID {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.transactions, id)
	return nil
}

func TestCreateTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakeCategoryRepository, *fakeTransactionRepository, *CreateTransactionUseCase) {
		categoryRepo := newFakeCategoryRepository()
		transactionRepo := newFakeTransactionRepository(categoryRepo)
		uc := NewCreateTransactionUseCase(transactionRepo, categoryRepo, nil)
		return categoryRepo, transactionRepo, uc
	}

	t.Run("stores a valid transaction", func(t *testing.T) {
		categoryRepo, transactionRepo, uc := setup()
		userID := uuid.New()
		cat := entity.NewCategory(userID, "Makan", entity.CategoryTypeExpense)
		categoryRepo.Create(ctx, cat)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:     userID,
			CategoryID: cat.ID,
			Amount:     decimal.RequireFromString("45000"),
			Note:       "nasi goreng",
			Date:       time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := transactionRepo.FindByIDAndUser(ctx, output.Transaction.ID, userID)
		if err != nil {
			t.Fatalf("transaction not stored: %v", err)
		}
		if !stored.Amount.Equal(decimal.RequireFromString("45000")) {
			t.Errorf("expected amount 45000, got %s", stored.Amount)
		}
		if output.Category.ID != cat.ID {
			t.Errorf("expected resolved category %s, got %s", cat.ID, output.Category.ID)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		categoryRepo, _, uc := setup()
		userID := uuid.New()
		cat := entity.NewCategory(userID, "Makan", entity.CategoryTypeExpense)
		categoryRepo.Create(ctx, cat)

		for _, amount := range []string{"0", "-10"} {
			_, err := uc.Execute(ctx, CreateTransactionInput{
				UserID:     userID,
				CategoryID: cat.ID,
				Amount:     decimal.RequireFromString(amount),
			})

			var txnErr *domainerror.TransactionError
			if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidTransactionAmount {
				t.Fatalf("expected invalid amount error for %s, got %v", amount, err)
			}
		}
	})

	t.Run("rejects another user's category", func(t *testing.T) {
		categoryRepo, _, uc := setup()
		owner := uuid.New()
		cat := entity.NewCategory(owner, "Makan", entity.CategoryTypeExpense)
		categoryRepo.Create(ctx, cat)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:     uuid.New(),
			CategoryID: cat.ID,
			Amount:     decimal.RequireFromString("100"),
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTxnCategoryNotFound {
			t.Fatalf("expected category not found error, got %v", err)
		}
	})

	t.Run("rejects a declared type that contradicts the category", func(t *testing.T) {
		categoryRepo, _, uc := setup()
		userID := uuid.New()
		cat := entity.NewCategory(userID, "Gaji", entity.CategoryTypeIncome)
		categoryRepo.Create(ctx, cat)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:     userID,
			CategoryID: cat.ID,
			Amount:     decimal.RequireFromString("100"),
			Type:       entity.CategoryTypeExpense,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTransactionTypeMismatch {
			t.Fatalf("expected type mismatch error, got %v", err)
		}
	})

	t.Run("defaults the date to now", func(t *testing.T) {
		categoryRepo, _, uc := setup()
		userID := uuid.New()
		cat := entity.NewCategory(userID, "Makan", entity.CategoryTypeExpense)
		categoryRepo.Create(ctx, cat)

		before := time.Now().UTC()
		output, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:     userID,
			CategoryID: cat.ID,
			Amount:     decimal.RequireFromString("100"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Transaction.Date.Before(before) {
			t.Errorf("expected defaulted date at or after %s, got %s", before, output.Transaction.Date)
		}
	})
}

func TestUpdateTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func(userID uuid.UUID) (*fakeCategoryRepository, *fakeTransactionRepository, *entity.Transaction, *UpdateTransactionUseCase) {
		categoryRepo := newFakeCategoryRepository()
		transactionRepo := newFakeTransactionRepository(categoryRepo)
		cat := entity.NewCategory(userID, "Makan", entity.CategoryTypeExpense)
		categoryRepo.Create(ctx, cat)
		txn := entity.NewTransaction(userID, cat.ID, decimal.RequireFromString("100"), "warung", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
		transactionRepo.Create(ctx, txn)
		return categoryRepo, transactionRepo, txn, NewUpdateTransactionUseCase(transactionRepo, categoryRepo, nil)
	}

	t.Run("applies only the provided fields", func(t *testing.T) {
		userID := uuid.New()
		_, transactionRepo, txn, uc := setup(userID)

		amount := decimal.RequireFromString("250")
		output, err := uc.Execute(ctx, UpdateTransactionInput{
			UserID:        userID,
			TransactionID: txn.ID,
			Amount:        &amount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Transaction.Amount.Equal(amount) {
			t.Errorf("expected amount 250, got %s", output.Transaction.Amount)
		}
		if output.Transaction.Note != "warung" {
			t.Errorf("expected note unchanged, got %q", output.Transaction.Note)
		}

		stored, _ := transactionRepo.FindByIDAndUser(ctx, txn.ID, userID)
		if !stored.Amount.Equal(amount) {
			t.Errorf("expected stored amount 250, got %s", stored.Amount)
		}
	})

	t.Run("rejects a category move to another user's category", func(t *testing.T) {
		userID := uuid.New()
		categoryRepo, _, txn, uc := setup(userID)

		foreign := entity.NewCategory(uuid.New(), "Makan", entity.CategoryTypeExpense)
		categoryRepo.Create(ctx, foreign)

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			UserID:        userID,
			TransactionID: txn.ID,
			CategoryID:    &foreign.ID,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTxnCategoryNotFound {
			t.Fatalf("expected category not found error, got %v", err)
		}
	})

	t.Run("treats a foreign transaction as not found", func(t *testing.T) {
		userID := uuid.New()
		_, _, txn, uc := setup(userID)

		amount := decimal.RequireFromString("1")
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			UserID:        uuid.New(),
			TransactionID: txn.ID,
			Amount:        &amount,
		})

		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected transaction not found, got %v", err)
		}
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	categoryRepo := newFakeCategoryRepository()
	transactionRepo := newFakeTransactionRepository(categoryRepo)
	uc := NewDeleteTransactionUseCase(transactionRepo, nil)

	cat := entity.NewCategory(userID, "Makan", entity.CategoryTypeExpense)
	categoryRepo.Create(ctx, cat)
	txn := entity.NewTransaction(userID, cat.ID, decimal.RequireFromString("100"), "", time.Now().UTC())
	transactionRepo.Create(ctx, txn)

	t.Run("treats a foreign transaction as not found", func(t *testing.T) {
		err := uc.Execute(ctx, DeleteTransactionInput{
			UserID:        uuid.New(),
			TransactionID: txn.ID,
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected transaction not found, got %v", err)
		}
		if _, err := transactionRepo.FindByIDAndUser(ctx, txn.ID, userID); err != nil {
			t.Fatalf("transaction should still exist: %v", err)
		}
	})

	t.Run("deletes an owned transaction", func(t *testing.T) {
		if err := uc.Execute(ctx, DeleteTransactionInput{UserID: userID, TransactionID: txn.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := transactionRepo.FindByIDAndUser(ctx, txn.ID, userID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected transaction to be gone, got %v", err)
		}
	})
}
