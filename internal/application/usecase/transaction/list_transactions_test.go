// Package transaction contains use cases for recording monetary events.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

func TestListTransactionsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects end date before start date", func(t *testing.T) {
		uc := NewListTransactionsUseCase(newFakeTransactionRepository(newFakeCategoryRepository()))

		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(ctx, ListTransactionsInput{
			UserID:    uuid.New(),
			StartDate: &start,
			EndDate:   &end,
		})

		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Fatalf("expected invalid date range error, got %v", err)
		}
	})

	t.Run("only returns the caller's transactions", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepository()
		transactionRepo := newFakeTransactionRepository(categoryRepo)
		uc := NewListTransactionsUseCase(transactionRepo)

		owner := uuid.New()
		other := uuid.New()
		ownerCat := entity.NewCategory(owner, "Makan", entity.CategoryTypeExpense)
		otherCat := entity.NewCategory(other, "Makan", entity.CategoryTypeExpense)
		categoryRepo.Create(ctx, ownerCat)
		categoryRepo.Create(ctx, otherCat)

		date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		transactionRepo.Create(ctx, entity.NewTransaction(owner, ownerCat.ID, decimal.RequireFromString("10"), "", date))
		transactionRepo.Create(ctx, entity.NewTransaction(other, otherCat.ID, decimal.RequireFromString("20"), "", date))

		output, err := uc.Execute(ctx, ListTransactionsInput{UserID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(output.Transactions))
		}
		if output.Transactions[0].Transaction.UserID != owner {
			t.Errorf("expected owner's transaction, got user %s", output.Transactions[0].Transaction.UserID)
		}
	})

	t.Run("includes transactions with a dangling category", func(t *testing.T) {
		categoryRepo := newFakeCategoryRepository()
		transactionRepo := newFakeTransactionRepository(categoryRepo)
		uc := NewListTransactionsUseCase(transactionRepo)

		userID := uuid.New()
		cat := entity.NewCategory(userID, "Makan", entity.CategoryTypeExpense)
		categoryRepo.Create(ctx, cat)
		txn := entity.NewTransaction(userID, cat.ID, decimal.RequireFromString("10"), "", time.Now().UTC())
		transactionRepo.Create(ctx, txn)

		categoryRepo.DeleteByIDAndUser(ctx, cat.ID, userID)

		output, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(output.Transactions))
		}
		if output.Transactions[0].Category != nil {
			t.Errorf("expected nil category after deletion, got %v", output.Transactions[0].Category)
		}
	})
}
