package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/duitku/backend/internal/integration/adapters"
	"github.com/duitku/backend/internal/integration/persistence/model"
)

const defaultTestPassword = "RahasiaAman123"

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	_, err := t.createUser(email, password)
	return err
}

// iAmLoggedInAs creates the user if needed and signs a token for them, so
// scenarios can switch identities without going through the login endpoint.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	err := testDB.Conn.Where("email = ?", email).First(&userModel).Error
	if err != nil {
		userID, createErr := t.createUser(email, defaultTestPassword)
		if createErr != nil {
			return createErr
		}
		userModel.ID = userID
	}

	t.currentUserID = userModel.ID

	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)
	token, err := tokenService.GenerateToken(context.Background(), t.currentUserID, email)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) aCategoryOfTypeExists(name, categoryType string) error {
	if t.currentUserID == uuid.Nil {
		return fmt.Errorf("no user is logged in")
	}

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := testDB.Conn.Create(categoryModel).Error; err != nil {
		return err
	}

	t.currentCategoryID = categoryModel.ID
	t.categoryIDs[name] = categoryModel.ID
	return nil
}

func (t *testContext) aTransactionExistsForOn(amount, categoryName, dateStr string) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q has not been created", categoryName)
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:         uuid.New(),
		UserID:     t.currentUserID,
		CategoryID: categoryID,
		Amount:     value,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := testDB.Conn.Create(transactionModel).Error; err != nil {
		return err
	}

	t.lastTransactionID = transactionModel.ID
	return nil
}

func (t *testContext) createUser(email, password string) (uuid.UUID, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	userModel := &model.UserModel{
		ID:           uuid.New(),
		Name:         "Budi Santoso",
		Email:        email,
		PasswordHash: string(hashedBytes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := testDB.Conn.Create(userModel).Error; err != nil {
		return uuid.Nil, err
	}
	return userModel.ID, nil
}
