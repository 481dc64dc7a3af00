package testutil_test

import (
	stderrors "errors"
	"testing"

	"gorm.io/gorm"

	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "expenses", "incomes"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBTranslatesErrors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	dup := &models.User{Email: user.Email, Password: user.Password, Name: "Dup"}
	if err := db.Create(dup).Error; !stderrors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have a generated ID")
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, "2024-01-01", "Food", "42.50")
	if !expense.Amount.Equal(testutil.Amount(t, "42.5")) {
		t.Errorf("expected amount 42.5, got %s", expense.Amount)
	}

	income := testutil.CreateTestIncome(t, db, user.ID, "2024-01-02", "Salary", "1000")
	if income.UserID != user.ID {
		t.Errorf("expected owner %s, got %s", user.ID, income.UserID)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrRecordNotFound, "custom message")
	testutil.AssertAppError(t, err, "RECORD_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
