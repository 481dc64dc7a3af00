package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Day returns midnight UTC of the given ISO date, failing the test on bad input.
func Day(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", iso, err)
	}
	return d
}

// Amount parses a decimal literal, failing the test on bad input.
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad fixture amount %q: %v", s, err)
	}
	return d
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense stores an expense for userID on the given ISO date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, date, category, amount string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Date:        Day(t, date),
		Category:    category,
		Amount:      Amount(t, amount),
		Description: fmt.Sprintf("expense %d", nextID()),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome stores an income for userID on the given ISO date.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID, date, source, amount string) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID: userID,
		Source: source,
		Amount: Amount(t, amount),
		Date:   Day(t, date),
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}
