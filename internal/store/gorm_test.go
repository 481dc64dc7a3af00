package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/store"
	"fintrack/internal/testutil"
)

// GormStoreTestSuite exercises the gorm-backed record store against SQLite.
type GormStoreTestSuite struct {
	suite.Suite
	db       *gorm.DB
	expenses store.RecordStore[models.Expense]
	incomes  store.RecordStore[models.Income]
	owner    *models.User
	other    *models.User
	ctx      context.Context
}

func (s *GormStoreTestSuite) SetupTest() {
	s.db = testutil.SetupTestDB(s.T())
	s.expenses = store.NewGormStore[models.Expense](s.db)
	s.incomes = store.NewGormStore[models.Income](s.db)
	s.owner = testutil.CreateTestUser(s.T(), s.db)
	s.other = testutil.CreateTestUser(s.T(), s.db)
	s.ctx = context.Background()
}

func (s *GormStoreTestSuite) TearDownTest() {
	testutil.TeardownTestDB(s.T(), s.db)
}

func (s *GormStoreTestSuite) TestCreateAssignsIdentifier() {
	expense := &models.Expense{
		UserID:   s.owner.ID,
		Date:     testutil.Day(s.T(), "2024-01-01"),
		Category: "Food",
		Amount:   testutil.Amount(s.T(), "42.5"),
	}
	require.NoError(s.T(), s.expenses.Create(s.ctx, expense))
	assert.NotEmpty(s.T(), expense.ID)
	assert.False(s.T(), expense.CreatedAt.IsZero())

	loaded, err := s.expenses.Get(s.ctx, expense.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), loaded.Amount.Equal(testutil.Amount(s.T(), "42.5")), "amount = %s", loaded.Amount)
	assert.Equal(s.T(), s.owner.ID, loaded.UserID)
}

func (s *GormStoreTestSuite) TestGetMissing() {
	_, err := s.expenses.Get(s.ctx, "0190a5b4-0000-7000-8000-000000000000")
	assert.ErrorIs(s.T(), err, store.ErrNotFound)
}

func (s *GormStoreTestSuite) TestListByOwnerIsolatesAndOrders() {
	testutil.CreateTestExpense(s.T(), s.db, s.owner.ID, "2024-01-01", "Food", "10")
	testutil.CreateTestExpense(s.T(), s.db, s.owner.ID, "2024-03-01", "Rent", "20")
	testutil.CreateTestExpense(s.T(), s.db, s.owner.ID, "2024-02-01", "Bills", "30")
	testutil.CreateTestExpense(s.T(), s.db, s.other.ID, "2024-04-01", "Food", "99")

	list, total, err := s.expenses.ListByOwner(s.ctx, s.owner.ID, store.ListOptions{Order: store.OrderDateDesc})
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 3)
	assert.EqualValues(s.T(), 3, total)

	var dates []string
	for _, e := range list {
		assert.Equal(s.T(), s.owner.ID, e.UserID)
		dates = append(dates, e.Date.Format("2006-01-02"))
	}
	assert.Equal(s.T(), []string{"2024-03-01", "2024-02-01", "2024-01-01"}, dates)
}

func (s *GormStoreTestSuite) TestListByOwnerPaginates() {
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		testutil.CreateTestExpense(s.T(), s.db, s.owner.ID, d, "Food", "1")
	}

	page := pagination.PageRequest{Page: 2, PageSize: 2}
	list, total, err := s.expenses.ListByOwner(s.ctx, s.owner.ID, store.ListOptions{Order: store.OrderDateDesc, Page: page})
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 3, total)
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), "2024-01-01", list[0].Date.Format("2006-01-02"))
}

func (s *GormStoreTestSuite) TestListByOwnerEmpty() {
	list, total, err := s.incomes.ListByOwner(s.ctx, s.owner.ID, store.ListOptions{})
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), list)
	assert.Empty(s.T(), list)
	assert.Zero(s.T(), total)
}

func (s *GormStoreTestSuite) TestSaveAndDelete() {
	income := testutil.CreateTestIncome(s.T(), s.db, s.owner.ID, "2024-01-01", "Salary", "1000")

	income.Source = "Bonus"
	require.NoError(s.T(), s.incomes.Save(s.ctx, income))

	loaded, err := s.incomes.Get(s.ctx, income.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Bonus", loaded.Source)

	require.NoError(s.T(), s.incomes.Delete(s.ctx, income.ID))
	assert.ErrorIs(s.T(), s.incomes.Delete(s.ctx, income.ID), store.ErrNotFound)
}

func (s *GormStoreTestSuite) TestAtomicRollsBackOnError() {
	expense := testutil.CreateTestExpense(s.T(), s.db, s.owner.ID, "2024-01-01", "Food", "10")
	boom := errors.New("boom")

	err := s.expenses.Atomic(s.ctx, func(tx store.RecordStore[models.Expense]) error {
		loaded, err := tx.Get(s.ctx, expense.ID)
		if err != nil {
			return err
		}
		loaded.Category = "Changed"
		if err := tx.Save(s.ctx, loaded); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(s.T(), err, boom)

	loaded, err := s.expenses.Get(s.ctx, expense.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Food", loaded.Category)
}

func TestGormStoreTestSuite(t *testing.T) {
	suite.Run(t, new(GormStoreTestSuite))
}
