package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

// memoryCache is a SummaryCacher backed by a map.
type memoryCache struct {
	entries map[string]*Summary
	gets    int
	sets    int
	err     error
}

func newMemoryCache() *memoryCache { return &memoryCache{entries: map[string]*Summary{}} }

func (m *memoryCache) Get(_ context.Context, ownerID, key string) (*Summary, int64, error) {
	m.gets++
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.entries[ownerID+"/"+key], 0, nil
}

func (m *memoryCache) Set(_ context.Context, ownerID, key string, _ int64, s *Summary) error {
	m.sets++
	if m.err != nil {
		return m.err
	}
	m.entries[ownerID+"/"+key] = s
	return nil
}

func assertDecimal(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s: expected %s, got %s", label, want, got)
	}
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	owner := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	testutil.CreateTestExpense(t, db, owner.ID, "2024-01-05", "Food", "30")
	testutil.CreateTestExpense(t, db, owner.ID, "2024-01-20", "Rent", "60")
	testutil.CreateTestExpense(t, db, owner.ID, "2024-02-03", "Food", "10")
	testutil.CreateTestIncome(t, db, owner.ID, "2024-01-01", "Salary", "200")
	testutil.CreateTestIncome(t, db, owner.ID, "2024-02-01", "Salary", "200")
	testutil.CreateTestExpense(t, db, other.ID, "2024-01-10", "Food", "999")

	newSvc := func() *summaryService {
		svc := NewSummaryService(newExpenseService(db), newIncomeService(db), nil).(*summaryService)
		svc.now = func() time.Time { return time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC) }
		return svc
	}

	t.Run("all_records", func(t *testing.T) {
		s, err := newSvc().Summarize(ctx, owner.ID, SummaryFilter{})
		testutil.AssertNoError(t, err)

		assertDecimal(t, "total expense", s.TotalExpense, "100")
		assertDecimal(t, "total income", s.TotalIncome, "400")
		assertDecimal(t, "balance", s.Balance, "300")
		assertDecimal(t, "current month expense", s.CurrentMonthExpense, "10")
		if s.ExpenseCount != 3 || s.IncomeCount != 2 {
			t.Errorf("unexpected counts: %d expenses, %d incomes", s.ExpenseCount, s.IncomeCount)
		}
		if s.TopCategory != "Rent" {
			t.Errorf("expected top category Rent, got %s", s.TopCategory)
		}
		if len(s.Categories) != 2 || s.Categories[0].Percentage != 60 || s.Categories[1].Percentage != 40 {
			t.Errorf("unexpected category breakdown %+v", s.Categories)
		}
		if len(s.Recent) != 5 {
			t.Fatalf("expected 5 recent entries, got %d", len(s.Recent))
		}
		if s.Recent[0].Date.Format("2006-01-02") != "2024-02-03" || s.Recent[0].Kind != models.KindExpense {
			t.Errorf("expected newest entry first, got %+v", s.Recent[0])
		}
	})

	t.Run("month_and_category", func(t *testing.T) {
		s, err := newSvc().Summarize(ctx, owner.ID, SummaryFilter{Month: "2024-01", Category: "Food", Recent: 2})
		testutil.AssertNoError(t, err)

		assertDecimal(t, "total expense", s.TotalExpense, "30")
		assertDecimal(t, "total income", s.TotalIncome, "200")
		if s.TopCategory != "Food" {
			t.Errorf("expected top category Food, got %s", s.TopCategory)
		}
		if len(s.Recent) != 2 {
			t.Errorf("expected 2 recent entries, got %d", len(s.Recent))
		}
	})

	t.Run("all_category_means_no_filter", func(t *testing.T) {
		s, err := newSvc().Summarize(ctx, owner.ID, SummaryFilter{Category: "All"})
		testutil.AssertNoError(t, err)
		if s.ExpenseCount != 3 {
			t.Errorf("expected 3 expenses, got %d", s.ExpenseCount)
		}
	})

	t.Run("no_records", func(t *testing.T) {
		s, err := newSvc().Summarize(ctx, other.ID, SummaryFilter{Month: "2023-05"})
		testutil.AssertNoError(t, err)
		if s.TopCategory != NoTopCategory {
			t.Errorf("expected %q, got %q", NoTopCategory, s.TopCategory)
		}
		if s.Categories == nil || s.Recent == nil {
			t.Error("expected empty slices, got nil")
		}
	})

	t.Run("bad_month", func(t *testing.T) {
		_, err := newSvc().Summarize(ctx, owner.ID, SummaryFilter{Month: "January"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("requires_identity", func(t *testing.T) {
		_, err := newSvc().Summarize(ctx, "", SummaryFilter{})
		testutil.AssertAppError(t, err, "UNAUTHENTICATED")
	})
}

func TestSummarizeUsesCache(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	owner := testutil.CreateTestUser(t, db)
	testutil.CreateTestExpense(t, db, owner.ID, "2024-01-05", "Food", "30")

	cache := newMemoryCache()
	svc := NewSummaryService(newExpenseService(db), newIncomeService(db), cache)

	first, err := svc.Summarize(ctx, owner.ID, SummaryFilter{})
	testutil.AssertNoError(t, err)
	second, err := svc.Summarize(ctx, owner.ID, SummaryFilter{})
	testutil.AssertNoError(t, err)

	if first != second {
		t.Error("expected the second call to be served from cache")
	}
	if cache.sets != 1 {
		t.Errorf("expected one cache write, got %d", cache.sets)
	}
}

func TestSummarizeCacheFailureFailsOpen(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	owner := testutil.CreateTestUser(t, db)
	testutil.CreateTestExpense(t, db, owner.ID, "2024-01-05", "Food", "30")

	cache := newMemoryCache()
	cache.err = errors.New("redis: connection refused")
	svc := NewSummaryService(newExpenseService(db), newIncomeService(db), cache)

	s, err := svc.Summarize(ctx, owner.ID, SummaryFilter{})
	testutil.AssertNoError(t, err)
	assertDecimal(t, "total expense", s.TotalExpense, "30")
}
