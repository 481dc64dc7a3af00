package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

const (
	// DefaultRecentEntries is the recent-list length when the filter leaves it unset.
	DefaultRecentEntries = 5
	// NoTopCategory is reported when there are no expenses to rank.
	NoTopCategory = "-"
	monthLayout   = "2006-01"
	allCategories = "All"
)

// summaryService aggregates records read through the record services, so
// every figure is confined to the owner's own records.
type summaryService struct {
	expenses RecordServicer[models.Expense]
	incomes  RecordServicer[models.Income]
	cache    SummaryCacher
	now      func() time.Time
}

// NewSummaryService creates a SummaryServicer. cache may be nil.
func NewSummaryService(expenses RecordServicer[models.Expense], incomes RecordServicer[models.Income], cache SummaryCacher) SummaryServicer {
	return &summaryService{expenses: expenses, incomes: incomes, cache: cache, now: time.Now}
}

// Key identifies a normalized filter in the summary cache.
func (f SummaryFilter) Key() string {
	return fmt.Sprintf("m=%s|c=%s|r=%d", f.Month, f.Category, f.Recent)
}

func (f SummaryFilter) normalized() SummaryFilter {
	f.Month = strings.TrimSpace(f.Month)
	f.Category = strings.TrimSpace(f.Category)
	if strings.EqualFold(f.Category, allCategories) {
		f.Category = ""
	}
	if f.Recent <= 0 {
		f.Recent = DefaultRecentEntries
	}
	return f
}

// Summarize computes totals, the category breakdown and recent entries.
// Cache errors are logged and the summary is computed from the records.
func (s *summaryService) Summarize(ctx context.Context, ownerID string, filter SummaryFilter) (*Summary, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	filter = filter.normalized()
	var month time.Time
	if filter.Month != "" {
		m, err := time.Parse(monthLayout, filter.Month)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be formatted as YYYY-MM")
		}
		month = m
	}

	log := logger.Named("summary")
	key := filter.Key()
	cacheable := s.cache != nil
	var version int64
	if cacheable {
		cached, v, err := s.cache.Get(ctx, ownerID, key)
		switch {
		case err != nil:
			log.Warnw("summary cache read failed", "user_id", ownerID, "error", err)
			cacheable = false
		case cached != nil:
			return cached, nil
		}
		version = v
	}

	var (
		expenses []models.Expense
		incomes  []models.Income
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, _, err = s.expenses.List(gctx, ownerID, pagination.PageRequest{})
		return err
	})
	g.Go(func() error {
		var err error
		incomes, _, err = s.incomes.List(gctx, ownerID, pagination.PageRequest{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, asAppError(err)
	}

	summary := buildSummary(filter, month, s.now(), expenses, incomes)

	if cacheable {
		if err := s.cache.Set(ctx, ownerID, key, version, summary); err != nil {
			log.Warnw("summary cache write failed", "user_id", ownerID, "error", err)
		}
	}
	return summary, nil
}

func inMonth(d, month time.Time) bool {
	if month.IsZero() {
		return true
	}
	return d.Year() == month.Year() && d.Month() == month.Month()
}

func buildSummary(filter SummaryFilter, month, now time.Time, expenses []models.Expense, incomes []models.Income) *Summary {
	summary := &Summary{
		Month:      filter.Month,
		Category:   filter.Category,
		Categories: []CategoryTotal{},
		Recent:     []models.Entry{},
	}

	var entries []models.Entry
	byCategory := map[string]decimal.Decimal{}
	for i := range expenses {
		e := &expenses[i]
		if !inMonth(e.Date, month) || (filter.Category != "" && e.Category != filter.Category) {
			continue
		}
		summary.ExpenseCount++
		summary.TotalExpense = summary.TotalExpense.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
		if inMonth(e.Date, now) {
			summary.CurrentMonthExpense = summary.CurrentMonthExpense.Add(e.Amount)
		}
		entries = append(entries, e.Entry())
	}

	for i := range incomes {
		in := &incomes[i]
		if !inMonth(in.Date, month) {
			continue
		}
		summary.IncomeCount++
		summary.TotalIncome = summary.TotalIncome.Add(in.Amount)
		entries = append(entries, in.Entry())
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	summary.Categories = categoryTotals(byCategory, summary.TotalExpense)
	summary.TopCategory = NoTopCategory
	if len(summary.Categories) > 0 {
		summary.TopCategory = summary.Categories[0].Category
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	if len(entries) > filter.Recent {
		entries = entries[:filter.Recent]
	}
	if entries != nil {
		summary.Recent = entries
	}
	return summary
}

// categoryTotals orders categories by total descending, then by name.
func categoryTotals(byCategory map[string]decimal.Decimal, total decimal.Decimal) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(byCategory))
	hundred := decimal.NewFromInt(100)
	for name, sum := range byCategory {
		ct := CategoryTotal{Category: name, Total: sum}
		if total.IsPositive() {
			ct.Percentage = sum.Mul(hundred).DivRound(total, 2).InexactFloat64()
		}
		out = append(out, ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}
