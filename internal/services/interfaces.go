package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, email, password, name string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// RecordServicer defines owner-scoped CRUD over one record kind. ownerID is
// the verified caller; every operation is confined to records it owns.
type RecordServicer[T any] interface {
	Create(ctx context.Context, ownerID string, rec *T) (*T, error)
	List(ctx context.Context, ownerID string, page pagination.PageRequest) ([]T, int64, error)
	Get(ctx context.Context, ownerID, id string) (*T, error)
	Update(ctx context.Context, ownerID, id string, patch models.Patch[T]) (*T, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// ChangeAction names what happened to a record.
type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// RecordChange describes a committed record mutation.
type RecordChange struct {
	Kind     models.Kind  `json:"kind"`
	Action   ChangeAction `json:"action"`
	RecordID string       `json:"record_id"`
	OwnerID  string       `json:"owner_id"`
	At       time.Time    `json:"at"`
}

// ChangeNotifier is told about every committed record mutation.
type ChangeNotifier interface {
	Notify(ctx context.Context, change RecordChange) error
}

// SummaryFilter narrows a summary. Category applies to expenses only.
type SummaryFilter struct {
	Month    string `form:"month" binding:"omitempty,month"`
	Category string `form:"category" binding:"omitempty,max=50"`
	Recent   int    `form:"recent" binding:"omitempty,min=1,max=50"`
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Percentage float64         `json:"percentage"`
}

// Summary aggregates an owner's records for the dashboard.
type Summary struct {
	Month               string          `json:"month,omitempty"`
	Category            string          `json:"category,omitempty"`
	TotalIncome         decimal.Decimal `json:"total_income"`
	TotalExpense        decimal.Decimal `json:"total_expense"`
	Balance             decimal.Decimal `json:"balance"`
	CurrentMonthExpense decimal.Decimal `json:"current_month_expense"`
	IncomeCount         int             `json:"income_count"`
	ExpenseCount        int             `json:"expense_count"`
	Categories          []CategoryTotal `json:"categories"`
	TopCategory         string          `json:"top_category"`
	Recent              []models.Entry  `json:"recent"`
}

// SummaryServicer builds summaries from an owner's records.
type SummaryServicer interface {
	Summarize(ctx context.Context, ownerID string, filter SummaryFilter) (*Summary, error)
}

// SummaryCacher stores computed summaries per owner. Get reports the owner's
// current cache version alongside the entry (nil on a miss); Set stores under
// that version, so a summary computed before an invalidation is never served after it.
type SummaryCacher interface {
	Get(ctx context.Context, ownerID, key string) (*Summary, int64, error)
	Set(ctx context.Context, ownerID, key string, version int64, summary *Summary) error
}
