package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const maxCategoryLen = 50

// Expense is money spent by its owner.
type Expense struct {
	Base
	UserID      string          `gorm:"size:36;not null;index" json:"user_id"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Category    string          `gorm:"size:50" json:"category"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Description string          `json:"description"`
}

func (e *Expense) OwnerID() string { return e.UserID }

func (e *Expense) AssignOwner(userID string) { e.UserID = userID }

func (e *Expense) Kind() Kind { return KindExpense }

// Validate checks the invariants that must hold before an expense is persisted.
func (e *Expense) Validate() error {
	if err := validateCommon(e.UserID, e.Amount, e.Date); err != nil {
		return err
	}
	if len(e.Category) > maxCategoryLen {
		return ErrLabelTooLong
	}
	return nil
}

func (e *Expense) Entry() Entry {
	return Entry{
		Kind:        KindExpense,
		ID:          e.ID,
		Date:        e.Date,
		Label:       e.Category,
		Amount:      e.Amount,
		Description: e.Description,
	}
}

// ExpensePatch carries the fields supplied in an expense update.
type ExpensePatch struct {
	Date        *time.Time
	Category    *string
	Amount      *decimal.Decimal
	Description *string
}

// ApplyTo merges the supplied fields into e according to policy.
func (p ExpensePatch) ApplyTo(e *Expense, policy MergePolicy) {
	mergeDate(&e.Date, p.Date, policy)
	mergeString(&e.Category, p.Category, policy)
	mergeAmount(&e.Amount, p.Amount, policy)
	mergeString(&e.Description, p.Description, policy)
}
