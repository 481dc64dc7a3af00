package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const maxSourceLen = 100

// Income is money received by its owner.
type Income struct {
	Base
	UserID string          `gorm:"size:36;not null;index" json:"user_id"`
	Source string          `gorm:"size:100" json:"source"`
	Amount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Date   time.Time       `gorm:"not null" json:"date"`
}

func (i *Income) OwnerID() string { return i.UserID }

func (i *Income) AssignOwner(userID string) { i.UserID = userID }

func (i *Income) Kind() Kind { return KindIncome }

func (i *Income) Validate() error {
	if err := validateCommon(i.UserID, i.Amount, i.Date); err != nil {
		return err
	}
	if len(i.Source) > maxSourceLen {
		return ErrLabelTooLong
	}
	return nil
}

func (i *Income) Entry() Entry {
	return Entry{
		Kind:   KindIncome,
		ID:     i.ID,
		Date:   i.Date,
		Label:  i.Source,
		Amount: i.Amount,
	}
}

// IncomePatch carries the fields supplied in an income update.
type IncomePatch struct {
	Source *string
	Amount *decimal.Decimal
	Date   *time.Time
}

// ApplyTo merges the supplied fields into i according to policy.
func (p IncomePatch) ApplyTo(i *Income, policy MergePolicy) {
	mergeString(&i.Source, p.Source, policy)
	mergeAmount(&i.Amount, p.Amount, policy)
	mergeDate(&i.Date, p.Date, policy)
}
