package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers (42.5), not strings ("42.5").
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind identifies one of the financial record variants.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// MergePolicy decides which supplied fields of a partial update overwrite stored values.
type MergePolicy string

const (
	// MergePresence overwrites every field present in the request, including zero and blank values.
	MergePresence MergePolicy = "presence"
	// MergeTruthy skips supplied zero or blank values and keeps the stored ones.
	MergeTruthy MergePolicy = "truthy"
)

// Validation failures reported by Record.Validate.
var (
	ErrNegativeAmount  = errors.New("amount must be a non-negative number")
	ErrMissingDate     = errors.New("date is required")
	ErrLabelTooLong    = errors.New("label is too long")
	ErrOwnerImmutable  = errors.New("record owner cannot change")
	errMissingOwnerRef = errors.New("record has no owner")
)

// Record is satisfied by pointers to the persisted record kinds. Every
// record has exactly one owner, assigned once at creation.
type Record[T any] interface {
	*T
	GetID() string
	OwnerID() string
	AssignOwner(userID string)
	Kind() Kind
	Validate() error
	// Entry projects the record onto the kind-agnostic shape used by summaries.
	Entry() Entry
}

// Patch is a partial update for records of type T. Nil fields are absent.
type Patch[T any] interface {
	ApplyTo(rec *T, policy MergePolicy)
}

// Entry is the kind-agnostic view of a record.
type Entry struct {
	Kind        Kind            `json:"kind"`
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

func validateCommon(owner string, amount decimal.Decimal, date time.Time) error {
	if owner == "" {
		return errMissingOwnerRef
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

func mergeString(dst *string, v *string, policy MergePolicy) {
	if v == nil || (policy == MergeTruthy && *v == "") {
		return
	}
	*dst = *v
}

func mergeAmount(dst *decimal.Decimal, v *decimal.Decimal, policy MergePolicy) {
	if v == nil || (policy == MergeTruthy && v.IsZero()) {
		return
	}
	*dst = *v
}

func mergeDate(dst *time.Time, v *time.Time, policy MergePolicy) {
	if v == nil || (policy == MergeTruthy && v.IsZero()) {
		return
	}
	*dst = *v
}
