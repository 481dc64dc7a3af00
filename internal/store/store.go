// Package store persists financial records by identifier.
package store

import (
	"context"
	"errors"

	"fintrack/internal/pagination"
)

// ErrNotFound is returned when no record has the requested identifier.
var ErrNotFound = errors.New("store: record not found")

// Order controls the sort applied to owner listings.
type Order string

const (
	// OrderNone leaves rows in whatever order the database returns them.
	OrderNone Order = ""
	// OrderDateDesc returns the newest records first.
	OrderDateDesc Order = "date DESC"
)

// ListOptions narrows a ListByOwner call.
type ListOptions struct {
	Order Order
	Page  pagination.PageRequest
}

// RecordStore persists records of type T. Implementations must be safe for
// concurrent use.
type RecordStore[T any] interface {
	Create(ctx context.Context, rec *T) error
	// Get loads a record regardless of owner. It returns ErrNotFound when absent.
	Get(ctx context.Context, id string) (*T, error)
	// ListByOwner returns the owner's records and the unpaginated total.
	ListByOwner(ctx context.Context, ownerID string, opts ListOptions) ([]T, int64, error)
	Save(ctx context.Context, rec *T) error
	// Delete removes a record permanently. It returns ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
	// Atomic runs fn against a store bound to a single transaction. Records
	// loaded through the bound store stay locked until fn returns.
	Atomic(ctx context.Context, fn func(tx RecordStore[T]) error) error
}
