package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fintrack/internal/pagination"
)

type gormStore[T any] struct {
	db *gorm.DB
	// inTx marks a store bound to a transaction; Get then takes a row lock.
	inTx bool
}

// NewGormStore returns a RecordStore backed by the table of T.
func NewGormStore[T any](db *gorm.DB) RecordStore[T] {
	return &gormStore[T]{db: db}
}

func (s *gormStore[T]) Create(ctx context.Context, rec *T) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

func (s *gormStore[T]) Get(ctx context.Context, id string) (*T, error) {
	q := s.db.WithContext(ctx)
	if s.inTx {
		// SQLite ignores row locks; the transaction itself serializes writers there.
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var rec T
	if err := q.Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &rec, nil
}

func (s *gormStore[T]) ListByOwner(ctx context.Context, ownerID string, opts ListOptions) ([]T, int64, error) {
	base := s.db.WithContext(ctx).Model(new(T)).Where("user_id = ?", ownerID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	q := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Scopes(pagination.Paginate(opts.Page))
	if opts.Order != OrderNone {
		q = q.Order(string(opts.Order))
	}

	records := []T{}
	if err := q.Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}
	return records, total, nil
}

func (s *gormStore[T]) Save(ctx context.Context, rec *T) error {
	if err := s.db.WithContext(ctx).Save(rec).Error; err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

func (s *gormStore[T]) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("delete record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore[T]) Atomic(ctx context.Context, fn func(tx RecordStore[T]) error) error {
	if s.inTx {
		return fn(s)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore[T]{db: tx, inTx: true})
	})
}
