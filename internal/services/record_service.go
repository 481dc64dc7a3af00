package services

import (
	"context"
	"errors"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/store"
)

type recordOptions struct {
	policy      models.MergePolicy
	hideForeign bool
	order       store.Order
	timeout     time.Duration
	notifier    ChangeNotifier
	now         func() time.Time
}

// RecordOption configures a record service.
type RecordOption func(*recordOptions)

// WithMergePolicy selects how partial updates treat zero and blank values.
func WithMergePolicy(p models.MergePolicy) RecordOption {
	return func(o *recordOptions) { o.policy = p }
}

// WithHiddenForeignRecords reports records owned by someone else as not found
// instead of forbidden.
func WithHiddenForeignRecords(hide bool) RecordOption {
	return func(o *recordOptions) { o.hideForeign = hide }
}

// WithListOrder sets the sort applied by List.
func WithListOrder(order store.Order) RecordOption {
	return func(o *recordOptions) { o.order = order }
}

// WithStoreTimeout bounds every store round trip. Zero disables the bound.
func WithStoreTimeout(d time.Duration) RecordOption {
	return func(o *recordOptions) { o.timeout = d }
}

// WithNotifier receives every committed mutation.
func WithNotifier(n ChangeNotifier) RecordOption {
	return func(o *recordOptions) { o.notifier = n }
}

// recordService implements RecordServicer for any record kind. Existence is
// checked before ownership on every id-addressed operation.
type recordService[T any, P models.Record[T]] struct {
	store store.RecordStore[T]
	opts  recordOptions
}

// NewRecordService creates a RecordServicer over the given store.
func NewRecordService[T any, P models.Record[T]](s store.RecordStore[T], opts ...RecordOption) RecordServicer[T] {
	o := recordOptions{policy: models.MergePresence, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &recordService[T, P]{store: s, opts: o}
}

// NewExpenseService lists expenses newest first.
func NewExpenseService(s store.RecordStore[models.Expense], opts ...RecordOption) RecordServicer[models.Expense] {
	return NewRecordService[models.Expense](s, append([]RecordOption{WithListOrder(store.OrderDateDesc)}, opts...)...)
}

// NewIncomeService lists incomes in store order.
func NewIncomeService(s store.RecordStore[models.Income], opts ...RecordOption) RecordServicer[models.Income] {
	return NewRecordService[models.Income](s, opts...)
}

func (s *recordService[T, P]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opts.timeout)
}

// Create persists rec owned by ownerID. Any owner set on rec by the caller is replaced.
func (s *recordService[T, P]) Create(ctx context.Context, ownerID string, rec *T) (*T, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	if rec == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "record is required")
	}

	p := P(rec)
	p.AssignOwner(ownerID)
	if err := p.Validate(); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	sctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.store.Create(sctx, rec); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.notify(ctx, ActionCreated, p)
	return rec, nil
}

// List returns the owner's records and the total before paging.
func (s *recordService[T, P]) List(ctx context.Context, ownerID string, page pagination.PageRequest) ([]T, int64, error) {
	if ownerID == "" {
		return nil, 0, apperrors.ErrUnauthenticated
	}

	sctx, cancel := s.withTimeout(ctx)
	defer cancel()
	records, total, err := s.store.ListByOwner(sctx, ownerID, store.ListOptions{Order: s.opts.order, Page: page})
	if err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, total, nil
}

// Get returns one record owned by ownerID.
func (s *recordService[T, P]) Get(ctx context.Context, ownerID, id string) (*T, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	sctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.loadOwned(sctx, s.store, ownerID, id)
}

// Update merges patch into the owner's record and saves it. Load, check and
// write happen in one transaction; concurrent updates are last-write-wins.
func (s *recordService[T, P]) Update(ctx context.Context, ownerID, id string, patch models.Patch[T]) (*T, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	if patch == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "no fields to update")
	}

	sctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var updated *T
	err := s.store.Atomic(sctx, func(tx store.RecordStore[T]) error {
		rec, err := s.loadOwned(sctx, tx, ownerID, id)
		if err != nil {
			return err
		}

		patch.ApplyTo(rec, s.opts.policy)
		p := P(rec)
		if p.OwnerID() != ownerID {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, models.ErrOwnerImmutable.Error())
		}
		if err := p.Validate(); err != nil {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}

		if err := tx.Save(sctx, rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	s.notify(ctx, ActionUpdated, P(updated))
	return updated, nil
}

// Delete permanently removes the owner's record.
func (s *recordService[T, P]) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return apperrors.ErrUnauthenticated
	}

	sctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var deleted P
	err := s.store.Atomic(sctx, func(tx store.RecordStore[T]) error {
		rec, err := s.loadOwned(sctx, tx, ownerID, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(sctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperrors.ErrRecordNotFound
			}
			return err
		}
		deleted = P(rec)
		return nil
	})
	if err != nil {
		return asAppError(err)
	}

	s.notify(ctx, ActionDeleted, deleted)
	return nil
}

// loadOwned fetches id from st and enforces ownership, in that order.
func (s *recordService[T, P]) loadOwned(ctx context.Context, st store.RecordStore[T], ownerID, id string) (*T, error) {
	rec, err := st.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if P(rec).OwnerID() != ownerID {
		if s.opts.hideForeign {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.ErrForbidden
	}
	return rec, nil
}

func (s *recordService[T, P]) notify(ctx context.Context, action ChangeAction, rec P) {
	if s.opts.notifier == nil {
		return
	}
	change := RecordChange{
		Kind:     rec.Kind(),
		Action:   action,
		RecordID: rec.GetID(),
		OwnerID:  rec.OwnerID(),
		At:       s.opts.now().UTC(),
	}
	// Notifier failures never undo a committed write.
	_ = s.opts.notifier.Notify(context.WithoutCancel(ctx), change)
}

// asAppError passes AppErrors through and wraps anything else as internal.
func asAppError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
