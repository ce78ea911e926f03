package registry

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memTxKey struct{}

// MemStore is an in-memory Store backed by a map. It exists for the engine's
// own test suite and for anything that needs a registry without a database.
type MemStore[T any] struct {
	kind string
	mu   sync.Mutex
	recs map[uuid.UUID]T

	setID func(*T, uuid.UUID)
	getID func(*T) uuid.UUID
}

// NewMemStore builds an empty in-memory store for one configuration kind.
// getID/setID bridge to the model's surrogate id field.
func NewMemStore[T any](kind string, getID func(*T) uuid.UUID, setID func(*T, uuid.UUID)) *MemStore[T] {
	return &MemStore[T]{
		kind:  kind,
		recs:  make(map[uuid.UUID]T),
		getID: getID,
		setID: setID,
	}
}

// InTx serializes the wrapped operations under the store mutex, so two
// concurrent check-then-insert sequences cannot interleave.
func (s *MemStore[T]) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, memTxKey{}, true))
}

func (s *MemStore[T]) lock(ctx context.Context) func() {
	if inTx, _ := ctx.Value(memTxKey{}).(bool); inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *MemStore[T]) Insert(ctx context.Context, rec *T) error {
	defer s.lock(ctx)()
	id := uuid.New()
	s.setID(rec, id)
	s.recs[id] = *rec
	return nil
}

func (s *MemStore[T]) Update(ctx context.Context, rec *T) error {
	defer s.lock(ctx)()
	id := s.getID(rec)
	if _, ok := s.recs[id]; !ok {
		return &NotFoundError{Kind: s.kind, ID: id}
	}
	s.recs[id] = *rec
	return nil
}

func (s *MemStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	defer s.lock(ctx)()
	if _, ok := s.recs[id]; !ok {
		return &NotFoundError{Kind: s.kind, ID: id}
	}
	delete(s.recs, id)
	return nil
}

func (s *MemStore[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	defer s.lock(ctx)()
	rec, ok := s.recs[id]
	if !ok {
		return nil, &NotFoundError{Kind: s.kind, ID: id}
	}
	return &rec, nil
}

func (s *MemStore[T]) Scan(ctx context.Context, pred func(*T) bool) ([]T, error) {
	defer s.lock(ctx)()
	var out []T
	for _, rec := range s.recs {
		rec := rec
		if pred == nil || pred(&rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}
