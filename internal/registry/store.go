package registry

import (
	"context"

	"github.com/google/uuid"
)

// Store is the persistence capability set the engine needs: single-record
// mutations plus a predicate scan. Implementations perform no business
// validation, but each mutation must apply atomically and InTx must make the
// wrapped check-then-write sequence serializable with respect to concurrent
// callers.
type Store[T any] interface {
	// InTx runs fn so its store calls observe and produce a consistent
	// snapshot. Two conflicting InTx bodies must not both commit.
	InTx(ctx context.Context, fn func(ctx context.Context) error) error

	// Insert persists a new record and assigns its id.
	Insert(ctx context.Context, rec *T) error

	// Update overwrites the stored record with the same id.
	Update(ctx context.Context, rec *T) error

	// Delete hard-removes a record. Returns a not-found error for unknown ids.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID returns the record or a not-found error.
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)

	// Scan returns all records matching pred. A nil pred matches everything.
	Scan(ctx context.Context, pred func(*T) bool) ([]T, error)
}
