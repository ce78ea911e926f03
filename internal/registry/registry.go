// Package registry implements the temporal rate-configuration engine shared by
// every configuration table: versioned records with an effective/expiration
// interval, lookup-by-date, overlap detection, and the create/replace/patch/
// expire/delete mutation set. The engine is storage-agnostic; persistence sits
// behind the Store interface.
package registry

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Patch carries a partial update for one configuration kind. Implementations
// are plain structs with pointer fields, one per allow-listed column, so the
// allow-list is fixed at compile time. Apply copies the supplied fields onto
// rec and reports whether at least one recognized field was present.
type Patch[T any] interface {
	Apply(rec *T) bool
}

// Descriptor tells the engine how to read and mutate one configuration kind.
// Models stay plain GORM structs; the accessor funcs live with the service
// that instantiates the engine.
type Descriptor[T any] struct {
	// Kind names the configuration table in errors and logs.
	Kind string

	// StrictOverlap makes overlapping intervals for the same natural key a
	// hard ConflictError. Non-strict kinds only log the overlap.
	StrictOverlap bool

	ID         func(*T) uuid.UUID
	NaturalKey func(*T) string
	Interval   func(*T) Interval

	SetExpiration func(*T, *time.Time)

	// SetStatus refreshes a persisted status column. Nil for kinds whose
	// status is derived at read time only.
	SetStatus func(*T, string)

	// CopyCreation carries persistence metadata (creation timestamp) from the
	// stored record onto a replacement, so a full update cannot erase when
	// the record was first created.
	CopyCreation func(dst, existing *T)

	// Validate checks kind-specific required payload fields.
	Validate func(*T) error

	// Less orders List results deterministically (natural key, then a
	// kind-specific ranking field).
	Less func(a, b *T) bool
}

// Engine enforces the validity and overlap rules for one configuration kind.
// It is stateless between requests; all shared state lives in the store.
type Engine[T any] struct {
	desc  Descriptor[T]
	store Store[T]
	now   func() time.Time
}

// Option configures an Engine.
type Option[T any] func(*Engine[T])

// WithClock overrides the engine's notion of "today". Used by tests.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(e *Engine[T]) { e.now = now }
}

func NewEngine[T any](desc Descriptor[T], store Store[T], opts ...Option[T]) *Engine[T] {
	e := &Engine[T]{desc: desc, store: store, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// List returns every record whose validity interval contains asOf, in the
// kind's deterministic order. A zero asOf means today.
func (e *Engine[T]) List(ctx context.Context, asOf time.Time) ([]T, error) {
	if asOf.IsZero() {
		asOf = e.now()
	}
	recs, err := e.store.Scan(ctx, func(rec *T) bool {
		return e.desc.Interval(rec).Contains(asOf)
	})
	if err != nil {
		return nil, e.storeErr("scan", err)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return e.desc.Less(&recs[i], &recs[j])
	})
	return recs, nil
}

// Get returns a single record by id.
func (e *Engine[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	rec, err := e.store.FindByID(ctx, id)
	if err != nil {
		return nil, e.storeErr("find", err)
	}
	return rec, nil
}

// Create validates the payload, runs overlap detection for the natural key,
// and inserts a new record. The assigned id is written back into rec.
func (e *Engine[T]) Create(ctx context.Context, rec *T) error {
	if err := e.validate(rec); err != nil {
		return err
	}
	return e.store.InTx(ctx, func(txCtx context.Context) error {
		if err := e.checkOverlap(txCtx, rec, nil); err != nil {
			return err
		}
		e.refreshStatus(rec)
		if err := e.store.Insert(txCtx, rec); err != nil {
			return e.storeErr("insert", err)
		}
		return nil
	})
}

// Replace overwrites every mutable field of an existing record. Overlap
// detection excludes the record's own id.
func (e *Engine[T]) Replace(ctx context.Context, id uuid.UUID, rec *T) error {
	if err := e.validate(rec); err != nil {
		return err
	}
	return e.store.InTx(ctx, func(txCtx context.Context) error {
		existing, err := e.store.FindByID(txCtx, id)
		if err != nil {
			return e.storeErr("find", err)
		}
		if e.desc.CopyCreation != nil {
			e.desc.CopyCreation(rec, existing)
		}
		if err := e.checkOverlap(txCtx, rec, &id); err != nil {
			return err
		}
		e.refreshStatus(rec)
		if err := e.store.Update(txCtx, rec); err != nil {
			return e.storeErr("update", err)
		}
		return nil
	})
}

// Patch applies an allow-listed partial update. Supplying no recognized field
// is a ValidationError; the stored record is left untouched on any failure.
func (e *Engine[T]) Patch(ctx context.Context, id uuid.UUID, p Patch[T]) (*T, error) {
	rec, err := e.store.FindByID(ctx, id)
	if err != nil {
		return nil, e.storeErr("find", err)
	}
	updated := *rec
	if !p.Apply(&updated) {
		return nil, NewValidationError("", "no recognized fields to update")
	}
	if err := e.validateInterval(&updated); err != nil {
		return nil, err
	}
	e.refreshStatus(&updated)
	if err := e.store.Update(ctx, &updated); err != nil {
		return nil, e.storeErr("update", err)
	}
	return &updated, nil
}

// Expire retires a record by setting its expiration date to today, preserving
// it for history. Expiring a record that already ended on or before today is
// a no-op and succeeds.
func (e *Engine[T]) Expire(ctx context.Context, id uuid.UUID) (*T, error) {
	rec, err := e.store.FindByID(ctx, id)
	if err != nil {
		return nil, e.storeErr("find", err)
	}
	today := e.now()
	if end := e.desc.Interval(rec).End; end != nil && !dateBefore(today, *end) {
		return rec, nil
	}
	updated := *rec
	e.desc.SetExpiration(&updated, &today)
	if e.desc.SetStatus != nil {
		e.desc.SetStatus(&updated, StatusExpired)
	}
	if err := e.store.Update(ctx, &updated); err != nil {
		return nil, e.storeErr("update", err)
	}
	return &updated, nil
}

// Delete hard-removes a record. Irreversible; ids are never reused.
func (e *Engine[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := e.store.Delete(ctx, id); err != nil {
		return e.storeErr("delete", err)
	}
	return nil
}

// StatusOf derives the record's status as of a date.
func (e *Engine[T]) StatusOf(rec *T, asOf time.Time) string {
	return StatusOn(e.desc.Interval(rec), asOf)
}

func (e *Engine[T]) validate(rec *T) error {
	if e.desc.Validate != nil {
		if err := e.desc.Validate(rec); err != nil {
			return err
		}
	}
	return e.validateInterval(rec)
}

func (e *Engine[T]) validateInterval(rec *T) error {
	iv := e.desc.Interval(rec)
	if iv.Start.IsZero() {
		return NewValidationError("effective_date", "required")
	}
	if iv.End != nil && dateBefore(*iv.End, iv.Start) {
		return NewValidationError("expiration_date", "must not precede effective_date")
	}
	return nil
}

// checkOverlap decides whether any stored record sharing rec's natural key has
// an overlapping validity interval. Strict kinds fail with ConflictError;
// advisory kinds log the overlap and proceed.
func (e *Engine[T]) checkOverlap(ctx context.Context, rec *T, excludeID *uuid.UUID) error {
	key := e.desc.NaturalKey(rec)
	iv := e.desc.Interval(rec)

	existing, err := e.store.Scan(ctx, func(other *T) bool {
		if excludeID != nil && e.desc.ID(other) == *excludeID {
			return false
		}
		return e.desc.NaturalKey(other) == key
	})
	if err != nil {
		return e.storeErr("scan", err)
	}

	for i := range existing {
		if iv.Overlaps(e.desc.Interval(&existing[i])) {
			if e.desc.StrictOverlap {
				return &ConflictError{
					Kind:       e.desc.Kind,
					NaturalKey: key,
					Effective:  iv.Start,
					Expiration: iv.End,
				}
			}
			log.Printf("WARNING: %s configuration for %q overlaps an existing validity interval", e.desc.Kind, key)
			return nil
		}
	}
	return nil
}

func (e *Engine[T]) refreshStatus(rec *T) {
	if e.desc.SetStatus != nil {
		e.desc.SetStatus(rec, StatusOn(e.desc.Interval(rec), e.now()))
	}
}

func (e *Engine[T]) storeErr(op string, err error) error {
	if IsNotFound(err) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
