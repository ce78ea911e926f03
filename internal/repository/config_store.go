package repository

import (
	"context"
	"database/sql"
	"errors"

	"revenue/internal/registry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConfigStore is the relational adapter of registry.Store: one table per
// configuration kind, mutations routed through the context-scoped transaction
// handle. InTx uses a serializable transaction so a concurrent
// check-then-insert against the same natural key cannot double-commit.
type ConfigStore[T any] struct {
	db   *gorm.DB
	kind string
}

func NewConfigStore[T any](db *gorm.DB, kind string) *ConfigStore[T] {
	return &ConfigStore[T]{db: db, kind: kind}
}

func (s *ConfigStore[T]) InTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey, tx))
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (s *ConfigStore[T]) Insert(ctx context.Context, rec *T) error {
	return GetDB(ctx, s.db).Create(rec).Error
}

func (s *ConfigStore[T]) Update(ctx context.Context, rec *T) error {
	return GetDB(ctx, s.db).Save(rec).Error
}

func (s *ConfigStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, s.db).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &registry.NotFoundError{Kind: s.kind, ID: id}
	}
	return nil
}

func (s *ConfigStore[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	if err := GetDB(ctx, s.db).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &registry.NotFoundError{Kind: s.kind, ID: id}
		}
		return nil, err
	}
	return &rec, nil
}

// Scan loads the kind's table and filters in process. Configuration tables
// stay small (tens of rows), so pushing the predicate down is not worth the
// per-kind SQL it would take.
func (s *ConfigStore[T]) Scan(ctx context.Context, pred func(*T) bool) ([]T, error) {
	var all []T
	if err := GetDB(ctx, s.db).Find(&all).Error; err != nil {
		return nil, err
	}
	if pred == nil {
		return all, nil
	}
	out := all[:0]
	for i := range all {
		if pred(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}
