package registry

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateStore() *MemStore[rateRec] {
	return NewMemStore[rateRec]("rate",
		func(r *rateRec) uuid.UUID { return r.ID },
		func(r *rateRec, id uuid.UUID) { r.ID = id },
	)
}

func TestMemStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := newRateStore()

	rec := rateRec{Key: "basic", Rate: 1, Start: date(2024, 1, 1)}
	require.NoError(t, s.Insert(ctx, &rec))
	require.NotEqual(t, uuid.Nil, rec.ID)

	got, err := s.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "basic", got.Key)

	// FindByID hands back a copy; mutating it must not leak into the store.
	got.Rate = 99
	again, err := s.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Rate)

	rec.Rate = 7
	require.NoError(t, s.Update(ctx, &rec))
	got, err = s.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Rate)

	require.NoError(t, s.Delete(ctx, rec.ID))
	_, err = s.FindByID(ctx, rec.ID)
	assert.True(t, IsNotFound(err))
}

func TestMemStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := newRateStore()

	_, err := s.FindByID(ctx, uuid.New())
	assert.True(t, IsNotFound(err))

	assert.True(t, IsNotFound(s.Delete(ctx, uuid.New())))

	missing := rateRec{ID: uuid.New(), Key: "basic"}
	assert.True(t, IsNotFound(s.Update(ctx, &missing)))
}

func TestMemStoreScan(t *testing.T) {
	ctx := context.Background()
	s := newRateStore()

	for _, key := range []string{"a", "a", "b"} {
		rec := rateRec{Key: key, Start: date(2024, 1, 1)}
		require.NoError(t, s.Insert(ctx, &rec))
	}

	matched, err := s.Scan(ctx, func(r *rateRec) bool { return r.Key == "a" })
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	all, err := s.Scan(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemStoreInTxReentrant(t *testing.T) {
	// Store calls made with the transaction context must not re-acquire the
	// mutex InTx already holds.
	ctx := context.Background()
	s := newRateStore()

	err := s.InTx(ctx, func(txCtx context.Context) error {
		rec := rateRec{Key: "basic", Start: date(2024, 1, 1)}
		if err := s.Insert(txCtx, &rec); err != nil {
			return err
		}
		_, err := s.FindByID(txCtx, rec.ID)
		return err
	})
	require.NoError(t, err)

	all, err := s.Scan(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
