package service

import (
	"context"
	"testing"

	"revenue/internal/model"
	"revenue/internal/registry"
	"revenue/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMarketRepo keeps layouts in memory, hydrating class and section
// references the way the database preloads do.
type fakeMarketRepo struct {
	sections []model.MarketSection
	classes  []model.StallClass
	maps     map[uuid.UUID]model.MarketMap
	stalls   map[uuid.UUID][]model.Stall
}

func newFakeMarketRepo() *fakeMarketRepo {
	return &fakeMarketRepo{
		maps:   make(map[uuid.UUID]model.MarketMap),
		stalls: make(map[uuid.UUID][]model.Stall),
	}
}

func (r *fakeMarketRepo) ListSections(ctx context.Context) ([]model.MarketSection, error) {
	return r.sections, nil
}

func (r *fakeMarketRepo) ListStallClasses(ctx context.Context) ([]model.StallClass, error) {
	return r.classes, nil
}

func (r *fakeMarketRepo) FindMap(ctx context.Context, id uuid.UUID) (*model.MarketMap, error) {
	m, ok := r.maps[id]
	if !ok {
		return nil, repository.ErrMapNotFound
	}
	stalls := make([]model.Stall, len(r.stalls[id]))
	copy(stalls, r.stalls[id])
	for i := range stalls {
		if stalls[i].ClassID != nil {
			for j := range r.classes {
				if r.classes[j].ID == *stalls[i].ClassID {
					stalls[i].Class = &r.classes[j]
				}
			}
		}
		if stalls[i].SectionID != nil {
			for j := range r.sections {
				if r.sections[j].ID == *stalls[i].SectionID {
					stalls[i].Section = &r.sections[j]
				}
			}
		}
	}
	m.Stalls = stalls
	return &m, nil
}

func (r *fakeMarketRepo) SaveMap(ctx context.Context, m *model.MarketMap) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.maps[m.ID] = *m
	return nil
}

func (r *fakeMarketRepo) ReplaceStalls(ctx context.Context, mapID uuid.UUID, stalls []model.Stall) error {
	for i := range stalls {
		if stalls[i].ID == uuid.Nil {
			stalls[i].ID = uuid.New()
		}
	}
	r.stalls[mapID] = stalls
	return nil
}

type passthroughTxMgr struct{}

func (passthroughTxMgr) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func newMarketFixture() (*fakeMarketRepo, MarketService) {
	repo := newFakeMarketRepo()
	repo.sections = []model.MarketSection{
		{ID: uuid.New(), Name: "Dry Goods"},
		{ID: uuid.New(), Name: "Fish"},
	}
	repo.classes = []model.StallClass{
		{ID: uuid.New(), Name: "A", Price: decimal.RequireFromString("1500")},
		{ID: uuid.New(), Name: "B", Price: decimal.RequireFromString("1000")},
	}
	return repo, NewMarketService(repo, passthroughTxMgr{}, nil)
}

func TestGetStallClasses(t *testing.T) {
	_, svc := newMarketFixture()

	classes, err := svc.GetStallClasses(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "A", classes[0].Name)
	assert.Equal(t, "1500", classes[0].Price)
}

func TestSaveMapLayout(t *testing.T) {
	ctx := context.Background()
	repo, svc := newMarketFixture()

	classA := repo.classes[0]
	section := repo.sections[0]

	res, err := svc.SaveMapLayout(ctx, SaveMapLayoutRequest{
		Name:      "Main Market",
		ImageFile: "main.png",
		Stalls: []StallPlacement{
			{Name: "S-01", PosX: 10, PosY: 20, ClassID: classA.ID.String(), SectionID: section.ID.String()},
			{Name: "S-02", PosX: 30, PosY: 20, ClassID: classA.ID.String(), Price: "2500"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 2, res.StallCount)
	require.Len(t, res.Stalls, 2)

	assert.Equal(t, "1500", res.Stalls[0].Price, "class default price applies")
	assert.Equal(t, "A", res.Stalls[0].Class)
	assert.Equal(t, "Dry Goods", res.Stalls[0].Section)
	assert.Equal(t, "2500", res.Stalls[1].Price, "explicit price wins over the class default")
}

func TestSaveMapLayoutReplacesStalls(t *testing.T) {
	ctx := context.Background()
	_, svc := newMarketFixture()

	first, err := svc.SaveMapLayout(ctx, SaveMapLayoutRequest{
		Name: "Main Market",
		Stalls: []StallPlacement{
			{Name: "S-01", Price: "100"},
			{Name: "S-02", Price: "100"},
			{Name: "S-03", Price: "100"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 3, first.StallCount)

	second, err := svc.SaveMapLayout(ctx, SaveMapLayoutRequest{
		MapID: first.ID,
		Name:  "Main Market",
		Stalls: []StallPlacement{
			{Name: "S-01", Price: "100"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, second.StallCount)
	assert.Len(t, second.Stalls, 1)
}

func TestSaveMapLayoutValidation(t *testing.T) {
	ctx := context.Background()
	_, svc := newMarketFixture()

	t.Run("unknown stall class", func(t *testing.T) {
		_, err := svc.SaveMapLayout(ctx, SaveMapLayoutRequest{
			Name:   "Main Market",
			Stalls: []StallPlacement{{Name: "S-01", ClassID: uuid.NewString()}},
		})
		assert.True(t, registry.IsValidation(err))
	})

	t.Run("malformed class id", func(t *testing.T) {
		_, err := svc.SaveMapLayout(ctx, SaveMapLayoutRequest{
			Name:   "Main Market",
			Stalls: []StallPlacement{{Name: "S-01", ClassID: "not-a-uuid"}},
		})
		assert.True(t, registry.IsValidation(err))
	})

	t.Run("bad price", func(t *testing.T) {
		_, err := svc.SaveMapLayout(ctx, SaveMapLayoutRequest{
			Name:   "Main Market",
			Stalls: []StallPlacement{{Name: "S-01", Price: "free"}},
		})
		assert.True(t, registry.IsValidation(err))
	})
}

func TestGetMapLayoutNotFound(t *testing.T) {
	_, svc := newMarketFixture()

	_, err := svc.GetMapLayout(context.Background(), uuid.NewString())
	assert.True(t, registry.IsNotFound(err))

	_, err = svc.GetMapLayout(context.Background(), "not-a-uuid")
	assert.True(t, registry.IsValidation(err))
}
