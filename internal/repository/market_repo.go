package repository

import (
	"context"
	"errors"

	"revenue/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMapNotFound = errors.New("market map not found")

// MarketRepository persists market layouts: section/class catalogues plus map
// metadata with stall placements.
type MarketRepository interface {
	ListSections(ctx context.Context) ([]model.MarketSection, error)
	ListStallClasses(ctx context.Context) ([]model.StallClass, error)
	FindMap(ctx context.Context, id uuid.UUID) (*model.MarketMap, error)
	SaveMap(ctx context.Context, m *model.MarketMap) error
	ReplaceStalls(ctx context.Context, mapID uuid.UUID, stalls []model.Stall) error
}

type marketRepository struct {
	db *gorm.DB
}

func NewMarketRepository(db *gorm.DB) MarketRepository {
	return &marketRepository{db: db}
}

func (r *marketRepository) ListSections(ctx context.Context) ([]model.MarketSection, error) {
	var sections []model.MarketSection
	if err := GetDB(ctx, r.db).Order("name").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *marketRepository) ListStallClasses(ctx context.Context) ([]model.StallClass, error) {
	var classes []model.StallClass
	if err := GetDB(ctx, r.db).Order("name").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *marketRepository) FindMap(ctx context.Context, id uuid.UUID) (*model.MarketMap, error) {
	var m model.MarketMap
	err := GetDB(ctx, r.db).
		Preload("Stalls").
		Preload("Stalls.Class").
		Preload("Stalls.Section").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMapNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *marketRepository) SaveMap(ctx context.Context, m *model.MarketMap) error {
	return GetDB(ctx, r.db).Save(m).Error
}

// ReplaceStalls swaps out a map's placements wholesale. Callers wrap this with
// SaveMap in one transaction via TransactionManager.
func (r *marketRepository) ReplaceStalls(ctx context.Context, mapID uuid.UUID, stalls []model.Stall) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("map_id = ?", mapID).Delete(&model.Stall{}).Error; err != nil {
		return err
	}
	if len(stalls) == 0 {
		return nil
	}
	return db.Create(&stalls).Error
}
