package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyConfig is a building/improvement assessment entry: unit cost and
// depreciation for a classification and material type, with the assessment
// level applied to the market-value band [min_value, max_value].
type PropertyConfig struct {
	ID               uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Classification   string          `gorm:"type:varchar(100);not null;index" json:"classification"`
	MaterialType     string          `gorm:"type:varchar(100);not null;index" json:"material_type"`
	UnitCost         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_cost"` // Per square meter
	DepreciationRate decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"depreciation_rate"`
	MinValue         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"min_value"`
	MaxValue         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"max_value"`
	LevelPercent     decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"level_percent"`

	EffectiveDate  time.Time  `gorm:"type:date;not null;index" json:"effective_date"`
	ExpirationDate *time.Time `gorm:"type:date;index" json:"expiration_date"`

	// Denormalized cache of the date-derived status, refreshed on writes.
	Status string `gorm:"type:varchar(10);not null;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
