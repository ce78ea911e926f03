package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LandConfig is a land assessment entry: unit market value and assessment
// level for a land classification within a vicinity.
type LandConfig struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Classification  string          `gorm:"type:varchar(100);not null;index" json:"classification"`
	Vicinity        string          `gorm:"type:varchar(100);not null;default:'General Area'" json:"vicinity"`
	MarketValue     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"market_value"`      // Per square meter
	AssessmentLevel decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"assessment_level"`  // e.g. 0.20 = 20%
	Description     string          `gorm:"type:text" json:"description"`

	EffectiveDate  time.Time  `gorm:"type:date;not null;index" json:"effective_date"`
	ExpirationDate *time.Time `gorm:"type:date;index" json:"expiration_date"`

	// Denormalized cache of the date-derived status, refreshed on writes.
	Status string `gorm:"type:varchar(10);not null;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
