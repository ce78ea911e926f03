package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RPTTaxConfig is a real-property tax rate with temporal validity. Overlapping
// intervals for the same tax name are rejected outright, so at most one rate
// answers "what applies on date D".
type RPTTaxConfig struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TaxName    string          `gorm:"type:varchar(100);not null;index" json:"tax_name"`
	TaxPercent decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"tax_percent"` // e.g. 0.01 = 1%

	EffectiveDate  time.Time  `gorm:"type:date;not null;index" json:"effective_date"`
	ExpirationDate *time.Time `gorm:"type:date;index" json:"expiration_date"` // Nullable = currently active

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
