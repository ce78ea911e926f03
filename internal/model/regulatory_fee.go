package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegulatoryFeeConfig is a flat regulatory fee (permits, clearances) keyed by
// fee name and, optionally, the business type it applies to.
type RegulatoryFeeConfig struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FeeName      string          `gorm:"type:varchar(100);not null;index" json:"fee_name"`
	BusinessType *string         `gorm:"type:varchar(100);index" json:"business_type"` // Nullable = applies to all types
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`

	EffectiveDate  time.Time  `gorm:"type:date;not null;index" json:"effective_date"`
	ExpirationDate *time.Time `gorm:"type:date;index" json:"expiration_date"`

	Remarks   string    `gorm:"type:text" json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
