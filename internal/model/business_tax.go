package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxBase enum constants
const (
	TaxBaseGrossSales    = "gross_sales"
	TaxBaseGrossReceipts = "gross_receipts"
)

// FirstYearBase enum constants
const (
	FirstYearBaseCapitalInvestment = "capital_investment"
	FirstYearBaseGrossSales        = "gross_sales"
)

// BusinessTaxConfig is one bracket of the graduated business tax table for a
// business type, valid over an effective/expiration interval.
type BusinessTaxConfig struct {
	ID            uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BusinessType  string           `gorm:"type:varchar(100);not null;index" json:"business_type"`
	TaxBase       string           `gorm:"type:varchar(30);not null;default:'gross_sales'" json:"tax_base"` // gross_sales, gross_receipts
	FirstYearBase string           `gorm:"type:varchar(30);default:'capital_investment'" json:"first_year_base"`
	MinRange      decimal.Decimal  `gorm:"type:decimal(18,2);not null" json:"min_range"` // Bracket lower bound
	MaxRange      *decimal.Decimal `gorm:"type:decimal(18,2)" json:"max_range"`          // Nullable = top bracket
	TaxRate       decimal.Decimal  `gorm:"type:decimal(10,4);not null" json:"tax_rate"`  // e.g. 0.02 = 2%

	EffectiveDate  time.Time  `gorm:"type:date;not null;index" json:"effective_date"`
	ExpirationDate *time.Time `gorm:"type:date;index" json:"expiration_date"` // Nullable = open-ended

	Remarks   string    `gorm:"type:text" json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
