package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MarketSection is a named area of the public market (e.g. Dry Goods, Fish).
type MarketSection struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// StallClass carries the per-class monthly rental price (Class A, B, C).
type StallClass struct {
	ID    uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string          `gorm:"type:varchar(5);not null;uniqueIndex" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
}

// MarketMap is the metadata of one market floor layout. The image itself is
// uploaded elsewhere; only the stored filename travels through this API.
type MarketMap struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	ImageFile  string    `gorm:"type:varchar(255)" json:"image_file"`
	StallCount int       `gorm:"not null;default:0" json:"stall_count"`
	IsFinished bool      `gorm:"not null;default:false" json:"is_finished"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Stalls []Stall `gorm:"foreignKey:MapID;constraint:OnDelete:CASCADE" json:"stalls,omitempty"`
}

// Stall is one placed stall on a market map.
type Stall struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MapID uuid.UUID `gorm:"type:uuid;not null;index" json:"map_id"`
	Name  string    `gorm:"type:varchar(50);not null" json:"name"`

	// Position on the map image, in percent of width/height
	PosX float64 `gorm:"not null" json:"pos_x"`
	PosY float64 `gorm:"not null" json:"pos_y"`

	ClassID   *uuid.UUID      `gorm:"type:uuid;index" json:"class_id"`
	Class     *StallClass     `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	SectionID *uuid.UUID      `gorm:"type:uuid;index" json:"section_id"`
	Section   *MarketSection  `gorm:"foreignKey:SectionID" json:"section,omitempty"`
}
