package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit entity labels, combined with an operation prefix into the Action
// column (e.g. CREATE_RPT_TAX_CONFIG).
const (
	EntityBusinessTaxConfig   = "BUSINESS_TAX_CONFIG"
	EntityRegulatoryFeeConfig = "REGULATORY_FEE_CONFIG"
	EntityLandConfig          = "LAND_CONFIG"
	EntityPropertyConfig      = "PROPERTY_CONFIG"
	EntityRPTTaxConfig        = "RPT_TAX_CONFIG"
	EntityMarketMap           = "MARKET_MAP"
)

// Audit operation prefixes
const (
	AuditCreate = "CREATE"
	AuditUpdate = "UPDATE"
	AuditPatch  = "PATCH"
	AuditExpire = "EXPIRE"
	AuditDelete = "DELETE"
	AuditSave   = "SAVE"
)

// AuditLog tracks Who, What, and When for every configuration change
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Actor      string    `gorm:"type:varchar(100)" json:"actor"` // Empty when the caller is unauthenticated glue
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string    `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string    `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Human readable name
	Details    string    `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the change
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
