package database

import (
	"log"

	"revenue/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.BusinessTaxConfig{},
		&model.RegulatoryFeeConfig{},
		&model.LandConfig{},
		&model.PropertyConfig{},
		&model.RPTTaxConfig{},
		&model.MarketSection{},
		&model.StallClass{},
		&model.MarketMap{},
		&model.Stall{},
		&model.AuditLog{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}
