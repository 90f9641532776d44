package db

import (
	"fmt"
	"log"

	"tenantcfg/internal/model"

	"gorm.io/gorm"
)

// Migrate runs database migrations for all models
func Migrate(db *gorm.DB) error {
	log.Println("Starting database migration...")

	models := []interface{}{
		&model.User{},
		&model.Tenant{},
		&model.TenantDomain{},
		&model.Application{},
		&model.Page{},
		&model.Control{},
		&model.Theme{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("✓ Database migration completed successfully (%d tables)", len(models))
	return nil
}
