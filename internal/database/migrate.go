package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/pageza/fitsync-pro/backend/internal/models"
)

// Models lists every table owned by the service
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.FitnessProfile{},
		&models.ProfileChange{},
		&models.GeneratedPlan{},
		&models.ChatMessage{},
	}
}

// RunMigrations creates or updates the schema for all models
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running GORM auto-migration (%s)", db.Dialector.Name())
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// DropAll removes every table created by RunMigrations, dependents first
func DropAll(db *gorm.DB) error {
	all := Models()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	log.Printf("Dropped %d tables", len(all))
	return nil
}
