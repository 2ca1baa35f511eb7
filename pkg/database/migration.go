package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/jobport-bd/applicant-service/internal/model"
	"github.com/jobport-bd/applicant-service/pkg/logger"
)

// Migrate runs schema migrations for every model and the supporting indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Profile{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logger.GetLogger().Info("Database migrations completed")
	return nil
}
