package database

import (
	"errors"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/model"
	"github.com/jobport-bd/applicant-service/pkg/logger"
)

// SeedAdmin creates the initial admin account when none exists. The password
// comes from the environment; without one, seeding is skipped rather than
// inventing a default credential.
func SeedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.GetLogger().Info("Admin seed skipped, ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var existing model.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		FirstName: "System",
		LastName:  "Admin",
		Email:     email,
		Password:  string(hash),
		Role:      constants.RoleAdmin,
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.GetLogger().Info("Admin account seeded", zap.String("email", email))
	return nil
}
