package database

import (
	"gorm.io/gorm"
)

// createIndexes adds the indexes AutoMigrate does not express. The unique
// email index is the storage-level backstop for the signup duplicate check:
// two concurrent signups for the same address cannot both commit.
func createIndexes(db *gorm.DB) error {
	statements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_unique
			ON users (email) WHERE deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_phone_unique
			ON users (phone) WHERE phone IS NOT NULL AND deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_users_created_at ON users (created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_user_id ON profiles (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_created_at ON profiles (created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_mobile ON profiles (mobile)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
