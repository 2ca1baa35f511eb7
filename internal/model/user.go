package model

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered account. Email and phone uniqueness is enforced at
// the storage layer; the service-level duplicate check only exists to
// produce a friendlier error.
type User struct {
	gorm.Model
	FirstName           string     `gorm:"column:first_name;not null"`
	LastName            string     `gorm:"column:last_name;not null"`
	Email               string     `gorm:"column:email;uniqueIndex;not null"`
	Phone               *string    `gorm:"column:phone"`
	Password            string     `gorm:"column:password;not null"`
	Role                string     `gorm:"column:role;default:USER;not null"`
	Avatar              *string    `gorm:"column:avatar"`
	Otp                 *int       `gorm:"column:otp"`
	LastLogin           time.Time  `gorm:"column:last_login"`
	RefreshTokenHash    string     `gorm:"column:refresh_token_hash;default:null;index:idx_users_refresh_token_hash,where:refresh_token_hash IS NOT NULL"`
	RefreshTokenExpires *time.Time `gorm:"column:refresh_token_expires_at;default:null"`
}
