package repository

import (
	"context"
	"time"

	"github.com/jobport-bd/applicant-service/internal/model"
	"github.com/jobport-bd/applicant-service/pkg/query"
)

// UserRepository is the persistence boundary for accounts. GetByEmail and
// FindByRefreshToken return the full row including credential fields; every
// other read is expected to be sanitized by the service layer before leaving
// the process.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *model.User) error
	Updates(ctx context.Context, id uint, fields map[string]interface{}) error
	UpdateLastLogin(ctx context.Context, id uint) error
	UpdateRefreshToken(ctx context.Context, id uint, tokenHash string, expiresAt *time.Time) error
	FindByRefreshToken(ctx context.Context, refreshToken string) (*model.User, error)
	List(ctx context.Context, conditions []query.Condition, orderBy string, page query.Pagination) ([]model.User, int64, error)
	Delete(ctx context.Context, id uint) error
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
	DeleteMany(ctx context.Context, ids []uint) (int64, error)
}

// ProfileRepository is the persistence boundary for applicant profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Profile, error)
	Create(ctx context.Context, profile *model.Profile) error
	Updates(ctx context.Context, id uint, fields map[string]interface{}) error
	List(ctx context.Context, conditions []query.Condition, orderBy string, page query.Pagination) ([]model.Profile, int64, error)
	Delete(ctx context.Context, id uint) error
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
	DeleteMany(ctx context.Context, ids []uint) (int64, error)
}
