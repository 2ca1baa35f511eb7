package repository

import (
	"context"
	"time"

	"github.com/jobport-bd/applicant-service/internal/model"
	"github.com/jobport-bd/applicant-service/pkg/logger"
	"github.com/jobport-bd/applicant-service/pkg/query"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// GetByEmail returns the full row, credential fields included. Callers own
// sanitization.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	start := time.Now()
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to create user",
			zap.String("email", user.Email),
			zap.Duration("duration", time.Since(start)),
			zap.Error(result.Error))
		return result.Error
	}

	logger.GetLogger().Info("User created",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// Updates applies the given column map to one account row.
func (r *userRepository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).Error
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, id uint, tokenHash string, expiresAt *time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"refresh_token_hash":       tokenHash,
		"refresh_token_expires_at": expiresAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByRefreshToken scans accounts holding a refresh-session token and
// compares the presented token against each stored bcrypt hash.
func (r *userRepository) FindByRefreshToken(ctx context.Context, refreshToken string) (*model.User, error) {
	var users []model.User
	result := r.db.WithContext(ctx).
		Where("refresh_token_hash IS NOT NULL AND refresh_token_hash != ''").
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range users {
		if err := bcrypt.CompareHashAndPassword([]byte(users[i].RefreshTokenHash), []byte(refreshToken)); err == nil {
			return &users[i], nil
		}
	}

	return nil, gorm.ErrRecordNotFound
}

// List returns one page of accounts plus the total matching count. The count
// ignores the page window.
func (r *userRepository) List(ctx context.Context, conditions []query.Condition, orderBy string, page query.Pagination) ([]model.User, int64, error) {
	start := time.Now()

	base := query.Apply(r.db.WithContext(ctx).Model(&model.User{}), conditions)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	if err := base.Order(orderBy).Limit(page.Limit).Offset(page.Offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	logger.GetLogger().Debug("Users listed",
		zap.Int("conditions", len(conditions)),
		zap.Int64("total", total),
		zap.Int("returned", len(users)),
		zap.Duration("duration", time.Since(start)))

	return users, total, nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&model.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id IN ?", ids).Count(&count)
	return count, result.Error
}

func (r *userRepository) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&model.User{})
	if result.Error != nil {
		return 0, result.Error
	}

	logger.GetLogger().Info("Users deleted",
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", result.RowsAffected))
	return result.RowsAffected, nil
}
