package repository

import (
	"context"
	"time"

	"github.com/jobport-bd/applicant-service/internal/model"
	"github.com/jobport-bd/applicant-service/pkg/logger"
	"github.com/jobport-bd/applicant-service/pkg/query"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id uint) (*model.Profile, error) {
	var profile model.Profile
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&profile)
	if result.Error != nil {
		return nil, result.Error
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	start := time.Now()
	result := r.db.WithContext(ctx).Create(profile)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to create profile",
			zap.Uint("user_id", profile.UserID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(result.Error))
		return result.Error
	}

	logger.GetLogger().Info("Profile created",
		zap.Uint("profile_id", profile.ID),
		zap.Uint("user_id", profile.UserID),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (r *profileRepository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&model.Profile{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *profileRepository) List(ctx context.Context, conditions []query.Condition, orderBy string, page query.Pagination) ([]model.Profile, int64, error) {
	base := query.Apply(r.db.WithContext(ctx).Model(&model.Profile{}), conditions)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []model.Profile
	if err := base.Order(orderBy).Limit(page.Limit).Offset(page.Offset).Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

func (r *profileRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&model.Profile{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *profileRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Profile{}).Where("id IN ?", ids).Count(&count)
	return count, result.Error
}

func (r *profileRepository) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&model.Profile{})
	if result.Error != nil {
		return 0, result.Error
	}

	logger.GetLogger().Info("Profiles deleted",
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", result.RowsAffected))
	return result.RowsAffected, nil
}
