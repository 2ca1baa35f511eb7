// Package mocks provides hand-rolled repository fakes for service tests.
// Each method delegates to an optional func field; unset methods return the
// zero value.
package mocks

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jobport-bd/applicant-service/internal/model"
	"github.com/jobport-bd/applicant-service/pkg/query"
)

type MockUserRepository struct {
	GetByIDFunc            func(ctx context.Context, id uint) (*model.User, error)
	GetByEmailFunc         func(ctx context.Context, email string) (*model.User, error)
	ExistsByEmailFunc      func(ctx context.Context, email string) (bool, error)
	CreateFunc             func(ctx context.Context, user *model.User) error
	UpdatesFunc            func(ctx context.Context, id uint, fields map[string]interface{}) error
	UpdateLastLoginFunc    func(ctx context.Context, id uint) error
	UpdateRefreshTokenFunc func(ctx context.Context, id uint, tokenHash string, expiresAt *time.Time) error
	FindByRefreshTokenFunc func(ctx context.Context, refreshToken string) (*model.User, error)
	ListFunc               func(ctx context.Context, conditions []query.Condition, orderBy string, page query.Pagination) ([]model.User, int64, error)
	DeleteFunc             func(ctx context.Context, id uint) error
	CountByIDsFunc         func(ctx context.Context, ids []uint) (int64, error)
	DeleteManyFunc         func(ctx context.Context, ids []uint) (int64, error)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	if m.UpdatesFunc != nil {
		return m.UpdatesFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uint) error {
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, id uint, tokenHash string, expiresAt *time.Time) error {
	if m.UpdateRefreshTokenFunc != nil {
		return m.UpdateRefreshTokenFunc(ctx, id, tokenHash, expiresAt)
	}
	return nil
}

func (m *MockUserRepository) FindByRefreshToken(ctx context.Context, refreshToken string) (*model.User, error) {
	if m.FindByRefreshTokenFunc != nil {
		return m.FindByRefreshTokenFunc(ctx, refreshToken)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) List(ctx context.Context, conditions []query.Condition, orderBy string, page query.Pagination) ([]model.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, conditions, orderBy, page)
	}
	return nil, 0, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if m.CountByIDsFunc != nil {
		return m.CountByIDsFunc(ctx, ids)
	}
	return 0, nil
}

func (m *MockUserRepository) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	if m.DeleteManyFunc != nil {
		return m.DeleteManyFunc(ctx, ids)
	}
	return 0, nil
}

type MockProfileRepository struct {
	GetByIDFunc    func(ctx context.Context, id uint) (*model.Profile, error)
	CreateFunc     func(ctx context.Context, profile *model.Profile) error
	UpdatesFunc    func(ctx context.Context, id uint, fields map[string]interface{}) error
	ListFunc       func(ctx context.Context, conditions []query.Condition, orderBy string, page query.Pagination) ([]model.Profile, int64, error)
	DeleteFunc     func(ctx context.Context, id uint) error
	CountByIDsFunc func(ctx context.Context, ids []uint) (int64, error)
	DeleteManyFunc func(ctx context.Context, ids []uint) (int64, error)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uint) (*model.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

func (m *MockProfileRepository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	if m.UpdatesFunc != nil {
		return m.UpdatesFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockProfileRepository) List(ctx context.Context, conditions []query.Condition, orderBy string, page query.Pagination) ([]model.Profile, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, conditions, orderBy, page)
	}
	return nil, 0, nil
}

func (m *MockProfileRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProfileRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if m.CountByIDsFunc != nil {
		return m.CountByIDsFunc(ctx, ids)
	}
	return 0, nil
}

func (m *MockProfileRepository) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	if m.DeleteManyFunc != nil {
		return m.DeleteManyFunc(ctx, ids)
	}
	return 0, nil
}
