package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jobport-bd/applicant-service/internal/dto"
	apperrors "github.com/jobport-bd/applicant-service/internal/errors"
	"github.com/jobport-bd/applicant-service/internal/model"
	"github.com/jobport-bd/applicant-service/internal/repository/mocks"
	"github.com/jobport-bd/applicant-service/pkg/query"
	"github.com/jobport-bd/applicant-service/pkg/validation"
)

func newUserService(repo *mocks.MockUserRepository) *UserService {
	return NewUserService(repo, validation.New())
}

func strPtr(s string) *string { return &s }

func TestUserGetByID_InvalidID(t *testing.T) {
	svc := newUserService(&mocks.MockUserRepository{})

	for _, id := range []string{"abc", "", "-3", "0", "12x"} {
		resp, err := svc.GetByID(context.Background(), id)
		assert.Nil(t, resp, "id %q", id)
		assert.ErrorIs(t, err, apperrors.ErrInvalidUserID, "id %q", id)
	}
}

func TestUserGetByID_NotFound(t *testing.T) {
	svc := newUserService(&mocks.MockUserRepository{})

	resp, err := svc.GetByID(context.Background(), "99")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserGetAll_FiltersAndPagination(t *testing.T) {
	var gotConditions []query.Condition
	var gotOrder string
	var gotPage query.Pagination
	repo := &mocks.MockUserRepository{
		ListFunc: func(ctx context.Context, conditions []query.Condition, orderBy string, page query.Pagination) ([]model.User, int64, error) {
			gotConditions = conditions
			gotOrder = orderBy
			gotPage = page
			return []model.User{
				{Model: gorm.Model{ID: 1}, Email: "a@example.com"},
				{Model: gorm.Model{ID: 2}, Email: "ab@example.com"},
			}, 12, nil
		},
	}
	svc := newUserService(repo)

	users, total, page, err := svc.GetAll(context.Background(),
		dto.UserFilter{Email: "a", FirstName: "Rah"},
		query.Options{Page: 2, Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(12), total)
	assert.Len(t, users, 2)
	assert.Equal(t, query.Pagination{Page: 2, Limit: 5, Offset: 5}, page)
	assert.Equal(t, gotPage, page)
	assert.Equal(t, "created_at DESC", gotOrder)

	// Whitelist order, substring matching.
	require.Len(t, gotConditions, 2)
	assert.Equal(t, "first_name ILIKE ?", gotConditions[0].Expr)
	assert.Equal(t, "%Rah%", gotConditions[0].Arg)
	assert.Equal(t, "email ILIKE ?", gotConditions[1].Expr)
}

func TestUserUpdate_EmailRejected(t *testing.T) {
	updatesCalled := false
	repo := &mocks.MockUserRepository{
		UpdatesFunc: func(ctx context.Context, id uint, fields map[string]interface{}) error {
			updatesCalled = true
			return nil
		},
	}
	svc := newUserService(repo)

	resp, err := svc.Update(context.Background(), "7", &dto.UpdateUserRequest{
		Email:     strPtr("new@example.com"),
		FirstName: strPtr("Rahim"),
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrEmailImmutable)
	assert.False(t, updatesCalled, "nothing may be written when the email is rejected")
}

func TestUserUpdate_WhitelistAndPhoneNormalization(t *testing.T) {
	var gotFields map[string]interface{}
	repo := &mocks.MockUserRepository{
		UpdatesFunc: func(ctx context.Context, id uint, fields map[string]interface{}) error {
			gotFields = fields
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*model.User, error) {
			phone := "01712345678"
			return &model.User{Model: gorm.Model{ID: id}, FirstName: "Rahim", Phone: &phone}, nil
		},
	}
	svc := newUserService(repo)

	resp, err := svc.Update(context.Background(), "7", &dto.UpdateUserRequest{
		FirstName: strPtr("Rahim"),
		Phone:     strPtr("8801712345678"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rahim", resp.FirstName)

	require.NotNil(t, gotFields)
	assert.Equal(t, "Rahim", gotFields["first_name"])
	assert.Equal(t, "01712345678", gotFields["phone"])
	assert.NotContains(t, gotFields, "email")
	assert.NotContains(t, gotFields, "password")
}

func TestUserUpdate_InvalidRole(t *testing.T) {
	svc := newUserService(&mocks.MockUserRepository{})

	resp, err := svc.Update(context.Background(), "7", &dto.UpdateUserRequest{
		Role: strPtr("SUPERUSER"),
	})
	assert.Nil(t, resp)

	domainErr := apperrors.GetDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestUserUpdate_NoFieldsReturnsCurrent(t *testing.T) {
	repo := &mocks.MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*model.User, error) {
			return &model.User{Model: gorm.Model{ID: id}, Email: "karim@example.com"}, nil
		},
	}
	svc := newUserService(repo)

	resp, err := svc.Update(context.Background(), "7", &dto.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, "karim@example.com", resp.Email)
}

func TestUserDelete_NotFound(t *testing.T) {
	repo := &mocks.MockUserRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := newUserService(repo)

	err := svc.Delete(context.Background(), "404")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserDeleteMany(t *testing.T) {
	tests := []struct {
		name     string
		ids      []int64
		count    int64
		wantCode string
	}{
		{name: "empty batch", ids: nil, wantCode: "VALIDATION_FAILED"},
		{name: "malformed id", ids: []int64{1, -2}, wantCode: "INVALID_USER_ID"},
		{name: "missing id", ids: []int64{1, 2, 3}, count: 2, wantCode: "USER_NOT_FOUND"},
		{name: "all present", ids: []int64{1, 2}, count: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleteCalled := false
			repo := &mocks.MockUserRepository{
				CountByIDsFunc: func(ctx context.Context, ids []uint) (int64, error) {
					return tt.count, nil
				},
				DeleteManyFunc: func(ctx context.Context, ids []uint) (int64, error) {
					deleteCalled = true
					return int64(len(ids)), nil
				},
			}
			svc := newUserService(repo)

			deleted, err := svc.DeleteMany(context.Background(), &dto.DeleteManyRequest{IDs: tt.ids})
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.False(t, deleteCalled, "nothing may be deleted on a rejected batch")
				domainErr := apperrors.GetDomainError(err)
				require.NotNil(t, domainErr)
				assert.Equal(t, tt.wantCode, domainErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(2), deleted)
			assert.True(t, deleteCalled)
		})
	}
}
