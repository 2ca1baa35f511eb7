package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jobport-bd/applicant-service/internal/dto"
	apperrors "github.com/jobport-bd/applicant-service/internal/errors"
	"github.com/jobport-bd/applicant-service/internal/model"
	"github.com/jobport-bd/applicant-service/internal/repository/mocks"
	"github.com/jobport-bd/applicant-service/pkg/query"
	"github.com/jobport-bd/applicant-service/pkg/validation"
)

func newProfileService(profileRepo *mocks.MockProfileRepository, userRepo *mocks.MockUserRepository) *ProfileService {
	return NewProfileService(profileRepo, userRepo, validation.New())
}

func existingOwner() *mocks.MockUserRepository {
	return &mocks.MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*model.User, error) {
			return &model.User{Model: gorm.Model{ID: id}}, nil
		},
	}
}

func resultPtr(f float64) *float64 { return &f }

func validCreateRequest() *dto.CreateProfileRequest {
	education := dto.EducationPayload{
		Exam:       "SSC",
		Roll:       "123456",
		Group:      "Science",
		Board:      "Dhaka",
		ResultType: "GPA",
		Result:     resultPtr(4.83),
		Year:       "2014",
	}
	return &dto.CreateProfileRequest{
		UserID:        "7",
		Name:          "Karim Mia",
		NameBn:        "করিম মিঞা",
		Father:        "Abdul Mia",
		FatherBn:      "আব্দুল মিঞা",
		Mother:        "Amena Begum",
		MotherBn:      "আমেনা বেগম",
		Dob:           "1998-04-12",
		Gender:        "male",
		Nid:           "1",
		NidNo:         "19984712345678901",
		Email:         "Karim@Example.com",
		Mobile:        "+8801712345678",
		ConfirmMobile: "01712345678",
		Nationality:   "Bangladeshi",
		Religion:      "Islam",
		MaritalStatus: "single",
		Quota:         "none",
		PresentAddress: dto.PresentAddressPayload{
			Careof:   "Abdul Mia",
			Village:  "Rampur",
			District: "Comilla",
			Upazila:  "Daudkandi",
			Post:     "Rampur Bazar",
			Postcode: "3516",
		},
		SSC: education,
		HSC: education,
	}
}

func storedProfile() *model.Profile {
	return &model.Profile{
		Model:         gorm.Model{ID: 3, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		UserID:        7,
		Name:          "Karim Mia",
		NameBn:        "করিম মিঞা",
		Father:        "Abdul Mia",
		FatherBn:      "আব্দুল মিঞা",
		Mother:        "Amena Begum",
		MotherBn:      "আমেনা বেগম",
		Dob:           time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:        "male",
		Nid:           "1",
		NidNo:         "19984712345678901",
		Email:         "karim@example.com",
		Mobile:        "01712345678",
		ConfirmMobile: "01712345678",
		Nationality:   "Bangladeshi",
		Religion:      "Islam",
		MaritalStatus: "single",
		Quota:         "none",
		PresentAddress: datatypes.NewJSONType(model.PresentAddress{
			Careof: "Abdul Mia", Village: "Rampur", District: "Comilla",
			Upazila: "Daudkandi", Post: "Rampur Bazar", Postcode: "3516",
		}),
		SSC: datatypes.NewJSONType(model.Education{
			Exam: "SSC", Roll: "123456", Group: "Science", Board: "Dhaka",
			ResultType: "GPA", Result: 4.83, Year: "2014",
		}),
		HSC: datatypes.NewJSONType(model.Education{
			Exam: "HSC", Roll: "654321", Group: "Science", Board: "Dhaka",
			ResultType: "GPA", Result: 4.5, Year: "2016",
		}),
	}
}

func TestProfileCreate_Success(t *testing.T) {
	var created *model.Profile
	profileRepo := &mocks.MockProfileRepository{
		CreateFunc: func(ctx context.Context, profile *model.Profile) error {
			profile.ID = 3
			created = profile
			return nil
		},
	}
	svc := newProfileService(profileRepo, existingOwner())

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, uint(3), resp.ID)
	assert.Equal(t, uint(7), resp.UserID)

	require.NotNil(t, created)
	// Canonical stored forms: lowercased email, local mobile form for both
	// numbers regardless of the input prefix.
	assert.Equal(t, "karim@example.com", created.Email)
	assert.Equal(t, "01712345678", created.Mobile)
	assert.Equal(t, "01712345678", created.ConfirmMobile)
	assert.Equal(t, time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC), created.Dob)
	assert.Equal(t, "Rampur", created.PresentAddress.Data().Village)
	assert.InDelta(t, 4.83, created.SSC.Data().Result, 0.001)
}

func TestProfileCreate_UnknownOwner(t *testing.T) {
	svc := newProfileService(&mocks.MockProfileRepository{}, &mocks.MockUserRepository{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestProfileCreate_MalformedOwnerID(t *testing.T) {
	svc := newProfileService(&mocks.MockProfileRepository{}, existingOwner())

	req := validCreateRequest()
	req.UserID = "not-a-number"

	resp, err := svc.Create(context.Background(), req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserID)
}

func TestProfileCreate_NidConditional(t *testing.T) {
	svc := newProfileService(&mocks.MockProfileRepository{}, existingOwner())

	req := validCreateRequest()
	req.Nid = "1"
	req.NidNo = ""

	resp, err := svc.Create(context.Background(), req)
	assert.Nil(t, resp)

	domainErr := apperrors.GetDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Message, "NID number is required when NID is set")

	// Without a national ID the number is optional.
	req.Nid = "0"
	created := false
	profileRepo := &mocks.MockProfileRepository{
		CreateFunc: func(ctx context.Context, profile *model.Profile) error {
			created = true
			return nil
		},
	}
	svc = newProfileService(profileRepo, existingOwner())

	_, err = svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestProfileCreate_MobileMismatch(t *testing.T) {
	svc := newProfileService(&mocks.MockProfileRepository{}, existingOwner())

	req := validCreateRequest()
	req.ConfirmMobile = "01812345678"

	resp, err := svc.Create(context.Background(), req)
	assert.Nil(t, resp)

	domainErr := apperrors.GetDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestProfileCreate_InvalidDob(t *testing.T) {
	svc := newProfileService(&mocks.MockProfileRepository{}, existingOwner())

	req := validCreateRequest()
	req.Dob = "12/04/1998"

	resp, err := svc.Create(context.Background(), req)
	assert.Nil(t, resp)

	domainErr := apperrors.GetDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestProfileGetByID(t *testing.T) {
	profileRepo := &mocks.MockProfileRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*model.Profile, error) {
			if id == 3 {
				return storedProfile(), nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newProfileService(profileRepo, &mocks.MockUserRepository{})

	resp, err := svc.GetByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Karim Mia", resp.Name)
	assert.Equal(t, "Rampur", resp.PresentAddress.Village)

	_, err = svc.GetByID(context.Background(), "44")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)

	_, err = svc.GetByID(context.Background(), "oid-123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidProfileID)
}

func TestProfileGetAll_UserIDFilter(t *testing.T) {
	var gotConditions []query.Condition
	profileRepo := &mocks.MockProfileRepository{
		ListFunc: func(ctx context.Context, conditions []query.Condition, orderBy string, page query.Pagination) ([]model.Profile, int64, error) {
			gotConditions = conditions
			return []model.Profile{*storedProfile()}, 1, nil
		},
	}
	svc := newProfileService(profileRepo, &mocks.MockUserRepository{})

	_, total, _, err := svc.GetAll(context.Background(),
		dto.ProfileFilter{UserID: "7", Name: "Karim"}, query.Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	require.Len(t, gotConditions, 2)
	assert.Equal(t, "user_id = ?", gotConditions[0].Expr)
	assert.Equal(t, uint(7), gotConditions[0].Arg)
	assert.Equal(t, "name ILIKE ?", gotConditions[1].Expr)

	// A malformed owner filter is dropped, not an error.
	gotConditions = nil
	_, _, _, err = svc.GetAll(context.Background(),
		dto.ProfileFilter{UserID: "zzz"}, query.Options{})
	require.NoError(t, err)
	assert.Empty(t, gotConditions)
}

func TestProfileUpdate_OwnerRejected(t *testing.T) {
	updatesCalled := false
	profileRepo := &mocks.MockProfileRepository{
		UpdatesFunc: func(ctx context.Context, id uint, fields map[string]interface{}) error {
			updatesCalled = true
			return nil
		},
	}
	svc := newProfileService(profileRepo, &mocks.MockUserRepository{})

	owner := "9"
	resp, err := svc.Update(context.Background(), "3", &dto.UpdateProfileRequest{UserID: &owner})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrProfileOwnerFixed)
	assert.False(t, updatesCalled)
}

func TestProfileUpdate_NidFlipRequiresNumber(t *testing.T) {
	profileRepo := &mocks.MockProfileRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*model.Profile, error) {
			profile := storedProfile()
			profile.Nid = "0"
			profile.NidNo = ""
			return profile, nil
		},
	}
	svc := newProfileService(profileRepo, &mocks.MockUserRepository{})

	nid := "1"
	resp, err := svc.Update(context.Background(), "3", &dto.UpdateProfileRequest{Nid: &nid})
	assert.Nil(t, resp)

	domainErr := apperrors.GetDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	// Flipping the flag together with a number is fine.
	nidNo := "19984712345678901"
	profileRepo.UpdatesFunc = func(ctx context.Context, id uint, fields map[string]interface{}) error {
		assert.Equal(t, "1", fields["nid"])
		assert.Equal(t, nidNo, fields["nid_no"])
		return nil
	}
	_, err = svc.Update(context.Background(), "3", &dto.UpdateProfileRequest{Nid: &nid, NidNo: &nidNo})
	require.NoError(t, err)
}

func TestProfileUpdate_PartialFields(t *testing.T) {
	var gotFields map[string]interface{}
	profileRepo := &mocks.MockProfileRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*model.Profile, error) {
			return storedProfile(), nil
		},
		UpdatesFunc: func(ctx context.Context, id uint, fields map[string]interface{}) error {
			gotFields = fields
			return nil
		},
	}
	svc := newProfileService(profileRepo, &mocks.MockUserRepository{})

	name := "Karim Uddin Mia"
	mobile := "+8801912345678"
	resp, err := svc.Update(context.Background(), "3", &dto.UpdateProfileRequest{
		Name:   &name,
		Mobile: &mobile,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.NotNil(t, gotFields)
	assert.Equal(t, "Karim Uddin Mia", gotFields["name"])
	assert.Equal(t, "01912345678", gotFields["mobile"])
	assert.NotContains(t, gotFields, "user_id")
	assert.NotContains(t, gotFields, "email")
}

func TestProfileDeleteMany(t *testing.T) {
	tests := []struct {
		name     string
		ids      []int64
		count    int64
		wantCode string
	}{
		{name: "empty batch", ids: nil, wantCode: "VALIDATION_FAILED"},
		{name: "malformed id", ids: []int64{0}, wantCode: "INVALID_PROFILE_ID"},
		{name: "missing id", ids: []int64{3, 4}, count: 1, wantCode: "PROFILE_NOT_FOUND"},
		{name: "all present", ids: []int64{3, 4}, count: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := &mocks.MockProfileRepository{
				CountByIDsFunc: func(ctx context.Context, ids []uint) (int64, error) {
					return tt.count, nil
				},
				DeleteManyFunc: func(ctx context.Context, ids []uint) (int64, error) {
					return int64(len(ids)), nil
				},
			}
			svc := newProfileService(profileRepo, &mocks.MockUserRepository{})

			deleted, err := svc.DeleteMany(context.Background(), &dto.DeleteManyRequest{IDs: tt.ids})
			if tt.wantCode != "" {
				domainErr := apperrors.GetDomainError(err)
				require.NotNil(t, domainErr)
				assert.Equal(t, tt.wantCode, domainErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(2), deleted)
		})
	}
}
