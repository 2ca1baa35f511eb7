package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/dto"
	apperrors "github.com/jobport-bd/applicant-service/internal/errors"
	"github.com/jobport-bd/applicant-service/internal/model"
	"github.com/jobport-bd/applicant-service/internal/repository/mocks"
	"github.com/jobport-bd/applicant-service/pkg/validation"
)

func newAuthService(t *testing.T, userRepo *mocks.MockUserRepository) *AuthService {
	t.Helper()
	jwtSvc, err := NewJWTService("test-secret")
	require.NoError(t, err)
	return NewAuthService(userRepo, jwtSvc, validation.New())
}

func storedUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &model.User{
		Model:     gorm.Model{ID: 7, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		FirstName: "Karim",
		LastName:  "Mia",
		Email:     "karim@example.com",
		Password:  hash,
		Role:      constants.RoleUser,
	}
}

func TestSignup_Success(t *testing.T) {
	var created *model.User
	repo := &mocks.MockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
		CreateFunc: func(ctx context.Context, user *model.User) error {
			user.ID = 11
			created = user
			return nil
		},
	}
	svc := newAuthService(t, repo)

	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{
		FirstName: "Karim",
		LastName:  "Mia",
		Email:     "Karim@Example.COM",
		Password:  "Str0ng!pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "karim@example.com", resp.Email)
	assert.Equal(t, uint(11), resp.ID)
	assert.Equal(t, constants.RoleUser, resp.Role)

	require.NotNil(t, created)
	assert.NotEqual(t, "Str0ng!pass", created.Password)
	assert.True(t, CheckPassword("Str0ng!pass", created.Password))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := &mocks.MockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			assert.Equal(t, "karim@example.com", email)
			return true, nil
		},
	}
	svc := newAuthService(t, repo)

	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{
		FirstName: "Karim",
		LastName:  "Mia",
		Email:     "KARIM@example.com",
		Password:  "Str0ng!pass",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestSignup_ValidationFailure(t *testing.T) {
	createCalled := false
	repo := &mocks.MockUserRepository{
		CreateFunc: func(ctx context.Context, user *model.User) error {
			createCalled = true
			return nil
		},
	}
	svc := newAuthService(t, repo)

	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:    "not-an-email",
		Password: "weak",
	})
	assert.Nil(t, resp)
	assert.False(t, createCalled)

	domainErr := apperrors.GetDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Message, "First name is required.")
	assert.Contains(t, domainErr.Message, "Please provide a valid email address.")
	assert.Contains(t, domainErr.Message, "Password must be at least 8 characters long.")
}

func TestLogin_Success(t *testing.T) {
	user := storedUser(t, "Str0ng!pass")
	var savedHash string
	var savedExpiry *time.Time
	repo := &mocks.MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			assert.Equal(t, "karim@example.com", email)
			return user, nil
		},
		UpdateRefreshTokenFunc: func(ctx context.Context, id uint, tokenHash string, expiresAt *time.Time) error {
			assert.Equal(t, user.ID, id)
			savedHash = tokenHash
			savedExpiry = expiresAt
			return nil
		},
	}
	svc := newAuthService(t, repo)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "Karim@Example.com",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, constants.AccessTokenExpiry, resp.ExpiresIn)

	// The session stores a hash of the issued token, never the token itself.
	require.NotEmpty(t, savedHash)
	assert.NotEqual(t, resp.RefreshToken, savedHash)
	assert.True(t, svc.jwtSvc.VerifyRefreshToken(resp.RefreshToken, savedHash))

	require.NotNil(t, savedExpiry)
	assert.InDelta(t, time.Now().Add(7*24*time.Hour).Unix(), savedExpiry.Unix(), 10)

	claims, err := svc.jwtSvc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "karim@example.com", (*claims)["email"])
}

func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	user := storedUser(t, "Str0ng!pass")
	repo := &mocks.MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newAuthService(t, repo)

	_, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Str0ng!pass",
	})
	_, wrongErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "karim@example.com",
		Password: "Wr0ng!pass.",
	})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLogin_NoSessionWriteOnAuthFailure(t *testing.T) {
	user := storedUser(t, "Str0ng!pass")
	repo := &mocks.MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return user, nil
		},
		UpdateRefreshTokenFunc: func(ctx context.Context, id uint, tokenHash string, expiresAt *time.Time) error {
			t.Fatal("refresh session must not be written on a failed login")
			return nil
		},
	}
	svc := newAuthService(t, repo)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "karim@example.com",
		Password: "Wr0ng!pass.",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshToken_Rotation(t *testing.T) {
	user := storedUser(t, "Str0ng!pass")
	expiry := time.Now().Add(time.Hour)
	user.RefreshTokenHash = "stored-hash"
	user.RefreshTokenExpires = &expiry

	var rotatedHash string
	repo := &mocks.MockUserRepository{
		FindByRefreshTokenFunc: func(ctx context.Context, refreshToken string) (*model.User, error) {
			if refreshToken == "current-token" {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		UpdateRefreshTokenFunc: func(ctx context.Context, id uint, tokenHash string, expiresAt *time.Time) error {
			rotatedHash = tokenHash
			return nil
		},
	}
	svc := newAuthService(t, repo)

	resp, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "current-token"})
	require.NoError(t, err)

	assert.NotEqual(t, "current-token", resp.RefreshToken)
	assert.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, rotatedHash)
	assert.True(t, svc.jwtSvc.VerifyRefreshToken(resp.RefreshToken, rotatedHash))
}

func TestRefreshToken_Expired(t *testing.T) {
	user := storedUser(t, "Str0ng!pass")
	expiry := time.Now().Add(-time.Minute)
	user.RefreshTokenExpires = &expiry

	repo := &mocks.MockUserRepository{
		FindByRefreshTokenFunc: func(ctx context.Context, refreshToken string) (*model.User, error) {
			return user, nil
		},
	}
	svc := newAuthService(t, repo)

	resp, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "stale-token"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestRefreshToken_Unknown(t *testing.T) {
	repo := &mocks.MockUserRepository{}
	svc := newAuthService(t, repo)

	resp, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "nope"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestLogout_ClearsSession(t *testing.T) {
	cleared := false
	repo := &mocks.MockUserRepository{
		UpdateRefreshTokenFunc: func(ctx context.Context, id uint, tokenHash string, expiresAt *time.Time) error {
			assert.Equal(t, uint(7), id)
			assert.Empty(t, tokenHash)
			assert.Nil(t, expiresAt)
			cleared = true
			return nil
		},
	}
	svc := newAuthService(t, repo)

	require.NoError(t, svc.Logout(context.Background(), 7))
	assert.True(t, cleared)
}

func TestSanitizeUser_StripsCredentialFields(t *testing.T) {
	user := storedUser(t, "Str0ng!pass")
	user.RefreshTokenHash = "hash"

	resp := SanitizeUser(user)

	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, user.Email, resp.Email)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "refreshToken")
	assert.NotContains(t, string(body), "hash")
}
