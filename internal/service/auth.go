package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/dto"
	apperrors "github.com/jobport-bd/applicant-service/internal/errors"
	"github.com/jobport-bd/applicant-service/internal/model"
	"github.com/jobport-bd/applicant-service/internal/repository"
	"github.com/jobport-bd/applicant-service/pkg/logger"
	"github.com/jobport-bd/applicant-service/pkg/normalize"
	"github.com/jobport-bd/applicant-service/pkg/validation"
)

// AuthService owns the signup and login flows and the refresh-session
// lifecycle. Login failures are deliberately indistinguishable: an unknown
// email and a wrong password both surface ErrInvalidCredentials.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSvc    *JWTService
	validator *validation.Validator
}

func NewAuthService(userRepo repository.UserRepository, jwtSvc *JWTService, validator *validation.Validator) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSvc:    jwtSvc,
		validator: validator,
	}
}

// Signup registers a new account. The stored email is the lowercased form of
// the input and the duplicate check runs against that same form, so accounts
// differing only in email case cannot coexist.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	if messages := s.validator.Validate(req); len(messages) > 0 {
		return nil, apperrors.NewValidationError(validation.Join(messages))
	}

	email := normalize.Email(req.Email)

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}
	if exists {
		logger.LogAuth(email, "signup", false, zap.String("reason", "duplicate email"))
		return nil, apperrors.ErrUserExists
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Password:  hash,
		Role:      constants.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	logger.LogAuth(email, "signup", true, zap.Uint("user_id", user.ID))

	return SanitizeUser(user), nil
}

// Login authenticates an account and opens a refresh session. Tokens are
// minted before the session write: if either token cannot be produced the
// account row is left untouched.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if messages := s.validator.Validate(req); len(messages) > 0 {
		return nil, apperrors.NewValidationError(validation.Join(messages))
	}

	email := normalize.Email(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.LogAuth(email, "login", false, zap.String("reason", "unknown email"))
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.WrapInternal(err)
	}

	if !CheckPassword(req.Password, user.Password) {
		logger.LogAuth(email, "login", false, zap.String("reason", "wrong password"))
		return nil, apperrors.ErrInvalidCredentials
	}

	sanitized := SanitizeUser(user)

	accessToken, err := s.jwtSvc.GenerateToken(sanitized)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrTokenGeneration, err)
	}

	refreshToken, err := s.jwtSvc.GenerateRefreshToken()
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrTokenGeneration, err)
	}

	refreshHash, err := s.jwtSvc.HashRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrTokenGeneration, err)
	}

	expiresAt := time.Now().Add(s.jwtSvc.RefreshTokenTTL())
	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, refreshHash, &expiresAt); err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.GetLogger().Warn("Failed to record last login",
			zap.Uint("user_id", user.ID),
			zap.Error(err))
	}

	logger.LogAuth(email, "login", true, zap.Uint("user_id", user.ID))

	return &dto.LoginResponse{
		User:         *sanitized,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    constants.AccessTokenExpiry,
	}, nil
}

// RefreshToken rotates a refresh session: the presented token is matched
// against stored hashes, checked for expiry, and replaced. A used token is
// never valid twice.
func (s *AuthService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	if messages := s.validator.Validate(req); len(messages) > 0 {
		return nil, apperrors.NewValidationError(validation.Join(messages))
	}

	user, err := s.userRepo.FindByRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, apperrors.WrapInternal(err)
	}

	if user.RefreshTokenExpires == nil || time.Now().After(*user.RefreshTokenExpires) {
		return nil, apperrors.ErrTokenExpired
	}

	sanitized := SanitizeUser(user)

	accessToken, err := s.jwtSvc.GenerateToken(sanitized)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrTokenGeneration, err)
	}

	refreshToken, err := s.jwtSvc.GenerateRefreshToken()
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrTokenGeneration, err)
	}

	refreshHash, err := s.jwtSvc.HashRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrTokenGeneration, err)
	}

	expiresAt := time.Now().Add(s.jwtSvc.RefreshTokenTTL())
	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, refreshHash, &expiresAt); err != nil {
		return nil, apperrors.WrapInternal(err)
	}

	return &dto.RefreshTokenResponse{
		User:         *sanitized,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    constants.AccessTokenExpiry,
	}, nil
}

// Logout closes the refresh session for an account. Idempotent: logging out
// twice is not an error.
func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.WrapInternal(err)
	}
	return nil
}

// SanitizeUser converts a stored account into its public representation.
// Password and refresh-session fields never cross this boundary.
func SanitizeUser(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
