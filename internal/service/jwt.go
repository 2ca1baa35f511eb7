package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/dto"
)

const (
	accessTokenTTL  = constants.AccessTokenExpiry * time.Second
	refreshTokenTTL = constants.RefreshTokenExpiry * time.Second
)

// JWTService issues and validates access tokens and mints the opaque
// refresh-session tokens persisted on accounts. The signing secret is fixed
// at startup; an empty secret is a configuration error, not a per-request
// condition.
type JWTService struct {
	secretKey string
}

func NewJWTService(secretKey string) (*JWTService, error) {
	if secretKey == "" {
		return nil, errors.New("jwt signing secret is not configured")
	}
	return &JWTService{secretKey: secretKey}, nil
}

// GenerateToken creates the short-lived access token carrying the account
// identity and role.
func (s *JWTService) GenerateToken(user *dto.UserResponse) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     now.Add(accessTokenTTL).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GenerateRefreshToken creates the opaque refresh-session token. It is not a
// JWT: a random value with no claims, paired with a server-side expiry.
func (s *JWTService) GenerateRefreshToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return base64.URLEncoding.EncodeToString(bytes), nil
}

// HashRefreshToken hashes a refresh token for storage.
func (s *JWTService) HashRefreshToken(refreshToken string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(refreshToken), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash refresh token: %w", err)
	}
	return string(hash), nil
}

// VerifyRefreshToken verifies a refresh token against its stored hash.
func (s *JWTService) VerifyRefreshToken(refreshToken, hashedToken string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedToken), []byte(refreshToken))
	return err == nil
}

// RefreshTokenTTL exposes the refresh-session lifetime for persistence.
func (s *JWTService) RefreshTokenTTL() time.Duration {
	return refreshTokenTTL
}

// ValidateToken validates an access token and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, errors.New("invalid token")
}
