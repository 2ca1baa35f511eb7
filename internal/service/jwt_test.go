package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/dto"
)

func testUser() *dto.UserResponse {
	return &dto.UserResponse{
		ID:        42,
		FirstName: "Rahim",
		LastName:  "Uddin",
		Email:     "rahim@example.com",
		Role:      constants.RoleUser,
	}
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService("")
	assert.Nil(t, svc)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.EqualValues(t, 42, (*claims)["user_id"])
	assert.Equal(t, "rahim@example.com", (*claims)["email"])
	assert.Equal(t, constants.RoleUser, (*claims)["role"])

	exp, ok := (*claims)["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(accessTokenTTL).Unix(), int64(exp), 5)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc, err := NewJWTService("secret-a")
	require.NoError(t, err)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	other, err := NewJWTService("secret-b")
	require.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	claims, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	token, err := svc.GenerateRefreshToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	second, err := svc.GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, second)

	hash, err := svc.HashRefreshToken(token)
	require.NoError(t, err)
	assert.NotEqual(t, token, hash)

	assert.True(t, svc.VerifyRefreshToken(token, hash))
	assert.False(t, svc.VerifyRefreshToken(second, hash))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3r$ecret", hash)

	assert.True(t, CheckPassword("Sup3r$ecret", hash))
	assert.False(t, CheckPassword("sup3r$ecret", hash))
}
