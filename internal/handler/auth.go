package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/dto"
	apperrors "github.com/jobport-bd/applicant-service/internal/errors"
	"github.com/jobport-bd/applicant-service/internal/service"
	"github.com/jobport-bd/applicant-service/pkg/logger"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup handles account registration
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Signup failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, constants.BuildDataResponse(user))
}

// Login handles account authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Authentication failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, response)
}

// RefreshToken rotates a refresh session
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.authService.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Token refresh failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout closes the authenticated account's refresh session
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse("Unauthorized", "User not found in context"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		logger.GetLogger().Warn("Logout failed", zap.Uint("user_id", userID), zap.Error(err))
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Logout failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Logged out successfully"))
}

// currentUserID extracts the authenticated account id placed by the JWT
// middleware. Claims decode as float64.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(string(constants.CtxKeyUserID))
	if !exists {
		return 0, false
	}
	switch v := value.(type) {
	case uint:
		return v, true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}
