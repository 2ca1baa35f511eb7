package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/dto"
	apperrors "github.com/jobport-bd/applicant-service/internal/errors"
	"github.com/jobport-bd/applicant-service/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// CreateProfile stores a new application record
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to create profile", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, constants.BuildDataResponse(profile))
}

// GetProfile returns a single application record by id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to get profile", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(profile))
}

// GetProfiles lists application records with whitelisted filters
func (h *ProfileHandler) GetProfiles(c *gin.Context) {
	filter := dto.ProfileFilter{
		UserID: c.Query("userId"),
		Name:   c.Query("name"),
		Email:  c.Query("email"),
		Mobile: c.Query("mobile"),
	}

	profiles, total, page, err := h.profileService.GetAll(c.Request.Context(), filter, parseListOptions(c))
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to list profiles", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, page.Page, page.Limit, profiles))
}

// UpdateProfile applies a partial update to an application record
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to update profile", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(profile))
}

// DeleteProfile removes a single application record
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.profileService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to delete profile", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Profile deleted successfully"))
}

// DeleteProfiles removes a batch of application records
func (h *ProfileHandler) DeleteProfiles(c *gin.Context) {
	var req dto.DeleteManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	deleted, err := h.profileService.DeleteMany(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to delete profiles", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		constants.ResponseFieldMessage: "Profiles deleted successfully",
		"deleted":                      deleted,
	})
}
