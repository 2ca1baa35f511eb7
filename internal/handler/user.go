package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/dto"
	apperrors "github.com/jobport-bd/applicant-service/internal/errors"
	"github.com/jobport-bd/applicant-service/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUser returns a single account by id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to get user", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(user))
}

// GetUsers lists accounts with whitelisted filters and pagination
func (h *UserHandler) GetUsers(c *gin.Context) {
	filter := dto.UserFilter{
		FirstName: c.Query("firstName"),
		LastName:  c.Query("lastName"),
		Phone:     c.Query("phone"),
		Email:     c.Query("email"),
	}

	users, total, page, err := h.userService.GetAll(c.Request.Context(), filter, parseListOptions(c))
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to list users", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, page.Page, page.Limit, users))
}

// UpdateUser applies a partial account update
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to update user", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(user))
}

// DeleteUser removes a single account
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to delete user", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("User deleted successfully"))
}

// DeleteUsers removes a batch of accounts
func (h *UserHandler) DeleteUsers(c *gin.Context) {
	var req dto.DeleteManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	deleted, err := h.userService.DeleteMany(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to delete users", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		constants.ResponseFieldMessage: "Users deleted successfully",
		"deleted":                      deleted,
	})
}
