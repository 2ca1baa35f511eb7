package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/middleware"
)

func (r *Router) profileRoutes(version *gin.RouterGroup) {
	profiles := version.Group("/profiles")
	profiles.Use(middleware.RequireAuth(r.jwtSvc))
	{
		profiles.POST("", r.profileHandler.CreateProfile)
		profiles.GET("", r.profileHandler.GetProfiles)
		profiles.GET("/:id", r.profileHandler.GetProfile)
		profiles.PATCH("/:id", r.profileHandler.UpdateProfile)
		profiles.DELETE("/:id", r.profileHandler.DeleteProfile)

		admin := profiles.Group("")
		admin.Use(middleware.RequireRole(constants.RoleAdmin))
		{
			admin.POST("/delete-many", r.profileHandler.DeleteProfiles)
		}
	}
}
