package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/middleware"
)

func (r *Router) userRoutes(version *gin.RouterGroup) {
	users := version.Group("/users")
	users.Use(middleware.RequireAuth(r.jwtSvc))
	{
		users.GET("", r.userHandler.GetUsers)
		users.GET("/:id", r.userHandler.GetUser)
		users.PATCH("/:id", r.userHandler.UpdateUser)

		// Destructive operations are admin-only
		admin := users.Group("")
		admin.Use(middleware.RequireRole(constants.RoleAdmin))
		{
			admin.DELETE("/:id", r.userHandler.DeleteUser)
			admin.POST("/delete-many", r.userHandler.DeleteUsers)
		}
	}
}
