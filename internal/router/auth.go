package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jobport-bd/applicant-service/internal/middleware"
)

func (r *Router) authRoutes(version *gin.RouterGroup) {
	auth := version.Group("/auth")
	{
		// Public routes (no authentication required)
		auth.POST("/signup", r.authHandler.Signup)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.RefreshToken)

		// Protected routes (JWT authentication required)
		protected := auth.Group("")
		protected.Use(middleware.RequireAuth(r.jwtSvc))
		{
			protected.POST("/logout", r.authHandler.Logout)
		}
	}
}
