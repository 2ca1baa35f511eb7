package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jobport-bd/applicant-service/config"
	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/handler"
	"github.com/jobport-bd/applicant-service/internal/middleware"
	"github.com/jobport-bd/applicant-service/internal/service"
	"github.com/jobport-bd/applicant-service/pkg/redis"
)

type Router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	healthHandler  *handler.HealthHandler

	jwtSvc      *service.JWTService
	redisClient *redis.Client
	config      *config.Config
}

func NewRouter(
	auth *handler.AuthHandler,
	user *handler.UserHandler,
	profile *handler.ProfileHandler,
	health *handler.HealthHandler,
	jwtSvc *service.JWTService,
	redisClient *redis.Client,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:    auth,
		userHandler:    user,
		profileHandler: profile,
		healthHandler:  health,
		jwtSvc:         jwtSvc,
		redisClient:    redisClient,
		config:         cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if r.config.App.Environment == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestLogging())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.HealthCheck)

		v1 := api.Group("/v1")
		{
			v1.Use(middleware.RateLimit(r.config, r.redisClient))

			r.authRoutes(v1)
			r.userRoutes(v1)
			r.profileRoutes(v1)
		}
	}

	return router
}
