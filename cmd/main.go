package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jobport-bd/applicant-service/config"
	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/handler"
	"github.com/jobport-bd/applicant-service/internal/repository"
	"github.com/jobport-bd/applicant-service/internal/router"
	"github.com/jobport-bd/applicant-service/internal/service"
	"github.com/jobport-bd/applicant-service/pkg/database"
	"github.com/jobport-bd/applicant-service/pkg/logger"
	"github.com/jobport-bd/applicant-service/pkg/redis"
	"github.com/jobport-bd/applicant-service/pkg/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(cfg.App.Environment); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", constants.AppName),
		zap.String("environment", cfg.App.Environment),
		zap.String("version", constants.AppVersion),
	)

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}

	if err := database.SeedAdmin(db); err != nil {
		// Seed failures are not fatal, the admin may already exist.
		logger.GetLogger().Error("Failed to seed admin account", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewClient(cfg)
		if err != nil {
			// The limiter fails open without redis; the service still runs.
			logger.GetLogger().Warn("Redis unavailable, continuing without it", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	jwtSvc, err := service.NewJWTService(cfg.JWT.Secret)
	if err != nil {
		logger.GetLogger().Fatal("Failed to initialize token service", zap.Error(err))
	}

	validator := validation.New()

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	authService := service.NewAuthService(userRepo, jwtSvc, validator)
	userService := service.NewUserService(userRepo, validator)
	profileService := service.NewProfileService(profileRepo, userRepo, validator)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	profileHandler := handler.NewProfileHandler(profileService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	r := router.NewRouter(authHandler, userHandler, profileHandler, healthHandler, jwtSvc, redisClient, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r.SetupRoutes(),
	}

	go func() {
		logger.GetLogger().Info("HTTP server listening", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.GetLogger().Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.GetLogger().Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.GetLogger().Error("Forced shutdown", zap.Error(err))
	}

	logger.GetLogger().Info("Server stopped")
}
