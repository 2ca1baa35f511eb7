package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobport-bd/applicant-service/config"
	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/pkg/logger"
	"github.com/jobport-bd/applicant-service/pkg/redis"
)

// RateLimit applies a fixed-window per-client limit backed by redis. When
// redis is unavailable the limiter fails open: rejecting traffic because the
// counter store is down would turn a cache outage into an API outage.
func RateLimit(cfg *config.Config, client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.RateLimit.Enabled || client == nil {
			c.Next()
			return
		}

		key := constants.RateLimitKeyPrefix + c.ClientIP()

		count, err := client.IncrementWindow(c.Request.Context(), key, cfg.RateLimit.Window)
		if err != nil {
			logger.GetLogger().Warn("Rate limiter unavailable, allowing request",
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err))
			c.Next()
			return
		}

		if count > int64(cfg.RateLimit.Requests) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				constants.BuildErrorResponse("Too many requests", "Rate limit exceeded, try again later"))
			return
		}

		c.Next()
	}
}
