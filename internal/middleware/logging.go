package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/pkg/logger"
)

// RequestLogging tags every request with an id and logs it on completion.
// An inbound X-Request-ID is honored so callers can correlate.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(string(constants.CtxKeyRequestID), requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status_code", c.Writer.Status()),
			zap.Int64("duration_ms", duration.Milliseconds()),
			zap.String("client_ip", c.ClientIP()),
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.GetLogger().Error("HTTP Request", fields...)
		case c.Writer.Status() >= 400:
			logger.GetLogger().Warn("HTTP Request", fields...)
		default:
			logger.GetLogger().Info("HTTP Request", fields...)
		}
	}
}

// Recovery converts panics into 500 responses and logs the stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.GetLogger().Error("Panic recovered",
					zap.Any("panic", recovered),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"))
				c.AbortWithStatusJSON(500,
					constants.BuildErrorResponse("Internal server error", nil))
			}
		}()
		c.Next()
	}
}
