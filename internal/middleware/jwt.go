package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobport-bd/applicant-service/internal/constants"
	"github.com/jobport-bd/applicant-service/internal/service"
)

// RequireAuth validates the bearer token and places the account identity on
// the request context.
func RequireAuth(jwtSvc *service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.HeaderAuthorization)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				constants.BuildErrorResponse("Unauthorized", "Authorization header is required"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				constants.BuildErrorResponse("Unauthorized", "Authorization header must be a bearer token"))
			return
		}

		claims, err := jwtSvc.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				constants.BuildErrorResponse("Unauthorized", "Invalid or expired token"))
			return
		}

		if userID, ok := (*claims)["user_id"].(float64); ok {
			c.Set(string(constants.CtxKeyUserID), uint(userID))
		}
		if role, ok := (*claims)["role"].(string); ok {
			c.Set(string(constants.CtxKeyUserRole), role)
		}

		c.Next()
	}
}

// RequireRole gates a route to accounts holding one of the given roles. Must
// run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(string(constants.CtxKeyUserRole))
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				constants.BuildErrorResponse("Unauthorized", "Role not found in context"))
			return
		}

		current, _ := role.(string)
		for _, allowed := range roles {
			if current == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			constants.BuildErrorResponse("Forbidden", "Insufficient permissions"))
	}
}
