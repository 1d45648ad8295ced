package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tripweaver/pkg/utils"
)

// IdentityMiddleware resolves an optional bearer token into a user id. All
// routes stay open; a missing or invalid token just leaves the request
// anonymous and handlers fall back to ids carried in the payload.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateToken(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
			}
		}
		c.Next()
	}
}
