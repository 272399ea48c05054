package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"boba-pos/utils"
)

// AuthMiddleware requires a valid employee bearer token and exposes
// the employee id and position to downstream handlers.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := utils.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("employee_id", claims.EmployeeID)
		c.Set("position", claims.Position)
		c.Next()
	}
}

// RoleMiddleware gates a route group to the given positions.
func RoleMiddleware(positions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		position := c.GetString("position")
		for _, p := range positions {
			if position == p {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}
