package middleware

import (
	"net/http"
	"strings"

	"eduboard/models"
	"eduboard/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and stores the caller's
// identity in the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			c.Abort()
			return
		}

		claims, err := services.VerifyAuthToken(parts[1], jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_name", claims.Name)
		c.Set("role", string(claims.Role))
		c.Set("class", string(claims.Class))
		c.Next()
	}
}

// RequireTeacher rejects callers whose token does not carry the teacher
// role. Must run after AuthMiddleware.
func RequireTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != string(models.RoleTeacher) {
			c.JSON(http.StatusForbidden, gin.H{"error": "teacher role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
