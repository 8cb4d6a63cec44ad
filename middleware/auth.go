package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vayuhu/utils"
)

// ContextUserID is the gin context key for the authenticated user.
const ContextUserID = "userID"

// SessionAuthMiddleware is the session provider for the booking flow: it
// validates the Bearer token minted by the authentication collaborator
// and injects the user ID into the request context. No booking draft can
// exist without it.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Please log in to book a workspace",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired, please log in again",
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID from the request context.
func UserID(c *gin.Context) string {
	if v, exists := c.Get(ContextUserID); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
