package utils

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenResolver maps a session token to a user ID.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (uint64, bool)
}

// AuthMiddleware resolves the X-Token header and sets user context.
// Missing, unknown, and expired tokens all fail the same way.
func AuthMiddleware(sessions TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		userID, ok := sessions.Resolve(c.Request.Context(), token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
