package middleware

import (
	"net/http"
	"strings"

	"carhive/utils"

	"github.com/gin-gonic/gin"
)

const (
	// SessionKey is the gin context key for the caller's models.Session.
	SessionKey = "session"
	// TokenKey is the gin context key for the raw bearer token.
	TokenKey = "token"
)

// AuthMiddleware validates the bearer token and loads the caller's session
// from Redis onto the request context. Requests without a live session are
// rejected; nothing downstream runs with a partially built identity.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		session, err := utils.GetSession(utils.GetSessionClient(), utils.HashToken(tokenString))
		if err != nil || session == nil || session.UID != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}

		c.Set(SessionKey, *session)
		c.Set(TokenKey, tokenString)
		c.Next()
	}
}
