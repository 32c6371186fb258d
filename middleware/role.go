package middleware

import (
	"net/http"

	"carhive/models"

	"github.com/gin-gonic/gin"
)

// OwnerOnlyMiddleware gates owner-dashboard endpoints. A session without the
// owner flag routes as renter, so it is rejected here.
func OwnerOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := CurrentSession(c)
		if !ok || !session.IsOwner {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Owner role required"})
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session placed on the context by AuthMiddleware.
func CurrentSession(c *gin.Context) (models.Session, bool) {
	val, exists := c.Get(SessionKey)
	if !exists {
		return models.Session{}, false
	}
	session, ok := val.(models.Session)
	return session, ok
}
