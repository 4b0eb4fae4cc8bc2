package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const UserIDContextKey = "user_id"

// AuthMiddleware trusts the identity the gateway injects. Session handling
// happens upstream; this layer only refuses requests that arrive without an
// authenticated user.
type AuthMiddleware interface {
	RequireUser() gin.HandlerFunc
}

type authMiddleware struct {
}

func (a *authMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.Request.Header.Get("X-User-ID")
		if len(userId) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "X-User-ID header is empty",
			})
			return
		}
		c.Set(UserIDContextKey, userId)
		c.Next()
	}
}

// UserID reads the authenticated user set by RequireUser.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDContextKey)
}

func NewAuthMiddleware() AuthMiddleware {
	return &authMiddleware{}
}
