package middlewares

import (
	"net/http"
	"strings"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and stores the verified
// user id in the request context under "userID".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.SendError(c, http.StatusUnauthorized, "authorization header required", nil)
			c.Abort()
			return
		}

		userID, err := utils.ParseUserID(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.SendError(c, http.StatusUnauthorized, "invalid token", nil)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
