// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"tutorsched/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TutorIDKey is the gin context key holding the authenticated tutor id.
const TutorIDKey = "tutorID"

// JWTAuthTutorMiddleware verifies the bearer token and stores the tutor id in the context.
func JWTAuthTutorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
			c.Abort()
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		tutorID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			utils.GetLogger().Debug("rejected bearer token", zap.Error(err))
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
			c.Abort()
			return
		}

		c.Set(TutorIDKey, tutorID)
		c.Next()
	}
}
