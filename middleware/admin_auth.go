// api/middleware/admin_auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/trialdesk/participant-manager/api/logging"
)

// AdminAuth requires the userId header identifying the admin making the
// request. Identity is established upstream by the auth server; this layer
// only carries the id into the request context for permission checks.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("userId"))
		if userID == "" {
			logger.Warn("Missing userId header",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			c.JSON(http.StatusUnauthorized, gin.H{"error_description": "Unauthorized or Invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
