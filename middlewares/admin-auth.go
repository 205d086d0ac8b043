package middlewares

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the observability endpoints with a shared key
// from the environment. With no ADMIN_API_KEY configured the endpoints are
// disabled entirely rather than left open.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := os.Getenv("ADMIN_API_KEY")
		if expected == "" {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "not_found",
			})
			c.Abort()
			return
		}

		provided := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
				"message": "Admin key is missing or invalid.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
