package configs

import (
	"github.com/gin-gonic/gin"
)

// SecureConfig sets the standard security headers on every response.
func SecureConfig(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")
	c.Header("Referrer-Policy", "no-referrer")

	c.Next()
}
