package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetTrueClientIP resolves the real client IP behind the reverse proxy chain.
func GetTrueClientIP(c *gin.Context) string {
	// X-Real-IP is set by Nginx when present
	ip := c.Request.Header.Get("X-Real-IP")
	if ip != "" {
		return ip
	}

	// Otherwise take the last entry of X-Forwarded-For, the closest client in
	// the proxy chain
	forwardedFor := c.Request.Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if len(ips) > 0 {
			lastIP := strings.TrimSpace(ips[len(ips)-1])
			if lastIP != "" {
				return lastIP
			}
		}
	}

	return c.ClientIP()
}
