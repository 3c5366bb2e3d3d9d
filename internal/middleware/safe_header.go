package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SafeHeader adds security-related headers to each response.
// The swagger UI is served without the restrictive content security policy.
func SafeHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		if !strings.HasPrefix(c.Request.URL.Path, "/swagger") {
			c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/admin") || strings.HasPrefix(c.Request.URL.Path, "/api/auth") {
			c.Header("Cache-Control", "no-store")
		}
		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		c.Next()
	}
}
