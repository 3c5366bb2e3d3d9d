package utilities

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the HttpOnly cookie carrying the admin session token
const SessionCookie = "admin_session"

// ExtractBearerToken returns the token of the Authorization header
func ExtractBearerToken(c *gin.Context) (string, error) {

	const BearerSchema = "Bearer "
	authHeader := c.GetHeader("Authorization")

	if len(authHeader) <= len(BearerSchema) || !strings.EqualFold(authHeader[:len(BearerSchema)], BearerSchema) {
		return "", fmt.Errorf("Invalid authorization header")
	}

	return strings.TrimSpace(authHeader[len(BearerSchema):]), nil

}

// ExtractToken prefers the Authorization header and falls back to the session cookie
func ExtractToken(c *gin.Context) (string, error) {
	if token, err := ExtractBearerToken(c); err == nil {
		return token, nil
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", fmt.Errorf("Token not provided")
}
