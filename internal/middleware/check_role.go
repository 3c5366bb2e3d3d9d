package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"corpsite-backend/internal/utilities"
)

// CheckRole will protect endpoint from user that is not a specific roles
func CheckRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := utilities.ExtractUser(ctx)
		if err != nil {
			utilities.Fail(ctx, http.StatusUnauthorized, utilities.KindUnauthorized, "user information not provided", nil)
			return
		}

		if !slices.Contains(roles, user.Role) {
			utilities.Fail(ctx, http.StatusForbidden, utilities.KindForbidden, "User doesn't have permission to access", nil)
			return
		}
		ctx.Next()
	}
}
