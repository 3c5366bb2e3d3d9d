package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite-backend/internal/auth"
	"corpsite-backend/internal/utilities"
)

// JwtBlacklistCheck rejects tokens revoked by logout. It must run after RequireAuth.
func JwtBlacklistCheck(bl auth.JwtBlacklistStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := auth.ClaimsFromContext(ctx)
		if err != nil {
			utilities.Fail(ctx, http.StatusUnauthorized, utilities.KindUnauthorized, "Silakan login terlebih dahulu", nil)
			return
		}

		isBlacklisted, err := bl.IsBlacklisted(ctx.Request.Context(), claims.ID)
		if err != nil {
			utilities.Internal(ctx, "Failed to validate token", err)
			return
		}

		if isBlacklisted {
			utilities.Fail(ctx, http.StatusUnauthorized, utilities.KindUnauthorized, "Token has been revoked", nil)
			return
		}

		ctx.Next()
	}
}
