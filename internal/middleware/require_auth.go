// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"corpsite-backend/internal/auth"
	"corpsite-backend/internal/database"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// RequireAuth validates the token from the Authorization header or the session cookie,
// loads the user it belongs to and stores both claims and user in the context.
func RequireAuth(db *database.DBinstanceStruct, tokens *auth.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractToken(ctx)
		if err != nil {
			utilities.Fail(ctx, http.StatusUnauthorized, utilities.KindUnauthorized, "Silakan login terlebih dahulu", nil)
			return
		}

		claims, err := tokens.ValidatedToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				utilities.Fail(ctx, http.StatusUnauthorized, utilities.KindUnauthorized, "Access token expired", nil)
			case errors.Is(err, jwt.ErrTokenInvalidIssuer):
				utilities.Fail(ctx, http.StatusUnauthorized, utilities.KindUnauthorized, "Invalid token issuer", nil)
			default:
				utilities.Fail(ctx, http.StatusUnauthorized, utilities.KindUnauthorized, "Invalid access token", nil)
			}
			return
		}
		ctx.Set("claims", claims)

		var foundUser model.User
		if err := db.WithContext(ctx.Request.Context()).Where("id = ?", claims.Subject).First(&foundUser).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utilities.Fail(ctx, http.StatusUnauthorized, utilities.KindUnauthorized, "User not exist", nil)
				return
			}
			utilities.Internal(ctx, "Failed to retrieve user data", err)
			return
		}

		ctx.Set("user", foundUser)
		ctx.Next()
	}
}
