package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"corpsite-backend/internal/database"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// CookieOptions controls the admin session cookie
type CookieOptions struct {
	Secure bool
	Domain string
}

// Handler serves login, logout and user management endpoints
type Handler struct {
	DB        *database.DBinstanceStruct
	Tokens    *TokenService
	Blacklist JwtBlacklistStore
	Cookie    CookieOptions
}

// NewHandler creates a new instance of Handler
func NewHandler(db *database.DBinstanceStruct, tokens *TokenService, blacklist JwtBlacklistStore, cookie CookieOptions) *Handler {
	return &Handler{
		DB:        db,
		Tokens:    tokens,
		Blacklist: blacklist,
		Cookie:    cookie,
	}
}

type loginInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the data returned by a successful login
type LoginResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"accessToken"`
	ExpiresAt   time.Time  `json:"expiresAt"`
}

// Login checks the credentials and issues an access token, also as an HttpOnly cookie
// @Summary Login to the admin dashboard
// @Description Username must exist and password match. The token is returned in the body and set as the admin_session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} utilities.SuccessResponse{data=LoginResponse}
// @Failure 400 {object} utilities.ErrorResponse "Username or password not provided"
// @Failure 401 {object} utilities.ErrorResponse "Username not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var info loginInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utilities.ValidationFailed(c, "Username dan password wajib diisi", map[string]string{
			"username": "required",
			"password": "required",
		})
		return
	}

	var user model.User
	err := h.DB.WithContext(c.Request.Context()).Where("username = ?", info.Username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		LogAuthAttempt(c.Request.Context(), slog.LevelWarn, "Fail", info.Username, "unknown username")
		utilities.Fail(c, http.StatusUnauthorized, utilities.KindUnauthorized, "Username atau password salah", nil)
		return
	case err != nil:
		utilities.Internal(c, "Terjadi kesalahan pada server", err)
		return
	}

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		LogAuthAttempt(c.Request.Context(), slog.LevelWarn, "Fail", info.Username, "wrong password")
		utilities.Fail(c, http.StatusUnauthorized, utilities.KindUnauthorized, "Username atau password salah", nil)
		return
	}

	accessToken, claims, err := h.Tokens.GenerateStandardToken(user)
	if err != nil {
		utilities.Internal(c, "Gagal membuat token", err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(utilities.SessionCookie, accessToken, int(h.Tokens.TTL().Seconds()), "/", h.Cookie.Domain, h.Cookie.Secure, true)

	LogAuthAttempt(c.Request.Context(), slog.LevelInfo, "Success", user.Username, "login")
	utilities.OK(c, http.StatusOK, "Login berhasil", LoginResponse{
		User:        user,
		AccessToken: accessToken,
		ExpiresAt:   claims.ExpiresAt.Time,
	})
}

// Logout revokes the current token and clears the session cookie
// @Summary Logout
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utilities.MessageResponse
// @Failure 401 {object} utilities.ErrorResponse
// @Failure 500 {object} utilities.ErrorResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	claims, err := ClaimsFromContext(c)
	if err != nil {
		utilities.Fail(c, http.StatusUnauthorized, utilities.KindUnauthorized, "Sesi tidak valid", err)
		return
	}

	if err := h.Blacklist.AddToBlacklist(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		utilities.Internal(c, "Failed to logout", err)
		return
	}

	c.SetCookie(utilities.SessionCookie, "", -1, "/", h.Cookie.Domain, h.Cookie.Secure, true)
	LogAuthAttempt(c.Request.Context(), slog.LevelInfo, "Success", claims.Subject, "logout")
	c.JSON(http.StatusOK, utilities.MessageResponse{Success: true, Message: "Successfully logged out"})
}

// Me returns the authenticated user
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utilities.SuccessResponse{data=model.User}
// @Failure 401 {object} utilities.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		utilities.Fail(c, http.StatusUnauthorized, utilities.KindUnauthorized, "Sesi tidak valid", err)
		return
	}
	utilities.OK(c, http.StatusOK, "", user)
}

// ClaimsFromContext returns the claims stored by the authentication middleware
func ClaimsFromContext(c *gin.Context) (*Claims, error) {
	claims, ok := c.Get("claims")
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	realClaims, okCast := claims.(*Claims)
	if !okCast {
		return nil, fmt.Errorf("invalid token claims type")
	}
	return realClaims, nil
}
