package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

type newUserInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin hr"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// ListUsers returns every dashboard account
// @Summary List dashboard users
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utilities.SuccessResponse{data=[]model.User}
// @Failure 401 {object} utilities.ErrorResponse
// @Failure 403 {object} utilities.ErrorResponse
// @Router /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	var users []model.User
	if err := h.DB.WithContext(c.Request.Context()).Order("username asc").Find(&users).Error; err != nil {
		utilities.Internal(c, "Gagal mengambil data pengguna", err)
		return
	}
	utilities.OK(c, http.StatusOK, "", users)
}

// CreateUser adds an admin or hr account
// @Summary Create dashboard user
// @Description Password must be at least 8 characters, role is admin or hr
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param Info body newUserInfo true "New account"
// @Success 201 {object} utilities.SuccessResponse{data=model.User}
// @Failure 400 {object} utilities.ErrorResponse
// @Failure 401 {object} utilities.ErrorResponse
// @Failure 403 {object} utilities.ErrorResponse
// @Router /admin/users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var info newUserInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utilities.ValidationFailed(c, "Data pengguna tidak valid", map[string]string{
			"username": "required",
			"password": "minimum 8 characters",
			"role":     "admin or hr",
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		utilities.Internal(c, "Failed hash password", err)
		return
	}

	user := model.User{
		Username: strings.TrimSpace(info.Username),
		Password: hashedPassword,
		Role:     info.Role,
		FullName: info.FullName,
	}
	if info.Email != "" {
		user.Email = &info.Email
	}

	if err := h.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		if utilities.IsUniqueViolation(err, "") {
			utilities.Fail(c, http.StatusBadRequest, utilities.KindDuplicateName, "Username sudah digunakan", err)
			return
		}
		utilities.Internal(c, "Failed to create user", err)
		return
	}
	utilities.OK(c, http.StatusCreated, "Pengguna berhasil dibuat", user)
}
