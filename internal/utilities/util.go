// Package utilities contain utility code that use across the package
package utilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"corpsite-backend/internal/model"
)

// ExtractUser extracts the user model from Gin context.
// It does not abort the request; it returns an error when missing or invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("User information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("Failed to assert type")
	}
	return user, nil
}

// ActorID returns the id of the authenticated user or nil on public routes
func ActorID(c *gin.Context) *uuid.UUID {
	user, err := ExtractUser(c)
	if err != nil {
		return nil
	}
	return &user.ID
}

// CreateAdmin creates an admin user with the given password and username in the provided database.
func CreateAdmin(ctx context.Context, db *gorm.DB, username, password string) (model.User, error) {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := model.User{
		Username: username,
		Password: hashedPassword,
		Role:     model.RoleAdmin,
		FullName: "Administrator",
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return model.User{}, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}
