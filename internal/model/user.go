// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role of admin dashboard users
const (
	RoleAdmin = "admin"
	RoleHR    = "hr"
)

// Roles lists every role a user can hold
var Roles = []string{RoleAdmin, RoleHR}

// User is an admin dashboard account
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Username  string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:text" json:"-"`
	Role      string    `gorm:"type:text;not null;default:'hr'" json:"role"`
	FullName  string    `gorm:"type:text" json:"fullName"`
	Email     *string   `gorm:"type:text" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CanDelete reports whether the role may delete careers, applications and companies
func (u User) CanDelete() bool {
	return u.Role == RoleAdmin
}
