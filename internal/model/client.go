package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client status
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// EditableClientInfo is the part of a client admin can write
type EditableClientInfo struct {
	Name          string `gorm:"type:text;not null" json:"name"`
	Industry      string `gorm:"type:text;index" json:"industry"`
	Description   string `gorm:"type:text" json:"description"`
	Website       string `gorm:"type:text" json:"website"`
	ContactPerson string `gorm:"type:text" json:"contactPerson"`
	ContactEmail  string `gorm:"type:text" json:"contactEmail"`
	ContactPhone  string `gorm:"type:text" json:"contactPhone"`
	Status        string `gorm:"type:text;not null;default:'active';index" json:"status"`
	Featured      bool   `gorm:"default:false" json:"featured"`
}

// Client is a customer of the holding shown on the public site
type Client struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	EditableClientInfo
	// NameKey is the lower-cased name, unique so "Acme" and "ACME" collide
	NameKey         string      `gorm:"type:text;not null;uniqueIndex:idx_clients_name_key" json:"-"`
	Logo            *StoredFile `gorm:"type:jsonb" json:"logo,omitempty"`
	ProjectCount    int         `gorm:"not null;default:0" json:"projectCount"`
	LastProjectDate *time.Time  `gorm:"type:timestamp" json:"lastProjectDate,omitempty"`

	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"createdById,omitempty"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updatedById,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ClientNameKey normalises a client name for the uniqueness check
func ClientNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Validate returns a message per invalid field
func (info *EditableClientInfo) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(info.Name) == "" {
		errs["name"] = "Name is required"
	}
	if info.Status != "" && info.Status != ClientStatusActive && info.Status != ClientStatusInactive {
		errs["status"] = "Status must be active or inactive"
	}
	return errs
}

// AdjustProjectCount applies an increment or decrement; the count never drops below zero
func (c *Client) AdjustProjectCount(increment bool, now time.Time) {
	if increment {
		c.ProjectCount++
		c.LastProjectDate = &now
		return
	}
	if c.ProjectCount > 0 {
		c.ProjectCount--
	}
}
