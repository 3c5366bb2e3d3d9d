package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Company type
const (
	CompanyTypeParent     = "parent"
	CompanyTypeSubsidiary = "subsidiary"
)

// EditableCompanyInfo is the part of a company profile admin can write
type EditableCompanyInfo struct {
	Name            string `gorm:"type:text;not null" json:"name"`
	Type            string `gorm:"type:text;not null;default:'subsidiary';index" json:"type"`
	Description     string `gorm:"type:text" json:"description"`
	Vision          string `gorm:"type:text" json:"vision"`
	Mission         string `gorm:"type:text" json:"mission"`
	Address         string `gorm:"type:text" json:"address"`
	Phone           string `gorm:"type:text" json:"phone"`
	Email           string `gorm:"type:text" json:"email"`
	Website         string `gorm:"type:text" json:"website"`
	EstablishedYear int    `json:"establishedYear"`
	Status          string `gorm:"type:text;not null;default:'active'" json:"status"`
}

// Company is the holding itself or one of its subsidiaries.
// At most one row has type parent, enforced by a partial unique index created at migration.
type Company struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	EditableCompanyInfo
	Logo *StoredFile `gorm:"type:jsonb" json:"logo,omitempty"`

	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"createdById,omitempty"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updatedById,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Validate returns a message per invalid field
func (info *EditableCompanyInfo) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(info.Name) == "" {
		errs["name"] = "Name is required"
	}
	if info.Type != CompanyTypeParent && info.Type != CompanyTypeSubsidiary {
		errs["type"] = "Type must be parent or subsidiary"
	}
	if info.Status != "" && info.Status != "active" && info.Status != "inactive" {
		errs["status"] = "Status must be active or inactive"
	}
	return errs
}
