package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Career posting status
const (
	CareerStatusDraft    = "draft"
	CareerStatusActive   = "active"
	CareerStatusClosed   = "closed"
	CareerStatusArchived = "archived"
)

// CareerStatuses lists every valid career posting status
var CareerStatuses = []string{CareerStatusDraft, CareerStatusActive, CareerStatusClosed, CareerStatusArchived}

// SalaryRange is the advertised salary band of a posting
type SalaryRange struct {
	Min *float64 `gorm:"type:numeric" json:"min,omitempty"`
	Max *float64 `gorm:"type:numeric" json:"max,omitempty"`
}

// EditableCareerInfo is part of career posting that admin can write
type EditableCareerInfo struct {
	Title           string         `gorm:"type:text;not null" json:"title"`
	Location        string         `gorm:"type:text;not null;index" json:"location"`
	ExperienceLevel string         `gorm:"type:text;index" json:"experienceLevel"`
	Description     string         `gorm:"type:text" json:"description"`
	Requirements    string         `gorm:"type:text" json:"requirements"`
	Benefits        pq.StringArray `gorm:"type:text[]" json:"benefits"`
	SalaryRange     SalaryRange    `gorm:"embedded;embeddedPrefix:salary_" json:"salaryRange"`
	Department      string         `gorm:"type:text;index" json:"department"`
	Featured        bool           `gorm:"default:false" json:"featured"`
	OpenDate        *time.Time     `gorm:"type:timestamp" json:"openDate,omitempty"`
	CloseDate       *time.Time     `gorm:"type:timestamp" json:"closeDate,omitempty"`
}

// Career is gorm model for store job posting data in DB
type Career struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	EditableCareerInfo
	Status           string     `gorm:"type:text;not null;default:'draft';index" json:"status"`
	PublishDate      *time.Time `gorm:"type:timestamp" json:"publishDate,omitempty"`
	Views            uint       `gorm:"not null;default:0" json:"views"`
	ApplicationCount int        `gorm:"not null;default:0" json:"applicationCount"`

	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"createdById,omitempty"`
	CreatedBy   *User      `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"createdBy,omitempty"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updatedById,omitempty"`
	UpdatedBy   *User      `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"updatedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Applications []Application `gorm:"foreignKey:CareerID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

// ValidCareerStatus reports whether status is one of CareerStatuses
func ValidCareerStatus(status string) bool {
	return slices.Contains(CareerStatuses, status)
}

// Validate returns a message per missing or malformed field, empty when valid
func (info *EditableCareerInfo) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(info.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(info.Location) == "" {
		errs["location"] = "Location is required"
	}
	if strings.TrimSpace(info.Description) == "" {
		errs["description"] = "Description is required"
	}
	if info.CloseDate == nil {
		errs["closeDate"] = "Close date is required"
	}
	if info.OpenDate != nil && info.CloseDate != nil && info.CloseDate.Before(*info.OpenDate) {
		errs["closeDate"] = "Close date must be after open date"
	}
	if min, max := info.SalaryRange.Min, info.SalaryRange.Max; min != nil && max != nil && *max < *min {
		errs["salaryRange"] = fmt.Sprintf("Maximum salary %.0f is below minimum %.0f", *max, *min)
	}
	return errs
}

// SetStatus changes the posting status and stamps PublishDate the first time it becomes active
func (c *Career) SetStatus(status string, now time.Time) error {
	if !ValidCareerStatus(status) {
		return fmt.Errorf("invalid status: %s", status)
	}
	c.Status = status
	if status == CareerStatusActive && c.PublishDate == nil {
		c.PublishDate = &now
	}
	return nil
}

// IsActive reports whether the posting is publicly visible and accepts applications
func (c *Career) IsActive() bool {
	return c.Status == CareerStatusActive
}
