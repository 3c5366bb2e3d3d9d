package model

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project status
const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusOngoing   = "ongoing"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on-hold"
)

// ProjectStatuses lists every valid project status
var ProjectStatuses = []string{ProjectStatusPlanning, ProjectStatusOngoing, ProjectStatusCompleted, ProjectStatusOnHold}

// MaxGalleryImages caps the gallery of one project
const MaxGalleryImages = 10

// EditableProjectInfo is the part of a project admin can write
type EditableProjectInfo struct {
	Title       string     `gorm:"type:text;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	ClientID    *uint      `gorm:"index" json:"clientId,omitempty"`
	CompanyID   *uint      `gorm:"index" json:"companyId,omitempty"`
	Location    string     `gorm:"type:text" json:"location"`
	Category    string     `gorm:"type:text;index" json:"category"`
	Status      string     `gorm:"type:text;not null;default:'planning';index" json:"status"`
	StartDate   *time.Time `gorm:"type:date" json:"startDate,omitempty"`
	EndDate     *time.Time `gorm:"type:date" json:"endDate,omitempty"`
	Value       *float64   `gorm:"type:numeric" json:"value,omitempty"`
	Featured    bool       `gorm:"default:false" json:"featured"`
}

// Project is a construction project shown in the portfolio
type Project struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	EditableProjectInfo
	Client    *Client     `gorm:"foreignKey:ClientID;constraint:OnDelete:SET NULL" json:"client,omitempty"`
	Company   *Company    `gorm:"foreignKey:CompanyID;constraint:OnDelete:SET NULL" json:"company,omitempty"`
	MainImage *StoredFile `gorm:"type:jsonb" json:"mainImage,omitempty"`
	Gallery   StoredFiles `gorm:"type:jsonb" json:"gallery"`

	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"createdById,omitempty"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updatedById,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Validate returns a message per invalid field
func (info *EditableProjectInfo) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(info.Title) == "" {
		errs["title"] = "Title is required"
	}
	if info.Status != "" && !slices.Contains(ProjectStatuses, info.Status) {
		errs["status"] = "Invalid project status"
	}
	if info.StartDate != nil && info.EndDate != nil && info.EndDate.Before(*info.StartDate) {
		errs["endDate"] = "End date must be after start date"
	}
	return errs
}

// FilePaths returns every stored image path of the project
func (p *Project) FilePaths() []string {
	var paths []string
	if p.MainImage != nil && p.MainImage.Path != "" {
		paths = append(paths, p.MainImage.Path)
	}
	return append(paths, p.Gallery.Paths()...)
}
