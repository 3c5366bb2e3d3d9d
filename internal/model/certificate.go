package model

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Certificate status
const (
	CertificateStatusActive  = "active"
	CertificateStatusExpired = "expired"
	CertificateStatusRevoked = "revoked"
)

// CertificateStatuses lists every valid certificate status
var CertificateStatuses = []string{CertificateStatusActive, CertificateStatusExpired, CertificateStatusRevoked}

// EditableCertificateInfo is the part of a certificate admin can write
type EditableCertificateInfo struct {
	Title             string     `gorm:"type:text;not null" json:"title"`
	Issuer            string     `gorm:"type:text;not null" json:"issuer"`
	CertificateNumber string     `gorm:"type:text" json:"certificateNumber"`
	Category          string     `gorm:"type:text;index" json:"category"`
	Description       string     `gorm:"type:text" json:"description"`
	IssueDate         *time.Time `gorm:"type:date" json:"issueDate,omitempty"`
	ExpiryDate        *time.Time `gorm:"type:date" json:"expiryDate,omitempty"`
	Status            string     `gorm:"type:text;not null;default:'active';index" json:"status"`
}

// Certificate is a license or certification held by the holding
type Certificate struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	EditableCertificateInfo
	Image *StoredFile `gorm:"type:jsonb" json:"image,omitempty"`

	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"createdById,omitempty"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updatedById,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Validate returns a message per invalid field
func (info *EditableCertificateInfo) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(info.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(info.Issuer) == "" {
		errs["issuer"] = "Issuer is required"
	}
	if info.Status != "" && !slices.Contains(CertificateStatuses, info.Status) {
		errs["status"] = "Status must be active, expired or revoked"
	}
	if info.IssueDate != nil && info.ExpiryDate != nil && info.ExpiryDate.Before(*info.IssueDate) {
		errs["expiryDate"] = "Expiry date must be after issue date"
	}
	return errs
}
