package model

import (
	"database/sql/driver"
	"encoding/json"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Contact message status
const (
	ContactStatusUnread   = "unread"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
	ContactStatusSpam     = "spam"
)

// ContactStatuses lists every valid contact status
var ContactStatuses = []string{ContactStatusUnread, ContactStatusRead, ContactStatusReplied, ContactStatusArchived, ContactStatusSpam}

// Contact priority
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Priorities lists every valid contact priority
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// ContactNote is an internal note left by staff on a contact message
type ContactNote struct {
	AuthorID uuid.UUID `json:"authorId"`
	Author   string    `json:"author"`
	Note     string    `json:"note"`
	Date     time.Time `json:"date"`
}

// ContactReply records the answer sent to the visitor
type ContactReply struct {
	Message     string    `json:"message"`
	RepliedByID uuid.UUID `json:"repliedById"`
	RepliedBy   string    `json:"repliedBy"`
	RepliedAt   time.Time `json:"repliedAt"`
}

// Value implements driver.Valuer
func (r ContactReply) Value() (driver.Value, error) {
	b, err := json.Marshal(r)
	return string(b), err
}

// Scan implements sql.Scanner
func (r *ContactReply) Scan(value interface{}) error {
	return scanJSON(value, r)
}

// ContactForm is what a visitor submits through the public contact form
type ContactForm struct {
	Name    string `gorm:"type:text;not null" json:"name" binding:"required"`
	Email   string `gorm:"type:text;not null;index" json:"email" binding:"required"`
	Phone   string `gorm:"type:text" json:"phone"`
	Company string `gorm:"type:text" json:"company"`
	Subject string `gorm:"type:text;not null" json:"subject" binding:"required"`
	Message string `gorm:"type:text;not null" json:"message" binding:"required"`
}

// Contact is a message received through the public contact form
type Contact struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ContactForm
	Status       string                           `gorm:"type:text;not null;default:'unread';index" json:"status"`
	Priority     string                           `gorm:"type:text;not null;default:'medium';index" json:"priority"`
	AssignedToID *uuid.UUID                       `gorm:"type:uuid" json:"assignedToId,omitempty"`
	AssignedTo   *User                            `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"assignedTo,omitempty"`
	ReadByID     *uuid.UUID                       `gorm:"type:uuid" json:"readById,omitempty"`
	ReadAt       *time.Time                       `gorm:"type:timestamp" json:"readAt,omitempty"`
	Notes        datatypes.JSONSlice[ContactNote] `gorm:"type:jsonb" json:"notes"`
	Reply        *ContactReply                    `gorm:"type:jsonb" json:"reply,omitempty"`
	Tags         pq.StringArray                   `gorm:"type:text[]" json:"tags"`
	IPAddress    string                           `gorm:"type:text" json:"ipAddress"`
	UserAgent    string                           `gorm:"type:text" json:"userAgent"`
	CreatedAt    time.Time                        `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time                        `json:"updatedAt"`
}

// Validate checks the form beyond the required binding tags
func (f *ContactForm) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Nama wajib diisi"
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		errs["email"] = "Format email tidak valid"
	}
	if strings.TrimSpace(f.Subject) == "" {
		errs["subject"] = "Subjek wajib diisi"
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = "Pesan wajib diisi"
	}
	return errs
}

// ValidContactStatus reports whether status is one of ContactStatuses
func ValidContactStatus(status string) bool {
	return slices.Contains(ContactStatuses, status)
}

// ValidPriority reports whether priority is one of Priorities
func ValidPriority(priority string) bool {
	return slices.Contains(Priorities, priority)
}

// SetStatus changes the status and stamps read info on the first transition to read
func (c *Contact) SetStatus(status string, by uuid.UUID, now time.Time) {
	c.Status = status
	if status == ContactStatusRead && c.ReadAt == nil {
		c.ReadAt = &now
		c.ReadByID = &by
	}
}
