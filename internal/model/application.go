package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Application status
const (
	ApplicationStatusSubmitted   = "submitted"
	ApplicationStatusReviewing   = "reviewing"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusInterview   = "interview"
	ApplicationStatusTest        = "test"
	ApplicationStatusOffered     = "offered"
	ApplicationStatusAccepted    = "accepted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusWithdrawn   = "withdrawn"
)

// ApplicationStatuses is ordered along the hiring pipeline; the last three are terminal
var ApplicationStatuses = []string{
	ApplicationStatusSubmitted,
	ApplicationStatusReviewing,
	ApplicationStatusShortlisted,
	ApplicationStatusInterview,
	ApplicationStatusTest,
	ApplicationStatusOffered,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}

// Document slots of an application
const (
	DocumentResume       = "resume"
	DocumentCoverLetter  = "coverLetter"
	DocumentPortfolio    = "portfolio"
	DocumentCertificates = "certificates"
)

// Applicant is the personal data of the candidate
type Applicant struct {
	FullName    string     `gorm:"type:text;not null" json:"fullName"`
	Email       string     `gorm:"type:text;not null;uniqueIndex:idx_application_career_email" json:"email"`
	Phone       string     `gorm:"type:text" json:"phone"`
	Address     string     `gorm:"type:text" json:"address"`
	DateOfBirth *time.Time `gorm:"type:date" json:"dateOfBirth,omitempty"`
	Gender      string     `gorm:"type:text" json:"gender"`
}

// Education is one entry of the candidate's education history
type Education struct {
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	Major          string   `json:"major"`
	GraduationYear int      `json:"graduationYear"`
	GPA            *float64 `json:"gpa,omitempty"`
	MaxGPA         *float64 `json:"maxGpa,omitempty"`
}

// Skill is a named skill with a self-assessed level
type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Language is a spoken language with proficiency
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// PreviousPosition is a past job of the candidate
type PreviousPosition struct {
	Position    string     `json:"position"`
	Company     string     `json:"company"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description"`
}

// Experience summarises the candidate's work history
type Experience struct {
	TotalYears        float64            `json:"totalYears"`
	CurrentPosition   string             `json:"currentPosition"`
	CurrentCompany    string             `json:"currentCompany"`
	PreviousPositions []PreviousPosition `json:"previousPositions"`
}

// ExpectedSalary is the candidate's salary expectation
type ExpectedSalary struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Negotiable bool    `json:"negotiable"`
}

// ApplicationDocuments holds the uploaded files of an application
type ApplicationDocuments struct {
	Resume       *StoredFile `json:"resume,omitempty"`
	CoverLetter  *StoredFile `json:"coverLetter,omitempty"`
	Portfolio    *StoredFile `json:"portfolio,omitempty"`
	Certificates StoredFiles `json:"certificates"`
}

// Value implements driver.Valuer
func (d ApplicationDocuments) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	return string(b), err
}

// Scan implements sql.Scanner
func (d *ApplicationDocuments) Scan(value interface{}) error {
	return scanJSON(value, d)
}

// Paths returns every file path referenced by the documents
func (d ApplicationDocuments) Paths() []string {
	var paths []string
	for _, f := range []*StoredFile{d.Resume, d.CoverLetter, d.Portfolio} {
		if f != nil && f.Path != "" {
			paths = append(paths, f.Path)
		}
	}
	return append(paths, d.Certificates.Paths()...)
}

// Document returns the file held in the named slot; index selects one of the certificates
func (d ApplicationDocuments) Document(documentType string, index int) (*StoredFile, bool) {
	var f *StoredFile
	switch documentType {
	case DocumentResume:
		f = d.Resume
	case DocumentCoverLetter:
		f = d.CoverLetter
	case DocumentPortfolio:
		f = d.Portfolio
	case DocumentCertificates:
		if index < 0 || index >= len(d.Certificates) {
			return nil, false
		}
		f = &d.Certificates[index]
	default:
		return nil, false
	}
	return f, f != nil && f.Path != ""
}

// InterviewSchedule is the single scheduled interview of an application; rescheduling overwrites it
type InterviewSchedule struct {
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Interviewer string    `json:"interviewer"`
	Type        string    `json:"type"`
	Notes       string    `json:"notes"`
}

// Value implements driver.Valuer
func (s InterviewSchedule) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	return string(b), err
}

// Scan implements sql.Scanner
func (s *InterviewSchedule) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Application represents one candidate's submission against one career posting
type Application struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CareerID uint      `gorm:"not null;index;uniqueIndex:idx_application_career_email;<-:create" json:"careerId"`
	Career   *Career   `gorm:"foreignKey:CareerID;references:ID" json:"career,omitempty"`

	Applicant        Applicant                            `gorm:"embedded;embeddedPrefix:applicant_" json:"applicant"`
	Education        datatypes.JSONSlice[Education]       `gorm:"type:jsonb" json:"education"`
	Skills           datatypes.JSONSlice[Skill]           `gorm:"type:jsonb" json:"skills"`
	Languages        datatypes.JSONSlice[Language]        `gorm:"type:jsonb" json:"languages"`
	Experience       datatypes.JSONType[Experience]       `gorm:"type:jsonb" json:"experience"`
	Motivation       string                               `gorm:"type:text" json:"motivation"`
	ExpectedSalary   datatypes.JSONType[ExpectedSalary]   `gorm:"type:jsonb" json:"expectedSalary"`
	AvailabilityDate *time.Time                           `gorm:"type:date" json:"availabilityDate,omitempty"`
	Documents        ApplicationDocuments                 `gorm:"type:jsonb" json:"documents"`

	Status          string     `gorm:"type:text;not null;default:'submitted';index" json:"status"`
	ApplicationDate time.Time  `gorm:"type:timestamp;not null;index" json:"applicationDate"`
	LastUpdated     time.Time  `gorm:"type:timestamp" json:"lastUpdated"`
	UpdatedByID     *uuid.UUID `gorm:"type:uuid" json:"updatedById,omitempty"`
	UpdatedBy       *User      `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"updatedBy,omitempty"`

	ReviewNotes       []ReviewNote       `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"reviewNotes"`
	InterviewSchedule *InterviewSchedule `gorm:"type:jsonb" json:"interviewSchedule,omitempty"`
}

// ReviewNote is a timestamped admin annotation on an application
type ReviewNote struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ApplicationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"applicationId"`
	ReviewerID    *uuid.UUID `gorm:"type:uuid" json:"reviewerId,omitempty"`
	Reviewer      *User      `gorm:"foreignKey:ReviewerID;constraint:OnDelete:SET NULL" json:"reviewer,omitempty"`
	Note          string     `gorm:"type:text" json:"note"`
	Rating        *int       `gorm:"check:rating IS NULL OR (rating >= 1 AND rating <= 5)" json:"rating,omitempty"`
	Date          time.Time  `gorm:"type:timestamp;not null" json:"date"`
}

// ValidApplicationStatus reports whether status is one of ApplicationStatuses
func ValidApplicationStatus(status string) bool {
	return slices.Contains(ApplicationStatuses, status)
}

// IsTerminalStatus reports whether no further pipeline step follows status
func IsTerminalStatus(status string) bool {
	switch status {
	case ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// IsOutOfOrderTransition reports a move backwards along the pipeline or out of a terminal status.
// Such moves are still allowed but get audited.
func IsOutOfOrderTransition(from, to string) bool {
	if from == to {
		return false
	}
	if IsTerminalStatus(from) {
		return true
	}
	if IsTerminalStatus(to) {
		return false
	}
	return slices.Index(ApplicationStatuses, to) < slices.Index(ApplicationStatuses, from)
}

// UpdateStatus sets the new status and stamps the audit fields.
// It returns whether the transition was out of order.
func (a *Application) UpdateStatus(status string, by uuid.UUID, now time.Time) (bool, error) {
	if !ValidApplicationStatus(status) {
		return false, fmt.Errorf("invalid status: %s", status)
	}
	outOfOrder := IsOutOfOrderTransition(a.Status, status)
	a.Status = status
	a.LastUpdated = now
	a.UpdatedByID = &by
	return outOfOrder, nil
}

// ValidRating reports whether rating is absent or within 1..5
func ValidRating(rating *int) bool {
	return rating == nil || (*rating >= 1 && *rating <= 5)
}
