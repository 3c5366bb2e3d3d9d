// Package application provides HTTP handlers for career applications.
package application

import (
	"corpsite-backend/internal/database"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/storage"
	"corpsite-backend/internal/tasks"
	"corpsite-backend/internal/upload"
)

// ApplicationController handles application intake and review endpoints
type ApplicationController struct {
	DB       *database.DBinstanceStruct
	Uploader *upload.Uploader
	Store    storage.FileStore
	Cleaner  *tasks.Cleaner
}

// NewApplicationController creates a new instance of ApplicationController
func NewApplicationController(db *database.DBinstanceStruct, uploader *upload.Uploader, cleaner *tasks.Cleaner) *ApplicationController {
	return &ApplicationController{
		DB:       db,
		Uploader: uploader,
		Store:    uploader.Store,
		Cleaner:  cleaner,
	}
}

const storePrefix = "applications"

// Upload rules of the public submission form
var (
	resumeRule = upload.Rule{
		Field: model.DocumentResume, MaxSize: upload.DocumentSize, MaxCount: 1,
		Extensions: upload.DocumentExtensions, Prefix: storePrefix, Required: true,
	}
	coverLetterRule = upload.Rule{
		Field: model.DocumentCoverLetter, MaxSize: upload.DocumentSize, MaxCount: 1,
		Extensions: upload.DocumentExtensions, Prefix: storePrefix,
	}
	portfolioRule = upload.Rule{
		Field: model.DocumentPortfolio, MaxSize: upload.DocumentSize, MaxCount: 1,
		Extensions: upload.PortfolioExtensions, Prefix: storePrefix,
	}
	certificatesRule = upload.Rule{
		Field: model.DocumentCertificates, MaxSize: upload.DocumentSize, MaxCount: 10,
		Extensions: upload.CertFileExtensions, Prefix: storePrefix,
	}
	documentRules = []upload.Rule{resumeRule, coverLetterRule, portfolioRule, certificatesRule}
)

// MaxSubmissionBytes is the largest set of documents one submission may carry
func MaxSubmissionBytes() int64 {
	return upload.MaxBytes(documentRules...)
}

// CareerSummary is the part of a posting shown next to an application
type CareerSummary struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Location   string `json:"location"`
	Department string `json:"department,omitempty"`
}

func summarize(c *model.Career) *CareerSummary {
	if c == nil {
		return nil
	}
	return &CareerSummary{ID: c.ID, Title: c.Title, Location: c.Location, Department: c.Department}
}
