package application

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"corpsite-backend/internal/database"
	"corpsite-backend/internal/metrics"
	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/upload"
	"corpsite-backend/internal/utilities"
)

// Refusal reasons recorded in metrics
const (
	refusedFormat    = "invalid_format"
	refusedInvalid   = "validation"
	refusedUpload    = "upload"
	refusedInactive  = "inactive_career"
	refusedDuplicate = "duplicate"
)

// SubmittedApplication is the response of a successful submission
type SubmittedApplication struct {
	model.Application
	Career *CareerSummary `json:"career"`
}

// StatusView is what an applicant may see about their own application
type StatusView struct {
	ID                uuid.UUID                `json:"id"`
	Status            string                   `json:"status"`
	ApplicationDate   time.Time                `json:"applicationDate"`
	LastUpdated       time.Time                `json:"lastUpdated"`
	Career            *CareerSummary           `json:"career"`
	InterviewSchedule *model.InterviewSchedule `json:"interviewSchedule,omitempty"`
}

// Submit handles a public job application.
// @Summary Apply to an active career posting
// @Description Nested fields (education, skills, languages, experience, expectedSalary) are JSON-encoded strings.
// @Description Applicant data may be sent as applicant.* form keys or as one JSON applicant field.
// @Tags Application
// @Accept mpfd
// @Produce json
// @Param id path int true "Career ID"
// @Param applicant.fullName formData string true "Full name"
// @Param applicant.email formData string true "Email"
// @Param applicant.phone formData string true "Phone number"
// @Param education formData string false "JSON array of education entries"
// @Param skills formData string false "JSON array of skills"
// @Param languages formData string false "JSON array of languages"
// @Param experience formData string false "JSON experience object"
// @Param expectedSalary formData string false "JSON expected salary object"
// @Param motivation formData string false "Motivation letter"
// @Param availabilityDate formData string false "Date the applicant can start"
// @Param resume formData file true "Resume, pdf/doc/docx up to 10MB"
// @Param coverLetter formData file false "Cover letter, pdf/doc/docx up to 10MB"
// @Param portfolio formData file false "Portfolio, pdf/zip/image up to 10MB"
// @Param certificates formData file false "Up to 10 certificates, pdf/image up to 10MB each"
// @Success 201 {object} utilities.SuccessResponse{data=SubmittedApplication} "Application submitted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid format, validation, upload error or duplicate submission"
// @Failure 404 {object} utilities.ErrorResponse "Posting not found or inactive"
// @Failure 429 {object} utilities.ErrorResponse "Too many requests"
// @Failure 500 {object} utilities.ErrorResponse "Database or storage error"
// @Router /careers/{id}/apply [post]
func (ac *ApplicationController) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	log := middleware.LoggerFromContext(c)

	careerID, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			metrics.ApplicationRefused(refusedUpload)
			utilities.UploadFailed(c, err)
			return
		}
		metrics.ApplicationRefused(refusedFormat)
		utilities.Fail(c, http.StatusBadRequest, utilities.KindInvalidFormat, "Data formulir tidak valid", err)
		return
	}

	app, err := parseSubmission(form)
	if err != nil {
		metrics.ApplicationRefused(refusedFormat)
		utilities.Fail(c, http.StatusBadRequest, utilities.KindInvalidFormat, "Format data tidak valid", err)
		return
	}
	var career model.Career
	if err := ac.DB.WithContext(ctx).
		Where("id = ? AND status = ?", careerID, model.CareerStatusActive).
		First(&career).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.ApplicationRefused(refusedInactive)
		}
		utilities.LookupFailed(c, notFoundCareer, err)
		return
	}

	if fields := validateApplicant(app.Applicant); len(fields) > 0 {
		metrics.ApplicationRefused(refusedInvalid)
		utilities.ValidationFailed(c, "Data lamaran tidak lengkap", fields)
		return
	}

	files, err := upload.Collect(form, documentRules...)
	if err != nil {
		metrics.ApplicationRefused(refusedUpload)
		utilities.UploadFailed(c, err)
		return
	}

	var existing int64
	if err := ac.DB.WithContext(ctx).Model(&model.Application{}).
		Where("career_id = ? AND applicant_email = ?", careerID, app.Applicant.Email).
		Count(&existing).Error; err != nil {
		utilities.Internal(c, "Gagal memeriksa lamaran", err)
		return
	}
	if existing > 0 {
		duplicateSubmission(c, nil)
		return
	}

	docs, err := ac.saveDocuments(ctx, files)
	if err != nil {
		metrics.ApplicationRefused(refusedUpload)
		utilities.UploadFailed(c, err)
		return
	}

	now := time.Now()
	app.ID = uuid.New()
	app.CareerID = career.ID
	app.Documents = docs
	app.Status = model.ApplicationStatusSubmitted
	app.ApplicationDate = now
	app.LastUpdated = now

	err = ac.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&app).Error; err != nil {
			return err
		}
		return tx.Model(&model.Career{}).Where("id = ?", career.ID).
			UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
	})
	if err != nil {
		ac.Uploader.Discard(context.WithoutCancel(ctx), docs.Paths()...)
		if utilities.IsUniqueViolation(err, database.ApplicationUniqueIndex) {
			duplicateSubmission(c, err)
			return
		}
		utilities.Internal(c, "Gagal menyimpan lamaran", err)
		return
	}

	metrics.ApplicationSubmitted()
	log.Info("application submitted",
		slog.String("application_id", app.ID.String()),
		slog.Uint64("career_id", uint64(career.ID)),
		slog.Int("files", len(docs.Paths())),
	)

	utilities.OK(c, http.StatusCreated, "Lamaran berhasil dikirim", SubmittedApplication{
		Application: app,
		Career:      summarize(&career),
	})
}

// GetStatus returns the narrow status view of one application.
// @Summary Check application status
// @Description The application is matched by id and the applicant's email
// @Tags Application
// @Produce json
// @Param id path string true "Application ID"
// @Param email query string true "Applicant email"
// @Success 200 {object} utilities.SuccessResponse{data=StatusView} "Application status"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or missing email"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id}/status [get]
func (ac *ApplicationController) GetStatus(c *gin.Context) {
	id, ok := utilities.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		utilities.ValidationFailed(c, "Email wajib diisi", map[string]string{"email": "Email wajib diisi"})
		return
	}

	var app model.Application
	if err := ac.DB.WithContext(c.Request.Context()).
		Preload("Career").
		Where("id = ? AND applicant_email = ?", id, email).
		First(&app).Error; err != nil {
		utilities.LookupFailed(c, "Lamaran tidak ditemukan", err)
		return
	}

	utilities.OK(c, http.StatusOK, "", StatusView{
		ID:                app.ID,
		Status:            app.Status,
		ApplicationDate:   app.ApplicationDate,
		LastUpdated:       app.LastUpdated,
		Career:            summarize(app.Career),
		InterviewSchedule: app.InterviewSchedule,
	})
}

const notFoundCareer = "Lowongan tidak ditemukan atau sudah tidak aktif"

func duplicateSubmission(c *gin.Context, err error) {
	metrics.ApplicationRefused(refusedDuplicate)
	utilities.Fail(c, http.StatusBadRequest, utilities.KindDuplicateSubmission, "Anda sudah mengirim lamaran untuk posisi ini", err)
}

// saveDocuments stores every uploaded document; on failure the already stored ones are removed
func (ac *ApplicationController) saveDocuments(ctx context.Context, files map[string][]*multipart.FileHeader) (model.ApplicationDocuments, error) {
	docs := model.ApplicationDocuments{Certificates: model.StoredFiles{}}
	slots := []struct {
		rule upload.Rule
		dst  **model.StoredFile
	}{
		{resumeRule, &docs.Resume},
		{coverLetterRule, &docs.CoverLetter},
		{portfolioRule, &docs.Portfolio},
	}
	for _, s := range slots {
		sf, err := ac.Uploader.SaveOne(ctx, files, s.rule)
		if err != nil {
			ac.Uploader.Discard(context.WithoutCancel(ctx), docs.Paths()...)
			return docs, err
		}
		*s.dst = sf
	}

	certs, err := ac.Uploader.SaveAll(ctx, files[certificatesRule.Field], certificatesRule)
	if err != nil {
		ac.Uploader.Discard(context.WithoutCancel(ctx), docs.Paths()...)
		return docs, err
	}
	docs.Certificates = certs
	return docs, nil
}
