package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"corpsite-backend/internal/metrics"
	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/storage"
	"corpsite-backend/internal/utilities"
)

// StatusUpdateRequest is the body of a status change
type StatusUpdateRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
	Rating *int   `json:"rating"`
}

// NoteRequest is the body of a review note
type NoteRequest struct {
	Note   string `json:"note"`
	Rating *int   `json:"rating"`
}

// InterviewRequest is the body of scheduleInterview
type InterviewRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Interviewer string `json:"interviewer"`
	Type        string `json:"type"`
	Notes       string `json:"notes"`
}

// StatusUpdateResult is the application after a status change
type StatusUpdateResult struct {
	model.Application
	OutOfOrder bool `json:"outOfOrder"`
}

// AdminApplicationList is the data of the admin application listing
type AdminApplicationList struct {
	Applications    []model.Application `json:"applications"`
	StatusBreakdown map[string]int64    `json:"statusBreakdown"`
}

var sortColumns = map[string]string{
	"applicationDate": "application_date",
	"lastUpdated":     "last_updated",
	"status":          "status",
	"fullName":        "applicant_full_name",
}

// List returns applications for review.
// @Summary List applications
// @Tags Application Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param status query string false "Application status"
// @Param careerId query int false "Career ID"
// @Param search query string false "Search applicant name and email, case insensitive"
// @Param sortBy query string false "applicationDate, lastUpdated, status or fullName"
// @Param sortOrder query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utilities.SuccessResponse{data=AdminApplicationList} "Applications with status breakdown"
// @Failure 400 {object} utilities.ErrorResponse "Invalid careerId"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/applications [get]
func (ac *ApplicationController) List(c *gin.Context) {
	ctx := c.Request.Context()
	page := utilities.ParsePageQuery(c, 10, 100)

	scope, ok := careerScope(c)
	if !ok {
		return
	}

	query := ac.DB.WithContext(ctx).Model(&model.Application{}).Scopes(scope)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("applicant_full_name ILIKE @q OR applicant_email ILIKE @q", map[string]interface{}{"q": "%" + search + "%"})
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utilities.Internal(c, "Failed to count applications", err)
		return
	}

	resp := AdminApplicationList{Applications: []model.Application{}, StatusBreakdown: map[string]int64{}}
	if err := query.
		Preload("Career", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "location", "department", "status")
		}).
		Order(utilities.SortClause(c, sortColumns, "application_date desc")).
		Offset(page.Offset()).Limit(page.Limit).
		Find(&resp.Applications).Error; err != nil {
		utilities.Internal(c, "Failed to fetch applications", err)
		return
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := ac.DB.WithContext(ctx).Model(&model.Application{}).Scopes(scope).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		utilities.Internal(c, "Failed to aggregate applications", err)
		return
	}
	for _, s := range model.ApplicationStatuses {
		resp.StatusBreakdown[s] = 0
	}
	for _, row := range rows {
		resp.StatusBreakdown[row.Status] = row.Count
	}

	utilities.OKPage(c, resp, page.Result(total))
}

// GetByID returns the full application.
// @Summary Get application by id
// @Tags Application Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Application ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Application} "Application with career, updatedBy and review notes"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/applications/{id} [get]
func (ac *ApplicationController) GetByID(c *gin.Context) {
	id, ok := utilities.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	app, err := ac.load(c.Request.Context(), id)
	if err != nil {
		utilities.LookupFailed(c, "Application not found", err)
		return
	}
	utilities.OK(c, http.StatusOK, "", app)
}

// UpdateStatus moves an application to another status.
// @Summary Update application status
// @Description Any status may follow any other; backward moves and moves out of a terminal status are flagged with outOfOrder.
// @Description A note or rating supplied alongside is appended as a review note.
// @Tags Application Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Application ID"
// @Param status body StatusUpdateRequest true "New status with optional note and rating"
// @Success 200 {object} utilities.SuccessResponse{data=StatusUpdateResult} "Updated application"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id, status or rating"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/applications/{id}/status [patch]
func (ac *ApplicationController) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req StatusUpdateRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}
	fields := map[string]string{}
	if !model.ValidApplicationStatus(req.Status) {
		fields["status"] = "Status must be one of " + strings.Join(model.ApplicationStatuses, ", ")
	}
	if !model.ValidRating(req.Rating) {
		fields["rating"] = "Rating must be between 1 and 5"
	}
	if len(fields) > 0 {
		utilities.ValidationFailed(c, "Validation failed", fields)
		return
	}

	user, err := utilities.ExtractUser(c)
	if err != nil {
		utilities.Fail(c, http.StatusUnauthorized, utilities.KindUnauthorized, err.Error(), nil)
		return
	}

	var app model.Application
	var previous string
	var outOfOrder bool
	err = ac.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&app, "id = ?", id).Error; err != nil {
			return err
		}
		previous = app.Status
		outOfOrder, _ = app.UpdateStatus(req.Status, user.ID, time.Now())

		if err := tx.Model(&app).
			Select("status", "last_updated", "updated_by_id").
			Updates(&app).Error; err != nil {
			return err
		}
		if strings.TrimSpace(req.Note) == "" && req.Rating == nil {
			return nil
		}
		return tx.Create(&model.ReviewNote{
			ApplicationID: app.ID,
			ReviewerID:    &user.ID,
			Note:          strings.TrimSpace(req.Note),
			Rating:        req.Rating,
			Date:          app.LastUpdated,
		}).Error
	})
	if err != nil {
		utilities.LookupFailed(c, "Application not found", err)
		return
	}

	metrics.StatusTransition(req.Status, outOfOrder)
	if outOfOrder {
		middleware.LoggerFromContext(c).Warn("out-of-order application status transition",
			slog.String("application_id", app.ID.String()),
			slog.String("from", previous),
			slog.String("to", req.Status),
			slog.String("actor_id", user.ID.String()),
			slog.String("actor", user.Username),
		)
	}

	full, err := ac.load(ctx, id)
	if err != nil {
		utilities.Internal(c, "Failed to reload application", err)
		return
	}
	utilities.OK(c, http.StatusOK, "Application status updated", StatusUpdateResult{Application: full, OutOfOrder: outOfOrder})
}

// AddNote appends a review note without changing the status.
// @Summary Add review note to application
// @Tags Application Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Application ID"
// @Param note body NoteRequest true "Note with optional rating"
// @Success 201 {object} utilities.SuccessResponse{data=model.ReviewNote} "Created note"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id, empty note or rating"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/applications/{id}/notes [post]
func (ac *ApplicationController) AddNote(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req NoteRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}
	fields := map[string]string{}
	if strings.TrimSpace(req.Note) == "" && req.Rating == nil {
		fields["note"] = "Note or rating is required"
	}
	if !model.ValidRating(req.Rating) {
		fields["rating"] = "Rating must be between 1 and 5"
	}
	if len(fields) > 0 {
		utilities.ValidationFailed(c, "Validation failed", fields)
		return
	}

	var app model.Application
	if err := ac.DB.WithContext(ctx).Select("id").First(&app, "id = ?", id).Error; err != nil {
		utilities.LookupFailed(c, "Application not found", err)
		return
	}

	note := model.ReviewNote{
		ApplicationID: app.ID,
		ReviewerID:    utilities.ActorID(c),
		Note:          strings.TrimSpace(req.Note),
		Rating:        req.Rating,
		Date:          time.Now(),
	}
	if err := ac.DB.WithContext(ctx).Create(&note).Error; err != nil {
		utilities.Internal(c, "Failed to add note", err)
		return
	}
	if err := ac.DB.WithContext(ctx).Preload("Reviewer").First(&note, note.ID).Error; err != nil {
		utilities.Internal(c, "Failed to reload note", err)
		return
	}

	utilities.OK(c, http.StatusCreated, "Note added", note)
}

// ScheduleInterview sets the interview of an application.
// @Summary Schedule interview
// @Description Rescheduling replaces the previous schedule
// @Tags Application Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Application ID"
// @Param interview body InterviewRequest true "Interview details; date is YYYY-MM-DD or RFC 3339"
// @Success 200 {object} utilities.SuccessResponse{data=model.Application} "Updated application"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or date"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/applications/{id}/schedule-interview [post]
func (ac *ApplicationController) ScheduleInterview(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req InterviewRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}
	date, err := utilities.ParseDate(req.Date)
	if err != nil {
		utilities.ValidationFailed(c, "Validation failed", map[string]string{"date": "Date must be YYYY-MM-DD or RFC 3339"})
		return
	}

	var app model.Application
	if err := ac.DB.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		utilities.LookupFailed(c, "Application not found", err)
		return
	}

	app.InterviewSchedule = &model.InterviewSchedule{
		Date:        date,
		Time:        strings.TrimSpace(req.Time),
		Location:    strings.TrimSpace(req.Location),
		Interviewer: strings.TrimSpace(req.Interviewer),
		Type:        strings.TrimSpace(req.Type),
		Notes:       strings.TrimSpace(req.Notes),
	}
	app.LastUpdated = time.Now()
	app.UpdatedByID = utilities.ActorID(c)

	if err := ac.DB.WithContext(ctx).Model(&app).
		Select("interview_schedule", "last_updated", "updated_by_id").
		Updates(&app).Error; err != nil {
		utilities.Internal(c, "Failed to schedule interview", err)
		return
	}

	full, err := ac.load(ctx, id)
	if err != nil {
		utilities.Internal(c, "Failed to reload application", err)
		return
	}
	utilities.OK(c, http.StatusOK, "Interview scheduled", full)
}

// Delete removes an application and its documents.
// @Summary Delete application
// @Description Admin only; the posting's application count is decremented in the same transaction
// @Tags Application Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Application ID"
// @Success 200 {object} utilities.MessageResponse "Application deleted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/applications/{id} [delete]
func (ac *ApplicationController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var app model.Application
	err := ac.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&app, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&app).Error; err != nil {
			return err
		}
		return tx.Model(&model.Career{}).Where("id = ?", app.CareerID).
			UpdateColumn("application_count", gorm.Expr("GREATEST(application_count - 1, 0)")).Error
	})
	if err != nil {
		utilities.LookupFailed(c, "Application not found", err)
		return
	}

	if ac.Cleaner != nil {
		ac.Cleaner.Remove(context.WithoutCancel(ctx), middleware.GetCorrelationID(c), app.Documents.Paths()...)
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Success: true, Message: "Application deleted"})
}

// DownloadDocument streams one uploaded document.
// @Summary Download application document
// @Tags Application Admin
// @Produce octet-stream
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Application ID"
// @Param documentType path string true "resume, coverLetter, portfolio or certificates"
// @Param index query int false "Certificate index" default(0)
// @Success 200 {file} binary "Document bytes"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id, document type or index"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application, document or file not found"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /admin/applications/{id}/documents/{documentType} [get]
func (ac *ApplicationController) DownloadDocument(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	documentType := c.Param("documentType")
	switch documentType {
	case model.DocumentResume, model.DocumentCoverLetter, model.DocumentPortfolio, model.DocumentCertificates:
	default:
		utilities.ValidationFailed(c, "Invalid document type", map[string]string{
			"documentType": "Must be resume, coverLetter, portfolio or certificates",
		})
		return
	}
	index := 0
	if raw := c.Query("index"); raw != "" {
		var err error
		if index, err = strconv.Atoi(raw); err != nil || index < 0 {
			utilities.ValidationFailed(c, "Invalid index", map[string]string{"index": "Index must be a non-negative number"})
			return
		}
	}

	var app model.Application
	if err := ac.DB.WithContext(ctx).Select("id", "documents").First(&app, "id = ?", id).Error; err != nil {
		utilities.LookupFailed(c, "Application not found", err)
		return
	}

	doc, found := app.Documents.Document(documentType, index)
	if !found {
		utilities.NotFound(c, "Document not found")
		return
	}

	rc, size, err := ac.Store.Open(ctx, doc.Path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utilities.NotFound(c, "File not found")
			return
		}
		utilities.Internal(c, "Failed to open document", err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, size, doc.Mimetype, rc, map[string]string{
		"Content-Disposition": attachment(doc.Filename),
	})
}

func (ac *ApplicationController) load(ctx context.Context, id interface{}) (model.Application, error) {
	var app model.Application
	err := ac.DB.WithContext(ctx).
		Preload("Career").
		Preload("UpdatedBy").
		Preload("ReviewNotes", func(db *gorm.DB) *gorm.DB {
			return db.Order("date asc, id asc")
		}).
		Preload("ReviewNotes.Reviewer").
		First(&app, "id = ?", id).Error
	return app, err
}

// careerScope filters by the careerId query parameter
func careerScope(c *gin.Context) (func(*gorm.DB) *gorm.DB, bool) {
	raw := c.Query("careerId")
	if raw == "" {
		return func(db *gorm.DB) *gorm.DB { return db }, true
	}
	careerID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utilities.InvalidID(c, err)
		return nil, false
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("applications.career_id = ?", careerID)
	}, true
}

func attachment(filename string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '\r', '\n':
			return '_'
		}
		return r
	}, filename)
	return fmt.Sprintf(`attachment; filename="%s"`, name)
}
