package career

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// CareerRequest is the body of create and update
type CareerRequest struct {
	model.EditableCareerInfo
	Status string `json:"status"`
}

// StatusRequest is the body of a status change
type StatusRequest struct {
	Status string `json:"status"`
}

// StatusCount is one row of a status breakdown
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AdminCareerList is the data of the admin career listing
type AdminCareerList struct {
	Careers           []model.Career   `json:"careers"`
	StatusBreakdown   map[string]int64 `json:"statusBreakdown"`
	TotalApplications int64            `json:"totalApplications"`
}

// counterColumns are maintained by views and submissions, never by a full update
var counterColumns = []string{"id", "views", "application_count", "created_by_id", "created_at"}

var sortColumns = map[string]string{
	"createdAt":        "created_at",
	"updatedAt":        "updated_at",
	"title":            "title",
	"publishDate":      "publish_date",
	"closeDate":        "close_date",
	"views":            "views",
	"applicationCount": "application_count",
}

// List returns every posting regardless of status.
// @Summary List career postings for admin
// @Tags Career Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param status query string false "Posting status"
// @Param department query string false "Department, must exactly match"
// @Param search query string false "Search title and description, case insensitive"
// @Param sortBy query string false "createdAt, updatedAt, title, publishDate, closeDate, views or applicationCount"
// @Param sortOrder query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utilities.SuccessResponse{data=AdminCareerList} "Postings with status breakdown"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Role not permitted"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/careers [get]
func (cc *CareerController) List(c *gin.Context) {
	ctx := c.Request.Context()
	page := utilities.ParsePageQuery(c, 10, 100)

	query := cc.DB.WithContext(ctx).Model(&model.Career{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if department := c.Query("department"); department != "" {
		query = query.Where("department = ?", department)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("title ILIKE @q OR description ILIKE @q", map[string]interface{}{"q": "%" + search + "%"})
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utilities.Internal(c, "Failed to count careers", err)
		return
	}

	resp := AdminCareerList{Careers: []model.Career{}, StatusBreakdown: map[string]int64{}}
	if err := query.Preload("CreatedBy").
		Order(utilities.SortClause(c, sortColumns, "created_at desc")).
		Offset(page.Offset()).Limit(page.Limit).
		Find(&resp.Careers).Error; err != nil {
		utilities.Internal(c, "Failed to fetch careers", err)
		return
	}

	var rows []StatusCount
	if err := cc.DB.WithContext(ctx).Model(&model.Career{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		utilities.Internal(c, "Failed to aggregate careers", err)
		return
	}
	for _, s := range model.CareerStatuses {
		resp.StatusBreakdown[s] = 0
	}
	for _, row := range rows {
		resp.StatusBreakdown[row.Status] = row.Count
	}

	if err := cc.DB.WithContext(ctx).Model(&model.Application{}).Count(&resp.TotalApplications).Error; err != nil {
		utilities.Internal(c, "Failed to count applications", err)
		return
	}

	utilities.OKPage(c, resp, page.Result(total))
}

// GetByID returns a posting with its applications.
// @Summary Get career posting by id for admin
// @Tags Career Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Career ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Career} "Posting with applications"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Posting not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/careers/{id} [get]
func (cc *CareerController) GetByID(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var career model.Career
	if err := cc.DB.WithContext(c.Request.Context()).
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("application_date desc")
		}).
		Preload("CreatedBy").
		Preload("UpdatedBy").
		First(&career, id).Error; err != nil {
		utilities.LookupFailed(c, "Career not found", err)
		return
	}

	utilities.OK(c, http.StatusOK, "", career)
}

// Create adds a new posting.
// @Summary Create career posting
// @Description title, location, description and closeDate are required; status defaults to draft
// @Tags Career Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param career body CareerRequest true "Posting information"
// @Success 201 {object} utilities.SuccessResponse{data=model.Career} "Created posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid body or validation error"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/careers [post]
func (cc *CareerController) Create(c *gin.Context) {
	var req CareerRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}

	career := model.Career{EditableCareerInfo: req.EditableCareerInfo}
	if !applyRequest(c, &career, req, model.CareerStatusDraft) {
		return
	}
	career.CreatedByID = utilities.ActorID(c)

	if err := cc.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Create(&career).Error; err != nil {
		utilities.Internal(c, "Failed to create career", err)
		return
	}

	utilities.OK(c, http.StatusCreated, "Career created", career)
}

// Update replaces the editable fields of a posting.
// @Summary Update career posting
// @Tags Career Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Career ID"
// @Param career body CareerRequest true "Posting information"
// @Success 200 {object} utilities.SuccessResponse{data=model.Career} "Updated posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id, body or validation error"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Posting not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/careers/{id} [put]
func (cc *CareerController) Update(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var req CareerRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}

	var career model.Career
	if err := cc.DB.WithContext(c.Request.Context()).First(&career, id).Error; err != nil {
		utilities.LookupFailed(c, "Career not found", err)
		return
	}

	career.EditableCareerInfo = req.EditableCareerInfo
	if !applyRequest(c, &career, req, career.Status) {
		return
	}
	career.UpdatedByID = utilities.ActorID(c)

	db := cc.DB.WithContext(c.Request.Context())
	if err := db.Model(&career).Select("*").Omit(append(counterColumns, clause.Associations)...).Updates(&career).Error; err != nil {
		utilities.Internal(c, "Failed to update career", err)
		return
	}
	if err := db.First(&career, id).Error; err != nil {
		utilities.LookupFailed(c, "Career not found", err)
		return
	}

	utilities.OK(c, http.StatusOK, "Career updated", career)
}

// UpdateStatus changes only the status of a posting.
// @Summary Update career posting status
// @Description Becoming active for the first time sets publishDate
// @Tags Career Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Career ID"
// @Param status body StatusRequest true "draft, active, closed or archived"
// @Success 200 {object} utilities.SuccessResponse{data=model.Career} "Updated posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or status"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Posting not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/careers/{id}/status [patch]
func (cc *CareerController) UpdateStatus(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}
	if !model.ValidCareerStatus(req.Status) {
		utilities.ValidationFailed(c, "Invalid status", map[string]string{
			"status": "Status must be one of " + strings.Join(model.CareerStatuses, ", "),
		})
		return
	}

	var career model.Career
	if err := cc.DB.WithContext(c.Request.Context()).First(&career, id).Error; err != nil {
		utilities.LookupFailed(c, "Career not found", err)
		return
	}

	_ = career.SetStatus(req.Status, time.Now())
	career.UpdatedByID = utilities.ActorID(c)

	if err := cc.DB.WithContext(c.Request.Context()).Model(&career).
		Select("status", "publish_date", "updated_by_id", "updated_at").
		Updates(&career).Error; err != nil {
		utilities.Internal(c, "Failed to update career status", err)
		return
	}

	utilities.OK(c, http.StatusOK, "Career status updated", career)
}

// Delete removes a posting, its applications and their uploaded documents.
// @Summary Delete career posting
// @Description Admin only; applications of the posting and their files are removed too
// @Tags Career Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Career ID"
// @Success 200 {object} utilities.MessageResponse "Posting deleted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Posting not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/careers/{id} [delete]
func (cc *CareerController) Delete(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var paths []string
	var removed int
	err := cc.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var career model.Career
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&career, id).Error; err != nil {
			return err
		}

		var applications []model.Application
		if err := tx.Select("id", "documents").Where("career_id = ?", id).Find(&applications).Error; err != nil {
			return err
		}
		for _, a := range applications {
			paths = append(paths, a.Documents.Paths()...)
		}
		removed = len(applications)

		if err := tx.Where("career_id = ?", id).Delete(&model.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&career).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utilities.NotFound(c, "Career not found")
			return
		}
		utilities.Internal(c, "Failed to delete career", err)
		return
	}

	middleware.LoggerFromContext(c).Info("career deleted",
		slog.Uint64("career_id", uint64(id)),
		slog.Int("applications", removed),
		slog.Int("files", len(paths)),
	)
	if cc.Cleaner != nil {
		cc.Cleaner.Remove(context.WithoutCancel(c.Request.Context()), middleware.GetCorrelationID(c), paths...)
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Success: true, Message: "Career deleted"})
}

// applyRequest validates the body and applies the status, aborting on failure
func applyRequest(c *gin.Context, career *model.Career, req CareerRequest, fallbackStatus string) bool {
	fields := req.EditableCareerInfo.Validate()
	status := req.Status
	if status == "" {
		status = fallbackStatus
	}
	if !model.ValidCareerStatus(status) {
		fields["status"] = "Status must be one of " + strings.Join(model.CareerStatuses, ", ")
	}
	if len(fields) > 0 {
		utilities.ValidationFailed(c, "Validation failed", fields)
		return false
	}
	_ = career.SetStatus(status, time.Now())
	return true
}
