package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"corpsite-backend/internal/database"
	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/upload"
	"corpsite-backend/internal/utilities"
)

// ProjectCountRequest is the body of UpdateProjectCount
type ProjectCountRequest struct {
	Action string `json:"action" example:"increment"`
}

var sortColumns = map[string]string{
	"name":         "name",
	"createdAt":    "created_at",
	"projectCount": "project_count",
}

// List returns every client for the dashboard.
// @Summary List clients for admin
// @Tags Client Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param status query string false "active or inactive"
// @Param industry query string false "Industry"
// @Param search query string false "Search name and description"
// @Param sortBy query string false "name, createdAt or projectCount"
// @Param sortOrder query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utilities.SuccessResponse{data=[]model.Client} "Clients"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/clients [get]
func (cc *ClientController) List(c *gin.Context) {
	page := utilities.ParsePageQuery(c, 10, 100)
	query := cc.DB.WithContext(c.Request.Context()).Model(&model.Client{}).Scopes(listFilters(c))
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utilities.Internal(c, "Failed to count clients", err)
		return
	}

	clients := []model.Client{}
	if err := query.Order(utilities.SortClause(c, sortColumns, "created_at desc")).
		Offset(page.Offset()).Limit(page.Limit).
		Find(&clients).Error; err != nil {
		utilities.Internal(c, "Failed to fetch clients", err)
		return
	}

	utilities.OKPage(c, clients, page.Result(total))
}

// GetByID returns a client of any status.
// @Summary Get client by id for admin
// @Tags Client Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Client ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Client} "Client"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Client not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/clients/{id} [get]
func (cc *ClientController) GetByID(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var client model.Client
	if err := cc.DB.WithContext(c.Request.Context()).First(&client, id).Error; err != nil {
		utilities.LookupFailed(c, "Client not found", err)
		return
	}
	utilities.OK(c, http.StatusOK, "", client)
}

// Create adds a client with an optional logo.
// @Summary Create client
// @Description Accepts JSON or multipart form; names are unique regardless of case
// @Tags Client Admin
// @Accept json,mpfd
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param client body model.EditableClientInfo true "Client information"
// @Param logo formData file false "Logo, jpeg/jpg/png/webp up to 5MB"
// @Success 201 {object} utilities.SuccessResponse{data=model.Client} "Created client"
// @Failure 400 {object} utilities.ErrorResponse "Validation, upload error or duplicate name"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database or storage error"
// @Router /admin/clients [post]
func (cc *ClientController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var info model.EditableClientInfo
	form, ok := utilities.DecodeBody(c, &info)
	if !ok {
		return
	}
	if fields := info.Validate(); len(fields) > 0 {
		utilities.ValidationFailed(c, "Validation failed", fields)
		return
	}
	files, err := upload.Collect(form, logoRule)
	if err != nil {
		utilities.UploadFailed(c, err)
		return
	}

	if taken, err := cc.nameTaken(ctx, info.Name, 0); err != nil {
		utilities.Internal(c, "Failed to check client name", err)
		return
	} else if taken {
		duplicateName(c, nil)
		return
	}

	client := model.Client{EditableClientInfo: info, NameKey: model.ClientNameKey(info.Name)}
	client.Name = strings.TrimSpace(client.Name)
	if client.Status == "" {
		client.Status = model.ClientStatusActive
	}
	client.CreatedByID = utilities.ActorID(c)

	if client.Logo, err = cc.Uploader.SaveOne(ctx, files, logoRule); err != nil {
		utilities.UploadFailed(c, err)
		return
	}

	if err := cc.DB.WithContext(ctx).Create(&client).Error; err != nil {
		if client.Logo != nil {
			cc.Uploader.Discard(context.WithoutCancel(ctx), client.Logo.Path)
		}
		if utilities.IsUniqueViolation(err, database.ClientNameIndex) {
			duplicateName(c, err)
			return
		}
		utilities.Internal(c, "Failed to create client", err)
		return
	}

	utilities.OK(c, http.StatusCreated, "Client created", client)
}

// Update replaces the editable fields of a client; a new logo replaces the old one.
// @Summary Update client
// @Tags Client Admin
// @Accept json,mpfd
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Client ID"
// @Param client body model.EditableClientInfo true "Client information"
// @Param logo formData file false "Logo, jpeg/jpg/png/webp up to 5MB"
// @Success 200 {object} utilities.SuccessResponse{data=model.Client} "Updated client"
// @Failure 400 {object} utilities.ErrorResponse "Validation, upload error or duplicate name"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Client not found"
// @Failure 500 {object} utilities.ErrorResponse "Database or storage error"
// @Router /admin/clients/{id} [put]
func (cc *ClientController) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var info model.EditableClientInfo
	form, ok := utilities.DecodeBody(c, &info)
	if !ok {
		return
	}
	if fields := info.Validate(); len(fields) > 0 {
		utilities.ValidationFailed(c, "Validation failed", fields)
		return
	}
	files, err := upload.Collect(form, logoRule)
	if err != nil {
		utilities.UploadFailed(c, err)
		return
	}

	var client model.Client
	if err := cc.DB.WithContext(ctx).First(&client, id).Error; err != nil {
		utilities.LookupFailed(c, "Client not found", err)
		return
	}
	if taken, err := cc.nameTaken(ctx, info.Name, client.ID); err != nil {
		utilities.Internal(c, "Failed to check client name", err)
		return
	} else if taken {
		duplicateName(c, nil)
		return
	}

	if info.Status == "" {
		info.Status = client.Status
	}
	client.EditableClientInfo = info
	client.Name = strings.TrimSpace(client.Name)
	client.NameKey = model.ClientNameKey(info.Name)
	client.UpdatedByID = utilities.ActorID(c)

	oldLogo := client.Logo
	newLogo, err := cc.Uploader.SaveOne(ctx, files, logoRule)
	if err != nil {
		utilities.UploadFailed(c, err)
		return
	}
	if newLogo != nil {
		client.Logo = newLogo
	}

	omit := []string{"id", "project_count", "last_project_date", "created_by_id", "created_at"}
	if newLogo == nil {
		omit = append(omit, "logo")
	}
	if err := cc.DB.WithContext(ctx).Model(&client).Select("*").Omit(omit...).Updates(&client).Error; err != nil {
		if newLogo != nil {
			cc.Uploader.Discard(context.WithoutCancel(ctx), newLogo.Path)
		}
		if utilities.IsUniqueViolation(err, database.ClientNameIndex) {
			duplicateName(c, err)
			return
		}
		utilities.Internal(c, "Failed to update client", err)
		return
	}

	if newLogo != nil && oldLogo != nil {
		cc.Cleaner.Remove(context.WithoutCancel(ctx), middleware.GetCorrelationID(c), oldLogo.Path)
	}
	if err := cc.DB.WithContext(ctx).First(&client, id).Error; err != nil {
		utilities.LookupFailed(c, "Client not found", err)
		return
	}
	utilities.OK(c, http.StatusOK, "Client updated", client)
}

// UpdateProjectCount increments or decrements the project counter.
// @Summary Adjust client project count
// @Description increment also sets lastProjectDate; the count never drops below zero
// @Tags Client Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Client ID"
// @Param action body ProjectCountRequest true "increment or decrement"
// @Success 200 {object} utilities.SuccessResponse{data=model.Client} "Updated client"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or action"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Client not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/clients/{id}/project-count [patch]
func (cc *ClientController) UpdateProjectCount(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var req ProjectCountRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}
	if req.Action != "increment" && req.Action != "decrement" {
		utilities.ValidationFailed(c, "Validation failed", map[string]string{"action": "Action must be increment or decrement"})
		return
	}

	var client model.Client
	err := cc.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&client, id).Error; err != nil {
			return err
		}
		client.AdjustProjectCount(req.Action == "increment", time.Now())
		client.UpdatedByID = utilities.ActorID(c)
		return tx.Model(&client).
			Select("project_count", "last_project_date", "updated_by_id", "updated_at").
			Updates(&client).Error
	})
	if err != nil {
		utilities.LookupFailed(c, "Client not found", err)
		return
	}

	utilities.OK(c, http.StatusOK, "Project count updated", client)
}

// Delete removes a client and its logo.
// @Summary Delete client
// @Description Admin only; projects of the client keep existing without a client
// @Tags Client Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Client ID"
// @Success 200 {object} utilities.MessageResponse "Client deleted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Client not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/clients/{id} [delete]
func (cc *ClientController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var client model.Client
	if err := cc.DB.WithContext(ctx).First(&client, id).Error; err != nil {
		utilities.LookupFailed(c, "Client not found", err)
		return
	}
	if err := cc.DB.WithContext(ctx).Delete(&client).Error; err != nil {
		utilities.Internal(c, "Failed to delete client", err)
		return
	}

	if client.Logo != nil {
		cc.Cleaner.Remove(context.WithoutCancel(ctx), middleware.GetCorrelationID(c), client.Logo.Path)
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Success: true, Message: "Client deleted"})
}

func duplicateName(c *gin.Context, err error) {
	utilities.Fail(c, http.StatusBadRequest, utilities.KindDuplicateName, "Nama klien sudah digunakan", err)
}
