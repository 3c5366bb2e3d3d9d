package project

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/upload"
	"corpsite-backend/internal/utilities"
)

// List returns projects for the dashboard.
// @Summary List projects for admin
// @Tags Project Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param category query string false "Category"
// @Param status query string false "planning, ongoing, completed or on-hold"
// @Param clientId query int false "Client ID"
// @Param companyId query int false "Company ID"
// @Param search query string false "Search title, description and location"
// @Param sortBy query string false "title, createdAt, startDate or value"
// @Param sortOrder query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utilities.SuccessResponse{data=[]model.Project} "Projects"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/projects [get]
func (pc *ProjectController) List(c *gin.Context) {
	pc.list(c, 10, utilities.SortClause(c, sortColumns, "created_at desc"))
}

// GetByID returns one project.
// @Summary Get project by id for admin
// @Tags Project Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Project ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Project} "Project"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Project not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/projects/{id} [get]
func (pc *ProjectController) GetByID(c *gin.Context) {
	pc.get(c, "Project not found")
}

// Create adds a project with an optional main image and gallery.
// @Summary Create project
// @Tags Project Admin
// @Accept mpfd,json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param project body model.EditableProjectInfo true "Project information"
// @Param mainImage formData file false "Main image, jpeg/jpg/png/gif up to 5MB"
// @Param gallery formData file false "Gallery images, up to 10"
// @Success 201 {object} utilities.SuccessResponse{data=model.Project} "Created project"
// @Failure 400 {object} utilities.ErrorResponse "Validation or upload error"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database or storage error"
// @Router /admin/projects [post]
func (pc *ProjectController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var info model.EditableProjectInfo
	form, ok := utilities.DecodeBody(c, &info)
	if !ok {
		return
	}
	files, ok := pc.validate(c, form, info)
	if !ok {
		return
	}

	project := model.Project{EditableProjectInfo: info, Gallery: model.StoredFiles{}}
	if project.Status == "" {
		project.Status = model.ProjectStatusPlanning
	}
	project.CreatedByID = utilities.ActorID(c)

	var err error
	if project.MainImage, err = pc.Uploader.SaveOne(ctx, files, mainImageRule); err != nil {
		utilities.UploadFailed(c, err)
		return
	}
	if gallery := files[galleryRule.Field]; len(gallery) > 0 {
		if project.Gallery, err = pc.Uploader.SaveAll(ctx, gallery, galleryRule); err != nil {
			pc.discard(ctx, project.MainImage, nil)
			utilities.UploadFailed(c, err)
			return
		}
	}

	if err := pc.DB.WithContext(ctx).Omit(clause.Associations).Create(&project).Error; err != nil {
		pc.discard(ctx, project.MainImage, project.Gallery)
		pc.saveFailed(c, "Failed to create project", err)
		return
	}

	pc.respond(c, http.StatusCreated, "Project created", project.ID)
}

// Update replaces the editable fields; a new main image replaces the old one and gallery uploads are appended.
// @Summary Update project
// @Tags Project Admin
// @Accept mpfd,json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Project ID"
// @Param project body model.EditableProjectInfo true "Project information"
// @Param mainImage formData file false "Main image, jpeg/jpg/png/gif up to 5MB"
// @Param gallery formData file false "Gallery images; the gallery holds at most 10"
// @Success 200 {object} utilities.SuccessResponse{data=model.Project} "Updated project"
// @Failure 400 {object} utilities.ErrorResponse "Validation or upload error"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Project not found"
// @Failure 500 {object} utilities.ErrorResponse "Database or storage error"
// @Router /admin/projects/{id} [put]
func (pc *ProjectController) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var project model.Project
	if err := pc.DB.WithContext(ctx).First(&project, id).Error; err != nil {
		utilities.LookupFailed(c, "Project not found", err)
		return
	}

	info := model.EditableProjectInfo{Status: project.Status}
	form, ok := utilities.DecodeBody(c, &info)
	if !ok {
		return
	}
	files, ok := pc.validate(c, form, info)
	if !ok {
		return
	}
	gallery := files[galleryRule.Field]
	if len(project.Gallery)+len(gallery) > model.MaxGalleryImages {
		utilities.UploadFailed(c, upload.TooMany(galleryRule.Field, model.MaxGalleryImages))
		return
	}

	newMain, err := pc.Uploader.SaveOne(ctx, files, mainImageRule)
	if err != nil {
		utilities.UploadFailed(c, err)
		return
	}
	var added model.StoredFiles
	if len(gallery) > 0 {
		if added, err = pc.Uploader.SaveAll(ctx, gallery, galleryRule); err != nil {
			pc.discard(ctx, newMain, nil)
			utilities.UploadFailed(c, err)
			return
		}
	}

	var oldMain *model.StoredFile
	err = pc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked model.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, id).Error; err != nil {
			return err
		}
		if len(locked.Gallery)+len(added) > model.MaxGalleryImages {
			return upload.TooMany(galleryRule.Field, model.MaxGalleryImages)
		}

		locked.EditableProjectInfo = info
		locked.UpdatedByID = utilities.ActorID(c)
		if newMain != nil {
			oldMain = locked.MainImage
			locked.MainImage = newMain
		}
		locked.Gallery = append(locked.Gallery, added...)
		return tx.Model(&locked).
			Select("*").
			Omit("id", "created_by_id", "created_at", clause.Associations).
			Updates(&locked).Error
	})
	if err != nil {
		pc.discard(ctx, newMain, added)
		if _, ok := upload.AsError(err); ok {
			utilities.UploadFailed(c, err)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utilities.LookupFailed(c, "Project not found", err)
			return
		}
		pc.saveFailed(c, "Failed to update project", err)
		return
	}

	if oldMain != nil {
		pc.Cleaner.Remove(context.WithoutCancel(ctx), middleware.GetCorrelationID(c), oldMain.Path)
	}
	pc.respond(c, http.StatusOK, "Project updated", id)
}

// RemoveGalleryImage deletes one image from the gallery.
// @Summary Remove a gallery image
// @Tags Project Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Project ID"
// @Param index path int true "Zero based gallery index"
// @Success 200 {object} utilities.SuccessResponse{data=model.Project} "Updated project"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Project or image not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/projects/{id}/gallery/{index} [delete]
func (pc *ProjectController) RemoveGalleryImage(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		utilities.Fail(c, http.StatusBadRequest, utilities.KindInvalidID, "Invalid gallery index", err)
		return
	}

	var removed model.StoredFile
	err = pc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project model.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&project, id).Error; err != nil {
			return err
		}
		if index >= len(project.Gallery) {
			return gorm.ErrRecordNotFound
		}
		removed = project.Gallery[index]
		project.Gallery = append(project.Gallery[:index:index], project.Gallery[index+1:]...)
		project.UpdatedByID = utilities.ActorID(c)
		return tx.Model(&project).
			Select("gallery", "updated_by_id", "updated_at").
			Updates(&project).Error
	})
	if err != nil {
		utilities.LookupFailed(c, "Gallery image not found", err)
		return
	}

	pc.Cleaner.Remove(context.WithoutCancel(ctx), middleware.GetCorrelationID(c), removed.Path)
	pc.respond(c, http.StatusOK, "Gallery image removed", id)
}

// Delete removes a project and every image it owns.
// @Summary Delete project
// @Description Admin only
// @Tags Project Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Project ID"
// @Success 200 {object} utilities.MessageResponse "Project deleted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Project not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/projects/{id} [delete]
func (pc *ProjectController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var project model.Project
	if err := pc.DB.WithContext(ctx).First(&project, id).Error; err != nil {
		utilities.LookupFailed(c, "Project not found", err)
		return
	}
	if err := pc.DB.WithContext(ctx).Delete(&project).Error; err != nil {
		utilities.Internal(c, "Failed to delete project", err)
		return
	}

	pc.Cleaner.Remove(context.WithoutCancel(ctx), middleware.GetCorrelationID(c), project.FilePaths()...)
	c.JSON(http.StatusOK, utilities.MessageResponse{Success: true, Message: "Project deleted"})
}

// validate checks the fields, the references and the uploaded files
func (pc *ProjectController) validate(c *gin.Context, form *multipart.Form, info model.EditableProjectInfo) (map[string][]*multipart.FileHeader, bool) {
	fields := info.Validate()
	refs, err := pc.checkRefs(c.Request.Context(), info)
	if err != nil {
		utilities.Internal(c, "Failed to check project references", err)
		return nil, false
	}
	for k, v := range refs {
		fields[k] = v
	}
	if len(fields) > 0 {
		utilities.ValidationFailed(c, "Validation failed", fields)
		return nil, false
	}

	files, err := upload.Collect(form, mainImageRule, galleryRule)
	if err != nil {
		utilities.UploadFailed(c, err)
		return nil, false
	}
	return files, true
}

func (pc *ProjectController) discard(ctx context.Context, main *model.StoredFile, gallery model.StoredFiles) {
	paths := gallery.Paths()
	if main != nil {
		paths = append(paths, main.Path)
	}
	if len(paths) > 0 {
		pc.Uploader.Discard(context.WithoutCancel(ctx), paths...)
	}
}

// saveFailed maps a reference removed between the check and the write to a validation error
func (pc *ProjectController) saveFailed(c *gin.Context, msg string, err error) {
	if utilities.IsForeignKeyViolation(err) {
		utilities.Fail(c, http.StatusBadRequest, utilities.KindValidation, "Client or company not found", err)
		return
	}
	utilities.Internal(c, msg, err)
}

// respond reloads the project with its relations
func (pc *ProjectController) respond(c *gin.Context, status int, msg string, id uint) {
	var project model.Project
	if err := pc.DB.WithContext(c.Request.Context()).Scopes(withRelations).First(&project, id).Error; err != nil {
		utilities.LookupFailed(c, "Project not found", err)
		return
	}
	utilities.OK(c, status, msg, project)
}
