// Package project provides HTTP handlers for the project portfolio.
package project

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"corpsite-backend/internal/database"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/tasks"
	"corpsite-backend/internal/upload"
)

// ProjectController handles project endpoints
type ProjectController struct {
	DB       *database.DBinstanceStruct
	Uploader *upload.Uploader
	Cleaner  *tasks.Cleaner
}

// NewProjectController creates a new instance of ProjectController
func NewProjectController(db *database.DBinstanceStruct, uploader *upload.Uploader, cleaner *tasks.Cleaner) *ProjectController {
	return &ProjectController{DB: db, Uploader: uploader, Cleaner: cleaner}
}

const storePrefix = "projects"

var (
	mainImageRule = upload.Rule{
		Field: "mainImage", MaxSize: upload.ImageSize, MaxCount: 1,
		Extensions: upload.GalleryExtensions, Prefix: storePrefix,
	}
	galleryRule = upload.Rule{
		Field: "gallery", MaxSize: upload.ImageSize, MaxCount: model.MaxGalleryImages,
		Extensions: upload.GalleryExtensions, Prefix: storePrefix,
	}
)

const notFoundMessage = "Proyek tidak ditemukan"

var sortColumns = map[string]string{
	"title":     "title",
	"createdAt": "created_at",
	"startDate": "start_date",
	"value":     "value",
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Client").Preload("Company")
}

func listFilters(c *gin.Context) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if category := c.Query("category"); category != "" {
			db = db.Where("category = ?", category)
		}
		if status := c.Query("status"); status != "" {
			db = db.Where("status = ?", status)
		}
		if featured := c.Query("featured"); featured != "" {
			db = db.Where("featured = ?", featured == "true")
		}
		if clientID := c.Query("clientId"); clientID != "" {
			db = db.Where("client_id = ?", clientID)
		}
		if companyID := c.Query("companyId"); companyID != "" {
			db = db.Where("company_id = ?", companyID)
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			db = db.Where("title ILIKE @q OR description ILIKE @q OR location ILIKE @q",
				map[string]interface{}{"q": "%" + search + "%"})
		}
		return db
	}
}

// checkRefs reports the referenced client or company that does not exist
func (pc *ProjectController) checkRefs(ctx context.Context, info model.EditableProjectInfo) (map[string]string, error) {
	errs := map[string]string{}
	if info.ClientID != nil {
		var count int64
		if err := pc.DB.WithContext(ctx).Model(&model.Client{}).Where("id = ?", *info.ClientID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			errs["clientId"] = "Client not found"
		}
	}
	if info.CompanyID != nil {
		var count int64
		if err := pc.DB.WithContext(ctx).Model(&model.Company{}).Where("id = ?", *info.CompanyID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			errs["companyId"] = "Company not found"
		}
	}
	return errs, nil
}
