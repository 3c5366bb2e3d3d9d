// Package client provides HTTP handlers for the clients shown in the portfolio.
package client

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

// ClientController handles client endpoints
type ClientController struct {
	DB       *database.DBinstanceStruct
	Uploader *upload.Uploader
	Cleaner  *tasks.Cleaner
}

// NewClientController creates a new instance of ClientController
func NewClientController(db *database.DBinstanceStruct, uploader *upload.Uploader, cleaner *tasks.Cleaner) *ClientController {
	return &ClientController{DB: db, Uploader: uploader, Cleaner: cleaner}
}

var logoRule = upload.Rule{
	Field: "logo", MaxSize: upload.ImageSize, MaxCount: 1,
	Extensions: upload.WebImageExtensions, Prefix: "clients",
}

const notFoundMessage = "Klien tidak ditemukan"

// nameTaken reports whether another client already uses the name, ignoring case
func (cc *ClientController) nameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	var count int64
	err := cc.DB.WithContext(ctx).Model(&model.Client{}).
		Where("name_key = ? AND id <> ?", model.ClientNameKey(name), exceptID).
		Count(&count).Error
	return count > 0, err
}

func listFilters(c *gin.Context) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if industry := c.Query("industry"); industry != "" {
			db = db.Where("industry = ?", industry)
		}
		if featured := c.Query("featured"); featured != "" {
			db = db.Where("featured = ?", featured == "true")
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			db = db.Where("name ILIKE @q OR description ILIKE @q", map[string]interface{}{"q": "%" + search + "%"})
		}
		return db
	}
}
