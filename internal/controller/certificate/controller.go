// Package certificate provides HTTP handlers for licenses and certifications.
package certificate

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"corpsite-backend/internal/database"
	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/tasks"
	"corpsite-backend/internal/upload"
	"corpsite-backend/internal/utilities"
)

// CertificateController handles certificate endpoints
type CertificateController struct {
	DB       *database.DBinstanceStruct
	Uploader *upload.Uploader
	Cleaner  *tasks.Cleaner
}

// NewCertificateController creates a new instance of CertificateController
func NewCertificateController(db *database.DBinstanceStruct, uploader *upload.Uploader, cleaner *tasks.Cleaner) *CertificateController {
	return &CertificateController{DB: db, Uploader: uploader, Cleaner: cleaner}
}

var imageRule = upload.Rule{
	Field: "image", MaxSize: upload.ImageSize, MaxCount: 1,
	Extensions: upload.WebImageExtensions, Prefix: "certificates",
}

var sortColumns = map[string]string{
	"title":      "title",
	"issueDate":  "issue_date",
	"expiryDate": "expiry_date",
	"createdAt":  "created_at",
}

func filters(c *gin.Context) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if category := c.Query("category"); category != "" {
			db = db.Where("category = ?", category)
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			db = db.Where("title ILIKE @q OR issuer ILIKE @q OR certificate_number ILIKE @q", map[string]interface{}{"q": "%" + search + "%"})
		}
		return db
	}
}

// ListActive returns active certificates.
// @Summary List certificates
// @Tags Certificate
// @Produce json
// @Param category query string false "Category"
// @Param search query string false "Search title, issuer and number"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(12)
// @Success 200 {object} utilities.SuccessResponse{data=[]model.Certificate} "Active certificates"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /certificates [get]
func (cc *CertificateController) ListActive(c *gin.Context) {
	cc.list(c, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", model.CertificateStatusActive)
	}, 12)
}

// GetActiveByID returns one active certificate.
// @Summary Get certificate by id
// @Tags Certificate
// @Produce json
// @Param id path int true "Certificate ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Certificate} "Certificate"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 404 {object} utilities.ErrorResponse "Certificate not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /certificates/{id} [get]
func (cc *CertificateController) GetActiveByID(c *gin.Context) {
	cc.get(c, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", model.CertificateStatusActive)
	})
}

// List returns certificates of every status.
// @Summary List certificates for admin
// @Tags Certificate Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param status query string false "active, expired or revoked"
// @Param category query string false "Category"
// @Param search query string false "Search title, issuer and number"
// @Param sortBy query string false "title, issueDate, expiryDate or createdAt"
// @Param sortOrder query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utilities.SuccessResponse{data=[]model.Certificate} "Certificates"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/certificates [get]
func (cc *CertificateController) List(c *gin.Context) {
	cc.list(c, func(db *gorm.DB) *gorm.DB {
		if status := c.Query("status"); status != "" {
			return db.Where("status = ?", status)
		}
		return db
	}, 10)
}

// GetByID returns a certificate of any status.
// @Summary Get certificate by id for admin
// @Tags Certificate Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Certificate ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Certificate} "Certificate"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Certificate not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/certificates/{id} [get]
func (cc *CertificateController) GetByID(c *gin.Context) {
	cc.get(c, func(db *gorm.DB) *gorm.DB { return db })
}

func (cc *CertificateController) list(c *gin.Context, scope func(*gorm.DB) *gorm.DB, defaultLimit int) {
	page := utilities.ParsePageQuery(c, defaultLimit, 100)
	query := cc.DB.WithContext(c.Request.Context()).Model(&model.Certificate{}).Scopes(scope, filters(c))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utilities.Internal(c, "Gagal memuat sertifikat", err)
		return
	}

	certificates := []model.Certificate{}
	if err := query.Order(utilities.SortClause(c, sortColumns, "issue_date desc nulls last")).
		Offset(page.Offset()).Limit(page.Limit).
		Find(&certificates).Error; err != nil {
		utilities.Internal(c, "Gagal memuat sertifikat", err)
		return
	}
	utilities.OKPage(c, certificates, page.Result(total))
}

func (cc *CertificateController) get(c *gin.Context, scope func(*gorm.DB) *gorm.DB) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var certificate model.Certificate
	if err := cc.DB.WithContext(c.Request.Context()).Scopes(scope).First(&certificate, id).Error; err != nil {
		utilities.LookupFailed(c, "Sertifikat tidak ditemukan", err)
		return
	}
	utilities.OK(c, http.StatusOK, "", certificate)
}

// Create adds a certificate with an optional image.
// @Summary Create certificate
// @Tags Certificate Admin
// @Accept mpfd,json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param certificate body model.EditableCertificateInfo true "Certificate information"
// @Param image formData file false "Image, jpeg/jpg/png/webp up to 5MB"
// @Success 201 {object} utilities.SuccessResponse{data=model.Certificate} "Created certificate"
// @Failure 400 {object} utilities.ErrorResponse "Validation or upload error"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database or storage error"
// @Router /admin/certificates [post]
func (cc *CertificateController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var info model.EditableCertificateInfo
	form, ok := utilities.DecodeBody(c, &info)
	if !ok {
		return
	}
	if fields := info.Validate(); len(fields) > 0 {
		utilities.ValidationFailed(c, "Validation failed", fields)
		return
	}
	files, err := upload.Collect(form, imageRule)
	if err != nil {
		utilities.UploadFailed(c, err)
		return
	}

	certificate := model.Certificate{EditableCertificateInfo: info}
	if certificate.Status == "" {
		certificate.Status = model.CertificateStatusActive
	}
	certificate.CreatedByID = utilities.ActorID(c)
	if certificate.Image, err = cc.Uploader.SaveOne(ctx, files, imageRule); err != nil {
		utilities.UploadFailed(c, err)
		return
	}

	if err := cc.DB.WithContext(ctx).Create(&certificate).Error; err != nil {
		if certificate.Image != nil {
			cc.Uploader.Discard(context.WithoutCancel(ctx), certificate.Image.Path)
		}
		utilities.Internal(c, "Failed to create certificate", err)
		return
	}
	utilities.OK(c, http.StatusCreated, "Certificate created", certificate)
}

// Update replaces the editable fields; a new image replaces the old one.
// @Summary Update certificate
// @Tags Certificate Admin
// @Accept mpfd,json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Certificate ID"
// @Param certificate body model.EditableCertificateInfo true "Certificate information"
// @Param image formData file false "Image, jpeg/jpg/png/webp up to 5MB"
// @Success 200 {object} utilities.SuccessResponse{data=model.Certificate} "Updated certificate"
// @Failure 400 {object} utilities.ErrorResponse "Validation or upload error"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Certificate not found"
// @Failure 500 {object} utilities.ErrorResponse "Database or storage error"
// @Router /admin/certificates/{id} [put]
func (cc *CertificateController) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var info model.EditableCertificateInfo
	form, ok := utilities.DecodeBody(c, &info)
	if !ok {
		return
	}
	if fields := info.Validate(); len(fields) > 0 {
		utilities.ValidationFailed(c, "Validation failed", fields)
		return
	}
	files, err := upload.Collect(form, imageRule)
	if err != nil {
		utilities.UploadFailed(c, err)
		return
	}

	var certificate model.Certificate
	if err := cc.DB.WithContext(ctx).First(&certificate, id).Error; err != nil {
		utilities.LookupFailed(c, "Certificate not found", err)
		return
	}
	if info.Status == "" {
		info.Status = certificate.Status
	}
	certificate.EditableCertificateInfo = info
	certificate.UpdatedByID = utilities.ActorID(c)

	oldImage := certificate.Image
	newImage, err := cc.Uploader.SaveOne(ctx, files, imageRule)
	if err != nil {
		utilities.UploadFailed(c, err)
		return
	}
	if newImage != nil {
		certificate.Image = newImage
	}

	if err := cc.DB.WithContext(ctx).Save(&certificate).Error; err != nil {
		if newImage != nil {
			cc.Uploader.Discard(context.WithoutCancel(ctx), newImage.Path)
		}
		utilities.Internal(c, "Failed to update certificate", err)
		return
	}

	if newImage != nil && oldImage != nil {
		cc.Cleaner.Remove(context.WithoutCancel(ctx), middleware.GetCorrelationID(c), oldImage.Path)
	}
	utilities.OK(c, http.StatusOK, "Certificate updated", certificate)
}

// Delete removes a certificate and its image.
// @Summary Delete certificate
// @Description Admin only
// @Tags Certificate Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Certificate ID"
// @Success 200 {object} utilities.MessageResponse "Certificate deleted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Certificate not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/certificates/{id} [delete]
func (cc *CertificateController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var certificate model.Certificate
	if err := cc.DB.WithContext(ctx).First(&certificate, id).Error; err != nil {
		utilities.LookupFailed(c, "Certificate not found", err)
		return
	}
	if err := cc.DB.WithContext(ctx).Delete(&certificate).Error; err != nil {
		utilities.Internal(c, "Failed to delete certificate", err)
		return
	}

	if certificate.Image != nil {
		cc.Cleaner.Remove(context.WithoutCancel(ctx), middleware.GetCorrelationID(c), certificate.Image.Path)
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Success: true, Message: "Certificate deleted"})
}
