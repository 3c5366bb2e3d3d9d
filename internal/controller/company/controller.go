// Package company provides HTTP handlers for the holding and its subsidiaries.
package company

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"corpsite-backend/internal/database"
	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/tasks"
	"corpsite-backend/internal/upload"
	"corpsite-backend/internal/utilities"
)

// CompanyController handles company profile endpoints
type CompanyController struct {
	DB       *database.DBinstanceStruct
	Uploader *upload.Uploader
	Cleaner  *tasks.Cleaner
}

// NewCompanyController creates a new instance of CompanyController
func NewCompanyController(db *database.DBinstanceStruct, uploader *upload.Uploader, cleaner *tasks.Cleaner) *CompanyController {
	return &CompanyController{DB: db, Uploader: uploader, Cleaner: cleaner}
}

var logoRule = upload.Rule{
	Field: "logo", MaxSize: upload.ImageSize, MaxCount: 1,
	Extensions: upload.WebImageExtensions, Prefix: "companies",
}

const notFoundMessage = "Perusahaan tidak ditemukan"

// ListActive returns the active companies, parent first.
// @Summary List companies
// @Tags Company
// @Produce json
// @Param type query string false "parent or subsidiary"
// @Success 200 {object} utilities.SuccessResponse{data=[]model.Company} "Active companies"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /companies [get]
func (cc *CompanyController) ListActive(c *gin.Context) {
	query := cc.DB.WithContext(c.Request.Context()).Where("status = ?", "active")
	if companyType := c.Query("type"); companyType != "" {
		query = query.Where("type = ?", companyType)
	}

	companies := []model.Company{}
	if err := query.Order("type = 'parent' desc, name asc").Find(&companies).Error; err != nil {
		utilities.Internal(c, "Gagal memuat perusahaan", err)
		return
	}
	utilities.OK(c, http.StatusOK, "", companies)
}

// GetParent returns the holding company.
// @Summary Get parent company
// @Tags Company
// @Produce json
// @Success 200 {object} utilities.SuccessResponse{data=model.Company} "Parent company"
// @Failure 404 {object} utilities.ErrorResponse "No parent company yet"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /companies/parent [get]
func (cc *CompanyController) GetParent(c *gin.Context) {
	var company model.Company
	if err := cc.DB.WithContext(c.Request.Context()).
		Where("type = ?", model.CompanyTypeParent).
		First(&company).Error; err != nil {
		utilities.LookupFailed(c, notFoundMessage, err)
		return
	}
	utilities.OK(c, http.StatusOK, "", company)
}

// GetActiveByID returns one active company.
// @Summary Get company by id
// @Tags Company
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Company} "Company"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /companies/{id} [get]
func (cc *CompanyController) GetActiveByID(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var company model.Company
	if err := cc.DB.WithContext(c.Request.Context()).
		Where("id = ? AND status = ?", id, "active").
		First(&company).Error; err != nil {
		utilities.LookupFailed(c, notFoundMessage, err)
		return
	}
	utilities.OK(c, http.StatusOK, "", company)
}

// List returns every company for the dashboard.
// @Summary List companies for admin
// @Tags Company Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param type query string false "parent or subsidiary"
// @Param status query string false "active or inactive"
// @Param search query string false "Search name"
// @Success 200 {object} utilities.SuccessResponse{data=[]model.Company} "Companies"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/companies [get]
func (cc *CompanyController) List(c *gin.Context) {
	query := cc.DB.WithContext(c.Request.Context()).Model(&model.Company{})
	if companyType := c.Query("type"); companyType != "" {
		query = query.Where("type = ?", companyType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	companies := []model.Company{}
	if err := query.Order("type = 'parent' desc, name asc").Find(&companies).Error; err != nil {
		utilities.Internal(c, "Failed to fetch companies", err)
		return
	}
	utilities.OK(c, http.StatusOK, "", companies)
}

// GetByID returns a company of any status.
// @Summary Get company by id for admin
// @Tags Company Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Company ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Company} "Company"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/companies/{id} [get]
func (cc *CompanyController) GetByID(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var company model.Company
	if err := cc.DB.WithContext(c.Request.Context()).First(&company, id).Error; err != nil {
		utilities.LookupFailed(c, "Company not found", err)
		return
	}
	utilities.OK(c, http.StatusOK, "", company)
}

// Create adds a company; only one company may be the parent.
// @Summary Create company
// @Tags Company Admin
// @Accept mpfd,json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param company body model.EditableCompanyInfo true "Company information"
// @Param logo formData file false "Logo, jpeg/jpg/png/webp up to 5MB"
// @Success 201 {object} utilities.SuccessResponse{data=model.Company} "Created company"
// @Failure 400 {object} utilities.ErrorResponse "Validation, upload error or second parent"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database or storage error"
// @Router /admin/companies [post]
func (cc *CompanyController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	info := model.EditableCompanyInfo{Type: model.CompanyTypeSubsidiary}
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
	if !cc.checkParent(c, info.Type, 0) {
		return
	}

	company := model.Company{EditableCompanyInfo: info}
	if company.Status == "" {
		company.Status = "active"
	}
	company.CreatedByID = utilities.ActorID(c)
	if company.Logo, err = cc.Uploader.SaveOne(ctx, files, logoRule); err != nil {
		utilities.UploadFailed(c, err)
		return
	}

	if err := cc.DB.WithContext(ctx).Create(&company).Error; err != nil {
		if company.Logo != nil {
			cc.Uploader.Discard(context.WithoutCancel(ctx), company.Logo.Path)
		}
		if utilities.IsUniqueViolation(err, database.SingleParentIndex) {
			duplicateParent(c, err)
			return
		}
		utilities.Internal(c, "Failed to create company", err)
		return
	}
	utilities.OK(c, http.StatusCreated, "Company created", company)
}

// Update replaces the editable fields; a new logo replaces the old one.
// @Summary Update company
// @Tags Company Admin
// @Accept mpfd,json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Company ID"
// @Param company body model.EditableCompanyInfo true "Company information"
// @Param logo formData file false "Logo, jpeg/jpg/png/webp up to 5MB"
// @Success 200 {object} utilities.SuccessResponse{data=model.Company} "Updated company"
// @Failure 400 {object} utilities.ErrorResponse "Validation, upload error or second parent"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Failure 500 {object} utilities.ErrorResponse "Database or storage error"
// @Router /admin/companies/{id} [put]
func (cc *CompanyController) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var company model.Company
	if err := cc.DB.WithContext(ctx).First(&company, id).Error; err != nil {
		utilities.LookupFailed(c, "Company not found", err)
		return
	}

	info := model.EditableCompanyInfo{Type: company.Type, Status: company.Status}
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
	if !cc.checkParent(c, info.Type, company.ID) {
		return
	}

	company.EditableCompanyInfo = info
	company.UpdatedByID = utilities.ActorID(c)
	oldLogo := company.Logo
	newLogo, err := cc.Uploader.SaveOne(ctx, files, logoRule)
	if err != nil {
		utilities.UploadFailed(c, err)
		return
	}
	if newLogo != nil {
		company.Logo = newLogo
	}

	if err := cc.DB.WithContext(ctx).Save(&company).Error; err != nil {
		if newLogo != nil {
			cc.Uploader.Discard(context.WithoutCancel(ctx), newLogo.Path)
		}
		if utilities.IsUniqueViolation(err, database.SingleParentIndex) {
			duplicateParent(c, err)
			return
		}
		utilities.Internal(c, "Failed to update company", err)
		return
	}

	if newLogo != nil && oldLogo != nil {
		cc.Cleaner.Remove(context.WithoutCancel(ctx), middleware.GetCorrelationID(c), oldLogo.Path)
	}
	utilities.OK(c, http.StatusOK, "Company updated", company)
}

// Delete removes a company and its logo.
// @Summary Delete company
// @Description Admin only; projects of the company keep existing without a company
// @Tags Company Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Company ID"
// @Success 200 {object} utilities.MessageResponse "Company deleted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/companies/{id} [delete]
func (cc *CompanyController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var company model.Company
	if err := cc.DB.WithContext(ctx).First(&company, id).Error; err != nil {
		utilities.LookupFailed(c, "Company not found", err)
		return
	}
	if err := cc.DB.WithContext(ctx).Delete(&company).Error; err != nil {
		utilities.Internal(c, "Failed to delete company", err)
		return
	}

	if company.Logo != nil {
		cc.Cleaner.Remove(context.WithoutCancel(ctx), middleware.GetCorrelationID(c), company.Logo.Path)
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Success: true, Message: "Company deleted"})
}

// checkParent rejects a second parent company; exceptID is the company being edited
func (cc *CompanyController) checkParent(c *gin.Context, companyType string, exceptID uint) bool {
	if companyType != model.CompanyTypeParent {
		return true
	}
	var count int64
	if err := cc.DB.WithContext(c.Request.Context()).Model(&model.Company{}).
		Where("type = ? AND id <> ?", model.CompanyTypeParent, exceptID).
		Count(&count).Error; err != nil {
		utilities.Internal(c, "Failed to check parent company", err)
		return false
	}
	if count > 0 {
		duplicateParent(c, nil)
		return false
	}
	return true
}

func duplicateParent(c *gin.Context, err error) {
	utilities.Fail(c, http.StatusBadRequest, utilities.KindDuplicateParent, "Perusahaan induk sudah ada", err)
}
