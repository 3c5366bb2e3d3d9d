package career

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// CareerFilters lists the distinct filter values of active postings
type CareerFilters struct {
	Locations        []string `json:"locations"`
	ExperienceLevels []string `json:"experienceLevels"`
	Departments      []string `json:"departments"`
}

// ListActive returns active career postings.
// @Summary List active career postings
// @Description Featured postings come first, then the most recently published
// @Tags Career
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param location query string false "Location, substring match and case insensitive"
// @Param experienceLevel query string false "Experience level, must exactly match"
// @Param search query string false "Search title and description, case insensitive"
// @Param featured query boolean false "Only featured postings when true"
// @Success 200 {object} utilities.SuccessResponse{data=[]model.Career} "Active postings with pagination"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /careers [get]
func (cc *CareerController) ListActive(c *gin.Context) {
	page := utilities.ParsePageQuery(c, 10, 100)

	query := cc.DB.WithContext(c.Request.Context()).Model(&model.Career{}).
		Where("status = ?", model.CareerStatusActive)

	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}
	if level := c.Query("experienceLevel"); level != "" {
		query = query.Where("experience_level = ?", level)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("title ILIKE @q OR description ILIKE @q", map[string]interface{}{"q": "%" + search + "%"})
	}
	if strings.EqualFold(c.Query("featured"), "true") {
		query = query.Where("featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utilities.Internal(c, "Gagal mengambil data lowongan", err)
		return
	}

	careers := []model.Career{}
	if err := query.Order("featured desc, publish_date desc").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&careers).Error; err != nil {
		utilities.Internal(c, "Gagal mengambil data lowongan", err)
		return
	}

	utilities.OKPage(c, careers, page.Result(total))
}

// GetActiveByID returns one active posting and counts the view.
// @Summary Get active career posting by id
// @Description Every successful call increments the view counter
// @Tags Career
// @Produce json
// @Param id path int true "Career ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Career} "Career posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 404 {object} utilities.ErrorResponse "Posting not found or inactive"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /careers/{id} [get]
func (cc *CareerController) GetActiveByID(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var career model.Career
	result := cc.DB.WithContext(c.Request.Context()).Model(&career).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ?", id, model.CareerStatusActive).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		utilities.Internal(c, "Gagal mengambil data lowongan", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utilities.NotFound(c, notFoundMessage)
		return
	}

	utilities.OK(c, http.StatusOK, "", career)
}

// ListFeatured returns featured active postings.
// @Summary List featured career postings
// @Tags Career
// @Produce json
// @Param limit query int false "Maximum number of postings" default(6)
// @Success 200 {object} utilities.SuccessResponse{data=[]model.Career} "Featured postings"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /careers/featured [get]
func (cc *CareerController) ListFeatured(c *gin.Context) {
	page := utilities.ParsePageQuery(c, 6, 20)

	careers := []model.Career{}
	if err := cc.DB.WithContext(c.Request.Context()).
		Where("status = ? AND featured = ?", model.CareerStatusActive, true).
		Order("publish_date desc").
		Limit(page.Limit).
		Find(&careers).Error; err != nil {
		utilities.Internal(c, "Gagal mengambil data lowongan", err)
		return
	}

	utilities.OK(c, http.StatusOK, "", careers)
}

// ListFilters returns the filter values available on the public career page.
// @Summary List career filter values
// @Description Distinct locations, experience levels and departments of active postings
// @Tags Career
// @Produce json
// @Success 200 {object} utilities.SuccessResponse{data=CareerFilters} "Filter values"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /careers/filters [get]
func (cc *CareerController) ListFilters(c *gin.Context) {
	filters := CareerFilters{}
	columns := map[string]*[]string{
		"location":         &filters.Locations,
		"experience_level": &filters.ExperienceLevels,
		"department":       &filters.Departments,
	}

	for column, dst := range columns {
		*dst = []string{}
		if err := cc.DB.WithContext(c.Request.Context()).Model(&model.Career{}).
			Where("status = ?", model.CareerStatusActive).
			Where(column+" <> ''").
			Distinct().
			Order(column).
			Pluck(column, dst).Error; err != nil {
			utilities.Internal(c, "Gagal mengambil filter lowongan", err)
			return
		}
	}

	utilities.OK(c, http.StatusOK, "", filters)
}
