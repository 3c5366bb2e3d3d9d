package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// ListPublic returns the project portfolio.
// @Summary List projects
// @Tags Project
// @Produce json
// @Param category query string false "Category"
// @Param status query string false "planning, ongoing, completed or on-hold"
// @Param featured query bool false "Only featured projects"
// @Param clientId query int false "Client ID"
// @Param search query string false "Search title, description and location"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(12)
// @Success 200 {object} utilities.SuccessResponse{data=[]model.Project} "Projects"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /projects [get]
func (pc *ProjectController) ListPublic(c *gin.Context) {
	pc.list(c, 12, "featured desc, start_date desc nulls last, id desc")
}

// GetPublicByID returns one project with its client and company.
// @Summary Get project by id
// @Tags Project
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Project} "Project"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 404 {object} utilities.ErrorResponse "Project not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /projects/{id} [get]
func (pc *ProjectController) GetPublicByID(c *gin.Context) {
	pc.get(c, notFoundMessage)
}

func (pc *ProjectController) list(c *gin.Context, defaultLimit int, order string) {
	page := utilities.ParsePageQuery(c, defaultLimit, 100)
	query := pc.DB.WithContext(c.Request.Context()).Model(&model.Project{}).Scopes(listFilters(c))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utilities.Internal(c, "Gagal memuat proyek", err)
		return
	}

	projects := []model.Project{}
	if err := query.Scopes(withRelations).
		Order(order).
		Offset(page.Offset()).Limit(page.Limit).
		Find(&projects).Error; err != nil {
		utilities.Internal(c, "Gagal memuat proyek", err)
		return
	}

	utilities.OKPage(c, projects, page.Result(total))
}

func (pc *ProjectController) get(c *gin.Context, notFound string) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var project model.Project
	if err := pc.DB.WithContext(c.Request.Context()).Scopes(withRelations).First(&project, id).Error; err != nil {
		utilities.LookupFailed(c, notFound, err)
		return
	}
	utilities.OK(c, http.StatusOK, "", project)
}
