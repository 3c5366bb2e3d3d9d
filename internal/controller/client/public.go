package client

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// ListActive returns active clients.
// @Summary List clients
// @Tags Client
// @Produce json
// @Param industry query string false "Industry, must exactly match"
// @Param featured query bool false "Only featured clients"
// @Param search query string false "Search name and description, case insensitive"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(12)
// @Success 200 {object} utilities.SuccessResponse{data=[]model.Client} "Active clients"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /clients [get]
func (cc *ClientController) ListActive(c *gin.Context) {
	page := utilities.ParsePageQuery(c, 12, 100)
	query := cc.DB.WithContext(c.Request.Context()).Model(&model.Client{}).
		Where("status = ?", model.ClientStatusActive).
		Scopes(listFilters(c))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utilities.Internal(c, "Gagal memuat klien", err)
		return
	}

	clients := []model.Client{}
	if err := query.Order("featured desc, name asc").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&clients).Error; err != nil {
		utilities.Internal(c, "Gagal memuat klien", err)
		return
	}

	utilities.OKPage(c, clients, page.Result(total))
}

// GetActiveByID returns one active client.
// @Summary Get client by id
// @Tags Client
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Client} "Client"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 404 {object} utilities.ErrorResponse "Client not found or inactive"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /clients/{id} [get]
func (cc *ClientController) GetActiveByID(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var client model.Client
	if err := cc.DB.WithContext(c.Request.Context()).
		Where("id = ? AND status = ?", id, model.ClientStatusActive).
		First(&client).Error; err != nil {
		utilities.LookupFailed(c, notFoundMessage, err)
		return
	}
	utilities.OK(c, http.StatusOK, "", client)
}
