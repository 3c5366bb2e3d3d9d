// Package admin provides the dashboard overview of every managed resource.
package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"corpsite-backend/internal/database"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

type AdminController struct {
	DB *database.DBinstanceStruct
}

func NewAdminController(db *database.DBinstanceStruct) *AdminController {
	return &AdminController{
		DB: db,
	}
}

// Overview is the dashboard landing data
type Overview struct {
	Careers              map[string]int64 `json:"careers"`
	Applications         map[string]int64 `json:"applications"`
	ApplicationsThisWeek int64            `json:"applicationsThisWeek"`
	Contacts             map[string]int64 `json:"contacts"`
	Projects             map[string]int64 `json:"projects"`
	ActiveClients        int64            `json:"activeClients"`
	ExpiringCertificates int64            `json:"expiringCertificates"`
}

// expiryWindow is how far ahead a certificate counts as expiring
const expiryWindow = 30 * 24 * time.Hour

// GetOverview counts records per status for the dashboard
// @Summary Dashboard overview
// @Description Counts per status of careers, applications, contacts and projects,
// @Description active clients and active certificates expiring within 30 days
// @Tags Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} utilities.SuccessResponse{data=Overview}
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin or hr user"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/dashboard [get]
func (ac *AdminController) GetOverview(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now()

	var (
		out Overview
		err error
	)
	if out.Careers, err = ac.countByStatus(ctx, &model.Career{}); err != nil {
		utilities.Internal(c, "Failed to count careers", err)
		return
	}
	if out.Applications, err = ac.countByStatus(ctx, &model.Application{}); err != nil {
		utilities.Internal(c, "Failed to count applications", err)
		return
	}
	if out.Contacts, err = ac.countByStatus(ctx, &model.Contact{}); err != nil {
		utilities.Internal(c, "Failed to count contacts", err)
		return
	}
	if out.Projects, err = ac.countByStatus(ctx, &model.Project{}); err != nil {
		utilities.Internal(c, "Failed to count projects", err)
		return
	}

	db := ac.DB.WithContext(ctx)
	if err := db.Model(&model.Application{}).
		Where("application_date >= ?", now.AddDate(0, 0, -7)).
		Count(&out.ApplicationsThisWeek).Error; err != nil {
		utilities.Internal(c, "Failed to count applications", err)
		return
	}
	if err := db.Model(&model.Client{}).
		Where("status = ?", model.ClientStatusActive).
		Count(&out.ActiveClients).Error; err != nil {
		utilities.Internal(c, "Failed to count clients", err)
		return
	}
	if err := db.Model(&model.Certificate{}).
		Where("status = ? AND expiry_date BETWEEN ? AND ?", model.CertificateStatusActive, now, now.Add(expiryWindow)).
		Count(&out.ExpiringCertificates).Error; err != nil {
		utilities.Internal(c, "Failed to count certificates", err)
		return
	}

	utilities.OK(c, http.StatusOK, "", out)
}

func (ac *AdminController) countByStatus(ctx context.Context, table interface{}) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := ac.DB.WithContext(ctx).Model(table).
		Select("status, count(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
