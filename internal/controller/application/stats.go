package application

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// CareerCount is the number of applications of one posting
type CareerCount struct {
	CareerID   uint   `json:"careerId"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// DailyCount is the number of applications received on one day
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Statistics aggregates applications for the dashboard
type Statistics struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
	ByCareer []CareerCount    `json:"byCareer"`
	Timeline []DailyCount     `json:"timeline"`
}

// GetStatistics returns application counts by status, by posting and by day.
// @Summary Application statistics
// @Tags Application Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param careerId query int false "Career ID"
// @Param startDate query string false "Earliest application date, YYYY-MM-DD"
// @Param endDate query string false "Latest application date, YYYY-MM-DD, inclusive"
// @Success 200 {object} utilities.SuccessResponse{data=Statistics} "Aggregates"
// @Failure 400 {object} utilities.ErrorResponse "Invalid careerId or date"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/applications/statistics [get]
func (ac *ApplicationController) GetStatistics(c *gin.Context) {
	ctx := c.Request.Context()

	byCareer, ok := careerScope(c)
	if !ok {
		return
	}
	start, okStart := utilities.QueryDate(c, "startDate")
	end, okEnd := utilities.QueryDate(c, "endDate")
	if !okStart || !okEnd {
		utilities.ValidationFailed(c, "Invalid date range", map[string]string{"date": "startDate and endDate must be YYYY-MM-DD"})
		return
	}
	if start != nil && end != nil && end.Before(*start) {
		utilities.ValidationFailed(c, "Invalid date range", map[string]string{"endDate": "endDate must not be before startDate"})
		return
	}

	filtered := func(db *gorm.DB) *gorm.DB {
		db = byCareer(db)
		if start != nil {
			db = db.Where("applications.application_date >= ?", *start)
		}
		if end != nil {
			db = db.Where("applications.application_date < ?", end.AddDate(0, 0, 1))
		}
		return db
	}

	stats := Statistics{ByStatus: map[string]int64{}, ByCareer: []CareerCount{}, Timeline: []DailyCount{}}

	var statusRows []struct {
		Status string
		Count  int64
	}
	if err := ac.DB.WithContext(ctx).Model(&model.Application{}).Scopes(filtered).
		Select("applications.status, count(*) as count").
		Group("applications.status").
		Scan(&statusRows).Error; err != nil {
		utilities.Internal(c, "Failed to aggregate by status", err)
		return
	}
	for _, row := range statusRows {
		stats.ByStatus[row.Status] = row.Count
		stats.Total += row.Count
	}

	if err := ac.DB.WithContext(ctx).Model(&model.Application{}).Scopes(filtered).
		Select("careers.id as career_id, careers.title, careers.department, count(applications.id) as count").
		Joins("JOIN careers ON careers.id = applications.career_id").
		Group("careers.id, careers.title, careers.department").
		Order("count desc").
		Scan(&stats.ByCareer).Error; err != nil {
		utilities.Internal(c, "Failed to aggregate by career", err)
		return
	}

	if err := ac.DB.WithContext(ctx).Model(&model.Application{}).Scopes(filtered).
		Select("to_char(date_trunc('day', applications.application_date), 'YYYY-MM-DD') as date, count(*) as count").
		Group("1").
		Order("1").
		Scan(&stats.Timeline).Error; err != nil {
		utilities.Internal(c, "Failed to aggregate timeline", err)
		return
	}

	utilities.OK(c, http.StatusOK, "", stats)
}
