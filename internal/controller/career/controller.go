// Package career provides HTTP handlers for career postings.
package career

import (
	"corpsite-backend/internal/database"
	"corpsite-backend/internal/tasks"
)

// CareerController handles career posting endpoints
type CareerController struct {
	DB      *database.DBinstanceStruct
	Cleaner *tasks.Cleaner
}

// NewCareerController creates a new instance of CareerController
func NewCareerController(db *database.DBinstanceStruct, cleaner *tasks.Cleaner) *CareerController {
	return &CareerController{
		DB:      db,
		Cleaner: cleaner,
	}
}

const notFoundMessage = "Lowongan tidak ditemukan atau sudah tidak aktif"
