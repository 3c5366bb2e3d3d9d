// Package contact provides HTTP handlers for the public contact form and its inbox.
package contact

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"corpsite-backend/internal/database"
	"corpsite-backend/internal/metrics"
	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// ContactController handles contact endpoints
type ContactController struct {
	DB *database.DBinstanceStruct
}

// NewContactController creates a new instance of ContactController
func NewContactController(db *database.DBinstanceStruct) *ContactController {
	return &ContactController{DB: db}
}

// Receipt is returned to the visitor after sending the form
type Receipt struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Submit stores a message from the public contact form.
// @Summary Send contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param contact body model.ContactForm true "Contact form"
// @Success 201 {object} utilities.SuccessResponse{data=Receipt} "Message received"
// @Failure 400 {object} utilities.ErrorResponse "Invalid format or validation error"
// @Failure 429 {object} utilities.ErrorResponse "Too many requests"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /contacts [post]
func (cc *ContactController) Submit(c *gin.Context) {
	var form model.ContactForm
	if !utilities.DecodeJSON(c, &form) {
		return
	}
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))
	if fields := form.Validate(); len(fields) > 0 {
		utilities.ValidationFailed(c, "Data tidak lengkap", fields)
		return
	}

	contact := model.Contact{
		ContactForm: form,
		Status:      model.ContactStatusUnread,
		Priority:    model.PriorityMedium,
		Tags:        pq.StringArray{},
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	}
	contact.Notes = []model.ContactNote{}
	if err := cc.DB.WithContext(c.Request.Context()).Create(&contact).Error; err != nil {
		utilities.Internal(c, "Gagal mengirim pesan", err)
		return
	}

	metrics.ContactReceived()
	middleware.LoggerFromContext(c).Info("contact message received", slog.Uint64("contact_id", uint64(contact.ID)))
	utilities.OK(c, http.StatusCreated, "Pesan berhasil dikirim", Receipt{ID: contact.ID, CreatedAt: contact.CreatedAt})
}
