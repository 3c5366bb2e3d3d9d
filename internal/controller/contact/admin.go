package contact

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// StatusRequest is the body of UpdateStatus; priority and assignee are optional
type StatusRequest struct {
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	AssignedTo *uuid.UUID `json:"assignedTo"`
}

// NoteRequest is the body of AddNote
type NoteRequest struct {
	Note string `json:"note"`
}

// ReplyRequest is the body of Reply
type ReplyRequest struct {
	Message string `json:"message"`
}

// TagsRequest is the body of UpdateTags
type TagsRequest struct {
	Tags []string `json:"tags"`
}

// BulkRequest changes several messages at once; at least one change is required
type BulkRequest struct {
	IDs        []uint     `json:"ids"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	AssignedTo *uuid.UUID `json:"assignedTo"`
}

// BulkResult reports how many messages a bulk update touched
type BulkResult struct {
	Updated int64 `json:"updated"`
}

// AdminContactList is the data of the admin inbox listing
type AdminContactList struct {
	Contacts        []model.Contact  `json:"contacts"`
	StatusBreakdown map[string]int64 `json:"statusBreakdown"`
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"status":    "status",
	"priority":  "priority",
	"name":      "name",
}

const notFoundMessage = "Contact not found"

// List returns the inbox.
// @Summary List contact messages
// @Tags Contact Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param status query string false "unread, read, replied, archived or spam"
// @Param priority query string false "low, medium or high"
// @Param assignedTo query string false "User ID of the assignee"
// @Param search query string false "Search name, email, company, subject and message"
// @Param sortBy query string false "createdAt, status, priority or name"
// @Param sortOrder query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utilities.SuccessResponse{data=AdminContactList} "Messages with status breakdown"
// @Failure 400 {object} utilities.ErrorResponse "Invalid assignedTo"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/contacts [get]
func (cc *ContactController) List(c *gin.Context) {
	ctx := c.Request.Context()
	page := utilities.ParsePageQuery(c, 10, 100)

	query := cc.DB.WithContext(ctx).Model(&model.Contact{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}
	if raw := c.Query("assignedTo"); raw != "" {
		assignee, err := uuid.Parse(raw)
		if err != nil {
			utilities.InvalidID(c, err)
			return
		}
		query = query.Where("assigned_to_id = ?", assignee)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where(
			"name ILIKE @q OR email ILIKE @q OR company ILIKE @q OR subject ILIKE @q OR message ILIKE @q",
			map[string]interface{}{"q": "%" + search + "%"},
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utilities.Internal(c, "Failed to count contacts", err)
		return
	}

	resp := AdminContactList{Contacts: []model.Contact{}, StatusBreakdown: map[string]int64{}}
	if err := query.Preload("AssignedTo").
		Order(utilities.SortClause(c, sortColumns, "created_at desc")).
		Offset(page.Offset()).Limit(page.Limit).
		Find(&resp.Contacts).Error; err != nil {
		utilities.Internal(c, "Failed to fetch contacts", err)
		return
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := cc.DB.WithContext(ctx).Model(&model.Contact{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		utilities.Internal(c, "Failed to aggregate contacts", err)
		return
	}
	for _, s := range model.ContactStatuses {
		resp.StatusBreakdown[s] = 0
	}
	for _, row := range rows {
		resp.StatusBreakdown[row.Status] = row.Count
	}

	utilities.OKPage(c, resp, page.Result(total))
}

// GetByID returns one message; opening an unread message marks it read.
// @Summary Get contact message by id
// @Tags Contact Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Contact ID"
// @Success 200 {object} utilities.SuccessResponse{data=model.Contact} "Message"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Contact not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/contacts/{id} [get]
func (cc *ContactController) GetByID(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var contact model.Contact
	if err := cc.DB.WithContext(ctx).Preload("AssignedTo").First(&contact, id).Error; err != nil {
		utilities.LookupFailed(c, notFoundMessage, err)
		return
	}

	if contact.Status == model.ContactStatusUnread {
		if actor := utilities.ActorID(c); actor != nil {
			contact.SetStatus(model.ContactStatusRead, *actor, time.Now())
			if err := cc.DB.WithContext(ctx).Model(&contact).
				Select("status", "read_at", "read_by_id", "updated_at").
				Updates(&contact).Error; err != nil {
				utilities.Internal(c, "Failed to mark contact as read", err)
				return
			}
		}
	}

	utilities.OK(c, http.StatusOK, "", contact)
}

// UpdateStatus changes status and optionally priority and assignee.
// @Summary Update contact message status
// @Description The first move to read stamps readAt and readBy
// @Tags Contact Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Contact ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} utilities.SuccessResponse{data=model.Contact} "Updated message"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id, status, priority or assignee"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Contact not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/contacts/{id}/status [patch]
func (cc *ContactController) UpdateStatus(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}
	fields := map[string]string{}
	if !model.ValidContactStatus(req.Status) {
		fields["status"] = "Status must be one of " + strings.Join(model.ContactStatuses, ", ")
	}
	if req.Priority != "" && !model.ValidPriority(req.Priority) {
		fields["priority"] = "Priority must be low, medium or high"
	}
	if len(fields) > 0 {
		utilities.ValidationFailed(c, "Validation failed", fields)
		return
	}
	user, err := utilities.ExtractUser(c)
	if err != nil {
		utilities.Fail(c, http.StatusUnauthorized, utilities.KindUnauthorized, err.Error(), nil)
		return
	}

	cc.mutate(c, id, "Contact updated", func(contact *model.Contact) []string {
		contact.SetStatus(req.Status, user.ID, time.Now())
		columns := []string{"status", "read_at", "read_by_id"}
		if req.Priority != "" {
			contact.Priority = req.Priority
			columns = append(columns, "priority")
		}
		if req.AssignedTo != nil {
			contact.AssignedToID = req.AssignedTo
			contact.AssignedTo = nil
			columns = append(columns, "assigned_to_id")
		}
		return columns
	})
}

// AddNote appends an internal note.
// @Summary Add note to contact message
// @Tags Contact Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Contact ID"
// @Param note body NoteRequest true "Note"
// @Success 200 {object} utilities.SuccessResponse{data=model.Contact} "Updated message"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or empty note"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Contact not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/contacts/{id}/notes [post]
func (cc *ContactController) AddNote(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var req NoteRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}
	note := strings.TrimSpace(req.Note)
	if note == "" {
		utilities.ValidationFailed(c, "Validation failed", map[string]string{"note": "Note is required"})
		return
	}
	user, err := utilities.ExtractUser(c)
	if err != nil {
		utilities.Fail(c, http.StatusUnauthorized, utilities.KindUnauthorized, err.Error(), nil)
		return
	}

	cc.mutate(c, id, "Note added", func(contact *model.Contact) []string {
		contact.Notes = append(contact.Notes, model.ContactNote{
			AuthorID: user.ID,
			Author:   user.Username,
			Note:     note,
			Date:     time.Now(),
		})
		return []string{"notes"}
	})
}

// Reply records the answer sent to the visitor and marks the message replied.
// @Summary Reply to contact message
// @Description Only records the reply; no email is sent
// @Tags Contact Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Contact ID"
// @Param reply body ReplyRequest true "Reply message"
// @Success 200 {object} utilities.SuccessResponse{data=model.Contact} "Updated message"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or empty message"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Contact not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/contacts/{id}/reply [post]
func (cc *ContactController) Reply(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var req ReplyRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		utilities.ValidationFailed(c, "Validation failed", map[string]string{"message": "Message is required"})
		return
	}
	user, err := utilities.ExtractUser(c)
	if err != nil {
		utilities.Fail(c, http.StatusUnauthorized, utilities.KindUnauthorized, err.Error(), nil)
		return
	}

	cc.mutate(c, id, "Reply recorded", func(contact *model.Contact) []string {
		now := time.Now()
		contact.Reply = &model.ContactReply{
			Message:     message,
			RepliedByID: user.ID,
			RepliedBy:   user.Username,
			RepliedAt:   now,
		}
		contact.SetStatus(model.ContactStatusReplied, user.ID, now)
		return []string{"reply", "status"}
	})
}

// UpdateTags replaces the tags of a message.
// @Summary Update contact message tags
// @Description Tags are trimmed, lower-cased and deduplicated
// @Tags Contact Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Contact ID"
// @Param tags body TagsRequest true "Tags"
// @Success 200 {object} utilities.SuccessResponse{data=model.Contact} "Updated message"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Contact not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/contacts/{id}/tags [put]
func (cc *ContactController) UpdateTags(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	var req TagsRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}

	cc.mutate(c, id, "Tags updated", func(contact *model.Contact) []string {
		contact.Tags = normalizeTags(req.Tags)
		return []string{"tags"}
	})
}

// Bulk applies one change to several messages.
// @Summary Bulk update contact messages
// @Tags Contact Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param bulk body BulkRequest true "Message ids and the change to apply"
// @Success 200 {object} utilities.SuccessResponse{data=BulkResult} "Number of updated messages"
// @Failure 400 {object} utilities.ErrorResponse "Validation error or unknown assignee"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/contacts/bulk [patch]
func (cc *ContactController) Bulk(c *gin.Context) {
	var req BulkRequest
	if !utilities.DecodeJSON(c, &req) {
		return
	}
	fields := map[string]string{}
	if len(req.IDs) == 0 {
		fields["ids"] = "At least one id is required"
	}
	if req.Status != "" && !model.ValidContactStatus(req.Status) {
		fields["status"] = "Status must be one of " + strings.Join(model.ContactStatuses, ", ")
	}
	if req.Priority != "" && !model.ValidPriority(req.Priority) {
		fields["priority"] = "Priority must be low, medium or high"
	}
	if req.Status == "" && req.Priority == "" && req.AssignedTo == nil {
		fields["status"] = "Nothing to update"
	}
	if len(fields) > 0 {
		utilities.ValidationFailed(c, "Validation failed", fields)
		return
	}

	now := time.Now()
	updates := map[string]interface{}{"updated_at": now}
	if req.Status != "" {
		updates["status"] = req.Status
		if req.Status == model.ContactStatusRead {
			updates["read_at"] = gorm.Expr("COALESCE(read_at, ?)", now)
			updates["read_by_id"] = gorm.Expr("COALESCE(read_by_id, ?)", utilities.ActorID(c))
		}
	}
	if req.Priority != "" {
		updates["priority"] = req.Priority
	}
	if req.AssignedTo != nil {
		updates["assigned_to_id"] = *req.AssignedTo
	}

	result := cc.DB.WithContext(c.Request.Context()).Model(&model.Contact{}).
		Where("id IN ?", req.IDs).
		Updates(updates)
	if result.Error != nil {
		if utilities.IsForeignKeyViolation(result.Error) {
			utilities.ValidationFailed(c, "Validation failed", map[string]string{"assignedTo": "Unknown user"})
			return
		}
		utilities.Internal(c, "Failed to update contacts", result.Error)
		return
	}

	utilities.OK(c, http.StatusOK, "Contacts updated", BulkResult{Updated: result.RowsAffected})
}

// Delete removes a message.
// @Summary Delete contact message
// @Description Admin only
// @Tags Contact Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Contact ID"
// @Success 200 {object} utilities.MessageResponse "Contact deleted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Contact not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/contacts/{id} [delete]
func (cc *ContactController) Delete(c *gin.Context) {
	id, ok := utilities.ParseUintParam(c, "id")
	if !ok {
		return
	}

	result := cc.DB.WithContext(c.Request.Context()).Delete(&model.Contact{}, id)
	if result.Error != nil {
		utilities.Internal(c, "Failed to delete contact", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utilities.NotFound(c, notFoundMessage)
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Success: true, Message: "Contact deleted"})
}

// mutate locks one message, applies change and writes back the columns it returns
func (cc *ContactController) mutate(c *gin.Context, id uint, message string, change func(*model.Contact) []string) {
	var contact model.Contact
	err := cc.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&contact, id).Error; err != nil {
			return err
		}
		columns := append(change(&contact), "updated_at")
		return tx.Model(&contact).Select(columns).Updates(&contact).Error
	})
	if err != nil {
		if utilities.IsForeignKeyViolation(err) {
			utilities.ValidationFailed(c, "Validation failed", map[string]string{"assignedTo": "Unknown user"})
			return
		}
		utilities.LookupFailed(c, notFoundMessage, err)
		return
	}

	if err := cc.DB.WithContext(c.Request.Context()).Preload("AssignedTo").First(&contact, id).Error; err != nil {
		utilities.Internal(c, "Failed to reload contact", err)
		return
	}
	utilities.OK(c, http.StatusOK, message, contact)
}

func normalizeTags(tags []string) pq.StringArray {
	out := pq.StringArray{}
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
