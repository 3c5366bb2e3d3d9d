package contact

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"corpsite-backend/internal/auth"
	"corpsite-backend/internal/database"
	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct
var testTokens = auth.NewTokenService("test-secret", time.Hour)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
	os.Exit(code)
}

func newRouter() *gin.Engine {
	cc := NewContactController(testDB)
	r := gin.New()
	r.POST("/contacts", cc.Submit)

	admin := r.Group("/admin",
		middleware.RequireAuth(testDB, testTokens),
		middleware.CheckRole(model.RoleAdmin, model.RoleHR),
	)
	admin.GET("/contacts", cc.List)
	admin.PATCH("/contacts/bulk", cc.Bulk)
	admin.GET("/contacts/:id", cc.GetByID)
	admin.PATCH("/contacts/:id/status", cc.UpdateStatus)
	admin.POST("/contacts/:id/notes", cc.AddNote)
	admin.POST("/contacts/:id/reply", cc.Reply)
	admin.PUT("/contacts/:id/tags", cc.UpdateTags)
	admin.DELETE("/contacts/:id", middleware.CheckRole(model.RoleAdmin), cc.Delete)
	return r
}

func token(t *testing.T, user model.User) string {
	t.Helper()
	tok, err := auth.GetAccessToken(t, testDB, testTokens, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return tok
}

func form(subject string) map[string]string {
	return map[string]string{
		"name":    "Rina",
		"email":   "Rina@Example.com",
		"company": "PT Maju",
		"subject": subject,
		"message": "Kami ingin bekerja sama",
	}
}

func submit(t *testing.T, r *gin.Engine, subject string) uint {
	t.Helper()
	rec, resp := testutil.MakeJSONRequest(form(subject), "", r, "/contacts", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return uint(testutil.Data(resp)["id"].(float64))
}

func TestSubmit(t *testing.T) {
	r := newRouter()
	id := submit(t, r, "Kerja sama")

	var stored model.Contact
	require.NoError(t, testDB.First(&stored, id).Error)
	assert.Equal(t, model.ContactStatusUnread, stored.Status)
	assert.Equal(t, model.PriorityMedium, stored.Priority)
	assert.Equal(t, "rina@example.com", stored.Email)
	assert.NotEmpty(t, stored.IPAddress)
	assert.Empty(t, stored.Notes)
}

func TestSubmit_rejected(t *testing.T) {
	r := newRouter()

	body := form("x")
	body["email"] = "bukan-email"
	rec, resp := testutil.MakeJSONRequest(body, "", r, "/contacts", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", resp["kind"])
	assert.Contains(t, resp["errors"], "email")

	body = form("x")
	body["status"] = "replied"
	rec, resp = testutil.MakeJSONRequest(body, "", r, "/contacts", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidFormat", resp["kind"])
	assert.Empty(t, resp["error"])
}

func TestList_filtersAndBreakdown(t *testing.T) {
	r := newRouter()
	subject := "Subject " + uuid.NewString()[:8]
	id := submit(t, r, subject)
	submit(t, r, subject)
	tok := token(t, database.TestHRUser)

	rec, resp := testutil.MakeJSONRequest(map[string]interface{}{"status": "spam", "priority": "high"}, tok, r, fmt.Sprintf("/admin/contacts/%d/status", id), http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, resp = testutil.MakeJSONRequest(nil, tok, r, "/admin/contacts?priority=high&search="+subject[8:], http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	data := testutil.Data(resp)
	contacts := data["contacts"].([]interface{})
	require.Len(t, contacts, 1)
	assert.Equal(t, float64(id), contacts[0].(map[string]interface{})["id"])

	breakdown := data["statusBreakdown"].(map[string]interface{})
	assert.GreaterOrEqual(t, breakdown["spam"], float64(1))
	assert.Contains(t, breakdown, model.ContactStatusArchived)

	rec, resp = testutil.MakeJSONRequest(nil, tok, r, "/admin/contacts?assignedTo=nobody", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidId", resp["kind"])
}

func TestGetByID_marksRead(t *testing.T) {
	r := newRouter()
	id := submit(t, r, "Read me")

	rec, resp := testutil.MakeJSONRequest(nil, token(t, database.TestHRUser), r, fmt.Sprintf("/admin/contacts/%d", id), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	data := testutil.Data(resp)
	assert.Equal(t, model.ContactStatusRead, data["status"])
	assert.Equal(t, database.TestHRUser.ID.String(), data["readById"])
	require.NotNil(t, data["readAt"])

	var first model.Contact
	require.NoError(t, testDB.First(&first, id).Error)
	require.NotNil(t, first.ReadAt)

	// a later status change back and forth keeps the first read stamp
	for _, status := range []string{"archived", "read"} {
		rec, resp = testutil.MakeJSONRequest(map[string]string{"status": status}, token(t, database.TestAdminUser), r, fmt.Sprintf("/admin/contacts/%d/status", id), http.MethodPatch)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, database.TestHRUser.ID.String(), testutil.Data(resp)["readById"])

	var after model.Contact
	require.NoError(t, testDB.First(&after, id).Error)
	require.NotNil(t, after.ReadAt)
	assert.True(t, first.ReadAt.Equal(*after.ReadAt))
}

func TestUpdateStatus_assign(t *testing.T) {
	r := newRouter()
	id := submit(t, r, "Assign me")
	tok := token(t, database.TestAdminUser)
	endpoint := fmt.Sprintf("/admin/contacts/%d/status", id)

	rec, resp := testutil.MakeJSONRequest(map[string]interface{}{"status": "read", "assignedTo": database.TestHRUser.ID}, tok, r, endpoint, http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, database.TestHRUser.Username, testutil.Data(resp)["assignedTo"].(map[string]interface{})["username"])

	rec, resp = testutil.MakeJSONRequest(map[string]interface{}{"status": "read", "assignedTo": uuid.New()}, tok, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["errors"], "assignedTo")

	rec, resp = testutil.MakeJSONRequest(map[string]string{"status": "closed"}, tok, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", resp["kind"])

	rec, _ = testutil.MakeJSONRequest(map[string]string{"status": "read"}, tok, r, "/admin/contacts/999999/status", http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotesReplyAndTags(t *testing.T) {
	r := newRouter()
	id := submit(t, r, "Notes")
	tok := token(t, database.TestHRUser)

	for _, note := range []string{"first", "second"} {
		rec, _ := testutil.MakeJSONRequest(map[string]string{"note": note}, tok, r, fmt.Sprintf("/admin/contacts/%d/notes", id), http.MethodPost)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec, _ := testutil.MakeJSONRequest(map[string]string{"note": "  "}, tok, r, fmt.Sprintf("/admin/contacts/%d/notes", id), http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, resp := testutil.MakeJSONRequest(map[string]string{"message": "Terima kasih"}, tok, r, fmt.Sprintf("/admin/contacts/%d/reply", id), http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	data := testutil.Data(resp)
	assert.Equal(t, model.ContactStatusReplied, data["status"])
	assert.Equal(t, "Terima kasih", data["reply"].(map[string]interface{})["message"])
	assert.Equal(t, database.TestHRUser.Username, data["reply"].(map[string]interface{})["repliedBy"])

	notes := data["notes"].([]interface{})
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].(map[string]interface{})["note"])
	assert.Equal(t, database.TestHRUser.Username, notes[1].(map[string]interface{})["author"])

	rec, resp = testutil.MakeJSONRequest(map[string][]string{"tags": {" Partner ", "partner", "", "URGENT"}}, tok, r, fmt.Sprintf("/admin/contacts/%d/tags", id), http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{"partner", "urgent"}, testutil.Data(resp)["tags"])
}

func TestBulk(t *testing.T) {
	r := newRouter()
	a, b := submit(t, r, "Bulk"), submit(t, r, "Bulk")
	tok := token(t, database.TestHRUser)

	rec, resp := testutil.MakeJSONRequest(map[string]interface{}{"ids": []uint{a, b}, "status": "read", "priority": "low"}, tok, r, "/admin/contacts/bulk", http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(2), testutil.Data(resp)["updated"])

	var stored []model.Contact
	require.NoError(t, testDB.Where("id IN ?", []uint{a, b}).Find(&stored).Error)
	for _, c := range stored {
		assert.Equal(t, model.ContactStatusRead, c.Status)
		assert.Equal(t, model.PriorityLow, c.Priority)
		assert.NotNil(t, c.ReadAt)
	}

	rec, resp = testutil.MakeJSONRequest(map[string]interface{}{"ids": []uint{a}}, tok, r, "/admin/contacts/bulk", http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", resp["kind"])

	rec, _ = testutil.MakeJSONRequest(map[string]interface{}{"ids": []uint{}, "status": "read"}, tok, r, "/admin/contacts/bulk", http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete(t *testing.T) {
	r := newRouter()
	id := submit(t, r, "Delete")
	endpoint := fmt.Sprintf("/admin/contacts/%d", id)

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestHRUser), r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestAdminUser), r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, token(t, database.TestAdminUser), r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", resp["kind"])
}
