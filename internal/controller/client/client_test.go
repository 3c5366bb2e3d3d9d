package client

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"gorm.io/gorm"

	"corpsite-backend/internal/auth"
	"corpsite-backend/internal/database"
	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/storage"
	"corpsite-backend/internal/tasks"
	"corpsite-backend/internal/testutil"
	"corpsite-backend/internal/upload"
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

func newRouter(t *testing.T) (*gin.Engine, storage.FileStore) {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	cc := NewClientController(testDB, upload.New(store, nil, nil), tasks.NewCleaner(store, nil, nil))
	r := gin.New()
	r.GET("/clients", cc.ListActive)
	r.GET("/clients/:id", cc.GetActiveByID)

	admin := r.Group("/admin",
		middleware.RequireAuth(testDB, testTokens),
		middleware.CheckRole(model.RoleAdmin, model.RoleHR),
	)
	admin.GET("/clients", cc.List)
	admin.GET("/clients/:id", cc.GetByID)
	admin.POST("/clients", cc.Create)
	admin.PUT("/clients/:id", cc.Update)
	admin.PATCH("/clients/:id/project-count", cc.UpdateProjectCount)
	admin.DELETE("/clients/:id", middleware.CheckRole(model.RoleAdmin), cc.Delete)
	return r, store
}

func token(t *testing.T, user model.User) string {
	t.Helper()
	tok, err := auth.GetAccessToken(t, testDB, testTokens, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return tok
}

func uniqueName() string {
	return "Client " + uuid.NewString()[:8]
}

func logo(name string) testutil.UploadFile {
	return testutil.UploadFile{Field: "logo", Filename: name, ContentType: "image/png", Content: []byte("logo-" + name)}
}

func createClient(t *testing.T, r *gin.Engine, fields map[string]string, files ...testutil.UploadFile) map[string]interface{} {
	t.Helper()
	rec, resp := testutil.MakeMultipartRequest(fields, files, token(t, database.TestAdminUser), r, "/admin/clients", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return testutil.Data(resp)
}

func TestCreate_withLogo(t *testing.T) {
	r, store := newRouter(t)
	name := uniqueName()

	data := createClient(t, r, map[string]string{"name": name, "industry": "Energy", "featured": "true"}, logo("acme.png"))

	assert.Equal(t, name, data["name"])
	assert.Equal(t, true, data["featured"])
	assert.Equal(t, model.ClientStatusActive, data["status"])
	assert.NotContains(t, data, "nameKey")
	path := data["logo"].(map[string]interface{})["path"].(string)
	assert.True(t, strings.HasPrefix(path, "clients/"))
	_, _, err := store.Open(context.Background(), path)
	assert.NoError(t, err)
}

func TestCreate_duplicateNameIgnoresCase(t *testing.T) {
	r, _ := newRouter(t)
	name := uniqueName()
	createClient(t, r, map[string]string{"name": name})

	rec, resp := testutil.MakeJSONRequest(map[string]string{"name": "  " + strings.ToUpper(name) + " "}, token(t, database.TestHRUser), r, "/admin/clients", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DuplicateName", resp["kind"])
}

func TestCreate_rejected(t *testing.T) {
	r, _ := newRouter(t)
	tok := token(t, database.TestAdminUser)

	rec, resp := testutil.MakeJSONRequest(map[string]string{"industry": "Energy"}, tok, r, "/admin/clients", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", resp["kind"])

	gif := testutil.UploadFile{Field: "logo", Filename: "a.gif", ContentType: "image/gif", Content: []byte("gif")}
	rec, resp = testutil.MakeMultipartRequest(map[string]string{"name": uniqueName()}, []testutil.UploadFile{gif}, tok, r, "/admin/clients", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UploadError", resp["kind"])

	big := testutil.UploadFile{Field: "logo", Filename: "a.png", ContentType: "image/png", Content: make([]byte, upload.ImageSize+1)}
	rec, resp = testutil.MakeMultipartRequest(map[string]string{"name": uniqueName()}, []testutil.UploadFile{big}, tok, r, "/admin/clients", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ukuran file terlalu besar. Maksimal 5MB", resp["message"])

	rec, resp = testutil.MakeMultipartRequest(map[string]string{"name": uniqueName(), "featured": "maybe"}, nil, tok, r, "/admin/clients", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidFormat", resp["kind"])
}

func TestPublic_onlyActive(t *testing.T) {
	r, _ := newRouter(t)
	industry := "Industry " + uuid.NewString()[:8]
	active := createClient(t, r, map[string]string{"name": uniqueName(), "industry": industry})
	inactive := createClient(t, r, map[string]string{"name": uniqueName(), "industry": industry, "status": "inactive"})

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/clients?industry="+strings.ReplaceAll(industry, " ", "%20"), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	list := testutil.DataList(resp)
	require.Len(t, list, 1)
	assert.Equal(t, active["id"], list[0].(map[string]interface{})["id"])

	rec, _ = testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/clients/%v", inactive["id"]), http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/clients/%v", active["id"]), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, token(t, database.TestHRUser), r, fmt.Sprintf("/admin/clients/%v", inactive["id"]), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "inactive", testutil.Data(resp)["status"])
}

func TestUpdate_replacesLogo(t *testing.T) {
	r, store := newRouter(t)
	ctx := context.Background()
	name := uniqueName()
	data := createClient(t, r, map[string]string{"name": name}, logo("old.png"))
	oldPath := data["logo"].(map[string]interface{})["path"].(string)

	endpoint := fmt.Sprintf("/admin/clients/%v", data["id"])
	rec, resp := testutil.MakeMultipartRequest(map[string]string{"name": strings.ToLower(name), "website": "https://example.com"}, []testutil.UploadFile{logo("new.png")}, token(t, database.TestHRUser), r, endpoint, http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := testutil.Data(resp)
	assert.Equal(t, "https://example.com", updated["website"])
	newPath := updated["logo"].(map[string]interface{})["path"].(string)
	assert.NotEqual(t, oldPath, newPath)

	_, _, err := store.Open(ctx, newPath)
	assert.NoError(t, err)
	_, _, err = store.Open(ctx, oldPath)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// without a new file the logo is kept
	rec, resp = testutil.MakeJSONRequest(map[string]string{"name": name}, token(t, database.TestHRUser), r, endpoint, http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, newPath, testutil.Data(resp)["logo"].(map[string]interface{})["path"])
}

func TestUpdate_duplicateName(t *testing.T) {
	r, _ := newRouter(t)
	first := createClient(t, r, map[string]string{"name": uniqueName()})
	second := createClient(t, r, map[string]string{"name": uniqueName()})

	rec, resp := testutil.MakeJSONRequest(map[string]string{"name": first["name"].(string)}, token(t, database.TestAdminUser), r, fmt.Sprintf("/admin/clients/%v", second["id"]), http.MethodPut)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DuplicateName", resp["kind"])

	rec, _ = testutil.MakeJSONRequest(map[string]string{"name": "x"}, token(t, database.TestAdminUser), r, "/admin/clients/999999", http.MethodPut)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProjectCount(t *testing.T) {
	r, _ := newRouter(t)
	data := createClient(t, r, map[string]string{"name": uniqueName()})
	endpoint := fmt.Sprintf("/admin/clients/%v/project-count", data["id"])
	tok := token(t, database.TestHRUser)

	rec, resp := testutil.MakeJSONRequest(map[string]string{"action": "decrement"}, tok, r, endpoint, http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), testutil.Data(resp)["projectCount"])
	assert.Nil(t, testutil.Data(resp)["lastProjectDate"])

	for i := 0; i < 2; i++ {
		rec, resp = testutil.MakeJSONRequest(map[string]string{"action": "increment"}, tok, r, endpoint, http.MethodPatch)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, float64(2), testutil.Data(resp)["projectCount"])
	assert.NotNil(t, testutil.Data(resp)["lastProjectDate"])

	rec, resp = testutil.MakeJSONRequest(map[string]string{"action": "reset"}, tok, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", resp["kind"])
}

func TestUpdate_keepsProjectCount(t *testing.T) {
	r, _ := newRouter(t)
	name := uniqueName()
	data := createClient(t, r, map[string]string{"name": name})
	id := uint(data["id"].(float64))

	// a project is counted after the handler has loaded the client
	const hook = "test:concurrent_project_count"
	require.NoError(t, testDB.Callback().Update().Before("gorm:update").Register(hook, func(db *gorm.DB) {
		if db.Statement.Table != "clients" {
			return
		}
		testDB.Exec("UPDATE clients SET project_count = project_count + 1, last_project_date = now() WHERE id = ?", id)
	}))
	t.Cleanup(func() { testDB.Callback().Update().Remove(hook) })

	endpoint := fmt.Sprintf("/admin/clients/%d", id)
	rec, resp := testutil.MakeJSONRequest(map[string]string{"name": name, "industry": "Mining"}, token(t, database.TestHRUser), r, endpoint, http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(1), testutil.Data(resp)["projectCount"])
	assert.NotNil(t, testutil.Data(resp)["lastProjectDate"])

	var stored model.Client
	require.NoError(t, testDB.First(&stored, id).Error)
	assert.Equal(t, "Mining", stored.Industry)
	assert.Equal(t, 1, stored.ProjectCount)
	assert.NotNil(t, stored.LastProjectDate)
}

func TestDelete(t *testing.T) {
	r, store := newRouter(t)
	data := createClient(t, r, map[string]string{"name": uniqueName()}, logo("bye.png"))
	path := data["logo"].(map[string]interface{})["path"].(string)
	endpoint := fmt.Sprintf("/admin/clients/%v", data["id"])

	rec, resp := testutil.MakeJSONRequest(nil, token(t, database.TestHRUser), r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", resp["kind"])

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestAdminUser), r, endpoint, http.MethodDelete)
	require.Equal(t, http.StatusOK, rec.Code)
	_, _, err := store.Open(context.Background(), path)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestAdminUser), r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
