package company

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

	cc := NewCompanyController(testDB, upload.New(store, nil, nil), tasks.NewCleaner(store, nil, nil))
	r := gin.New()
	r.GET("/companies", cc.ListActive)
	r.GET("/companies/parent", cc.GetParent)
	r.GET("/companies/:id", cc.GetActiveByID)

	admin := r.Group("/admin",
		middleware.RequireAuth(testDB, testTokens),
		middleware.CheckRole(model.RoleAdmin, model.RoleHR),
	)
	admin.GET("/companies", cc.List)
	admin.GET("/companies/:id", cc.GetByID)
	admin.POST("/companies", cc.Create)
	admin.PUT("/companies/:id", cc.Update)
	admin.DELETE("/companies/:id", middleware.CheckRole(model.RoleAdmin), cc.Delete)
	return r, store
}

func token(t *testing.T, user model.User) string {
	t.Helper()
	tok, err := auth.GetAccessToken(t, testDB, testTokens, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return tok
}

func logo(name string) testutil.UploadFile {
	return testutil.UploadFile{Field: "logo", Filename: name, ContentType: "image/png", Content: []byte("png-" + name)}
}

func fields(name, companyType string) map[string]string {
	return map[string]string{
		"name":            name,
		"type":            companyType,
		"description":     "General contractor",
		"address":         "Jl. Sudirman 1, Jakarta",
		"establishedYear": "1998",
	}
}

func create(t *testing.T, r *gin.Engine, f map[string]string, files ...testutil.UploadFile) map[string]interface{} {
	t.Helper()
	rec, resp := testutil.MakeMultipartRequest(f, files, token(t, database.TestAdminUser), r, "/admin/companies", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return testutil.Data(resp)
}

func TestCreate(t *testing.T) {
	r, store := newRouter(t)
	data := create(t, r, fields("PT Beton "+uuid.NewString()[:6], model.CompanyTypeSubsidiary), logo("beton.png"))

	assert.Equal(t, "active", data["status"])
	assert.Equal(t, float64(1998), data["establishedYear"])
	l := data["logo"].(map[string]interface{})
	assert.True(t, strings.HasPrefix(l["path"].(string), "companies/"))
	_, _, err := store.Open(context.Background(), l["path"].(string))
	assert.NoError(t, err)
}

func TestCreate_rejected(t *testing.T) {
	r, _ := newRouter(t)
	tok := token(t, database.TestAdminUser)

	rec, resp := testutil.MakeMultipartRequest(fields("", "branch"), nil, tok, r, "/admin/companies", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["errors"], "name")
	assert.Contains(t, resp["errors"], "type")

	svg := testutil.UploadFile{Field: "logo", Filename: "a.svg", ContentType: "image/svg+xml", Content: []byte("<svg/>")}
	rec, resp = testutil.MakeMultipartRequest(fields("PT Svg", model.CompanyTypeSubsidiary), []testutil.UploadFile{svg}, tok, r, "/admin/companies", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UploadError", resp["kind"])
}

func TestParent_single(t *testing.T) {
	r, store := newRouter(t)
	tok := token(t, database.TestAdminUser)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/companies/parent", http.MethodGet)
	require.Equal(t, http.StatusNotFound, rec.Code)

	parent := create(t, r, fields("PT Holding", model.CompanyTypeParent), logo("holding.png"))

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/companies/parent", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, parent["id"], testutil.Data(resp)["id"])

	rec, resp = testutil.MakeMultipartRequest(fields("PT Holding Dua", model.CompanyTypeParent), []testutil.UploadFile{logo("dua.png")}, tok, r, "/admin/companies", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DuplicateParent", resp["kind"])
	assert.Equal(t, "Perusahaan induk sudah ada", resp["message"])

	// promoting a subsidiary is rejected too
	sub := create(t, r, fields("PT Anak", model.CompanyTypeSubsidiary))
	rec, resp = testutil.MakeJSONRequest(map[string]interface{}{"name": "PT Anak", "type": "parent"}, tok, r, fmt.Sprintf("/admin/companies/%v", sub["id"]), http.MethodPut)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DuplicateParent", resp["kind"])

	// the parent itself can be edited
	rec, _ = testutil.MakeJSONRequest(map[string]interface{}{"name": "PT Holding Baru", "type": "parent"}, tok, r, fmt.Sprintf("/admin/companies/%v", parent["id"]), http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/companies", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	list := testutil.DataList(resp)
	require.NotEmpty(t, list)
	assert.Equal(t, "parent", list[0].(map[string]interface{})["type"])

	rec, _ = testutil.MakeJSONRequest(nil, tok, r, fmt.Sprintf("/admin/companies/%v", parent["id"]), http.MethodDelete)
	require.Equal(t, http.StatusOK, rec.Code)
	_, _, err := store.Open(context.Background(), parent["logo"].(map[string]interface{})["path"].(string))
	assert.ErrorIs(t, err, storage.ErrNotFound)

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/companies/parent", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublic_onlyActive(t *testing.T) {
	r, _ := newRouter(t)
	f := fields("PT Nonaktif "+uuid.NewString()[:6], model.CompanyTypeSubsidiary)
	f["status"] = "inactive"
	inactive := create(t, r, f)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/companies/%v", inactive["id"]), http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestHRUser), r, fmt.Sprintf("/admin/companies/%v", inactive["id"]), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, token(t, database.TestHRUser), r, "/admin/companies?status=inactive&search=Nonaktif", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, testutil.DataList(resp), 1)
}

func TestUpdate_replacesLogo(t *testing.T) {
	r, store := newRouter(t)
	ctx := context.Background()
	name := "PT Baja " + uuid.NewString()[:6]
	data := create(t, r, fields(name, model.CompanyTypeSubsidiary), logo("old.png"))
	oldPath := data["logo"].(map[string]interface{})["path"].(string)

	f := fields(name, model.CompanyTypeSubsidiary)
	f["status"] = "inactive"
	rec, resp := testutil.MakeMultipartRequest(f, []testutil.UploadFile{logo("new.png")}, token(t, database.TestHRUser), r, fmt.Sprintf("/admin/companies/%v", data["id"]), http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := testutil.Data(resp)
	assert.Equal(t, "inactive", updated["status"])
	_, _, err := store.Open(ctx, updated["logo"].(map[string]interface{})["path"].(string))
	assert.NoError(t, err)
	_, _, err = store.Open(ctx, oldPath)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	rec, _ = testutil.MakeJSONRequest(map[string]interface{}{"name": name, "type": "subsidiary"}, token(t, database.TestHRUser), r, "/admin/companies/999999", http.MethodPut)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete_adminOnly(t *testing.T) {
	r, _ := newRouter(t)
	data := create(t, r, fields("PT Hapus "+uuid.NewString()[:6], model.CompanyTypeSubsidiary))
	endpoint := fmt.Sprintf("/admin/companies/%v", data["id"])

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestHRUser), r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestAdminUser), r, endpoint, http.MethodDelete)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestAdminUser), r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
