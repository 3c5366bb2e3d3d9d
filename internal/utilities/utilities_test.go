package utilities

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"corpsite-backend/internal/model"
)

func newContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, rec
}

func TestParsePageQuery(t *testing.T) {
	c, _ := newContext("/?page=3&limit=500")
	q := ParsePageQuery(c, 10, 100)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 100, q.Limit)
	assert.Equal(t, 200, q.Offset())

	c, _ = newContext("/?page=-1&limit=abc")
	q = ParsePageQuery(c, 10, 100)
	assert.Equal(t, PageQuery{Page: 1, Limit: 10}, q)

	assert.Equal(t, Pagination{Page: 1, Limit: 10, Total: 21, TotalPages: 3}, q.Result(21))
	assert.Equal(t, 0, q.Result(0).TotalPages)
}

func TestSortClause(t *testing.T) {
	allowed := map[string]string{"createdAt": "created_at"}

	c, _ := newContext("/?sortBy=createdAt&sortOrder=asc")
	assert.Equal(t, "created_at asc", SortClause(c, allowed, "id desc"))

	c, _ = newContext("/?sortBy=password")
	assert.Equal(t, "id desc", SortClause(c, allowed, "id desc"))
}

func TestFailHidesRawErrorOnPublicRoutes(t *testing.T) {
	c, rec := newContext("/")
	Internal(c, "boom", errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), `"kind":"InternalError"`)

	c, rec = newContext("/")
	c.Set("user", model.User{Role: model.RoleAdmin})
	Internal(c, "boom", errors.New("connection refused"))
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestLookupFailed(t *testing.T) {
	c, rec := newContext("/")
	LookupFailed(c, "Lowongan tidak ditemukan", gorm.ErrRecordNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"NotFound"`)
}

func TestPgErrors(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_application_career_email"})
	assert.True(t, IsUniqueViolation(unique, ""))
	assert.True(t, IsUniqueViolation(unique, "idx_application_career_email"))
	assert.False(t, IsUniqueViolation(unique, "idx_clients_name_key"))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain"), ""))
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, VerifyPassword("s3cret", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestExtractToken(t *testing.T) {
	c, _ := newContext("/")
	c.Request.Header.Set("Authorization", "Bearer abc")
	token, err := ExtractToken(c)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	c, _ = newContext("/")
	c.Request.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})
	token, err = ExtractToken(c)
	require.NoError(t, err)
	assert.Equal(t, "from-cookie", token)

	c, _ = newContext("/")
	_, err = ExtractToken(c)
	assert.Error(t, err)
}

func TestParseParams(t *testing.T) {
	c, rec := newContext("/")
	c.Params = gin.Params{{Key: "id", Value: "x1"}}
	_, ok := ParseUintParam(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"InvalidId"`)

	c, _ = newContext("/")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := ParseUintParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

type formBase struct {
	Title string `json:"title"`
}

type formTarget struct {
	formBase
	Name     string     `json:"name"`
	Count    int        `json:"count"`
	Featured bool       `json:"featured"`
	When     *time.Time `json:"when,omitempty"`
	Tags     []string   `json:"tags"`
	Secret   string     `json:"-"`
}

func TestDecodeForm(t *testing.T) {
	form := &multipart.Form{Value: map[string][]string{
		"title":    {"Tower A"},
		"name":     {"  42  "},
		"count":    {"7"},
		"featured": {"true"},
		"when":     {"2024-05-01"},
		"tags":     {`["a","b"]`},
		"Secret":   {"x"},
	}}

	var dst formTarget
	require.NoError(t, DecodeForm(form, &dst))
	assert.Equal(t, "Tower A", dst.Title)
	assert.Equal(t, "42", dst.Name)
	assert.Equal(t, 7, dst.Count)
	assert.True(t, dst.Featured)
	require.NotNil(t, dst.When)
	assert.Equal(t, "2024-05-01", dst.When.Format(time.DateOnly))
	assert.Equal(t, []string{"a", "b"}, dst.Tags)
	assert.Empty(t, dst.Secret)

	dst = formTarget{Count: 3}
	require.NoError(t, DecodeForm(&multipart.Form{Value: map[string][]string{"count": {""}, "when": {""}}}, &dst))
	assert.Equal(t, 3, dst.Count)
	assert.Nil(t, dst.When)

	assert.Error(t, DecodeForm(&multipart.Form{Value: map[string][]string{"featured": {"maybe"}}}, &dst))
	assert.Error(t, DecodeForm(&multipart.Form{Value: map[string][]string{"when": {"01/05/2024"}}}, &dst))
	assert.Error(t, DecodeForm(&multipart.Form{}, dst))
}

func TestDecodeBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("title", "Tower B"))
	require.NoError(t, w.WriteField("count", "2"))
	require.NoError(t, w.Close())

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", body)
	c.Request.Header.Set("Content-Type", w.FormDataContentType())

	var dst formTarget
	form, ok := DecodeBody(c, &dst)
	require.True(t, ok)
	assert.NotNil(t, form)
	assert.Equal(t, "Tower B", dst.Title)
	assert.Equal(t, 2, dst.Count)

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Tower C","unknown":1}`))
	c.Request.Header.Set("Content-Type", "application/json")
	form, ok = DecodeBody(c, &dst)
	assert.False(t, ok)
	assert.Nil(t, form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), KindInvalidFormat)
}
