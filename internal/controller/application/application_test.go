package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
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
var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

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

	ac := NewApplicationController(testDB, upload.New(store, nil, quietLogger), tasks.NewCleaner(store, nil, quietLogger))
	r := gin.New()
	r.POST("/careers/:id/apply", ac.Submit)
	r.GET("/applications/:id/status", ac.GetStatus)

	admin := r.Group("/admin",
		middleware.RequireAuth(testDB, testTokens),
		middleware.CheckRole(model.RoleAdmin, model.RoleHR),
	)
	admin.GET("/applications", ac.List)
	admin.GET("/applications/statistics", ac.GetStatistics)
	admin.GET("/applications/:id", ac.GetByID)
	admin.PATCH("/applications/:id/status", ac.UpdateStatus)
	admin.POST("/applications/:id/notes", ac.AddNote)
	admin.POST("/applications/:id/schedule-interview", ac.ScheduleInterview)
	admin.GET("/applications/:id/documents/:documentType", ac.DownloadDocument)
	admin.DELETE("/applications/:id", middleware.CheckRole(model.RoleAdmin), ac.Delete)
	return r, store
}

func token(t *testing.T, user model.User) string {
	t.Helper()
	tok, err := auth.GetAccessToken(t, testDB, testTokens, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return tok
}

func createCareer(t *testing.T, status string) model.Career {
	t.Helper()
	closeDate := time.Now().AddDate(0, 1, 0)
	c := model.Career{
		EditableCareerInfo: model.EditableCareerInfo{
			Title:       "Site Engineer",
			Location:    "Jakarta",
			Description: "fixture posting",
			Department:  "Engineering",
			CloseDate:   &closeDate,
		},
	}
	require.NoError(t, c.SetStatus(status, time.Now()))
	require.NoError(t, testDB.Create(&c).Error)
	return c
}

func applicationCount(t *testing.T, careerID uint) int {
	t.Helper()
	var c model.Career
	require.NoError(t, testDB.First(&c, careerID).Error)
	return c.ApplicationCount
}

func formFields(email string) map[string]string {
	return map[string]string{
		"applicant.fullName": "Budi Santoso",
		"applicant.email":    email,
		"applicant.phone":    "081234567890",
		"education":          `[{"degree":"S1","institution":"ITB","major":"Teknik Sipil","graduationYear":2018}]`,
		"skills":             `[{"name":"AutoCAD","level":"advanced"}]`,
		"languages":          `[{"language":"English","proficiency":"fluent"}]`,
		"experience":         `{"totalYears":5,"currentPosition":"Engineer","currentCompany":"PT Beton","previousPositions":[]}`,
		"expectedSalary":     `{"amount":15000000,"currency":"IDR","negotiable":true}`,
		"motivation":         "Ingin berkembang",
		"availabilityDate":   "2026-12-01",
	}
}

var resumeFile = testutil.UploadFile{Field: "resume", Filename: "cv.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4 resume")}

func submit(t *testing.T, r *gin.Engine, careerID uint, fields map[string]string, files ...testutil.UploadFile) (int, map[string]interface{}) {
	t.Helper()
	rec, resp := testutil.MakeMultipartRequest(fields, files, "", r, fmt.Sprintf("/careers/%d/apply", careerID), http.MethodPost)
	return rec.Code, resp
}

func submitOK(t *testing.T, r *gin.Engine, careerID uint, email string, files ...testutil.UploadFile) map[string]interface{} {
	t.Helper()
	if len(files) == 0 {
		files = []testutil.UploadFile{resumeFile}
	}
	code, resp := submit(t, r, careerID, formFields(email), files...)
	require.Equal(t, http.StatusCreated, code, resp)
	return testutil.Data(resp)
}

func uniqueEmail() string {
	return "applicant-" + uuid.NewString()[:8] + "@example.com"
}

func TestSubmit_happyPath(t *testing.T) {
	r, store := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	require.Equal(t, 0, applicationCount(t, career.ID))

	data := submitOK(t, r, career.ID, "Budi@Example.COM ")

	assert.Equal(t, model.ApplicationStatusSubmitted, data["status"])
	applicant := data["applicant"].(map[string]interface{})
	assert.Equal(t, "budi@example.com", applicant["email"])

	careerView := data["career"].(map[string]interface{})
	assert.Equal(t, "Site Engineer", careerView["title"])
	assert.Equal(t, "Jakarta", careerView["location"])

	resume := data["documents"].(map[string]interface{})["resume"].(map[string]interface{})
	assert.Equal(t, "cv.pdf", resume["filename"])
	assert.Equal(t, "application/pdf", resume["mimetype"])
	path := resume["path"].(string)
	assert.True(t, strings.HasPrefix(path, "applications/"))

	_, _, err := store.Open(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, 1, applicationCount(t, career.ID))

	var stored model.Application
	require.NoError(t, testDB.First(&stored, "id = ?", data["id"]).Error)
	assert.Len(t, stored.Education, 1)
	assert.Equal(t, "AutoCAD", stored.Skills[0].Name)
	assert.Equal(t, float64(5), stored.Experience.Data().TotalYears)
	assert.True(t, stored.ExpectedSalary.Data().Negotiable)
	require.NotNil(t, stored.AvailabilityDate)
}

func TestSubmit_applicantAsJSONField(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)

	fields := map[string]string{
		"applicant": `{"fullName":"Siti","email":"siti@example.com","phone":"0812"}`,
	}
	code, resp := submit(t, r, career.ID, fields, resumeFile)
	require.Equal(t, http.StatusCreated, code, resp)
	assert.Equal(t, "Siti", testutil.Data(resp)["applicant"].(map[string]interface{})["fullName"])
}

func TestSubmit_inactiveCareer(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusDraft)

	code, resp := submit(t, r, career.ID, formFields(uniqueEmail()), resumeFile)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NotFound", resp["kind"])

	// the posting is checked before the documents
	code, resp = submit(t, r, career.ID, formFields(uniqueEmail()))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NotFound", resp["kind"])

	var count int64
	testDB.Model(&model.Application{}).Where("career_id = ?", career.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubmit_duplicate(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	email := uniqueEmail()

	submitOK(t, r, career.ID, email)
	code, resp := submit(t, r, career.ID, formFields(strings.ToUpper(email)), resumeFile)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "DuplicateSubmission", resp["kind"])

	var count int64
	testDB.Model(&model.Application{}).Where("career_id = ?", career.ID).Count(&count)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 1, applicationCount(t, career.ID))

	// same email on another posting is a different application
	other := createCareer(t, model.CareerStatusActive)
	submitOK(t, r, other.ID, email)
}

func TestSubmit_counterMatchesSubmissions(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)

	const n = 4
	for i := 0; i < n; i++ {
		submitOK(t, r, career.ID, uniqueEmail())
	}
	assert.Equal(t, n, applicationCount(t, career.ID))
}

func TestSubmit_invalidNestedJSON(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)

	fields := formFields(uniqueEmail())
	fields["education"] = `[{"degree":`
	code, resp := submit(t, r, career.ID, fields, resumeFile)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "InvalidFormat", resp["kind"])
	assert.Equal(t, 0, applicationCount(t, career.ID))
}

func TestSubmit_validation(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)

	fields := formFields("not-an-email")
	delete(fields, "applicant.fullName")
	code, resp := submit(t, r, career.ID, fields, resumeFile)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "ValidationError", resp["kind"])
	errs := resp["errors"].(map[string]interface{})
	assert.Contains(t, errs, "applicant.fullName")
	assert.Contains(t, errs, "applicant.email")
}

func TestSubmit_uploadErrors(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)

	t.Run("Resume is required", func(t *testing.T) {
		code, resp := submit(t, r, career.ID, formFields(uniqueEmail()))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "UploadError", resp["kind"])
	})

	t.Run("Resume type", func(t *testing.T) {
		bad := testutil.UploadFile{Field: "resume", Filename: "cv.exe", ContentType: "application/octet-stream", Content: []byte("MZ")}
		code, resp := submit(t, r, career.ID, formFields(uniqueEmail()), bad)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "UploadError", resp["kind"])
	})

	t.Run("Resume size", func(t *testing.T) {
		big := testutil.UploadFile{Field: "resume", Filename: "cv.pdf", ContentType: "application/pdf", Content: make([]byte, upload.DocumentSize+1)}
		code, resp := submit(t, r, career.ID, formFields(uniqueEmail()), big)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "UploadError", resp["kind"])
		assert.Equal(t, "Ukuran file terlalu besar. Maksimal 10MB", resp["message"])
	})

	assert.Equal(t, 0, applicationCount(t, career.ID))
}

func TestSubmit_largestDocumentSet(t *testing.T) {
	assert.Equal(t, 13*upload.DocumentSize, MaxSubmissionBytes())

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ac := NewApplicationController(testDB, upload.New(store, nil, quietLogger), tasks.NewCleaner(store, nil, quietLogger))
	r := gin.New()
	r.POST("/careers/:id/apply", middleware.SizeLimit(MaxSubmissionBytes()), ac.Submit)

	career := createCareer(t, model.CareerStatusActive)
	almostFull := int(upload.DocumentSize) - 1024
	files := []testutil.UploadFile{{Field: "resume", Filename: "cv.pdf", ContentType: "application/pdf", Content: make([]byte, almostFull)}}
	for i := 0; i < 7; i++ {
		files = append(files, testutil.UploadFile{
			Field: "certificates", Filename: fmt.Sprintf("cert%d.pdf", i), ContentType: "application/pdf", Content: make([]byte, almostFull),
		})
	}

	code, resp := submit(t, r, career.ID, formFields(uniqueEmail()), files...)
	require.Equal(t, http.StatusCreated, code, resp)
	assert.Len(t, testutil.Data(resp)["documents"].(map[string]interface{})["certificates"], 7)
	assert.Equal(t, 1, applicationCount(t, career.ID))
}

func TestGetStatus(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	email := uniqueEmail()
	data := submitOK(t, r, career.ID, email)
	id := data["id"].(string)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/applications/%s/status?email=%s", id, strings.ToUpper(email)), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	view := testutil.Data(resp)
	assert.Equal(t, model.ApplicationStatusSubmitted, view["status"])
	assert.Equal(t, "Site Engineer", view["career"].(map[string]interface{})["title"])
	assert.NotContains(t, view, "applicant")
	assert.NotContains(t, view, "documents")

	rec, resp = testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/applications/%s/status?email=other@example.com", id), http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", resp["kind"])

	rec, resp = testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/applications/%s/status", id), http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", resp["kind"])

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/applications/123/status?email=a@b.c", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidId", resp["kind"])
}

func TestAdmin_unauthenticated(t *testing.T) {
	r, _ := newRouter(t)

	for _, endpoint := range []string{"/admin/applications", "/admin/applications/statistics", "/admin/applications/" + uuid.NewString()} {
		rec, resp := testutil.MakeJSONRequest(nil, "", r, endpoint, http.MethodGet)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, endpoint)
		assert.Equal(t, "Unauthorized", resp["kind"])
	}
}

func TestUpdateStatus_roundTrip(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	id := submitOK(t, r, career.ID, uniqueEmail())["id"].(string)
	endpoint := "/admin/applications/" + id + "/status"
	tok := token(t, database.TestHRUser)

	var lastUpdated time.Time
	for _, status := range model.ApplicationStatuses {
		rec, resp := testutil.MakeJSONRequest(map[string]string{"status": status}, tok, r, endpoint, http.MethodPatch)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, status, testutil.Data(resp)["status"])

		var stored model.Application
		require.NoError(t, testDB.First(&stored, "id = ?", id).Error)
		assert.Equal(t, status, stored.Status)
		assert.False(t, stored.LastUpdated.Before(lastUpdated))
		require.NotNil(t, stored.UpdatedByID)
		assert.Equal(t, database.TestHRUser.ID, *stored.UpdatedByID)
		lastUpdated = stored.LastUpdated
	}
}

func TestUpdateStatus_notesAppendAndOutOfOrder(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	id := submitOK(t, r, career.ID, uniqueEmail())["id"].(string)
	endpoint := "/admin/applications/" + id + "/status"
	tok := token(t, database.TestHRUser)

	rec, resp := testutil.MakeJSONRequest(map[string]interface{}{"status": "accepted", "note": "Strong candidate", "rating": 5}, tok, r, endpoint, http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, false, testutil.Data(resp)["outOfOrder"])

	rec, resp = testutil.MakeJSONRequest(map[string]interface{}{"status": "submitted", "note": "Reopened"}, tok, r, endpoint, http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code)
	data := testutil.Data(resp)
	assert.Equal(t, true, data["outOfOrder"])

	notes := data["reviewNotes"].([]interface{})
	require.Len(t, notes, 2)
	assert.Equal(t, "Strong candidate", notes[0].(map[string]interface{})["note"])
	assert.Equal(t, "Reopened", notes[1].(map[string]interface{})["note"])
	assert.Equal(t, database.TestHRUser.Username, notes[0].(map[string]interface{})["reviewer"].(map[string]interface{})["username"])
}

func TestUpdateStatus_invalid(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	id := submitOK(t, r, career.ID, uniqueEmail())["id"].(string)
	tok := token(t, database.TestHRUser)

	rec, resp := testutil.MakeJSONRequest(map[string]string{"status": "hired"}, tok, r, "/admin/applications/"+id+"/status", http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", resp["kind"])

	rec, resp = testutil.MakeJSONRequest(map[string]interface{}{"status": "reviewing", "rating": 9}, tok, r, "/admin/applications/"+id+"/status", http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["errors"], "rating")

	rec, resp = testutil.MakeJSONRequest(map[string]string{"status": "reviewing"}, tok, r, "/admin/applications/"+uuid.NewString()+"/status", http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", resp["kind"])
}

func TestAddNote(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	id := submitOK(t, r, career.ID, uniqueEmail())["id"].(string)
	tok := token(t, database.TestAdminUser)

	rec, resp := testutil.MakeJSONRequest(map[string]interface{}{"note": "Call back", "rating": 3}, tok, r, "/admin/applications/"+id+"/notes", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Call back", testutil.Data(resp)["note"])

	rec, _ = testutil.MakeJSONRequest(map[string]interface{}{}, tok, r, "/admin/applications/"+id+"/notes", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var stored model.Application
	require.NoError(t, testDB.First(&stored, "id = ?", id).Error)
	assert.Equal(t, model.ApplicationStatusSubmitted, stored.Status)
}

func TestScheduleInterview(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	id := submitOK(t, r, career.ID, uniqueEmail())["id"].(string)
	tok := token(t, database.TestHRUser)
	endpoint := "/admin/applications/" + id + "/schedule-interview"

	body := map[string]string{"date": "2026-11-20", "time": "10:00", "location": "Head office", "interviewer": "Pak Andi", "type": "onsite"}
	rec, resp := testutil.MakeJSONRequest(body, tok, r, endpoint, http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	schedule := testutil.Data(resp)["interviewSchedule"].(map[string]interface{})
	assert.Equal(t, "Head office", schedule["location"])
	assert.True(t, strings.HasPrefix(schedule["date"].(string), "2026-11-20"))

	rec, resp = testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/applications/%s/status?email=%s", id, testutil.Data(resp)["applicant"].(map[string]interface{})["email"]), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, testutil.Data(resp)["interviewSchedule"])

	body["date"] = "next tuesday"
	rec, resp = testutil.MakeJSONRequest(body, tok, r, endpoint, http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", resp["kind"])
}

func TestDelete(t *testing.T) {
	r, store := newRouter(t)
	ctx := context.Background()
	career := createCareer(t, model.CareerStatusActive)
	cert := testutil.UploadFile{Field: "certificates", Filename: "k3.png", ContentType: "image/png", Content: []byte("png")}
	data := submitOK(t, r, career.ID, uniqueEmail(), resumeFile, cert)
	submitOK(t, r, career.ID, uniqueEmail())
	require.Equal(t, 2, applicationCount(t, career.ID))

	id := data["id"].(string)
	docs := data["documents"].(map[string]interface{})
	resumePath := docs["resume"].(map[string]interface{})["path"].(string)
	certPath := docs["certificates"].([]interface{})[0].(map[string]interface{})["path"].(string)

	rec, resp := testutil.MakeJSONRequest(nil, token(t, database.TestHRUser), r, "/admin/applications/"+id, http.MethodDelete)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", resp["kind"])

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestAdminUser), r, "/admin/applications/"+id, http.MethodDelete)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, 1, applicationCount(t, career.ID))
	for _, p := range []string{resumePath, certPath} {
		_, _, err := store.Open(ctx, p)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	}

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestAdminUser), r, "/admin/applications/"+id, http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete_missingFileIgnored(t *testing.T) {
	r, store := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	data := submitOK(t, r, career.ID, uniqueEmail())
	resumePath := data["documents"].(map[string]interface{})["resume"].(map[string]interface{})["path"].(string)
	require.NoError(t, store.Remove(context.Background(), resumePath))

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestAdminUser), r, "/admin/applications/"+data["id"].(string), http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, applicationCount(t, career.ID))
}

func TestDownloadDocument(t *testing.T) {
	r, store := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	cert := testutil.UploadFile{Field: "certificates", Filename: "k3.png", ContentType: "image/png", Content: []byte("png-bytes")}
	data := submitOK(t, r, career.ID, uniqueEmail(), resumeFile, cert)
	id := data["id"].(string)
	tok := token(t, database.TestHRUser)

	rec, _ := testutil.MakeJSONRequest(nil, tok, r, "/admin/applications/"+id+"/documents/resume", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="cv.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, resumeFile.Content, rec.Body.Bytes())

	rec, _ = testutil.MakeJSONRequest(nil, tok, r, "/admin/applications/"+id+"/documents/certificates?index=0", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())

	rec, resp := testutil.MakeJSONRequest(nil, tok, r, "/admin/applications/"+id+"/documents/certificates?index=3", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", resp["kind"])

	rec, _ = testutil.MakeJSONRequest(nil, tok, r, "/admin/applications/"+id+"/documents/coverLetter", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, tok, r, "/admin/applications/"+id+"/documents/photo", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", resp["kind"])

	resumePath := data["documents"].(map[string]interface{})["resume"].(map[string]interface{})["path"].(string)
	require.NoError(t, store.Remove(context.Background(), resumePath))
	rec, _ = testutil.MakeJSONRequest(nil, tok, r, "/admin/applications/"+id+"/documents/resume", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAndGetByID(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	email := uniqueEmail()
	id := submitOK(t, r, career.ID, email)["id"].(string)
	submitOK(t, r, career.ID, uniqueEmail())
	tok := token(t, database.TestHRUser)

	rec, resp := testutil.MakeJSONRequest(nil, tok, r, fmt.Sprintf("/admin/applications?careerId=%d&search=%s", career.ID, email[:18]), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := testutil.Data(resp)
	apps := data["applications"].([]interface{})
	require.Len(t, apps, 1)
	assert.Equal(t, id, apps[0].(map[string]interface{})["id"])
	assert.Equal(t, float64(2), data["statusBreakdown"].(map[string]interface{})["submitted"])

	rec, resp = testutil.MakeJSONRequest(nil, tok, r, "/admin/applications?careerId=abc", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidId", resp["kind"])

	rec, resp = testutil.MakeJSONRequest(nil, tok, r, "/admin/applications/"+id, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, career.Title, testutil.Data(resp)["career"].(map[string]interface{})["title"])

	rec, resp = testutil.MakeJSONRequest(nil, tok, r, "/admin/applications/not-a-uuid", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidId", resp["kind"])
}

func TestGetStatistics(t *testing.T) {
	r, _ := newRouter(t)
	career := createCareer(t, model.CareerStatusActive)
	for i := 0; i < 3; i++ {
		submitOK(t, r, career.ID, uniqueEmail())
	}
	tok := token(t, database.TestHRUser)
	from := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
	to := time.Now().AddDate(0, 0, 1).Format(time.DateOnly)

	rec, resp := testutil.MakeJSONRequest(nil, tok, r, fmt.Sprintf("/admin/applications/statistics?careerId=%d&startDate=%s&endDate=%s", career.ID, from, to), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := testutil.Data(resp)

	assert.Equal(t, float64(3), data["total"])
	assert.Equal(t, float64(3), data["byStatus"].(map[string]interface{})["submitted"])

	byCareer := data["byCareer"].([]interface{})
	require.Len(t, byCareer, 1)
	assert.Equal(t, float64(career.ID), byCareer[0].(map[string]interface{})["careerId"])
	assert.Equal(t, float64(3), byCareer[0].(map[string]interface{})["count"])

	var perDay float64
	for _, day := range data["timeline"].([]interface{}) {
		perDay += day.(map[string]interface{})["count"].(float64)
	}
	assert.Equal(t, float64(3), perDay)

	rec, resp = testutil.MakeJSONRequest(nil, tok, r, "/admin/applications/statistics?startDate=yesterday", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", resp["kind"])
}
