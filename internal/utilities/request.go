package utilities

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"corpsite-backend/internal/upload"
)

// DecodeJSON decodes the request body into dst rejecting unknown fields.
// On failure it aborts with InvalidFormat and returns false.
func DecodeJSON(c *gin.Context, dst interface{}) bool {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("request body is empty")
		}
		Fail(c, http.StatusBadRequest, KindInvalidFormat, "Format data tidak valid", err)
		return false
	}
	return true
}

// UploadFailed maps an error from the upload package to 400 UploadError, anything else to 500
func UploadFailed(c *gin.Context, err error) {
	if uerr, ok := upload.AsError(err); ok {
		Fail(c, http.StatusBadRequest, KindUploadError, uerr.Message, err)
		return
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		Fail(c, http.StatusBadRequest, KindUploadError, "Ukuran permintaan terlalu besar", err)
		return
	}
	Internal(c, "Gagal menyimpan file", err)
}

// ParseDate accepts a plain date or an RFC 3339 timestamp
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// QueryDate parses an optional date query parameter; ok is false when it is malformed
func QueryDate(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	t, err := ParseDate(raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}
