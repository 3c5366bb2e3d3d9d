package utilities

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Error kinds returned in the "kind" field of an error response
const (
	KindInvalidID           = "InvalidId"
	KindValidation          = "ValidationError"
	KindInvalidFormat       = "InvalidFormat"
	KindNotFound            = "NotFound"
	KindDuplicateSubmission = "DuplicateSubmission"
	KindDuplicateName       = "DuplicateName"
	KindDuplicateParent     = "DuplicateParent"
	KindUnauthorized        = "Unauthorized"
	KindForbidden           = "Forbidden"
	KindUploadError         = "UploadError"
	KindTooManyRequests     = "TooManyRequests"
	KindInternal            = "InternalError"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Message string            `json:"message"`
	Kind    string            `json:"kind"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SuccessResponse is the body of every successful request
type SuccessResponse struct {
	Success    bool        `json:"success" example:"true"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
}

// Fail aborts the request with the error envelope.
// Raw error text only reaches authenticated callers.
func Fail(c *gin.Context, status int, kind, message string, err error) {
	resp := ErrorResponse{Message: message, Kind: kind}
	if _, authed := c.Get("user"); authed && err != nil {
		resp.Error = err.Error()
	}
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, resp)
}

// ValidationFailed aborts with 400 ValidationError and per-field messages
func ValidationFailed(c *gin.Context, message string, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Message: message,
		Kind:    KindValidation,
		Errors:  fields,
	})
}

// InvalidID aborts with 400 InvalidId
func InvalidID(c *gin.Context, err error) {
	Fail(c, http.StatusBadRequest, KindInvalidID, "ID tidak valid", err)
}

// NotFound aborts with 404 NotFound
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, KindNotFound, message, nil)
}

// Internal aborts with 500 InternalError
func Internal(c *gin.Context, message string, err error) {
	Fail(c, http.StatusInternalServerError, KindInternal, message, err)
}

// LookupFailed maps a failed single-row lookup to 404 or 500
func LookupFailed(c *gin.Context, notFoundMessage string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, notFoundMessage)
		return
	}
	Internal(c, "Terjadi kesalahan pada server", err)
}

// OK writes the success envelope
func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Message: message, Data: data})
}

// OKPage writes the success envelope with pagination info
func OKPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data, Pagination: &pagination})
}
