package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartOverhead pads the limit for multipart boundaries and plain form fields
var multipartOverhead = int64(64 * 1024)

// SizeLimit caps the request body at maxBodyBytes. Reading past the cap yields
// *http.MaxBytesError which the upload handling reports as an UploadError.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes+multipartOverhead)
		c.Next()
	}
}
