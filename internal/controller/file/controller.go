// Package file serves uploaded images from the file store.
package file

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/storage"
	"corpsite-backend/internal/utilities"
)

// privatePrefixes are store directories never served publicly; application
// documents are only reachable through the admin download endpoint.
var privatePrefixes = []string{"applications/"}

// FileController handles file related endpoints
type FileController struct {
	Store storage.FileStore
}

// NewFileController creates a new instance of FileController
func NewFileController(store storage.FileStore) *FileController {
	return &FileController{Store: store}
}

// GetFile streams one stored file.
// @Summary Retrieve uploaded image
// @Description Serves logos, certificate images and project images by their stored path
// @Tags File
// @Produce octet-stream
// @Param filepath path string true "Stored path, e.g. projects/1f0c.png"
// @Success 200 {string} binary "File content"
// @Failure 404 {object} utilities.ErrorResponse "File not found"
// @Failure 500 {object} utilities.ErrorResponse "Fail to send file content"
// @Router /uploads/{filepath} [get]
func (fc *FileController) GetFile(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")
	for _, prefix := range privatePrefixes {
		if strings.HasPrefix(path.Clean(name)+"/", prefix) {
			utilities.NotFound(c, "File tidak ditemukan")
			return
		}
	}

	rc, size, err := fc.Store.Open(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidPath) {
			utilities.NotFound(c, "File tidak ditemukan")
			return
		}
		utilities.Internal(c, "Gagal membuka file", err)
		return
	}
	defer func() {
		if err := rc.Close(); err != nil {
			middleware.LoggerFromContext(c).Warn("close stored file", slog.String("path", name), slog.Any("error", err))
		}
	}()

	contentType := mime.TypeByExtension(strings.ToLower(path.Ext(name)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("X-Content-Type-Options", "nosniff")
	if size > 0 {
		c.Header("Content-Length", fmt.Sprint(size))
	}
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, rc); err != nil {
		fc.handleWriterError(c, err)
	}
}

func (fc *FileController) handleWriterError(c *gin.Context, err error) {
	if !c.Writer.Written() {
		utilities.Internal(c, "Failed to send file content", err)
		return
	}
	middleware.LoggerFromContext(c).Warn("send stored file", slog.Any("error", err))
	c.Abort()
}
