// Package storage keeps uploaded files on local disk, Google Cloud Storage or MinIO.
// Records persist the relative path returned by ObjectName; backends re-resolve it on every access.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"corpsite-backend/internal/config"
)

// ErrNotFound is returned when the requested path does not exist in the store
var ErrNotFound = errors.New("file not found")

// ErrInvalidPath is returned for paths escaping the store root
var ErrInvalidPath = errors.New("invalid file path")

// FileStore saves, reads and removes uploaded files by relative path
type FileStore interface {
	Save(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, path string) (io.ReadCloser, int64, error)
	// Remove deletes the file; a missing file yields ErrNotFound
	Remove(ctx context.Context, path string) error
}

// New builds the FileStore selected by cfg.Driver
func New(ctx context.Context, cfg config.StorageConfig) (FileStore, error) {
	switch cfg.Driver {
	case config.StorageLocal, "":
		return NewLocalStore(cfg.UploadDir)
	case config.StorageGCS:
		return NewGCSStore(ctx, cfg.GCSBucket)
	case config.StorageMinIO:
		return NewMinIOStore(ctx, cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// ObjectName generates a unique path under prefix keeping the lower-cased extension
func ObjectName(prefix, ext string) string {
	return path.Join(prefix, uuid.NewString()+strings.ToLower(ext))
}

// cleanPath normalises p and rejects absolute or parent-escaping paths
func cleanPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" || strings.Contains(p, "\\") {
		return "", ErrInvalidPath
	}
	cleaned := path.Clean(strings.TrimPrefix(p, "/"))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}
