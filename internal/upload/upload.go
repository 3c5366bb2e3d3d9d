// Package upload validates multipart files against per-field rules and saves them to the file store.
package upload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"

	"corpsite-backend/internal/metrics"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/storage"
)

// Size limits
const (
	MB           int64 = 1 << 20
	DocumentSize       = 10 * MB
	ImageSize          = 5 * MB
)

// Common extension sets
var (
	DocumentExtensions  = []string{".pdf", ".doc", ".docx"}
	WebImageExtensions  = []string{".jpeg", ".jpg", ".png", ".webp"}
	GalleryExtensions   = []string{".jpeg", ".jpg", ".png", ".gif"}
	PortfolioExtensions = []string{".pdf", ".zip", ".jpeg", ".jpg", ".png"}
	CertFileExtensions  = []string{".pdf", ".jpeg", ".jpg", ".png"}
)

// Rule constrains the files of one multipart field
type Rule struct {
	Field      string
	MaxSize    int64
	MaxCount   int
	Extensions []string
	// Prefix is the store subdirectory the files are saved under
	Prefix   string
	Required bool
}

// Error is a rejected upload; Message is shown to the visitor as-is
type Error struct {
	Field   string
	Reason  string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upload %s rejected: %s", e.Field, e.Reason)
}

// Rejection reasons, also used as metric labels
const (
	ReasonTooLarge    = "too_large"
	ReasonTooMany     = "too_many"
	ReasonBadType     = "bad_type"
	ReasonMissing     = "missing"
	ReasonUnknown     = "unexpected_field"
	ReasonMalware     = "malware"
	ReasonEmptyUpload = "empty"
)

// AsError extracts an *Error from err
func AsError(err error) (*Error, bool) {
	var uerr *Error
	ok := errors.As(err, &uerr)
	return uerr, ok
}

func reject(field, reason, message string) *Error {
	metrics.UploadRejected(reason)
	return &Error{Field: field, Reason: reason, Message: message}
}

// Check validates files against rule without touching the store
func (r Rule) Check(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		if r.Required {
			return reject(r.Field, ReasonMissing, fmt.Sprintf("File %s wajib diunggah", r.Field))
		}
		return nil
	}
	if r.MaxCount > 0 && len(files) > r.MaxCount {
		return TooMany(r.Field, r.MaxCount)
	}
	for _, fh := range files {
		if fh.Size == 0 {
			return reject(r.Field, ReasonEmptyUpload, fmt.Sprintf("File %s kosong", fh.Filename))
		}
		if r.MaxSize > 0 && fh.Size > r.MaxSize {
			return reject(r.Field, ReasonTooLarge, fmt.Sprintf("Ukuran file terlalu besar. Maksimal %dMB", r.MaxSize/MB))
		}
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !slices.Contains(r.Extensions, ext) {
			return reject(r.Field, ReasonBadType, fmt.Sprintf("Tipe file tidak didukung. Hanya %s yang diizinkan", allowedList(r.Extensions)))
		}
	}
	return nil
}

// TooMany rejects a field that would hold more than limit files
// MaxBytes is the largest total size a form satisfying rules can upload
func MaxBytes(rules ...Rule) int64 {
	var total int64
	for _, r := range rules {
		total += r.MaxSize * int64(max(r.MaxCount, 1))
	}
	return total
}

func TooMany(field string, limit int) error {
	return reject(field, ReasonTooMany, fmt.Sprintf("Terlalu banyak file untuk %s. Maksimal %d file", field, limit))
}

func allowedList(exts []string) string {
	names := make([]string, len(exts))
	for i, e := range exts {
		names[i] = strings.TrimPrefix(e, ".")
	}
	return strings.Join(names, ", ")
}

// Uploader saves validated files to a FileStore, optionally scanning them first
type Uploader struct {
	Store   storage.FileStore
	Scanner Scanner
	Logger  *slog.Logger
}

// New creates an Uploader; a nil scanner disables virus scanning
func New(store storage.FileStore, scanner Scanner, logger *slog.Logger) *Uploader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Uploader{Store: store, Scanner: scanner, Logger: logger}
}

// Collect checks every rule against the form and rejects fields no rule names
func Collect(form *multipart.Form, rules ...Rule) (map[string][]*multipart.FileHeader, error) {
	out := make(map[string][]*multipart.FileHeader, len(rules))
	known := make(map[string]bool, len(rules))
	for _, r := range rules {
		known[r.Field] = true
		var files []*multipart.FileHeader
		if form != nil {
			files = form.File[r.Field]
		}
		if err := r.Check(files); err != nil {
			return nil, err
		}
		if len(files) > 0 {
			out[r.Field] = files
		}
	}
	if form != nil {
		for field := range form.File {
			if !known[field] {
				return nil, reject(field, ReasonUnknown, fmt.Sprintf("Field file %s tidak dikenal", field))
			}
		}
	}
	return out, nil
}

// Save scans and stores one file under rule.Prefix with a generated name
func (u *Uploader) Save(ctx context.Context, fh *multipart.FileHeader, rule Rule) (model.StoredFile, error) {
	if u.Scanner != nil {
		if err := u.scan(fh, rule.Field); err != nil {
			return model.StoredFile{}, err
		}
	}

	f, err := fh.Open()
	if err != nil {
		return model.StoredFile{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mimetype := detectMimetype(fh, ext)
	path := storage.ObjectName(rule.Prefix, ext)
	if err := u.Store.Save(ctx, path, f, fh.Size, mimetype); err != nil {
		return model.StoredFile{}, fmt.Errorf("store upload: %w", err)
	}

	return model.StoredFile{
		Filename: filepath.Base(fh.Filename),
		Path:     path,
		Mimetype: mimetype,
		Size:     fh.Size,
	}, nil
}

// SaveAll stores every file and removes the already stored ones when one fails
func (u *Uploader) SaveAll(ctx context.Context, files []*multipart.FileHeader, rule Rule) (model.StoredFiles, error) {
	saved := make(model.StoredFiles, 0, len(files))
	for _, fh := range files {
		sf, err := u.Save(ctx, fh, rule)
		if err != nil {
			u.Discard(context.WithoutCancel(ctx), saved.Paths()...)
			return nil, err
		}
		saved = append(saved, sf)
	}
	return saved, nil
}

// SaveOne stores the first file of field if present
func (u *Uploader) SaveOne(ctx context.Context, files map[string][]*multipart.FileHeader, rule Rule) (*model.StoredFile, error) {
	fhs := files[rule.Field]
	if len(fhs) == 0 {
		return nil, nil
	}
	sf, err := u.Save(ctx, fhs[0], rule)
	if err != nil {
		return nil, err
	}
	return &sf, nil
}

// Discard removes stored files after a failed request; missing files are ignored
func (u *Uploader) Discard(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if err := u.Store.Remove(ctx, p); err != nil && !errors.Is(err, storage.ErrNotFound) {
			u.Logger.Warn("discard upload", slog.String("path", p), slog.String("error", err.Error()))
		}
	}
}

func (u *Uploader) scan(fh *multipart.FileHeader, field string) error {
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload for scan: %w", err)
	}
	defer f.Close()

	clean, err := u.Scanner.Scan(f)
	if err != nil {
		return fmt.Errorf("scan upload: %w", err)
	}
	u.Logger.Info("upload scanned", slog.String("field", field), slog.String("filename", fh.Filename), slog.Bool("clean", clean))
	if !clean {
		return reject(field, ReasonMalware, "File terdeteksi mengandung malware")
	}
	return nil
}

func detectMimetype(fh *multipart.FileHeader, ext string) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
