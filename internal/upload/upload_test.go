package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpsite-backend/internal/storage"
)

type testFile struct {
	field, name, contentType string
	content                  []byte
}

func buildForm(t *testing.T, files ...testFile) *multipart.Form {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		if f.contentType != "" {
			h.Set("Content-Type", f.contentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

var resumeRule = Rule{Field: "resume", MaxSize: 16, MaxCount: 1, Extensions: DocumentExtensions, Prefix: "applications", Required: true}

func TestCollect(t *testing.T) {
	t.Run("Missing required file", func(t *testing.T) {
		_, err := Collect(buildForm(t), resumeRule)
		uerr, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, ReasonMissing, uerr.Reason)
	})

	t.Run("Too large", func(t *testing.T) {
		form := buildForm(t, testFile{"resume", "cv.pdf", "application/pdf", bytes.Repeat([]byte("a"), 17)})
		_, err := Collect(form, resumeRule)
		uerr, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, ReasonTooLarge, uerr.Reason)
		assert.Contains(t, uerr.Message, "Ukuran file terlalu besar")
	})

	t.Run("Disallowed extension", func(t *testing.T) {
		form := buildForm(t, testFile{"resume", "cv.exe", "application/octet-stream", []byte("x")})
		_, err := Collect(form, resumeRule)
		uerr, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, ReasonBadType, uerr.Reason)
		assert.Contains(t, uerr.Message, "pdf, doc, docx")
	})

	t.Run("Too many files", func(t *testing.T) {
		form := buildForm(t,
			testFile{"resume", "a.pdf", "application/pdf", []byte("a")},
			testFile{"resume", "b.pdf", "application/pdf", []byte("b")},
		)
		_, err := Collect(form, resumeRule)
		uerr, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, ReasonTooMany, uerr.Reason)
	})

	t.Run("Unknown field", func(t *testing.T) {
		form := buildForm(t,
			testFile{"resume", "a.pdf", "application/pdf", []byte("a")},
			testFile{"avatar", "a.png", "image/png", []byte("a")},
		)
		_, err := Collect(form, resumeRule)
		uerr, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, ReasonUnknown, uerr.Reason)
	})

	t.Run("Valid", func(t *testing.T) {
		form := buildForm(t, testFile{"resume", "CV.PDF", "application/pdf", []byte("a")})
		files, err := Collect(form, resumeRule, Rule{Field: "portfolio", Extensions: PortfolioExtensions})
		require.NoError(t, err)
		assert.Len(t, files["resume"], 1)
		assert.NotContains(t, files, "portfolio")
	})
}

type fakeScanner struct {
	clean bool
	err   error
}

func (s fakeScanner) Scan(r io.Reader) (bool, error) {
	_, _ = io.Copy(io.Discard, r)
	return s.clean, s.err
}

func TestMaxBytes(t *testing.T) {
	certs := Rule{Field: "certificates", MaxSize: DocumentSize, MaxCount: 10}
	unbounded := Rule{Field: "logo", MaxSize: ImageSize}

	assert.Equal(t, int64(16), MaxBytes(resumeRule))
	assert.Equal(t, 100*MB+16, MaxBytes(resumeRule, certs))
	assert.Equal(t, ImageSize, MaxBytes(unbounded))
	assert.Zero(t, MaxBytes())
}

func TestUploader_Save(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	form := buildForm(t, testFile{"resume", "My CV.pdf", "", []byte("resume-bytes")})
	fh := form.File["resume"][0]

	t.Run("Stores with generated name", func(t *testing.T) {
		u := New(store, nil, nil)
		sf, err := u.Save(ctx, fh, resumeRule)
		require.NoError(t, err)

		assert.Equal(t, "My CV.pdf", sf.Filename)
		assert.Equal(t, "application/pdf", sf.Mimetype)
		assert.Equal(t, int64(len("resume-bytes")), sf.Size)
		assert.True(t, strings.HasPrefix(sf.Path, "applications/"))

		rc, _, err := store.Open(ctx, sf.Path)
		require.NoError(t, err)
		defer rc.Close()
		b, _ := io.ReadAll(rc)
		assert.Equal(t, "resume-bytes", string(b))
	})

	t.Run("Infected file rejected", func(t *testing.T) {
		u := New(store, fakeScanner{clean: false}, nil)
		_, err := u.Save(ctx, fh, resumeRule)
		uerr, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, ReasonMalware, uerr.Reason)
	})

	t.Run("Scanner failure is not an upload error", func(t *testing.T) {
		u := New(store, fakeScanner{err: errors.New("clamd down")}, nil)
		_, err := u.Save(ctx, fh, resumeRule)
		require.Error(t, err)
		_, ok := AsError(err)
		assert.False(t, ok)
	})
}

func TestUploader_SaveAllAndDiscard(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	u := New(store, nil, nil)

	form := buildForm(t,
		testFile{"certificates", "a.pdf", "application/pdf", []byte("a")},
		testFile{"certificates", "b.png", "image/png", []byte("b")},
	)
	rule := Rule{Field: "certificates", MaxCount: 10, Extensions: CertFileExtensions, Prefix: "applications"}

	saved, err := u.SaveAll(ctx, form.File["certificates"], rule)
	require.NoError(t, err)
	require.Len(t, saved, 2)

	u.Discard(ctx, append(saved.Paths(), "applications/missing.pdf")...)
	for _, p := range saved.Paths() {
		_, _, err := store.Open(ctx, p)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	}
}

func TestNewClamdScanner_EmptyAddr(t *testing.T) {
	assert.Nil(t, NewClamdScanner(""))
}
