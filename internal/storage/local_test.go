package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpsite-backend/internal/config"
)

func TestLocalStore_SaveOpenRemove(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	name := ObjectName("applications", ".PDF")
	assert.True(t, strings.HasPrefix(name, "applications/"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	require.NoError(t, store.Save(ctx, name, bytes.NewReader([]byte("hello")), 5, "application/pdf"))

	rc, size, err := store.Open(ctx, name)
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, int64(5), size)
	assert.Equal(t, "hello", string(content))

	require.NoError(t, store.Remove(ctx, name))
	assert.ErrorIs(t, store.Remove(ctx, name), ErrNotFound)

	_, _, err = store.Open(ctx, name)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, p := range []string{"../etc/passwd", "a/../../b", "", "..", `a\..\b`} {
		err := store.Save(ctx, p, strings.NewReader("x"), 1, "text/plain")
		assert.ErrorIs(t, err, ErrInvalidPath, p)
		_, _, err = store.Open(ctx, p)
		assert.ErrorIs(t, err, ErrInvalidPath, p)
	}
}

func TestLocalStore_DoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "logos/a.png", strings.NewReader("1"), 1, "image/png"))
	assert.Error(t, store.Save(ctx, "logos/a.png", strings.NewReader("2"), 1, "image/png"))
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), config.StorageConfig{Driver: "ftp"})
	assert.Error(t, err)
}

func TestNew_Local(t *testing.T) {
	store, err := New(context.Background(), config.StorageConfig{Driver: config.StorageLocal, UploadDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)
}
