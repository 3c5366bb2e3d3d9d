package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("STORAGE_DRIVER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, StorageLocal, cfg.Storage.Driver)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Zero(t, cfg.Server.MaxMultipartBytes)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("ALLOW_ORIGIN", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	assert.EqualError(t, err, "SECRET_KEY is required")
}

func TestLoad_UnknownStorageDriver(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("STORAGE_DRIVER", "ftp")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MinIORequiresCredentials(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("STORAGE_DRIVER", "minio")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "site"}
	dsn, err := d.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/site?sslmode=disable", dsn)

	d = DatabaseConfig{UseConStr: true}
	_, err = d.DSN()
	assert.Error(t, err)

	d = DatabaseConfig{Host: "db"}
	_, err = d.DSN()
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ServerConfig{LogLevel: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, ServerConfig{LogLevel: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, ServerConfig{LogLevel: "loud"}.SlogLevel())
}
