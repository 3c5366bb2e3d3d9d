// Package config loads server settings from the environment (and an optional .env file).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	// Load .env file into environments.
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageLocal = "local"
	StorageGCS   = "gcs"
	StorageMinIO = "minio"
)

// Config aggregates every setting the api and worker binaries need.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port              int    `mapstructure:"port"`
	Mode              string `mapstructure:"mode"`
	AllowOrigins      string `mapstructure:"allow_origins"`
	RateLimitPerSec   int    `mapstructure:"rate_limit_per_sec"`
	LogLevel          string `mapstructure:"log_level"`
	ClamdAddr         string `mapstructure:"clamd_addr"`
	TrustedProxies    string `mapstructure:"trusted_proxies"`
	// MaxMultipartBytes raises the application form cap above the documents it accepts
	MaxMultipartBytes int64  `mapstructure:"max_multipart_bytes"`
}

// AuthConfig contains token signing settings.
type AuthConfig struct {
	SecretKey    string        `mapstructure:"secret_key"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
	CookieDomain string        `mapstructure:"cookie_domain"`
}

// DatabaseConfig contains connection options for PostgreSQL.
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      string `mapstructure:"port"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	Name      string `mapstructure:"name"`
	UseConStr bool   `mapstructure:"use_connection_str"`
	ConStr    string `mapstructure:"connection_str"`
}

// StorageConfig selects and configures the uploaded-file backend.
type StorageConfig struct {
	Driver    string      `mapstructure:"driver"`
	UploadDir string      `mapstructure:"upload_dir"`
	GCSBucket string      `mapstructure:"gcs_bucket"`
	MinIO     MinIOConfig `mapstructure:"minio"`
}

// MinIOConfig contains connection options for MinIO/S3-compatible storage.
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
}

// RedisConfig is optional; an empty Addr disables every Redis-backed feature.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AdminConfig holds the bootstrap admin credentials.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

// DSN builds the postgres connection string.
func (d DatabaseConfig) DSN() (string, error) {
	if d.UseConStr {
		if d.ConStr == "" {
			return "", errors.New("DB_CONNECTION_STR is empty")
		}
		return d.ConStr, nil
	}
	if d.Host == "" || d.Port == "" || d.User == "" || d.Password == "" || d.Name == "" {
		return "", errors.New("database configuration is incomplete")
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Password, d.Host, d.Port, d.Name), nil
}

// AllowedOrigins splits the comma separated ALLOW_ORIGIN value.
func (s ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(s.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// SlogLevel parses LOG_LEVEL, falling back to info
func (s ServerConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allow_origins", "http://localhost:5173")
	v.SetDefault("server.rate_limit_per_sec", 5)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.max_multipart_bytes", 0)
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.cookie_secure", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.use_connection_str", false)
	v.SetDefault("storage.driver", StorageLocal)
	v.SetDefault("storage.upload_dir", "uploads")
	v.SetDefault("storage.minio.use_ssl", false)
	v.SetDefault("storage.minio.bucket", "uploads")
	v.SetDefault("redis.db", 0)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"server.port":                     "PORT",
		"server.mode":                     "GIN_MODE",
		"server.allow_origins":            "ALLOW_ORIGIN",
		"server.rate_limit_per_sec":       "RATE_LIMIT_REQUESTS_PER_SECOND",
		"server.log_level":                "LOG_LEVEL",
		"server.clamd_addr":               "CLAMD_ADDR",
		"server.trusted_proxies":          "TRUSTED_PROXIES",
		"server.max_multipart_bytes":      "MAX_MULTIPART_BYTES",
		"auth.secret_key":                 "SECRET_KEY",
		"auth.token_ttl":                  "TOKEN_TTL",
		"auth.cookie_secure":              "COOKIE_SECURE",
		"auth.cookie_domain":              "COOKIE_DOMAIN",
		"database.host":                   "DB_HOST",
		"database.port":                   "DB_PORT",
		"database.user":                   "DB_USERNAME",
		"database.password":               "DB_PASSWORD",
		"database.name":                   "DB_DATABASE",
		"database.use_connection_str":     "USE_CONNECTION_STR",
		"database.connection_str":         "DB_CONNECTION_STR",
		"storage.driver":                  "STORAGE_DRIVER",
		"storage.upload_dir":              "UPLOAD_DIR",
		"storage.gcs_bucket":              "GCS_BUCKET",
		"storage.minio.endpoint":          "MINIO_ENDPOINT",
		"storage.minio.access_key_id":     "MINIO_ACCESS_KEY_ID",
		"storage.minio.secret_access_key": "MINIO_SECRET_ACCESS_KEY",
		"storage.minio.use_ssl":           "MINIO_USE_SSL",
		"storage.minio.bucket":            "MINIO_BUCKET",
		"storage.minio.region":            "MINIO_REGION",
		"redis.addr":                      "REDIS_ADDR",
		"redis.password":                  "REDIS_PASSWORD",
		"redis.db":                        "REDIS_DB",
		"admin.username":                  "ADMIN_USERNAME",
		"admin.password":                  "ADMIN_PASSWORD",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.Server.Port <= 0 {
		return errors.New("server port must be positive")
	}
	if cfg.Auth.SecretKey == "" {
		return errors.New("SECRET_KEY is required")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}

	switch cfg.Storage.Driver {
	case StorageLocal:
		if cfg.Storage.UploadDir == "" {
			return errors.New("upload dir is required for local storage")
		}
	case StorageGCS:
		if cfg.Storage.GCSBucket == "" {
			return errors.New("GCS_BUCKET is required for gcs storage")
		}
	case StorageMinIO:
		m := cfg.Storage.MinIO
		if m.Endpoint == "" || m.AccessKeyID == "" || m.SecretAccessKey == "" || m.Bucket == "" {
			return errors.New("minio endpoint, credentials and bucket are required for minio storage")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	return nil
}
