// Package database implement connection to database service and initialize ORM.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	// Register pgx as database/sql driver
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"corpsite-backend/internal/config"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// SingleParentIndex guarantees at most one company of type parent
const SingleParentIndex = "idx_companies_single_parent"

// ClientNameIndex makes client names unique regardless of case
const ClientNameIndex = "idx_clients_name_key"

// ApplicationUniqueIndex guarantees one application per email per career
const ApplicationUniqueIndex = "idx_application_career_email"

// DBinstanceStruct is a struct that holds the GORM DB instance and related information.
type DBinstanceStruct struct {
	*gorm.DB
	// cached raw DB and mutex for lazy-init
	sqlDB *sql.DB
	mu    sync.RWMutex
}

// NewDBInstance connects using the database configuration, migrates the schema and
// creates the bootstrap admin when none exists.
func NewDBInstance(ctx context.Context, cfg config.DatabaseConfig, admin config.AdminConfig) (*DBinstanceStruct, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}
	return Open(ctx, dsn, admin)
}

// Connect opens the connection pool without touching the schema
func Connect(dsn string) (*DBinstanceStruct, error) {
	gormCfg := &gorm.Config{}
	if !gin.IsDebugging() {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	gdb, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, err
	}
	return &DBinstanceStruct{DB: gdb}, nil
}

// Open connects to dsn and prepares the schema
func Open(ctx context.Context, dsn string, admin config.AdminConfig) (*DBinstanceStruct, error) {
	newDb, err := Connect(dsn)
	if err != nil {
		return nil, err
	}

	if err := newDb.installExtension(ctx); err != nil {
		return nil, fmt.Errorf("failed to install extension: %w", err)
	}
	if err := newDb.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := newDb.createAdmin(ctx, admin); err != nil {
		return nil, err
	}

	return newDb, nil
}

// Raw returns the underlying *sql.DB, caching it after the first successful retrieval.
// It is safe for concurrent use.
func (d *DBinstanceStruct) Raw() (*sql.DB, error) {
	if d == nil {
		return nil, fmt.Errorf("DBinstanceStruct is nil")
	}

	// fast path: cached value
	d.mu.RLock()
	if d.sqlDB != nil {
		raw := d.sqlDB
		d.mu.RUnlock()
		return raw, nil
	}
	d.mu.RUnlock()

	// slow path: initialize
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sqlDB != nil {
		return d.sqlDB, nil
	}
	if d.DB == nil {
		return nil, fmt.Errorf("gorm DB is nil")
	}
	raw, err := d.DB.DB()
	if err != nil {
		return nil, err
	}
	d.sqlDB = raw
	return raw, nil
}

func (d *DBinstanceStruct) createAdmin(ctx context.Context, admin config.AdminConfig) error {
	if admin.Username == "" || admin.Password == "" {
		slog.Info("admin username or password not set, skipping admin creation")
		return nil
	}

	var count int64
	if err := d.WithContext(ctx).Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if _, err := utilities.CreateAdmin(ctx, d.DB, admin.Username, admin.Password); err != nil {
		return err
	}
	slog.Info("bootstrap admin created", "username", admin.Username)
	return nil
}

// Migrate database
func (d *DBinstanceStruct) Migrate(ctx context.Context) error {
	db := d.WithContext(ctx)
	if err := db.AutoMigrate(model.MigrateAble...); err != nil {
		return err
	}
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ` + SingleParentIndex + ` ON companies (type) WHERE type = 'parent'`).Error
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (d *DBinstanceStruct) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	oriDB, err := d.Raw()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		slog.Error("db down", "error", err)
		return stats
	}

	if err = oriDB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		slog.Error("db down", "error", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := oriDB.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	if dbStats.OpenConnections > 40 {
		stats["message"] = "The database is experiencing heavy load."
	}
	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// Close closes the database connection.
func (d *DBinstanceStruct) Close() error {
	oriDB, err := d.Raw()
	if err != nil {
		return err
	}
	slog.Info("disconnected from database")
	return oriDB.Close()
}

func (d *DBinstanceStruct) installExtension(ctx context.Context) error {
	err := d.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
	if err != nil {
		return err
	}
	slog.Debug("uuid-ossp extension installed or already exists")
	return nil
}
