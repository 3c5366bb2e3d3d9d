// Package server wires the configuration, database, file store and controllers into an HTTP server
package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"corpsite-backend/internal/auth"
	"corpsite-backend/internal/config"
	"corpsite-backend/internal/database"
	"corpsite-backend/internal/storage"
	"corpsite-backend/internal/tasks"
)

// MyServer holds the shared dependencies of every route handler
type MyServer struct {
	Cfg       *config.Config
	DB        *database.DBinstanceStruct
	Store     storage.FileStore
	Tokens    *auth.TokenService
	Blacklist auth.JwtBlacklistStore
	Logger    *slog.Logger

	// Redis and Queue are nil when REDIS_ADDR is not set
	Redis *redis.Client
	Queue *asynq.Client

	closers []func() error
}

// New connects every backing service named in cfg
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*MyServer, error) {
	s := &MyServer{
		Cfg:    cfg,
		Logger: logger,
		Tokens: auth.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.TokenTTL),
	}

	db, err := database.NewDBInstance(ctx, cfg.Database, cfg.Admin)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	s.DB = db
	s.closers = append(s.closers, db.Close)

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}
	s.Store = store
	if closer, ok := store.(io.Closer); ok {
		s.closers = append(s.closers, closer.Close)
	}

	if cfg.Redis.Enabled() {
		s.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		s.closers = append(s.closers, s.Redis.Close)
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			s.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}

		s.Queue = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		s.closers = append(s.closers, s.Queue.Close)
		s.Blacklist = auth.NewRedisBlacklistStore(s.Redis)
		logger.Info("redis enabled", slog.String("addr", cfg.Redis.Addr))
	} else {
		memory := auth.NewInMemoryBlacklistStore()
		s.Blacklist = memory
		s.closers = append(s.closers, func() error { memory.Close(); return nil })
	}

	return s, nil
}

// NewHTTPServer returns the http.Server serving the registered routes
func (s *MyServer) NewHTTPServer() *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Cfg.Server.Port),
		Handler:           s.RegisterRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
		ReadTimeout:       time.Minute,
		WriteTimeout:      2 * time.Minute,
	}
}

// Cleaner returns the file cleaner; retries are queued only when Redis is enabled
func (s *MyServer) Cleaner() *tasks.Cleaner {
	var queue tasks.Enqueuer
	if s.Queue != nil {
		queue = s.Queue
	}
	return tasks.NewCleaner(s.Store, queue, s.Logger)
}

// Close releases every connection in reverse order of opening
func (s *MyServer) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			s.Logger.Error("close failed", slog.Any("error", err))
		}
	}
	s.closers = nil
}
