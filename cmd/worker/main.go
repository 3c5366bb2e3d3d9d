package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"

	"corpsite-backend/internal/config"
	"corpsite-backend/internal/metrics"
	"corpsite-backend/internal/storage"
	"corpsite-backend/internal/tasks"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Server.SlogLevel()}))
	slog.SetDefault(logger)

	if !cfg.Redis.Enabled() {
		log.Fatal("REDIS_ADDR is required for the worker")
	}

	store, err := storage.New(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}
	logger.Info("storage ready", slog.String("driver", cfg.Storage.Driver))

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Logger:      newAsynqLogger(logger),
	})

	mux := asynq.NewServeMux()
	mux.Use(metrics.AsynqMetricsMiddleware())
	mux.Handle(tasks.TypeFileCleanup, tasks.NewFileCleanupHandler(store, logger))

	logger.Info("worker service started", slog.String("redis_addr", cfg.Redis.Addr))
	if err := srv.Run(mux); err != nil {
		logger.Error("worker server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
