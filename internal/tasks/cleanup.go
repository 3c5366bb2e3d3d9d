package tasks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"corpsite-backend/internal/metrics"
	"corpsite-backend/internal/storage"
)

// CleanupMaxRetry bounds the retries of one cleanup task
const CleanupMaxRetry = 5

// Enqueuer is the part of *asynq.Client the cleaner needs
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Cleaner removes the files of deleted records.
// Failures never propagate; with a queue configured they are retried by the worker.
type Cleaner struct {
	Store  storage.FileStore
	Queue  Enqueuer
	Logger *slog.Logger
}

// NewCleaner creates a Cleaner; queue may be nil
func NewCleaner(store storage.FileStore, queue Enqueuer, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{Store: store, Queue: queue, Logger: logger}
}

// Remove deletes paths from the store; missing files are ignored.
// It returns the paths that could not be removed.
func (cl *Cleaner) Remove(ctx context.Context, correlationID string, paths ...string) []string {
	failed := removeAll(ctx, cl.Store, cl.Logger, paths)
	if len(failed) == 0 {
		return nil
	}

	if cl.Queue == nil {
		return failed
	}
	task, err := NewFileCleanupTask(failed, correlationID)
	if err != nil {
		cl.Logger.Error("build cleanup task", slog.Any("error", err))
		return failed
	}
	info, err := cl.Queue.Enqueue(task, asynq.MaxRetry(CleanupMaxRetry), asynq.ProcessIn(time.Minute))
	if err != nil {
		cl.Logger.Error("enqueue cleanup task", slog.Any("error", err), slog.Any("paths", failed))
		return failed
	}
	cl.Logger.Info("cleanup task enqueued", slog.String("task_id", info.ID), slog.Int("files", len(failed)))
	return failed
}

func removeAll(ctx context.Context, store storage.FileStore, log *slog.Logger, paths []string) []string {
	var failed []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		err := store.Remove(ctx, p)
		switch {
		case err == nil, errors.Is(err, storage.ErrNotFound):
		case errors.Is(err, storage.ErrInvalidPath):
			log.Warn("skip invalid stored path", slog.String("path", p))
		default:
			metrics.FileCleanupFailed()
			log.Error("remove stored file", slog.String("path", p), slog.Any("error", err))
			failed = append(failed, p)
		}
	}
	return failed
}
