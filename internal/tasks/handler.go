package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"corpsite-backend/internal/storage"
)

// FileCleanupHandler consumes TypeFileCleanup tasks
type FileCleanupHandler struct {
	store  storage.FileStore
	logger *slog.Logger
}

// NewFileCleanupHandler creates the task handler
func NewFileCleanupHandler(store storage.FileStore, logger *slog.Logger) *FileCleanupHandler {
	return &FileCleanupHandler{store: store, logger: logger}
}

// ProcessTask implements asynq.Handler
func (h *FileCleanupHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload FileCleanupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.logger.Error("unmarshal task payload failed", slog.Any("error", err))
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	log := h.logger.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Int("files", len(payload.Paths)),
	)

	failed := removeAll(ctx, h.store, log, payload.Paths)
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d files not removed", len(failed), len(payload.Paths))
	}
	log.Info("stored files removed")
	return nil
}
