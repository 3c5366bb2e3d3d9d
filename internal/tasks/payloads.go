// Package tasks holds the background task definitions shared by the api and the worker.
package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task types, shared by producer and consumer
const (
	TypeFileCleanup = "file:cleanup"
)

// FileCleanupPayload lists stored files whose record is already gone
type FileCleanupPayload struct {
	Paths         []string `json:"paths"`
	CorrelationID string   `json:"correlation_id"`
}

// NewFileCleanupTask builds a retryable cleanup task
func NewFileCleanupTask(paths []string, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(FileCleanupPayload{
		Paths:         paths,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeFileCleanup, payload), nil
}
