package auth

import (
	"context"
	"log/slog"
)

// LogAuthAttempt records an authentication attempt in the structured log.
// status is Success or Fail; identifier is the username or user id when known.
func LogAuthAttempt(ctx context.Context, level slog.Level, status, identifier, message string) {
	attrs := []slog.Attr{
		slog.String("component", "auth"),
		slog.String("status", status),
	}
	if identifier != "" {
		attrs = append(attrs, slog.String("identifier", identifier))
	}
	slog.LogAttrs(ctx, level, message, attrs...)
}
