package diag

import (
	"io"
	"log/slog"
	"os"
)

// DebugLogger returns a slog.Logger for internal tracing. Tracing is off
// unless the GOLOX_DEBUG environment variable is set, in which case debug
// records for every component go to stderr. Diagnostics meant for users never
// travel through this logger.
func DebugLogger(component string) *slog.Logger {
	if os.Getenv("GOLOX_DEBUG") == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With("component", component)
}
