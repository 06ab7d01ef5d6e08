package testutil

import (
	"io"
	"log/slog"

	"github.com/umbreon222/Todo-List-Api/internal/logger"
)

// MakeNoopLogger returns a debug-level logger that discards its output,
// so Debug call sites are still evaluated in tests.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, int(slog.LevelDebug))
}
