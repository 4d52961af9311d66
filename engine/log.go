package engine

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// Logger returns the logger used by the engine. Defaults to slog.Default().
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// SetLogger replaces the engine logger. A nil logger restores the default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}
