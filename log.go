package singleton

import (
	"log/slog"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[slog.Logger]

// SetDefaultErrorLogger replaces the logger used to report panics
// recovered from user cleanups. By default slog.Default() is used.
func SetDefaultErrorLogger(log *slog.Logger) {
	defaultLogger.Store(log)
}

func logger() *slog.Logger {
	if log := defaultLogger.Load(); log != nil {
		return log
	}

	return slog.Default()
}
