package pagedarray

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pagedarray-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs text at info level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NewTextLogger(slog.LevelInfo)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger logs JSON to stderr at the given minimum level.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger logs key=value text to stderr at the given minimum level.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithPage adds a page field to the logger.
func (l *Logger) WithPage(page int) *Logger {
	return &Logger{
		Logger: l.Logger.With("page", page),
	}
}

// WithGeometry adds the array configuration to the logger.
func (l *Logger) WithGeometry(totalCount, objectsPerPage, initialPageIndex int) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			"total_count", totalCount,
			"objects_per_page", objectsPerPage,
			"initial_page_index", initialPageIndex,
		),
	}
}

// LogSetPage logs a SetPage call.
func (l *Logger) LogSetPage(page, size int, err error) {
	pl := l.WithPage(page)
	if err != nil {
		pl.Warn("set page rejected",
			"size", size,
			"error", err,
		)
		return
	}
	pl.Debug("page set",
		"size", size,
	)
}

// LogResize logs a total count change.
func (l *Logger) LogResize(oldCount, newCount, numberOfPages int, err error) {
	if err != nil {
		l.Error("resize failed",
			"old_count", oldCount,
			"new_count", newCount,
			"error", err,
		)
		return
	}
	l.Debug("total count changed",
		"old_count", oldCount,
		"new_count", newCount,
		"pages", numberOfPages,
	)
}

// LogClear logs a Clear call.
func (l *Logger) LogClear(pages int) {
	l.Debug("contents invalidated",
		"pages_dropped", pages,
	)
}
