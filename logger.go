package citysearch

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/citysearch/internal/coordindex"
)

// Logger wraps slog.Logger with citysearch-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a warn-level text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to w.
// A nil w means stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to w.
// A nil w means stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithBackend adds a backend field to the logger.
func (l *Logger) WithBackend(backend string) *Logger {
	return &Logger{
		Logger: l.Logger.With("backend", backend),
	}
}

// WithCity adds a city field to the logger.
func (l *Logger) WithCity(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("city", name),
	}
}

// LogLoad logs a load operation.
func (l *Logger) LogLoad(ctx context.Context, source string, cities, duplicates int, err error) {
	if err != nil {
		l.DebugContext(ctx, "load failed",
			"source", source,
			"error", err,
		)
		return
	}
	if duplicates > 0 {
		l.WarnContext(ctx, "load replaced duplicate cities",
			"source", source,
			"cities", cities,
			"duplicates", duplicates,
		)
		return
	}
	l.DebugContext(ctx, "load completed",
		"source", source,
		"cities", cities,
	)
}

// LogIndex logs the extent of the coordinate indexes built for source.
func (l *Logger) LogIndex(ctx context.Context, source string, x, y coordindex.Stats) {
	l.DebugContext(ctx, "index built",
		"source", source,
		slog.Group("x", "min", x.Min, "max", x.Max, "distinct", x.Cardinality),
		slog.Group("y", "min", y.Min, "max", y.Max, "distinct", y.Cardinality),
	)
}

// LogSearch logs a search operation. Use WithCity to attach the center.
func (l *Logger) LogSearch(ctx context.Context, radius float64, metric string, matches, north, candidates int, err error) {
	if err != nil {
		l.DebugContext(ctx, "search failed",
			"radius", radius,
			"metric", metric,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"radius", radius,
			"metric", metric,
			"matches", matches,
			"north", north,
			"candidates", candidates,
		)
	}
}
