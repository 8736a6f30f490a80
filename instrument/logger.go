package instrument

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lazypath/search"
)

// Logger writes one structured record per finished search: Debug for found
// and exhausted searches, Warn for aborted ones.
type Logger struct {
	log *slog.Logger
}

// NewLogger wraps l. A nil l uses slog.Default().
func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}

	return &Logger{log: l.With(slog.String("component", "lazypath"))}
}

// ObserveSearch implements search.Observer.
func (l *Logger) ObserveSearch(r search.Report) {
	level := slog.LevelDebug
	attrs := []slog.Attr{
		slog.String("mode", r.Mode.String()),
		slog.String("outcome", r.Outcome.String()),
		slog.Int("expanded", r.Expanded),
		slog.Int("pushed", r.Pushed),
		slog.Int("discarded", r.Discarded),
		slog.Int("frontier_peak", r.PeakFrontier),
		slog.Duration("elapsed", r.Elapsed),
	}
	if r.Err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", r.Err.Error()))
	}
	l.log.LogAttrs(context.Background(), level, "search finished", attrs...)
}
