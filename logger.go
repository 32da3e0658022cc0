package glstate

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip record formatting entirely,
// making disabled logging effectively zero-cost on the draw path.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from the context's
// owning goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for glstate and the gldriver package.
// By default, glstate produces no log output. Pass nil to restore the
// default silent behavior.
//
// Log levels used by glstate:
//   - [slog.LevelInfo]: context lifecycle (vendor and pipeline tier
//     detected, capability maxima, context torn down)
//   - [slog.LevelWarn]: recoverable caller errors (transform stack pop
//     with a single entry remaining)
//   - [slog.LevelDebug]: per-call diagnostics and driver debug output
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. The gldriver package calls this to
// share the same logger configuration without an import cycle.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
