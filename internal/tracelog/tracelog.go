// Package tracelog carries a *slog.Logger through a context.Context so
// that the I/O layers (sinks, the command line tool) can report what they
// do without taking a logger argument everywhere.
package tracelog

import (
	"context"
	"log/slog"
	"runtime"
)

type traceLoggerKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// WithTraceLogger returns a context carrying tlog. A logger already
// present in ctx takes precedence.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

// FromContext returns the logger stored in ctx, annotated with the name
// of the calling function, or a logger that discards everything.
func FromContext(ctx context.Context) *slog.Logger {
	return fromContext(ctx, 2)
}

func fromContext(ctx context.Context, skip int) *slog.Logger {
	tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger)
	if !ok || tlog == nil {
		return nullLogger
	}

	if pc, _, _, ok := runtime.Caller(skip); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			tlog = tlog.With(slog.String("fn", fn.Name()))
		}
	}
	return tlog
}

// TraceEvent logs msg at debug level.
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	fromContext(ctx, 3).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// TraceError logs err at error level.
func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("error", err.Error()))
	fromContext(ctx, 3).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
