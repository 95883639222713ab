package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"
)

// Logger is an immutable structured logger. The zero value discards
// everything.
type Logger struct {
	*slog.Logger

	cfg config
}

// Make returns a [Logger] writing to w, configured with the defaults and
// then opts.
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{Logger: slog.New(cfg.handler()), cfg: cfg}
}

// Wrap returns a copy of l with opts applied on top of its configuration.
// Attributes added with [Logger.With] are not carried over.
func (l Logger) Wrap(opts ...Option) Logger {
	if l.Logger == nil {
		return Make(nil, opts...)
	}

	cfg := apply(l.cfg, opts...)

	return Logger{Logger: slog.New(cfg.handler()), cfg: cfg}
}

// With returns a copy of l that adds attrs to every message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil || len(attrs) == 0 {
		return l
	}

	return Logger{
		Logger: slog.New(l.Handler().WithAttrs(attrs)),
		cfg:    l.cfg,
	}
}

// Level returns the minimum level of messages that are written.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.cfg.level
}

// Format returns the output format.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.cfg.format
}

// Trace logs msg at [LevelTrace].
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), 3, LevelTrace, msg, attrs)
}

// TraceContext logs msg at [LevelTrace] with ctx.
func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelTrace, msg, attrs)
}

// Debug logs msg at [LevelDebug].
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), 3, LevelDebug, msg, attrs)
}

// DebugContext logs msg at [LevelDebug] with ctx.
func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelDebug, msg, attrs)
}

// Info logs msg at [LevelInfo].
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), 3, LevelInfo, msg, attrs)
}

// InfoContext logs msg at [LevelInfo] with ctx.
func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelInfo, msg, attrs)
}

// Warn logs msg at [LevelWarn].
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), 3, LevelWarn, msg, attrs)
}

// WarnContext logs msg at [LevelWarn] with ctx.
func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelWarn, msg, attrs)
}

// Error logs msg at [LevelError].
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(context.Background(), 3, LevelError, msg, attrs)
}

// ErrorContext logs msg at [LevelError] with ctx.
func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelError, msg, attrs)
}

// log builds the record itself so that the reported source location is the
// caller skip frames up, not a method of this package.
func (l Logger) log(
	ctx context.Context,
	skip int,
	level Level,
	msg string,
	attrs []slog.Attr,
) {
	if l.Logger == nil || !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pcs [1]uintptr

	runtime.Callers(skip, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.AddAttrs(attrs...)

	_ = l.Handler().Handle(ctx, r)
}

var std atomic.Pointer[Logger]

func init() {
	l := Make(os.Stderr)
	std.Store(&l)
}

// Default returns the package-level logger.
func Default() Logger { return *std.Load() }

// Config applies opts to the package-level logger.
func Config(opts ...Option) {
	l := Default().Wrap(opts...)
	std.Store(&l)
}

// With returns the package-level logger with attrs added.
func With(attrs ...slog.Attr) Logger { return Default().With(attrs...) }

// Trace logs msg at [LevelTrace] with the package-level logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), 3, LevelTrace, msg, attrs)
}

// TraceContext logs msg at [LevelTrace] with the package-level logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 3, LevelTrace, msg, attrs)
}

// Debug logs msg at [LevelDebug] with the package-level logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), 3, LevelDebug, msg, attrs)
}

// DebugContext logs msg at [LevelDebug] with the package-level logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 3, LevelDebug, msg, attrs)
}

// Info logs msg at [LevelInfo] with the package-level logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), 3, LevelInfo, msg, attrs)
}

// InfoContext logs msg at [LevelInfo] with the package-level logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 3, LevelInfo, msg, attrs)
}

// Warn logs msg at [LevelWarn] with the package-level logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), 3, LevelWarn, msg, attrs)
}

// WarnContext logs msg at [LevelWarn] with the package-level logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 3, LevelWarn, msg, attrs)
}

// Error logs msg at [LevelError] with the package-level logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), 3, LevelError, msg, attrs)
}

// ErrorContext logs msg at [LevelError] with the package-level logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 3, LevelError, msg, attrs)
}
