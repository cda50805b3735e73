// Package logger provides the process-wide structured logger built on log/slog.
//
// Diagnostics go to stderr so they never mix with command output:
//
//	logger.Setup(os.Stderr, verbose)
//	ctx = logger.InjectLogger(ctx, logger.L.With("command", "create"))
//	logger.WithCtx(ctx).Debug("plan applied", "files", len(plan.Files))
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

var L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// Setup replaces L with a text handler on w. Verbose enables debug output;
// otherwise only warnings and errors are shown.
func Setup(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	L = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(L)
	return L
}

// ctxKey is the unexported key used to store a per-run *slog.Logger.
type ctxKey struct{}

// WithCtx returns the logger stored in ctx, or L.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores log into ctx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }
