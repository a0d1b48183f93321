package logger

import (
	"context"
	"log/slog"
)

// contextArgs pulls well-known request-scoped values out of ctx so every log
// line carries them without callers repeating themselves.
func contextArgs(ctx context.Context, args []any) []any {
	if ctx == nil {
		return args
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		args = append(args, "request_id", requestID)
	}
	return args
}

func safeLogger() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}

// SafeInfoContext logs at info level with request-scoped fields. Safe to call
// before InitLogger.
func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	safeLogger().InfoContext(ctx, msg, contextArgs(ctx, args)...)
}

// SafeWarnContext logs at warn level with request-scoped fields.
func SafeWarnContext(ctx context.Context, msg string, args ...any) {
	safeLogger().WarnContext(ctx, msg, contextArgs(ctx, args)...)
}

// SafeErrorContext logs at error level with request-scoped fields.
func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	safeLogger().ErrorContext(ctx, msg, contextArgs(ctx, args)...)
}
