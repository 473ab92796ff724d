package logging

import (
	"context"

	"go.uber.org/zap"
)

type ctxLoggerKey struct{}

// LoggerFromContext returns the request-scoped logger, or the process logger when none is set.
func LoggerFromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return Logger()
	}
	if l, ok := ctx.Value(ctxLoggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return Logger()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

func LogInfo(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Info(msg, fields...)
}

func LogWarn(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Warn(msg, fields...)
}

// LogError appends err as the "error" field when non-nil.
func LogError(ctx context.Context, msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	LoggerFromContext(ctx).Error(msg, fields...)
}

// LogFatal logs at fatal severity and exits the process with status 1.
func LogFatal(ctx context.Context, msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	LoggerFromContext(ctx).Fatal(msg, fields...)
}
