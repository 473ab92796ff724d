// Package logging provides the process-wide zap logger and request-scoped helpers.
package logging

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

var (
	loggerOnce sync.Once
	baseLogger *zap.Logger
	loggerErr  error
)

func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(RFC3339Micros))
}

// encodeSeverity maps zap levels to Cloud Logging severity names.
func encodeSeverity(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(severity(level))
}

func severity(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.InfoLevel:
		return "INFO"
	case zapcore.WarnLevel:
		return "WARNING"
	case zapcore.ErrorLevel:
		return "ERROR"
	case zapcore.DPanicLevel:
		return "CRITICAL"
	case zapcore.PanicLevel:
		return "ALERT"
	case zapcore.FatalLevel:
		return "EMERGENCY"
	default:
		return "DEFAULT"
	}
}

func initLogger() {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = encodeTime
	cfg.EncoderConfig.LevelKey = "severity"
	cfg.EncoderConfig.EncodeLevel = encodeSeverity
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.CallerKey = "caller"

	baseLogger, loggerErr = cfg.Build(zap.AddCaller())
	if loggerErr != nil {
		baseLogger = zap.NewNop()
	}
}

// Logger returns the process-wide logger.
func Logger() *zap.Logger {
	loggerOnce.Do(initLogger)
	return baseLogger
}

// Sync flushes buffered entries. Call before exit.
func Sync() error {
	loggerOnce.Do(initLogger)
	return baseLogger.Sync()
}

// Err reports a logger construction failure. On failure Logger returns a no-op logger.
func Err() error {
	loggerOnce.Do(initLogger)
	return loggerErr
}
