package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

const (
	// LogLevelEnvVar controls logging verbosity. When unset or empty,
	// logging is silent. Valid values: "debug", "info", "warn", "error".
	LogLevelEnvVar = "FUI_LOG_LEVEL"

	// LogFileEnvVar names the file log entries are appended to.
	LogFileEnvVar = "FUI_LOG_FILE"

	// DefaultLogFile is used when a level is set but no file is given.
	// Writing to stdout would corrupt the rendered form.
	DefaultLogFile = "fui.log"
)

// Initialize creates a new logger with the specified level writing to path.
// Empty arguments fall back to FUI_LOG_LEVEL and FUI_LOG_FILE.
// If no level is configured, logging is disabled (silent mode).
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}
	if path == "" {
		path = DefaultLogFile
	}

	zapLevel, err := parseLevel(level)
	if err != nil {
		return err
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from FUI_LOG_LEVEL and FUI_LOG_FILE.
func InitializeFromEnv() error {
	return Initialize("", "")
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogSkippedCandidate records a completion candidate dropped by a feeder
// because it could not be inspected.
func LogSkippedCandidate(source, path string, err error) {
	Debug("Skipped candidate",
		zap.String("source", source),
		zap.String("path", path),
		zap.Error(err),
	)
}

// LogQuery records a feeder query and how many candidates it produced.
func LogQuery(source, text string, offset, count, found int) {
	Debug("Feeder query",
		zap.String("source", source),
		zap.String("text", text),
		zap.Int("offset", offset),
		zap.Int("count", count),
		zap.Int("found", found),
	)
}

// LogValidation records the outcome of a form validation pass.
func LogValidation(form string, fields int, errs map[string]string) {
	if len(errs) == 0 {
		Debug("Form valid", zap.String("form", form), zap.Int("fields", fields))
		return
	}
	Info("Form invalid",
		zap.String("form", form),
		zap.Int("fields", fields),
		zap.Any("errors", errs),
	)
}

// LogTransition records a state change of the action shell.
func LogTransition(from, to string, action string) {
	Debug("State transition",
		zap.String("from", from),
		zap.String("to", to),
		zap.String("action", action),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
