package util

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"javasmells/src/config"
)

// Logger wraps a zap sugared logger with the printf-style helpers used across the app
type Logger struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
}

// NewLogger creates a new logger from config. Console output goes to stderr;
// when a file is configured, entries are also written there as JSON with rotation.
func NewLogger(cfg config.LoggingConfig) *Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoderFor(cfg.Format), zapcore.Lock(os.Stderr), level),
	}

	if cfg.File != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(encoderFor("json"), fileWriter, level))
	}

	var opts []zap.Option
	if cfg.IncludeCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(2))
	}

	return &Logger{
		sugar: zap.New(zapcore.NewTee(cores...), opts...).Named("javasmells").Sugar(),
		level: level,
	}
}

// FromZap wraps an existing zap logger
func FromZap(l *zap.Logger) *Logger {
	return &Logger{
		sugar: l.Sugar(),
		level: zap.NewAtomicLevelAt(l.Level()),
	}
}

func encoderFor(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) { l.sugar.Debugf(msg, args...) }

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) { l.sugar.Infof(msg, args...) }

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) { l.sugar.Warnf(msg, args...) }

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) { l.sugar.Errorf(msg, args...) }

// With returns a child logger carrying the given key/value pairs
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...), level: l.level}
}

// GetLevel returns the current log level as a string
func (l *Logger) GetLevel() string {
	return l.level.Level().String()
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewLogger(config.LoggingConfig{Level: "info"}))
}

// DefaultLogger returns the package-level logger
func DefaultLogger() *Logger {
	return defaultLogger.Load()
}

// SetDefaultLogger replaces the default logger with one built from cfg
func SetDefaultLogger(cfg config.LoggingConfig) {
	defaultLogger.Store(NewLogger(cfg))
}

// SetLogger installs l as the default logger and returns a function restoring the previous one
func SetLogger(l *Logger) (restore func()) {
	prev := defaultLogger.Swap(l)
	return func() { defaultLogger.Store(prev) }
}

// Debug logs using the default logger
func Debug(msg string, args ...any) {
	DefaultLogger().Debug(msg, args...)
}

// Info logs using the default logger
func Info(msg string, args ...any) {
	DefaultLogger().Info(msg, args...)
}

// Warn logs using the default logger
func Warn(msg string, args ...any) {
	DefaultLogger().Warn(msg, args...)
}

// Error logs using the default logger
func Error(msg string, args ...any) {
	DefaultLogger().Error(msg, args...)
}
