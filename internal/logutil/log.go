// Package logutil holds the process-wide zap logger shared by the arena,
// the completion trie and the command line tool.
package logutil

import (
	"os"
	"strings"

	"github.com/pingcap/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	appLogger = Logger{zap.NewNop()}
	appLevel  = zap.NewAtomicLevel()
	// appClose releases the output opened by the last InitLogger.
	appClose = func() {}
)

// Logger wraps the zap logger.
type Logger struct {
	*zap.Logger
}

// Config serializes log related config in toml.
type Config struct {
	// Log level.
	// One of "debug", "info", "warn", "error", "dpanic", "panic", and "fatal".
	Level string `toml:"level"`
	// Format of the log, one of `text` or `json`.
	Format string `toml:"format"`
	// Log filename, leave empty to write to stderr.
	File string `toml:"file"`
}

// Zap returns the global logger.
func Zap() Logger {
	return appLogger
}

// InitLogger builds the global logger from cfg. The global logger and level
// are left untouched when cfg is invalid. A log file opened by an earlier call
// is closed once the new logger is installed.
func InitLogger(cfg *Config) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		return errors.Annotatef(err, "invalid log level %q", cfg.Level)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "", "text", "console":
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return errors.Errorf("invalid log format %q", cfg.Format)
	}

	out, closeOut := zapcore.Lock(os.Stderr), func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.Trace(err)
		}
		out = zapcore.Lock(f)
		closeOut = func() { _ = f.Close() }
	}

	appLevel.SetLevel(level)
	logger := zap.New(zapcore.NewCore(enc, out, appLevel), zap.AddCaller(), zap.AddCallerSkip(1))
	_ = appLogger.Sync()
	appLogger = Logger{logger}
	prev := appClose
	appClose = closeOut
	prev()
	return nil
}

// SetLogger replaces the global logger.
func SetLogger(logger *zap.Logger) {
	appLogger = Logger{logger.WithOptions(zap.AddCallerSkip(1))}
}

// SetLevel changes the global logger's level.
func SetLevel(level zapcore.Level) {
	appLevel.SetLevel(level)
}

// Debug wraps *zap.Logger's Debug function.
func Debug(msg string, fields ...zap.Field) {
	appLogger.Debug(msg, fields...)
}

// Info wraps *zap.Logger's Info function.
func Info(msg string, fields ...zap.Field) {
	appLogger.Info(msg, fields...)
}

// Warn wraps *zap.Logger's Warn function.
func Warn(msg string, fields ...zap.Field) {
	appLogger.Warn(msg, fields...)
}

// Error wraps *zap.Logger's Error function.
func Error(msg string, fields ...zap.Field) {
	appLogger.Error(msg, fields...)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return appLogger.Sync()
}

// Close flushes the global logger, closes the log file opened by InitLogger
// and falls back to a no-op logger.
func Close() error {
	err := appLogger.Sync()
	appLogger = Logger{zap.NewNop()}
	appClose()
	appClose = func() {}
	return err
}
