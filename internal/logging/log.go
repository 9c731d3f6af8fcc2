// Package logging wraps go.uber.org/zap behind a small
// Info/Verbose/Debug/Warning/Error call shape, with file output rotated
// through gopkg.in/natefinch/lumberjack.v2.
package logging

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/eng618/maze-router/internal/config"
)

// Logger is the ambient logging surface the CLI and router share.
type Logger struct {
	z       *zap.SugaredLogger
	verbose bool
	runID   string
}

// New builds a Logger from cfg. When cfg.Path is empty, output goes to
// stdout only, at every level; otherwise a rotating file sink is added
// alongside.
func New(cfg config.LogConfig, verbose bool) (*Logger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(level)),
	}
	if cfg.Path != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
		jsonEnc := zapcore.NewJSONEncoder(encCfg)
		cores = append(cores, zapcore.NewCore(jsonEnc, fileSink, zap.NewAtomicLevelAt(level)))
	}

	z := zap.New(zapcore.NewTee(cores...))
	runID := uuid.New().String()

	return &Logger{
		z:       z.Sugar().With("run_id", runID),
		verbose: verbose,
		runID:   runID,
	}, nil
}

// Noop returns a Logger that discards everything, for tests and
// headless embedding.
func Noop() *Logger {
	return &Logger{z: zap.NewNop().Sugar()}
}

// RunID returns the correlation id stamped on every line this Logger
// emits.
func (l *Logger) RunID() string { return l.runID }

// Info logs a message that is always shown, regardless of verbose mode.
func (l *Logger) Info(format string, args ...any) {
	l.z.Infof(format, args...)
}

// Verbose logs a message only relevant when verbose/debug mode is on.
func (l *Logger) Verbose(format string, args ...any) {
	l.z.Debugf(format, args...)
}

// Debug is an alias for Verbose, kept for parity with the call shape
// this package's predecessor used.
func (l *Logger) Debug(format string, args ...any) {
	l.Verbose(format, args...)
}

// Warning logs a message that is always shown, at warn level.
func (l *Logger) Warning(format string, args ...any) {
	l.z.Warnf(format, args...)
}

// Error logs a message that is always shown, at error level.
func (l *Logger) Error(format string, args ...any) {
	l.z.Errorf(format, args...)
}

// Sync flushes any buffered log entries. Call before process exit.
func (l *Logger) Sync() {
	_ = l.z.Sync()
}
