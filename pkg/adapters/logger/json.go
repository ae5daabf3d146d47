package logger

import (
	"io"

	"github.com/ideamans/go-l10n"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/user/frame2video/pkg/ports"
)

// JSONLogger writes one JSON object per line using zap.
type JSONLogger struct {
	sugar *zap.SugaredLogger
}

// NewJSON creates a JSON logger that writes to w at the given level.
func NewJSON(level ports.LogLevel, w io.Writer) *JSONLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(w),
		zapLevel(level),
	)
	return &JSONLogger{sugar: zap.New(core).Sugar()}
}

func zapLevel(level ports.LogLevel) zapcore.Level {
	switch level {
	case ports.LevelDebug:
		return zapcore.DebugLevel
	case ports.LevelInfo:
		return zapcore.InfoLevel
	case ports.LevelWarn:
		return zapcore.WarnLevel
	case ports.LevelError:
		return zapcore.ErrorLevel
	default:
		// LevelQuiet: nothing at or below fatal is emitted.
		return zapcore.FatalLevel + 1
	}
}

// Debug logs a debug message.
func (l *JSONLogger) Debug(msg string, args ...interface{}) {
	l.sugar.Debug(l10n.F(msg, args...))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, args ...interface{}) {
	l.sugar.Info(l10n.F(msg, args...))
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, args ...interface{}) {
	l.sugar.Warn(l10n.F(msg, args...))
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, args ...interface{}) {
	l.sugar.Error(l10n.F(msg, args...))
}

// WithComponent returns a logger that adds a "component" field.
func (l *JSONLogger) WithComponent(component string) ports.Logger {
	return &JSONLogger{sugar: l.sugar.With("component", component)}
}

// Sync flushes buffered entries.
func (l *JSONLogger) Sync() error {
	return l.sugar.Sync()
}

var _ ports.Logger = (*JSONLogger)(nil)
