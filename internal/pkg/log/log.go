package log

import (
	"context"
	"fmt"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging contract used below the transport layer.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
}

type logger struct {
	otel *otelzap.Logger
}

var (
	mu      sync.RWMutex
	current Logger
)

func SetupLogger() *zap.Logger {
	return SetupLoggerWithLevel("info")
}

func SetupLoggerWithLevel(level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func Init(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = &logger{otel: otelzap.New(l, otelzap.WithMinLevel(l.Level()))}
}

func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return &logger{otel: otelzap.New(zap.NewNop())}
	}
	return current
}

// Setup returns an otelzap logger for handlers and middleware.
func Setup() *otelzap.Logger {
	return otelzap.New(SetupLogger())
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.otel.Ctx(ctx).Debug(msg, toZapFields(fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.otel.Ctx(ctx).Info(msg, toZapFields(fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.otel.Ctx(ctx).Warn(msg, toZapFields(fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.otel.Ctx(ctx).Error(msg, toZapFields(fields)...)
}

// toZapFields accepts zap fields, errors, or key/value pairs.
func toZapFields(fields []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		switch v := fields[i].(type) {
		case zap.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		case string:
			if i+1 < len(fields) {
				out = append(out, zap.Any(v, fields[i+1]))
				i++
				continue
			}
			out = append(out, zap.String("detail", v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("field_%d", i), v))
		}
	}
	return out
}
