package log

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field aliases zap.Field so callers do not import zap directly.
type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	Bool   = zap.Bool
	Any    = zap.Any
	Err    = zap.Error
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type Option func(*zap.Config)

func WithLevel(level string) Option {
	return func(cfg *zap.Config) {
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(parsed)
		}
	}
}

func WithDevelopmentEncoder() Option {
	return func(cfg *zap.Config) {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
}

// Init builds the process-wide logger. Safe to call once at startup.
func Init(appName string, opts ...Option) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	for _, opt := range opts {
		opt(&cfg)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	mu.Lock()
	logger = l.Named(appName)
	mu.Unlock()
}

// InitForTest swaps in a no-op logger so tests stay quiet.
func InitForTest() {
	mu.Lock()
	logger = zap.NewNop()
	mu.Unlock()
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if id := GetCorrelationID(ctx); id != "" {
		fields = append(fields, zap.String("correlationId", id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	get().Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	get().Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	get().Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	get().Error(msg, withCtx(ctx, fields)...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Fatalf(format, args...)
}
