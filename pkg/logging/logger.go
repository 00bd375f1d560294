package logging

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey int

const (
	fieldsKey contextKey = iota
)

type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(level zapcore.Level) (*ZapLogger, error) {
	s := defaultSettings(zap.NewAtomicLevelAt(level))
	logger, err := s.config.Build(s.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return &ZapLogger{logger: logger}, nil
}

// FromZap wraps an already configured zap logger. The caller skip matches
// NewZapLogger so caller annotations point at the call site.
func FromZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}

func NewNop() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop()}
}

func ParseLevel(text string) (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(text)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q: %w", text, err)
	}
	return level, nil
}

func WithContextFields(ctx context.Context, fields ...zap.Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	existing := contextFields(ctx)
	merged := make([]zap.Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, fieldsKey, merged)
}

func contextFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey).([]zap.Field)
	return fields
}

func (l *ZapLogger) DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logCtx(ctx, zapcore.DebugLevel, msg, fields)
}

func (l *ZapLogger) InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logCtx(ctx, zapcore.InfoLevel, msg, fields)
}

func (l *ZapLogger) WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logCtx(ctx, zapcore.WarnLevel, msg, fields)
}

func (l *ZapLogger) ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logCtx(ctx, zapcore.ErrorLevel, msg, fields)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync() //nolint:wrapcheck // unnecessary
}

func (l *ZapLogger) logCtx(ctx context.Context, level zapcore.Level, msg string, fields []zap.Field) {
	ce := l.logger.Check(level, msg)
	if ce == nil {
		return
	}
	ctxFields := contextFields(ctx)
	all := make([]zap.Field, 0, len(ctxFields)+len(fields))
	all = append(all, ctxFields...)
	ce.Write(append(all, fields...)...)
}
