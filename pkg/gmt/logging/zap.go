package logging

import (
	"context"

	"go.uber.org/zap"
)

// NewZap returns a Logger backed by a zap logger. Arguments are treated as
// alternating key/value pairs, as with slog. Passing nil yields a no-op
// logger.
//
// The context is dropped: zap carries no per-call context. The gmt-go command
// builds its *zap.Logger from a production config at warn level (debug with
// -v) and passes it through gmt.Config.Logger, so Runtime lifecycle events
// such as "session created" carry the library path and session name as
// structured fields.
func NewZap(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{sugar: logger.Sugar()}
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l *zapLogger) Debug(_ context.Context, msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *zapLogger) Info(_ context.Context, msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *zapLogger) Warn(_ context.Context, msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *zapLogger) Error(_ context.Context, msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *zapLogger) With(args ...any) Logger {
	return &zapLogger{sugar: l.sugar.With(args...)}
}
