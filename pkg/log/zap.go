package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	return &zapLogger{sugar: newZap(cfg, os.Stdout).Sugar()}
}

// NewNop returns a Logger that discards everything. Handy in tests.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func newZap(cfg ZapConfig, out zapcore.WriteSyncer) *zap.Logger {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode == ModeDevelopment {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding == EncodingConsole {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var enc zapcore.Encoder
	if cfg.Encoding == EncodingConsole {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.Mode == ModeDevelopment {
		opts = append(opts, zap.Development())
	}
	return zap.New(zapcore.NewCore(enc, out, level), opts...)
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	s := l.sugar
	if id := RequestIDFromContext(ctx); id != "" {
		s = s.With("request_id", id)
	}
	if id := UserIDFromContext(ctx); id != "" {
		s = s.With("user_id", id)
	}
	return s
}

// structured reports whether args look like msg, k1, v1, k2, v2...
func structured(arg []any) (string, []any, bool) {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return "", nil, false
	}
	msg, ok := arg[0].(string)
	if !ok {
		return "", nil, false
	}
	for i := 1; i < len(arg); i += 2 {
		if _, ok := arg[i].(string); !ok {
			return "", nil, false
		}
	}
	return msg, arg[1:], true
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) {
	if msg, kv, ok := structured(arg); ok {
		l.with(ctx).Debugw(msg, kv...)
		return
	}
	l.with(ctx).Debug(arg...)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}

func (l *zapLogger) Info(ctx context.Context, arg ...any) {
	if msg, kv, ok := structured(arg); ok {
		l.with(ctx).Infow(msg, kv...)
		return
	}
	l.with(ctx).Info(arg...)
}

func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}

func (l *zapLogger) Warn(ctx context.Context, arg ...any) {
	if msg, kv, ok := structured(arg); ok {
		l.with(ctx).Warnw(msg, kv...)
		return
	}
	l.with(ctx).Warn(arg...)
}

func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}

func (l *zapLogger) Error(ctx context.Context, arg ...any) {
	if msg, kv, ok := structured(arg); ok {
		l.with(ctx).Errorw(msg, kv...)
		return
	}
	l.with(ctx).Error(arg...)
}

func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}

func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	l.with(ctx).DPanic(arg...)
}

func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}

func (l *zapLogger) Panic(ctx context.Context, arg ...any) {
	l.with(ctx).Panic(arg...)
}

func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}

func (l *zapLogger) Fatal(ctx context.Context, arg ...any) {
	l.with(ctx).Fatal(arg...)
}

func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}
