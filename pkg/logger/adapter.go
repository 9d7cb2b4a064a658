package logger

import (
	"context"
	"fmt"

	"orderlookup/internal/config"

	"go.uber.org/zap"
)

const (
	_argPairs = 2
)

var _ Logger = (*Adapter)(nil)

type Adapter struct {
	logger *zap.Logger
}

// NewAdapter builds the application logger from cfg. Extra options override config values.
func NewAdapter(cfg *config.Config, opts ...Option) (*Adapter, error) {
	base := []Option{
		SetLevel(ParseLevel(cfg.Logger.Level)),
		File(cfg.Logger.Filename),
		MaxSize(cfg.Logger.MaxSize),
		MaxBackups(cfg.Logger.MaxBackups),
		MaxAge(cfg.Logger.MaxAge),
	}
	if !cfg.Logger.Stdout {
		base = append(base, Output(nil))
	}

	zl, err := NewZapLogger(cfg.App.Name, cfg.Env, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("logger.NewAdapter: %w", err)
	}
	return &Adapter{logger: zl.Zap()}, nil
}

// NewFromZap wraps an existing zap logger, e.g. one from zaptest.
func NewFromZap(l *zap.Logger) *Adapter {
	return &Adapter{logger: l}
}

func (a *Adapter) Debugw(msg string, keysAndValues ...any) {
	a.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (a *Adapter) Infow(msg string, keysAndValues ...any) {
	a.logger.Sugar().Infow(msg, keysAndValues...)
}

func (a *Adapter) Warnw(msg string, keysAndValues ...any) {
	a.logger.Sugar().Warnw(msg, keysAndValues...)
}

func (a *Adapter) Errorw(msg string, keysAndValues ...any) {
	a.logger.Sugar().Errorw(msg, keysAndValues...)
}

func (a *Adapter) Ctx(ctx context.Context) Logger {
	return &Adapter{logger: a.contextLogger(ctx)}
}

func (a *Adapter) With(keysAndValues ...any) Logger {
	return &Adapter{logger: a.logger.With(toZapFields(keysAndValues)...)}
}

func (a *Adapter) LogAttrs(ctx context.Context, level Level, msg string, attrs ...Attr) {
	l := a.contextLogger(ctx)
	zapLevel := toZapLevel(level)

	if !l.Core().Enabled(zapLevel) {
		return
	}

	l.Log(zapLevel, msg, toZapFieldsFromAttrs(attrs)...)
}

func (a *Adapter) Sync() error {
	return a.logger.Sync()
}

func toZapFields(args []any) []zap.Field {
	if len(args)%_argPairs != 0 {
		args = append(args, "<missing>")
	}
	fields := make([]zap.Field, 0, len(args)/_argPairs)
	for i := 0; i < len(args); i += _argPairs {
		key, ok := args[i].(string)
		if !ok {
			key = "UNKNOWN"
		}
		fields = append(fields, zap.Any(key, args[i+1]))
	}
	return fields
}

func toZapFieldsFromAttrs(attrs []Attr) []zap.Field {
	fields := make([]zap.Field, 0, len(attrs))
	for _, a := range attrs {
		if err, ok := a.Value.(error); ok {
			fields = append(fields, zap.NamedError(a.Key, err))
			continue
		}
		fields = append(fields, zap.Any(a.Key, a.Value))
	}
	return fields
}
