// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const componentKey = "component"

// zapLogger is default implementation of the Logger interface.
// It is wrapped zap.SugaredLogger.
type zapLogger struct {
	sugar     *zap.SugaredLogger
	component string
}

func loggerFromZapCore(core zapcore.Core) *zapLogger {
	return &zapLogger{sugar: zap.New(core).Sugar()}
}

func (l *zapLogger) Debug(_ context.Context, message string) {
	l.sugar.Debug(message)
}

func (l *zapLogger) Info(_ context.Context, message string) {
	l.sugar.Info(message)
}

func (l *zapLogger) Warn(_ context.Context, message string) {
	l.sugar.Warn(message)
}

func (l *zapLogger) Error(_ context.Context, message string) {
	l.sugar.Error(message)
}

func (l *zapLogger) Debugf(_ context.Context, template string, args ...any) {
	l.sugar.Debugf(template, args...)
}

func (l *zapLogger) Infof(_ context.Context, template string, args ...any) {
	l.sugar.Infof(template, args...)
}

func (l *zapLogger) Warnf(_ context.Context, template string, args ...any) {
	l.sugar.Warnf(template, args...)
}

func (l *zapLogger) Errorf(_ context.Context, template string, args ...any) {
	l.sugar.Errorf(template, args...)
}

func (l *zapLogger) Sync() error {
	return l.sugar.Sync()
}

func (l *zapLogger) With(attrs ...attribute.KeyValue) Logger {
	args := make([]any, 0, len(attrs)*2)
	for _, attr := range attrs {
		args = append(args, string(attr.Key), attr.Value.Emit())
	}
	return &zapLogger{sugar: l.sugar.With(args...), component: l.component}
}

// WithComponent sets a component name, nested components are joined by a dot, for example "export.archive".
func (l *zapLogger) WithComponent(component string) Logger {
	if l.component != "" {
		component = l.component + "." + component
	}
	// The field is replaced in the encoder output, zap keeps only the last value of a duplicated key in JSON.
	return &zapLogger{sugar: l.sugar.With(componentKey, component), component: component}
}

func (l *zapLogger) WithDuration(v time.Duration) Logger {
	return &zapLogger{sugar: l.sugar.With("duration", v.String()), component: l.component}
}
