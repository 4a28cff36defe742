// nolint:forbidigo // allow usage of the "zap" package
package log

import "go.uber.org/zap/zapcore"

// NewNopLogger returns no operation logger, logs are ignored.
func NewNopLogger() Logger {
	return loggerFromZapCore(zapcore.NewNopCore())
}
