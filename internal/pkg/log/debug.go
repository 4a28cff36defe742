// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"strings"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type debugLogger struct {
	*zapLogger
	logs *observer.ObservedLogs
}

// NewDebugLogger returns logs as string in tests.
func NewDebugLogger() DebugLogger {
	core, logs := observer.New(zapcore.DebugLevel)
	return &debugLogger{zapLogger: loggerFromZapCore(core), logs: logs}
}

// Truncate clears all messages.
func (l *debugLogger) Truncate() {
	l.logs.TakeAll()
}

// AllMessages returns all messages and clears the buffer.
func (l *debugLogger) AllMessages() string {
	return l.take(func(zapcore.Level) bool { return true })
}

// DebugMessages returns debug messages and clears the buffer.
func (l *debugLogger) DebugMessages() string {
	return l.take(func(lvl zapcore.Level) bool { return lvl == DebugLevel })
}

// InfoMessages returns info messages and clears the buffer.
func (l *debugLogger) InfoMessages() string {
	return l.take(func(lvl zapcore.Level) bool { return lvl == InfoLevel })
}

// WarnMessages returns warn messages and clears the buffer.
func (l *debugLogger) WarnMessages() string {
	return l.take(func(lvl zapcore.Level) bool { return lvl == WarnLevel })
}

// WarnAndErrorMessages returns warn and error messages and clears the buffer.
func (l *debugLogger) WarnAndErrorMessages() string {
	return l.take(func(lvl zapcore.Level) bool { return lvl == WarnLevel || lvl == ErrorLevel })
}

// ErrorMessages returns error messages and clears the buffer.
func (l *debugLogger) ErrorMessages() string {
	return l.take(func(lvl zapcore.Level) bool { return lvl == ErrorLevel })
}

func (l *debugLogger) take(filter func(zapcore.Level) bool) string {
	var out strings.Builder
	for _, entry := range l.logs.TakeAll() {
		if !filter(entry.Level) {
			continue
		}
		out.WriteString(entry.Level.CapitalString())
		out.WriteString("  ")
		out.WriteString(entry.Message)
		out.WriteString("\n")
	}
	return out.String()
}
