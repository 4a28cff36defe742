// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"github.com/acarl005/stripansi"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// messageOnlyEncoder drops context fields from the console output, they are written to the log file only.
type messageOnlyEncoder struct {
	zapcore.Encoder
}

func (e *messageOnlyEncoder) Clone() zapcore.Encoder {
	return &messageOnlyEncoder{Encoder: e.Encoder.Clone()}
}

func (e *messageOnlyEncoder) EncodeEntry(entry zapcore.Entry, _ []zapcore.Field) (*buffer.Buffer, error) {
	return e.Encoder.EncodeEntry(entry, nil)
}

// AddString and other field setters are no-op, so With(...) attributes are not printed to console.
func (e *messageOnlyEncoder) AddString(string, string) {}

// noColorEncoder removes terminal colors from messages, for example from "create" lines written to the log file.
type noColorEncoder struct {
	zapcore.Encoder
}

func (e *noColorEncoder) Clone() zapcore.Encoder {
	return &noColorEncoder{Encoder: e.Encoder.Clone()}
}

func (e *noColorEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	entry.Message = stripansi.Strip(entry.Message)
	return e.Encoder.EncodeEntry(entry, fields)
}
