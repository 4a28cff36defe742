package errors

import (
	"fmt"
	"strings"
	"unicode"
)

type FormatConfig struct {
	WithStack   bool
	AsSentences bool
}

type FormatOption func(c *FormatConfig)

// FormatWithStack appends the error origin to each message.
func FormatWithStack() FormatOption {
	return func(c *FormatConfig) {
		c.WithStack = true
	}
}

// FormatAsSentences capitalizes the first letter and ends each message with a dot.
func FormatAsSentences() FormatOption {
	return func(c *FormatConfig) {
		c.AsSentences = true
	}
}

func Format(err error, opts ...FormatOption) string {
	config := FormatConfig{}
	for _, o := range opts {
		o(&config)
	}
	w := newWriter(config)
	w.writeError(0, err)
	return w.String()
}

func formatMessage(msg string, trace StackTrace, config FormatConfig) string {
	if config.AsSentences {
		msg = strings.TrimSpace(msg)
		if msg != "" {
			runes := []rune(msg)
			runes[0] = unicode.ToUpper(runes[0])
			msg = string(runes)
			if !strings.HasSuffix(msg, ".") && !strings.HasSuffix(msg, ":") {
				msg += "."
			}
		}
	}
	if config.WithStack {
		if file, line, ok := trace.Frame(); ok {
			msg = fmt.Sprintf("%s [%s:%d]", msg, file, line)
		}
	}
	return msg
}

func formatPrefix(prefix string) string {
	return strings.TrimRight(prefix, ".,:") + ":"
}
