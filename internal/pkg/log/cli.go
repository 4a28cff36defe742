// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCliLogger creates the logger for the command line.
//   - info messages are printed to stdout, debug messages too in the verbose mode,
//   - warning and error messages are printed to stderr,
//   - all messages are written to the log file, if any.
func NewCliLogger(stdout io.Writer, stderr io.Writer, logFile *File, verbose bool) Logger {
	var cores []zapcore.Core

	// Log to file
	if logFile != nil {
		cores = append(cores, fileCore(logFile))
	}

	// Log to stdout
	cores = append(cores, stdoutCore(stdout, verbose))

	// Log to stderr
	cores = append(cores, stderrCore(stderr, verbose))

	return loggerFromZapCore(zapcore.NewTee(cores...))
}

func stdoutCore(stdout io.Writer, verbose bool) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		// Log debug, info -> if verbose output enabled
		if verbose {
			return l == zapcore.DebugLevel || l == zapcore.InfoLevel
		}

		// Log info only
		return l == zapcore.InfoLevel
	})
	return zapcore.NewCore(consoleEncoder(verbose), zapcore.AddSync(stdout), levels)
}

func stderrCore(stderr io.Writer, verbose bool) zapcore.Core {
	return zapcore.NewCore(consoleEncoder(verbose), zapcore.AddSync(stderr), zapcore.WarnLevel)
}

// fileCore writes all messages to the log file as JSON.
func fileCore(logFile *File) zapcore.Core {
	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})
	return zapcore.NewCore(&noColorEncoder{Encoder: encoder}, zapcore.AddSync(logFile.File()), zapcore.DebugLevel)
}

func consoleEncoder(verbose bool) zapcore.Encoder {
	// Prefix messages with level only when verbose enabled
	levelKey := ""
	if verbose {
		levelKey = "level"
	}
	return &messageOnlyEncoder{Encoder: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})}
}
