package errors

import (
	"bufio"
	"strings"
)

const (
	Indent = "  "
	Bullet = "- "
)

type writer struct {
	config FormatConfig
	out    strings.Builder
}

func newWriter(config FormatConfig) *writer {
	return &writer{config: config}
}

func (w *writer) writeError(level int, err error) {
	if err == nil {
		panic(New("error cannot be nil"))
	}

	var trace StackTrace
	if v, ok := err.(stackTracer); ok { // nolint: errorlint
		trace = v.StackTrace()
	}

	// nolint: errorlint
	switch v := err.(type) {
	case nestedErrorGetter:
		w.writeNested(level, v.MainError(), v.WrappedErrors())
		return
	case multiErrorGetter:
		w.writeList(level, v.WrappedErrors())
		return
	case *withStack:
		// Nested and multi errors keep their format when they get a stack
		inner := v.Unwrap()
		if _, ok := inner.(nestedErrorGetter); ok {
			w.writeError(level, inner)
			return
		}
		if _, ok := inner.(multiErrorGetter); ok {
			w.writeError(level, inner)
			return
		}
	}

	// Align all lines of a multi-line message
	scanner := bufio.NewScanner(strings.NewReader(formatMessage(err.Error(), trace, w.config)))
	scanner.Scan()
	w.write(scanner.Text())
	for scanner.Scan() {
		w.write("\n")
		w.write(strings.Repeat(Indent, level))
		w.write(scanner.Text())
	}
}

func (w *writer) writeNested(level int, main error, errs []error) {
	mainWriter := newWriter(w.config)
	mainWriter.writeError(level, main)
	mainStr := mainWriter.String()

	if len(errs) == 0 {
		w.write(mainStr)
		return
	}

	subWriter := newWriter(w.config)
	subWriter.writeList(level, errs)
	subStr := subWriter.String()

	mainStr = formatPrefix(mainStr)
	w.write(mainStr)

	// Break line and create a bullet list, if there is more than one error or the message is long
	if len(errs) > 1 || len(mainStr)+len(subStr) > 60 || strings.Contains(subStr, "\n") {
		w.write("\n")
		if len(errs) == 1 {
			w.write(strings.Repeat(Indent, level))
			w.write(Bullet)
			w.writeError(level+1, errs[0])
		} else {
			w.writeList(level, errs)
		}
	} else {
		w.write(" ")
		w.write(subStr)
	}
}

func (w *writer) writeList(level int, errs []error) {
	indent := len(errs) > 1
	last := len(errs) - 1
	for i, err := range errs {
		if indent {
			w.write(strings.Repeat(Indent, level))
			w.write(Bullet)
		}
		w.writeError(level+1, err)
		if i != last {
			w.write("\n")
		}
	}
}

func (w *writer) write(s string) {
	_, _ = w.out.WriteString(s)
}

func (w *writer) String() string {
	return w.out.String()
}
