package errors

import (
	"runtime"
)

const stackDepth = 32

// StackTrace contains program counters of the error origin.
type StackTrace []uintptr

type stackTracer interface {
	StackTrace() StackTrace
}

func callers() StackTrace {
	pcs := make([]uintptr, stackDepth)
	// Skip runtime.Callers, callers and the constructor
	n := runtime.Callers(3, pcs)
	return pcs[0:n]
}

// Frame returns file and line of the first stack frame.
func (s StackTrace) Frame() (file string, line int, ok bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	frames := runtime.CallersFrames(s[:1])
	frame, _ := frames.Next()
	return frame.File, frame.Line, frame.File != ""
}
