package model

import (
	"fmt"
	"strings"
)

// ConfigParseError - a config file exists, but it is not valid JSON.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e ConfigParseError) Error() string {
	return fmt.Sprintf(`cannot parse config file "%s": %s`, e.Path, e.Err)
}

func (e ConfigParseError) Unwrap() error {
	return e.Err
}

// MissingDependencyError - a dependency reference points to a component or a file that doesn't exist.
type MissingDependencyError struct {
	Ref  string
	Path string
}

func (e MissingDependencyError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf(`dependency "%s" not found at "%s"`, e.Ref, e.Path)
	}
	return fmt.Sprintf(`dependency "%s" not found`, e.Ref)
}

// CyclicDependencyError - the last item of the path refers back to an ancestor.
// The cycle is broken, the error is only logged.
type CyclicDependencyError struct {
	Path []string
}

func (e CyclicDependencyError) Error() string {
	return fmt.Sprintf(`cyclic dependency detected: %s`, strings.Join(e.Path, " -> "))
}

// ArchiveError - the zip archive cannot be written.
type ArchiveError struct {
	Path string
	Err  error
}

func (e ArchiveError) Error() string {
	return fmt.Sprintf(`cannot write archive "%s": %s`, e.Path, e.Err)
}

func (e ArchiveError) Unwrap() error {
	return e.Err
}

// ExportError wraps any failure of the export, no partial result is kept.
type ExportError struct {
	Component ComponentKey
	Err       error
}

func (e ExportError) Error() string {
	return fmt.Sprintf(`cannot export %s: %s`, e.Component.Desc(), e.Err)
}

func (e ExportError) Unwrap() error {
	return e.Err
}
