package filesystem

import (
	"strings"

	"github.com/atomic-component-engine/ace/internal/pkg/encoding/json"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

// File is common abstraction for a file.
type File interface {
	Path() string
	Description() string
	ToRawFile() (*RawFile, error)
}

// FileDef defines a file by its path and a human-readable description, used in messages.
type FileDef struct {
	path string
	desc string
}

type RawFile struct {
	*FileDef
	Content string
}

type JSONFile struct {
	*FileDef
	Content any
}

func NewFileDef(path string) *FileDef {
	return &FileDef{path: path}
}

func (f *FileDef) Path() string {
	return f.path
}

func (f *FileDef) Description() string {
	return f.desc
}

func (f *FileDef) SetDescription(v string) *FileDef {
	f.desc = v
	return f
}

// String returns description with path, for example: config file "src/atoms/icon/ace.json".
func (f *FileDef) String() string {
	return strings.TrimSpace(f.desc+" file") + ` "` + f.path + `"`
}

func NewRawFile(path, content string) *RawFile {
	return &RawFile{FileDef: NewFileDef(path), Content: content}
}

func (f *RawFile) SetDescription(v string) *RawFile {
	f.desc = v
	return f
}

func (f *RawFile) ToRawFile() (*RawFile, error) {
	return f, nil
}

// DecodeJSONTo decodes the content of the file, the error is prefixed with the file description.
func (f *RawFile) DecodeJSONTo(target any) error {
	if err := json.DecodeString(f.Content, target); err != nil {
		return errors.PrefixErrorf(err, `%s is invalid`, f.String())
	}
	return nil
}

func NewJSONFile(path string, content any) *JSONFile {
	return &JSONFile{FileDef: NewFileDef(path), Content: content}
}

func (f *JSONFile) SetDescription(v string) *JSONFile {
	f.desc = v
	return f
}

// ToRawFile encodes the content as indented JSON with a trailing new line.
func (f *JSONFile) ToRawFile() (*RawFile, error) {
	content, err := json.EncodeString(f.Content, true)
	if err != nil {
		return nil, errors.PrefixErrorf(err, `cannot encode %s`, f.String())
	}
	file := NewRawFile(f.path, content)
	file.desc = f.desc
	return file, nil
}
