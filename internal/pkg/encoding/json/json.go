// Package json encodes and decodes JSON by the json-iterator library.
// The configuration matches the standard library, except HTML characters are not escaped.
package json

import (
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"

	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

var api = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// RawMessage is a raw encoded JSON value.
type RawMessage = stdjson.RawMessage

func Encode(v any, pretty bool) ([]byte, error) {
	var data []byte
	var err error
	if pretty {
		data, err = api.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = api.Marshal(v)
	}
	if err != nil {
		return nil, processJSONError(err)
	}
	return data, nil
}

func MustEncode(v any, pretty bool) []byte {
	data, err := Encode(v, pretty)
	if err != nil {
		panic(err)
	}
	return data
}

func EncodeString(v any, pretty bool) (string, error) {
	data, err := Encode(v, pretty)
	return string(data), err
}

func MustEncodeString(v any, pretty bool) string {
	data, err := EncodeString(v, pretty)
	if err != nil {
		panic(err)
	}
	return data
}

func Decode(data []byte, m any) error {
	if err := api.Unmarshal(data, m); err != nil {
		return processJSONError(err)
	}
	return nil
}

func MustDecode(data []byte, m any) {
	if err := Decode(data, m); err != nil {
		panic(err)
	}
}

func DecodeString(data string, m any) error {
	return Decode([]byte(data), m)
}

func MustDecodeString(data string, m any) {
	if err := DecodeString(data, m); err != nil {
		panic(err)
	}
}

func processJSONError(err error) error {
	var typeErr *stdjson.UnmarshalTypeError
	var syntaxErr *stdjson.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return errors.Errorf(`key "%s" has invalid type "%s"`, typeErr.Field, typeErr.Value)
	case errors.As(err, &syntaxErr):
		return errors.Errorf(`%s, offset: %d`, syntaxErr, syntaxErr.Offset)
	default:
		return errors.Wrap(err, "invalid JSON")
	}
}
