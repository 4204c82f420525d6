// Package json wraps the json-iterator library, a drop-in replacement of the standard library.
package json

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary // nolint: gochecknoglobals

func Encode(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func EncodeString(v any, pretty bool) (string, error) {
	data, err := Encode(v, pretty)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func MustEncodeString(v any, pretty bool) string {
	data, err := EncodeString(v, pretty)
	if err != nil {
		panic(errors.Errorf("cannot encode JSON: %w", err))
	}
	return data
}

func Decode(data []byte, target any) error {
	return json.Unmarshal(data, target)
}

func DecodeString(data string, target any) error {
	return Decode([]byte(data), target)
}
