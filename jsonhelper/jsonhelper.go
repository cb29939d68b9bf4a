// Package jsonhelper provides JSON decoding helpers for typed configuration structs.
package jsonhelper

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/database64128/jsonconfig-go/jsoncfg"
)

// LoadAndDecodeDisallowUnknownFields reads the file at path, strips comments
// and control characters with [jsoncfg.Sanitize], and decodes the result into v,
// disallowing unknown fields.
func LoadAndDecodeDisallowUnknownFields(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	d := json.NewDecoder(strings.NewReader(jsoncfg.Sanitize(string(b))))
	d.DisallowUnknownFields()
	return d.Decode(v)
}
