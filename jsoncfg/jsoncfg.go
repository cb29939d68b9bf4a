// Package jsoncfg reads and writes JSON configuration documents.
//
// Documents read by this package may carry #-style and //-style comments and
// stray control characters, and string values that look like numbers are
// converted to integers or floats after parsing. Documents written by this
// package are strict, pretty-printed JSON.
package jsoncfg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/database64128/jsonconfig-go/tslog"
	"github.com/google/renameio/v2"
)

// ErrInvalidSourceType is returned by [Loader.WriteConfig] when the source
// is neither a string, nor a value of map, slice, or array kind.
var ErrInvalidSourceType = errors.New("source must be a string, a map, or a slice")

// ParseError is returned when a document is not valid JSON after sanitization.
//
// The wrapped error is the one returned by the JSON parser and carries
// position information when available.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "invalid JSON document: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoaderConfig configures a [*Loader].
type LoaderConfig struct {
	// Indent is the number of spaces per indentation level in written files.
	// Zero selects the default of 2. A negative value emits compact output.
	Indent int `json:"indent"`

	// NoSortKeys preserves the written document's own key order
	// instead of sorting keys lexicographically.
	NoSortKeys bool `json:"noSortKeys"`
}

// NewLoader returns a new [*Loader] that logs through logger.
func (c *LoaderConfig) NewLoader(logger *tslog.Logger) *Loader {
	indent := c.Indent
	switch {
	case indent == 0:
		indent = 2
	case indent < 0:
		indent = 0
	}
	return &Loader{
		logger:     logger,
		indent:     strings.Repeat(" ", indent),
		noSortKeys: c.NoSortKeys,
	}
}

// Loader reads and writes JSON configuration documents.
type Loader struct {
	logger     *tslog.Logger
	indent     string
	noSortKeys bool
}

// ReadConfig reads a JSON configuration document from source.
//
// If source is the path of an existing file, the file's contents are read;
// otherwise source itself is taken as the literal document. The text is
// sanitized with [Sanitize], parsed, and transformed with [CoerceNumbers].
//
// ReadConfig returns a [*ParseError] if the sanitized text is not valid JSON,
// or the underlying I/O error if the file cannot be read.
func (l *Loader) ReadConfig(source string) (any, error) {
	text := source
	if fi, err := os.Stat(source); err == nil && fi.Mode().IsRegular() {
		l.logger.Debug("Reading JSON config file", slog.String("path", source))
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, err
		}
		text = string(b)
	} else {
		l.logger.Debug("Parsing JSON config string")
	}

	var v any
	if err := json.Unmarshal([]byte(Sanitize(text)), &v); err != nil {
		return nil, &ParseError{err}
	}
	return CoerceNumbers(v), nil
}

// WriteConfig writes source to the file at path as pretty-printed JSON.
//
// source must be a string containing a JSON document, or a value of map,
// slice, or array kind. Anything else returns an error wrapping
// [ErrInvalidSourceType] without touching the file.
//
// The document is sanitized with [Sanitize] and re-parsed before writing,
// so a raw string source may carry comments, and a [*ParseError] is
// returned if it is not valid JSON. No numeric coercion is applied on the
// write side.
//
// The file is written to a temporary file and renamed into place, so an
// existing file at path is either fully replaced or left untouched.
func (l *Loader) WriteConfig(path string, source any) error {
	var text string
	switch src := source.(type) {
	case string:
		text = src
	default:
		switch reflect.ValueOf(source).Kind() {
		case reflect.Map, reflect.Slice, reflect.Array:
			b, err := json.Marshal(source)
			if err != nil {
				return fmt.Errorf("failed to serialize source: %w", err)
			}
			text = string(b)
		default:
			return fmt.Errorf("%w, got %T", ErrInvalidSourceType, source)
		}
	}

	text = Sanitize(text)

	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return &ParseError{err}
	}

	var buf bytes.Buffer
	switch {
	case !l.noSortKeys:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", l.indent)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
	case l.indent == "":
		if err := json.Compact(&buf, []byte(text)); err != nil {
			return &ParseError{err}
		}
		buf.WriteByte('\n')
	default:
		// json.Indent re-formats the token stream,
		// preserving the document's own key order.
		if err := json.Indent(&buf, []byte(text), "", l.indent); err != nil {
			return &ParseError{err}
		}
		buf.WriteByte('\n')
	}

	l.logger.Debug("Writing JSON config file", slog.String("path", path))
	return renameio.WriteFile(path, buf.Bytes(), 0o644)
}

var defaultLoader = (&LoaderConfig{}).NewLoader(tslog.Nop())

// ReadConfig reads a JSON configuration document from source
// using default settings and no logging. See [Loader.ReadConfig].
func ReadConfig(source string) (any, error) {
	return defaultLoader.ReadConfig(source)
}

// WriteConfig writes source to the file at path with 2-space indentation
// and sorted keys, without logging. See [Loader.WriteConfig].
func WriteConfig(path string, source any) error {
	return defaultLoader.WriteConfig(path, source)
}

// Open opens the JSON configuration file at path and decodes it into v.
//
// The file's contents are sanitized with [Sanitize] before decoding, so the
// file may carry comments. Unknown fields in the file cause an error. No
// numeric coercion is applied; string fields decode as strings.
func Open(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	d := json.NewDecoder(strings.NewReader(Sanitize(string(b))))
	d.DisallowUnknownFields()
	return d.Decode(v)
}

// Save encodes v into JSON and saves it to the file at path,
// written via a temporary file and rename.
func Save(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return renameio.WriteFile(path, buf.Bytes(), 0o644)
}
