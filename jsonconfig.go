// Package jsonconfig provides helpers for reading and writing
// JSON configuration files.
//
// On the read side, documents may contain #-style and //-style line comments,
// trailing // comments, and stray control characters. All of these are
// stripped before the document reaches the JSON parser. After parsing,
// string values that look like base-10 numbers are converted to integers
// or floats, so `"timeout": "30"` and `"timeout": 30` decode identically.
//
// On the write side, documents are validated and written out as strict,
// pretty-printed JSON with sorted keys, using a temporary file and rename
// so a failed write never leaves a partial file behind.
//
// Comment stripping is line-oriented and runs before structural parsing,
// so it has no notion of string-literal boundaries: a // or line-leading #
// inside a quoted string value is treated as a comment start. Keep URLs
// and similar values out of config documents, or split the scheme from
// the host.
package jsonconfig
