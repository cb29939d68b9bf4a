package jsoncfg

import "strings"

// Sanitize strips comments and control characters from a raw JSON document.
//
// Comment removal is line-oriented: a line whose first non-blank characters
// are "#" or "//" is removed entirely, and on any other line everything from
// the first "//" to the end of the line is removed. It runs before structural
// parsing and is not aware of string-literal boundaries, so a comment marker
// inside a quoted string value is also treated as a comment start.
//
// The buffer is then trimmed of leading and trailing whitespace, and every
// remaining byte below 0x20 is removed, including the newlines and tabs that
// survived line splitting. Escape sequences such as "\n" inside string
// literals are two printable bytes and pass through untouched.
//
// Sanitize performs no brace or bracket balance checking; malformed structure
// is left for the JSON parser to reject.
func Sanitize(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		switch rest := strings.TrimLeft(line, " \t\r\v\f"); {
		case strings.HasPrefix(rest, "#"), strings.HasPrefix(rest, "//"):
			lines[i] = ""
		default:
			if j := strings.Index(line, "//"); j >= 0 {
				lines[i] = line[:j]
			}
		}
	}

	s = strings.TrimSpace(strings.Join(lines, "\n"))

	// No UTF-8 continuation byte is below 0x20, so filtering bytes
	// filters exactly the control code points.
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x20 {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
