package jsoncfg

import "testing"

func TestSanitize(t *testing.T) {
	for _, c := range []struct {
		name string
		in   string
		want string
	}{
		{
			name: "HashCommentLine",
			in:   "# header\n{\"a\": 1}",
			want: "{\"a\": 1}",
		},
		{
			name: "SlashCommentLine",
			in:   "// header\n{\"a\": 1}",
			want: "{\"a\": 1}",
		},
		{
			name: "IndentedCommentLines",
			in:   "  # one\n\t// two\n{}",
			want: "{}",
		},
		{
			name: "InlineComment",
			in:   "{\"a\": 1} // trailing",
			want: "{\"a\": 1}",
		},
		{
			name: "InlineCommentMidDocument",
			in:   "{\n\"a\": 1, // count\n\"b\": 2\n}",
			want: "{\"a\": 1, \"b\": 2}",
		},
		{
			name: "HashMidLineKept",
			in:   "{\"a\": \"b#c\"}",
			want: "{\"a\": \"b#c\"}",
		},
		{
			name: "SlashInsideStringStripped",
			in:   "{\"u\": \"http://example.com\"}",
			want: "{\"u\": \"http:",
		},
		{
			name: "ControlCharacters",
			in:   "{\"a\": \"b\x01\x02\"}",
			want: "{\"a\": \"b\"}",
		},
		{
			name: "TabsAndNewlinesCollapse",
			in:   "{\n\t\"a\":\t1\n}",
			want: "{\"a\":1}",
		},
		{
			name: "EscapedNewlineKept",
			in:   `{"a": "b\nc"}`,
			want: `{"a": "b\nc"}`,
		},
		{
			name: "SurroundingWhitespaceTrimmed",
			in:   "  \n {\"a\": 1} \n ",
			want: "{\"a\": 1}",
		},
		{
			name: "CarriageReturns",
			in:   "// c\r\n{\"a\": 1}\r\n",
			want: "{\"a\": 1}",
		},
		{
			name: "MultibyteUnchanged",
			in:   "{\"snowman\": \"☃\"}",
			want: "{\"snowman\": \"☃\"}",
		},
		{
			name: "CommentOnly",
			in:   "# nothing else\n// at all",
			want: "",
		},
		{
			name: "Empty",
			in:   "",
			want: "",
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			if got := Sanitize(c.in); got != c.want {
				t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
