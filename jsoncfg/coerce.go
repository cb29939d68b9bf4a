package jsoncfg

import (
	"math"
	"strconv"
	"strings"
)

// CoerceNumbers returns v with every string leaf that parses as a base-10
// number replaced by its numeric value. Containers are transformed in place
// and all other values pass through unchanged.
//
// The integer attempt runs first, so "42" becomes int64(42) while "3.14"
// becomes float64(3.14). Integers follow [strconv.ParseInt] with base 10:
// an optional sign, decimal digits, leading zeros read as decimal, no digit
// separators. Strings that overflow int64 fall through to the float attempt.
//
// The float attempt follows [strconv.ParseFloat], restricted to plain decimal
// notation: strings containing 'x', 'X', or '_' are never coerced, ruling out
// hex floats and separator syntax, and strings that would parse to NaN or an
// infinity keep their original value, so "NaN" and "Infinity" stay strings
// and every coerced tree remains JSON-serializable.
func CoerceNumbers(v any) any {
	switch v := v.(type) {
	case string:
		return coerceString(v)
	case map[string]any:
		for k, e := range v {
			v[k] = CoerceNumbers(e)
		}
		return v
	case []any:
		for i, e := range v {
			v[i] = CoerceNumbers(e)
		}
		return v
	default:
		return v
	}
}

func coerceString(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if strings.ContainsAny(s, "xX_") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	return f
}
