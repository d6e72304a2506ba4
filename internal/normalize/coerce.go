package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Numeric coercion for LLM-shaped values: numbers arrive as floats, ints,
// json.Number, or strings decorated with thousands separators, percent signs
// and leading plus signs. Parse failure yields the caller's default, never an
// error; the pipeline keeps going even if one field is garbage.

// Number coerces v to a float64, returning def when it cannot.
func Number(v any, def float64) float64 {
	if f, ok := tryNumber(v); ok {
		return f
	}
	return def
}

// NumberPtr coerces v to a float64 pointer, nil when it cannot. Used for
// optional numeric fields where absence must stay absent.
func NumberPtr(v any) *float64 {
	if f, ok := tryNumber(v); ok {
		return &f
	}
	return nil
}

// Int coerces v to an int, truncating fractions, returning def when it cannot.
func Int(v any, def int) int {
	if f, ok := tryNumber(v); ok {
		return int(f)
	}
	return def
}

// IntPtr coerces v to an int pointer, nil when it cannot.
func IntPtr(v any) *int {
	if f, ok := tryNumber(v); ok {
		n := int(f)
		return &n
	}
	return nil
}

func tryNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		return parseDecoratedNumber(t)
	}
	return 0, false
}

// parseDecoratedNumber strips human formatting ("1,234%", "+5", "$12") before
// parsing.
func parseDecoratedNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// Text coerces v to a string: strings pass through, numbers are formatted,
// anything else yields "".
func Text(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// TextList coerces v to a string slice: lists keep their string-able members,
// a bare string becomes a singleton.
func TextList(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s := Text(e); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return t
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	}
	return nil
}

// Bool coerces v to a bool; strings "true"/"yes"/"done" count as true.
func Bool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "done", "checked", "1":
			return true
		}
	case float64:
		return t != 0
	}
	return false
}
