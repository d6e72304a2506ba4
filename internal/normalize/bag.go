package normalize

import "strings"

// bag wraps a raw props map with alias-aware, case-insensitive accessors.
// Every concrete mapping picks the first present synonym in a fixed priority
// order; lookups fall back to a case-insensitive scan because key casing is
// as unreliable as everything else at this boundary.
type bag map[string]any

func (b bag) first(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := b[k]; ok {
			return v, true
		}
	}
	for _, k := range keys {
		for existing, v := range b {
			if strings.EqualFold(existing, k) {
				return v, true
			}
		}
	}
	return nil, false
}

// text returns the first non-empty string among the aliases.
func (b bag) text(keys ...string) string {
	for _, k := range keys {
		if v, ok := b.first(k); ok {
			if s := Text(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// num returns the first coercible number among the aliases, else def.
func (b bag) num(def float64, keys ...string) float64 {
	if v, ok := b.first(keys...); ok {
		return Number(v, def)
	}
	return def
}

// numPtr returns the first coercible number among the aliases, else nil.
func (b bag) numPtr(keys ...string) *float64 {
	if v, ok := b.first(keys...); ok {
		return NumberPtr(v)
	}
	return nil
}

func (b bag) intval(def int, keys ...string) int {
	if v, ok := b.first(keys...); ok {
		return Int(v, def)
	}
	return def
}

func (b bag) intPtr(keys ...string) *int {
	if v, ok := b.first(keys...); ok {
		return IntPtr(v)
	}
	return nil
}

// strlist returns the first alias that yields a non-empty string list.
func (b bag) strlist(keys ...string) []string {
	for _, k := range keys {
		if v, ok := b.first(k); ok {
			if l := TextList(v); len(l) > 0 {
				return l
			}
		}
	}
	return nil
}

// list returns the first alias holding a raw list.
func (b bag) list(keys ...string) []any {
	for _, k := range keys {
		if v, ok := b.first(k); ok {
			if l, isList := v.([]any); isList {
				return l
			}
		}
	}
	return nil
}

// object returns the first alias holding a nested object.
func (b bag) object(keys ...string) (bag, bool) {
	for _, k := range keys {
		if v, ok := b.first(k); ok {
			if m, isMap := v.(map[string]any); isMap {
				return bag(m), true
			}
		}
	}
	return nil, false
}
