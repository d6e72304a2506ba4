package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Props is an insertion-ordered string-keyed property bag. Go maps do not
// preserve order, but prop order is part of the emitted wire format (the
// frontend renders some props positionally and diffs are stable across runs),
// so the keys are tracked separately.
//
// Unset optional fields are never present: callers Set only what they have,
// and consumers treat key absence as "not specified".
type Props struct {
	keys   []string
	values map[string]any
}

// NewProps returns an empty property bag.
func NewProps() *Props {
	return &Props{values: make(map[string]any)}
}

// Set stores value under key, appending the key on first use.
func (p *Props) Set(key string, value any) *Props {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// SetIf stores value only when present is true. It exists so generators can
// chain optional fields without littering call sites with conditionals.
func (p *Props) SetIf(present bool, key string, value any) *Props {
	if present {
		p.Set(key, value)
	}
	return p
}

// Get returns the value for key and whether it is set.
func (p *Props) Get(key string) (any, bool) {
	if p == nil || p.values == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is set.
func (p *Props) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Len returns the number of set keys.
func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p *Props) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// MarshalJSON writes the bag as a JSON object in insertion order.
func (p Props) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, fmt.Errorf("prop %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving its key order.
func (p *Props) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("props: expected object, got %v", tok)
	}

	p.keys = nil
	p.values = make(map[string]any)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("props: non-string key %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var val any
		if err := json.Unmarshal(raw, &val); err != nil {
			return err
		}
		p.Set(key, val)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
