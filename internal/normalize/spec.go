// Package normalize turns loosely-typed, LLM-produced component specs into
// validated components. It owns type canonicalization, per-field aliasing,
// numeric coercion, batch expansion and the per-spec drop policy. This is the
// most adversarial boundary in the system: input arrives with wrong casing,
// synonymous field names, numbers as strings and truncated lists, and one bad
// spec must never abort a session.
package normalize

import "encoding/json"

// RawSpec is one component specification as produced by the selection call,
// before any validation.
type RawSpec struct {
	ComponentType string
	Props         map[string]any
	Priority      int
	Zone          string
	WidthHint     string
}

// UnmarshalJSON tolerates the historical key variants for the envelope
// fields. Props key variance is handled later by the field-alias tables.
func (s *RawSpec) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	pickString := func(dst *string, keys ...string) {
		for _, k := range keys {
			raw, ok := m[k]
			if !ok {
				continue
			}
			var v string
			if json.Unmarshal(raw, &v) == nil && v != "" {
				*dst = v
				return
			}
		}
	}

	pickString(&s.ComponentType, "component_type", "componentType", "type")
	pickString(&s.Zone, "zone", "semantic_zone")
	pickString(&s.WidthHint, "width_hint", "widthHint", "width")

	for _, k := range []string{"priority", "order"} {
		if raw, ok := m[k]; ok {
			var p float64
			if json.Unmarshal(raw, &p) == nil {
				s.Priority = int(p)
				break
			}
		}
	}

	for _, k := range []string{"props", "properties", "fields", "data"} {
		if raw, ok := m[k]; ok {
			var p map[string]any
			if json.Unmarshal(raw, &p) == nil && p != nil {
				s.Props = p
				break
			}
		}
	}
	if s.Props == nil {
		s.Props = map[string]any{}
	}
	return nil
}

// MarshalJSON writes the canonical envelope keys.
func (s RawSpec) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"component_type": s.ComponentType,
		"props":          s.Props,
	}
	if s.Priority != 0 {
		out["priority"] = s.Priority
	}
	if s.Zone != "" {
		out["zone"] = s.Zone
	}
	if s.WidthHint != "" {
		out["width_hint"] = s.WidthHint
	}
	return json.Marshal(out)
}
