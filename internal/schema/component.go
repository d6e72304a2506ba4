// Package schema defines the A2UI component record, the closed registry of
// renderable component types, and the validation error taxonomy shared by the
// factory and normalizer layers.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Width hints understood by the frontend layout engine. Multi-column
// containers may additionally carry raw CSS-unit widths (see IsValidWidth).
const (
	WidthFull    = "full"
	WidthHalf    = "half"
	WidthThird   = "third"
	WidthQuarter = "quarter"
)

// Zone is a semantic grouping tag, independent of tree position.
type Zone string

const (
	ZoneHero      Zone = "hero"
	ZoneMetrics   Zone = "metrics"
	ZoneInsights  Zone = "insights"
	ZoneContent   Zone = "content"
	ZoneMedia     Zone = "media"
	ZoneResources Zone = "resources"
	ZoneTags      Zone = "tags"
)

// IsValidZone reports whether z is a member of the closed zone enumeration.
func IsValidZone(z Zone) bool {
	switch z {
	case ZoneHero, ZoneMetrics, ZoneInsights, ZoneContent, ZoneMedia, ZoneResources, ZoneTags:
		return true
	}
	return false
}

// Layout carries rendering hints attached after construction by the resolver.
type Layout struct {
	Width string `json:"width,omitempty"`
}

// Children refers to the IDs of a container's child components. Exactly one of
// Order (simple containers) or Slots (multi-slot containers such as tabs and
// accordions, keyed by slot index) is populated.
type Children struct {
	Order []string
	Slots map[string][]string
}

// Len returns the total number of referenced child IDs.
func (c *Children) Len() int {
	if c == nil {
		return 0
	}
	if c.Slots != nil {
		n := 0
		for _, ids := range c.Slots {
			n += len(ids)
		}
		return n
	}
	return len(c.Order)
}

// MarshalJSON emits either a flat ID array or a slot-keyed object.
func (c Children) MarshalJSON() ([]byte, error) {
	if c.Slots != nil {
		return json.Marshal(c.Slots)
	}
	return json.Marshal(c.Order)
}

// UnmarshalJSON accepts both the array and the object form.
func (c *Children) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty children value")
	}
	if trimmed[0] == '{' {
		c.Order = nil
		return json.Unmarshal(trimmed, &c.Slots)
	}
	c.Slots = nil
	return json.Unmarshal(trimmed, &c.Order)
}

// Component is the canonical unit of dashboard output. Type, ID and Props are
// immutable after construction; Layout and Zone are set exactly once by the
// layout resolver before the component joins the session sequence.
type Component struct {
	Type     string    `json:"type"`
	ID       string    `json:"id"`
	Props    *Props    `json:"props"`
	Children *Children `json:"children,omitempty"`
	Layout   *Layout   `json:"layout,omitempty"`
	Zone     Zone      `json:"zone,omitempty"`
}

// IsContainer reports whether the component's type declares children.
func (c *Component) IsContainer() bool {
	return IsContainerType(c.Type)
}
