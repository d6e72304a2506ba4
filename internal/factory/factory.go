// Package factory constructs validated A2UI components. The generic Build
// enforces registry membership, required-prop presence and container rules;
// one small typed generator per registered type enforces that type's value
// constraints before delegating to Build.
package factory

import (
	"net/url"
	"strings"

	"dashgen/internal/ids"
	"dashgen/internal/schema"
)

// Factory builds components against one session's ID generator.
type Factory struct {
	ids *ids.Generator
}

// New returns a Factory issuing IDs from gen.
func New(gen *ids.Generator) *Factory {
	return &Factory{ids: gen}
}

// Option customizes a single Build call.
type Option func(*buildOpts)

type buildOpts struct {
	id       string
	children *schema.Children
	layout   *schema.Layout
}

// WithID supplies an explicit ID instead of a generated one.
func WithID(id string) Option {
	return func(o *buildOpts) { o.id = id }
}

// WithChildren attaches child component IDs (containers only).
func WithChildren(c *schema.Children) Option {
	return func(o *buildOpts) { o.children = c }
}

// WithLayout attaches a layout up front instead of leaving it to the resolver.
func WithLayout(l *schema.Layout) Option {
	return func(o *buildOpts) { o.layout = l }
}

// Build validates (typ, props) and constructs a component with a fresh ID if
// none is supplied. Fails with *schema.InvalidTypeError for unregistered
// types and *schema.ValidationError for constraint violations.
func (f *Factory) Build(typ string, props *schema.Props, opts ...Option) (*schema.Component, error) {
	if !schema.IsValidType(typ) {
		return nil, &schema.InvalidTypeError{Type: typ}
	}
	if props == nil {
		props = schema.NewProps()
	}
	for _, req := range schema.RequiredProps(typ) {
		if !props.Has(req) {
			return nil, schema.Validationf(typ, req, "required prop missing")
		}
	}

	var o buildOpts
	for _, opt := range opts {
		opt(&o)
	}

	if schema.IsContainerType(typ) {
		if o.children.Len() == 0 {
			return nil, schema.Validationf(typ, "children", "container requires at least one child")
		}
		if schema.IsMultiSlotType(typ) && o.children.Slots == nil {
			return nil, schema.Validationf(typ, "children", "multi-slot container requires slot-keyed children")
		}
	} else if o.children != nil {
		return nil, schema.Validationf(typ, "children", "leaf component cannot declare children")
	}

	id := o.id
	if id == "" {
		id = f.ids.Next(typ)
	}

	return &schema.Component{
		Type:     typ,
		ID:       id,
		Props:    props,
		Children: o.children,
		Layout:   o.layout,
	}, nil
}

// requireText fails when a mandatory string field is blank.
func requireText(typ, field, v string) error {
	if strings.TrimSpace(v) == "" {
		return schema.Validationf(typ, field, "must not be empty")
	}
	return nil
}

// requireURL checks that v parses as an absolute http(s) URL.
func requireURL(typ, field, v string) error {
	u, err := url.Parse(v)
	if err != nil {
		return schema.Validationf(typ, field, "malformed URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return schema.Validationf(typ, field, "scheme %q not allowed", u.Scheme)
	}
	if u.Host == "" {
		return schema.Validationf(typ, field, "missing host")
	}
	return nil
}

// requireCount bounds a list length to [min, max].
func requireCount(typ, field string, n, min, max int) error {
	if n < min || n > max {
		return schema.Validationf(typ, field, "count %d outside [%d, %d]", n, min, max)
	}
	return nil
}

// requireEnum checks membership in a closed value set.
func requireEnum(typ, field, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return schema.Validationf(typ, field, "%q not in {%s}", v, strings.Join(allowed, ", "))
}
