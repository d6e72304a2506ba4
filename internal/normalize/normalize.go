package normalize

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"dashgen/internal/factory"
	"dashgen/internal/schema"
)

// Normalizer drives raw specs through canonicalization, mapping and build for
// one session.
type Normalizer struct {
	factory *factory.Factory
	log     *zap.Logger
}

// New returns a Normalizer building through f.
func New(f *factory.Factory, log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Normalizer{factory: f, log: log}
}

// Result is the outcome for one input spec: a built component, or the error
// that dropped it. Exactly one of Component/Err is set.
type Result struct {
	Spec      RawSpec
	Component *schema.Component
	Err       error
}

// Dropped reports whether the spec was discarded.
func (r Result) Dropped() bool { return r.Err != nil }

// Normalize expands batch specs and builds each resulting spec. Individual
// failures become dropped Results; they never abort the batch.
func (n *Normalizer) Normalize(specs []RawSpec) []Result {
	expanded := Expand(specs)
	results := make([]Result, 0, len(expanded))
	for i, spec := range expanded {
		comp, err := n.BuildSpec(spec)
		if err != nil {
			n.log.Warn("dropping component spec",
				zap.Int("index", i),
				zap.String("component_type", spec.ComponentType),
				zap.Error(err))
		}
		results = append(results, Result{Spec: spec, Component: comp, Err: err})
	}
	return results
}

// BuildSpec normalizes and builds one spec. Unrecognized types come back as a
// generic callout echoing the raw payload rather than failing; build-level
// validation failures return an error and the caller drops the spec.
func (n *Normalizer) BuildSpec(spec RawSpec) (*schema.Component, error) {
	canonical, ok := CanonicalType(spec.ComponentType)
	if !ok {
		suggestion := SuggestType(spec.ComponentType)
		n.log.Warn("unrecognized component type, falling back to callout",
			zap.String("component_type", spec.ComponentType),
			zap.String("suggestion", suggestion))
		return n.fallbackCallout(spec)
	}

	mapFn, ok := mappers[canonical]
	if !ok {
		// Registry and mapper table are maintained together; a miss here is a
		// programming error, not an input problem.
		return nil, fmt.Errorf("no mapper registered for %s", canonical)
	}
	return mapFn(n.factory, bag(spec.Props))
}

// fallbackCallout wraps an unbuildable spec in an informational callout so
// the payload still reaches the dashboard instead of vanishing.
func (n *Normalizer) fallbackCallout(spec RawSpec) (*schema.Component, error) {
	payload, err := json.Marshal(spec.Props)
	if err != nil || len(spec.Props) == 0 {
		payload = []byte("{}")
	}
	title := "Unrecognized component"
	if spec.ComponentType != "" {
		title = fmt.Sprintf("Unrecognized component %q", spec.ComponentType)
	}
	return n.factory.Callout(factory.CalloutInput{
		Kind:  factory.CalloutInfo,
		Title: title,
		Text:  string(payload),
	})
}

// Components filters the built components out of results, preserving order.
func Components(results []Result) []*schema.Component {
	out := make([]*schema.Component, 0, len(results))
	for _, r := range results {
		if r.Component != nil {
			out = append(out, r.Component)
		}
	}
	return out
}

// DropCount returns how many results were dropped.
func DropCount(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Dropped() {
			n++
		}
	}
	return n
}
