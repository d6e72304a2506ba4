package normalize

import (
	"strings"

	"dashgen/internal/schema"
)

// Batch expansion: some spec shapes describe N logical items in one record
// (a pros/cons list, a group of stats). Expansion runs once, globally, before
// the per-spec build step, and is idempotent: expanded output is single-item
// and non-batchable, so a second pass is the identity.

// batchKind classifies a spec's batch shape, if any.
type batchKind int

const (
	batchNone batchKind = iota
	batchPros
	batchCons
	batchMixedProCon
	batchStats
)

func classifyBatch(spec RawSpec) batchKind {
	key := normalizeTypeKey(spec.ComponentType)
	switch key {
	case "pros", "prolist", "advantages", "benefits":
		return batchPros
	case "cons", "conlist", "disadvantages", "drawbacks":
		return batchCons
	case "proscons", "prosandcons", "proconlist":
		return batchMixedProCon
	case "stats", "statgroup", "statcards", "metrics":
		return batchStats
	}
	// A ProConItem spec still carrying an items list is the batch form too.
	if canonical, ok := CanonicalType(spec.ComponentType); ok && canonical == schema.TypeProConItem {
		if _, has := bag(spec.Props).first("items", "entries"); has {
			return batchMixedProCon
		}
	}
	return batchNone
}

// Expand rewrites batch specs into independent single-item specs, preserving
// order, and passes everything else through unchanged.
func Expand(specs []RawSpec) []RawSpec {
	out := make([]RawSpec, 0, len(specs))
	for _, spec := range specs {
		switch classifyBatch(spec) {
		case batchPros:
			out = append(out, expandProCon(spec, "pro")...)
		case batchCons:
			out = append(out, expandProCon(spec, "con")...)
		case batchMixedProCon:
			out = append(out, expandProCon(spec, "")...)
		case batchStats:
			out = append(out, expandStats(spec)...)
		default:
			out = append(out, spec)
		}
	}
	return out
}

// expandProCon produces one ProConItem spec per item. defaultKind tags every
// item for the single-sided shapes ("pros", "cons"); the mixed shape reads
// the kind off each item object.
func expandProCon(spec RawSpec, defaultKind string) []RawSpec {
	props := bag(spec.Props)
	items := props.list("items", "entries", "points")
	if items == nil {
		// Strings-only list, or nothing usable: fall back to text items.
		for _, s := range props.strlist("items", "entries", "points") {
			items = append(items, any(s))
		}
	}
	if len(items) == 0 {
		return []RawSpec{spec}
	}

	out := make([]RawSpec, 0, len(items))
	for _, item := range items {
		kind := defaultKind
		label := ""
		detail := ""
		switch t := item.(type) {
		case string:
			label = strings.TrimSpace(t)
		case map[string]any:
			ib := bag(t)
			label = ib.text("label", "text", "title", "point")
			detail = ib.text("detail", "description", "reason")
			if k := strings.ToLower(ib.text("kind", "type", "side")); k != "" {
				switch {
				case strings.HasPrefix(k, "pro"), k == "advantage", k == "benefit":
					kind = "pro"
				case strings.HasPrefix(k, "con"), k == "disadvantage", k == "drawback":
					kind = "con"
				}
			}
		}
		if label == "" {
			continue
		}
		if kind == "" {
			kind = "pro"
		}
		itemProps := map[string]any{"kind": kind, "label": label}
		if detail != "" {
			itemProps["detail"] = detail
		}
		out = append(out, RawSpec{
			ComponentType: schema.TypeProConItem,
			Props:         itemProps,
			Priority:      spec.Priority,
			Zone:          spec.Zone,
			WidthHint:     spec.WidthHint,
		})
	}
	if len(out) == 0 {
		return []RawSpec{spec}
	}
	return out
}

// expandStats produces one StatCard spec per metric object.
func expandStats(spec RawSpec) []RawSpec {
	items := bag(spec.Props).list("items", "metrics", "stats", "cards")
	if len(items) == 0 {
		return []RawSpec{spec}
	}
	out := make([]RawSpec, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, RawSpec{
			ComponentType: schema.TypeStatCard,
			Props:         m,
			Priority:      spec.Priority,
			Zone:          spec.Zone,
			WidthHint:     spec.WidthHint,
		})
	}
	if len(out) == 0 {
		return []RawSpec{spec}
	}
	return out
}
