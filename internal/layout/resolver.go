// Package layout assigns width hints and semantic zones to built components.
// Resolution is tiered: explicit spec values win, then static type defaults,
// then a fallback. The resolver mutates each component exactly once, before
// it joins the session's output sequence.
package layout

import (
	"strings"

	"dashgen/internal/normalize"
	"dashgen/internal/schema"
)

// widthDefaults maps component types to their default width hint. Types not
// listed fall back to full width.
var widthDefaults = map[string]string{
	schema.TypeStatCard:       schema.WidthQuarter,
	schema.TypeTrendIndicator: schema.WidthQuarter,
	schema.TypeBadge:          schema.WidthQuarter,

	schema.TypeMiniChart:    schema.WidthThird,
	schema.TypeGauge:        schema.WidthThird,
	schema.TypeProgressBar:  schema.WidthThird,
	schema.TypeProConItem:   schema.WidthThird,
	schema.TypeLinkCard:     schema.WidthThird,
	schema.TypePersonCard:   schema.WidthThird,
	schema.TypeDownloadCard: schema.WidthThird,

	schema.TypeComparisonChart: schema.WidthHalf,
	schema.TypeRankedItem:      schema.WidthHalf,
	schema.TypeQuoteBlock:      schema.WidthHalf,
	schema.TypeTestimonial:     schema.WidthHalf,
	schema.TypeFAQItem:         schema.WidthHalf,
	schema.TypeVersusCard:      schema.WidthHalf,
	schema.TypeCodeSnippet:     schema.WidthHalf,
	schema.TypeGitHubRepo:      schema.WidthHalf,
	schema.TypeBulletList:      schema.WidthHalf,
	schema.TypeNumberedList:    schema.WidthHalf,
	schema.TypeChecklist:       schema.WidthHalf,
	schema.TypeYouTubeEmbed:    schema.WidthHalf,
	schema.TypeVideoEmbed:      schema.WidthHalf,
	schema.TypeAudioClip:       schema.WidthHalf,
	schema.TypeLiveUpdate:      schema.WidthHalf,
}

// zoneDefaults maps component types to their default semantic zone. Types not
// listed land in the content zone.
var zoneDefaults = map[string]schema.Zone{
	schema.TypeHeadline:     schema.ZoneHero,
	schema.TypeBreakingNews: schema.ZoneHero,
	schema.TypeHeroImage:    schema.ZoneHero,
	schema.TypeTLDR:         schema.ZoneHero,

	schema.TypeStatCard:        schema.ZoneMetrics,
	schema.TypeMiniChart:       schema.ZoneMetrics,
	schema.TypeComparisonChart: schema.ZoneMetrics,
	schema.TypeProgressBar:     schema.ZoneMetrics,
	schema.TypeGauge:           schema.ZoneMetrics,
	schema.TypeTrendIndicator:  schema.ZoneMetrics,

	schema.TypeSummaryCard:     schema.ZoneInsights,
	schema.TypeKeyTakeaways:    schema.ZoneInsights,
	schema.TypeCallout:         schema.ZoneInsights,
	schema.TypeProConItem:      schema.ZoneInsights,
	schema.TypeVersusCard:      schema.ZoneInsights,
	schema.TypeComparisonTable: schema.ZoneInsights,
	schema.TypeQuoteBlock:      schema.ZoneInsights,

	schema.TypeVideoEmbed:   schema.ZoneMedia,
	schema.TypeYouTubeEmbed: schema.ZoneMedia,
	schema.TypeImageGallery: schema.ZoneMedia,
	schema.TypeAudioClip:    schema.ZoneMedia,

	schema.TypeLinkCard:     schema.ZoneResources,
	schema.TypeResourceList: schema.ZoneResources,
	schema.TypeGitHubRepo:   schema.ZoneResources,
	schema.TypeDownloadCard: schema.ZoneResources,

	schema.TypeTagList: schema.ZoneTags,
	schema.TypeBadge:   schema.ZoneTags,
}

// Apply resolves and sets layout and zone on comp, returning the same
// reference.
func Apply(comp *schema.Component, spec normalize.RawSpec) *schema.Component {
	comp.Layout = &schema.Layout{Width: resolveWidth(comp, spec)}
	comp.Zone = resolveZone(comp, spec)
	return comp
}

func resolveWidth(comp *schema.Component, spec normalize.RawSpec) string {
	// Explicit width inside the props bag wins.
	if spec.Props != nil {
		for _, key := range []string{"width_hint", "width"} {
			if raw, ok := spec.Props[key]; ok {
				if w := validWidth(comp.Type, normalize.Text(raw)); w != "" {
					return w
				}
			}
		}
	}
	if w := validWidth(comp.Type, spec.WidthHint); w != "" {
		return w
	}
	if w, ok := widthDefaults[comp.Type]; ok {
		return w
	}
	return schema.WidthFull
}

// validWidth accepts the closed width enum for every type, plus raw CSS-unit
// widths for multi-column containers.
func validWidth(typ, raw string) string {
	w := strings.ToLower(strings.TrimSpace(raw))
	switch w {
	case schema.WidthFull, schema.WidthHalf, schema.WidthThird, schema.WidthQuarter:
		return w
	}
	if w != "" && schema.IsContainerType(typ) && cssWidth(w) {
		return w
	}
	return ""
}

func cssWidth(w string) bool {
	for _, suffix := range []string{"px", "%", "fr", "em", "rem", "vw"} {
		if n, ok := strings.CutSuffix(w, suffix); ok && n != "" {
			for _, r := range n {
				if (r < '0' || r > '9') && r != '.' {
					return false
				}
			}
			return true
		}
	}
	return false
}

func resolveZone(comp *schema.Component, spec normalize.RawSpec) schema.Zone {
	if z := schema.Zone(strings.ToLower(strings.TrimSpace(spec.Zone))); schema.IsValidZone(z) {
		return z
	}
	// Exact type lookup first, then a case-insensitive pass. Type names reach
	// this table in inconsistent casing when components were built outside
	// the canonicalizing path, so the second tier is live, not dead code.
	if z, ok := zoneDefaults[comp.Type]; ok {
		return z
	}
	for typ, z := range zoneDefaults {
		if strings.EqualFold(typ, comp.Type) {
			return z
		}
	}
	return schema.ZoneContent
}
