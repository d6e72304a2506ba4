package layout

import (
	"testing"

	"dashgen/internal/normalize"
	"dashgen/internal/schema"
)

func component(typ string) *schema.Component {
	return &schema.Component{
		Type:  typ,
		ID:    "x-1",
		Props: schema.NewProps(),
	}
}

func TestResolveWidthTiers(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		spec normalize.RawSpec
		want string
	}{
		{
			name: "explicit_prop_wins",
			typ:  schema.TypeStatCard,
			spec: normalize.RawSpec{
				Props:     map[string]any{"width_hint": "half"},
				WidthHint: "third",
			},
			want: schema.WidthHalf,
		},
		{
			name: "spec_hint_beats_default",
			typ:  schema.TypeStatCard,
			spec: normalize.RawSpec{WidthHint: "full"},
			want: schema.WidthFull,
		},
		{
			name: "type_default",
			typ:  schema.TypeStatCard,
			spec: normalize.RawSpec{},
			want: schema.WidthQuarter,
		},
		{
			name: "unlisted_type_falls_to_full",
			typ:  schema.TypeNewsArticle,
			spec: normalize.RawSpec{},
			want: schema.WidthFull,
		},
		{
			name: "invalid_hint_ignored",
			typ:  schema.TypeGauge,
			spec: normalize.RawSpec{WidthHint: "enormous"},
			want: schema.WidthThird,
		},
		{
			name: "css_unit_rejected_on_leaf",
			typ:  schema.TypeStatCard,
			spec: normalize.RawSpec{WidthHint: "320px"},
			want: schema.WidthQuarter,
		},
		{
			name: "css_unit_allowed_on_container",
			typ:  schema.TypeColumns,
			spec: normalize.RawSpec{WidthHint: "320px"},
			want: "320px",
		},
		{
			name: "bad_css_unit_on_container",
			typ:  schema.TypeColumns,
			spec: normalize.RawSpec{WidthHint: "wide-px"},
			want: schema.WidthFull,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := Apply(component(tt.typ), tt.spec)
			if comp.Layout == nil || comp.Layout.Width != tt.want {
				t.Errorf("width = %+v, want %q", comp.Layout, tt.want)
			}
		})
	}
}

func TestResolveZoneTiers(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		spec normalize.RawSpec
		want schema.Zone
	}{
		{"explicit_valid", schema.TypeStatCard, normalize.RawSpec{Zone: "hero"}, schema.ZoneHero},
		{"explicit_upper", schema.TypeStatCard, normalize.RawSpec{Zone: "METRICS"}, schema.ZoneMetrics},
		{"explicit_invalid_falls_through", schema.TypeStatCard, normalize.RawSpec{Zone: "basement"}, schema.ZoneMetrics},
		{"type_default", schema.TypeLinkCard, normalize.RawSpec{}, schema.ZoneResources},
		{"unlisted_type", schema.TypeSection, normalize.RawSpec{}, schema.ZoneContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := Apply(component(tt.typ), tt.spec)
			if comp.Zone != tt.want {
				t.Errorf("zone = %q, want %q", comp.Zone, tt.want)
			}
		})
	}
}

func TestResolveZoneCaseInsensitiveTypeLookup(t *testing.T) {
	comp := component("A2UI.statcard")
	Apply(comp, normalize.RawSpec{})
	if comp.Zone != schema.ZoneMetrics {
		t.Errorf("zone = %q, want metrics", comp.Zone)
	}
}

func TestApplyReturnsSameComponent(t *testing.T) {
	comp := component(schema.TypeHeadline)
	if got := Apply(comp, normalize.RawSpec{}); got != comp {
		t.Error("Apply must mutate in place")
	}
	if comp.Zone != schema.ZoneHero {
		t.Errorf("zone = %q", comp.Zone)
	}
}
