package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashgen/internal/ids"
	"dashgen/internal/schema"
)

func newFactory() *Factory {
	return New(ids.New())
}

func TestBuildRejectsUnknownType(t *testing.T) {
	_, err := newFactory().Build("a2ui.Widget", nil)

	var ite *schema.InvalidTypeError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, "a2ui.Widget", ite.Type)
}

func TestBuildRejectsMissingRequiredProp(t *testing.T) {
	_, err := newFactory().Build(schema.TypeHeadline, schema.NewProps().Set("subtitle", "x"))

	var ve *schema.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)
}

func TestBuildContainerRules(t *testing.T) {
	f := newFactory()

	_, err := f.Build(schema.TypeSection,
		schema.NewProps().Set("title", "Intro"))
	var ve *schema.ValidationError
	require.ErrorAs(t, err, &ve, "container without children must fail")

	_, err = f.Build(schema.TypeHeadline,
		schema.NewProps().Set("title", "x"),
		WithChildren(&schema.Children{Order: []string{"a-1"}}))
	require.ErrorAs(t, err, &ve, "leaf with children must fail")

	comp, err := f.Build(schema.TypeSection,
		schema.NewProps().Set("title", "Intro"),
		WithChildren(&schema.Children{Order: []string{"a-1", "b-2"}}))
	require.NoError(t, err)
	assert.Equal(t, 2, comp.Children.Len())
}

func TestBuildExplicitID(t *testing.T) {
	comp, err := newFactory().Build(schema.TypeHeadline,
		schema.NewProps().Set("title", "x"), WithID("custom-7"))
	require.NoError(t, err)
	assert.Equal(t, "custom-7", comp.ID)
}

func TestStatCard(t *testing.T) {
	f := newFactory()
	pct := 4.2

	comp, err := f.StatCard(StatCardInput{
		Label:         "Throughput",
		Value:         1234,
		Unit:          "req/s",
		ChangeType:    ChangePositive,
		ChangePercent: &pct,
	})
	require.NoError(t, err)
	assert.Equal(t, schema.TypeStatCard, comp.Type)
	assert.Equal(t, "stat-card-1", comp.ID)
	v, _ := comp.Props.Get("change_percent")
	assert.Equal(t, 4.2, v)

	_, err = f.StatCard(StatCardInput{Label: "x", ChangeType: "sideways"})
	var ve *schema.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "change_type", ve.Field)

	// Label is optional: a bare value is a valid card.
	comp, err = f.StatCard(StatCardInput{Value: 1234})
	require.NoError(t, err)
	assert.False(t, comp.Props.Has("label"))
}

func TestStatCardOmitsUnsetOptionals(t *testing.T) {
	comp, err := newFactory().StatCard(StatCardInput{Label: "Errors", Value: 0})
	require.NoError(t, err)

	for _, absent := range []string{"unit", "change_type", "change_percent", "description"} {
		assert.False(t, comp.Props.Has(absent), "unset %s must be absent", absent)
	}
}

func TestRankedItem(t *testing.T) {
	f := newFactory()
	score := func(v float64) *float64 { return &v }

	tests := []struct {
		name      string
		in        RankedItemInput
		wantField string
	}{
		{"valid", RankedItemInput{Rank: 1, Title: "Go"}, ""},
		{"zero_rank", RankedItemInput{Rank: 0, Title: "Go"}, "rank"},
		{"score_over_default_max", RankedItemInput{Rank: 1, Title: "Go", Score: score(12)}, "score"},
		{"score_within_custom_max", RankedItemInput{Rank: 1, Title: "Go", Score: score(12), ScoreMax: score(20)}, ""},
		{"blank_title", RankedItemInput{Rank: 2, Title: "  "}, "title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp, err := f.RankedItem(tt.in)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.in.Score != nil, comp.Props.Has("score"))
				return
			}
			var ve *schema.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestMiniChartPointBounds(t *testing.T) {
	f := newFactory()

	_, err := f.MiniChart(MiniChartInput{Points: []float64{1, 2, 3}})
	assert.Error(t, err, "4 points is below the minimum")

	comp, err := f.MiniChart(MiniChartInput{Points: []float64{1, 2, 3, 4, 5}})
	require.NoError(t, err)
	assert.False(t, comp.Props.Has("kind"))
}

func TestLinkCardURLValidation(t *testing.T) {
	f := newFactory()

	_, err := f.LinkCard(LinkCardInput{Title: "Docs", URL: "ftp://example.com/x"})
	var ve *schema.ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = f.LinkCard(LinkCardInput{Title: "Docs", URL: "https://"})
	require.ErrorAs(t, err, &ve)

	comp, err := f.LinkCard(LinkCardInput{Title: "Docs", URL: "https://example.com/docs"})
	require.NoError(t, err)
	assert.Equal(t, schema.TypeLinkCard, comp.Type)
}

func TestGridColumnBounds(t *testing.T) {
	f := newFactory()

	_, err := f.Grid(GridInput{Columns: 7, Children: []string{"a-1"}})
	assert.Error(t, err)

	comp, err := f.Grid(GridInput{Columns: 3, Children: []string{"a-1", "b-2", "c-3"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1", "b-2", "c-3"}, comp.Children.Order)
}

func TestTabsSlotKeys(t *testing.T) {
	f := newFactory()

	_, err := f.Tabs(TabsInput{
		Labels: []string{"Setup", "Usage"},
		Slots:  map[string][]string{"2": {"a-1"}},
	})
	var ve *schema.ValidationError
	require.ErrorAs(t, err, &ve, "slot key beyond labels must fail")

	comp, err := f.Tabs(TabsInput{
		Labels: []string{"Setup", "Usage"},
		Slots:  map[string][]string{"0": {"a-1"}, "1": {"b-2", "c-3"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, comp.Children.Len())
	assert.Nil(t, comp.Children.Order)
}

func TestValidationErrorMessages(t *testing.T) {
	_, err := newFactory().Build("a2ui.Widget", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a2ui.Widget")

	var ite *schema.InvalidTypeError
	require.True(t, errors.As(err, &ite))
}
