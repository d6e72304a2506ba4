package factory

import "dashgen/internal/schema"

// Data and stats generators.

// Change direction values accepted by StatCard.
const (
	ChangePositive = "positive"
	ChangeNegative = "negative"
	ChangeNeutral  = "neutral"
)

type StatCardInput struct {
	Label         string
	Value         float64
	Unit          string
	ChangeType    string
	ChangePercent *float64
	Description   string
}

func (f *Factory) StatCard(in StatCardInput) (*schema.Component, error) {
	typ := schema.TypeStatCard
	if in.ChangeType != "" {
		if err := requireEnum(typ, "change_type", in.ChangeType, ChangePositive, ChangeNegative, ChangeNeutral); err != nil {
			return nil, err
		}
	}
	props := schema.NewProps().
		SetIf(in.Label != "", "label", in.Label).
		Set("value", in.Value).
		SetIf(in.Unit != "", "unit", in.Unit).
		SetIf(in.ChangeType != "", "change_type", in.ChangeType)
	if in.ChangePercent != nil {
		props.Set("change_percent", *in.ChangePercent)
	}
	props.SetIf(in.Description != "", "description", in.Description)
	return f.Build(typ, props)
}

type MiniChartInput struct {
	Label  string
	Points []float64
	Kind   string // line, bar, area
}

func (f *Factory) MiniChart(in MiniChartInput) (*schema.Component, error) {
	typ := schema.TypeMiniChart
	if err := requireCount(typ, "points", len(in.Points), 5, 100); err != nil {
		return nil, err
	}
	if in.Kind != "" {
		if err := requireEnum(typ, "kind", in.Kind, "line", "bar", "area"); err != nil {
			return nil, err
		}
	}
	props := schema.NewProps().
		SetIf(in.Label != "", "label", in.Label).
		Set("points", in.Points).
		SetIf(in.Kind != "", "kind", in.Kind)
	return f.Build(typ, props)
}

type ChartItem struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ComparisonChartInput struct {
	Title string
	Items []ChartItem
	Unit  string
}

func (f *Factory) ComparisonChart(in ComparisonChartInput) (*schema.Component, error) {
	typ := schema.TypeComparisonChart
	if err := requireCount(typ, "items", len(in.Items), 1, 10); err != nil {
		return nil, err
	}
	for i, item := range in.Items {
		if item.Label == "" {
			return nil, schema.Validationf(typ, "items", "item %d has no label", i)
		}
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("items", in.Items).
		SetIf(in.Unit != "", "unit", in.Unit)
	return f.Build(typ, props)
}

type ProgressBarInput struct {
	Label   string
	Percent float64
}

func (f *Factory) ProgressBar(in ProgressBarInput) (*schema.Component, error) {
	typ := schema.TypeProgressBar
	if err := requireText(typ, "label", in.Label); err != nil {
		return nil, err
	}
	if in.Percent < 0 || in.Percent > 100 {
		return nil, schema.Validationf(typ, "percent", "%.2f outside [0, 100]", in.Percent)
	}
	props := schema.NewProps().
		Set("label", in.Label).
		Set("percent", in.Percent)
	return f.Build(typ, props)
}

type GaugeInput struct {
	Label string
	Value float64
	Max   *float64 // defaults to 100 when unset
	Unit  string
}

func (f *Factory) Gauge(in GaugeInput) (*schema.Component, error) {
	typ := schema.TypeGauge
	if err := requireText(typ, "label", in.Label); err != nil {
		return nil, err
	}
	max := 100.0
	if in.Max != nil {
		max = *in.Max
	}
	if max <= 0 {
		return nil, schema.Validationf(typ, "max", "must be positive, got %.2f", max)
	}
	if in.Value < 0 || in.Value > max {
		return nil, schema.Validationf(typ, "value", "%.2f outside [0, %.2f]", in.Value, max)
	}
	props := schema.NewProps().
		Set("label", in.Label).
		Set("value", in.Value)
	if in.Max != nil {
		props.Set("max", *in.Max)
	}
	props.SetIf(in.Unit != "", "unit", in.Unit)
	return f.Build(typ, props)
}

type DataTableInput struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func (f *Factory) DataTable(in DataTableInput) (*schema.Component, error) {
	typ := schema.TypeDataTable
	if err := requireCount(typ, "headers", len(in.Headers), 1, 12); err != nil {
		return nil, err
	}
	if err := requireCount(typ, "rows", len(in.Rows), 1, 50); err != nil {
		return nil, err
	}
	for i, row := range in.Rows {
		if len(row) != len(in.Headers) {
			return nil, schema.Validationf(typ, "rows", "row %d has %d cells, want %d", i, len(row), len(in.Headers))
		}
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("headers", in.Headers).
		Set("rows", in.Rows)
	return f.Build(typ, props)
}

type TrendIndicatorInput struct {
	Label     string
	Direction string // up, down, stable
	Delta     *float64
}

func (f *Factory) TrendIndicator(in TrendIndicatorInput) (*schema.Component, error) {
	typ := schema.TypeTrendIndicator
	if err := requireText(typ, "label", in.Label); err != nil {
		return nil, err
	}
	if err := requireEnum(typ, "direction", in.Direction, "up", "down", "stable"); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("label", in.Label).
		Set("direction", in.Direction)
	if in.Delta != nil {
		props.Set("delta", *in.Delta)
	}
	return f.Build(typ, props)
}
