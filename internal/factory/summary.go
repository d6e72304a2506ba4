package factory

import (
	"strings"

	"dashgen/internal/schema"
)

// Summary, comparison and instructional generators.

type SummaryCardInput struct {
	Title string
	Text  string
}

func (f *Factory) SummaryCard(in SummaryCardInput) (*schema.Component, error) {
	if err := requireText(schema.TypeSummaryCard, "text", in.Text); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("text", in.Text)
	return f.Build(schema.TypeSummaryCard, props)
}

type KeyTakeawaysInput struct {
	Points []string
}

func (f *Factory) KeyTakeaways(in KeyTakeawaysInput) (*schema.Component, error) {
	typ := schema.TypeKeyTakeaways
	if err := requireCount(typ, "points", len(in.Points), 1, 10); err != nil {
		return nil, err
	}
	for i, p := range in.Points {
		if strings.TrimSpace(p) == "" {
			return nil, schema.Validationf(typ, "points", "point %d is empty", i)
		}
	}
	return f.Build(typ, schema.NewProps().Set("points", in.Points))
}

type TLDRInput struct {
	Text string
}

func (f *Factory) TLDR(in TLDRInput) (*schema.Component, error) {
	if err := requireText(schema.TypeTLDR, "text", in.Text); err != nil {
		return nil, err
	}
	return f.Build(schema.TypeTLDR, schema.NewProps().Set("text", in.Text))
}

// Callout kinds.
const (
	CalloutInfo    = "info"
	CalloutWarning = "warning"
	CalloutSuccess = "success"
	CalloutError   = "error"
)

type CalloutInput struct {
	Kind  string // defaults to info when unset
	Title string
	Text  string
}

func (f *Factory) Callout(in CalloutInput) (*schema.Component, error) {
	typ := schema.TypeCallout
	if err := requireText(typ, "text", in.Text); err != nil {
		return nil, err
	}
	if in.Kind != "" {
		if err := requireEnum(typ, "kind", in.Kind, CalloutInfo, CalloutWarning, CalloutSuccess, CalloutError); err != nil {
			return nil, err
		}
	}
	props := schema.NewProps().
		SetIf(in.Kind != "", "kind", in.Kind).
		SetIf(in.Title != "", "title", in.Title).
		Set("text", in.Text)
	return f.Build(typ, props)
}

type FAQItemInput struct {
	Question string
	Answer   string
}

func (f *Factory) FAQItem(in FAQItemInput) (*schema.Component, error) {
	typ := schema.TypeFAQItem
	if err := requireText(typ, "question", in.Question); err != nil {
		return nil, err
	}
	if err := requireText(typ, "answer", in.Answer); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("question", in.Question).
		Set("answer", in.Answer)
	return f.Build(typ, props)
}

type ComparisonRow struct {
	Label string   `json:"label"`
	Cells []string `json:"cells"`
}

type ComparisonTableInput struct {
	Title   string
	Columns []string
	Rows    []ComparisonRow
}

func (f *Factory) ComparisonTable(in ComparisonTableInput) (*schema.Component, error) {
	typ := schema.TypeComparisonTable
	if err := requireCount(typ, "columns", len(in.Columns), 2, 6); err != nil {
		return nil, err
	}
	if err := requireCount(typ, "rows", len(in.Rows), 1, 20); err != nil {
		return nil, err
	}
	for i, row := range in.Rows {
		if len(row.Cells) != len(in.Columns) {
			return nil, schema.Validationf(typ, "rows", "row %d has %d cells, want %d", i, len(row.Cells), len(in.Columns))
		}
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("columns", in.Columns).
		Set("rows", in.Rows)
	return f.Build(typ, props)
}

type VersusSide struct {
	Name   string   `json:"name"`
	Points []string `json:"points,omitempty"`
}

type VersusCardInput struct {
	Left    VersusSide
	Right   VersusSide
	Verdict string
}

func (f *Factory) VersusCard(in VersusCardInput) (*schema.Component, error) {
	typ := schema.TypeVersusCard
	if in.Left.Name == "" || in.Right.Name == "" {
		return nil, schema.Validationf(typ, "", "both sides need a name")
	}
	props := schema.NewProps().
		Set("left", in.Left).
		Set("right", in.Right).
		SetIf(in.Verdict != "", "verdict", in.Verdict)
	return f.Build(typ, props)
}

type Step struct {
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

type StepGuideInput struct {
	Title string
	Steps []Step
}

func (f *Factory) StepGuide(in StepGuideInput) (*schema.Component, error) {
	typ := schema.TypeStepGuide
	if err := requireCount(typ, "steps", len(in.Steps), 2, 20); err != nil {
		return nil, err
	}
	for i, s := range in.Steps {
		if s.Title == "" {
			return nil, schema.Validationf(typ, "steps", "step %d has no title", i)
		}
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("steps", in.Steps)
	return f.Build(typ, props)
}

type CodeExampleInput struct {
	Title       string
	Code        string
	Language    string
	Explanation string
}

func (f *Factory) CodeExample(in CodeExampleInput) (*schema.Component, error) {
	typ := schema.TypeCodeExample
	if err := requireText(typ, "code", in.Code); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("code", in.Code).
		SetIf(in.Language != "", "language", in.Language).
		SetIf(in.Explanation != "", "explanation", in.Explanation)
	return f.Build(typ, props)
}

type TerminalInput struct {
	Command string
	Output  string
}

func (f *Factory) Terminal(in TerminalInput) (*schema.Component, error) {
	typ := schema.TypeTerminal
	if err := requireText(typ, "command", in.Command); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("command", in.Command).
		SetIf(in.Output != "", "output", in.Output)
	return f.Build(typ, props)
}
