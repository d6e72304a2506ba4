package factory

import (
	"strings"

	"dashgen/internal/schema"
)

// List-family generators.

type BulletListInput struct {
	Title string
	Items []string
}

func (f *Factory) BulletList(in BulletListInput) (*schema.Component, error) {
	return f.simpleList(schema.TypeBulletList, in.Title, in.Items)
}

type NumberedListInput struct {
	Title string
	Items []string
}

func (f *Factory) NumberedList(in NumberedListInput) (*schema.Component, error) {
	return f.simpleList(schema.TypeNumberedList, in.Title, in.Items)
}

func (f *Factory) simpleList(typ, title string, items []string) (*schema.Component, error) {
	if err := requireCount(typ, "items", len(items), 1, 20); err != nil {
		return nil, err
	}
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			return nil, schema.Validationf(typ, "items", "item %d is empty", i)
		}
	}
	props := schema.NewProps().
		SetIf(title != "", "title", title).
		Set("items", items)
	return f.Build(typ, props)
}

type ChecklistEntry struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

type ChecklistInput struct {
	Title string
	Items []ChecklistEntry
}

func (f *Factory) Checklist(in ChecklistInput) (*schema.Component, error) {
	typ := schema.TypeChecklist
	if err := requireCount(typ, "items", len(in.Items), 1, 20); err != nil {
		return nil, err
	}
	for i, item := range in.Items {
		if strings.TrimSpace(item.Label) == "" {
			return nil, schema.Validationf(typ, "items", "item %d has no label", i)
		}
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("items", in.Items)
	return f.Build(typ, props)
}

type RankedItemInput struct {
	Rank        int
	Title       string
	Score       *float64
	ScoreMax    *float64 // validation ceiling defaults to 10 when unset
	Description string
}

func (f *Factory) RankedItem(in RankedItemInput) (*schema.Component, error) {
	typ := schema.TypeRankedItem
	if in.Rank < 1 {
		return nil, schema.Validationf(typ, "rank", "must be >= 1, got %d", in.Rank)
	}
	if err := requireText(typ, "title", in.Title); err != nil {
		return nil, err
	}
	if in.Score != nil {
		max := 10.0
		if in.ScoreMax != nil {
			max = *in.ScoreMax
		}
		if max <= 0 {
			return nil, schema.Validationf(typ, "score_max", "must be positive, got %.2f", max)
		}
		if *in.Score < 0 || *in.Score > max {
			return nil, schema.Validationf(typ, "score", "%.2f outside [0, %.2f]", *in.Score, max)
		}
	}
	props := schema.NewProps().
		Set("rank", in.Rank).
		Set("title", in.Title)
	if in.Score != nil {
		props.Set("score", *in.Score)
	}
	if in.ScoreMax != nil {
		props.Set("score_max", *in.ScoreMax)
	}
	props.SetIf(in.Description != "", "description", in.Description)
	return f.Build(typ, props)
}

// Pro/con item kinds.
const (
	ProConPro = "pro"
	ProConCon = "con"
)

type ProConItemInput struct {
	Kind   string // pro or con
	Label  string
	Detail string
}

func (f *Factory) ProConItem(in ProConItemInput) (*schema.Component, error) {
	typ := schema.TypeProConItem
	if err := requireEnum(typ, "kind", in.Kind, ProConPro, ProConCon); err != nil {
		return nil, err
	}
	if err := requireText(typ, "label", in.Label); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("kind", in.Kind).
		Set("label", in.Label).
		SetIf(in.Detail != "", "detail", in.Detail)
	return f.Build(typ, props)
}

type DefinitionEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type DefinitionListInput struct {
	Title   string
	Entries []DefinitionEntry
}

func (f *Factory) DefinitionList(in DefinitionListInput) (*schema.Component, error) {
	typ := schema.TypeDefinitionList
	if err := requireCount(typ, "entries", len(in.Entries), 1, 20); err != nil {
		return nil, err
	}
	for i, e := range in.Entries {
		if e.Term == "" || e.Definition == "" {
			return nil, schema.Validationf(typ, "entries", "entry %d incomplete", i)
		}
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("entries", in.Entries)
	return f.Build(typ, props)
}
