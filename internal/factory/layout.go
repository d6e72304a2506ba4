package factory

import (
	"regexp"
	"strconv"
	"strings"

	"dashgen/internal/schema"
)

// Layout container and tag generators. Containers always receive child IDs;
// Build rejects an empty child set.

type SectionInput struct {
	Title    string
	Children []string
}

func (f *Factory) Section(in SectionInput) (*schema.Component, error) {
	if err := requireText(schema.TypeSection, "title", in.Title); err != nil {
		return nil, err
	}
	return f.Build(schema.TypeSection,
		schema.NewProps().Set("title", in.Title),
		WithChildren(&schema.Children{Order: in.Children}))
}

type GridInput struct {
	Columns  int
	Gap      string
	Children []string
}

func (f *Factory) Grid(in GridInput) (*schema.Component, error) {
	typ := schema.TypeGrid
	if in.Columns < 1 || in.Columns > 6 {
		return nil, schema.Validationf(typ, "columns", "%d outside [1, 6]", in.Columns)
	}
	props := schema.NewProps().
		Set("columns", in.Columns).
		SetIf(in.Gap != "", "gap", in.Gap)
	return f.Build(typ, props, WithChildren(&schema.Children{Order: in.Children}))
}

// cssUnitPattern accepts the raw widths multi-column containers carry:
// e.g. "320px", "33%", "1fr", "20rem".
var cssUnitPattern = regexp.MustCompile(`^\d+(\.\d+)?(px|%|fr|em|rem|vw)$`)

type ColumnsInput struct {
	Widths   []string // optional, one raw CSS width per column
	Children []string
}

func (f *Factory) Columns(in ColumnsInput) (*schema.Component, error) {
	typ := schema.TypeColumns
	if len(in.Widths) > 0 {
		if len(in.Widths) != len(in.Children) {
			return nil, schema.Validationf(typ, "widths", "%d widths for %d children", len(in.Widths), len(in.Children))
		}
		for i, w := range in.Widths {
			if !cssUnitPattern.MatchString(w) {
				return nil, schema.Validationf(typ, "widths", "width %d %q is not a CSS unit", i, w)
			}
		}
	}
	props := schema.NewProps()
	if len(in.Widths) > 0 {
		props.Set("widths", in.Widths)
	}
	return f.Build(typ, props, WithChildren(&schema.Children{Order: in.Children}))
}

type TabsInput struct {
	Labels []string
	// Slots maps tab index ("0", "1", ...) to the child IDs behind that tab.
	Slots map[string][]string
}

func (f *Factory) Tabs(in TabsInput) (*schema.Component, error) {
	return f.slotted(schema.TypeTabs, in.Labels, in.Slots, 2, 8)
}

type AccordionInput struct {
	Labels []string
	Slots  map[string][]string
}

func (f *Factory) Accordion(in AccordionInput) (*schema.Component, error) {
	return f.slotted(schema.TypeAccordion, in.Labels, in.Slots, 2, 12)
}

func (f *Factory) slotted(typ string, labels []string, slots map[string][]string, minLabels, maxLabels int) (*schema.Component, error) {
	if err := requireCount(typ, "labels", len(labels), minLabels, maxLabels); err != nil {
		return nil, err
	}
	for i, l := range labels {
		if strings.TrimSpace(l) == "" {
			return nil, schema.Validationf(typ, "labels", "label %d is empty", i)
		}
	}
	for key := range slots {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(labels) {
			return nil, schema.Validationf(typ, "children", "slot key %q has no matching label", key)
		}
	}
	return f.Build(typ,
		schema.NewProps().Set("labels", labels),
		WithChildren(&schema.Children{Slots: slots}))
}

type CarouselInput struct {
	Title    string
	Children []string
}

func (f *Factory) Carousel(in CarouselInput) (*schema.Component, error) {
	typ := schema.TypeCarousel
	if err := requireCount(typ, "children", len(in.Children), 2, 12); err != nil {
		return nil, err
	}
	props := schema.NewProps().SetIf(in.Title != "", "title", in.Title)
	return f.Build(typ, props, WithChildren(&schema.Children{Order: in.Children}))
}

type SidebarInput struct {
	Position string // left or right, defaults to right
	Children []string
}

func (f *Factory) Sidebar(in SidebarInput) (*schema.Component, error) {
	typ := schema.TypeSidebar
	if in.Position != "" {
		if err := requireEnum(typ, "position", in.Position, "left", "right"); err != nil {
			return nil, err
		}
	}
	props := schema.NewProps().SetIf(in.Position != "", "position", in.Position)
	return f.Build(typ, props, WithChildren(&schema.Children{Order: in.Children}))
}

type TagListInput struct {
	Tags []string
}

func (f *Factory) TagList(in TagListInput) (*schema.Component, error) {
	typ := schema.TypeTagList
	if err := requireCount(typ, "tags", len(in.Tags), 1, 20); err != nil {
		return nil, err
	}
	for i, t := range in.Tags {
		if strings.TrimSpace(t) == "" {
			return nil, schema.Validationf(typ, "tags", "tag %d is empty", i)
		}
	}
	return f.Build(typ, schema.NewProps().Set("tags", in.Tags))
}

// Badge variants.
const (
	BadgeDefault = "default"
	BadgeNew     = "new"
	BadgeHot     = "hot"
	BadgeUpdated = "updated"
)

type BadgeInput struct {
	Label   string
	Variant string
}

func (f *Factory) Badge(in BadgeInput) (*schema.Component, error) {
	typ := schema.TypeBadge
	if err := requireText(typ, "label", in.Label); err != nil {
		return nil, err
	}
	if in.Variant != "" {
		if err := requireEnum(typ, "variant", in.Variant, BadgeDefault, BadgeNew, BadgeHot, BadgeUpdated); err != nil {
			return nil, err
		}
	}
	props := schema.NewProps().
		Set("label", in.Label).
		SetIf(in.Variant != "", "variant", in.Variant)
	return f.Build(typ, props)
}
