package pipeline

import (
	"fmt"
	"strings"

	"dashgen/internal/markdown"
	"dashgen/internal/schema"
)

const maxPromptSections = 12

var promptCategories = []schema.Category{
	schema.CategorySummary,
	schema.CategoryData,
	schema.CategoryNews,
	schema.CategoryLists,
	schema.CategoryComparison,
	schema.CategoryInstructional,
	schema.CategoryMedia,
	schema.CategoryResources,
	schema.CategoryPeople,
	schema.CategoryTags,
	schema.CategoryLayout,
}

func outlineDigest(o *markdown.Outline) string {
	var b strings.Builder
	if o.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", o.Title)
	}
	sections := o.Sections
	if len(sections) > maxPromptSections {
		sections = sections[:maxPromptSections]
	}
	for i, s := range sections {
		fmt.Fprintf(&b, "Section %d: %s\n", i+1, truncate(s, 400))
	}
	if len(o.CodeBlocks) > 0 {
		langs := make([]string, 0, len(o.CodeBlocks))
		for _, cb := range o.CodeBlocks {
			langs = append(langs, cb.Language)
		}
		fmt.Fprintf(&b, "Code blocks: %d (%s)\n", len(o.CodeBlocks), strings.Join(langs, ", "))
	}
	if len(o.Tables) > 0 {
		fmt.Fprintf(&b, "Tables: %d\n", len(o.Tables))
		for _, t := range o.Tables {
			fmt.Fprintf(&b, "  columns: %s (%d rows)\n", strings.Join(t.Headers, " | "), len(t.Rows))
		}
	}
	if len(o.YouTubeLinks) > 0 {
		fmt.Fprintf(&b, "YouTube links: %s\n", strings.Join(o.YouTubeLinks, " "))
	}
	if len(o.GitHubLinks) > 0 {
		fmt.Fprintf(&b, "GitHub links: %s\n", strings.Join(o.GitHubLinks, " "))
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

const analysisSystem = `You analyze markdown documents for dashboard generation.
Respond with a single JSON object and nothing else.`

func analysisPrompt(o *markdown.Outline) string {
	return fmt.Sprintf(`Classify this document.

%s
Return JSON:
{"content_type": "article|news|tutorial|technical|review|comparison|data|media",
 "topics": ["..."],
 "summary": "one sentence",
 "tone": "neutral|enthusiastic|critical|formal"}`, outlineDigest(o))
}

const strategySystem = `You choose dashboard layout strategies.
Respond with a single JSON object and nothing else.`

func strategyPrompt(o *markdown.Outline, a ContentAnalysis) string {
	return fmt.Sprintf(`Pick a layout strategy for a %s document titled %q.

Document:
%s
Return JSON:
{"strategy": "magazine|linear|split|metrics-first|showcase",
 "description": "one sentence",
 "emphasis": "what the layout should foreground"}`,
		a.ContentType, o.Title, outlineDigest(o))
}

const selectionSystem = `You convert markdown documents into dashboard component specs.
Respond with a single JSON object and nothing else. Every component spec must
use a component_type from the provided catalogue.`

func selectionPrompt(o *markdown.Outline, a ContentAnalysis, s LayoutStrategy, varietyNote string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate dashboard components for this %s document using the %q strategy (%s).\n\n",
		a.ContentType, s.Name, s.Description)
	b.WriteString("Document:\n")
	b.WriteString(outlineDigest(o))
	b.WriteString("\nComponent catalogue:\n")
	for _, cat := range promptCategories {
		fmt.Fprintf(&b, "- %s: %s\n", cat, strings.Join(localNames(cat), ", "))
	}
	b.WriteString(`
Rules:
- 6 to 14 components, mixed types. At least 4 distinct types, never more
  than two of the same type in a row.
- Zones: hero, metrics, insights, content, media, resources, tags.
- Numeric stats go in statCard props: value, label, change, change_type.
- For repeated pros/cons or stats, a single spec may carry an "items" array.

Return JSON:
{"components": [
  {"component_type": "statCard", "props": {...}, "priority": 1, "zone": "metrics", "width_hint": "quarter"}
]}`)
	if varietyNote != "" {
		b.WriteString("\n\n")
		b.WriteString(varietyNote)
	}
	return b.String()
}

func localNames(cat schema.Category) []string {
	full := schema.TypesInCategory(cat)
	out := make([]string, len(full))
	for i, t := range full {
		out[i] = schema.LocalName(t)
	}
	return out
}

func varietyFeedback(violations []string) string {
	return "The previous selection was rejected: " + strings.Join(violations, "; ") +
		". Produce a new selection with more distinct component types."
}
