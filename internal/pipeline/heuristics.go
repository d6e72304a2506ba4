package pipeline

import (
	"strings"

	"dashgen/internal/markdown"
)

// ContentAnalysis is the model's (or the heuristic fallback's) reading of the
// source document.
type ContentAnalysis struct {
	ContentType string   `json:"content_type"`
	Topics      []string `json:"topics"`
	Summary     string   `json:"summary"`
	Tone        string   `json:"tone"`
}

// LayoutStrategy names the high-level arrangement the selection prompt is
// steered toward.
type LayoutStrategy struct {
	Name        string `json:"strategy"`
	Description string `json:"description"`
	Emphasis    string `json:"emphasis"`
}

// heuristicAnalysis classifies a document from its structure alone. Used when
// the analysis call fails or returns garbage; the run keeps going on it.
func heuristicAnalysis(o *markdown.Outline) ContentAnalysis {
	a := ContentAnalysis{ContentType: "article", Tone: "neutral"}
	if o.Title != "" {
		a.Topics = append(a.Topics, o.Title)
	}

	body := strings.ToLower(o.Title)
	for _, s := range o.Sections {
		body += " " + strings.ToLower(s)
	}

	switch {
	case len(o.Tables) > 0 && (strings.Contains(body, " vs") || strings.Contains(body, "versus") || strings.Contains(body, "comparison")):
		a.ContentType = "comparison"
	case len(o.CodeBlocks) >= 2:
		a.ContentType = "technical"
	case strings.Contains(body, "how to") || strings.Contains(body, "tutorial") || strings.Contains(body, "step "):
		a.ContentType = "tutorial"
	case strings.Contains(body, "review") || strings.Contains(body, "pros") || strings.Contains(body, "cons"):
		a.ContentType = "review"
	case len(o.Tables) > 0:
		a.ContentType = "data"
	case len(o.YouTubeLinks) > 0:
		a.ContentType = "media"
	}

	a.Summary = o.Title
	if a.Summary == "" && len(o.Sections) > 0 {
		a.Summary = firstLine(o.Sections[0])
	}
	return a
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// heuristicStrategy maps a content type onto a safe default arrangement.
func heuristicStrategy(a ContentAnalysis) LayoutStrategy {
	switch a.ContentType {
	case "comparison":
		return LayoutStrategy{Name: "split", Description: "side-by-side comparison with a verdict", Emphasis: "contrast"}
	case "technical", "tutorial":
		return LayoutStrategy{Name: "linear", Description: "step-ordered sections with code callouts", Emphasis: "sequence"}
	case "data":
		return LayoutStrategy{Name: "metrics-first", Description: "stat cards up top, detail below", Emphasis: "numbers"}
	case "media":
		return LayoutStrategy{Name: "showcase", Description: "hero media with supporting summary", Emphasis: "visual"}
	default:
		return LayoutStrategy{Name: "magazine", Description: "hero summary, then mixed-width insight cards", Emphasis: "scanability"}
	}
}
