package normalize

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"dashgen/internal/schema"
)

// aliasTable maps normalized historical type spellings to canonical registry
// names. Keys are lowercased with separators stripped (see normalizeTypeKey),
// so "StatCard", "stat_card" and "a2ui.statcard" all hit the same row.
var aliasTable = map[string]string{
	// News
	"headline": schema.TypeHeadline,
	"header":   schema.TypeHeadline,
	"hero":     schema.TypeHeadline,

	"newsarticle": schema.TypeNewsArticle,
	"article":     schema.TypeNewsArticle,
	"story":       schema.TypeNewsArticle,

	"breakingnews": schema.TypeBreakingNews,
	"breaking":     schema.TypeBreakingNews,

	"timeline": schema.TypeTimeline,
	"history":  schema.TypeTimeline,

	"liveupdate": schema.TypeLiveUpdate,
	"update":     schema.TypeLiveUpdate,

	// Media
	"videoembed": schema.TypeVideoEmbed,
	"video":      schema.TypeVideoEmbed,

	"youtubeembed": schema.TypeYouTubeEmbed,
	"youtube":      schema.TypeYouTubeEmbed,
	"youtubevideo": schema.TypeYouTubeEmbed,

	"imagegallery": schema.TypeImageGallery,
	"gallery":      schema.TypeImageGallery,
	"images":       schema.TypeImageGallery,

	"heroimage": schema.TypeHeroImage,
	"banner":    schema.TypeHeroImage,

	"audioclip": schema.TypeAudioClip,
	"audio":     schema.TypeAudioClip,
	"podcast":   schema.TypeAudioClip,

	// Data / stats
	"statcard": schema.TypeStatCard,
	"stat":     schema.TypeStatCard,
	"metric":   schema.TypeStatCard,
	"kpi":      schema.TypeStatCard,

	"minichart": schema.TypeMiniChart,
	"sparkline": schema.TypeMiniChart,
	"chart":     schema.TypeMiniChart,

	"comparisonchart": schema.TypeComparisonChart,
	"barchart":        schema.TypeComparisonChart,

	"progressbar": schema.TypeProgressBar,
	"progress":    schema.TypeProgressBar,

	"gauge": schema.TypeGauge,
	"meter": schema.TypeGauge,

	"datatable": schema.TypeDataTable,
	"table":     schema.TypeDataTable,

	"trendindicator": schema.TypeTrendIndicator,
	"trend":          schema.TypeTrendIndicator,

	// Lists
	"bulletlist": schema.TypeBulletList,
	"bullets":    schema.TypeBulletList,
	"list":       schema.TypeBulletList,

	"numberedlist": schema.TypeNumberedList,
	"orderedlist":  schema.TypeNumberedList,

	"checklist": schema.TypeChecklist,
	"todolist":  schema.TypeChecklist,

	"rankeditem": schema.TypeRankedItem,
	"ranked":     schema.TypeRankedItem,
	"ranking":    schema.TypeRankedItem,

	"proconitem": schema.TypeProConItem,
	"procon":     schema.TypeProConItem,

	"definitionlist": schema.TypeDefinitionList,
	"glossary":       schema.TypeDefinitionList,

	// Resources
	"linkcard": schema.TypeLinkCard,
	"link":     schema.TypeLinkCard,

	"resourcelist": schema.TypeResourceList,
	"resources":    schema.TypeResourceList,
	"links":        schema.TypeResourceList,

	"githubrepo": schema.TypeGitHubRepo,
	"github":     schema.TypeGitHubRepo,
	"repo":       schema.TypeGitHubRepo,

	"codesnippet": schema.TypeCodeSnippet,
	"snippet":     schema.TypeCodeSnippet,

	"downloadcard": schema.TypeDownloadCard,
	"download":     schema.TypeDownloadCard,

	// People
	"personcard": schema.TypePersonCard,
	"person":     schema.TypePersonCard,
	"profile":    schema.TypePersonCard,

	"quoteblock": schema.TypeQuoteBlock,
	"quote":      schema.TypeQuoteBlock,
	"blockquote": schema.TypeQuoteBlock,

	"testimonial": schema.TypeTestimonial,
	"review":      schema.TypeTestimonial,

	"teamgrid": schema.TypeTeamGrid,
	"team":     schema.TypeTeamGrid,

	// Summary
	"summarycard": schema.TypeSummaryCard,
	"summary":     schema.TypeSummaryCard,
	"abstract":    schema.TypeSummaryCard,

	"keytakeaways": schema.TypeKeyTakeaways,
	"takeaways":    schema.TypeKeyTakeaways,
	"keypoints":    schema.TypeKeyTakeaways,

	"tldr": schema.TypeTLDR,

	"callout": schema.TypeCallout,
	"infobox": schema.TypeCallout,
	"note":    schema.TypeCallout,
	"alert":   schema.TypeCallout,

	"faqitem":  schema.TypeFAQItem,
	"faq":      schema.TypeFAQItem,
	"question": schema.TypeFAQItem,

	// Comparison
	"comparisontable": schema.TypeComparisonTable,
	"comparison":      schema.TypeComparisonTable,

	"versuscard": schema.TypeVersusCard,
	"versus":     schema.TypeVersusCard,
	"vs":         schema.TypeVersusCard,

	// Instructional
	"stepguide": schema.TypeStepGuide,
	"steps":     schema.TypeStepGuide,
	"howto":     schema.TypeStepGuide,
	"tutorial":  schema.TypeStepGuide,

	"codeexample": schema.TypeCodeExample,

	"terminal": schema.TypeTerminal,
	"shell":    schema.TypeTerminal,
	"command":  schema.TypeTerminal,

	// Layout
	"section":   schema.TypeSection,
	"grid":      schema.TypeGrid,
	"columns":   schema.TypeColumns,
	"tabs":      schema.TypeTabs,
	"accordion": schema.TypeAccordion,
	"carousel":  schema.TypeCarousel,
	"slider":    schema.TypeCarousel,
	"sidebar":   schema.TypeSidebar,

	// Tags
	"taglist": schema.TypeTagList,
	"tags":    schema.TypeTagList,
	"badge":   schema.TypeBadge,
	"label":   schema.TypeBadge,
}

// normalizeTypeKey lowercases a raw type name and strips the namespace
// qualifier and separator characters.
func normalizeTypeKey(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if rest, ok := strings.CutPrefix(s, strings.ToLower(schema.Namespace)+"."); ok {
		s = rest
	}
	s = strings.NewReplacer("_", "", "-", "", " ", "", ".", "").Replace(s)
	return s
}

// CanonicalType resolves a raw LLM type name to a registry name. The lookup
// is case-insensitive and alias-aware; unknown names return ok=false and the
// caller falls through to the generic callout.
func CanonicalType(raw string) (string, bool) {
	key := normalizeTypeKey(raw)
	if key == "" {
		return "", false
	}
	if canonical, ok := aliasTable[key]; ok {
		return canonical, true
	}
	return "", false
}

// SuggestType returns the nearest registered type by edit distance over the
// normalized local names, or "" if nothing is close enough to be a plausible
// misspelling. Purely advisory (log lines only).
func SuggestType(raw string) string {
	key := normalizeTypeKey(raw)
	if key == "" {
		return ""
	}
	best := ""
	bestDist := 4 // anything further is a different word, not a typo
	for _, typ := range schema.AllTypes() {
		cand := normalizeTypeKey(schema.LocalName(typ))
		if d := levenshtein.ComputeDistance(key, cand); d < bestDist {
			best, bestDist = typ, d
		}
	}
	return best
}
