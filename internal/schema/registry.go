package schema

import (
	"sort"
	"strings"
)

// Namespace prefixes every registered component type name.
const Namespace = "a2ui"

// Registered component type names. The registry is a closed set: adding a
// type is a code change here plus a generator in internal/factory.
const (
	// News
	TypeHeadline     = Namespace + ".Headline"
	TypeNewsArticle  = Namespace + ".NewsArticle"
	TypeBreakingNews = Namespace + ".BreakingNews"
	TypeTimeline     = Namespace + ".Timeline"
	TypeLiveUpdate   = Namespace + ".LiveUpdate"

	// Media
	TypeVideoEmbed   = Namespace + ".VideoEmbed"
	TypeYouTubeEmbed = Namespace + ".YouTubeEmbed"
	TypeImageGallery = Namespace + ".ImageGallery"
	TypeHeroImage    = Namespace + ".HeroImage"
	TypeAudioClip    = Namespace + ".AudioClip"

	// Data / stats
	TypeStatCard        = Namespace + ".StatCard"
	TypeMiniChart       = Namespace + ".MiniChart"
	TypeComparisonChart = Namespace + ".ComparisonChart"
	TypeProgressBar     = Namespace + ".ProgressBar"
	TypeGauge           = Namespace + ".Gauge"
	TypeDataTable       = Namespace + ".DataTable"
	TypeTrendIndicator  = Namespace + ".TrendIndicator"

	// Lists
	TypeBulletList     = Namespace + ".BulletList"
	TypeNumberedList   = Namespace + ".NumberedList"
	TypeChecklist      = Namespace + ".Checklist"
	TypeRankedItem     = Namespace + ".RankedItem"
	TypeProConItem     = Namespace + ".ProConItem"
	TypeDefinitionList = Namespace + ".DefinitionList"

	// Resources
	TypeLinkCard     = Namespace + ".LinkCard"
	TypeResourceList = Namespace + ".ResourceList"
	TypeGitHubRepo   = Namespace + ".GitHubRepo"
	TypeCodeSnippet  = Namespace + ".CodeSnippet"
	TypeDownloadCard = Namespace + ".DownloadCard"

	// People
	TypePersonCard  = Namespace + ".PersonCard"
	TypeQuoteBlock  = Namespace + ".QuoteBlock"
	TypeTestimonial = Namespace + ".Testimonial"
	TypeTeamGrid    = Namespace + ".TeamGrid"

	// Summary
	TypeSummaryCard  = Namespace + ".SummaryCard"
	TypeKeyTakeaways = Namespace + ".KeyTakeaways"
	TypeTLDR         = Namespace + ".TLDR"
	TypeCallout      = Namespace + ".Callout"
	TypeFAQItem      = Namespace + ".FAQItem"

	// Comparison
	TypeComparisonTable = Namespace + ".ComparisonTable"
	TypeVersusCard      = Namespace + ".VersusCard"

	// Instructional
	TypeStepGuide   = Namespace + ".StepGuide"
	TypeCodeExample = Namespace + ".CodeExample"
	TypeTerminal    = Namespace + ".Terminal"

	// Layout containers
	TypeSection   = Namespace + ".Section"
	TypeGrid      = Namespace + ".Grid"
	TypeColumns   = Namespace + ".Columns"
	TypeTabs      = Namespace + ".Tabs"
	TypeAccordion = Namespace + ".Accordion"
	TypeCarousel  = Namespace + ".Carousel"
	TypeSidebar   = Namespace + ".Sidebar"

	// Tags
	TypeTagList = Namespace + ".TagList"
	TypeBadge   = Namespace + ".Badge"
)

// Category groups related component types for prompt assembly and reporting.
type Category string

const (
	CategoryNews          Category = "news"
	CategoryMedia         Category = "media"
	CategoryData          Category = "data"
	CategoryLists         Category = "lists"
	CategoryResources     Category = "resources"
	CategoryPeople        Category = "people"
	CategorySummary       Category = "summary"
	CategoryComparison    Category = "comparison"
	CategoryInstructional Category = "instructional"
	CategoryLayout        Category = "layout"
	CategoryTags          Category = "tags"
)

// typeInfo is the registry record for one component type.
type typeInfo struct {
	category  Category
	required  []string
	container bool
	// multiSlot containers address children by slot key instead of a flat list.
	multiSlot bool
}

var registry = map[string]typeInfo{
	TypeHeadline:     {category: CategoryNews, required: []string{"title"}},
	TypeNewsArticle:  {category: CategoryNews, required: []string{"title", "body"}},
	TypeBreakingNews: {category: CategoryNews, required: []string{"title"}},
	TypeTimeline:     {category: CategoryNews, required: []string{"events"}},
	TypeLiveUpdate:   {category: CategoryNews, required: []string{"text"}},

	TypeVideoEmbed:   {category: CategoryMedia, required: []string{"url"}},
	TypeYouTubeEmbed: {category: CategoryMedia, required: []string{"video_id"}},
	TypeImageGallery: {category: CategoryMedia, required: []string{"images"}},
	TypeHeroImage:    {category: CategoryMedia, required: []string{"url"}},
	TypeAudioClip:    {category: CategoryMedia, required: []string{"url"}},

	TypeStatCard:        {category: CategoryData, required: []string{"value"}},
	TypeMiniChart:       {category: CategoryData, required: []string{"points"}},
	TypeComparisonChart: {category: CategoryData, required: []string{"items"}},
	TypeProgressBar:     {category: CategoryData, required: []string{"label", "percent"}},
	TypeGauge:           {category: CategoryData, required: []string{"label", "value"}},
	TypeDataTable:       {category: CategoryData, required: []string{"headers", "rows"}},
	TypeTrendIndicator:  {category: CategoryData, required: []string{"label", "direction"}},

	TypeBulletList:     {category: CategoryLists, required: []string{"items"}},
	TypeNumberedList:   {category: CategoryLists, required: []string{"items"}},
	TypeChecklist:      {category: CategoryLists, required: []string{"items"}},
	TypeRankedItem:     {category: CategoryLists, required: []string{"rank", "title"}},
	TypeProConItem:     {category: CategoryLists, required: []string{"kind", "label"}},
	TypeDefinitionList: {category: CategoryLists, required: []string{"entries"}},

	TypeLinkCard:     {category: CategoryResources, required: []string{"url", "title"}},
	TypeResourceList: {category: CategoryResources, required: []string{"links"}},
	TypeGitHubRepo:   {category: CategoryResources, required: []string{"url"}},
	TypeCodeSnippet:  {category: CategoryResources, required: []string{"code"}},
	TypeDownloadCard: {category: CategoryResources, required: []string{"url", "title"}},

	TypePersonCard:  {category: CategoryPeople, required: []string{"name"}},
	TypeQuoteBlock:  {category: CategoryPeople, required: []string{"text"}},
	TypeTestimonial: {category: CategoryPeople, required: []string{"text", "author"}},
	TypeTeamGrid:    {category: CategoryPeople, required: []string{"members"}},

	TypeSummaryCard:  {category: CategorySummary, required: []string{"text"}},
	TypeKeyTakeaways: {category: CategorySummary, required: []string{"points"}},
	TypeTLDR:         {category: CategorySummary, required: []string{"text"}},
	TypeCallout:      {category: CategorySummary, required: []string{"text"}},
	TypeFAQItem:      {category: CategorySummary, required: []string{"question", "answer"}},

	TypeComparisonTable: {category: CategoryComparison, required: []string{"columns", "rows"}},
	TypeVersusCard:      {category: CategoryComparison, required: []string{"left", "right"}},

	TypeStepGuide:   {category: CategoryInstructional, required: []string{"steps"}},
	TypeCodeExample: {category: CategoryInstructional, required: []string{"code"}},
	TypeTerminal:    {category: CategoryInstructional, required: []string{"command"}},

	TypeSection:   {category: CategoryLayout, required: []string{"title"}, container: true},
	TypeGrid:      {category: CategoryLayout, required: []string{"columns"}, container: true},
	TypeColumns:   {category: CategoryLayout, container: true},
	TypeTabs:      {category: CategoryLayout, required: []string{"labels"}, container: true, multiSlot: true},
	TypeAccordion: {category: CategoryLayout, required: []string{"labels"}, container: true, multiSlot: true},
	TypeCarousel:  {category: CategoryLayout, container: true},
	TypeSidebar:   {category: CategoryLayout, container: true},

	TypeTagList: {category: CategoryTags, required: []string{"tags"}},
	TypeBadge:   {category: CategoryTags, required: []string{"label"}},
}

// IsValidType reports whether name is a registered component type.
func IsValidType(name string) bool {
	_, ok := registry[name]
	return ok
}

// RequiredProps returns the shallow required-field subset for a type, or nil
// for unknown types. Presence-only: value typing is the generators' job.
func RequiredProps(name string) []string {
	info, ok := registry[name]
	if !ok {
		return nil
	}
	out := make([]string, len(info.required))
	copy(out, info.required)
	return out
}

// IsContainerType reports whether the type always declares children.
func IsContainerType(name string) bool {
	return registry[name].container
}

// IsMultiSlotType reports whether the container addresses children by slot.
func IsMultiSlotType(name string) bool {
	return registry[name].multiSlot
}

// CategoryOf returns the category of a registered type, or "" if unknown.
func CategoryOf(name string) Category {
	return registry[name].category
}

// AllTypes returns every registered type name in deterministic order.
func AllTypes() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// TypesInCategory returns the registered type names of one category, sorted.
func TypesInCategory(cat Category) []string {
	var out []string
	for name, info := range registry {
		if info.category == cat {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// LocalName strips the namespace qualifier: "a2ui.StatCard" -> "StatCard".
func LocalName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
