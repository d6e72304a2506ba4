package normalize

import (
	"strings"

	"dashgen/internal/factory"
	"dashgen/internal/schema"
)

// mapper translates a raw props bag into one typed generator call. The
// registry below keys mappers by canonical type name; canonicalization has
// already happened by the time a mapper runs, so there is exactly one per
// registered type and no string-comparison dispatch chains.
type mapper func(f *factory.Factory, p bag) (*schema.Component, error)

var mappers = map[string]mapper{
	// News
	schema.TypeHeadline: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Headline(factory.HeadlineInput{
			Title:    p.text("title", "text", "headline"),
			Subtitle: p.text("subtitle", "subhead", "deck"),
			Kicker:   p.text("kicker", "eyebrow", "category"),
		})
	},
	schema.TypeNewsArticle: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.NewsArticle(factory.NewsArticleInput{
			Title:       p.text("title", "headline"),
			Body:        p.text("body", "content", "text"),
			Source:      p.text("source", "publisher"),
			PublishedAt: p.text("published_at", "date", "published"),
			URL:         p.text("url", "link"),
		})
	},
	schema.TypeBreakingNews: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.BreakingNews(factory.BreakingNewsInput{
			Title:     p.text("title", "headline", "text"),
			Summary:   p.text("summary", "description"),
			Timestamp: p.text("timestamp", "time", "date"),
		})
	},
	schema.TypeTimeline: func(f *factory.Factory, p bag) (*schema.Component, error) {
		var events []factory.TimelineEvent
		for _, item := range p.list("events", "items", "entries") {
			m, ok := item.(map[string]any)
			if !ok {
				if s := Text(item); s != "" {
					events = append(events, factory.TimelineEvent{Title: s})
				}
				continue
			}
			ib := bag(m)
			events = append(events, factory.TimelineEvent{
				Date:        ib.text("date", "time", "when"),
				Title:       ib.text("title", "label", "event"),
				Description: ib.text("description", "detail", "text"),
			})
		}
		return f.Timeline(factory.TimelineInput{
			Title:  p.text("title", "label"),
			Events: events,
		})
	},
	schema.TypeLiveUpdate: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.LiveUpdate(factory.LiveUpdateInput{
			Text:      p.text("text", "content", "update"),
			Timestamp: p.text("timestamp", "time"),
			Author:    p.text("author", "by"),
		})
	},

	// Media
	schema.TypeVideoEmbed: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.VideoEmbed(factory.VideoEmbedInput{
			URL:     p.text("url", "src", "video_url"),
			Title:   p.text("title", "label"),
			Caption: p.text("caption", "description"),
		})
	},
	schema.TypeYouTubeEmbed: func(f *factory.Factory, p bag) (*schema.Component, error) {
		id := p.text("video_id", "videoId", "id")
		if id == "" {
			// A full watch URL is the other common shape.
			id = youtubeID(p.text("url", "link"))
		}
		return f.YouTubeEmbed(factory.YouTubeEmbedInput{
			VideoID:      id,
			Title:        p.text("title", "label"),
			StartSeconds: p.intPtr("start_seconds", "start", "t"),
		})
	},
	schema.TypeImageGallery: func(f *factory.Factory, p bag) (*schema.Component, error) {
		var images []factory.GalleryImage
		for _, item := range p.list("images", "items", "photos") {
			switch t := item.(type) {
			case string:
				images = append(images, factory.GalleryImage{URL: t})
			case map[string]any:
				ib := bag(t)
				images = append(images, factory.GalleryImage{
					URL:     ib.text("url", "src"),
					Alt:     ib.text("alt", "alt_text"),
					Caption: ib.text("caption", "description"),
				})
			}
		}
		return f.ImageGallery(factory.ImageGalleryInput{
			Title:  p.text("title", "label"),
			Images: images,
		})
	},
	schema.TypeHeroImage: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.HeroImage(factory.HeroImageInput{
			URL:     p.text("url", "src", "image_url"),
			Alt:     p.text("alt", "alt_text"),
			Caption: p.text("caption", "description"),
			Credit:  p.text("credit", "attribution"),
		})
	},
	schema.TypeAudioClip: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.AudioClip(factory.AudioClipInput{
			URL:             p.text("url", "src", "audio_url"),
			Title:           p.text("title", "label"),
			DurationSeconds: p.intPtr("duration_seconds", "duration"),
		})
	},

	// Data / stats
	schema.TypeStatCard: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.StatCard(factory.StatCardInput{
			Label:         p.text("label", "title", "metric", "name"),
			Value:         p.num(0, "value", "number", "amount", "count"),
			Unit:          p.text("unit", "suffix"),
			ChangeType:    changeType(p.text("change_type", "trend", "change", "direction")),
			ChangePercent: p.numPtr("change_percent", "change_pct", "delta"),
			Description:   p.text("description", "context", "note"),
		})
	},
	schema.TypeMiniChart: func(f *factory.Factory, p bag) (*schema.Component, error) {
		var points []float64
		for _, v := range p.list("points", "data", "values", "series") {
			if pt := NumberPtr(v); pt != nil {
				points = append(points, *pt)
			}
		}
		return f.MiniChart(factory.MiniChartInput{
			Label:  p.text("label", "title"),
			Points: points,
			Kind:   strings.ToLower(p.text("kind", "chart_type", "style")),
		})
	},
	schema.TypeComparisonChart: func(f *factory.Factory, p bag) (*schema.Component, error) {
		var items []factory.ChartItem
		for _, item := range p.list("items", "data", "bars", "entries") {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			ib := bag(m)
			items = append(items, factory.ChartItem{
				Label: ib.text("label", "name", "title"),
				Value: ib.num(0, "value", "amount", "score"),
			})
		}
		return f.ComparisonChart(factory.ComparisonChartInput{
			Title: p.text("title", "label"),
			Items: items,
			Unit:  p.text("unit", "suffix"),
		})
	},
	schema.TypeProgressBar: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.ProgressBar(factory.ProgressBarInput{
			Label:   p.text("label", "title", "name"),
			Percent: p.num(0, "percent", "progress", "value"),
		})
	},
	schema.TypeGauge: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Gauge(factory.GaugeInput{
			Label: p.text("label", "title", "name"),
			Value: p.num(0, "value", "amount"),
			Max:   p.numPtr("max", "maximum", "limit"),
			Unit:  p.text("unit", "suffix"),
		})
	},
	schema.TypeDataTable: func(f *factory.Factory, p bag) (*schema.Component, error) {
		headers := p.strlist("headers", "columns")
		var rows [][]string
		for _, row := range p.list("rows", "data") {
			rows = append(rows, TextList(row))
		}
		return f.DataTable(factory.DataTableInput{
			Title:   p.text("title", "label"),
			Headers: headers,
			Rows:    rows,
		})
	},
	schema.TypeTrendIndicator: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.TrendIndicator(factory.TrendIndicatorInput{
			Label:     p.text("label", "title", "metric"),
			Direction: trendDirection(p.text("direction", "trend", "movement")),
			Delta:     p.numPtr("delta", "change", "change_percent"),
		})
	},

	// Lists
	schema.TypeBulletList: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.BulletList(factory.BulletListInput{
			Title: p.text("title", "label", "heading"),
			Items: p.strlist("items", "points", "entries"),
		})
	},
	schema.TypeNumberedList: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.NumberedList(factory.NumberedListInput{
			Title: p.text("title", "label", "heading"),
			Items: p.strlist("items", "points", "entries"),
		})
	},
	schema.TypeChecklist: func(f *factory.Factory, p bag) (*schema.Component, error) {
		var items []factory.ChecklistEntry
		for _, item := range p.list("items", "tasks", "entries") {
			switch t := item.(type) {
			case string:
				items = append(items, factory.ChecklistEntry{Label: t})
			case map[string]any:
				ib := bag(t)
				items = append(items, factory.ChecklistEntry{
					Label: ib.text("label", "text", "task"),
					Done:  boolFrom(ib, "done", "checked", "complete"),
				})
			}
		}
		if items == nil {
			for _, s := range p.strlist("items", "tasks", "entries") {
				items = append(items, factory.ChecklistEntry{Label: s})
			}
		}
		return f.Checklist(factory.ChecklistInput{
			Title: p.text("title", "label"),
			Items: items,
		})
	},
	schema.TypeRankedItem: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.RankedItem(factory.RankedItemInput{
			Rank:        p.intval(0, "rank", "position", "place"),
			Title:       p.text("title", "label", "name"),
			Score:       p.numPtr("score", "rating", "points"),
			ScoreMax:    p.numPtr("score_max", "max_score", "out_of"),
			Description: p.text("description", "detail", "reason"),
		})
	},
	schema.TypeProConItem: func(f *factory.Factory, p bag) (*schema.Component, error) {
		kind := strings.ToLower(p.text("kind", "type", "side"))
		switch {
		case strings.HasPrefix(kind, "pro"):
			kind = factory.ProConPro
		case strings.HasPrefix(kind, "con"):
			kind = factory.ProConCon
		}
		return f.ProConItem(factory.ProConItemInput{
			Kind:   kind,
			Label:  p.text("label", "text", "title", "point"),
			Detail: p.text("detail", "description", "reason"),
		})
	},
	schema.TypeDefinitionList: func(f *factory.Factory, p bag) (*schema.Component, error) {
		var entries []factory.DefinitionEntry
		for _, item := range p.list("entries", "items", "terms") {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			ib := bag(m)
			entries = append(entries, factory.DefinitionEntry{
				Term:       ib.text("term", "word", "name"),
				Definition: ib.text("definition", "meaning", "description"),
			})
		}
		return f.DefinitionList(factory.DefinitionListInput{
			Title:   p.text("title", "label"),
			Entries: entries,
		})
	},

	// Resources
	schema.TypeLinkCard: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.LinkCard(factory.LinkCardInput{
			URL:         p.text("url", "link", "href"),
			Title:       p.text("title", "label", "name"),
			Description: p.text("description", "summary"),
		})
	},
	schema.TypeResourceList: func(f *factory.Factory, p bag) (*schema.Component, error) {
		var links []factory.ResourceLink
		for _, item := range p.list("links", "items", "resources") {
			switch t := item.(type) {
			case string:
				links = append(links, factory.ResourceLink{URL: t, Title: t})
			case map[string]any:
				ib := bag(t)
				url := ib.text("url", "link", "href")
				title := ib.text("title", "label", "name")
				if title == "" {
					title = url
				}
				links = append(links, factory.ResourceLink{URL: url, Title: title})
			}
		}
		return f.ResourceList(factory.ResourceListInput{
			Title: p.text("title", "label"),
			Links: links,
		})
	},
	schema.TypeGitHubRepo: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.GitHubRepo(factory.GitHubRepoInput{
			URL:         p.text("url", "link", "repo_url"),
			Name:        p.text("name", "repo", "title"),
			Description: p.text("description", "summary"),
			Stars:       p.intPtr("stars", "stargazers"),
			Language:    p.text("language", "lang"),
		})
	},
	schema.TypeCodeSnippet: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.CodeSnippet(factory.CodeSnippetInput{
			Code:     p.text("code", "content", "snippet"),
			Language: strings.ToLower(p.text("language", "lang")),
			Filename: p.text("filename", "file", "path"),
		})
	},
	schema.TypeDownloadCard: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.DownloadCard(factory.DownloadCardInput{
			URL:       p.text("url", "link", "href"),
			Title:     p.text("title", "label", "name"),
			SizeLabel: p.text("size", "file_size"),
			Format:    p.text("format", "file_type", "extension"),
		})
	},

	// People
	schema.TypePersonCard: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.PersonCard(factory.PersonCardInput{
			Name:      p.text("name", "title"),
			Role:      p.text("role", "position", "job_title"),
			AvatarURL: p.text("avatar_url", "avatar", "image_url"),
			Bio:       p.text("bio", "description", "about"),
		})
	},
	schema.TypeQuoteBlock: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.QuoteBlock(factory.QuoteBlockInput{
			Text:        p.text("text", "quote", "content"),
			Attribution: p.text("attribution", "author", "source"),
		})
	},
	schema.TypeTestimonial: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Testimonial(factory.TestimonialInput{
			Text:   p.text("text", "quote", "content"),
			Author: p.text("author", "name", "by"),
			Role:   p.text("role", "position", "company"),
		})
	},
	schema.TypeTeamGrid: func(f *factory.Factory, p bag) (*schema.Component, error) {
		var members []factory.TeamMember
		for _, item := range p.list("members", "people", "team") {
			switch t := item.(type) {
			case string:
				members = append(members, factory.TeamMember{Name: t})
			case map[string]any:
				ib := bag(t)
				members = append(members, factory.TeamMember{
					Name: ib.text("name", "title"),
					Role: ib.text("role", "position"),
				})
			}
		}
		return f.TeamGrid(factory.TeamGridInput{
			Title:   p.text("title", "label"),
			Members: members,
		})
	},

	// Summary
	schema.TypeSummaryCard: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.SummaryCard(factory.SummaryCardInput{
			Title: p.text("title", "label", "heading"),
			Text:  p.text("text", "summary", "content", "body"),
		})
	},
	schema.TypeKeyTakeaways: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.KeyTakeaways(factory.KeyTakeawaysInput{
			Points: p.strlist("points", "takeaways", "items"),
		})
	},
	schema.TypeTLDR: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.TLDR(factory.TLDRInput{
			Text: p.text("text", "summary", "content"),
		})
	},
	schema.TypeCallout: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Callout(factory.CalloutInput{
			Kind:  calloutKind(p.text("kind", "type", "variant", "severity")),
			Title: p.text("title", "label", "heading"),
			Text:  p.text("text", "content", "message", "body"),
		})
	},
	schema.TypeFAQItem: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.FAQItem(factory.FAQItemInput{
			Question: p.text("question", "q", "title"),
			Answer:   p.text("answer", "a", "text"),
		})
	},

	// Comparison
	schema.TypeComparisonTable: func(f *factory.Factory, p bag) (*schema.Component, error) {
		columns := p.strlist("columns", "headers", "options")
		var rows []factory.ComparisonRow
		for _, item := range p.list("rows", "criteria", "features") {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			ib := bag(m)
			rows = append(rows, factory.ComparisonRow{
				Label: ib.text("label", "name", "criterion", "feature"),
				Cells: ib.strlist("cells", "values"),
			})
		}
		return f.ComparisonTable(factory.ComparisonTableInput{
			Title:   p.text("title", "label"),
			Columns: columns,
			Rows:    rows,
		})
	},
	schema.TypeVersusCard: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.VersusCard(factory.VersusCardInput{
			Left:    versusSide(p, "left", "a", "first"),
			Right:   versusSide(p, "right", "b", "second"),
			Verdict: p.text("verdict", "winner", "conclusion"),
		})
	},

	// Instructional
	schema.TypeStepGuide: func(f *factory.Factory, p bag) (*schema.Component, error) {
		var steps []factory.Step
		for _, item := range p.list("steps", "items", "instructions") {
			switch t := item.(type) {
			case string:
				steps = append(steps, factory.Step{Title: t})
			case map[string]any:
				ib := bag(t)
				steps = append(steps, factory.Step{
					Title:  ib.text("title", "label", "step"),
					Detail: ib.text("detail", "description", "text"),
				})
			}
		}
		return f.StepGuide(factory.StepGuideInput{
			Title: p.text("title", "label"),
			Steps: steps,
		})
	},
	schema.TypeCodeExample: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.CodeExample(factory.CodeExampleInput{
			Title:       p.text("title", "label"),
			Code:        p.text("code", "content", "snippet"),
			Language:    strings.ToLower(p.text("language", "lang")),
			Explanation: p.text("explanation", "description", "notes"),
		})
	},
	schema.TypeTerminal: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Terminal(factory.TerminalInput{
			Command: p.text("command", "cmd", "input"),
			Output:  p.text("output", "result", "stdout"),
		})
	},

	// Layout
	schema.TypeSection: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Section(factory.SectionInput{
			Title:    p.text("title", "label", "heading"),
			Children: p.strlist("children", "child_ids", "components"),
		})
	},
	schema.TypeGrid: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Grid(factory.GridInput{
			Columns:  p.intval(0, "columns", "cols"),
			Gap:      p.text("gap", "spacing"),
			Children: p.strlist("children", "child_ids", "components"),
		})
	},
	schema.TypeColumns: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Columns(factory.ColumnsInput{
			Widths:   p.strlist("widths", "column_widths"),
			Children: p.strlist("children", "child_ids", "components"),
		})
	},
	schema.TypeTabs: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Tabs(factory.TabsInput{
			Labels: p.strlist("labels", "tabs", "titles"),
			Slots:  slotRefs(p),
		})
	},
	schema.TypeAccordion: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Accordion(factory.AccordionInput{
			Labels: p.strlist("labels", "sections", "titles"),
			Slots:  slotRefs(p),
		})
	},
	schema.TypeCarousel: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Carousel(factory.CarouselInput{
			Title:    p.text("title", "label"),
			Children: p.strlist("children", "child_ids", "slides"),
		})
	},
	schema.TypeSidebar: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Sidebar(factory.SidebarInput{
			Position: strings.ToLower(p.text("position", "side")),
			Children: p.strlist("children", "child_ids", "components"),
		})
	},

	// Tags
	schema.TypeTagList: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.TagList(factory.TagListInput{
			Tags: p.strlist("tags", "items", "labels"),
		})
	},
	schema.TypeBadge: func(f *factory.Factory, p bag) (*schema.Component, error) {
		return f.Badge(factory.BadgeInput{
			Label:   p.text("label", "text", "title"),
			Variant: strings.ToLower(p.text("variant", "style", "kind")),
		})
	},
}

// changeType maps trend vocabulary onto the StatCard change enum.
func changeType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up", "increase", "increasing", "growth", "positive", "gain":
		return factory.ChangePositive
	case "down", "decrease", "decreasing", "decline", "negative", "loss":
		return factory.ChangeNegative
	case "stable", "flat", "steady", "neutral", "unchanged":
		return factory.ChangeNeutral
	}
	return ""
}

// trendDirection maps trend vocabulary onto the TrendIndicator enum.
func trendDirection(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up", "increase", "increasing", "rising", "positive":
		return "up"
	case "down", "decrease", "decreasing", "falling", "negative":
		return "down"
	case "stable", "flat", "steady", "neutral", "unchanged":
		return "stable"
	}
	return raw
}

// calloutKind maps severity vocabulary onto the Callout enum.
func calloutKind(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "info", "information", "note", "tip":
		return factory.CalloutInfo
	case "warning", "warn", "caution":
		return factory.CalloutWarning
	case "success", "ok", "positive":
		return factory.CalloutSuccess
	case "error", "danger", "critical":
		return factory.CalloutError
	}
	return ""
}

func boolFrom(p bag, keys ...string) bool {
	if v, ok := p.first(keys...); ok {
		return Bool(v)
	}
	return false
}

func versusSide(p bag, keys ...string) factory.VersusSide {
	if side, ok := p.object(keys...); ok {
		return factory.VersusSide{
			Name:   side.text("name", "title", "label"),
			Points: side.strlist("points", "pros", "features"),
		}
	}
	// Bare string form: just a name.
	return factory.VersusSide{Name: p.text(keys...)}
}

// slotRefs reads a multi-slot children object ({"0": [...], "1": [...]}).
func slotRefs(p bag) map[string][]string {
	obj, ok := p.object("slots", "panels", "children")
	if !ok {
		return nil
	}
	out := make(map[string][]string, len(obj))
	for key, v := range obj {
		if ids := TextList(v); len(ids) > 0 {
			out[key] = ids
		}
	}
	return out
}

// youtubeID extracts the video ID from the usual URL shapes.
func youtubeID(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	for _, marker := range []string{"v=", "youtu.be/", "embed/", "shorts/"} {
		if i := strings.Index(rawURL, marker); i >= 0 {
			id := rawURL[i+len(marker):]
			if j := strings.IndexAny(id, "?&#/"); j >= 0 {
				id = id[:j]
			}
			return id
		}
	}
	return ""
}
