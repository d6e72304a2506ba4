package factory

import (
	"strings"

	"dashgen/internal/schema"
)

// News and media generators. Each validates its typed input, assembles props
// omitting unset optionals, and delegates to Build.

type HeadlineInput struct {
	Title    string
	Subtitle string
	Kicker   string
}

func (f *Factory) Headline(in HeadlineInput) (*schema.Component, error) {
	if err := requireText(schema.TypeHeadline, "title", in.Title); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("title", in.Title).
		SetIf(in.Subtitle != "", "subtitle", in.Subtitle).
		SetIf(in.Kicker != "", "kicker", in.Kicker)
	return f.Build(schema.TypeHeadline, props)
}

type NewsArticleInput struct {
	Title       string
	Body        string
	Source      string
	PublishedAt string
	URL         string
}

func (f *Factory) NewsArticle(in NewsArticleInput) (*schema.Component, error) {
	typ := schema.TypeNewsArticle
	if err := requireText(typ, "title", in.Title); err != nil {
		return nil, err
	}
	if err := requireText(typ, "body", in.Body); err != nil {
		return nil, err
	}
	if in.URL != "" {
		if err := requireURL(typ, "url", in.URL); err != nil {
			return nil, err
		}
	}
	props := schema.NewProps().
		Set("title", in.Title).
		Set("body", in.Body).
		SetIf(in.Source != "", "source", in.Source).
		SetIf(in.PublishedAt != "", "published_at", in.PublishedAt).
		SetIf(in.URL != "", "url", in.URL)
	return f.Build(typ, props)
}

type BreakingNewsInput struct {
	Title     string
	Summary   string
	Timestamp string
}

func (f *Factory) BreakingNews(in BreakingNewsInput) (*schema.Component, error) {
	if err := requireText(schema.TypeBreakingNews, "title", in.Title); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("title", in.Title).
		SetIf(in.Summary != "", "summary", in.Summary).
		SetIf(in.Timestamp != "", "timestamp", in.Timestamp)
	return f.Build(schema.TypeBreakingNews, props)
}

type TimelineEvent struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type TimelineInput struct {
	Title  string
	Events []TimelineEvent
}

func (f *Factory) Timeline(in TimelineInput) (*schema.Component, error) {
	typ := schema.TypeTimeline
	if err := requireCount(typ, "events", len(in.Events), 2, 20); err != nil {
		return nil, err
	}
	for i, ev := range in.Events {
		if strings.TrimSpace(ev.Title) == "" {
			return nil, schema.Validationf(typ, "events", "event %d has no title", i)
		}
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("events", in.Events)
	return f.Build(typ, props)
}

type LiveUpdateInput struct {
	Text      string
	Timestamp string
	Author    string
}

func (f *Factory) LiveUpdate(in LiveUpdateInput) (*schema.Component, error) {
	if err := requireText(schema.TypeLiveUpdate, "text", in.Text); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("text", in.Text).
		SetIf(in.Timestamp != "", "timestamp", in.Timestamp).
		SetIf(in.Author != "", "author", in.Author)
	return f.Build(schema.TypeLiveUpdate, props)
}

type VideoEmbedInput struct {
	URL     string
	Title   string
	Caption string
}

func (f *Factory) VideoEmbed(in VideoEmbedInput) (*schema.Component, error) {
	typ := schema.TypeVideoEmbed
	if err := requireURL(typ, "url", in.URL); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("url", in.URL).
		SetIf(in.Title != "", "title", in.Title).
		SetIf(in.Caption != "", "caption", in.Caption)
	return f.Build(typ, props)
}

type YouTubeEmbedInput struct {
	VideoID      string
	Title        string
	StartSeconds *int
}

func (f *Factory) YouTubeEmbed(in YouTubeEmbedInput) (*schema.Component, error) {
	typ := schema.TypeYouTubeEmbed
	if err := requireText(typ, "video_id", in.VideoID); err != nil {
		return nil, err
	}
	if in.StartSeconds != nil && *in.StartSeconds < 0 {
		return nil, schema.Validationf(typ, "start_seconds", "must be >= 0, got %d", *in.StartSeconds)
	}
	props := schema.NewProps().
		Set("video_id", in.VideoID).
		SetIf(in.Title != "", "title", in.Title)
	if in.StartSeconds != nil {
		props.Set("start_seconds", *in.StartSeconds)
	}
	return f.Build(typ, props)
}

type GalleryImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type ImageGalleryInput struct {
	Title  string
	Images []GalleryImage
}

func (f *Factory) ImageGallery(in ImageGalleryInput) (*schema.Component, error) {
	typ := schema.TypeImageGallery
	if err := requireCount(typ, "images", len(in.Images), 1, 12); err != nil {
		return nil, err
	}
	for i, img := range in.Images {
		if err := requireURL(typ, "images", img.URL); err != nil {
			return nil, schema.Validationf(typ, "images", "image %d: %v", i, err)
		}
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("images", in.Images)
	return f.Build(typ, props)
}

type HeroImageInput struct {
	URL     string
	Alt     string
	Caption string
	Credit  string
}

func (f *Factory) HeroImage(in HeroImageInput) (*schema.Component, error) {
	typ := schema.TypeHeroImage
	if err := requireURL(typ, "url", in.URL); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("url", in.URL).
		SetIf(in.Alt != "", "alt", in.Alt).
		SetIf(in.Caption != "", "caption", in.Caption).
		SetIf(in.Credit != "", "credit", in.Credit)
	return f.Build(typ, props)
}

type AudioClipInput struct {
	URL             string
	Title           string
	DurationSeconds *int
}

func (f *Factory) AudioClip(in AudioClipInput) (*schema.Component, error) {
	typ := schema.TypeAudioClip
	if err := requireURL(typ, "url", in.URL); err != nil {
		return nil, err
	}
	if in.DurationSeconds != nil && *in.DurationSeconds <= 0 {
		return nil, schema.Validationf(typ, "duration_seconds", "must be positive, got %d", *in.DurationSeconds)
	}
	props := schema.NewProps().
		Set("url", in.URL).
		SetIf(in.Title != "", "title", in.Title)
	if in.DurationSeconds != nil {
		props.Set("duration_seconds", *in.DurationSeconds)
	}
	return f.Build(typ, props)
}
