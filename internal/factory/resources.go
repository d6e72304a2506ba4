package factory

import (
	"net/url"
	"strings"

	"dashgen/internal/schema"
)

// Resource and people generators.

type LinkCardInput struct {
	URL         string
	Title       string
	Description string
}

func (f *Factory) LinkCard(in LinkCardInput) (*schema.Component, error) {
	typ := schema.TypeLinkCard
	if err := requireURL(typ, "url", in.URL); err != nil {
		return nil, err
	}
	if err := requireText(typ, "title", in.Title); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("url", in.URL).
		Set("title", in.Title).
		SetIf(in.Description != "", "description", in.Description)
	if host := hostOf(in.URL); host != "" {
		props.Set("domain", host)
	}
	return f.Build(typ, props)
}

type ResourceLink struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type ResourceListInput struct {
	Title string
	Links []ResourceLink
}

func (f *Factory) ResourceList(in ResourceListInput) (*schema.Component, error) {
	typ := schema.TypeResourceList
	if err := requireCount(typ, "links", len(in.Links), 1, 20); err != nil {
		return nil, err
	}
	for i, l := range in.Links {
		if err := requireURL(typ, "links", l.URL); err != nil {
			return nil, schema.Validationf(typ, "links", "link %d: %v", i, err)
		}
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("links", in.Links)
	return f.Build(typ, props)
}

type GitHubRepoInput struct {
	URL         string
	Name        string
	Description string
	Stars       *int
	Language    string
}

func (f *Factory) GitHubRepo(in GitHubRepoInput) (*schema.Component, error) {
	typ := schema.TypeGitHubRepo
	if err := requireURL(typ, "url", in.URL); err != nil {
		return nil, err
	}
	if host := hostOf(in.URL); host != "github.com" && !strings.HasSuffix(host, ".github.com") {
		return nil, schema.Validationf(typ, "url", "host %q is not github.com", host)
	}
	if in.Stars != nil && *in.Stars < 0 {
		return nil, schema.Validationf(typ, "stars", "must be >= 0, got %d", *in.Stars)
	}
	name := in.Name
	if name == "" {
		// owner/repo from the path when the spec omits a display name.
		if u, err := url.Parse(in.URL); err == nil {
			name = strings.Trim(u.Path, "/")
		}
	}
	props := schema.NewProps().
		Set("url", in.URL).
		SetIf(name != "", "name", name).
		SetIf(in.Description != "", "description", in.Description)
	if in.Stars != nil {
		props.Set("stars", *in.Stars)
	}
	props.SetIf(in.Language != "", "language", in.Language)
	return f.Build(typ, props)
}

type CodeSnippetInput struct {
	Code     string
	Language string
	Filename string
}

func (f *Factory) CodeSnippet(in CodeSnippetInput) (*schema.Component, error) {
	typ := schema.TypeCodeSnippet
	if err := requireText(typ, "code", in.Code); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("code", in.Code).
		SetIf(in.Language != "", "language", in.Language).
		SetIf(in.Filename != "", "filename", in.Filename)
	return f.Build(typ, props)
}

type DownloadCardInput struct {
	URL       string
	Title     string
	SizeLabel string
	Format    string
}

func (f *Factory) DownloadCard(in DownloadCardInput) (*schema.Component, error) {
	typ := schema.TypeDownloadCard
	if err := requireURL(typ, "url", in.URL); err != nil {
		return nil, err
	}
	if err := requireText(typ, "title", in.Title); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("url", in.URL).
		Set("title", in.Title).
		SetIf(in.SizeLabel != "", "size", in.SizeLabel).
		SetIf(in.Format != "", "format", in.Format)
	return f.Build(typ, props)
}

type PersonCardInput struct {
	Name      string
	Role      string
	AvatarURL string
	Bio       string
}

func (f *Factory) PersonCard(in PersonCardInput) (*schema.Component, error) {
	typ := schema.TypePersonCard
	if err := requireText(typ, "name", in.Name); err != nil {
		return nil, err
	}
	if in.AvatarURL != "" {
		if err := requireURL(typ, "avatar_url", in.AvatarURL); err != nil {
			return nil, err
		}
	}
	props := schema.NewProps().
		Set("name", in.Name).
		SetIf(in.Role != "", "role", in.Role).
		SetIf(in.AvatarURL != "", "avatar_url", in.AvatarURL).
		SetIf(in.Bio != "", "bio", in.Bio)
	return f.Build(typ, props)
}

type QuoteBlockInput struct {
	Text        string
	Attribution string
}

func (f *Factory) QuoteBlock(in QuoteBlockInput) (*schema.Component, error) {
	if err := requireText(schema.TypeQuoteBlock, "text", in.Text); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("text", in.Text).
		SetIf(in.Attribution != "", "attribution", in.Attribution)
	return f.Build(schema.TypeQuoteBlock, props)
}

type TestimonialInput struct {
	Text   string
	Author string
	Role   string
}

func (f *Factory) Testimonial(in TestimonialInput) (*schema.Component, error) {
	typ := schema.TypeTestimonial
	if err := requireText(typ, "text", in.Text); err != nil {
		return nil, err
	}
	if err := requireText(typ, "author", in.Author); err != nil {
		return nil, err
	}
	props := schema.NewProps().
		Set("text", in.Text).
		Set("author", in.Author).
		SetIf(in.Role != "", "role", in.Role)
	return f.Build(typ, props)
}

type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

type TeamGridInput struct {
	Title   string
	Members []TeamMember
}

func (f *Factory) TeamGrid(in TeamGridInput) (*schema.Component, error) {
	typ := schema.TypeTeamGrid
	if err := requireCount(typ, "members", len(in.Members), 1, 12); err != nil {
		return nil, err
	}
	for i, m := range in.Members {
		if m.Name == "" {
			return nil, schema.Validationf(typ, "members", "member %d has no name", i)
		}
	}
	props := schema.NewProps().
		SetIf(in.Title != "", "title", in.Title).
		Set("members", in.Members)
	return f.Build(typ, props)
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
