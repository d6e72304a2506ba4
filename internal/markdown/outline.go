// Package markdown extracts a structured outline from raw markdown text.
// The pipeline consumes the outline for prompt assembly and heuristic
// classification; parsing problems degrade to empty fields, never errors.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// CodeBlock is one fenced code block.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Table is one GFM table.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Outline is the structured view of one markdown document.
type Outline struct {
	Title        string      `json:"title"`
	Sections     []string    `json:"sections"`
	CodeBlocks   []CodeBlock `json:"code_blocks"`
	Tables       []Table     `json:"tables"`
	Links        []string    `json:"links"`
	YouTubeLinks []string    `json:"youtube_links"`
	GitHubLinks  []string    `json:"github_links"`
}

var parser = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse extracts an outline from source. It never fails: unparseable regions
// simply contribute nothing.
func Parse(source []byte) *Outline {
	outline := &Outline{}
	root := parser.Parser().Parse(text.NewReader(source))

	var section strings.Builder
	flushSection := func() {
		if s := strings.TrimSpace(section.String()); s != "" {
			outline.Sections = append(outline.Sections, s)
		}
		section.Reset()
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			title := textOf(node, source)
			if node.Level == 1 && outline.Title == "" {
				outline.Title = title
				return ast.WalkSkipChildren, nil
			}
			flushSection()
			section.WriteString(title)
			section.WriteString("\n")
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph:
			if section.Len() > 0 || outline.Title != "" {
				section.WriteString(textOf(node, source))
				section.WriteString("\n")
			} else {
				// Leading prose before any heading is its own section.
				outline.Sections = append(outline.Sections, textOf(node, source))
			}

		case *ast.FencedCodeBlock:
			var code strings.Builder
			for i := 0; i < node.Lines().Len(); i++ {
				seg := node.Lines().At(i)
				code.Write(seg.Value(source))
			}
			outline.CodeBlocks = append(outline.CodeBlocks, CodeBlock{
				Language: string(node.Language(source)),
				Code:     code.String(),
			})
			return ast.WalkSkipChildren, nil

		case *east.Table:
			outline.Tables = append(outline.Tables, parseTable(node, source))
			return ast.WalkSkipChildren, nil

		case *ast.Link:
			outline.addLink(string(node.Destination))

		case *ast.AutoLink:
			outline.addLink(string(node.URL(source)))
		}
		return ast.WalkContinue, nil
	})

	flushSection()
	return outline
}

func (o *Outline) addLink(url string) {
	url = strings.TrimSpace(url)
	if url == "" || !strings.HasPrefix(url, "http") {
		return
	}
	o.Links = append(o.Links, url)
	switch {
	case strings.Contains(url, "youtube.com/") || strings.Contains(url, "youtu.be/"):
		o.YouTubeLinks = append(o.YouTubeLinks, url)
	case strings.Contains(url, "github.com/"):
		o.GitHubLinks = append(o.GitHubLinks, url)
	}
}

func parseTable(table *east.Table, source []byte) Table {
	var out Table
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, textOf(cell, source))
		}
		switch row.(type) {
		case *east.TableHeader:
			out.Headers = cells
		case *east.TableRow:
			out.Rows = append(out.Rows, cells)
		}
	}
	return out
}

// textOf collects the plain text content beneath n.
func textOf(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
