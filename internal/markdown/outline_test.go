package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `# Go 1.24 Release Notes

Intro paragraph before any section.

## Performance

Allocations dropped by 30% in the hot path.

## Tooling

See the [announcement](https://blog.golang.org/go1.24) and the
[repo](https://github.com/golang/go) for details.

` + "```go\nfunc main() {}\n```" + `

| Metric | Before | After |
|--------|--------|-------|
| Allocs | 100    | 70    |
| ns/op  | 250    | 180   |

Watch the [talk](https://www.youtube.com/watch?v=dQw4w9WgXcQ).
`

func TestParseOutline(t *testing.T) {
	o := Parse([]byte(sampleDoc))

	assert.Equal(t, "Go 1.24 Release Notes", o.Title)

	require.NotEmpty(t, o.Sections)
	joined := strings.Join(o.Sections, "\n---\n")
	assert.Contains(t, joined, "Performance")
	assert.Contains(t, joined, "Allocations dropped")

	require.Len(t, o.CodeBlocks, 1)
	assert.Equal(t, "go", o.CodeBlocks[0].Language)
	assert.Contains(t, o.CodeBlocks[0].Code, "func main()")

	require.Len(t, o.Tables, 1)
	assert.Equal(t, []string{"Metric", "Before", "After"}, o.Tables[0].Headers)
	require.Len(t, o.Tables[0].Rows, 2)
	assert.Equal(t, "Allocs", o.Tables[0].Rows[0][0])
}

func TestParseLinkClassification(t *testing.T) {
	o := Parse([]byte(sampleDoc))

	assert.Len(t, o.Links, 3)
	require.Len(t, o.YouTubeLinks, 1)
	assert.Contains(t, o.YouTubeLinks[0], "youtube.com")
	require.Len(t, o.GitHubLinks, 1)
	assert.Contains(t, o.GitHubLinks[0], "github.com/golang/go")
}

func TestParseLeadingProseBecomesSection(t *testing.T) {
	o := Parse([]byte("Just a paragraph, no headings.\n"))
	assert.Empty(t, o.Title)
	require.Len(t, o.Sections, 1)
	assert.Contains(t, o.Sections[0], "Just a paragraph")
}

func TestParseNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t\n",
		"]]][[[ not markdown ### ``` |",
		strings.Repeat("#", 500),
	}
	for _, in := range inputs {
		o := Parse([]byte(in))
		require.NotNil(t, o)
	}
}

func TestParseShortYouTubeLink(t *testing.T) {
	o := Parse([]byte("See <https://youtu.be/abc123>.\n"))
	require.Len(t, o.YouTubeLinks, 1)
}
