package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/serp"
	"github.com/fwojciec/serp/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements serp.Converter at compile time.
var _ serp.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "paragraph",
			html: `<p>Hello, world!</p>`,
			want: []string{"Hello, world!"},
		},
		{
			name: "headings",
			html: `<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`,
			want: []string{"# Title", "## Subtitle", "### Section"},
		},
		{
			name: "links",
			html: `<p>Read <a href="https://go.dev/blog">the blog</a> first.</p>`,
			want: []string{"[the blog](https://go.dev/blog)"},
		},
		{
			name: "unordered list",
			html: `<ul><li>First</li><li>Second</li></ul>`,
			want: []string{"- First", "- Second"},
		},
		{
			name: "ordered list",
			html: `<ol><li>First</li><li>Second</li></ol>`,
			want: []string{"1. First", "2. Second"},
		},
		{
			name: "inline code",
			html: `<p>Run <code>go test ./...</code> before pushing.</p>`,
			want: []string{"`go test ./...`"},
		},
		{
			name: "fenced code with language",
			html: `<pre><code class="language-go">fmt.Println("hi")</code></pre>`,
			want: []string{"```go", `fmt.Println("hi")`},
		},
		{
			name: "emphasis",
			html: `<p><strong>Bold</strong> and <em>italic</em> text.</p>`,
			want: []string{"**Bold**", "*italic*"},
		},
		{
			name: "blockquote",
			html: `<blockquote><p>Simplicity is complicated.</p></blockquote>`,
			want: []string{"> Simplicity is complicated."},
		},
		{
			name: "strikethrough",
			html: `<p><del>deprecated</del> removed</p>`,
			want: []string{"~~deprecated~~"},
		},
		{
			name: "table",
			html: `<table>
<thead><tr><th>Version</th><th>Released</th></tr></thead>
<tbody><tr><td>1.29</td><td>August</td></tr></tbody>
</table>`,
			want: []string{"Version", "Released", "1.29", "|", "---"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := htmltomarkdown.NewConverter()
			md, err := conv.Convert(tt.html)

			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, md, want)
			}
		})
	}
}

func TestConverter_Convert_Output(t *testing.T) {
	t.Parallel()

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  \n")

		assert.Equal(t, serp.EINVALID, serp.ErrorCode(err))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("\n\n<p>Body</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Body", md)
	})

	t.Run("collapses runs of blank lines", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>One</p><div><div></div></div><br><br><p>Two</p>`)

		require.NoError(t, err)
		assert.NotContains(t, md, "\n\n\n")
		assert.Contains(t, md, "One")
		assert.Contains(t, md, "Two")
	})

	t.Run("resolves relative links against the domain", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://go.dev"))
		md, err := conv.Convert(`<p>See <a href="/doc/effective_go">Effective Go</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Effective Go](https://go.dev/doc/effective_go)")
	})

	t.Run("converts a news article", func(t *testing.T) {
		t.Parallel()

		html := `<article>
<h1>Go 1.30 is released</h1>
<p>Today the Go team is releasing Go 1.30.</p>
<h2>Tooling</h2>
<pre><code class="language-bash">go install golang.org/dl/go1.30@latest</code></pre>
<p>Thanks to <em>everyone</em> who contributed.</p>
</article>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Go 1.30 is released")
		assert.Contains(t, md, "## Tooling")
		assert.Contains(t, md, "```bash")
		assert.Contains(t, md, "*everyone*")
	})
}
