package serp_test

import (
	"testing"

	"github.com/fwojciec/serp"
	"github.com/stretchr/testify/assert"
)

func TestFormatArticle(t *testing.T) {
	t.Parallel()

	t.Run("formats article with title and source link", func(t *testing.T) {
		t.Parallel()

		a := &serp.Article{URL: "https://example.com/post", Title: "A Post", Content: "Body text."}

		assert.Equal(t, "# A Post\n<https://example.com/post>\n\nBody text.\n", serp.FormatArticle(a))
	})

	t.Run("uses URL when title is empty", func(t *testing.T) {
		t.Parallel()

		a := &serp.Article{URL: "https://example.com/post", Content: "Body text."}

		assert.Equal(t, "# https://example.com/post\n\nBody text.\n", serp.FormatArticle(a))
	})

	t.Run("omits empty content", func(t *testing.T) {
		t.Parallel()

		a := &serp.Article{URL: "https://example.com/post", Title: "Empty", Content: "  \n"}

		assert.Equal(t, "# Empty\n<https://example.com/post>\n", serp.FormatArticle(a))
	})

	t.Run("preserves markdown content", func(t *testing.T) {
		t.Parallel()

		a := &serp.Article{URL: "https://example.com", Title: "Doc", Content: "## Heading\n\n- item 1\n- item 2"}

		assert.Equal(t, "# Doc\n<https://example.com>\n\n## Heading\n\n- item 1\n- item 2\n", serp.FormatArticle(a))
	})

	t.Run("returns empty string for nil article", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, serp.FormatArticle(nil))
	})
}
