package serp

import (
	"context"
	"time"
)

// Article is a result page read as Markdown.
type Article struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	return nil
}

// ArticleWriter persists articles.
type ArticleWriter interface {
	WriteArticle(ctx context.Context, article *Article) error
}
