package mock

import (
	"context"

	"github.com/fwojciec/serp"
)

var _ serp.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of serp.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, article *serp.Article) error
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, article *serp.Article) error {
	return w.WriteArticleFn(ctx, article)
}
