//go:build integration

package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/serp"
	"github.com/fwojciec/serp/goquery"
	serphttp "github.com/fwojciec/serp/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_Integration_Google(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s := serphttp.NewSearcher(newParser, goquery.NewDetector())

	page, err := s.Search(ctx, &serp.Query{Terms: "golang"})
	if serp.ErrorCode(err) == serp.EBLOCKED {
		t.Skipf("blocked by Google: %s", serp.ErrorMessage(err))
	}
	require.NoError(t, err)

	// The basic HTML page should always have organic results for this query
	assert.NotEmpty(t, page.Results, "expected results for golang")
	for _, r := range page.Results {
		assert.Regexp(t, `^https?://`, r.URL)
	}
}

func TestSuggestService_Integration_Google(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := serphttp.NewSuggestService()

	got, err := svc.Suggest(ctx, "golang")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
