package main_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/serp"
	main "github.com/fwojciec/serp/cmd/serp"
	"github.com/fwojciec/serp/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Query(t *testing.T) {
	t.Parallel()

	cmd := &main.SearchCmd{
		Keywords: []string{"golang", "generics"},
		Start:    20,
		Count:    5,
		News:     true,
		TLD:      "co.uk",
		Lang:     "en",
		Exact:    true,
		Time:     "w2",
		Site:     "go.dev",
	}

	assert.Equal(t, serp.Query{
		Terms:    "golang generics",
		Start:    20,
		Num:      5,
		News:     true,
		TLD:      "co.uk",
		Lang:     "en",
		Exact:    true,
		Duration: "w2",
		Site:     "go.dev",
	}, cmd.Query())
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the first page and exits with noprompt", func(t *testing.T) {
		t.Parallel()

		searcher := &recordingSearcher{}
		deps, stdout, stderr := testDeps(searcher, "")

		cmd := &main.SearchCmd{Keywords: []string{"golang"}, Count: 10, Pages: 1, NoPrompt: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "golang result 1")
		assert.Contains(t, stdout.String(), "golang result 2")
		assert.NotContains(t, stdout.String(), main.Prompt)
		assert.Empty(t, stderr.String())
		assert.Len(t, searcher.Queries(), 1)
	})

	t.Run("prints JSON and skips the prompt", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(&recordingSearcher{}, "n\n")

		cmd := &main.SearchCmd{Keywords: []string{"golang"}, Count: 10, Pages: 1, JSON: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		var page serp.ResultPage
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &page))
		assert.Len(t, page.Results, 2)
		assert.Equal(t, "golang", page.Query.Terms)
	})

	t.Run("prints only URLs and skips the prompt", func(t *testing.T) {
		t.Parallel()

		searcher := &recordingSearcher{}
		deps, stdout, _ := testDeps(searcher, "n\n")

		cmd := &main.SearchCmd{Keywords: []string{"golang"}, Count: 10, Pages: 1, URLs: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/golang/1\nhttps://example.com/golang/2\n", stdout.String())
		assert.Len(t, searcher.Queries(), 1)
	})

	t.Run("enters the omniprompt after the first page", func(t *testing.T) {
		t.Parallel()

		searcher := &recordingSearcher{}
		deps, stdout, _ := testDeps(searcher, "n\nq\n")

		cmd := &main.SearchCmd{Keywords: []string{"golang"}, Count: 10, Pages: 1}
		err := cmd.Run(deps)

		require.NoError(t, err)
		queries := searcher.Queries()
		require.Len(t, queries, 2)
		assert.Equal(t, 0, queries[0].Start)
		assert.Equal(t, 10, queries[1].Start)
		assert.Contains(t, stdout.String(), "golang result 11")
		assert.Equal(t, 2, strings.Count(stdout.String(), main.Prompt))
	})

	t.Run("fetches several pages concurrently in order", func(t *testing.T) {
		t.Parallel()

		searcher := &recordingSearcher{}
		deps, stdout, _ := testDeps(searcher, "")

		cmd := &main.SearchCmd{Keywords: []string{"golang"}, Count: 10, Pages: 3}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Len(t, searcher.Queries(), 3)
		out := stdout.String()
		first := strings.Index(out, "golang result 1\n")
		second := strings.Index(out, "golang result 11")
		third := strings.Index(out, "golang result 21")
		require.True(t, first >= 0 && second >= 0 && third >= 0)
		assert.Less(t, first, second)
		assert.Less(t, second, third)
		assert.NotContains(t, out, main.Prompt)
	})

	t.Run("records history unless disabled", func(t *testing.T) {
		t.Parallel()

		var recorded []*serp.Search
		history := &mock.HistoryService{
			CreateSearchFn: func(_ context.Context, s *serp.Search) error {
				recorded = append(recorded, s)
				return nil
			},
		}

		deps, _, _ := testDeps(&recordingSearcher{}, "")
		deps.History = history
		cmd := &main.SearchCmd{Keywords: []string{"golang"}, Count: 10, Pages: 1, NoPrompt: true}
		require.NoError(t, cmd.Run(deps))
		require.Len(t, recorded, 1)
		assert.Equal(t, "golang", recorded[0].Terms)

		deps, _, _ = testDeps(&recordingSearcher{}, "")
		deps.History = history
		cmd.NoHistory = true
		require.NoError(t, cmd.Run(deps))
		assert.Len(t, recorded, 1)
	})

	t.Run("hides repeated URLs with dedupe", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(&recordingSearcher{}, "f\nq\n")
		seen := map[string]bool{}
		deps.NewSeenSet = func() serp.SeenSet {
			return &mock.SeenSet{
				TestAndAddFn: func(url string) bool {
					ok := seen[url]
					seen[url] = true
					return ok
				},
			}
		}

		cmd := &main.SearchCmd{Keywords: []string{"golang"}, Count: 10, Pages: 1, Dedupe: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(stdout.String(), "golang result 1\n"))
		assert.Contains(t, stdout.String(), "No results.")
	})

	t.Run("reports blocked searches", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, q *serp.Query) (*serp.ResultPage, error) {
				return nil, serp.Errorf(serp.EBLOCKED, "HTTP 429 for %s: too many requests, try again later", "https://www.google.com/search")
			},
		}
		deps, _, stderr := testDeps(searcher, "")

		cmd := &main.SearchCmd{Keywords: []string{"golang"}, Count: 10, Pages: 1}
		err := cmd.Run(deps)

		assert.Equal(t, serp.EBLOCKED, serp.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: HTTP 429")
	})

	t.Run("shows partial results before a malformed reference error", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, q *serp.Query) (*serp.ResultPage, error) {
				page := pageFor(q)
				page.Results = page.Results[:1]
				return page, serp.Errorf(serp.EMALFORMED, "malformed character reference %q", "&#xZZ;")
			},
		}
		deps, stdout, stderr := testDeps(searcher, "")

		cmd := &main.SearchCmd{Keywords: []string{"golang"}, Count: 10, Pages: 1, NoPrompt: true}
		err := cmd.Run(deps)

		assert.Equal(t, serp.EMALFORMED, serp.ErrorCode(err))
		assert.Contains(t, stdout.String(), "golang result 1")
		assert.Contains(t, stderr.String(), "&#xZZ;")
	})

	t.Run("rejects invalid page count", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(&recordingSearcher{}, "")

		cmd := &main.SearchCmd{Keywords: []string{"golang"}, Count: 10, Pages: 0}
		err := cmd.Run(deps)

		assert.Equal(t, serp.EINVALID, serp.ErrorCode(err))
	})
}
