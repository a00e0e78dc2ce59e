package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/serp"
	main "github.com/fwojciec/serp/cmd/serp"
	"github.com/fwojciec/serp/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists searches with the filter applied", func(t *testing.T) {
		t.Parallel()

		var got serp.SearchFilter
		deps, stdout, _ := testDeps(nil, "")
		deps.History = &mock.HistoryService{
			FindSearchesFn: func(_ context.Context, filter serp.SearchFilter) ([]*serp.Search, error) {
				got = filter
				return []*serp.Search{
					{ID: "search-1", Terms: "golang generics", CreatedAt: time.Now()},
				}, nil
			},
		}

		cmd := &main.HistoryListCmd{Limit: 5, Terms: "golang"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, 5, got.Limit)
		require.NotNil(t, got.Terms)
		assert.Equal(t, "golang", *got.Terms)
		assert.Contains(t, stdout.String(), "search-1")
		assert.Contains(t, stdout.String(), "golang generics")
	})

	t.Run("shows a message when history is empty", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(nil, "")
		deps.History = &mock.HistoryService{
			FindSearchesFn: func(context.Context, serp.SearchFilter) ([]*serp.Search, error) {
				return []*serp.Search{}, nil
			},
		}

		cmd := &main.HistoryListCmd{Limit: 20}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No searches recorded.")
	})
}

func TestHistoryShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the recorded results", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(nil, "")
		deps.History = &mock.HistoryService{
			FindSearchByIDFn: func(_ context.Context, id string) (*serp.Search, error) {
				return &serp.Search{
					ID:    id,
					Terms: "golang",
					Results: []*serp.Result{
						{Index: 1, Title: "The Go Programming Language", URL: "https://go.dev/"},
					},
					CreatedAt: time.Now(),
				}, nil
			},
		}

		cmd := &main.HistoryShowCmd{ID: "search-1"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "golang  (")
		assert.Contains(t, stdout.String(), "1. The Go Programming Language")
		assert.Contains(t, stdout.String(), "go.dev")
	})

	t.Run("reports missing searches", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(nil, "")
		deps.History = &mock.HistoryService{
			FindSearchByIDFn: func(context.Context, string) (*serp.Search, error) {
				return nil, serp.Errorf(serp.ENOTFOUND, "search not found")
			},
		}

		cmd := &main.HistoryShowCmd{ID: "missing"}
		err := cmd.Run(deps)

		assert.Equal(t, serp.ENOTFOUND, serp.ErrorCode(err))
		assert.Contains(t, stderr.String(), `search "missing" not found`)
	})
}

func TestHistoryDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	var deleted string
	deps, stdout, _ := testDeps(nil, "")
	deps.History = &mock.HistoryService{
		DeleteSearchFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	cmd := &main.HistoryDeleteCmd{ID: "search-1"}
	require.NoError(t, cmd.Run(deps))

	assert.Equal(t, "search-1", deleted)
	assert.Contains(t, stdout.String(), "Deleted search search-1")
}

func TestHistoryClearCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(nil, "")
		deps.History = &mock.HistoryService{
			ClearHistoryFn: func(context.Context) error {
				t.Error("history should not be cleared")
				return nil
			},
		}

		cmd := &main.HistoryClearCmd{}
		err := cmd.Run(deps)

		assert.Equal(t, serp.EINVALID, serp.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("clears history with force", func(t *testing.T) {
		t.Parallel()

		cleared := false
		deps, stdout, _ := testDeps(nil, "")
		deps.History = &mock.HistoryService{
			ClearHistoryFn: func(context.Context) error {
				cleared = true
				return nil
			},
		}

		cmd := &main.HistoryClearCmd{Force: true}
		require.NoError(t, cmd.Run(deps))

		assert.True(t, cleared)
		assert.Contains(t, stdout.String(), "History cleared")
	})
}
