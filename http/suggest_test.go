package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/serp"
	serphttp "github.com/fwojciec/serp/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestService_Suggest(t *testing.T) {
	t.Parallel()

	t.Run("returns completions in order", func(t *testing.T) {
		t.Parallel()

		var query string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/complete/search", r.URL.Path)
			assert.Equal(t, "toolbar", r.URL.Query().Get("output"))
			query = r.URL.Query().Get("q")
			w.Header().Set("Content-Type", "text/xml; charset=UTF-8")
			_, _ = w.Write([]byte(`<?xml version="1.0"?><toplevel>` +
				`<CompleteSuggestion><suggestion data="golang tutorial"/></CompleteSuggestion>` +
				`<CompleteSuggestion><suggestion data="golang generics"/></CompleteSuggestion>` +
				`<CompleteSuggestion><suggestion data=""/></CompleteSuggestion>` +
				`<CompleteSuggestion/>` +
				`<CompleteSuggestion><suggestion data="golang &amp; rust"/></CompleteSuggestion>` +
				`</toplevel>`))
		}))
		defer server.Close()

		svc := serphttp.NewSuggestService(serphttp.WithBaseURL(server.URL))
		got, err := svc.Suggest(context.Background(), "  golang ")

		require.NoError(t, err)
		assert.Equal(t, "golang", query)
		assert.Equal(t, []string{"golang tutorial", "golang generics", "golang & rust"}, got)
	})

	t.Run("decodes legacy charsets", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// "café" in ISO-8859-1
			body := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><toplevel>`+
				`<CompleteSuggestion><suggestion data="caf`), 0xE9)
			body = append(body, []byte(`"/></CompleteSuggestion></toplevel>`)...)
			_, _ = w.Write(body)
		}))
		defer server.Close()

		svc := serphttp.NewSuggestService(serphttp.WithBaseURL(server.URL))
		got, err := svc.Suggest(context.Background(), "caf")

		require.NoError(t, err)
		assert.Equal(t, []string{"café"}, got)
	})

	t.Run("returns empty slice when there are no completions", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<?xml version="1.0"?><toplevel/>`))
		}))
		defer server.Close()

		svc := serphttp.NewSuggestService(serphttp.WithBaseURL(server.URL))
		got, err := svc.Suggest(context.Background(), "zzzzqx")

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("returns EINVALID for empty prefix", func(t *testing.T) {
		t.Parallel()

		svc := serphttp.NewSuggestService()
		_, err := svc.Suggest(context.Background(), "   ")

		assert.Equal(t, serp.EINVALID, serp.ErrorCode(err))
	})

	t.Run("returns error for invalid XML", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<toplevel><<<`))
		}))
		defer server.Close()

		svc := serphttp.NewSuggestService(serphttp.WithBaseURL(server.URL))
		_, err := svc.Suggest(context.Background(), "go")

		require.Error(t, err)
	})

	t.Run("returns error for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		svc := serphttp.NewSuggestService(serphttp.WithBaseURL(server.URL))
		_, err := svc.Suggest(context.Background(), "go")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})
}
