package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/search", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "BLS Employment Situation", "url": "https://bls.gov/news", "content": "Payrolls rose 130K", "score": 0.92},
				{"title": "Reuters", "url": "https://reuters.com/x", "content": "Jobs report beat", "score": 0.71},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("tvly-test", server.URL, 5)
	results, err := client.Search(context.Background(), "US nonfarm payrolls Jan 2025", 0, []string{"bls.gov"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tvly-test", gotAuth)
	assert.Equal(t, "advanced", gotBody["search_depth"])
	assert.Equal(t, float64(5), gotBody["max_results"])
	assert.Equal(t, []any{"bls.gov"}, gotBody["include_domains"])
	assert.Equal(t, false, gotBody["include_answer"])

	require.Len(t, results, 2)
	assert.Equal(t, "BLS Employment Situation", results[0].Title)
	assert.InDelta(t, 0.92, results[0].Score, 1e-9)
}

func TestSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("tvly-test", server.URL, 5)
	results, err := client.Search(context.Background(), "anything", 3, nil)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "429")
}

func TestFormatResults(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "(no search results)", FormatResults(nil))
	})

	t.Run("numbered sources with truncation", func(t *testing.T) {
		long := strings.Repeat("a", 450)
		out := FormatResults([]Result{
			{Title: "First", URL: "https://one", Content: "short"},
			{Title: "Second", URL: "https://two", Content: long},
		})
		assert.Contains(t, out, "[source 1] First")
		assert.Contains(t, out, "[source 2] Second")
		assert.Contains(t, out, "URL: https://one")
		assert.Contains(t, out, "…")
		assert.NotContains(t, out, long)
	})
}

func TestBuildFactQuery(t *testing.T) {
	expr := "US CPI YoY in Dec 2024 was 2.9%"
	assert.Equal(t, expr, BuildFactQuery("inflation is falling", &expr))
	assert.Equal(t, "inflation is falling", BuildFactQuery("inflation is falling", nil))

	long := strings.Repeat("x", 300)
	assert.Len(t, BuildFactQuery(long, nil), 200)
}
