package datasource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/pundit/pkg/config"
)

func TestFederalRegisterQuery(t *testing.T) {
	longAbstract := strings.Repeat("tariff policy detail ", 30)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/documents", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "tariff proclamation", q.Get("conditions[term]"))
		require.Equal(t, []string{"PRESDOCU"}, q["conditions[type][]"])
		require.Equal(t, "10", q.Get("per_page")) // requested 25, capped
		require.Equal(t, "relevance", q.Get("order"))
		require.Len(t, q["fields[]"], 8)
		require.Equal(t, "2025-01-01", q.Get("conditions[publication_date][gte]"))

		resp := map[string]any{
			"count": 42,
			"results": []map[string]any{
				{
					"title":            "Adjusting Imports of Automobiles Into the United States",
					"document_number":  "2025-01234",
					"publication_date": "2025-04-02",
					"abstract":         longAbstract,
					"html_url":         "https://www.federalregister.gov/d/2025-01234",
					"type":             "Presidential Document",
					"agency_names":     []string{"Executive Office of the President", "Commerce Department", "Treasury Department", "USTR"},
				},
				{
					"title":            "Second Proclamation",
					"document_number":  "2025-05678",
					"publication_date": "2025-03-10",
					"type":             "Presidential Document",
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"federal_register": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "fedreg", map[string]any{
		"search_terms": "tariff proclamation",
		"per_page":     25,
		"start_date":   "2025-01-01",
	})

	require.True(t, result.OK, result.Content)
	assert.Contains(t, result.Content, "Found 42 documents, showing the first 2")
	assert.Contains(t, result.Content, "[Document 1]")
	assert.Contains(t, result.Content, "Adjusting Imports of Automobiles")
	assert.Contains(t, result.Content, "[Document 2]")
	// Only the first three agencies are listed.
	assert.NotContains(t, result.Content, "USTR")
	// Long abstracts are cut down.
	assert.NotContains(t, result.Content, longAbstract)
	// The second document has no URL in the response.
	assert.Contains(t, result.Content, "  URL: N/A")
	require.NotNil(t, result.DataPeriod)
	assert.Equal(t, "2025-03-10 to 2025-04-02", *result.DataPeriod)
}

func TestFederalRegisterQueryNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":0,"results":[]}`))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"federal_register": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "federal_register", map[string]any{
		"search_terms": "nonexistent topic xyz",
	})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "found no documents")
}

func TestFederalRegisterQueryMissingTerms(t *testing.T) {
	router := newTestRouter(map[string]*config.DataSourceConfig{
		"federal_register": {BaseURL: "http://unused.test"},
	})

	result := router.Query(context.Background(), "federal_register", nil)

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "no search_terms")
}
