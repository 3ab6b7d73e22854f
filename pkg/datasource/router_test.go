package datasource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/pundit/pkg/config"
)

func newTestRouter(sources map[string]*config.DataSourceConfig) *Router {
	return NewRouter(config.NewDataSourceRegistry(sources))
}

const wbFixture = `[{"page":1,"pages":1},[{"indicator":{"id":"NY.GDP.MKTP.KD.ZG","value":"GDP growth (annual %)"},"country":{"id":"US","value":"United States"},"date":"2023","value":2.9,"unit":""}]]`

func TestQueryWebFallback(t *testing.T) {
	router := newTestRouter(nil)

	result := router.Query(context.Background(), "web", nil)

	assert.False(t, result.OK)
	assert.Equal(t, "web", result.SourceType)
	assert.Empty(t, result.Content)
}

func TestQueryUnknownSource(t *testing.T) {
	router := newTestRouter(nil)

	result := router.Query(context.Background(), "bloomberg", nil)

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "unknown data source type")
	assert.Equal(t, "bloomberg", result.SourceType)
}

func TestQueryDisabledSource(t *testing.T) {
	router := newTestRouter(map[string]*config.DataSourceConfig{
		"china_macro": {Disabled: true, Note: "needs a licensed feed"},
	})

	result := router.Query(context.Background(), "china", map[string]any{"function": "macro_china_cpi_monthly"})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "disabled")
	assert.Contains(t, result.Content, "licensed feed")
}

func TestQueryAliases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(wbFixture))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"world_bank": {BaseURL: server.URL},
	})

	params := map[string]any{"indicator_id": "NY.GDP.MKTP.KD.ZG"}
	for _, alias := range []string{"world_bank", "worldbank", "wb", " WB "} {
		result := router.Query(context.Background(), alias, params)
		assert.True(t, result.OK, "alias %q: %s", alias, result.Content)
		assert.Equal(t, "world_bank", result.SourceType, "alias %q", alias)
	}
}

func TestQueryCachesSuccessfulResults(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(wbFixture))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"world_bank": {BaseURL: server.URL, CacheTTL: time.Minute},
	})

	params := map[string]any{"indicator_id": "NY.GDP.MKTP.KD.ZG", "economy": "US"}
	first := router.Query(context.Background(), "world_bank", params)
	second := router.Query(context.Background(), "world_bank", params)

	require.True(t, first.OK, first.Content)
	require.True(t, second.OK, second.Content)
	assert.Equal(t, 1, hits)
	assert.Equal(t, first.Content, second.Content)

	// A different parameter set misses the cache.
	router.Query(context.Background(), "world_bank", map[string]any{"indicator_id": "FP.CPI.TOTL.ZG"})
	assert.Equal(t, 2, hits)
}

func TestQueryDoesNotCacheFailures(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(wbFixture))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"world_bank": {BaseURL: server.URL, CacheTTL: time.Minute},
	})

	params := map[string]any{"indicator_id": "NY.GDP.MKTP.KD.ZG"}
	first := router.Query(context.Background(), "world_bank", params)
	second := router.Query(context.Background(), "world_bank", params)

	assert.False(t, first.OK)
	assert.True(t, second.OK, second.Content)
	assert.Equal(t, 2, hits)
}

func TestSupported(t *testing.T) {
	router := newTestRouter(map[string]*config.DataSourceConfig{
		"fred":        {BaseURL: "https://example.test"},
		"china_macro": {Disabled: true},
	})

	assert.True(t, router.Supported("fred"))
	assert.True(t, router.Supported("FRED"))
	assert.False(t, router.Supported("china"))
	assert.False(t, router.Supported("bloomberg"))
	assert.False(t, router.Supported("web"))
}
