package datasource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/pundit/pkg/config"
)

func TestWorldBankQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/country/US/indicator/NY.GDP.MKTP.KD.ZG", r.URL.Path)
		require.Equal(t, "json", r.URL.Query().Get("format"))
		require.Equal(t, "50", r.URL.Query().Get("per_page"))
		require.Equal(t, "3", r.URL.Query().Get("mrv"))
		w.Write([]byte(`[{"page":1},[
			{"indicator":{"id":"NY.GDP.MKTP.KD.ZG","value":"GDP growth (annual %)"},"country":{"id":"US","value":"United States"},"date":"2023","value":2.887,"unit":""},
			{"indicator":{"id":"NY.GDP.MKTP.KD.ZG","value":"GDP growth (annual %)"},"country":{"id":"US","value":"United States"},"date":"2024","value":null,"unit":""},
			{"indicator":{"id":"NY.GDP.MKTP.KD.ZG","value":"GDP growth (annual %)"},"country":{"id":"US","value":"United States"},"date":"2022","value":2.062,"unit":""}
		]]`))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"world_bank": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "wb", map[string]any{
		"indicator_id": "NY.GDP.MKTP.KD.ZG",
		"mrv":          3,
	})

	require.True(t, result.OK, result.Content)
	assert.Contains(t, result.Content, "GDP growth (annual %)")
	assert.Contains(t, result.Content, "United States (US)")
	assert.Contains(t, result.Content, "2.887")

	// Null observations are dropped and the rest sorted by year.
	assert.NotContains(t, result.Content, "2024")
	i2022 := strings.Index(result.Content, "2022")
	i2023 := strings.Index(result.Content, "2023")
	assert.Greater(t, i2023, i2022)

	require.NotNil(t, result.DataPeriod)
	assert.Equal(t, "2022 to 2023", *result.DataPeriod)
	require.NotNil(t, result.SourceURL)
	assert.Equal(t, "https://data.worldbank.org/indicator/NY.GDP.MKTP.KD.ZG?locations=US", *result.SourceURL)
}

func TestWorldBankQueryNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"message":[{"id":"120","key":"Invalid value"}]}]`))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"world_bank": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "world_bank", map[string]any{"indicator_id": "BAD.ID"})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "no data")
}

func TestWorldBankQueryAllValuesNull(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"page":1},[{"indicator":{"id":"X"},"country":{"id":"US"},"date":"2024","value":null}]]`))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"world_bank": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "world_bank", map[string]any{"indicator_id": "X"})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "no values")
}

func TestWorldBankQueryMissingIndicator(t *testing.T) {
	router := newTestRouter(map[string]*config.DataSourceConfig{
		"world_bank": {BaseURL: "http://unused.test"},
	})

	result := router.Query(context.Background(), "world_bank", nil)

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "no indicator_id")
}
