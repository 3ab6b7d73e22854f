package datasource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/pundit/pkg/config"
)

func TestFredQuery(t *testing.T) {
	t.Setenv("TEST_FRED_KEY", "secret")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret", r.URL.Query().Get("api_key"))
		require.Equal(t, "json", r.URL.Query().Get("file_type"))
		require.Equal(t, "PAYEMS", r.URL.Query().Get("series_id"))

		switch r.URL.Path {
		case "/series":
			w.Write([]byte(`{"seriess":[{"title":"All Employees, Total Nonfarm","frequency_short":"M","units_short":"Thous. of Persons","seasonal_adjustment_short":"SA"}]}`))
		case "/series/observations":
			require.NotEmpty(t, r.URL.Query().Get("observation_start"))
			require.Equal(t, "asc", r.URL.Query().Get("sort_order"))
			w.Write([]byte(`{"observations":[{"date":"2025-05-01","value":"159400"},{"date":"2025-06-01","value":"."},{"date":"2025-07-01","value":"159539"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"fred": {BaseURL: server.URL, APIKeyEnv: "TEST_FRED_KEY"},
	})

	result := router.Query(context.Background(), "fred", map[string]any{"series_id": "payems"})

	require.True(t, result.OK, result.Content)
	assert.Contains(t, result.Content, "FRED series: PAYEMS")
	assert.Contains(t, result.Content, "All Employees, Total Nonfarm")
	assert.Contains(t, result.Content, "159,539.000")
	assert.Contains(t, result.Content, "NaN")
	require.NotNil(t, result.DataPeriod)
	assert.Equal(t, "2025-05-01 to 2025-07-01", *result.DataPeriod)
	require.NotNil(t, result.SourceURL)
	assert.Equal(t, "https://fred.stlouisfed.org/series/PAYEMS", *result.SourceURL)
	assert.Equal(t, "PAYEMS", result.Extra["series_id"])
	assert.Equal(t, 159539.0, result.Extra["last_value"])
}

func TestFredQueryMissingSeriesID(t *testing.T) {
	router := newTestRouter(map[string]*config.DataSourceConfig{
		"fred": {BaseURL: "http://unused.test"},
	})

	result := router.Query(context.Background(), "fred", map[string]any{})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "no series_id")
}

func TestFredQueryUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"fred": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "fred", map[string]any{"series_id": "UNRATE"})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "FRED query failed")
	require.NotNil(t, result.SourceURL)
	assert.Contains(t, *result.SourceURL, "UNRATE")
}

func TestFredQueryTailWindow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/series":
			w.Write([]byte(`{"seriess":[{"title":"Unemployment Rate"}]}`))
		case "/series/observations":
			w.Write([]byte(`{"observations":[{"date":"2025-01-01","value":"4.0"},{"date":"2025-02-01","value":"4.1"},{"date":"2025-03-01","value":"4.2"}]}`))
		}
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"fred": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "fred", map[string]any{"series_id": "UNRATE", "tail_n": 2})

	require.True(t, result.OK, result.Content)
	assert.NotContains(t, result.Content, "2025-01-01   4.000")
	assert.Contains(t, result.Content, "2025-02-01   4.100")
	assert.Contains(t, result.Content, "(showing the most recent 2 observations)")
	// The range header still covers every observation.
	assert.Contains(t, result.Content, "Full range: 2025-01-01 ~ 2025-03-01")
}
