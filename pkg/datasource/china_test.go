package datasource

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/pundit/pkg/config"
)

func TestChinaQueryDisabledByDefault(t *testing.T) {
	router := newTestRouter(map[string]*config.DataSourceConfig{
		"china_macro": {Disabled: true, Note: "no public REST API"},
	})

	result := router.Query(context.Background(), "akshare", map[string]any{
		"function": "macro_china_cpi_monthly",
	})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "disabled")
}

func TestChinaQueryThroughBridge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/public/macro_china_cpi_monthly", r.URL.Path)
		w.Write([]byte(`[
			{"date":"2025-05","cpi_yoy":-0.1},
			{"date":"2025-06","cpi_yoy":0.1},
			{"date":"2025-07","cpi_yoy":0.4}
		]`))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"china_macro": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "china", map[string]any{
		"function": "macro_china_cpi_monthly",
		"tail_n":   2,
	})

	require.True(t, result.OK, result.Content)
	assert.Contains(t, result.Content, "Function: macro_china_cpi_monthly")
	assert.Contains(t, result.Content, "monthly CPI")
	assert.Contains(t, result.Content, "Columns: cpi_yoy, date")
	// tail_n keeps only the most recent rows.
	assert.NotContains(t, result.Content, "2025-05")
	assert.Contains(t, result.Content, "cpi_yoy=0.4  date=2025-07")
	// The period still spans every row returned.
	require.NotNil(t, result.DataPeriod)
	assert.Equal(t, "2025-05 to 2025-07", *result.DataPeriod)
}

func TestChinaQueryForwardsKwargs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "quarterly", r.URL.Query().Get("period"))
		w.Write([]byte(`[{"date":"2025Q2","gdp_yoy":4.8}]`))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"china_macro": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "china_macro", map[string]any{
		"function": "macro_china_gdp_monthly",
		"kwargs":   map[string]any{"period": "quarterly"},
	})

	require.True(t, result.OK, result.Content)
	assert.Contains(t, result.Content, "gdp_yoy=4.8")
}

func TestChinaQueryMissingFunction(t *testing.T) {
	a := newChinaAdapter(&config.DataSourceConfig{BaseURL: "http://unused.test"}, slog.Default())

	result := a.query(context.Background(), nil)

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "no function name")
}

func TestChinaQueryEmptyRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	a := newChinaAdapter(&config.DataSourceConfig{BaseURL: server.URL}, slog.Default())

	result := a.query(context.Background(), map[string]any{"function": "macro_china_ppi_monthly"})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "returned no rows")
}
