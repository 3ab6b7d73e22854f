package datasource

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/pundit/pkg/config"
)

func TestUSITCTariffQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/details/en/847130", r.URL.Path)
		w.Write([]byte(`[
			{"description":"Portable automatic data processing machines","generalRateOfDuty":"Free","specialRateOfDuty":"","column2RateOfDuty":"35%","indent":"1"},
			{"shortDescription":"Laptops","general":"Free","special":"","col2":"35%","indent":2}
		]`))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"usitc": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "usitc", map[string]any{"hts_code": "8471.30"})

	require.True(t, result.OK, result.Content)
	assert.Contains(t, result.Content, "HTS code: 847130")
	assert.Contains(t, result.Content, "Portable automatic data processing machines")
	assert.Contains(t, result.Content, "General rate: Free")
	assert.Contains(t, result.Content, "Special rate: N/A")
	assert.Contains(t, result.Content, "Column 2 rate: 35%")
	assert.Contains(t, result.Content, "Laptops")
	require.NotNil(t, result.DataPeriod)
	assert.Equal(t, "current HTS schedule", *result.DataPeriod)
	require.NotNil(t, result.SourceURL)
	assert.Equal(t, "https://hts.usitc.gov/#847130", *result.SourceURL)
}

func TestUSITCTariffQueryMissingCode(t *testing.T) {
	router := newTestRouter(map[string]*config.DataSourceConfig{
		"usitc": {BaseURL: "http://unused.test"},
	})

	result := router.Query(context.Background(), "usitc", map[string]any{"endpoint": "tariff"})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "no hts_code")
}

func TestUSITCTradeQuery(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"data":[{"year":"2024","value":12345678},{"year":"2025","value":23456789}]}`))
	}))
	defer server.Close()

	a := newUSITCAdapter(&config.DataSourceConfig{BaseURL: "http://unused.test"}, slog.Default())
	a.tradeURL = server.URL

	result := a.query(context.Background(), map[string]any{
		"endpoint": "trade",
		"hs_code":  "8471.30",
		"flow":     "exports",
		"partner":  "CN",
		"years":    []any{"2024", "2025"},
	})

	require.True(t, result.OK, result.Content)
	assert.Equal(t, "HTS", gotBody["typeCode"])
	assert.Equal(t, "E", gotBody["flowType"])
	assert.Equal(t, []any{"847130"}, gotBody["classification"])
	assert.Equal(t, []any{"CN"}, gotBody["partner"])
	assert.Equal(t, "VCY", gotBody["measure"])
	assert.Contains(t, result.Content, "HS code: 847130")
	assert.Contains(t, result.Content, "Flow: exports")
	assert.Contains(t, result.Content, "Partner: CN")
	assert.Contains(t, result.Content, "2024")
	require.NotNil(t, result.DataPeriod)
	assert.Equal(t, "2024 to 2025", *result.DataPeriod)
}

func TestUSITCTradeQueryDefaults(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	a := newUSITCAdapter(&config.DataSourceConfig{BaseURL: "http://unused.test"}, slog.Default())
	a.tradeURL = server.URL

	result := a.query(context.Background(), map[string]any{
		"endpoint": "trade",
		"hs_code":  "270900",
	})

	require.True(t, result.OK, result.Content)
	assert.Equal(t, "I", gotBody["flowType"])
	assert.Equal(t, []any{"0000"}, gotBody["partner"])
	assert.Len(t, gotBody["reportPeriod"], 3)
	assert.Contains(t, result.Content, "Partner: world")
}

func TestUSITCUnsupportedEndpoint(t *testing.T) {
	a := newUSITCAdapter(&config.DataSourceConfig{BaseURL: "http://unused.test"}, slog.Default())

	result := a.query(context.Background(), map[string]any{"endpoint": "quota"})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "unsupported endpoint")
}
