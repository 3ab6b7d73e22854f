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

const blsFixture = `{"status":"REQUEST_SUCCEEDED","Results":{"series":[{"seriesID":"LNS14000000","data":[{"year":"2025","period":"M02","value":"4.1","footnotes":[{"code":"R"}]},{"year":"2025","period":"M01","value":"4.0","footnotes":[]}]}]}}`

func TestBLSQuery(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/timeseries/data/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(blsFixture))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"bls": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "bls", map[string]any{
		"series_id":  "LNS14000000",
		"start_year": "2025",
		"end_year":   "2025",
	})

	require.True(t, result.OK, result.Content)
	assert.Equal(t, []any{"LNS14000000"}, gotBody["seriesid"])
	assert.Equal(t, "2025", gotBody["startyear"])
	assert.Equal(t, "2025", gotBody["endyear"])
	assert.Equal(t, false, gotBody["calculations"])
	assert.NotContains(t, gotBody, "registrationkey")

	// Observations come back sorted ascending with revisions flagged.
	m01 := strings.Index(result.Content, "M01")
	m02 := strings.Index(result.Content, "M02")
	assert.Greater(t, m02, m01)
	assert.Contains(t, result.Content, "revised")
	require.NotNil(t, result.DataPeriod)
	assert.Equal(t, "2025-M01 to 2025-M02", *result.DataPeriod)
}

func TestBLSQueryWithAPIKey(t *testing.T) {
	t.Setenv("TEST_BLS_KEY", "regkey")

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(blsFixture))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"bls": {BaseURL: server.URL, APIKeyEnv: "TEST_BLS_KEY"},
	})

	result := router.Query(context.Background(), "bls", map[string]any{"series_id": "LNS14000000"})

	require.True(t, result.OK, result.Content)
	assert.Equal(t, "regkey", gotBody["registrationkey"])
}

func TestBLSQueryMultipleSeries(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"status":"REQUEST_SUCCEEDED","Results":{"series":[` +
			`{"seriesID":"JTSJOL","data":[{"year":"2025","period":"M06","value":"7391","footnotes":[]}]},` +
			`{"seriesID":"LNS13000000","data":[{"year":"2025","period":"M06","value":"7015","footnotes":[]}]}]}}`))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"bls": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "bls", map[string]any{
		"series_id": []any{"JTSJOL", "LNS13000000"},
	})

	require.True(t, result.OK, result.Content)
	assert.Equal(t, []any{"JTSJOL", "LNS13000000"}, gotBody["seriesid"])
	assert.Contains(t, result.Content, "BLS series: JTSJOL")
	assert.Contains(t, result.Content, "BLS series: LNS13000000")
}

func TestBLSQueryAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"REQUEST_NOT_PROCESSED","message":["daily threshold exceeded"]}`))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"bls": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "bls", map[string]any{"series_id": "LNS14000000"})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "REQUEST_NOT_PROCESSED")
	assert.Contains(t, result.Content, "daily threshold exceeded")
}

func TestBLSQueryMissingSeriesID(t *testing.T) {
	router := newTestRouter(map[string]*config.DataSourceConfig{
		"bls": {BaseURL: "http://unused.test"},
	})

	result := router.Query(context.Background(), "bls", nil)

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "no series_id")
}
