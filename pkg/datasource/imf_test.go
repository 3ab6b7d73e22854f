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

const imfFixture = `{
	"values":{"NGDP_RPCH":{"USA":{"2023":2.9,"2024":2.8},"CHN":{"2023":5.2,"2024":5.0}}},
	"indicators":{"NGDP_RPCH":{"label":"Real GDP growth","unit":"Annual percent change"}}
}`

func TestIMFQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/NGDP_RPCH", r.URL.Path)
		w.Write([]byte(imfFixture))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"imf": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "imf", map[string]any{
		"indicator_code": "ngdp_rpch",
		"country":        "usa",
	})

	require.True(t, result.OK, result.Content)
	assert.Contains(t, result.Content, "Real GDP growth (NGDP_RPCH)")
	assert.Contains(t, result.Content, "Annual percent change")
	assert.Contains(t, result.Content, "Country: USA")
	assert.NotContains(t, result.Content, "CHN")
	require.NotNil(t, result.DataPeriod)
	assert.Equal(t, "2023 to 2024", *result.DataPeriod)
}

func TestIMFQueryAllCountries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(imfFixture))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"imf": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "imf", map[string]any{"indicator_code": "NGDP_RPCH"})

	require.True(t, result.OK, result.Content)
	assert.Contains(t, result.Content, "Country: CHN")
	assert.Contains(t, result.Content, "Country: USA")
	// Countries render in sorted order.
	assert.Less(t, strings.Index(result.Content, "Country: CHN"), strings.Index(result.Content, "Country: USA"))
}

func TestIMFQueryNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"values":{},"indicators":{}}`))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"imf": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "imf", map[string]any{"indicator_code": "BOGUS"})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "no data")
}

func TestIMFQueryUnknownCountry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(imfFixture))
	}))
	defer server.Close()

	router := newTestRouter(map[string]*config.DataSourceConfig{
		"imf": {BaseURL: server.URL},
	})

	result := router.Query(context.Background(), "imf", map[string]any{
		"indicator_code": "NGDP_RPCH",
		"country":        "ATL",
	})

	assert.False(t, result.OK)
	assert.Contains(t, result.Content, "requested countries")
}
