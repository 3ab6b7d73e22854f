package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/credlens/pundit/pkg/config"
)

// fredAdapter queries FRED (Federal Reserve Economic Data) time series.
// Series cover BLS employment, BEA national accounts, Fed rates, and
// CPI/PCE inflation, e.g. PAYEMS, UNRATE, CPIAUCSL, FEDFUNDS, DGS10.
type fredAdapter struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func newFredAdapter(cfg *config.DataSourceConfig, logger *slog.Logger) *fredAdapter {
	return &fredAdapter{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     os.Getenv(cfg.APIKeyEnv),
		httpClient: &http.Client{Timeout: timeoutOrDefault(cfg.Timeout)},
		logger:     logger,
	}
}

type fredSeriesInfo struct {
	Title            string `json:"title"`
	FrequencyShort   string `json:"frequency_short"`
	UnitsShort       string `json:"units_short"`
	SeasonalAdjShort string `json:"seasonal_adjustment_short"`
}

type fredSeriesResponse struct {
	Seriess []fredSeriesInfo `json:"seriess"`
}

type fredObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"` // FRED encodes missing values as "."
}

type fredObservationsResponse struct {
	Observations []fredObservation `json:"observations"`
}

// query fetches series metadata plus observations.
//
// Parameters: series_id (required), start_date and end_date in
// YYYY-MM-DD (start defaults to three years back), tail_n (observations
// shown, default 36).
func (a *fredAdapter) query(ctx context.Context, params map[string]any) Result {
	seriesID := strings.ToUpper(stringParam(params, "series_id", ""))
	if seriesID == "" {
		return fail("fred", "FRED query failed: no series_id given")
	}

	startDate := stringParam(params, "start_date", "")
	if startDate == "" {
		startDate = time.Now().AddDate(-3, 0, 0).Format("2006-01-02")
	}
	endDate := stringParam(params, "end_date", "")
	tailN := intParam(params, "tail_n", 36)

	seriesURL := fmt.Sprintf("https://fred.stlouisfed.org/series/%s", seriesID)

	info, err := a.fetchInfo(ctx, seriesID)
	if err != nil {
		a.logger.Warn("FRED series lookup failed", "series_id", seriesID, "error", err)
		return failAt("fred", fmt.Sprintf("FRED query failed (%s): %v", seriesID, err), seriesURL)
	}

	observations, err := a.fetchObservations(ctx, seriesID, startDate, endDate)
	if err != nil {
		a.logger.Warn("FRED observations fetch failed", "series_id", seriesID, "error", err)
		return failAt("fred", fmt.Sprintf("FRED query failed (%s): %v", seriesID, err), seriesURL)
	}
	if len(observations) == 0 {
		return failAt("fred", fmt.Sprintf("FRED returned no data (%s)", seriesID), seriesURL)
	}

	firstDate := observations[0].Date
	lastDate := observations[len(observations)-1].Date

	shown := observations
	if len(shown) > tailN && tailN > 0 {
		shown = shown[len(shown)-tailN:]
	}

	lines := []string{
		fmt.Sprintf("FRED series: %s", seriesID),
		fmt.Sprintf("Title: %s", info.Title),
		fmt.Sprintf("Frequency: %s  Units: %s  Seasonal adjustment: %s",
			info.FrequencyShort, info.UnitsShort, info.SeasonalAdjShort),
		fmt.Sprintf("Full range: %s ~ %s", firstDate, lastDate),
		fmt.Sprintf("(showing the most recent %d observations)", len(shown)),
		"",
		"Date            Value",
		strings.Repeat("-", 30),
	}

	var lastValue *float64
	for _, obs := range shown {
		valStr := "NaN"
		if v, err := strconv.ParseFloat(obs.Value, 64); err == nil {
			valStr = formatValue(v)
			value := v
			lastValue = &value
		}
		lines = append(lines, fmt.Sprintf("%s   %s", obs.Date, valStr))
	}

	extra := map[string]any{"series_id": seriesID}
	if lastValue != nil {
		extra["last_value"] = *lastValue
	}

	return Result{
		Content:    strings.Join(lines, "\n"),
		DataPeriod: strptr(fmt.Sprintf("%s to %s", firstDate, lastDate)),
		SourceURL:  strptr(seriesURL),
		SourceType: "fred",
		OK:         true,
		Extra:      extra,
	}
}

func (a *fredAdapter) fetchInfo(ctx context.Context, seriesID string) (*fredSeriesInfo, error) {
	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("file_type", "json")
	if a.apiKey != "" {
		q.Set("api_key", a.apiKey)
	}

	var decoded fredSeriesResponse
	if err := getJSON(ctx, a.httpClient, a.baseURL+"/series?"+q.Encode(), &decoded); err != nil {
		return nil, err
	}
	if len(decoded.Seriess) == 0 {
		return nil, fmt.Errorf("series %s not found", seriesID)
	}
	return &decoded.Seriess[0], nil
}

func (a *fredAdapter) fetchObservations(ctx context.Context, seriesID, startDate, endDate string) ([]fredObservation, error) {
	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("file_type", "json")
	q.Set("sort_order", "asc")
	q.Set("observation_start", startDate)
	if endDate != "" {
		q.Set("observation_end", endDate)
	}
	if a.apiKey != "" {
		q.Set("api_key", a.apiKey)
	}

	var decoded fredObservationsResponse
	if err := getJSON(ctx, a.httpClient, a.baseURL+"/series/observations?"+q.Encode(), &decoded); err != nil {
		return nil, err
	}
	return decoded.Observations, nil
}
