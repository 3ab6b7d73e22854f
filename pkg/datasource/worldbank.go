package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/credlens/pundit/pkg/config"
)

// worldBankAdapter queries World Bank Open Data annual country
// indicators, e.g. NY.GDP.MKTP.KD.ZG, FP.CPI.TOTL.ZG, SL.UEM.TOTL.ZS.
// No API key is required.
type worldBankAdapter struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newWorldBankAdapter(cfg *config.DataSourceConfig, logger *slog.Logger) *worldBankAdapter {
	return &worldBankAdapter{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeoutOrDefault(cfg.Timeout)},
		logger:     logger,
	}
}

type wbRef struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type wbRecord struct {
	Indicator wbRef    `json:"indicator"`
	Country   wbRef    `json:"country"`
	Date      string   `json:"date"`
	Value     *float64 `json:"value"`
	Unit      string   `json:"unit"`
}

// query fetches the most recent values of one indicator for one economy.
//
// Parameters: indicator_id (required), economy (ISO2 code, default "US",
// "all" for every country), mrv (most recent N periods, default 10).
func (a *worldBankAdapter) query(ctx context.Context, params map[string]any) Result {
	indicatorID := stringParam(params, "indicator_id", "")
	if indicatorID == "" {
		return fail("world_bank", "World Bank query failed: no indicator_id given")
	}

	economy := strings.ToUpper(stringParam(params, "economy", "US"))
	mrv := intParam(params, "mrv", 10)

	indicatorURL := fmt.Sprintf("https://data.worldbank.org/indicator/%s", indicatorID)

	q := url.Values{}
	q.Set("format", "json")
	q.Set("per_page", "50")
	q.Set("mrv", strconv.Itoa(mrv))
	requestURL := fmt.Sprintf("%s/country/%s/indicator/%s?%s",
		a.baseURL, url.PathEscape(economy), url.PathEscape(indicatorID), q.Encode())

	// Responses are a two-element array: [pagination meta, records].
	var envelope []json.RawMessage
	if err := getJSON(ctx, a.httpClient, requestURL, &envelope); err != nil {
		a.logger.Warn("World Bank query failed", "indicator_id", indicatorID, "error", err)
		return failAt("world_bank", fmt.Sprintf("World Bank query failed (%s): %v", indicatorID, err), indicatorURL)
	}
	if len(envelope) < 2 {
		return failAt("world_bank", fmt.Sprintf("World Bank returned no data (%s, %s)", indicatorID, economy), indicatorURL)
	}

	var records []wbRecord
	if err := json.Unmarshal(envelope[1], &records); err != nil || len(records) == 0 {
		return failAt("world_bank", fmt.Sprintf("World Bank returned no data (%s, %s)", indicatorID, economy), indicatorURL)
	}

	var filtered []wbRecord
	for _, r := range records {
		if r.Value != nil {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return failAt("world_bank", fmt.Sprintf("World Bank has no values for this indicator (%s, %s)", indicatorID, economy), indicatorURL)
	}

	indicatorName := filtered[0].Indicator.Value
	if indicatorName == "" {
		indicatorName = indicatorID
	}
	countryName := filtered[0].Country.Value
	if countryName == "" {
		countryName = economy
	}
	unit := filtered[0].Unit
	if unit == "" {
		unit = "see indicator notes"
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Date < filtered[j].Date })

	lines := []string{
		"World Bank data",
		fmt.Sprintf("Indicator: %s (%s)", indicatorName, indicatorID),
		fmt.Sprintf("Economy: %s (%s)", countryName, economy),
		fmt.Sprintf("Unit: %s", unit),
		"",
		fmt.Sprintf("%-10s%s", "Year", "Value"),
		strings.Repeat("-", 30),
	}
	for _, r := range filtered {
		lines = append(lines, fmt.Sprintf("%-10s%s", r.Date, formatValue(*r.Value)))
	}

	return Result{
		Content:    strings.Join(lines, "\n"),
		DataPeriod: strptr(fmt.Sprintf("%s to %s", filtered[0].Date, filtered[len(filtered)-1].Date)),
		SourceURL:  strptr(fmt.Sprintf("https://data.worldbank.org/indicator/%s?locations=%s", indicatorID, economy)),
		SourceType: "world_bank",
		OK:         true,
	}
}
