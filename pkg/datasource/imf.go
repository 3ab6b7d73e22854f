package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/credlens/pundit/pkg/config"
)

// imfAdapter queries the IMF DataMapper API for World Economic Outlook
// indicators, e.g. NGDP_RPCH, PCPIPCH, LUR, GGXWDG_NGDP. Country codes
// use the WEO format (USA, CHN, DEU, ...). No API key is required.
type imfAdapter struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newIMFAdapter(cfg *config.DataSourceConfig, logger *slog.Logger) *imfAdapter {
	return &imfAdapter{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeoutOrDefault(cfg.Timeout)},
		logger:     logger,
	}
}

type imfIndicatorMeta struct {
	Label string `json:"label"`
	Unit  string `json:"unit"`
}

type imfResponse struct {
	// values[indicator][country][year] = observation
	Values     map[string]map[string]map[string]*float64 `json:"values"`
	Indicators map[string]imfIndicatorMeta               `json:"indicators"`
}

// query fetches one indicator for one or more countries, showing the
// most recent 15 years.
//
// Parameters: indicator_code (required), country (WEO code or list;
// omit for all countries).
func (a *imfAdapter) query(ctx context.Context, params map[string]any) Result {
	indicatorCode := strings.ToUpper(stringParam(params, "indicator_code", ""))
	if indicatorCode == "" {
		return fail("imf", "IMF query failed: no indicator_code given")
	}

	countries := stringListParam(params, "country")
	for i, c := range countries {
		countries[i] = strings.ToUpper(c)
	}

	indicatorURL := fmt.Sprintf("https://www.imf.org/external/datamapper/%s", indicatorCode)

	var decoded imfResponse
	if err := getJSON(ctx, a.httpClient, a.baseURL+"/"+url.PathEscape(indicatorCode), &decoded); err != nil {
		a.logger.Warn("IMF query failed", "indicator_code", indicatorCode, "error", err)
		return failAt("imf", fmt.Sprintf("IMF DataMapper query failed (%s): %v", indicatorCode, err), indicatorURL)
	}

	valuesByCountry := decoded.Values[indicatorCode]
	if len(valuesByCountry) == 0 {
		return failAt("imf", fmt.Sprintf("IMF DataMapper returned no data (%s)", indicatorCode), indicatorURL)
	}

	if len(countries) > 0 {
		wanted := make(map[string]bool, len(countries))
		for _, c := range countries {
			wanted[c] = true
		}
		kept := make(map[string]map[string]*float64, len(countries))
		for code, values := range valuesByCountry {
			if wanted[code] {
				kept[code] = values
			}
		}
		valuesByCountry = kept
		if len(valuesByCountry) == 0 {
			return failAt("imf", fmt.Sprintf("IMF DataMapper has no data for the requested countries (%s)", indicatorCode), indicatorURL)
		}
	}

	yearSet := make(map[string]bool)
	for _, values := range valuesByCountry {
		for year := range values {
			yearSet[year] = true
		}
	}
	years := make([]string, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Strings(years)
	if len(years) == 0 {
		return failAt("imf", fmt.Sprintf("IMF DataMapper returned no data (%s)", indicatorCode), indicatorURL)
	}
	if len(years) > 15 {
		years = years[len(years)-15:]
	}

	meta := decoded.Indicators[indicatorCode]
	label := meta.Label
	if label == "" {
		label = indicatorCode
	}

	lines := []string{
		"IMF DataMapper data (WEO)",
		fmt.Sprintf("Indicator: %s (%s)", label, indicatorCode),
		fmt.Sprintf("Unit: %s", meta.Unit),
		fmt.Sprintf("Years shown: %s ~ %s", years[0], years[len(years)-1]),
		"",
	}

	codes := make([]string, 0, len(valuesByCountry))
	for code := range valuesByCountry {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		values := valuesByCountry[code]
		lines = append(lines,
			fmt.Sprintf("Country: %s", code),
			fmt.Sprintf("%-8s%s", "Year", "Value"),
			strings.Repeat("-", 20),
		)
		for _, year := range years {
			if v, ok := values[year]; ok && v != nil {
				lines = append(lines, fmt.Sprintf("%-8s%s", year, formatValue(*v)))
			}
		}
		lines = append(lines, "")
	}

	return Result{
		Content:    strings.Join(lines, "\n"),
		DataPeriod: strptr(fmt.Sprintf("%s to %s", years[0], years[len(years)-1])),
		SourceURL:  strptr(indicatorURL),
		SourceType: "imf",
		OK:         true,
	}
}
