package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/credlens/pundit/pkg/config"
)

// blsAdapter queries the BLS public API v2 for employment, CPI, PPI,
// and JOLTS series, e.g. CES0000000001, LNS14000000, CUSR0000SA0.
// An API key is optional; it only raises the daily request limit.
type blsAdapter struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func newBLSAdapter(cfg *config.DataSourceConfig, logger *slog.Logger) *blsAdapter {
	return &blsAdapter{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     os.Getenv(cfg.APIKeyEnv),
		httpClient: &http.Client{Timeout: timeoutOrDefault(cfg.Timeout)},
		logger:     logger,
	}
}

type blsRequest struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear"`
	EndYear         string   `json:"endyear"`
	Calculations    bool     `json:"calculations"`
	RegistrationKey string   `json:"registrationkey,omitempty"`
}

type blsFootnote struct {
	Code string `json:"code"`
}

type blsDataPoint struct {
	Year      string        `json:"year"`
	Period    string        `json:"period"` // M01..M12, Q01..Q04, or A01
	Value     string        `json:"value"`
	Footnotes []blsFootnote `json:"footnotes"`
}

type blsSeries struct {
	SeriesID string         `json:"seriesID"`
	Data     []blsDataPoint `json:"data"`
}

type blsResponse struct {
	Status  string   `json:"status"`
	Message []string `json:"message"`
	Results struct {
		Series []blsSeries `json:"series"`
	} `json:"Results"`
}

// query fetches one or more series over a year range.
//
// Parameters: series_id (required, string or list), start_year and
// end_year (default to the last three calendar years).
func (a *blsAdapter) query(ctx context.Context, params map[string]any) Result {
	seriesIDs := stringListParam(params, "series_id")
	if len(seriesIDs) == 0 {
		return fail("bls", "BLS query failed: no series_id given")
	}

	currentYear := time.Now().Year()
	startYear := stringParam(params, "start_year", strconv.Itoa(currentYear-3))
	endYear := stringParam(params, "end_year", strconv.Itoa(currentYear))

	payload := blsRequest{
		SeriesID:        seriesIDs,
		StartYear:       startYear,
		EndYear:         endYear,
		Calculations:    false,
		RegistrationKey: a.apiKey,
	}

	var decoded blsResponse
	if err := postJSON(ctx, a.httpClient, a.baseURL+"/timeseries/data/", payload, &decoded); err != nil {
		a.logger.Warn("BLS request failed", "series_ids", seriesIDs, "error", err)
		return fail("bls", fmt.Sprintf("BLS API request failed: %v", err))
	}

	if decoded.Status != "REQUEST_SUCCEEDED" {
		msgs := strings.Join(decoded.Message, "; ")
		return fail("bls", fmt.Sprintf("BLS API returned an error (%s): %s", decoded.Status, msgs))
	}
	if len(decoded.Results.Series) == 0 {
		return fail("bls", "BLS API returned no data")
	}

	var lines []string
	var allPeriods []string

	for _, series := range decoded.Results.Series {
		lines = append(lines,
			fmt.Sprintf("BLS series: %s", series.SeriesID),
			fmt.Sprintf("%-8s%-10s%-15s%s", "Year", "Period", "Value", "Revised"),
			strings.Repeat("-", 45),
		)

		points := make([]blsDataPoint, len(series.Data))
		copy(points, series.Data)
		sort.Slice(points, func(i, j int) bool {
			if points[i].Year != points[j].Year {
				return points[i].Year < points[j].Year
			}
			return points[i].Period < points[j].Period
		})

		for _, p := range points {
			revised := ""
			for _, fn := range p.Footnotes {
				if fn.Code == "R" {
					revised = "revised"
					break
				}
			}
			lines = append(lines, fmt.Sprintf("%-8s%-10s%-15s%s", p.Year, p.Period, p.Value, revised))
			allPeriods = append(allPeriods, p.Year+"-"+p.Period)
		}
		lines = append(lines, "")
	}

	var dataPeriod *string
	if len(allPeriods) > 0 {
		sort.Strings(allPeriods)
		dataPeriod = strptr(fmt.Sprintf("%s to %s", allPeriods[0], allPeriods[len(allPeriods)-1]))
	}

	return Result{
		Content:    strings.Join(lines, "\n"),
		DataPeriod: dataPeriod,
		SourceURL:  strptr("https://www.bls.gov/developers/home.htm"),
		SourceType: "bls",
		OK:         true,
	}
}
