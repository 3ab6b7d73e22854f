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

// chinaAdapter proxies China macro series (NBS, PBoC, Customs) through
// an AKTools-compatible HTTP bridge. The source ships disabled because
// the upstream feeds have no public REST API; enabling it requires a
// bridge URL in the user config.
type chinaAdapter struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newChinaAdapter(cfg *config.DataSourceConfig, logger *slog.Logger) *chinaAdapter {
	return &chinaAdapter{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeoutOrDefault(cfg.Timeout)},
		logger:     logger,
	}
}

// chinaFunctionDescriptions labels the commonly used series functions.
var chinaFunctionDescriptions = map[string]string{
	"macro_china_gdp_yearly":          "annual GDP level and growth",
	"macro_china_gdp_monthly":         "quarterly real GDP growth",
	"macro_china_cpi_monthly":         "monthly CPI (YoY and MoM)",
	"macro_china_ppi_monthly":         "monthly PPI",
	"macro_china_urban_unemployment":  "monthly surveyed urban unemployment rate",
	"macro_china_money_supply":        "monthly M0/M1/M2",
	"macro_china_reserve_requirement": "reserve requirement ratio",
	"macro_china_loan_prime_rate":     "loan prime rate (LPR)",
	"macro_china_trade_balance":       "monthly imports, exports, and trade balance",
	"macro_china_imports_yoy":         "imports YoY growth",
	"macro_china_exports_yoy":         "exports YoY growth",
	"macro_china_real_estate":         "real estate investment and sales",
}

// chinaDateMarkers match column names that carry the observation date.
// The bridge returns native column names, so both English and Chinese
// spellings appear.
var chinaDateMarkers = []string{"date", "日期", "月份", "年份", "时间"}

// query calls one bridge function and renders its rows.
//
// Parameters: function (required, e.g. "macro_china_cpi_monthly"),
// tail_n (rows shown, default 24), kwargs (extra query arguments).
func (a *chinaAdapter) query(ctx context.Context, params map[string]any) Result {
	funcName := stringParam(params, "function", "")
	if funcName == "" {
		return fail("china_macro", "China data query failed: no function name given")
	}
	if a.baseURL == "" {
		return fail("china_macro", "China data query failed: no bridge URL configured")
	}
	tailN := intParam(params, "tail_n", 24)

	q := url.Values{}
	if kwargs, ok := params["kwargs"].(map[string]any); ok {
		for k, v := range kwargs {
			q.Set(k, fmt.Sprintf("%v", v))
		}
	}
	requestURL := fmt.Sprintf("%s/api/public/%s", a.baseURL, url.PathEscape(funcName))
	if encoded := q.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	var rows []map[string]any
	if err := getJSON(ctx, a.httpClient, requestURL, &rows); err != nil {
		a.logger.Warn("China data query failed", "function", funcName, "error", err)
		return fail("china_macro", fmt.Sprintf("China data query failed (%s): %v", funcName, err))
	}
	if len(rows) == 0 {
		return fail("china_macro", fmt.Sprintf("China data function %s returned no rows", funcName))
	}

	columns := sortedColumns(rows[0])
	dateColumn := findDateColumn(columns)

	var dataPeriod *string
	if dateColumn != "" {
		first := fmt.Sprintf("%v", rows[0][dateColumn])
		last := fmt.Sprintf("%v", rows[len(rows)-1][dateColumn])
		dataPeriod = strptr(fmt.Sprintf("%s to %s", first, last))
	}

	shown := rows
	if len(shown) > tailN && tailN > 0 {
		shown = shown[len(shown)-tailN:]
	}

	description := chinaFunctionDescriptions[funcName]
	if description == "" {
		description = funcName
	}

	lines := []string{
		"China official statistics (NBS/PBoC/MOFCOM)",
		fmt.Sprintf("Function: %s", funcName),
		fmt.Sprintf("Description: %s", description),
		fmt.Sprintf("Columns: %s", strings.Join(columns, ", ")),
		"",
	}
	for _, row := range shown {
		parts := make([]string, 0, len(columns))
		for _, col := range columns {
			parts = append(parts, fmt.Sprintf("%s=%v", col, row[col]))
		}
		lines = append(lines, strings.Join(parts, "  "))
	}

	return Result{
		Content:    strings.Join(lines, "\n"),
		DataPeriod: dataPeriod,
		SourceURL:  strptr("https://akshare.akfamily.xyz"),
		SourceType: "china_macro",
		OK:         true,
	}
}

func sortedColumns(row map[string]any) []string {
	columns := make([]string, 0, len(row))
	for k := range row {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return columns
}

func findDateColumn(columns []string) string {
	for _, col := range columns {
		lower := strings.ToLower(col)
		for _, marker := range chinaDateMarkers {
			if strings.Contains(lower, marker) {
				return col
			}
		}
	}
	return ""
}
