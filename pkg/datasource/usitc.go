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
	"time"

	"github.com/credlens/pundit/pkg/config"
)

// usitcTradeURL is the DataWeb charting endpoint for trade volumes.
// Tariff lookups use the HTS REST API from the source's base URL.
const usitcTradeURL = "https://dataweb.usitc.gov/trade/charting/data"

// usitcAdapter queries USITC for HTS tariff rates and import/export
// trade values. Example HTS codes: 8471.30 (laptops), 8704.31 (light
// trucks), 2709.00 (crude oil), 0207 (poultry). No API key is required.
type usitcAdapter struct {
	baseURL    string
	tradeURL   string
	httpClient *http.Client
	logger     *slog.Logger
}

func newUSITCAdapter(cfg *config.DataSourceConfig, logger *slog.Logger) *usitcAdapter {
	return &usitcAdapter{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tradeURL:   usitcTradeURL,
		httpClient: &http.Client{Timeout: timeoutOrDefault(cfg.Timeout)},
		logger:     logger,
	}
}

// query dispatches on the endpoint parameter: "tariff" (default) for
// HTS duty rates, "trade" for import/export values.
func (a *usitcAdapter) query(ctx context.Context, params map[string]any) Result {
	endpoint := strings.ToLower(stringParam(params, "endpoint", "tariff"))
	switch endpoint {
	case "tariff":
		return a.queryTariff(ctx, params)
	case "trade":
		return a.queryTrade(ctx, params)
	default:
		return fail("usitc", fmt.Sprintf("USITC: unsupported endpoint %q", endpoint))
	}
}

// queryTariff looks up duty rates for one HTS code. Dots and spaces in
// the code are stripped before the lookup.
func (a *usitcAdapter) queryTariff(ctx context.Context, params map[string]any) Result {
	htsCode := strings.NewReplacer(".", "", " ", "").Replace(stringParam(params, "hts_code", ""))
	if htsCode == "" {
		return fail("usitc", "USITC tariff query failed: no hts_code given")
	}

	htsURL := fmt.Sprintf("https://hts.usitc.gov/#%s", htsCode)

	var raw json.RawMessage
	requestURL := fmt.Sprintf("%s/api/details/en/%s", a.baseURL, url.PathEscape(htsCode))
	if err := getJSON(ctx, a.httpClient, requestURL, &raw); err != nil {
		a.logger.Warn("USITC tariff lookup failed", "hts_code", htsCode, "error", err)
		return failAt("usitc", fmt.Sprintf("USITC HTS query failed (%s): %v", htsCode, err), htsURL)
	}

	lines := []string{
		"USITC Harmonized Tariff Schedule (HTS)",
		fmt.Sprintf("HTS code: %s", htsCode),
		"",
	}

	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err == nil {
		if len(entries) == 0 {
			return failAt("usitc", fmt.Sprintf("USITC HTS found no data for code %s", htsCode), htsURL)
		}
		if len(entries) > 5 {
			entries = entries[:5]
		}
		for _, entry := range entries {
			desc := firstString(entry, "description", "shortDescription")
			general := firstStringOr(entry, "N/A", "generalRateOfDuty", "general")
			special := firstStringOr(entry, "N/A", "specialRateOfDuty", "special")
			col2 := firstStringOr(entry, "N/A", "column2RateOfDuty", "col2")
			depth, _ := intFromAny(entry["indent"])
			if depth < 0 {
				depth = 0
			}
			indent := strings.Repeat("  ", depth)
			lines = append(lines,
				indent+desc,
				fmt.Sprintf("%s  General rate: %s", indent, general),
				fmt.Sprintf("%s  Special rate: %s", indent, special),
				fmt.Sprintf("%s  Column 2 rate: %s", indent, col2),
				"",
			)
		}
	} else {
		var single map[string]any
		if err := json.Unmarshal(raw, &single); err != nil || len(single) == 0 {
			return failAt("usitc", fmt.Sprintf("USITC HTS found no data for code %s", htsCode), htsURL)
		}
		keys := make([]string, 0, len(single))
		for k := range single {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("  %s: %v", k, single[k]))
		}
	}

	return Result{
		Content:    strings.Join(lines, "\n"),
		DataPeriod: strptr("current HTS schedule"),
		SourceURL:  strptr(htsURL),
		SourceType: "usitc",
		OK:         true,
	}
}

type usitcTradeRequest struct {
	TypeCode       string   `json:"typeCode"`
	FlowType       string   `json:"flowType"` // I = imports, E = exports
	ReportPeriod   []string `json:"reportPeriod"`
	Classification []string `json:"classification"`
	Partner        []string `json:"partner"` // "0000" = world
	Measure        string   `json:"measure"` // VCY = customs value
}

// queryTrade fetches import or export values for a six-digit HS code
// from the DataWeb charting API.
//
// Parameters: hs_code (required), flow ("imports" or "exports", default
// imports), partner (ISO2 code, default world), years (default the last
// three calendar years).
func (a *usitcAdapter) queryTrade(ctx context.Context, params map[string]any) Result {
	hsCode := strings.ReplaceAll(stringParam(params, "hs_code", ""), ".", "")
	if hsCode == "" {
		return fail("usitc", "USITC trade query failed: no hs_code given")
	}

	flow := strings.ToLower(stringParam(params, "flow", "imports"))
	partner := stringParam(params, "partner", "0000")
	years := stringListParam(params, "years")
	if len(years) == 0 {
		currentYear := time.Now().Year()
		years = []string{
			strconv.Itoa(currentYear - 2),
			strconv.Itoa(currentYear - 1),
			strconv.Itoa(currentYear),
		}
	}

	flowType := "I"
	if flow == "exports" {
		flowType = "E"
	}
	classification := hsCode
	if len(classification) > 6 {
		classification = classification[:6]
	}

	payload := usitcTradeRequest{
		TypeCode:       "HTS",
		FlowType:       flowType,
		ReportPeriod:   years,
		Classification: []string{classification},
		Partner:        []string{partner},
		Measure:        "VCY",
	}

	tradePageURL := fmt.Sprintf("https://dataweb.usitc.gov/trade/annual/%s/%s/all", hsCode, flow)

	var decoded any
	if err := postJSON(ctx, a.httpClient, a.tradeURL, payload, &decoded); err != nil {
		a.logger.Warn("USITC trade query failed", "hs_code", hsCode, "error", err)
		return failAt("usitc", fmt.Sprintf("USITC trade query failed (HS %s): %v", hsCode, err), tradePageURL)
	}

	partnerLabel := partner
	if partner == "0000" {
		partnerLabel = "world"
	}
	lines := []string{
		"USITC trade data (DataWeb)",
		fmt.Sprintf("HS code: %s", hsCode),
		fmt.Sprintf("Flow: %s", flow),
		fmt.Sprintf("Partner: %s", partnerLabel),
		"",
	}

	var rows []any
	switch t := decoded.(type) {
	case map[string]any:
		if d, ok := t["data"].([]any); ok {
			rows = d
		} else if d, ok := t["rows"].([]any); ok {
			rows = d
		}
	case []any:
		rows = t
	}
	if len(rows) > 20 {
		rows = rows[:20]
	}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%v", row))
	}

	sortedYears := append([]string(nil), years...)
	sort.Strings(sortedYears)

	return Result{
		Content:    strings.Join(lines, "\n"),
		DataPeriod: strptr(fmt.Sprintf("%s to %s", sortedYears[0], sortedYears[len(sortedYears)-1])),
		SourceURL:  strptr(tradePageURL),
		SourceType: "usitc",
		OK:         true,
	}
}

// firstString returns the first non-empty string value among keys.
func firstString(entry map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := entry[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstStringOr(entry map[string]any, fallback string, keys ...string) string {
	if s := firstString(entry, keys...); s != "" {
		return s
	}
	return fallback
}
