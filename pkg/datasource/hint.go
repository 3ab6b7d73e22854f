package datasource

import (
	"encoding/json"
	"regexp"
	"strings"
)

// SourceHint is a structured data-source reference recovered from the
// free-text verification method the extractor records on a fact.
type SourceHint struct {
	SourceType string
	Params     map[string]any
}

// hintPrimaryKey names the parameter a bare code token fills for each source.
var hintPrimaryKey = map[string]string{
	"fred":             "series_id",
	"bls":              "series_id",
	"world_bank":       "indicator_id",
	"imf":              "indicator_code",
	"federal_register": "search_terms",
	"usitc":            "hts_code",
	"china_macro":      "function",
}

var (
	// hintTagRe matches a leading "source: rest-of-line" tag, full-width
	// colon included.
	hintTagRe = regexp.MustCompile(`^\s*([a-zA-Z_]+)\s*[:：]\s*([^\n]*)`)

	// hintKVRe matches one key=value pair in a tag remainder.
	hintKVRe = regexp.MustCompile(`([a-z_]+)\s*=\s*([^\s,;]+)`)

	// seriesTokenRe matches FRED/BLS-style series codes in prose: an
	// uppercase alphanumeric run of at least four characters.
	seriesTokenRe = regexp.MustCompile(`\b[A-Z][A-Z0-9]{3,}\b`)

	// wbIndicatorRe matches World Bank dotted indicator codes such as
	// NY.GDP.MKTP.CD.
	wbIndicatorRe = regexp.MustCompile(`\b[A-Z]{2}\.[A-Z0-9]{2,}\.[A-Z0-9.]{2,}\b`)
)

// seriesStopwords are uppercase prose tokens that look like series codes but
// name the sources themselves or recur in verification prose.
var seriesStopwords = map[string]bool{
	"FRED": true, "FED": true, "IMF": true, "USITC": true, "NBS": true,
	"PBOC": true, "MOFCOM": true, "OECD": true, "EDGAR": true, "HKEX": true,
	"NYSE": true, "WEO": true, "DATA": true, "SERIES": true, "API": true,
}

// ParseSourceHint recovers a data-source hint from verification-method text.
// Three spellings are recognized, most explicit first: an embedded JSON
// object ({"source": "fred", "params": {"series_id": "UNRATE"}}), a leading
// source tag ("fred: UNRATE" or "bls: series_id=LNS14000000 start_year=2023"),
// and prose naming a known source next to a series or indicator code
// ("compare the FRED series UNRATE for January 2024"). The parser is
// deliberately conservative: anything it cannot read unambiguously reports
// ok=false and the caller falls back to web search.
func ParseSourceHint(method string) (SourceHint, bool) {
	method = strings.TrimSpace(method)
	if method == "" {
		return SourceHint{}, false
	}

	if hint, ok := parseJSONHint(method); ok {
		return hint, true
	}
	if hint, ok := parseTagHint(method); ok {
		return hint, true
	}
	return parseProseHint(method)
}

type jsonHint struct {
	Source     string         `json:"source"`
	SourceType string         `json:"source_type"`
	Params     map[string]any `json:"params"`
}

func parseJSONHint(method string) (SourceHint, bool) {
	start := strings.Index(method, "{")
	end := strings.LastIndex(method, "}")
	if start == -1 || end <= start {
		return SourceHint{}, false
	}

	var h jsonHint
	if err := json.Unmarshal([]byte(method[start:end+1]), &h); err != nil {
		return SourceHint{}, false
	}
	name := h.Source
	if name == "" {
		name = h.SourceType
	}
	id, ok := sourceAliases[normalizeSourceType(name)]
	if !ok {
		return SourceHint{}, false
	}
	params := h.Params
	if params == nil {
		params = map[string]any{}
	}
	return SourceHint{SourceType: id, Params: params}, true
}

func parseTagHint(method string) (SourceHint, bool) {
	m := hintTagRe.FindStringSubmatch(method)
	if m == nil {
		return SourceHint{}, false
	}
	id, ok := sourceAliases[normalizeSourceType(m[1])]
	if !ok {
		return SourceHint{}, false
	}

	rest := strings.TrimSpace(m[2])
	params := map[string]any{}
	for _, kv := range hintKVRe.FindAllStringSubmatch(rest, -1) {
		params[kv[1]] = kv[2]
	}
	if len(params) == 0 && rest != "" {
		// No key=value pairs: the whole remainder is the primary code.
		if key := hintPrimaryKey[id]; key != "" {
			params[key] = strings.TrimSpace(strings.Trim(rest, ",;"))
		}
	}
	return SourceHint{SourceType: id, Params: params}, true
}

func parseProseHint(method string) (SourceHint, bool) {
	// A dotted World Bank indicator is unambiguous on its own.
	if code := wbIndicatorRe.FindString(method); code != "" {
		return SourceHint{
			SourceType: "world_bank",
			Params:     map[string]any{"indicator_id": strings.TrimRight(code, ".")},
		}, true
	}

	lower := strings.ToLower(method)
	var id string
	switch {
	case strings.Contains(lower, "fred"):
		id = "fred"
	case strings.Contains(lower, "bls") || strings.Contains(lower, "bureau of labor statistics"):
		id = "bls"
	default:
		return SourceHint{}, false
	}

	for _, token := range seriesTokenRe.FindAllString(method, -1) {
		if seriesStopwords[token] {
			continue
		}
		return SourceHint{
			SourceType: id,
			Params:     map[string]any{"series_id": token},
		}, true
	}
	return SourceHint{}, false
}
