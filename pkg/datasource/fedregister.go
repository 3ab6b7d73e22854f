package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/credlens/pundit/pkg/config"
)

// fedRegisterAdapter searches the Federal Register for presidential
// documents, rules, and notices. Useful for executive orders, tariff
// proclamations, and trade policy announcements. No API key is required.
type fedRegisterAdapter struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newFedRegisterAdapter(cfg *config.DataSourceConfig, logger *slog.Logger) *fedRegisterAdapter {
	return &fedRegisterAdapter{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeoutOrDefault(cfg.Timeout)},
		logger:     logger,
	}
}

var fedRegisterFields = []string{
	"title", "document_number", "publication_date", "abstract",
	"html_url", "type", "president", "agency_names",
}

type fedRegisterDocument struct {
	Title           string   `json:"title"`
	DocumentNumber  string   `json:"document_number"`
	PublicationDate string   `json:"publication_date"`
	Abstract        string   `json:"abstract"`
	HTMLURL         string   `json:"html_url"`
	Type            string   `json:"type"`
	AgencyNames     []string `json:"agency_names"`
}

type fedRegisterResponse struct {
	Count   int                   `json:"count"`
	Results []fedRegisterDocument `json:"results"`
}

// query searches documents by term.
//
// Parameters: search_terms (required), type (PRESDOCU, RULE, PRORULE,
// or NOTICE, default PRESDOCU), per_page (default 5, capped at 10),
// start_date and end_date to bound the publication date.
func (a *fedRegisterAdapter) query(ctx context.Context, params map[string]any) Result {
	searchTerms := stringParam(params, "search_terms", "")
	if searchTerms == "" {
		return fail("federal_register", "Federal Register query failed: no search_terms given")
	}

	docType := stringParam(params, "type", "PRESDOCU")
	perPage := intParam(params, "per_page", 5)
	if perPage > 10 {
		perPage = 10
	}

	q := url.Values{}
	q.Set("conditions[term]", searchTerms)
	q.Add("conditions[type][]", docType)
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("order", "relevance")
	for _, field := range fedRegisterFields {
		q.Add("fields[]", field)
	}
	if start := stringParam(params, "start_date", ""); start != "" {
		q.Set("conditions[publication_date][gte]", start)
	}
	if end := stringParam(params, "end_date", ""); end != "" {
		q.Set("conditions[publication_date][lte]", end)
	}

	var decoded fedRegisterResponse
	if err := getJSON(ctx, a.httpClient, a.baseURL+"/documents?"+q.Encode(), &decoded); err != nil {
		a.logger.Warn("Federal Register query failed", "search_terms", searchTerms, "error", err)
		return failAt("federal_register", fmt.Sprintf("Federal Register query failed: %v", err), "https://www.federalregister.gov")
	}
	if len(decoded.Results) == 0 {
		return failAt("federal_register", fmt.Sprintf("Federal Register found no documents for %q", searchTerms), "https://www.federalregister.gov")
	}

	var dates []string
	for _, doc := range decoded.Results {
		if doc.PublicationDate != "" {
			dates = append(dates, doc.PublicationDate)
		}
	}
	var dataPeriod *string
	if len(dates) > 0 {
		sort.Strings(dates)
		dataPeriod = strptr(fmt.Sprintf("%s to %s", dates[0], dates[len(dates)-1]))
	}

	lines := []string{
		"Federal Register search results",
		fmt.Sprintf("Query: %s", searchTerms),
		fmt.Sprintf("Document type: %s", docType),
		fmt.Sprintf("Found %d documents, showing the first %d", decoded.Count, len(decoded.Results)),
		strings.Repeat("=", 60),
	}
	for i, doc := range decoded.Results {
		lines = append(lines,
			"",
			fmt.Sprintf("[Document %d]", i+1),
			fmt.Sprintf("  Title: %s", orNA(doc.Title)),
			fmt.Sprintf("  Document number: %s", orNA(doc.DocumentNumber)),
			fmt.Sprintf("  Published: %s", orNA(doc.PublicationDate)),
			fmt.Sprintf("  Type: %s", orNA(doc.Type)),
		)
		if len(doc.AgencyNames) > 0 {
			names := doc.AgencyNames
			if len(names) > 3 {
				names = names[:3]
			}
			lines = append(lines, fmt.Sprintf("  Agencies: %s", strings.Join(names, ", ")))
		}
		if doc.Abstract != "" {
			lines = append(lines, fmt.Sprintf("  Abstract: %s", truncate(doc.Abstract, 300)))
		}
		lines = append(lines, fmt.Sprintf("  URL: %s", orNA(doc.HTMLURL)))
	}

	return Result{
		Content:    strings.Join(lines, "\n"),
		DataPeriod: dataPeriod,
		SourceURL:  strptr("https://www.federalregister.gov"),
		SourceType: "federal_register",
		OK:         true,
	}
}
