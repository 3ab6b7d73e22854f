// Package search provides web search for the fact verifier. The verifier
// degrades to training-knowledge-only mode when no search key is configured.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/credlens/pundit/pkg/config"
	"github.com/credlens/pundit/pkg/version"
)

const tavilyBaseURL = "https://api.tavily.com"

// Result is one search hit with Tavily's extracted content summary.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"` // relevance, 0-1
}

// Client calls the Tavily Search API.
type Client struct {
	apiKey     string
	baseURL    string
	maxResults int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a search client from configuration. Returns nil when the
// API key env var is unset; callers must treat a nil client as
// capability-absent.
func NewClient(cfg *config.SearchConfig) *Client {
	apiKey := strings.TrimSpace(os.Getenv(cfg.APIKeyEnv))
	if apiKey == "" {
		slog.Debug("Web search not configured, verifier will run without it", "env", cfg.APIKeyEnv)
		return nil
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    tavilyBaseURL,
		maxResults: cfg.MaxResults,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default().With("component", "search"),
	}
}

// NewClientWithBaseURL targets a custom API URL. Useful for testing with a
// mock server.
func NewClientWithBaseURL(apiKey, baseURL string, maxResults int) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxResults: maxResults,
		httpClient: &http.Client{},
		logger:     slog.Default().With("component", "search"),
	}
}

type searchRequest struct {
	Query             string   `json:"query"`
	MaxResults        int      `json:"max_results"`
	SearchDepth       string   `json:"search_depth"`
	IncludeAnswer     bool     `json:"include_answer"`
	IncludeRawContent bool     `json:"include_raw_content"`
	IncludeDomains    []string `json:"include_domains,omitempty"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Search runs one query. maxResults of 0 uses the configured default;
// includeDomains restricts results to the given hosts when non-empty.
func (c *Client) Search(ctx context.Context, query string, maxResults int, includeDomains []string) ([]Result, error) {
	if maxResults <= 0 {
		maxResults = c.maxResults
	}

	body, err := json.Marshal(searchRequest{
		Query:             query,
		MaxResults:        maxResults,
		SearchDepth:       "advanced",
		IncludeAnswer:     false,
		IncludeRawContent: false,
		IncludeDomains:    includeDomains,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", version.Full())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	c.logger.Debug("Search completed", "query", query, "results", len(parsed.Results))
	return parsed.Results, nil
}

// FormatResults renders hits as a numbered text block an LLM can cite.
// Content is truncated to keep prompt size bounded.
func FormatResults(results []Result) string {
	if len(results) == 0 {
		return "(no search results)"
	}

	const maxContent = 400
	var sb strings.Builder
	for i, r := range results {
		fmt.Fprintf(&sb, "[source %d] %s\n", i+1, r.Title)
		fmt.Fprintf(&sb, "  URL: %s\n", r.URL)
		content := r.Content
		if len(content) > maxContent {
			content = content[:maxContent] + "…"
		}
		fmt.Fprintf(&sb, "  Summary: %s\n\n", content)
	}
	return strings.TrimSpace(sb.String())
}

// BuildFactQuery derives a search query from fact fields, preferring the
// verifiable expression over the raw claim. Search engines work best with
// short queries, so the text is capped.
func BuildFactQuery(claim string, verifiableExpression *string) string {
	base := claim
	if verifiableExpression != nil && *verifiableExpression != "" {
		base = *verifiableExpression
	}
	runes := []rune(base)
	if len(runes) > 200 {
		return string(runes[:200])
	}
	return base
}
