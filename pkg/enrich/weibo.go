package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const weiboAPIBaseURL = "https://m.weibo.cn"

// WeiboSource resolves reposted originals and collapsed long-post bodies
// through the weibo mobile endpoint. No credentials are required.
type WeiboSource struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWeiboSource returns the weibo context source.
func NewWeiboSource() *WeiboSource {
	return &WeiboSource{
		baseURL:    weiboAPIBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.Default().With("component", "weibo-context"),
	}
}

// Platform implements ContextSource.
func (s *WeiboSource) Platform() string { return "weibo" }

// FetchContext loads the status detail: a reposted original becomes a quoted
// piece, and a collapsed long post becomes the replacement body.
func (s *WeiboSource) FetchContext(ctx context.Context, externalID string) (*PostContext, error) {
	// The mobile endpoint rejects requests without browser headers.
	headers := map[string]string{
		"User-Agent": "Mozilla/5.0",
		"Referer":    "https://m.weibo.cn/",
	}

	var decoded weiboShowResponse
	reqURL := s.baseURL + "/statuses/show?id=" + url.QueryEscape(externalID)
	if err := getJSON(ctx, s.httpClient, reqURL, headers, &decoded); err != nil {
		return nil, fmt.Errorf("status lookup failed: %w", err)
	}

	pc := &PostContext{}

	if rt := decoded.Data.RetweetedStatus; rt != nil {
		author := "unknown"
		if rt.User != nil && rt.User.ScreenName != "" {
			author = rt.User.ScreenName
		}
		pc.Pieces = append(pc.Pieces, Piece{
			Role:    RoleQuoted,
			Author:  author,
			Content: stripHTML(rt.Text),
		})
	}

	if lt := decoded.Data.LongText; lt != nil && lt.Content != "" {
		pc.FullText = stripHTML(lt.Content)
	}

	return pc, nil
}

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// stripHTML removes markup tags from weibo HTML fragments.
func stripHTML(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}

type weiboShowResponse struct {
	Data weiboStatus `json:"data"`
}

type weiboStatus struct {
	Text            string         `json:"text"`
	User            *weiboUser     `json:"user"`
	RetweetedStatus *weiboStatus   `json:"retweeted_status"`
	LongText        *weiboLongText `json:"longText"`
}

type weiboUser struct {
	ScreenName string `json:"screen_name"`
}

type weiboLongText struct {
	Content string `json:"longTextContent"`
}
