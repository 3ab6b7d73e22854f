package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"
)

const twitterAPIBaseURL = "https://api.twitter.com"

// threadContextLimit caps how many prior thread entries are attached.
const threadContextLimit = 3

// TwitterSource resolves quoted tweets, reply parents, and prior entries of
// the same thread through the Twitter v2 API.
type TwitterSource struct {
	bearerToken string
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewTwitterSource returns a twitter context source, or nil when no bearer
// token is available.
func NewTwitterSource(bearerToken string) *TwitterSource {
	if bearerToken == "" {
		return nil
	}
	return &TwitterSource{
		bearerToken: bearerToken,
		baseURL:     twitterAPIBaseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		logger:      slog.Default().With("component", "twitter-context"),
	}
}

// Platform implements ContextSource.
func (s *TwitterSource) Platform() string { return "twitter" }

// FetchContext loads the referenced tweets (quoted original, reply parent)
// and, for thread members, up to three prior entries of the conversation.
func (s *TwitterSource) FetchContext(ctx context.Context, externalID string) (*PostContext, error) {
	q := url.Values{}
	q.Set("tweet.fields", "referenced_tweets,conversation_id,author_id,text")
	q.Set("expansions", "referenced_tweets.id,referenced_tweets.id.author_id")
	q.Set("user.fields", "username")

	var lookup twitterLookupResponse
	if err := s.getJSON(ctx, "/2/tweets/"+url.PathEscape(externalID)+"?"+q.Encode(), &lookup); err != nil {
		return nil, fmt.Errorf("tweet lookup failed: %w", err)
	}
	if lookup.Data == nil {
		return &PostContext{}, nil
	}

	users := make(map[string]string, len(lookup.Includes.Users))
	for _, u := range lookup.Includes.Users {
		users[u.ID] = u.Username
	}
	referenced := make(map[string]twitterTweet, len(lookup.Includes.Tweets))
	for _, t := range lookup.Includes.Tweets {
		referenced[t.ID] = t
	}

	var pieces []Piece
	for _, ref := range lookup.Data.ReferencedTweets {
		role := RoleParentReply
		if ref.Type == "quoted" {
			role = RoleQuoted
		}
		author := "unknown"
		content := "(content unavailable)"
		if t, ok := referenced[ref.ID]; ok {
			content = t.Text
			if name, ok := users[t.AuthorID]; ok {
				author = name
			}
		}
		pieces = append(pieces, Piece{
			Role:    role,
			Author:  author,
			Content: content,
			URL:     "https://twitter.com/i/web/status/" + ref.ID,
		})
	}

	if conv := lookup.Data.ConversationID; conv != "" && conv != externalID {
		pieces = append(pieces, s.fetchThread(ctx, conv, externalID)...)
	}

	return &PostContext{Pieces: pieces}, nil
}

// fetchThread returns the last prior entries of a conversation, oldest
// first. Thread lookups are best-effort: a failed search leaves the thread
// out without failing the whole fetch.
func (s *TwitterSource) fetchThread(ctx context.Context, conversationID, currentID string) []Piece {
	q := url.Values{}
	q.Set("query", "conversation_id:"+conversationID)
	q.Set("max_results", "10")
	q.Set("tweet.fields", "author_id,created_at")
	q.Set("expansions", "author_id")
	q.Set("user.fields", "username")

	var search twitterSearchResponse
	if err := s.getJSON(ctx, "/2/tweets/search/recent?"+q.Encode(), &search); err != nil {
		s.logger.Warn("Thread lookup failed", "conversation_id", conversationID, "error", err)
		return nil
	}
	if len(search.Data) == 0 {
		return nil
	}

	users := make(map[string]string, len(search.Includes.Users))
	for _, u := range search.Includes.Users {
		users[u.ID] = u.Username
	}

	tweets := search.Data
	sort.Slice(tweets, func(i, j int) bool { return tweets[i].CreatedAt < tweets[j].CreatedAt })

	var pieces []Piece
	for _, t := range tweets {
		if t.ID == currentID {
			continue
		}
		author := "unknown"
		if name, ok := users[t.AuthorID]; ok {
			author = name
		}
		pieces = append(pieces, Piece{
			Role:    RoleThreadPrev,
			Author:  author,
			Content: t.Text,
			URL:     "https://twitter.com/i/web/status/" + t.ID,
		})
	}
	if len(pieces) > threadContextLimit {
		pieces = pieces[len(pieces)-threadContextLimit:]
	}
	return pieces
}

func (s *TwitterSource) getJSON(ctx context.Context, path string, out any) error {
	headers := map[string]string{"Authorization": "Bearer " + s.bearerToken}
	return getJSON(ctx, s.httpClient, s.baseURL+path, headers, out)
}

type twitterLookupResponse struct {
	Data     *twitterTweet   `json:"data"`
	Includes twitterIncludes `json:"includes"`
}

type twitterSearchResponse struct {
	Data     []twitterTweet  `json:"data"`
	Includes twitterIncludes `json:"includes"`
}

type twitterIncludes struct {
	Users  []twitterUser  `json:"users"`
	Tweets []twitterTweet `json:"tweets"`
}

type twitterTweet struct {
	ID               string       `json:"id"`
	Text             string       `json:"text"`
	AuthorID         string       `json:"author_id"`
	ConversationID   string       `json:"conversation_id"`
	CreatedAt        string       `json:"created_at"`
	ReferencedTweets []twitterRef `json:"referenced_tweets"`
}

type twitterRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type twitterUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
