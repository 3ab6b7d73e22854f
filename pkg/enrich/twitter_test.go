package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTwitterSource(t *testing.T, handler http.Handler) *TwitterSource {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	src := NewTwitterSource("test-token")
	require.NotNil(t, src)
	src.baseURL = server.URL
	return src
}

func TestNewTwitterSourceRequiresToken(t *testing.T) {
	assert.Nil(t, NewTwitterSource(""))
}

func TestTwitterFetchContextQuotedAndReply(t *testing.T) {
	src := newTestTwitterSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.Equal(t, "/2/tweets/9001", r.URL.Path)
		require.Contains(t, r.URL.Query().Get("expansions"), "referenced_tweets.id")

		w.Write([]byte(`{
			"data": {
				"id": "9001", "text": "Both of you are wrong.",
				"author_id": "1", "conversation_id": "9001",
				"referenced_tweets": [
					{"type": "quoted", "id": "101"},
					{"type": "replied_to", "id": "102"}
				]
			},
			"includes": {
				"users": [{"id": "7", "username": "fed_insider"}],
				"tweets": [{"id": "101", "text": "Rates stay high through 2026.", "author_id": "7"}]
			}
		}`))
	}))

	pc, err := src.FetchContext(context.Background(), "9001")

	require.NoError(t, err)
	require.Len(t, pc.Pieces, 2)

	assert.Equal(t, RoleQuoted, pc.Pieces[0].Role)
	assert.Equal(t, "fed_insider", pc.Pieces[0].Author)
	assert.Equal(t, "Rates stay high through 2026.", pc.Pieces[0].Content)
	assert.Equal(t, "https://twitter.com/i/web/status/101", pc.Pieces[0].URL)

	// The reply parent was not expanded by the API, so a placeholder stands in.
	assert.Equal(t, RoleParentReply, pc.Pieces[1].Role)
	assert.Equal(t, "unknown", pc.Pieces[1].Author)
	assert.Equal(t, "(content unavailable)", pc.Pieces[1].Content)
}

func TestTwitterFetchContextThread(t *testing.T) {
	src := newTestTwitterSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2/tweets/505":
			w.Write([]byte(`{"data": {"id": "505", "text": "part five", "author_id": "1", "conversation_id": "500"}}`))
		case "/2/tweets/search/recent":
			require.Equal(t, "conversation_id:500", r.URL.Query().Get("query"))
			w.Write([]byte(`{
				"data": [
					{"id": "504", "text": "part four", "author_id": "1", "created_at": "2026-08-01T10:04:00Z"},
					{"id": "501", "text": "part one", "author_id": "1", "created_at": "2026-08-01T10:01:00Z"},
					{"id": "505", "text": "part five", "author_id": "1", "created_at": "2026-08-01T10:05:00Z"},
					{"id": "502", "text": "part two", "author_id": "1", "created_at": "2026-08-01T10:02:00Z"},
					{"id": "503", "text": "part three", "author_id": "1", "created_at": "2026-08-01T10:03:00Z"}
				],
				"includes": {"users": [{"id": "1", "username": "thread_author"}]}
			}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	pc, err := src.FetchContext(context.Background(), "505")

	require.NoError(t, err)
	// The current entry is dropped and only the three closest prior entries
	// remain, oldest first.
	require.Len(t, pc.Pieces, 3)
	assert.Equal(t, "part two", pc.Pieces[0].Content)
	assert.Equal(t, "part three", pc.Pieces[1].Content)
	assert.Equal(t, "part four", pc.Pieces[2].Content)
	for _, p := range pc.Pieces {
		assert.Equal(t, RoleThreadPrev, p.Role)
		assert.Equal(t, "thread_author", p.Author)
	}
}

func TestTwitterFetchContextThreadSearchFailureKeepsReferenced(t *testing.T) {
	src := newTestTwitterSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2/tweets/42":
			w.Write([]byte(`{
				"data": {
					"id": "42", "text": "reply", "author_id": "1", "conversation_id": "40",
					"referenced_tweets": [{"type": "replied_to", "id": "40"}]
				},
				"includes": {
					"users": [{"id": "2", "username": "original_poster"}],
					"tweets": [{"id": "40", "text": "the original take", "author_id": "2"}]
				}
			}`))
		case "/2/tweets/search/recent":
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}
	}))

	pc, err := src.FetchContext(context.Background(), "42")

	require.NoError(t, err)
	require.Len(t, pc.Pieces, 1)
	assert.Equal(t, RoleParentReply, pc.Pieces[0].Role)
	assert.Equal(t, "original_poster", pc.Pieces[0].Author)
}

func TestTwitterFetchContextTweetGone(t *testing.T) {
	src := newTestTwitterSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"title": "Not Found Error"}]}`))
	}))

	pc, err := src.FetchContext(context.Background(), "1")

	require.NoError(t, err)
	assert.Empty(t, pc.Pieces)
}

func TestTwitterFetchContextUpstreamError(t *testing.T) {
	src := newTestTwitterSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))

	_, err := src.FetchContext(context.Background(), "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tweet lookup failed")
}
