package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWeiboSource(t *testing.T, handler http.Handler) *WeiboSource {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	src := NewWeiboSource()
	src.baseURL = server.URL
	return src
}

func TestWeiboFetchContextRepost(t *testing.T) {
	src := newTestWeiboSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/statuses/show", r.URL.Path)
		require.Equal(t, "4907", r.URL.Query().Get("id"))
		require.Equal(t, "Mozilla/5.0", r.Header.Get("User-Agent"))
		require.Equal(t, "https://m.weibo.cn/", r.Header.Get("Referer"))

		w.Write([]byte(`{"data": {
			"text": "Exactly what I warned about",
			"retweeted_status": {
				"user": {"screen_name": "经济观察员"},
				"text": "央行宣布<a href=\"/n/链接\">降准0.5个百分点</a><br/>释放流动性"
			}
		}}`))
	}))

	pc, err := src.FetchContext(context.Background(), "4907")

	require.NoError(t, err)
	require.Len(t, pc.Pieces, 1)
	assert.Equal(t, RoleQuoted, pc.Pieces[0].Role)
	assert.Equal(t, "经济观察员", pc.Pieces[0].Author)
	assert.Equal(t, "央行宣布降准0.5个百分点释放流动性", pc.Pieces[0].Content)
	assert.Empty(t, pc.FullText)
}

func TestWeiboFetchContextLongText(t *testing.T) {
	src := newTestWeiboSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {
			"text": "短预览...全文",
			"longText": {"longTextContent": "<p>这是完整的长文正文，包含被折叠的全部论述。</p>"}
		}}`))
	}))

	pc, err := src.FetchContext(context.Background(), "88")

	require.NoError(t, err)
	assert.Empty(t, pc.Pieces)
	assert.Equal(t, "这是完整的长文正文，包含被折叠的全部论述。", pc.FullText)
}

func TestWeiboFetchContextPlainPost(t *testing.T) {
	src := newTestWeiboSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"text": "just an opinion"}}`))
	}))

	pc, err := src.FetchContext(context.Background(), "5")

	require.NoError(t, err)
	assert.Empty(t, pc.Pieces)
	assert.Empty(t, pc.FullText)
}

func TestWeiboFetchContextUpstreamError(t *testing.T) {
	src := newTestWeiboSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))

	_, err := src.FetchContext(context.Background(), "5")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status lookup failed")
}

func TestStripHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "no markup here", "no markup here"},
		{"tags", "a<br/>b<span class=\"url-icon\">c</span>", "abc"},
		{"whitespace", "  <p>padded</p>  ", "padded"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripHTML(tc.in))
		})
	}
}
