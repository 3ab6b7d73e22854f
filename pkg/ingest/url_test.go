package ingest

import (
	"testing"

	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		platform     string
		sourceType   monitoredsource.SourceType
		platformID   string
		canonicalURL string
	}{
		{
			name:       "x post",
			url:        "https://x.com/macromike/status/1234567890",
			platform:   "twitter",
			sourceType: monitoredsource.SourceTypePost,
			platformID: "1234567890",
		},
		{
			name:       "twitter post without scheme",
			url:        "twitter.com/macromike/status/987",
			platform:   "twitter",
			sourceType: monitoredsource.SourceTypePost,
			platformID: "987",
		},
		{
			name:         "x profile with at sign",
			url:          "https://x.com/@macromike",
			platform:     "twitter",
			sourceType:   monitoredsource.SourceTypeProfile,
			platformID:   "macromike",
			canonicalURL: "https://twitter.com/macromike",
		},
		{
			name:         "twitter profile trailing slash",
			url:          "https://twitter.com/macromike/",
			platform:     "twitter",
			sourceType:   monitoredsource.SourceTypeProfile,
			platformID:   "macromike",
			canonicalURL: "https://twitter.com/macromike",
		},
		{
			name:       "weibo post",
			url:        "https://weibo.com/1234567890/NabcDEF12",
			platform:   "weibo",
			sourceType: monitoredsource.SourceTypePost,
			platformID: "NabcDEF12",
		},
		{
			name:       "mobile weibo status",
			url:        "https://m.weibo.cn/status/Mxyz12345",
			platform:   "weibo",
			sourceType: monitoredsource.SourceTypePost,
			platformID: "Mxyz12345",
		},
		{
			name:         "weibo numeric profile",
			url:          "https://weibo.com/u/5551112223",
			platform:     "weibo",
			sourceType:   monitoredsource.SourceTypeProfile,
			platformID:   "5551112223",
			canonicalURL: "https://weibo.com/5551112223",
		},
		{
			name:         "weibo vanity profile",
			url:          "https://weibo.com/financeblogger",
			platform:     "weibo",
			sourceType:   monitoredsource.SourceTypeProfile,
			platformID:   "financeblogger",
			canonicalURL: "https://weibo.com/financeblogger",
		},
		{
			name:         "youtube watch",
			url:          "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			platform:     "youtube",
			sourceType:   monitoredsource.SourceTypePost,
			platformID:   "dQw4w9WgXcQ",
			canonicalURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name:         "youtube watch with playlist param",
			url:          "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ",
			platform:     "youtube",
			sourceType:   monitoredsource.SourceTypePost,
			platformID:   "dQw4w9WgXcQ",
			canonicalURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name:         "youtu.be short link",
			url:          "https://youtu.be/dQw4w9WgXcQ",
			platform:     "youtube",
			sourceType:   monitoredsource.SourceTypePost,
			platformID:   "dQw4w9WgXcQ",
			canonicalURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name:         "youtube shorts",
			url:          "https://www.youtube.com/shorts/abcdefghijk",
			platform:     "youtube",
			sourceType:   monitoredsource.SourceTypePost,
			platformID:   "abcdefghijk",
			canonicalURL: "https://www.youtube.com/watch?v=abcdefghijk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.platform, got.Platform)
			assert.Equal(t, tt.sourceType, got.SourceType)
			assert.Equal(t, tt.platformID, got.PlatformID)
			if tt.canonicalURL != "" {
				assert.Equal(t, tt.canonicalURL, got.CanonicalURL)
			}
		})
	}
}

func TestParseURL_Unrecognized(t *testing.T) {
	for _, url := range []string{
		"https://example.com/some/article",
		"https://x.com/",
		"https://www.youtube.com/channel/UCabc",
		"not a url at all",
	} {
		_, err := ParseURL(url)
		assert.ErrorIs(t, err, ErrUnrecognizedURL, url)
	}
}
