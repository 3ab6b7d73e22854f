package ingest

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/credlens/pundit/ent/monitoredsource"
)

// ErrUnrecognizedURL marks input that matches no supported platform shape.
var ErrUnrecognizedURL = errors.New("unrecognized or unsupported URL")

// ParsedURL is the platform identity extracted from a submitted URL.
type ParsedURL struct {
	Platform     string
	SourceType   monitoredsource.SourceType
	PlatformID   string
	CanonicalURL string
}

var (
	twitterPostRe    = regexp.MustCompile(`(?:twitter\.com|x\.com)/\w+/status/(\d+)`)
	twitterProfileRe = regexp.MustCompile(`(?:twitter\.com|x\.com)/(@?\w+)/?$`)
	weiboPostRe      = regexp.MustCompile(`weibo\.com/\d+/(\w+)|m\.weibo\.cn/(?:status|detail)/(\w+)`)
	weiboProfileRe   = regexp.MustCompile(`weibo\.com/(?:u/)?(\d+)/?$|weibo\.com/(\w+)/?$`)
	youtubeVideoRe   = regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=|youtu\.be/|youtube\.com/shorts/)([A-Za-z0-9_-]{11})`)
)

// ParseURL recognizes twitter/x post and profile URLs, weibo post and
// profile URLs, and youtube video URLs. A missing scheme defaults to https.
func ParseURL(raw string) (ParsedURL, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ParsedURL{}, fmt.Errorf("%w: %s", ErrUnrecognizedURL, raw)
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "twitter.com") || strings.Contains(host, "x.com"):
		if m := twitterPostRe.FindStringSubmatch(raw); m != nil {
			return ParsedURL{
				Platform:     "twitter",
				SourceType:   monitoredsource.SourceTypePost,
				PlatformID:   m[1],
				CanonicalURL: raw,
			}, nil
		}
		if m := twitterProfileRe.FindStringSubmatch(raw); m != nil {
			username := strings.TrimPrefix(m[1], "@")
			return ParsedURL{
				Platform:     "twitter",
				SourceType:   monitoredsource.SourceTypeProfile,
				PlatformID:   username,
				CanonicalURL: "https://twitter.com/" + username,
			}, nil
		}

	case strings.Contains(host, "weibo.com") || strings.Contains(host, "m.weibo.cn"):
		if m := weiboPostRe.FindStringSubmatch(raw); m != nil {
			postID := m[1]
			if postID == "" {
				postID = m[2]
			}
			return ParsedURL{
				Platform:     "weibo",
				SourceType:   monitoredsource.SourceTypePost,
				PlatformID:   postID,
				CanonicalURL: raw,
			}, nil
		}
		if m := weiboProfileRe.FindStringSubmatch(raw); m != nil {
			userID := m[1]
			if userID == "" {
				userID = m[2]
			}
			return ParsedURL{
				Platform:     "weibo",
				SourceType:   monitoredsource.SourceTypeProfile,
				PlatformID:   userID,
				CanonicalURL: "https://weibo.com/" + userID,
			}, nil
		}

	case strings.Contains(host, "youtube.com") || strings.Contains(host, "youtu.be"):
		if m := youtubeVideoRe.FindStringSubmatch(raw); m != nil {
			return ParsedURL{
				Platform:     "youtube",
				SourceType:   monitoredsource.SourceTypePost,
				PlatformID:   m[1],
				CanonicalURL: "https://www.youtube.com/watch?v=" + m[1],
			}, nil
		}
	}

	return ParsedURL{}, fmt.Errorf("%w: %s", ErrUnrecognizedURL, raw)
}
