// Package ingest turns submitted URLs into monitored sources and keeps the
// raw post store fed by polling them.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/services"
)

// historyWindow bounds the initial backfill of a profile source.
const historyWindow = 365 * 24 * time.Hour

// Ingestor registers sources, resolves their authors, and dedup-saves the
// posts its fetchers return.
type Ingestor struct {
	sources  *services.SourceService
	authors  *services.AuthorService
	posts    *services.PostService
	fetchers map[string]Fetcher
	logger   *slog.Logger
}

// New creates an Ingestor. fetchers maps platform names to their external
// collaborator; a nil or partial map is fine.
func New(client *ent.Client, fetchers map[string]Fetcher) *Ingestor {
	return &Ingestor{
		sources:  services.NewSourceService(client),
		authors:  services.NewAuthorService(client),
		posts:    services.NewPostService(client),
		fetchers: fetchers,
		logger:   slog.Default().With("component", "ingest"),
	}
}

// Result reports one ProcessURL call. Author is nil when the source is
// fetcher-less and nothing identifies the account yet.
type Result struct {
	Source      *ent.MonitoredSource
	Author      *ent.Author
	NewPosts    []*ent.RawPost
	IsNewSource bool
}

// ProcessURL registers the URL as a monitored source, backfills its posts
// when a fetcher for the platform exists, and links the author. Submitting
// an already-registered URL returns the existing source untouched.
func (i *Ingestor) ProcessURL(ctx context.Context, rawURL string) (*Result, error) {
	parsed, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	i.logger.Info("Processing URL",
		"platform", parsed.Platform,
		"source_type", parsed.SourceType,
		"platform_id", parsed.PlatformID)

	source, created, err := i.sources.Register(ctx, services.SourceSeed{
		URL:        parsed.CanonicalURL,
		SourceType: parsed.SourceType,
		Platform:   parsed.Platform,
		PlatformID: parsed.PlatformID,
	})
	if err != nil {
		return nil, err
	}
	if !created {
		i.logger.Info("Source already registered", "source_id", source.ID)
		res := &Result{Source: source}
		if source.AuthorID != nil {
			if a, err := i.authors.GetAuthor(ctx, *source.AuthorID); err == nil {
				res.Author = a
			}
		}
		return res, nil
	}

	var fetched []models.RawPostData
	if fetcher, ok := i.fetchers[parsed.Platform]; ok {
		fetched, err = i.fetch(ctx, fetcher, parsed.SourceType, parsed.PlatformID, time.Now().Add(-historyWindow))
		if err != nil {
			// The source stays registered; the poller retries the backfill.
			i.logger.Error("Initial fetch failed", "source_id", source.ID, "error", err)
			fetched = nil
		}
	}

	author, err := i.resolveAuthor(ctx, parsed, fetched)
	if err != nil {
		return nil, err
	}
	if author != nil {
		if err := i.sources.AttachAuthor(ctx, source.ID, author.ID); err != nil {
			return nil, err
		}
	}

	saved := i.savePosts(ctx, fetched, source.ID)
	if parsed.SourceType == monitoredsource.SourceTypeProfile && len(fetched) > 0 {
		if err := i.sources.MarkHistoryFetched(ctx, source.ID); err != nil {
			i.logger.Error("Failed to mark history fetched", "source_id", source.ID, "error", err)
		}
	}

	i.logger.Info("Source registered",
		"source_id", source.ID,
		"new_posts", len(saved))
	return &Result{Source: source, Author: author, NewPosts: saved, IsNewSource: true}, nil
}

// PollDue re-fetches every active source past its interval. Per-source
// failures are logged and left unstamped so the next cycle retries them.
func (i *Ingestor) PollDue(ctx context.Context) error {
	now := time.Now()
	due, err := i.sources.ListDue(ctx, now)
	if err != nil {
		return err
	}
	for _, src := range due {
		if err := ctx.Err(); err != nil {
			return err
		}
		i.poll(ctx, src, now)
	}
	return nil
}

func (i *Ingestor) poll(ctx context.Context, src *ent.MonitoredSource, now time.Time) {
	fetcher, ok := i.fetchers[src.Platform]
	if !ok {
		i.logger.Debug("No fetcher for platform, source waits for pushed posts", "source_id", src.ID, "platform", src.Platform)
		sourcePolls.WithLabelValues("skipped").Inc()
		return
	}

	since := now.Add(-historyWindow)
	if src.LastFetchedAt != nil {
		since = *src.LastFetchedAt
	}
	fetched, err := i.fetch(ctx, fetcher, src.SourceType, src.PlatformID, since)
	if err != nil {
		i.logger.Error("Poll failed", "source_id", src.ID, "error", err)
		sourcePolls.WithLabelValues("failed").Inc()
		return
	}

	saved := i.savePosts(ctx, fetched, src.ID)
	if err := i.sources.StampFetched(ctx, src.ID, now); err != nil {
		i.logger.Error("Failed to stamp poll", "source_id", src.ID, "error", err)
		sourcePolls.WithLabelValues("failed").Inc()
		return
	}
	sourcePolls.WithLabelValues("ok").Inc()
	if len(saved) > 0 {
		i.logger.Info("Poll saved new posts", "source_id", src.ID, "count", len(saved))
	}
}

func (i *Ingestor) fetch(ctx context.Context, fetcher Fetcher, sourceType monitoredsource.SourceType, platformID string, since time.Time) ([]models.RawPostData, error) {
	if sourceType == monitoredsource.SourceTypeProfile {
		return fetcher.FetchProfile(ctx, platformID, since)
	}
	return fetcher.FetchPost(ctx, platformID)
}

// resolveAuthor get-or-creates the account behind the source. Fetched posts
// name the author best; a fetcher-less profile source falls back to the
// username from the URL; a fetcher-less post source identifies nobody.
func (i *Ingestor) resolveAuthor(ctx context.Context, parsed ParsedURL, fetched []models.RawPostData) (*ent.Author, error) {
	seed := services.AuthorSeed{Platform: parsed.Platform}
	switch {
	case len(fetched) > 0:
		seed.Name = fetched[0].AuthorName
		seed.PlatformID = fetched[0].AuthorPlatformID
	case parsed.SourceType == monitoredsource.SourceTypeProfile:
		seed.Name = parsed.PlatformID
		id := parsed.PlatformID
		seed.PlatformID = &id
	default:
		return nil, nil
	}
	if parsed.SourceType == monitoredsource.SourceTypeProfile {
		seed.ProfileURL = &parsed.CanonicalURL
	}

	author, err := i.authors.GetOrCreate(ctx, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}
	return author, nil
}

func (i *Ingestor) savePosts(ctx context.Context, fetched []models.RawPostData, sourceID int) []*ent.RawPost {
	saved := make([]*ent.RawPost, 0, len(fetched))
	for _, data := range fetched {
		post, created, err := i.posts.CreatePost(ctx, data, &sourceID)
		if err != nil {
			i.logger.Error("Failed to save fetched post", "external_id", data.ExternalID, "error", err)
			continue
		}
		if created {
			saved = append(saved, post)
			postsIngested.WithLabelValues(data.Source).Inc()
		}
	}
	return saved
}
