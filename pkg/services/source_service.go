package services

import (
	"context"
	"fmt"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/monitoredsource"
)

// SourceService manages the registry of polled post and profile URLs.
type SourceService struct {
	client *ent.Client
}

// NewSourceService creates a new SourceService
func NewSourceService(client *ent.Client) *SourceService {
	return &SourceService{client: client}
}

// SourceSeed is the identity and polling configuration of a source to
// register. A zero FetchIntervalMinutes keeps the schema default.
type SourceSeed struct {
	URL                  string
	SourceType           monitoredsource.SourceType
	Platform             string
	PlatformID           string
	AuthorID             *int
	FetchIntervalMinutes int
}

// Register creates the source unless its (platform, platform_id, source_type)
// identity is already registered; the bool reports whether a row was created.
func (s *SourceService) Register(ctx context.Context, seed SourceSeed) (*ent.MonitoredSource, bool, error) {
	if seed.URL == "" {
		return nil, false, NewValidationError("url", "required")
	}
	if seed.Platform == "" {
		return nil, false, NewValidationError("platform", "required")
	}
	if seed.PlatformID == "" {
		return nil, false, NewValidationError("platform_id", "required")
	}

	existing, err := s.client.MonitoredSource.Query().
		Where(
			monitoredsource.PlatformEQ(seed.Platform),
			monitoredsource.PlatformIDEQ(seed.PlatformID),
			monitoredsource.SourceTypeEQ(seed.SourceType),
		).
		First(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query source: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.MonitoredSource.Create().
		SetURL(seed.URL).
		SetSourceType(seed.SourceType).
		SetPlatform(seed.Platform).
		SetPlatformID(seed.PlatformID).
		SetNillableAuthorID(seed.AuthorID)
	if seed.FetchIntervalMinutes > 0 {
		builder = builder.SetFetchIntervalMinutes(seed.FetchIntervalMinutes)
	}

	created, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, qerr := s.client.MonitoredSource.Query().
				Where(
					monitoredsource.PlatformEQ(seed.Platform),
					monitoredsource.PlatformIDEQ(seed.PlatformID),
					monitoredsource.SourceTypeEQ(seed.SourceType),
				).
				First(ctx)
			if qerr == nil {
				return existing, false, nil
			}
			return nil, false, ErrAlreadyExists
		}
		return nil, false, fmt.Errorf("failed to register source: %w", err)
	}
	return created, true, nil
}

// GetSource retrieves a source by ID
func (s *SourceService) GetSource(ctx context.Context, id int) (*ent.MonitoredSource, error) {
	src, err := s.client.MonitoredSource.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}
	return src, nil
}

// ListSources returns all sources, active first, newest last.
func (s *SourceService) ListSources(ctx context.Context) ([]*ent.MonitoredSource, error) {
	sources, err := s.client.MonitoredSource.Query().
		Order(ent.Desc(monitoredsource.FieldIsActive), ent.Asc(monitoredsource.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	return sources, nil
}

// ListDue returns active sources whose fetch interval has elapsed (or that
// were never fetched). Intervals vary per row, so the window check runs on
// the loaded set.
func (s *SourceService) ListDue(ctx context.Context, now time.Time) ([]*ent.MonitoredSource, error) {
	active, err := s.client.MonitoredSource.Query().
		Where(monitoredsource.IsActiveEQ(true)).
		Order(ent.Asc(monitoredsource.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sources: %w", err)
	}

	due := make([]*ent.MonitoredSource, 0, len(active))
	for _, src := range active {
		if src.LastFetchedAt == nil {
			due = append(due, src)
			continue
		}
		interval := time.Duration(src.FetchIntervalMinutes) * time.Minute
		if !now.Before(src.LastFetchedAt.Add(interval)) {
			due = append(due, src)
		}
	}
	return due, nil
}

// StampFetched records a completed poll.
func (s *SourceService) StampFetched(ctx context.Context, id int, at time.Time) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.MonitoredSource.UpdateOneID(id).
		SetLastFetchedAt(at).
		Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to stamp source fetch: %w", err)
	}
	return nil
}

// MarkHistoryFetched records that a profile source's backfill has run.
func (s *SourceService) MarkHistoryFetched(ctx context.Context, id int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.MonitoredSource.UpdateOneID(id).
		SetHistoryFetched(true).
		Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark source history fetched: %w", err)
	}
	return nil
}

// AttachAuthor links a source to the author it was resolved to.
func (s *SourceService) AttachAuthor(ctx context.Context, id, authorID int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.MonitoredSource.UpdateOneID(id).
		SetAuthorID(authorID).
		Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to attach author to source: %w", err)
	}
	return nil
}
