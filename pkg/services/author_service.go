package services

import (
	"context"
	"fmt"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/pkg/models"
)

// AuthorService manages tracked commentators. Authors are identified by the
// (platform, platform_id) tuple; rows without a platform id fall back to the
// (platform, name) pair.
type AuthorService struct {
	client *ent.Client
}

// NewAuthorService creates a new AuthorService
func NewAuthorService(client *ent.Client) *AuthorService {
	return &AuthorService{client: client}
}

// AuthorSeed carries the identity and collection-time metadata of an author
// as produced by the ingest layer.
type AuthorSeed struct {
	Name        string
	Platform    string
	PlatformID  *string
	ProfileURL  *string
	Description *string
}

// GetOrCreate returns the author matching the seed's identity, creating the
// row on first sight. A concurrent insert losing the race falls back to the
// winner's row.
func (s *AuthorService) GetOrCreate(ctx context.Context, seed AuthorSeed) (*ent.Author, error) {
	if seed.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if seed.Platform == "" {
		return nil, NewValidationError("platform", "required")
	}

	existing, err := s.findByIdentity(ctx, seed)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Author.Create().
		SetName(seed.Name).
		SetPlatform(seed.Platform).
		SetNillablePlatformID(seed.PlatformID).
		SetNillableProfileURL(seed.ProfileURL).
		SetNillableDescription(seed.Description)

	created, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the insert race; the winner's row is authoritative.
			existing, qerr := s.findByIdentity(ctx, seed)
			if qerr == nil && existing != nil {
				return existing, nil
			}
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (s *AuthorService) findByIdentity(ctx context.Context, seed AuthorSeed) (*ent.Author, error) {
	query := s.client.Author.Query().Where(author.PlatformEQ(seed.Platform))
	if seed.PlatformID != nil && *seed.PlatformID != "" {
		query = query.Where(author.PlatformIDEQ(*seed.PlatformID))
	} else {
		query = query.Where(author.PlatformIDIsNil(), author.NameEQ(seed.Name))
	}

	found, err := query.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query author: %w", err)
	}
	return found, nil
}

// GetAuthor retrieves an author by ID
func (s *AuthorService) GetAuthor(ctx context.Context, id int) (*ent.Author, error) {
	a, err := s.client.Author.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return a, nil
}

// GetByPlatformID retrieves the author matching a platform-native user id.
func (s *AuthorService) GetByPlatformID(ctx context.Context, platformID string) (*ent.Author, error) {
	a, err := s.client.Author.Query().
		Where(author.PlatformIDEQ(platformID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query author by platform id: %w", err)
	}
	return a, nil
}

// ListAuthors returns authors matching the filters plus the unfiltered total.
func (s *AuthorService) ListAuthors(ctx context.Context, filters models.AuthorFilters) ([]*ent.Author, int, error) {
	query := s.client.Author.Query()
	if filters.Platform != "" {
		query = query.Where(author.PlatformEQ(filters.Platform))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	authors, err := query.
		Order(ent.Asc(author.FieldID)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, total, nil
}

// ListAllAuthors returns every author, for full-recompute passes.
func (s *AuthorService) ListAllAuthors(ctx context.Context) ([]*ent.Author, error) {
	authors, err := s.client.Author.Query().
		Order(ent.Asc(author.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

// ListUnprofiled returns authors whose background has not been researched yet.
func (s *AuthorService) ListUnprofiled(ctx context.Context) ([]*ent.Author, error) {
	authors, err := s.client.Author.Query().
		Where(author.ProfileFetchedEQ(false)).
		Order(ent.Asc(author.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unprofiled authors: %w", err)
	}
	return authors, nil
}

// SaveProfile writes the profiler's output and marks the author fetched.
// An already-set credibility tier is never overwritten.
func (s *AuthorService) SaveProfile(ctx context.Context, id int, profile models.AuthorProfile) (*ent.Author, error) {
	current, err := s.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := current.Update().
		SetNillableRole(profile.Role).
		SetNillableExpertiseAreas(profile.ExpertiseAreas).
		SetNillableKnownBiases(profile.KnownBiases).
		SetNillableProfileNote(profile.ProfileNote).
		SetProfileFetched(true).
		SetProfileFetchedAt(time.Now())

	if current.CredibilityTier == nil {
		builder = builder.SetCredibilityTier(profile.CredibilityTier)
	}

	updated, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to save author profile: %w", err)
	}
	return updated, nil
}

// MarkProfileFetched stamps a failed profile lookup so the author is not
// re-queried every pass. The tier defaults to unknown unless already set.
func (s *AuthorService) MarkProfileFetched(ctx context.Context, id int, fallbackTier int) error {
	current, err := s.GetAuthor(ctx, id)
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := current.Update().
		SetProfileFetched(true).
		SetProfileFetchedAt(time.Now())
	if current.CredibilityTier == nil {
		builder = builder.SetCredibilityTier(fallbackTier)
	}

	if err := builder.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to mark author profiled: %w", err)
	}
	return nil
}
