package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/rawpost"
	"github.com/credlens/pundit/pkg/models"
)

// PostService manages collected posts and their quality assessments.
type PostService struct {
	client *ent.Client
}

// NewPostService creates a new PostService
func NewPostService(client *ent.Client) *PostService {
	return &PostService{client: client}
}

// CreatePost dedup-saves one collected post on the (source, external_id)
// identity. The bool reports whether a new row was written; a duplicate
// returns the stored row unchanged.
func (s *PostService) CreatePost(ctx context.Context, data models.RawPostData, sourceID *int) (*ent.RawPost, bool, error) {
	if data.Source == "" {
		return nil, false, NewValidationError("source", "required")
	}
	if data.ExternalID == "" {
		return nil, false, NewValidationError("external_id", "required")
	}
	if data.Content == "" {
		return nil, false, NewValidationError("content", "required")
	}

	existing, err := s.client.RawPost.Query().
		Where(rawpost.SourceEQ(data.Source), rawpost.ExternalIDEQ(data.ExternalID)).
		First(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query post: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.RawPost.Create().
		SetSource(data.Source).
		SetExternalID(data.ExternalID).
		SetContent(data.Content).
		SetAuthorName(data.AuthorName).
		SetNillableAuthorPlatformID(data.AuthorPlatformID).
		SetURL(data.URL).
		SetPostedAt(data.PostedAt).
		SetNillableMonitoredSourceID(sourceID)

	if len(data.Metadata) > 0 {
		raw, err := json.Marshal(data.Metadata)
		if err != nil {
			return nil, false, fmt.Errorf("failed to marshal post metadata: %w", err)
		}
		builder = builder.SetRawMetadata(string(raw))
	}
	if len(data.MediaItems) > 0 {
		raw, err := json.Marshal(data.MediaItems)
		if err != nil {
			return nil, false, fmt.Errorf("failed to marshal post media: %w", err)
		}
		builder = builder.SetMediaJSON(string(raw))
	}

	created, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, qerr := s.client.RawPost.Query().
				Where(rawpost.SourceEQ(data.Source), rawpost.ExternalIDEQ(data.ExternalID)).
				First(ctx)
			if qerr == nil {
				return existing, false, nil
			}
			return nil, false, ErrAlreadyExists
		}
		return nil, false, fmt.Errorf("failed to create post: %w", err)
	}
	return created, true, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(ctx context.Context, id int) (*ent.RawPost, error) {
	p, err := s.client.RawPost.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return p, nil
}

// ListPosts returns posts matching the filters plus the filtered total,
// newest first.
func (s *PostService) ListPosts(ctx context.Context, filters models.PostFilters) ([]*ent.RawPost, int, error) {
	query := s.client.RawPost.Query()
	if filters.Source != "" {
		query = query.Where(rawpost.SourceEQ(filters.Source))
	}
	if filters.AuthorPlatformID != "" {
		query = query.Where(rawpost.AuthorPlatformIDEQ(filters.AuthorPlatformID))
	}
	if filters.Processed != nil {
		query = query.Where(rawpost.IsProcessedEQ(*filters.Processed))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	posts, err := query.
		Order(ent.Desc(rawpost.FieldPostedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, total, nil
}

// ListUnprocessed returns posts the extractor has not decomposed yet, oldest
// first so backlogs drain in collection order. limit <= 0 means no limit.
func (s *PostService) ListUnprocessed(ctx context.Context, limit int) ([]*ent.RawPost, error) {
	query := s.client.RawPost.Query().
		Where(rawpost.IsProcessedEQ(false)).
		Order(ent.Asc(rawpost.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}

	posts, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unprocessed posts: %w", err)
	}
	return posts, nil
}

// ListUnassessed returns processed posts that have no quality assessment.
func (s *PostService) ListUnassessed(ctx context.Context) ([]*ent.RawPost, error) {
	posts, err := s.client.RawPost.Query().
		Where(
			rawpost.IsProcessedEQ(true),
			rawpost.Not(rawpost.HasQualityAssessment()),
		).
		Order(ent.Asc(rawpost.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unassessed posts: %w", err)
	}
	return posts, nil
}

// HasQualityAssessment reports whether the post was already assessed.
func (s *PostService) HasQualityAssessment(ctx context.Context, postID int) (bool, error) {
	exists, err := s.client.PostQualityAssessment.Query().
		Where(postqualityassessment.RawPostIDEQ(postID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check quality assessment: %w", err)
	}
	return exists, nil
}

// CreateQualityAssessment writes one post's quality signals. The unique
// raw_post_id index guards against double assessment.
func (s *PostService) CreateQualityAssessment(ctx context.Context, postID, authorID int, q models.PostQuality) (*ent.PostQualityAssessment, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.PostQualityAssessment.Create().
		SetRawPostID(postID).
		SetAuthorID(authorID).
		SetUniquenessScore(q.UniquenessScore).
		SetNillableUniquenessNote(q.UniquenessNote).
		SetIsFirstMover(q.IsFirstMover).
		SetSimilarClaimCount(q.SimilarClaimCount).
		SetSimilarAuthorCount(q.SimilarAuthorCount).
		SetEffectivenessScore(q.EffectivenessScore).
		SetNillableEffectivenessNote(q.EffectivenessNote).
		SetNoiseRatio(q.NoiseRatio)
	if len(q.NoiseTypes) > 0 {
		builder = builder.SetNoiseTypes(q.NoiseTypes)
	}

	created, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create quality assessment: %w", err)
	}
	return created, nil
}

// GetQualityAssessment returns the assessment for one post, or ErrNotFound.
func (s *PostService) GetQualityAssessment(ctx context.Context, postID int) (*ent.PostQualityAssessment, error) {
	q, err := s.client.PostQualityAssessment.Query().
		Where(postqualityassessment.RawPostIDEQ(postID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quality assessment: %w", err)
	}
	return q, nil
}

// QualityAssessmentsByAuthor returns every assessment of one author's posts.
func (s *PostService) QualityAssessmentsByAuthor(ctx context.Context, authorID int) ([]*ent.PostQualityAssessment, error) {
	rows, err := s.client.PostQualityAssessment.Query().
		Where(postqualityassessment.AuthorIDEQ(authorID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quality assessments: %w", err)
	}
	return rows, nil
}
