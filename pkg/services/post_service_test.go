package services

import (
	"context"
	"testing"
	"time"

	"github.com/credlens/pundit/pkg/models"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost(t *testing.T) {
	client := testdb.NewTestClient(t)
	postService := NewPostService(client.Client)
	ctx := context.Background()

	data := models.RawPostData{
		Source:           "twitter",
		ExternalID:       "1801",
		Content:          "Gold will outperform equities this year.",
		AuthorName:       "Macro Watcher",
		AuthorPlatformID: strPtr("macrowatcher"),
		URL:              "https://x.com/macrowatcher/status/1801",
		PostedAt:         time.Now().Add(-2 * time.Hour),
		Metadata:         map[string]any{"favorite_count": 42},
		MediaItems:       []models.MediaItem{{Type: "photo", URL: "https://pbs.example/img.jpg"}},
	}

	t.Run("creates post with serialized metadata", func(t *testing.T) {
		post, created, err := postService.CreatePost(ctx, data, nil)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "1801", post.ExternalID)
		assert.False(t, post.IsProcessed)
		require.NotNil(t, post.RawMetadata)
		assert.Contains(t, *post.RawMetadata, "favorite_count")
		require.NotNil(t, post.MediaJSON)
		assert.Contains(t, *post.MediaJSON, "photo")
	})

	t.Run("duplicate identity returns stored row", func(t *testing.T) {
		changed := data
		changed.Content = "edited content"

		post, created, err := postService.CreatePost(ctx, changed, nil)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "Gold will outperform equities this year.", post.Content)
	})

	t.Run("same external id on another source is a new post", func(t *testing.T) {
		other := data
		other.Source = "weibo"

		_, created, err := postService.CreatePost(ctx, other, nil)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		bad := data
		bad.ExternalID = "1802"
		bad.Content = ""

		_, _, err := postService.CreatePost(ctx, bad, nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestPostService_ListUnprocessed(t *testing.T) {
	client := testdb.NewTestClient(t)
	postService := NewPostService(client.Client)
	ctx := context.Background()

	first := seedPost(t, client.Client, "2001")
	second := seedPost(t, client.Client, "2002")
	done := seedPost(t, client.Client, "2003")
	_, err := client.RawPost.UpdateOneID(done.ID).
		SetIsProcessed(true).
		SetProcessedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	t.Run("oldest first, processed excluded", func(t *testing.T) {
		posts, err := postService.ListUnprocessed(ctx, 0)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, first.ID, posts[0].ID)
		assert.Equal(t, second.ID, posts[1].ID)
	})

	t.Run("respects batch limit", func(t *testing.T) {
		posts, err := postService.ListUnprocessed(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, posts, 1)
	})
}

func TestPostService_QualityAssessments(t *testing.T) {
	client := testdb.NewTestClient(t)
	postService := NewPostService(client.Client)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Quality Author", "twitter", "qa1")
	assessed := seedPost(t, client.Client, "3001")
	unassessed := seedPost(t, client.Client, "3002")
	for _, p := range []int{assessed.ID, unassessed.ID} {
		_, err := client.RawPost.UpdateOneID(p).
			SetIsProcessed(true).
			SetProcessedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}

	quality := models.PostQuality{
		UniquenessScore:    1.0,
		UniquenessNote:     strPtr("no similar claims found"),
		IsFirstMover:       true,
		EffectivenessScore: 0.8,
		NoiseRatio:         0.1,
		NoiseTypes:         []string{"filler"},
	}

	t.Run("creates assessment once", func(t *testing.T) {
		row, err := postService.CreateQualityAssessment(ctx, assessed.ID, author.ID, quality)
		require.NoError(t, err)
		require.NotNil(t, row.UniquenessScore)
		assert.Equal(t, 1.0, *row.UniquenessScore)
		require.NotNil(t, row.IsFirstMover)
		assert.True(t, *row.IsFirstMover)
		assert.Equal(t, []string{"filler"}, row.NoiseTypes)

		_, err = postService.CreateQualityAssessment(ctx, assessed.ID, author.ID, quality)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("ListUnassessed skips assessed posts", func(t *testing.T) {
		posts, err := postService.ListUnassessed(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, unassessed.ID, posts[0].ID)
	})

	t.Run("HasQualityAssessment", func(t *testing.T) {
		has, err := postService.HasQualityAssessment(ctx, assessed.ID)
		require.NoError(t, err)
		assert.True(t, has)

		has, err = postService.HasQualityAssessment(ctx, unassessed.ID)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("assessments by author", func(t *testing.T) {
		rows, err := postService.QualityAssessmentsByAuthor(ctx, author.ID)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}
