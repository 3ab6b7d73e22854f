package services

import (
	"context"
	"testing"
	"time"

	"github.com/credlens/pundit/ent/monitoredsource"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceService_Register(t *testing.T) {
	client := testdb.NewTestClient(t)
	sourceService := NewSourceService(client.Client)
	ctx := context.Background()

	seed := SourceSeed{
		URL:        "https://x.com/macrowatcher",
		SourceType: monitoredsource.SourceTypeProfile,
		Platform:   "twitter",
		PlatformID: "macrowatcher",
	}

	t.Run("registers a new source", func(t *testing.T) {
		src, created, err := sourceService.Register(ctx, seed)
		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, src.IsActive)
		assert.Equal(t, 60, src.FetchIntervalMinutes)
		assert.False(t, src.HistoryFetched)
	})

	t.Run("same identity is returned, not duplicated", func(t *testing.T) {
		src, created, err := sourceService.Register(ctx, seed)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "https://x.com/macrowatcher", src.URL)
	})

	t.Run("post and profile of the same id are distinct sources", func(t *testing.T) {
		postSeed := seed
		postSeed.SourceType = monitoredsource.SourceTypePost
		postSeed.URL = "https://x.com/macrowatcher/status/1"

		_, created, err := sourceService.Register(ctx, postSeed)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("custom fetch interval", func(t *testing.T) {
		src, created, err := sourceService.Register(ctx, SourceSeed{
			URL:                  "https://weibo.com/u/123",
			SourceType:           monitoredsource.SourceTypeProfile,
			Platform:             "weibo",
			PlatformID:           "123",
			FetchIntervalMinutes: 15,
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 15, src.FetchIntervalMinutes)
	})

	t.Run("rejects missing url", func(t *testing.T) {
		bad := seed
		bad.URL = ""
		_, _, err := sourceService.Register(ctx, bad)
		assert.True(t, IsValidationError(err))
	})
}

func TestSourceService_ListDue(t *testing.T) {
	client := testdb.NewTestClient(t)
	sourceService := NewSourceService(client.Client)
	ctx := context.Background()
	now := time.Now()

	neverFetched, _, err := sourceService.Register(ctx, SourceSeed{
		URL: "https://x.com/a", SourceType: monitoredsource.SourceTypeProfile,
		Platform: "twitter", PlatformID: "a",
	})
	require.NoError(t, err)

	overdue, _, err := sourceService.Register(ctx, SourceSeed{
		URL: "https://x.com/b", SourceType: monitoredsource.SourceTypeProfile,
		Platform: "twitter", PlatformID: "b",
	})
	require.NoError(t, err)
	require.NoError(t, sourceService.StampFetched(ctx, overdue.ID, now.Add(-2*time.Hour)))

	recent, _, err := sourceService.Register(ctx, SourceSeed{
		URL: "https://x.com/c", SourceType: monitoredsource.SourceTypeProfile,
		Platform: "twitter", PlatformID: "c",
	})
	require.NoError(t, err)
	require.NoError(t, sourceService.StampFetched(ctx, recent.ID, now.Add(-5*time.Minute)))

	inactive, _, err := sourceService.Register(ctx, SourceSeed{
		URL: "https://x.com/d", SourceType: monitoredsource.SourceTypeProfile,
		Platform: "twitter", PlatformID: "d",
	})
	require.NoError(t, err)
	_, err = client.MonitoredSource.UpdateOneID(inactive.ID).SetIsActive(false).Save(ctx)
	require.NoError(t, err)

	due, err := sourceService.ListDue(ctx, now)
	require.NoError(t, err)

	ids := make([]int, 0, len(due))
	for _, src := range due {
		ids = append(ids, src.ID)
	}
	assert.Contains(t, ids, neverFetched.ID)
	assert.Contains(t, ids, overdue.ID)
	assert.NotContains(t, ids, recent.ID)
	assert.NotContains(t, ids, inactive.ID)
}

func TestSourceService_AttachAuthor(t *testing.T) {
	client := testdb.NewTestClient(t)
	sourceService := NewSourceService(client.Client)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Profile Owner", "twitter", "owner1")
	src, _, err := sourceService.Register(ctx, SourceSeed{
		URL: "https://x.com/owner1", SourceType: monitoredsource.SourceTypeProfile,
		Platform: "twitter", PlatformID: "owner1",
	})
	require.NoError(t, err)
	assert.Nil(t, src.AuthorID)

	require.NoError(t, sourceService.AttachAuthor(ctx, src.ID, author.ID))
	require.NoError(t, sourceService.MarkHistoryFetched(ctx, src.ID))

	reloaded, err := sourceService.GetSource(ctx, src.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.AuthorID)
	assert.Equal(t, author.ID, *reloaded.AuthorID)
	assert.True(t, reloaded.HistoryFetched)
}
