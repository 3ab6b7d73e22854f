package services

import (
	"context"
	"testing"

	"github.com/credlens/pundit/pkg/models"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Upsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	statsService := NewStatsService(client.Client)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Scored Author", "twitter", "sc1")

	t.Run("creates row on first computation", func(t *testing.T) {
		row, err := statsService.Upsert(ctx, author.ID, models.AuthorStatsSnapshot{
			FactAccuracyRate:        float64Ptr(0.75),
			FactAccuracySample:      4,
			OverallCredibilityScore: float64Ptr(75.0),
			TotalPostsAnalyzed:      2,
		})
		require.NoError(t, err)
		require.NotNil(t, row.FactAccuracyRate)
		assert.Equal(t, 0.75, *row.FactAccuracyRate)
		assert.Equal(t, 4, row.FactAccuracySample)
		assert.Nil(t, row.LogicRigorScore)
		assert.Equal(t, 2, row.TotalPostsAnalyzed)
	})

	t.Run("second snapshot replaces the row wholesale", func(t *testing.T) {
		row, err := statsService.Upsert(ctx, author.ID, models.AuthorStatsSnapshot{
			LogicRigorScore:         float64Ptr(0.6),
			LogicRigorSample:        3,
			OverallCredibilityScore: float64Ptr(60.0),
			TotalPostsAnalyzed:      3,
		})
		require.NoError(t, err)
		// Fact accuracy had no sample this time around: cleared, not kept.
		assert.Nil(t, row.FactAccuracyRate)
		assert.Equal(t, 0, row.FactAccuracySample)
		require.NotNil(t, row.LogicRigorScore)
		assert.Equal(t, 0.6, *row.LogicRigorScore)

		count, err := client.AuthorStats.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestStatsService_Leaderboard(t *testing.T) {
	client := testdb.NewTestClient(t)
	statsService := NewStatsService(client.Client)
	ctx := context.Background()

	high := seedAuthor(t, client.Client, "High Scorer", "twitter", "h1")
	low := seedAuthor(t, client.Client, "Low Scorer", "twitter", "l1")
	unscored := seedAuthor(t, client.Client, "Unscored", "twitter", "u1")

	_, err := statsService.Upsert(ctx, high.ID, models.AuthorStatsSnapshot{
		OverallCredibilityScore: float64Ptr(91.5),
	})
	require.NoError(t, err)
	_, err = statsService.Upsert(ctx, low.ID, models.AuthorStatsSnapshot{
		OverallCredibilityScore: float64Ptr(40.0),
	})
	require.NoError(t, err)
	_, err = statsService.Upsert(ctx, unscored.ID, models.AuthorStatsSnapshot{})
	require.NoError(t, err)

	board, err := statsService.Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, high.ID, board[0].AuthorID)
	assert.Equal(t, low.ID, board[1].AuthorID)

	t.Run("limit", func(t *testing.T) {
		board, err := statsService.Leaderboard(ctx, 1)
		require.NoError(t, err)
		require.Len(t, board, 1)
		assert.Equal(t, high.ID, board[0].AuthorID)
	})
}

func TestStatsService_GetStats(t *testing.T) {
	client := testdb.NewTestClient(t)
	statsService := NewStatsService(client.Client)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Some Author", "twitter", "sa1")

	_, err := statsService.GetStats(ctx, author.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = statsService.Upsert(ctx, author.ID, models.AuthorStatsSnapshot{TotalPostsAnalyzed: 1})
	require.NoError(t, err)

	row, err := statsService.GetStats(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.TotalPostsAnalyzed)
}
