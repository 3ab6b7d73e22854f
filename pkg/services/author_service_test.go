package services

import (
	"context"
	"testing"

	"github.com/credlens/pundit/pkg/models"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorService_GetOrCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	authorService := NewAuthorService(client.Client)
	ctx := context.Background()

	t.Run("creates author on first sight", func(t *testing.T) {
		a, err := authorService.GetOrCreate(ctx, AuthorSeed{
			Name:       "Ray Dalio",
			Platform:   "twitter",
			PlatformID: strPtr("raydalio"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Ray Dalio", a.Name)
		assert.Equal(t, "twitter", a.Platform)
		require.NotNil(t, a.PlatformID)
		assert.Equal(t, "raydalio", *a.PlatformID)
		assert.False(t, a.ProfileFetched)
	})

	t.Run("returns existing row for same platform identity", func(t *testing.T) {
		first, err := authorService.GetOrCreate(ctx, AuthorSeed{
			Name:       "Cathie Wood",
			Platform:   "twitter",
			PlatformID: strPtr("cathiedwood"),
		})
		require.NoError(t, err)

		// Display name changed, identity did not.
		second, err := authorService.GetOrCreate(ctx, AuthorSeed{
			Name:       "Cathie Wood (ARK)",
			Platform:   "twitter",
			PlatformID: strPtr("cathiedwood"),
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Cathie Wood", second.Name)
	})

	t.Run("falls back to name identity without platform id", func(t *testing.T) {
		first, err := authorService.GetOrCreate(ctx, AuthorSeed{
			Name:     "Anonymous Analyst",
			Platform: "weibo",
		})
		require.NoError(t, err)

		second, err := authorService.GetOrCreate(ctx, AuthorSeed{
			Name:     "Anonymous Analyst",
			Platform: "weibo",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("same name on another platform is a distinct author", func(t *testing.T) {
		tw, err := authorService.GetOrCreate(ctx, AuthorSeed{
			Name:     "Cross Poster",
			Platform: "twitter",
		})
		require.NoError(t, err)

		wb, err := authorService.GetOrCreate(ctx, AuthorSeed{
			Name:     "Cross Poster",
			Platform: "weibo",
		})
		require.NoError(t, err)
		assert.NotEqual(t, tw.ID, wb.ID)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := authorService.GetOrCreate(ctx, AuthorSeed{Platform: "twitter"})
		assert.True(t, IsValidationError(err))
	})
}

func TestAuthorService_SaveProfile(t *testing.T) {
	client := testdb.NewTestClient(t)
	authorService := NewAuthorService(client.Client)
	ctx := context.Background()

	t.Run("writes profile and marks fetched", func(t *testing.T) {
		a := seedAuthor(t, client.Client, "Mohamed El-Erian", "twitter", "elerianm")

		updated, err := authorService.SaveProfile(ctx, a.ID, models.AuthorProfile{
			Role:            strPtr("economist, former PIMCO CEO"),
			ExpertiseAreas:  strPtr("macroeconomics, bonds"),
			CredibilityTier: 1,
			ProfileNote:     strPtr("Columnist, frequent Fed commentary"),
		})
		require.NoError(t, err)
		assert.True(t, updated.ProfileFetched)
		assert.NotNil(t, updated.ProfileFetchedAt)
		require.NotNil(t, updated.Role)
		assert.Equal(t, "economist, former PIMCO CEO", *updated.Role)
		require.NotNil(t, updated.CredibilityTier)
		assert.Equal(t, 1, *updated.CredibilityTier)
	})

	t.Run("never overwrites an existing tier", func(t *testing.T) {
		a := seedAuthor(t, client.Client, "Tiered Author", "twitter", "tiered")
		_, err := client.Author.UpdateOneID(a.ID).SetCredibilityTier(2).Save(ctx)
		require.NoError(t, err)

		updated, err := authorService.SaveProfile(ctx, a.ID, models.AuthorProfile{
			Role:            strPtr("pundit"),
			CredibilityTier: 4,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.CredibilityTier)
		assert.Equal(t, 2, *updated.CredibilityTier)
	})

	t.Run("unknown author", func(t *testing.T) {
		_, err := authorService.SaveProfile(ctx, 99999, models.AuthorProfile{CredibilityTier: 5})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAuthorService_MarkProfileFetched(t *testing.T) {
	client := testdb.NewTestClient(t)
	authorService := NewAuthorService(client.Client)
	ctx := context.Background()

	a := seedAuthor(t, client.Client, "Unreachable Author", "youtube", "UCunreach")

	err := authorService.MarkProfileFetched(ctx, a.ID, 5)
	require.NoError(t, err)

	reloaded, err := authorService.GetAuthor(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.ProfileFetched)
	require.NotNil(t, reloaded.CredibilityTier)
	assert.Equal(t, 5, *reloaded.CredibilityTier)
	assert.Nil(t, reloaded.Role)
}

func TestAuthorService_ListUnprofiled(t *testing.T) {
	client := testdb.NewTestClient(t)
	authorService := NewAuthorService(client.Client)
	ctx := context.Background()

	fresh := seedAuthor(t, client.Client, "Fresh Author", "twitter", "fresh1")
	done := seedAuthor(t, client.Client, "Profiled Author", "twitter", "done1")
	_, err := authorService.SaveProfile(ctx, done.ID, models.AuthorProfile{CredibilityTier: 3})
	require.NoError(t, err)

	unprofiled, err := authorService.ListUnprofiled(ctx)
	require.NoError(t, err)
	require.Len(t, unprofiled, 1)
	assert.Equal(t, fresh.ID, unprofiled[0].ID)
}

func TestAuthorService_ListAuthors(t *testing.T) {
	client := testdb.NewTestClient(t)
	authorService := NewAuthorService(client.Client)
	ctx := context.Background()

	seedAuthor(t, client.Client, "Author A", "twitter", "a1")
	seedAuthor(t, client.Client, "Author B", "twitter", "b1")
	seedAuthor(t, client.Client, "Author C", "weibo", "c1")

	t.Run("platform filter", func(t *testing.T) {
		authors, total, err := authorService.ListAuthors(ctx, models.AuthorFilters{Platform: "twitter"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, authors, 2)
	})

	t.Run("pagination", func(t *testing.T) {
		authors, total, err := authorService.ListAuthors(ctx, models.AuthorFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, authors, 1)
	})
}
