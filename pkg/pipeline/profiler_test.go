package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/pkg/services"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfiler(client *ent.Client, model completionModel) *AuthorProfiler {
	return NewAuthorProfiler(services.NewAuthorService(client), model, nil)
}

func TestAuthorProfiler_SavesProfile(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	model := staticModel(`{
		"role": "economist",
		"expertise_areas": ["macroeconomics", "monetary policy"],
		"known_biases": "persistently bearish on equities",
		"credibility_tier": 2,
		"profile_note": "former IMF staffer"
	}`)

	require.NoError(t, newProfiler(client.Client, model).Run(ctx))

	got, err := client.Author.Get(ctx, author.ID)
	require.NoError(t, err)
	assert.True(t, got.ProfileFetched)
	assert.NotNil(t, got.ProfileFetchedAt)
	require.NotNil(t, got.Role)
	assert.Equal(t, "economist", *got.Role)
	require.NotNil(t, got.ExpertiseAreas)
	assert.Equal(t, "macroeconomics, monetary policy", *got.ExpertiseAreas)
	require.NotNil(t, got.CredibilityTier)
	assert.Equal(t, 2, *got.CredibilityTier)
	require.NotNil(t, got.ProfileNote)
	assert.Equal(t, "former IMF staffer", *got.ProfileNote)
}

func TestAuthorProfiler_FailureStillMarksFetched(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Mystery Max", "weibo", "mx01")
	calls := 0
	model := modelFunc(func(system, user string) (string, error) {
		calls++
		return "", errors.New("rate limited")
	})
	profiler := newProfiler(client.Client, model)

	require.NoError(t, profiler.Run(ctx))

	got, err := client.Author.Get(ctx, author.ID)
	require.NoError(t, err)
	assert.True(t, got.ProfileFetched, "a failed profile must not stay eligible")
	require.NotNil(t, got.CredibilityTier)
	assert.Equal(t, unknownTier, *got.CredibilityTier)
	assert.Nil(t, got.Role)

	// Marked fetched, so the next pass must not re-query.
	require.NoError(t, profiler.Run(ctx))
	assert.Equal(t, 1, calls)
}

func TestAuthorProfiler_UnparseableOutputMarksFetched(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Garbled Gary", "twitter", "gg01")
	model := staticModel("I could not find anything about this person.")

	require.NoError(t, newProfiler(client.Client, model).Run(ctx))

	got, err := client.Author.Get(ctx, author.ID)
	require.NoError(t, err)
	assert.True(t, got.ProfileFetched)
	require.NotNil(t, got.CredibilityTier)
	assert.Equal(t, unknownTier, *got.CredibilityTier)
}

func TestAuthorProfiler_ExistingTierPreserved(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Known Kate", "twitter", "kk01")
	_, err := client.Author.UpdateOneID(author.ID).SetCredibilityTier(1).Save(ctx)
	require.NoError(t, err)

	model := staticModel(`{"role": "commentator", "expertise_areas": "markets", "known_biases": null, "credibility_tier": 4, "profile_note": null}`)
	require.NoError(t, newProfiler(client.Client, model).Run(ctx))

	got, err := client.Author.Get(ctx, author.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CredibilityTier)
	assert.Equal(t, 1, *got.CredibilityTier, "a manually set tier wins over the model's")
	require.NotNil(t, got.Role)
	assert.Equal(t, "commentator", *got.Role)
}

func TestProfileText(t *testing.T) {
	assert.Nil(t, profileText(nil))
	assert.Nil(t, profileText(""))
	assert.Nil(t, profileText("  "))
	assert.Nil(t, profileText("unknown"))
	assert.Nil(t, profileText("None"))

	require.NotNil(t, profileText("economist"))
	assert.Equal(t, "economist", *profileText("economist"))

	joined := profileText([]any{"macro", "rates"})
	require.NotNil(t, joined)
	assert.Equal(t, "macro, rates", *joined)
}
