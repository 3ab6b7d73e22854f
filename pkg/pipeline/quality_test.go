package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/pkg/services"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQualityEvaluator(client *ent.Client, model completionModel) *QualityEvaluator {
	return NewQualityEvaluator(
		services.NewPostService(client),
		services.NewAuthorService(client),
		services.NewFactService(client),
		services.NewConclusionService(client),
		model,
	)
}

func substantiveContent() string {
	return strings.Repeat("the fiscal deficit is widening faster than consensus expects ", 3)
}

func TestQualityEvaluator_FirstMoverKeepsItsScore(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	model := staticModel(`{"effectiveness_score": 0.7, "noise_ratio": 0.2, "noise_types": ["promo"], "effectiveness_note": "dense argument"}`)
	evaluator := newQualityEvaluator(client.Client, model)

	postA := seedPost(t, client.Client, postSeed{
		externalID: "8001",
		authorName: "Early Bird",
		platformID: strPtr("early01"),
		content:    substantiveContent(),
		postedAt:   time.Now().Add(-72 * time.Hour),
		processed:  true,
	})
	seedFact(t, client.Client, postA.ID, "the US deficit exceeded 6% of GDP in 2024")

	require.NoError(t, evaluator.Run(ctx))

	rowA, err := client.PostQualityAssessment.Query().
		Where(postqualityassessment.RawPostIDEQ(postA.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, *rowA.UniquenessScore)
	assert.True(t, *rowA.IsFirstMover)
	assert.Equal(t, 0, rowA.SimilarAuthorCount)
	assert.Equal(t, 0, rowA.SimilarClaimCount)
	assert.InDelta(t, 0.7, *rowA.EffectivenessScore, 1e-9)
	assert.InDelta(t, 0.2, *rowA.NoiseRatio, 1e-9)
	assert.Equal(t, []string{"promo"}, rowA.NoiseTypes)

	// Another author repeats the claim two days later.
	postB := seedPost(t, client.Client, postSeed{
		externalID: "8002",
		authorName: "Echo",
		platformID: strPtr("echo01"),
		content:    substantiveContent(),
		postedAt:   time.Now().Add(-2 * time.Hour),
		processed:  true,
	})
	seedFact(t, client.Client, postB.ID, "the US deficit exceeded 6% of GDP in 2024")

	require.NoError(t, evaluator.Run(ctx))

	rowB, err := client.PostQualityAssessment.Query().
		Where(postqualityassessment.RawPostIDEQ(postB.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/1.4, *rowB.UniquenessScore, 1e-9)
	assert.False(t, *rowB.IsFirstMover)
	assert.Equal(t, 1, rowB.SimilarAuthorCount)
	assert.Equal(t, 1, rowB.SimilarClaimCount)

	// The first post's assessment is immutable.
	again, err := client.PostQualityAssessment.Query().
		Where(postqualityassessment.RawPostIDEQ(postA.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, *again.UniquenessScore)
	assert.True(t, *again.IsFirstMover)
}

func TestQualityEvaluator_NoClaimsShortContent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	calls := 0
	model := modelFunc(func(system, user string) (string, error) {
		calls++
		return "", errors.New("model must not be called")
	})
	evaluator := newQualityEvaluator(client.Client, model)

	post := seedPost(t, client.Client, postSeed{
		externalID: "8003",
		platformID: strPtr("quiet01"),
		content:    "gm",
		processed:  true,
	})

	require.NoError(t, evaluator.Run(ctx))

	row, err := client.PostQualityAssessment.Query().
		Where(postqualityassessment.RawPostIDEQ(post.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.5, *row.UniquenessScore)
	require.NotNil(t, row.UniquenessNote)
	assert.Contains(t, *row.UniquenessNote, "not assessable")
	assert.False(t, *row.IsFirstMover)
	assert.Equal(t, 0.5, *row.EffectivenessScore)
	assert.Equal(t, 0.5, *row.NoiseRatio)
	require.NotNil(t, row.EffectivenessNote)
	assert.Contains(t, *row.EffectivenessNote, "too short")
	assert.Equal(t, 0, calls)
}

func TestQualityEvaluator_ModelFailureKeepsNeutralScores(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	model := modelFunc(func(system, user string) (string, error) {
		return "", errors.New("rate limited")
	})
	evaluator := newQualityEvaluator(client.Client, model)

	post := seedPost(t, client.Client, postSeed{
		externalID: "8004",
		platformID: strPtr("solo01"),
		content:    substantiveContent(),
		processed:  true,
	})
	seedFact(t, client.Client, post.ID, "M2 contracted for a third straight month")

	require.NoError(t, evaluator.Run(ctx))

	row, err := client.PostQualityAssessment.Query().
		Where(postqualityassessment.RawPostIDEQ(post.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, *row.UniquenessScore, "uniqueness is independent of the model")
	assert.Equal(t, 0.5, *row.EffectivenessScore)
	assert.Equal(t, 0.5, *row.NoiseRatio)
	assert.Nil(t, row.EffectivenessNote)
}

func TestQualityEvaluator_EnrichedContentPreferred(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	var seen string
	model := modelFunc(func(system, user string) (string, error) {
		seen = user
		return `{"effectiveness_score": 0.9, "noise_ratio": 0.05, "noise_types": [], "effectiveness_note": "thread adds data"}`, nil
	})
	evaluator := newQualityEvaluator(client.Client, model)

	post := seedPost(t, client.Client, postSeed{
		externalID: "8005",
		platformID: strPtr("thread01"),
		content:    "short teaser",
		processed:  true,
	})
	enriched := substantiveContent() + " [thread context]"
	_, err := client.RawPost.UpdateOneID(post.ID).SetEnrichedContent(enriched).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, evaluator.Run(ctx))

	assert.Contains(t, seen, "[thread context]")
	row, err := client.PostQualityAssessment.Query().
		Where(postqualityassessment.RawPostIDEQ(post.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, *row.EffectivenessScore, 1e-9)
}
