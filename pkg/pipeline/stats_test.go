package pipeline

import (
	"context"
	"testing"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/authorstats"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/services"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallScore(t *testing.T) {
	t.Run("single dimension scales to 100", func(t *testing.T) {
		snap := models.AuthorStatsSnapshot{FactAccuracyRate: float64Ptr(0.8)}
		got := overallScore(&snap)
		require.NotNil(t, got)
		assert.InDelta(t, 80.0, *got, 1e-9)
	})

	t.Run("no dimensions yields nil", func(t *testing.T) {
		snap := models.AuthorStatsSnapshot{}
		assert.Nil(t, overallScore(&snap))
	})

	t.Run("missing dimensions renormalize the weights", func(t *testing.T) {
		snap := models.AuthorStatsSnapshot{
			FactAccuracyRate:       float64Ptr(1.0),
			ContentUniquenessScore: float64Ptr(0.5),
		}
		got := overallScore(&snap)
		require.NotNil(t, got)
		// (0.20*1.0 + 0.075*0.5) / 0.275 * 100
		assert.InDelta(t, 86.3636, *got, 1e-3)
	})

	t.Run("all dimensions full weight", func(t *testing.T) {
		snap := models.AuthorStatsSnapshot{
			FactAccuracyRate:              float64Ptr(1.0),
			ConclusionAccuracyRate:        float64Ptr(1.0),
			PredictionAccuracyRate:        float64Ptr(1.0),
			LogicRigorScore:               float64Ptr(1.0),
			RecommendationReliabilityRate: float64Ptr(1.0),
			ContentUniquenessScore:        float64Ptr(1.0),
			ContentEffectivenessScore:     float64Ptr(1.0),
		}
		got := overallScore(&snap)
		require.NotNil(t, got)
		assert.InDelta(t, 100.0, *got, 1e-9)
	})
}

func newStatsUpdater(client *ent.Client) *StatsUpdater {
	return NewStatsUpdater(
		services.NewAuthorService(client),
		services.NewConclusionService(client),
		services.NewSolutionService(client),
		services.NewLogicService(client),
		services.NewFactService(client),
		services.NewPostService(client),
		services.NewStatsService(client),
	)
}

func TestStatsUpdater_Scorecard(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "us-economy")
	post := seedPost(t, client.Client, postSeed{externalID: "7001", platformID: strPtr("mm01"), processed: true})
	f1 := seedFact(t, client.Client, post.ID, "CPI rose 3.2% YoY in July")
	f2 := seedFact(t, client.Client, post.ID, "the trade deficit shrank in Q2")
	c1 := seedConclusion(t, client.Client, topic.ID, author.ID, "inflation is cooling")
	c2 := seedConclusion(t, client.Client, topic.ID, author.ID, "net exports drag is over")
	l1 := seedInferenceLogic(t, client.Client, c1.ID, post.ID, []int{f1.ID}, nil)
	l2 := seedInferenceLogic(t, client.Client, c2.ID, post.ID, []int{f2.ID}, nil)

	recordResult(t, client.Client, f1.ID, "true")
	recordResult(t, client.Client, f2.ID, "false")
	assessChain(t, client.Client, l1.ID, "complete", "CPI path implies cooling inflation.")
	assessChain(t, client.Client, l2.ID, "weak", "Trade data read as a trend change.")

	conclusionService := services.NewConclusionService(client.Client)
	_, err := conclusionService.RecordVerdict(ctx, c1.ID, conclusionverdict.VerdictConfirmed, nil)
	require.NoError(t, err)
	_, err = conclusionService.RecordVerdict(ctx, c2.ID, conclusionverdict.VerdictRefuted, nil)
	require.NoError(t, err)

	sol := seedSolution(t, client.Client, author.ID, "fade the dollar")
	_, err = services.NewSolutionService(client.Client).RecordAssessment(ctx, sol.ID, solutionassessment.VerdictPartial, nil)
	require.NoError(t, err)

	_, err = services.NewPostService(client.Client).CreateQualityAssessment(ctx, post.ID, author.ID, models.PostQuality{
		UniquenessScore:    0.8,
		IsFirstMover:       true,
		EffectivenessScore: 0.6,
		NoiseRatio:         0.2,
	})
	require.NoError(t, err)

	updater := newStatsUpdater(client.Client)
	require.NoError(t, updater.Run(ctx))

	stats, err := client.AuthorStats.Query().
		Where(authorstats.AuthorIDEQ(author.ID)).
		Only(ctx)
	require.NoError(t, err)

	require.NotNil(t, stats.FactAccuracyRate)
	assert.InDelta(t, 0.5, *stats.FactAccuracyRate, 1e-9)
	assert.Equal(t, 2, stats.FactAccuracySample)

	require.NotNil(t, stats.ConclusionAccuracyRate)
	assert.InDelta(t, 0.5, *stats.ConclusionAccuracyRate, 1e-9)
	assert.Equal(t, 2, stats.ConclusionAccuracySample)

	assert.Nil(t, stats.PredictionAccuracyRate, "no predictive conclusions were decided")
	assert.Equal(t, 0, stats.PredictionAccuracySample)

	require.NotNil(t, stats.LogicRigorScore)
	assert.InDelta(t, 0.65, *stats.LogicRigorScore, 1e-9)
	assert.Equal(t, 2, stats.LogicRigorSample)

	require.NotNil(t, stats.RecommendationReliabilityRate)
	assert.InDelta(t, 0.0, *stats.RecommendationReliabilityRate, 1e-9)
	assert.Equal(t, 1, stats.RecommendationReliabilitySample)

	require.NotNil(t, stats.ContentUniquenessScore)
	assert.InDelta(t, 0.8, *stats.ContentUniquenessScore, 1e-9)
	require.NotNil(t, stats.ContentEffectivenessScore)
	assert.InDelta(t, 0.6, *stats.ContentEffectivenessScore, 1e-9)

	assert.Equal(t, 1, stats.TotalPostsAnalyzed)
	require.NotNil(t, stats.OverallCredibilityScore)
	// (0.2*0.5 + 0.15*0.5 + 0.15*0.65 + 0.15*0 + 0.075*0.8 + 0.075*0.6) / 0.80 * 100
	assert.InDelta(t, 47.1875, *stats.OverallCredibilityScore, 1e-6)

	// Recomputing overwrites the same row.
	require.NoError(t, updater.Run(ctx))
	n, err := client.AuthorStats.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStatsUpdater_PendingVerdictsExcluded(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Quiet Carol", "weibo", "qc01")
	topic := seedTopic(t, client.Client, "china-credit")
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "credit impulse is turning")
	_, err := services.NewConclusionService(client.Client).RecordVerdict(ctx, c.ID, conclusionverdict.VerdictPending, nil)
	require.NoError(t, err)

	require.NoError(t, newStatsUpdater(client.Client).Run(ctx))

	stats, err := client.AuthorStats.Query().
		Where(authorstats.AuthorIDEQ(author.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Nil(t, stats.ConclusionAccuracyRate)
	assert.Equal(t, 0, stats.ConclusionAccuracySample)
	assert.Nil(t, stats.OverallCredibilityScore)
	assert.Equal(t, 0, stats.TotalPostsAnalyzed)
}
