package pipeline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/pkg/prompt"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPipeline_FullPass drives two complete passes over one author's post:
// profile, verify, grade, monitor, simulate, relate, settle, annotate,
// score, aggregate. The second pass must find nothing left to do.
func TestPipeline_FullPass(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	now := time.Now()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "inflation")
	post := seedPost(t, client.Client, postSeed{
		externalID: "full-1",
		authorName: "Macro Mike",
		platformID: strPtr("mm01"),
		content:    substantiveContent(),
		processed:  true,
	})
	factA := seedFact(t, client.Client, post.ID, "CPI printed 3.2% in July")
	factB := seedFact(t, client.Client, post.ID, "core services inflation is running above 4%")
	retro := seedConclusion(t, client.Client, topic.ID, author.ID, "inflation remains above target")
	retroChain := seedInferenceLogic(t, client.Client, retro.ID, post.ID, []int{factA.ID, factB.ID}, nil)
	predictive := seedPredictiveConclusion(t, client.Client, topic.ID, author.ID, "CPI will fall below 3% within a year", nil)
	seedInferenceLogic(t, client.Client, predictive.ID, post.ID, []int{factA.ID}, nil)
	sol := seedSolution(t, client.Client, author.ID, "buy TIPS while breakevens are cheap")
	derivChain := seedDerivationLogic(t, client.Client, sol.ID, post.ID, []int{retro.ID})

	calls := 0
	model := modelFunc(func(system, user string) (string, error) {
		calls++
		switch system {
		case prompt.AuthorProfileSystem:
			return `{"role": "economist", "expertise_areas": ["macroeconomics", "monetary policy"], "known_biases": null, "credibility_tier": 2, "profile_note": "former IMF staffer"}`, nil
		case prompt.FactCheckSystem:
			return `{"result": "true", "evidence_tier": 1, "confidence": "high", "evidence_summary": "matches the official release", "authoritative_links": [{"org": "BLS", "url": "https://www.bls.gov/cpi/", "description": "CPI release"}]}`, nil
		case prompt.LogicEvaluationSystem:
			return `{"logic_completeness": "complete", "one_sentence_summary": "The cited prints entail the claim."}`, nil
		case prompt.ConclusionMonitorSystem:
			return fmt.Sprintf(`{"monitoring_source_org": "BLS", "monitoring_source_url": "https://www.bls.gov/cpi/", "monitoring_start": %q, "monitoring_end": %q}`,
				now.Format("2006-01-02"), now.AddDate(1, 0, 0).Format("2006-01-02")), nil
		case prompt.SolutionSimulationSystem:
			return fmt.Sprintf(`{"simulated_action_note": "Bought a TIPS fund at Friday's close.", "monitoring_source_org": "FRED", "monitoring_start": %q, "monitoring_end": %q}`,
				now.AddDate(0, 0, -30).Format("2006-01-02"), now.AddDate(0, 0, -1).Format("2006-01-02")), nil
		case prompt.LogicRelationSystem:
			return fmt.Sprintf(`{"relations": [{"from_logic_id": %d, "to_logic_id": %d, "relation_type": "supports"}]}`, retroChain.ID, derivChain.ID), nil
		case prompt.RoleFitSystem:
			return `{"role_fit": "appropriate", "role_fit_note": "macro claims from a macro economist"}`, nil
		case prompt.PostQualitySystem:
			return `{"effectiveness_score": 0.8, "noise_ratio": 0.1, "noise_types": ["promo"], "effectiveness_note": "dense and sourced"}`, nil
		default:
			return "", fmt.Errorf("unexpected system prompt: %.40s", system)
		}
	})

	pipe := New(client.Client, model, nil, nil, nil, nil)
	require.NoError(t, pipe.RunPass(ctx))

	// Author profiled.
	gotAuthor, err := client.Author.Get(ctx, author.ID)
	require.NoError(t, err)
	assert.True(t, gotAuthor.ProfileFetched)
	require.NotNil(t, gotAuthor.CredibilityTier)
	assert.Equal(t, 2, *gotAuthor.CredibilityTier)
	require.NotNil(t, gotAuthor.ExpertiseAreas)
	assert.Equal(t, "macroeconomics, monetary policy", *gotAuthor.ExpertiseAreas)

	// Both facts settled with provenance.
	for _, id := range []int{factA.ID, factB.ID} {
		f, err := client.Fact.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, fact.StatusVerifiedTrue, f.Status)
		require.NotNil(t, f.VerifiedSourceOrg)
		assert.Equal(t, "BLS", *f.VerifiedSourceOrg)
	}

	// All three chains graded.
	logics, err := client.Logic.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, logics, 3)
	for _, l := range logics {
		require.NotNil(t, l.AssessedAt, "logic %d", l.ID)
		require.NotNil(t, l.LogicCompleteness)
		assert.Equal(t, logic.LogicCompletenessComplete, *l.LogicCompleteness)
	}

	// Predictive conclusion got its plan but its window is open, so no
	// verdict yet.
	gotPredictive, err := client.Conclusion.Get(ctx, predictive.ID)
	require.NoError(t, err)
	require.NotNil(t, gotPredictive.MonitoringSourceOrg)
	assert.Equal(t, "BLS", *gotPredictive.MonitoringSourceOrg)
	assert.Equal(t, conclusion.StatusPending, gotPredictive.Status)
	predictiveVerdicts, err := client.ConclusionVerdict.Query().
		Where(conclusionverdict.ConclusionIDEQ(predictive.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, predictiveVerdicts)

	// Retrospective conclusion settled and annotated.
	gotRetro, err := client.Conclusion.Get(ctx, retro.ID)
	require.NoError(t, err)
	assert.Equal(t, conclusion.StatusConfirmed, gotRetro.Status)
	verdicts, err := client.ConclusionVerdict.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, verdicts, 1)
	assert.Equal(t, conclusionverdict.VerdictConfirmed, verdicts[0].Verdict)
	require.NotNil(t, verdicts[0].RoleFit)
	assert.Equal(t, conclusionverdict.RoleFitAppropriate, *verdicts[0].RoleFit)

	// Solution simulated, settled off its source conclusion, annotated.
	gotSol, err := client.Solution.Get(ctx, sol.ID)
	require.NoError(t, err)
	require.NotNil(t, gotSol.SimulatedActionNote)
	assert.Equal(t, solution.StatusValidated, gotSol.Status)
	assessments, err := client.SolutionAssessment.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, solutionassessment.VerdictConfirmed, assessments[0].Verdict)
	require.NotNil(t, assessments[0].RoleFit)
	assert.Equal(t, solutionassessment.RoleFitAppropriate, *assessments[0].RoleFit)

	// Relation persisted between the retro chain and the derivation chain.
	relCount, err := client.LogicRelation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, relCount)

	// Post scored.
	quality, err := client.PostQualityAssessment.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, quality, 1)
	require.NotNil(t, quality[0].EffectivenessScore)
	assert.InDelta(t, 0.8, *quality[0].EffectivenessScore, 1e-9)
	require.NotNil(t, quality[0].UniquenessScore)
	assert.InDelta(t, 1.0, *quality[0].UniquenessScore, 1e-9)

	// Scorecard aggregated.
	stats, err := client.AuthorStats.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.NotNil(t, stats[0].FactAccuracyRate)
	assert.InDelta(t, 1.0, *stats[0].FactAccuracyRate, 1e-9)
	assert.Equal(t, 2, stats[0].FactAccuracySample)
	require.NotNil(t, stats[0].ConclusionAccuracyRate)
	assert.InDelta(t, 1.0, *stats[0].ConclusionAccuracyRate, 1e-9)
	assert.Equal(t, 1, stats[0].ConclusionAccuracySample)
	assert.Nil(t, stats[0].PredictionAccuracyRate, "the open prediction counts nothing yet")
	require.NotNil(t, stats[0].LogicRigorScore)
	assert.InDelta(t, 1.0, *stats[0].LogicRigorScore, 1e-9)
	assert.Equal(t, 3, stats[0].LogicRigorSample)
	require.NotNil(t, stats[0].RecommendationReliabilityRate)
	assert.InDelta(t, 1.0, *stats[0].RecommendationReliabilityRate, 1e-9)
	require.NotNil(t, stats[0].OverallCredibilityScore)
	// (0.20*1 + 0.15*1 + 0.15*1 + 0.15*1 + 0.075*1 + 0.075*0.8) / 0.80 * 100
	assert.InDelta(t, 98.125, *stats[0].OverallCredibilityScore, 1e-6)
	assert.Equal(t, 1, stats[0].TotalPostsAnalyzed)

	// Second pass: everything is settled, so nothing asks the model again
	// and no table grows.
	callsAfterFirst := calls
	require.NoError(t, pipe.RunPass(ctx))
	assert.Equal(t, callsAfterFirst, calls, "a settled corpus needs no model calls")

	verdictCount, err := client.ConclusionVerdict.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, verdictCount)
	assessmentCount, err := client.SolutionAssessment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, assessmentCount)
	evalCount, err := client.FactEvaluation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, evalCount)
	qualityCount, err := client.PostQualityAssessment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, qualityCount)
	statsCount, err := client.AuthorStats.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, statsCount)
}
