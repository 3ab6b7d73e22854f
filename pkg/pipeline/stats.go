package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/services"
)

// rigorScores maps an argument completeness grade onto a rigor score.
var rigorScores = map[logic.LogicCompleteness]float64{
	logic.LogicCompletenessComplete: 1.0,
	logic.LogicCompletenessPartial:  0.6,
	logic.LogicCompletenessWeak:     0.3,
	logic.LogicCompletenessInvalid:  0.0,
}

// Dimension weights for the overall credibility score. Dimensions without
// a sample drop out and the remaining weights renormalize.
const (
	weightFactAccuracy       = 0.20
	weightConclusionAccuracy = 0.15
	weightPredictionAccuracy = 0.20
	weightLogicRigor         = 0.15
	weightRecommendation     = 0.15
	weightUniqueness         = 0.075
	weightEffectiveness      = 0.075
)

// StatsUpdater recomputes every author's seven-dimension scorecard from the
// recorded evaluations, verdicts, assessments, and quality rows, then
// upserts the snapshot. The computation is a pure fold over stored state,
// so re-running it is always safe.
type StatsUpdater struct {
	authors     *services.AuthorService
	conclusions *services.ConclusionService
	solutions   *services.SolutionService
	logics      *services.LogicService
	facts       *services.FactService
	posts       *services.PostService
	stats       *services.StatsService
	logger      *slog.Logger
}

func NewStatsUpdater(authors *services.AuthorService, conclusions *services.ConclusionService, solutions *services.SolutionService, logics *services.LogicService, facts *services.FactService, posts *services.PostService, stats *services.StatsService) *StatsUpdater {
	return &StatsUpdater{
		authors:     authors,
		conclusions: conclusions,
		solutions:   solutions,
		logics:      logics,
		facts:       facts,
		posts:       posts,
		stats:       stats,
		logger:      slog.Default().With("component", "stats_updater"),
	}
}

func (u *StatsUpdater) Name() string { return "stats_updater" }

func (u *StatsUpdater) Run(ctx context.Context) error {
	authors, err := u.authors.ListAllAuthors(ctx)
	if err != nil {
		return err
	}
	for _, a := range authors {
		if err := ctx.Err(); err != nil {
			return err
		}
		u.update(ctx, a)
	}
	return nil
}

func (u *StatsUpdater) update(ctx context.Context, a *ent.Author) {
	snap, err := u.snapshot(ctx, a.ID)
	if err != nil {
		u.logger.Error("Failed to compute author stats", "author_id", a.ID, "error", err)
		countItem(u.Name(), outcomeFailed)
		return
	}
	if _, err := u.stats.Upsert(ctx, a.ID, snap); err != nil {
		u.logger.Error("Failed to upsert author stats", "author_id", a.ID, "error", err)
		countItem(u.Name(), outcomeFailed)
		return
	}
	overall := "n/a"
	if snap.OverallCredibilityScore != nil {
		overall = fmt.Sprintf("%.1f", *snap.OverallCredibilityScore)
	}
	u.logger.Info("Author stats updated", "author_id", a.ID, "overall", overall, "posts", snap.TotalPostsAnalyzed)
	countItem(u.Name(), outcomeDone)
}

func (u *StatsUpdater) snapshot(ctx context.Context, authorID int) (models.AuthorStatsSnapshot, error) {
	var snap models.AuthorStatsSnapshot

	conclusions, err := u.conclusions.ConclusionsByAuthor(ctx, authorID)
	if err != nil {
		return snap, err
	}
	conclusionIDs := make([]int, 0, len(conclusions))
	predictive := make(map[int]bool)
	for _, c := range conclusions {
		conclusionIDs = append(conclusionIDs, c.ID)
		if c.ConclusionType == conclusion.ConclusionTypePredictive {
			predictive[c.ID] = true
		}
	}

	inferenceLogics, err := u.logics.InferenceLogicsByConclusionIDs(ctx, conclusionIDs)
	if err != nil {
		return snap, err
	}
	factIDSet := make(map[int]bool)
	for _, l := range inferenceLogics {
		for _, id := range l.SupportingFactIds {
			factIDSet[id] = true
		}
		for _, id := range l.AssumptionFactIds {
			factIDSet[id] = true
		}
	}
	factIDs := make([]int, 0, len(factIDSet))
	for id := range factIDSet {
		factIDs = append(factIDs, id)
	}

	factEvals, err := u.facts.EvaluationsByFactIDs(ctx, factIDs)
	if err != nil {
		return snap, err
	}
	verdicts, err := u.conclusions.VerdictsByConclusionIDs(ctx, conclusionIDs)
	if err != nil {
		return snap, err
	}
	solutions, err := u.solutions.SolutionsByAuthor(ctx, authorID)
	if err != nil {
		return snap, err
	}
	solutionIDs := make([]int, 0, len(solutions))
	for _, s := range solutions {
		solutionIDs = append(solutionIDs, s.ID)
	}
	assessments, err := u.solutions.AssessmentsBySolutionIDs(ctx, solutionIDs)
	if err != nil {
		return snap, err
	}
	qualityRows, err := u.posts.QualityAssessmentsByAuthor(ctx, authorID)
	if err != nil {
		return snap, err
	}

	// Fact accuracy over settled evaluations.
	factTrue, factDecided := 0, 0
	for _, ev := range factEvals {
		switch ev.Result {
		case factevaluation.ResultTrue:
			factTrue++
			factDecided++
		case factevaluation.ResultFalse:
			factDecided++
		}
	}
	snap.FactAccuracyRate, snap.FactAccuracySample = rate(factTrue, factDecided)

	// Conclusion and prediction accuracy over decided verdicts.
	confirmedAll, decidedAll := 0, 0
	confirmedPred, decidedPred := 0, 0
	for _, v := range verdicts {
		if v.Verdict == conclusionverdict.VerdictPending || v.Verdict == conclusionverdict.VerdictExpired {
			continue
		}
		decidedAll++
		confirmed := v.Verdict == conclusionverdict.VerdictConfirmed
		if confirmed {
			confirmedAll++
		}
		if predictive[v.ConclusionID] {
			decidedPred++
			if confirmed {
				confirmedPred++
			}
		}
	}
	snap.ConclusionAccuracyRate, snap.ConclusionAccuracySample = rate(confirmedAll, decidedAll)
	snap.PredictionAccuracyRate, snap.PredictionAccuracySample = rate(confirmedPred, decidedPred)

	// Logic rigor over graded inference chains.
	rigorSum, rigorCnt := 0.0, 0
	for _, l := range inferenceLogics {
		if l.LogicCompleteness == nil {
			continue
		}
		rigorSum += rigorScores[*l.LogicCompleteness]
		rigorCnt++
	}
	snap.LogicRigorScore, snap.LogicRigorSample = mean(rigorSum, rigorCnt)

	// Recommendation reliability over decided assessments.
	confirmedSol, decidedSol := 0, 0
	for _, sa := range assessments {
		if sa.Verdict == solutionassessment.VerdictPending || sa.Verdict == solutionassessment.VerdictExpired {
			continue
		}
		decidedSol++
		if sa.Verdict == solutionassessment.VerdictConfirmed {
			confirmedSol++
		}
	}
	snap.RecommendationReliabilityRate, snap.RecommendationReliabilitySample = rate(confirmedSol, decidedSol)

	// Content uniqueness and effectiveness means over quality rows.
	uniqSum, effSum := 0.0, 0.0
	for _, qa := range qualityRows {
		uniqSum += *qa.UniquenessScore
		effSum += *qa.EffectivenessScore
	}
	snap.ContentUniquenessScore, snap.ContentUniquenessSample = mean(uniqSum, len(qualityRows))
	snap.ContentEffectivenessScore, snap.ContentEffectivenessSample = mean(effSum, len(qualityRows))

	snap.OverallCredibilityScore = overallScore(&snap)
	snap.TotalPostsAnalyzed = len(qualityRows)
	return snap, nil
}

// rate returns num/den with the sample size, or (nil, 0) when nothing was
// decidable.
func rate(num, den int) (*float64, int) {
	if den == 0 {
		return nil, 0
	}
	v := float64(num) / float64(den)
	return &v, den
}

func mean(sum float64, n int) (*float64, int) {
	if n == 0 {
		return nil, 0
	}
	v := sum / float64(n)
	return &v, n
}

// overallScore renormalizes the dimension weights over the dimensions that
// have a sample and scales the weighted mean to 0-100. All-null yields nil.
func overallScore(snap *models.AuthorStatsSnapshot) *float64 {
	dims := []struct {
		value  *float64
		weight float64
	}{
		{snap.FactAccuracyRate, weightFactAccuracy},
		{snap.ConclusionAccuracyRate, weightConclusionAccuracy},
		{snap.PredictionAccuracyRate, weightPredictionAccuracy},
		{snap.LogicRigorScore, weightLogicRigor},
		{snap.RecommendationReliabilityRate, weightRecommendation},
		{snap.ContentUniquenessScore, weightUniqueness},
		{snap.ContentEffectivenessScore, weightEffectiveness},
	}
	weightSum, weighted := 0.0, 0.0
	for _, d := range dims {
		if d.value == nil {
			continue
		}
		weightSum += d.weight
		weighted += d.weight * *d.value
	}
	if weightSum == 0 {
		return nil
	}
	overall := weighted / weightSum * 100.0
	return &overall
}
