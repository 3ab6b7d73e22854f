package services

import (
	"context"
	"fmt"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/authorstats"
	"github.com/credlens/pundit/pkg/models"
)

// StatsService manages per-author scorecards. Rows are replaced wholesale:
// each snapshot is a recomputation over the author's full history, so
// dimensions that lost their sample get cleared rather than kept.
type StatsService struct {
	client *ent.Client
}

// NewStatsService creates a new StatsService
func NewStatsService(client *ent.Client) *StatsService {
	return &StatsService{client: client}
}

// GetStats retrieves an author's scorecard.
func (s *StatsService) GetStats(ctx context.Context, authorID int) (*ent.AuthorStats, error) {
	stats, err := s.client.AuthorStats.Query().
		Where(authorstats.AuthorIDEQ(authorID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get author stats: %w", err)
	}
	return stats, nil
}

// Upsert writes a full snapshot for the author, creating the row on first
// computation.
func (s *StatsService) Upsert(ctx context.Context, authorID int, snap models.AuthorStatsSnapshot) (*ent.AuthorStats, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.AuthorStats.Query().
		Where(authorstats.AuthorIDEQ(authorID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query author stats: %w", err)
	}

	if err == nil {
		return s.overwrite(writeCtx, existing.ID, snap)
	}

	created, err := s.client.AuthorStats.Create().
		SetAuthorID(authorID).
		SetNillableFactAccuracyRate(snap.FactAccuracyRate).
		SetFactAccuracySample(snap.FactAccuracySample).
		SetNillableConclusionAccuracyRate(snap.ConclusionAccuracyRate).
		SetConclusionAccuracySample(snap.ConclusionAccuracySample).
		SetNillablePredictionAccuracyRate(snap.PredictionAccuracyRate).
		SetPredictionAccuracySample(snap.PredictionAccuracySample).
		SetNillableLogicRigorScore(snap.LogicRigorScore).
		SetLogicRigorSample(snap.LogicRigorSample).
		SetNillableRecommendationReliabilityRate(snap.RecommendationReliabilityRate).
		SetRecommendationReliabilitySample(snap.RecommendationReliabilitySample).
		SetNillableContentUniquenessScore(snap.ContentUniquenessScore).
		SetContentUniquenessSample(snap.ContentUniquenessSample).
		SetNillableContentEffectivenessScore(snap.ContentEffectivenessScore).
		SetContentEffectivenessSample(snap.ContentEffectivenessSample).
		SetNillableOverallCredibilityScore(snap.OverallCredibilityScore).
		SetTotalPostsAnalyzed(snap.TotalPostsAnalyzed).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			winner, qerr := s.client.AuthorStats.Query().
				Where(authorstats.AuthorIDEQ(authorID)).
				Only(writeCtx)
			if qerr != nil {
				return nil, fmt.Errorf("failed to resolve concurrent stats upsert: %w", qerr)
			}
			return s.overwrite(writeCtx, winner.ID, snap)
		}
		return nil, fmt.Errorf("failed to create author stats: %w", err)
	}
	return created, nil
}

// overwrite replaces every dimension of an existing row with the snapshot,
// clearing rates whose sample vanished.
func (s *StatsService) overwrite(ctx context.Context, id int, snap models.AuthorStatsSnapshot) (*ent.AuthorStats, error) {
	update := s.client.AuthorStats.UpdateOneID(id).
		SetFactAccuracySample(snap.FactAccuracySample).
		SetConclusionAccuracySample(snap.ConclusionAccuracySample).
		SetPredictionAccuracySample(snap.PredictionAccuracySample).
		SetLogicRigorSample(snap.LogicRigorSample).
		SetRecommendationReliabilitySample(snap.RecommendationReliabilitySample).
		SetContentUniquenessSample(snap.ContentUniquenessSample).
		SetContentEffectivenessSample(snap.ContentEffectivenessSample).
		SetTotalPostsAnalyzed(snap.TotalPostsAnalyzed)

	if snap.FactAccuracyRate != nil {
		update.SetFactAccuracyRate(*snap.FactAccuracyRate)
	} else {
		update.ClearFactAccuracyRate()
	}
	if snap.ConclusionAccuracyRate != nil {
		update.SetConclusionAccuracyRate(*snap.ConclusionAccuracyRate)
	} else {
		update.ClearConclusionAccuracyRate()
	}
	if snap.PredictionAccuracyRate != nil {
		update.SetPredictionAccuracyRate(*snap.PredictionAccuracyRate)
	} else {
		update.ClearPredictionAccuracyRate()
	}
	if snap.LogicRigorScore != nil {
		update.SetLogicRigorScore(*snap.LogicRigorScore)
	} else {
		update.ClearLogicRigorScore()
	}
	if snap.RecommendationReliabilityRate != nil {
		update.SetRecommendationReliabilityRate(*snap.RecommendationReliabilityRate)
	} else {
		update.ClearRecommendationReliabilityRate()
	}
	if snap.ContentUniquenessScore != nil {
		update.SetContentUniquenessScore(*snap.ContentUniquenessScore)
	} else {
		update.ClearContentUniquenessScore()
	}
	if snap.ContentEffectivenessScore != nil {
		update.SetContentEffectivenessScore(*snap.ContentEffectivenessScore)
	} else {
		update.ClearContentEffectivenessScore()
	}
	if snap.OverallCredibilityScore != nil {
		update.SetOverallCredibilityScore(*snap.OverallCredibilityScore)
	} else {
		update.ClearOverallCredibilityScore()
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update author stats: %w", err)
	}
	return updated, nil
}

// Leaderboard returns scored authors ordered by overall credibility,
// highest first. Authors with no overall score yet are excluded.
func (s *StatsService) Leaderboard(ctx context.Context, limit int) ([]*ent.AuthorStats, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	stats, err := s.client.AuthorStats.Query().
		Where(authorstats.OverallCredibilityScoreNotNil()).
		Order(ent.Desc(authorstats.FieldOverallCredibilityScore), ent.Asc(authorstats.FieldAuthorID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return stats, nil
}
