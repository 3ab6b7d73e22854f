package models

import "time"

// AuthorProfile is the profiler's output for one author. Nil fields were
// unknown to the model; CredibilityTier is always set (5 = unknown).
type AuthorProfile struct {
	Role            *string
	ExpertiseAreas  *string
	KnownBiases     *string
	CredibilityTier int
	ProfileNote     *string
}

// MonitoringPlan is the five-field monitoring block the conclusion monitor
// and the solution simulator produce. A plan with only SourceOrg set marks a
// claim that cannot be tracked against authoritative data.
type MonitoringPlan struct {
	SourceOrg  *string
	SourceURL  *string
	PeriodNote *string
	Start      *time.Time
	End        *time.Time
}

// FactVerification is one verification outcome to be recorded against a
// fact: the evaluation row plus the provenance fields mirrored onto the fact
// itself. Result uses the evaluation enum values (true, false, uncertain,
// unavailable).
type FactVerification struct {
	Result         string
	EvidenceText   *string
	EvidenceTier   *int
	DataPeriod     *string
	EvaluatorNotes *string
	SourceOrg      *string
	SourceURL      *string
	SourceData     *string
}

// RelationEdge is one directed relation between two reasoning chains, as
// proposed by the relation mapper and validated against the chains of the
// post it came from.
type RelationEdge struct {
	FromLogicID  int
	ToLogicID    int
	RelationType string
	Note         *string
}

// AuthorStatsSnapshot is one full recomputation of an author's scorecard.
// A nil rate means the dimension had no decidable sample, not a zero score;
// the matching sample count is the denominator the rate was computed over.
type AuthorStatsSnapshot struct {
	FactAccuracyRate                *float64
	FactAccuracySample              int
	ConclusionAccuracyRate          *float64
	ConclusionAccuracySample        int
	PredictionAccuracyRate          *float64
	PredictionAccuracySample        int
	LogicRigorScore                 *float64
	LogicRigorSample                int
	RecommendationReliabilityRate   *float64
	RecommendationReliabilitySample int
	ContentUniquenessScore          *float64
	ContentUniquenessSample         int
	ContentEffectivenessScore       *float64
	ContentEffectivenessSample      int
	OverallCredibilityScore         *float64
	TotalPostsAnalyzed              int
}

// PostQuality is the quality evaluator's combined output for one post:
// uniqueness computed against stored canonical claims, effectiveness scored
// by the model. Scores live in [0,1].
type PostQuality struct {
	UniquenessScore    float64
	UniquenessNote     *string
	IsFirstMover       bool
	SimilarClaimCount  int
	SimilarAuthorCount int
	EffectivenessScore float64
	EffectivenessNote  *string
	NoiseRatio         float64
	NoiseTypes         []string
}
