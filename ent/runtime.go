// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/authorstats"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/logicrelation"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/rawpost"
	"github.com/credlens/pundit/ent/schema"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	authorFields := schema.Author{}.Fields()
	_ = authorFields
	// authorDescProfileFetched is the schema descriptor for profile_fetched field.
	authorDescProfileFetched := authorFields[10].Descriptor()
	// author.DefaultProfileFetched holds the default value on creation for the profile_fetched field.
	author.DefaultProfileFetched = authorDescProfileFetched.Default.(bool)
	// authorDescCreatedAt is the schema descriptor for created_at field.
	authorDescCreatedAt := authorFields[12].Descriptor()
	// author.DefaultCreatedAt holds the default value on creation for the created_at field.
	author.DefaultCreatedAt = authorDescCreatedAt.Default.(func() time.Time)
	authorstatsFields := schema.AuthorStats{}.Fields()
	_ = authorstatsFields
	// authorstatsDescFactAccuracySample is the schema descriptor for fact_accuracy_sample field.
	authorstatsDescFactAccuracySample := authorstatsFields[2].Descriptor()
	// authorstats.DefaultFactAccuracySample holds the default value on creation for the fact_accuracy_sample field.
	authorstats.DefaultFactAccuracySample = authorstatsDescFactAccuracySample.Default.(int)
	// authorstatsDescConclusionAccuracySample is the schema descriptor for conclusion_accuracy_sample field.
	authorstatsDescConclusionAccuracySample := authorstatsFields[4].Descriptor()
	// authorstats.DefaultConclusionAccuracySample holds the default value on creation for the conclusion_accuracy_sample field.
	authorstats.DefaultConclusionAccuracySample = authorstatsDescConclusionAccuracySample.Default.(int)
	// authorstatsDescPredictionAccuracySample is the schema descriptor for prediction_accuracy_sample field.
	authorstatsDescPredictionAccuracySample := authorstatsFields[6].Descriptor()
	// authorstats.DefaultPredictionAccuracySample holds the default value on creation for the prediction_accuracy_sample field.
	authorstats.DefaultPredictionAccuracySample = authorstatsDescPredictionAccuracySample.Default.(int)
	// authorstatsDescLogicRigorSample is the schema descriptor for logic_rigor_sample field.
	authorstatsDescLogicRigorSample := authorstatsFields[8].Descriptor()
	// authorstats.DefaultLogicRigorSample holds the default value on creation for the logic_rigor_sample field.
	authorstats.DefaultLogicRigorSample = authorstatsDescLogicRigorSample.Default.(int)
	// authorstatsDescRecommendationReliabilitySample is the schema descriptor for recommendation_reliability_sample field.
	authorstatsDescRecommendationReliabilitySample := authorstatsFields[10].Descriptor()
	// authorstats.DefaultRecommendationReliabilitySample holds the default value on creation for the recommendation_reliability_sample field.
	authorstats.DefaultRecommendationReliabilitySample = authorstatsDescRecommendationReliabilitySample.Default.(int)
	// authorstatsDescContentUniquenessSample is the schema descriptor for content_uniqueness_sample field.
	authorstatsDescContentUniquenessSample := authorstatsFields[12].Descriptor()
	// authorstats.DefaultContentUniquenessSample holds the default value on creation for the content_uniqueness_sample field.
	authorstats.DefaultContentUniquenessSample = authorstatsDescContentUniquenessSample.Default.(int)
	// authorstatsDescContentEffectivenessSample is the schema descriptor for content_effectiveness_sample field.
	authorstatsDescContentEffectivenessSample := authorstatsFields[14].Descriptor()
	// authorstats.DefaultContentEffectivenessSample holds the default value on creation for the content_effectiveness_sample field.
	authorstats.DefaultContentEffectivenessSample = authorstatsDescContentEffectivenessSample.Default.(int)
	// authorstatsDescTotalPostsAnalyzed is the schema descriptor for total_posts_analyzed field.
	authorstatsDescTotalPostsAnalyzed := authorstatsFields[16].Descriptor()
	// authorstats.DefaultTotalPostsAnalyzed holds the default value on creation for the total_posts_analyzed field.
	authorstats.DefaultTotalPostsAnalyzed = authorstatsDescTotalPostsAnalyzed.Default.(int)
	// authorstatsDescLastUpdated is the schema descriptor for last_updated field.
	authorstatsDescLastUpdated := authorstatsFields[17].Descriptor()
	// authorstats.DefaultLastUpdated holds the default value on creation for the last_updated field.
	authorstats.DefaultLastUpdated = authorstatsDescLastUpdated.Default.(func() time.Time)
	// authorstats.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	authorstats.UpdateDefaultLastUpdated = authorstatsDescLastUpdated.UpdateDefault.(func() time.Time)
	conclusionFields := schema.Conclusion{}.Fields()
	_ = conclusionFields
	// conclusionDescCollectedAt is the schema descriptor for collected_at field.
	conclusionDescCollectedAt := conclusionFields[17].Descriptor()
	// conclusion.DefaultCollectedAt holds the default value on creation for the collected_at field.
	conclusion.DefaultCollectedAt = conclusionDescCollectedAt.Default.(func() time.Time)
	conclusionverdictFields := schema.ConclusionVerdict{}.Fields()
	_ = conclusionverdictFields
	// conclusionverdictDescDerivedAt is the schema descriptor for derived_at field.
	conclusionverdictDescDerivedAt := conclusionverdictFields[5].Descriptor()
	// conclusionverdict.DefaultDerivedAt holds the default value on creation for the derived_at field.
	conclusionverdict.DefaultDerivedAt = conclusionverdictDescDerivedAt.Default.(func() time.Time)
	factFields := schema.Fact{}.Fields()
	_ = factFields
	// factDescIsVerifiable is the schema descriptor for is_verifiable field.
	factDescIsVerifiable := factFields[3].Descriptor()
	// fact.DefaultIsVerifiable holds the default value on creation for the is_verifiable field.
	fact.DefaultIsVerifiable = factDescIsVerifiable.Default.(bool)
	// factDescCreatedAt is the schema descriptor for created_at field.
	factDescCreatedAt := factFields[16].Descriptor()
	// fact.DefaultCreatedAt holds the default value on creation for the created_at field.
	fact.DefaultCreatedAt = factDescCreatedAt.Default.(func() time.Time)
	factevaluationFields := schema.FactEvaluation{}.Fields()
	_ = factevaluationFields
	// factevaluationDescEvaluatedAt is the schema descriptor for evaluated_at field.
	factevaluationDescEvaluatedAt := factevaluationFields[6].Descriptor()
	// factevaluation.DefaultEvaluatedAt holds the default value on creation for the evaluated_at field.
	factevaluation.DefaultEvaluatedAt = factevaluationDescEvaluatedAt.Default.(func() time.Time)
	logicFields := schema.Logic{}.Fields()
	_ = logicFields
	// logicDescCreatedAt is the schema descriptor for created_at field.
	logicDescCreatedAt := logicFields[11].Descriptor()
	// logic.DefaultCreatedAt holds the default value on creation for the created_at field.
	logic.DefaultCreatedAt = logicDescCreatedAt.Default.(func() time.Time)
	logicrelationFields := schema.LogicRelation{}.Fields()
	_ = logicrelationFields
	// logicrelationDescCreatedAt is the schema descriptor for created_at field.
	logicrelationDescCreatedAt := logicrelationFields[4].Descriptor()
	// logicrelation.DefaultCreatedAt holds the default value on creation for the created_at field.
	logicrelation.DefaultCreatedAt = logicrelationDescCreatedAt.Default.(func() time.Time)
	monitoredsourceFields := schema.MonitoredSource{}.Fields()
	_ = monitoredsourceFields
	// monitoredsourceDescIsActive is the schema descriptor for is_active field.
	monitoredsourceDescIsActive := monitoredsourceFields[5].Descriptor()
	// monitoredsource.DefaultIsActive holds the default value on creation for the is_active field.
	monitoredsource.DefaultIsActive = monitoredsourceDescIsActive.Default.(bool)
	// monitoredsourceDescFetchIntervalMinutes is the schema descriptor for fetch_interval_minutes field.
	monitoredsourceDescFetchIntervalMinutes := monitoredsourceFields[6].Descriptor()
	// monitoredsource.DefaultFetchIntervalMinutes holds the default value on creation for the fetch_interval_minutes field.
	monitoredsource.DefaultFetchIntervalMinutes = monitoredsourceDescFetchIntervalMinutes.Default.(int)
	// monitoredsourceDescHistoryFetched is the schema descriptor for history_fetched field.
	monitoredsourceDescHistoryFetched := monitoredsourceFields[8].Descriptor()
	// monitoredsource.DefaultHistoryFetched holds the default value on creation for the history_fetched field.
	monitoredsource.DefaultHistoryFetched = monitoredsourceDescHistoryFetched.Default.(bool)
	// monitoredsourceDescCreatedAt is the schema descriptor for created_at field.
	monitoredsourceDescCreatedAt := monitoredsourceFields[9].Descriptor()
	// monitoredsource.DefaultCreatedAt holds the default value on creation for the created_at field.
	monitoredsource.DefaultCreatedAt = monitoredsourceDescCreatedAt.Default.(func() time.Time)
	postqualityassessmentFields := schema.PostQualityAssessment{}.Fields()
	_ = postqualityassessmentFields
	// postqualityassessmentDescSimilarClaimCount is the schema descriptor for similar_claim_count field.
	postqualityassessmentDescSimilarClaimCount := postqualityassessmentFields[5].Descriptor()
	// postqualityassessment.DefaultSimilarClaimCount holds the default value on creation for the similar_claim_count field.
	postqualityassessment.DefaultSimilarClaimCount = postqualityassessmentDescSimilarClaimCount.Default.(int)
	// postqualityassessmentDescSimilarAuthorCount is the schema descriptor for similar_author_count field.
	postqualityassessmentDescSimilarAuthorCount := postqualityassessmentFields[6].Descriptor()
	// postqualityassessment.DefaultSimilarAuthorCount holds the default value on creation for the similar_author_count field.
	postqualityassessment.DefaultSimilarAuthorCount = postqualityassessmentDescSimilarAuthorCount.Default.(int)
	// postqualityassessmentDescAssessedAt is the schema descriptor for assessed_at field.
	postqualityassessmentDescAssessedAt := postqualityassessmentFields[11].Descriptor()
	// postqualityassessment.DefaultAssessedAt holds the default value on creation for the assessed_at field.
	postqualityassessment.DefaultAssessedAt = postqualityassessmentDescAssessedAt.Default.(func() time.Time)
	rawpostFields := schema.RawPost{}.Fields()
	_ = rawpostFields
	// rawpostDescContextFetched is the schema descriptor for context_fetched field.
	rawpostDescContextFetched := rawpostFields[4].Descriptor()
	// rawpost.DefaultContextFetched holds the default value on creation for the context_fetched field.
	rawpost.DefaultContextFetched = rawpostDescContextFetched.Default.(bool)
	// rawpostDescHasContext is the schema descriptor for has_context field.
	rawpostDescHasContext := rawpostFields[5].Descriptor()
	// rawpost.DefaultHasContext holds the default value on creation for the has_context field.
	rawpost.DefaultHasContext = rawpostDescHasContext.Default.(bool)
	// rawpostDescCollectedAt is the schema descriptor for collected_at field.
	rawpostDescCollectedAt := rawpostFields[10].Descriptor()
	// rawpost.DefaultCollectedAt holds the default value on creation for the collected_at field.
	rawpost.DefaultCollectedAt = rawpostDescCollectedAt.Default.(func() time.Time)
	// rawpostDescIsProcessed is the schema descriptor for is_processed field.
	rawpostDescIsProcessed := rawpostFields[13].Descriptor()
	// rawpost.DefaultIsProcessed holds the default value on creation for the is_processed field.
	rawpost.DefaultIsProcessed = rawpostDescIsProcessed.Default.(bool)
	solutionFields := schema.Solution{}.Fields()
	_ = solutionFields
	// solutionDescCollectedAt is the schema descriptor for collected_at field.
	solutionDescCollectedAt := solutionFields[17].Descriptor()
	// solution.DefaultCollectedAt holds the default value on creation for the collected_at field.
	solution.DefaultCollectedAt = solutionDescCollectedAt.Default.(func() time.Time)
	solutionassessmentFields := schema.SolutionAssessment{}.Fields()
	_ = solutionassessmentFields
	// solutionassessmentDescAssessedAt is the schema descriptor for assessed_at field.
	solutionassessmentDescAssessedAt := solutionassessmentFields[7].Descriptor()
	// solutionassessment.DefaultAssessedAt holds the default value on creation for the assessed_at field.
	solutionassessment.DefaultAssessedAt = solutionassessmentDescAssessedAt.Default.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicFields[3].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
}
