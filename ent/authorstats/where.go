// Code generated by ent, DO NOT EDIT.

package authorstats

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldID, id))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldAuthorID, v))
}

// FactAccuracyRate applies equality check predicate on the "fact_accuracy_rate" field. It's identical to FactAccuracyRateEQ.
func FactAccuracyRate(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldFactAccuracyRate, v))
}

// FactAccuracySample applies equality check predicate on the "fact_accuracy_sample" field. It's identical to FactAccuracySampleEQ.
func FactAccuracySample(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldFactAccuracySample, v))
}

// ConclusionAccuracyRate applies equality check predicate on the "conclusion_accuracy_rate" field. It's identical to ConclusionAccuracyRateEQ.
func ConclusionAccuracyRate(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldConclusionAccuracyRate, v))
}

// ConclusionAccuracySample applies equality check predicate on the "conclusion_accuracy_sample" field. It's identical to ConclusionAccuracySampleEQ.
func ConclusionAccuracySample(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldConclusionAccuracySample, v))
}

// PredictionAccuracyRate applies equality check predicate on the "prediction_accuracy_rate" field. It's identical to PredictionAccuracyRateEQ.
func PredictionAccuracyRate(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldPredictionAccuracyRate, v))
}

// PredictionAccuracySample applies equality check predicate on the "prediction_accuracy_sample" field. It's identical to PredictionAccuracySampleEQ.
func PredictionAccuracySample(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldPredictionAccuracySample, v))
}

// LogicRigorScore applies equality check predicate on the "logic_rigor_score" field. It's identical to LogicRigorScoreEQ.
func LogicRigorScore(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldLogicRigorScore, v))
}

// LogicRigorSample applies equality check predicate on the "logic_rigor_sample" field. It's identical to LogicRigorSampleEQ.
func LogicRigorSample(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldLogicRigorSample, v))
}

// RecommendationReliabilityRate applies equality check predicate on the "recommendation_reliability_rate" field. It's identical to RecommendationReliabilityRateEQ.
func RecommendationReliabilityRate(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldRecommendationReliabilityRate, v))
}

// RecommendationReliabilitySample applies equality check predicate on the "recommendation_reliability_sample" field. It's identical to RecommendationReliabilitySampleEQ.
func RecommendationReliabilitySample(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldRecommendationReliabilitySample, v))
}

// ContentUniquenessScore applies equality check predicate on the "content_uniqueness_score" field. It's identical to ContentUniquenessScoreEQ.
func ContentUniquenessScore(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldContentUniquenessScore, v))
}

// ContentUniquenessSample applies equality check predicate on the "content_uniqueness_sample" field. It's identical to ContentUniquenessSampleEQ.
func ContentUniquenessSample(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldContentUniquenessSample, v))
}

// ContentEffectivenessScore applies equality check predicate on the "content_effectiveness_score" field. It's identical to ContentEffectivenessScoreEQ.
func ContentEffectivenessScore(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldContentEffectivenessScore, v))
}

// ContentEffectivenessSample applies equality check predicate on the "content_effectiveness_sample" field. It's identical to ContentEffectivenessSampleEQ.
func ContentEffectivenessSample(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldContentEffectivenessSample, v))
}

// OverallCredibilityScore applies equality check predicate on the "overall_credibility_score" field. It's identical to OverallCredibilityScoreEQ.
func OverallCredibilityScore(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldOverallCredibilityScore, v))
}

// TotalPostsAnalyzed applies equality check predicate on the "total_posts_analyzed" field. It's identical to TotalPostsAnalyzedEQ.
func TotalPostsAnalyzed(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldTotalPostsAnalyzed, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldLastUpdated, v))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldAuthorID, vs...))
}

// FactAccuracyRateEQ applies the EQ predicate on the "fact_accuracy_rate" field.
func FactAccuracyRateEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldFactAccuracyRate, v))
}

// FactAccuracyRateNEQ applies the NEQ predicate on the "fact_accuracy_rate" field.
func FactAccuracyRateNEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldFactAccuracyRate, v))
}

// FactAccuracyRateIn applies the In predicate on the "fact_accuracy_rate" field.
func FactAccuracyRateIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldFactAccuracyRate, vs...))
}

// FactAccuracyRateNotIn applies the NotIn predicate on the "fact_accuracy_rate" field.
func FactAccuracyRateNotIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldFactAccuracyRate, vs...))
}

// FactAccuracyRateGT applies the GT predicate on the "fact_accuracy_rate" field.
func FactAccuracyRateGT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldFactAccuracyRate, v))
}

// FactAccuracyRateGTE applies the GTE predicate on the "fact_accuracy_rate" field.
func FactAccuracyRateGTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldFactAccuracyRate, v))
}

// FactAccuracyRateLT applies the LT predicate on the "fact_accuracy_rate" field.
func FactAccuracyRateLT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldFactAccuracyRate, v))
}

// FactAccuracyRateLTE applies the LTE predicate on the "fact_accuracy_rate" field.
func FactAccuracyRateLTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldFactAccuracyRate, v))
}

// FactAccuracyRateIsNil applies the IsNil predicate on the "fact_accuracy_rate" field.
func FactAccuracyRateIsNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIsNull(FieldFactAccuracyRate))
}

// FactAccuracyRateNotNil applies the NotNil predicate on the "fact_accuracy_rate" field.
func FactAccuracyRateNotNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotNull(FieldFactAccuracyRate))
}

// FactAccuracySampleEQ applies the EQ predicate on the "fact_accuracy_sample" field.
func FactAccuracySampleEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldFactAccuracySample, v))
}

// FactAccuracySampleNEQ applies the NEQ predicate on the "fact_accuracy_sample" field.
func FactAccuracySampleNEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldFactAccuracySample, v))
}

// FactAccuracySampleIn applies the In predicate on the "fact_accuracy_sample" field.
func FactAccuracySampleIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldFactAccuracySample, vs...))
}

// FactAccuracySampleNotIn applies the NotIn predicate on the "fact_accuracy_sample" field.
func FactAccuracySampleNotIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldFactAccuracySample, vs...))
}

// FactAccuracySampleGT applies the GT predicate on the "fact_accuracy_sample" field.
func FactAccuracySampleGT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldFactAccuracySample, v))
}

// FactAccuracySampleGTE applies the GTE predicate on the "fact_accuracy_sample" field.
func FactAccuracySampleGTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldFactAccuracySample, v))
}

// FactAccuracySampleLT applies the LT predicate on the "fact_accuracy_sample" field.
func FactAccuracySampleLT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldFactAccuracySample, v))
}

// FactAccuracySampleLTE applies the LTE predicate on the "fact_accuracy_sample" field.
func FactAccuracySampleLTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldFactAccuracySample, v))
}

// ConclusionAccuracyRateEQ applies the EQ predicate on the "conclusion_accuracy_rate" field.
func ConclusionAccuracyRateEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldConclusionAccuracyRate, v))
}

// ConclusionAccuracyRateNEQ applies the NEQ predicate on the "conclusion_accuracy_rate" field.
func ConclusionAccuracyRateNEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldConclusionAccuracyRate, v))
}

// ConclusionAccuracyRateIn applies the In predicate on the "conclusion_accuracy_rate" field.
func ConclusionAccuracyRateIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldConclusionAccuracyRate, vs...))
}

// ConclusionAccuracyRateNotIn applies the NotIn predicate on the "conclusion_accuracy_rate" field.
func ConclusionAccuracyRateNotIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldConclusionAccuracyRate, vs...))
}

// ConclusionAccuracyRateGT applies the GT predicate on the "conclusion_accuracy_rate" field.
func ConclusionAccuracyRateGT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldConclusionAccuracyRate, v))
}

// ConclusionAccuracyRateGTE applies the GTE predicate on the "conclusion_accuracy_rate" field.
func ConclusionAccuracyRateGTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldConclusionAccuracyRate, v))
}

// ConclusionAccuracyRateLT applies the LT predicate on the "conclusion_accuracy_rate" field.
func ConclusionAccuracyRateLT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldConclusionAccuracyRate, v))
}

// ConclusionAccuracyRateLTE applies the LTE predicate on the "conclusion_accuracy_rate" field.
func ConclusionAccuracyRateLTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldConclusionAccuracyRate, v))
}

// ConclusionAccuracyRateIsNil applies the IsNil predicate on the "conclusion_accuracy_rate" field.
func ConclusionAccuracyRateIsNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIsNull(FieldConclusionAccuracyRate))
}

// ConclusionAccuracyRateNotNil applies the NotNil predicate on the "conclusion_accuracy_rate" field.
func ConclusionAccuracyRateNotNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotNull(FieldConclusionAccuracyRate))
}

// ConclusionAccuracySampleEQ applies the EQ predicate on the "conclusion_accuracy_sample" field.
func ConclusionAccuracySampleEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldConclusionAccuracySample, v))
}

// ConclusionAccuracySampleNEQ applies the NEQ predicate on the "conclusion_accuracy_sample" field.
func ConclusionAccuracySampleNEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldConclusionAccuracySample, v))
}

// ConclusionAccuracySampleIn applies the In predicate on the "conclusion_accuracy_sample" field.
func ConclusionAccuracySampleIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldConclusionAccuracySample, vs...))
}

// ConclusionAccuracySampleNotIn applies the NotIn predicate on the "conclusion_accuracy_sample" field.
func ConclusionAccuracySampleNotIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldConclusionAccuracySample, vs...))
}

// ConclusionAccuracySampleGT applies the GT predicate on the "conclusion_accuracy_sample" field.
func ConclusionAccuracySampleGT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldConclusionAccuracySample, v))
}

// ConclusionAccuracySampleGTE applies the GTE predicate on the "conclusion_accuracy_sample" field.
func ConclusionAccuracySampleGTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldConclusionAccuracySample, v))
}

// ConclusionAccuracySampleLT applies the LT predicate on the "conclusion_accuracy_sample" field.
func ConclusionAccuracySampleLT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldConclusionAccuracySample, v))
}

// ConclusionAccuracySampleLTE applies the LTE predicate on the "conclusion_accuracy_sample" field.
func ConclusionAccuracySampleLTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldConclusionAccuracySample, v))
}

// PredictionAccuracyRateEQ applies the EQ predicate on the "prediction_accuracy_rate" field.
func PredictionAccuracyRateEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldPredictionAccuracyRate, v))
}

// PredictionAccuracyRateNEQ applies the NEQ predicate on the "prediction_accuracy_rate" field.
func PredictionAccuracyRateNEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldPredictionAccuracyRate, v))
}

// PredictionAccuracyRateIn applies the In predicate on the "prediction_accuracy_rate" field.
func PredictionAccuracyRateIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldPredictionAccuracyRate, vs...))
}

// PredictionAccuracyRateNotIn applies the NotIn predicate on the "prediction_accuracy_rate" field.
func PredictionAccuracyRateNotIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldPredictionAccuracyRate, vs...))
}

// PredictionAccuracyRateGT applies the GT predicate on the "prediction_accuracy_rate" field.
func PredictionAccuracyRateGT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldPredictionAccuracyRate, v))
}

// PredictionAccuracyRateGTE applies the GTE predicate on the "prediction_accuracy_rate" field.
func PredictionAccuracyRateGTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldPredictionAccuracyRate, v))
}

// PredictionAccuracyRateLT applies the LT predicate on the "prediction_accuracy_rate" field.
func PredictionAccuracyRateLT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldPredictionAccuracyRate, v))
}

// PredictionAccuracyRateLTE applies the LTE predicate on the "prediction_accuracy_rate" field.
func PredictionAccuracyRateLTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldPredictionAccuracyRate, v))
}

// PredictionAccuracyRateIsNil applies the IsNil predicate on the "prediction_accuracy_rate" field.
func PredictionAccuracyRateIsNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIsNull(FieldPredictionAccuracyRate))
}

// PredictionAccuracyRateNotNil applies the NotNil predicate on the "prediction_accuracy_rate" field.
func PredictionAccuracyRateNotNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotNull(FieldPredictionAccuracyRate))
}

// PredictionAccuracySampleEQ applies the EQ predicate on the "prediction_accuracy_sample" field.
func PredictionAccuracySampleEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldPredictionAccuracySample, v))
}

// PredictionAccuracySampleNEQ applies the NEQ predicate on the "prediction_accuracy_sample" field.
func PredictionAccuracySampleNEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldPredictionAccuracySample, v))
}

// PredictionAccuracySampleIn applies the In predicate on the "prediction_accuracy_sample" field.
func PredictionAccuracySampleIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldPredictionAccuracySample, vs...))
}

// PredictionAccuracySampleNotIn applies the NotIn predicate on the "prediction_accuracy_sample" field.
func PredictionAccuracySampleNotIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldPredictionAccuracySample, vs...))
}

// PredictionAccuracySampleGT applies the GT predicate on the "prediction_accuracy_sample" field.
func PredictionAccuracySampleGT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldPredictionAccuracySample, v))
}

// PredictionAccuracySampleGTE applies the GTE predicate on the "prediction_accuracy_sample" field.
func PredictionAccuracySampleGTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldPredictionAccuracySample, v))
}

// PredictionAccuracySampleLT applies the LT predicate on the "prediction_accuracy_sample" field.
func PredictionAccuracySampleLT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldPredictionAccuracySample, v))
}

// PredictionAccuracySampleLTE applies the LTE predicate on the "prediction_accuracy_sample" field.
func PredictionAccuracySampleLTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldPredictionAccuracySample, v))
}

// LogicRigorScoreEQ applies the EQ predicate on the "logic_rigor_score" field.
func LogicRigorScoreEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldLogicRigorScore, v))
}

// LogicRigorScoreNEQ applies the NEQ predicate on the "logic_rigor_score" field.
func LogicRigorScoreNEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldLogicRigorScore, v))
}

// LogicRigorScoreIn applies the In predicate on the "logic_rigor_score" field.
func LogicRigorScoreIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldLogicRigorScore, vs...))
}

// LogicRigorScoreNotIn applies the NotIn predicate on the "logic_rigor_score" field.
func LogicRigorScoreNotIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldLogicRigorScore, vs...))
}

// LogicRigorScoreGT applies the GT predicate on the "logic_rigor_score" field.
func LogicRigorScoreGT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldLogicRigorScore, v))
}

// LogicRigorScoreGTE applies the GTE predicate on the "logic_rigor_score" field.
func LogicRigorScoreGTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldLogicRigorScore, v))
}

// LogicRigorScoreLT applies the LT predicate on the "logic_rigor_score" field.
func LogicRigorScoreLT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldLogicRigorScore, v))
}

// LogicRigorScoreLTE applies the LTE predicate on the "logic_rigor_score" field.
func LogicRigorScoreLTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldLogicRigorScore, v))
}

// LogicRigorScoreIsNil applies the IsNil predicate on the "logic_rigor_score" field.
func LogicRigorScoreIsNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIsNull(FieldLogicRigorScore))
}

// LogicRigorScoreNotNil applies the NotNil predicate on the "logic_rigor_score" field.
func LogicRigorScoreNotNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotNull(FieldLogicRigorScore))
}

// LogicRigorSampleEQ applies the EQ predicate on the "logic_rigor_sample" field.
func LogicRigorSampleEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldLogicRigorSample, v))
}

// LogicRigorSampleNEQ applies the NEQ predicate on the "logic_rigor_sample" field.
func LogicRigorSampleNEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldLogicRigorSample, v))
}

// LogicRigorSampleIn applies the In predicate on the "logic_rigor_sample" field.
func LogicRigorSampleIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldLogicRigorSample, vs...))
}

// LogicRigorSampleNotIn applies the NotIn predicate on the "logic_rigor_sample" field.
func LogicRigorSampleNotIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldLogicRigorSample, vs...))
}

// LogicRigorSampleGT applies the GT predicate on the "logic_rigor_sample" field.
func LogicRigorSampleGT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldLogicRigorSample, v))
}

// LogicRigorSampleGTE applies the GTE predicate on the "logic_rigor_sample" field.
func LogicRigorSampleGTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldLogicRigorSample, v))
}

// LogicRigorSampleLT applies the LT predicate on the "logic_rigor_sample" field.
func LogicRigorSampleLT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldLogicRigorSample, v))
}

// LogicRigorSampleLTE applies the LTE predicate on the "logic_rigor_sample" field.
func LogicRigorSampleLTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldLogicRigorSample, v))
}

// RecommendationReliabilityRateEQ applies the EQ predicate on the "recommendation_reliability_rate" field.
func RecommendationReliabilityRateEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldRecommendationReliabilityRate, v))
}

// RecommendationReliabilityRateNEQ applies the NEQ predicate on the "recommendation_reliability_rate" field.
func RecommendationReliabilityRateNEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldRecommendationReliabilityRate, v))
}

// RecommendationReliabilityRateIn applies the In predicate on the "recommendation_reliability_rate" field.
func RecommendationReliabilityRateIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldRecommendationReliabilityRate, vs...))
}

// RecommendationReliabilityRateNotIn applies the NotIn predicate on the "recommendation_reliability_rate" field.
func RecommendationReliabilityRateNotIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldRecommendationReliabilityRate, vs...))
}

// RecommendationReliabilityRateGT applies the GT predicate on the "recommendation_reliability_rate" field.
func RecommendationReliabilityRateGT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldRecommendationReliabilityRate, v))
}

// RecommendationReliabilityRateGTE applies the GTE predicate on the "recommendation_reliability_rate" field.
func RecommendationReliabilityRateGTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldRecommendationReliabilityRate, v))
}

// RecommendationReliabilityRateLT applies the LT predicate on the "recommendation_reliability_rate" field.
func RecommendationReliabilityRateLT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldRecommendationReliabilityRate, v))
}

// RecommendationReliabilityRateLTE applies the LTE predicate on the "recommendation_reliability_rate" field.
func RecommendationReliabilityRateLTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldRecommendationReliabilityRate, v))
}

// RecommendationReliabilityRateIsNil applies the IsNil predicate on the "recommendation_reliability_rate" field.
func RecommendationReliabilityRateIsNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIsNull(FieldRecommendationReliabilityRate))
}

// RecommendationReliabilityRateNotNil applies the NotNil predicate on the "recommendation_reliability_rate" field.
func RecommendationReliabilityRateNotNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotNull(FieldRecommendationReliabilityRate))
}

// RecommendationReliabilitySampleEQ applies the EQ predicate on the "recommendation_reliability_sample" field.
func RecommendationReliabilitySampleEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldRecommendationReliabilitySample, v))
}

// RecommendationReliabilitySampleNEQ applies the NEQ predicate on the "recommendation_reliability_sample" field.
func RecommendationReliabilitySampleNEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldRecommendationReliabilitySample, v))
}

// RecommendationReliabilitySampleIn applies the In predicate on the "recommendation_reliability_sample" field.
func RecommendationReliabilitySampleIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldRecommendationReliabilitySample, vs...))
}

// RecommendationReliabilitySampleNotIn applies the NotIn predicate on the "recommendation_reliability_sample" field.
func RecommendationReliabilitySampleNotIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldRecommendationReliabilitySample, vs...))
}

// RecommendationReliabilitySampleGT applies the GT predicate on the "recommendation_reliability_sample" field.
func RecommendationReliabilitySampleGT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldRecommendationReliabilitySample, v))
}

// RecommendationReliabilitySampleGTE applies the GTE predicate on the "recommendation_reliability_sample" field.
func RecommendationReliabilitySampleGTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldRecommendationReliabilitySample, v))
}

// RecommendationReliabilitySampleLT applies the LT predicate on the "recommendation_reliability_sample" field.
func RecommendationReliabilitySampleLT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldRecommendationReliabilitySample, v))
}

// RecommendationReliabilitySampleLTE applies the LTE predicate on the "recommendation_reliability_sample" field.
func RecommendationReliabilitySampleLTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldRecommendationReliabilitySample, v))
}

// ContentUniquenessScoreEQ applies the EQ predicate on the "content_uniqueness_score" field.
func ContentUniquenessScoreEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldContentUniquenessScore, v))
}

// ContentUniquenessScoreNEQ applies the NEQ predicate on the "content_uniqueness_score" field.
func ContentUniquenessScoreNEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldContentUniquenessScore, v))
}

// ContentUniquenessScoreIn applies the In predicate on the "content_uniqueness_score" field.
func ContentUniquenessScoreIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldContentUniquenessScore, vs...))
}

// ContentUniquenessScoreNotIn applies the NotIn predicate on the "content_uniqueness_score" field.
func ContentUniquenessScoreNotIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldContentUniquenessScore, vs...))
}

// ContentUniquenessScoreGT applies the GT predicate on the "content_uniqueness_score" field.
func ContentUniquenessScoreGT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldContentUniquenessScore, v))
}

// ContentUniquenessScoreGTE applies the GTE predicate on the "content_uniqueness_score" field.
func ContentUniquenessScoreGTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldContentUniquenessScore, v))
}

// ContentUniquenessScoreLT applies the LT predicate on the "content_uniqueness_score" field.
func ContentUniquenessScoreLT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldContentUniquenessScore, v))
}

// ContentUniquenessScoreLTE applies the LTE predicate on the "content_uniqueness_score" field.
func ContentUniquenessScoreLTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldContentUniquenessScore, v))
}

// ContentUniquenessScoreIsNil applies the IsNil predicate on the "content_uniqueness_score" field.
func ContentUniquenessScoreIsNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIsNull(FieldContentUniquenessScore))
}

// ContentUniquenessScoreNotNil applies the NotNil predicate on the "content_uniqueness_score" field.
func ContentUniquenessScoreNotNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotNull(FieldContentUniquenessScore))
}

// ContentUniquenessSampleEQ applies the EQ predicate on the "content_uniqueness_sample" field.
func ContentUniquenessSampleEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldContentUniquenessSample, v))
}

// ContentUniquenessSampleNEQ applies the NEQ predicate on the "content_uniqueness_sample" field.
func ContentUniquenessSampleNEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldContentUniquenessSample, v))
}

// ContentUniquenessSampleIn applies the In predicate on the "content_uniqueness_sample" field.
func ContentUniquenessSampleIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldContentUniquenessSample, vs...))
}

// ContentUniquenessSampleNotIn applies the NotIn predicate on the "content_uniqueness_sample" field.
func ContentUniquenessSampleNotIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldContentUniquenessSample, vs...))
}

// ContentUniquenessSampleGT applies the GT predicate on the "content_uniqueness_sample" field.
func ContentUniquenessSampleGT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldContentUniquenessSample, v))
}

// ContentUniquenessSampleGTE applies the GTE predicate on the "content_uniqueness_sample" field.
func ContentUniquenessSampleGTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldContentUniquenessSample, v))
}

// ContentUniquenessSampleLT applies the LT predicate on the "content_uniqueness_sample" field.
func ContentUniquenessSampleLT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldContentUniquenessSample, v))
}

// ContentUniquenessSampleLTE applies the LTE predicate on the "content_uniqueness_sample" field.
func ContentUniquenessSampleLTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldContentUniquenessSample, v))
}

// ContentEffectivenessScoreEQ applies the EQ predicate on the "content_effectiveness_score" field.
func ContentEffectivenessScoreEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldContentEffectivenessScore, v))
}

// ContentEffectivenessScoreNEQ applies the NEQ predicate on the "content_effectiveness_score" field.
func ContentEffectivenessScoreNEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldContentEffectivenessScore, v))
}

// ContentEffectivenessScoreIn applies the In predicate on the "content_effectiveness_score" field.
func ContentEffectivenessScoreIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldContentEffectivenessScore, vs...))
}

// ContentEffectivenessScoreNotIn applies the NotIn predicate on the "content_effectiveness_score" field.
func ContentEffectivenessScoreNotIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldContentEffectivenessScore, vs...))
}

// ContentEffectivenessScoreGT applies the GT predicate on the "content_effectiveness_score" field.
func ContentEffectivenessScoreGT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldContentEffectivenessScore, v))
}

// ContentEffectivenessScoreGTE applies the GTE predicate on the "content_effectiveness_score" field.
func ContentEffectivenessScoreGTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldContentEffectivenessScore, v))
}

// ContentEffectivenessScoreLT applies the LT predicate on the "content_effectiveness_score" field.
func ContentEffectivenessScoreLT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldContentEffectivenessScore, v))
}

// ContentEffectivenessScoreLTE applies the LTE predicate on the "content_effectiveness_score" field.
func ContentEffectivenessScoreLTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldContentEffectivenessScore, v))
}

// ContentEffectivenessScoreIsNil applies the IsNil predicate on the "content_effectiveness_score" field.
func ContentEffectivenessScoreIsNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIsNull(FieldContentEffectivenessScore))
}

// ContentEffectivenessScoreNotNil applies the NotNil predicate on the "content_effectiveness_score" field.
func ContentEffectivenessScoreNotNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotNull(FieldContentEffectivenessScore))
}

// ContentEffectivenessSampleEQ applies the EQ predicate on the "content_effectiveness_sample" field.
func ContentEffectivenessSampleEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldContentEffectivenessSample, v))
}

// ContentEffectivenessSampleNEQ applies the NEQ predicate on the "content_effectiveness_sample" field.
func ContentEffectivenessSampleNEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldContentEffectivenessSample, v))
}

// ContentEffectivenessSampleIn applies the In predicate on the "content_effectiveness_sample" field.
func ContentEffectivenessSampleIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldContentEffectivenessSample, vs...))
}

// ContentEffectivenessSampleNotIn applies the NotIn predicate on the "content_effectiveness_sample" field.
func ContentEffectivenessSampleNotIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldContentEffectivenessSample, vs...))
}

// ContentEffectivenessSampleGT applies the GT predicate on the "content_effectiveness_sample" field.
func ContentEffectivenessSampleGT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldContentEffectivenessSample, v))
}

// ContentEffectivenessSampleGTE applies the GTE predicate on the "content_effectiveness_sample" field.
func ContentEffectivenessSampleGTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldContentEffectivenessSample, v))
}

// ContentEffectivenessSampleLT applies the LT predicate on the "content_effectiveness_sample" field.
func ContentEffectivenessSampleLT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldContentEffectivenessSample, v))
}

// ContentEffectivenessSampleLTE applies the LTE predicate on the "content_effectiveness_sample" field.
func ContentEffectivenessSampleLTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldContentEffectivenessSample, v))
}

// OverallCredibilityScoreEQ applies the EQ predicate on the "overall_credibility_score" field.
func OverallCredibilityScoreEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldOverallCredibilityScore, v))
}

// OverallCredibilityScoreNEQ applies the NEQ predicate on the "overall_credibility_score" field.
func OverallCredibilityScoreNEQ(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldOverallCredibilityScore, v))
}

// OverallCredibilityScoreIn applies the In predicate on the "overall_credibility_score" field.
func OverallCredibilityScoreIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldOverallCredibilityScore, vs...))
}

// OverallCredibilityScoreNotIn applies the NotIn predicate on the "overall_credibility_score" field.
func OverallCredibilityScoreNotIn(vs ...float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldOverallCredibilityScore, vs...))
}

// OverallCredibilityScoreGT applies the GT predicate on the "overall_credibility_score" field.
func OverallCredibilityScoreGT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldOverallCredibilityScore, v))
}

// OverallCredibilityScoreGTE applies the GTE predicate on the "overall_credibility_score" field.
func OverallCredibilityScoreGTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldOverallCredibilityScore, v))
}

// OverallCredibilityScoreLT applies the LT predicate on the "overall_credibility_score" field.
func OverallCredibilityScoreLT(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldOverallCredibilityScore, v))
}

// OverallCredibilityScoreLTE applies the LTE predicate on the "overall_credibility_score" field.
func OverallCredibilityScoreLTE(v float64) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldOverallCredibilityScore, v))
}

// OverallCredibilityScoreIsNil applies the IsNil predicate on the "overall_credibility_score" field.
func OverallCredibilityScoreIsNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIsNull(FieldOverallCredibilityScore))
}

// OverallCredibilityScoreNotNil applies the NotNil predicate on the "overall_credibility_score" field.
func OverallCredibilityScoreNotNil() predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotNull(FieldOverallCredibilityScore))
}

// TotalPostsAnalyzedEQ applies the EQ predicate on the "total_posts_analyzed" field.
func TotalPostsAnalyzedEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldTotalPostsAnalyzed, v))
}

// TotalPostsAnalyzedNEQ applies the NEQ predicate on the "total_posts_analyzed" field.
func TotalPostsAnalyzedNEQ(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldTotalPostsAnalyzed, v))
}

// TotalPostsAnalyzedIn applies the In predicate on the "total_posts_analyzed" field.
func TotalPostsAnalyzedIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldTotalPostsAnalyzed, vs...))
}

// TotalPostsAnalyzedNotIn applies the NotIn predicate on the "total_posts_analyzed" field.
func TotalPostsAnalyzedNotIn(vs ...int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldTotalPostsAnalyzed, vs...))
}

// TotalPostsAnalyzedGT applies the GT predicate on the "total_posts_analyzed" field.
func TotalPostsAnalyzedGT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldTotalPostsAnalyzed, v))
}

// TotalPostsAnalyzedGTE applies the GTE predicate on the "total_posts_analyzed" field.
func TotalPostsAnalyzedGTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldTotalPostsAnalyzed, v))
}

// TotalPostsAnalyzedLT applies the LT predicate on the "total_posts_analyzed" field.
func TotalPostsAnalyzedLT(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldTotalPostsAnalyzed, v))
}

// TotalPostsAnalyzedLTE applies the LTE predicate on the "total_posts_analyzed" field.
func TotalPostsAnalyzedLTE(v int) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldTotalPostsAnalyzed, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.AuthorStats {
	return predicate.AuthorStats(sql.FieldLTE(FieldLastUpdated, v))
}

// HasAuthor applies the HasEdge predicate on the "author" edge.
func HasAuthor() predicate.AuthorStats {
	return predicate.AuthorStats(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AuthorTable, AuthorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorWith applies the HasEdge predicate on the "author" edge with a given conditions (other predicates).
func HasAuthorWith(preds ...predicate.Author) predicate.AuthorStats {
	return predicate.AuthorStats(func(s *sql.Selector) {
		step := newAuthorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuthorStats) predicate.AuthorStats {
	return predicate.AuthorStats(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuthorStats) predicate.AuthorStats {
	return predicate.AuthorStats(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuthorStats) predicate.AuthorStats {
	return predicate.AuthorStats(sql.NotPredicates(p))
}
