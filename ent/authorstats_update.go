// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/authorstats"
	"github.com/credlens/pundit/ent/predicate"
)

// AuthorStatsUpdate is the builder for updating AuthorStats entities.
type AuthorStatsUpdate struct {
	config
	hooks    []Hook
	mutation *AuthorStatsMutation
}

// Where appends a list predicates to the AuthorStatsUpdate builder.
func (_u *AuthorStatsUpdate) Where(ps ...predicate.AuthorStats) *AuthorStatsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *AuthorStatsUpdate) SetAuthorID(v int) *AuthorStatsUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableAuthorID(v *int) *AuthorStatsUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetFactAccuracyRate sets the "fact_accuracy_rate" field.
func (_u *AuthorStatsUpdate) SetFactAccuracyRate(v float64) *AuthorStatsUpdate {
	_u.mutation.ResetFactAccuracyRate()
	_u.mutation.SetFactAccuracyRate(v)
	return _u
}

// SetNillableFactAccuracyRate sets the "fact_accuracy_rate" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableFactAccuracyRate(v *float64) *AuthorStatsUpdate {
	if v != nil {
		_u.SetFactAccuracyRate(*v)
	}
	return _u
}

// AddFactAccuracyRate adds value to the "fact_accuracy_rate" field.
func (_u *AuthorStatsUpdate) AddFactAccuracyRate(v float64) *AuthorStatsUpdate {
	_u.mutation.AddFactAccuracyRate(v)
	return _u
}

// ClearFactAccuracyRate clears the value of the "fact_accuracy_rate" field.
func (_u *AuthorStatsUpdate) ClearFactAccuracyRate() *AuthorStatsUpdate {
	_u.mutation.ClearFactAccuracyRate()
	return _u
}

// SetFactAccuracySample sets the "fact_accuracy_sample" field.
func (_u *AuthorStatsUpdate) SetFactAccuracySample(v int) *AuthorStatsUpdate {
	_u.mutation.ResetFactAccuracySample()
	_u.mutation.SetFactAccuracySample(v)
	return _u
}

// SetNillableFactAccuracySample sets the "fact_accuracy_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableFactAccuracySample(v *int) *AuthorStatsUpdate {
	if v != nil {
		_u.SetFactAccuracySample(*v)
	}
	return _u
}

// AddFactAccuracySample adds value to the "fact_accuracy_sample" field.
func (_u *AuthorStatsUpdate) AddFactAccuracySample(v int) *AuthorStatsUpdate {
	_u.mutation.AddFactAccuracySample(v)
	return _u
}

// SetConclusionAccuracyRate sets the "conclusion_accuracy_rate" field.
func (_u *AuthorStatsUpdate) SetConclusionAccuracyRate(v float64) *AuthorStatsUpdate {
	_u.mutation.ResetConclusionAccuracyRate()
	_u.mutation.SetConclusionAccuracyRate(v)
	return _u
}

// SetNillableConclusionAccuracyRate sets the "conclusion_accuracy_rate" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableConclusionAccuracyRate(v *float64) *AuthorStatsUpdate {
	if v != nil {
		_u.SetConclusionAccuracyRate(*v)
	}
	return _u
}

// AddConclusionAccuracyRate adds value to the "conclusion_accuracy_rate" field.
func (_u *AuthorStatsUpdate) AddConclusionAccuracyRate(v float64) *AuthorStatsUpdate {
	_u.mutation.AddConclusionAccuracyRate(v)
	return _u
}

// ClearConclusionAccuracyRate clears the value of the "conclusion_accuracy_rate" field.
func (_u *AuthorStatsUpdate) ClearConclusionAccuracyRate() *AuthorStatsUpdate {
	_u.mutation.ClearConclusionAccuracyRate()
	return _u
}

// SetConclusionAccuracySample sets the "conclusion_accuracy_sample" field.
func (_u *AuthorStatsUpdate) SetConclusionAccuracySample(v int) *AuthorStatsUpdate {
	_u.mutation.ResetConclusionAccuracySample()
	_u.mutation.SetConclusionAccuracySample(v)
	return _u
}

// SetNillableConclusionAccuracySample sets the "conclusion_accuracy_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableConclusionAccuracySample(v *int) *AuthorStatsUpdate {
	if v != nil {
		_u.SetConclusionAccuracySample(*v)
	}
	return _u
}

// AddConclusionAccuracySample adds value to the "conclusion_accuracy_sample" field.
func (_u *AuthorStatsUpdate) AddConclusionAccuracySample(v int) *AuthorStatsUpdate {
	_u.mutation.AddConclusionAccuracySample(v)
	return _u
}

// SetPredictionAccuracyRate sets the "prediction_accuracy_rate" field.
func (_u *AuthorStatsUpdate) SetPredictionAccuracyRate(v float64) *AuthorStatsUpdate {
	_u.mutation.ResetPredictionAccuracyRate()
	_u.mutation.SetPredictionAccuracyRate(v)
	return _u
}

// SetNillablePredictionAccuracyRate sets the "prediction_accuracy_rate" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillablePredictionAccuracyRate(v *float64) *AuthorStatsUpdate {
	if v != nil {
		_u.SetPredictionAccuracyRate(*v)
	}
	return _u
}

// AddPredictionAccuracyRate adds value to the "prediction_accuracy_rate" field.
func (_u *AuthorStatsUpdate) AddPredictionAccuracyRate(v float64) *AuthorStatsUpdate {
	_u.mutation.AddPredictionAccuracyRate(v)
	return _u
}

// ClearPredictionAccuracyRate clears the value of the "prediction_accuracy_rate" field.
func (_u *AuthorStatsUpdate) ClearPredictionAccuracyRate() *AuthorStatsUpdate {
	_u.mutation.ClearPredictionAccuracyRate()
	return _u
}

// SetPredictionAccuracySample sets the "prediction_accuracy_sample" field.
func (_u *AuthorStatsUpdate) SetPredictionAccuracySample(v int) *AuthorStatsUpdate {
	_u.mutation.ResetPredictionAccuracySample()
	_u.mutation.SetPredictionAccuracySample(v)
	return _u
}

// SetNillablePredictionAccuracySample sets the "prediction_accuracy_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillablePredictionAccuracySample(v *int) *AuthorStatsUpdate {
	if v != nil {
		_u.SetPredictionAccuracySample(*v)
	}
	return _u
}

// AddPredictionAccuracySample adds value to the "prediction_accuracy_sample" field.
func (_u *AuthorStatsUpdate) AddPredictionAccuracySample(v int) *AuthorStatsUpdate {
	_u.mutation.AddPredictionAccuracySample(v)
	return _u
}

// SetLogicRigorScore sets the "logic_rigor_score" field.
func (_u *AuthorStatsUpdate) SetLogicRigorScore(v float64) *AuthorStatsUpdate {
	_u.mutation.ResetLogicRigorScore()
	_u.mutation.SetLogicRigorScore(v)
	return _u
}

// SetNillableLogicRigorScore sets the "logic_rigor_score" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableLogicRigorScore(v *float64) *AuthorStatsUpdate {
	if v != nil {
		_u.SetLogicRigorScore(*v)
	}
	return _u
}

// AddLogicRigorScore adds value to the "logic_rigor_score" field.
func (_u *AuthorStatsUpdate) AddLogicRigorScore(v float64) *AuthorStatsUpdate {
	_u.mutation.AddLogicRigorScore(v)
	return _u
}

// ClearLogicRigorScore clears the value of the "logic_rigor_score" field.
func (_u *AuthorStatsUpdate) ClearLogicRigorScore() *AuthorStatsUpdate {
	_u.mutation.ClearLogicRigorScore()
	return _u
}

// SetLogicRigorSample sets the "logic_rigor_sample" field.
func (_u *AuthorStatsUpdate) SetLogicRigorSample(v int) *AuthorStatsUpdate {
	_u.mutation.ResetLogicRigorSample()
	_u.mutation.SetLogicRigorSample(v)
	return _u
}

// SetNillableLogicRigorSample sets the "logic_rigor_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableLogicRigorSample(v *int) *AuthorStatsUpdate {
	if v != nil {
		_u.SetLogicRigorSample(*v)
	}
	return _u
}

// AddLogicRigorSample adds value to the "logic_rigor_sample" field.
func (_u *AuthorStatsUpdate) AddLogicRigorSample(v int) *AuthorStatsUpdate {
	_u.mutation.AddLogicRigorSample(v)
	return _u
}

// SetRecommendationReliabilityRate sets the "recommendation_reliability_rate" field.
func (_u *AuthorStatsUpdate) SetRecommendationReliabilityRate(v float64) *AuthorStatsUpdate {
	_u.mutation.ResetRecommendationReliabilityRate()
	_u.mutation.SetRecommendationReliabilityRate(v)
	return _u
}

// SetNillableRecommendationReliabilityRate sets the "recommendation_reliability_rate" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableRecommendationReliabilityRate(v *float64) *AuthorStatsUpdate {
	if v != nil {
		_u.SetRecommendationReliabilityRate(*v)
	}
	return _u
}

// AddRecommendationReliabilityRate adds value to the "recommendation_reliability_rate" field.
func (_u *AuthorStatsUpdate) AddRecommendationReliabilityRate(v float64) *AuthorStatsUpdate {
	_u.mutation.AddRecommendationReliabilityRate(v)
	return _u
}

// ClearRecommendationReliabilityRate clears the value of the "recommendation_reliability_rate" field.
func (_u *AuthorStatsUpdate) ClearRecommendationReliabilityRate() *AuthorStatsUpdate {
	_u.mutation.ClearRecommendationReliabilityRate()
	return _u
}

// SetRecommendationReliabilitySample sets the "recommendation_reliability_sample" field.
func (_u *AuthorStatsUpdate) SetRecommendationReliabilitySample(v int) *AuthorStatsUpdate {
	_u.mutation.ResetRecommendationReliabilitySample()
	_u.mutation.SetRecommendationReliabilitySample(v)
	return _u
}

// SetNillableRecommendationReliabilitySample sets the "recommendation_reliability_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableRecommendationReliabilitySample(v *int) *AuthorStatsUpdate {
	if v != nil {
		_u.SetRecommendationReliabilitySample(*v)
	}
	return _u
}

// AddRecommendationReliabilitySample adds value to the "recommendation_reliability_sample" field.
func (_u *AuthorStatsUpdate) AddRecommendationReliabilitySample(v int) *AuthorStatsUpdate {
	_u.mutation.AddRecommendationReliabilitySample(v)
	return _u
}

// SetContentUniquenessScore sets the "content_uniqueness_score" field.
func (_u *AuthorStatsUpdate) SetContentUniquenessScore(v float64) *AuthorStatsUpdate {
	_u.mutation.ResetContentUniquenessScore()
	_u.mutation.SetContentUniquenessScore(v)
	return _u
}

// SetNillableContentUniquenessScore sets the "content_uniqueness_score" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableContentUniquenessScore(v *float64) *AuthorStatsUpdate {
	if v != nil {
		_u.SetContentUniquenessScore(*v)
	}
	return _u
}

// AddContentUniquenessScore adds value to the "content_uniqueness_score" field.
func (_u *AuthorStatsUpdate) AddContentUniquenessScore(v float64) *AuthorStatsUpdate {
	_u.mutation.AddContentUniquenessScore(v)
	return _u
}

// ClearContentUniquenessScore clears the value of the "content_uniqueness_score" field.
func (_u *AuthorStatsUpdate) ClearContentUniquenessScore() *AuthorStatsUpdate {
	_u.mutation.ClearContentUniquenessScore()
	return _u
}

// SetContentUniquenessSample sets the "content_uniqueness_sample" field.
func (_u *AuthorStatsUpdate) SetContentUniquenessSample(v int) *AuthorStatsUpdate {
	_u.mutation.ResetContentUniquenessSample()
	_u.mutation.SetContentUniquenessSample(v)
	return _u
}

// SetNillableContentUniquenessSample sets the "content_uniqueness_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableContentUniquenessSample(v *int) *AuthorStatsUpdate {
	if v != nil {
		_u.SetContentUniquenessSample(*v)
	}
	return _u
}

// AddContentUniquenessSample adds value to the "content_uniqueness_sample" field.
func (_u *AuthorStatsUpdate) AddContentUniquenessSample(v int) *AuthorStatsUpdate {
	_u.mutation.AddContentUniquenessSample(v)
	return _u
}

// SetContentEffectivenessScore sets the "content_effectiveness_score" field.
func (_u *AuthorStatsUpdate) SetContentEffectivenessScore(v float64) *AuthorStatsUpdate {
	_u.mutation.ResetContentEffectivenessScore()
	_u.mutation.SetContentEffectivenessScore(v)
	return _u
}

// SetNillableContentEffectivenessScore sets the "content_effectiveness_score" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableContentEffectivenessScore(v *float64) *AuthorStatsUpdate {
	if v != nil {
		_u.SetContentEffectivenessScore(*v)
	}
	return _u
}

// AddContentEffectivenessScore adds value to the "content_effectiveness_score" field.
func (_u *AuthorStatsUpdate) AddContentEffectivenessScore(v float64) *AuthorStatsUpdate {
	_u.mutation.AddContentEffectivenessScore(v)
	return _u
}

// ClearContentEffectivenessScore clears the value of the "content_effectiveness_score" field.
func (_u *AuthorStatsUpdate) ClearContentEffectivenessScore() *AuthorStatsUpdate {
	_u.mutation.ClearContentEffectivenessScore()
	return _u
}

// SetContentEffectivenessSample sets the "content_effectiveness_sample" field.
func (_u *AuthorStatsUpdate) SetContentEffectivenessSample(v int) *AuthorStatsUpdate {
	_u.mutation.ResetContentEffectivenessSample()
	_u.mutation.SetContentEffectivenessSample(v)
	return _u
}

// SetNillableContentEffectivenessSample sets the "content_effectiveness_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableContentEffectivenessSample(v *int) *AuthorStatsUpdate {
	if v != nil {
		_u.SetContentEffectivenessSample(*v)
	}
	return _u
}

// AddContentEffectivenessSample adds value to the "content_effectiveness_sample" field.
func (_u *AuthorStatsUpdate) AddContentEffectivenessSample(v int) *AuthorStatsUpdate {
	_u.mutation.AddContentEffectivenessSample(v)
	return _u
}

// SetOverallCredibilityScore sets the "overall_credibility_score" field.
func (_u *AuthorStatsUpdate) SetOverallCredibilityScore(v float64) *AuthorStatsUpdate {
	_u.mutation.ResetOverallCredibilityScore()
	_u.mutation.SetOverallCredibilityScore(v)
	return _u
}

// SetNillableOverallCredibilityScore sets the "overall_credibility_score" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableOverallCredibilityScore(v *float64) *AuthorStatsUpdate {
	if v != nil {
		_u.SetOverallCredibilityScore(*v)
	}
	return _u
}

// AddOverallCredibilityScore adds value to the "overall_credibility_score" field.
func (_u *AuthorStatsUpdate) AddOverallCredibilityScore(v float64) *AuthorStatsUpdate {
	_u.mutation.AddOverallCredibilityScore(v)
	return _u
}

// ClearOverallCredibilityScore clears the value of the "overall_credibility_score" field.
func (_u *AuthorStatsUpdate) ClearOverallCredibilityScore() *AuthorStatsUpdate {
	_u.mutation.ClearOverallCredibilityScore()
	return _u
}

// SetTotalPostsAnalyzed sets the "total_posts_analyzed" field.
func (_u *AuthorStatsUpdate) SetTotalPostsAnalyzed(v int) *AuthorStatsUpdate {
	_u.mutation.ResetTotalPostsAnalyzed()
	_u.mutation.SetTotalPostsAnalyzed(v)
	return _u
}

// SetNillableTotalPostsAnalyzed sets the "total_posts_analyzed" field if the given value is not nil.
func (_u *AuthorStatsUpdate) SetNillableTotalPostsAnalyzed(v *int) *AuthorStatsUpdate {
	if v != nil {
		_u.SetTotalPostsAnalyzed(*v)
	}
	return _u
}

// AddTotalPostsAnalyzed adds value to the "total_posts_analyzed" field.
func (_u *AuthorStatsUpdate) AddTotalPostsAnalyzed(v int) *AuthorStatsUpdate {
	_u.mutation.AddTotalPostsAnalyzed(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *AuthorStatsUpdate) SetLastUpdated(v time.Time) *AuthorStatsUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetAuthor sets the "author" edge to the Author entity.
func (_u *AuthorStatsUpdate) SetAuthor(v *Author) *AuthorStatsUpdate {
	return _u.SetAuthorID(v.ID)
}

// Mutation returns the AuthorStatsMutation object of the builder.
func (_u *AuthorStatsUpdate) Mutation() *AuthorStatsMutation {
	return _u.mutation
}

// ClearAuthor clears the "author" edge to the Author entity.
func (_u *AuthorStatsUpdate) ClearAuthor() *AuthorStatsUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuthorStatsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthorStatsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuthorStatsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthorStatsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AuthorStatsUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := authorstats.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuthorStatsUpdate) check() error {
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuthorStats.author"`)
	}
	return nil
}

func (_u *AuthorStatsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(authorstats.Table, authorstats.Columns, sqlgraph.NewFieldSpec(authorstats.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FactAccuracyRate(); ok {
		_spec.SetField(authorstats.FieldFactAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFactAccuracyRate(); ok {
		_spec.AddField(authorstats.FieldFactAccuracyRate, field.TypeFloat64, value)
	}
	if _u.mutation.FactAccuracyRateCleared() {
		_spec.ClearField(authorstats.FieldFactAccuracyRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FactAccuracySample(); ok {
		_spec.SetField(authorstats.FieldFactAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFactAccuracySample(); ok {
		_spec.AddField(authorstats.FieldFactAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConclusionAccuracyRate(); ok {
		_spec.SetField(authorstats.FieldConclusionAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConclusionAccuracyRate(); ok {
		_spec.AddField(authorstats.FieldConclusionAccuracyRate, field.TypeFloat64, value)
	}
	if _u.mutation.ConclusionAccuracyRateCleared() {
		_spec.ClearField(authorstats.FieldConclusionAccuracyRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConclusionAccuracySample(); ok {
		_spec.SetField(authorstats.FieldConclusionAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConclusionAccuracySample(); ok {
		_spec.AddField(authorstats.FieldConclusionAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PredictionAccuracyRate(); ok {
		_spec.SetField(authorstats.FieldPredictionAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPredictionAccuracyRate(); ok {
		_spec.AddField(authorstats.FieldPredictionAccuracyRate, field.TypeFloat64, value)
	}
	if _u.mutation.PredictionAccuracyRateCleared() {
		_spec.ClearField(authorstats.FieldPredictionAccuracyRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PredictionAccuracySample(); ok {
		_spec.SetField(authorstats.FieldPredictionAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPredictionAccuracySample(); ok {
		_spec.AddField(authorstats.FieldPredictionAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LogicRigorScore(); ok {
		_spec.SetField(authorstats.FieldLogicRigorScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogicRigorScore(); ok {
		_spec.AddField(authorstats.FieldLogicRigorScore, field.TypeFloat64, value)
	}
	if _u.mutation.LogicRigorScoreCleared() {
		_spec.ClearField(authorstats.FieldLogicRigorScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LogicRigorSample(); ok {
		_spec.SetField(authorstats.FieldLogicRigorSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLogicRigorSample(); ok {
		_spec.AddField(authorstats.FieldLogicRigorSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecommendationReliabilityRate(); ok {
		_spec.SetField(authorstats.FieldRecommendationReliabilityRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendationReliabilityRate(); ok {
		_spec.AddField(authorstats.FieldRecommendationReliabilityRate, field.TypeFloat64, value)
	}
	if _u.mutation.RecommendationReliabilityRateCleared() {
		_spec.ClearField(authorstats.FieldRecommendationReliabilityRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecommendationReliabilitySample(); ok {
		_spec.SetField(authorstats.FieldRecommendationReliabilitySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecommendationReliabilitySample(); ok {
		_spec.AddField(authorstats.FieldRecommendationReliabilitySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentUniquenessScore(); ok {
		_spec.SetField(authorstats.FieldContentUniquenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContentUniquenessScore(); ok {
		_spec.AddField(authorstats.FieldContentUniquenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.ContentUniquenessScoreCleared() {
		_spec.ClearField(authorstats.FieldContentUniquenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContentUniquenessSample(); ok {
		_spec.SetField(authorstats.FieldContentUniquenessSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentUniquenessSample(); ok {
		_spec.AddField(authorstats.FieldContentUniquenessSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentEffectivenessScore(); ok {
		_spec.SetField(authorstats.FieldContentEffectivenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContentEffectivenessScore(); ok {
		_spec.AddField(authorstats.FieldContentEffectivenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.ContentEffectivenessScoreCleared() {
		_spec.ClearField(authorstats.FieldContentEffectivenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContentEffectivenessSample(); ok {
		_spec.SetField(authorstats.FieldContentEffectivenessSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentEffectivenessSample(); ok {
		_spec.AddField(authorstats.FieldContentEffectivenessSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallCredibilityScore(); ok {
		_spec.SetField(authorstats.FieldOverallCredibilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallCredibilityScore(); ok {
		_spec.AddField(authorstats.FieldOverallCredibilityScore, field.TypeFloat64, value)
	}
	if _u.mutation.OverallCredibilityScoreCleared() {
		_spec.ClearField(authorstats.FieldOverallCredibilityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalPostsAnalyzed(); ok {
		_spec.SetField(authorstats.FieldTotalPostsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPostsAnalyzed(); ok {
		_spec.AddField(authorstats.FieldTotalPostsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(authorstats.FieldLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.AuthorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   authorstats.AuthorTable,
			Columns: []string{authorstats.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   authorstats.AuthorTable,
			Columns: []string{authorstats.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{authorstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuthorStatsUpdateOne is the builder for updating a single AuthorStats entity.
type AuthorStatsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuthorStatsMutation
}

// SetAuthorID sets the "author_id" field.
func (_u *AuthorStatsUpdateOne) SetAuthorID(v int) *AuthorStatsUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableAuthorID(v *int) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetFactAccuracyRate sets the "fact_accuracy_rate" field.
func (_u *AuthorStatsUpdateOne) SetFactAccuracyRate(v float64) *AuthorStatsUpdateOne {
	_u.mutation.ResetFactAccuracyRate()
	_u.mutation.SetFactAccuracyRate(v)
	return _u
}

// SetNillableFactAccuracyRate sets the "fact_accuracy_rate" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableFactAccuracyRate(v *float64) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetFactAccuracyRate(*v)
	}
	return _u
}

// AddFactAccuracyRate adds value to the "fact_accuracy_rate" field.
func (_u *AuthorStatsUpdateOne) AddFactAccuracyRate(v float64) *AuthorStatsUpdateOne {
	_u.mutation.AddFactAccuracyRate(v)
	return _u
}

// ClearFactAccuracyRate clears the value of the "fact_accuracy_rate" field.
func (_u *AuthorStatsUpdateOne) ClearFactAccuracyRate() *AuthorStatsUpdateOne {
	_u.mutation.ClearFactAccuracyRate()
	return _u
}

// SetFactAccuracySample sets the "fact_accuracy_sample" field.
func (_u *AuthorStatsUpdateOne) SetFactAccuracySample(v int) *AuthorStatsUpdateOne {
	_u.mutation.ResetFactAccuracySample()
	_u.mutation.SetFactAccuracySample(v)
	return _u
}

// SetNillableFactAccuracySample sets the "fact_accuracy_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableFactAccuracySample(v *int) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetFactAccuracySample(*v)
	}
	return _u
}

// AddFactAccuracySample adds value to the "fact_accuracy_sample" field.
func (_u *AuthorStatsUpdateOne) AddFactAccuracySample(v int) *AuthorStatsUpdateOne {
	_u.mutation.AddFactAccuracySample(v)
	return _u
}

// SetConclusionAccuracyRate sets the "conclusion_accuracy_rate" field.
func (_u *AuthorStatsUpdateOne) SetConclusionAccuracyRate(v float64) *AuthorStatsUpdateOne {
	_u.mutation.ResetConclusionAccuracyRate()
	_u.mutation.SetConclusionAccuracyRate(v)
	return _u
}

// SetNillableConclusionAccuracyRate sets the "conclusion_accuracy_rate" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableConclusionAccuracyRate(v *float64) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetConclusionAccuracyRate(*v)
	}
	return _u
}

// AddConclusionAccuracyRate adds value to the "conclusion_accuracy_rate" field.
func (_u *AuthorStatsUpdateOne) AddConclusionAccuracyRate(v float64) *AuthorStatsUpdateOne {
	_u.mutation.AddConclusionAccuracyRate(v)
	return _u
}

// ClearConclusionAccuracyRate clears the value of the "conclusion_accuracy_rate" field.
func (_u *AuthorStatsUpdateOne) ClearConclusionAccuracyRate() *AuthorStatsUpdateOne {
	_u.mutation.ClearConclusionAccuracyRate()
	return _u
}

// SetConclusionAccuracySample sets the "conclusion_accuracy_sample" field.
func (_u *AuthorStatsUpdateOne) SetConclusionAccuracySample(v int) *AuthorStatsUpdateOne {
	_u.mutation.ResetConclusionAccuracySample()
	_u.mutation.SetConclusionAccuracySample(v)
	return _u
}

// SetNillableConclusionAccuracySample sets the "conclusion_accuracy_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableConclusionAccuracySample(v *int) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetConclusionAccuracySample(*v)
	}
	return _u
}

// AddConclusionAccuracySample adds value to the "conclusion_accuracy_sample" field.
func (_u *AuthorStatsUpdateOne) AddConclusionAccuracySample(v int) *AuthorStatsUpdateOne {
	_u.mutation.AddConclusionAccuracySample(v)
	return _u
}

// SetPredictionAccuracyRate sets the "prediction_accuracy_rate" field.
func (_u *AuthorStatsUpdateOne) SetPredictionAccuracyRate(v float64) *AuthorStatsUpdateOne {
	_u.mutation.ResetPredictionAccuracyRate()
	_u.mutation.SetPredictionAccuracyRate(v)
	return _u
}

// SetNillablePredictionAccuracyRate sets the "prediction_accuracy_rate" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillablePredictionAccuracyRate(v *float64) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetPredictionAccuracyRate(*v)
	}
	return _u
}

// AddPredictionAccuracyRate adds value to the "prediction_accuracy_rate" field.
func (_u *AuthorStatsUpdateOne) AddPredictionAccuracyRate(v float64) *AuthorStatsUpdateOne {
	_u.mutation.AddPredictionAccuracyRate(v)
	return _u
}

// ClearPredictionAccuracyRate clears the value of the "prediction_accuracy_rate" field.
func (_u *AuthorStatsUpdateOne) ClearPredictionAccuracyRate() *AuthorStatsUpdateOne {
	_u.mutation.ClearPredictionAccuracyRate()
	return _u
}

// SetPredictionAccuracySample sets the "prediction_accuracy_sample" field.
func (_u *AuthorStatsUpdateOne) SetPredictionAccuracySample(v int) *AuthorStatsUpdateOne {
	_u.mutation.ResetPredictionAccuracySample()
	_u.mutation.SetPredictionAccuracySample(v)
	return _u
}

// SetNillablePredictionAccuracySample sets the "prediction_accuracy_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillablePredictionAccuracySample(v *int) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetPredictionAccuracySample(*v)
	}
	return _u
}

// AddPredictionAccuracySample adds value to the "prediction_accuracy_sample" field.
func (_u *AuthorStatsUpdateOne) AddPredictionAccuracySample(v int) *AuthorStatsUpdateOne {
	_u.mutation.AddPredictionAccuracySample(v)
	return _u
}

// SetLogicRigorScore sets the "logic_rigor_score" field.
func (_u *AuthorStatsUpdateOne) SetLogicRigorScore(v float64) *AuthorStatsUpdateOne {
	_u.mutation.ResetLogicRigorScore()
	_u.mutation.SetLogicRigorScore(v)
	return _u
}

// SetNillableLogicRigorScore sets the "logic_rigor_score" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableLogicRigorScore(v *float64) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetLogicRigorScore(*v)
	}
	return _u
}

// AddLogicRigorScore adds value to the "logic_rigor_score" field.
func (_u *AuthorStatsUpdateOne) AddLogicRigorScore(v float64) *AuthorStatsUpdateOne {
	_u.mutation.AddLogicRigorScore(v)
	return _u
}

// ClearLogicRigorScore clears the value of the "logic_rigor_score" field.
func (_u *AuthorStatsUpdateOne) ClearLogicRigorScore() *AuthorStatsUpdateOne {
	_u.mutation.ClearLogicRigorScore()
	return _u
}

// SetLogicRigorSample sets the "logic_rigor_sample" field.
func (_u *AuthorStatsUpdateOne) SetLogicRigorSample(v int) *AuthorStatsUpdateOne {
	_u.mutation.ResetLogicRigorSample()
	_u.mutation.SetLogicRigorSample(v)
	return _u
}

// SetNillableLogicRigorSample sets the "logic_rigor_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableLogicRigorSample(v *int) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetLogicRigorSample(*v)
	}
	return _u
}

// AddLogicRigorSample adds value to the "logic_rigor_sample" field.
func (_u *AuthorStatsUpdateOne) AddLogicRigorSample(v int) *AuthorStatsUpdateOne {
	_u.mutation.AddLogicRigorSample(v)
	return _u
}

// SetRecommendationReliabilityRate sets the "recommendation_reliability_rate" field.
func (_u *AuthorStatsUpdateOne) SetRecommendationReliabilityRate(v float64) *AuthorStatsUpdateOne {
	_u.mutation.ResetRecommendationReliabilityRate()
	_u.mutation.SetRecommendationReliabilityRate(v)
	return _u
}

// SetNillableRecommendationReliabilityRate sets the "recommendation_reliability_rate" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableRecommendationReliabilityRate(v *float64) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetRecommendationReliabilityRate(*v)
	}
	return _u
}

// AddRecommendationReliabilityRate adds value to the "recommendation_reliability_rate" field.
func (_u *AuthorStatsUpdateOne) AddRecommendationReliabilityRate(v float64) *AuthorStatsUpdateOne {
	_u.mutation.AddRecommendationReliabilityRate(v)
	return _u
}

// ClearRecommendationReliabilityRate clears the value of the "recommendation_reliability_rate" field.
func (_u *AuthorStatsUpdateOne) ClearRecommendationReliabilityRate() *AuthorStatsUpdateOne {
	_u.mutation.ClearRecommendationReliabilityRate()
	return _u
}

// SetRecommendationReliabilitySample sets the "recommendation_reliability_sample" field.
func (_u *AuthorStatsUpdateOne) SetRecommendationReliabilitySample(v int) *AuthorStatsUpdateOne {
	_u.mutation.ResetRecommendationReliabilitySample()
	_u.mutation.SetRecommendationReliabilitySample(v)
	return _u
}

// SetNillableRecommendationReliabilitySample sets the "recommendation_reliability_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableRecommendationReliabilitySample(v *int) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetRecommendationReliabilitySample(*v)
	}
	return _u
}

// AddRecommendationReliabilitySample adds value to the "recommendation_reliability_sample" field.
func (_u *AuthorStatsUpdateOne) AddRecommendationReliabilitySample(v int) *AuthorStatsUpdateOne {
	_u.mutation.AddRecommendationReliabilitySample(v)
	return _u
}

// SetContentUniquenessScore sets the "content_uniqueness_score" field.
func (_u *AuthorStatsUpdateOne) SetContentUniquenessScore(v float64) *AuthorStatsUpdateOne {
	_u.mutation.ResetContentUniquenessScore()
	_u.mutation.SetContentUniquenessScore(v)
	return _u
}

// SetNillableContentUniquenessScore sets the "content_uniqueness_score" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableContentUniquenessScore(v *float64) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetContentUniquenessScore(*v)
	}
	return _u
}

// AddContentUniquenessScore adds value to the "content_uniqueness_score" field.
func (_u *AuthorStatsUpdateOne) AddContentUniquenessScore(v float64) *AuthorStatsUpdateOne {
	_u.mutation.AddContentUniquenessScore(v)
	return _u
}

// ClearContentUniquenessScore clears the value of the "content_uniqueness_score" field.
func (_u *AuthorStatsUpdateOne) ClearContentUniquenessScore() *AuthorStatsUpdateOne {
	_u.mutation.ClearContentUniquenessScore()
	return _u
}

// SetContentUniquenessSample sets the "content_uniqueness_sample" field.
func (_u *AuthorStatsUpdateOne) SetContentUniquenessSample(v int) *AuthorStatsUpdateOne {
	_u.mutation.ResetContentUniquenessSample()
	_u.mutation.SetContentUniquenessSample(v)
	return _u
}

// SetNillableContentUniquenessSample sets the "content_uniqueness_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableContentUniquenessSample(v *int) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetContentUniquenessSample(*v)
	}
	return _u
}

// AddContentUniquenessSample adds value to the "content_uniqueness_sample" field.
func (_u *AuthorStatsUpdateOne) AddContentUniquenessSample(v int) *AuthorStatsUpdateOne {
	_u.mutation.AddContentUniquenessSample(v)
	return _u
}

// SetContentEffectivenessScore sets the "content_effectiveness_score" field.
func (_u *AuthorStatsUpdateOne) SetContentEffectivenessScore(v float64) *AuthorStatsUpdateOne {
	_u.mutation.ResetContentEffectivenessScore()
	_u.mutation.SetContentEffectivenessScore(v)
	return _u
}

// SetNillableContentEffectivenessScore sets the "content_effectiveness_score" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableContentEffectivenessScore(v *float64) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetContentEffectivenessScore(*v)
	}
	return _u
}

// AddContentEffectivenessScore adds value to the "content_effectiveness_score" field.
func (_u *AuthorStatsUpdateOne) AddContentEffectivenessScore(v float64) *AuthorStatsUpdateOne {
	_u.mutation.AddContentEffectivenessScore(v)
	return _u
}

// ClearContentEffectivenessScore clears the value of the "content_effectiveness_score" field.
func (_u *AuthorStatsUpdateOne) ClearContentEffectivenessScore() *AuthorStatsUpdateOne {
	_u.mutation.ClearContentEffectivenessScore()
	return _u
}

// SetContentEffectivenessSample sets the "content_effectiveness_sample" field.
func (_u *AuthorStatsUpdateOne) SetContentEffectivenessSample(v int) *AuthorStatsUpdateOne {
	_u.mutation.ResetContentEffectivenessSample()
	_u.mutation.SetContentEffectivenessSample(v)
	return _u
}

// SetNillableContentEffectivenessSample sets the "content_effectiveness_sample" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableContentEffectivenessSample(v *int) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetContentEffectivenessSample(*v)
	}
	return _u
}

// AddContentEffectivenessSample adds value to the "content_effectiveness_sample" field.
func (_u *AuthorStatsUpdateOne) AddContentEffectivenessSample(v int) *AuthorStatsUpdateOne {
	_u.mutation.AddContentEffectivenessSample(v)
	return _u
}

// SetOverallCredibilityScore sets the "overall_credibility_score" field.
func (_u *AuthorStatsUpdateOne) SetOverallCredibilityScore(v float64) *AuthorStatsUpdateOne {
	_u.mutation.ResetOverallCredibilityScore()
	_u.mutation.SetOverallCredibilityScore(v)
	return _u
}

// SetNillableOverallCredibilityScore sets the "overall_credibility_score" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableOverallCredibilityScore(v *float64) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetOverallCredibilityScore(*v)
	}
	return _u
}

// AddOverallCredibilityScore adds value to the "overall_credibility_score" field.
func (_u *AuthorStatsUpdateOne) AddOverallCredibilityScore(v float64) *AuthorStatsUpdateOne {
	_u.mutation.AddOverallCredibilityScore(v)
	return _u
}

// ClearOverallCredibilityScore clears the value of the "overall_credibility_score" field.
func (_u *AuthorStatsUpdateOne) ClearOverallCredibilityScore() *AuthorStatsUpdateOne {
	_u.mutation.ClearOverallCredibilityScore()
	return _u
}

// SetTotalPostsAnalyzed sets the "total_posts_analyzed" field.
func (_u *AuthorStatsUpdateOne) SetTotalPostsAnalyzed(v int) *AuthorStatsUpdateOne {
	_u.mutation.ResetTotalPostsAnalyzed()
	_u.mutation.SetTotalPostsAnalyzed(v)
	return _u
}

// SetNillableTotalPostsAnalyzed sets the "total_posts_analyzed" field if the given value is not nil.
func (_u *AuthorStatsUpdateOne) SetNillableTotalPostsAnalyzed(v *int) *AuthorStatsUpdateOne {
	if v != nil {
		_u.SetTotalPostsAnalyzed(*v)
	}
	return _u
}

// AddTotalPostsAnalyzed adds value to the "total_posts_analyzed" field.
func (_u *AuthorStatsUpdateOne) AddTotalPostsAnalyzed(v int) *AuthorStatsUpdateOne {
	_u.mutation.AddTotalPostsAnalyzed(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *AuthorStatsUpdateOne) SetLastUpdated(v time.Time) *AuthorStatsUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetAuthor sets the "author" edge to the Author entity.
func (_u *AuthorStatsUpdateOne) SetAuthor(v *Author) *AuthorStatsUpdateOne {
	return _u.SetAuthorID(v.ID)
}

// Mutation returns the AuthorStatsMutation object of the builder.
func (_u *AuthorStatsUpdateOne) Mutation() *AuthorStatsMutation {
	return _u.mutation
}

// ClearAuthor clears the "author" edge to the Author entity.
func (_u *AuthorStatsUpdateOne) ClearAuthor() *AuthorStatsUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// Where appends a list predicates to the AuthorStatsUpdate builder.
func (_u *AuthorStatsUpdateOne) Where(ps ...predicate.AuthorStats) *AuthorStatsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuthorStatsUpdateOne) Select(field string, fields ...string) *AuthorStatsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuthorStats entity.
func (_u *AuthorStatsUpdateOne) Save(ctx context.Context) (*AuthorStats, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthorStatsUpdateOne) SaveX(ctx context.Context) *AuthorStats {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuthorStatsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthorStatsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AuthorStatsUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := authorstats.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuthorStatsUpdateOne) check() error {
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuthorStats.author"`)
	}
	return nil
}

func (_u *AuthorStatsUpdateOne) sqlSave(ctx context.Context) (_node *AuthorStats, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(authorstats.Table, authorstats.Columns, sqlgraph.NewFieldSpec(authorstats.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuthorStats.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, authorstats.FieldID)
		for _, f := range fields {
			if !authorstats.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != authorstats.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FactAccuracyRate(); ok {
		_spec.SetField(authorstats.FieldFactAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFactAccuracyRate(); ok {
		_spec.AddField(authorstats.FieldFactAccuracyRate, field.TypeFloat64, value)
	}
	if _u.mutation.FactAccuracyRateCleared() {
		_spec.ClearField(authorstats.FieldFactAccuracyRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FactAccuracySample(); ok {
		_spec.SetField(authorstats.FieldFactAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFactAccuracySample(); ok {
		_spec.AddField(authorstats.FieldFactAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConclusionAccuracyRate(); ok {
		_spec.SetField(authorstats.FieldConclusionAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConclusionAccuracyRate(); ok {
		_spec.AddField(authorstats.FieldConclusionAccuracyRate, field.TypeFloat64, value)
	}
	if _u.mutation.ConclusionAccuracyRateCleared() {
		_spec.ClearField(authorstats.FieldConclusionAccuracyRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConclusionAccuracySample(); ok {
		_spec.SetField(authorstats.FieldConclusionAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConclusionAccuracySample(); ok {
		_spec.AddField(authorstats.FieldConclusionAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PredictionAccuracyRate(); ok {
		_spec.SetField(authorstats.FieldPredictionAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPredictionAccuracyRate(); ok {
		_spec.AddField(authorstats.FieldPredictionAccuracyRate, field.TypeFloat64, value)
	}
	if _u.mutation.PredictionAccuracyRateCleared() {
		_spec.ClearField(authorstats.FieldPredictionAccuracyRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PredictionAccuracySample(); ok {
		_spec.SetField(authorstats.FieldPredictionAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPredictionAccuracySample(); ok {
		_spec.AddField(authorstats.FieldPredictionAccuracySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LogicRigorScore(); ok {
		_spec.SetField(authorstats.FieldLogicRigorScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogicRigorScore(); ok {
		_spec.AddField(authorstats.FieldLogicRigorScore, field.TypeFloat64, value)
	}
	if _u.mutation.LogicRigorScoreCleared() {
		_spec.ClearField(authorstats.FieldLogicRigorScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LogicRigorSample(); ok {
		_spec.SetField(authorstats.FieldLogicRigorSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLogicRigorSample(); ok {
		_spec.AddField(authorstats.FieldLogicRigorSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecommendationReliabilityRate(); ok {
		_spec.SetField(authorstats.FieldRecommendationReliabilityRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendationReliabilityRate(); ok {
		_spec.AddField(authorstats.FieldRecommendationReliabilityRate, field.TypeFloat64, value)
	}
	if _u.mutation.RecommendationReliabilityRateCleared() {
		_spec.ClearField(authorstats.FieldRecommendationReliabilityRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecommendationReliabilitySample(); ok {
		_spec.SetField(authorstats.FieldRecommendationReliabilitySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecommendationReliabilitySample(); ok {
		_spec.AddField(authorstats.FieldRecommendationReliabilitySample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentUniquenessScore(); ok {
		_spec.SetField(authorstats.FieldContentUniquenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContentUniquenessScore(); ok {
		_spec.AddField(authorstats.FieldContentUniquenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.ContentUniquenessScoreCleared() {
		_spec.ClearField(authorstats.FieldContentUniquenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContentUniquenessSample(); ok {
		_spec.SetField(authorstats.FieldContentUniquenessSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentUniquenessSample(); ok {
		_spec.AddField(authorstats.FieldContentUniquenessSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentEffectivenessScore(); ok {
		_spec.SetField(authorstats.FieldContentEffectivenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContentEffectivenessScore(); ok {
		_spec.AddField(authorstats.FieldContentEffectivenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.ContentEffectivenessScoreCleared() {
		_spec.ClearField(authorstats.FieldContentEffectivenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContentEffectivenessSample(); ok {
		_spec.SetField(authorstats.FieldContentEffectivenessSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentEffectivenessSample(); ok {
		_spec.AddField(authorstats.FieldContentEffectivenessSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallCredibilityScore(); ok {
		_spec.SetField(authorstats.FieldOverallCredibilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallCredibilityScore(); ok {
		_spec.AddField(authorstats.FieldOverallCredibilityScore, field.TypeFloat64, value)
	}
	if _u.mutation.OverallCredibilityScoreCleared() {
		_spec.ClearField(authorstats.FieldOverallCredibilityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalPostsAnalyzed(); ok {
		_spec.SetField(authorstats.FieldTotalPostsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPostsAnalyzed(); ok {
		_spec.AddField(authorstats.FieldTotalPostsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(authorstats.FieldLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.AuthorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   authorstats.AuthorTable,
			Columns: []string{authorstats.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   authorstats.AuthorTable,
			Columns: []string{authorstats.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AuthorStats{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{authorstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
