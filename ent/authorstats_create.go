// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/authorstats"
)

// AuthorStatsCreate is the builder for creating a AuthorStats entity.
type AuthorStatsCreate struct {
	config
	mutation *AuthorStatsMutation
	hooks    []Hook
}

// SetAuthorID sets the "author_id" field.
func (_c *AuthorStatsCreate) SetAuthorID(v int) *AuthorStatsCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetFactAccuracyRate sets the "fact_accuracy_rate" field.
func (_c *AuthorStatsCreate) SetFactAccuracyRate(v float64) *AuthorStatsCreate {
	_c.mutation.SetFactAccuracyRate(v)
	return _c
}

// SetNillableFactAccuracyRate sets the "fact_accuracy_rate" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableFactAccuracyRate(v *float64) *AuthorStatsCreate {
	if v != nil {
		_c.SetFactAccuracyRate(*v)
	}
	return _c
}

// SetFactAccuracySample sets the "fact_accuracy_sample" field.
func (_c *AuthorStatsCreate) SetFactAccuracySample(v int) *AuthorStatsCreate {
	_c.mutation.SetFactAccuracySample(v)
	return _c
}

// SetNillableFactAccuracySample sets the "fact_accuracy_sample" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableFactAccuracySample(v *int) *AuthorStatsCreate {
	if v != nil {
		_c.SetFactAccuracySample(*v)
	}
	return _c
}

// SetConclusionAccuracyRate sets the "conclusion_accuracy_rate" field.
func (_c *AuthorStatsCreate) SetConclusionAccuracyRate(v float64) *AuthorStatsCreate {
	_c.mutation.SetConclusionAccuracyRate(v)
	return _c
}

// SetNillableConclusionAccuracyRate sets the "conclusion_accuracy_rate" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableConclusionAccuracyRate(v *float64) *AuthorStatsCreate {
	if v != nil {
		_c.SetConclusionAccuracyRate(*v)
	}
	return _c
}

// SetConclusionAccuracySample sets the "conclusion_accuracy_sample" field.
func (_c *AuthorStatsCreate) SetConclusionAccuracySample(v int) *AuthorStatsCreate {
	_c.mutation.SetConclusionAccuracySample(v)
	return _c
}

// SetNillableConclusionAccuracySample sets the "conclusion_accuracy_sample" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableConclusionAccuracySample(v *int) *AuthorStatsCreate {
	if v != nil {
		_c.SetConclusionAccuracySample(*v)
	}
	return _c
}

// SetPredictionAccuracyRate sets the "prediction_accuracy_rate" field.
func (_c *AuthorStatsCreate) SetPredictionAccuracyRate(v float64) *AuthorStatsCreate {
	_c.mutation.SetPredictionAccuracyRate(v)
	return _c
}

// SetNillablePredictionAccuracyRate sets the "prediction_accuracy_rate" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillablePredictionAccuracyRate(v *float64) *AuthorStatsCreate {
	if v != nil {
		_c.SetPredictionAccuracyRate(*v)
	}
	return _c
}

// SetPredictionAccuracySample sets the "prediction_accuracy_sample" field.
func (_c *AuthorStatsCreate) SetPredictionAccuracySample(v int) *AuthorStatsCreate {
	_c.mutation.SetPredictionAccuracySample(v)
	return _c
}

// SetNillablePredictionAccuracySample sets the "prediction_accuracy_sample" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillablePredictionAccuracySample(v *int) *AuthorStatsCreate {
	if v != nil {
		_c.SetPredictionAccuracySample(*v)
	}
	return _c
}

// SetLogicRigorScore sets the "logic_rigor_score" field.
func (_c *AuthorStatsCreate) SetLogicRigorScore(v float64) *AuthorStatsCreate {
	_c.mutation.SetLogicRigorScore(v)
	return _c
}

// SetNillableLogicRigorScore sets the "logic_rigor_score" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableLogicRigorScore(v *float64) *AuthorStatsCreate {
	if v != nil {
		_c.SetLogicRigorScore(*v)
	}
	return _c
}

// SetLogicRigorSample sets the "logic_rigor_sample" field.
func (_c *AuthorStatsCreate) SetLogicRigorSample(v int) *AuthorStatsCreate {
	_c.mutation.SetLogicRigorSample(v)
	return _c
}

// SetNillableLogicRigorSample sets the "logic_rigor_sample" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableLogicRigorSample(v *int) *AuthorStatsCreate {
	if v != nil {
		_c.SetLogicRigorSample(*v)
	}
	return _c
}

// SetRecommendationReliabilityRate sets the "recommendation_reliability_rate" field.
func (_c *AuthorStatsCreate) SetRecommendationReliabilityRate(v float64) *AuthorStatsCreate {
	_c.mutation.SetRecommendationReliabilityRate(v)
	return _c
}

// SetNillableRecommendationReliabilityRate sets the "recommendation_reliability_rate" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableRecommendationReliabilityRate(v *float64) *AuthorStatsCreate {
	if v != nil {
		_c.SetRecommendationReliabilityRate(*v)
	}
	return _c
}

// SetRecommendationReliabilitySample sets the "recommendation_reliability_sample" field.
func (_c *AuthorStatsCreate) SetRecommendationReliabilitySample(v int) *AuthorStatsCreate {
	_c.mutation.SetRecommendationReliabilitySample(v)
	return _c
}

// SetNillableRecommendationReliabilitySample sets the "recommendation_reliability_sample" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableRecommendationReliabilitySample(v *int) *AuthorStatsCreate {
	if v != nil {
		_c.SetRecommendationReliabilitySample(*v)
	}
	return _c
}

// SetContentUniquenessScore sets the "content_uniqueness_score" field.
func (_c *AuthorStatsCreate) SetContentUniquenessScore(v float64) *AuthorStatsCreate {
	_c.mutation.SetContentUniquenessScore(v)
	return _c
}

// SetNillableContentUniquenessScore sets the "content_uniqueness_score" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableContentUniquenessScore(v *float64) *AuthorStatsCreate {
	if v != nil {
		_c.SetContentUniquenessScore(*v)
	}
	return _c
}

// SetContentUniquenessSample sets the "content_uniqueness_sample" field.
func (_c *AuthorStatsCreate) SetContentUniquenessSample(v int) *AuthorStatsCreate {
	_c.mutation.SetContentUniquenessSample(v)
	return _c
}

// SetNillableContentUniquenessSample sets the "content_uniqueness_sample" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableContentUniquenessSample(v *int) *AuthorStatsCreate {
	if v != nil {
		_c.SetContentUniquenessSample(*v)
	}
	return _c
}

// SetContentEffectivenessScore sets the "content_effectiveness_score" field.
func (_c *AuthorStatsCreate) SetContentEffectivenessScore(v float64) *AuthorStatsCreate {
	_c.mutation.SetContentEffectivenessScore(v)
	return _c
}

// SetNillableContentEffectivenessScore sets the "content_effectiveness_score" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableContentEffectivenessScore(v *float64) *AuthorStatsCreate {
	if v != nil {
		_c.SetContentEffectivenessScore(*v)
	}
	return _c
}

// SetContentEffectivenessSample sets the "content_effectiveness_sample" field.
func (_c *AuthorStatsCreate) SetContentEffectivenessSample(v int) *AuthorStatsCreate {
	_c.mutation.SetContentEffectivenessSample(v)
	return _c
}

// SetNillableContentEffectivenessSample sets the "content_effectiveness_sample" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableContentEffectivenessSample(v *int) *AuthorStatsCreate {
	if v != nil {
		_c.SetContentEffectivenessSample(*v)
	}
	return _c
}

// SetOverallCredibilityScore sets the "overall_credibility_score" field.
func (_c *AuthorStatsCreate) SetOverallCredibilityScore(v float64) *AuthorStatsCreate {
	_c.mutation.SetOverallCredibilityScore(v)
	return _c
}

// SetNillableOverallCredibilityScore sets the "overall_credibility_score" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableOverallCredibilityScore(v *float64) *AuthorStatsCreate {
	if v != nil {
		_c.SetOverallCredibilityScore(*v)
	}
	return _c
}

// SetTotalPostsAnalyzed sets the "total_posts_analyzed" field.
func (_c *AuthorStatsCreate) SetTotalPostsAnalyzed(v int) *AuthorStatsCreate {
	_c.mutation.SetTotalPostsAnalyzed(v)
	return _c
}

// SetNillableTotalPostsAnalyzed sets the "total_posts_analyzed" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableTotalPostsAnalyzed(v *int) *AuthorStatsCreate {
	if v != nil {
		_c.SetTotalPostsAnalyzed(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *AuthorStatsCreate) SetLastUpdated(v time.Time) *AuthorStatsCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *AuthorStatsCreate) SetNillableLastUpdated(v *time.Time) *AuthorStatsCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetAuthor sets the "author" edge to the Author entity.
func (_c *AuthorStatsCreate) SetAuthor(v *Author) *AuthorStatsCreate {
	return _c.SetAuthorID(v.ID)
}

// Mutation returns the AuthorStatsMutation object of the builder.
func (_c *AuthorStatsCreate) Mutation() *AuthorStatsMutation {
	return _c.mutation
}

// Save creates the AuthorStats in the database.
func (_c *AuthorStatsCreate) Save(ctx context.Context) (*AuthorStats, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuthorStatsCreate) SaveX(ctx context.Context) *AuthorStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuthorStatsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuthorStatsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuthorStatsCreate) defaults() {
	if _, ok := _c.mutation.FactAccuracySample(); !ok {
		v := authorstats.DefaultFactAccuracySample
		_c.mutation.SetFactAccuracySample(v)
	}
	if _, ok := _c.mutation.ConclusionAccuracySample(); !ok {
		v := authorstats.DefaultConclusionAccuracySample
		_c.mutation.SetConclusionAccuracySample(v)
	}
	if _, ok := _c.mutation.PredictionAccuracySample(); !ok {
		v := authorstats.DefaultPredictionAccuracySample
		_c.mutation.SetPredictionAccuracySample(v)
	}
	if _, ok := _c.mutation.LogicRigorSample(); !ok {
		v := authorstats.DefaultLogicRigorSample
		_c.mutation.SetLogicRigorSample(v)
	}
	if _, ok := _c.mutation.RecommendationReliabilitySample(); !ok {
		v := authorstats.DefaultRecommendationReliabilitySample
		_c.mutation.SetRecommendationReliabilitySample(v)
	}
	if _, ok := _c.mutation.ContentUniquenessSample(); !ok {
		v := authorstats.DefaultContentUniquenessSample
		_c.mutation.SetContentUniquenessSample(v)
	}
	if _, ok := _c.mutation.ContentEffectivenessSample(); !ok {
		v := authorstats.DefaultContentEffectivenessSample
		_c.mutation.SetContentEffectivenessSample(v)
	}
	if _, ok := _c.mutation.TotalPostsAnalyzed(); !ok {
		v := authorstats.DefaultTotalPostsAnalyzed
		_c.mutation.SetTotalPostsAnalyzed(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := authorstats.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuthorStatsCreate) check() error {
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "AuthorStats.author_id"`)}
	}
	if _, ok := _c.mutation.FactAccuracySample(); !ok {
		return &ValidationError{Name: "fact_accuracy_sample", err: errors.New(`ent: missing required field "AuthorStats.fact_accuracy_sample"`)}
	}
	if _, ok := _c.mutation.ConclusionAccuracySample(); !ok {
		return &ValidationError{Name: "conclusion_accuracy_sample", err: errors.New(`ent: missing required field "AuthorStats.conclusion_accuracy_sample"`)}
	}
	if _, ok := _c.mutation.PredictionAccuracySample(); !ok {
		return &ValidationError{Name: "prediction_accuracy_sample", err: errors.New(`ent: missing required field "AuthorStats.prediction_accuracy_sample"`)}
	}
	if _, ok := _c.mutation.LogicRigorSample(); !ok {
		return &ValidationError{Name: "logic_rigor_sample", err: errors.New(`ent: missing required field "AuthorStats.logic_rigor_sample"`)}
	}
	if _, ok := _c.mutation.RecommendationReliabilitySample(); !ok {
		return &ValidationError{Name: "recommendation_reliability_sample", err: errors.New(`ent: missing required field "AuthorStats.recommendation_reliability_sample"`)}
	}
	if _, ok := _c.mutation.ContentUniquenessSample(); !ok {
		return &ValidationError{Name: "content_uniqueness_sample", err: errors.New(`ent: missing required field "AuthorStats.content_uniqueness_sample"`)}
	}
	if _, ok := _c.mutation.ContentEffectivenessSample(); !ok {
		return &ValidationError{Name: "content_effectiveness_sample", err: errors.New(`ent: missing required field "AuthorStats.content_effectiveness_sample"`)}
	}
	if _, ok := _c.mutation.TotalPostsAnalyzed(); !ok {
		return &ValidationError{Name: "total_posts_analyzed", err: errors.New(`ent: missing required field "AuthorStats.total_posts_analyzed"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "AuthorStats.last_updated"`)}
	}
	if len(_c.mutation.AuthorIDs()) == 0 {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required edge "AuthorStats.author"`)}
	}
	return nil
}

func (_c *AuthorStatsCreate) sqlSave(ctx context.Context) (*AuthorStats, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuthorStatsCreate) createSpec() (*AuthorStats, *sqlgraph.CreateSpec) {
	var (
		_node = &AuthorStats{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(authorstats.Table, sqlgraph.NewFieldSpec(authorstats.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FactAccuracyRate(); ok {
		_spec.SetField(authorstats.FieldFactAccuracyRate, field.TypeFloat64, value)
		_node.FactAccuracyRate = &value
	}
	if value, ok := _c.mutation.FactAccuracySample(); ok {
		_spec.SetField(authorstats.FieldFactAccuracySample, field.TypeInt, value)
		_node.FactAccuracySample = value
	}
	if value, ok := _c.mutation.ConclusionAccuracyRate(); ok {
		_spec.SetField(authorstats.FieldConclusionAccuracyRate, field.TypeFloat64, value)
		_node.ConclusionAccuracyRate = &value
	}
	if value, ok := _c.mutation.ConclusionAccuracySample(); ok {
		_spec.SetField(authorstats.FieldConclusionAccuracySample, field.TypeInt, value)
		_node.ConclusionAccuracySample = value
	}
	if value, ok := _c.mutation.PredictionAccuracyRate(); ok {
		_spec.SetField(authorstats.FieldPredictionAccuracyRate, field.TypeFloat64, value)
		_node.PredictionAccuracyRate = &value
	}
	if value, ok := _c.mutation.PredictionAccuracySample(); ok {
		_spec.SetField(authorstats.FieldPredictionAccuracySample, field.TypeInt, value)
		_node.PredictionAccuracySample = value
	}
	if value, ok := _c.mutation.LogicRigorScore(); ok {
		_spec.SetField(authorstats.FieldLogicRigorScore, field.TypeFloat64, value)
		_node.LogicRigorScore = &value
	}
	if value, ok := _c.mutation.LogicRigorSample(); ok {
		_spec.SetField(authorstats.FieldLogicRigorSample, field.TypeInt, value)
		_node.LogicRigorSample = value
	}
	if value, ok := _c.mutation.RecommendationReliabilityRate(); ok {
		_spec.SetField(authorstats.FieldRecommendationReliabilityRate, field.TypeFloat64, value)
		_node.RecommendationReliabilityRate = &value
	}
	if value, ok := _c.mutation.RecommendationReliabilitySample(); ok {
		_spec.SetField(authorstats.FieldRecommendationReliabilitySample, field.TypeInt, value)
		_node.RecommendationReliabilitySample = value
	}
	if value, ok := _c.mutation.ContentUniquenessScore(); ok {
		_spec.SetField(authorstats.FieldContentUniquenessScore, field.TypeFloat64, value)
		_node.ContentUniquenessScore = &value
	}
	if value, ok := _c.mutation.ContentUniquenessSample(); ok {
		_spec.SetField(authorstats.FieldContentUniquenessSample, field.TypeInt, value)
		_node.ContentUniquenessSample = value
	}
	if value, ok := _c.mutation.ContentEffectivenessScore(); ok {
		_spec.SetField(authorstats.FieldContentEffectivenessScore, field.TypeFloat64, value)
		_node.ContentEffectivenessScore = &value
	}
	if value, ok := _c.mutation.ContentEffectivenessSample(); ok {
		_spec.SetField(authorstats.FieldContentEffectivenessSample, field.TypeInt, value)
		_node.ContentEffectivenessSample = value
	}
	if value, ok := _c.mutation.OverallCredibilityScore(); ok {
		_spec.SetField(authorstats.FieldOverallCredibilityScore, field.TypeFloat64, value)
		_node.OverallCredibilityScore = &value
	}
	if value, ok := _c.mutation.TotalPostsAnalyzed(); ok {
		_spec.SetField(authorstats.FieldTotalPostsAnalyzed, field.TypeInt, value)
		_node.TotalPostsAnalyzed = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(authorstats.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	if nodes := _c.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_node.AuthorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AuthorStatsCreateBulk is the builder for creating many AuthorStats entities in bulk.
type AuthorStatsCreateBulk struct {
	config
	err      error
	builders []*AuthorStatsCreate
}

// Save creates the AuthorStats entities in the database.
func (_c *AuthorStatsCreateBulk) Save(ctx context.Context) ([]*AuthorStats, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuthorStats, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuthorStatsMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AuthorStatsCreateBulk) SaveX(ctx context.Context) []*AuthorStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuthorStatsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuthorStatsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
