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
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/rawpost"
)

// PostQualityAssessmentCreate is the builder for creating a PostQualityAssessment entity.
type PostQualityAssessmentCreate struct {
	config
	mutation *PostQualityAssessmentMutation
	hooks    []Hook
}

// SetRawPostID sets the "raw_post_id" field.
func (_c *PostQualityAssessmentCreate) SetRawPostID(v int) *PostQualityAssessmentCreate {
	_c.mutation.SetRawPostID(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *PostQualityAssessmentCreate) SetAuthorID(v int) *PostQualityAssessmentCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetUniquenessScore sets the "uniqueness_score" field.
func (_c *PostQualityAssessmentCreate) SetUniquenessScore(v float64) *PostQualityAssessmentCreate {
	_c.mutation.SetUniquenessScore(v)
	return _c
}

// SetNillableUniquenessScore sets the "uniqueness_score" field if the given value is not nil.
func (_c *PostQualityAssessmentCreate) SetNillableUniquenessScore(v *float64) *PostQualityAssessmentCreate {
	if v != nil {
		_c.SetUniquenessScore(*v)
	}
	return _c
}

// SetUniquenessNote sets the "uniqueness_note" field.
func (_c *PostQualityAssessmentCreate) SetUniquenessNote(v string) *PostQualityAssessmentCreate {
	_c.mutation.SetUniquenessNote(v)
	return _c
}

// SetNillableUniquenessNote sets the "uniqueness_note" field if the given value is not nil.
func (_c *PostQualityAssessmentCreate) SetNillableUniquenessNote(v *string) *PostQualityAssessmentCreate {
	if v != nil {
		_c.SetUniquenessNote(*v)
	}
	return _c
}

// SetIsFirstMover sets the "is_first_mover" field.
func (_c *PostQualityAssessmentCreate) SetIsFirstMover(v bool) *PostQualityAssessmentCreate {
	_c.mutation.SetIsFirstMover(v)
	return _c
}

// SetNillableIsFirstMover sets the "is_first_mover" field if the given value is not nil.
func (_c *PostQualityAssessmentCreate) SetNillableIsFirstMover(v *bool) *PostQualityAssessmentCreate {
	if v != nil {
		_c.SetIsFirstMover(*v)
	}
	return _c
}

// SetSimilarClaimCount sets the "similar_claim_count" field.
func (_c *PostQualityAssessmentCreate) SetSimilarClaimCount(v int) *PostQualityAssessmentCreate {
	_c.mutation.SetSimilarClaimCount(v)
	return _c
}

// SetNillableSimilarClaimCount sets the "similar_claim_count" field if the given value is not nil.
func (_c *PostQualityAssessmentCreate) SetNillableSimilarClaimCount(v *int) *PostQualityAssessmentCreate {
	if v != nil {
		_c.SetSimilarClaimCount(*v)
	}
	return _c
}

// SetSimilarAuthorCount sets the "similar_author_count" field.
func (_c *PostQualityAssessmentCreate) SetSimilarAuthorCount(v int) *PostQualityAssessmentCreate {
	_c.mutation.SetSimilarAuthorCount(v)
	return _c
}

// SetNillableSimilarAuthorCount sets the "similar_author_count" field if the given value is not nil.
func (_c *PostQualityAssessmentCreate) SetNillableSimilarAuthorCount(v *int) *PostQualityAssessmentCreate {
	if v != nil {
		_c.SetSimilarAuthorCount(*v)
	}
	return _c
}

// SetEffectivenessScore sets the "effectiveness_score" field.
func (_c *PostQualityAssessmentCreate) SetEffectivenessScore(v float64) *PostQualityAssessmentCreate {
	_c.mutation.SetEffectivenessScore(v)
	return _c
}

// SetNillableEffectivenessScore sets the "effectiveness_score" field if the given value is not nil.
func (_c *PostQualityAssessmentCreate) SetNillableEffectivenessScore(v *float64) *PostQualityAssessmentCreate {
	if v != nil {
		_c.SetEffectivenessScore(*v)
	}
	return _c
}

// SetEffectivenessNote sets the "effectiveness_note" field.
func (_c *PostQualityAssessmentCreate) SetEffectivenessNote(v string) *PostQualityAssessmentCreate {
	_c.mutation.SetEffectivenessNote(v)
	return _c
}

// SetNillableEffectivenessNote sets the "effectiveness_note" field if the given value is not nil.
func (_c *PostQualityAssessmentCreate) SetNillableEffectivenessNote(v *string) *PostQualityAssessmentCreate {
	if v != nil {
		_c.SetEffectivenessNote(*v)
	}
	return _c
}

// SetNoiseRatio sets the "noise_ratio" field.
func (_c *PostQualityAssessmentCreate) SetNoiseRatio(v float64) *PostQualityAssessmentCreate {
	_c.mutation.SetNoiseRatio(v)
	return _c
}

// SetNillableNoiseRatio sets the "noise_ratio" field if the given value is not nil.
func (_c *PostQualityAssessmentCreate) SetNillableNoiseRatio(v *float64) *PostQualityAssessmentCreate {
	if v != nil {
		_c.SetNoiseRatio(*v)
	}
	return _c
}

// SetNoiseTypes sets the "noise_types" field.
func (_c *PostQualityAssessmentCreate) SetNoiseTypes(v []string) *PostQualityAssessmentCreate {
	_c.mutation.SetNoiseTypes(v)
	return _c
}

// SetAssessedAt sets the "assessed_at" field.
func (_c *PostQualityAssessmentCreate) SetAssessedAt(v time.Time) *PostQualityAssessmentCreate {
	_c.mutation.SetAssessedAt(v)
	return _c
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_c *PostQualityAssessmentCreate) SetNillableAssessedAt(v *time.Time) *PostQualityAssessmentCreate {
	if v != nil {
		_c.SetAssessedAt(*v)
	}
	return _c
}

// SetRawPost sets the "raw_post" edge to the RawPost entity.
func (_c *PostQualityAssessmentCreate) SetRawPost(v *RawPost) *PostQualityAssessmentCreate {
	return _c.SetRawPostID(v.ID)
}

// SetAuthor sets the "author" edge to the Author entity.
func (_c *PostQualityAssessmentCreate) SetAuthor(v *Author) *PostQualityAssessmentCreate {
	return _c.SetAuthorID(v.ID)
}

// Mutation returns the PostQualityAssessmentMutation object of the builder.
func (_c *PostQualityAssessmentCreate) Mutation() *PostQualityAssessmentMutation {
	return _c.mutation
}

// Save creates the PostQualityAssessment in the database.
func (_c *PostQualityAssessmentCreate) Save(ctx context.Context) (*PostQualityAssessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PostQualityAssessmentCreate) SaveX(ctx context.Context) *PostQualityAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostQualityAssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostQualityAssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PostQualityAssessmentCreate) defaults() {
	if _, ok := _c.mutation.SimilarClaimCount(); !ok {
		v := postqualityassessment.DefaultSimilarClaimCount
		_c.mutation.SetSimilarClaimCount(v)
	}
	if _, ok := _c.mutation.SimilarAuthorCount(); !ok {
		v := postqualityassessment.DefaultSimilarAuthorCount
		_c.mutation.SetSimilarAuthorCount(v)
	}
	if _, ok := _c.mutation.AssessedAt(); !ok {
		v := postqualityassessment.DefaultAssessedAt()
		_c.mutation.SetAssessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PostQualityAssessmentCreate) check() error {
	if _, ok := _c.mutation.RawPostID(); !ok {
		return &ValidationError{Name: "raw_post_id", err: errors.New(`ent: missing required field "PostQualityAssessment.raw_post_id"`)}
	}
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "PostQualityAssessment.author_id"`)}
	}
	if _, ok := _c.mutation.SimilarClaimCount(); !ok {
		return &ValidationError{Name: "similar_claim_count", err: errors.New(`ent: missing required field "PostQualityAssessment.similar_claim_count"`)}
	}
	if _, ok := _c.mutation.SimilarAuthorCount(); !ok {
		return &ValidationError{Name: "similar_author_count", err: errors.New(`ent: missing required field "PostQualityAssessment.similar_author_count"`)}
	}
	if _, ok := _c.mutation.AssessedAt(); !ok {
		return &ValidationError{Name: "assessed_at", err: errors.New(`ent: missing required field "PostQualityAssessment.assessed_at"`)}
	}
	if len(_c.mutation.RawPostIDs()) == 0 {
		return &ValidationError{Name: "raw_post", err: errors.New(`ent: missing required edge "PostQualityAssessment.raw_post"`)}
	}
	if len(_c.mutation.AuthorIDs()) == 0 {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required edge "PostQualityAssessment.author"`)}
	}
	return nil
}

func (_c *PostQualityAssessmentCreate) sqlSave(ctx context.Context) (*PostQualityAssessment, error) {
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

func (_c *PostQualityAssessmentCreate) createSpec() (*PostQualityAssessment, *sqlgraph.CreateSpec) {
	var (
		_node = &PostQualityAssessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(postqualityassessment.Table, sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UniquenessScore(); ok {
		_spec.SetField(postqualityassessment.FieldUniquenessScore, field.TypeFloat64, value)
		_node.UniquenessScore = &value
	}
	if value, ok := _c.mutation.UniquenessNote(); ok {
		_spec.SetField(postqualityassessment.FieldUniquenessNote, field.TypeString, value)
		_node.UniquenessNote = &value
	}
	if value, ok := _c.mutation.IsFirstMover(); ok {
		_spec.SetField(postqualityassessment.FieldIsFirstMover, field.TypeBool, value)
		_node.IsFirstMover = &value
	}
	if value, ok := _c.mutation.SimilarClaimCount(); ok {
		_spec.SetField(postqualityassessment.FieldSimilarClaimCount, field.TypeInt, value)
		_node.SimilarClaimCount = value
	}
	if value, ok := _c.mutation.SimilarAuthorCount(); ok {
		_spec.SetField(postqualityassessment.FieldSimilarAuthorCount, field.TypeInt, value)
		_node.SimilarAuthorCount = value
	}
	if value, ok := _c.mutation.EffectivenessScore(); ok {
		_spec.SetField(postqualityassessment.FieldEffectivenessScore, field.TypeFloat64, value)
		_node.EffectivenessScore = &value
	}
	if value, ok := _c.mutation.EffectivenessNote(); ok {
		_spec.SetField(postqualityassessment.FieldEffectivenessNote, field.TypeString, value)
		_node.EffectivenessNote = &value
	}
	if value, ok := _c.mutation.NoiseRatio(); ok {
		_spec.SetField(postqualityassessment.FieldNoiseRatio, field.TypeFloat64, value)
		_node.NoiseRatio = &value
	}
	if value, ok := _c.mutation.NoiseTypes(); ok {
		_spec.SetField(postqualityassessment.FieldNoiseTypes, field.TypeJSON, value)
		_node.NoiseTypes = value
	}
	if value, ok := _c.mutation.AssessedAt(); ok {
		_spec.SetField(postqualityassessment.FieldAssessedAt, field.TypeTime, value)
		_node.AssessedAt = value
	}
	if nodes := _c.mutation.RawPostIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   postqualityassessment.RawPostTable,
			Columns: []string{postqualityassessment.RawPostColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawpost.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RawPostID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   postqualityassessment.AuthorTable,
			Columns: []string{postqualityassessment.AuthorColumn},
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

// PostQualityAssessmentCreateBulk is the builder for creating many PostQualityAssessment entities in bulk.
type PostQualityAssessmentCreateBulk struct {
	config
	err      error
	builders []*PostQualityAssessmentCreate
}

// Save creates the PostQualityAssessment entities in the database.
func (_c *PostQualityAssessmentCreateBulk) Save(ctx context.Context) ([]*PostQualityAssessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PostQualityAssessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PostQualityAssessmentMutation)
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
func (_c *PostQualityAssessmentCreateBulk) SaveX(ctx context.Context) []*PostQualityAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostQualityAssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostQualityAssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
