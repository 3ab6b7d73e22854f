// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/rawpost"
)

// PostQualityAssessmentUpdate is the builder for updating PostQualityAssessment entities.
type PostQualityAssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *PostQualityAssessmentMutation
}

// Where appends a list predicates to the PostQualityAssessmentUpdate builder.
func (_u *PostQualityAssessmentUpdate) Where(ps ...predicate.PostQualityAssessment) *PostQualityAssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRawPostID sets the "raw_post_id" field.
func (_u *PostQualityAssessmentUpdate) SetRawPostID(v int) *PostQualityAssessmentUpdate {
	_u.mutation.SetRawPostID(v)
	return _u
}

// SetNillableRawPostID sets the "raw_post_id" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdate) SetNillableRawPostID(v *int) *PostQualityAssessmentUpdate {
	if v != nil {
		_u.SetRawPostID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *PostQualityAssessmentUpdate) SetAuthorID(v int) *PostQualityAssessmentUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdate) SetNillableAuthorID(v *int) *PostQualityAssessmentUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetUniquenessScore sets the "uniqueness_score" field.
func (_u *PostQualityAssessmentUpdate) SetUniquenessScore(v float64) *PostQualityAssessmentUpdate {
	_u.mutation.ResetUniquenessScore()
	_u.mutation.SetUniquenessScore(v)
	return _u
}

// SetNillableUniquenessScore sets the "uniqueness_score" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdate) SetNillableUniquenessScore(v *float64) *PostQualityAssessmentUpdate {
	if v != nil {
		_u.SetUniquenessScore(*v)
	}
	return _u
}

// AddUniquenessScore adds value to the "uniqueness_score" field.
func (_u *PostQualityAssessmentUpdate) AddUniquenessScore(v float64) *PostQualityAssessmentUpdate {
	_u.mutation.AddUniquenessScore(v)
	return _u
}

// ClearUniquenessScore clears the value of the "uniqueness_score" field.
func (_u *PostQualityAssessmentUpdate) ClearUniquenessScore() *PostQualityAssessmentUpdate {
	_u.mutation.ClearUniquenessScore()
	return _u
}

// SetUniquenessNote sets the "uniqueness_note" field.
func (_u *PostQualityAssessmentUpdate) SetUniquenessNote(v string) *PostQualityAssessmentUpdate {
	_u.mutation.SetUniquenessNote(v)
	return _u
}

// SetNillableUniquenessNote sets the "uniqueness_note" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdate) SetNillableUniquenessNote(v *string) *PostQualityAssessmentUpdate {
	if v != nil {
		_u.SetUniquenessNote(*v)
	}
	return _u
}

// ClearUniquenessNote clears the value of the "uniqueness_note" field.
func (_u *PostQualityAssessmentUpdate) ClearUniquenessNote() *PostQualityAssessmentUpdate {
	_u.mutation.ClearUniquenessNote()
	return _u
}

// SetIsFirstMover sets the "is_first_mover" field.
func (_u *PostQualityAssessmentUpdate) SetIsFirstMover(v bool) *PostQualityAssessmentUpdate {
	_u.mutation.SetIsFirstMover(v)
	return _u
}

// SetNillableIsFirstMover sets the "is_first_mover" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdate) SetNillableIsFirstMover(v *bool) *PostQualityAssessmentUpdate {
	if v != nil {
		_u.SetIsFirstMover(*v)
	}
	return _u
}

// ClearIsFirstMover clears the value of the "is_first_mover" field.
func (_u *PostQualityAssessmentUpdate) ClearIsFirstMover() *PostQualityAssessmentUpdate {
	_u.mutation.ClearIsFirstMover()
	return _u
}

// SetSimilarClaimCount sets the "similar_claim_count" field.
func (_u *PostQualityAssessmentUpdate) SetSimilarClaimCount(v int) *PostQualityAssessmentUpdate {
	_u.mutation.ResetSimilarClaimCount()
	_u.mutation.SetSimilarClaimCount(v)
	return _u
}

// SetNillableSimilarClaimCount sets the "similar_claim_count" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdate) SetNillableSimilarClaimCount(v *int) *PostQualityAssessmentUpdate {
	if v != nil {
		_u.SetSimilarClaimCount(*v)
	}
	return _u
}

// AddSimilarClaimCount adds value to the "similar_claim_count" field.
func (_u *PostQualityAssessmentUpdate) AddSimilarClaimCount(v int) *PostQualityAssessmentUpdate {
	_u.mutation.AddSimilarClaimCount(v)
	return _u
}

// SetSimilarAuthorCount sets the "similar_author_count" field.
func (_u *PostQualityAssessmentUpdate) SetSimilarAuthorCount(v int) *PostQualityAssessmentUpdate {
	_u.mutation.ResetSimilarAuthorCount()
	_u.mutation.SetSimilarAuthorCount(v)
	return _u
}

// SetNillableSimilarAuthorCount sets the "similar_author_count" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdate) SetNillableSimilarAuthorCount(v *int) *PostQualityAssessmentUpdate {
	if v != nil {
		_u.SetSimilarAuthorCount(*v)
	}
	return _u
}

// AddSimilarAuthorCount adds value to the "similar_author_count" field.
func (_u *PostQualityAssessmentUpdate) AddSimilarAuthorCount(v int) *PostQualityAssessmentUpdate {
	_u.mutation.AddSimilarAuthorCount(v)
	return _u
}

// SetEffectivenessScore sets the "effectiveness_score" field.
func (_u *PostQualityAssessmentUpdate) SetEffectivenessScore(v float64) *PostQualityAssessmentUpdate {
	_u.mutation.ResetEffectivenessScore()
	_u.mutation.SetEffectivenessScore(v)
	return _u
}

// SetNillableEffectivenessScore sets the "effectiveness_score" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdate) SetNillableEffectivenessScore(v *float64) *PostQualityAssessmentUpdate {
	if v != nil {
		_u.SetEffectivenessScore(*v)
	}
	return _u
}

// AddEffectivenessScore adds value to the "effectiveness_score" field.
func (_u *PostQualityAssessmentUpdate) AddEffectivenessScore(v float64) *PostQualityAssessmentUpdate {
	_u.mutation.AddEffectivenessScore(v)
	return _u
}

// ClearEffectivenessScore clears the value of the "effectiveness_score" field.
func (_u *PostQualityAssessmentUpdate) ClearEffectivenessScore() *PostQualityAssessmentUpdate {
	_u.mutation.ClearEffectivenessScore()
	return _u
}

// SetEffectivenessNote sets the "effectiveness_note" field.
func (_u *PostQualityAssessmentUpdate) SetEffectivenessNote(v string) *PostQualityAssessmentUpdate {
	_u.mutation.SetEffectivenessNote(v)
	return _u
}

// SetNillableEffectivenessNote sets the "effectiveness_note" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdate) SetNillableEffectivenessNote(v *string) *PostQualityAssessmentUpdate {
	if v != nil {
		_u.SetEffectivenessNote(*v)
	}
	return _u
}

// ClearEffectivenessNote clears the value of the "effectiveness_note" field.
func (_u *PostQualityAssessmentUpdate) ClearEffectivenessNote() *PostQualityAssessmentUpdate {
	_u.mutation.ClearEffectivenessNote()
	return _u
}

// SetNoiseRatio sets the "noise_ratio" field.
func (_u *PostQualityAssessmentUpdate) SetNoiseRatio(v float64) *PostQualityAssessmentUpdate {
	_u.mutation.ResetNoiseRatio()
	_u.mutation.SetNoiseRatio(v)
	return _u
}

// SetNillableNoiseRatio sets the "noise_ratio" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdate) SetNillableNoiseRatio(v *float64) *PostQualityAssessmentUpdate {
	if v != nil {
		_u.SetNoiseRatio(*v)
	}
	return _u
}

// AddNoiseRatio adds value to the "noise_ratio" field.
func (_u *PostQualityAssessmentUpdate) AddNoiseRatio(v float64) *PostQualityAssessmentUpdate {
	_u.mutation.AddNoiseRatio(v)
	return _u
}

// ClearNoiseRatio clears the value of the "noise_ratio" field.
func (_u *PostQualityAssessmentUpdate) ClearNoiseRatio() *PostQualityAssessmentUpdate {
	_u.mutation.ClearNoiseRatio()
	return _u
}

// SetNoiseTypes sets the "noise_types" field.
func (_u *PostQualityAssessmentUpdate) SetNoiseTypes(v []string) *PostQualityAssessmentUpdate {
	_u.mutation.SetNoiseTypes(v)
	return _u
}

// AppendNoiseTypes appends value to the "noise_types" field.
func (_u *PostQualityAssessmentUpdate) AppendNoiseTypes(v []string) *PostQualityAssessmentUpdate {
	_u.mutation.AppendNoiseTypes(v)
	return _u
}

// ClearNoiseTypes clears the value of the "noise_types" field.
func (_u *PostQualityAssessmentUpdate) ClearNoiseTypes() *PostQualityAssessmentUpdate {
	_u.mutation.ClearNoiseTypes()
	return _u
}

// SetAssessedAt sets the "assessed_at" field.
func (_u *PostQualityAssessmentUpdate) SetAssessedAt(v time.Time) *PostQualityAssessmentUpdate {
	_u.mutation.SetAssessedAt(v)
	return _u
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdate) SetNillableAssessedAt(v *time.Time) *PostQualityAssessmentUpdate {
	if v != nil {
		_u.SetAssessedAt(*v)
	}
	return _u
}

// SetRawPost sets the "raw_post" edge to the RawPost entity.
func (_u *PostQualityAssessmentUpdate) SetRawPost(v *RawPost) *PostQualityAssessmentUpdate {
	return _u.SetRawPostID(v.ID)
}

// SetAuthor sets the "author" edge to the Author entity.
func (_u *PostQualityAssessmentUpdate) SetAuthor(v *Author) *PostQualityAssessmentUpdate {
	return _u.SetAuthorID(v.ID)
}

// Mutation returns the PostQualityAssessmentMutation object of the builder.
func (_u *PostQualityAssessmentUpdate) Mutation() *PostQualityAssessmentMutation {
	return _u.mutation
}

// ClearRawPost clears the "raw_post" edge to the RawPost entity.
func (_u *PostQualityAssessmentUpdate) ClearRawPost() *PostQualityAssessmentUpdate {
	_u.mutation.ClearRawPost()
	return _u
}

// ClearAuthor clears the "author" edge to the Author entity.
func (_u *PostQualityAssessmentUpdate) ClearAuthor() *PostQualityAssessmentUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PostQualityAssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostQualityAssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PostQualityAssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostQualityAssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostQualityAssessmentUpdate) check() error {
	if _u.mutation.RawPostCleared() && len(_u.mutation.RawPostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostQualityAssessment.raw_post"`)
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostQualityAssessment.author"`)
	}
	return nil
}

func (_u *PostQualityAssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(postqualityassessment.Table, postqualityassessment.Columns, sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UniquenessScore(); ok {
		_spec.SetField(postqualityassessment.FieldUniquenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUniquenessScore(); ok {
		_spec.AddField(postqualityassessment.FieldUniquenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.UniquenessScoreCleared() {
		_spec.ClearField(postqualityassessment.FieldUniquenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UniquenessNote(); ok {
		_spec.SetField(postqualityassessment.FieldUniquenessNote, field.TypeString, value)
	}
	if _u.mutation.UniquenessNoteCleared() {
		_spec.ClearField(postqualityassessment.FieldUniquenessNote, field.TypeString)
	}
	if value, ok := _u.mutation.IsFirstMover(); ok {
		_spec.SetField(postqualityassessment.FieldIsFirstMover, field.TypeBool, value)
	}
	if _u.mutation.IsFirstMoverCleared() {
		_spec.ClearField(postqualityassessment.FieldIsFirstMover, field.TypeBool)
	}
	if value, ok := _u.mutation.SimilarClaimCount(); ok {
		_spec.SetField(postqualityassessment.FieldSimilarClaimCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSimilarClaimCount(); ok {
		_spec.AddField(postqualityassessment.FieldSimilarClaimCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SimilarAuthorCount(); ok {
		_spec.SetField(postqualityassessment.FieldSimilarAuthorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSimilarAuthorCount(); ok {
		_spec.AddField(postqualityassessment.FieldSimilarAuthorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EffectivenessScore(); ok {
		_spec.SetField(postqualityassessment.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectivenessScore(); ok {
		_spec.AddField(postqualityassessment.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.EffectivenessScoreCleared() {
		_spec.ClearField(postqualityassessment.FieldEffectivenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EffectivenessNote(); ok {
		_spec.SetField(postqualityassessment.FieldEffectivenessNote, field.TypeString, value)
	}
	if _u.mutation.EffectivenessNoteCleared() {
		_spec.ClearField(postqualityassessment.FieldEffectivenessNote, field.TypeString)
	}
	if value, ok := _u.mutation.NoiseRatio(); ok {
		_spec.SetField(postqualityassessment.FieldNoiseRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNoiseRatio(); ok {
		_spec.AddField(postqualityassessment.FieldNoiseRatio, field.TypeFloat64, value)
	}
	if _u.mutation.NoiseRatioCleared() {
		_spec.ClearField(postqualityassessment.FieldNoiseRatio, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NoiseTypes(); ok {
		_spec.SetField(postqualityassessment.FieldNoiseTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNoiseTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postqualityassessment.FieldNoiseTypes, value)
		})
	}
	if _u.mutation.NoiseTypesCleared() {
		_spec.ClearField(postqualityassessment.FieldNoiseTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssessedAt(); ok {
		_spec.SetField(postqualityassessment.FieldAssessedAt, field.TypeTime, value)
	}
	if _u.mutation.RawPostCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RawPostIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postqualityassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PostQualityAssessmentUpdateOne is the builder for updating a single PostQualityAssessment entity.
type PostQualityAssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PostQualityAssessmentMutation
}

// SetRawPostID sets the "raw_post_id" field.
func (_u *PostQualityAssessmentUpdateOne) SetRawPostID(v int) *PostQualityAssessmentUpdateOne {
	_u.mutation.SetRawPostID(v)
	return _u
}

// SetNillableRawPostID sets the "raw_post_id" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdateOne) SetNillableRawPostID(v *int) *PostQualityAssessmentUpdateOne {
	if v != nil {
		_u.SetRawPostID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *PostQualityAssessmentUpdateOne) SetAuthorID(v int) *PostQualityAssessmentUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdateOne) SetNillableAuthorID(v *int) *PostQualityAssessmentUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetUniquenessScore sets the "uniqueness_score" field.
func (_u *PostQualityAssessmentUpdateOne) SetUniquenessScore(v float64) *PostQualityAssessmentUpdateOne {
	_u.mutation.ResetUniquenessScore()
	_u.mutation.SetUniquenessScore(v)
	return _u
}

// SetNillableUniquenessScore sets the "uniqueness_score" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdateOne) SetNillableUniquenessScore(v *float64) *PostQualityAssessmentUpdateOne {
	if v != nil {
		_u.SetUniquenessScore(*v)
	}
	return _u
}

// AddUniquenessScore adds value to the "uniqueness_score" field.
func (_u *PostQualityAssessmentUpdateOne) AddUniquenessScore(v float64) *PostQualityAssessmentUpdateOne {
	_u.mutation.AddUniquenessScore(v)
	return _u
}

// ClearUniquenessScore clears the value of the "uniqueness_score" field.
func (_u *PostQualityAssessmentUpdateOne) ClearUniquenessScore() *PostQualityAssessmentUpdateOne {
	_u.mutation.ClearUniquenessScore()
	return _u
}

// SetUniquenessNote sets the "uniqueness_note" field.
func (_u *PostQualityAssessmentUpdateOne) SetUniquenessNote(v string) *PostQualityAssessmentUpdateOne {
	_u.mutation.SetUniquenessNote(v)
	return _u
}

// SetNillableUniquenessNote sets the "uniqueness_note" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdateOne) SetNillableUniquenessNote(v *string) *PostQualityAssessmentUpdateOne {
	if v != nil {
		_u.SetUniquenessNote(*v)
	}
	return _u
}

// ClearUniquenessNote clears the value of the "uniqueness_note" field.
func (_u *PostQualityAssessmentUpdateOne) ClearUniquenessNote() *PostQualityAssessmentUpdateOne {
	_u.mutation.ClearUniquenessNote()
	return _u
}

// SetIsFirstMover sets the "is_first_mover" field.
func (_u *PostQualityAssessmentUpdateOne) SetIsFirstMover(v bool) *PostQualityAssessmentUpdateOne {
	_u.mutation.SetIsFirstMover(v)
	return _u
}

// SetNillableIsFirstMover sets the "is_first_mover" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdateOne) SetNillableIsFirstMover(v *bool) *PostQualityAssessmentUpdateOne {
	if v != nil {
		_u.SetIsFirstMover(*v)
	}
	return _u
}

// ClearIsFirstMover clears the value of the "is_first_mover" field.
func (_u *PostQualityAssessmentUpdateOne) ClearIsFirstMover() *PostQualityAssessmentUpdateOne {
	_u.mutation.ClearIsFirstMover()
	return _u
}

// SetSimilarClaimCount sets the "similar_claim_count" field.
func (_u *PostQualityAssessmentUpdateOne) SetSimilarClaimCount(v int) *PostQualityAssessmentUpdateOne {
	_u.mutation.ResetSimilarClaimCount()
	_u.mutation.SetSimilarClaimCount(v)
	return _u
}

// SetNillableSimilarClaimCount sets the "similar_claim_count" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdateOne) SetNillableSimilarClaimCount(v *int) *PostQualityAssessmentUpdateOne {
	if v != nil {
		_u.SetSimilarClaimCount(*v)
	}
	return _u
}

// AddSimilarClaimCount adds value to the "similar_claim_count" field.
func (_u *PostQualityAssessmentUpdateOne) AddSimilarClaimCount(v int) *PostQualityAssessmentUpdateOne {
	_u.mutation.AddSimilarClaimCount(v)
	return _u
}

// SetSimilarAuthorCount sets the "similar_author_count" field.
func (_u *PostQualityAssessmentUpdateOne) SetSimilarAuthorCount(v int) *PostQualityAssessmentUpdateOne {
	_u.mutation.ResetSimilarAuthorCount()
	_u.mutation.SetSimilarAuthorCount(v)
	return _u
}

// SetNillableSimilarAuthorCount sets the "similar_author_count" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdateOne) SetNillableSimilarAuthorCount(v *int) *PostQualityAssessmentUpdateOne {
	if v != nil {
		_u.SetSimilarAuthorCount(*v)
	}
	return _u
}

// AddSimilarAuthorCount adds value to the "similar_author_count" field.
func (_u *PostQualityAssessmentUpdateOne) AddSimilarAuthorCount(v int) *PostQualityAssessmentUpdateOne {
	_u.mutation.AddSimilarAuthorCount(v)
	return _u
}

// SetEffectivenessScore sets the "effectiveness_score" field.
func (_u *PostQualityAssessmentUpdateOne) SetEffectivenessScore(v float64) *PostQualityAssessmentUpdateOne {
	_u.mutation.ResetEffectivenessScore()
	_u.mutation.SetEffectivenessScore(v)
	return _u
}

// SetNillableEffectivenessScore sets the "effectiveness_score" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdateOne) SetNillableEffectivenessScore(v *float64) *PostQualityAssessmentUpdateOne {
	if v != nil {
		_u.SetEffectivenessScore(*v)
	}
	return _u
}

// AddEffectivenessScore adds value to the "effectiveness_score" field.
func (_u *PostQualityAssessmentUpdateOne) AddEffectivenessScore(v float64) *PostQualityAssessmentUpdateOne {
	_u.mutation.AddEffectivenessScore(v)
	return _u
}

// ClearEffectivenessScore clears the value of the "effectiveness_score" field.
func (_u *PostQualityAssessmentUpdateOne) ClearEffectivenessScore() *PostQualityAssessmentUpdateOne {
	_u.mutation.ClearEffectivenessScore()
	return _u
}

// SetEffectivenessNote sets the "effectiveness_note" field.
func (_u *PostQualityAssessmentUpdateOne) SetEffectivenessNote(v string) *PostQualityAssessmentUpdateOne {
	_u.mutation.SetEffectivenessNote(v)
	return _u
}

// SetNillableEffectivenessNote sets the "effectiveness_note" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdateOne) SetNillableEffectivenessNote(v *string) *PostQualityAssessmentUpdateOne {
	if v != nil {
		_u.SetEffectivenessNote(*v)
	}
	return _u
}

// ClearEffectivenessNote clears the value of the "effectiveness_note" field.
func (_u *PostQualityAssessmentUpdateOne) ClearEffectivenessNote() *PostQualityAssessmentUpdateOne {
	_u.mutation.ClearEffectivenessNote()
	return _u
}

// SetNoiseRatio sets the "noise_ratio" field.
func (_u *PostQualityAssessmentUpdateOne) SetNoiseRatio(v float64) *PostQualityAssessmentUpdateOne {
	_u.mutation.ResetNoiseRatio()
	_u.mutation.SetNoiseRatio(v)
	return _u
}

// SetNillableNoiseRatio sets the "noise_ratio" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdateOne) SetNillableNoiseRatio(v *float64) *PostQualityAssessmentUpdateOne {
	if v != nil {
		_u.SetNoiseRatio(*v)
	}
	return _u
}

// AddNoiseRatio adds value to the "noise_ratio" field.
func (_u *PostQualityAssessmentUpdateOne) AddNoiseRatio(v float64) *PostQualityAssessmentUpdateOne {
	_u.mutation.AddNoiseRatio(v)
	return _u
}

// ClearNoiseRatio clears the value of the "noise_ratio" field.
func (_u *PostQualityAssessmentUpdateOne) ClearNoiseRatio() *PostQualityAssessmentUpdateOne {
	_u.mutation.ClearNoiseRatio()
	return _u
}

// SetNoiseTypes sets the "noise_types" field.
func (_u *PostQualityAssessmentUpdateOne) SetNoiseTypes(v []string) *PostQualityAssessmentUpdateOne {
	_u.mutation.SetNoiseTypes(v)
	return _u
}

// AppendNoiseTypes appends value to the "noise_types" field.
func (_u *PostQualityAssessmentUpdateOne) AppendNoiseTypes(v []string) *PostQualityAssessmentUpdateOne {
	_u.mutation.AppendNoiseTypes(v)
	return _u
}

// ClearNoiseTypes clears the value of the "noise_types" field.
func (_u *PostQualityAssessmentUpdateOne) ClearNoiseTypes() *PostQualityAssessmentUpdateOne {
	_u.mutation.ClearNoiseTypes()
	return _u
}

// SetAssessedAt sets the "assessed_at" field.
func (_u *PostQualityAssessmentUpdateOne) SetAssessedAt(v time.Time) *PostQualityAssessmentUpdateOne {
	_u.mutation.SetAssessedAt(v)
	return _u
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_u *PostQualityAssessmentUpdateOne) SetNillableAssessedAt(v *time.Time) *PostQualityAssessmentUpdateOne {
	if v != nil {
		_u.SetAssessedAt(*v)
	}
	return _u
}

// SetRawPost sets the "raw_post" edge to the RawPost entity.
func (_u *PostQualityAssessmentUpdateOne) SetRawPost(v *RawPost) *PostQualityAssessmentUpdateOne {
	return _u.SetRawPostID(v.ID)
}

// SetAuthor sets the "author" edge to the Author entity.
func (_u *PostQualityAssessmentUpdateOne) SetAuthor(v *Author) *PostQualityAssessmentUpdateOne {
	return _u.SetAuthorID(v.ID)
}

// Mutation returns the PostQualityAssessmentMutation object of the builder.
func (_u *PostQualityAssessmentUpdateOne) Mutation() *PostQualityAssessmentMutation {
	return _u.mutation
}

// ClearRawPost clears the "raw_post" edge to the RawPost entity.
func (_u *PostQualityAssessmentUpdateOne) ClearRawPost() *PostQualityAssessmentUpdateOne {
	_u.mutation.ClearRawPost()
	return _u
}

// ClearAuthor clears the "author" edge to the Author entity.
func (_u *PostQualityAssessmentUpdateOne) ClearAuthor() *PostQualityAssessmentUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// Where appends a list predicates to the PostQualityAssessmentUpdate builder.
func (_u *PostQualityAssessmentUpdateOne) Where(ps ...predicate.PostQualityAssessment) *PostQualityAssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PostQualityAssessmentUpdateOne) Select(field string, fields ...string) *PostQualityAssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PostQualityAssessment entity.
func (_u *PostQualityAssessmentUpdateOne) Save(ctx context.Context) (*PostQualityAssessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostQualityAssessmentUpdateOne) SaveX(ctx context.Context) *PostQualityAssessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PostQualityAssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostQualityAssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostQualityAssessmentUpdateOne) check() error {
	if _u.mutation.RawPostCleared() && len(_u.mutation.RawPostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostQualityAssessment.raw_post"`)
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PostQualityAssessment.author"`)
	}
	return nil
}

func (_u *PostQualityAssessmentUpdateOne) sqlSave(ctx context.Context) (_node *PostQualityAssessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(postqualityassessment.Table, postqualityassessment.Columns, sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PostQualityAssessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, postqualityassessment.FieldID)
		for _, f := range fields {
			if !postqualityassessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != postqualityassessment.FieldID {
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
	if value, ok := _u.mutation.UniquenessScore(); ok {
		_spec.SetField(postqualityassessment.FieldUniquenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUniquenessScore(); ok {
		_spec.AddField(postqualityassessment.FieldUniquenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.UniquenessScoreCleared() {
		_spec.ClearField(postqualityassessment.FieldUniquenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UniquenessNote(); ok {
		_spec.SetField(postqualityassessment.FieldUniquenessNote, field.TypeString, value)
	}
	if _u.mutation.UniquenessNoteCleared() {
		_spec.ClearField(postqualityassessment.FieldUniquenessNote, field.TypeString)
	}
	if value, ok := _u.mutation.IsFirstMover(); ok {
		_spec.SetField(postqualityassessment.FieldIsFirstMover, field.TypeBool, value)
	}
	if _u.mutation.IsFirstMoverCleared() {
		_spec.ClearField(postqualityassessment.FieldIsFirstMover, field.TypeBool)
	}
	if value, ok := _u.mutation.SimilarClaimCount(); ok {
		_spec.SetField(postqualityassessment.FieldSimilarClaimCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSimilarClaimCount(); ok {
		_spec.AddField(postqualityassessment.FieldSimilarClaimCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SimilarAuthorCount(); ok {
		_spec.SetField(postqualityassessment.FieldSimilarAuthorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSimilarAuthorCount(); ok {
		_spec.AddField(postqualityassessment.FieldSimilarAuthorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EffectivenessScore(); ok {
		_spec.SetField(postqualityassessment.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectivenessScore(); ok {
		_spec.AddField(postqualityassessment.FieldEffectivenessScore, field.TypeFloat64, value)
	}
	if _u.mutation.EffectivenessScoreCleared() {
		_spec.ClearField(postqualityassessment.FieldEffectivenessScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EffectivenessNote(); ok {
		_spec.SetField(postqualityassessment.FieldEffectivenessNote, field.TypeString, value)
	}
	if _u.mutation.EffectivenessNoteCleared() {
		_spec.ClearField(postqualityassessment.FieldEffectivenessNote, field.TypeString)
	}
	if value, ok := _u.mutation.NoiseRatio(); ok {
		_spec.SetField(postqualityassessment.FieldNoiseRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNoiseRatio(); ok {
		_spec.AddField(postqualityassessment.FieldNoiseRatio, field.TypeFloat64, value)
	}
	if _u.mutation.NoiseRatioCleared() {
		_spec.ClearField(postqualityassessment.FieldNoiseRatio, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NoiseTypes(); ok {
		_spec.SetField(postqualityassessment.FieldNoiseTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNoiseTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postqualityassessment.FieldNoiseTypes, value)
		})
	}
	if _u.mutation.NoiseTypesCleared() {
		_spec.ClearField(postqualityassessment.FieldNoiseTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssessedAt(); ok {
		_spec.SetField(postqualityassessment.FieldAssessedAt, field.TypeTime, value)
	}
	if _u.mutation.RawPostCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RawPostIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PostQualityAssessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postqualityassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
