// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/predicate"
)

// PostQualityAssessmentDelete is the builder for deleting a PostQualityAssessment entity.
type PostQualityAssessmentDelete struct {
	config
	hooks    []Hook
	mutation *PostQualityAssessmentMutation
}

// Where appends a list predicates to the PostQualityAssessmentDelete builder.
func (_d *PostQualityAssessmentDelete) Where(ps ...predicate.PostQualityAssessment) *PostQualityAssessmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PostQualityAssessmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PostQualityAssessmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PostQualityAssessmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(postqualityassessment.Table, sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PostQualityAssessmentDeleteOne is the builder for deleting a single PostQualityAssessment entity.
type PostQualityAssessmentDeleteOne struct {
	_d *PostQualityAssessmentDelete
}

// Where appends a list predicates to the PostQualityAssessmentDelete builder.
func (_d *PostQualityAssessmentDeleteOne) Where(ps ...predicate.PostQualityAssessment) *PostQualityAssessmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PostQualityAssessmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{postqualityassessment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PostQualityAssessmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
