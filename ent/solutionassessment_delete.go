// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/solutionassessment"
)

// SolutionAssessmentDelete is the builder for deleting a SolutionAssessment entity.
type SolutionAssessmentDelete struct {
	config
	hooks    []Hook
	mutation *SolutionAssessmentMutation
}

// Where appends a list predicates to the SolutionAssessmentDelete builder.
func (_d *SolutionAssessmentDelete) Where(ps ...predicate.SolutionAssessment) *SolutionAssessmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SolutionAssessmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SolutionAssessmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SolutionAssessmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(solutionassessment.Table, sqlgraph.NewFieldSpec(solutionassessment.FieldID, field.TypeInt))
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

// SolutionAssessmentDeleteOne is the builder for deleting a single SolutionAssessment entity.
type SolutionAssessmentDeleteOne struct {
	_d *SolutionAssessmentDelete
}

// Where appends a list predicates to the SolutionAssessmentDelete builder.
func (_d *SolutionAssessmentDeleteOne) Where(ps ...predicate.SolutionAssessment) *SolutionAssessmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SolutionAssessmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{solutionassessment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SolutionAssessmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
