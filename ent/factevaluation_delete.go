// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/ent/predicate"
)

// FactEvaluationDelete is the builder for deleting a FactEvaluation entity.
type FactEvaluationDelete struct {
	config
	hooks    []Hook
	mutation *FactEvaluationMutation
}

// Where appends a list predicates to the FactEvaluationDelete builder.
func (_d *FactEvaluationDelete) Where(ps ...predicate.FactEvaluation) *FactEvaluationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FactEvaluationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FactEvaluationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FactEvaluationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(factevaluation.Table, sqlgraph.NewFieldSpec(factevaluation.FieldID, field.TypeInt))
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

// FactEvaluationDeleteOne is the builder for deleting a single FactEvaluation entity.
type FactEvaluationDeleteOne struct {
	_d *FactEvaluationDelete
}

// Where appends a list predicates to the FactEvaluationDelete builder.
func (_d *FactEvaluationDeleteOne) Where(ps ...predicate.FactEvaluation) *FactEvaluationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FactEvaluationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{factevaluation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FactEvaluationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
