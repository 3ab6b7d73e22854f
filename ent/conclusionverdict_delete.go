// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/predicate"
)

// ConclusionVerdictDelete is the builder for deleting a ConclusionVerdict entity.
type ConclusionVerdictDelete struct {
	config
	hooks    []Hook
	mutation *ConclusionVerdictMutation
}

// Where appends a list predicates to the ConclusionVerdictDelete builder.
func (_d *ConclusionVerdictDelete) Where(ps ...predicate.ConclusionVerdict) *ConclusionVerdictDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConclusionVerdictDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConclusionVerdictDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConclusionVerdictDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(conclusionverdict.Table, sqlgraph.NewFieldSpec(conclusionverdict.FieldID, field.TypeInt))
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

// ConclusionVerdictDeleteOne is the builder for deleting a single ConclusionVerdict entity.
type ConclusionVerdictDeleteOne struct {
	_d *ConclusionVerdictDelete
}

// Where appends a list predicates to the ConclusionVerdictDelete builder.
func (_d *ConclusionVerdictDeleteOne) Where(ps ...predicate.ConclusionVerdict) *ConclusionVerdictDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConclusionVerdictDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{conclusionverdict.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConclusionVerdictDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
