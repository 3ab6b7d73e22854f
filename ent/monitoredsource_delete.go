// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/predicate"
)

// MonitoredSourceDelete is the builder for deleting a MonitoredSource entity.
type MonitoredSourceDelete struct {
	config
	hooks    []Hook
	mutation *MonitoredSourceMutation
}

// Where appends a list predicates to the MonitoredSourceDelete builder.
func (_d *MonitoredSourceDelete) Where(ps ...predicate.MonitoredSource) *MonitoredSourceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MonitoredSourceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonitoredSourceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MonitoredSourceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(monitoredsource.Table, sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt))
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

// MonitoredSourceDeleteOne is the builder for deleting a single MonitoredSource entity.
type MonitoredSourceDeleteOne struct {
	_d *MonitoredSourceDelete
}

// Where appends a list predicates to the MonitoredSourceDelete builder.
func (_d *MonitoredSourceDeleteOne) Where(ps ...predicate.MonitoredSource) *MonitoredSourceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MonitoredSourceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{monitoredsource.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonitoredSourceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
