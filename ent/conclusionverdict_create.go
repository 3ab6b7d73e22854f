// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
)

// ConclusionVerdictCreate is the builder for creating a ConclusionVerdict entity.
type ConclusionVerdictCreate struct {
	config
	mutation *ConclusionVerdictMutation
	hooks    []Hook
}

// SetConclusionID sets the "conclusion_id" field.
func (_c *ConclusionVerdictCreate) SetConclusionID(v int) *ConclusionVerdictCreate {
	_c.mutation.SetConclusionID(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *ConclusionVerdictCreate) SetVerdict(v conclusionverdict.Verdict) *ConclusionVerdictCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetLogicTrace sets the "logic_trace" field.
func (_c *ConclusionVerdictCreate) SetLogicTrace(v map[string]interface{}) *ConclusionVerdictCreate {
	_c.mutation.SetLogicTrace(v)
	return _c
}

// SetRoleFit sets the "role_fit" field.
func (_c *ConclusionVerdictCreate) SetRoleFit(v conclusionverdict.RoleFit) *ConclusionVerdictCreate {
	_c.mutation.SetRoleFit(v)
	return _c
}

// SetNillableRoleFit sets the "role_fit" field if the given value is not nil.
func (_c *ConclusionVerdictCreate) SetNillableRoleFit(v *conclusionverdict.RoleFit) *ConclusionVerdictCreate {
	if v != nil {
		_c.SetRoleFit(*v)
	}
	return _c
}

// SetRoleFitNote sets the "role_fit_note" field.
func (_c *ConclusionVerdictCreate) SetRoleFitNote(v string) *ConclusionVerdictCreate {
	_c.mutation.SetRoleFitNote(v)
	return _c
}

// SetNillableRoleFitNote sets the "role_fit_note" field if the given value is not nil.
func (_c *ConclusionVerdictCreate) SetNillableRoleFitNote(v *string) *ConclusionVerdictCreate {
	if v != nil {
		_c.SetRoleFitNote(*v)
	}
	return _c
}

// SetDerivedAt sets the "derived_at" field.
func (_c *ConclusionVerdictCreate) SetDerivedAt(v time.Time) *ConclusionVerdictCreate {
	_c.mutation.SetDerivedAt(v)
	return _c
}

// SetNillableDerivedAt sets the "derived_at" field if the given value is not nil.
func (_c *ConclusionVerdictCreate) SetNillableDerivedAt(v *time.Time) *ConclusionVerdictCreate {
	if v != nil {
		_c.SetDerivedAt(*v)
	}
	return _c
}

// SetConclusion sets the "conclusion" edge to the Conclusion entity.
func (_c *ConclusionVerdictCreate) SetConclusion(v *Conclusion) *ConclusionVerdictCreate {
	return _c.SetConclusionID(v.ID)
}

// Mutation returns the ConclusionVerdictMutation object of the builder.
func (_c *ConclusionVerdictCreate) Mutation() *ConclusionVerdictMutation {
	return _c.mutation
}

// Save creates the ConclusionVerdict in the database.
func (_c *ConclusionVerdictCreate) Save(ctx context.Context) (*ConclusionVerdict, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConclusionVerdictCreate) SaveX(ctx context.Context) *ConclusionVerdict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConclusionVerdictCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConclusionVerdictCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConclusionVerdictCreate) defaults() {
	if _, ok := _c.mutation.DerivedAt(); !ok {
		v := conclusionverdict.DefaultDerivedAt()
		_c.mutation.SetDerivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConclusionVerdictCreate) check() error {
	if _, ok := _c.mutation.ConclusionID(); !ok {
		return &ValidationError{Name: "conclusion_id", err: errors.New(`ent: missing required field "ConclusionVerdict.conclusion_id"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "ConclusionVerdict.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := conclusionverdict.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "ConclusionVerdict.verdict": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RoleFit(); ok {
		if err := conclusionverdict.RoleFitValidator(v); err != nil {
			return &ValidationError{Name: "role_fit", err: fmt.Errorf(`ent: validator failed for field "ConclusionVerdict.role_fit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DerivedAt(); !ok {
		return &ValidationError{Name: "derived_at", err: errors.New(`ent: missing required field "ConclusionVerdict.derived_at"`)}
	}
	if len(_c.mutation.ConclusionIDs()) == 0 {
		return &ValidationError{Name: "conclusion", err: errors.New(`ent: missing required edge "ConclusionVerdict.conclusion"`)}
	}
	return nil
}

func (_c *ConclusionVerdictCreate) sqlSave(ctx context.Context) (*ConclusionVerdict, error) {
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

func (_c *ConclusionVerdictCreate) createSpec() (*ConclusionVerdict, *sqlgraph.CreateSpec) {
	var (
		_node = &ConclusionVerdict{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conclusionverdict.Table, sqlgraph.NewFieldSpec(conclusionverdict.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(conclusionverdict.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.LogicTrace(); ok {
		_spec.SetField(conclusionverdict.FieldLogicTrace, field.TypeJSON, value)
		_node.LogicTrace = value
	}
	if value, ok := _c.mutation.RoleFit(); ok {
		_spec.SetField(conclusionverdict.FieldRoleFit, field.TypeEnum, value)
		_node.RoleFit = &value
	}
	if value, ok := _c.mutation.RoleFitNote(); ok {
		_spec.SetField(conclusionverdict.FieldRoleFitNote, field.TypeString, value)
		_node.RoleFitNote = &value
	}
	if value, ok := _c.mutation.DerivedAt(); ok {
		_spec.SetField(conclusionverdict.FieldDerivedAt, field.TypeTime, value)
		_node.DerivedAt = value
	}
	if nodes := _c.mutation.ConclusionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conclusionverdict.ConclusionTable,
			Columns: []string{conclusionverdict.ConclusionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConclusionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConclusionVerdictCreateBulk is the builder for creating many ConclusionVerdict entities in bulk.
type ConclusionVerdictCreateBulk struct {
	config
	err      error
	builders []*ConclusionVerdictCreate
}

// Save creates the ConclusionVerdict entities in the database.
func (_c *ConclusionVerdictCreateBulk) Save(ctx context.Context) ([]*ConclusionVerdict, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConclusionVerdict, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConclusionVerdictMutation)
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
func (_c *ConclusionVerdictCreateBulk) SaveX(ctx context.Context) []*ConclusionVerdict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConclusionVerdictCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConclusionVerdictCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
