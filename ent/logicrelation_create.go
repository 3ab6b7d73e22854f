// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/logicrelation"
)

// LogicRelationCreate is the builder for creating a LogicRelation entity.
type LogicRelationCreate struct {
	config
	mutation *LogicRelationMutation
	hooks    []Hook
}

// SetFromLogicID sets the "from_logic_id" field.
func (_c *LogicRelationCreate) SetFromLogicID(v int) *LogicRelationCreate {
	_c.mutation.SetFromLogicID(v)
	return _c
}

// SetToLogicID sets the "to_logic_id" field.
func (_c *LogicRelationCreate) SetToLogicID(v int) *LogicRelationCreate {
	_c.mutation.SetToLogicID(v)
	return _c
}

// SetRelationType sets the "relation_type" field.
func (_c *LogicRelationCreate) SetRelationType(v logicrelation.RelationType) *LogicRelationCreate {
	_c.mutation.SetRelationType(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *LogicRelationCreate) SetNote(v string) *LogicRelationCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *LogicRelationCreate) SetNillableNote(v *string) *LogicRelationCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LogicRelationCreate) SetCreatedAt(v time.Time) *LogicRelationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LogicRelationCreate) SetNillableCreatedAt(v *time.Time) *LogicRelationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFromLogic sets the "from_logic" edge to the Logic entity.
func (_c *LogicRelationCreate) SetFromLogic(v *Logic) *LogicRelationCreate {
	return _c.SetFromLogicID(v.ID)
}

// SetToLogic sets the "to_logic" edge to the Logic entity.
func (_c *LogicRelationCreate) SetToLogic(v *Logic) *LogicRelationCreate {
	return _c.SetToLogicID(v.ID)
}

// Mutation returns the LogicRelationMutation object of the builder.
func (_c *LogicRelationCreate) Mutation() *LogicRelationMutation {
	return _c.mutation
}

// Save creates the LogicRelation in the database.
func (_c *LogicRelationCreate) Save(ctx context.Context) (*LogicRelation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LogicRelationCreate) SaveX(ctx context.Context) *LogicRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogicRelationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogicRelationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LogicRelationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := logicrelation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LogicRelationCreate) check() error {
	if _, ok := _c.mutation.FromLogicID(); !ok {
		return &ValidationError{Name: "from_logic_id", err: errors.New(`ent: missing required field "LogicRelation.from_logic_id"`)}
	}
	if _, ok := _c.mutation.ToLogicID(); !ok {
		return &ValidationError{Name: "to_logic_id", err: errors.New(`ent: missing required field "LogicRelation.to_logic_id"`)}
	}
	if _, ok := _c.mutation.RelationType(); !ok {
		return &ValidationError{Name: "relation_type", err: errors.New(`ent: missing required field "LogicRelation.relation_type"`)}
	}
	if v, ok := _c.mutation.RelationType(); ok {
		if err := logicrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "LogicRelation.relation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LogicRelation.created_at"`)}
	}
	if len(_c.mutation.FromLogicIDs()) == 0 {
		return &ValidationError{Name: "from_logic", err: errors.New(`ent: missing required edge "LogicRelation.from_logic"`)}
	}
	if len(_c.mutation.ToLogicIDs()) == 0 {
		return &ValidationError{Name: "to_logic", err: errors.New(`ent: missing required edge "LogicRelation.to_logic"`)}
	}
	return nil
}

func (_c *LogicRelationCreate) sqlSave(ctx context.Context) (*LogicRelation, error) {
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

func (_c *LogicRelationCreate) createSpec() (*LogicRelation, *sqlgraph.CreateSpec) {
	var (
		_node = &LogicRelation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(logicrelation.Table, sqlgraph.NewFieldSpec(logicrelation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RelationType(); ok {
		_spec.SetField(logicrelation.FieldRelationType, field.TypeEnum, value)
		_node.RelationType = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(logicrelation.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(logicrelation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FromLogicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logicrelation.FromLogicTable,
			Columns: []string{logicrelation.FromLogicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FromLogicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToLogicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logicrelation.ToLogicTable,
			Columns: []string{logicrelation.ToLogicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ToLogicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LogicRelationCreateBulk is the builder for creating many LogicRelation entities in bulk.
type LogicRelationCreateBulk struct {
	config
	err      error
	builders []*LogicRelationCreate
}

// Save creates the LogicRelation entities in the database.
func (_c *LogicRelationCreateBulk) Save(ctx context.Context) ([]*LogicRelation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LogicRelation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LogicRelationMutation)
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
func (_c *LogicRelationCreateBulk) SaveX(ctx context.Context) []*LogicRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogicRelationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogicRelationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
