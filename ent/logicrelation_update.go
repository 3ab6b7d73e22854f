// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/logicrelation"
	"github.com/credlens/pundit/ent/predicate"
)

// LogicRelationUpdate is the builder for updating LogicRelation entities.
type LogicRelationUpdate struct {
	config
	hooks    []Hook
	mutation *LogicRelationMutation
}

// Where appends a list predicates to the LogicRelationUpdate builder.
func (_u *LogicRelationUpdate) Where(ps ...predicate.LogicRelation) *LogicRelationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromLogicID sets the "from_logic_id" field.
func (_u *LogicRelationUpdate) SetFromLogicID(v int) *LogicRelationUpdate {
	_u.mutation.SetFromLogicID(v)
	return _u
}

// SetNillableFromLogicID sets the "from_logic_id" field if the given value is not nil.
func (_u *LogicRelationUpdate) SetNillableFromLogicID(v *int) *LogicRelationUpdate {
	if v != nil {
		_u.SetFromLogicID(*v)
	}
	return _u
}

// SetToLogicID sets the "to_logic_id" field.
func (_u *LogicRelationUpdate) SetToLogicID(v int) *LogicRelationUpdate {
	_u.mutation.SetToLogicID(v)
	return _u
}

// SetNillableToLogicID sets the "to_logic_id" field if the given value is not nil.
func (_u *LogicRelationUpdate) SetNillableToLogicID(v *int) *LogicRelationUpdate {
	if v != nil {
		_u.SetToLogicID(*v)
	}
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *LogicRelationUpdate) SetRelationType(v logicrelation.RelationType) *LogicRelationUpdate {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *LogicRelationUpdate) SetNillableRelationType(v *logicrelation.RelationType) *LogicRelationUpdate {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *LogicRelationUpdate) SetNote(v string) *LogicRelationUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *LogicRelationUpdate) SetNillableNote(v *string) *LogicRelationUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *LogicRelationUpdate) ClearNote() *LogicRelationUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetFromLogic sets the "from_logic" edge to the Logic entity.
func (_u *LogicRelationUpdate) SetFromLogic(v *Logic) *LogicRelationUpdate {
	return _u.SetFromLogicID(v.ID)
}

// SetToLogic sets the "to_logic" edge to the Logic entity.
func (_u *LogicRelationUpdate) SetToLogic(v *Logic) *LogicRelationUpdate {
	return _u.SetToLogicID(v.ID)
}

// Mutation returns the LogicRelationMutation object of the builder.
func (_u *LogicRelationUpdate) Mutation() *LogicRelationMutation {
	return _u.mutation
}

// ClearFromLogic clears the "from_logic" edge to the Logic entity.
func (_u *LogicRelationUpdate) ClearFromLogic() *LogicRelationUpdate {
	_u.mutation.ClearFromLogic()
	return _u
}

// ClearToLogic clears the "to_logic" edge to the Logic entity.
func (_u *LogicRelationUpdate) ClearToLogic() *LogicRelationUpdate {
	_u.mutation.ClearToLogic()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LogicRelationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LogicRelationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LogicRelationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LogicRelationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LogicRelationUpdate) check() error {
	if v, ok := _u.mutation.RelationType(); ok {
		if err := logicrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "LogicRelation.relation_type": %w`, err)}
		}
	}
	if _u.mutation.FromLogicCleared() && len(_u.mutation.FromLogicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LogicRelation.from_logic"`)
	}
	if _u.mutation.ToLogicCleared() && len(_u.mutation.ToLogicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LogicRelation.to_logic"`)
	}
	return nil
}

func (_u *LogicRelationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(logicrelation.Table, logicrelation.Columns, sqlgraph.NewFieldSpec(logicrelation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(logicrelation.FieldRelationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(logicrelation.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(logicrelation.FieldNote, field.TypeString)
	}
	if _u.mutation.FromLogicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FromLogicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToLogicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToLogicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{logicrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LogicRelationUpdateOne is the builder for updating a single LogicRelation entity.
type LogicRelationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LogicRelationMutation
}

// SetFromLogicID sets the "from_logic_id" field.
func (_u *LogicRelationUpdateOne) SetFromLogicID(v int) *LogicRelationUpdateOne {
	_u.mutation.SetFromLogicID(v)
	return _u
}

// SetNillableFromLogicID sets the "from_logic_id" field if the given value is not nil.
func (_u *LogicRelationUpdateOne) SetNillableFromLogicID(v *int) *LogicRelationUpdateOne {
	if v != nil {
		_u.SetFromLogicID(*v)
	}
	return _u
}

// SetToLogicID sets the "to_logic_id" field.
func (_u *LogicRelationUpdateOne) SetToLogicID(v int) *LogicRelationUpdateOne {
	_u.mutation.SetToLogicID(v)
	return _u
}

// SetNillableToLogicID sets the "to_logic_id" field if the given value is not nil.
func (_u *LogicRelationUpdateOne) SetNillableToLogicID(v *int) *LogicRelationUpdateOne {
	if v != nil {
		_u.SetToLogicID(*v)
	}
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *LogicRelationUpdateOne) SetRelationType(v logicrelation.RelationType) *LogicRelationUpdateOne {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *LogicRelationUpdateOne) SetNillableRelationType(v *logicrelation.RelationType) *LogicRelationUpdateOne {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *LogicRelationUpdateOne) SetNote(v string) *LogicRelationUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *LogicRelationUpdateOne) SetNillableNote(v *string) *LogicRelationUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *LogicRelationUpdateOne) ClearNote() *LogicRelationUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetFromLogic sets the "from_logic" edge to the Logic entity.
func (_u *LogicRelationUpdateOne) SetFromLogic(v *Logic) *LogicRelationUpdateOne {
	return _u.SetFromLogicID(v.ID)
}

// SetToLogic sets the "to_logic" edge to the Logic entity.
func (_u *LogicRelationUpdateOne) SetToLogic(v *Logic) *LogicRelationUpdateOne {
	return _u.SetToLogicID(v.ID)
}

// Mutation returns the LogicRelationMutation object of the builder.
func (_u *LogicRelationUpdateOne) Mutation() *LogicRelationMutation {
	return _u.mutation
}

// ClearFromLogic clears the "from_logic" edge to the Logic entity.
func (_u *LogicRelationUpdateOne) ClearFromLogic() *LogicRelationUpdateOne {
	_u.mutation.ClearFromLogic()
	return _u
}

// ClearToLogic clears the "to_logic" edge to the Logic entity.
func (_u *LogicRelationUpdateOne) ClearToLogic() *LogicRelationUpdateOne {
	_u.mutation.ClearToLogic()
	return _u
}

// Where appends a list predicates to the LogicRelationUpdate builder.
func (_u *LogicRelationUpdateOne) Where(ps ...predicate.LogicRelation) *LogicRelationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LogicRelationUpdateOne) Select(field string, fields ...string) *LogicRelationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LogicRelation entity.
func (_u *LogicRelationUpdateOne) Save(ctx context.Context) (*LogicRelation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LogicRelationUpdateOne) SaveX(ctx context.Context) *LogicRelation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LogicRelationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LogicRelationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LogicRelationUpdateOne) check() error {
	if v, ok := _u.mutation.RelationType(); ok {
		if err := logicrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "LogicRelation.relation_type": %w`, err)}
		}
	}
	if _u.mutation.FromLogicCleared() && len(_u.mutation.FromLogicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LogicRelation.from_logic"`)
	}
	if _u.mutation.ToLogicCleared() && len(_u.mutation.ToLogicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LogicRelation.to_logic"`)
	}
	return nil
}

func (_u *LogicRelationUpdateOne) sqlSave(ctx context.Context) (_node *LogicRelation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(logicrelation.Table, logicrelation.Columns, sqlgraph.NewFieldSpec(logicrelation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LogicRelation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, logicrelation.FieldID)
		for _, f := range fields {
			if !logicrelation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != logicrelation.FieldID {
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
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(logicrelation.FieldRelationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(logicrelation.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(logicrelation.FieldNote, field.TypeString)
	}
	if _u.mutation.FromLogicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FromLogicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToLogicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToLogicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LogicRelation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{logicrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
