// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/predicate"
)

// ConclusionVerdictUpdate is the builder for updating ConclusionVerdict entities.
type ConclusionVerdictUpdate struct {
	config
	hooks    []Hook
	mutation *ConclusionVerdictMutation
}

// Where appends a list predicates to the ConclusionVerdictUpdate builder.
func (_u *ConclusionVerdictUpdate) Where(ps ...predicate.ConclusionVerdict) *ConclusionVerdictUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConclusionID sets the "conclusion_id" field.
func (_u *ConclusionVerdictUpdate) SetConclusionID(v int) *ConclusionVerdictUpdate {
	_u.mutation.SetConclusionID(v)
	return _u
}

// SetNillableConclusionID sets the "conclusion_id" field if the given value is not nil.
func (_u *ConclusionVerdictUpdate) SetNillableConclusionID(v *int) *ConclusionVerdictUpdate {
	if v != nil {
		_u.SetConclusionID(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *ConclusionVerdictUpdate) SetVerdict(v conclusionverdict.Verdict) *ConclusionVerdictUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *ConclusionVerdictUpdate) SetNillableVerdict(v *conclusionverdict.Verdict) *ConclusionVerdictUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetLogicTrace sets the "logic_trace" field.
func (_u *ConclusionVerdictUpdate) SetLogicTrace(v map[string]interface{}) *ConclusionVerdictUpdate {
	_u.mutation.SetLogicTrace(v)
	return _u
}

// ClearLogicTrace clears the value of the "logic_trace" field.
func (_u *ConclusionVerdictUpdate) ClearLogicTrace() *ConclusionVerdictUpdate {
	_u.mutation.ClearLogicTrace()
	return _u
}

// SetRoleFit sets the "role_fit" field.
func (_u *ConclusionVerdictUpdate) SetRoleFit(v conclusionverdict.RoleFit) *ConclusionVerdictUpdate {
	_u.mutation.SetRoleFit(v)
	return _u
}

// SetNillableRoleFit sets the "role_fit" field if the given value is not nil.
func (_u *ConclusionVerdictUpdate) SetNillableRoleFit(v *conclusionverdict.RoleFit) *ConclusionVerdictUpdate {
	if v != nil {
		_u.SetRoleFit(*v)
	}
	return _u
}

// ClearRoleFit clears the value of the "role_fit" field.
func (_u *ConclusionVerdictUpdate) ClearRoleFit() *ConclusionVerdictUpdate {
	_u.mutation.ClearRoleFit()
	return _u
}

// SetRoleFitNote sets the "role_fit_note" field.
func (_u *ConclusionVerdictUpdate) SetRoleFitNote(v string) *ConclusionVerdictUpdate {
	_u.mutation.SetRoleFitNote(v)
	return _u
}

// SetNillableRoleFitNote sets the "role_fit_note" field if the given value is not nil.
func (_u *ConclusionVerdictUpdate) SetNillableRoleFitNote(v *string) *ConclusionVerdictUpdate {
	if v != nil {
		_u.SetRoleFitNote(*v)
	}
	return _u
}

// ClearRoleFitNote clears the value of the "role_fit_note" field.
func (_u *ConclusionVerdictUpdate) ClearRoleFitNote() *ConclusionVerdictUpdate {
	_u.mutation.ClearRoleFitNote()
	return _u
}

// SetDerivedAt sets the "derived_at" field.
func (_u *ConclusionVerdictUpdate) SetDerivedAt(v time.Time) *ConclusionVerdictUpdate {
	_u.mutation.SetDerivedAt(v)
	return _u
}

// SetNillableDerivedAt sets the "derived_at" field if the given value is not nil.
func (_u *ConclusionVerdictUpdate) SetNillableDerivedAt(v *time.Time) *ConclusionVerdictUpdate {
	if v != nil {
		_u.SetDerivedAt(*v)
	}
	return _u
}

// SetConclusion sets the "conclusion" edge to the Conclusion entity.
func (_u *ConclusionVerdictUpdate) SetConclusion(v *Conclusion) *ConclusionVerdictUpdate {
	return _u.SetConclusionID(v.ID)
}

// Mutation returns the ConclusionVerdictMutation object of the builder.
func (_u *ConclusionVerdictUpdate) Mutation() *ConclusionVerdictMutation {
	return _u.mutation
}

// ClearConclusion clears the "conclusion" edge to the Conclusion entity.
func (_u *ConclusionVerdictUpdate) ClearConclusion() *ConclusionVerdictUpdate {
	_u.mutation.ClearConclusion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConclusionVerdictUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConclusionVerdictUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConclusionVerdictUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConclusionVerdictUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConclusionVerdictUpdate) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := conclusionverdict.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "ConclusionVerdict.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoleFit(); ok {
		if err := conclusionverdict.RoleFitValidator(v); err != nil {
			return &ValidationError{Name: "role_fit", err: fmt.Errorf(`ent: validator failed for field "ConclusionVerdict.role_fit": %w`, err)}
		}
	}
	if _u.mutation.ConclusionCleared() && len(_u.mutation.ConclusionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConclusionVerdict.conclusion"`)
	}
	return nil
}

func (_u *ConclusionVerdictUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conclusionverdict.Table, conclusionverdict.Columns, sqlgraph.NewFieldSpec(conclusionverdict.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(conclusionverdict.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LogicTrace(); ok {
		_spec.SetField(conclusionverdict.FieldLogicTrace, field.TypeJSON, value)
	}
	if _u.mutation.LogicTraceCleared() {
		_spec.ClearField(conclusionverdict.FieldLogicTrace, field.TypeJSON)
	}
	if value, ok := _u.mutation.RoleFit(); ok {
		_spec.SetField(conclusionverdict.FieldRoleFit, field.TypeEnum, value)
	}
	if _u.mutation.RoleFitCleared() {
		_spec.ClearField(conclusionverdict.FieldRoleFit, field.TypeEnum)
	}
	if value, ok := _u.mutation.RoleFitNote(); ok {
		_spec.SetField(conclusionverdict.FieldRoleFitNote, field.TypeString, value)
	}
	if _u.mutation.RoleFitNoteCleared() {
		_spec.ClearField(conclusionverdict.FieldRoleFitNote, field.TypeString)
	}
	if value, ok := _u.mutation.DerivedAt(); ok {
		_spec.SetField(conclusionverdict.FieldDerivedAt, field.TypeTime, value)
	}
	if _u.mutation.ConclusionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConclusionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conclusionverdict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConclusionVerdictUpdateOne is the builder for updating a single ConclusionVerdict entity.
type ConclusionVerdictUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConclusionVerdictMutation
}

// SetConclusionID sets the "conclusion_id" field.
func (_u *ConclusionVerdictUpdateOne) SetConclusionID(v int) *ConclusionVerdictUpdateOne {
	_u.mutation.SetConclusionID(v)
	return _u
}

// SetNillableConclusionID sets the "conclusion_id" field if the given value is not nil.
func (_u *ConclusionVerdictUpdateOne) SetNillableConclusionID(v *int) *ConclusionVerdictUpdateOne {
	if v != nil {
		_u.SetConclusionID(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *ConclusionVerdictUpdateOne) SetVerdict(v conclusionverdict.Verdict) *ConclusionVerdictUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *ConclusionVerdictUpdateOne) SetNillableVerdict(v *conclusionverdict.Verdict) *ConclusionVerdictUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetLogicTrace sets the "logic_trace" field.
func (_u *ConclusionVerdictUpdateOne) SetLogicTrace(v map[string]interface{}) *ConclusionVerdictUpdateOne {
	_u.mutation.SetLogicTrace(v)
	return _u
}

// ClearLogicTrace clears the value of the "logic_trace" field.
func (_u *ConclusionVerdictUpdateOne) ClearLogicTrace() *ConclusionVerdictUpdateOne {
	_u.mutation.ClearLogicTrace()
	return _u
}

// SetRoleFit sets the "role_fit" field.
func (_u *ConclusionVerdictUpdateOne) SetRoleFit(v conclusionverdict.RoleFit) *ConclusionVerdictUpdateOne {
	_u.mutation.SetRoleFit(v)
	return _u
}

// SetNillableRoleFit sets the "role_fit" field if the given value is not nil.
func (_u *ConclusionVerdictUpdateOne) SetNillableRoleFit(v *conclusionverdict.RoleFit) *ConclusionVerdictUpdateOne {
	if v != nil {
		_u.SetRoleFit(*v)
	}
	return _u
}

// ClearRoleFit clears the value of the "role_fit" field.
func (_u *ConclusionVerdictUpdateOne) ClearRoleFit() *ConclusionVerdictUpdateOne {
	_u.mutation.ClearRoleFit()
	return _u
}

// SetRoleFitNote sets the "role_fit_note" field.
func (_u *ConclusionVerdictUpdateOne) SetRoleFitNote(v string) *ConclusionVerdictUpdateOne {
	_u.mutation.SetRoleFitNote(v)
	return _u
}

// SetNillableRoleFitNote sets the "role_fit_note" field if the given value is not nil.
func (_u *ConclusionVerdictUpdateOne) SetNillableRoleFitNote(v *string) *ConclusionVerdictUpdateOne {
	if v != nil {
		_u.SetRoleFitNote(*v)
	}
	return _u
}

// ClearRoleFitNote clears the value of the "role_fit_note" field.
func (_u *ConclusionVerdictUpdateOne) ClearRoleFitNote() *ConclusionVerdictUpdateOne {
	_u.mutation.ClearRoleFitNote()
	return _u
}

// SetDerivedAt sets the "derived_at" field.
func (_u *ConclusionVerdictUpdateOne) SetDerivedAt(v time.Time) *ConclusionVerdictUpdateOne {
	_u.mutation.SetDerivedAt(v)
	return _u
}

// SetNillableDerivedAt sets the "derived_at" field if the given value is not nil.
func (_u *ConclusionVerdictUpdateOne) SetNillableDerivedAt(v *time.Time) *ConclusionVerdictUpdateOne {
	if v != nil {
		_u.SetDerivedAt(*v)
	}
	return _u
}

// SetConclusion sets the "conclusion" edge to the Conclusion entity.
func (_u *ConclusionVerdictUpdateOne) SetConclusion(v *Conclusion) *ConclusionVerdictUpdateOne {
	return _u.SetConclusionID(v.ID)
}

// Mutation returns the ConclusionVerdictMutation object of the builder.
func (_u *ConclusionVerdictUpdateOne) Mutation() *ConclusionVerdictMutation {
	return _u.mutation
}

// ClearConclusion clears the "conclusion" edge to the Conclusion entity.
func (_u *ConclusionVerdictUpdateOne) ClearConclusion() *ConclusionVerdictUpdateOne {
	_u.mutation.ClearConclusion()
	return _u
}

// Where appends a list predicates to the ConclusionVerdictUpdate builder.
func (_u *ConclusionVerdictUpdateOne) Where(ps ...predicate.ConclusionVerdict) *ConclusionVerdictUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConclusionVerdictUpdateOne) Select(field string, fields ...string) *ConclusionVerdictUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConclusionVerdict entity.
func (_u *ConclusionVerdictUpdateOne) Save(ctx context.Context) (*ConclusionVerdict, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConclusionVerdictUpdateOne) SaveX(ctx context.Context) *ConclusionVerdict {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConclusionVerdictUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConclusionVerdictUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConclusionVerdictUpdateOne) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := conclusionverdict.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "ConclusionVerdict.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoleFit(); ok {
		if err := conclusionverdict.RoleFitValidator(v); err != nil {
			return &ValidationError{Name: "role_fit", err: fmt.Errorf(`ent: validator failed for field "ConclusionVerdict.role_fit": %w`, err)}
		}
	}
	if _u.mutation.ConclusionCleared() && len(_u.mutation.ConclusionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConclusionVerdict.conclusion"`)
	}
	return nil
}

func (_u *ConclusionVerdictUpdateOne) sqlSave(ctx context.Context) (_node *ConclusionVerdict, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conclusionverdict.Table, conclusionverdict.Columns, sqlgraph.NewFieldSpec(conclusionverdict.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConclusionVerdict.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conclusionverdict.FieldID)
		for _, f := range fields {
			if !conclusionverdict.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conclusionverdict.FieldID {
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
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(conclusionverdict.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LogicTrace(); ok {
		_spec.SetField(conclusionverdict.FieldLogicTrace, field.TypeJSON, value)
	}
	if _u.mutation.LogicTraceCleared() {
		_spec.ClearField(conclusionverdict.FieldLogicTrace, field.TypeJSON)
	}
	if value, ok := _u.mutation.RoleFit(); ok {
		_spec.SetField(conclusionverdict.FieldRoleFit, field.TypeEnum, value)
	}
	if _u.mutation.RoleFitCleared() {
		_spec.ClearField(conclusionverdict.FieldRoleFit, field.TypeEnum)
	}
	if value, ok := _u.mutation.RoleFitNote(); ok {
		_spec.SetField(conclusionverdict.FieldRoleFitNote, field.TypeString, value)
	}
	if _u.mutation.RoleFitNoteCleared() {
		_spec.ClearField(conclusionverdict.FieldRoleFitNote, field.TypeString)
	}
	if value, ok := _u.mutation.DerivedAt(); ok {
		_spec.SetField(conclusionverdict.FieldDerivedAt, field.TypeTime, value)
	}
	if _u.mutation.ConclusionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConclusionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ConclusionVerdict{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conclusionverdict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
