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
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/ent/predicate"
)

// FactEvaluationUpdate is the builder for updating FactEvaluation entities.
type FactEvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *FactEvaluationMutation
}

// Where appends a list predicates to the FactEvaluationUpdate builder.
func (_u *FactEvaluationUpdate) Where(ps ...predicate.FactEvaluation) *FactEvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFactID sets the "fact_id" field.
func (_u *FactEvaluationUpdate) SetFactID(v int) *FactEvaluationUpdate {
	_u.mutation.SetFactID(v)
	return _u
}

// SetNillableFactID sets the "fact_id" field if the given value is not nil.
func (_u *FactEvaluationUpdate) SetNillableFactID(v *int) *FactEvaluationUpdate {
	if v != nil {
		_u.SetFactID(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *FactEvaluationUpdate) SetResult(v factevaluation.Result) *FactEvaluationUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *FactEvaluationUpdate) SetNillableResult(v *factevaluation.Result) *FactEvaluationUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetEvidenceText sets the "evidence_text" field.
func (_u *FactEvaluationUpdate) SetEvidenceText(v string) *FactEvaluationUpdate {
	_u.mutation.SetEvidenceText(v)
	return _u
}

// SetNillableEvidenceText sets the "evidence_text" field if the given value is not nil.
func (_u *FactEvaluationUpdate) SetNillableEvidenceText(v *string) *FactEvaluationUpdate {
	if v != nil {
		_u.SetEvidenceText(*v)
	}
	return _u
}

// ClearEvidenceText clears the value of the "evidence_text" field.
func (_u *FactEvaluationUpdate) ClearEvidenceText() *FactEvaluationUpdate {
	_u.mutation.ClearEvidenceText()
	return _u
}

// SetEvidenceTier sets the "evidence_tier" field.
func (_u *FactEvaluationUpdate) SetEvidenceTier(v int) *FactEvaluationUpdate {
	_u.mutation.ResetEvidenceTier()
	_u.mutation.SetEvidenceTier(v)
	return _u
}

// SetNillableEvidenceTier sets the "evidence_tier" field if the given value is not nil.
func (_u *FactEvaluationUpdate) SetNillableEvidenceTier(v *int) *FactEvaluationUpdate {
	if v != nil {
		_u.SetEvidenceTier(*v)
	}
	return _u
}

// AddEvidenceTier adds value to the "evidence_tier" field.
func (_u *FactEvaluationUpdate) AddEvidenceTier(v int) *FactEvaluationUpdate {
	_u.mutation.AddEvidenceTier(v)
	return _u
}

// ClearEvidenceTier clears the value of the "evidence_tier" field.
func (_u *FactEvaluationUpdate) ClearEvidenceTier() *FactEvaluationUpdate {
	_u.mutation.ClearEvidenceTier()
	return _u
}

// SetDataPeriod sets the "data_period" field.
func (_u *FactEvaluationUpdate) SetDataPeriod(v string) *FactEvaluationUpdate {
	_u.mutation.SetDataPeriod(v)
	return _u
}

// SetNillableDataPeriod sets the "data_period" field if the given value is not nil.
func (_u *FactEvaluationUpdate) SetNillableDataPeriod(v *string) *FactEvaluationUpdate {
	if v != nil {
		_u.SetDataPeriod(*v)
	}
	return _u
}

// ClearDataPeriod clears the value of the "data_period" field.
func (_u *FactEvaluationUpdate) ClearDataPeriod() *FactEvaluationUpdate {
	_u.mutation.ClearDataPeriod()
	return _u
}

// SetEvaluatorNotes sets the "evaluator_notes" field.
func (_u *FactEvaluationUpdate) SetEvaluatorNotes(v string) *FactEvaluationUpdate {
	_u.mutation.SetEvaluatorNotes(v)
	return _u
}

// SetNillableEvaluatorNotes sets the "evaluator_notes" field if the given value is not nil.
func (_u *FactEvaluationUpdate) SetNillableEvaluatorNotes(v *string) *FactEvaluationUpdate {
	if v != nil {
		_u.SetEvaluatorNotes(*v)
	}
	return _u
}

// ClearEvaluatorNotes clears the value of the "evaluator_notes" field.
func (_u *FactEvaluationUpdate) ClearEvaluatorNotes() *FactEvaluationUpdate {
	_u.mutation.ClearEvaluatorNotes()
	return _u
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_u *FactEvaluationUpdate) SetEvaluatedAt(v time.Time) *FactEvaluationUpdate {
	_u.mutation.SetEvaluatedAt(v)
	return _u
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_u *FactEvaluationUpdate) SetNillableEvaluatedAt(v *time.Time) *FactEvaluationUpdate {
	if v != nil {
		_u.SetEvaluatedAt(*v)
	}
	return _u
}

// SetFact sets the "fact" edge to the Fact entity.
func (_u *FactEvaluationUpdate) SetFact(v *Fact) *FactEvaluationUpdate {
	return _u.SetFactID(v.ID)
}

// Mutation returns the FactEvaluationMutation object of the builder.
func (_u *FactEvaluationUpdate) Mutation() *FactEvaluationMutation {
	return _u.mutation
}

// ClearFact clears the "fact" edge to the Fact entity.
func (_u *FactEvaluationUpdate) ClearFact() *FactEvaluationUpdate {
	_u.mutation.ClearFact()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FactEvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FactEvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FactEvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FactEvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FactEvaluationUpdate) check() error {
	if v, ok := _u.mutation.Result(); ok {
		if err := factevaluation.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "FactEvaluation.result": %w`, err)}
		}
	}
	if _u.mutation.FactCleared() && len(_u.mutation.FactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FactEvaluation.fact"`)
	}
	return nil
}

func (_u *FactEvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(factevaluation.Table, factevaluation.Columns, sqlgraph.NewFieldSpec(factevaluation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(factevaluation.FieldResult, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EvidenceText(); ok {
		_spec.SetField(factevaluation.FieldEvidenceText, field.TypeString, value)
	}
	if _u.mutation.EvidenceTextCleared() {
		_spec.ClearField(factevaluation.FieldEvidenceText, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceTier(); ok {
		_spec.SetField(factevaluation.FieldEvidenceTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceTier(); ok {
		_spec.AddField(factevaluation.FieldEvidenceTier, field.TypeInt, value)
	}
	if _u.mutation.EvidenceTierCleared() {
		_spec.ClearField(factevaluation.FieldEvidenceTier, field.TypeInt)
	}
	if value, ok := _u.mutation.DataPeriod(); ok {
		_spec.SetField(factevaluation.FieldDataPeriod, field.TypeString, value)
	}
	if _u.mutation.DataPeriodCleared() {
		_spec.ClearField(factevaluation.FieldDataPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.EvaluatorNotes(); ok {
		_spec.SetField(factevaluation.FieldEvaluatorNotes, field.TypeString, value)
	}
	if _u.mutation.EvaluatorNotesCleared() {
		_spec.ClearField(factevaluation.FieldEvaluatorNotes, field.TypeString)
	}
	if value, ok := _u.mutation.EvaluatedAt(); ok {
		_spec.SetField(factevaluation.FieldEvaluatedAt, field.TypeTime, value)
	}
	if _u.mutation.FactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   factevaluation.FactTable,
			Columns: []string{factevaluation.FactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   factevaluation.FactTable,
			Columns: []string{factevaluation.FactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{factevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FactEvaluationUpdateOne is the builder for updating a single FactEvaluation entity.
type FactEvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FactEvaluationMutation
}

// SetFactID sets the "fact_id" field.
func (_u *FactEvaluationUpdateOne) SetFactID(v int) *FactEvaluationUpdateOne {
	_u.mutation.SetFactID(v)
	return _u
}

// SetNillableFactID sets the "fact_id" field if the given value is not nil.
func (_u *FactEvaluationUpdateOne) SetNillableFactID(v *int) *FactEvaluationUpdateOne {
	if v != nil {
		_u.SetFactID(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *FactEvaluationUpdateOne) SetResult(v factevaluation.Result) *FactEvaluationUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *FactEvaluationUpdateOne) SetNillableResult(v *factevaluation.Result) *FactEvaluationUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetEvidenceText sets the "evidence_text" field.
func (_u *FactEvaluationUpdateOne) SetEvidenceText(v string) *FactEvaluationUpdateOne {
	_u.mutation.SetEvidenceText(v)
	return _u
}

// SetNillableEvidenceText sets the "evidence_text" field if the given value is not nil.
func (_u *FactEvaluationUpdateOne) SetNillableEvidenceText(v *string) *FactEvaluationUpdateOne {
	if v != nil {
		_u.SetEvidenceText(*v)
	}
	return _u
}

// ClearEvidenceText clears the value of the "evidence_text" field.
func (_u *FactEvaluationUpdateOne) ClearEvidenceText() *FactEvaluationUpdateOne {
	_u.mutation.ClearEvidenceText()
	return _u
}

// SetEvidenceTier sets the "evidence_tier" field.
func (_u *FactEvaluationUpdateOne) SetEvidenceTier(v int) *FactEvaluationUpdateOne {
	_u.mutation.ResetEvidenceTier()
	_u.mutation.SetEvidenceTier(v)
	return _u
}

// SetNillableEvidenceTier sets the "evidence_tier" field if the given value is not nil.
func (_u *FactEvaluationUpdateOne) SetNillableEvidenceTier(v *int) *FactEvaluationUpdateOne {
	if v != nil {
		_u.SetEvidenceTier(*v)
	}
	return _u
}

// AddEvidenceTier adds value to the "evidence_tier" field.
func (_u *FactEvaluationUpdateOne) AddEvidenceTier(v int) *FactEvaluationUpdateOne {
	_u.mutation.AddEvidenceTier(v)
	return _u
}

// ClearEvidenceTier clears the value of the "evidence_tier" field.
func (_u *FactEvaluationUpdateOne) ClearEvidenceTier() *FactEvaluationUpdateOne {
	_u.mutation.ClearEvidenceTier()
	return _u
}

// SetDataPeriod sets the "data_period" field.
func (_u *FactEvaluationUpdateOne) SetDataPeriod(v string) *FactEvaluationUpdateOne {
	_u.mutation.SetDataPeriod(v)
	return _u
}

// SetNillableDataPeriod sets the "data_period" field if the given value is not nil.
func (_u *FactEvaluationUpdateOne) SetNillableDataPeriod(v *string) *FactEvaluationUpdateOne {
	if v != nil {
		_u.SetDataPeriod(*v)
	}
	return _u
}

// ClearDataPeriod clears the value of the "data_period" field.
func (_u *FactEvaluationUpdateOne) ClearDataPeriod() *FactEvaluationUpdateOne {
	_u.mutation.ClearDataPeriod()
	return _u
}

// SetEvaluatorNotes sets the "evaluator_notes" field.
func (_u *FactEvaluationUpdateOne) SetEvaluatorNotes(v string) *FactEvaluationUpdateOne {
	_u.mutation.SetEvaluatorNotes(v)
	return _u
}

// SetNillableEvaluatorNotes sets the "evaluator_notes" field if the given value is not nil.
func (_u *FactEvaluationUpdateOne) SetNillableEvaluatorNotes(v *string) *FactEvaluationUpdateOne {
	if v != nil {
		_u.SetEvaluatorNotes(*v)
	}
	return _u
}

// ClearEvaluatorNotes clears the value of the "evaluator_notes" field.
func (_u *FactEvaluationUpdateOne) ClearEvaluatorNotes() *FactEvaluationUpdateOne {
	_u.mutation.ClearEvaluatorNotes()
	return _u
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_u *FactEvaluationUpdateOne) SetEvaluatedAt(v time.Time) *FactEvaluationUpdateOne {
	_u.mutation.SetEvaluatedAt(v)
	return _u
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_u *FactEvaluationUpdateOne) SetNillableEvaluatedAt(v *time.Time) *FactEvaluationUpdateOne {
	if v != nil {
		_u.SetEvaluatedAt(*v)
	}
	return _u
}

// SetFact sets the "fact" edge to the Fact entity.
func (_u *FactEvaluationUpdateOne) SetFact(v *Fact) *FactEvaluationUpdateOne {
	return _u.SetFactID(v.ID)
}

// Mutation returns the FactEvaluationMutation object of the builder.
func (_u *FactEvaluationUpdateOne) Mutation() *FactEvaluationMutation {
	return _u.mutation
}

// ClearFact clears the "fact" edge to the Fact entity.
func (_u *FactEvaluationUpdateOne) ClearFact() *FactEvaluationUpdateOne {
	_u.mutation.ClearFact()
	return _u
}

// Where appends a list predicates to the FactEvaluationUpdate builder.
func (_u *FactEvaluationUpdateOne) Where(ps ...predicate.FactEvaluation) *FactEvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FactEvaluationUpdateOne) Select(field string, fields ...string) *FactEvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FactEvaluation entity.
func (_u *FactEvaluationUpdateOne) Save(ctx context.Context) (*FactEvaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FactEvaluationUpdateOne) SaveX(ctx context.Context) *FactEvaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FactEvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FactEvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FactEvaluationUpdateOne) check() error {
	if v, ok := _u.mutation.Result(); ok {
		if err := factevaluation.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "FactEvaluation.result": %w`, err)}
		}
	}
	if _u.mutation.FactCleared() && len(_u.mutation.FactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FactEvaluation.fact"`)
	}
	return nil
}

func (_u *FactEvaluationUpdateOne) sqlSave(ctx context.Context) (_node *FactEvaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(factevaluation.Table, factevaluation.Columns, sqlgraph.NewFieldSpec(factevaluation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FactEvaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, factevaluation.FieldID)
		for _, f := range fields {
			if !factevaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != factevaluation.FieldID {
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
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(factevaluation.FieldResult, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EvidenceText(); ok {
		_spec.SetField(factevaluation.FieldEvidenceText, field.TypeString, value)
	}
	if _u.mutation.EvidenceTextCleared() {
		_spec.ClearField(factevaluation.FieldEvidenceText, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceTier(); ok {
		_spec.SetField(factevaluation.FieldEvidenceTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceTier(); ok {
		_spec.AddField(factevaluation.FieldEvidenceTier, field.TypeInt, value)
	}
	if _u.mutation.EvidenceTierCleared() {
		_spec.ClearField(factevaluation.FieldEvidenceTier, field.TypeInt)
	}
	if value, ok := _u.mutation.DataPeriod(); ok {
		_spec.SetField(factevaluation.FieldDataPeriod, field.TypeString, value)
	}
	if _u.mutation.DataPeriodCleared() {
		_spec.ClearField(factevaluation.FieldDataPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.EvaluatorNotes(); ok {
		_spec.SetField(factevaluation.FieldEvaluatorNotes, field.TypeString, value)
	}
	if _u.mutation.EvaluatorNotesCleared() {
		_spec.ClearField(factevaluation.FieldEvaluatorNotes, field.TypeString)
	}
	if value, ok := _u.mutation.EvaluatedAt(); ok {
		_spec.SetField(factevaluation.FieldEvaluatedAt, field.TypeTime, value)
	}
	if _u.mutation.FactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   factevaluation.FactTable,
			Columns: []string{factevaluation.FactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   factevaluation.FactTable,
			Columns: []string{factevaluation.FactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FactEvaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{factevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
