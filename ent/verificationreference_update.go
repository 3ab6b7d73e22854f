// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/verificationreference"
)

// VerificationReferenceUpdate is the builder for updating VerificationReference entities.
type VerificationReferenceUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationReferenceMutation
}

// Where appends a list predicates to the VerificationReferenceUpdate builder.
func (_u *VerificationReferenceUpdate) Where(ps ...predicate.VerificationReference) *VerificationReferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFactID sets the "fact_id" field.
func (_u *VerificationReferenceUpdate) SetFactID(v int) *VerificationReferenceUpdate {
	_u.mutation.SetFactID(v)
	return _u
}

// SetNillableFactID sets the "fact_id" field if the given value is not nil.
func (_u *VerificationReferenceUpdate) SetNillableFactID(v *int) *VerificationReferenceUpdate {
	if v != nil {
		_u.SetFactID(*v)
	}
	return _u
}

// SetOrganization sets the "organization" field.
func (_u *VerificationReferenceUpdate) SetOrganization(v string) *VerificationReferenceUpdate {
	_u.mutation.SetOrganization(v)
	return _u
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_u *VerificationReferenceUpdate) SetNillableOrganization(v *string) *VerificationReferenceUpdate {
	if v != nil {
		_u.SetOrganization(*v)
	}
	return _u
}

// SetDataDescription sets the "data_description" field.
func (_u *VerificationReferenceUpdate) SetDataDescription(v string) *VerificationReferenceUpdate {
	_u.mutation.SetDataDescription(v)
	return _u
}

// SetNillableDataDescription sets the "data_description" field if the given value is not nil.
func (_u *VerificationReferenceUpdate) SetNillableDataDescription(v *string) *VerificationReferenceUpdate {
	if v != nil {
		_u.SetDataDescription(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *VerificationReferenceUpdate) SetURL(v string) *VerificationReferenceUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *VerificationReferenceUpdate) SetNillableURL(v *string) *VerificationReferenceUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *VerificationReferenceUpdate) ClearURL() *VerificationReferenceUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetURLNote sets the "url_note" field.
func (_u *VerificationReferenceUpdate) SetURLNote(v string) *VerificationReferenceUpdate {
	_u.mutation.SetURLNote(v)
	return _u
}

// SetNillableURLNote sets the "url_note" field if the given value is not nil.
func (_u *VerificationReferenceUpdate) SetNillableURLNote(v *string) *VerificationReferenceUpdate {
	if v != nil {
		_u.SetURLNote(*v)
	}
	return _u
}

// ClearURLNote clears the value of the "url_note" field.
func (_u *VerificationReferenceUpdate) ClearURLNote() *VerificationReferenceUpdate {
	_u.mutation.ClearURLNote()
	return _u
}

// SetFact sets the "fact" edge to the Fact entity.
func (_u *VerificationReferenceUpdate) SetFact(v *Fact) *VerificationReferenceUpdate {
	return _u.SetFactID(v.ID)
}

// Mutation returns the VerificationReferenceMutation object of the builder.
func (_u *VerificationReferenceUpdate) Mutation() *VerificationReferenceMutation {
	return _u.mutation
}

// ClearFact clears the "fact" edge to the Fact entity.
func (_u *VerificationReferenceUpdate) ClearFact() *VerificationReferenceUpdate {
	_u.mutation.ClearFact()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationReferenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationReferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationReferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationReferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationReferenceUpdate) check() error {
	if _u.mutation.FactCleared() && len(_u.mutation.FactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationReference.fact"`)
	}
	return nil
}

func (_u *VerificationReferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationreference.Table, verificationreference.Columns, sqlgraph.NewFieldSpec(verificationreference.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Organization(); ok {
		_spec.SetField(verificationreference.FieldOrganization, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataDescription(); ok {
		_spec.SetField(verificationreference.FieldDataDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(verificationreference.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(verificationreference.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.URLNote(); ok {
		_spec.SetField(verificationreference.FieldURLNote, field.TypeString, value)
	}
	if _u.mutation.URLNoteCleared() {
		_spec.ClearField(verificationreference.FieldURLNote, field.TypeString)
	}
	if _u.mutation.FactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationreference.FactTable,
			Columns: []string{verificationreference.FactColumn},
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
			Table:   verificationreference.FactTable,
			Columns: []string{verificationreference.FactColumn},
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
			err = &NotFoundError{verificationreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationReferenceUpdateOne is the builder for updating a single VerificationReference entity.
type VerificationReferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationReferenceMutation
}

// SetFactID sets the "fact_id" field.
func (_u *VerificationReferenceUpdateOne) SetFactID(v int) *VerificationReferenceUpdateOne {
	_u.mutation.SetFactID(v)
	return _u
}

// SetNillableFactID sets the "fact_id" field if the given value is not nil.
func (_u *VerificationReferenceUpdateOne) SetNillableFactID(v *int) *VerificationReferenceUpdateOne {
	if v != nil {
		_u.SetFactID(*v)
	}
	return _u
}

// SetOrganization sets the "organization" field.
func (_u *VerificationReferenceUpdateOne) SetOrganization(v string) *VerificationReferenceUpdateOne {
	_u.mutation.SetOrganization(v)
	return _u
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_u *VerificationReferenceUpdateOne) SetNillableOrganization(v *string) *VerificationReferenceUpdateOne {
	if v != nil {
		_u.SetOrganization(*v)
	}
	return _u
}

// SetDataDescription sets the "data_description" field.
func (_u *VerificationReferenceUpdateOne) SetDataDescription(v string) *VerificationReferenceUpdateOne {
	_u.mutation.SetDataDescription(v)
	return _u
}

// SetNillableDataDescription sets the "data_description" field if the given value is not nil.
func (_u *VerificationReferenceUpdateOne) SetNillableDataDescription(v *string) *VerificationReferenceUpdateOne {
	if v != nil {
		_u.SetDataDescription(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *VerificationReferenceUpdateOne) SetURL(v string) *VerificationReferenceUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *VerificationReferenceUpdateOne) SetNillableURL(v *string) *VerificationReferenceUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *VerificationReferenceUpdateOne) ClearURL() *VerificationReferenceUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetURLNote sets the "url_note" field.
func (_u *VerificationReferenceUpdateOne) SetURLNote(v string) *VerificationReferenceUpdateOne {
	_u.mutation.SetURLNote(v)
	return _u
}

// SetNillableURLNote sets the "url_note" field if the given value is not nil.
func (_u *VerificationReferenceUpdateOne) SetNillableURLNote(v *string) *VerificationReferenceUpdateOne {
	if v != nil {
		_u.SetURLNote(*v)
	}
	return _u
}

// ClearURLNote clears the value of the "url_note" field.
func (_u *VerificationReferenceUpdateOne) ClearURLNote() *VerificationReferenceUpdateOne {
	_u.mutation.ClearURLNote()
	return _u
}

// SetFact sets the "fact" edge to the Fact entity.
func (_u *VerificationReferenceUpdateOne) SetFact(v *Fact) *VerificationReferenceUpdateOne {
	return _u.SetFactID(v.ID)
}

// Mutation returns the VerificationReferenceMutation object of the builder.
func (_u *VerificationReferenceUpdateOne) Mutation() *VerificationReferenceMutation {
	return _u.mutation
}

// ClearFact clears the "fact" edge to the Fact entity.
func (_u *VerificationReferenceUpdateOne) ClearFact() *VerificationReferenceUpdateOne {
	_u.mutation.ClearFact()
	return _u
}

// Where appends a list predicates to the VerificationReferenceUpdate builder.
func (_u *VerificationReferenceUpdateOne) Where(ps ...predicate.VerificationReference) *VerificationReferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationReferenceUpdateOne) Select(field string, fields ...string) *VerificationReferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationReference entity.
func (_u *VerificationReferenceUpdateOne) Save(ctx context.Context) (*VerificationReference, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationReferenceUpdateOne) SaveX(ctx context.Context) *VerificationReference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationReferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationReferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationReferenceUpdateOne) check() error {
	if _u.mutation.FactCleared() && len(_u.mutation.FactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationReference.fact"`)
	}
	return nil
}

func (_u *VerificationReferenceUpdateOne) sqlSave(ctx context.Context) (_node *VerificationReference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationreference.Table, verificationreference.Columns, sqlgraph.NewFieldSpec(verificationreference.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationReference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationreference.FieldID)
		for _, f := range fields {
			if !verificationreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationreference.FieldID {
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
	if value, ok := _u.mutation.Organization(); ok {
		_spec.SetField(verificationreference.FieldOrganization, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataDescription(); ok {
		_spec.SetField(verificationreference.FieldDataDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(verificationreference.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(verificationreference.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.URLNote(); ok {
		_spec.SetField(verificationreference.FieldURLNote, field.TypeString, value)
	}
	if _u.mutation.URLNoteCleared() {
		_spec.ClearField(verificationreference.FieldURLNote, field.TypeString)
	}
	if _u.mutation.FactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationreference.FactTable,
			Columns: []string{verificationreference.FactColumn},
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
			Table:   verificationreference.FactTable,
			Columns: []string{verificationreference.FactColumn},
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
	_node = &VerificationReference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
