// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/verificationreference"
)

// VerificationReferenceCreate is the builder for creating a VerificationReference entity.
type VerificationReferenceCreate struct {
	config
	mutation *VerificationReferenceMutation
	hooks    []Hook
}

// SetFactID sets the "fact_id" field.
func (_c *VerificationReferenceCreate) SetFactID(v int) *VerificationReferenceCreate {
	_c.mutation.SetFactID(v)
	return _c
}

// SetOrganization sets the "organization" field.
func (_c *VerificationReferenceCreate) SetOrganization(v string) *VerificationReferenceCreate {
	_c.mutation.SetOrganization(v)
	return _c
}

// SetDataDescription sets the "data_description" field.
func (_c *VerificationReferenceCreate) SetDataDescription(v string) *VerificationReferenceCreate {
	_c.mutation.SetDataDescription(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *VerificationReferenceCreate) SetURL(v string) *VerificationReferenceCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *VerificationReferenceCreate) SetNillableURL(v *string) *VerificationReferenceCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetURLNote sets the "url_note" field.
func (_c *VerificationReferenceCreate) SetURLNote(v string) *VerificationReferenceCreate {
	_c.mutation.SetURLNote(v)
	return _c
}

// SetNillableURLNote sets the "url_note" field if the given value is not nil.
func (_c *VerificationReferenceCreate) SetNillableURLNote(v *string) *VerificationReferenceCreate {
	if v != nil {
		_c.SetURLNote(*v)
	}
	return _c
}

// SetFact sets the "fact" edge to the Fact entity.
func (_c *VerificationReferenceCreate) SetFact(v *Fact) *VerificationReferenceCreate {
	return _c.SetFactID(v.ID)
}

// Mutation returns the VerificationReferenceMutation object of the builder.
func (_c *VerificationReferenceCreate) Mutation() *VerificationReferenceMutation {
	return _c.mutation
}

// Save creates the VerificationReference in the database.
func (_c *VerificationReferenceCreate) Save(ctx context.Context) (*VerificationReference, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationReferenceCreate) SaveX(ctx context.Context) *VerificationReference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationReferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationReferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationReferenceCreate) check() error {
	if _, ok := _c.mutation.FactID(); !ok {
		return &ValidationError{Name: "fact_id", err: errors.New(`ent: missing required field "VerificationReference.fact_id"`)}
	}
	if _, ok := _c.mutation.Organization(); !ok {
		return &ValidationError{Name: "organization", err: errors.New(`ent: missing required field "VerificationReference.organization"`)}
	}
	if _, ok := _c.mutation.DataDescription(); !ok {
		return &ValidationError{Name: "data_description", err: errors.New(`ent: missing required field "VerificationReference.data_description"`)}
	}
	if len(_c.mutation.FactIDs()) == 0 {
		return &ValidationError{Name: "fact", err: errors.New(`ent: missing required edge "VerificationReference.fact"`)}
	}
	return nil
}

func (_c *VerificationReferenceCreate) sqlSave(ctx context.Context) (*VerificationReference, error) {
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

func (_c *VerificationReferenceCreate) createSpec() (*VerificationReference, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationReference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationreference.Table, sqlgraph.NewFieldSpec(verificationreference.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Organization(); ok {
		_spec.SetField(verificationreference.FieldOrganization, field.TypeString, value)
		_node.Organization = value
	}
	if value, ok := _c.mutation.DataDescription(); ok {
		_spec.SetField(verificationreference.FieldDataDescription, field.TypeString, value)
		_node.DataDescription = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(verificationreference.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.URLNote(); ok {
		_spec.SetField(verificationreference.FieldURLNote, field.TypeString, value)
		_node.URLNote = &value
	}
	if nodes := _c.mutation.FactIDs(); len(nodes) > 0 {
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
		_node.FactID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationReferenceCreateBulk is the builder for creating many VerificationReference entities in bulk.
type VerificationReferenceCreateBulk struct {
	config
	err      error
	builders []*VerificationReferenceCreate
}

// Save creates the VerificationReference entities in the database.
func (_c *VerificationReferenceCreateBulk) Save(ctx context.Context) ([]*VerificationReference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationReference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationReferenceMutation)
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
func (_c *VerificationReferenceCreateBulk) SaveX(ctx context.Context) []*VerificationReference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationReferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationReferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
