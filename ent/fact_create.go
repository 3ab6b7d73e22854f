// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/ent/rawpost"
	"github.com/credlens/pundit/ent/verificationreference"
)

// FactCreate is the builder for creating a Fact entity.
type FactCreate struct {
	config
	mutation *FactMutation
	hooks    []Hook
}

// SetClaim sets the "claim" field.
func (_c *FactCreate) SetClaim(v string) *FactCreate {
	_c.mutation.SetClaim(v)
	return _c
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (_c *FactCreate) SetCanonicalClaim(v string) *FactCreate {
	_c.mutation.SetCanonicalClaim(v)
	return _c
}

// SetNillableCanonicalClaim sets the "canonical_claim" field if the given value is not nil.
func (_c *FactCreate) SetNillableCanonicalClaim(v *string) *FactCreate {
	if v != nil {
		_c.SetCanonicalClaim(*v)
	}
	return _c
}

// SetVerifiableExpression sets the "verifiable_expression" field.
func (_c *FactCreate) SetVerifiableExpression(v string) *FactCreate {
	_c.mutation.SetVerifiableExpression(v)
	return _c
}

// SetNillableVerifiableExpression sets the "verifiable_expression" field if the given value is not nil.
func (_c *FactCreate) SetNillableVerifiableExpression(v *string) *FactCreate {
	if v != nil {
		_c.SetVerifiableExpression(*v)
	}
	return _c
}

// SetIsVerifiable sets the "is_verifiable" field.
func (_c *FactCreate) SetIsVerifiable(v bool) *FactCreate {
	_c.mutation.SetIsVerifiable(v)
	return _c
}

// SetNillableIsVerifiable sets the "is_verifiable" field if the given value is not nil.
func (_c *FactCreate) SetNillableIsVerifiable(v *bool) *FactCreate {
	if v != nil {
		_c.SetIsVerifiable(*v)
	}
	return _c
}

// SetVerificationMethod sets the "verification_method" field.
func (_c *FactCreate) SetVerificationMethod(v string) *FactCreate {
	_c.mutation.SetVerificationMethod(v)
	return _c
}

// SetNillableVerificationMethod sets the "verification_method" field if the given value is not nil.
func (_c *FactCreate) SetNillableVerificationMethod(v *string) *FactCreate {
	if v != nil {
		_c.SetVerificationMethod(*v)
	}
	return _c
}

// SetValidityStartNote sets the "validity_start_note" field.
func (_c *FactCreate) SetValidityStartNote(v string) *FactCreate {
	_c.mutation.SetValidityStartNote(v)
	return _c
}

// SetNillableValidityStartNote sets the "validity_start_note" field if the given value is not nil.
func (_c *FactCreate) SetNillableValidityStartNote(v *string) *FactCreate {
	if v != nil {
		_c.SetValidityStartNote(*v)
	}
	return _c
}

// SetValidityEndNote sets the "validity_end_note" field.
func (_c *FactCreate) SetValidityEndNote(v string) *FactCreate {
	_c.mutation.SetValidityEndNote(v)
	return _c
}

// SetNillableValidityEndNote sets the "validity_end_note" field if the given value is not nil.
func (_c *FactCreate) SetNillableValidityEndNote(v *string) *FactCreate {
	if v != nil {
		_c.SetValidityEndNote(*v)
	}
	return _c
}

// SetValidityStart sets the "validity_start" field.
func (_c *FactCreate) SetValidityStart(v time.Time) *FactCreate {
	_c.mutation.SetValidityStart(v)
	return _c
}

// SetNillableValidityStart sets the "validity_start" field if the given value is not nil.
func (_c *FactCreate) SetNillableValidityStart(v *time.Time) *FactCreate {
	if v != nil {
		_c.SetValidityStart(*v)
	}
	return _c
}

// SetValidityEnd sets the "validity_end" field.
func (_c *FactCreate) SetValidityEnd(v time.Time) *FactCreate {
	_c.mutation.SetValidityEnd(v)
	return _c
}

// SetNillableValidityEnd sets the "validity_end" field if the given value is not nil.
func (_c *FactCreate) SetNillableValidityEnd(v *time.Time) *FactCreate {
	if v != nil {
		_c.SetValidityEnd(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FactCreate) SetStatus(v fact.Status) *FactCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FactCreate) SetNillableStatus(v *fact.Status) *FactCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVerifiedAt sets the "verified_at" field.
func (_c *FactCreate) SetVerifiedAt(v time.Time) *FactCreate {
	_c.mutation.SetVerifiedAt(v)
	return _c
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_c *FactCreate) SetNillableVerifiedAt(v *time.Time) *FactCreate {
	if v != nil {
		_c.SetVerifiedAt(*v)
	}
	return _c
}

// SetVerificationEvidence sets the "verification_evidence" field.
func (_c *FactCreate) SetVerificationEvidence(v string) *FactCreate {
	_c.mutation.SetVerificationEvidence(v)
	return _c
}

// SetNillableVerificationEvidence sets the "verification_evidence" field if the given value is not nil.
func (_c *FactCreate) SetNillableVerificationEvidence(v *string) *FactCreate {
	if v != nil {
		_c.SetVerificationEvidence(*v)
	}
	return _c
}

// SetVerifiedSourceOrg sets the "verified_source_org" field.
func (_c *FactCreate) SetVerifiedSourceOrg(v string) *FactCreate {
	_c.mutation.SetVerifiedSourceOrg(v)
	return _c
}

// SetNillableVerifiedSourceOrg sets the "verified_source_org" field if the given value is not nil.
func (_c *FactCreate) SetNillableVerifiedSourceOrg(v *string) *FactCreate {
	if v != nil {
		_c.SetVerifiedSourceOrg(*v)
	}
	return _c
}

// SetVerifiedSourceURL sets the "verified_source_url" field.
func (_c *FactCreate) SetVerifiedSourceURL(v string) *FactCreate {
	_c.mutation.SetVerifiedSourceURL(v)
	return _c
}

// SetNillableVerifiedSourceURL sets the "verified_source_url" field if the given value is not nil.
func (_c *FactCreate) SetNillableVerifiedSourceURL(v *string) *FactCreate {
	if v != nil {
		_c.SetVerifiedSourceURL(*v)
	}
	return _c
}

// SetVerifiedSourceData sets the "verified_source_data" field.
func (_c *FactCreate) SetVerifiedSourceData(v string) *FactCreate {
	_c.mutation.SetVerifiedSourceData(v)
	return _c
}

// SetNillableVerifiedSourceData sets the "verified_source_data" field if the given value is not nil.
func (_c *FactCreate) SetNillableVerifiedSourceData(v *string) *FactCreate {
	if v != nil {
		_c.SetVerifiedSourceData(*v)
	}
	return _c
}

// SetRawPostID sets the "raw_post_id" field.
func (_c *FactCreate) SetRawPostID(v int) *FactCreate {
	_c.mutation.SetRawPostID(v)
	return _c
}

// SetNillableRawPostID sets the "raw_post_id" field if the given value is not nil.
func (_c *FactCreate) SetNillableRawPostID(v *int) *FactCreate {
	if v != nil {
		_c.SetRawPostID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FactCreate) SetCreatedAt(v time.Time) *FactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FactCreate) SetNillableCreatedAt(v *time.Time) *FactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRawPost sets the "raw_post" edge to the RawPost entity.
func (_c *FactCreate) SetRawPost(v *RawPost) *FactCreate {
	return _c.SetRawPostID(v.ID)
}

// AddReferenceIDs adds the "references" edge to the VerificationReference entity by IDs.
func (_c *FactCreate) AddReferenceIDs(ids ...int) *FactCreate {
	_c.mutation.AddReferenceIDs(ids...)
	return _c
}

// AddReferences adds the "references" edges to the VerificationReference entity.
func (_c *FactCreate) AddReferences(v ...*VerificationReference) *FactCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReferenceIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the FactEvaluation entity by IDs.
func (_c *FactCreate) AddEvaluationIDs(ids ...int) *FactCreate {
	_c.mutation.AddEvaluationIDs(ids...)
	return _c
}

// AddEvaluations adds the "evaluations" edges to the FactEvaluation entity.
func (_c *FactCreate) AddEvaluations(v ...*FactEvaluation) *FactCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvaluationIDs(ids...)
}

// Mutation returns the FactMutation object of the builder.
func (_c *FactCreate) Mutation() *FactMutation {
	return _c.mutation
}

// Save creates the Fact in the database.
func (_c *FactCreate) Save(ctx context.Context) (*Fact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FactCreate) SaveX(ctx context.Context) *Fact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FactCreate) defaults() {
	if _, ok := _c.mutation.IsVerifiable(); !ok {
		v := fact.DefaultIsVerifiable
		_c.mutation.SetIsVerifiable(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := fact.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FactCreate) check() error {
	if _, ok := _c.mutation.Claim(); !ok {
		return &ValidationError{Name: "claim", err: errors.New(`ent: missing required field "Fact.claim"`)}
	}
	if _, ok := _c.mutation.IsVerifiable(); !ok {
		return &ValidationError{Name: "is_verifiable", err: errors.New(`ent: missing required field "Fact.is_verifiable"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Fact.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Fact.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Fact.created_at"`)}
	}
	return nil
}

func (_c *FactCreate) sqlSave(ctx context.Context) (*Fact, error) {
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

func (_c *FactCreate) createSpec() (*Fact, *sqlgraph.CreateSpec) {
	var (
		_node = &Fact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fact.Table, sqlgraph.NewFieldSpec(fact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Claim(); ok {
		_spec.SetField(fact.FieldClaim, field.TypeString, value)
		_node.Claim = value
	}
	if value, ok := _c.mutation.CanonicalClaim(); ok {
		_spec.SetField(fact.FieldCanonicalClaim, field.TypeString, value)
		_node.CanonicalClaim = &value
	}
	if value, ok := _c.mutation.VerifiableExpression(); ok {
		_spec.SetField(fact.FieldVerifiableExpression, field.TypeString, value)
		_node.VerifiableExpression = &value
	}
	if value, ok := _c.mutation.IsVerifiable(); ok {
		_spec.SetField(fact.FieldIsVerifiable, field.TypeBool, value)
		_node.IsVerifiable = value
	}
	if value, ok := _c.mutation.VerificationMethod(); ok {
		_spec.SetField(fact.FieldVerificationMethod, field.TypeString, value)
		_node.VerificationMethod = &value
	}
	if value, ok := _c.mutation.ValidityStartNote(); ok {
		_spec.SetField(fact.FieldValidityStartNote, field.TypeString, value)
		_node.ValidityStartNote = &value
	}
	if value, ok := _c.mutation.ValidityEndNote(); ok {
		_spec.SetField(fact.FieldValidityEndNote, field.TypeString, value)
		_node.ValidityEndNote = &value
	}
	if value, ok := _c.mutation.ValidityStart(); ok {
		_spec.SetField(fact.FieldValidityStart, field.TypeTime, value)
		_node.ValidityStart = &value
	}
	if value, ok := _c.mutation.ValidityEnd(); ok {
		_spec.SetField(fact.FieldValidityEnd, field.TypeTime, value)
		_node.ValidityEnd = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fact.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.VerifiedAt(); ok {
		_spec.SetField(fact.FieldVerifiedAt, field.TypeTime, value)
		_node.VerifiedAt = &value
	}
	if value, ok := _c.mutation.VerificationEvidence(); ok {
		_spec.SetField(fact.FieldVerificationEvidence, field.TypeString, value)
		_node.VerificationEvidence = &value
	}
	if value, ok := _c.mutation.VerifiedSourceOrg(); ok {
		_spec.SetField(fact.FieldVerifiedSourceOrg, field.TypeString, value)
		_node.VerifiedSourceOrg = &value
	}
	if value, ok := _c.mutation.VerifiedSourceURL(); ok {
		_spec.SetField(fact.FieldVerifiedSourceURL, field.TypeString, value)
		_node.VerifiedSourceURL = &value
	}
	if value, ok := _c.mutation.VerifiedSourceData(); ok {
		_spec.SetField(fact.FieldVerifiedSourceData, field.TypeString, value)
		_node.VerifiedSourceData = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RawPostIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fact.RawPostTable,
			Columns: []string{fact.RawPostColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawpost.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RawPostID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.ReferencesTable,
			Columns: []string{fact.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationreference.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.EvaluationsTable,
			Columns: []string{fact.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(factevaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FactCreateBulk is the builder for creating many Fact entities in bulk.
type FactCreateBulk struct {
	config
	err      error
	builders []*FactCreate
}

// Save creates the Fact entities in the database.
func (_c *FactCreateBulk) Save(ctx context.Context) ([]*Fact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Fact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FactMutation)
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
func (_c *FactCreateBulk) SaveX(ctx context.Context) []*Fact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
