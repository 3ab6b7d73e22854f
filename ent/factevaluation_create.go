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
)

// FactEvaluationCreate is the builder for creating a FactEvaluation entity.
type FactEvaluationCreate struct {
	config
	mutation *FactEvaluationMutation
	hooks    []Hook
}

// SetFactID sets the "fact_id" field.
func (_c *FactEvaluationCreate) SetFactID(v int) *FactEvaluationCreate {
	_c.mutation.SetFactID(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *FactEvaluationCreate) SetResult(v factevaluation.Result) *FactEvaluationCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetEvidenceText sets the "evidence_text" field.
func (_c *FactEvaluationCreate) SetEvidenceText(v string) *FactEvaluationCreate {
	_c.mutation.SetEvidenceText(v)
	return _c
}

// SetNillableEvidenceText sets the "evidence_text" field if the given value is not nil.
func (_c *FactEvaluationCreate) SetNillableEvidenceText(v *string) *FactEvaluationCreate {
	if v != nil {
		_c.SetEvidenceText(*v)
	}
	return _c
}

// SetEvidenceTier sets the "evidence_tier" field.
func (_c *FactEvaluationCreate) SetEvidenceTier(v int) *FactEvaluationCreate {
	_c.mutation.SetEvidenceTier(v)
	return _c
}

// SetNillableEvidenceTier sets the "evidence_tier" field if the given value is not nil.
func (_c *FactEvaluationCreate) SetNillableEvidenceTier(v *int) *FactEvaluationCreate {
	if v != nil {
		_c.SetEvidenceTier(*v)
	}
	return _c
}

// SetDataPeriod sets the "data_period" field.
func (_c *FactEvaluationCreate) SetDataPeriod(v string) *FactEvaluationCreate {
	_c.mutation.SetDataPeriod(v)
	return _c
}

// SetNillableDataPeriod sets the "data_period" field if the given value is not nil.
func (_c *FactEvaluationCreate) SetNillableDataPeriod(v *string) *FactEvaluationCreate {
	if v != nil {
		_c.SetDataPeriod(*v)
	}
	return _c
}

// SetEvaluatorNotes sets the "evaluator_notes" field.
func (_c *FactEvaluationCreate) SetEvaluatorNotes(v string) *FactEvaluationCreate {
	_c.mutation.SetEvaluatorNotes(v)
	return _c
}

// SetNillableEvaluatorNotes sets the "evaluator_notes" field if the given value is not nil.
func (_c *FactEvaluationCreate) SetNillableEvaluatorNotes(v *string) *FactEvaluationCreate {
	if v != nil {
		_c.SetEvaluatorNotes(*v)
	}
	return _c
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_c *FactEvaluationCreate) SetEvaluatedAt(v time.Time) *FactEvaluationCreate {
	_c.mutation.SetEvaluatedAt(v)
	return _c
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_c *FactEvaluationCreate) SetNillableEvaluatedAt(v *time.Time) *FactEvaluationCreate {
	if v != nil {
		_c.SetEvaluatedAt(*v)
	}
	return _c
}

// SetFact sets the "fact" edge to the Fact entity.
func (_c *FactEvaluationCreate) SetFact(v *Fact) *FactEvaluationCreate {
	return _c.SetFactID(v.ID)
}

// Mutation returns the FactEvaluationMutation object of the builder.
func (_c *FactEvaluationCreate) Mutation() *FactEvaluationMutation {
	return _c.mutation
}

// Save creates the FactEvaluation in the database.
func (_c *FactEvaluationCreate) Save(ctx context.Context) (*FactEvaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FactEvaluationCreate) SaveX(ctx context.Context) *FactEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FactEvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FactEvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FactEvaluationCreate) defaults() {
	if _, ok := _c.mutation.EvaluatedAt(); !ok {
		v := factevaluation.DefaultEvaluatedAt()
		_c.mutation.SetEvaluatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FactEvaluationCreate) check() error {
	if _, ok := _c.mutation.FactID(); !ok {
		return &ValidationError{Name: "fact_id", err: errors.New(`ent: missing required field "FactEvaluation.fact_id"`)}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "FactEvaluation.result"`)}
	}
	if v, ok := _c.mutation.Result(); ok {
		if err := factevaluation.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "FactEvaluation.result": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EvaluatedAt(); !ok {
		return &ValidationError{Name: "evaluated_at", err: errors.New(`ent: missing required field "FactEvaluation.evaluated_at"`)}
	}
	if len(_c.mutation.FactIDs()) == 0 {
		return &ValidationError{Name: "fact", err: errors.New(`ent: missing required edge "FactEvaluation.fact"`)}
	}
	return nil
}

func (_c *FactEvaluationCreate) sqlSave(ctx context.Context) (*FactEvaluation, error) {
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

func (_c *FactEvaluationCreate) createSpec() (*FactEvaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &FactEvaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(factevaluation.Table, sqlgraph.NewFieldSpec(factevaluation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(factevaluation.FieldResult, field.TypeEnum, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.EvidenceText(); ok {
		_spec.SetField(factevaluation.FieldEvidenceText, field.TypeString, value)
		_node.EvidenceText = &value
	}
	if value, ok := _c.mutation.EvidenceTier(); ok {
		_spec.SetField(factevaluation.FieldEvidenceTier, field.TypeInt, value)
		_node.EvidenceTier = &value
	}
	if value, ok := _c.mutation.DataPeriod(); ok {
		_spec.SetField(factevaluation.FieldDataPeriod, field.TypeString, value)
		_node.DataPeriod = &value
	}
	if value, ok := _c.mutation.EvaluatorNotes(); ok {
		_spec.SetField(factevaluation.FieldEvaluatorNotes, field.TypeString, value)
		_node.EvaluatorNotes = &value
	}
	if value, ok := _c.mutation.EvaluatedAt(); ok {
		_spec.SetField(factevaluation.FieldEvaluatedAt, field.TypeTime, value)
		_node.EvaluatedAt = value
	}
	if nodes := _c.mutation.FactIDs(); len(nodes) > 0 {
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
		_node.FactID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FactEvaluationCreateBulk is the builder for creating many FactEvaluation entities in bulk.
type FactEvaluationCreateBulk struct {
	config
	err      error
	builders []*FactEvaluationCreate
}

// Save creates the FactEvaluation entities in the database.
func (_c *FactEvaluationCreateBulk) Save(ctx context.Context) ([]*FactEvaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FactEvaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FactEvaluationMutation)
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
func (_c *FactEvaluationCreateBulk) SaveX(ctx context.Context) []*FactEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FactEvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FactEvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
