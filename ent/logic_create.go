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
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/logicrelation"
	"github.com/credlens/pundit/ent/rawpost"
	"github.com/credlens/pundit/ent/solution"
)

// LogicCreate is the builder for creating a Logic entity.
type LogicCreate struct {
	config
	mutation *LogicMutation
	hooks    []Hook
}

// SetLogicType sets the "logic_type" field.
func (_c *LogicCreate) SetLogicType(v logic.LogicType) *LogicCreate {
	_c.mutation.SetLogicType(v)
	return _c
}

// SetNillableLogicType sets the "logic_type" field if the given value is not nil.
func (_c *LogicCreate) SetNillableLogicType(v *logic.LogicType) *LogicCreate {
	if v != nil {
		_c.SetLogicType(*v)
	}
	return _c
}

// SetConclusionID sets the "conclusion_id" field.
func (_c *LogicCreate) SetConclusionID(v int) *LogicCreate {
	_c.mutation.SetConclusionID(v)
	return _c
}

// SetNillableConclusionID sets the "conclusion_id" field if the given value is not nil.
func (_c *LogicCreate) SetNillableConclusionID(v *int) *LogicCreate {
	if v != nil {
		_c.SetConclusionID(*v)
	}
	return _c
}

// SetSolutionID sets the "solution_id" field.
func (_c *LogicCreate) SetSolutionID(v int) *LogicCreate {
	_c.mutation.SetSolutionID(v)
	return _c
}

// SetNillableSolutionID sets the "solution_id" field if the given value is not nil.
func (_c *LogicCreate) SetNillableSolutionID(v *int) *LogicCreate {
	if v != nil {
		_c.SetSolutionID(*v)
	}
	return _c
}

// SetRawPostID sets the "raw_post_id" field.
func (_c *LogicCreate) SetRawPostID(v int) *LogicCreate {
	_c.mutation.SetRawPostID(v)
	return _c
}

// SetNillableRawPostID sets the "raw_post_id" field if the given value is not nil.
func (_c *LogicCreate) SetNillableRawPostID(v *int) *LogicCreate {
	if v != nil {
		_c.SetRawPostID(*v)
	}
	return _c
}

// SetSupportingFactIds sets the "supporting_fact_ids" field.
func (_c *LogicCreate) SetSupportingFactIds(v []int) *LogicCreate {
	_c.mutation.SetSupportingFactIds(v)
	return _c
}

// SetAssumptionFactIds sets the "assumption_fact_ids" field.
func (_c *LogicCreate) SetAssumptionFactIds(v []int) *LogicCreate {
	_c.mutation.SetAssumptionFactIds(v)
	return _c
}

// SetSourceConclusionIds sets the "source_conclusion_ids" field.
func (_c *LogicCreate) SetSourceConclusionIds(v []int) *LogicCreate {
	_c.mutation.SetSourceConclusionIds(v)
	return _c
}

// SetLogicCompleteness sets the "logic_completeness" field.
func (_c *LogicCreate) SetLogicCompleteness(v logic.LogicCompleteness) *LogicCreate {
	_c.mutation.SetLogicCompleteness(v)
	return _c
}

// SetNillableLogicCompleteness sets the "logic_completeness" field if the given value is not nil.
func (_c *LogicCreate) SetNillableLogicCompleteness(v *logic.LogicCompleteness) *LogicCreate {
	if v != nil {
		_c.SetLogicCompleteness(*v)
	}
	return _c
}

// SetLogicNote sets the "logic_note" field.
func (_c *LogicCreate) SetLogicNote(v string) *LogicCreate {
	_c.mutation.SetLogicNote(v)
	return _c
}

// SetNillableLogicNote sets the "logic_note" field if the given value is not nil.
func (_c *LogicCreate) SetNillableLogicNote(v *string) *LogicCreate {
	if v != nil {
		_c.SetLogicNote(*v)
	}
	return _c
}

// SetOneSentenceSummary sets the "one_sentence_summary" field.
func (_c *LogicCreate) SetOneSentenceSummary(v string) *LogicCreate {
	_c.mutation.SetOneSentenceSummary(v)
	return _c
}

// SetNillableOneSentenceSummary sets the "one_sentence_summary" field if the given value is not nil.
func (_c *LogicCreate) SetNillableOneSentenceSummary(v *string) *LogicCreate {
	if v != nil {
		_c.SetOneSentenceSummary(*v)
	}
	return _c
}

// SetAssessedAt sets the "assessed_at" field.
func (_c *LogicCreate) SetAssessedAt(v time.Time) *LogicCreate {
	_c.mutation.SetAssessedAt(v)
	return _c
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_c *LogicCreate) SetNillableAssessedAt(v *time.Time) *LogicCreate {
	if v != nil {
		_c.SetAssessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LogicCreate) SetCreatedAt(v time.Time) *LogicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LogicCreate) SetNillableCreatedAt(v *time.Time) *LogicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetConclusion sets the "conclusion" edge to the Conclusion entity.
func (_c *LogicCreate) SetConclusion(v *Conclusion) *LogicCreate {
	return _c.SetConclusionID(v.ID)
}

// SetSolution sets the "solution" edge to the Solution entity.
func (_c *LogicCreate) SetSolution(v *Solution) *LogicCreate {
	return _c.SetSolutionID(v.ID)
}

// SetRawPost sets the "raw_post" edge to the RawPost entity.
func (_c *LogicCreate) SetRawPost(v *RawPost) *LogicCreate {
	return _c.SetRawPostID(v.ID)
}

// AddOutgoingRelationIDs adds the "outgoing_relations" edge to the LogicRelation entity by IDs.
func (_c *LogicCreate) AddOutgoingRelationIDs(ids ...int) *LogicCreate {
	_c.mutation.AddOutgoingRelationIDs(ids...)
	return _c
}

// AddOutgoingRelations adds the "outgoing_relations" edges to the LogicRelation entity.
func (_c *LogicCreate) AddOutgoingRelations(v ...*LogicRelation) *LogicCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutgoingRelationIDs(ids...)
}

// AddIncomingRelationIDs adds the "incoming_relations" edge to the LogicRelation entity by IDs.
func (_c *LogicCreate) AddIncomingRelationIDs(ids ...int) *LogicCreate {
	_c.mutation.AddIncomingRelationIDs(ids...)
	return _c
}

// AddIncomingRelations adds the "incoming_relations" edges to the LogicRelation entity.
func (_c *LogicCreate) AddIncomingRelations(v ...*LogicRelation) *LogicCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIncomingRelationIDs(ids...)
}

// Mutation returns the LogicMutation object of the builder.
func (_c *LogicCreate) Mutation() *LogicMutation {
	return _c.mutation
}

// Save creates the Logic in the database.
func (_c *LogicCreate) Save(ctx context.Context) (*Logic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LogicCreate) SaveX(ctx context.Context) *Logic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LogicCreate) defaults() {
	if _, ok := _c.mutation.LogicType(); !ok {
		v := logic.DefaultLogicType
		_c.mutation.SetLogicType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := logic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LogicCreate) check() error {
	if _, ok := _c.mutation.LogicType(); !ok {
		return &ValidationError{Name: "logic_type", err: errors.New(`ent: missing required field "Logic.logic_type"`)}
	}
	if v, ok := _c.mutation.LogicType(); ok {
		if err := logic.LogicTypeValidator(v); err != nil {
			return &ValidationError{Name: "logic_type", err: fmt.Errorf(`ent: validator failed for field "Logic.logic_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LogicCompleteness(); ok {
		if err := logic.LogicCompletenessValidator(v); err != nil {
			return &ValidationError{Name: "logic_completeness", err: fmt.Errorf(`ent: validator failed for field "Logic.logic_completeness": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Logic.created_at"`)}
	}
	return nil
}

func (_c *LogicCreate) sqlSave(ctx context.Context) (*Logic, error) {
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

func (_c *LogicCreate) createSpec() (*Logic, *sqlgraph.CreateSpec) {
	var (
		_node = &Logic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(logic.Table, sqlgraph.NewFieldSpec(logic.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LogicType(); ok {
		_spec.SetField(logic.FieldLogicType, field.TypeEnum, value)
		_node.LogicType = value
	}
	if value, ok := _c.mutation.SupportingFactIds(); ok {
		_spec.SetField(logic.FieldSupportingFactIds, field.TypeJSON, value)
		_node.SupportingFactIds = value
	}
	if value, ok := _c.mutation.AssumptionFactIds(); ok {
		_spec.SetField(logic.FieldAssumptionFactIds, field.TypeJSON, value)
		_node.AssumptionFactIds = value
	}
	if value, ok := _c.mutation.SourceConclusionIds(); ok {
		_spec.SetField(logic.FieldSourceConclusionIds, field.TypeJSON, value)
		_node.SourceConclusionIds = value
	}
	if value, ok := _c.mutation.LogicCompleteness(); ok {
		_spec.SetField(logic.FieldLogicCompleteness, field.TypeEnum, value)
		_node.LogicCompleteness = &value
	}
	if value, ok := _c.mutation.LogicNote(); ok {
		_spec.SetField(logic.FieldLogicNote, field.TypeString, value)
		_node.LogicNote = &value
	}
	if value, ok := _c.mutation.OneSentenceSummary(); ok {
		_spec.SetField(logic.FieldOneSentenceSummary, field.TypeString, value)
		_node.OneSentenceSummary = &value
	}
	if value, ok := _c.mutation.AssessedAt(); ok {
		_spec.SetField(logic.FieldAssessedAt, field.TypeTime, value)
		_node.AssessedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(logic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ConclusionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logic.ConclusionTable,
			Columns: []string{logic.ConclusionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConclusionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SolutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logic.SolutionTable,
			Columns: []string{logic.SolutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SolutionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RawPostIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logic.RawPostTable,
			Columns: []string{logic.RawPostColumn},
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
	if nodes := _c.mutation.OutgoingRelationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   logic.OutgoingRelationsTable,
			Columns: []string{logic.OutgoingRelationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logicrelation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IncomingRelationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   logic.IncomingRelationsTable,
			Columns: []string{logic.IncomingRelationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logicrelation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LogicCreateBulk is the builder for creating many Logic entities in bulk.
type LogicCreateBulk struct {
	config
	err      error
	builders []*LogicCreate
}

// Save creates the Logic entities in the database.
func (_c *LogicCreateBulk) Save(ctx context.Context) ([]*Logic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Logic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LogicMutation)
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
func (_c *LogicCreateBulk) SaveX(ctx context.Context) []*Logic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
