// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/ent/topic"
)

// SolutionCreate is the builder for creating a Solution entity.
type SolutionCreate struct {
	config
	mutation *SolutionMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (_c *SolutionCreate) SetTopicID(v int) *SolutionCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableTopicID(v *int) *SolutionCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *SolutionCreate) SetAuthorID(v int) *SolutionCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetClaim sets the "claim" field.
func (_c *SolutionCreate) SetClaim(v string) *SolutionCreate {
	_c.mutation.SetClaim(v)
	return _c
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (_c *SolutionCreate) SetCanonicalClaim(v string) *SolutionCreate {
	_c.mutation.SetCanonicalClaim(v)
	return _c
}

// SetNillableCanonicalClaim sets the "canonical_claim" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableCanonicalClaim(v *string) *SolutionCreate {
	if v != nil {
		_c.SetCanonicalClaim(*v)
	}
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *SolutionCreate) SetActionType(v solution.ActionType) *SolutionCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableActionType(v *solution.ActionType) *SolutionCreate {
	if v != nil {
		_c.SetActionType(*v)
	}
	return _c
}

// SetActionTarget sets the "action_target" field.
func (_c *SolutionCreate) SetActionTarget(v string) *SolutionCreate {
	_c.mutation.SetActionTarget(v)
	return _c
}

// SetNillableActionTarget sets the "action_target" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableActionTarget(v *string) *SolutionCreate {
	if v != nil {
		_c.SetActionTarget(*v)
	}
	return _c
}

// SetActionRationale sets the "action_rationale" field.
func (_c *SolutionCreate) SetActionRationale(v string) *SolutionCreate {
	_c.mutation.SetActionRationale(v)
	return _c
}

// SetNillableActionRationale sets the "action_rationale" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableActionRationale(v *string) *SolutionCreate {
	if v != nil {
		_c.SetActionRationale(*v)
	}
	return _c
}

// SetSimulatedActionNote sets the "simulated_action_note" field.
func (_c *SolutionCreate) SetSimulatedActionNote(v string) *SolutionCreate {
	_c.mutation.SetSimulatedActionNote(v)
	return _c
}

// SetNillableSimulatedActionNote sets the "simulated_action_note" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableSimulatedActionNote(v *string) *SolutionCreate {
	if v != nil {
		_c.SetSimulatedActionNote(*v)
	}
	return _c
}

// SetMonitoringSourceOrg sets the "monitoring_source_org" field.
func (_c *SolutionCreate) SetMonitoringSourceOrg(v string) *SolutionCreate {
	_c.mutation.SetMonitoringSourceOrg(v)
	return _c
}

// SetNillableMonitoringSourceOrg sets the "monitoring_source_org" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableMonitoringSourceOrg(v *string) *SolutionCreate {
	if v != nil {
		_c.SetMonitoringSourceOrg(*v)
	}
	return _c
}

// SetMonitoringSourceURL sets the "monitoring_source_url" field.
func (_c *SolutionCreate) SetMonitoringSourceURL(v string) *SolutionCreate {
	_c.mutation.SetMonitoringSourceURL(v)
	return _c
}

// SetNillableMonitoringSourceURL sets the "monitoring_source_url" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableMonitoringSourceURL(v *string) *SolutionCreate {
	if v != nil {
		_c.SetMonitoringSourceURL(*v)
	}
	return _c
}

// SetMonitoringPeriodNote sets the "monitoring_period_note" field.
func (_c *SolutionCreate) SetMonitoringPeriodNote(v string) *SolutionCreate {
	_c.mutation.SetMonitoringPeriodNote(v)
	return _c
}

// SetNillableMonitoringPeriodNote sets the "monitoring_period_note" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableMonitoringPeriodNote(v *string) *SolutionCreate {
	if v != nil {
		_c.SetMonitoringPeriodNote(*v)
	}
	return _c
}

// SetMonitoringStart sets the "monitoring_start" field.
func (_c *SolutionCreate) SetMonitoringStart(v time.Time) *SolutionCreate {
	_c.mutation.SetMonitoringStart(v)
	return _c
}

// SetNillableMonitoringStart sets the "monitoring_start" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableMonitoringStart(v *time.Time) *SolutionCreate {
	if v != nil {
		_c.SetMonitoringStart(*v)
	}
	return _c
}

// SetMonitoringEnd sets the "monitoring_end" field.
func (_c *SolutionCreate) SetMonitoringEnd(v time.Time) *SolutionCreate {
	_c.mutation.SetMonitoringEnd(v)
	return _c
}

// SetNillableMonitoringEnd sets the "monitoring_end" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableMonitoringEnd(v *time.Time) *SolutionCreate {
	if v != nil {
		_c.SetMonitoringEnd(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SolutionCreate) SetStatus(v solution.Status) *SolutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableStatus(v *solution.Status) *SolutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *SolutionCreate) SetSourceURL(v string) *SolutionCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableSourceURL(v *string) *SolutionCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetSourcePlatform sets the "source_platform" field.
func (_c *SolutionCreate) SetSourcePlatform(v string) *SolutionCreate {
	_c.mutation.SetSourcePlatform(v)
	return _c
}

// SetNillableSourcePlatform sets the "source_platform" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableSourcePlatform(v *string) *SolutionCreate {
	if v != nil {
		_c.SetSourcePlatform(*v)
	}
	return _c
}

// SetPostedAt sets the "posted_at" field.
func (_c *SolutionCreate) SetPostedAt(v time.Time) *SolutionCreate {
	_c.mutation.SetPostedAt(v)
	return _c
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_c *SolutionCreate) SetNillablePostedAt(v *time.Time) *SolutionCreate {
	if v != nil {
		_c.SetPostedAt(*v)
	}
	return _c
}

// SetCollectedAt sets the "collected_at" field.
func (_c *SolutionCreate) SetCollectedAt(v time.Time) *SolutionCreate {
	_c.mutation.SetCollectedAt(v)
	return _c
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableCollectedAt(v *time.Time) *SolutionCreate {
	if v != nil {
		_c.SetCollectedAt(*v)
	}
	return _c
}

// SetRawExtraction sets the "raw_extraction" field.
func (_c *SolutionCreate) SetRawExtraction(v string) *SolutionCreate {
	_c.mutation.SetRawExtraction(v)
	return _c
}

// SetNillableRawExtraction sets the "raw_extraction" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableRawExtraction(v *string) *SolutionCreate {
	if v != nil {
		_c.SetRawExtraction(*v)
	}
	return _c
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_c *SolutionCreate) SetTopic(v *Topic) *SolutionCreate {
	return _c.SetTopicID(v.ID)
}

// SetAuthor sets the "author" edge to the Author entity.
func (_c *SolutionCreate) SetAuthor(v *Author) *SolutionCreate {
	return _c.SetAuthorID(v.ID)
}

// AddLogicIDs adds the "logics" edge to the Logic entity by IDs.
func (_c *SolutionCreate) AddLogicIDs(ids ...int) *SolutionCreate {
	_c.mutation.AddLogicIDs(ids...)
	return _c
}

// AddLogics adds the "logics" edges to the Logic entity.
func (_c *SolutionCreate) AddLogics(v ...*Logic) *SolutionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogicIDs(ids...)
}

// AddAssessmentIDs adds the "assessments" edge to the SolutionAssessment entity by IDs.
func (_c *SolutionCreate) AddAssessmentIDs(ids ...int) *SolutionCreate {
	_c.mutation.AddAssessmentIDs(ids...)
	return _c
}

// AddAssessments adds the "assessments" edges to the SolutionAssessment entity.
func (_c *SolutionCreate) AddAssessments(v ...*SolutionAssessment) *SolutionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssessmentIDs(ids...)
}

// Mutation returns the SolutionMutation object of the builder.
func (_c *SolutionCreate) Mutation() *SolutionMutation {
	return _c.mutation
}

// Save creates the Solution in the database.
func (_c *SolutionCreate) Save(ctx context.Context) (*Solution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SolutionCreate) SaveX(ctx context.Context) *Solution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SolutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := solution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CollectedAt(); !ok {
		v := solution.DefaultCollectedAt()
		_c.mutation.SetCollectedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SolutionCreate) check() error {
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "Solution.author_id"`)}
	}
	if _, ok := _c.mutation.Claim(); !ok {
		return &ValidationError{Name: "claim", err: errors.New(`ent: missing required field "Solution.claim"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := solution.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "Solution.action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Solution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := solution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Solution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CollectedAt(); !ok {
		return &ValidationError{Name: "collected_at", err: errors.New(`ent: missing required field "Solution.collected_at"`)}
	}
	if len(_c.mutation.AuthorIDs()) == 0 {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required edge "Solution.author"`)}
	}
	return nil
}

func (_c *SolutionCreate) sqlSave(ctx context.Context) (*Solution, error) {
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

func (_c *SolutionCreate) createSpec() (*Solution, *sqlgraph.CreateSpec) {
	var (
		_node = &Solution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(solution.Table, sqlgraph.NewFieldSpec(solution.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Claim(); ok {
		_spec.SetField(solution.FieldClaim, field.TypeString, value)
		_node.Claim = value
	}
	if value, ok := _c.mutation.CanonicalClaim(); ok {
		_spec.SetField(solution.FieldCanonicalClaim, field.TypeString, value)
		_node.CanonicalClaim = &value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(solution.FieldActionType, field.TypeEnum, value)
		_node.ActionType = &value
	}
	if value, ok := _c.mutation.ActionTarget(); ok {
		_spec.SetField(solution.FieldActionTarget, field.TypeString, value)
		_node.ActionTarget = &value
	}
	if value, ok := _c.mutation.ActionRationale(); ok {
		_spec.SetField(solution.FieldActionRationale, field.TypeString, value)
		_node.ActionRationale = &value
	}
	if value, ok := _c.mutation.SimulatedActionNote(); ok {
		_spec.SetField(solution.FieldSimulatedActionNote, field.TypeString, value)
		_node.SimulatedActionNote = &value
	}
	if value, ok := _c.mutation.MonitoringSourceOrg(); ok {
		_spec.SetField(solution.FieldMonitoringSourceOrg, field.TypeString, value)
		_node.MonitoringSourceOrg = &value
	}
	if value, ok := _c.mutation.MonitoringSourceURL(); ok {
		_spec.SetField(solution.FieldMonitoringSourceURL, field.TypeString, value)
		_node.MonitoringSourceURL = &value
	}
	if value, ok := _c.mutation.MonitoringPeriodNote(); ok {
		_spec.SetField(solution.FieldMonitoringPeriodNote, field.TypeString, value)
		_node.MonitoringPeriodNote = &value
	}
	if value, ok := _c.mutation.MonitoringStart(); ok {
		_spec.SetField(solution.FieldMonitoringStart, field.TypeTime, value)
		_node.MonitoringStart = &value
	}
	if value, ok := _c.mutation.MonitoringEnd(); ok {
		_spec.SetField(solution.FieldMonitoringEnd, field.TypeTime, value)
		_node.MonitoringEnd = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(solution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(solution.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = &value
	}
	if value, ok := _c.mutation.SourcePlatform(); ok {
		_spec.SetField(solution.FieldSourcePlatform, field.TypeString, value)
		_node.SourcePlatform = &value
	}
	if value, ok := _c.mutation.PostedAt(); ok {
		_spec.SetField(solution.FieldPostedAt, field.TypeTime, value)
		_node.PostedAt = &value
	}
	if value, ok := _c.mutation.CollectedAt(); ok {
		_spec.SetField(solution.FieldCollectedAt, field.TypeTime, value)
		_node.CollectedAt = value
	}
	if value, ok := _c.mutation.RawExtraction(); ok {
		_spec.SetField(solution.FieldRawExtraction, field.TypeString, value)
		_node.RawExtraction = &value
	}
	if nodes := _c.mutation.TopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   solution.TopicTable,
			Columns: []string{solution.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TopicID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   solution.AuthorTable,
			Columns: []string{solution.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AuthorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.LogicsTable,
			Columns: []string{solution.LogicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssessmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.AssessmentsTable,
			Columns: []string{solution.AssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solutionassessment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SolutionCreateBulk is the builder for creating many Solution entities in bulk.
type SolutionCreateBulk struct {
	config
	err      error
	builders []*SolutionCreate
}

// Save creates the Solution entities in the database.
func (_c *SolutionCreateBulk) Save(ctx context.Context) ([]*Solution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Solution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SolutionMutation)
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
func (_c *SolutionCreateBulk) SaveX(ctx context.Context) []*Solution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
