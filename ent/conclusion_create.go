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
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/topic"
)

// ConclusionCreate is the builder for creating a Conclusion entity.
type ConclusionCreate struct {
	config
	mutation *ConclusionMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (_c *ConclusionCreate) SetTopicID(v int) *ConclusionCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *ConclusionCreate) SetAuthorID(v int) *ConclusionCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetClaim sets the "claim" field.
func (_c *ConclusionCreate) SetClaim(v string) *ConclusionCreate {
	_c.mutation.SetClaim(v)
	return _c
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (_c *ConclusionCreate) SetCanonicalClaim(v string) *ConclusionCreate {
	_c.mutation.SetCanonicalClaim(v)
	return _c
}

// SetNillableCanonicalClaim sets the "canonical_claim" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableCanonicalClaim(v *string) *ConclusionCreate {
	if v != nil {
		_c.SetCanonicalClaim(*v)
	}
	return _c
}

// SetConclusionType sets the "conclusion_type" field.
func (_c *ConclusionCreate) SetConclusionType(v conclusion.ConclusionType) *ConclusionCreate {
	_c.mutation.SetConclusionType(v)
	return _c
}

// SetNillableConclusionType sets the "conclusion_type" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableConclusionType(v *conclusion.ConclusionType) *ConclusionCreate {
	if v != nil {
		_c.SetConclusionType(*v)
	}
	return _c
}

// SetTimeHorizonNote sets the "time_horizon_note" field.
func (_c *ConclusionCreate) SetTimeHorizonNote(v string) *ConclusionCreate {
	_c.mutation.SetTimeHorizonNote(v)
	return _c
}

// SetNillableTimeHorizonNote sets the "time_horizon_note" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableTimeHorizonNote(v *string) *ConclusionCreate {
	if v != nil {
		_c.SetTimeHorizonNote(*v)
	}
	return _c
}

// SetValidFrom sets the "valid_from" field.
func (_c *ConclusionCreate) SetValidFrom(v time.Time) *ConclusionCreate {
	_c.mutation.SetValidFrom(v)
	return _c
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableValidFrom(v *time.Time) *ConclusionCreate {
	if v != nil {
		_c.SetValidFrom(*v)
	}
	return _c
}

// SetValidUntil sets the "valid_until" field.
func (_c *ConclusionCreate) SetValidUntil(v time.Time) *ConclusionCreate {
	_c.mutation.SetValidUntil(v)
	return _c
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableValidUntil(v *time.Time) *ConclusionCreate {
	if v != nil {
		_c.SetValidUntil(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConclusionCreate) SetStatus(v conclusion.Status) *ConclusionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableStatus(v *conclusion.Status) *ConclusionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMonitoringSourceOrg sets the "monitoring_source_org" field.
func (_c *ConclusionCreate) SetMonitoringSourceOrg(v string) *ConclusionCreate {
	_c.mutation.SetMonitoringSourceOrg(v)
	return _c
}

// SetNillableMonitoringSourceOrg sets the "monitoring_source_org" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableMonitoringSourceOrg(v *string) *ConclusionCreate {
	if v != nil {
		_c.SetMonitoringSourceOrg(*v)
	}
	return _c
}

// SetMonitoringSourceURL sets the "monitoring_source_url" field.
func (_c *ConclusionCreate) SetMonitoringSourceURL(v string) *ConclusionCreate {
	_c.mutation.SetMonitoringSourceURL(v)
	return _c
}

// SetNillableMonitoringSourceURL sets the "monitoring_source_url" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableMonitoringSourceURL(v *string) *ConclusionCreate {
	if v != nil {
		_c.SetMonitoringSourceURL(*v)
	}
	return _c
}

// SetMonitoringPeriodNote sets the "monitoring_period_note" field.
func (_c *ConclusionCreate) SetMonitoringPeriodNote(v string) *ConclusionCreate {
	_c.mutation.SetMonitoringPeriodNote(v)
	return _c
}

// SetNillableMonitoringPeriodNote sets the "monitoring_period_note" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableMonitoringPeriodNote(v *string) *ConclusionCreate {
	if v != nil {
		_c.SetMonitoringPeriodNote(*v)
	}
	return _c
}

// SetMonitoringStart sets the "monitoring_start" field.
func (_c *ConclusionCreate) SetMonitoringStart(v time.Time) *ConclusionCreate {
	_c.mutation.SetMonitoringStart(v)
	return _c
}

// SetNillableMonitoringStart sets the "monitoring_start" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableMonitoringStart(v *time.Time) *ConclusionCreate {
	if v != nil {
		_c.SetMonitoringStart(*v)
	}
	return _c
}

// SetMonitoringEnd sets the "monitoring_end" field.
func (_c *ConclusionCreate) SetMonitoringEnd(v time.Time) *ConclusionCreate {
	_c.mutation.SetMonitoringEnd(v)
	return _c
}

// SetNillableMonitoringEnd sets the "monitoring_end" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableMonitoringEnd(v *time.Time) *ConclusionCreate {
	if v != nil {
		_c.SetMonitoringEnd(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *ConclusionCreate) SetSourceURL(v string) *ConclusionCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetSourcePlatform sets the "source_platform" field.
func (_c *ConclusionCreate) SetSourcePlatform(v string) *ConclusionCreate {
	_c.mutation.SetSourcePlatform(v)
	return _c
}

// SetPostedAt sets the "posted_at" field.
func (_c *ConclusionCreate) SetPostedAt(v time.Time) *ConclusionCreate {
	_c.mutation.SetPostedAt(v)
	return _c
}

// SetCollectedAt sets the "collected_at" field.
func (_c *ConclusionCreate) SetCollectedAt(v time.Time) *ConclusionCreate {
	_c.mutation.SetCollectedAt(v)
	return _c
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableCollectedAt(v *time.Time) *ConclusionCreate {
	if v != nil {
		_c.SetCollectedAt(*v)
	}
	return _c
}

// SetRawExtraction sets the "raw_extraction" field.
func (_c *ConclusionCreate) SetRawExtraction(v string) *ConclusionCreate {
	_c.mutation.SetRawExtraction(v)
	return _c
}

// SetNillableRawExtraction sets the "raw_extraction" field if the given value is not nil.
func (_c *ConclusionCreate) SetNillableRawExtraction(v *string) *ConclusionCreate {
	if v != nil {
		_c.SetRawExtraction(*v)
	}
	return _c
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_c *ConclusionCreate) SetTopic(v *Topic) *ConclusionCreate {
	return _c.SetTopicID(v.ID)
}

// SetAuthor sets the "author" edge to the Author entity.
func (_c *ConclusionCreate) SetAuthor(v *Author) *ConclusionCreate {
	return _c.SetAuthorID(v.ID)
}

// AddLogicIDs adds the "logics" edge to the Logic entity by IDs.
func (_c *ConclusionCreate) AddLogicIDs(ids ...int) *ConclusionCreate {
	_c.mutation.AddLogicIDs(ids...)
	return _c
}

// AddLogics adds the "logics" edges to the Logic entity.
func (_c *ConclusionCreate) AddLogics(v ...*Logic) *ConclusionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogicIDs(ids...)
}

// AddVerdictIDs adds the "verdicts" edge to the ConclusionVerdict entity by IDs.
func (_c *ConclusionCreate) AddVerdictIDs(ids ...int) *ConclusionCreate {
	_c.mutation.AddVerdictIDs(ids...)
	return _c
}

// AddVerdicts adds the "verdicts" edges to the ConclusionVerdict entity.
func (_c *ConclusionCreate) AddVerdicts(v ...*ConclusionVerdict) *ConclusionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVerdictIDs(ids...)
}

// Mutation returns the ConclusionMutation object of the builder.
func (_c *ConclusionCreate) Mutation() *ConclusionMutation {
	return _c.mutation
}

// Save creates the Conclusion in the database.
func (_c *ConclusionCreate) Save(ctx context.Context) (*Conclusion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConclusionCreate) SaveX(ctx context.Context) *Conclusion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConclusionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConclusionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConclusionCreate) defaults() {
	if _, ok := _c.mutation.ConclusionType(); !ok {
		v := conclusion.DefaultConclusionType
		_c.mutation.SetConclusionType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := conclusion.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CollectedAt(); !ok {
		v := conclusion.DefaultCollectedAt()
		_c.mutation.SetCollectedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConclusionCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "Conclusion.topic_id"`)}
	}
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "Conclusion.author_id"`)}
	}
	if _, ok := _c.mutation.Claim(); !ok {
		return &ValidationError{Name: "claim", err: errors.New(`ent: missing required field "Conclusion.claim"`)}
	}
	if _, ok := _c.mutation.ConclusionType(); !ok {
		return &ValidationError{Name: "conclusion_type", err: errors.New(`ent: missing required field "Conclusion.conclusion_type"`)}
	}
	if v, ok := _c.mutation.ConclusionType(); ok {
		if err := conclusion.ConclusionTypeValidator(v); err != nil {
			return &ValidationError{Name: "conclusion_type", err: fmt.Errorf(`ent: validator failed for field "Conclusion.conclusion_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Conclusion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := conclusion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conclusion.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "Conclusion.source_url"`)}
	}
	if _, ok := _c.mutation.SourcePlatform(); !ok {
		return &ValidationError{Name: "source_platform", err: errors.New(`ent: missing required field "Conclusion.source_platform"`)}
	}
	if _, ok := _c.mutation.PostedAt(); !ok {
		return &ValidationError{Name: "posted_at", err: errors.New(`ent: missing required field "Conclusion.posted_at"`)}
	}
	if _, ok := _c.mutation.CollectedAt(); !ok {
		return &ValidationError{Name: "collected_at", err: errors.New(`ent: missing required field "Conclusion.collected_at"`)}
	}
	if len(_c.mutation.TopicIDs()) == 0 {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required edge "Conclusion.topic"`)}
	}
	if len(_c.mutation.AuthorIDs()) == 0 {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required edge "Conclusion.author"`)}
	}
	return nil
}

func (_c *ConclusionCreate) sqlSave(ctx context.Context) (*Conclusion, error) {
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

func (_c *ConclusionCreate) createSpec() (*Conclusion, *sqlgraph.CreateSpec) {
	var (
		_node = &Conclusion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conclusion.Table, sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Claim(); ok {
		_spec.SetField(conclusion.FieldClaim, field.TypeString, value)
		_node.Claim = value
	}
	if value, ok := _c.mutation.CanonicalClaim(); ok {
		_spec.SetField(conclusion.FieldCanonicalClaim, field.TypeString, value)
		_node.CanonicalClaim = &value
	}
	if value, ok := _c.mutation.ConclusionType(); ok {
		_spec.SetField(conclusion.FieldConclusionType, field.TypeEnum, value)
		_node.ConclusionType = value
	}
	if value, ok := _c.mutation.TimeHorizonNote(); ok {
		_spec.SetField(conclusion.FieldTimeHorizonNote, field.TypeString, value)
		_node.TimeHorizonNote = &value
	}
	if value, ok := _c.mutation.ValidFrom(); ok {
		_spec.SetField(conclusion.FieldValidFrom, field.TypeTime, value)
		_node.ValidFrom = &value
	}
	if value, ok := _c.mutation.ValidUntil(); ok {
		_spec.SetField(conclusion.FieldValidUntil, field.TypeTime, value)
		_node.ValidUntil = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(conclusion.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MonitoringSourceOrg(); ok {
		_spec.SetField(conclusion.FieldMonitoringSourceOrg, field.TypeString, value)
		_node.MonitoringSourceOrg = &value
	}
	if value, ok := _c.mutation.MonitoringSourceURL(); ok {
		_spec.SetField(conclusion.FieldMonitoringSourceURL, field.TypeString, value)
		_node.MonitoringSourceURL = &value
	}
	if value, ok := _c.mutation.MonitoringPeriodNote(); ok {
		_spec.SetField(conclusion.FieldMonitoringPeriodNote, field.TypeString, value)
		_node.MonitoringPeriodNote = &value
	}
	if value, ok := _c.mutation.MonitoringStart(); ok {
		_spec.SetField(conclusion.FieldMonitoringStart, field.TypeTime, value)
		_node.MonitoringStart = &value
	}
	if value, ok := _c.mutation.MonitoringEnd(); ok {
		_spec.SetField(conclusion.FieldMonitoringEnd, field.TypeTime, value)
		_node.MonitoringEnd = &value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(conclusion.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.SourcePlatform(); ok {
		_spec.SetField(conclusion.FieldSourcePlatform, field.TypeString, value)
		_node.SourcePlatform = value
	}
	if value, ok := _c.mutation.PostedAt(); ok {
		_spec.SetField(conclusion.FieldPostedAt, field.TypeTime, value)
		_node.PostedAt = value
	}
	if value, ok := _c.mutation.CollectedAt(); ok {
		_spec.SetField(conclusion.FieldCollectedAt, field.TypeTime, value)
		_node.CollectedAt = value
	}
	if value, ok := _c.mutation.RawExtraction(); ok {
		_spec.SetField(conclusion.FieldRawExtraction, field.TypeString, value)
		_node.RawExtraction = &value
	}
	if nodes := _c.mutation.TopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conclusion.TopicTable,
			Columns: []string{conclusion.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TopicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conclusion.AuthorTable,
			Columns: []string{conclusion.AuthorColumn},
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
			Table:   conclusion.LogicsTable,
			Columns: []string{conclusion.LogicsColumn},
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
	if nodes := _c.mutation.VerdictsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conclusion.VerdictsTable,
			Columns: []string{conclusion.VerdictsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conclusionverdict.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConclusionCreateBulk is the builder for creating many Conclusion entities in bulk.
type ConclusionCreateBulk struct {
	config
	err      error
	builders []*ConclusionCreate
}

// Save creates the Conclusion entities in the database.
func (_c *ConclusionCreateBulk) Save(ctx context.Context) ([]*Conclusion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conclusion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConclusionMutation)
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
func (_c *ConclusionCreateBulk) SaveX(ctx context.Context) []*Conclusion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConclusionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConclusionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
