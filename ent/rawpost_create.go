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
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/rawpost"
)

// RawPostCreate is the builder for creating a RawPost entity.
type RawPostCreate struct {
	config
	mutation *RawPostMutation
	hooks    []Hook
}

// SetSource sets the "source" field.
func (_c *RawPostCreate) SetSource(v string) *RawPostCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *RawPostCreate) SetExternalID(v string) *RawPostCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *RawPostCreate) SetContent(v string) *RawPostCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetEnrichedContent sets the "enriched_content" field.
func (_c *RawPostCreate) SetEnrichedContent(v string) *RawPostCreate {
	_c.mutation.SetEnrichedContent(v)
	return _c
}

// SetNillableEnrichedContent sets the "enriched_content" field if the given value is not nil.
func (_c *RawPostCreate) SetNillableEnrichedContent(v *string) *RawPostCreate {
	if v != nil {
		_c.SetEnrichedContent(*v)
	}
	return _c
}

// SetContextFetched sets the "context_fetched" field.
func (_c *RawPostCreate) SetContextFetched(v bool) *RawPostCreate {
	_c.mutation.SetContextFetched(v)
	return _c
}

// SetNillableContextFetched sets the "context_fetched" field if the given value is not nil.
func (_c *RawPostCreate) SetNillableContextFetched(v *bool) *RawPostCreate {
	if v != nil {
		_c.SetContextFetched(*v)
	}
	return _c
}

// SetHasContext sets the "has_context" field.
func (_c *RawPostCreate) SetHasContext(v bool) *RawPostCreate {
	_c.mutation.SetHasContext(v)
	return _c
}

// SetNillableHasContext sets the "has_context" field if the given value is not nil.
func (_c *RawPostCreate) SetNillableHasContext(v *bool) *RawPostCreate {
	if v != nil {
		_c.SetHasContext(*v)
	}
	return _c
}

// SetAuthorName sets the "author_name" field.
func (_c *RawPostCreate) SetAuthorName(v string) *RawPostCreate {
	_c.mutation.SetAuthorName(v)
	return _c
}

// SetAuthorPlatformID sets the "author_platform_id" field.
func (_c *RawPostCreate) SetAuthorPlatformID(v string) *RawPostCreate {
	_c.mutation.SetAuthorPlatformID(v)
	return _c
}

// SetNillableAuthorPlatformID sets the "author_platform_id" field if the given value is not nil.
func (_c *RawPostCreate) SetNillableAuthorPlatformID(v *string) *RawPostCreate {
	if v != nil {
		_c.SetAuthorPlatformID(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *RawPostCreate) SetURL(v string) *RawPostCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetPostedAt sets the "posted_at" field.
func (_c *RawPostCreate) SetPostedAt(v time.Time) *RawPostCreate {
	_c.mutation.SetPostedAt(v)
	return _c
}

// SetCollectedAt sets the "collected_at" field.
func (_c *RawPostCreate) SetCollectedAt(v time.Time) *RawPostCreate {
	_c.mutation.SetCollectedAt(v)
	return _c
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_c *RawPostCreate) SetNillableCollectedAt(v *time.Time) *RawPostCreate {
	if v != nil {
		_c.SetCollectedAt(*v)
	}
	return _c
}

// SetRawMetadata sets the "raw_metadata" field.
func (_c *RawPostCreate) SetRawMetadata(v string) *RawPostCreate {
	_c.mutation.SetRawMetadata(v)
	return _c
}

// SetNillableRawMetadata sets the "raw_metadata" field if the given value is not nil.
func (_c *RawPostCreate) SetNillableRawMetadata(v *string) *RawPostCreate {
	if v != nil {
		_c.SetRawMetadata(*v)
	}
	return _c
}

// SetMediaJSON sets the "media_json" field.
func (_c *RawPostCreate) SetMediaJSON(v string) *RawPostCreate {
	_c.mutation.SetMediaJSON(v)
	return _c
}

// SetNillableMediaJSON sets the "media_json" field if the given value is not nil.
func (_c *RawPostCreate) SetNillableMediaJSON(v *string) *RawPostCreate {
	if v != nil {
		_c.SetMediaJSON(*v)
	}
	return _c
}

// SetIsProcessed sets the "is_processed" field.
func (_c *RawPostCreate) SetIsProcessed(v bool) *RawPostCreate {
	_c.mutation.SetIsProcessed(v)
	return _c
}

// SetNillableIsProcessed sets the "is_processed" field if the given value is not nil.
func (_c *RawPostCreate) SetNillableIsProcessed(v *bool) *RawPostCreate {
	if v != nil {
		_c.SetIsProcessed(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *RawPostCreate) SetProcessedAt(v time.Time) *RawPostCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *RawPostCreate) SetNillableProcessedAt(v *time.Time) *RawPostCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetMonitoredSourceID sets the "monitored_source_id" field.
func (_c *RawPostCreate) SetMonitoredSourceID(v int) *RawPostCreate {
	_c.mutation.SetMonitoredSourceID(v)
	return _c
}

// SetNillableMonitoredSourceID sets the "monitored_source_id" field if the given value is not nil.
func (_c *RawPostCreate) SetNillableMonitoredSourceID(v *int) *RawPostCreate {
	if v != nil {
		_c.SetMonitoredSourceID(*v)
	}
	return _c
}

// SetMonitoredSource sets the "monitored_source" edge to the MonitoredSource entity.
func (_c *RawPostCreate) SetMonitoredSource(v *MonitoredSource) *RawPostCreate {
	return _c.SetMonitoredSourceID(v.ID)
}

// AddFactIDs adds the "facts" edge to the Fact entity by IDs.
func (_c *RawPostCreate) AddFactIDs(ids ...int) *RawPostCreate {
	_c.mutation.AddFactIDs(ids...)
	return _c
}

// AddFacts adds the "facts" edges to the Fact entity.
func (_c *RawPostCreate) AddFacts(v ...*Fact) *RawPostCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFactIDs(ids...)
}

// AddLogicIDs adds the "logics" edge to the Logic entity by IDs.
func (_c *RawPostCreate) AddLogicIDs(ids ...int) *RawPostCreate {
	_c.mutation.AddLogicIDs(ids...)
	return _c
}

// AddLogics adds the "logics" edges to the Logic entity.
func (_c *RawPostCreate) AddLogics(v ...*Logic) *RawPostCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogicIDs(ids...)
}

// SetQualityAssessmentID sets the "quality_assessment" edge to the PostQualityAssessment entity by ID.
func (_c *RawPostCreate) SetQualityAssessmentID(id int) *RawPostCreate {
	_c.mutation.SetQualityAssessmentID(id)
	return _c
}

// SetNillableQualityAssessmentID sets the "quality_assessment" edge to the PostQualityAssessment entity by ID if the given value is not nil.
func (_c *RawPostCreate) SetNillableQualityAssessmentID(id *int) *RawPostCreate {
	if id != nil {
		_c = _c.SetQualityAssessmentID(*id)
	}
	return _c
}

// SetQualityAssessment sets the "quality_assessment" edge to the PostQualityAssessment entity.
func (_c *RawPostCreate) SetQualityAssessment(v *PostQualityAssessment) *RawPostCreate {
	return _c.SetQualityAssessmentID(v.ID)
}

// Mutation returns the RawPostMutation object of the builder.
func (_c *RawPostCreate) Mutation() *RawPostMutation {
	return _c.mutation
}

// Save creates the RawPost in the database.
func (_c *RawPostCreate) Save(ctx context.Context) (*RawPost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RawPostCreate) SaveX(ctx context.Context) *RawPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawPostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawPostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RawPostCreate) defaults() {
	if _, ok := _c.mutation.ContextFetched(); !ok {
		v := rawpost.DefaultContextFetched
		_c.mutation.SetContextFetched(v)
	}
	if _, ok := _c.mutation.HasContext(); !ok {
		v := rawpost.DefaultHasContext
		_c.mutation.SetHasContext(v)
	}
	if _, ok := _c.mutation.CollectedAt(); !ok {
		v := rawpost.DefaultCollectedAt()
		_c.mutation.SetCollectedAt(v)
	}
	if _, ok := _c.mutation.IsProcessed(); !ok {
		v := rawpost.DefaultIsProcessed
		_c.mutation.SetIsProcessed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RawPostCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "RawPost.source"`)}
	}
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "RawPost.external_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "RawPost.content"`)}
	}
	if _, ok := _c.mutation.ContextFetched(); !ok {
		return &ValidationError{Name: "context_fetched", err: errors.New(`ent: missing required field "RawPost.context_fetched"`)}
	}
	if _, ok := _c.mutation.HasContext(); !ok {
		return &ValidationError{Name: "has_context", err: errors.New(`ent: missing required field "RawPost.has_context"`)}
	}
	if _, ok := _c.mutation.AuthorName(); !ok {
		return &ValidationError{Name: "author_name", err: errors.New(`ent: missing required field "RawPost.author_name"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "RawPost.url"`)}
	}
	if _, ok := _c.mutation.PostedAt(); !ok {
		return &ValidationError{Name: "posted_at", err: errors.New(`ent: missing required field "RawPost.posted_at"`)}
	}
	if _, ok := _c.mutation.CollectedAt(); !ok {
		return &ValidationError{Name: "collected_at", err: errors.New(`ent: missing required field "RawPost.collected_at"`)}
	}
	if _, ok := _c.mutation.IsProcessed(); !ok {
		return &ValidationError{Name: "is_processed", err: errors.New(`ent: missing required field "RawPost.is_processed"`)}
	}
	return nil
}

func (_c *RawPostCreate) sqlSave(ctx context.Context) (*RawPost, error) {
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

func (_c *RawPostCreate) createSpec() (*RawPost, *sqlgraph.CreateSpec) {
	var (
		_node = &RawPost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rawpost.Table, sqlgraph.NewFieldSpec(rawpost.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(rawpost.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(rawpost.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(rawpost.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.EnrichedContent(); ok {
		_spec.SetField(rawpost.FieldEnrichedContent, field.TypeString, value)
		_node.EnrichedContent = &value
	}
	if value, ok := _c.mutation.ContextFetched(); ok {
		_spec.SetField(rawpost.FieldContextFetched, field.TypeBool, value)
		_node.ContextFetched = value
	}
	if value, ok := _c.mutation.HasContext(); ok {
		_spec.SetField(rawpost.FieldHasContext, field.TypeBool, value)
		_node.HasContext = value
	}
	if value, ok := _c.mutation.AuthorName(); ok {
		_spec.SetField(rawpost.FieldAuthorName, field.TypeString, value)
		_node.AuthorName = value
	}
	if value, ok := _c.mutation.AuthorPlatformID(); ok {
		_spec.SetField(rawpost.FieldAuthorPlatformID, field.TypeString, value)
		_node.AuthorPlatformID = &value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(rawpost.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.PostedAt(); ok {
		_spec.SetField(rawpost.FieldPostedAt, field.TypeTime, value)
		_node.PostedAt = value
	}
	if value, ok := _c.mutation.CollectedAt(); ok {
		_spec.SetField(rawpost.FieldCollectedAt, field.TypeTime, value)
		_node.CollectedAt = value
	}
	if value, ok := _c.mutation.RawMetadata(); ok {
		_spec.SetField(rawpost.FieldRawMetadata, field.TypeString, value)
		_node.RawMetadata = &value
	}
	if value, ok := _c.mutation.MediaJSON(); ok {
		_spec.SetField(rawpost.FieldMediaJSON, field.TypeString, value)
		_node.MediaJSON = &value
	}
	if value, ok := _c.mutation.IsProcessed(); ok {
		_spec.SetField(rawpost.FieldIsProcessed, field.TypeBool, value)
		_node.IsProcessed = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(rawpost.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.MonitoredSourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   rawpost.MonitoredSourceTable,
			Columns: []string{rawpost.MonitoredSourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MonitoredSourceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawpost.FactsTable,
			Columns: []string{rawpost.FactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawpost.LogicsTable,
			Columns: []string{rawpost.LogicsColumn},
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
	if nodes := _c.mutation.QualityAssessmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   rawpost.QualityAssessmentTable,
			Columns: []string{rawpost.QualityAssessmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RawPostCreateBulk is the builder for creating many RawPost entities in bulk.
type RawPostCreateBulk struct {
	config
	err      error
	builders []*RawPostCreate
}

// Save creates the RawPost entities in the database.
func (_c *RawPostCreateBulk) Save(ctx context.Context) ([]*RawPost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RawPost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RawPostMutation)
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
func (_c *RawPostCreateBulk) SaveX(ctx context.Context) []*RawPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawPostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawPostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
