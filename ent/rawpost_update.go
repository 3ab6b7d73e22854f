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
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/rawpost"
)

// RawPostUpdate is the builder for updating RawPost entities.
type RawPostUpdate struct {
	config
	hooks    []Hook
	mutation *RawPostMutation
}

// Where appends a list predicates to the RawPostUpdate builder.
func (_u *RawPostUpdate) Where(ps ...predicate.RawPost) *RawPostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *RawPostUpdate) SetSource(v string) *RawPostUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableSource(v *string) *RawPostUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *RawPostUpdate) SetExternalID(v string) *RawPostUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableExternalID(v *string) *RawPostUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *RawPostUpdate) SetContent(v string) *RawPostUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableContent(v *string) *RawPostUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetEnrichedContent sets the "enriched_content" field.
func (_u *RawPostUpdate) SetEnrichedContent(v string) *RawPostUpdate {
	_u.mutation.SetEnrichedContent(v)
	return _u
}

// SetNillableEnrichedContent sets the "enriched_content" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableEnrichedContent(v *string) *RawPostUpdate {
	if v != nil {
		_u.SetEnrichedContent(*v)
	}
	return _u
}

// ClearEnrichedContent clears the value of the "enriched_content" field.
func (_u *RawPostUpdate) ClearEnrichedContent() *RawPostUpdate {
	_u.mutation.ClearEnrichedContent()
	return _u
}

// SetContextFetched sets the "context_fetched" field.
func (_u *RawPostUpdate) SetContextFetched(v bool) *RawPostUpdate {
	_u.mutation.SetContextFetched(v)
	return _u
}

// SetNillableContextFetched sets the "context_fetched" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableContextFetched(v *bool) *RawPostUpdate {
	if v != nil {
		_u.SetContextFetched(*v)
	}
	return _u
}

// SetHasContext sets the "has_context" field.
func (_u *RawPostUpdate) SetHasContext(v bool) *RawPostUpdate {
	_u.mutation.SetHasContext(v)
	return _u
}

// SetNillableHasContext sets the "has_context" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableHasContext(v *bool) *RawPostUpdate {
	if v != nil {
		_u.SetHasContext(*v)
	}
	return _u
}

// SetAuthorName sets the "author_name" field.
func (_u *RawPostUpdate) SetAuthorName(v string) *RawPostUpdate {
	_u.mutation.SetAuthorName(v)
	return _u
}

// SetNillableAuthorName sets the "author_name" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableAuthorName(v *string) *RawPostUpdate {
	if v != nil {
		_u.SetAuthorName(*v)
	}
	return _u
}

// SetAuthorPlatformID sets the "author_platform_id" field.
func (_u *RawPostUpdate) SetAuthorPlatformID(v string) *RawPostUpdate {
	_u.mutation.SetAuthorPlatformID(v)
	return _u
}

// SetNillableAuthorPlatformID sets the "author_platform_id" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableAuthorPlatformID(v *string) *RawPostUpdate {
	if v != nil {
		_u.SetAuthorPlatformID(*v)
	}
	return _u
}

// ClearAuthorPlatformID clears the value of the "author_platform_id" field.
func (_u *RawPostUpdate) ClearAuthorPlatformID() *RawPostUpdate {
	_u.mutation.ClearAuthorPlatformID()
	return _u
}

// SetURL sets the "url" field.
func (_u *RawPostUpdate) SetURL(v string) *RawPostUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableURL(v *string) *RawPostUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *RawPostUpdate) SetPostedAt(v time.Time) *RawPostUpdate {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillablePostedAt(v *time.Time) *RawPostUpdate {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *RawPostUpdate) SetCollectedAt(v time.Time) *RawPostUpdate {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableCollectedAt(v *time.Time) *RawPostUpdate {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// SetRawMetadata sets the "raw_metadata" field.
func (_u *RawPostUpdate) SetRawMetadata(v string) *RawPostUpdate {
	_u.mutation.SetRawMetadata(v)
	return _u
}

// SetNillableRawMetadata sets the "raw_metadata" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableRawMetadata(v *string) *RawPostUpdate {
	if v != nil {
		_u.SetRawMetadata(*v)
	}
	return _u
}

// ClearRawMetadata clears the value of the "raw_metadata" field.
func (_u *RawPostUpdate) ClearRawMetadata() *RawPostUpdate {
	_u.mutation.ClearRawMetadata()
	return _u
}

// SetMediaJSON sets the "media_json" field.
func (_u *RawPostUpdate) SetMediaJSON(v string) *RawPostUpdate {
	_u.mutation.SetMediaJSON(v)
	return _u
}

// SetNillableMediaJSON sets the "media_json" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableMediaJSON(v *string) *RawPostUpdate {
	if v != nil {
		_u.SetMediaJSON(*v)
	}
	return _u
}

// ClearMediaJSON clears the value of the "media_json" field.
func (_u *RawPostUpdate) ClearMediaJSON() *RawPostUpdate {
	_u.mutation.ClearMediaJSON()
	return _u
}

// SetIsProcessed sets the "is_processed" field.
func (_u *RawPostUpdate) SetIsProcessed(v bool) *RawPostUpdate {
	_u.mutation.SetIsProcessed(v)
	return _u
}

// SetNillableIsProcessed sets the "is_processed" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableIsProcessed(v *bool) *RawPostUpdate {
	if v != nil {
		_u.SetIsProcessed(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *RawPostUpdate) SetProcessedAt(v time.Time) *RawPostUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableProcessedAt(v *time.Time) *RawPostUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *RawPostUpdate) ClearProcessedAt() *RawPostUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetMonitoredSourceID sets the "monitored_source_id" field.
func (_u *RawPostUpdate) SetMonitoredSourceID(v int) *RawPostUpdate {
	_u.mutation.SetMonitoredSourceID(v)
	return _u
}

// SetNillableMonitoredSourceID sets the "monitored_source_id" field if the given value is not nil.
func (_u *RawPostUpdate) SetNillableMonitoredSourceID(v *int) *RawPostUpdate {
	if v != nil {
		_u.SetMonitoredSourceID(*v)
	}
	return _u
}

// ClearMonitoredSourceID clears the value of the "monitored_source_id" field.
func (_u *RawPostUpdate) ClearMonitoredSourceID() *RawPostUpdate {
	_u.mutation.ClearMonitoredSourceID()
	return _u
}

// SetMonitoredSource sets the "monitored_source" edge to the MonitoredSource entity.
func (_u *RawPostUpdate) SetMonitoredSource(v *MonitoredSource) *RawPostUpdate {
	return _u.SetMonitoredSourceID(v.ID)
}

// AddFactIDs adds the "facts" edge to the Fact entity by IDs.
func (_u *RawPostUpdate) AddFactIDs(ids ...int) *RawPostUpdate {
	_u.mutation.AddFactIDs(ids...)
	return _u
}

// AddFacts adds the "facts" edges to the Fact entity.
func (_u *RawPostUpdate) AddFacts(v ...*Fact) *RawPostUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFactIDs(ids...)
}

// AddLogicIDs adds the "logics" edge to the Logic entity by IDs.
func (_u *RawPostUpdate) AddLogicIDs(ids ...int) *RawPostUpdate {
	_u.mutation.AddLogicIDs(ids...)
	return _u
}

// AddLogics adds the "logics" edges to the Logic entity.
func (_u *RawPostUpdate) AddLogics(v ...*Logic) *RawPostUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogicIDs(ids...)
}

// SetQualityAssessmentID sets the "quality_assessment" edge to the PostQualityAssessment entity by ID.
func (_u *RawPostUpdate) SetQualityAssessmentID(id int) *RawPostUpdate {
	_u.mutation.SetQualityAssessmentID(id)
	return _u
}

// SetNillableQualityAssessmentID sets the "quality_assessment" edge to the PostQualityAssessment entity by ID if the given value is not nil.
func (_u *RawPostUpdate) SetNillableQualityAssessmentID(id *int) *RawPostUpdate {
	if id != nil {
		_u = _u.SetQualityAssessmentID(*id)
	}
	return _u
}

// SetQualityAssessment sets the "quality_assessment" edge to the PostQualityAssessment entity.
func (_u *RawPostUpdate) SetQualityAssessment(v *PostQualityAssessment) *RawPostUpdate {
	return _u.SetQualityAssessmentID(v.ID)
}

// Mutation returns the RawPostMutation object of the builder.
func (_u *RawPostUpdate) Mutation() *RawPostMutation {
	return _u.mutation
}

// ClearMonitoredSource clears the "monitored_source" edge to the MonitoredSource entity.
func (_u *RawPostUpdate) ClearMonitoredSource() *RawPostUpdate {
	_u.mutation.ClearMonitoredSource()
	return _u
}

// ClearFacts clears all "facts" edges to the Fact entity.
func (_u *RawPostUpdate) ClearFacts() *RawPostUpdate {
	_u.mutation.ClearFacts()
	return _u
}

// RemoveFactIDs removes the "facts" edge to Fact entities by IDs.
func (_u *RawPostUpdate) RemoveFactIDs(ids ...int) *RawPostUpdate {
	_u.mutation.RemoveFactIDs(ids...)
	return _u
}

// RemoveFacts removes "facts" edges to Fact entities.
func (_u *RawPostUpdate) RemoveFacts(v ...*Fact) *RawPostUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFactIDs(ids...)
}

// ClearLogics clears all "logics" edges to the Logic entity.
func (_u *RawPostUpdate) ClearLogics() *RawPostUpdate {
	_u.mutation.ClearLogics()
	return _u
}

// RemoveLogicIDs removes the "logics" edge to Logic entities by IDs.
func (_u *RawPostUpdate) RemoveLogicIDs(ids ...int) *RawPostUpdate {
	_u.mutation.RemoveLogicIDs(ids...)
	return _u
}

// RemoveLogics removes "logics" edges to Logic entities.
func (_u *RawPostUpdate) RemoveLogics(v ...*Logic) *RawPostUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogicIDs(ids...)
}

// ClearQualityAssessment clears the "quality_assessment" edge to the PostQualityAssessment entity.
func (_u *RawPostUpdate) ClearQualityAssessment() *RawPostUpdate {
	_u.mutation.ClearQualityAssessment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RawPostUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawPostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RawPostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawPostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RawPostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(rawpost.Table, rawpost.Columns, sqlgraph.NewFieldSpec(rawpost.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(rawpost.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(rawpost.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(rawpost.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnrichedContent(); ok {
		_spec.SetField(rawpost.FieldEnrichedContent, field.TypeString, value)
	}
	if _u.mutation.EnrichedContentCleared() {
		_spec.ClearField(rawpost.FieldEnrichedContent, field.TypeString)
	}
	if value, ok := _u.mutation.ContextFetched(); ok {
		_spec.SetField(rawpost.FieldContextFetched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasContext(); ok {
		_spec.SetField(rawpost.FieldHasContext, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AuthorName(); ok {
		_spec.SetField(rawpost.FieldAuthorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorPlatformID(); ok {
		_spec.SetField(rawpost.FieldAuthorPlatformID, field.TypeString, value)
	}
	if _u.mutation.AuthorPlatformIDCleared() {
		_spec.ClearField(rawpost.FieldAuthorPlatformID, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(rawpost.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(rawpost.FieldPostedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(rawpost.FieldCollectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawMetadata(); ok {
		_spec.SetField(rawpost.FieldRawMetadata, field.TypeString, value)
	}
	if _u.mutation.RawMetadataCleared() {
		_spec.ClearField(rawpost.FieldRawMetadata, field.TypeString)
	}
	if value, ok := _u.mutation.MediaJSON(); ok {
		_spec.SetField(rawpost.FieldMediaJSON, field.TypeString, value)
	}
	if _u.mutation.MediaJSONCleared() {
		_spec.ClearField(rawpost.FieldMediaJSON, field.TypeString)
	}
	if value, ok := _u.mutation.IsProcessed(); ok {
		_spec.SetField(rawpost.FieldIsProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(rawpost.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(rawpost.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.MonitoredSourceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MonitoredSourceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFactsIDs(); len(nodes) > 0 && !_u.mutation.FactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogicsIDs(); len(nodes) > 0 && !_u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QualityAssessmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QualityAssessmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RawPostUpdateOne is the builder for updating a single RawPost entity.
type RawPostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RawPostMutation
}

// SetSource sets the "source" field.
func (_u *RawPostUpdateOne) SetSource(v string) *RawPostUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableSource(v *string) *RawPostUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *RawPostUpdateOne) SetExternalID(v string) *RawPostUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableExternalID(v *string) *RawPostUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *RawPostUpdateOne) SetContent(v string) *RawPostUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableContent(v *string) *RawPostUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetEnrichedContent sets the "enriched_content" field.
func (_u *RawPostUpdateOne) SetEnrichedContent(v string) *RawPostUpdateOne {
	_u.mutation.SetEnrichedContent(v)
	return _u
}

// SetNillableEnrichedContent sets the "enriched_content" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableEnrichedContent(v *string) *RawPostUpdateOne {
	if v != nil {
		_u.SetEnrichedContent(*v)
	}
	return _u
}

// ClearEnrichedContent clears the value of the "enriched_content" field.
func (_u *RawPostUpdateOne) ClearEnrichedContent() *RawPostUpdateOne {
	_u.mutation.ClearEnrichedContent()
	return _u
}

// SetContextFetched sets the "context_fetched" field.
func (_u *RawPostUpdateOne) SetContextFetched(v bool) *RawPostUpdateOne {
	_u.mutation.SetContextFetched(v)
	return _u
}

// SetNillableContextFetched sets the "context_fetched" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableContextFetched(v *bool) *RawPostUpdateOne {
	if v != nil {
		_u.SetContextFetched(*v)
	}
	return _u
}

// SetHasContext sets the "has_context" field.
func (_u *RawPostUpdateOne) SetHasContext(v bool) *RawPostUpdateOne {
	_u.mutation.SetHasContext(v)
	return _u
}

// SetNillableHasContext sets the "has_context" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableHasContext(v *bool) *RawPostUpdateOne {
	if v != nil {
		_u.SetHasContext(*v)
	}
	return _u
}

// SetAuthorName sets the "author_name" field.
func (_u *RawPostUpdateOne) SetAuthorName(v string) *RawPostUpdateOne {
	_u.mutation.SetAuthorName(v)
	return _u
}

// SetNillableAuthorName sets the "author_name" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableAuthorName(v *string) *RawPostUpdateOne {
	if v != nil {
		_u.SetAuthorName(*v)
	}
	return _u
}

// SetAuthorPlatformID sets the "author_platform_id" field.
func (_u *RawPostUpdateOne) SetAuthorPlatformID(v string) *RawPostUpdateOne {
	_u.mutation.SetAuthorPlatformID(v)
	return _u
}

// SetNillableAuthorPlatformID sets the "author_platform_id" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableAuthorPlatformID(v *string) *RawPostUpdateOne {
	if v != nil {
		_u.SetAuthorPlatformID(*v)
	}
	return _u
}

// ClearAuthorPlatformID clears the value of the "author_platform_id" field.
func (_u *RawPostUpdateOne) ClearAuthorPlatformID() *RawPostUpdateOne {
	_u.mutation.ClearAuthorPlatformID()
	return _u
}

// SetURL sets the "url" field.
func (_u *RawPostUpdateOne) SetURL(v string) *RawPostUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableURL(v *string) *RawPostUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *RawPostUpdateOne) SetPostedAt(v time.Time) *RawPostUpdateOne {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillablePostedAt(v *time.Time) *RawPostUpdateOne {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *RawPostUpdateOne) SetCollectedAt(v time.Time) *RawPostUpdateOne {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableCollectedAt(v *time.Time) *RawPostUpdateOne {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// SetRawMetadata sets the "raw_metadata" field.
func (_u *RawPostUpdateOne) SetRawMetadata(v string) *RawPostUpdateOne {
	_u.mutation.SetRawMetadata(v)
	return _u
}

// SetNillableRawMetadata sets the "raw_metadata" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableRawMetadata(v *string) *RawPostUpdateOne {
	if v != nil {
		_u.SetRawMetadata(*v)
	}
	return _u
}

// ClearRawMetadata clears the value of the "raw_metadata" field.
func (_u *RawPostUpdateOne) ClearRawMetadata() *RawPostUpdateOne {
	_u.mutation.ClearRawMetadata()
	return _u
}

// SetMediaJSON sets the "media_json" field.
func (_u *RawPostUpdateOne) SetMediaJSON(v string) *RawPostUpdateOne {
	_u.mutation.SetMediaJSON(v)
	return _u
}

// SetNillableMediaJSON sets the "media_json" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableMediaJSON(v *string) *RawPostUpdateOne {
	if v != nil {
		_u.SetMediaJSON(*v)
	}
	return _u
}

// ClearMediaJSON clears the value of the "media_json" field.
func (_u *RawPostUpdateOne) ClearMediaJSON() *RawPostUpdateOne {
	_u.mutation.ClearMediaJSON()
	return _u
}

// SetIsProcessed sets the "is_processed" field.
func (_u *RawPostUpdateOne) SetIsProcessed(v bool) *RawPostUpdateOne {
	_u.mutation.SetIsProcessed(v)
	return _u
}

// SetNillableIsProcessed sets the "is_processed" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableIsProcessed(v *bool) *RawPostUpdateOne {
	if v != nil {
		_u.SetIsProcessed(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *RawPostUpdateOne) SetProcessedAt(v time.Time) *RawPostUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableProcessedAt(v *time.Time) *RawPostUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *RawPostUpdateOne) ClearProcessedAt() *RawPostUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetMonitoredSourceID sets the "monitored_source_id" field.
func (_u *RawPostUpdateOne) SetMonitoredSourceID(v int) *RawPostUpdateOne {
	_u.mutation.SetMonitoredSourceID(v)
	return _u
}

// SetNillableMonitoredSourceID sets the "monitored_source_id" field if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableMonitoredSourceID(v *int) *RawPostUpdateOne {
	if v != nil {
		_u.SetMonitoredSourceID(*v)
	}
	return _u
}

// ClearMonitoredSourceID clears the value of the "monitored_source_id" field.
func (_u *RawPostUpdateOne) ClearMonitoredSourceID() *RawPostUpdateOne {
	_u.mutation.ClearMonitoredSourceID()
	return _u
}

// SetMonitoredSource sets the "monitored_source" edge to the MonitoredSource entity.
func (_u *RawPostUpdateOne) SetMonitoredSource(v *MonitoredSource) *RawPostUpdateOne {
	return _u.SetMonitoredSourceID(v.ID)
}

// AddFactIDs adds the "facts" edge to the Fact entity by IDs.
func (_u *RawPostUpdateOne) AddFactIDs(ids ...int) *RawPostUpdateOne {
	_u.mutation.AddFactIDs(ids...)
	return _u
}

// AddFacts adds the "facts" edges to the Fact entity.
func (_u *RawPostUpdateOne) AddFacts(v ...*Fact) *RawPostUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFactIDs(ids...)
}

// AddLogicIDs adds the "logics" edge to the Logic entity by IDs.
func (_u *RawPostUpdateOne) AddLogicIDs(ids ...int) *RawPostUpdateOne {
	_u.mutation.AddLogicIDs(ids...)
	return _u
}

// AddLogics adds the "logics" edges to the Logic entity.
func (_u *RawPostUpdateOne) AddLogics(v ...*Logic) *RawPostUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogicIDs(ids...)
}

// SetQualityAssessmentID sets the "quality_assessment" edge to the PostQualityAssessment entity by ID.
func (_u *RawPostUpdateOne) SetQualityAssessmentID(id int) *RawPostUpdateOne {
	_u.mutation.SetQualityAssessmentID(id)
	return _u
}

// SetNillableQualityAssessmentID sets the "quality_assessment" edge to the PostQualityAssessment entity by ID if the given value is not nil.
func (_u *RawPostUpdateOne) SetNillableQualityAssessmentID(id *int) *RawPostUpdateOne {
	if id != nil {
		_u = _u.SetQualityAssessmentID(*id)
	}
	return _u
}

// SetQualityAssessment sets the "quality_assessment" edge to the PostQualityAssessment entity.
func (_u *RawPostUpdateOne) SetQualityAssessment(v *PostQualityAssessment) *RawPostUpdateOne {
	return _u.SetQualityAssessmentID(v.ID)
}

// Mutation returns the RawPostMutation object of the builder.
func (_u *RawPostUpdateOne) Mutation() *RawPostMutation {
	return _u.mutation
}

// ClearMonitoredSource clears the "monitored_source" edge to the MonitoredSource entity.
func (_u *RawPostUpdateOne) ClearMonitoredSource() *RawPostUpdateOne {
	_u.mutation.ClearMonitoredSource()
	return _u
}

// ClearFacts clears all "facts" edges to the Fact entity.
func (_u *RawPostUpdateOne) ClearFacts() *RawPostUpdateOne {
	_u.mutation.ClearFacts()
	return _u
}

// RemoveFactIDs removes the "facts" edge to Fact entities by IDs.
func (_u *RawPostUpdateOne) RemoveFactIDs(ids ...int) *RawPostUpdateOne {
	_u.mutation.RemoveFactIDs(ids...)
	return _u
}

// RemoveFacts removes "facts" edges to Fact entities.
func (_u *RawPostUpdateOne) RemoveFacts(v ...*Fact) *RawPostUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFactIDs(ids...)
}

// ClearLogics clears all "logics" edges to the Logic entity.
func (_u *RawPostUpdateOne) ClearLogics() *RawPostUpdateOne {
	_u.mutation.ClearLogics()
	return _u
}

// RemoveLogicIDs removes the "logics" edge to Logic entities by IDs.
func (_u *RawPostUpdateOne) RemoveLogicIDs(ids ...int) *RawPostUpdateOne {
	_u.mutation.RemoveLogicIDs(ids...)
	return _u
}

// RemoveLogics removes "logics" edges to Logic entities.
func (_u *RawPostUpdateOne) RemoveLogics(v ...*Logic) *RawPostUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogicIDs(ids...)
}

// ClearQualityAssessment clears the "quality_assessment" edge to the PostQualityAssessment entity.
func (_u *RawPostUpdateOne) ClearQualityAssessment() *RawPostUpdateOne {
	_u.mutation.ClearQualityAssessment()
	return _u
}

// Where appends a list predicates to the RawPostUpdate builder.
func (_u *RawPostUpdateOne) Where(ps ...predicate.RawPost) *RawPostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RawPostUpdateOne) Select(field string, fields ...string) *RawPostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RawPost entity.
func (_u *RawPostUpdateOne) Save(ctx context.Context) (*RawPost, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawPostUpdateOne) SaveX(ctx context.Context) *RawPost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RawPostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawPostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RawPostUpdateOne) sqlSave(ctx context.Context) (_node *RawPost, err error) {
	_spec := sqlgraph.NewUpdateSpec(rawpost.Table, rawpost.Columns, sqlgraph.NewFieldSpec(rawpost.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RawPost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rawpost.FieldID)
		for _, f := range fields {
			if !rawpost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rawpost.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(rawpost.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(rawpost.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(rawpost.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnrichedContent(); ok {
		_spec.SetField(rawpost.FieldEnrichedContent, field.TypeString, value)
	}
	if _u.mutation.EnrichedContentCleared() {
		_spec.ClearField(rawpost.FieldEnrichedContent, field.TypeString)
	}
	if value, ok := _u.mutation.ContextFetched(); ok {
		_spec.SetField(rawpost.FieldContextFetched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasContext(); ok {
		_spec.SetField(rawpost.FieldHasContext, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AuthorName(); ok {
		_spec.SetField(rawpost.FieldAuthorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorPlatformID(); ok {
		_spec.SetField(rawpost.FieldAuthorPlatformID, field.TypeString, value)
	}
	if _u.mutation.AuthorPlatformIDCleared() {
		_spec.ClearField(rawpost.FieldAuthorPlatformID, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(rawpost.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(rawpost.FieldPostedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(rawpost.FieldCollectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawMetadata(); ok {
		_spec.SetField(rawpost.FieldRawMetadata, field.TypeString, value)
	}
	if _u.mutation.RawMetadataCleared() {
		_spec.ClearField(rawpost.FieldRawMetadata, field.TypeString)
	}
	if value, ok := _u.mutation.MediaJSON(); ok {
		_spec.SetField(rawpost.FieldMediaJSON, field.TypeString, value)
	}
	if _u.mutation.MediaJSONCleared() {
		_spec.ClearField(rawpost.FieldMediaJSON, field.TypeString)
	}
	if value, ok := _u.mutation.IsProcessed(); ok {
		_spec.SetField(rawpost.FieldIsProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(rawpost.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(rawpost.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.MonitoredSourceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MonitoredSourceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFactsIDs(); len(nodes) > 0 && !_u.mutation.FactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogicsIDs(); len(nodes) > 0 && !_u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QualityAssessmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QualityAssessmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RawPost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
