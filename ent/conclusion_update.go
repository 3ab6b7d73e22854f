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
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/topic"
)

// ConclusionUpdate is the builder for updating Conclusion entities.
type ConclusionUpdate struct {
	config
	hooks    []Hook
	mutation *ConclusionMutation
}

// Where appends a list predicates to the ConclusionUpdate builder.
func (_u *ConclusionUpdate) Where(ps ...predicate.Conclusion) *ConclusionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ConclusionUpdate) SetTopicID(v int) *ConclusionUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableTopicID(v *int) *ConclusionUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *ConclusionUpdate) SetAuthorID(v int) *ConclusionUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableAuthorID(v *int) *ConclusionUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetClaim sets the "claim" field.
func (_u *ConclusionUpdate) SetClaim(v string) *ConclusionUpdate {
	_u.mutation.SetClaim(v)
	return _u
}

// SetNillableClaim sets the "claim" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableClaim(v *string) *ConclusionUpdate {
	if v != nil {
		_u.SetClaim(*v)
	}
	return _u
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (_u *ConclusionUpdate) SetCanonicalClaim(v string) *ConclusionUpdate {
	_u.mutation.SetCanonicalClaim(v)
	return _u
}

// SetNillableCanonicalClaim sets the "canonical_claim" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableCanonicalClaim(v *string) *ConclusionUpdate {
	if v != nil {
		_u.SetCanonicalClaim(*v)
	}
	return _u
}

// ClearCanonicalClaim clears the value of the "canonical_claim" field.
func (_u *ConclusionUpdate) ClearCanonicalClaim() *ConclusionUpdate {
	_u.mutation.ClearCanonicalClaim()
	return _u
}

// SetConclusionType sets the "conclusion_type" field.
func (_u *ConclusionUpdate) SetConclusionType(v conclusion.ConclusionType) *ConclusionUpdate {
	_u.mutation.SetConclusionType(v)
	return _u
}

// SetNillableConclusionType sets the "conclusion_type" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableConclusionType(v *conclusion.ConclusionType) *ConclusionUpdate {
	if v != nil {
		_u.SetConclusionType(*v)
	}
	return _u
}

// SetTimeHorizonNote sets the "time_horizon_note" field.
func (_u *ConclusionUpdate) SetTimeHorizonNote(v string) *ConclusionUpdate {
	_u.mutation.SetTimeHorizonNote(v)
	return _u
}

// SetNillableTimeHorizonNote sets the "time_horizon_note" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableTimeHorizonNote(v *string) *ConclusionUpdate {
	if v != nil {
		_u.SetTimeHorizonNote(*v)
	}
	return _u
}

// ClearTimeHorizonNote clears the value of the "time_horizon_note" field.
func (_u *ConclusionUpdate) ClearTimeHorizonNote() *ConclusionUpdate {
	_u.mutation.ClearTimeHorizonNote()
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *ConclusionUpdate) SetValidFrom(v time.Time) *ConclusionUpdate {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableValidFrom(v *time.Time) *ConclusionUpdate {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// ClearValidFrom clears the value of the "valid_from" field.
func (_u *ConclusionUpdate) ClearValidFrom() *ConclusionUpdate {
	_u.mutation.ClearValidFrom()
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *ConclusionUpdate) SetValidUntil(v time.Time) *ConclusionUpdate {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableValidUntil(v *time.Time) *ConclusionUpdate {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *ConclusionUpdate) ClearValidUntil() *ConclusionUpdate {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConclusionUpdate) SetStatus(v conclusion.Status) *ConclusionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableStatus(v *conclusion.Status) *ConclusionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMonitoringSourceOrg sets the "monitoring_source_org" field.
func (_u *ConclusionUpdate) SetMonitoringSourceOrg(v string) *ConclusionUpdate {
	_u.mutation.SetMonitoringSourceOrg(v)
	return _u
}

// SetNillableMonitoringSourceOrg sets the "monitoring_source_org" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableMonitoringSourceOrg(v *string) *ConclusionUpdate {
	if v != nil {
		_u.SetMonitoringSourceOrg(*v)
	}
	return _u
}

// ClearMonitoringSourceOrg clears the value of the "monitoring_source_org" field.
func (_u *ConclusionUpdate) ClearMonitoringSourceOrg() *ConclusionUpdate {
	_u.mutation.ClearMonitoringSourceOrg()
	return _u
}

// SetMonitoringSourceURL sets the "monitoring_source_url" field.
func (_u *ConclusionUpdate) SetMonitoringSourceURL(v string) *ConclusionUpdate {
	_u.mutation.SetMonitoringSourceURL(v)
	return _u
}

// SetNillableMonitoringSourceURL sets the "monitoring_source_url" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableMonitoringSourceURL(v *string) *ConclusionUpdate {
	if v != nil {
		_u.SetMonitoringSourceURL(*v)
	}
	return _u
}

// ClearMonitoringSourceURL clears the value of the "monitoring_source_url" field.
func (_u *ConclusionUpdate) ClearMonitoringSourceURL() *ConclusionUpdate {
	_u.mutation.ClearMonitoringSourceURL()
	return _u
}

// SetMonitoringPeriodNote sets the "monitoring_period_note" field.
func (_u *ConclusionUpdate) SetMonitoringPeriodNote(v string) *ConclusionUpdate {
	_u.mutation.SetMonitoringPeriodNote(v)
	return _u
}

// SetNillableMonitoringPeriodNote sets the "monitoring_period_note" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableMonitoringPeriodNote(v *string) *ConclusionUpdate {
	if v != nil {
		_u.SetMonitoringPeriodNote(*v)
	}
	return _u
}

// ClearMonitoringPeriodNote clears the value of the "monitoring_period_note" field.
func (_u *ConclusionUpdate) ClearMonitoringPeriodNote() *ConclusionUpdate {
	_u.mutation.ClearMonitoringPeriodNote()
	return _u
}

// SetMonitoringStart sets the "monitoring_start" field.
func (_u *ConclusionUpdate) SetMonitoringStart(v time.Time) *ConclusionUpdate {
	_u.mutation.SetMonitoringStart(v)
	return _u
}

// SetNillableMonitoringStart sets the "monitoring_start" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableMonitoringStart(v *time.Time) *ConclusionUpdate {
	if v != nil {
		_u.SetMonitoringStart(*v)
	}
	return _u
}

// ClearMonitoringStart clears the value of the "monitoring_start" field.
func (_u *ConclusionUpdate) ClearMonitoringStart() *ConclusionUpdate {
	_u.mutation.ClearMonitoringStart()
	return _u
}

// SetMonitoringEnd sets the "monitoring_end" field.
func (_u *ConclusionUpdate) SetMonitoringEnd(v time.Time) *ConclusionUpdate {
	_u.mutation.SetMonitoringEnd(v)
	return _u
}

// SetNillableMonitoringEnd sets the "monitoring_end" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableMonitoringEnd(v *time.Time) *ConclusionUpdate {
	if v != nil {
		_u.SetMonitoringEnd(*v)
	}
	return _u
}

// ClearMonitoringEnd clears the value of the "monitoring_end" field.
func (_u *ConclusionUpdate) ClearMonitoringEnd() *ConclusionUpdate {
	_u.mutation.ClearMonitoringEnd()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *ConclusionUpdate) SetSourceURL(v string) *ConclusionUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableSourceURL(v *string) *ConclusionUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetSourcePlatform sets the "source_platform" field.
func (_u *ConclusionUpdate) SetSourcePlatform(v string) *ConclusionUpdate {
	_u.mutation.SetSourcePlatform(v)
	return _u
}

// SetNillableSourcePlatform sets the "source_platform" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableSourcePlatform(v *string) *ConclusionUpdate {
	if v != nil {
		_u.SetSourcePlatform(*v)
	}
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *ConclusionUpdate) SetPostedAt(v time.Time) *ConclusionUpdate {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillablePostedAt(v *time.Time) *ConclusionUpdate {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *ConclusionUpdate) SetCollectedAt(v time.Time) *ConclusionUpdate {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableCollectedAt(v *time.Time) *ConclusionUpdate {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// SetRawExtraction sets the "raw_extraction" field.
func (_u *ConclusionUpdate) SetRawExtraction(v string) *ConclusionUpdate {
	_u.mutation.SetRawExtraction(v)
	return _u
}

// SetNillableRawExtraction sets the "raw_extraction" field if the given value is not nil.
func (_u *ConclusionUpdate) SetNillableRawExtraction(v *string) *ConclusionUpdate {
	if v != nil {
		_u.SetRawExtraction(*v)
	}
	return _u
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (_u *ConclusionUpdate) ClearRawExtraction() *ConclusionUpdate {
	_u.mutation.ClearRawExtraction()
	return _u
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *ConclusionUpdate) SetTopic(v *Topic) *ConclusionUpdate {
	return _u.SetTopicID(v.ID)
}

// SetAuthor sets the "author" edge to the Author entity.
func (_u *ConclusionUpdate) SetAuthor(v *Author) *ConclusionUpdate {
	return _u.SetAuthorID(v.ID)
}

// AddLogicIDs adds the "logics" edge to the Logic entity by IDs.
func (_u *ConclusionUpdate) AddLogicIDs(ids ...int) *ConclusionUpdate {
	_u.mutation.AddLogicIDs(ids...)
	return _u
}

// AddLogics adds the "logics" edges to the Logic entity.
func (_u *ConclusionUpdate) AddLogics(v ...*Logic) *ConclusionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogicIDs(ids...)
}

// AddVerdictIDs adds the "verdicts" edge to the ConclusionVerdict entity by IDs.
func (_u *ConclusionUpdate) AddVerdictIDs(ids ...int) *ConclusionUpdate {
	_u.mutation.AddVerdictIDs(ids...)
	return _u
}

// AddVerdicts adds the "verdicts" edges to the ConclusionVerdict entity.
func (_u *ConclusionUpdate) AddVerdicts(v ...*ConclusionVerdict) *ConclusionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerdictIDs(ids...)
}

// Mutation returns the ConclusionMutation object of the builder.
func (_u *ConclusionUpdate) Mutation() *ConclusionMutation {
	return _u.mutation
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *ConclusionUpdate) ClearTopic() *ConclusionUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// ClearAuthor clears the "author" edge to the Author entity.
func (_u *ConclusionUpdate) ClearAuthor() *ConclusionUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearLogics clears all "logics" edges to the Logic entity.
func (_u *ConclusionUpdate) ClearLogics() *ConclusionUpdate {
	_u.mutation.ClearLogics()
	return _u
}

// RemoveLogicIDs removes the "logics" edge to Logic entities by IDs.
func (_u *ConclusionUpdate) RemoveLogicIDs(ids ...int) *ConclusionUpdate {
	_u.mutation.RemoveLogicIDs(ids...)
	return _u
}

// RemoveLogics removes "logics" edges to Logic entities.
func (_u *ConclusionUpdate) RemoveLogics(v ...*Logic) *ConclusionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogicIDs(ids...)
}

// ClearVerdicts clears all "verdicts" edges to the ConclusionVerdict entity.
func (_u *ConclusionUpdate) ClearVerdicts() *ConclusionUpdate {
	_u.mutation.ClearVerdicts()
	return _u
}

// RemoveVerdictIDs removes the "verdicts" edge to ConclusionVerdict entities by IDs.
func (_u *ConclusionUpdate) RemoveVerdictIDs(ids ...int) *ConclusionUpdate {
	_u.mutation.RemoveVerdictIDs(ids...)
	return _u
}

// RemoveVerdicts removes "verdicts" edges to ConclusionVerdict entities.
func (_u *ConclusionUpdate) RemoveVerdicts(v ...*ConclusionVerdict) *ConclusionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerdictIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConclusionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConclusionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConclusionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConclusionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConclusionUpdate) check() error {
	if v, ok := _u.mutation.ConclusionType(); ok {
		if err := conclusion.ConclusionTypeValidator(v); err != nil {
			return &ValidationError{Name: "conclusion_type", err: fmt.Errorf(`ent: validator failed for field "Conclusion.conclusion_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conclusion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conclusion.status": %w`, err)}
		}
	}
	if _u.mutation.TopicCleared() && len(_u.mutation.TopicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conclusion.topic"`)
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conclusion.author"`)
	}
	return nil
}

func (_u *ConclusionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conclusion.Table, conclusion.Columns, sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Claim(); ok {
		_spec.SetField(conclusion.FieldClaim, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalClaim(); ok {
		_spec.SetField(conclusion.FieldCanonicalClaim, field.TypeString, value)
	}
	if _u.mutation.CanonicalClaimCleared() {
		_spec.ClearField(conclusion.FieldCanonicalClaim, field.TypeString)
	}
	if value, ok := _u.mutation.ConclusionType(); ok {
		_spec.SetField(conclusion.FieldConclusionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeHorizonNote(); ok {
		_spec.SetField(conclusion.FieldTimeHorizonNote, field.TypeString, value)
	}
	if _u.mutation.TimeHorizonNoteCleared() {
		_spec.ClearField(conclusion.FieldTimeHorizonNote, field.TypeString)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(conclusion.FieldValidFrom, field.TypeTime, value)
	}
	if _u.mutation.ValidFromCleared() {
		_spec.ClearField(conclusion.FieldValidFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(conclusion.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(conclusion.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conclusion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MonitoringSourceOrg(); ok {
		_spec.SetField(conclusion.FieldMonitoringSourceOrg, field.TypeString, value)
	}
	if _u.mutation.MonitoringSourceOrgCleared() {
		_spec.ClearField(conclusion.FieldMonitoringSourceOrg, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringSourceURL(); ok {
		_spec.SetField(conclusion.FieldMonitoringSourceURL, field.TypeString, value)
	}
	if _u.mutation.MonitoringSourceURLCleared() {
		_spec.ClearField(conclusion.FieldMonitoringSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringPeriodNote(); ok {
		_spec.SetField(conclusion.FieldMonitoringPeriodNote, field.TypeString, value)
	}
	if _u.mutation.MonitoringPeriodNoteCleared() {
		_spec.ClearField(conclusion.FieldMonitoringPeriodNote, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringStart(); ok {
		_spec.SetField(conclusion.FieldMonitoringStart, field.TypeTime, value)
	}
	if _u.mutation.MonitoringStartCleared() {
		_spec.ClearField(conclusion.FieldMonitoringStart, field.TypeTime)
	}
	if value, ok := _u.mutation.MonitoringEnd(); ok {
		_spec.SetField(conclusion.FieldMonitoringEnd, field.TypeTime, value)
	}
	if _u.mutation.MonitoringEndCleared() {
		_spec.ClearField(conclusion.FieldMonitoringEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(conclusion.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePlatform(); ok {
		_spec.SetField(conclusion.FieldSourcePlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(conclusion.FieldPostedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(conclusion.FieldCollectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawExtraction(); ok {
		_spec.SetField(conclusion.FieldRawExtraction, field.TypeString, value)
	}
	if _u.mutation.RawExtractionCleared() {
		_spec.ClearField(conclusion.FieldRawExtraction, field.TypeString)
	}
	if _u.mutation.TopicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogicsIDs(); len(nodes) > 0 && !_u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerdictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerdictsIDs(); len(nodes) > 0 && !_u.mutation.VerdictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerdictsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conclusion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConclusionUpdateOne is the builder for updating a single Conclusion entity.
type ConclusionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConclusionMutation
}

// SetTopicID sets the "topic_id" field.
func (_u *ConclusionUpdateOne) SetTopicID(v int) *ConclusionUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableTopicID(v *int) *ConclusionUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *ConclusionUpdateOne) SetAuthorID(v int) *ConclusionUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableAuthorID(v *int) *ConclusionUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetClaim sets the "claim" field.
func (_u *ConclusionUpdateOne) SetClaim(v string) *ConclusionUpdateOne {
	_u.mutation.SetClaim(v)
	return _u
}

// SetNillableClaim sets the "claim" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableClaim(v *string) *ConclusionUpdateOne {
	if v != nil {
		_u.SetClaim(*v)
	}
	return _u
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (_u *ConclusionUpdateOne) SetCanonicalClaim(v string) *ConclusionUpdateOne {
	_u.mutation.SetCanonicalClaim(v)
	return _u
}

// SetNillableCanonicalClaim sets the "canonical_claim" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableCanonicalClaim(v *string) *ConclusionUpdateOne {
	if v != nil {
		_u.SetCanonicalClaim(*v)
	}
	return _u
}

// ClearCanonicalClaim clears the value of the "canonical_claim" field.
func (_u *ConclusionUpdateOne) ClearCanonicalClaim() *ConclusionUpdateOne {
	_u.mutation.ClearCanonicalClaim()
	return _u
}

// SetConclusionType sets the "conclusion_type" field.
func (_u *ConclusionUpdateOne) SetConclusionType(v conclusion.ConclusionType) *ConclusionUpdateOne {
	_u.mutation.SetConclusionType(v)
	return _u
}

// SetNillableConclusionType sets the "conclusion_type" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableConclusionType(v *conclusion.ConclusionType) *ConclusionUpdateOne {
	if v != nil {
		_u.SetConclusionType(*v)
	}
	return _u
}

// SetTimeHorizonNote sets the "time_horizon_note" field.
func (_u *ConclusionUpdateOne) SetTimeHorizonNote(v string) *ConclusionUpdateOne {
	_u.mutation.SetTimeHorizonNote(v)
	return _u
}

// SetNillableTimeHorizonNote sets the "time_horizon_note" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableTimeHorizonNote(v *string) *ConclusionUpdateOne {
	if v != nil {
		_u.SetTimeHorizonNote(*v)
	}
	return _u
}

// ClearTimeHorizonNote clears the value of the "time_horizon_note" field.
func (_u *ConclusionUpdateOne) ClearTimeHorizonNote() *ConclusionUpdateOne {
	_u.mutation.ClearTimeHorizonNote()
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *ConclusionUpdateOne) SetValidFrom(v time.Time) *ConclusionUpdateOne {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableValidFrom(v *time.Time) *ConclusionUpdateOne {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// ClearValidFrom clears the value of the "valid_from" field.
func (_u *ConclusionUpdateOne) ClearValidFrom() *ConclusionUpdateOne {
	_u.mutation.ClearValidFrom()
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *ConclusionUpdateOne) SetValidUntil(v time.Time) *ConclusionUpdateOne {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableValidUntil(v *time.Time) *ConclusionUpdateOne {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *ConclusionUpdateOne) ClearValidUntil() *ConclusionUpdateOne {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConclusionUpdateOne) SetStatus(v conclusion.Status) *ConclusionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableStatus(v *conclusion.Status) *ConclusionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMonitoringSourceOrg sets the "monitoring_source_org" field.
func (_u *ConclusionUpdateOne) SetMonitoringSourceOrg(v string) *ConclusionUpdateOne {
	_u.mutation.SetMonitoringSourceOrg(v)
	return _u
}

// SetNillableMonitoringSourceOrg sets the "monitoring_source_org" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableMonitoringSourceOrg(v *string) *ConclusionUpdateOne {
	if v != nil {
		_u.SetMonitoringSourceOrg(*v)
	}
	return _u
}

// ClearMonitoringSourceOrg clears the value of the "monitoring_source_org" field.
func (_u *ConclusionUpdateOne) ClearMonitoringSourceOrg() *ConclusionUpdateOne {
	_u.mutation.ClearMonitoringSourceOrg()
	return _u
}

// SetMonitoringSourceURL sets the "monitoring_source_url" field.
func (_u *ConclusionUpdateOne) SetMonitoringSourceURL(v string) *ConclusionUpdateOne {
	_u.mutation.SetMonitoringSourceURL(v)
	return _u
}

// SetNillableMonitoringSourceURL sets the "monitoring_source_url" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableMonitoringSourceURL(v *string) *ConclusionUpdateOne {
	if v != nil {
		_u.SetMonitoringSourceURL(*v)
	}
	return _u
}

// ClearMonitoringSourceURL clears the value of the "monitoring_source_url" field.
func (_u *ConclusionUpdateOne) ClearMonitoringSourceURL() *ConclusionUpdateOne {
	_u.mutation.ClearMonitoringSourceURL()
	return _u
}

// SetMonitoringPeriodNote sets the "monitoring_period_note" field.
func (_u *ConclusionUpdateOne) SetMonitoringPeriodNote(v string) *ConclusionUpdateOne {
	_u.mutation.SetMonitoringPeriodNote(v)
	return _u
}

// SetNillableMonitoringPeriodNote sets the "monitoring_period_note" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableMonitoringPeriodNote(v *string) *ConclusionUpdateOne {
	if v != nil {
		_u.SetMonitoringPeriodNote(*v)
	}
	return _u
}

// ClearMonitoringPeriodNote clears the value of the "monitoring_period_note" field.
func (_u *ConclusionUpdateOne) ClearMonitoringPeriodNote() *ConclusionUpdateOne {
	_u.mutation.ClearMonitoringPeriodNote()
	return _u
}

// SetMonitoringStart sets the "monitoring_start" field.
func (_u *ConclusionUpdateOne) SetMonitoringStart(v time.Time) *ConclusionUpdateOne {
	_u.mutation.SetMonitoringStart(v)
	return _u
}

// SetNillableMonitoringStart sets the "monitoring_start" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableMonitoringStart(v *time.Time) *ConclusionUpdateOne {
	if v != nil {
		_u.SetMonitoringStart(*v)
	}
	return _u
}

// ClearMonitoringStart clears the value of the "monitoring_start" field.
func (_u *ConclusionUpdateOne) ClearMonitoringStart() *ConclusionUpdateOne {
	_u.mutation.ClearMonitoringStart()
	return _u
}

// SetMonitoringEnd sets the "monitoring_end" field.
func (_u *ConclusionUpdateOne) SetMonitoringEnd(v time.Time) *ConclusionUpdateOne {
	_u.mutation.SetMonitoringEnd(v)
	return _u
}

// SetNillableMonitoringEnd sets the "monitoring_end" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableMonitoringEnd(v *time.Time) *ConclusionUpdateOne {
	if v != nil {
		_u.SetMonitoringEnd(*v)
	}
	return _u
}

// ClearMonitoringEnd clears the value of the "monitoring_end" field.
func (_u *ConclusionUpdateOne) ClearMonitoringEnd() *ConclusionUpdateOne {
	_u.mutation.ClearMonitoringEnd()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *ConclusionUpdateOne) SetSourceURL(v string) *ConclusionUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableSourceURL(v *string) *ConclusionUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetSourcePlatform sets the "source_platform" field.
func (_u *ConclusionUpdateOne) SetSourcePlatform(v string) *ConclusionUpdateOne {
	_u.mutation.SetSourcePlatform(v)
	return _u
}

// SetNillableSourcePlatform sets the "source_platform" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableSourcePlatform(v *string) *ConclusionUpdateOne {
	if v != nil {
		_u.SetSourcePlatform(*v)
	}
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *ConclusionUpdateOne) SetPostedAt(v time.Time) *ConclusionUpdateOne {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillablePostedAt(v *time.Time) *ConclusionUpdateOne {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *ConclusionUpdateOne) SetCollectedAt(v time.Time) *ConclusionUpdateOne {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableCollectedAt(v *time.Time) *ConclusionUpdateOne {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// SetRawExtraction sets the "raw_extraction" field.
func (_u *ConclusionUpdateOne) SetRawExtraction(v string) *ConclusionUpdateOne {
	_u.mutation.SetRawExtraction(v)
	return _u
}

// SetNillableRawExtraction sets the "raw_extraction" field if the given value is not nil.
func (_u *ConclusionUpdateOne) SetNillableRawExtraction(v *string) *ConclusionUpdateOne {
	if v != nil {
		_u.SetRawExtraction(*v)
	}
	return _u
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (_u *ConclusionUpdateOne) ClearRawExtraction() *ConclusionUpdateOne {
	_u.mutation.ClearRawExtraction()
	return _u
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *ConclusionUpdateOne) SetTopic(v *Topic) *ConclusionUpdateOne {
	return _u.SetTopicID(v.ID)
}

// SetAuthor sets the "author" edge to the Author entity.
func (_u *ConclusionUpdateOne) SetAuthor(v *Author) *ConclusionUpdateOne {
	return _u.SetAuthorID(v.ID)
}

// AddLogicIDs adds the "logics" edge to the Logic entity by IDs.
func (_u *ConclusionUpdateOne) AddLogicIDs(ids ...int) *ConclusionUpdateOne {
	_u.mutation.AddLogicIDs(ids...)
	return _u
}

// AddLogics adds the "logics" edges to the Logic entity.
func (_u *ConclusionUpdateOne) AddLogics(v ...*Logic) *ConclusionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogicIDs(ids...)
}

// AddVerdictIDs adds the "verdicts" edge to the ConclusionVerdict entity by IDs.
func (_u *ConclusionUpdateOne) AddVerdictIDs(ids ...int) *ConclusionUpdateOne {
	_u.mutation.AddVerdictIDs(ids...)
	return _u
}

// AddVerdicts adds the "verdicts" edges to the ConclusionVerdict entity.
func (_u *ConclusionUpdateOne) AddVerdicts(v ...*ConclusionVerdict) *ConclusionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerdictIDs(ids...)
}

// Mutation returns the ConclusionMutation object of the builder.
func (_u *ConclusionUpdateOne) Mutation() *ConclusionMutation {
	return _u.mutation
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *ConclusionUpdateOne) ClearTopic() *ConclusionUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// ClearAuthor clears the "author" edge to the Author entity.
func (_u *ConclusionUpdateOne) ClearAuthor() *ConclusionUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearLogics clears all "logics" edges to the Logic entity.
func (_u *ConclusionUpdateOne) ClearLogics() *ConclusionUpdateOne {
	_u.mutation.ClearLogics()
	return _u
}

// RemoveLogicIDs removes the "logics" edge to Logic entities by IDs.
func (_u *ConclusionUpdateOne) RemoveLogicIDs(ids ...int) *ConclusionUpdateOne {
	_u.mutation.RemoveLogicIDs(ids...)
	return _u
}

// RemoveLogics removes "logics" edges to Logic entities.
func (_u *ConclusionUpdateOne) RemoveLogics(v ...*Logic) *ConclusionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogicIDs(ids...)
}

// ClearVerdicts clears all "verdicts" edges to the ConclusionVerdict entity.
func (_u *ConclusionUpdateOne) ClearVerdicts() *ConclusionUpdateOne {
	_u.mutation.ClearVerdicts()
	return _u
}

// RemoveVerdictIDs removes the "verdicts" edge to ConclusionVerdict entities by IDs.
func (_u *ConclusionUpdateOne) RemoveVerdictIDs(ids ...int) *ConclusionUpdateOne {
	_u.mutation.RemoveVerdictIDs(ids...)
	return _u
}

// RemoveVerdicts removes "verdicts" edges to ConclusionVerdict entities.
func (_u *ConclusionUpdateOne) RemoveVerdicts(v ...*ConclusionVerdict) *ConclusionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerdictIDs(ids...)
}

// Where appends a list predicates to the ConclusionUpdate builder.
func (_u *ConclusionUpdateOne) Where(ps ...predicate.Conclusion) *ConclusionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConclusionUpdateOne) Select(field string, fields ...string) *ConclusionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conclusion entity.
func (_u *ConclusionUpdateOne) Save(ctx context.Context) (*Conclusion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConclusionUpdateOne) SaveX(ctx context.Context) *Conclusion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConclusionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConclusionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConclusionUpdateOne) check() error {
	if v, ok := _u.mutation.ConclusionType(); ok {
		if err := conclusion.ConclusionTypeValidator(v); err != nil {
			return &ValidationError{Name: "conclusion_type", err: fmt.Errorf(`ent: validator failed for field "Conclusion.conclusion_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conclusion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conclusion.status": %w`, err)}
		}
	}
	if _u.mutation.TopicCleared() && len(_u.mutation.TopicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conclusion.topic"`)
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conclusion.author"`)
	}
	return nil
}

func (_u *ConclusionUpdateOne) sqlSave(ctx context.Context) (_node *Conclusion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conclusion.Table, conclusion.Columns, sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conclusion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conclusion.FieldID)
		for _, f := range fields {
			if !conclusion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conclusion.FieldID {
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
	if value, ok := _u.mutation.Claim(); ok {
		_spec.SetField(conclusion.FieldClaim, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalClaim(); ok {
		_spec.SetField(conclusion.FieldCanonicalClaim, field.TypeString, value)
	}
	if _u.mutation.CanonicalClaimCleared() {
		_spec.ClearField(conclusion.FieldCanonicalClaim, field.TypeString)
	}
	if value, ok := _u.mutation.ConclusionType(); ok {
		_spec.SetField(conclusion.FieldConclusionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeHorizonNote(); ok {
		_spec.SetField(conclusion.FieldTimeHorizonNote, field.TypeString, value)
	}
	if _u.mutation.TimeHorizonNoteCleared() {
		_spec.ClearField(conclusion.FieldTimeHorizonNote, field.TypeString)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(conclusion.FieldValidFrom, field.TypeTime, value)
	}
	if _u.mutation.ValidFromCleared() {
		_spec.ClearField(conclusion.FieldValidFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(conclusion.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(conclusion.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conclusion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MonitoringSourceOrg(); ok {
		_spec.SetField(conclusion.FieldMonitoringSourceOrg, field.TypeString, value)
	}
	if _u.mutation.MonitoringSourceOrgCleared() {
		_spec.ClearField(conclusion.FieldMonitoringSourceOrg, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringSourceURL(); ok {
		_spec.SetField(conclusion.FieldMonitoringSourceURL, field.TypeString, value)
	}
	if _u.mutation.MonitoringSourceURLCleared() {
		_spec.ClearField(conclusion.FieldMonitoringSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringPeriodNote(); ok {
		_spec.SetField(conclusion.FieldMonitoringPeriodNote, field.TypeString, value)
	}
	if _u.mutation.MonitoringPeriodNoteCleared() {
		_spec.ClearField(conclusion.FieldMonitoringPeriodNote, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringStart(); ok {
		_spec.SetField(conclusion.FieldMonitoringStart, field.TypeTime, value)
	}
	if _u.mutation.MonitoringStartCleared() {
		_spec.ClearField(conclusion.FieldMonitoringStart, field.TypeTime)
	}
	if value, ok := _u.mutation.MonitoringEnd(); ok {
		_spec.SetField(conclusion.FieldMonitoringEnd, field.TypeTime, value)
	}
	if _u.mutation.MonitoringEndCleared() {
		_spec.ClearField(conclusion.FieldMonitoringEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(conclusion.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePlatform(); ok {
		_spec.SetField(conclusion.FieldSourcePlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(conclusion.FieldPostedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(conclusion.FieldCollectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawExtraction(); ok {
		_spec.SetField(conclusion.FieldRawExtraction, field.TypeString, value)
	}
	if _u.mutation.RawExtractionCleared() {
		_spec.ClearField(conclusion.FieldRawExtraction, field.TypeString)
	}
	if _u.mutation.TopicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogicsIDs(); len(nodes) > 0 && !_u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerdictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerdictsIDs(); len(nodes) > 0 && !_u.mutation.VerdictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerdictsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conclusion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conclusion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
