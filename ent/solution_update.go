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
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/ent/topic"
)

// SolutionUpdate is the builder for updating Solution entities.
type SolutionUpdate struct {
	config
	hooks    []Hook
	mutation *SolutionMutation
}

// Where appends a list predicates to the SolutionUpdate builder.
func (_u *SolutionUpdate) Where(ps ...predicate.Solution) *SolutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SolutionUpdate) SetTopicID(v int) *SolutionUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableTopicID(v *int) *SolutionUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *SolutionUpdate) ClearTopicID() *SolutionUpdate {
	_u.mutation.ClearTopicID()
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *SolutionUpdate) SetAuthorID(v int) *SolutionUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableAuthorID(v *int) *SolutionUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetClaim sets the "claim" field.
func (_u *SolutionUpdate) SetClaim(v string) *SolutionUpdate {
	_u.mutation.SetClaim(v)
	return _u
}

// SetNillableClaim sets the "claim" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableClaim(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetClaim(*v)
	}
	return _u
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (_u *SolutionUpdate) SetCanonicalClaim(v string) *SolutionUpdate {
	_u.mutation.SetCanonicalClaim(v)
	return _u
}

// SetNillableCanonicalClaim sets the "canonical_claim" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableCanonicalClaim(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetCanonicalClaim(*v)
	}
	return _u
}

// ClearCanonicalClaim clears the value of the "canonical_claim" field.
func (_u *SolutionUpdate) ClearCanonicalClaim() *SolutionUpdate {
	_u.mutation.ClearCanonicalClaim()
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *SolutionUpdate) SetActionType(v solution.ActionType) *SolutionUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableActionType(v *solution.ActionType) *SolutionUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// ClearActionType clears the value of the "action_type" field.
func (_u *SolutionUpdate) ClearActionType() *SolutionUpdate {
	_u.mutation.ClearActionType()
	return _u
}

// SetActionTarget sets the "action_target" field.
func (_u *SolutionUpdate) SetActionTarget(v string) *SolutionUpdate {
	_u.mutation.SetActionTarget(v)
	return _u
}

// SetNillableActionTarget sets the "action_target" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableActionTarget(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetActionTarget(*v)
	}
	return _u
}

// ClearActionTarget clears the value of the "action_target" field.
func (_u *SolutionUpdate) ClearActionTarget() *SolutionUpdate {
	_u.mutation.ClearActionTarget()
	return _u
}

// SetActionRationale sets the "action_rationale" field.
func (_u *SolutionUpdate) SetActionRationale(v string) *SolutionUpdate {
	_u.mutation.SetActionRationale(v)
	return _u
}

// SetNillableActionRationale sets the "action_rationale" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableActionRationale(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetActionRationale(*v)
	}
	return _u
}

// ClearActionRationale clears the value of the "action_rationale" field.
func (_u *SolutionUpdate) ClearActionRationale() *SolutionUpdate {
	_u.mutation.ClearActionRationale()
	return _u
}

// SetSimulatedActionNote sets the "simulated_action_note" field.
func (_u *SolutionUpdate) SetSimulatedActionNote(v string) *SolutionUpdate {
	_u.mutation.SetSimulatedActionNote(v)
	return _u
}

// SetNillableSimulatedActionNote sets the "simulated_action_note" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableSimulatedActionNote(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetSimulatedActionNote(*v)
	}
	return _u
}

// ClearSimulatedActionNote clears the value of the "simulated_action_note" field.
func (_u *SolutionUpdate) ClearSimulatedActionNote() *SolutionUpdate {
	_u.mutation.ClearSimulatedActionNote()
	return _u
}

// SetMonitoringSourceOrg sets the "monitoring_source_org" field.
func (_u *SolutionUpdate) SetMonitoringSourceOrg(v string) *SolutionUpdate {
	_u.mutation.SetMonitoringSourceOrg(v)
	return _u
}

// SetNillableMonitoringSourceOrg sets the "monitoring_source_org" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableMonitoringSourceOrg(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetMonitoringSourceOrg(*v)
	}
	return _u
}

// ClearMonitoringSourceOrg clears the value of the "monitoring_source_org" field.
func (_u *SolutionUpdate) ClearMonitoringSourceOrg() *SolutionUpdate {
	_u.mutation.ClearMonitoringSourceOrg()
	return _u
}

// SetMonitoringSourceURL sets the "monitoring_source_url" field.
func (_u *SolutionUpdate) SetMonitoringSourceURL(v string) *SolutionUpdate {
	_u.mutation.SetMonitoringSourceURL(v)
	return _u
}

// SetNillableMonitoringSourceURL sets the "monitoring_source_url" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableMonitoringSourceURL(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetMonitoringSourceURL(*v)
	}
	return _u
}

// ClearMonitoringSourceURL clears the value of the "monitoring_source_url" field.
func (_u *SolutionUpdate) ClearMonitoringSourceURL() *SolutionUpdate {
	_u.mutation.ClearMonitoringSourceURL()
	return _u
}

// SetMonitoringPeriodNote sets the "monitoring_period_note" field.
func (_u *SolutionUpdate) SetMonitoringPeriodNote(v string) *SolutionUpdate {
	_u.mutation.SetMonitoringPeriodNote(v)
	return _u
}

// SetNillableMonitoringPeriodNote sets the "monitoring_period_note" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableMonitoringPeriodNote(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetMonitoringPeriodNote(*v)
	}
	return _u
}

// ClearMonitoringPeriodNote clears the value of the "monitoring_period_note" field.
func (_u *SolutionUpdate) ClearMonitoringPeriodNote() *SolutionUpdate {
	_u.mutation.ClearMonitoringPeriodNote()
	return _u
}

// SetMonitoringStart sets the "monitoring_start" field.
func (_u *SolutionUpdate) SetMonitoringStart(v time.Time) *SolutionUpdate {
	_u.mutation.SetMonitoringStart(v)
	return _u
}

// SetNillableMonitoringStart sets the "monitoring_start" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableMonitoringStart(v *time.Time) *SolutionUpdate {
	if v != nil {
		_u.SetMonitoringStart(*v)
	}
	return _u
}

// ClearMonitoringStart clears the value of the "monitoring_start" field.
func (_u *SolutionUpdate) ClearMonitoringStart() *SolutionUpdate {
	_u.mutation.ClearMonitoringStart()
	return _u
}

// SetMonitoringEnd sets the "monitoring_end" field.
func (_u *SolutionUpdate) SetMonitoringEnd(v time.Time) *SolutionUpdate {
	_u.mutation.SetMonitoringEnd(v)
	return _u
}

// SetNillableMonitoringEnd sets the "monitoring_end" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableMonitoringEnd(v *time.Time) *SolutionUpdate {
	if v != nil {
		_u.SetMonitoringEnd(*v)
	}
	return _u
}

// ClearMonitoringEnd clears the value of the "monitoring_end" field.
func (_u *SolutionUpdate) ClearMonitoringEnd() *SolutionUpdate {
	_u.mutation.ClearMonitoringEnd()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SolutionUpdate) SetStatus(v solution.Status) *SolutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableStatus(v *solution.Status) *SolutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *SolutionUpdate) SetSourceURL(v string) *SolutionUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableSourceURL(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *SolutionUpdate) ClearSourceURL() *SolutionUpdate {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetSourcePlatform sets the "source_platform" field.
func (_u *SolutionUpdate) SetSourcePlatform(v string) *SolutionUpdate {
	_u.mutation.SetSourcePlatform(v)
	return _u
}

// SetNillableSourcePlatform sets the "source_platform" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableSourcePlatform(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetSourcePlatform(*v)
	}
	return _u
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (_u *SolutionUpdate) ClearSourcePlatform() *SolutionUpdate {
	_u.mutation.ClearSourcePlatform()
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *SolutionUpdate) SetPostedAt(v time.Time) *SolutionUpdate {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillablePostedAt(v *time.Time) *SolutionUpdate {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// ClearPostedAt clears the value of the "posted_at" field.
func (_u *SolutionUpdate) ClearPostedAt() *SolutionUpdate {
	_u.mutation.ClearPostedAt()
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *SolutionUpdate) SetCollectedAt(v time.Time) *SolutionUpdate {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableCollectedAt(v *time.Time) *SolutionUpdate {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// SetRawExtraction sets the "raw_extraction" field.
func (_u *SolutionUpdate) SetRawExtraction(v string) *SolutionUpdate {
	_u.mutation.SetRawExtraction(v)
	return _u
}

// SetNillableRawExtraction sets the "raw_extraction" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableRawExtraction(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetRawExtraction(*v)
	}
	return _u
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (_u *SolutionUpdate) ClearRawExtraction() *SolutionUpdate {
	_u.mutation.ClearRawExtraction()
	return _u
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *SolutionUpdate) SetTopic(v *Topic) *SolutionUpdate {
	return _u.SetTopicID(v.ID)
}

// SetAuthor sets the "author" edge to the Author entity.
func (_u *SolutionUpdate) SetAuthor(v *Author) *SolutionUpdate {
	return _u.SetAuthorID(v.ID)
}

// AddLogicIDs adds the "logics" edge to the Logic entity by IDs.
func (_u *SolutionUpdate) AddLogicIDs(ids ...int) *SolutionUpdate {
	_u.mutation.AddLogicIDs(ids...)
	return _u
}

// AddLogics adds the "logics" edges to the Logic entity.
func (_u *SolutionUpdate) AddLogics(v ...*Logic) *SolutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogicIDs(ids...)
}

// AddAssessmentIDs adds the "assessments" edge to the SolutionAssessment entity by IDs.
func (_u *SolutionUpdate) AddAssessmentIDs(ids ...int) *SolutionUpdate {
	_u.mutation.AddAssessmentIDs(ids...)
	return _u
}

// AddAssessments adds the "assessments" edges to the SolutionAssessment entity.
func (_u *SolutionUpdate) AddAssessments(v ...*SolutionAssessment) *SolutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssessmentIDs(ids...)
}

// Mutation returns the SolutionMutation object of the builder.
func (_u *SolutionUpdate) Mutation() *SolutionMutation {
	return _u.mutation
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *SolutionUpdate) ClearTopic() *SolutionUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// ClearAuthor clears the "author" edge to the Author entity.
func (_u *SolutionUpdate) ClearAuthor() *SolutionUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearLogics clears all "logics" edges to the Logic entity.
func (_u *SolutionUpdate) ClearLogics() *SolutionUpdate {
	_u.mutation.ClearLogics()
	return _u
}

// RemoveLogicIDs removes the "logics" edge to Logic entities by IDs.
func (_u *SolutionUpdate) RemoveLogicIDs(ids ...int) *SolutionUpdate {
	_u.mutation.RemoveLogicIDs(ids...)
	return _u
}

// RemoveLogics removes "logics" edges to Logic entities.
func (_u *SolutionUpdate) RemoveLogics(v ...*Logic) *SolutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogicIDs(ids...)
}

// ClearAssessments clears all "assessments" edges to the SolutionAssessment entity.
func (_u *SolutionUpdate) ClearAssessments() *SolutionUpdate {
	_u.mutation.ClearAssessments()
	return _u
}

// RemoveAssessmentIDs removes the "assessments" edge to SolutionAssessment entities by IDs.
func (_u *SolutionUpdate) RemoveAssessmentIDs(ids ...int) *SolutionUpdate {
	_u.mutation.RemoveAssessmentIDs(ids...)
	return _u
}

// RemoveAssessments removes "assessments" edges to SolutionAssessment entities.
func (_u *SolutionUpdate) RemoveAssessments(v ...*SolutionAssessment) *SolutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssessmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SolutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SolutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionUpdate) check() error {
	if v, ok := _u.mutation.ActionType(); ok {
		if err := solution.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "Solution.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := solution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Solution.status": %w`, err)}
		}
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Solution.author"`)
	}
	return nil
}

func (_u *SolutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solution.Table, solution.Columns, sqlgraph.NewFieldSpec(solution.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Claim(); ok {
		_spec.SetField(solution.FieldClaim, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalClaim(); ok {
		_spec.SetField(solution.FieldCanonicalClaim, field.TypeString, value)
	}
	if _u.mutation.CanonicalClaimCleared() {
		_spec.ClearField(solution.FieldCanonicalClaim, field.TypeString)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(solution.FieldActionType, field.TypeEnum, value)
	}
	if _u.mutation.ActionTypeCleared() {
		_spec.ClearField(solution.FieldActionType, field.TypeEnum)
	}
	if value, ok := _u.mutation.ActionTarget(); ok {
		_spec.SetField(solution.FieldActionTarget, field.TypeString, value)
	}
	if _u.mutation.ActionTargetCleared() {
		_spec.ClearField(solution.FieldActionTarget, field.TypeString)
	}
	if value, ok := _u.mutation.ActionRationale(); ok {
		_spec.SetField(solution.FieldActionRationale, field.TypeString, value)
	}
	if _u.mutation.ActionRationaleCleared() {
		_spec.ClearField(solution.FieldActionRationale, field.TypeString)
	}
	if value, ok := _u.mutation.SimulatedActionNote(); ok {
		_spec.SetField(solution.FieldSimulatedActionNote, field.TypeString, value)
	}
	if _u.mutation.SimulatedActionNoteCleared() {
		_spec.ClearField(solution.FieldSimulatedActionNote, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringSourceOrg(); ok {
		_spec.SetField(solution.FieldMonitoringSourceOrg, field.TypeString, value)
	}
	if _u.mutation.MonitoringSourceOrgCleared() {
		_spec.ClearField(solution.FieldMonitoringSourceOrg, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringSourceURL(); ok {
		_spec.SetField(solution.FieldMonitoringSourceURL, field.TypeString, value)
	}
	if _u.mutation.MonitoringSourceURLCleared() {
		_spec.ClearField(solution.FieldMonitoringSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringPeriodNote(); ok {
		_spec.SetField(solution.FieldMonitoringPeriodNote, field.TypeString, value)
	}
	if _u.mutation.MonitoringPeriodNoteCleared() {
		_spec.ClearField(solution.FieldMonitoringPeriodNote, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringStart(); ok {
		_spec.SetField(solution.FieldMonitoringStart, field.TypeTime, value)
	}
	if _u.mutation.MonitoringStartCleared() {
		_spec.ClearField(solution.FieldMonitoringStart, field.TypeTime)
	}
	if value, ok := _u.mutation.MonitoringEnd(); ok {
		_spec.SetField(solution.FieldMonitoringEnd, field.TypeTime, value)
	}
	if _u.mutation.MonitoringEndCleared() {
		_spec.ClearField(solution.FieldMonitoringEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(solution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(solution.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(solution.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePlatform(); ok {
		_spec.SetField(solution.FieldSourcePlatform, field.TypeString, value)
	}
	if _u.mutation.SourcePlatformCleared() {
		_spec.ClearField(solution.FieldSourcePlatform, field.TypeString)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(solution.FieldPostedAt, field.TypeTime, value)
	}
	if _u.mutation.PostedAtCleared() {
		_spec.ClearField(solution.FieldPostedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(solution.FieldCollectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawExtraction(); ok {
		_spec.SetField(solution.FieldRawExtraction, field.TypeString, value)
	}
	if _u.mutation.RawExtractionCleared() {
		_spec.ClearField(solution.FieldRawExtraction, field.TypeString)
	}
	if _u.mutation.TopicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogicsIDs(); len(nodes) > 0 && !_u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssessmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssessmentsIDs(); len(nodes) > 0 && !_u.mutation.AssessmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssessmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SolutionUpdateOne is the builder for updating a single Solution entity.
type SolutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SolutionMutation
}

// SetTopicID sets the "topic_id" field.
func (_u *SolutionUpdateOne) SetTopicID(v int) *SolutionUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableTopicID(v *int) *SolutionUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *SolutionUpdateOne) ClearTopicID() *SolutionUpdateOne {
	_u.mutation.ClearTopicID()
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *SolutionUpdateOne) SetAuthorID(v int) *SolutionUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableAuthorID(v *int) *SolutionUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetClaim sets the "claim" field.
func (_u *SolutionUpdateOne) SetClaim(v string) *SolutionUpdateOne {
	_u.mutation.SetClaim(v)
	return _u
}

// SetNillableClaim sets the "claim" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableClaim(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetClaim(*v)
	}
	return _u
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (_u *SolutionUpdateOne) SetCanonicalClaim(v string) *SolutionUpdateOne {
	_u.mutation.SetCanonicalClaim(v)
	return _u
}

// SetNillableCanonicalClaim sets the "canonical_claim" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableCanonicalClaim(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetCanonicalClaim(*v)
	}
	return _u
}

// ClearCanonicalClaim clears the value of the "canonical_claim" field.
func (_u *SolutionUpdateOne) ClearCanonicalClaim() *SolutionUpdateOne {
	_u.mutation.ClearCanonicalClaim()
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *SolutionUpdateOne) SetActionType(v solution.ActionType) *SolutionUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableActionType(v *solution.ActionType) *SolutionUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// ClearActionType clears the value of the "action_type" field.
func (_u *SolutionUpdateOne) ClearActionType() *SolutionUpdateOne {
	_u.mutation.ClearActionType()
	return _u
}

// SetActionTarget sets the "action_target" field.
func (_u *SolutionUpdateOne) SetActionTarget(v string) *SolutionUpdateOne {
	_u.mutation.SetActionTarget(v)
	return _u
}

// SetNillableActionTarget sets the "action_target" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableActionTarget(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetActionTarget(*v)
	}
	return _u
}

// ClearActionTarget clears the value of the "action_target" field.
func (_u *SolutionUpdateOne) ClearActionTarget() *SolutionUpdateOne {
	_u.mutation.ClearActionTarget()
	return _u
}

// SetActionRationale sets the "action_rationale" field.
func (_u *SolutionUpdateOne) SetActionRationale(v string) *SolutionUpdateOne {
	_u.mutation.SetActionRationale(v)
	return _u
}

// SetNillableActionRationale sets the "action_rationale" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableActionRationale(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetActionRationale(*v)
	}
	return _u
}

// ClearActionRationale clears the value of the "action_rationale" field.
func (_u *SolutionUpdateOne) ClearActionRationale() *SolutionUpdateOne {
	_u.mutation.ClearActionRationale()
	return _u
}

// SetSimulatedActionNote sets the "simulated_action_note" field.
func (_u *SolutionUpdateOne) SetSimulatedActionNote(v string) *SolutionUpdateOne {
	_u.mutation.SetSimulatedActionNote(v)
	return _u
}

// SetNillableSimulatedActionNote sets the "simulated_action_note" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableSimulatedActionNote(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetSimulatedActionNote(*v)
	}
	return _u
}

// ClearSimulatedActionNote clears the value of the "simulated_action_note" field.
func (_u *SolutionUpdateOne) ClearSimulatedActionNote() *SolutionUpdateOne {
	_u.mutation.ClearSimulatedActionNote()
	return _u
}

// SetMonitoringSourceOrg sets the "monitoring_source_org" field.
func (_u *SolutionUpdateOne) SetMonitoringSourceOrg(v string) *SolutionUpdateOne {
	_u.mutation.SetMonitoringSourceOrg(v)
	return _u
}

// SetNillableMonitoringSourceOrg sets the "monitoring_source_org" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableMonitoringSourceOrg(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetMonitoringSourceOrg(*v)
	}
	return _u
}

// ClearMonitoringSourceOrg clears the value of the "monitoring_source_org" field.
func (_u *SolutionUpdateOne) ClearMonitoringSourceOrg() *SolutionUpdateOne {
	_u.mutation.ClearMonitoringSourceOrg()
	return _u
}

// SetMonitoringSourceURL sets the "monitoring_source_url" field.
func (_u *SolutionUpdateOne) SetMonitoringSourceURL(v string) *SolutionUpdateOne {
	_u.mutation.SetMonitoringSourceURL(v)
	return _u
}

// SetNillableMonitoringSourceURL sets the "monitoring_source_url" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableMonitoringSourceURL(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetMonitoringSourceURL(*v)
	}
	return _u
}

// ClearMonitoringSourceURL clears the value of the "monitoring_source_url" field.
func (_u *SolutionUpdateOne) ClearMonitoringSourceURL() *SolutionUpdateOne {
	_u.mutation.ClearMonitoringSourceURL()
	return _u
}

// SetMonitoringPeriodNote sets the "monitoring_period_note" field.
func (_u *SolutionUpdateOne) SetMonitoringPeriodNote(v string) *SolutionUpdateOne {
	_u.mutation.SetMonitoringPeriodNote(v)
	return _u
}

// SetNillableMonitoringPeriodNote sets the "monitoring_period_note" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableMonitoringPeriodNote(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetMonitoringPeriodNote(*v)
	}
	return _u
}

// ClearMonitoringPeriodNote clears the value of the "monitoring_period_note" field.
func (_u *SolutionUpdateOne) ClearMonitoringPeriodNote() *SolutionUpdateOne {
	_u.mutation.ClearMonitoringPeriodNote()
	return _u
}

// SetMonitoringStart sets the "monitoring_start" field.
func (_u *SolutionUpdateOne) SetMonitoringStart(v time.Time) *SolutionUpdateOne {
	_u.mutation.SetMonitoringStart(v)
	return _u
}

// SetNillableMonitoringStart sets the "monitoring_start" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableMonitoringStart(v *time.Time) *SolutionUpdateOne {
	if v != nil {
		_u.SetMonitoringStart(*v)
	}
	return _u
}

// ClearMonitoringStart clears the value of the "monitoring_start" field.
func (_u *SolutionUpdateOne) ClearMonitoringStart() *SolutionUpdateOne {
	_u.mutation.ClearMonitoringStart()
	return _u
}

// SetMonitoringEnd sets the "monitoring_end" field.
func (_u *SolutionUpdateOne) SetMonitoringEnd(v time.Time) *SolutionUpdateOne {
	_u.mutation.SetMonitoringEnd(v)
	return _u
}

// SetNillableMonitoringEnd sets the "monitoring_end" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableMonitoringEnd(v *time.Time) *SolutionUpdateOne {
	if v != nil {
		_u.SetMonitoringEnd(*v)
	}
	return _u
}

// ClearMonitoringEnd clears the value of the "monitoring_end" field.
func (_u *SolutionUpdateOne) ClearMonitoringEnd() *SolutionUpdateOne {
	_u.mutation.ClearMonitoringEnd()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SolutionUpdateOne) SetStatus(v solution.Status) *SolutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableStatus(v *solution.Status) *SolutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *SolutionUpdateOne) SetSourceURL(v string) *SolutionUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableSourceURL(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *SolutionUpdateOne) ClearSourceURL() *SolutionUpdateOne {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetSourcePlatform sets the "source_platform" field.
func (_u *SolutionUpdateOne) SetSourcePlatform(v string) *SolutionUpdateOne {
	_u.mutation.SetSourcePlatform(v)
	return _u
}

// SetNillableSourcePlatform sets the "source_platform" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableSourcePlatform(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetSourcePlatform(*v)
	}
	return _u
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (_u *SolutionUpdateOne) ClearSourcePlatform() *SolutionUpdateOne {
	_u.mutation.ClearSourcePlatform()
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *SolutionUpdateOne) SetPostedAt(v time.Time) *SolutionUpdateOne {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillablePostedAt(v *time.Time) *SolutionUpdateOne {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// ClearPostedAt clears the value of the "posted_at" field.
func (_u *SolutionUpdateOne) ClearPostedAt() *SolutionUpdateOne {
	_u.mutation.ClearPostedAt()
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *SolutionUpdateOne) SetCollectedAt(v time.Time) *SolutionUpdateOne {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableCollectedAt(v *time.Time) *SolutionUpdateOne {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// SetRawExtraction sets the "raw_extraction" field.
func (_u *SolutionUpdateOne) SetRawExtraction(v string) *SolutionUpdateOne {
	_u.mutation.SetRawExtraction(v)
	return _u
}

// SetNillableRawExtraction sets the "raw_extraction" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableRawExtraction(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetRawExtraction(*v)
	}
	return _u
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (_u *SolutionUpdateOne) ClearRawExtraction() *SolutionUpdateOne {
	_u.mutation.ClearRawExtraction()
	return _u
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *SolutionUpdateOne) SetTopic(v *Topic) *SolutionUpdateOne {
	return _u.SetTopicID(v.ID)
}

// SetAuthor sets the "author" edge to the Author entity.
func (_u *SolutionUpdateOne) SetAuthor(v *Author) *SolutionUpdateOne {
	return _u.SetAuthorID(v.ID)
}

// AddLogicIDs adds the "logics" edge to the Logic entity by IDs.
func (_u *SolutionUpdateOne) AddLogicIDs(ids ...int) *SolutionUpdateOne {
	_u.mutation.AddLogicIDs(ids...)
	return _u
}

// AddLogics adds the "logics" edges to the Logic entity.
func (_u *SolutionUpdateOne) AddLogics(v ...*Logic) *SolutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogicIDs(ids...)
}

// AddAssessmentIDs adds the "assessments" edge to the SolutionAssessment entity by IDs.
func (_u *SolutionUpdateOne) AddAssessmentIDs(ids ...int) *SolutionUpdateOne {
	_u.mutation.AddAssessmentIDs(ids...)
	return _u
}

// AddAssessments adds the "assessments" edges to the SolutionAssessment entity.
func (_u *SolutionUpdateOne) AddAssessments(v ...*SolutionAssessment) *SolutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssessmentIDs(ids...)
}

// Mutation returns the SolutionMutation object of the builder.
func (_u *SolutionUpdateOne) Mutation() *SolutionMutation {
	return _u.mutation
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *SolutionUpdateOne) ClearTopic() *SolutionUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// ClearAuthor clears the "author" edge to the Author entity.
func (_u *SolutionUpdateOne) ClearAuthor() *SolutionUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearLogics clears all "logics" edges to the Logic entity.
func (_u *SolutionUpdateOne) ClearLogics() *SolutionUpdateOne {
	_u.mutation.ClearLogics()
	return _u
}

// RemoveLogicIDs removes the "logics" edge to Logic entities by IDs.
func (_u *SolutionUpdateOne) RemoveLogicIDs(ids ...int) *SolutionUpdateOne {
	_u.mutation.RemoveLogicIDs(ids...)
	return _u
}

// RemoveLogics removes "logics" edges to Logic entities.
func (_u *SolutionUpdateOne) RemoveLogics(v ...*Logic) *SolutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogicIDs(ids...)
}

// ClearAssessments clears all "assessments" edges to the SolutionAssessment entity.
func (_u *SolutionUpdateOne) ClearAssessments() *SolutionUpdateOne {
	_u.mutation.ClearAssessments()
	return _u
}

// RemoveAssessmentIDs removes the "assessments" edge to SolutionAssessment entities by IDs.
func (_u *SolutionUpdateOne) RemoveAssessmentIDs(ids ...int) *SolutionUpdateOne {
	_u.mutation.RemoveAssessmentIDs(ids...)
	return _u
}

// RemoveAssessments removes "assessments" edges to SolutionAssessment entities.
func (_u *SolutionUpdateOne) RemoveAssessments(v ...*SolutionAssessment) *SolutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssessmentIDs(ids...)
}

// Where appends a list predicates to the SolutionUpdate builder.
func (_u *SolutionUpdateOne) Where(ps ...predicate.Solution) *SolutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SolutionUpdateOne) Select(field string, fields ...string) *SolutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Solution entity.
func (_u *SolutionUpdateOne) Save(ctx context.Context) (*Solution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionUpdateOne) SaveX(ctx context.Context) *Solution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SolutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionUpdateOne) check() error {
	if v, ok := _u.mutation.ActionType(); ok {
		if err := solution.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "Solution.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := solution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Solution.status": %w`, err)}
		}
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Solution.author"`)
	}
	return nil
}

func (_u *SolutionUpdateOne) sqlSave(ctx context.Context) (_node *Solution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solution.Table, solution.Columns, sqlgraph.NewFieldSpec(solution.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Solution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solution.FieldID)
		for _, f := range fields {
			if !solution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != solution.FieldID {
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
		_spec.SetField(solution.FieldClaim, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalClaim(); ok {
		_spec.SetField(solution.FieldCanonicalClaim, field.TypeString, value)
	}
	if _u.mutation.CanonicalClaimCleared() {
		_spec.ClearField(solution.FieldCanonicalClaim, field.TypeString)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(solution.FieldActionType, field.TypeEnum, value)
	}
	if _u.mutation.ActionTypeCleared() {
		_spec.ClearField(solution.FieldActionType, field.TypeEnum)
	}
	if value, ok := _u.mutation.ActionTarget(); ok {
		_spec.SetField(solution.FieldActionTarget, field.TypeString, value)
	}
	if _u.mutation.ActionTargetCleared() {
		_spec.ClearField(solution.FieldActionTarget, field.TypeString)
	}
	if value, ok := _u.mutation.ActionRationale(); ok {
		_spec.SetField(solution.FieldActionRationale, field.TypeString, value)
	}
	if _u.mutation.ActionRationaleCleared() {
		_spec.ClearField(solution.FieldActionRationale, field.TypeString)
	}
	if value, ok := _u.mutation.SimulatedActionNote(); ok {
		_spec.SetField(solution.FieldSimulatedActionNote, field.TypeString, value)
	}
	if _u.mutation.SimulatedActionNoteCleared() {
		_spec.ClearField(solution.FieldSimulatedActionNote, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringSourceOrg(); ok {
		_spec.SetField(solution.FieldMonitoringSourceOrg, field.TypeString, value)
	}
	if _u.mutation.MonitoringSourceOrgCleared() {
		_spec.ClearField(solution.FieldMonitoringSourceOrg, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringSourceURL(); ok {
		_spec.SetField(solution.FieldMonitoringSourceURL, field.TypeString, value)
	}
	if _u.mutation.MonitoringSourceURLCleared() {
		_spec.ClearField(solution.FieldMonitoringSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringPeriodNote(); ok {
		_spec.SetField(solution.FieldMonitoringPeriodNote, field.TypeString, value)
	}
	if _u.mutation.MonitoringPeriodNoteCleared() {
		_spec.ClearField(solution.FieldMonitoringPeriodNote, field.TypeString)
	}
	if value, ok := _u.mutation.MonitoringStart(); ok {
		_spec.SetField(solution.FieldMonitoringStart, field.TypeTime, value)
	}
	if _u.mutation.MonitoringStartCleared() {
		_spec.ClearField(solution.FieldMonitoringStart, field.TypeTime)
	}
	if value, ok := _u.mutation.MonitoringEnd(); ok {
		_spec.SetField(solution.FieldMonitoringEnd, field.TypeTime, value)
	}
	if _u.mutation.MonitoringEndCleared() {
		_spec.ClearField(solution.FieldMonitoringEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(solution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(solution.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(solution.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePlatform(); ok {
		_spec.SetField(solution.FieldSourcePlatform, field.TypeString, value)
	}
	if _u.mutation.SourcePlatformCleared() {
		_spec.ClearField(solution.FieldSourcePlatform, field.TypeString)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(solution.FieldPostedAt, field.TypeTime, value)
	}
	if _u.mutation.PostedAtCleared() {
		_spec.ClearField(solution.FieldPostedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(solution.FieldCollectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawExtraction(); ok {
		_spec.SetField(solution.FieldRawExtraction, field.TypeString, value)
	}
	if _u.mutation.RawExtractionCleared() {
		_spec.ClearField(solution.FieldRawExtraction, field.TypeString)
	}
	if _u.mutation.TopicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogicsIDs(); len(nodes) > 0 && !_u.mutation.LogicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssessmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssessmentsIDs(); len(nodes) > 0 && !_u.mutation.AssessmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssessmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Solution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
