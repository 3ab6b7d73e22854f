// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/logicrelation"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/rawpost"
	"github.com/credlens/pundit/ent/solution"
)

// LogicUpdate is the builder for updating Logic entities.
type LogicUpdate struct {
	config
	hooks    []Hook
	mutation *LogicMutation
}

// Where appends a list predicates to the LogicUpdate builder.
func (_u *LogicUpdate) Where(ps ...predicate.Logic) *LogicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLogicType sets the "logic_type" field.
func (_u *LogicUpdate) SetLogicType(v logic.LogicType) *LogicUpdate {
	_u.mutation.SetLogicType(v)
	return _u
}

// SetNillableLogicType sets the "logic_type" field if the given value is not nil.
func (_u *LogicUpdate) SetNillableLogicType(v *logic.LogicType) *LogicUpdate {
	if v != nil {
		_u.SetLogicType(*v)
	}
	return _u
}

// SetConclusionID sets the "conclusion_id" field.
func (_u *LogicUpdate) SetConclusionID(v int) *LogicUpdate {
	_u.mutation.SetConclusionID(v)
	return _u
}

// SetNillableConclusionID sets the "conclusion_id" field if the given value is not nil.
func (_u *LogicUpdate) SetNillableConclusionID(v *int) *LogicUpdate {
	if v != nil {
		_u.SetConclusionID(*v)
	}
	return _u
}

// ClearConclusionID clears the value of the "conclusion_id" field.
func (_u *LogicUpdate) ClearConclusionID() *LogicUpdate {
	_u.mutation.ClearConclusionID()
	return _u
}

// SetSolutionID sets the "solution_id" field.
func (_u *LogicUpdate) SetSolutionID(v int) *LogicUpdate {
	_u.mutation.SetSolutionID(v)
	return _u
}

// SetNillableSolutionID sets the "solution_id" field if the given value is not nil.
func (_u *LogicUpdate) SetNillableSolutionID(v *int) *LogicUpdate {
	if v != nil {
		_u.SetSolutionID(*v)
	}
	return _u
}

// ClearSolutionID clears the value of the "solution_id" field.
func (_u *LogicUpdate) ClearSolutionID() *LogicUpdate {
	_u.mutation.ClearSolutionID()
	return _u
}

// SetRawPostID sets the "raw_post_id" field.
func (_u *LogicUpdate) SetRawPostID(v int) *LogicUpdate {
	_u.mutation.SetRawPostID(v)
	return _u
}

// SetNillableRawPostID sets the "raw_post_id" field if the given value is not nil.
func (_u *LogicUpdate) SetNillableRawPostID(v *int) *LogicUpdate {
	if v != nil {
		_u.SetRawPostID(*v)
	}
	return _u
}

// ClearRawPostID clears the value of the "raw_post_id" field.
func (_u *LogicUpdate) ClearRawPostID() *LogicUpdate {
	_u.mutation.ClearRawPostID()
	return _u
}

// SetSupportingFactIds sets the "supporting_fact_ids" field.
func (_u *LogicUpdate) SetSupportingFactIds(v []int) *LogicUpdate {
	_u.mutation.SetSupportingFactIds(v)
	return _u
}

// AppendSupportingFactIds appends value to the "supporting_fact_ids" field.
func (_u *LogicUpdate) AppendSupportingFactIds(v []int) *LogicUpdate {
	_u.mutation.AppendSupportingFactIds(v)
	return _u
}

// ClearSupportingFactIds clears the value of the "supporting_fact_ids" field.
func (_u *LogicUpdate) ClearSupportingFactIds() *LogicUpdate {
	_u.mutation.ClearSupportingFactIds()
	return _u
}

// SetAssumptionFactIds sets the "assumption_fact_ids" field.
func (_u *LogicUpdate) SetAssumptionFactIds(v []int) *LogicUpdate {
	_u.mutation.SetAssumptionFactIds(v)
	return _u
}

// AppendAssumptionFactIds appends value to the "assumption_fact_ids" field.
func (_u *LogicUpdate) AppendAssumptionFactIds(v []int) *LogicUpdate {
	_u.mutation.AppendAssumptionFactIds(v)
	return _u
}

// ClearAssumptionFactIds clears the value of the "assumption_fact_ids" field.
func (_u *LogicUpdate) ClearAssumptionFactIds() *LogicUpdate {
	_u.mutation.ClearAssumptionFactIds()
	return _u
}

// SetSourceConclusionIds sets the "source_conclusion_ids" field.
func (_u *LogicUpdate) SetSourceConclusionIds(v []int) *LogicUpdate {
	_u.mutation.SetSourceConclusionIds(v)
	return _u
}

// AppendSourceConclusionIds appends value to the "source_conclusion_ids" field.
func (_u *LogicUpdate) AppendSourceConclusionIds(v []int) *LogicUpdate {
	_u.mutation.AppendSourceConclusionIds(v)
	return _u
}

// ClearSourceConclusionIds clears the value of the "source_conclusion_ids" field.
func (_u *LogicUpdate) ClearSourceConclusionIds() *LogicUpdate {
	_u.mutation.ClearSourceConclusionIds()
	return _u
}

// SetLogicCompleteness sets the "logic_completeness" field.
func (_u *LogicUpdate) SetLogicCompleteness(v logic.LogicCompleteness) *LogicUpdate {
	_u.mutation.SetLogicCompleteness(v)
	return _u
}

// SetNillableLogicCompleteness sets the "logic_completeness" field if the given value is not nil.
func (_u *LogicUpdate) SetNillableLogicCompleteness(v *logic.LogicCompleteness) *LogicUpdate {
	if v != nil {
		_u.SetLogicCompleteness(*v)
	}
	return _u
}

// ClearLogicCompleteness clears the value of the "logic_completeness" field.
func (_u *LogicUpdate) ClearLogicCompleteness() *LogicUpdate {
	_u.mutation.ClearLogicCompleteness()
	return _u
}

// SetLogicNote sets the "logic_note" field.
func (_u *LogicUpdate) SetLogicNote(v string) *LogicUpdate {
	_u.mutation.SetLogicNote(v)
	return _u
}

// SetNillableLogicNote sets the "logic_note" field if the given value is not nil.
func (_u *LogicUpdate) SetNillableLogicNote(v *string) *LogicUpdate {
	if v != nil {
		_u.SetLogicNote(*v)
	}
	return _u
}

// ClearLogicNote clears the value of the "logic_note" field.
func (_u *LogicUpdate) ClearLogicNote() *LogicUpdate {
	_u.mutation.ClearLogicNote()
	return _u
}

// SetOneSentenceSummary sets the "one_sentence_summary" field.
func (_u *LogicUpdate) SetOneSentenceSummary(v string) *LogicUpdate {
	_u.mutation.SetOneSentenceSummary(v)
	return _u
}

// SetNillableOneSentenceSummary sets the "one_sentence_summary" field if the given value is not nil.
func (_u *LogicUpdate) SetNillableOneSentenceSummary(v *string) *LogicUpdate {
	if v != nil {
		_u.SetOneSentenceSummary(*v)
	}
	return _u
}

// ClearOneSentenceSummary clears the value of the "one_sentence_summary" field.
func (_u *LogicUpdate) ClearOneSentenceSummary() *LogicUpdate {
	_u.mutation.ClearOneSentenceSummary()
	return _u
}

// SetAssessedAt sets the "assessed_at" field.
func (_u *LogicUpdate) SetAssessedAt(v time.Time) *LogicUpdate {
	_u.mutation.SetAssessedAt(v)
	return _u
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_u *LogicUpdate) SetNillableAssessedAt(v *time.Time) *LogicUpdate {
	if v != nil {
		_u.SetAssessedAt(*v)
	}
	return _u
}

// ClearAssessedAt clears the value of the "assessed_at" field.
func (_u *LogicUpdate) ClearAssessedAt() *LogicUpdate {
	_u.mutation.ClearAssessedAt()
	return _u
}

// SetConclusion sets the "conclusion" edge to the Conclusion entity.
func (_u *LogicUpdate) SetConclusion(v *Conclusion) *LogicUpdate {
	return _u.SetConclusionID(v.ID)
}

// SetSolution sets the "solution" edge to the Solution entity.
func (_u *LogicUpdate) SetSolution(v *Solution) *LogicUpdate {
	return _u.SetSolutionID(v.ID)
}

// SetRawPost sets the "raw_post" edge to the RawPost entity.
func (_u *LogicUpdate) SetRawPost(v *RawPost) *LogicUpdate {
	return _u.SetRawPostID(v.ID)
}

// AddOutgoingRelationIDs adds the "outgoing_relations" edge to the LogicRelation entity by IDs.
func (_u *LogicUpdate) AddOutgoingRelationIDs(ids ...int) *LogicUpdate {
	_u.mutation.AddOutgoingRelationIDs(ids...)
	return _u
}

// AddOutgoingRelations adds the "outgoing_relations" edges to the LogicRelation entity.
func (_u *LogicUpdate) AddOutgoingRelations(v ...*LogicRelation) *LogicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutgoingRelationIDs(ids...)
}

// AddIncomingRelationIDs adds the "incoming_relations" edge to the LogicRelation entity by IDs.
func (_u *LogicUpdate) AddIncomingRelationIDs(ids ...int) *LogicUpdate {
	_u.mutation.AddIncomingRelationIDs(ids...)
	return _u
}

// AddIncomingRelations adds the "incoming_relations" edges to the LogicRelation entity.
func (_u *LogicUpdate) AddIncomingRelations(v ...*LogicRelation) *LogicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIncomingRelationIDs(ids...)
}

// Mutation returns the LogicMutation object of the builder.
func (_u *LogicUpdate) Mutation() *LogicMutation {
	return _u.mutation
}

// ClearConclusion clears the "conclusion" edge to the Conclusion entity.
func (_u *LogicUpdate) ClearConclusion() *LogicUpdate {
	_u.mutation.ClearConclusion()
	return _u
}

// ClearSolution clears the "solution" edge to the Solution entity.
func (_u *LogicUpdate) ClearSolution() *LogicUpdate {
	_u.mutation.ClearSolution()
	return _u
}

// ClearRawPost clears the "raw_post" edge to the RawPost entity.
func (_u *LogicUpdate) ClearRawPost() *LogicUpdate {
	_u.mutation.ClearRawPost()
	return _u
}

// ClearOutgoingRelations clears all "outgoing_relations" edges to the LogicRelation entity.
func (_u *LogicUpdate) ClearOutgoingRelations() *LogicUpdate {
	_u.mutation.ClearOutgoingRelations()
	return _u
}

// RemoveOutgoingRelationIDs removes the "outgoing_relations" edge to LogicRelation entities by IDs.
func (_u *LogicUpdate) RemoveOutgoingRelationIDs(ids ...int) *LogicUpdate {
	_u.mutation.RemoveOutgoingRelationIDs(ids...)
	return _u
}

// RemoveOutgoingRelations removes "outgoing_relations" edges to LogicRelation entities.
func (_u *LogicUpdate) RemoveOutgoingRelations(v ...*LogicRelation) *LogicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutgoingRelationIDs(ids...)
}

// ClearIncomingRelations clears all "incoming_relations" edges to the LogicRelation entity.
func (_u *LogicUpdate) ClearIncomingRelations() *LogicUpdate {
	_u.mutation.ClearIncomingRelations()
	return _u
}

// RemoveIncomingRelationIDs removes the "incoming_relations" edge to LogicRelation entities by IDs.
func (_u *LogicUpdate) RemoveIncomingRelationIDs(ids ...int) *LogicUpdate {
	_u.mutation.RemoveIncomingRelationIDs(ids...)
	return _u
}

// RemoveIncomingRelations removes "incoming_relations" edges to LogicRelation entities.
func (_u *LogicUpdate) RemoveIncomingRelations(v ...*LogicRelation) *LogicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIncomingRelationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LogicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LogicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LogicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LogicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LogicUpdate) check() error {
	if v, ok := _u.mutation.LogicType(); ok {
		if err := logic.LogicTypeValidator(v); err != nil {
			return &ValidationError{Name: "logic_type", err: fmt.Errorf(`ent: validator failed for field "Logic.logic_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LogicCompleteness(); ok {
		if err := logic.LogicCompletenessValidator(v); err != nil {
			return &ValidationError{Name: "logic_completeness", err: fmt.Errorf(`ent: validator failed for field "Logic.logic_completeness": %w`, err)}
		}
	}
	return nil
}

func (_u *LogicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(logic.Table, logic.Columns, sqlgraph.NewFieldSpec(logic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LogicType(); ok {
		_spec.SetField(logic.FieldLogicType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SupportingFactIds(); ok {
		_spec.SetField(logic.FieldSupportingFactIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportingFactIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, logic.FieldSupportingFactIds, value)
		})
	}
	if _u.mutation.SupportingFactIdsCleared() {
		_spec.ClearField(logic.FieldSupportingFactIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssumptionFactIds(); ok {
		_spec.SetField(logic.FieldAssumptionFactIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssumptionFactIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, logic.FieldAssumptionFactIds, value)
		})
	}
	if _u.mutation.AssumptionFactIdsCleared() {
		_spec.ClearField(logic.FieldAssumptionFactIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceConclusionIds(); ok {
		_spec.SetField(logic.FieldSourceConclusionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceConclusionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, logic.FieldSourceConclusionIds, value)
		})
	}
	if _u.mutation.SourceConclusionIdsCleared() {
		_spec.ClearField(logic.FieldSourceConclusionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LogicCompleteness(); ok {
		_spec.SetField(logic.FieldLogicCompleteness, field.TypeEnum, value)
	}
	if _u.mutation.LogicCompletenessCleared() {
		_spec.ClearField(logic.FieldLogicCompleteness, field.TypeEnum)
	}
	if value, ok := _u.mutation.LogicNote(); ok {
		_spec.SetField(logic.FieldLogicNote, field.TypeString, value)
	}
	if _u.mutation.LogicNoteCleared() {
		_spec.ClearField(logic.FieldLogicNote, field.TypeString)
	}
	if value, ok := _u.mutation.OneSentenceSummary(); ok {
		_spec.SetField(logic.FieldOneSentenceSummary, field.TypeString, value)
	}
	if _u.mutation.OneSentenceSummaryCleared() {
		_spec.ClearField(logic.FieldOneSentenceSummary, field.TypeString)
	}
	if value, ok := _u.mutation.AssessedAt(); ok {
		_spec.SetField(logic.FieldAssessedAt, field.TypeTime, value)
	}
	if _u.mutation.AssessedAtCleared() {
		_spec.ClearField(logic.FieldAssessedAt, field.TypeTime)
	}
	if _u.mutation.ConclusionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConclusionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SolutionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RawPostCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RawPostIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutgoingRelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutgoingRelationsIDs(); len(nodes) > 0 && !_u.mutation.OutgoingRelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutgoingRelationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IncomingRelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIncomingRelationsIDs(); len(nodes) > 0 && !_u.mutation.IncomingRelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncomingRelationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{logic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LogicUpdateOne is the builder for updating a single Logic entity.
type LogicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LogicMutation
}

// SetLogicType sets the "logic_type" field.
func (_u *LogicUpdateOne) SetLogicType(v logic.LogicType) *LogicUpdateOne {
	_u.mutation.SetLogicType(v)
	return _u
}

// SetNillableLogicType sets the "logic_type" field if the given value is not nil.
func (_u *LogicUpdateOne) SetNillableLogicType(v *logic.LogicType) *LogicUpdateOne {
	if v != nil {
		_u.SetLogicType(*v)
	}
	return _u
}

// SetConclusionID sets the "conclusion_id" field.
func (_u *LogicUpdateOne) SetConclusionID(v int) *LogicUpdateOne {
	_u.mutation.SetConclusionID(v)
	return _u
}

// SetNillableConclusionID sets the "conclusion_id" field if the given value is not nil.
func (_u *LogicUpdateOne) SetNillableConclusionID(v *int) *LogicUpdateOne {
	if v != nil {
		_u.SetConclusionID(*v)
	}
	return _u
}

// ClearConclusionID clears the value of the "conclusion_id" field.
func (_u *LogicUpdateOne) ClearConclusionID() *LogicUpdateOne {
	_u.mutation.ClearConclusionID()
	return _u
}

// SetSolutionID sets the "solution_id" field.
func (_u *LogicUpdateOne) SetSolutionID(v int) *LogicUpdateOne {
	_u.mutation.SetSolutionID(v)
	return _u
}

// SetNillableSolutionID sets the "solution_id" field if the given value is not nil.
func (_u *LogicUpdateOne) SetNillableSolutionID(v *int) *LogicUpdateOne {
	if v != nil {
		_u.SetSolutionID(*v)
	}
	return _u
}

// ClearSolutionID clears the value of the "solution_id" field.
func (_u *LogicUpdateOne) ClearSolutionID() *LogicUpdateOne {
	_u.mutation.ClearSolutionID()
	return _u
}

// SetRawPostID sets the "raw_post_id" field.
func (_u *LogicUpdateOne) SetRawPostID(v int) *LogicUpdateOne {
	_u.mutation.SetRawPostID(v)
	return _u
}

// SetNillableRawPostID sets the "raw_post_id" field if the given value is not nil.
func (_u *LogicUpdateOne) SetNillableRawPostID(v *int) *LogicUpdateOne {
	if v != nil {
		_u.SetRawPostID(*v)
	}
	return _u
}

// ClearRawPostID clears the value of the "raw_post_id" field.
func (_u *LogicUpdateOne) ClearRawPostID() *LogicUpdateOne {
	_u.mutation.ClearRawPostID()
	return _u
}

// SetSupportingFactIds sets the "supporting_fact_ids" field.
func (_u *LogicUpdateOne) SetSupportingFactIds(v []int) *LogicUpdateOne {
	_u.mutation.SetSupportingFactIds(v)
	return _u
}

// AppendSupportingFactIds appends value to the "supporting_fact_ids" field.
func (_u *LogicUpdateOne) AppendSupportingFactIds(v []int) *LogicUpdateOne {
	_u.mutation.AppendSupportingFactIds(v)
	return _u
}

// ClearSupportingFactIds clears the value of the "supporting_fact_ids" field.
func (_u *LogicUpdateOne) ClearSupportingFactIds() *LogicUpdateOne {
	_u.mutation.ClearSupportingFactIds()
	return _u
}

// SetAssumptionFactIds sets the "assumption_fact_ids" field.
func (_u *LogicUpdateOne) SetAssumptionFactIds(v []int) *LogicUpdateOne {
	_u.mutation.SetAssumptionFactIds(v)
	return _u
}

// AppendAssumptionFactIds appends value to the "assumption_fact_ids" field.
func (_u *LogicUpdateOne) AppendAssumptionFactIds(v []int) *LogicUpdateOne {
	_u.mutation.AppendAssumptionFactIds(v)
	return _u
}

// ClearAssumptionFactIds clears the value of the "assumption_fact_ids" field.
func (_u *LogicUpdateOne) ClearAssumptionFactIds() *LogicUpdateOne {
	_u.mutation.ClearAssumptionFactIds()
	return _u
}

// SetSourceConclusionIds sets the "source_conclusion_ids" field.
func (_u *LogicUpdateOne) SetSourceConclusionIds(v []int) *LogicUpdateOne {
	_u.mutation.SetSourceConclusionIds(v)
	return _u
}

// AppendSourceConclusionIds appends value to the "source_conclusion_ids" field.
func (_u *LogicUpdateOne) AppendSourceConclusionIds(v []int) *LogicUpdateOne {
	_u.mutation.AppendSourceConclusionIds(v)
	return _u
}

// ClearSourceConclusionIds clears the value of the "source_conclusion_ids" field.
func (_u *LogicUpdateOne) ClearSourceConclusionIds() *LogicUpdateOne {
	_u.mutation.ClearSourceConclusionIds()
	return _u
}

// SetLogicCompleteness sets the "logic_completeness" field.
func (_u *LogicUpdateOne) SetLogicCompleteness(v logic.LogicCompleteness) *LogicUpdateOne {
	_u.mutation.SetLogicCompleteness(v)
	return _u
}

// SetNillableLogicCompleteness sets the "logic_completeness" field if the given value is not nil.
func (_u *LogicUpdateOne) SetNillableLogicCompleteness(v *logic.LogicCompleteness) *LogicUpdateOne {
	if v != nil {
		_u.SetLogicCompleteness(*v)
	}
	return _u
}

// ClearLogicCompleteness clears the value of the "logic_completeness" field.
func (_u *LogicUpdateOne) ClearLogicCompleteness() *LogicUpdateOne {
	_u.mutation.ClearLogicCompleteness()
	return _u
}

// SetLogicNote sets the "logic_note" field.
func (_u *LogicUpdateOne) SetLogicNote(v string) *LogicUpdateOne {
	_u.mutation.SetLogicNote(v)
	return _u
}

// SetNillableLogicNote sets the "logic_note" field if the given value is not nil.
func (_u *LogicUpdateOne) SetNillableLogicNote(v *string) *LogicUpdateOne {
	if v != nil {
		_u.SetLogicNote(*v)
	}
	return _u
}

// ClearLogicNote clears the value of the "logic_note" field.
func (_u *LogicUpdateOne) ClearLogicNote() *LogicUpdateOne {
	_u.mutation.ClearLogicNote()
	return _u
}

// SetOneSentenceSummary sets the "one_sentence_summary" field.
func (_u *LogicUpdateOne) SetOneSentenceSummary(v string) *LogicUpdateOne {
	_u.mutation.SetOneSentenceSummary(v)
	return _u
}

// SetNillableOneSentenceSummary sets the "one_sentence_summary" field if the given value is not nil.
func (_u *LogicUpdateOne) SetNillableOneSentenceSummary(v *string) *LogicUpdateOne {
	if v != nil {
		_u.SetOneSentenceSummary(*v)
	}
	return _u
}

// ClearOneSentenceSummary clears the value of the "one_sentence_summary" field.
func (_u *LogicUpdateOne) ClearOneSentenceSummary() *LogicUpdateOne {
	_u.mutation.ClearOneSentenceSummary()
	return _u
}

// SetAssessedAt sets the "assessed_at" field.
func (_u *LogicUpdateOne) SetAssessedAt(v time.Time) *LogicUpdateOne {
	_u.mutation.SetAssessedAt(v)
	return _u
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_u *LogicUpdateOne) SetNillableAssessedAt(v *time.Time) *LogicUpdateOne {
	if v != nil {
		_u.SetAssessedAt(*v)
	}
	return _u
}

// ClearAssessedAt clears the value of the "assessed_at" field.
func (_u *LogicUpdateOne) ClearAssessedAt() *LogicUpdateOne {
	_u.mutation.ClearAssessedAt()
	return _u
}

// SetConclusion sets the "conclusion" edge to the Conclusion entity.
func (_u *LogicUpdateOne) SetConclusion(v *Conclusion) *LogicUpdateOne {
	return _u.SetConclusionID(v.ID)
}

// SetSolution sets the "solution" edge to the Solution entity.
func (_u *LogicUpdateOne) SetSolution(v *Solution) *LogicUpdateOne {
	return _u.SetSolutionID(v.ID)
}

// SetRawPost sets the "raw_post" edge to the RawPost entity.
func (_u *LogicUpdateOne) SetRawPost(v *RawPost) *LogicUpdateOne {
	return _u.SetRawPostID(v.ID)
}

// AddOutgoingRelationIDs adds the "outgoing_relations" edge to the LogicRelation entity by IDs.
func (_u *LogicUpdateOne) AddOutgoingRelationIDs(ids ...int) *LogicUpdateOne {
	_u.mutation.AddOutgoingRelationIDs(ids...)
	return _u
}

// AddOutgoingRelations adds the "outgoing_relations" edges to the LogicRelation entity.
func (_u *LogicUpdateOne) AddOutgoingRelations(v ...*LogicRelation) *LogicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutgoingRelationIDs(ids...)
}

// AddIncomingRelationIDs adds the "incoming_relations" edge to the LogicRelation entity by IDs.
func (_u *LogicUpdateOne) AddIncomingRelationIDs(ids ...int) *LogicUpdateOne {
	_u.mutation.AddIncomingRelationIDs(ids...)
	return _u
}

// AddIncomingRelations adds the "incoming_relations" edges to the LogicRelation entity.
func (_u *LogicUpdateOne) AddIncomingRelations(v ...*LogicRelation) *LogicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIncomingRelationIDs(ids...)
}

// Mutation returns the LogicMutation object of the builder.
func (_u *LogicUpdateOne) Mutation() *LogicMutation {
	return _u.mutation
}

// ClearConclusion clears the "conclusion" edge to the Conclusion entity.
func (_u *LogicUpdateOne) ClearConclusion() *LogicUpdateOne {
	_u.mutation.ClearConclusion()
	return _u
}

// ClearSolution clears the "solution" edge to the Solution entity.
func (_u *LogicUpdateOne) ClearSolution() *LogicUpdateOne {
	_u.mutation.ClearSolution()
	return _u
}

// ClearRawPost clears the "raw_post" edge to the RawPost entity.
func (_u *LogicUpdateOne) ClearRawPost() *LogicUpdateOne {
	_u.mutation.ClearRawPost()
	return _u
}

// ClearOutgoingRelations clears all "outgoing_relations" edges to the LogicRelation entity.
func (_u *LogicUpdateOne) ClearOutgoingRelations() *LogicUpdateOne {
	_u.mutation.ClearOutgoingRelations()
	return _u
}

// RemoveOutgoingRelationIDs removes the "outgoing_relations" edge to LogicRelation entities by IDs.
func (_u *LogicUpdateOne) RemoveOutgoingRelationIDs(ids ...int) *LogicUpdateOne {
	_u.mutation.RemoveOutgoingRelationIDs(ids...)
	return _u
}

// RemoveOutgoingRelations removes "outgoing_relations" edges to LogicRelation entities.
func (_u *LogicUpdateOne) RemoveOutgoingRelations(v ...*LogicRelation) *LogicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutgoingRelationIDs(ids...)
}

// ClearIncomingRelations clears all "incoming_relations" edges to the LogicRelation entity.
func (_u *LogicUpdateOne) ClearIncomingRelations() *LogicUpdateOne {
	_u.mutation.ClearIncomingRelations()
	return _u
}

// RemoveIncomingRelationIDs removes the "incoming_relations" edge to LogicRelation entities by IDs.
func (_u *LogicUpdateOne) RemoveIncomingRelationIDs(ids ...int) *LogicUpdateOne {
	_u.mutation.RemoveIncomingRelationIDs(ids...)
	return _u
}

// RemoveIncomingRelations removes "incoming_relations" edges to LogicRelation entities.
func (_u *LogicUpdateOne) RemoveIncomingRelations(v ...*LogicRelation) *LogicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIncomingRelationIDs(ids...)
}

// Where appends a list predicates to the LogicUpdate builder.
func (_u *LogicUpdateOne) Where(ps ...predicate.Logic) *LogicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LogicUpdateOne) Select(field string, fields ...string) *LogicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Logic entity.
func (_u *LogicUpdateOne) Save(ctx context.Context) (*Logic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LogicUpdateOne) SaveX(ctx context.Context) *Logic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LogicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LogicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LogicUpdateOne) check() error {
	if v, ok := _u.mutation.LogicType(); ok {
		if err := logic.LogicTypeValidator(v); err != nil {
			return &ValidationError{Name: "logic_type", err: fmt.Errorf(`ent: validator failed for field "Logic.logic_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LogicCompleteness(); ok {
		if err := logic.LogicCompletenessValidator(v); err != nil {
			return &ValidationError{Name: "logic_completeness", err: fmt.Errorf(`ent: validator failed for field "Logic.logic_completeness": %w`, err)}
		}
	}
	return nil
}

func (_u *LogicUpdateOne) sqlSave(ctx context.Context) (_node *Logic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(logic.Table, logic.Columns, sqlgraph.NewFieldSpec(logic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Logic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, logic.FieldID)
		for _, f := range fields {
			if !logic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != logic.FieldID {
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
	if value, ok := _u.mutation.LogicType(); ok {
		_spec.SetField(logic.FieldLogicType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SupportingFactIds(); ok {
		_spec.SetField(logic.FieldSupportingFactIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportingFactIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, logic.FieldSupportingFactIds, value)
		})
	}
	if _u.mutation.SupportingFactIdsCleared() {
		_spec.ClearField(logic.FieldSupportingFactIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssumptionFactIds(); ok {
		_spec.SetField(logic.FieldAssumptionFactIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssumptionFactIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, logic.FieldAssumptionFactIds, value)
		})
	}
	if _u.mutation.AssumptionFactIdsCleared() {
		_spec.ClearField(logic.FieldAssumptionFactIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceConclusionIds(); ok {
		_spec.SetField(logic.FieldSourceConclusionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceConclusionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, logic.FieldSourceConclusionIds, value)
		})
	}
	if _u.mutation.SourceConclusionIdsCleared() {
		_spec.ClearField(logic.FieldSourceConclusionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LogicCompleteness(); ok {
		_spec.SetField(logic.FieldLogicCompleteness, field.TypeEnum, value)
	}
	if _u.mutation.LogicCompletenessCleared() {
		_spec.ClearField(logic.FieldLogicCompleteness, field.TypeEnum)
	}
	if value, ok := _u.mutation.LogicNote(); ok {
		_spec.SetField(logic.FieldLogicNote, field.TypeString, value)
	}
	if _u.mutation.LogicNoteCleared() {
		_spec.ClearField(logic.FieldLogicNote, field.TypeString)
	}
	if value, ok := _u.mutation.OneSentenceSummary(); ok {
		_spec.SetField(logic.FieldOneSentenceSummary, field.TypeString, value)
	}
	if _u.mutation.OneSentenceSummaryCleared() {
		_spec.ClearField(logic.FieldOneSentenceSummary, field.TypeString)
	}
	if value, ok := _u.mutation.AssessedAt(); ok {
		_spec.SetField(logic.FieldAssessedAt, field.TypeTime, value)
	}
	if _u.mutation.AssessedAtCleared() {
		_spec.ClearField(logic.FieldAssessedAt, field.TypeTime)
	}
	if _u.mutation.ConclusionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConclusionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SolutionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RawPostCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RawPostIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutgoingRelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutgoingRelationsIDs(); len(nodes) > 0 && !_u.mutation.OutgoingRelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutgoingRelationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IncomingRelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIncomingRelationsIDs(); len(nodes) > 0 && !_u.mutation.IncomingRelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncomingRelationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Logic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{logic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
