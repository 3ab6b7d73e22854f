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
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
)

// SolutionAssessmentUpdate is the builder for updating SolutionAssessment entities.
type SolutionAssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *SolutionAssessmentMutation
}

// Where appends a list predicates to the SolutionAssessmentUpdate builder.
func (_u *SolutionAssessmentUpdate) Where(ps ...predicate.SolutionAssessment) *SolutionAssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSolutionID sets the "solution_id" field.
func (_u *SolutionAssessmentUpdate) SetSolutionID(v int) *SolutionAssessmentUpdate {
	_u.mutation.SetSolutionID(v)
	return _u
}

// SetNillableSolutionID sets the "solution_id" field if the given value is not nil.
func (_u *SolutionAssessmentUpdate) SetNillableSolutionID(v *int) *SolutionAssessmentUpdate {
	if v != nil {
		_u.SetSolutionID(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *SolutionAssessmentUpdate) SetVerdict(v solutionassessment.Verdict) *SolutionAssessmentUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *SolutionAssessmentUpdate) SetNillableVerdict(v *solutionassessment.Verdict) *SolutionAssessmentUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetEvidenceText sets the "evidence_text" field.
func (_u *SolutionAssessmentUpdate) SetEvidenceText(v string) *SolutionAssessmentUpdate {
	_u.mutation.SetEvidenceText(v)
	return _u
}

// SetNillableEvidenceText sets the "evidence_text" field if the given value is not nil.
func (_u *SolutionAssessmentUpdate) SetNillableEvidenceText(v *string) *SolutionAssessmentUpdate {
	if v != nil {
		_u.SetEvidenceText(*v)
	}
	return _u
}

// ClearEvidenceText clears the value of the "evidence_text" field.
func (_u *SolutionAssessmentUpdate) ClearEvidenceText() *SolutionAssessmentUpdate {
	_u.mutation.ClearEvidenceText()
	return _u
}

// SetEvidenceTier sets the "evidence_tier" field.
func (_u *SolutionAssessmentUpdate) SetEvidenceTier(v int) *SolutionAssessmentUpdate {
	_u.mutation.ResetEvidenceTier()
	_u.mutation.SetEvidenceTier(v)
	return _u
}

// SetNillableEvidenceTier sets the "evidence_tier" field if the given value is not nil.
func (_u *SolutionAssessmentUpdate) SetNillableEvidenceTier(v *int) *SolutionAssessmentUpdate {
	if v != nil {
		_u.SetEvidenceTier(*v)
	}
	return _u
}

// AddEvidenceTier adds value to the "evidence_tier" field.
func (_u *SolutionAssessmentUpdate) AddEvidenceTier(v int) *SolutionAssessmentUpdate {
	_u.mutation.AddEvidenceTier(v)
	return _u
}

// ClearEvidenceTier clears the value of the "evidence_tier" field.
func (_u *SolutionAssessmentUpdate) ClearEvidenceTier() *SolutionAssessmentUpdate {
	_u.mutation.ClearEvidenceTier()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SolutionAssessmentUpdate) SetNotes(v string) *SolutionAssessmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SolutionAssessmentUpdate) SetNillableNotes(v *string) *SolutionAssessmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SolutionAssessmentUpdate) ClearNotes() *SolutionAssessmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetRoleFit sets the "role_fit" field.
func (_u *SolutionAssessmentUpdate) SetRoleFit(v solutionassessment.RoleFit) *SolutionAssessmentUpdate {
	_u.mutation.SetRoleFit(v)
	return _u
}

// SetNillableRoleFit sets the "role_fit" field if the given value is not nil.
func (_u *SolutionAssessmentUpdate) SetNillableRoleFit(v *solutionassessment.RoleFit) *SolutionAssessmentUpdate {
	if v != nil {
		_u.SetRoleFit(*v)
	}
	return _u
}

// ClearRoleFit clears the value of the "role_fit" field.
func (_u *SolutionAssessmentUpdate) ClearRoleFit() *SolutionAssessmentUpdate {
	_u.mutation.ClearRoleFit()
	return _u
}

// SetRoleFitNote sets the "role_fit_note" field.
func (_u *SolutionAssessmentUpdate) SetRoleFitNote(v string) *SolutionAssessmentUpdate {
	_u.mutation.SetRoleFitNote(v)
	return _u
}

// SetNillableRoleFitNote sets the "role_fit_note" field if the given value is not nil.
func (_u *SolutionAssessmentUpdate) SetNillableRoleFitNote(v *string) *SolutionAssessmentUpdate {
	if v != nil {
		_u.SetRoleFitNote(*v)
	}
	return _u
}

// ClearRoleFitNote clears the value of the "role_fit_note" field.
func (_u *SolutionAssessmentUpdate) ClearRoleFitNote() *SolutionAssessmentUpdate {
	_u.mutation.ClearRoleFitNote()
	return _u
}

// SetAssessedAt sets the "assessed_at" field.
func (_u *SolutionAssessmentUpdate) SetAssessedAt(v time.Time) *SolutionAssessmentUpdate {
	_u.mutation.SetAssessedAt(v)
	return _u
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_u *SolutionAssessmentUpdate) SetNillableAssessedAt(v *time.Time) *SolutionAssessmentUpdate {
	if v != nil {
		_u.SetAssessedAt(*v)
	}
	return _u
}

// SetSolution sets the "solution" edge to the Solution entity.
func (_u *SolutionAssessmentUpdate) SetSolution(v *Solution) *SolutionAssessmentUpdate {
	return _u.SetSolutionID(v.ID)
}

// Mutation returns the SolutionAssessmentMutation object of the builder.
func (_u *SolutionAssessmentUpdate) Mutation() *SolutionAssessmentMutation {
	return _u.mutation
}

// ClearSolution clears the "solution" edge to the Solution entity.
func (_u *SolutionAssessmentUpdate) ClearSolution() *SolutionAssessmentUpdate {
	_u.mutation.ClearSolution()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SolutionAssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionAssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SolutionAssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionAssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionAssessmentUpdate) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := solutionassessment.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "SolutionAssessment.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoleFit(); ok {
		if err := solutionassessment.RoleFitValidator(v); err != nil {
			return &ValidationError{Name: "role_fit", err: fmt.Errorf(`ent: validator failed for field "SolutionAssessment.role_fit": %w`, err)}
		}
	}
	if _u.mutation.SolutionCleared() && len(_u.mutation.SolutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SolutionAssessment.solution"`)
	}
	return nil
}

func (_u *SolutionAssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solutionassessment.Table, solutionassessment.Columns, sqlgraph.NewFieldSpec(solutionassessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(solutionassessment.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EvidenceText(); ok {
		_spec.SetField(solutionassessment.FieldEvidenceText, field.TypeString, value)
	}
	if _u.mutation.EvidenceTextCleared() {
		_spec.ClearField(solutionassessment.FieldEvidenceText, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceTier(); ok {
		_spec.SetField(solutionassessment.FieldEvidenceTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceTier(); ok {
		_spec.AddField(solutionassessment.FieldEvidenceTier, field.TypeInt, value)
	}
	if _u.mutation.EvidenceTierCleared() {
		_spec.ClearField(solutionassessment.FieldEvidenceTier, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(solutionassessment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(solutionassessment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.RoleFit(); ok {
		_spec.SetField(solutionassessment.FieldRoleFit, field.TypeEnum, value)
	}
	if _u.mutation.RoleFitCleared() {
		_spec.ClearField(solutionassessment.FieldRoleFit, field.TypeEnum)
	}
	if value, ok := _u.mutation.RoleFitNote(); ok {
		_spec.SetField(solutionassessment.FieldRoleFitNote, field.TypeString, value)
	}
	if _u.mutation.RoleFitNoteCleared() {
		_spec.ClearField(solutionassessment.FieldRoleFitNote, field.TypeString)
	}
	if value, ok := _u.mutation.AssessedAt(); ok {
		_spec.SetField(solutionassessment.FieldAssessedAt, field.TypeTime, value)
	}
	if _u.mutation.SolutionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   solutionassessment.SolutionTable,
			Columns: []string{solutionassessment.SolutionColumn},
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
			Table:   solutionassessment.SolutionTable,
			Columns: []string{solutionassessment.SolutionColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solutionassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SolutionAssessmentUpdateOne is the builder for updating a single SolutionAssessment entity.
type SolutionAssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SolutionAssessmentMutation
}

// SetSolutionID sets the "solution_id" field.
func (_u *SolutionAssessmentUpdateOne) SetSolutionID(v int) *SolutionAssessmentUpdateOne {
	_u.mutation.SetSolutionID(v)
	return _u
}

// SetNillableSolutionID sets the "solution_id" field if the given value is not nil.
func (_u *SolutionAssessmentUpdateOne) SetNillableSolutionID(v *int) *SolutionAssessmentUpdateOne {
	if v != nil {
		_u.SetSolutionID(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *SolutionAssessmentUpdateOne) SetVerdict(v solutionassessment.Verdict) *SolutionAssessmentUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *SolutionAssessmentUpdateOne) SetNillableVerdict(v *solutionassessment.Verdict) *SolutionAssessmentUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetEvidenceText sets the "evidence_text" field.
func (_u *SolutionAssessmentUpdateOne) SetEvidenceText(v string) *SolutionAssessmentUpdateOne {
	_u.mutation.SetEvidenceText(v)
	return _u
}

// SetNillableEvidenceText sets the "evidence_text" field if the given value is not nil.
func (_u *SolutionAssessmentUpdateOne) SetNillableEvidenceText(v *string) *SolutionAssessmentUpdateOne {
	if v != nil {
		_u.SetEvidenceText(*v)
	}
	return _u
}

// ClearEvidenceText clears the value of the "evidence_text" field.
func (_u *SolutionAssessmentUpdateOne) ClearEvidenceText() *SolutionAssessmentUpdateOne {
	_u.mutation.ClearEvidenceText()
	return _u
}

// SetEvidenceTier sets the "evidence_tier" field.
func (_u *SolutionAssessmentUpdateOne) SetEvidenceTier(v int) *SolutionAssessmentUpdateOne {
	_u.mutation.ResetEvidenceTier()
	_u.mutation.SetEvidenceTier(v)
	return _u
}

// SetNillableEvidenceTier sets the "evidence_tier" field if the given value is not nil.
func (_u *SolutionAssessmentUpdateOne) SetNillableEvidenceTier(v *int) *SolutionAssessmentUpdateOne {
	if v != nil {
		_u.SetEvidenceTier(*v)
	}
	return _u
}

// AddEvidenceTier adds value to the "evidence_tier" field.
func (_u *SolutionAssessmentUpdateOne) AddEvidenceTier(v int) *SolutionAssessmentUpdateOne {
	_u.mutation.AddEvidenceTier(v)
	return _u
}

// ClearEvidenceTier clears the value of the "evidence_tier" field.
func (_u *SolutionAssessmentUpdateOne) ClearEvidenceTier() *SolutionAssessmentUpdateOne {
	_u.mutation.ClearEvidenceTier()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SolutionAssessmentUpdateOne) SetNotes(v string) *SolutionAssessmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SolutionAssessmentUpdateOne) SetNillableNotes(v *string) *SolutionAssessmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SolutionAssessmentUpdateOne) ClearNotes() *SolutionAssessmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetRoleFit sets the "role_fit" field.
func (_u *SolutionAssessmentUpdateOne) SetRoleFit(v solutionassessment.RoleFit) *SolutionAssessmentUpdateOne {
	_u.mutation.SetRoleFit(v)
	return _u
}

// SetNillableRoleFit sets the "role_fit" field if the given value is not nil.
func (_u *SolutionAssessmentUpdateOne) SetNillableRoleFit(v *solutionassessment.RoleFit) *SolutionAssessmentUpdateOne {
	if v != nil {
		_u.SetRoleFit(*v)
	}
	return _u
}

// ClearRoleFit clears the value of the "role_fit" field.
func (_u *SolutionAssessmentUpdateOne) ClearRoleFit() *SolutionAssessmentUpdateOne {
	_u.mutation.ClearRoleFit()
	return _u
}

// SetRoleFitNote sets the "role_fit_note" field.
func (_u *SolutionAssessmentUpdateOne) SetRoleFitNote(v string) *SolutionAssessmentUpdateOne {
	_u.mutation.SetRoleFitNote(v)
	return _u
}

// SetNillableRoleFitNote sets the "role_fit_note" field if the given value is not nil.
func (_u *SolutionAssessmentUpdateOne) SetNillableRoleFitNote(v *string) *SolutionAssessmentUpdateOne {
	if v != nil {
		_u.SetRoleFitNote(*v)
	}
	return _u
}

// ClearRoleFitNote clears the value of the "role_fit_note" field.
func (_u *SolutionAssessmentUpdateOne) ClearRoleFitNote() *SolutionAssessmentUpdateOne {
	_u.mutation.ClearRoleFitNote()
	return _u
}

// SetAssessedAt sets the "assessed_at" field.
func (_u *SolutionAssessmentUpdateOne) SetAssessedAt(v time.Time) *SolutionAssessmentUpdateOne {
	_u.mutation.SetAssessedAt(v)
	return _u
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_u *SolutionAssessmentUpdateOne) SetNillableAssessedAt(v *time.Time) *SolutionAssessmentUpdateOne {
	if v != nil {
		_u.SetAssessedAt(*v)
	}
	return _u
}

// SetSolution sets the "solution" edge to the Solution entity.
func (_u *SolutionAssessmentUpdateOne) SetSolution(v *Solution) *SolutionAssessmentUpdateOne {
	return _u.SetSolutionID(v.ID)
}

// Mutation returns the SolutionAssessmentMutation object of the builder.
func (_u *SolutionAssessmentUpdateOne) Mutation() *SolutionAssessmentMutation {
	return _u.mutation
}

// ClearSolution clears the "solution" edge to the Solution entity.
func (_u *SolutionAssessmentUpdateOne) ClearSolution() *SolutionAssessmentUpdateOne {
	_u.mutation.ClearSolution()
	return _u
}

// Where appends a list predicates to the SolutionAssessmentUpdate builder.
func (_u *SolutionAssessmentUpdateOne) Where(ps ...predicate.SolutionAssessment) *SolutionAssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SolutionAssessmentUpdateOne) Select(field string, fields ...string) *SolutionAssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SolutionAssessment entity.
func (_u *SolutionAssessmentUpdateOne) Save(ctx context.Context) (*SolutionAssessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionAssessmentUpdateOne) SaveX(ctx context.Context) *SolutionAssessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SolutionAssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionAssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionAssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := solutionassessment.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "SolutionAssessment.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoleFit(); ok {
		if err := solutionassessment.RoleFitValidator(v); err != nil {
			return &ValidationError{Name: "role_fit", err: fmt.Errorf(`ent: validator failed for field "SolutionAssessment.role_fit": %w`, err)}
		}
	}
	if _u.mutation.SolutionCleared() && len(_u.mutation.SolutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SolutionAssessment.solution"`)
	}
	return nil
}

func (_u *SolutionAssessmentUpdateOne) sqlSave(ctx context.Context) (_node *SolutionAssessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solutionassessment.Table, solutionassessment.Columns, sqlgraph.NewFieldSpec(solutionassessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SolutionAssessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solutionassessment.FieldID)
		for _, f := range fields {
			if !solutionassessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != solutionassessment.FieldID {
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
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(solutionassessment.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EvidenceText(); ok {
		_spec.SetField(solutionassessment.FieldEvidenceText, field.TypeString, value)
	}
	if _u.mutation.EvidenceTextCleared() {
		_spec.ClearField(solutionassessment.FieldEvidenceText, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceTier(); ok {
		_spec.SetField(solutionassessment.FieldEvidenceTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceTier(); ok {
		_spec.AddField(solutionassessment.FieldEvidenceTier, field.TypeInt, value)
	}
	if _u.mutation.EvidenceTierCleared() {
		_spec.ClearField(solutionassessment.FieldEvidenceTier, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(solutionassessment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(solutionassessment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.RoleFit(); ok {
		_spec.SetField(solutionassessment.FieldRoleFit, field.TypeEnum, value)
	}
	if _u.mutation.RoleFitCleared() {
		_spec.ClearField(solutionassessment.FieldRoleFit, field.TypeEnum)
	}
	if value, ok := _u.mutation.RoleFitNote(); ok {
		_spec.SetField(solutionassessment.FieldRoleFitNote, field.TypeString, value)
	}
	if _u.mutation.RoleFitNoteCleared() {
		_spec.ClearField(solutionassessment.FieldRoleFitNote, field.TypeString)
	}
	if value, ok := _u.mutation.AssessedAt(); ok {
		_spec.SetField(solutionassessment.FieldAssessedAt, field.TypeTime, value)
	}
	if _u.mutation.SolutionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   solutionassessment.SolutionTable,
			Columns: []string{solutionassessment.SolutionColumn},
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
			Table:   solutionassessment.SolutionTable,
			Columns: []string{solutionassessment.SolutionColumn},
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
	_node = &SolutionAssessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solutionassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
