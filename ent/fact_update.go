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
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/rawpost"
	"github.com/credlens/pundit/ent/verificationreference"
)

// FactUpdate is the builder for updating Fact entities.
type FactUpdate struct {
	config
	hooks    []Hook
	mutation *FactMutation
}

// Where appends a list predicates to the FactUpdate builder.
func (_u *FactUpdate) Where(ps ...predicate.Fact) *FactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClaim sets the "claim" field.
func (_u *FactUpdate) SetClaim(v string) *FactUpdate {
	_u.mutation.SetClaim(v)
	return _u
}

// SetNillableClaim sets the "claim" field if the given value is not nil.
func (_u *FactUpdate) SetNillableClaim(v *string) *FactUpdate {
	if v != nil {
		_u.SetClaim(*v)
	}
	return _u
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (_u *FactUpdate) SetCanonicalClaim(v string) *FactUpdate {
	_u.mutation.SetCanonicalClaim(v)
	return _u
}

// SetNillableCanonicalClaim sets the "canonical_claim" field if the given value is not nil.
func (_u *FactUpdate) SetNillableCanonicalClaim(v *string) *FactUpdate {
	if v != nil {
		_u.SetCanonicalClaim(*v)
	}
	return _u
}

// ClearCanonicalClaim clears the value of the "canonical_claim" field.
func (_u *FactUpdate) ClearCanonicalClaim() *FactUpdate {
	_u.mutation.ClearCanonicalClaim()
	return _u
}

// SetVerifiableExpression sets the "verifiable_expression" field.
func (_u *FactUpdate) SetVerifiableExpression(v string) *FactUpdate {
	_u.mutation.SetVerifiableExpression(v)
	return _u
}

// SetNillableVerifiableExpression sets the "verifiable_expression" field if the given value is not nil.
func (_u *FactUpdate) SetNillableVerifiableExpression(v *string) *FactUpdate {
	if v != nil {
		_u.SetVerifiableExpression(*v)
	}
	return _u
}

// ClearVerifiableExpression clears the value of the "verifiable_expression" field.
func (_u *FactUpdate) ClearVerifiableExpression() *FactUpdate {
	_u.mutation.ClearVerifiableExpression()
	return _u
}

// SetIsVerifiable sets the "is_verifiable" field.
func (_u *FactUpdate) SetIsVerifiable(v bool) *FactUpdate {
	_u.mutation.SetIsVerifiable(v)
	return _u
}

// SetNillableIsVerifiable sets the "is_verifiable" field if the given value is not nil.
func (_u *FactUpdate) SetNillableIsVerifiable(v *bool) *FactUpdate {
	if v != nil {
		_u.SetIsVerifiable(*v)
	}
	return _u
}

// SetVerificationMethod sets the "verification_method" field.
func (_u *FactUpdate) SetVerificationMethod(v string) *FactUpdate {
	_u.mutation.SetVerificationMethod(v)
	return _u
}

// SetNillableVerificationMethod sets the "verification_method" field if the given value is not nil.
func (_u *FactUpdate) SetNillableVerificationMethod(v *string) *FactUpdate {
	if v != nil {
		_u.SetVerificationMethod(*v)
	}
	return _u
}

// ClearVerificationMethod clears the value of the "verification_method" field.
func (_u *FactUpdate) ClearVerificationMethod() *FactUpdate {
	_u.mutation.ClearVerificationMethod()
	return _u
}

// SetValidityStartNote sets the "validity_start_note" field.
func (_u *FactUpdate) SetValidityStartNote(v string) *FactUpdate {
	_u.mutation.SetValidityStartNote(v)
	return _u
}

// SetNillableValidityStartNote sets the "validity_start_note" field if the given value is not nil.
func (_u *FactUpdate) SetNillableValidityStartNote(v *string) *FactUpdate {
	if v != nil {
		_u.SetValidityStartNote(*v)
	}
	return _u
}

// ClearValidityStartNote clears the value of the "validity_start_note" field.
func (_u *FactUpdate) ClearValidityStartNote() *FactUpdate {
	_u.mutation.ClearValidityStartNote()
	return _u
}

// SetValidityEndNote sets the "validity_end_note" field.
func (_u *FactUpdate) SetValidityEndNote(v string) *FactUpdate {
	_u.mutation.SetValidityEndNote(v)
	return _u
}

// SetNillableValidityEndNote sets the "validity_end_note" field if the given value is not nil.
func (_u *FactUpdate) SetNillableValidityEndNote(v *string) *FactUpdate {
	if v != nil {
		_u.SetValidityEndNote(*v)
	}
	return _u
}

// ClearValidityEndNote clears the value of the "validity_end_note" field.
func (_u *FactUpdate) ClearValidityEndNote() *FactUpdate {
	_u.mutation.ClearValidityEndNote()
	return _u
}

// SetValidityStart sets the "validity_start" field.
func (_u *FactUpdate) SetValidityStart(v time.Time) *FactUpdate {
	_u.mutation.SetValidityStart(v)
	return _u
}

// SetNillableValidityStart sets the "validity_start" field if the given value is not nil.
func (_u *FactUpdate) SetNillableValidityStart(v *time.Time) *FactUpdate {
	if v != nil {
		_u.SetValidityStart(*v)
	}
	return _u
}

// ClearValidityStart clears the value of the "validity_start" field.
func (_u *FactUpdate) ClearValidityStart() *FactUpdate {
	_u.mutation.ClearValidityStart()
	return _u
}

// SetValidityEnd sets the "validity_end" field.
func (_u *FactUpdate) SetValidityEnd(v time.Time) *FactUpdate {
	_u.mutation.SetValidityEnd(v)
	return _u
}

// SetNillableValidityEnd sets the "validity_end" field if the given value is not nil.
func (_u *FactUpdate) SetNillableValidityEnd(v *time.Time) *FactUpdate {
	if v != nil {
		_u.SetValidityEnd(*v)
	}
	return _u
}

// ClearValidityEnd clears the value of the "validity_end" field.
func (_u *FactUpdate) ClearValidityEnd() *FactUpdate {
	_u.mutation.ClearValidityEnd()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FactUpdate) SetStatus(v fact.Status) *FactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FactUpdate) SetNillableStatus(v *fact.Status) *FactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *FactUpdate) SetVerifiedAt(v time.Time) *FactUpdate {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *FactUpdate) SetNillableVerifiedAt(v *time.Time) *FactUpdate {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *FactUpdate) ClearVerifiedAt() *FactUpdate {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetVerificationEvidence sets the "verification_evidence" field.
func (_u *FactUpdate) SetVerificationEvidence(v string) *FactUpdate {
	_u.mutation.SetVerificationEvidence(v)
	return _u
}

// SetNillableVerificationEvidence sets the "verification_evidence" field if the given value is not nil.
func (_u *FactUpdate) SetNillableVerificationEvidence(v *string) *FactUpdate {
	if v != nil {
		_u.SetVerificationEvidence(*v)
	}
	return _u
}

// ClearVerificationEvidence clears the value of the "verification_evidence" field.
func (_u *FactUpdate) ClearVerificationEvidence() *FactUpdate {
	_u.mutation.ClearVerificationEvidence()
	return _u
}

// SetVerifiedSourceOrg sets the "verified_source_org" field.
func (_u *FactUpdate) SetVerifiedSourceOrg(v string) *FactUpdate {
	_u.mutation.SetVerifiedSourceOrg(v)
	return _u
}

// SetNillableVerifiedSourceOrg sets the "verified_source_org" field if the given value is not nil.
func (_u *FactUpdate) SetNillableVerifiedSourceOrg(v *string) *FactUpdate {
	if v != nil {
		_u.SetVerifiedSourceOrg(*v)
	}
	return _u
}

// ClearVerifiedSourceOrg clears the value of the "verified_source_org" field.
func (_u *FactUpdate) ClearVerifiedSourceOrg() *FactUpdate {
	_u.mutation.ClearVerifiedSourceOrg()
	return _u
}

// SetVerifiedSourceURL sets the "verified_source_url" field.
func (_u *FactUpdate) SetVerifiedSourceURL(v string) *FactUpdate {
	_u.mutation.SetVerifiedSourceURL(v)
	return _u
}

// SetNillableVerifiedSourceURL sets the "verified_source_url" field if the given value is not nil.
func (_u *FactUpdate) SetNillableVerifiedSourceURL(v *string) *FactUpdate {
	if v != nil {
		_u.SetVerifiedSourceURL(*v)
	}
	return _u
}

// ClearVerifiedSourceURL clears the value of the "verified_source_url" field.
func (_u *FactUpdate) ClearVerifiedSourceURL() *FactUpdate {
	_u.mutation.ClearVerifiedSourceURL()
	return _u
}

// SetVerifiedSourceData sets the "verified_source_data" field.
func (_u *FactUpdate) SetVerifiedSourceData(v string) *FactUpdate {
	_u.mutation.SetVerifiedSourceData(v)
	return _u
}

// SetNillableVerifiedSourceData sets the "verified_source_data" field if the given value is not nil.
func (_u *FactUpdate) SetNillableVerifiedSourceData(v *string) *FactUpdate {
	if v != nil {
		_u.SetVerifiedSourceData(*v)
	}
	return _u
}

// ClearVerifiedSourceData clears the value of the "verified_source_data" field.
func (_u *FactUpdate) ClearVerifiedSourceData() *FactUpdate {
	_u.mutation.ClearVerifiedSourceData()
	return _u
}

// SetRawPostID sets the "raw_post_id" field.
func (_u *FactUpdate) SetRawPostID(v int) *FactUpdate {
	_u.mutation.SetRawPostID(v)
	return _u
}

// SetNillableRawPostID sets the "raw_post_id" field if the given value is not nil.
func (_u *FactUpdate) SetNillableRawPostID(v *int) *FactUpdate {
	if v != nil {
		_u.SetRawPostID(*v)
	}
	return _u
}

// ClearRawPostID clears the value of the "raw_post_id" field.
func (_u *FactUpdate) ClearRawPostID() *FactUpdate {
	_u.mutation.ClearRawPostID()
	return _u
}

// SetRawPost sets the "raw_post" edge to the RawPost entity.
func (_u *FactUpdate) SetRawPost(v *RawPost) *FactUpdate {
	return _u.SetRawPostID(v.ID)
}

// AddReferenceIDs adds the "references" edge to the VerificationReference entity by IDs.
func (_u *FactUpdate) AddReferenceIDs(ids ...int) *FactUpdate {
	_u.mutation.AddReferenceIDs(ids...)
	return _u
}

// AddReferences adds the "references" edges to the VerificationReference entity.
func (_u *FactUpdate) AddReferences(v ...*VerificationReference) *FactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferenceIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the FactEvaluation entity by IDs.
func (_u *FactUpdate) AddEvaluationIDs(ids ...int) *FactUpdate {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the FactEvaluation entity.
func (_u *FactUpdate) AddEvaluations(v ...*FactEvaluation) *FactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// Mutation returns the FactMutation object of the builder.
func (_u *FactUpdate) Mutation() *FactMutation {
	return _u.mutation
}

// ClearRawPost clears the "raw_post" edge to the RawPost entity.
func (_u *FactUpdate) ClearRawPost() *FactUpdate {
	_u.mutation.ClearRawPost()
	return _u
}

// ClearReferences clears all "references" edges to the VerificationReference entity.
func (_u *FactUpdate) ClearReferences() *FactUpdate {
	_u.mutation.ClearReferences()
	return _u
}

// RemoveReferenceIDs removes the "references" edge to VerificationReference entities by IDs.
func (_u *FactUpdate) RemoveReferenceIDs(ids ...int) *FactUpdate {
	_u.mutation.RemoveReferenceIDs(ids...)
	return _u
}

// RemoveReferences removes "references" edges to VerificationReference entities.
func (_u *FactUpdate) RemoveReferences(v ...*VerificationReference) *FactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferenceIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the FactEvaluation entity.
func (_u *FactUpdate) ClearEvaluations() *FactUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to FactEvaluation entities by IDs.
func (_u *FactUpdate) RemoveEvaluationIDs(ids ...int) *FactUpdate {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to FactEvaluation entities.
func (_u *FactUpdate) RemoveEvaluations(v ...*FactEvaluation) *FactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FactUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Fact.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fact.Table, fact.Columns, sqlgraph.NewFieldSpec(fact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Claim(); ok {
		_spec.SetField(fact.FieldClaim, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalClaim(); ok {
		_spec.SetField(fact.FieldCanonicalClaim, field.TypeString, value)
	}
	if _u.mutation.CanonicalClaimCleared() {
		_spec.ClearField(fact.FieldCanonicalClaim, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiableExpression(); ok {
		_spec.SetField(fact.FieldVerifiableExpression, field.TypeString, value)
	}
	if _u.mutation.VerifiableExpressionCleared() {
		_spec.ClearField(fact.FieldVerifiableExpression, field.TypeString)
	}
	if value, ok := _u.mutation.IsVerifiable(); ok {
		_spec.SetField(fact.FieldIsVerifiable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerificationMethod(); ok {
		_spec.SetField(fact.FieldVerificationMethod, field.TypeString, value)
	}
	if _u.mutation.VerificationMethodCleared() {
		_spec.ClearField(fact.FieldVerificationMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ValidityStartNote(); ok {
		_spec.SetField(fact.FieldValidityStartNote, field.TypeString, value)
	}
	if _u.mutation.ValidityStartNoteCleared() {
		_spec.ClearField(fact.FieldValidityStartNote, field.TypeString)
	}
	if value, ok := _u.mutation.ValidityEndNote(); ok {
		_spec.SetField(fact.FieldValidityEndNote, field.TypeString, value)
	}
	if _u.mutation.ValidityEndNoteCleared() {
		_spec.ClearField(fact.FieldValidityEndNote, field.TypeString)
	}
	if value, ok := _u.mutation.ValidityStart(); ok {
		_spec.SetField(fact.FieldValidityStart, field.TypeTime, value)
	}
	if _u.mutation.ValidityStartCleared() {
		_spec.ClearField(fact.FieldValidityStart, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidityEnd(); ok {
		_spec.SetField(fact.FieldValidityEnd, field.TypeTime, value)
	}
	if _u.mutation.ValidityEndCleared() {
		_spec.ClearField(fact.FieldValidityEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(fact.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(fact.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerificationEvidence(); ok {
		_spec.SetField(fact.FieldVerificationEvidence, field.TypeString, value)
	}
	if _u.mutation.VerificationEvidenceCleared() {
		_spec.ClearField(fact.FieldVerificationEvidence, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedSourceOrg(); ok {
		_spec.SetField(fact.FieldVerifiedSourceOrg, field.TypeString, value)
	}
	if _u.mutation.VerifiedSourceOrgCleared() {
		_spec.ClearField(fact.FieldVerifiedSourceOrg, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedSourceURL(); ok {
		_spec.SetField(fact.FieldVerifiedSourceURL, field.TypeString, value)
	}
	if _u.mutation.VerifiedSourceURLCleared() {
		_spec.ClearField(fact.FieldVerifiedSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedSourceData(); ok {
		_spec.SetField(fact.FieldVerifiedSourceData, field.TypeString, value)
	}
	if _u.mutation.VerifiedSourceDataCleared() {
		_spec.ClearField(fact.FieldVerifiedSourceData, field.TypeString)
	}
	if _u.mutation.RawPostCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fact.RawPostTable,
			Columns: []string{fact.RawPostColumn},
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
			Table:   fact.RawPostTable,
			Columns: []string{fact.RawPostColumn},
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
	if _u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.ReferencesTable,
			Columns: []string{fact.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationreference.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferencesIDs(); len(nodes) > 0 && !_u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.ReferencesTable,
			Columns: []string{fact.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationreference.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.ReferencesTable,
			Columns: []string{fact.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationreference.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.EvaluationsTable,
			Columns: []string{fact.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(factevaluation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.EvaluationsTable,
			Columns: []string{fact.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(factevaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.EvaluationsTable,
			Columns: []string{fact.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(factevaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FactUpdateOne is the builder for updating a single Fact entity.
type FactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FactMutation
}

// SetClaim sets the "claim" field.
func (_u *FactUpdateOne) SetClaim(v string) *FactUpdateOne {
	_u.mutation.SetClaim(v)
	return _u
}

// SetNillableClaim sets the "claim" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableClaim(v *string) *FactUpdateOne {
	if v != nil {
		_u.SetClaim(*v)
	}
	return _u
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (_u *FactUpdateOne) SetCanonicalClaim(v string) *FactUpdateOne {
	_u.mutation.SetCanonicalClaim(v)
	return _u
}

// SetNillableCanonicalClaim sets the "canonical_claim" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableCanonicalClaim(v *string) *FactUpdateOne {
	if v != nil {
		_u.SetCanonicalClaim(*v)
	}
	return _u
}

// ClearCanonicalClaim clears the value of the "canonical_claim" field.
func (_u *FactUpdateOne) ClearCanonicalClaim() *FactUpdateOne {
	_u.mutation.ClearCanonicalClaim()
	return _u
}

// SetVerifiableExpression sets the "verifiable_expression" field.
func (_u *FactUpdateOne) SetVerifiableExpression(v string) *FactUpdateOne {
	_u.mutation.SetVerifiableExpression(v)
	return _u
}

// SetNillableVerifiableExpression sets the "verifiable_expression" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableVerifiableExpression(v *string) *FactUpdateOne {
	if v != nil {
		_u.SetVerifiableExpression(*v)
	}
	return _u
}

// ClearVerifiableExpression clears the value of the "verifiable_expression" field.
func (_u *FactUpdateOne) ClearVerifiableExpression() *FactUpdateOne {
	_u.mutation.ClearVerifiableExpression()
	return _u
}

// SetIsVerifiable sets the "is_verifiable" field.
func (_u *FactUpdateOne) SetIsVerifiable(v bool) *FactUpdateOne {
	_u.mutation.SetIsVerifiable(v)
	return _u
}

// SetNillableIsVerifiable sets the "is_verifiable" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableIsVerifiable(v *bool) *FactUpdateOne {
	if v != nil {
		_u.SetIsVerifiable(*v)
	}
	return _u
}

// SetVerificationMethod sets the "verification_method" field.
func (_u *FactUpdateOne) SetVerificationMethod(v string) *FactUpdateOne {
	_u.mutation.SetVerificationMethod(v)
	return _u
}

// SetNillableVerificationMethod sets the "verification_method" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableVerificationMethod(v *string) *FactUpdateOne {
	if v != nil {
		_u.SetVerificationMethod(*v)
	}
	return _u
}

// ClearVerificationMethod clears the value of the "verification_method" field.
func (_u *FactUpdateOne) ClearVerificationMethod() *FactUpdateOne {
	_u.mutation.ClearVerificationMethod()
	return _u
}

// SetValidityStartNote sets the "validity_start_note" field.
func (_u *FactUpdateOne) SetValidityStartNote(v string) *FactUpdateOne {
	_u.mutation.SetValidityStartNote(v)
	return _u
}

// SetNillableValidityStartNote sets the "validity_start_note" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableValidityStartNote(v *string) *FactUpdateOne {
	if v != nil {
		_u.SetValidityStartNote(*v)
	}
	return _u
}

// ClearValidityStartNote clears the value of the "validity_start_note" field.
func (_u *FactUpdateOne) ClearValidityStartNote() *FactUpdateOne {
	_u.mutation.ClearValidityStartNote()
	return _u
}

// SetValidityEndNote sets the "validity_end_note" field.
func (_u *FactUpdateOne) SetValidityEndNote(v string) *FactUpdateOne {
	_u.mutation.SetValidityEndNote(v)
	return _u
}

// SetNillableValidityEndNote sets the "validity_end_note" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableValidityEndNote(v *string) *FactUpdateOne {
	if v != nil {
		_u.SetValidityEndNote(*v)
	}
	return _u
}

// ClearValidityEndNote clears the value of the "validity_end_note" field.
func (_u *FactUpdateOne) ClearValidityEndNote() *FactUpdateOne {
	_u.mutation.ClearValidityEndNote()
	return _u
}

// SetValidityStart sets the "validity_start" field.
func (_u *FactUpdateOne) SetValidityStart(v time.Time) *FactUpdateOne {
	_u.mutation.SetValidityStart(v)
	return _u
}

// SetNillableValidityStart sets the "validity_start" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableValidityStart(v *time.Time) *FactUpdateOne {
	if v != nil {
		_u.SetValidityStart(*v)
	}
	return _u
}

// ClearValidityStart clears the value of the "validity_start" field.
func (_u *FactUpdateOne) ClearValidityStart() *FactUpdateOne {
	_u.mutation.ClearValidityStart()
	return _u
}

// SetValidityEnd sets the "validity_end" field.
func (_u *FactUpdateOne) SetValidityEnd(v time.Time) *FactUpdateOne {
	_u.mutation.SetValidityEnd(v)
	return _u
}

// SetNillableValidityEnd sets the "validity_end" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableValidityEnd(v *time.Time) *FactUpdateOne {
	if v != nil {
		_u.SetValidityEnd(*v)
	}
	return _u
}

// ClearValidityEnd clears the value of the "validity_end" field.
func (_u *FactUpdateOne) ClearValidityEnd() *FactUpdateOne {
	_u.mutation.ClearValidityEnd()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FactUpdateOne) SetStatus(v fact.Status) *FactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableStatus(v *fact.Status) *FactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *FactUpdateOne) SetVerifiedAt(v time.Time) *FactUpdateOne {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableVerifiedAt(v *time.Time) *FactUpdateOne {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *FactUpdateOne) ClearVerifiedAt() *FactUpdateOne {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetVerificationEvidence sets the "verification_evidence" field.
func (_u *FactUpdateOne) SetVerificationEvidence(v string) *FactUpdateOne {
	_u.mutation.SetVerificationEvidence(v)
	return _u
}

// SetNillableVerificationEvidence sets the "verification_evidence" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableVerificationEvidence(v *string) *FactUpdateOne {
	if v != nil {
		_u.SetVerificationEvidence(*v)
	}
	return _u
}

// ClearVerificationEvidence clears the value of the "verification_evidence" field.
func (_u *FactUpdateOne) ClearVerificationEvidence() *FactUpdateOne {
	_u.mutation.ClearVerificationEvidence()
	return _u
}

// SetVerifiedSourceOrg sets the "verified_source_org" field.
func (_u *FactUpdateOne) SetVerifiedSourceOrg(v string) *FactUpdateOne {
	_u.mutation.SetVerifiedSourceOrg(v)
	return _u
}

// SetNillableVerifiedSourceOrg sets the "verified_source_org" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableVerifiedSourceOrg(v *string) *FactUpdateOne {
	if v != nil {
		_u.SetVerifiedSourceOrg(*v)
	}
	return _u
}

// ClearVerifiedSourceOrg clears the value of the "verified_source_org" field.
func (_u *FactUpdateOne) ClearVerifiedSourceOrg() *FactUpdateOne {
	_u.mutation.ClearVerifiedSourceOrg()
	return _u
}

// SetVerifiedSourceURL sets the "verified_source_url" field.
func (_u *FactUpdateOne) SetVerifiedSourceURL(v string) *FactUpdateOne {
	_u.mutation.SetVerifiedSourceURL(v)
	return _u
}

// SetNillableVerifiedSourceURL sets the "verified_source_url" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableVerifiedSourceURL(v *string) *FactUpdateOne {
	if v != nil {
		_u.SetVerifiedSourceURL(*v)
	}
	return _u
}

// ClearVerifiedSourceURL clears the value of the "verified_source_url" field.
func (_u *FactUpdateOne) ClearVerifiedSourceURL() *FactUpdateOne {
	_u.mutation.ClearVerifiedSourceURL()
	return _u
}

// SetVerifiedSourceData sets the "verified_source_data" field.
func (_u *FactUpdateOne) SetVerifiedSourceData(v string) *FactUpdateOne {
	_u.mutation.SetVerifiedSourceData(v)
	return _u
}

// SetNillableVerifiedSourceData sets the "verified_source_data" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableVerifiedSourceData(v *string) *FactUpdateOne {
	if v != nil {
		_u.SetVerifiedSourceData(*v)
	}
	return _u
}

// ClearVerifiedSourceData clears the value of the "verified_source_data" field.
func (_u *FactUpdateOne) ClearVerifiedSourceData() *FactUpdateOne {
	_u.mutation.ClearVerifiedSourceData()
	return _u
}

// SetRawPostID sets the "raw_post_id" field.
func (_u *FactUpdateOne) SetRawPostID(v int) *FactUpdateOne {
	_u.mutation.SetRawPostID(v)
	return _u
}

// SetNillableRawPostID sets the "raw_post_id" field if the given value is not nil.
func (_u *FactUpdateOne) SetNillableRawPostID(v *int) *FactUpdateOne {
	if v != nil {
		_u.SetRawPostID(*v)
	}
	return _u
}

// ClearRawPostID clears the value of the "raw_post_id" field.
func (_u *FactUpdateOne) ClearRawPostID() *FactUpdateOne {
	_u.mutation.ClearRawPostID()
	return _u
}

// SetRawPost sets the "raw_post" edge to the RawPost entity.
func (_u *FactUpdateOne) SetRawPost(v *RawPost) *FactUpdateOne {
	return _u.SetRawPostID(v.ID)
}

// AddReferenceIDs adds the "references" edge to the VerificationReference entity by IDs.
func (_u *FactUpdateOne) AddReferenceIDs(ids ...int) *FactUpdateOne {
	_u.mutation.AddReferenceIDs(ids...)
	return _u
}

// AddReferences adds the "references" edges to the VerificationReference entity.
func (_u *FactUpdateOne) AddReferences(v ...*VerificationReference) *FactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferenceIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the FactEvaluation entity by IDs.
func (_u *FactUpdateOne) AddEvaluationIDs(ids ...int) *FactUpdateOne {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the FactEvaluation entity.
func (_u *FactUpdateOne) AddEvaluations(v ...*FactEvaluation) *FactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// Mutation returns the FactMutation object of the builder.
func (_u *FactUpdateOne) Mutation() *FactMutation {
	return _u.mutation
}

// ClearRawPost clears the "raw_post" edge to the RawPost entity.
func (_u *FactUpdateOne) ClearRawPost() *FactUpdateOne {
	_u.mutation.ClearRawPost()
	return _u
}

// ClearReferences clears all "references" edges to the VerificationReference entity.
func (_u *FactUpdateOne) ClearReferences() *FactUpdateOne {
	_u.mutation.ClearReferences()
	return _u
}

// RemoveReferenceIDs removes the "references" edge to VerificationReference entities by IDs.
func (_u *FactUpdateOne) RemoveReferenceIDs(ids ...int) *FactUpdateOne {
	_u.mutation.RemoveReferenceIDs(ids...)
	return _u
}

// RemoveReferences removes "references" edges to VerificationReference entities.
func (_u *FactUpdateOne) RemoveReferences(v ...*VerificationReference) *FactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferenceIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the FactEvaluation entity.
func (_u *FactUpdateOne) ClearEvaluations() *FactUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to FactEvaluation entities by IDs.
func (_u *FactUpdateOne) RemoveEvaluationIDs(ids ...int) *FactUpdateOne {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to FactEvaluation entities.
func (_u *FactUpdateOne) RemoveEvaluations(v ...*FactEvaluation) *FactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// Where appends a list predicates to the FactUpdate builder.
func (_u *FactUpdateOne) Where(ps ...predicate.Fact) *FactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FactUpdateOne) Select(field string, fields ...string) *FactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Fact entity.
func (_u *FactUpdateOne) Save(ctx context.Context) (*Fact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FactUpdateOne) SaveX(ctx context.Context) *Fact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FactUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Fact.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FactUpdateOne) sqlSave(ctx context.Context) (_node *Fact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fact.Table, fact.Columns, sqlgraph.NewFieldSpec(fact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Fact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fact.FieldID)
		for _, f := range fields {
			if !fact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fact.FieldID {
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
		_spec.SetField(fact.FieldClaim, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalClaim(); ok {
		_spec.SetField(fact.FieldCanonicalClaim, field.TypeString, value)
	}
	if _u.mutation.CanonicalClaimCleared() {
		_spec.ClearField(fact.FieldCanonicalClaim, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiableExpression(); ok {
		_spec.SetField(fact.FieldVerifiableExpression, field.TypeString, value)
	}
	if _u.mutation.VerifiableExpressionCleared() {
		_spec.ClearField(fact.FieldVerifiableExpression, field.TypeString)
	}
	if value, ok := _u.mutation.IsVerifiable(); ok {
		_spec.SetField(fact.FieldIsVerifiable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerificationMethod(); ok {
		_spec.SetField(fact.FieldVerificationMethod, field.TypeString, value)
	}
	if _u.mutation.VerificationMethodCleared() {
		_spec.ClearField(fact.FieldVerificationMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ValidityStartNote(); ok {
		_spec.SetField(fact.FieldValidityStartNote, field.TypeString, value)
	}
	if _u.mutation.ValidityStartNoteCleared() {
		_spec.ClearField(fact.FieldValidityStartNote, field.TypeString)
	}
	if value, ok := _u.mutation.ValidityEndNote(); ok {
		_spec.SetField(fact.FieldValidityEndNote, field.TypeString, value)
	}
	if _u.mutation.ValidityEndNoteCleared() {
		_spec.ClearField(fact.FieldValidityEndNote, field.TypeString)
	}
	if value, ok := _u.mutation.ValidityStart(); ok {
		_spec.SetField(fact.FieldValidityStart, field.TypeTime, value)
	}
	if _u.mutation.ValidityStartCleared() {
		_spec.ClearField(fact.FieldValidityStart, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidityEnd(); ok {
		_spec.SetField(fact.FieldValidityEnd, field.TypeTime, value)
	}
	if _u.mutation.ValidityEndCleared() {
		_spec.ClearField(fact.FieldValidityEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(fact.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(fact.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerificationEvidence(); ok {
		_spec.SetField(fact.FieldVerificationEvidence, field.TypeString, value)
	}
	if _u.mutation.VerificationEvidenceCleared() {
		_spec.ClearField(fact.FieldVerificationEvidence, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedSourceOrg(); ok {
		_spec.SetField(fact.FieldVerifiedSourceOrg, field.TypeString, value)
	}
	if _u.mutation.VerifiedSourceOrgCleared() {
		_spec.ClearField(fact.FieldVerifiedSourceOrg, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedSourceURL(); ok {
		_spec.SetField(fact.FieldVerifiedSourceURL, field.TypeString, value)
	}
	if _u.mutation.VerifiedSourceURLCleared() {
		_spec.ClearField(fact.FieldVerifiedSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.VerifiedSourceData(); ok {
		_spec.SetField(fact.FieldVerifiedSourceData, field.TypeString, value)
	}
	if _u.mutation.VerifiedSourceDataCleared() {
		_spec.ClearField(fact.FieldVerifiedSourceData, field.TypeString)
	}
	if _u.mutation.RawPostCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fact.RawPostTable,
			Columns: []string{fact.RawPostColumn},
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
			Table:   fact.RawPostTable,
			Columns: []string{fact.RawPostColumn},
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
	if _u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.ReferencesTable,
			Columns: []string{fact.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationreference.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferencesIDs(); len(nodes) > 0 && !_u.mutation.ReferencesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.ReferencesTable,
			Columns: []string{fact.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationreference.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.ReferencesTable,
			Columns: []string{fact.ReferencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationreference.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.EvaluationsTable,
			Columns: []string{fact.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(factevaluation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.EvaluationsTable,
			Columns: []string{fact.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(factevaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fact.EvaluationsTable,
			Columns: []string{fact.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(factevaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Fact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
